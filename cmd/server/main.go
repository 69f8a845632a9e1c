package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/farhananowshin/SkillBridge/internal/auth"
	"github.com/farhananowshin/SkillBridge/internal/cache"
	"github.com/farhananowshin/SkillBridge/internal/certificate"
	"github.com/farhananowshin/SkillBridge/internal/config"
	"github.com/farhananowshin/SkillBridge/internal/data"
	"github.com/farhananowshin/SkillBridge/internal/files"
	"github.com/farhananowshin/SkillBridge/internal/handler"
	"github.com/farhananowshin/SkillBridge/internal/logging"
	"github.com/farhananowshin/SkillBridge/internal/middleware"
	"github.com/farhananowshin/SkillBridge/internal/service"
	"github.com/farhananowshin/SkillBridge/pkg/db"
	"github.com/farhananowshin/SkillBridge/pkg/kafka"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	zapLogger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	logger := logging.New(zapLogger)

	cfg, err := config.New()
	if err != nil {
		logger.Fatal(ctx, "cannot create config", zap.Error(err))
	}

	pool, err := db.New(ctx, cfg)
	if err != nil {
		logger.Fatal(ctx, "cannot connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	redisCache, err := cache.New(ctx, cfg.RedisURL)
	if err != nil {
		logger.Fatal(ctx, "cannot connect to redis", zap.Error(err))
	}
	defer redisCache.Close()

	producer, err := kafka.NewProducer(kafka.Config{Brokers: cfg.KafkaBrokers})
	if err != nil {
		logger.Fatal(ctx, "cannot create kafka producer", zap.Error(err))
	}
	defer producer.Close()

	s3Client, err := files.NewS3Client(ctx, cfg)
	if err != nil {
		logger.Fatal(ctx, "cannot create s3 client", zap.Error(err))
	}

	userRepo := data.NewUserRepository(pool)
	courseRepo := data.NewCourseRepository(pool)
	lessonRepo := data.NewLessonRepository(pool)
	assignmentRepo := data.NewAssignmentRepository(pool)
	submissionRepo := data.NewSubmissionRepository(pool)
	quizRepo := data.NewQuizRepository(pool)
	quizResultRepo := data.NewQuizResultRepository(pool)
	enrollmentRepo := data.NewEnrollmentRepository(pool)
	fileRepo := data.NewFileRepository(pool)

	tokens := auth.NewManager(cfg.TokenSecret, cfg.TokenTTL)

	renderer, err := certificate.NewRenderer()
	if err != nil {
		logger.Fatal(ctx, "cannot create certificate renderer", zap.Error(err))
	}

	fileService, err := files.NewService(logging.ContextWithLogger(ctx, logger), fileRepo, s3Client, cfg.S3Bucket)
	if err != nil {
		logger.Fatal(ctx, "cannot create file service", zap.Error(err))
	}

	userService := service.NewUserService(userRepo, tokens)
	catalogService := service.NewCatalogService(courseRepo, lessonRepo, userRepo, enrollmentRepo)
	enrollmentService := service.NewEnrollmentService(enrollmentRepo, courseRepo, producer)
	submissionService := service.NewSubmissionService(submissionRepo, assignmentRepo, courseRepo, enrollmentRepo, producer)
	quizService := service.NewQuizService(quizRepo, quizResultRepo, courseRepo, enrollmentRepo, producer)
	certificateService := service.NewCertificateService(
		courseRepo, userRepo, enrollmentRepo,
		assignmentRepo, submissionRepo, quizRepo, quizResultRepo,
		renderer,
	)
	dashboardService := service.NewDashboardService(userRepo, enrollmentRepo, submissionRepo, quizResultRepo)

	userHandler := handler.NewUserHandler(userService)
	courseHandler := handler.NewCourseHandler(catalogService, enrollmentService, redisCache)
	lessonHandler := handler.NewLessonHandler(catalogService)
	enrollmentHandler := handler.NewEnrollmentHandler(enrollmentService)
	assignmentHandler := handler.NewAssignmentHandler(submissionService)
	quizHandler := handler.NewQuizHandler(quizService)
	certificateHandler := handler.NewCertificateHandler(certificateService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	fileHandler := handler.NewFileHandler(fileService)

	authMiddleware := middleware.NewAuthMiddleware(tokens)
	optionalAuth := middleware.NewOptionalAuthMiddleware(tokens)

	r := chi.NewRouter()
	r.Use(middleware.NewLoggingMiddleware(logger))
	r.Use(func(next http.Handler) http.Handler {
		return http.MaxBytesHandler(next, 10<<20) // 10 MB
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	userHandler.RegisterRoutes(r, authMiddleware)
	courseHandler.RegisterRoutes(r, authMiddleware, optionalAuth)
	lessonHandler.RegisterRoutes(r, authMiddleware)
	enrollmentHandler.RegisterRoutes(r, authMiddleware)
	assignmentHandler.RegisterRoutes(r, authMiddleware)
	quizHandler.RegisterRoutes(r, authMiddleware)
	certificateHandler.RegisterRoutes(r, authMiddleware)
	dashboardHandler.RegisterRoutes(r, authMiddleware)
	fileHandler.RegisterRoutes(r, authMiddleware)

	port := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info(ctx, "Starting server", zap.String("port", port))

	srv := &http.Server{
		Addr:    port,
		Handler: r,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal(ctx, "cannot start http server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info(ctx, "Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal(ctx, "server forced to shutdown", zap.Error(err))
	}
	logger.Info(ctx, "Server stopped")
}

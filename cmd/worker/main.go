package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/farhananowshin/SkillBridge/internal/config"
	"github.com/farhananowshin/SkillBridge/internal/data"
	"github.com/farhananowshin/SkillBridge/internal/logging"
	"github.com/farhananowshin/SkillBridge/internal/worker"
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

	producer, err := kafka.NewProducer(kafka.Config{Brokers: cfg.KafkaBrokers})
	if err != nil {
		logger.Fatal(ctx, "cannot create kafka producer", zap.Error(err))
	}
	defer producer.Close()

	assignmentRepo := data.NewAssignmentRepository(pool)

	reminderWorker := worker.NewReminderWorker(
		assignmentRepo,
		producer,
		logger,
		cfg.ReminderInterval,
		cfg.ReminderWindow,
	)

	logger.Info(ctx, "Starting reminder worker")
	reminderWorker.Start(ctx)
}

package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *UserHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Post("/auth/signup", h.Signup)
	r.Post("/auth/login", h.Login)

	r.With(authMiddleware).Group(func(r chi.Router) {
		r.Get("/users/me", h.GetMe)
		r.Patch("/users/me", h.UpdateMe)
		r.Get("/users/{id}", h.GetUser)
	})
	r.Get("/mentors", h.ListMentors)
}

// Catalog browsing is public; lesson content and all mutations need a
// signed-in caller.
func (h *CourseHandler) RegisterRoutes(r chi.Router, authMiddleware, optionalAuth func(http.Handler) http.Handler) {
	r.With(optionalAuth).Get("/courses", h.List)
	r.With(optionalAuth).Get("/courses/{courseID}", h.Get)

	r.With(authMiddleware).Group(func(r chi.Router) {
		r.Post("/courses", h.Create)
		r.Patch("/courses/{courseID}", h.Update)
		r.Delete("/courses/{courseID}", h.Delete)
	})
}

func (h *LessonHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.With(authMiddleware).Group(func(r chi.Router) {
		r.Post("/courses/{courseID}/lessons", h.Create)
		r.Get("/courses/{courseID}/lessons", h.List)
		r.Get("/courses/{courseID}/lessons/{lessonID}", h.Get)
		r.Patch("/courses/{courseID}/lessons/{lessonID}", h.Update)
		r.Delete("/courses/{courseID}/lessons/{lessonID}", h.Delete)
	})
}

func (h *EnrollmentHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.With(authMiddleware).Group(func(r chi.Router) {
		r.Post("/courses/{courseID}/enroll", h.Enroll)
		r.Get("/enrollments", h.ListMine)
	})
}

func (h *AssignmentHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.With(authMiddleware).Group(func(r chi.Router) {
		r.Post("/courses/{courseID}/assignments", h.Create)
		r.Get("/courses/{courseID}/assignments", h.List)
		r.Get("/assignments/{assignmentID}", h.Get)
		r.Delete("/assignments/{assignmentID}", h.Delete)
		r.Post("/assignments/{assignmentID}/submissions", h.Submit)
		r.Get("/assignments/{assignmentID}/submissions/me", h.GetMySubmission)
		r.Get("/assignments/{assignmentID}/submissions", h.ListSubmissions)
		r.Post("/submissions/{submissionID}/grade", h.Grade)
	})
}

func (h *QuizHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.With(authMiddleware).Group(func(r chi.Router) {
		r.Post("/courses/{courseID}/quizzes", h.Create)
		r.Get("/courses/{courseID}/quizzes", h.List)
		r.Get("/quizzes/{quizID}", h.Get)
		r.Post("/quizzes/{quizID}/questions", h.AddQuestion)
		r.Post("/questions/{questionID}/choices", h.AddChoice)
		r.Post("/quizzes/{quizID}/submit", h.Submit)
		r.Get("/quizzes/{quizID}/result", h.GetResult)
	})
}

func (h *CertificateHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.With(authMiddleware).Group(func(r chi.Router) {
		r.Get("/courses/{courseID}/certificate/eligibility", h.GetEligibility)
		r.Get("/courses/{courseID}/certificate", h.Download)
	})
}

func (h *DashboardHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.With(authMiddleware).Get("/dashboard", h.Get)
}

func (h *FileHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.With(authMiddleware).Group(func(r chi.Router) {
		r.Post("/files/init-upload", h.InitUpload)
		r.Get("/files/{fileID}/url", h.GetDownloadURL)
	})
}

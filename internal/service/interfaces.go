package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/farhananowshin/SkillBridge/internal/model"
)

type UserRepository interface {
	CreateUser(ctx context.Context, input *model.RepositoryCreateUserInput) (*model.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, input *model.UpdateProfileInput) (*model.User, error)
	ListUsersByRole(ctx context.Context, role model.Role) ([]*model.User, error)
}

type CourseRepository interface {
	Create(ctx context.Context, course *model.Course) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Course, error)
	List(ctx context.Context, filter *model.CourseFilter) ([]*model.Course, error)
	Update(ctx context.Context, id uuid.UUID, input *model.UpdateCourseInput) (*model.Course, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type LessonRepository interface {
	Create(ctx context.Context, lesson *model.Lesson) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Lesson, error)
	ListByCourse(ctx context.Context, courseID uuid.UUID) ([]*model.Lesson, error)
	Previous(ctx context.Context, courseID uuid.UUID, position int32) (*model.Lesson, error)
	Next(ctx context.Context, courseID uuid.UUID, position int32) (*model.Lesson, error)
	Update(ctx context.Context, id uuid.UUID, input *model.UpdateLessonInput, videoURL *string) (*model.Lesson, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type AssignmentRepository interface {
	Create(ctx context.Context, assignment *model.Assignment) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Assignment, error)
	ListByCourse(ctx context.Context, courseID uuid.UUID) ([]*model.Assignment, error)
	CountByCourse(ctx context.Context, courseID uuid.UUID) (int, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindAssignmentsDueSoon(ctx context.Context, window time.Duration) ([]*model.Assignment, error)
	FindStudentsMissingSubmission(ctx context.Context, assignmentID uuid.UUID) ([]uuid.UUID, error)
}

type SubmissionRepository interface {
	Create(ctx context.Context, input *model.RepositoryCreateSubmissionInput) (*model.Submission, error)
	Replace(ctx context.Context, id uuid.UUID, fileID *uuid.UUID) (*model.Submission, error)
	SetMarks(ctx context.Context, id uuid.UUID, marks int32) (*model.Submission, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Submission, error)
	GetByAssignmentAndStudent(ctx context.Context, assignmentID, studentID uuid.UUID) (*model.Submission, error)
	ListByAssignment(ctx context.Context, assignmentID uuid.UUID) ([]*model.Submission, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*model.Submission, error)
	CountByCourseAndStudent(ctx context.Context, courseID, studentID uuid.UUID) (int, error)
}

type QuizRepository interface {
	Create(ctx context.Context, quiz *model.Quiz) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Quiz, error)
	ListByCourse(ctx context.Context, courseID uuid.UUID) ([]*model.Quiz, error)
	CountByCourse(ctx context.Context, courseID uuid.UUID) (int, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CreateQuestion(ctx context.Context, question *model.Question) error
	GetQuestion(ctx context.Context, id uuid.UUID) (*model.Question, error)
	ListQuestions(ctx context.Context, quizID uuid.UUID) ([]*model.Question, error)
	CreateChoice(ctx context.Context, choice *model.Choice) error
	GetChoice(ctx context.Context, id uuid.UUID) (*model.Choice, error)
	ListChoices(ctx context.Context, questionID uuid.UUID) ([]*model.Choice, error)
}

type QuizResultRepository interface {
	Create(ctx context.Context, input *model.RepositoryCreateQuizResultInput) (*model.QuizResult, error)
	GetByQuizAndStudent(ctx context.Context, quizID, studentID uuid.UUID) (*model.QuizResult, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*model.QuizResult, error)
	CountByCourseAndStudent(ctx context.Context, courseID, studentID uuid.UUID) (int, error)
}

type EnrollmentRepository interface {
	Create(ctx context.Context, input *model.RepositoryCreateEnrollmentInput) (*model.Enrollment, error)
	Exists(ctx context.Context, studentID, courseID uuid.UUID) (bool, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*model.Enrollment, error)
	ListCourseIDsByStudent(ctx context.Context, studentID uuid.UUID) ([]uuid.UUID, error)
}

type FileClient interface {
	GetFileURL(ctx context.Context, fileID uuid.UUID) (string, error)
}

// EventProducer publishes domain events. Failures are logged, never
// surfaced: events are advisory, the write that triggered them has
// already committed.
type EventProducer interface {
	Send(ctx context.Context, topic string, message interface{}) error
}

// CertificateData carries everything the document renderer needs; the
// core never touches the rendered bytes beyond handing them back.
type CertificateData struct {
	StudentName    string
	CourseTitle    string
	MentorName     string
	CompletionDate time.Time
}

type CertificateRenderer interface {
	Render(data CertificateData) ([]byte, error)
}

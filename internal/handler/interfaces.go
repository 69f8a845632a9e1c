package handler

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/farhananowshin/SkillBridge/internal/files"
	"github.com/farhananowshin/SkillBridge/internal/model"
	"github.com/farhananowshin/SkillBridge/internal/service"
)

type UserService interface {
	RegisterStudent(ctx context.Context, input *model.RegisterStudentInput) (*model.User, error)
	Login(ctx context.Context, input *model.LoginInput) (*model.User, string, error)
	GetMe(ctx context.Context) (*model.User, error)
	UpdateProfile(ctx context.Context, input *model.UpdateProfileInput) (*model.User, error)
	GetUserPublic(ctx context.Context, id uuid.UUID) (*model.UserPublic, error)
	ListMentors(ctx context.Context) ([]*model.UserPublic, error)
}

type CatalogService interface {
	CreateCourse(ctx context.Context, input *model.CreateCourseInput) (*model.Course, error)
	ListCourses(ctx context.Context, filter *model.CourseFilter) ([]*model.Course, error)
	GetCourse(ctx context.Context, id uuid.UUID) (*model.Course, error)
	UpdateCourse(ctx context.Context, id uuid.UUID, input *model.UpdateCourseInput) (*model.Course, error)
	DeleteCourse(ctx context.Context, id uuid.UUID) error
	CreateLesson(ctx context.Context, input *model.CreateLessonInput) (*model.Lesson, error)
	UpdateLesson(ctx context.Context, id uuid.UUID, input *model.UpdateLessonInput) (*model.Lesson, error)
	DeleteLesson(ctx context.Context, id uuid.UUID) error
	ListLessons(ctx context.Context, courseID uuid.UUID) ([]*model.Lesson, error)
	GetLessonPage(ctx context.Context, courseID, lessonID uuid.UUID) (*service.LessonPage, error)
}

type EnrollmentService interface {
	Enroll(ctx context.Context, courseID uuid.UUID) (*model.Enrollment, error)
	ListMine(ctx context.Context) ([]*model.Enrollment, error)
	ListMyCourseIDs(ctx context.Context) ([]uuid.UUID, error)
}

type SubmissionService interface {
	CreateAssignment(ctx context.Context, input *model.CreateAssignmentInput) (*model.Assignment, error)
	GetAssignment(ctx context.Context, id uuid.UUID) (*model.Assignment, error)
	ListAssignments(ctx context.Context, courseID uuid.UUID) ([]*model.Assignment, error)
	DeleteAssignment(ctx context.Context, id uuid.UUID) error
	Submit(ctx context.Context, input *model.SubmitAssignmentInput) (*model.Submission, error)
	GetMySubmission(ctx context.Context, assignmentID uuid.UUID) (*model.Submission, error)
	ListSubmissions(ctx context.Context, assignmentID uuid.UUID) ([]*model.Submission, error)
	Grade(ctx context.Context, input *model.GradeSubmissionInput) (*model.Submission, error)
}

type QuizService interface {
	CreateQuiz(ctx context.Context, input *model.CreateQuizInput) (*model.Quiz, error)
	AddQuestion(ctx context.Context, input *model.CreateQuestionInput) (*model.Question, error)
	AddChoice(ctx context.Context, input *model.CreateChoiceInput) (*model.Choice, error)
	GetQuizDetail(ctx context.Context, quizID uuid.UUID) (*service.QuizDetail, error)
	SubmitAnswers(ctx context.Context, input *model.SubmitAnswersInput) (*model.QuizResult, error)
	GetResult(ctx context.Context, quizID uuid.UUID) (*model.QuizResult, error)
	ListQuizzes(ctx context.Context, courseID uuid.UUID) ([]*model.Quiz, error)
}

type CertificateService interface {
	Evaluate(ctx context.Context, courseID uuid.UUID) (*service.Eligibility, error)
	Issue(ctx context.Context, courseID uuid.UUID) ([]byte, error)
}

type DashboardService interface {
	GetDashboard(ctx context.Context) (*service.Dashboard, error)
}

type FileService interface {
	InitUpload(ctx context.Context, ownerID uuid.UUID, filename string) (*files.InitUploadResult, error)
	GetFileURL(ctx context.Context, fileID uuid.UUID) (string, error)
}

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration)
	Delete(ctx context.Context, key string)
}

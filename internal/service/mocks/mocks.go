package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/farhananowshin/SkillBridge/internal/model"
	"github.com/farhananowshin/SkillBridge/internal/service"
)

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) CreateUser(ctx context.Context, input *model.RepositoryCreateUserInput) (*model.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *UserRepository) GetUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *UserRepository) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *UserRepository) UpdateUser(ctx context.Context, id uuid.UUID, input *model.UpdateProfileInput) (*model.User, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *UserRepository) ListUsersByRole(ctx context.Context, role model.Role) ([]*model.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.User), args.Error(1)
}

type CourseRepository struct {
	mock.Mock
}

func (m *CourseRepository) Create(ctx context.Context, course *model.Course) error {
	args := m.Called(ctx, course)
	return args.Error(0)
}

func (m *CourseRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Course), args.Error(1)
}

func (m *CourseRepository) List(ctx context.Context, filter *model.CourseFilter) ([]*model.Course, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Course), args.Error(1)
}

func (m *CourseRepository) Update(ctx context.Context, id uuid.UUID, input *model.UpdateCourseInput) (*model.Course, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Course), args.Error(1)
}

func (m *CourseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type LessonRepository struct {
	mock.Mock
}

func (m *LessonRepository) Create(ctx context.Context, lesson *model.Lesson) error {
	args := m.Called(ctx, lesson)
	return args.Error(0)
}

func (m *LessonRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Lesson, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Lesson), args.Error(1)
}

func (m *LessonRepository) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]*model.Lesson, error) {
	args := m.Called(ctx, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Lesson), args.Error(1)
}

func (m *LessonRepository) Previous(ctx context.Context, courseID uuid.UUID, position int32) (*model.Lesson, error) {
	args := m.Called(ctx, courseID, position)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Lesson), args.Error(1)
}

func (m *LessonRepository) Next(ctx context.Context, courseID uuid.UUID, position int32) (*model.Lesson, error) {
	args := m.Called(ctx, courseID, position)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Lesson), args.Error(1)
}

func (m *LessonRepository) Update(ctx context.Context, id uuid.UUID, input *model.UpdateLessonInput, videoURL *string) (*model.Lesson, error) {
	args := m.Called(ctx, id, input, videoURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Lesson), args.Error(1)
}

func (m *LessonRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type AssignmentRepository struct {
	mock.Mock
}

func (m *AssignmentRepository) Create(ctx context.Context, assignment *model.Assignment) error {
	args := m.Called(ctx, assignment)
	return args.Error(0)
}

func (m *AssignmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Assignment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Assignment), args.Error(1)
}

func (m *AssignmentRepository) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]*model.Assignment, error) {
	args := m.Called(ctx, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Assignment), args.Error(1)
}

func (m *AssignmentRepository) CountByCourse(ctx context.Context, courseID uuid.UUID) (int, error) {
	args := m.Called(ctx, courseID)
	return args.Int(0), args.Error(1)
}

func (m *AssignmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *AssignmentRepository) FindAssignmentsDueSoon(ctx context.Context, window time.Duration) ([]*model.Assignment, error) {
	args := m.Called(ctx, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Assignment), args.Error(1)
}

func (m *AssignmentRepository) FindStudentsMissingSubmission(ctx context.Context, assignmentID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, assignmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

type SubmissionRepository struct {
	mock.Mock
}

func (m *SubmissionRepository) Create(ctx context.Context, input *model.RepositoryCreateSubmissionInput) (*model.Submission, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Submission), args.Error(1)
}

func (m *SubmissionRepository) Replace(ctx context.Context, id uuid.UUID, fileID *uuid.UUID) (*model.Submission, error) {
	args := m.Called(ctx, id, fileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Submission), args.Error(1)
}

func (m *SubmissionRepository) SetMarks(ctx context.Context, id uuid.UUID, marks int32) (*model.Submission, error) {
	args := m.Called(ctx, id, marks)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Submission), args.Error(1)
}

func (m *SubmissionRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Submission, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Submission), args.Error(1)
}

func (m *SubmissionRepository) GetByAssignmentAndStudent(ctx context.Context, assignmentID, studentID uuid.UUID) (*model.Submission, error) {
	args := m.Called(ctx, assignmentID, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Submission), args.Error(1)
}

func (m *SubmissionRepository) ListByAssignment(ctx context.Context, assignmentID uuid.UUID) ([]*model.Submission, error) {
	args := m.Called(ctx, assignmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Submission), args.Error(1)
}

func (m *SubmissionRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*model.Submission, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Submission), args.Error(1)
}

func (m *SubmissionRepository) CountByCourseAndStudent(ctx context.Context, courseID, studentID uuid.UUID) (int, error) {
	args := m.Called(ctx, courseID, studentID)
	return args.Int(0), args.Error(1)
}

type QuizRepository struct {
	mock.Mock
}

func (m *QuizRepository) Create(ctx context.Context, quiz *model.Quiz) error {
	args := m.Called(ctx, quiz)
	return args.Error(0)
}

func (m *QuizRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Quiz, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Quiz), args.Error(1)
}

func (m *QuizRepository) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]*model.Quiz, error) {
	args := m.Called(ctx, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Quiz), args.Error(1)
}

func (m *QuizRepository) CountByCourse(ctx context.Context, courseID uuid.UUID) (int, error) {
	args := m.Called(ctx, courseID)
	return args.Int(0), args.Error(1)
}

func (m *QuizRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *QuizRepository) CreateQuestion(ctx context.Context, question *model.Question) error {
	args := m.Called(ctx, question)
	return args.Error(0)
}

func (m *QuizRepository) GetQuestion(ctx context.Context, id uuid.UUID) (*model.Question, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Question), args.Error(1)
}

func (m *QuizRepository) ListQuestions(ctx context.Context, quizID uuid.UUID) ([]*model.Question, error) {
	args := m.Called(ctx, quizID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Question), args.Error(1)
}

func (m *QuizRepository) CreateChoice(ctx context.Context, choice *model.Choice) error {
	args := m.Called(ctx, choice)
	return args.Error(0)
}

func (m *QuizRepository) GetChoice(ctx context.Context, id uuid.UUID) (*model.Choice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Choice), args.Error(1)
}

func (m *QuizRepository) ListChoices(ctx context.Context, questionID uuid.UUID) ([]*model.Choice, error) {
	args := m.Called(ctx, questionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Choice), args.Error(1)
}

type QuizResultRepository struct {
	mock.Mock
}

func (m *QuizResultRepository) Create(ctx context.Context, input *model.RepositoryCreateQuizResultInput) (*model.QuizResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.QuizResult), args.Error(1)
}

func (m *QuizResultRepository) GetByQuizAndStudent(ctx context.Context, quizID, studentID uuid.UUID) (*model.QuizResult, error) {
	args := m.Called(ctx, quizID, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.QuizResult), args.Error(1)
}

func (m *QuizResultRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*model.QuizResult, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.QuizResult), args.Error(1)
}

func (m *QuizResultRepository) CountByCourseAndStudent(ctx context.Context, courseID, studentID uuid.UUID) (int, error) {
	args := m.Called(ctx, courseID, studentID)
	return args.Int(0), args.Error(1)
}

type EnrollmentRepository struct {
	mock.Mock
}

func (m *EnrollmentRepository) Create(ctx context.Context, input *model.RepositoryCreateEnrollmentInput) (*model.Enrollment, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Enrollment), args.Error(1)
}

func (m *EnrollmentRepository) Exists(ctx context.Context, studentID, courseID uuid.UUID) (bool, error) {
	args := m.Called(ctx, studentID, courseID)
	return args.Bool(0), args.Error(1)
}

func (m *EnrollmentRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*model.Enrollment, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Enrollment), args.Error(1)
}

func (m *EnrollmentRepository) ListCourseIDsByStudent(ctx context.Context, studentID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

type EventProducer struct {
	mock.Mock
}

func (m *EventProducer) Send(ctx context.Context, topic string, message interface{}) error {
	args := m.Called(ctx, topic, message)
	return args.Error(0)
}

type CertificateRenderer struct {
	mock.Mock
}

func (m *CertificateRenderer) Render(data service.CertificateData) ([]byte, error) {
	args := m.Called(data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/farhananowshin/SkillBridge/internal/errdefs"
	"github.com/farhananowshin/SkillBridge/internal/model"
)

// CatalogService manages the course tree: courses with their lessons,
// and everything only a mentor may touch.
type CatalogService struct {
	courseRepo CourseRepository
	lessonRepo LessonRepository
	userRepo   UserRepository
	enrollRepo EnrollmentRepository
}

func NewCatalogService(
	courseRepo CourseRepository,
	lessonRepo LessonRepository,
	userRepo UserRepository,
	enrollRepo EnrollmentRepository,
) *CatalogService {
	return &CatalogService{
		courseRepo: courseRepo,
		lessonRepo: lessonRepo,
		userRepo:   userRepo,
		enrollRepo: enrollRepo,
	}
}

func (s *CatalogService) CreateCourse(ctx context.Context, input *model.CreateCourseInput) (*model.Course, error) {
	userID, role, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	if role != model.RoleMentor && role != model.RoleAdmin {
		return nil, errdefs.ErrPermissionDenied
	}

	mentorID := input.MentorId
	if mentorID == uuid.Nil {
		mentorID = userID
	}
	// A mentor may only create courses under their own name; admins
	// may assign any mentor.
	if role == model.RoleMentor && mentorID != userID {
		return nil, errdefs.ErrPermissionDenied
	}

	mentor, err := s.userRepo.GetUser(ctx, mentorID)
	if err != nil {
		return nil, err
	}
	if mentor.Role != model.RoleMentor {
		return nil, errdefs.ErrValidation
	}

	if input.Title == "" {
		return nil, errdefs.ErrValidation
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	course := &model.Course{
		Id:          id,
		Title:       input.Title,
		Description: input.Description,
		MentorId:    mentorID,
		ImageFileId: input.ImageFileId,
		CreatedAt:   time.Now(),
	}
	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// ListCourses is open to everyone, signed in or not.
func (s *CatalogService) ListCourses(ctx context.Context, filter *model.CourseFilter) ([]*model.Course, error) {
	return s.courseRepo.List(ctx, filter)
}

func (s *CatalogService) GetCourse(ctx context.Context, id uuid.UUID) (*model.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

func (s *CatalogService) UpdateCourse(ctx context.Context, id uuid.UUID, input *model.UpdateCourseInput) (*model.Course, error) {
	if err := s.requireCourseMentor(ctx, id); err != nil {
		return nil, err
	}
	return s.courseRepo.Update(ctx, id, input)
}

// DeleteCourse removes the course and, through schema cascade, its
// whole ownership tree of lessons, assignments and quizzes.
func (s *CatalogService) DeleteCourse(ctx context.Context, id uuid.UUID) error {
	if err := s.requireCourseMentor(ctx, id); err != nil {
		return err
	}
	return s.courseRepo.Delete(ctx, id)
}

func (s *CatalogService) CreateLesson(ctx context.Context, input *model.CreateLessonInput) (*model.Lesson, error) {
	if err := s.requireCourseMentor(ctx, input.CourseId); err != nil {
		return nil, err
	}
	if input.Title == "" {
		return nil, errdefs.ErrValidation
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	var videoURL *string
	if input.VideoURL != nil {
		videoURL = NormalizeVideoURL(*input.VideoURL)
	}

	order := input.Order
	if order == 0 {
		order = 1
	}

	lesson := &model.Lesson{
		Id:       id,
		CourseId: input.CourseId,
		Title:    input.Title,
		VideoURL: videoURL,
		Content:  input.Content,
		Order:    order,
	}
	if err := s.lessonRepo.Create(ctx, lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}

func (s *CatalogService) UpdateLesson(ctx context.Context, id uuid.UUID, input *model.UpdateLessonInput) (*model.Lesson, error) {
	lesson, err := s.lessonRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.requireCourseMentor(ctx, lesson.CourseId); err != nil {
		return nil, err
	}

	// The stored URL is re-normalized on every save, whether or not
	// the caller touched it.
	current := lesson.VideoURL
	if input.VideoURL != nil {
		current = input.VideoURL
	}
	var videoURL *string
	if current != nil {
		videoURL = NormalizeVideoURL(*current)
	}

	return s.lessonRepo.Update(ctx, id, input, videoURL)
}

func (s *CatalogService) DeleteLesson(ctx context.Context, id uuid.UUID) error {
	lesson, err := s.lessonRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.requireCourseMentor(ctx, lesson.CourseId); err != nil {
		return err
	}
	return s.lessonRepo.Delete(ctx, id)
}

// LessonPage is a lesson plus its neighbours for prev/next navigation.
type LessonPage struct {
	Lesson   *model.Lesson
	Previous *model.Lesson
	Next     *model.Lesson
}

// GetLessonPage returns the lesson with its adjacent lessons. Only
// enrolled students (or the course's mentor, or an admin) may read
// lesson content.
func (s *CatalogService) GetLessonPage(ctx context.Context, courseID, lessonID uuid.UUID) (*LessonPage, error) {
	userID, role, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	lesson, err := s.lessonRepo.GetByID(ctx, lessonID)
	if err != nil {
		return nil, err
	}
	if lesson.CourseId != course.Id {
		return nil, errdefs.ErrNotFound
	}

	allowed := role == model.RoleAdmin || (role == model.RoleMentor && course.MentorId == userID)
	if !allowed {
		enrolled, err := s.enrollRepo.Exists(ctx, userID, courseID)
		if err != nil {
			return nil, err
		}
		if !enrolled {
			return nil, errdefs.ErrPermissionDenied
		}
	}

	previous, err := s.lessonRepo.Previous(ctx, courseID, lesson.Order)
	if err != nil {
		return nil, err
	}
	next, err := s.lessonRepo.Next(ctx, courseID, lesson.Order)
	if err != nil {
		return nil, err
	}

	return &LessonPage{Lesson: lesson, Previous: previous, Next: next}, nil
}

func (s *CatalogService) ListLessons(ctx context.Context, courseID uuid.UUID) ([]*model.Lesson, error) {
	return s.lessonRepo.ListByCourse(ctx, courseID)
}

// requireCourseMentor allows the course's own mentor and admins.
func (s *CatalogService) requireCourseMentor(ctx context.Context, courseID uuid.UUID) error {
	userID, role, err := currentUser(ctx)
	if err != nil {
		return err
	}
	if role == model.RoleAdmin {
		return nil
	}
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return err
	}
	if course.MentorId != userID {
		return errdefs.ErrPermissionDenied
	}
	return nil
}

package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/farhananowshin/SkillBridge/internal/errdefs"
	"github.com/farhananowshin/SkillBridge/internal/logging"
	"github.com/farhananowshin/SkillBridge/internal/model"
)

const TopicCourseEnrolled = "course.enrolled"

type EnrollmentService struct {
	enrollRepo EnrollmentRepository
	courseRepo CourseRepository
	events     EventProducer
}

func NewEnrollmentService(
	enrollRepo EnrollmentRepository,
	courseRepo CourseRepository,
	events EventProducer,
) *EnrollmentService {
	return &EnrollmentService{
		enrollRepo: enrollRepo,
		courseRepo: courseRepo,
		events:     events,
	}
}

// Enroll joins the calling student to the course. Uniqueness of
// (student, course) is enforced by the storage constraint, not by a
// prior read: a duplicate, concurrent or not, comes back as
// ErrAlreadyExists, which callers present as "already enrolled".
func (s *EnrollmentService) Enroll(ctx context.Context, courseID uuid.UUID) (*model.Enrollment, error) {
	userID, role, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	if role != model.RoleStudent {
		return nil, errdefs.ErrPermissionDenied
	}

	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	enrollment, err := s.enrollRepo.Create(ctx, &model.RepositoryCreateEnrollmentInput{
		Id:        id,
		StudentId: userID,
		CourseId:  course.Id,
	})
	if err != nil {
		return nil, err
	}

	s.emit(ctx, TopicCourseEnrolled, map[string]interface{}{
		"enrollment_id": enrollment.Id,
		"student_id":    enrollment.StudentId,
		"course_id":     enrollment.CourseId,
		"course_title":  course.Title,
	})

	return enrollment, nil
}

func (s *EnrollmentService) IsEnrolled(ctx context.Context, studentID, courseID uuid.UUID) (bool, error) {
	return s.enrollRepo.Exists(ctx, studentID, courseID)
}

func (s *EnrollmentService) ListMine(ctx context.Context) ([]*model.Enrollment, error) {
	userID, _, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	return s.enrollRepo.ListByStudent(ctx, userID)
}

func (s *EnrollmentService) ListMyCourseIDs(ctx context.Context) ([]uuid.UUID, error) {
	userID, ok := identityOptional(ctx)
	if !ok {
		return nil, nil
	}
	return s.enrollRepo.ListCourseIDsByStudent(ctx, userID)
}

func (s *EnrollmentService) emit(ctx context.Context, topic string, message interface{}) {
	if s.events == nil {
		return
	}
	if err := s.events.Send(ctx, topic, message); err != nil {
		if logger, ok := logging.GetFromContext(ctx); ok {
			logger.Error(ctx, "failed to send event", zap.String("topic", topic), zap.Error(err))
		}
	}
}

// identityOptional is for endpoints that work both signed-in and
// anonymous, like the catalog listing marking enrolled courses.
func identityOptional(ctx context.Context) (uuid.UUID, bool) {
	id, _, err := currentUser(ctx)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

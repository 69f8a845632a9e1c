package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/farhananowshin/SkillBridge/internal/errdefs"
	"github.com/farhananowshin/SkillBridge/internal/logging"
	"github.com/farhananowshin/SkillBridge/internal/model"
)

const TopicSubmissionGraded = "submission.graded"

type SubmissionService struct {
	submissionRepo SubmissionRepository
	assignmentRepo AssignmentRepository
	courseRepo     CourseRepository
	enrollRepo     EnrollmentRepository
	events         EventProducer
}

func NewSubmissionService(
	submissionRepo SubmissionRepository,
	assignmentRepo AssignmentRepository,
	courseRepo CourseRepository,
	enrollRepo EnrollmentRepository,
	events EventProducer,
) *SubmissionService {
	return &SubmissionService{
		submissionRepo: submissionRepo,
		assignmentRepo: assignmentRepo,
		courseRepo:     courseRepo,
		enrollRepo:     enrollRepo,
		events:         events,
	}
}

func (s *SubmissionService) CreateAssignment(ctx context.Context, input *model.CreateAssignmentInput) (*model.Assignment, error) {
	if err := s.requireCourseMentor(ctx, input.CourseId); err != nil {
		return nil, err
	}
	if input.Title == "" || input.DueDate.IsZero() {
		return nil, errdefs.ErrValidation
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	assignment := &model.Assignment{
		Id:          id,
		CourseId:    input.CourseId,
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
	}
	if err := s.assignmentRepo.Create(ctx, assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

func (s *SubmissionService) GetAssignment(ctx context.Context, id uuid.UUID) (*model.Assignment, error) {
	return s.assignmentRepo.GetByID(ctx, id)
}

func (s *SubmissionService) ListAssignments(ctx context.Context, courseID uuid.UUID) ([]*model.Assignment, error) {
	return s.assignmentRepo.ListByCourse(ctx, courseID)
}

func (s *SubmissionService) DeleteAssignment(ctx context.Context, id uuid.UUID) error {
	assignment, err := s.assignmentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.requireCourseMentor(ctx, assignment.CourseId); err != nil {
		return err
	}
	return s.assignmentRepo.Delete(ctx, id)
}

// Submit records the calling student's submission for the assignment.
// There is at most one current submission per (assignment, student):
// an existing one is looked up and overwritten, so re-submitting
// replaces the file and refreshes the timestamp instead of adding a
// second row.
func (s *SubmissionService) Submit(ctx context.Context, input *model.SubmitAssignmentInput) (*model.Submission, error) {
	userID, role, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	if role != model.RoleStudent {
		return nil, errdefs.ErrPermissionDenied
	}

	assignment, err := s.assignmentRepo.GetByID(ctx, input.AssignmentId)
	if err != nil {
		return nil, err
	}

	enrolled, err := s.enrollRepo.Exists(ctx, userID, assignment.CourseId)
	if err != nil {
		return nil, err
	}
	if !enrolled {
		return nil, errdefs.ErrPermissionDenied
	}

	existing, err := s.submissionRepo.GetByAssignmentAndStudent(ctx, assignment.Id, userID)
	if err != nil && !errors.Is(err, errdefs.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return s.submissionRepo.Replace(ctx, existing.Id, input.FileId)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	return s.submissionRepo.Create(ctx, &model.RepositoryCreateSubmissionInput{
		Id:           id,
		AssignmentId: assignment.Id,
		StudentId:    userID,
		FileId:       input.FileId,
	})
}

// GetMySubmission returns the caller's current submission for the
// assignment, or ErrNotFound if they have not submitted.
func (s *SubmissionService) GetMySubmission(ctx context.Context, assignmentID uuid.UUID) (*model.Submission, error) {
	userID, _, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	return s.submissionRepo.GetByAssignmentAndStudent(ctx, assignmentID, userID)
}

// ListSubmissions is the grading view: only the course's mentor (or
// an admin) may list everyone's submissions.
func (s *SubmissionService) ListSubmissions(ctx context.Context, assignmentID uuid.UUID) ([]*model.Submission, error) {
	assignment, err := s.assignmentRepo.GetByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	if err := s.requireCourseMentor(ctx, assignment.CourseId); err != nil {
		return nil, err
	}
	return s.submissionRepo.ListByAssignment(ctx, assignmentID)
}

// Grade sets the marks on a submission. Restricted to the mentor of
// the course the submission's assignment belongs to.
func (s *SubmissionService) Grade(ctx context.Context, input *model.GradeSubmissionInput) (*model.Submission, error) {
	submission, err := s.submissionRepo.GetByID(ctx, input.SubmissionId)
	if err != nil {
		return nil, err
	}
	assignment, err := s.assignmentRepo.GetByID(ctx, submission.AssignmentId)
	if err != nil {
		return nil, err
	}
	if err := s.requireCourseMentor(ctx, assignment.CourseId); err != nil {
		return nil, err
	}
	if input.Marks < 0 {
		return nil, errdefs.ErrValidation
	}

	graded, err := s.submissionRepo.SetMarks(ctx, submission.Id, input.Marks)
	if err != nil {
		return nil, err
	}

	s.emit(ctx, TopicSubmissionGraded, map[string]interface{}{
		"submission_id": graded.Id,
		"assignment_id": graded.AssignmentId,
		"student_id":    graded.StudentId,
		"marks":         input.Marks,
		"graded_at":     time.Now(),
	})

	return graded, nil
}

func (s *SubmissionService) requireCourseMentor(ctx context.Context, courseID uuid.UUID) error {
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

func (s *SubmissionService) emit(ctx context.Context, topic string, message interface{}) {
	if s.events == nil {
		return
	}
	if err := s.events.Send(ctx, topic, message); err != nil {
		if logger, ok := logging.GetFromContext(ctx); ok {
			logger.Error(ctx, "failed to send event", zap.String("topic", topic), zap.Error(err))
		}
	}
}

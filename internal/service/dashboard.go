package service

import (
	"context"

	"github.com/farhananowshin/SkillBridge/internal/errdefs"
	"github.com/farhananowshin/SkillBridge/internal/model"
)

// Dashboard aggregates a student's activity for the home view.
type Dashboard struct {
	Student     *model.User
	Enrollments []*model.Enrollment
	Submissions []*model.Submission
	QuizResults []*model.QuizResult
}

type DashboardService struct {
	userRepo       UserRepository
	enrollRepo     EnrollmentRepository
	submissionRepo SubmissionRepository
	resultRepo     QuizResultRepository
}

func NewDashboardService(
	userRepo UserRepository,
	enrollRepo EnrollmentRepository,
	submissionRepo SubmissionRepository,
	resultRepo QuizResultRepository,
) *DashboardService {
	return &DashboardService{
		userRepo:       userRepo,
		enrollRepo:     enrollRepo,
		submissionRepo: submissionRepo,
		resultRepo:     resultRepo,
	}
}

func (s *DashboardService) GetDashboard(ctx context.Context) (*Dashboard, error) {
	userID, role, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	if role != model.RoleStudent {
		return nil, errdefs.ErrPermissionDenied
	}

	student, err := s.userRepo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	enrollments, err := s.enrollRepo.ListByStudent(ctx, userID)
	if err != nil {
		return nil, err
	}
	submissions, err := s.submissionRepo.ListByStudent(ctx, userID)
	if err != nil {
		return nil, err
	}
	results, err := s.resultRepo.ListByStudent(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Student:     student,
		Enrollments: enrollments,
		Submissions: submissions,
		QuizResults: results,
	}, nil
}

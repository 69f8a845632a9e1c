package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/farhananowshin/SkillBridge/internal/errdefs"
	"github.com/farhananowshin/SkillBridge/internal/model"
)

// Reasons a certificate is withheld. Checked in this order; the first
// failing check wins.
const (
	ReasonNotEnrolled           = "not_enrolled"
	ReasonAssignmentsIncomplete = "assignments_incomplete"
	ReasonQuizzesIncomplete     = "quizzes_incomplete"
)

// Eligibility is the outcome of the completion check for one
// (student, course) pair. Reason is empty when Eligible is true.
type Eligibility struct {
	Eligible bool
	Reason   string
}

type CertificateService struct {
	courseRepo     CourseRepository
	userRepo       UserRepository
	enrollRepo     EnrollmentRepository
	assignmentRepo AssignmentRepository
	submissionRepo SubmissionRepository
	quizRepo       QuizRepository
	resultRepo     QuizResultRepository
	renderer       CertificateRenderer
}

func NewCertificateService(
	courseRepo CourseRepository,
	userRepo UserRepository,
	enrollRepo EnrollmentRepository,
	assignmentRepo AssignmentRepository,
	submissionRepo SubmissionRepository,
	quizRepo QuizRepository,
	resultRepo QuizResultRepository,
	renderer CertificateRenderer,
) *CertificateService {
	return &CertificateService{
		courseRepo:     courseRepo,
		userRepo:       userRepo,
		enrollRepo:     enrollRepo,
		assignmentRepo: assignmentRepo,
		submissionRepo: submissionRepo,
		quizRepo:       quizRepo,
		resultRepo:     resultRepo,
		renderer:       renderer,
	}
}

// Evaluate decides whether the calling student has completed the
// course. Completion is purely count-based: at least one submission
// per assignment's worth of submissions, at least one result per
// quiz's worth of results. Grades and scores never enter into it; an
// ungraded submission and a zero-score attempt both count. A course
// with no assignments and no quizzes is complete the moment the
// student enrolls.
func (s *CertificateService) Evaluate(ctx context.Context, courseID uuid.UUID) (*Eligibility, error) {
	userID, role, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	if role != model.RoleStudent {
		return nil, errdefs.ErrPermissionDenied
	}

	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		return nil, err
	}

	enrolled, err := s.enrollRepo.Exists(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	if !enrolled {
		return &Eligibility{Reason: ReasonNotEnrolled}, nil
	}

	assignments, err := s.assignmentRepo.CountByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if assignments > 0 {
		submissions, err := s.submissionRepo.CountByCourseAndStudent(ctx, courseID, userID)
		if err != nil {
			return nil, err
		}
		if submissions < assignments {
			return &Eligibility{Reason: ReasonAssignmentsIncomplete}, nil
		}
	}

	quizzes, err := s.quizRepo.CountByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if quizzes > 0 {
		results, err := s.resultRepo.CountByCourseAndStudent(ctx, courseID, userID)
		if err != nil {
			return nil, err
		}
		if results < quizzes {
			return &Eligibility{Reason: ReasonQuizzesIncomplete}, nil
		}
	}

	return &Eligibility{Eligible: true}, nil
}

// Issue renders the certificate document for the calling student.
// Nothing is stored: a later call re-renders from scratch, so the
// same course can yield documents differing in the printed date.
func (s *CertificateService) Issue(ctx context.Context, courseID uuid.UUID) ([]byte, error) {
	eligibility, err := s.Evaluate(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if !eligibility.Eligible {
		return nil, errdefs.ErrPermissionDenied
	}

	userID, _, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	student, err := s.userRepo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	mentor, err := s.userRepo.GetUser(ctx, course.MentorId)
	if err != nil {
		return nil, err
	}

	return s.renderer.Render(CertificateData{
		StudentName:    student.FullName(),
		CourseTitle:    course.Title,
		MentorName:     mentor.FullName(),
		CompletionDate: time.Now(),
	})
}

package service_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/farhananowshin/SkillBridge/internal/errdefs"
	"github.com/farhananowshin/SkillBridge/internal/model"
	"github.com/farhananowshin/SkillBridge/internal/service"
	"github.com/farhananowshin/SkillBridge/internal/service/mocks"
)

type certificateFixture struct {
	courseRepo     *mocks.CourseRepository
	userRepo       *mocks.UserRepository
	enrollRepo     *mocks.EnrollmentRepository
	assignmentRepo *mocks.AssignmentRepository
	submissionRepo *mocks.SubmissionRepository
	quizRepo       *mocks.QuizRepository
	resultRepo     *mocks.QuizResultRepository
	renderer       *mocks.CertificateRenderer
	svc            *service.CertificateService
}

func newCertificateFixture() *certificateFixture {
	f := &certificateFixture{
		courseRepo:     new(mocks.CourseRepository),
		userRepo:       new(mocks.UserRepository),
		enrollRepo:     new(mocks.EnrollmentRepository),
		assignmentRepo: new(mocks.AssignmentRepository),
		submissionRepo: new(mocks.SubmissionRepository),
		quizRepo:       new(mocks.QuizRepository),
		resultRepo:     new(mocks.QuizResultRepository),
		renderer:       new(mocks.CertificateRenderer),
	}
	f.svc = service.NewCertificateService(
		f.courseRepo, f.userRepo, f.enrollRepo,
		f.assignmentRepo, f.submissionRepo, f.quizRepo, f.resultRepo,
		f.renderer,
	)
	return f
}

func TestEvaluate_CompletionMatrix(t *testing.T) {
	tests := []struct {
		name         string
		enrolled     bool
		assignments  int
		submissions  int
		quizzes      int
		results      int
		wantEligible bool
		wantReason   string
	}{
		{
			name:       "not enrolled",
			enrolled:   false,
			wantReason: service.ReasonNotEnrolled,
		},
		{
			// Two assignments, one submitted: assignments block first
			// even though the quiz is also outstanding.
			name:        "assignments incomplete",
			enrolled:    true,
			assignments: 2, submissions: 1,
			quizzes: 1, results: 0,
			wantReason: service.ReasonAssignmentsIncomplete,
		},
		{
			name:     "quizzes incomplete",
			enrolled: true,
			assignments: 2, submissions: 2,
			quizzes: 1, results: 0,
			wantReason: service.ReasonQuizzesIncomplete,
		},
		{
			name:     "all complete",
			enrolled: true,
			assignments: 2, submissions: 2,
			quizzes: 1, results: 1,
			wantEligible: true,
		},
		{
			name:         "empty course is complete on enrollment",
			enrolled:     true,
			wantEligible: true,
		},
		{
			name:     "quizzes only",
			enrolled: true,
			quizzes:  2, results: 2,
			wantEligible: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCertificateFixture()
			studentID := uuid.New()
			courseID := uuid.New()

			f.courseRepo.On("GetByID", mock.Anything, courseID).
				Return(&model.Course{Id: courseID}, nil)
			f.enrollRepo.On("Exists", mock.Anything, studentID, courseID).
				Return(tt.enrolled, nil)
			f.assignmentRepo.On("CountByCourse", mock.Anything, courseID).
				Return(tt.assignments, nil)
			f.submissionRepo.On("CountByCourseAndStudent", mock.Anything, courseID, studentID).
				Return(tt.submissions, nil)
			f.quizRepo.On("CountByCourse", mock.Anything, courseID).
				Return(tt.quizzes, nil)
			f.resultRepo.On("CountByCourseAndStudent", mock.Anything, courseID, studentID).
				Return(tt.results, nil)

			eligibility, err := f.svc.Evaluate(identityCtx(studentID, model.RoleStudent), courseID)

			require.NoError(t, err)
			assert.Equal(t, tt.wantEligible, eligibility.Eligible)
			assert.Equal(t, tt.wantReason, eligibility.Reason)
		})
	}
}

func TestEvaluate_MentorRejected(t *testing.T) {
	f := newCertificateFixture()

	eligibility, err := f.svc.Evaluate(identityCtx(uuid.New(), model.RoleMentor), uuid.New())

	assert.Nil(t, eligibility)
	assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
}

func TestIssue_RendersWithNamesAndCourseTitle(t *testing.T) {
	f := newCertificateFixture()

	studentID := uuid.New()
	mentorID := uuid.New()
	courseID := uuid.New()

	f.courseRepo.On("GetByID", mock.Anything, courseID).
		Return(&model.Course{Id: courseID, Title: "Go Fundamentals", MentorId: mentorID}, nil)
	f.enrollRepo.On("Exists", mock.Anything, studentID, courseID).Return(true, nil)
	f.assignmentRepo.On("CountByCourse", mock.Anything, courseID).Return(0, nil)
	f.quizRepo.On("CountByCourse", mock.Anything, courseID).Return(0, nil)
	f.userRepo.On("GetUser", mock.Anything, studentID).
		Return(&model.User{Id: studentID, FirstName: "Nadia", LastName: "Rahman"}, nil)
	f.userRepo.On("GetUser", mock.Anything, mentorID).
		Return(&model.User{Id: mentorID, FirstName: "Imran", LastName: "Hossain"}, nil)
	f.renderer.On("Render", mock.MatchedBy(func(data service.CertificateData) bool {
		return data.StudentName == "Nadia Rahman" &&
			data.CourseTitle == "Go Fundamentals" &&
			data.MentorName == "Imran Hossain"
	})).Return([]byte("png-bytes"), nil)

	document, err := f.svc.Issue(identityCtx(studentID, model.RoleStudent), courseID)

	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), document)
	f.renderer.AssertExpectations(t)
}

func TestIssue_IneligibleStudentRejected(t *testing.T) {
	f := newCertificateFixture()

	studentID := uuid.New()
	courseID := uuid.New()

	f.courseRepo.On("GetByID", mock.Anything, courseID).
		Return(&model.Course{Id: courseID}, nil)
	f.enrollRepo.On("Exists", mock.Anything, studentID, courseID).Return(true, nil)
	f.assignmentRepo.On("CountByCourse", mock.Anything, courseID).Return(1, nil)
	f.submissionRepo.On("CountByCourseAndStudent", mock.Anything, courseID, studentID).Return(0, nil)

	document, err := f.svc.Issue(identityCtx(studentID, model.RoleStudent), courseID)

	assert.Nil(t, document)
	assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
	f.renderer.AssertNotCalled(t, "Render", mock.Anything)
}

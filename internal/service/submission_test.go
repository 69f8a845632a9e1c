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

type submissionFixture struct {
	submissionRepo *mocks.SubmissionRepository
	assignmentRepo *mocks.AssignmentRepository
	courseRepo     *mocks.CourseRepository
	enrollRepo     *mocks.EnrollmentRepository
	events         *mocks.EventProducer
	svc            *service.SubmissionService
}

func newSubmissionFixture() *submissionFixture {
	f := &submissionFixture{
		submissionRepo: new(mocks.SubmissionRepository),
		assignmentRepo: new(mocks.AssignmentRepository),
		courseRepo:     new(mocks.CourseRepository),
		enrollRepo:     new(mocks.EnrollmentRepository),
		events:         new(mocks.EventProducer),
	}
	f.svc = service.NewSubmissionService(f.submissionRepo, f.assignmentRepo, f.courseRepo, f.enrollRepo, f.events)
	return f
}

func TestSubmit_FirstSubmissionCreates(t *testing.T) {
	f := newSubmissionFixture()

	studentID := uuid.New()
	courseID := uuid.New()
	assignmentID := uuid.New()
	fileID := uuid.New()

	f.assignmentRepo.On("GetByID", mock.Anything, assignmentID).
		Return(&model.Assignment{Id: assignmentID, CourseId: courseID}, nil)
	f.enrollRepo.On("Exists", mock.Anything, studentID, courseID).Return(true, nil)
	f.submissionRepo.On("GetByAssignmentAndStudent", mock.Anything, assignmentID, studentID).
		Return(nil, errdefs.ErrNotFound)
	f.submissionRepo.On("Create", mock.Anything, mock.MatchedBy(func(in *model.RepositoryCreateSubmissionInput) bool {
		return in.AssignmentId == assignmentID && in.StudentId == studentID && *in.FileId == fileID
	})).Return(&model.Submission{Id: uuid.New(), AssignmentId: assignmentID, StudentId: studentID}, nil)

	submission, err := f.svc.Submit(identityCtx(studentID, model.RoleStudent), &model.SubmitAssignmentInput{
		AssignmentId: assignmentID,
		FileId:       &fileID,
	})

	require.NoError(t, err)
	assert.Equal(t, assignmentID, submission.AssignmentId)
	f.submissionRepo.AssertNotCalled(t, "Replace", mock.Anything, mock.Anything, mock.Anything)
}

// Resubmission overwrites the existing row instead of inserting a
// second one, so a student always has at most one submission per
// assignment.
func TestSubmit_ResubmissionReplaces(t *testing.T) {
	f := newSubmissionFixture()

	studentID := uuid.New()
	courseID := uuid.New()
	assignmentID := uuid.New()
	existingID := uuid.New()
	newFileID := uuid.New()

	f.assignmentRepo.On("GetByID", mock.Anything, assignmentID).
		Return(&model.Assignment{Id: assignmentID, CourseId: courseID}, nil)
	f.enrollRepo.On("Exists", mock.Anything, studentID, courseID).Return(true, nil)
	f.submissionRepo.On("GetByAssignmentAndStudent", mock.Anything, assignmentID, studentID).
		Return(&model.Submission{Id: existingID, AssignmentId: assignmentID, StudentId: studentID}, nil)
	f.submissionRepo.On("Replace", mock.Anything, existingID, &newFileID).
		Return(&model.Submission{Id: existingID, AssignmentId: assignmentID, StudentId: studentID, FileId: &newFileID}, nil)

	submission, err := f.svc.Submit(identityCtx(studentID, model.RoleStudent), &model.SubmitAssignmentInput{
		AssignmentId: assignmentID,
		FileId:       &newFileID,
	})

	require.NoError(t, err)
	assert.Equal(t, existingID, submission.Id)
	f.submissionRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmit_NotEnrolled(t *testing.T) {
	f := newSubmissionFixture()

	studentID := uuid.New()
	courseID := uuid.New()
	assignmentID := uuid.New()

	f.assignmentRepo.On("GetByID", mock.Anything, assignmentID).
		Return(&model.Assignment{Id: assignmentID, CourseId: courseID}, nil)
	f.enrollRepo.On("Exists", mock.Anything, studentID, courseID).Return(false, nil)

	submission, err := f.svc.Submit(identityCtx(studentID, model.RoleStudent), &model.SubmitAssignmentInput{
		AssignmentId: assignmentID,
	})

	assert.Nil(t, submission)
	assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
}

func TestGrade_ByCourseMentor(t *testing.T) {
	f := newSubmissionFixture()

	mentorID := uuid.New()
	courseID := uuid.New()
	assignmentID := uuid.New()
	submissionID := uuid.New()
	marks := int32(8)

	f.submissionRepo.On("GetByID", mock.Anything, submissionID).
		Return(&model.Submission{Id: submissionID, AssignmentId: assignmentID, StudentId: uuid.New()}, nil)
	f.assignmentRepo.On("GetByID", mock.Anything, assignmentID).
		Return(&model.Assignment{Id: assignmentID, CourseId: courseID}, nil)
	f.courseRepo.On("GetByID", mock.Anything, courseID).
		Return(&model.Course{Id: courseID, MentorId: mentorID}, nil)
	f.submissionRepo.On("SetMarks", mock.Anything, submissionID, marks).
		Return(&model.Submission{Id: submissionID, AssignmentId: assignmentID, Marks: &marks}, nil)
	f.events.On("Send", mock.Anything, service.TopicSubmissionGraded, mock.Anything).Return(nil)

	graded, err := f.svc.Grade(identityCtx(mentorID, model.RoleMentor), &model.GradeSubmissionInput{
		SubmissionId: submissionID,
		Marks:        marks,
	})

	require.NoError(t, err)
	assert.Equal(t, marks, *graded.Marks)
	f.events.AssertExpectations(t)
}

func TestGrade_OtherMentorRejected(t *testing.T) {
	f := newSubmissionFixture()

	courseID := uuid.New()
	assignmentID := uuid.New()
	submissionID := uuid.New()

	f.submissionRepo.On("GetByID", mock.Anything, submissionID).
		Return(&model.Submission{Id: submissionID, AssignmentId: assignmentID}, nil)
	f.assignmentRepo.On("GetByID", mock.Anything, assignmentID).
		Return(&model.Assignment{Id: assignmentID, CourseId: courseID}, nil)
	f.courseRepo.On("GetByID", mock.Anything, courseID).
		Return(&model.Course{Id: courseID, MentorId: uuid.New()}, nil)

	graded, err := f.svc.Grade(identityCtx(uuid.New(), model.RoleMentor), &model.GradeSubmissionInput{
		SubmissionId: submissionID,
		Marks:        5,
	})

	assert.Nil(t, graded)
	assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
	f.submissionRepo.AssertNotCalled(t, "SetMarks", mock.Anything, mock.Anything, mock.Anything)
}

func TestGrade_NegativeMarksRejected(t *testing.T) {
	f := newSubmissionFixture()

	mentorID := uuid.New()
	courseID := uuid.New()
	assignmentID := uuid.New()
	submissionID := uuid.New()

	f.submissionRepo.On("GetByID", mock.Anything, submissionID).
		Return(&model.Submission{Id: submissionID, AssignmentId: assignmentID}, nil)
	f.assignmentRepo.On("GetByID", mock.Anything, assignmentID).
		Return(&model.Assignment{Id: assignmentID, CourseId: courseID}, nil)
	f.courseRepo.On("GetByID", mock.Anything, courseID).
		Return(&model.Course{Id: courseID, MentorId: mentorID}, nil)

	graded, err := f.svc.Grade(identityCtx(mentorID, model.RoleMentor), &model.GradeSubmissionInput{
		SubmissionId: submissionID,
		Marks:        -1,
	})

	assert.Nil(t, graded)
	assert.ErrorIs(t, err, errdefs.ErrValidation)
}

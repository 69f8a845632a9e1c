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

func TestEnroll_Success(t *testing.T) {
	enrollRepo := new(mocks.EnrollmentRepository)
	courseRepo := new(mocks.CourseRepository)
	events := new(mocks.EventProducer)
	svc := service.NewEnrollmentService(enrollRepo, courseRepo, events)

	studentID := uuid.New()
	courseID := uuid.New()

	courseRepo.On("GetByID", mock.Anything, courseID).
		Return(&model.Course{Id: courseID, Title: "Databases"}, nil)
	enrollRepo.On("Create", mock.Anything, mock.MatchedBy(func(in *model.RepositoryCreateEnrollmentInput) bool {
		return in.StudentId == studentID && in.CourseId == courseID
	})).Return(&model.Enrollment{Id: uuid.New(), StudentId: studentID, CourseId: courseID}, nil)
	events.On("Send", mock.Anything, service.TopicCourseEnrolled, mock.Anything).Return(nil)

	enrollment, err := svc.Enroll(identityCtx(studentID, model.RoleStudent), courseID)

	require.NoError(t, err)
	assert.Equal(t, studentID, enrollment.StudentId)
	events.AssertCalled(t, "Send", mock.Anything, service.TopicCourseEnrolled, mock.Anything)
}

// Duplicate enrollment surfaces the storage constraint violation as
// ErrAlreadyExists; there is no read-before-write check to race past.
func TestEnroll_Duplicate(t *testing.T) {
	enrollRepo := new(mocks.EnrollmentRepository)
	courseRepo := new(mocks.CourseRepository)
	events := new(mocks.EventProducer)
	svc := service.NewEnrollmentService(enrollRepo, courseRepo, events)

	courseID := uuid.New()
	courseRepo.On("GetByID", mock.Anything, courseID).
		Return(&model.Course{Id: courseID}, nil)
	enrollRepo.On("Create", mock.Anything, mock.Anything).
		Return(nil, errdefs.ErrAlreadyExists)

	enrollment, err := svc.Enroll(identityCtx(uuid.New(), model.RoleStudent), courseID)

	assert.Nil(t, enrollment)
	assert.ErrorIs(t, err, errdefs.ErrAlreadyExists)
	events.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestEnroll_MentorRejected(t *testing.T) {
	svc := service.NewEnrollmentService(new(mocks.EnrollmentRepository), new(mocks.CourseRepository), nil)

	enrollment, err := svc.Enroll(identityCtx(uuid.New(), model.RoleMentor), uuid.New())

	assert.Nil(t, enrollment)
	assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
}

func TestEnroll_UnknownCourse(t *testing.T) {
	enrollRepo := new(mocks.EnrollmentRepository)
	courseRepo := new(mocks.CourseRepository)
	svc := service.NewEnrollmentService(enrollRepo, courseRepo, nil)

	courseID := uuid.New()
	courseRepo.On("GetByID", mock.Anything, courseID).Return(nil, errdefs.ErrNotFound)

	enrollment, err := svc.Enroll(identityCtx(uuid.New(), model.RoleStudent), courseID)

	assert.Nil(t, enrollment)
	assert.ErrorIs(t, err, errdefs.ErrNotFound)
	enrollRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

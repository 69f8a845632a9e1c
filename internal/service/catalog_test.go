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

type catalogFixture struct {
	courseRepo *mocks.CourseRepository
	lessonRepo *mocks.LessonRepository
	userRepo   *mocks.UserRepository
	enrollRepo *mocks.EnrollmentRepository
	svc        *service.CatalogService
}

func newCatalogFixture() *catalogFixture {
	f := &catalogFixture{
		courseRepo: new(mocks.CourseRepository),
		lessonRepo: new(mocks.LessonRepository),
		userRepo:   new(mocks.UserRepository),
		enrollRepo: new(mocks.EnrollmentRepository),
	}
	f.svc = service.NewCatalogService(f.courseRepo, f.lessonRepo, f.userRepo, f.enrollRepo)
	return f
}

func TestCreateLesson_NormalizesVideoURL(t *testing.T) {
	f := newCatalogFixture()

	mentorID := uuid.New()
	courseID := uuid.New()
	rawURL := "https://www.youtube.com/watch?v=dQw4w9WgXcQ"

	f.courseRepo.On("GetByID", mock.Anything, courseID).
		Return(&model.Course{Id: courseID, MentorId: mentorID}, nil)
	f.lessonRepo.On("Create", mock.Anything, mock.MatchedBy(func(l *model.Lesson) bool {
		return l.VideoURL != nil && *l.VideoURL == "https://www.youtube.com/embed/dQw4w9WgXcQ"
	})).Return(nil)

	lesson, err := f.svc.CreateLesson(identityCtx(mentorID, model.RoleMentor), &model.CreateLessonInput{
		CourseId: courseID,
		Title:    "Intro",
		VideoURL: &rawURL,
	})

	require.NoError(t, err)
	assert.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ", *lesson.VideoURL)
}

func TestGetLessonPage_MiddleLessonHasBothNeighbours(t *testing.T) {
	f := newCatalogFixture()

	studentID := uuid.New()
	courseID := uuid.New()
	first := &model.Lesson{Id: uuid.New(), CourseId: courseID, Order: 1}
	middle := &model.Lesson{Id: uuid.New(), CourseId: courseID, Order: 2}
	last := &model.Lesson{Id: uuid.New(), CourseId: courseID, Order: 3}

	f.courseRepo.On("GetByID", mock.Anything, courseID).
		Return(&model.Course{Id: courseID, MentorId: uuid.New()}, nil)
	f.lessonRepo.On("GetByID", mock.Anything, middle.Id).Return(middle, nil)
	f.enrollRepo.On("Exists", mock.Anything, studentID, courseID).Return(true, nil)
	f.lessonRepo.On("Previous", mock.Anything, courseID, int32(2)).Return(first, nil)
	f.lessonRepo.On("Next", mock.Anything, courseID, int32(2)).Return(last, nil)

	page, err := f.svc.GetLessonPage(identityCtx(studentID, model.RoleStudent), courseID, middle.Id)

	require.NoError(t, err)
	assert.Equal(t, middle, page.Lesson)
	assert.Equal(t, first, page.Previous)
	assert.Equal(t, last, page.Next)
}

func TestGetLessonPage_BoundaryLessonsHaveNilNeighbours(t *testing.T) {
	f := newCatalogFixture()

	studentID := uuid.New()
	courseID := uuid.New()
	only := &model.Lesson{Id: uuid.New(), CourseId: courseID, Order: 1}

	f.courseRepo.On("GetByID", mock.Anything, courseID).
		Return(&model.Course{Id: courseID, MentorId: uuid.New()}, nil)
	f.lessonRepo.On("GetByID", mock.Anything, only.Id).Return(only, nil)
	f.enrollRepo.On("Exists", mock.Anything, studentID, courseID).Return(true, nil)
	// Absent neighbours are nil, not errors.
	f.lessonRepo.On("Previous", mock.Anything, courseID, int32(1)).Return(nil, nil)
	f.lessonRepo.On("Next", mock.Anything, courseID, int32(1)).Return(nil, nil)

	page, err := f.svc.GetLessonPage(identityCtx(studentID, model.RoleStudent), courseID, only.Id)

	require.NoError(t, err)
	assert.Nil(t, page.Previous)
	assert.Nil(t, page.Next)
}

func TestGetLessonPage_NotEnrolled(t *testing.T) {
	f := newCatalogFixture()

	studentID := uuid.New()
	courseID := uuid.New()
	lesson := &model.Lesson{Id: uuid.New(), CourseId: courseID, Order: 1}

	f.courseRepo.On("GetByID", mock.Anything, courseID).
		Return(&model.Course{Id: courseID, MentorId: uuid.New()}, nil)
	f.lessonRepo.On("GetByID", mock.Anything, lesson.Id).Return(lesson, nil)
	f.enrollRepo.On("Exists", mock.Anything, studentID, courseID).Return(false, nil)

	page, err := f.svc.GetLessonPage(identityCtx(studentID, model.RoleStudent), courseID, lesson.Id)

	assert.Nil(t, page)
	assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
}

func TestGetLessonPage_LessonFromOtherCourse(t *testing.T) {
	f := newCatalogFixture()

	courseID := uuid.New()
	lesson := &model.Lesson{Id: uuid.New(), CourseId: uuid.New(), Order: 1}

	f.courseRepo.On("GetByID", mock.Anything, courseID).
		Return(&model.Course{Id: courseID}, nil)
	f.lessonRepo.On("GetByID", mock.Anything, lesson.Id).Return(lesson, nil)

	page, err := f.svc.GetLessonPage(identityCtx(uuid.New(), model.RoleStudent), courseID, lesson.Id)

	assert.Nil(t, page)
	assert.ErrorIs(t, err, errdefs.ErrNotFound)
}

func TestCreateCourse_MentorCanOnlyAssignSelf(t *testing.T) {
	f := newCatalogFixture()

	mentorID := uuid.New()

	course, err := f.svc.CreateCourse(identityCtx(mentorID, model.RoleMentor), &model.CreateCourseInput{
		Title:    "Networks",
		MentorId: uuid.New(),
	})

	assert.Nil(t, course)
	assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
	f.courseRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/farhananowshin/SkillBridge/internal/ctxdata"
	"github.com/farhananowshin/SkillBridge/internal/errdefs"
	"github.com/farhananowshin/SkillBridge/internal/model"
	"github.com/farhananowshin/SkillBridge/internal/service"
	"github.com/farhananowshin/SkillBridge/internal/service/mocks"
)

func identityCtx(userID uuid.UUID, role model.Role) context.Context {
	ctx := ctxdata.WithUserID(context.Background(), userID)
	return ctxdata.WithUserRole(ctx, role)
}

type quizFixture struct {
	quizRepo   *mocks.QuizRepository
	resultRepo *mocks.QuizResultRepository
	courseRepo *mocks.CourseRepository
	enrollRepo *mocks.EnrollmentRepository
	events     *mocks.EventProducer
	svc        *service.QuizService
}

func newQuizFixture() *quizFixture {
	f := &quizFixture{
		quizRepo:   new(mocks.QuizRepository),
		resultRepo: new(mocks.QuizResultRepository),
		courseRepo: new(mocks.CourseRepository),
		enrollRepo: new(mocks.EnrollmentRepository),
		events:     new(mocks.EventProducer),
	}
	f.svc = service.NewQuizService(f.quizRepo, f.resultRepo, f.courseRepo, f.enrollRepo, f.events)
	return f
}

func TestSubmitAnswers_ScoresOnePointPerCorrectChoice(t *testing.T) {
	f := newQuizFixture()

	studentID := uuid.New()
	quizID := uuid.New()
	courseID := uuid.New()
	q1 := &model.Question{Id: uuid.New(), QuizId: quizID, Text: "q1", Order: 1}
	q2 := &model.Question{Id: uuid.New(), QuizId: quizID, Text: "q2", Order: 2}
	correct := &model.Choice{Id: uuid.New(), QuestionId: q1.Id, Text: "right", IsCorrect: true}
	wrong := &model.Choice{Id: uuid.New(), QuestionId: q2.Id, Text: "wrong", IsCorrect: false}

	// TotalMarks is 10 but only correctness counts: one right and one
	// wrong answer out of two questions scores exactly 1.
	f.quizRepo.On("GetByID", mock.Anything, quizID).
		Return(&model.Quiz{Id: quizID, CourseId: courseID, TotalMarks: 10}, nil)
	f.enrollRepo.On("Exists", mock.Anything, studentID, courseID).Return(true, nil)
	f.resultRepo.On("GetByQuizAndStudent", mock.Anything, quizID, studentID).
		Return(nil, errdefs.ErrNotFound)
	f.quizRepo.On("ListQuestions", mock.Anything, quizID).
		Return([]*model.Question{q1, q2}, nil)
	f.quizRepo.On("GetChoice", mock.Anything, correct.Id).Return(correct, nil)
	f.quizRepo.On("GetChoice", mock.Anything, wrong.Id).Return(wrong, nil)
	f.resultRepo.On("Create", mock.Anything, mock.MatchedBy(func(in *model.RepositoryCreateQuizResultInput) bool {
		return in.QuizId == quizID && in.StudentId == studentID && in.Score == 1
	})).Return(&model.QuizResult{Id: uuid.New(), QuizId: quizID, StudentId: studentID, Score: 1}, nil)
	f.events.On("Send", mock.Anything, service.TopicQuizCompleted, mock.Anything).Return(nil)

	result, err := f.svc.SubmitAnswers(identityCtx(studentID, model.RoleStudent), &model.SubmitAnswersInput{
		QuizId: quizID,
		Answers: map[uuid.UUID]uuid.UUID{
			q1.Id: correct.Id,
			q2.Id: wrong.Id,
		},
	})

	require.NoError(t, err)
	assert.Equal(t, int32(1), result.Score)
	f.resultRepo.AssertExpectations(t)
}

func TestSubmitAnswers_UnansweredQuestionsScoreZero(t *testing.T) {
	f := newQuizFixture()

	studentID := uuid.New()
	quizID := uuid.New()
	courseID := uuid.New()
	q1 := &model.Question{Id: uuid.New(), QuizId: quizID}
	q2 := &model.Question{Id: uuid.New(), QuizId: quizID}

	f.quizRepo.On("GetByID", mock.Anything, quizID).
		Return(&model.Quiz{Id: quizID, CourseId: courseID}, nil)
	f.enrollRepo.On("Exists", mock.Anything, studentID, courseID).Return(true, nil)
	f.resultRepo.On("GetByQuizAndStudent", mock.Anything, quizID, studentID).
		Return(nil, errdefs.ErrNotFound)
	f.quizRepo.On("ListQuestions", mock.Anything, quizID).
		Return([]*model.Question{q1, q2}, nil)
	f.resultRepo.On("Create", mock.Anything, mock.MatchedBy(func(in *model.RepositoryCreateQuizResultInput) bool {
		return in.Score == 0
	})).Return(&model.QuizResult{QuizId: quizID, StudentId: studentID, Score: 0}, nil)
	f.events.On("Send", mock.Anything, service.TopicQuizCompleted, mock.Anything).Return(nil)

	result, err := f.svc.SubmitAnswers(identityCtx(studentID, model.RoleStudent), &model.SubmitAnswersInput{
		QuizId:  quizID,
		Answers: map[uuid.UUID]uuid.UUID{},
	})

	require.NoError(t, err)
	assert.Equal(t, int32(0), result.Score)
}

func TestSubmitAnswers_ChoiceOfOtherQuestionScoresZero(t *testing.T) {
	f := newQuizFixture()

	studentID := uuid.New()
	quizID := uuid.New()
	courseID := uuid.New()
	q1 := &model.Question{Id: uuid.New(), QuizId: quizID}
	// Correct choice, but it belongs to a different question.
	strayChoice := &model.Choice{Id: uuid.New(), QuestionId: uuid.New(), IsCorrect: true}

	f.quizRepo.On("GetByID", mock.Anything, quizID).
		Return(&model.Quiz{Id: quizID, CourseId: courseID}, nil)
	f.enrollRepo.On("Exists", mock.Anything, studentID, courseID).Return(true, nil)
	f.resultRepo.On("GetByQuizAndStudent", mock.Anything, quizID, studentID).
		Return(nil, errdefs.ErrNotFound)
	f.quizRepo.On("ListQuestions", mock.Anything, quizID).
		Return([]*model.Question{q1}, nil)
	f.quizRepo.On("GetChoice", mock.Anything, strayChoice.Id).Return(strayChoice, nil)
	f.resultRepo.On("Create", mock.Anything, mock.MatchedBy(func(in *model.RepositoryCreateQuizResultInput) bool {
		return in.Score == 0
	})).Return(&model.QuizResult{QuizId: quizID, StudentId: studentID, Score: 0}, nil)
	f.events.On("Send", mock.Anything, service.TopicQuizCompleted, mock.Anything).Return(nil)

	result, err := f.svc.SubmitAnswers(identityCtx(studentID, model.RoleStudent), &model.SubmitAnswersInput{
		QuizId:  quizID,
		Answers: map[uuid.UUID]uuid.UUID{q1.Id: strayChoice.Id},
	})

	require.NoError(t, err)
	assert.Equal(t, int32(0), result.Score)
}

func TestSubmitAnswers_UnknownChoiceAbortsWithoutWriting(t *testing.T) {
	f := newQuizFixture()

	studentID := uuid.New()
	quizID := uuid.New()
	courseID := uuid.New()
	q1 := &model.Question{Id: uuid.New(), QuizId: quizID}
	ghostID := uuid.New()

	f.quizRepo.On("GetByID", mock.Anything, quizID).
		Return(&model.Quiz{Id: quizID, CourseId: courseID}, nil)
	f.enrollRepo.On("Exists", mock.Anything, studentID, courseID).Return(true, nil)
	f.resultRepo.On("GetByQuizAndStudent", mock.Anything, quizID, studentID).
		Return(nil, errdefs.ErrNotFound)
	f.quizRepo.On("ListQuestions", mock.Anything, quizID).
		Return([]*model.Question{q1}, nil)
	f.quizRepo.On("GetChoice", mock.Anything, ghostID).Return(nil, errdefs.ErrNotFound)

	result, err := f.svc.SubmitAnswers(identityCtx(studentID, model.RoleStudent), &model.SubmitAnswersInput{
		QuizId:  quizID,
		Answers: map[uuid.UUID]uuid.UUID{q1.Id: ghostID},
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, errdefs.ErrNotFound)
	f.resultRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmitAnswers_SecondAttemptReturnsExistingResult(t *testing.T) {
	f := newQuizFixture()

	studentID := uuid.New()
	quizID := uuid.New()
	courseID := uuid.New()
	existing := &model.QuizResult{Id: uuid.New(), QuizId: quizID, StudentId: studentID, Score: 3}

	f.quizRepo.On("GetByID", mock.Anything, quizID).
		Return(&model.Quiz{Id: quizID, CourseId: courseID}, nil)
	f.enrollRepo.On("Exists", mock.Anything, studentID, courseID).Return(true, nil)
	f.resultRepo.On("GetByQuizAndStudent", mock.Anything, quizID, studentID).Return(existing, nil)

	result, err := f.svc.SubmitAnswers(identityCtx(studentID, model.RoleStudent), &model.SubmitAnswersInput{
		QuizId:  quizID,
		Answers: map[uuid.UUID]uuid.UUID{uuid.New(): uuid.New()},
	})

	assert.ErrorIs(t, err, errdefs.ErrAlreadyExists)
	assert.Equal(t, existing, result)
	f.resultRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmitAnswers_LostRaceReturnsWinningResult(t *testing.T) {
	f := newQuizFixture()

	studentID := uuid.New()
	quizID := uuid.New()
	courseID := uuid.New()
	winner := &model.QuizResult{Id: uuid.New(), QuizId: quizID, StudentId: studentID, Score: 2}

	f.quizRepo.On("GetByID", mock.Anything, quizID).
		Return(&model.Quiz{Id: quizID, CourseId: courseID}, nil)
	f.enrollRepo.On("Exists", mock.Anything, studentID, courseID).Return(true, nil)
	// No result at check time, but the insert hits the unique
	// constraint because a concurrent attempt committed in between.
	f.resultRepo.On("GetByQuizAndStudent", mock.Anything, quizID, studentID).
		Return(nil, errdefs.ErrNotFound).Once()
	f.quizRepo.On("ListQuestions", mock.Anything, quizID).Return([]*model.Question{}, nil)
	f.resultRepo.On("Create", mock.Anything, mock.Anything).Return(nil, errdefs.ErrAlreadyExists)
	f.resultRepo.On("GetByQuizAndStudent", mock.Anything, quizID, studentID).Return(winner, nil)

	result, err := f.svc.SubmitAnswers(identityCtx(studentID, model.RoleStudent), &model.SubmitAnswersInput{
		QuizId:  quizID,
		Answers: map[uuid.UUID]uuid.UUID{},
	})

	assert.ErrorIs(t, err, errdefs.ErrAlreadyExists)
	assert.Equal(t, winner, result)
}

func TestSubmitAnswers_NotEnrolled(t *testing.T) {
	f := newQuizFixture()

	studentID := uuid.New()
	quizID := uuid.New()
	courseID := uuid.New()

	f.quizRepo.On("GetByID", mock.Anything, quizID).
		Return(&model.Quiz{Id: quizID, CourseId: courseID}, nil)
	f.enrollRepo.On("Exists", mock.Anything, studentID, courseID).Return(false, nil)

	result, err := f.svc.SubmitAnswers(identityCtx(studentID, model.RoleStudent), &model.SubmitAnswersInput{
		QuizId: quizID,
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
}

func TestSubmitAnswers_MentorCannotTakeQuiz(t *testing.T) {
	f := newQuizFixture()

	result, err := f.svc.SubmitAnswers(identityCtx(uuid.New(), model.RoleMentor), &model.SubmitAnswersInput{
		QuizId: uuid.New(),
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
}

func TestCreateQuiz_RequiresCourseMentor(t *testing.T) {
	f := newQuizFixture()

	courseID := uuid.New()
	f.courseRepo.On("GetByID", mock.Anything, courseID).
		Return(&model.Course{Id: courseID, MentorId: uuid.New()}, nil)

	quiz, err := f.svc.CreateQuiz(identityCtx(uuid.New(), model.RoleMentor), &model.CreateQuizInput{
		CourseId: courseID,
		Title:    "Basics",
	})

	assert.Nil(t, quiz)
	assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
	f.quizRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

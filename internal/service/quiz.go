package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/farhananowshin/SkillBridge/internal/errdefs"
	"github.com/farhananowshin/SkillBridge/internal/logging"
	"github.com/farhananowshin/SkillBridge/internal/model"
)

const TopicQuizCompleted = "quiz.completed"

type QuizService struct {
	quizRepo   QuizRepository
	resultRepo QuizResultRepository
	courseRepo CourseRepository
	enrollRepo EnrollmentRepository
	events     EventProducer
}

func NewQuizService(
	quizRepo QuizRepository,
	resultRepo QuizResultRepository,
	courseRepo CourseRepository,
	enrollRepo EnrollmentRepository,
	events EventProducer,
) *QuizService {
	return &QuizService{
		quizRepo:   quizRepo,
		resultRepo: resultRepo,
		courseRepo: courseRepo,
		enrollRepo: enrollRepo,
		events:     events,
	}
}

func (s *QuizService) CreateQuiz(ctx context.Context, input *model.CreateQuizInput) (*model.Quiz, error) {
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
	totalMarks := input.TotalMarks
	if totalMarks == 0 {
		totalMarks = 10
	}
	quiz := &model.Quiz{
		Id:          id,
		CourseId:    input.CourseId,
		Title:       input.Title,
		Description: input.Description,
		TotalMarks:  totalMarks,
	}
	if err := s.quizRepo.Create(ctx, quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

func (s *QuizService) AddQuestion(ctx context.Context, input *model.CreateQuestionInput) (*model.Question, error) {
	quiz, err := s.quizRepo.GetByID(ctx, input.QuizId)
	if err != nil {
		return nil, err
	}
	if err := s.requireCourseMentor(ctx, quiz.CourseId); err != nil {
		return nil, err
	}
	if input.Text == "" {
		return nil, errdefs.ErrValidation
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	order := input.Order
	if order == 0 {
		order = 1
	}
	question := &model.Question{
		Id:     id,
		QuizId: quiz.Id,
		Text:   input.Text,
		Order:  order,
	}
	if err := s.quizRepo.CreateQuestion(ctx, question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *QuizService) AddChoice(ctx context.Context, input *model.CreateChoiceInput) (*model.Choice, error) {
	question, err := s.quizRepo.GetQuestion(ctx, input.QuestionId)
	if err != nil {
		return nil, err
	}
	quiz, err := s.quizRepo.GetByID(ctx, question.QuizId)
	if err != nil {
		return nil, err
	}
	if err := s.requireCourseMentor(ctx, quiz.CourseId); err != nil {
		return nil, err
	}
	if input.Text == "" {
		return nil, errdefs.ErrValidation
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	choice := &model.Choice{
		Id:         id,
		QuestionId: question.Id,
		Text:       input.Text,
		IsCorrect:  input.IsCorrect,
	}
	if err := s.quizRepo.CreateChoice(ctx, choice); err != nil {
		return nil, err
	}
	return choice, nil
}

// QuizDetail bundles a quiz with its questions and choices for the
// taking view. Correctness flags are stripped by the handler.
type QuizDetail struct {
	Quiz      *model.Quiz
	Questions []*model.Question
	Choices   map[uuid.UUID][]*model.Choice
}

func (s *QuizService) GetQuizDetail(ctx context.Context, quizID uuid.UUID) (*QuizDetail, error) {
	userID, role, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	quiz, err := s.quizRepo.GetByID(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if err := s.requireQuizAccess(ctx, userID, role, quiz); err != nil {
		return nil, err
	}

	questions, err := s.quizRepo.ListQuestions(ctx, quiz.Id)
	if err != nil {
		return nil, err
	}
	choices := make(map[uuid.UUID][]*model.Choice, len(questions))
	for _, q := range questions {
		cs, err := s.quizRepo.ListChoices(ctx, q.Id)
		if err != nil {
			return nil, err
		}
		choices[q.Id] = cs
	}

	return &QuizDetail{Quiz: quiz, Questions: questions, Choices: choices}, nil
}

// SubmitAnswers scores the student's answer set and records the one
// permitted attempt.
//
// Scoring: each of the quiz's questions is worth exactly one point.
// An answered question scores if the referenced choice belongs to it
// and is marked correct. Unanswered questions, and answers pointing
// at a choice of some other question, score zero without failing the
// attempt. An answer naming a choice id that exists nowhere aborts
// the whole submission with ErrNotFound before anything is written.
// The quiz's total_marks plays no part here.
//
// A prior result means the attempt is spent: the existing result is
// returned together with ErrAlreadyExists, and the row is never
// rescored or rewritten. The same pair of return values covers the
// race where a concurrent attempt wins the insert; the storage
// constraint rejects ours and the winner's row is fetched back.
func (s *QuizService) SubmitAnswers(ctx context.Context, input *model.SubmitAnswersInput) (*model.QuizResult, error) {
	userID, role, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	if role != model.RoleStudent {
		return nil, errdefs.ErrPermissionDenied
	}

	quiz, err := s.quizRepo.GetByID(ctx, input.QuizId)
	if err != nil {
		return nil, err
	}

	enrolled, err := s.enrollRepo.Exists(ctx, userID, quiz.CourseId)
	if err != nil {
		return nil, err
	}
	if !enrolled {
		return nil, errdefs.ErrPermissionDenied
	}

	existing, err := s.resultRepo.GetByQuizAndStudent(ctx, quiz.Id, userID)
	if err != nil && !errors.Is(err, errdefs.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return existing, errdefs.ErrAlreadyExists
	}

	questions, err := s.quizRepo.ListQuestions(ctx, quiz.Id)
	if err != nil {
		return nil, err
	}

	var score int32
	for _, question := range questions {
		choiceID, answered := input.Answers[question.Id]
		if !answered {
			continue
		}
		choice, err := s.quizRepo.GetChoice(ctx, choiceID)
		if err != nil {
			// Unknown choice id: hard failure, nothing persisted.
			return nil, err
		}
		if choice.QuestionId != question.Id {
			continue
		}
		if choice.IsCorrect {
			score++
		}
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	result, err := s.resultRepo.Create(ctx, &model.RepositoryCreateQuizResultInput{
		Id:        id,
		QuizId:    quiz.Id,
		StudentId: userID,
		Score:     score,
	})
	if err != nil {
		if errors.Is(err, errdefs.ErrAlreadyExists) {
			// Lost the race to a concurrent attempt; hand back the
			// row that won.
			winner, getErr := s.resultRepo.GetByQuizAndStudent(ctx, quiz.Id, userID)
			if getErr != nil {
				return nil, getErr
			}
			return winner, errdefs.ErrAlreadyExists
		}
		return nil, err
	}

	s.emit(ctx, TopicQuizCompleted, map[string]interface{}{
		"result_id":  result.Id,
		"quiz_id":    result.QuizId,
		"student_id": result.StudentId,
		"score":      result.Score,
	})

	return result, nil
}

// GetResult fetches the caller's recorded attempt, if any.
func (s *QuizService) GetResult(ctx context.Context, quizID uuid.UUID) (*model.QuizResult, error) {
	userID, _, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	return s.resultRepo.GetByQuizAndStudent(ctx, quizID, userID)
}

func (s *QuizService) ListQuizzes(ctx context.Context, courseID uuid.UUID) ([]*model.Quiz, error) {
	return s.quizRepo.ListByCourse(ctx, courseID)
}

func (s *QuizService) requireQuizAccess(ctx context.Context, userID uuid.UUID, role model.Role, quiz *model.Quiz) error {
	if role == model.RoleAdmin {
		return nil
	}
	course, err := s.courseRepo.GetByID(ctx, quiz.CourseId)
	if err != nil {
		return err
	}
	if role == model.RoleMentor {
		if course.MentorId == userID {
			return nil
		}
		return errdefs.ErrPermissionDenied
	}
	enrolled, err := s.enrollRepo.Exists(ctx, userID, quiz.CourseId)
	if err != nil {
		return err
	}
	if !enrolled {
		return errdefs.ErrPermissionDenied
	}
	return nil
}

func (s *QuizService) requireCourseMentor(ctx context.Context, courseID uuid.UUID) error {
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

func (s *QuizService) emit(ctx context.Context, topic string, message interface{}) {
	if s.events == nil {
		return
	}
	if err := s.events.Send(ctx, topic, message); err != nil {
		if logger, ok := logging.GetFromContext(ctx); ok {
			logger.Error(ctx, "failed to send event", zap.String("topic", topic), zap.Error(err))
		}
	}
}

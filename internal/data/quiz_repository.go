package data

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/farhananowshin/SkillBridge/internal/errdefs"
	"github.com/farhananowshin/SkillBridge/internal/model"
)

type QuizRepository struct {
	db *pgxpool.Pool
}

func NewQuizRepository(db *pgxpool.Pool) *QuizRepository {
	return &QuizRepository{db: db}
}

func (r *QuizRepository) Create(ctx context.Context, quiz *model.Quiz) error {
	query := `
INSERT INTO quizzes (id, course_id, title, description, total_marks)
VALUES ($1, $2, $3, $4, $5)
`
	_, err := r.db.Exec(ctx, query,
		quiz.Id,
		quiz.CourseId,
		quiz.Title,
		quiz.Description,
		quiz.TotalMarks,
	)
	if err != nil {
		return handleError(err)
	}
	return nil
}

func (r *QuizRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Quiz, error) {
	query := `SELECT id, course_id, title, description, total_marks FROM quizzes WHERE id = $1`

	var quiz model.Quiz
	err := pgxscan.Get(ctx, r.db, &quiz, query, id)
	if err != nil {
		return nil, handleError(err)
	}
	return &quiz, nil
}

func (r *QuizRepository) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]*model.Quiz, error) {
	query := `SELECT id, course_id, title, description, total_marks FROM quizzes WHERE course_id = $1 ORDER BY title`

	var quizzes []*model.Quiz
	err := pgxscan.Select(ctx, r.db, &quizzes, query, courseID)
	if err != nil {
		return nil, handleError(err)
	}
	return quizzes, nil
}

func (r *QuizRepository) CountByCourse(ctx context.Context, courseID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM quizzes WHERE course_id = $1`

	var count int
	err := r.db.QueryRow(ctx, query, courseID).Scan(&count)
	if err != nil {
		return 0, handleError(err)
	}
	return count, nil
}

func (r *QuizRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM quizzes WHERE id = $1`, id)
	if err != nil {
		return handleError(err)
	}
	if tag.RowsAffected() == 0 {
		return errdefs.ErrNotFound
	}
	return nil
}

func (r *QuizRepository) CreateQuestion(ctx context.Context, question *model.Question) error {
	query := `INSERT INTO questions (id, quiz_id, text, position) VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(ctx, query, question.Id, question.QuizId, question.Text, question.Order)
	if err != nil {
		return handleError(err)
	}
	return nil
}

func (r *QuizRepository) GetQuestion(ctx context.Context, id uuid.UUID) (*model.Question, error) {
	query := `SELECT id, quiz_id, text, position FROM questions WHERE id = $1`

	var question model.Question
	err := pgxscan.Get(ctx, r.db, &question, query, id)
	if err != nil {
		return nil, handleError(err)
	}
	return &question, nil
}

func (r *QuizRepository) ListQuestions(ctx context.Context, quizID uuid.UUID) ([]*model.Question, error) {
	query := `SELECT id, quiz_id, text, position FROM questions WHERE quiz_id = $1 ORDER BY position, id`

	var questions []*model.Question
	err := pgxscan.Select(ctx, r.db, &questions, query, quizID)
	if err != nil {
		return nil, handleError(err)
	}
	return questions, nil
}

func (r *QuizRepository) CreateChoice(ctx context.Context, choice *model.Choice) error {
	query := `INSERT INTO choices (id, question_id, text, is_correct) VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(ctx, query, choice.Id, choice.QuestionId, choice.Text, choice.IsCorrect)
	if err != nil {
		return handleError(err)
	}
	return nil
}

func (r *QuizRepository) GetChoice(ctx context.Context, id uuid.UUID) (*model.Choice, error) {
	query := `SELECT id, question_id, text, is_correct FROM choices WHERE id = $1`

	var choice model.Choice
	err := pgxscan.Get(ctx, r.db, &choice, query, id)
	if err != nil {
		return nil, handleError(err)
	}
	return &choice, nil
}

func (r *QuizRepository) ListChoices(ctx context.Context, questionID uuid.UUID) ([]*model.Choice, error) {
	query := `SELECT id, question_id, text, is_correct FROM choices WHERE question_id = $1 ORDER BY id`

	var choices []*model.Choice
	err := pgxscan.Select(ctx, r.db, &choices, query, questionID)
	if err != nil {
		return nil, handleError(err)
	}
	return choices, nil
}

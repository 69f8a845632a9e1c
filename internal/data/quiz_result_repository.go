package data

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/farhananowshin/SkillBridge/internal/model"
)

type QuizResultRepository struct {
	db *pgxpool.Pool
}

func NewQuizResultRepository(db *pgxpool.Pool) *QuizResultRepository {
	return &QuizResultRepository{db: db}
}

const quizResultColumns = `id, quiz_id, student_id, score, attempted_at`

// Create is the quiz engine's single write. The (student_id, quiz_id)
// unique constraint closes the check-then-act race: a second
// concurrent attempt fails here with ErrAlreadyExists.
func (r *QuizResultRepository) Create(ctx context.Context, input *model.RepositoryCreateQuizResultInput) (*model.QuizResult, error) {
	query := `
INSERT INTO quiz_results (id, quiz_id, student_id, score, attempted_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + quizResultColumns

	var result model.QuizResult
	err := pgxscan.Get(ctx, r.db, &result, query,
		input.Id,
		input.QuizId,
		input.StudentId,
		input.Score,
		time.Now(),
	)
	if err != nil {
		return nil, handleError(err)
	}
	return &result, nil
}

func (r *QuizResultRepository) GetByQuizAndStudent(ctx context.Context, quizID, studentID uuid.UUID) (*model.QuizResult, error) {
	query := `SELECT ` + quizResultColumns + ` FROM quiz_results WHERE quiz_id = $1 AND student_id = $2`

	var result model.QuizResult
	err := pgxscan.Get(ctx, r.db, &result, query, quizID, studentID)
	if err != nil {
		return nil, handleError(err)
	}
	return &result, nil
}

func (r *QuizResultRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*model.QuizResult, error) {
	query := `SELECT ` + quizResultColumns + ` FROM quiz_results WHERE student_id = $1 ORDER BY attempted_at DESC`

	var results []*model.QuizResult
	err := pgxscan.Select(ctx, r.db, &results, query, studentID)
	if err != nil {
		return nil, handleError(err)
	}
	return results, nil
}

func (r *QuizResultRepository) CountByCourseAndStudent(ctx context.Context, courseID, studentID uuid.UUID) (int, error) {
	query := `
SELECT COUNT(*)
FROM quiz_results qr
JOIN quizzes q ON q.id = qr.quiz_id
WHERE q.course_id = $1 AND qr.student_id = $2
`
	var count int
	err := r.db.QueryRow(ctx, query, courseID, studentID).Scan(&count)
	if err != nil {
		return 0, handleError(err)
	}
	return count, nil
}

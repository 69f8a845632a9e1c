package data

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/farhananowshin/SkillBridge/internal/model"
)

type EnrollmentRepository struct {
	db *pgxpool.Pool
}

func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// Create relies on the (student_id, course_id) unique constraint: a
// concurrent duplicate insert comes back as ErrAlreadyExists instead
// of a second row.
func (r *EnrollmentRepository) Create(ctx context.Context, input *model.RepositoryCreateEnrollmentInput) (*model.Enrollment, error) {
	query := `
INSERT INTO enrollments (id, student_id, course_id, enrolled_at)
VALUES ($1, $2, $3, $4)
RETURNING id, student_id, course_id, enrolled_at
`
	var enrollment model.Enrollment
	err := pgxscan.Get(ctx, r.db, &enrollment, query,
		input.Id,
		input.StudentId,
		input.CourseId,
		time.Now(),
	)
	if err != nil {
		return nil, handleError(err)
	}
	return &enrollment, nil
}

func (r *EnrollmentRepository) Exists(ctx context.Context, studentID, courseID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM enrollments WHERE student_id = $1 AND course_id = $2)`

	var exists bool
	err := r.db.QueryRow(ctx, query, studentID, courseID).Scan(&exists)
	if err != nil {
		return false, handleError(err)
	}
	return exists, nil
}

func (r *EnrollmentRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*model.Enrollment, error) {
	query := `
SELECT id, student_id, course_id, enrolled_at
FROM enrollments
WHERE student_id = $1
ORDER BY enrolled_at DESC
`
	var enrollments []*model.Enrollment
	err := pgxscan.Select(ctx, r.db, &enrollments, query, studentID)
	if err != nil {
		return nil, handleError(err)
	}
	return enrollments, nil
}

func (r *EnrollmentRepository) ListCourseIDsByStudent(ctx context.Context, studentID uuid.UUID) ([]uuid.UUID, error) {
	query := `SELECT course_id FROM enrollments WHERE student_id = $1`

	var ids []uuid.UUID
	err := pgxscan.Select(ctx, r.db, &ids, query, studentID)
	if err != nil {
		return nil, handleError(err)
	}
	return ids, nil
}

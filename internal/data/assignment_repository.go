package data

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/farhananowshin/SkillBridge/internal/errdefs"
	"github.com/farhananowshin/SkillBridge/internal/model"
)

type AssignmentRepository struct {
	db *pgxpool.Pool
}

func NewAssignmentRepository(db *pgxpool.Pool) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

const assignmentColumns = `id, course_id, title, description, due_date`

func (r *AssignmentRepository) Create(ctx context.Context, assignment *model.Assignment) error {
	query := `
INSERT INTO assignments (id, course_id, title, description, due_date)
VALUES ($1, $2, $3, $4, $5)
`
	_, err := r.db.Exec(ctx, query,
		assignment.Id,
		assignment.CourseId,
		assignment.Title,
		assignment.Description,
		assignment.DueDate,
	)
	if err != nil {
		return handleError(err)
	}
	return nil
}

func (r *AssignmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignments WHERE id = $1`

	var assignment model.Assignment
	err := pgxscan.Get(ctx, r.db, &assignment, query, id)
	if err != nil {
		return nil, handleError(err)
	}
	return &assignment, nil
}

func (r *AssignmentRepository) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]*model.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignments WHERE course_id = $1 ORDER BY due_date`

	var assignments []*model.Assignment
	err := pgxscan.Select(ctx, r.db, &assignments, query, courseID)
	if err != nil {
		return nil, handleError(err)
	}
	return assignments, nil
}

func (r *AssignmentRepository) CountByCourse(ctx context.Context, courseID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM assignments WHERE course_id = $1`

	var count int
	err := r.db.QueryRow(ctx, query, courseID).Scan(&count)
	if err != nil {
		return 0, handleError(err)
	}
	return count, nil
}

func (r *AssignmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM assignments WHERE id = $1`, id)
	if err != nil {
		return handleError(err)
	}
	if tag.RowsAffected() == 0 {
		return errdefs.ErrNotFound
	}
	return nil
}

// FindAssignmentsDueSoon returns assignments whose deadline falls
// within the window from now. The reminder worker fans these out to
// enrolled students who have not submitted yet.
func (r *AssignmentRepository) FindAssignmentsDueSoon(ctx context.Context, window time.Duration) ([]*model.Assignment, error) {
	query := `
SELECT ` + assignmentColumns + `
FROM assignments
WHERE due_date > now() AND due_date <= now() + $1
ORDER BY due_date
`
	var assignments []*model.Assignment
	err := pgxscan.Select(ctx, r.db, &assignments, query, window)
	if err != nil {
		return nil, handleError(err)
	}
	return assignments, nil
}

// FindStudentsMissingSubmission lists enrolled students of the
// assignment's course with no submission for it.
func (r *AssignmentRepository) FindStudentsMissingSubmission(ctx context.Context, assignmentID uuid.UUID) ([]uuid.UUID, error) {
	query := `
SELECT e.student_id
FROM assignments a
JOIN enrollments e ON e.course_id = a.course_id
WHERE a.id = $1
  AND NOT EXISTS (
    SELECT 1 FROM submissions s
    WHERE s.assignment_id = a.id AND s.student_id = e.student_id
  )
`
	var ids []uuid.UUID
	err := pgxscan.Select(ctx, r.db, &ids, query, assignmentID)
	if err != nil {
		return nil, handleError(err)
	}
	return ids, nil
}

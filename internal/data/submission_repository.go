package data

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/farhananowshin/SkillBridge/internal/model"
)

type SubmissionRepository struct {
	db *pgxpool.Pool
}

func NewSubmissionRepository(db *pgxpool.Pool) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

const submissionColumns = `id, assignment_id, student_id, file_id, marks, submitted_at`

func (r *SubmissionRepository) Create(ctx context.Context, input *model.RepositoryCreateSubmissionInput) (*model.Submission, error) {
	query := `
INSERT INTO submissions (id, assignment_id, student_id, file_id, submitted_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + submissionColumns

	var submission model.Submission
	err := pgxscan.Get(ctx, r.db, &submission, query,
		input.Id,
		input.AssignmentId,
		input.StudentId,
		input.FileId,
		time.Now(),
	)
	if err != nil {
		return nil, handleError(err)
	}
	return &submission, nil
}

// Replace overwrites the file and timestamp of an existing
// submission. Marks already given by the mentor are left in place.
func (r *SubmissionRepository) Replace(ctx context.Context, id uuid.UUID, fileID *uuid.UUID) (*model.Submission, error) {
	query := `
UPDATE submissions
SET file_id = $1, submitted_at = $2
WHERE id = $3
RETURNING ` + submissionColumns

	var submission model.Submission
	err := pgxscan.Get(ctx, r.db, &submission, query, fileID, time.Now(), id)
	if err != nil {
		return nil, handleError(err)
	}
	return &submission, nil
}

func (r *SubmissionRepository) SetMarks(ctx context.Context, id uuid.UUID, marks int32) (*model.Submission, error) {
	query := `
UPDATE submissions
SET marks = $1
WHERE id = $2
RETURNING ` + submissionColumns

	var submission model.Submission
	err := pgxscan.Get(ctx, r.db, &submission, query, marks, id)
	if err != nil {
		return nil, handleError(err)
	}
	return &submission, nil
}

func (r *SubmissionRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM submissions WHERE id = $1`

	var submission model.Submission
	err := pgxscan.Get(ctx, r.db, &submission, query, id)
	if err != nil {
		return nil, handleError(err)
	}
	return &submission, nil
}

// GetByAssignmentAndStudent fetches the student's current submission
// for the assignment, if any. There is meaningfully at most one: the
// service looks it up and overwrites rather than inserting twice.
func (r *SubmissionRepository) GetByAssignmentAndStudent(ctx context.Context, assignmentID, studentID uuid.UUID) (*model.Submission, error) {
	query := `
SELECT ` + submissionColumns + `
FROM submissions
WHERE assignment_id = $1 AND student_id = $2
ORDER BY submitted_at DESC
LIMIT 1
`
	var submission model.Submission
	err := pgxscan.Get(ctx, r.db, &submission, query, assignmentID, studentID)
	if err != nil {
		return nil, handleError(err)
	}
	return &submission, nil
}

func (r *SubmissionRepository) ListByAssignment(ctx context.Context, assignmentID uuid.UUID) ([]*model.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM submissions WHERE assignment_id = $1 ORDER BY submitted_at DESC`

	var submissions []*model.Submission
	err := pgxscan.Select(ctx, r.db, &submissions, query, assignmentID)
	if err != nil {
		return nil, handleError(err)
	}
	return submissions, nil
}

func (r *SubmissionRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*model.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM submissions WHERE student_id = $1 ORDER BY submitted_at DESC`

	var submissions []*model.Submission
	err := pgxscan.Select(ctx, r.db, &submissions, query, studentID)
	if err != nil {
		return nil, handleError(err)
	}
	return submissions, nil
}

// CountByCourseAndStudent counts the student's submissions across the
// course's assignments. Existence is what counts: ungraded or
// file-less submissions are still complete for certificate purposes.
func (r *SubmissionRepository) CountByCourseAndStudent(ctx context.Context, courseID, studentID uuid.UUID) (int, error) {
	query := `
SELECT COUNT(*)
FROM submissions s
JOIN assignments a ON a.id = s.assignment_id
WHERE a.course_id = $1 AND s.student_id = $2
`
	var count int
	err := r.db.QueryRow(ctx, query, courseID, studentID).Scan(&count)
	if err != nil {
		return 0, handleError(err)
	}
	return count, nil
}

package data

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/farhananowshin/SkillBridge/internal/errdefs"
	"github.com/farhananowshin/SkillBridge/internal/model"
)

type CourseRepository struct {
	db *pgxpool.Pool
}

func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{db: db}
}

const courseColumns = `c.id, c.title, c.description, c.mentor_id, c.image_file_id, c.created_at`

func (r *CourseRepository) Create(ctx context.Context, course *model.Course) error {
	query := `
INSERT INTO courses (id, title, description, mentor_id, image_file_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
`
	_, err := r.db.Exec(ctx, query,
		course.Id,
		course.Title,
		course.Description,
		course.MentorId,
		course.ImageFileId,
		course.CreatedAt,
	)
	if err != nil {
		return handleError(err)
	}
	return nil
}

func (r *CourseRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses c WHERE c.id = $1`

	var course model.Course
	err := pgxscan.Get(ctx, r.db, &course, query, id)
	if err != nil {
		return nil, handleError(err)
	}
	return &course, nil
}

// List applies the catalog search and mentor filter. The search
// keyword matches course title, description or the mentor's name.
func (r *CourseRepository) List(ctx context.Context, filter *model.CourseFilter) ([]*model.Course, error) {
	query := `
SELECT ` + courseColumns + `
FROM courses c
JOIN users m ON m.id = c.mentor_id
`
	var args []any
	argIdx := 1
	where := ""

	appendCond := func(cond string, value any) {
		if where == "" {
			where = "WHERE " + cond
		} else {
			where += " AND " + cond
		}
		args = append(args, value)
		argIdx++
	}

	if filter != nil {
		if filter.Search != "" {
			cond := fmt.Sprintf(
				"(c.title ILIKE $%d OR c.description ILIKE $%d OR m.first_name ILIKE $%d OR m.last_name ILIKE $%d)",
				argIdx, argIdx, argIdx, argIdx)
			appendCond(cond, "%"+filter.Search+"%")
		}
		if filter.MentorId != uuid.Nil {
			appendCond(fmt.Sprintf("c.mentor_id = $%d", argIdx), filter.MentorId)
		}
	}

	query += where + " ORDER BY c.created_at DESC"

	var courses []*model.Course
	err := pgxscan.Select(ctx, r.db, &courses, query, args...)
	if err != nil {
		return nil, handleError(err)
	}
	return courses, nil
}

func (r *CourseRepository) Update(ctx context.Context, id uuid.UUID, input *model.UpdateCourseInput) (*model.Course, error) {
	query, args, err := buildCourseUpdateQuery(input)
	if err != nil {
		return nil, err
	}
	args = append(args, id)

	var course model.Course
	err = pgxscan.Get(ctx, r.db, &course, query, args...)
	if err != nil {
		return nil, handleError(err)
	}
	return &course, nil
}

// Delete removes the course; lessons, assignments, quizzes, questions
// and choices go with it through the schema's ON DELETE CASCADE tree.
func (r *CourseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return handleError(err)
	}
	if tag.RowsAffected() == 0 {
		return errdefs.ErrNotFound
	}
	return nil
}

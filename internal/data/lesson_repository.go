package data

import (
	"context"
	"errors"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/farhananowshin/SkillBridge/internal/errdefs"
	"github.com/farhananowshin/SkillBridge/internal/model"
)

type LessonRepository struct {
	db *pgxpool.Pool
}

func NewLessonRepository(db *pgxpool.Pool) *LessonRepository {
	return &LessonRepository{db: db}
}

const lessonColumns = `id, course_id, title, video_url, content, position`

func (r *LessonRepository) Create(ctx context.Context, lesson *model.Lesson) error {
	query := `
INSERT INTO lessons (id, course_id, title, video_url, content, position)
VALUES ($1, $2, $3, $4, $5, $6)
`
	_, err := r.db.Exec(ctx, query,
		lesson.Id,
		lesson.CourseId,
		lesson.Title,
		lesson.VideoURL,
		lesson.Content,
		lesson.Order,
	)
	if err != nil {
		return handleError(err)
	}
	return nil
}

func (r *LessonRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Lesson, error) {
	query := `SELECT ` + lessonColumns + ` FROM lessons WHERE id = $1`

	var lesson model.Lesson
	err := pgxscan.Get(ctx, r.db, &lesson, query, id)
	if err != nil {
		return nil, handleError(err)
	}
	return &lesson, nil
}

func (r *LessonRepository) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]*model.Lesson, error) {
	query := `SELECT ` + lessonColumns + ` FROM lessons WHERE course_id = $1 ORDER BY position, id`

	var lessons []*model.Lesson
	err := pgxscan.Select(ctx, r.db, &lessons, query, courseID)
	if err != nil {
		return nil, handleError(err)
	}
	return lessons, nil
}

// Previous returns the lesson with the greatest position strictly
// below the given one, Next the least strictly above. Positions are
// not unique, so id breaks ties deterministically. A missing
// neighbour is (nil, nil), not an error.
func (r *LessonRepository) Previous(ctx context.Context, courseID uuid.UUID, position int32) (*model.Lesson, error) {
	query := `
SELECT ` + lessonColumns + `
FROM lessons
WHERE course_id = $1 AND position < $2
ORDER BY position DESC, id
LIMIT 1
`
	var lesson model.Lesson
	err := pgxscan.Get(ctx, r.db, &lesson, query, courseID, position)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, handleError(err)
	}
	return &lesson, nil
}

func (r *LessonRepository) Next(ctx context.Context, courseID uuid.UUID, position int32) (*model.Lesson, error) {
	query := `
SELECT ` + lessonColumns + `
FROM lessons
WHERE course_id = $1 AND position > $2
ORDER BY position, id
LIMIT 1
`
	var lesson model.Lesson
	err := pgxscan.Get(ctx, r.db, &lesson, query, courseID, position)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, handleError(err)
	}
	return &lesson, nil
}

func (r *LessonRepository) Update(ctx context.Context, id uuid.UUID, input *model.UpdateLessonInput, videoURL *string) (*model.Lesson, error) {
	query, args, err := buildLessonUpdateQuery(input, videoURL)
	if err != nil {
		return nil, err
	}
	args = append(args, id)

	var lesson model.Lesson
	err = pgxscan.Get(ctx, r.db, &lesson, query, args...)
	if err != nil {
		return nil, handleError(err)
	}
	return &lesson, nil
}

func (r *LessonRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM lessons WHERE id = $1`, id)
	if err != nil {
		return handleError(err)
	}
	if tag.RowsAffected() == 0 {
		return errdefs.ErrNotFound
	}
	return nil
}

package data

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/farhananowshin/SkillBridge/internal/model"
)

type FileRepository struct {
	db *pgxpool.Pool
}

func NewFileRepository(db *pgxpool.Pool) *FileRepository {
	return &FileRepository{db: db}
}

func (r *FileRepository) Create(ctx context.Context, file *model.File) error {
	query := `
INSERT INTO files (id, owner_id, filename, bucket_key, uploaded_at)
VALUES ($1, $2, $3, $4, $5)
`
	_, err := r.db.Exec(ctx, query,
		file.Id,
		file.OwnerId,
		file.Filename,
		file.BucketKey,
		file.UploadedAt,
	)
	if err != nil {
		return handleError(err)
	}
	return nil
}

func (r *FileRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.File, error) {
	query := `SELECT id, owner_id, filename, bucket_key, uploaded_at FROM files WHERE id = $1`

	var file model.File
	err := pgxscan.Get(ctx, r.db, &file, query, id)
	if err != nil {
		return nil, handleError(err)
	}
	return &file, nil
}

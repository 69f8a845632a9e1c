package data

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/farhananowshin/SkillBridge/internal/model"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `
	id, username, email, password_hash, role,
	first_name, last_name, phone_number, date_of_birth, gender,
	address, profile_photo_id, student_number, department, semester,
	preferred_track, learning_goal, created_at, edited_at
`

func (r *UserRepository) CreateUser(ctx context.Context, input *model.RepositoryCreateUserInput) (*model.User, error) {
	query := `
INSERT INTO users (id, username, email, password_hash, role, first_name, last_name)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + userColumns

	var user model.User
	err := pgxscan.Get(ctx, r.db, &user, query,
		input.Id,
		input.Username,
		input.Email,
		input.PasswordHash,
		input.Role,
		input.FirstName,
		input.LastName,
	)
	if err != nil {
		return nil, handleError(err)
	}
	return &user, nil
}

func (r *UserRepository) GetUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var user model.User
	err := pgxscan.Get(ctx, r.db, &user, query, id)
	if err != nil {
		return nil, handleError(err)
	}
	return &user, nil
}

func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	var user model.User
	err := pgxscan.Get(ctx, r.db, &user, query, username)
	if err != nil {
		return nil, handleError(err)
	}
	return &user, nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, id uuid.UUID, input *model.UpdateProfileInput) (*model.User, error) {
	query, args, err := buildUserUpdateQuery(input)
	if err != nil {
		return nil, err
	}
	args = append(args, id)

	var user model.User
	err = pgxscan.Get(ctx, r.db, &user, query, args...)
	if err != nil {
		return nil, handleError(err)
	}
	return &user, nil
}

func (r *UserRepository) ListUsersByRole(ctx context.Context, role model.Role) ([]*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE role = $1 ORDER BY first_name, last_name`

	var users []*model.User
	err := pgxscan.Select(ctx, r.db, &users, query, role)
	if err != nil {
		return nil, handleError(err)
	}
	return users, nil
}

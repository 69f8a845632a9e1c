package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/farhananowshin/SkillBridge/internal/auth"
	"github.com/farhananowshin/SkillBridge/internal/errdefs"
	"github.com/farhananowshin/SkillBridge/internal/model"
)

type UserService struct {
	userRepo UserRepository
	tokens   *auth.Manager
}

func NewUserService(userRepo UserRepository, tokens *auth.Manager) *UserService {
	return &UserService{userRepo: userRepo, tokens: tokens}
}

// RegisterStudent creates a student account. The role is forced:
// self-registration never yields a mentor or admin.
func (s *UserService) RegisterStudent(ctx context.Context, input *model.RegisterStudentInput) (*model.User, error) {
	username := strings.TrimSpace(strings.ToLower(input.Username))
	email := strings.TrimSpace(strings.ToLower(input.Email))
	if username == "" || email == "" || input.Password == "" {
		return nil, errdefs.ErrValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.CreateUser(ctx, &model.RepositoryCreateUserInput{
		Id:           id,
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleStudent,
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and returns a signed session token along
// with the user. A bad username and a bad password are reported
// identically.
func (s *UserService) Login(ctx context.Context, input *model.LoginInput) (*model.User, string, error) {
	username := strings.TrimSpace(strings.ToLower(input.Username))

	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, errdefs.ErrNotFound) {
			return nil, "", errdefs.ErrAuthentication
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(input.Password)); err != nil {
		return nil, "", errdefs.ErrAuthentication
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *UserService) GetMe(ctx context.Context) (*model.User, error) {
	userID, _, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	return s.userRepo.GetUser(ctx, userID)
}

func (s *UserService) UpdateProfile(ctx context.Context, input *model.UpdateProfileInput) (*model.User, error) {
	userID, _, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	if input.Gender != nil && !input.Gender.IsValid() {
		return nil, errdefs.ErrValidation
	}
	if input.Department != nil && !input.Department.IsValid() {
		return nil, errdefs.ErrValidation
	}
	if input.PreferredTrack != nil && !input.PreferredTrack.IsValid() {
		return nil, errdefs.ErrValidation
	}

	return s.userRepo.UpdateUser(ctx, userID, input)
}

func (s *UserService) GetUserPublic(ctx context.Context, id uuid.UUID) (*model.UserPublic, error) {
	user, err := s.userRepo.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.Public(), nil
}

// ListMentors backs the catalog's filter-by-mentor dropdown.
func (s *UserService) ListMentors(ctx context.Context) ([]*model.UserPublic, error) {
	mentors, err := s.userRepo.ListUsersByRole(ctx, model.RoleMentor)
	if err != nil {
		return nil, err
	}
	public := make([]*model.UserPublic, 0, len(mentors))
	for _, m := range mentors {
		public = append(public, m.Public())
	}
	return public, nil
}

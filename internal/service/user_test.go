package service_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/farhananowshin/SkillBridge/internal/auth"
	"github.com/farhananowshin/SkillBridge/internal/errdefs"
	"github.com/farhananowshin/SkillBridge/internal/model"
	"github.com/farhananowshin/SkillBridge/internal/service"
	"github.com/farhananowshin/SkillBridge/internal/service/mocks"
)

func newUserService(userRepo *mocks.UserRepository) *service.UserService {
	return service.NewUserService(userRepo, auth.NewManager("test-secret", time.Hour))
}

func TestRegisterStudent_RoleIsAlwaysStudent(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	svc := newUserService(userRepo)

	userRepo.On("CreateUser", mock.Anything, mock.MatchedBy(func(in *model.RepositoryCreateUserInput) bool {
		return in.Role == model.RoleStudent && in.Username == "nadia" && in.Email == "nadia@example.com"
	})).Return(&model.User{Id: uuid.New(), Username: "nadia", Role: model.RoleStudent}, nil)

	user, err := svc.RegisterStudent(identityCtx(uuid.New(), model.RoleStudent), &model.RegisterStudentInput{
		Username: "  Nadia  ",
		Email:    "Nadia@Example.COM",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, model.RoleStudent, user.Role)
	userRepo.AssertExpectations(t)
}

func TestRegisterStudent_DuplicateUsername(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	svc := newUserService(userRepo)

	userRepo.On("CreateUser", mock.Anything, mock.Anything).Return(nil, errdefs.ErrAlreadyExists)

	user, err := svc.RegisterStudent(identityCtx(uuid.New(), model.RoleStudent), &model.RegisterStudentInput{
		Username: "nadia",
		Email:    "nadia@example.com",
		Password: "secret123",
	})

	assert.Nil(t, user)
	assert.ErrorIs(t, err, errdefs.ErrAlreadyExists)
}

func TestRegisterStudent_MissingFields(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	svc := newUserService(userRepo)

	user, err := svc.RegisterStudent(identityCtx(uuid.New(), model.RoleStudent), &model.RegisterStudentInput{
		Username: "nadia",
	})

	assert.Nil(t, user)
	assert.ErrorIs(t, err, errdefs.ErrValidation)
	userRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestLogin_Success(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	svc := newUserService(userRepo)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	userRepo.On("GetUserByUsername", mock.Anything, "nadia").
		Return(&model.User{Id: uuid.New(), Username: "nadia", PasswordHash: hash, Role: model.RoleStudent}, nil)

	user, token, err := svc.Login(identityCtx(uuid.New(), model.RoleStudent), &model.LoginInput{
		Username: "Nadia",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, "nadia", user.Username)
	assert.NotEmpty(t, token)
}

// Unknown username and wrong password look the same to the caller.
func TestLogin_BadCredentials(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	svc := newUserService(userRepo)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	userRepo.On("GetUserByUsername", mock.Anything, "ghost").Return(nil, errdefs.ErrNotFound)
	userRepo.On("GetUserByUsername", mock.Anything, "nadia").
		Return(&model.User{Id: uuid.New(), Username: "nadia", PasswordHash: hash, Role: model.RoleStudent}, nil)

	_, _, unknownErr := svc.Login(identityCtx(uuid.New(), model.RoleStudent), &model.LoginInput{
		Username: "ghost", Password: "whatever",
	})
	_, _, wrongPassErr := svc.Login(identityCtx(uuid.New(), model.RoleStudent), &model.LoginInput{
		Username: "nadia", Password: "wrong",
	})

	assert.ErrorIs(t, unknownErr, errdefs.ErrAuthentication)
	assert.ErrorIs(t, wrongPassErr, errdefs.ErrAuthentication)
}

func TestUpdateProfile_InvalidEnum(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	svc := newUserService(userRepo)

	badGender := model.Gender("X")
	user, err := svc.UpdateProfile(identityCtx(uuid.New(), model.RoleStudent), &model.UpdateProfileInput{
		Gender: &badGender,
	})

	assert.Nil(t, user)
	assert.ErrorIs(t, err, errdefs.ErrValidation)
	userRepo.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything, mock.Anything)
}

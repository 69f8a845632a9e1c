package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farhananowshin/SkillBridge/internal/errdefs"
	"github.com/farhananowshin/SkillBridge/internal/model"
)

func TestIssueParse_RoundTrip(t *testing.T) {
	m := NewManager("test-secret", time.Hour)
	user := &model.User{Id: uuid.New(), Role: model.RoleMentor}

	token, err := m.Issue(user)
	require.NoError(t, err)

	identity, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, user.Id, identity.UserID)
	assert.Equal(t, model.RoleMentor, identity.Role)
}

func TestParse_WrongSecret(t *testing.T) {
	issuer := NewManager("secret-a", time.Hour)
	verifier := NewManager("secret-b", time.Hour)

	token, err := issuer.Issue(&model.User{Id: uuid.New(), Role: model.RoleStudent})
	require.NoError(t, err)

	identity, err := verifier.Parse(token)
	assert.Nil(t, identity)
	assert.ErrorIs(t, err, errdefs.ErrAuthentication)
}

func TestParse_Expired(t *testing.T) {
	m := NewManager("test-secret", -time.Minute)

	token, err := m.Issue(&model.User{Id: uuid.New(), Role: model.RoleStudent})
	require.NoError(t, err)

	identity, err := m.Parse(token)
	assert.Nil(t, identity)
	assert.ErrorIs(t, err, errdefs.ErrAuthentication)
}

func TestParse_Garbage(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	identity, err := m.Parse("not.a.token")
	assert.Nil(t, identity)
	assert.ErrorIs(t, err, errdefs.ErrAuthentication)
}

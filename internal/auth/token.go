package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/farhananowshin/SkillBridge/internal/errdefs"
	"github.com/farhananowshin/SkillBridge/internal/model"
)

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Manager issues and verifies the signed session tokens the HTTP
// layer exchanges for an identity on each request.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

func (m *Manager) Issue(user *model.User) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: user.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Id.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

type Identity struct {
	UserID uuid.UUID
	Role   model.Role
}

func (m *Manager) Parse(tokenString string) (*Identity, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errdefs.ErrAuthentication
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errdefs.ErrAuthentication
	}
	role, ok := model.RoleFromString(claims.Role)
	if !ok {
		return nil, errdefs.ErrAuthentication
	}

	return &Identity{UserID: userID, Role: role}, nil
}

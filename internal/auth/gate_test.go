package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user_ledger/internal/domain"
	"user_ledger/internal/utils"
)

type stubUsers map[string]domain.User

func (s stubUsers) Login(email, password string) (*domain.User, error) {
	u, ok := s[email]
	if !ok || u.Password != password {
		return nil, domain.ErrAuthFailed
	}
	return &u, nil
}

func TestAdminLogin(t *testing.T) {
	g := NewGate("admin", "password", stubUsers{}, "secret")
	assert.True(t, g.AdminLogin("admin", "password"))
	assert.False(t, g.AdminLogin("Admin", "password"))
	assert.False(t, g.AdminLogin("admin", "password "))
	assert.False(t, g.AdminLogin("", ""))
}

func TestUserLoginDelegates(t *testing.T) {
	g := NewGate("admin", "password", stubUsers{"a@x.com": {ID: 1, Email: "a@x.com", Password: "p1"}}, "secret")
	u, err := g.UserLogin("a@x.com", "p1")
	require.NoError(t, err)
	assert.Equal(t, 1, u.ID)

	_, err = g.UserLogin("a@x.com", "nope")
	assert.ErrorIs(t, err, domain.ErrAuthFailed)
}

func TestTokens(t *testing.T) {
	g := NewGate("admin", "password", stubUsers{}, "secret")
	token, err := g.IssueToken(3, utils.RoleUser)
	require.NoError(t, err)

	claims, err := g.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, 3, claims.UserID)
	assert.Equal(t, utils.RoleUser, claims.Role)

	other := NewGate("admin", "password", stubUsers{}, "different")
	_, err = other.VerifyToken(token)
	assert.Error(t, err)
}

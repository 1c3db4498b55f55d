package utils

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT(7, RoleUser, "secret")
	require.NoError(t, err)

	claims, err := ParseJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, RoleUser, claims.Role)
	assert.NotEmpty(t, claims.ID)
}

func TestJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT(7, RoleAdmin, "secret")
	require.NoError(t, err)

	_, err = ParseJWT(token, "other")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTExpired(t *testing.T) {
	claims := Claims{
		UserID: 1,
		Role:   RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = ParseJWT(token, "secret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHashers(t *testing.T) {
	plain, err := NewPasswordHasher("")
	require.NoError(t, err)
	stored, err := plain.Hash("p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", stored)
	assert.True(t, plain.Matches(stored, "p1"))
	assert.False(t, plain.Matches(stored, "P1"))

	hasher, err := NewPasswordHasher(HashingBcrypt)
	require.NoError(t, err)
	stored, err = hasher.Hash("p1")
	require.NoError(t, err)
	assert.NotEqual(t, "p1", stored)
	assert.True(t, hasher.Matches(stored, "p1"))
	assert.False(t, hasher.Matches(stored, "p2"))

	_, err = NewPasswordHasher("md5")
	assert.Error(t, err)
}

func TestCacheHelpersWithoutClient(t *testing.T) {
	ctx := context.Background()
	var dest map[string]any
	found, err := GetCache(ctx, nil, "k", &dest)
	assert.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, SetCache(ctx, nil, "k", 1, time.Second))
	assert.NoError(t, RedisInvalidator{Prefixes: []string{"k"}}.Invalidate(ctx, "e:1"))
	assert.Equal(t, "admin:users:e:1", RevisionKey("admin:users", "e:1"))
}

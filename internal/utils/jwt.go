package utils

import (
	"errors" // Error values
	"time"   // Time for token expiration

	"github.com/golang-jwt/jwt/v5" // JWT library
	"github.com/google/uuid"       // Token ids
)

// Roles carried in session tokens
const (
	RoleUser  = "user"  // Regular account holder
	RoleAdmin = "admin" // Fixed administrator
)

// TokenTTL is how long an issued session token stays valid
const TokenTTL = 24 * time.Hour

// ErrInvalidToken is returned for tokens that fail parsing or validation
var ErrInvalidToken = errors.New("invalid or expired token")

// JWT Claims
type Claims struct {
	UserID               int    `json:"user_id"` // Account id, 0 for the admin
	Role                 string `json:"role"`    // RoleUser or RoleAdmin
	jwt.RegisteredClaims        // Standard JWT claims
}

// GenerateJWT creates a signed session token for a user id and role
func GenerateJWT(userID int, role, secret string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID, // Account id
		Role:   role,   // Session role
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),                      // Unique token id
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)), // Token expiry
			IssuedAt:  jwt.NewNumericDate(now),               // Issued at current time
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims) // Create token with claims
	return token.SignedString([]byte(secret))                  // Sign the token with the secret
}

// ParseJWT parses and validates a session token string
func ParseJWT(tokenStr, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken // Reject non-HMAC algorithms
		}
		return []byte(secret), nil // Return the secret key for validation
	})
	if err != nil {
		return nil, ErrInvalidToken
	}
	// Validate token and extract claims
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, ErrInvalidToken
}

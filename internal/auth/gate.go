// Package auth checks admin and user credentials and issues session tokens.
package auth

import (
	"user_ledger/internal/domain" // Domain models
	"user_ledger/internal/utils"  // JWT helpers
)

// UserAuthenticator resolves a user from email and password
type UserAuthenticator interface {
	Login(email, password string) (*domain.User, error)
}

// Gate compares supplied credentials against the fixed admin pair or the stored users
type Gate struct {
	adminUsername string            // Expected admin username
	adminPassword string            // Expected admin password
	users         UserAuthenticator // Account service
	secret        string            // JWT signing secret, empty disables tokens
}

// NewGate builds a gate for the given admin pair
func NewGate(adminUsername, adminPassword string, users UserAuthenticator, secret string) *Gate {
	return &Gate{adminUsername: adminUsername, adminPassword: adminPassword, users: users, secret: secret}
}

// AdminLogin reports whether username and password equal the admin pair exactly
func (g *Gate) AdminLogin(username, password string) bool {
	return username == g.adminUsername && password == g.adminPassword
}

// UserLogin returns the user matching email and password, or domain.ErrAuthFailed
func (g *Gate) UserLogin(email, password string) (*domain.User, error) {
	return g.users.Login(email, password)
}

// IssueToken signs a session token for userID with role
func (g *Gate) IssueToken(userID int, role string) (string, error) {
	return utils.GenerateJWT(userID, role, g.secret)
}

// VerifyToken validates a session token and returns its claims
func (g *Gate) VerifyToken(token string) (*utils.Claims, error) {
	return utils.ParseJWT(token, g.secret)
}

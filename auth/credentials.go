package auth

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// CredentialVerifier answers whether a username/password pair identifies the
// administrator. Implementations must not reveal which half was wrong.
type CredentialVerifier interface {
	Verify(username, password string) bool
}

// EnvCredentials holds the fixed administrator identity: a username and a
// bcrypt hash of the password, both supplied through configuration.
type EnvCredentials struct {
	username     string
	passwordHash string
}

func NewEnvCredentials(username, passwordHash string) (*EnvCredentials, error) {
	if username == "" || passwordHash == "" {
		return nil, errors.New("admin username and password hash must be configured")
	}
	return &EnvCredentials{username: username, passwordHash: passwordHash}, nil
}

func (c *EnvCredentials) Verify(username, password string) bool {
	// Evaluate both halves so response timing does not depend on which one
	// failed.
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(c.username)) == 1
	passOK := bcrypt.CompareHashAndPassword([]byte(c.passwordHash), []byte(password)) == nil
	return userOK && passOK
}

// StaticCredentials is a plaintext pair for tests.
type StaticCredentials struct {
	Username string
	Password string
}

func (c StaticCredentials) Verify(username, password string) bool {
	return username == c.Username && password == c.Password
}

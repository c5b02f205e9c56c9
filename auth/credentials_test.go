package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestEnvCredentials(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	assert.NoError(t, err)

	creds, err := NewEnvCredentials("admin@admin.com", string(hash))
	assert.NoError(t, err)

	assert.True(t, creds.Verify("admin@admin.com", "hunter2"))
	assert.False(t, creds.Verify("admin@admin.com", "hunter3"))
	assert.False(t, creds.Verify("someone@else.com", "hunter2"))
	assert.False(t, creds.Verify("", ""))
	assert.False(t, creds.Verify("admin@admin.com", ""))
}

func TestEnvCredentialsRequireConfig(t *testing.T) {
	_, err := NewEnvCredentials("", "hash")
	assert.Error(t, err)

	_, err = NewEnvCredentials("admin@admin.com", "")
	assert.Error(t, err)
}

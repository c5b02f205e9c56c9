package auth

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestNewTokenIssuerRejectsEmptySecret(t *testing.T) {
	_, err := NewTokenIssuer("")
	assert.Error(t, err)
}

func TestIssueAndParseRoundtrip(t *testing.T) {
	issuer, err := NewTokenIssuer("test-secret")
	assert.NoError(t, err)

	token, err := issuer.Issue("admin@admin.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	username, err := ParseToken("test-secret", token)
	assert.NoError(t, err)
	assert.Equal(t, "admin@admin.com", username)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	issuer, _ := NewTokenIssuer("test-secret")
	token, _ := issuer.Issue("admin@admin.com")

	_, err := ParseToken("other-secret", token)
	assert.Error(t, err)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	claims := jwt.MapClaims{
		"username": "admin@admin.com",
		"exp":      time.Now().Add(-time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	assert.NoError(t, err)

	_, err = ParseToken("test-secret", expired)
	assert.Error(t, err)
}

func TestParseTokenRejectsMissingUsername(t *testing.T) {
	claims := jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	anonymous, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	assert.NoError(t, err)

	_, err = ParseToken("test-secret", anonymous)
	assert.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken("test-secret", "not.a.token")
	assert.Error(t, err)
}

func TestSessionCookieAttributes(t *testing.T) {
	cookie := SessionCookie("tok", false)
	assert.Equal(t, CookieName, cookie.Name)
	assert.Equal(t, "tok", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, int(TokenLifetime.Seconds()), cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
	assert.False(t, cookie.Secure)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)

	assert.True(t, SessionCookie("tok", true).Secure, "production cookies must be secure")
}

package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func loginRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	issuer, err := NewTokenIssuer("test-secret")
	assert.NoError(t, err)

	r := gin.New()
	r.POST("/auth/login", LoginHandler(
		StaticCredentials{Username: "admin@admin.com", Password: "admin@admin.com"},
		issuer,
		false,
	))
	return r
}

func TestLoginSuccess(t *testing.T) {
	r := loginRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"username": "admin@admin.com", "password": "admin@admin.com"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Success!")

	cookies := rec.Result().Cookies()
	assert.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, CookieName, cookie.Name)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)

	username, err := ParseToken("test-secret", cookie.Value)
	assert.NoError(t, err)
	assert.Equal(t, "admin@admin.com", username)
}

func TestLoginBadCredentials(t *testing.T) {
	r := loginRouter(t)

	for _, body := range []string{
		`{"username": "x", "password": "y"}`,
		`{"username": "admin@admin.com", "password": "wrong"}`,
		`{"username": "wrong", "password": "admin@admin.com"}`,
		`{}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, body)
		assert.Empty(t, rec.Result().Cookies(), "no cookie on failed login")
	}
}

func TestLoginMalformedBody(t *testing.T) {
	r := loginRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`not json`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
}

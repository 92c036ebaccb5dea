package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parksexplorer/internal/shared/constants"
	"parksexplorer/internal/shared/logger"
)

const testSecret = "test-jwt-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func performRequest(t *testing.T, authHeader string) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()

	w := httptest.NewRecorder()
	_, router := gin.CreateTestContext(w)

	var captured *gin.Context
	mw := NewAuthMiddleware(testSecret, logger.NewLogger())
	router.GET("/protected", mw.RequireAuth(), func(c *gin.Context) {
		captured = c
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set(constants.HeaderAuthorization, authHeader)
	}
	router.ServeHTTP(w, req)
	return w, captured
}

func TestRequireAuth_ValidToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":   "user-123",
		"email": "jamie@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	w, c := performRequest(t, "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, c)
	assert.Equal(t, "user-123", UserID(c))
	assert.Equal(t, token, AccessToken(c))
	assert.Equal(t, "jamie@example.com", c.GetString(constants.ContextKeyUserEmail))
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	w, c := performRequest(t, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Nil(t, c)
	assert.Contains(t, w.Body.String(), "missing authorization token")
}

func TestRequireAuth_MalformedHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "no scheme", header: "just-a-token"},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, c := performRequest(t, tt.header)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Nil(t, c)
		})
	}
}

func TestRequireAuth_WrongSecret(t *testing.T) {
	token := signToken(t, "another-secret", jwt.MapClaims{
		"sub": "user-123",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	w, c := performRequest(t, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Nil(t, c)
	assert.Contains(t, w.Body.String(), "invalid or expired token")
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": "user-123",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	w, c := performRequest(t, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Nil(t, c)
	assert.Contains(t, w.Body.String(), "invalid or expired token")
}

func TestRequireAuth_UnexpectedSigningMethod(t *testing.T) {
	// "none" tokens must never pass verification.
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "user-123",
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	w, c := performRequest(t, "Bearer "+signed)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Nil(t, c)
}

func TestRequireAuth_MissingSubject(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"email": "jamie@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	w, c := performRequest(t, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Nil(t, c)
	assert.Contains(t, w.Body.String(), "invalid token subject")
}

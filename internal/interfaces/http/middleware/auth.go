package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"parksexplorer/internal/shared/constants"
	"parksexplorer/internal/shared/logger"
	"parksexplorer/internal/shared/utils"
)

// ContextKeyAccessToken holds the raw bearer token for handlers that relay
// it to the identity service.
const ContextKeyAccessToken = "access_token"

// AuthMiddleware verifies identity-service access tokens locally. The tokens
// are HS256 JWTs signed with the project's JWT secret; no network round trip
// is needed per request.
type AuthMiddleware struct {
	jwtSecret []byte
	logger    logger.Interface
}

func NewAuthMiddleware(jwtSecret string, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtSecret: []byte(jwtSecret),
		logger:    logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		claims := jwt.MapClaims{}
		parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
			return m.jwtSecret, nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil || !parsed.Valid {
			m.logger.Warnw("failed to verify access token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		subject, err := claims.GetSubject()
		if err != nil || subject == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid token subject")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, subject)
		if email, ok := claims["email"].(string); ok {
			c.Set(constants.ContextKeyUserEmail, email)
		}
		c.Set(ContextKeyAccessToken, token)

		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader(constants.HeaderAuthorization)
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// UserID returns the authenticated user's identity-service UUID.
func UserID(c *gin.Context) string {
	return c.GetString(constants.ContextKeyUserID)
}

// AccessToken returns the raw bearer token of the current request.
func AccessToken(c *gin.Context) string {
	return c.GetString(ContextKeyAccessToken)
}

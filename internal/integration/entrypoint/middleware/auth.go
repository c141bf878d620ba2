// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/scraptrade/backend/internal/application/adapter"
	domainerror "github.com/scraptrade/backend/internal/domain/error"
	"github.com/scraptrade/backend/internal/integration/entrypoint/dto"
)

// Gin context keys carrying the authenticated operator. The backend serves a
// single yard operator plus an admin account, so the claims are just identity.
const (
	operatorIDKey    = "operator_id"
	operatorEmailKey = "operator_email"
)

// AuthMiddleware guards the record-keeping routes with JWT bearer tokens.
type AuthMiddleware struct {
	tokenService adapter.TokenService
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(tokenService adapter.TokenService) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
	}
}

// Authenticate rejects requests without a valid bearer token and stores the
// operator's identity on the Gin context for downstream handlers.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, errCode, errMsg := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			unauthorized(c, errCode, errMsg)
			return
		}

		claims, err := m.tokenService.ValidateAccessToken(c.Request.Context(), token)
		if err != nil {
			unauthorized(c, domainerror.ErrCodeInvalidToken, "Invalid or expired token")
			return
		}

		c.Set(operatorIDKey, claims.UserID)
		c.Set(operatorEmailKey, claims.Email)

		c.Next()
	}
}

// bearerToken extracts the token from an Authorization header value. A blank
// token is returned together with the error code and message to respond with.
func bearerToken(header string) (string, domainerror.AuthErrorCode, string) {
	if header == "" {
		return "", domainerror.ErrCodeMissingToken, "Authorization header is required"
	}
	if !strings.HasPrefix(header, "Bearer ") {
		return "", domainerror.ErrCodeInvalidToken, "Invalid authorization header format"
	}
	token := strings.TrimPrefix(header, "Bearer ")
	if token == "" {
		return "", domainerror.ErrCodeMissingToken, "Token is required"
	}
	return token, "", ""
}

func unauthorized(c *gin.Context, code domainerror.AuthErrorCode, message string) {
	c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: message,
		Code:  string(code),
	})
	c.Abort()
}

// OperatorID returns the authenticated operator's ID from the Gin context.
func OperatorID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(operatorIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := value.(uuid.UUID)
	return id, ok
}

// OperatorEmail returns the authenticated operator's email from the Gin context.
func OperatorEmail(c *gin.Context) (string, bool) {
	value, exists := c.Get(operatorEmailKey)
	if !exists {
		return "", false
	}
	email, ok := value.(string)
	return email, ok
}

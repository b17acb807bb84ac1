package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/karizzz/subletez-backend/internal/identity"
)

// ContextKeyUserID is the gin context key under which the verified subject
// ID is stored.
const ContextKeyUserID = "userID"

// ContextKeyUserEmail is the gin context key for the verified email claim.
const ContextKeyUserEmail = "userEmail"

// AuthMiddleware verifies bearer tokens against the identity provider and
// populates the request context with the verified claims.
type AuthMiddleware struct {
	identity identity.Client
	logger   *zap.Logger
}

// NewAuthMiddleware creates an AuthMiddleware over the given identity client.
func NewAuthMiddleware(idClient identity.Client, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{identity: idClient, logger: logger}
}

// VerifyToken rejects requests without a valid "Bearer {token}" header.
// On success the subject ID and email are set in the gin context.
func (m *AuthMiddleware) VerifyToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be 'Bearer {token}'"})
			return
		}

		claims, err := m.identity.VerifyToken(c.Request.Context(), parts[1])
		if err != nil {
			m.logger.Debug("token verification failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired authentication token"})
			return
		}

		c.Set(ContextKeyUserID, claims.UID)
		if claims.Email != "" {
			c.Set(ContextKeyUserEmail, claims.Email)
		}
		c.Next()
	}
}

// UserID extracts the verified subject ID set by VerifyToken.
func UserID(c *gin.Context) (string, bool) {
	raw, exists := c.Get(ContextKeyUserID)
	if !exists {
		return "", false
	}
	uid, ok := raw.(string)
	return uid, ok && uid != ""
}

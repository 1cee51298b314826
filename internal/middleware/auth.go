package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hong13131/godlife/internal/auth"
	userModel "github.com/hong13131/godlife/internal/user/model"
)

const userContextKey = "currentUser"

// IdentityResolver maps a verified external identity to the internal user,
// provisioning the record on first contact.
type IdentityResolver interface {
	Resolve(ctx context.Context, identity *auth.Identity) (*userModel.User, error)
}

// Auth returns a middleware that verifies the bearer token on every request
// and stores the resolved user in the context.
func Auth(verifier *auth.Verifier, resolver IdentityResolver, logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		identity, err := verifier.VerifyToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		user, err := resolver.Resolve(c.Request.Context(), identity)
		if err != nil {
			logger.Errorw("failed to resolve user", "auth_user_id", identity.Subject, "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the user resolved by the Auth middleware.
func CurrentUser(c *gin.Context) *userModel.User {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil
	}
	user, ok := value.(*userModel.User)
	if !ok {
		return nil
	}
	return user
}

// SetCurrentUser stores a user in the context. Exposed for handler tests.
func SetCurrentUser(c *gin.Context, user *userModel.User) {
	c.Set(userContextKey, user)
}

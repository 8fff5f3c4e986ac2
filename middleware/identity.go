package middleware

import (
	"net/http"
	"strings"

	"github.com/coder/quartz"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"go-splendor/utils"
)

const (
	IdentityCookie = "splendor_identity"
	identityKey    = "identity"
)

// IdentityMiddleware gives every caller a stable identity. A valid token from
// the Authorization header or the identity cookie is reused; otherwise a new
// uuid is issued and set as a cookie.
func IdentityMiddleware(secret []byte, clock quartz.Clock, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if claims, err := utils.ParseIdentityToken(secret, token); err == nil {
				c.Set(identityKey, claims.UserID)
				c.Next()
				return
			}
		}
		if token, err := c.Cookie(IdentityCookie); err == nil {
			if claims, err := utils.ParseIdentityToken(secret, token); err == nil {
				c.Set(identityKey, claims.UserID)
				c.Next()
				return
			}
		}

		id := uuid.NewString()
		token, err := utils.GenerateIdentityToken(secret, id, clock.Now())
		if err != nil {
			logger.Error("❌ identity token", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "identity unavailable"})
			return
		}
		c.SetCookie(IdentityCookie, token, int(utils.IdentityTTL.Seconds()), "/", "", false, true)
		c.Header("X-Identity-Token", token)
		c.Set(identityKey, id)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}

// Identity returns the identity set by IdentityMiddleware.
func Identity(c *gin.Context) string {
	return c.GetString(identityKey)
}

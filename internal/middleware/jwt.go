package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"prepository/internal/pkg/jwt"
	"prepository/internal/pkg/response"
)

const (
	ContextUserIDKey    = "user_id"
	ContextUserEmailKey = "user_email"
)

// JWTAuth rejects every credential failure with the same 401 body so a
// caller cannot tell a missing token from a tampered or expired one.
// The differentiated reason is only logged.
func JWTAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			reject(c, "missing authorization header")
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			reject(c, "malformed authorization header")
			return
		}
		claims, err := jwt.ParseToken(parts[1], secret)
		if err != nil {
			reject(c, "invalid token")
			return
		}
		c.Set(ContextUserIDKey, claims.UserID)
		if claims.Email != "" {
			c.Set(ContextUserEmailKey, claims.Email)
		}
		c.Next()
	}
}

func reject(c *gin.Context, reason string) {
	logutil.GetLogger(c.Request.Context()).Debug("auth rejected",
		zap.String("reason", reason),
		zap.String("path", c.Request.URL.Path),
	)
	response.Error(c, http.StatusUnauthorized, "unauthorized", "unauthorized")
	c.Abort()
}

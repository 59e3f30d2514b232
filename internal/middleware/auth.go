package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"salescrm/internal/auth"
)

// Auth extracts and verifies a bearer token, attaching the identity to
// the request context. Verification is best-effort: a missing, malformed
// or invalid token demotes the request to an anonymous context instead of
// rejecting it; resolvers that need identity fail on their own.
func Auth(tokens *auth.TokenService, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
			log.Warnf("Middleware: Invalid Authorization header format, proceeding anonymously")
			c.Next()
			return
		}

		claims, err := tokens.Verify(parts[1])
		if err != nil {
			log.Warnf("Middleware: Token verification failed, proceeding anonymously: %v", err)
			c.Next()
			return
		}

		log.Debugf("Middleware: Authenticated request for user %s", claims.UserID)
		c.Request = c.Request.WithContext(auth.WithIdentity(c.Request.Context(), claims))
		c.Next()
	}
}

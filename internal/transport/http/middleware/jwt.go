package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"blogit/internal/pkg/jwtutil"
	"blogit/internal/transport/http/response"
)

const (
	ContextUserIDKey    = "user_id"
	ContextPrincipalKey = "principal"
)

// AuthJWT verifies the session credential from the Authorization header or,
// failing that, the auth cookie. Verification is a pure signature and expiry
// check; no store access happens here.
func AuthJWT(secret, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c, cookieName)
		if token == "" {
			response.Error(c, 401, response.CodeUnauthorized, "unauthorized, please login")
			c.Abort()
			return
		}

		claims, err := jwtutil.ParseToken(secret, token)
		if err != nil {
			response.Error(c, 401, response.CodeUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextPrincipalKey, claims.Principal())
		c.Next()
	}
}

func extractToken(c *gin.Context, cookieName string) string {
	authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
	const prefix = "Bearer "
	if strings.HasPrefix(authHeader, prefix) {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, prefix))
	}

	if cookie, err := c.Cookie(cookieName); err == nil {
		return strings.TrimSpace(cookie)
	}
	return ""
}

// UserID returns the authenticated principal's id, or false when the request
// did not pass through AuthJWT.
func UserID(c *gin.Context) (uint, bool) {
	idAny, exists := c.Get(ContextUserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := idAny.(uint)
	if !ok || id == 0 {
		return 0, false
	}
	return id, true
}

func Principal(c *gin.Context) (jwtutil.Principal, bool) {
	pAny, exists := c.Get(ContextPrincipalKey)
	if !exists {
		return jwtutil.Principal{}, false
	}
	p, ok := pAny.(jwtutil.Principal)
	return p, ok
}

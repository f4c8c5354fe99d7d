package middleware

import (
	"net/http"
	"strings"

	"oceanbreeze/internal/domain"
	"oceanbreeze/internal/pkg/jwt"
	"oceanbreeze/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserID  = "user_id"
	ctxRole    = "role"
	ctxSession = "session"
)

// SessionSource exposes the single active session of the process.
type SessionSource interface {
	Session() *domain.SessionUser
}

// JWTAuth accepts a bearer token only while it belongs to the active session.
// A token issued before a logout or a login as someone else is rejected.
func JWTAuth(jwtService *jwt.Service, sessions SessionSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Abort(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authorization header required")
			return
		}

		tokenStr, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenStr == "" {
			response.Abort(c, http.StatusUnauthorized, "INVALID_TOKEN", "Bearer token required")
			return
		}

		claims, err := jwtService.ValidateToken(tokenStr)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired token")
			return
		}

		session := sessions.Session()
		if session == nil || session.ID != claims.UserID {
			response.Abort(c, http.StatusUnauthorized, "SESSION_EXPIRED", "No active session for this token")
			return
		}

		c.Set(ctxUserID, session.ID)
		c.Set(ctxRole, string(session.Role))
		c.Set(ctxSession, session)
		c.Next()
	}
}

// CurrentUser returns the session stored by JWTAuth, or nil.
func CurrentUser(c *gin.Context) *domain.SessionUser {
	v, ok := c.Get(ctxSession)
	if !ok {
		return nil
	}
	u, _ := v.(*domain.SessionUser)
	return u
}

package middleware

import (
	"github.com/gin-gonic/gin"

	"tally/internal/application/user/sessions"
	"tally/internal/shared/logger"
	"tally/internal/shared/utils"
)

// ContextKeyUserID is where the resolved identity lands in the gin context.
const ContextKeyUserID = "user_id"

// SessionMiddleware is the single authorization checkpoint. It reads
// the session cookie, resolves it against the session store, and
// injects the authenticated user ID into the request context so
// handlers never touch the cookie themselves.
type SessionMiddleware struct {
	sessions *sessions.Manager
	logger   logger.Interface
}

func NewSessionMiddleware(sessions *sessions.Manager, logger logger.Interface) *SessionMiddleware {
	return &SessionMiddleware{
		sessions: sessions,
		logger:   logger,
	}
}

// RequireSession aborts with a failure envelope when no valid session
// accompanies the request. Per the API contract the response is still
// HTTP 200; the envelope carries the failure.
func (m *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := utils.GetSessionToken(c)
		if token == "" {
			utils.FailureResponse(c, "authentication required, please log in again")
			c.Abort()
			return
		}

		userID, ok, err := m.sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			m.logger.Errorw("session lookup failed", "error", err)
			utils.FailureResponse(c, "backend processing failed")
			c.Abort()
			return
		}
		if !ok {
			utils.FailureResponse(c, "authentication required, please log in again")
			c.Abort()
			return
		}

		c.Set(ContextKeyUserID, userID)

		c.Next()
	}
}

// OptionalSession resolves the session when present but never aborts;
// handlers decide how to treat an anonymous request.
func (m *SessionMiddleware) OptionalSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := utils.GetSessionToken(c)
		if token != "" {
			userID, ok, err := m.sessions.Resolve(c.Request.Context(), token)
			if err != nil {
				m.logger.Errorw("session lookup failed", "error", err)
			} else if ok {
				c.Set(ContextKeyUserID, userID)
			}
		}

		c.Next()
	}
}

// UserIDFromContext returns the resolved user ID, or "" when the
// request is unauthenticated.
func UserIDFromContext(c *gin.Context) string {
	return c.GetString(ContextKeyUserID)
}

package routes

import (
	"github.com/gin-gonic/gin"

	"tally/internal/interfaces/http/handlers"
	"tally/internal/interfaces/http/middleware"
)

// MemberRouteConfig holds dependencies for session-protected routes.
type MemberRouteConfig struct {
	MemberHandler     *handlers.MemberHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// SetupMemberRoutes configures routes requiring an active session.
func SetupMemberRoutes(engine *gin.Engine, cfg *MemberRouteConfig) {
	api := engine.Group("/api")
	api.Use(cfg.SessionMiddleware.RequireSession())
	{
		api.POST("/change-password", cfg.MemberHandler.ChangePassword)
		api.POST("/counter", cfg.MemberHandler.UpdateCounter)
	}
}

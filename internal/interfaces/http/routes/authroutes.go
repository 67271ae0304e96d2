package routes

import (
	"github.com/gin-gonic/gin"

	"tally/internal/interfaces/http/handlers"
	"tally/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler       *handlers.AuthHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// SetupAuthRoutes configures signup/login/logout and session probing.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	api := engine.Group("/api")
	{
		api.POST("/signup", cfg.AuthHandler.Signup)
		api.POST("/login", cfg.AuthHandler.Login)
		api.POST("/logout", cfg.AuthHandler.Logout)
		api.GET("/auth", cfg.SessionMiddleware.OptionalSession(), cfg.AuthHandler.GetCurrentUser)
		api.POST("/password-strength", cfg.AuthHandler.PasswordStrength)
	}
}

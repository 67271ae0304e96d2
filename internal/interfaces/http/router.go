package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"tally/internal/application/user/sessions"
	"tally/internal/application/user/usecases"
	"tally/internal/infrastructure/config"
	"tally/internal/infrastructure/repository"
	"tally/internal/interfaces/http/handlers"
	"tally/internal/interfaces/http/middleware"
	"tally/internal/interfaces/http/routes"
	"tally/internal/shared/logger"
	"tally/internal/shared/utils"
)

// Router wires repositories, use cases, handlers, and middleware into
// a gin engine.
type Router struct {
	engine *gin.Engine
	cfg    *config.Config
	db     *gorm.DB
	logger logger.Interface
}

func NewRouter(cfg *config.Config, db *gorm.DB, logger logger.Interface) *Router {
	return &Router{
		engine: gin.New(),
		cfg:    cfg,
		db:     db,
		logger: logger,
	}
}

// SetupRoutes builds the full dependency graph and registers every route.
func (r *Router) SetupRoutes() {
	r.engine.Use(
		middleware.Recovery(),
		middleware.Logger(r.logger),
		middleware.CORS(r.cfg.Server.AllowedOrigins),
	)

	userRepo := repository.NewUserRepository(r.db)
	sessionRepo := repository.NewSessionRepository(r.db)

	sessionManager := sessions.NewManager(sessionRepo, r.logger.Named("sessions"))
	sessionMiddleware := middleware.NewSessionMiddleware(sessionManager, r.logger.Named("auth"))

	signupUC := usecases.NewSignupUseCase(userRepo, sessionManager, r.logger)
	loginUC := usecases.NewLoginUseCase(userRepo, sessionManager, r.logger)
	logoutUC := usecases.NewLogoutUseCase(sessionManager, r.logger)
	getProfileUC := usecases.NewGetProfileUseCase(userRepo, r.logger)
	changePasswordUC := usecases.NewChangePasswordUseCase(userRepo, r.logger)
	updateCounterUC := usecases.NewUpdateCounterUseCase(userRepo, r.logger)

	authHandler := handlers.NewAuthHandler(
		signupUC,
		loginUC,
		logoutUC,
		getProfileUC,
		r.logger.Named("auth_handler"),
		r.cfg.Auth.Session,
		r.cfg.Auth.Cookie,
	)
	memberHandler := handlers.NewMemberHandler(
		changePasswordUC,
		updateCounterUC,
		r.logger.Named("member_handler"),
	)

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler:       authHandler,
		SessionMiddleware: sessionMiddleware,
	})
	routes.SetupMemberRoutes(r.engine, &routes.MemberRouteConfig{
		MemberHandler:     memberHandler,
		SessionMiddleware: sessionMiddleware,
	})

	r.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.engine.NoRoute(func(c *gin.Context) {
		utils.FailureResponse(c, "endpoint not found")
	})
}

// Engine exposes the underlying gin engine for the HTTP server.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"fixdesk/api"
	ticketusecases "fixdesk/internal/application/ticket/usecases"
	userusecases "fixdesk/internal/application/user/usecases"
	"fixdesk/internal/infrastructure/auth"
	"fixdesk/internal/infrastructure/config"
	"fixdesk/internal/infrastructure/repository"
	"fixdesk/internal/interfaces/http/handlers"
	tickethandler "fixdesk/internal/interfaces/http/handlers/ticket"
	"fixdesk/internal/interfaces/http/middleware"
	"fixdesk/internal/interfaces/http/routes"
	"fixdesk/internal/shared/constants"
	"fixdesk/internal/shared/logger"
)

// Router holds the gin engine and the route dependencies.
type Router struct {
	engine         *gin.Engine
	cfg            *config.Config
	authHandler    *handlers.AuthHandler
	userHandler    *handlers.UserHandler
	ticketHandler  *tickethandler.TicketHandler
	authMiddleware *middleware.AuthMiddleware
	logger         logger.Interface
}

// NewRouter wires repositories, use cases, and handlers onto a fresh
// gin engine.
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	engine := gin.New()

	ticketRepo := repository.NewTicketRepository(db)
	historyRepo := repository.NewHistoryRepository(db)
	userRepo := repository.NewUserRepository(db)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)

	createTicketUC := ticketusecases.NewCreateTicketUseCase(ticketRepo, log)
	updateTicketUC := ticketusecases.NewUpdateTicketUseCase(ticketRepo, log)
	toggleStatusUC := ticketusecases.NewToggleTicketStatusUseCase(ticketRepo, log)
	deleteTicketUC := ticketusecases.NewDeleteTicketUseCase(ticketRepo, log)
	getTicketUC := ticketusecases.NewGetTicketUseCase(ticketRepo, log)
	listTicketsUC := ticketusecases.NewListTicketsUseCase(ticketRepo, log)
	addHistoryUC := ticketusecases.NewAddHistoryEntryUseCase(ticketRepo, historyRepo, log)
	updateHistoryUC := ticketusecases.NewUpdateHistoryEntryUseCase(ticketRepo, historyRepo, log)
	deleteHistoryUC := ticketusecases.NewDeleteHistoryEntryUseCase(ticketRepo, historyRepo, log)

	registerUC := userusecases.NewRegisterUserUseCase(userRepo, hasher, log)
	loginUC := userusecases.NewLoginWithPasswordUseCase(userRepo, hasher, jwtService, log)
	listUsersUC := userusecases.NewListUsersUseCase(userRepo, log)
	deleteUserUC := userusecases.NewDeleteUserUseCase(userRepo, log)

	ticketHandler := tickethandler.NewTicketHandler(
		createTicketUC, updateTicketUC, toggleStatusUC, deleteTicketUC,
		getTicketUC, listTicketsUC,
		addHistoryUC, updateHistoryUC, deleteHistoryUC,
	)

	return &Router{
		engine:         engine,
		cfg:            cfg,
		authHandler:    handlers.NewAuthHandler(loginUC, registerUC),
		userHandler:    handlers.NewUserHandler(listUsersUC, deleteUserUC),
		ticketHandler:  ticketHandler,
		authMiddleware: middleware.NewAuthMiddleware(jwtService, log),
		logger:         log,
	}
}

// SetupRoutes configures all HTTP routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.engine.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.engine.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/swagger/")
	})
	r.engine.GET("/swagger/*any", func(c *gin.Context) {
		if strings.TrimPrefix(c.Param("any"), "/") == "openapi.json" {
			c.Data(http.StatusOK, "application/json", api.OpenAPISpec)
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/openapi.json"))(c)
	})

	v1 := r.engine.Group(constants.APIVersionPrefix)

	routes.SetupAuthRoutes(v1, &routes.AuthRouteConfig{
		AuthHandler: r.authHandler,
	})
	routes.SetupTicketRoutes(v1, &routes.TicketRouteConfig{
		TicketHandler:  r.ticketHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupUserRoutes(v1, &routes.UserRouteConfig{
		UserHandler:    r.userHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

// GetEngine returns the gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

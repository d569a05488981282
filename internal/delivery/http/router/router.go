// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bonsai/internal/delivery/http/middleware"
	"bonsai/internal/delivery/http/router/handler"
	"bonsai/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	StatusHandler     *handler.StatusHandler
	MigrationHandler  *handler.MigrationHandler
	UserHandler       *handler.UserHandler
	SessionHandler    *handler.SessionHandler
	ActivationHandler *handler.ActivationHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	statusHandler     *handler.StatusHandler
	migrationHandler  *handler.MigrationHandler
	userHandler       *handler.UserHandler
	sessionHandler    *handler.SessionHandler
	activationHandler *handler.ActivationHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		statusHandler:     params.StatusHandler,
		migrationHandler:  params.MigrationHandler,
		userHandler:       params.UserHandler,
		sessionHandler:    params.SessionHandler,
		activationHandler: params.ActivationHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	can := r.authMiddleware.CanRequest

	api := e.Group("/api/v1")
	api.Use(r.authMiddleware.InjectCaller)

	api.GET("/status", r.statusHandler.GetStatus)

	api.GET("/migrations", r.migrationHandler.ListPending, can(entity.FeatureReadMigration))
	api.POST("/migrations", r.migrationHandler.RunPending, can(entity.FeatureCreateMigration))

	api.POST("/users", r.userHandler.RegisterUser, can(entity.FeatureCreateUser))
	api.GET("/users/:username", r.userHandler.GetUser)
	// Authorized against the target user inside UserUsecase.Update.
	api.PATCH("/users/:username", r.userHandler.UpdateUser)

	api.GET("/user", r.userHandler.GetCurrentUser, can(entity.FeatureReadSession))

	api.POST("/sessions", r.sessionHandler.Login, can(entity.FeatureCreateSession))
	api.DELETE("/sessions", r.sessionHandler.Logout, can(entity.FeatureReadSession))

	api.PATCH("/activations/:token_id", r.activationHandler.Activate, can(entity.FeatureReadActivationToken))
}

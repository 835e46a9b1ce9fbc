// Package router wires the API handlers onto echo routes.
package router

import (
	"upkeep/config"
	"upkeep/internal/delivery/api/middleware"
	"upkeep/internal/delivery/api/router/handler"
	"upkeep/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	RegistrationHandler *handler.RegistrationHandler
	DispatchHandler     *handler.DispatchHandler
	FeedHandler         *handler.FeedHandler
	DeliveryHandler     *handler.DeliveryHandler
	SchedulerHandler    *handler.SchedulerHandler
	TestHandler         *handler.TestHandler
	AuthMiddleware      *middleware.AuthMiddleware
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	registrationHandler *handler.RegistrationHandler
	dispatchHandler     *handler.DispatchHandler
	feedHandler         *handler.FeedHandler
	deliveryHandler     *handler.DeliveryHandler
	schedulerHandler    *handler.SchedulerHandler
	testHandler         *handler.TestHandler
	authMiddleware      *middleware.AuthMiddleware
	config              *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		registrationHandler: params.RegistrationHandler,
		dispatchHandler:     params.DispatchHandler,
		feedHandler:         params.FeedHandler,
		deliveryHandler:     params.DeliveryHandler,
		schedulerHandler:    params.SchedulerHandler,
		testHandler:         params.TestHandler,
		authMiddleware:      params.AuthMiddleware,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Cron trigger, authenticated by the shared trigger token instead of a user token
	internalGroup := e.Group("/internal")
	{
		internalGroup.POST("/scheduler/run", r.schedulerHandler.Run)
	}

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	registrationsGroup := apiV1.Group("/registrations")
	{
		registrationsGroup.POST("", r.registrationHandler.Register)
		registrationsGroup.GET("", r.registrationHandler.List)
		registrationsGroup.DELETE("/:id", r.registrationHandler.Delete)
		registrationsGroup.POST("/revoke", r.registrationHandler.Revoke)
	}

	apiV1.GET("/push/web/vapid-key", r.registrationHandler.VAPIDKey)

	notificationsGroup := apiV1.Group("/notifications")
	{
		notificationsGroup.POST("/dispatch", r.dispatchHandler.Dispatch)
		notificationsGroup.POST("/test", r.dispatchHandler.Test)
	}

	feedGroup := apiV1.Group("/feed")
	{
		feedGroup.GET("", r.feedHandler.List)
		feedGroup.POST("/:id/read", r.feedHandler.MarkRead)
		// Producers write into other users' feeds, so only service accounts may call it
		feedGroup.POST("", r.feedHandler.Create, r.authMiddleware.RequireRole(entity.RoleAdmin))
	}

	apiV1.GET("/deliveries", r.deliveryHandler.List)
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Test routes - only enabled when configured
	if r.config.TestRoutes != nil && r.config.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		testGroup.GET("/public", r.testHandler.Public)

		testGroup.Use(r.authMiddleware.Authenticate)
		{
			testGroup.GET("/auth", r.testHandler.WhoAmI)
			testGroup.GET("/admin", r.testHandler.WhoAmI, r.authMiddleware.RequireRole(entity.RoleAdmin))
		}
	}
}

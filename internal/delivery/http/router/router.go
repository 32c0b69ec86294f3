// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"taskhub/internal/delivery/http/middleware"
	"taskhub/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	TodoHandler         *handler.TodoHandler
	HealthHandler       *handler.HealthHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	todoHandler         *handler.TodoHandler
	healthHandler       *handler.HealthHandler
	authMiddleware      *middleware.AuthMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		todoHandler:         params.TodoHandler,
		healthHandler:       params.HealthHandler,
		authMiddleware:      params.AuthMiddleware,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", r.healthHandler.Check)

	// Public auth routes
	e.POST("/signup", r.userHandler.SignUp)
	e.POST("/signin", r.userHandler.SignIn)

	// Everything below requires a valid bearer token.
	e.PUT("/changepassword", r.userHandler.ChangePassword, r.authMiddleware.Authenticate)

	todoGroup := e.Group("/todos")
	todoGroup.Use(r.authMiddleware.Authenticate)
	{
		todoGroup.GET("", r.todoHandler.List)
		todoGroup.POST("", r.todoHandler.Create)
		todoGroup.PUT("/:id", r.todoHandler.Update)
		todoGroup.DELETE("/:id", r.todoHandler.Delete)
	}
}

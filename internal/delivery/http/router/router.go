// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"whisper/internal/delivery/http/middleware"
	"whisper/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	MessageHandler      *handler.MessageHandler
	WSHandler           *handler.WSHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	messageHandler      *handler.MessageHandler
	wsHandler           *handler.WSHandler
	authMiddleware      *middleware.AuthMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		messageHandler:      params.MessageHandler,
		wsHandler:           params.WSHandler,
		authMiddleware:      params.AuthMiddleware,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/signin", r.authHandler.Signin)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/check", r.authHandler.Check, r.authMiddleware.Authenticate)
		authGroup.PUT("/update-profile", r.authHandler.UpdateProfile, r.authMiddleware.Authenticate)
		authGroup.DELETE("/delete-account", r.authHandler.DeleteAccount, r.authMiddleware.Authenticate)
	}

	// Message routes that require authentication
	messageGroup := e.Group("/messages")
	messageGroup.Use(r.authMiddleware.Authenticate)
	{
		messageGroup.GET("/users", r.messageHandler.ListContacts)
		messageGroup.GET("/:id", r.messageHandler.GetHistory)
		messageGroup.POST("/send/:id", r.messageHandler.Send)
	}

	// Live connection endpoint; the token travels as a query parameter
	// because browsers cannot set headers on websocket handshakes.
	e.GET("/ws", r.wsHandler.Serve, r.authMiddleware.Authenticate)
}

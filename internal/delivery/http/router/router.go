// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"makan/internal/delivery/http/middleware"
	"makan/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	RewardsHandler      *handler.RewardsHandler
	OrderHandler        *handler.OrderHandler
	AdminHandler        *handler.AdminHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	rewardsHandler      *handler.RewardsHandler
	orderHandler        *handler.OrderHandler
	adminHandler        *handler.AdminHandler
	authMiddleware      *middleware.AuthMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		rewardsHandler:      params.RewardsHandler,
		orderHandler:        params.OrderHandler,
		adminHandler:        params.AdminHandler,
		authMiddleware:      params.AuthMiddleware,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Rewards routes for the authenticated user
	rewardsGroup := e.Group("/rewards")
	rewardsGroup.Use(r.authMiddleware.Authenticate)
	{
		rewardsGroup.POST("/award", r.rewardsHandler.AwardPoints)
		rewardsGroup.GET("/balance", r.rewardsHandler.GetBalance)
	}

	// Order routes for the authenticated user
	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.POST("/checkout", r.orderHandler.Checkout)
		orderGroup.GET("", r.orderHandler.GetOrderHistory)
	}

	// Back-office routes that require authentication and the "admin" role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)       // First, check if logged in
	adminGroup.Use(r.authMiddleware.RequireRole("admin")) // Then, check for the role
	{
		adminGroup.GET("/orders", r.adminHandler.ListOrders)
		adminGroup.POST("/orders/:id/verify-payment", r.adminHandler.VerifyPayment)
		adminGroup.POST("/orders/:id/status", r.adminHandler.ForceStatus)
		adminGroup.POST("/orders/:id/refund", r.adminHandler.Refund)
		adminGroup.GET("/orders/:id/refunds", r.adminHandler.ListRefunds)
	}
}

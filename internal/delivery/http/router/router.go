// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"brewclub/internal/delivery/http/middleware"
	"brewclub/internal/delivery/http/router/handler"
	"brewclub/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	OrderHandler   *handler.OrderHandler
	ReceiptHandler *handler.ReceiptHandler
	MessageHandler *handler.MessageHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	orderHandler   *handler.OrderHandler
	receiptHandler *handler.ReceiptHandler
	messageHandler *handler.MessageHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		orderHandler:   params.OrderHandler,
		receiptHandler: params.ReceiptHandler,
		messageHandler: params.MessageHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public endpoints
	e.GET("/menu", r.orderHandler.Menu)
	e.POST("/webhooks/sms", r.messageHandler.Receive)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.RefreshToken)
	}

	// Member routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/profile", r.userHandler.GetProfile)
		userGroup.PUT("/profile", r.userHandler.UpdateProfile)
		userGroup.PUT("/password", r.userHandler.ChangePassword)
	}

	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.POST("", r.orderHandler.PlaceOrder)
		orderGroup.GET("", r.orderHandler.ListOrders)
		orderGroup.GET("/mine", r.orderHandler.ListMyOrders)
		orderGroup.PUT("/:id", r.orderHandler.UpdateOrder)
		orderGroup.POST("/:id/close", r.orderHandler.CloseOrder)
		orderGroup.DELETE("/:id", r.orderHandler.CancelOrder)
	}

	receiptGroup := e.Group("/receipts")
	receiptGroup.Use(r.authMiddleware.Authenticate)
	{
		receiptGroup.POST("", r.receiptHandler.MakeReceipt)
		receiptGroup.GET("", r.receiptHandler.ListMyReceipts)
		receiptGroup.GET("/:id", r.receiptHandler.GetReceipt)
	}

	// Administrative routes require authentication and the "admin" role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin.String()))
	{
		adminGroup.GET("/users", r.userHandler.ListUsers)
		adminGroup.PUT("/users/:id", r.userHandler.UpdateUser)
		adminGroup.POST("/users/:id/reset-password", r.userHandler.ResetPassword)
		adminGroup.GET("/orders/open", r.orderHandler.ListOpenOrders)
		adminGroup.GET("/receipts", r.receiptHandler.ListReceipts)
	}
}

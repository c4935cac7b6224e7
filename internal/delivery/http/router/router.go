// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"mezze/config"
	"mezze/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config       *config.Config
	MenuHandler  *handler.MenuHandler
	CartHandler  *handler.CartHandler
	OrderHandler *handler.OrderHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg          *config.Config
	menuHandler  *handler.MenuHandler
	cartHandler  *handler.CartHandler
	orderHandler *handler.OrderHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:          params.Config,
		menuHandler:  params.MenuHandler,
		cartHandler:  params.CartHandler,
		orderHandler: params.OrderHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Item and hero images referenced by the catalog
	e.Static("/images", r.cfg.Assets.Dir)

	api := e.Group("/api")

	menuGroup := api.Group("/menu")
	{
		menuGroup.GET("/categories", r.menuHandler.ListCategories)
		menuGroup.GET("/items", r.menuHandler.BrowseItems)
		menuGroup.GET("/categories/:categoryID/items/:itemID", r.menuHandler.GetItem)
	}

	cartGroup := api.Group("/cart")
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.DELETE("", r.cartHandler.ClearCart)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PATCH("/items/:itemID", r.cartHandler.UpdateQuantity)
		cartGroup.DELETE("/items/:itemID", r.cartHandler.RemoveItem)
		cartGroup.PUT("/notes", r.cartHandler.SetNotes)
	}

	orderGroup := api.Group("/order")
	{
		orderGroup.POST("/compose", r.orderHandler.ComposeOrder)
		orderGroup.GET("/qr", r.orderHandler.OrderLinkQR)
	}
}

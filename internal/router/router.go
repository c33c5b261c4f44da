// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4" // Echo handles routing and request dispatch

	"github.com/alicemeyer/items-api/internal/handler"
)

// RegisterRoutes registers every endpoint on the provided Echo instance.
// The optional limit middleware (Redis token bucket) is applied to the
// /items group only; the status, test and health endpoints stay unmetered
// so uptime checks are never throttled.
func RegisterRoutes(e *echo.Echo, h *handler.ItemHandler, limit echo.MiddlewareFunc) {
	// Static status message plus the known endpoint list.
	e.GET("/", handler.Root)
	// Liveness/readiness probe; always 200, body carries the database state.
	e.GET("/health", h.Health)
	// Validation echo endpoint; persists nothing.
	e.POST("/test", h.TestItem)

	items := e.Group("/items")
	if limit != nil {
		items.Use(limit)
	}
	items.POST("", h.CreateItem)
	items.GET("", h.GetItems)
	items.GET("/:id", h.GetItem)
	items.PUT("/:id", h.UpdateItem)
	items.PATCH("/:id", h.UpdateItem)
	items.DELETE("/:id", h.DeleteItem)
}

// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"mezze/internal/delivery/http/response"
	"mezze/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MenuHandler holds dependencies for menu browsing handlers.
type MenuHandler struct {
	uc     usecase.MenuUsecase
	logger *slog.Logger
}

// NewMenuHandler is the constructor for MenuHandler, injected by Fx.
func NewMenuHandler(uc usecase.MenuUsecase, logger *slog.Logger) *MenuHandler {
	return &MenuHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListCategories handles listing all menu categories.
func (h *MenuHandler) ListCategories(c echo.Context) error {
	view, err := h.uc.ListCategories(c.Request().Context(), requestLanguage(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Categories retrieved successfully")
}

// BrowseItems handles browsing one category with filter, sort and limit.
func (h *MenuHandler) BrowseItems(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return response.BadRequest(c, "INVALID_LIMIT", "Limit must be a non-negative integer")
		}
		limit = parsed
	}

	query := usecase.BrowseQuery{
		CategoryID: c.QueryParam("category"),
		Query:      c.QueryParam("q"),
		Sort:       usecase.ParseSortMode(c.QueryParam("sort")),
		Limit:      limit,
		Language:   requestLanguage(c),
	}

	view, err := h.uc.BrowseItems(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Items retrieved successfully")
}

// GetItem handles retrieving a single menu item.
func (h *MenuHandler) GetItem(c echo.Context) error {
	view, err := h.uc.GetItem(c.Request().Context(), c.Param("categoryID"), c.Param("itemID"), requestLanguage(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Item retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

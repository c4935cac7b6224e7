package handler

import (
	"log/slog"
	"net/http"

	"mezze/internal/delivery/http/response"
	"mezze/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order handoff handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// ComposeOrder handles composing the order message and messaging deep link
// from the session cart.
func (h *OrderHandler) ComposeOrder(c echo.Context) error {
	handoff, err := h.uc.ComposeOrder(c.Request().Context(), sessionID(c), requestLanguage(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, handoff, "Order composed successfully")
}

// OrderLinkQR handles rendering the messaging deep link as a QR code PNG,
// for hand-off from a desktop browser to a phone.
func (h *OrderHandler) OrderLinkQR(c echo.Context) error {
	png, err := h.uc.OrderLinkQR(c.Request().Context(), sessionID(c), requestLanguage(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

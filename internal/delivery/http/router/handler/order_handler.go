package handler

import (
	"log/slog"
	"net/http"

	"makan/internal/delivery/http/response"
	"makan/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for the checkout and order history
// endpoints.
type OrderHandler struct {
	uc     usecase.CheckoutUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.CheckoutUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// Checkout settles an order for the authenticated user. Business failures
// (insufficient balance, rail decline) surface through the error middleware
// with their own HTTP codes.
func (h *OrderHandler) Checkout(c echo.Context) error {
	var input *usecase.CheckoutInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "User identity missing")
	}
	input.UserID = userID
	input.UserEmail, _ = c.Get("userEmail").(string)

	order, err := h.uc.Checkout(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order completed")
}

// GetOrderHistory returns the authenticated user's orders, newest first.
func (h *OrderHandler) GetOrderHistory(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "User identity missing")
	}

	orders, err := h.uc.GetOrderHistory(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Order history retrieved")
}

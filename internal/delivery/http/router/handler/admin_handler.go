package handler

import (
	"log/slog"
	"net/http"

	"makan/internal/delivery/http/response"
	"makan/internal/domain/entity"
	"makan/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for the back-office endpoints: refunds,
// manual payment verification, guarded status transitions and reporting.
type AdminHandler struct {
	adminUC  usecase.AdminUsecase
	refundUC usecase.RefundUsecase
	logger   *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(adminUC usecase.AdminUsecase, refundUC usecase.RefundUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		adminUC:  adminUC,
		refundUC: refundUC,
		logger:   logger,
	}
}

// forceStatusRequest is the body of a forced status transition.
type forceStatusRequest struct {
	Status entity.OrderStatus `json:"status" validate:"required"`
}

// ListOrders returns orders newest first, optionally filtered by the
// "status" query parameter.
func (h *AdminHandler) ListOrders(c echo.Context) error {
	status := entity.OrderStatus(c.QueryParam("status"))
	if status != "" && !status.IsValid() {
		return response.BadRequest(c, "INVALID_INPUT", "Unknown order status filter")
	}

	orders, err := h.adminUC.ListOrders(c.Request().Context(), status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved")
}

// VerifyPayment marks an order's payment as manually verified and completes
// it. Repeating the call on a verified order is a no-op.
func (h *AdminHandler) VerifyPayment(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	order, err := h.adminUC.VerifyPayment(c.Request().Context(), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Payment verified")
}

// ForceStatus transitions an order along an allowed lifecycle edge.
func (h *AdminHandler) ForceStatus(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	var req forceStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if !req.Status.IsValid() {
		return response.BadRequest(c, "INVALID_INPUT", "Unknown order status")
	}

	order, err := h.adminUC.ForceStatus(c.Request().Context(), orderID, req.Status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order status updated")
}

// Refund applies a full or partial refund to a completed order.
func (h *AdminHandler) Refund(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	var input *usecase.RefundInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refund input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}
	input.OrderID = orderID

	record, err := h.refundUC.Refund(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, record, "Refund processed")
}

// ListRefunds returns the refund history of an order, newest first.
func (h *AdminHandler) ListRefunds(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	records, err := h.refundUC.GetOrderRefunds(c.Request().Context(), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, records, "Refunds retrieved")
}

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

// RewardsHandler holds dependencies for the points ledger endpoints.
type RewardsHandler struct {
	uc     usecase.RewardsUsecase
	logger *slog.Logger
}

// NewRewardsHandler is the constructor for RewardsHandler, injected by Fx.
func NewRewardsHandler(uc usecase.RewardsUsecase, logger *slog.Logger) *RewardsHandler {
	return &RewardsHandler{
		uc:     uc,
		logger: logger,
	}
}

// AwardPoints records a survey completion for the authenticated user.
func (h *RewardsHandler) AwardPoints(c echo.Context) error {
	var input *usecase.AwardPointsInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid award input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "User identity missing")
	}
	input.UserID = userID

	balance, err := h.uc.AwardPoints(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, balance, "Points awarded")
}

// GetBalance returns the authenticated user's total points and derived
// currency balance.
func (h *RewardsHandler) GetBalance(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "User identity missing")
	}

	snapshot, err := h.uc.GetBalance(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, snapshot, "Balance retrieved")
}

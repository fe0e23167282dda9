package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"romeo/internal/errors"
)

// ReservationHandler handles table reservation requests. Requests are
// validated and acknowledged; there is no booking backend behind them.
type ReservationHandler struct{}

// NewReservationHandler creates a new reservation handler.
func NewReservationHandler() *ReservationHandler {
	return &ReservationHandler{}
}

// ReservationRequest represents a table reservation request.
type ReservationRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required"`
	Date    string `json:"date" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// CreateReservation godoc
// @Summary Request a table reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body ReservationRequest true "Reservation data"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c echo.Context) error {
	var req ReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": fmt.Sprintf("thank you, %s! we will confirm your booking at %s shortly", req.Name, req.Email),
	})
}

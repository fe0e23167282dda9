package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"romeo/internal/errors"
	"romeo/internal/model"
	"romeo/internal/service"
)

// CheckoutHandler handles checkout.
type CheckoutHandler struct {
	checkout service.CheckoutService
}

// NewCheckoutHandler creates a new checkout handler.
func NewCheckoutHandler(checkout service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

// CheckoutResponse represents a placed order.
type CheckoutResponse struct {
	Order   *model.Order `json:"order"`
	Message string       `json:"message"`
}

// Checkout godoc
// @Summary Place an order from the cart
// @Tags checkout
// @Produce json
// @Success 200 {object} CheckoutResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /checkout [post]
func (h *CheckoutHandler) Checkout(c echo.Context) error {
	order, err := h.checkout.PlaceOrder(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, CheckoutResponse{
		Order:   order,
		Message: "order placed successfully",
	})
}

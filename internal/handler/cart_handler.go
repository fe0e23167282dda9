package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"romeo/internal/errors"
	"romeo/internal/model"
	"romeo/internal/service"
)

// CartHandler handles shopping cart endpoints.
type CartHandler struct {
	cart service.CartService
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(cart service.CartService) *CartHandler {
	return &CartHandler{cart: cart}
}

// AddCartItemRequest represents an add-to-cart request.
type AddCartItemRequest struct {
	Name      string `json:"name" validate:"required"`
	UnitPrice string `json:"unit_price" validate:"required"`
	Quantity  int    `json:"quantity"`
}

// CartResponse represents the cart with its derived totals.
type CartResponse struct {
	Items     []model.CartItem `json:"items"`
	Total     string           `json:"total"`
	ItemCount int              `json:"item_count"`
}

func cartResponse(items []model.CartItem) CartResponse {
	total := decimal.Zero
	count := 0
	for _, item := range items {
		total = total.Add(item.LineTotal())
		count += item.Quantity
	}
	if items == nil {
		items = []model.CartItem{}
	}
	return CartResponse{
		Items:     items,
		Total:     total.StringFixed(2),
		ItemCount: count,
	}
}

func cartIndex(c echo.Context) (int, error) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid index",
			Code:  "INVALID_INDEX",
		})
	}
	return index, nil
}

// GetCart godoc
// @Summary Get the cart
// @Tags cart
// @Produce json
// @Success 200 {object} CartResponse
// @Router /cart [get]
func (h *CartHandler) GetCart(c echo.Context) error {
	items, err := h.cart.Items(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, cartResponse(items))
}

// AddItem godoc
// @Summary Add an item to the cart
// @Tags cart
// @Accept json
// @Produce json
// @Param request body AddCartItemRequest true "Item data"
// @Success 200 {object} CartResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c echo.Context) error {
	var req AddCartItemRequest
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

	unitPrice, err := decimal.NewFromString(req.UnitPrice)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid unit_price",
			Code:  "INVALID_PRICE",
		})
	}

	items, err := h.cart.AddItem(c.Request().Context(), req.Name, unitPrice, req.Quantity)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, cartResponse(items))
}

// Increase godoc
// @Summary Increase the quantity of a cart line
// @Tags cart
// @Produce json
// @Param index path int true "Line index"
// @Success 200 {object} CartResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /cart/items/{index}/increase [post]
func (h *CartHandler) Increase(c echo.Context) error {
	index, err := cartIndex(c)
	if err != nil {
		return err
	}
	items, err := h.cart.Increase(c.Request().Context(), index)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, cartResponse(items))
}

// Decrease godoc
// @Summary Decrease the quantity of a cart line
// @Tags cart
// @Produce json
// @Param index path int true "Line index"
// @Success 200 {object} CartResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /cart/items/{index}/decrease [post]
func (h *CartHandler) Decrease(c echo.Context) error {
	index, err := cartIndex(c)
	if err != nil {
		return err
	}
	items, err := h.cart.Decrease(c.Request().Context(), index)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, cartResponse(items))
}

// RemoveItem godoc
// @Summary Remove a cart line
// @Tags cart
// @Produce json
// @Param index path int true "Line index"
// @Success 200 {object} CartResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /cart/items/{index} [delete]
func (h *CartHandler) RemoveItem(c echo.Context) error {
	index, err := cartIndex(c)
	if err != nil {
		return err
	}
	items, err := h.cart.Remove(c.Request().Context(), index)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, cartResponse(items))
}

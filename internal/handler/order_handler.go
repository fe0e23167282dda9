package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"romeo/internal/errors"
	"romeo/internal/model"
	"romeo/internal/service"
)

// OrderHandler handles order history and favorites endpoints.
type OrderHandler struct {
	orders   service.OrderService
	identity service.IdentityService
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(orders service.OrderService, identity service.IdentityService) *OrderHandler {
	return &OrderHandler{orders: orders, identity: identity}
}

// ToggleFavoriteResponse reports the favorite state after a toggle.
type ToggleFavoriteResponse struct {
	OrderID   string `json:"order_id"`
	Favorited bool   `json:"favorited"`
}

// ListOrders godoc
// @Summary List order history
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Order
// @Failure 401 {object} errors.ErrorResponse
// @Router /orders [get]
func (h *OrderHandler) ListOrders(c echo.Context) error {
	userID, err := authenticatedUserID(c, h.identity)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	orders, err := h.orders.List(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	if orders == nil {
		orders = []model.Order{}
	}
	return c.JSON(http.StatusOK, orders)
}

// ToggleFavorite godoc
// @Summary Toggle favorite state of an order
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param index path int true "Order history index"
// @Success 200 {object} ToggleFavoriteResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /orders/{index}/favorite [post]
func (h *OrderHandler) ToggleFavorite(c echo.Context) error {
	userID, err := authenticatedUserID(c, h.identity)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid index",
			Code:  "INVALID_INDEX",
		})
	}

	favorited, err := h.orders.ToggleFavorite(c.Request().Context(), userID, index)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	orders, _ := h.orders.List(c.Request().Context(), userID)
	orderID := ""
	if index < len(orders) {
		orderID = orders[index].ID
	}

	return c.JSON(http.StatusOK, ToggleFavoriteResponse{
		OrderID:   orderID,
		Favorited: favorited,
	})
}

// ListFavorites godoc
// @Summary List favorite orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Order
// @Failure 401 {object} errors.ErrorResponse
// @Router /favorites [get]
func (h *OrderHandler) ListFavorites(c echo.Context) error {
	userID, err := authenticatedUserID(c, h.identity)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	favorites, err := h.orders.Favorites(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	if favorites == nil {
		favorites = []model.Order{}
	}
	return c.JSON(http.StatusOK, favorites)
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"romeo/internal/errors"
	"romeo/internal/model"
	"romeo/internal/service"
)

// MenuHandler handles menu endpoints.
type MenuHandler struct {
	menu service.MenuService
}

// NewMenuHandler creates a new menu handler.
func NewMenuHandler(menu service.MenuService) *MenuHandler {
	return &MenuHandler{menu: menu}
}

// ListMenu godoc
// @Summary List the restaurant menu
// @Tags menu
// @Produce json
// @Success 200 {array} model.MenuItem
// @Router /menu [get]
func (h *MenuHandler) ListMenu(c echo.Context) error {
	items, err := h.menu.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	if items == nil {
		items = []model.MenuItem{}
	}
	return c.JSON(http.StatusOK, items)
}

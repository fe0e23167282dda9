package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"romeo/internal/errors"
	"romeo/internal/model"
	"romeo/internal/service"
)

// AddressHandler handles address book endpoints.
type AddressHandler struct {
	addresses service.AddressService
	identity  service.IdentityService
}

// NewAddressHandler creates a new address handler.
func NewAddressHandler(addresses service.AddressService, identity service.IdentityService) *AddressHandler {
	return &AddressHandler{addresses: addresses, identity: identity}
}

// AddAddressRequest represents a new address.
type AddAddressRequest struct {
	Label  string `json:"label" validate:"required"`
	Street string `json:"street" validate:"required"`
	City   string `json:"city" validate:"required"`
	State  string `json:"state" validate:"required"`
	Zip    string `json:"zip" validate:"required"`
}

// EditAddressRequest represents a partial address update; omitted fields keep
// their previous value.
type EditAddressRequest struct {
	Label      string `json:"label"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	Zip        string `json:"zip"`
	SetDefault *bool  `json:"set_default"`
}

// ListAddresses godoc
// @Summary List saved addresses
// @Tags addresses
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Address
// @Failure 401 {object} errors.ErrorResponse
// @Router /addresses [get]
func (h *AddressHandler) ListAddresses(c echo.Context) error {
	userID, err := authenticatedUserID(c, h.identity)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	addresses, err := h.addresses.List(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	if addresses == nil {
		addresses = []model.Address{}
	}
	return c.JSON(http.StatusOK, addresses)
}

// AddAddress godoc
// @Summary Add a delivery address
// @Tags addresses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddAddressRequest true "Address data"
// @Success 201 {object} model.Address
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /addresses [post]
func (h *AddressHandler) AddAddress(c echo.Context) error {
	userID, err := authenticatedUserID(c, h.identity)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	var req AddAddressRequest
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

	address, err := h.addresses.Add(c.Request().Context(), userID, req.Label, req.Street, req.City, req.State, req.Zip)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, address)
}

// EditAddress godoc
// @Summary Update a delivery address
// @Tags addresses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param index path int true "Address index"
// @Param request body EditAddressRequest true "Fields to change"
// @Success 200 {object} model.Address
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /addresses/{index} [put]
func (h *AddressHandler) EditAddress(c echo.Context) error {
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

	var req EditAddressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}

	address, err := h.addresses.Edit(c.Request().Context(), userID, index, service.AddressPatch{
		Label:      req.Label,
		Street:     req.Street,
		City:       req.City,
		State:      req.State,
		Zip:        req.Zip,
		SetDefault: req.SetDefault,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, address)
}

// DeleteAddress godoc
// @Summary Delete a delivery address
// @Tags addresses
// @Produce json
// @Security BearerAuth
// @Param index path int true "Address index"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /addresses/{index} [delete]
func (h *AddressHandler) DeleteAddress(c echo.Context) error {
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

	if err := h.addresses.Delete(c.Request().Context(), userID, index); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "address deleted",
	})
}

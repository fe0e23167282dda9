package handler

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"romeo/internal/auth"
	apperrors "romeo/internal/errors"
	"romeo/internal/service"
)

// claimsFromContext pulls the verified JWT claims the middleware stored.
func claimsFromContext(c echo.Context) (*auth.Claims, bool) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil, false
	}
	claims, ok := token.Claims.(*auth.Claims)
	return claims, ok
}

// authenticatedUserID resolves the caller's user id. The JWT proves identity
// to the transport; the stored session stays the source of truth, so a token
// for a logged-out or switched user is rejected.
func authenticatedUserID(c echo.Context, identity service.IdentityService) (string, error) {
	claims, ok := claimsFromContext(c)
	if !ok {
		return "", apperrors.ErrNotAuthenticated
	}
	session, err := identity.Current(c.Request().Context())
	if err != nil {
		return "", err
	}
	if session == nil || session.ID != claims.UserID {
		return "", apperrors.ErrNotAuthenticated
	}
	return claims.UserID, nil
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxIdentity extracts the identity injected by the Auth middleware. A
// missing user id means the middleware did not run for this route; fail
// before any service call.
func ctxIdentity(c echo.Context) (userID string, isAdmin bool, err error) {
	userID, _ = c.Get("user_id").(string)
	if userID == "" {
		return "", false, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	isAdmin, _ = c.Get("is_admin").(bool)
	return userID, isAdmin, nil
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxIdentity extracts the identity injected by the auth gate. A missing
// username means the gate did not run on this route, which is a wiring bug;
// fail closed with 401 rather than operating on an empty identity.
func ctxIdentity(c echo.Context) (username string, err error) {
	username, _ = c.Get("username").(string)
	if username == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return username, nil
}

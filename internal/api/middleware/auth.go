package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/shoplite/store-api/internal/core/token"
)

const (
	// UserCookie and AdminCookie name the cookies carrying each role's
	// credential. The two gates read different cookies so a browser can hold
	// both a user and an admin session at once.
	UserCookie  = "token"
	AdminCookie = "adminToken"

	// legacyHeader is still accepted for clients that predate the
	// Authorization header support.
	legacyHeader = "X-Auth-Token"
)

// UserAuth verifies the user credential and injects identity into context.
// Token precedence: "token" cookie, then Authorization: Bearer, then the
// legacy header.
func UserAuth(codec *token.Codec) echo.MiddlewareFunc {
	return gate(codec, UserCookie)
}

// AdminAuth is UserAuth reading the "adminToken" cookie instead. It does not
// enforce the role claim by itself; compose it with RequireRole for that.
func AdminAuth(codec *token.Codec) echo.MiddlewareFunc {
	return gate(codec, AdminCookie)
}

func gate(codec *token.Codec, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := codec.Verify(extractToken(c, cookieName))
			if err != nil {
				switch {
				case errors.Is(err, token.ErrTokenMissing):
					return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
				case errors.Is(err, token.ErrTokenExpired):
					return echo.NewHTTPError(http.StatusUnauthorized, "token expired")
				default:
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
				}
			}

			c.Set("username", claims.Username)
			c.Set("role", claims.Role)

			return next(c)
		}
	}
}

// extractToken returns the first credential found, in precedence order.
func extractToken(c echo.Context, cookieName string) string {
	if ck, err := c.Cookie(cookieName); err == nil && ck.Value != "" {
		return ck.Value
	}

	if authHeader := c.Request().Header.Get("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
		return ""
	}

	return c.Request().Header.Get(legacyHeader)
}

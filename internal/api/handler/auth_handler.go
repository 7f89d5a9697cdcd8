package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/shoplite/store-api/internal/api/middleware"
	"github.com/shoplite/store-api/internal/core/ports"
)

// AuthHandler serves registration, login, and session endpoints for both
// roles. On login it sets the role's cookie with an expiry matching the
// issued credential.
type AuthHandler struct {
	authService   ports.AuthService
	secureCookies bool
}

func NewAuthHandler(authService ports.AuthService, secureCookies bool) *AuthHandler {
	return &AuthHandler{authService: authService, secureCookies: secureCookies}
}

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Username   string `json:"username" validate:"required"`
	Password   string `json:"password" validate:"required"`
	RememberMe bool   `json:"rememberMe"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.authService.Register(c.Request().Context(), req.Username, req.Password); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]string{"message": "user registered successfully"})
}

// Login authenticates a user and sets the session cookie.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /api/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	return h.login(c, middleware.UserCookie, h.authService.Login)
}

// AdminLogin authenticates against the admin record store and sets the admin
// session cookie.
//
// @Summary      Admin login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /admin/login [post]
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	return h.login(c, middleware.AdminCookie, h.authService.AdminLogin)
}

func (h *AuthHandler) login(c echo.Context, cookieName string, loginFn func(ctx context.Context, username, password string, persistent bool) (*ports.LoginResult, error)) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := loginFn(c.Request().Context(), req.Username, req.Password, req.RememberMe)
	if err != nil {
		return err
	}

	c.SetCookie(h.sessionCookie(cookieName, result.Token, result.ExpiresAt))

	return c.JSON(http.StatusOK, loginResponse{
		Token:     result.Token,
		Username:  result.User.Username,
		Role:      result.User.Role,
		ExpiresAt: result.ExpiresAt,
	})
}

// Logout clears the session cookie and records the logout. The credential
// itself stays valid until expiry; there is no revocation list.
//
// @Summary      Logout
// @Tags         auth
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Router       /api/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	username, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	h.authService.Logout(c.Request().Context(), username)
	c.SetCookie(h.expiredCookie(middleware.UserCookie))

	return c.JSON(http.StatusOK, map[string]string{"message": "logged out"})
}

// Check reports the identity behind the presented credential.
//
// @Summary      Verify the current session
// @Tags         auth
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  errorResponse
// @Router       /api/check [get]
func (h *AuthHandler) Check(c echo.Context) error {
	username, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	role, _ := c.Get("role").(string)

	return c.JSON(http.StatusOK, map[string]string{
		"username": username,
		"role":     role,
	})
}

func (h *AuthHandler) sessionCookie(name, value string, expiresAt time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   int(time.Until(expiresAt).Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteStrictMode,
	}
}

func (h *AuthHandler) expiredCookie(name string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteStrictMode,
	}
}

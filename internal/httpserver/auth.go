package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/product_catalog/internal/middleware"
	"github.com/Skotchmaster/product_catalog/internal/service"
	"github.com/Skotchmaster/product_catalog/internal/transport"
	"github.com/Skotchmaster/product_catalog/pkg/logging"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

func (h *AuthHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.register")

	var req transport.RegisterRequest
	if err := bindBody(c, l, "register_error", &req); err != nil {
		return err
	}

	user, err := h.Svc.Register(ctx, req)
	if err != nil {
		return fail(l, "register_error", err)
	}

	l.Info("register_success", "user_id", user.ID)
	return c.JSON(http.StatusCreated, user)
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := bindBody(c, l, "login_error", &req); err != nil {
		return err
	}

	res, err := h.Svc.Authenticate(ctx, req)
	if err != nil {
		return fail(l, "login_failed", err)
	}

	return c.JSON(http.StatusOK, transport.LoginResponse{AccessToken: res.AccessToken})
}

func (h *AuthHTTP) Profile(c echo.Context) error {
	l := logging.FromContext(c.Request().Context()).With("handler", "auth.profile")

	claims, _ := middleware.Claims(c)
	profile, err := h.Svc.Profile(claims)
	if err != nil {
		return fail(l, "profile_error", err)
	}
	return c.JSON(http.StatusOK, profile)
}

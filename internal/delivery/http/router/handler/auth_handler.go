package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "github.com/kimkuhyun/JH0103/internal/delivery/context"
	"github.com/kimkuhyun/JH0103/internal/delivery/http/response"
	"github.com/kimkuhyun/JH0103/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for the social login handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// Login initiates the OAuth flow for a provider.
func (h *AuthHandler) Login(c echo.Context) error {
	provider := c.Param("provider")
	state := uuid.New().String()

	url, err := h.uc.LoginURL(c.Request().Context(), provider, state)
	if err != nil {
		return errors.WithStack(err)
	}

	if c.QueryParam("redirect") == "true" {
		return c.Redirect(http.StatusTemporaryRedirect, url)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"oauth_url": url,
		"state":     state,
	}, "OAuth URL generated successfully")
}

// Callback completes the OAuth flow after the provider redirects back.
func (h *AuthHandler) Callback(c echo.Context) error {
	provider := c.Param("provider")
	code := c.QueryParam("code")
	if code == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Authorization code is required")
	}

	output, err := h.uc.HandleCallback(c.Request().Context(), usecase.OAuthCallbackInput{
		Provider: provider,
		Code:     code,
		State:    c.QueryParam("state"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// CurrentUser returns the user behind the request's bearer token.
func (h *AuthHandler) CurrentUser(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c.Request().Context())
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Login required")
	}

	user, err := h.uc.CurrentUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "User retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

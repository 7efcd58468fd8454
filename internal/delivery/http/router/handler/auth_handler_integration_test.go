package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kimkuhyun/JH0103/config"
	"github.com/kimkuhyun/JH0103/internal/infra/oauth"
	mockrepo "github.com/kimkuhyun/JH0103/internal/mocks/repository"
	mocksvc "github.com/kimkuhyun/JH0103/internal/mocks/service"
	"github.com/kimkuhyun/JH0103/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestAuthHandler_Login_Integration(t *testing.T) {
	// Create test config
	testConfig := &config.Config{
		OAuth: config.OAuthConfig{
			Providers: map[string]config.OAuthProvider{
				"google": {
					ClientID:     "test_client_id",
					ClientSecret: "test_client_secret",
					RedirectURL:  "http://localhost:8080/auth/google/callback",
					AuthURL:      "https://accounts.google.com/o/oauth2/auth",
					TokenURL:     "https://oauth2.googleapis.com/token",
					UserInfoURL:  "https://www.googleapis.com/oauth2/v3/userinfo",
					Scopes:       []string{"openid", "email", "profile"},
				},
			},
		},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	// Real OAuth service, mocked everything else; Login only touches the OAuth side.
	authUsecase := impl.NewAuthService(impl.AuthServiceParams{
		TxManager:    mockrepo.NewMockTransactionManager(t),
		UserRepo:     mockrepo.NewMockUserRepository(t),
		OAuthService: oauth.NewProviderService(testConfig, logger),
		TokenService: mocksvc.NewMockTokenService(t),
		Logger:       logger,
	})

	handler := NewAuthHandler(authUsecase, logger)

	// Create Echo context
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/google/login", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("provider")
	c.SetParamValues("google")

	err := handler.Login(c)
	assert.NoError(t, err)

	// Check response
	assert.Equal(t, http.StatusOK, rec.Code)

	responseBody := rec.Body.String()
	assert.Contains(t, responseBody, "oauth_url")
	assert.Contains(t, responseBody, "client_id=test_client_id")

	// The URL is URL-encoded inside the JSON response
	assert.Contains(t, responseBody, "redirect_uri=http%3A%2F%2Flocalhost%3A8080%2Fauth%2Fgoogle%2Fcallback")
	assert.Contains(t, responseBody, "scope=openid+email+profile")

	// Check that state parameter is included in response
	assert.Contains(t, responseBody, "state")
}

func TestAuthHandler_Login_UnknownProvider(t *testing.T) {
	testConfig := &config.Config{OAuth: config.OAuthConfig{Providers: map[string]config.OAuthProvider{}}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	authUsecase := impl.NewAuthService(impl.AuthServiceParams{
		TxManager:    mockrepo.NewMockTransactionManager(t),
		UserRepo:     mockrepo.NewMockUserRepository(t),
		OAuthService: oauth.NewProviderService(testConfig, logger),
		TokenService: mocksvc.NewMockTokenService(t),
		Logger:       logger,
	})

	handler := NewAuthHandler(authUsecase, logger)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/kakao/login", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("provider")
	c.SetParamValues("kakao")

	err := handler.Login(c)
	assert.Error(t, err)
}

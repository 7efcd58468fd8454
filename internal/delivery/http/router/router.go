// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/kimkuhyun/JH0103/config"
	"github.com/kimkuhyun/JH0103/internal/delivery/http/middleware"
	"github.com/kimkuhyun/JH0103/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config         *config.Config
	JobHandler     *handler.JobHandler
	CompanyHandler *handler.CompanyHandler
	AuthHandler    *handler.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg            *config.Config
	jobHandler     *handler.JobHandler
	companyHandler *handler.CompanyHandler
	authHandler    *handler.AuthHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:            params.Config,
		jobHandler:     params.JobHandler,
		companyHandler: params.CompanyHandler,
		authHandler:    params.AuthHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Social login flow
	authGroup := e.Group("/auth")
	{
		authGroup.GET("/:provider/login", r.authHandler.Login)
		authGroup.GET("/:provider/callback", r.authHandler.Callback)
	}

	// Mutations can be gated behind a bearer token per deployment;
	// ingestion stays open either way because the agent has no session.
	protect := func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	if r.cfg.Auth.ProtectMutations {
		protect = r.authMiddleware.Authenticate
	}

	jobGroup := e.Group("/api/v1/jobs")
	{
		jobGroup.POST("", r.jobHandler.Ingest)
		jobGroup.GET("", r.jobHandler.List)
		jobGroup.PATCH("/:id/status", r.jobHandler.UpdateStatus, protect)
		jobGroup.DELETE("/:id", r.jobHandler.Delete, protect)
	}

	companyGroup := e.Group("/api/company")
	{
		companyGroup.POST("/research", r.companyHandler.EnsureResearch, protect)
		companyGroup.GET("/research", r.companyHandler.GetResearch)
	}

	// The current user endpoint always requires authentication.
	e.GET("/api/v1/user", r.authHandler.CurrentUser, r.authMiddleware.Authenticate)
}

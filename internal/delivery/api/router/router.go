// Package router registers the API routes.
package router

import (
	"schoolhub/config"
	"schoolhub/internal/delivery/api/middleware"
	"schoolhub/internal/delivery/api/router/handler"
	"schoolhub/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	ProvisioningHandler *handler.ProvisioningHandler
	AuthMiddleware      *middleware.AuthMiddleware
	Config              *config.Config
	Gatherer            prometheus.Gatherer `optional:"true"`
}

type router struct {
	authHandler         *handler.AuthHandler
	provisioningHandler *handler.ProvisioningHandler
	authMiddleware      *middleware.AuthMiddleware
	config              *config.Config
	gatherer            prometheus.Gatherer
}

func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		provisioningHandler: params.ProvisioningHandler,
		authMiddleware:      params.AuthMiddleware,
		config:              params.Config,
		gatherer:            params.Gatherer,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.config.Metrics != nil && r.config.Metrics.Enabled && r.gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})))
	}

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.LoginPrincipal)
		authGroup.POST("/teacher/login", r.authHandler.LoginTeacher)
		authGroup.POST("/student/login", r.authHandler.LoginStudent)
	}

	principalGroup := e.Group("/principal")
	principalGroup.Use(r.authMiddleware.Authenticate)
	principalGroup.Use(r.authMiddleware.RequireRole(entity.RolePrincipal))
	{
		principalGroup.POST("/teachers", r.provisioningHandler.CreateTeacher)
		principalGroup.POST("/students", r.provisioningHandler.CreateStudent)
		principalGroup.POST("/classes", r.provisioningHandler.CreateClass)
	}
}

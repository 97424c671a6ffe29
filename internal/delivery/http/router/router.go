// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bizprofile/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	OwnerHandler    *handler.OwnerHandler
	BusinessHandler *handler.BusinessHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	ownerHandler    *handler.OwnerHandler
	businessHandler *handler.BusinessHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		ownerHandler:    params.OwnerHandler,
		businessHandler: params.BusinessHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	ownerGroup := api.Group("/business-owners")
	{
		ownerGroup.POST("", r.ownerHandler.CreateOwner)
		ownerGroup.GET("", r.ownerHandler.ListOwners)
		ownerGroup.GET("/by-auth/:authUserId", r.ownerHandler.GetOwnerByAuthUser)
		ownerGroup.DELETE("/all", r.ownerHandler.DeleteAllOwners)
		ownerGroup.GET("/:id", r.ownerHandler.GetOwner)
		ownerGroup.PUT("/:id", r.ownerHandler.UpdateOwner)
		ownerGroup.DELETE("/:id", r.ownerHandler.DeleteOwner)
	}

	businessGroup := api.Group("/businesses")
	{
		businessGroup.POST("", r.businessHandler.CreateBusiness)
		businessGroup.GET("", r.businessHandler.ListBusinesses)
		businessGroup.GET("/by-company/:companyName", r.businessHandler.GetBusinessByCompanyName)
		businessGroup.GET("/by-owner/:ownerId", r.businessHandler.ListBusinessesByOwner)
		businessGroup.DELETE("/all", r.businessHandler.DeleteAllBusinesses)
		businessGroup.GET("/:id/exists", r.businessHandler.BusinessExists)
		businessGroup.GET("/:id", r.businessHandler.GetBusiness)
		businessGroup.PUT("/:id", r.businessHandler.UpdateBusiness)
		businessGroup.DELETE("/:id", r.businessHandler.DeleteBusiness)
	}
}

// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"hobbyexplorer/internal/delivery/api/middleware"
	"hobbyexplorer/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler      *handler.UserHandler
	HobbyHandler     *handler.HobbyHandler
	UserHobbyHandler *handler.UserHobbyHandler
	AuthHandler      *handler.AuthHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler      *handler.UserHandler
	hobbyHandler     *handler.HobbyHandler
	userHobbyHandler *handler.UserHobbyHandler
	authHandler      *handler.AuthHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:      params.UserHandler,
		hobbyHandler:     params.HobbyHandler,
		userHobbyHandler: params.UserHobbyHandler,
		authHandler:      params.AuthHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	usersGroup := e.Group("/users")
	{
		usersGroup.POST("", r.userHandler.CreateUser)
		usersGroup.GET("", r.userHandler.LookupUser)
		usersGroup.GET("/:id", r.userHandler.GetUser)
		usersGroup.PATCH("/:id", r.userHandler.UpdateUser)
		usersGroup.DELETE("/:id", r.userHandler.DeleteUser)
	}

	// Links of one user; the static suggestions segment wins over :hobby_id
	linksGroup := usersGroup.Group("/:id/hobbies")
	{
		linksGroup.GET("", r.userHobbyHandler.ListUserHobbies)
		linksGroup.POST("", r.userHobbyHandler.AddUserHobby)
		linksGroup.GET("/suggestions", r.userHobbyHandler.SuggestHobbies)
		linksGroup.GET("/:hobby_id", r.userHobbyHandler.GetUserHobby)
		linksGroup.PUT("/:hobby_id", r.userHobbyHandler.UpdateUserHobby)
		linksGroup.PATCH("/:hobby_id", r.userHobbyHandler.UpdateUserHobby)
		linksGroup.DELETE("/:hobby_id", r.userHobbyHandler.DeleteUserHobby)
	}

	hobbiesGroup := e.Group("/hobbies")
	{
		hobbiesGroup.POST("", r.hobbyHandler.CreateHobby)
		hobbiesGroup.GET("", r.hobbyHandler.LookupHobby)
		hobbiesGroup.GET("/:id", r.hobbyHandler.GetHobby)
		hobbiesGroup.DELETE("/:id", r.hobbyHandler.DeleteHobby)
	}
}

package handler

import (
	"log/slog"
	"net/http"

	"hobbyexplorer/internal/delivery/api/request"
	"hobbyexplorer/internal/delivery/api/response"
	"hobbyexplorer/internal/domain/entity"
	domainerrors "hobbyexplorer/internal/domain/errors"
	"hobbyexplorer/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for user-related handlers
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// CreateUser handles signup.
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req request.CreateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.userUC.CreateUser(c.Request().Context(), req.ToInput())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, response.NewUserPublic(user))
}

// GetUser handles GET /users/:id.
func (h *UserHandler) GetUser(c echo.Context) error {
	userID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	user, err := h.userUC.GetUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, response.NewUserPublic(user))
}

// LookupUser handles GET /users?username= and GET /users?email=. Exactly one
// key must be given.
func (h *UserHandler) LookupUser(c echo.Context) error {
	username := c.QueryParam("username")
	email := c.QueryParam("email")
	if (username == "") == (email == "") {
		return domainerrors.ErrValidationFailed.WithDetails("exactly one of username or email is required")
	}

	var (
		user *entity.User
		err  error
	)
	if username != "" {
		user, err = h.userUC.GetUserByUsername(c.Request().Context(), username)
	} else {
		user, err = h.userUC.GetUserByEmail(c.Request().Context(), email)
	}
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, response.NewUserPublic(user))
}

// UpdateUser handles PATCH /users/:id.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	userID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req request.UpdateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.userUC.UpdateUser(c.Request().Context(), userID, req.ToInput())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, response.NewUserPublic(user))
}

// DeleteUser handles DELETE /users/:id. The user's links go with it.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	userID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.userUC.DeleteUser(c.Request().Context(), userID); err != nil {
		return err
	}

	return response.OK(c)
}

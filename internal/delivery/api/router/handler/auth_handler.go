package handler

import (
	"log/slog"
	"net/http"

	"hobbyexplorer/internal/delivery/api/middleware"
	"hobbyexplorer/internal/delivery/api/request"
	"hobbyexplorer/internal/delivery/api/response"
	domainerrors "hobbyexplorer/internal/domain/errors"
	"hobbyexplorer/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// AuthHandler serves credential checks.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req request.LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.authUC.Login(c.Request().Context(), req.ToInput())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, response.LoginResponse{
		AccessToken: out.AccessToken,
		TokenType:   out.TokenType,
		ExpiresIn:   int64(out.ExpiresIn.Seconds()),
		User:        response.NewUserPublic(out.User),
	})
}

// Me returns the user the access token was issued to. Requires Authenticate.
func (h *AuthHandler) Me(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrInvalidToken
	}

	user, err := h.userUC.GetUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, response.NewUserPublic(user))
}

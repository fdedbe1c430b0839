package handler

import (
	"log/slog"
	"net/http"

	"hobbyexplorer/internal/delivery/api/request"
	"hobbyexplorer/internal/delivery/api/response"
	domainerrors "hobbyexplorer/internal/domain/errors"
	"hobbyexplorer/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHobbyHandlerParams holds dependencies for UserHobbyHandler, injected by Fx.
type UserHobbyHandlerParams struct {
	fx.In

	UserHobbyUC usecase.UserHobbyUsecase
	Logger      *slog.Logger
}

// UserHobbyHandler serves the /users/:id/hobbies routes.
type UserHobbyHandler struct {
	userHobbyUC usecase.UserHobbyUsecase
	logger      *slog.Logger
}

// NewUserHobbyHandler is the constructor for UserHobbyHandler
func NewUserHobbyHandler(params UserHobbyHandlerParams) *UserHobbyHandler {
	return &UserHobbyHandler{
		userHobbyUC: params.UserHobbyUC,
		logger:      params.Logger,
	}
}

// ListUserHobbies handles GET /users/:id/hobbies?offset=&limit=.
func (h *UserHobbyHandler) ListUserHobbies(c echo.Context) error {
	userID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	page, err := pageQuery(c)
	if err != nil {
		return err
	}

	hobbies, err := h.userHobbyUC.ListUserHobbies(c.Request().Context(), userID, page.ToInput())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, response.NewHobbyPublicList(hobbies))
}

// SuggestHobbies handles GET /users/:id/hobbies/suggestions.
func (h *UserHobbyHandler) SuggestHobbies(c echo.Context) error {
	userID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	page, err := pageQuery(c)
	if err != nil {
		return err
	}

	hobbies, err := h.userHobbyUC.SuggestHobbies(c.Request().Context(), userID, page.ToInput())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, response.NewHobbyPublicList(hobbies))
}

// AddUserHobby handles POST /users/:id/hobbies.
func (h *UserHobbyHandler) AddUserHobby(c echo.Context) error {
	userID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req request.CreateUserHobbyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	link, err := h.userHobbyUC.AddHobby(c.Request().Context(), userID, req.ToInput())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, response.NewUserHobbyPublic(link))
}

// GetUserHobby handles GET /users/:id/hobbies/:hobby_id.
func (h *UserHobbyHandler) GetUserHobby(c echo.Context) error {
	userID, hobbyID, err := linkParams(c)
	if err != nil {
		return err
	}

	link, err := h.userHobbyUC.GetUserHobby(c.Request().Context(), userID, hobbyID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, response.NewUserHobbyPublic(link))
}

// UpdateUserHobby serves both PUT and PATCH with partial-merge semantics.
func (h *UserHobbyHandler) UpdateUserHobby(c echo.Context) error {
	userID, hobbyID, err := linkParams(c)
	if err != nil {
		return err
	}

	var req request.UpdateUserHobbyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	link, err := h.userHobbyUC.UpdateUserHobby(c.Request().Context(), userID, hobbyID, req.ToInput())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, response.NewUserHobbyPublic(link))
}

// DeleteUserHobby handles DELETE /users/:id/hobbies/:hobby_id.
func (h *UserHobbyHandler) DeleteUserHobby(c echo.Context) error {
	userID, hobbyID, err := linkParams(c)
	if err != nil {
		return err
	}

	if err := h.userHobbyUC.RemoveHobby(c.Request().Context(), userID, hobbyID); err != nil {
		return err
	}

	return response.OK(c)
}

func linkParams(c echo.Context) (userID, hobbyID uuid.UUID, err error) {
	if userID, err = uuidParam(c, "id"); err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	if hobbyID, err = uuidParam(c, "hobby_id"); err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	return userID, hobbyID, nil
}

func pageQuery(c echo.Context) (*request.PageQuery, error) {
	page, err := request.BindPageQuery(c)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("offset and limit must be integers")
	}

	return page, nil
}

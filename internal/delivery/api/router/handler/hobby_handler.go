package handler

import (
	"log/slog"
	"net/http"

	"hobbyexplorer/internal/delivery/api/request"
	"hobbyexplorer/internal/delivery/api/response"
	domainerrors "hobbyexplorer/internal/domain/errors"
	"hobbyexplorer/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HobbyHandlerParams holds dependencies for HobbyHandler, injected by Fx.
type HobbyHandlerParams struct {
	fx.In

	HobbyUC usecase.HobbyUsecase
	Logger  *slog.Logger
}

// HobbyHandler holds dependencies for hobby-related handlers
type HobbyHandler struct {
	hobbyUC usecase.HobbyUsecase
	logger  *slog.Logger
}

// NewHobbyHandler is the constructor for HobbyHandler
func NewHobbyHandler(params HobbyHandlerParams) *HobbyHandler {
	return &HobbyHandler{
		hobbyUC: params.HobbyUC,
		logger:  params.Logger,
	}
}

func (h *HobbyHandler) CreateHobby(c echo.Context) error {
	var req request.CreateHobbyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	hobby, err := h.hobbyUC.CreateHobby(c.Request().Context(), req.ToInput())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, response.NewHobbyPublic(hobby))
}

func (h *HobbyHandler) GetHobby(c echo.Context) error {
	hobbyID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	hobby, err := h.hobbyUC.GetHobby(c.Request().Context(), hobbyID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, response.NewHobbyPublic(hobby))
}

// LookupHobby handles GET /hobbies?name=.
func (h *HobbyHandler) LookupHobby(c echo.Context) error {
	name := c.QueryParam("name")
	if name == "" {
		return domainerrors.ErrValidationFailed.WithDetails("name: field required")
	}

	hobby, err := h.hobbyUC.GetHobbyByName(c.Request().Context(), name)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, response.NewHobbyPublic(hobby))
}

func (h *HobbyHandler) DeleteHobby(c echo.Context) error {
	hobbyID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.hobbyUC.DeleteHobby(c.Request().Context(), hobbyID); err != nil {
		return err
	}

	return response.OK(c)
}

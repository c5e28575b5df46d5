package handler

import (
	"github.com/labstack/echo/v4"

	"arfurnish/internal/domain/entity"
	"arfurnish/internal/usecase"
	"arfurnish/pkg/response"
	"arfurnish/pkg/utils"
)

type SceneHandler struct {
	sceneUseCase *usecase.SceneUseCase
}

func NewSceneHandler(sceneUseCase *usecase.SceneUseCase) *SceneHandler {
	return &SceneHandler{
		sceneUseCase: sceneUseCase,
	}
}

type sceneRequest struct {
	Name         string                  `json:"name" validate:"required,min=1"`
	RoomImageURL string                  `json:"room_image_url" validate:"omitempty,url"`
	Placements   []entity.ScenePlacement `json:"placements" validate:"required,min=1"`
}

func (h *SceneHandler) SaveScene(c echo.Context) error {
	var req sceneRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	scene, err := h.sceneUseCase.SaveScene(c.Request().Context(), currentUID(c), usecase.SceneInput{
		Name:         req.Name,
		RoomImageURL: req.RoomImageURL,
		Placements:   req.Placements,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, scene)
}

func (h *SceneHandler) GetScene(c echo.Context) error {
	scene, err := h.sceneUseCase.GetScene(c.Request().Context(), c.Param("sceneId"), currentUID(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, scene)
}

func (h *SceneHandler) ListMyScenes(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	scenes, total, err := h.sceneUseCase.ListMyScenes(c.Request().Context(), currentUID(c), params.Limit, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, scenes, total, params.Limit, params.Offset)
}

func (h *SceneHandler) UpdateScene(c echo.Context) error {
	var req sceneRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	scene, err := h.sceneUseCase.UpdateScene(c.Request().Context(), c.Param("sceneId"), currentUID(c), usecase.SceneInput{
		Name:         req.Name,
		RoomImageURL: req.RoomImageURL,
		Placements:   req.Placements,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, scene)
}

func (h *SceneHandler) DeleteScene(c echo.Context) error {
	if err := h.sceneUseCase.DeleteScene(c.Request().Context(), c.Param("sceneId"), currentUID(c)); err != nil {
		return response.Error(c, err)
	}

	return response.SuccessMessage(c, "Scene deleted successfully")
}

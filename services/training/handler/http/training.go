package http

import (
	"errors"
	nethttp "net/http"

	"github.com/agriconnect/agriconnect/internal/pkg/apperrors"
	"github.com/agriconnect/agriconnect/internal/pkg/logger"
	"github.com/agriconnect/agriconnect/internal/pkg/models"
	"github.com/agriconnect/agriconnect/internal/utils"
	"github.com/agriconnect/agriconnect/services/training"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TrainingHandler handles HTTP requests for training content
type TrainingHandler struct {
	trainingUC training.TrainingUC
}

// NewTrainingHandler creates a new training handler
func NewTrainingHandler(trainingUC training.TrainingUC) *TrainingHandler {
	return &TrainingHandler{trainingUC: trainingUC}
}

func serviceErrorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, apperrors.ErrInvalidInput):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, apperrors.ErrForbidden):
		return utils.ForbiddenResponse(c, err.Error())
	case errors.Is(err, apperrors.ErrModuleNotFound), errors.Is(err, apperrors.ErrStoryNotFound):
		return utils.NotFoundResponse(c, err.Error())
	default:
		logger.Error("Unhandled service error",
			logger.String("path", c.Path()),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "")
	}
}

func contextUser(c echo.Context) (*models.User, bool) {
	user, ok := c.Get("user").(*models.User)
	return user, ok
}

// CreateModule handles training module creation (ngo_admin only)
func (h *TrainingHandler) CreateModule(c echo.Context) error {
	user, ok := contextUser(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var module models.TrainingModule
	if err := c.Bind(&module); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	created, err := h.trainingUC.CreateModule(c.Request().Context(), user, &module)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusCreated, "Training module published successfully", created)
}

// GetModule handles single-module retrieval
func (h *TrainingHandler) GetModule(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid module ID")
	}

	module, err := h.trainingUC.GetModule(c.Request().Context(), id)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Training module retrieved successfully", module)
}

// ListModules handles module listings filtered by language
func (h *TrainingHandler) ListModules(c echo.Context) error {
	list, err := h.trainingUC.ListModules(c.Request().Context(), c.QueryParam("language"))
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Training modules retrieved successfully", list)
}

// UpdateModule handles module replacement (ngo_admin only)
func (h *TrainingHandler) UpdateModule(c echo.Context) error {
	user, ok := contextUser(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid module ID")
	}

	var module models.TrainingModule
	if err := c.Bind(&module); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	updated, err := h.trainingUC.UpdateModule(c.Request().Context(), user, id, &module)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Training module updated successfully", updated)
}

// CreateStory handles success story submission
func (h *TrainingHandler) CreateStory(c echo.Context) error {
	user, ok := contextUser(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var story models.SuccessStory
	if err := c.Bind(&story); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	created, err := h.trainingUC.CreateStory(c.Request().Context(), user, &story)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusCreated, "Success story recorded", created)
}

// GetStory handles single-story retrieval
func (h *TrainingHandler) GetStory(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid story ID")
	}

	story, err := h.trainingUC.GetStory(c.Request().Context(), id)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Success story retrieved successfully", story)
}

// ListStories handles story listings with an optional featured filter
func (h *TrainingHandler) ListStories(c echo.Context) error {
	featuredOnly := c.QueryParam("featured") == "true"

	list, err := h.trainingUC.ListStories(c.Request().Context(), featuredOnly)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Success stories retrieved successfully", list)
}

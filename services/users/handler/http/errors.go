package http

import (
	"errors"

	"github.com/agriconnect/agriconnect/internal/pkg/apperrors"
	"github.com/agriconnect/agriconnect/internal/pkg/logger"
	"github.com/agriconnect/agriconnect/internal/utils"
	"github.com/labstack/echo/v4"
)

// serviceErrorResponse translates usecase errors into the uniform HTTP
// envelope. Credential failures stay generic; anything unexpected is
// logged and reported as an internal error.
func serviceErrorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, apperrors.ErrInvalidPhoneNumber):
		return utils.BadRequestResponse(c, apperrors.ErrInvalidPhoneNumber.Error())
	case errors.Is(err, apperrors.ErrInvalidCredential):
		return utils.BadRequestResponse(c, apperrors.ErrInvalidCredential.Error())
	case errors.Is(err, apperrors.ErrTooManyAttempts):
		return utils.BadRequestResponse(c, apperrors.ErrTooManyAttempts.Error())
	case errors.Is(err, apperrors.ErrUnauthorized):
		return utils.UnauthorizedResponse(c, apperrors.ErrUnauthorized.Error())
	case errors.Is(err, apperrors.ErrForbidden):
		return utils.ForbiddenResponse(c, apperrors.ErrForbidden.Error())
	case errors.Is(err, apperrors.ErrUserNotFound):
		return utils.NotFoundResponse(c, apperrors.ErrUserNotFound.Error())
	default:
		logger.Error("Unhandled service error", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "")
	}
}

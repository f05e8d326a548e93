package http

import (
	nethttp "net/http"

	"github.com/agriconnect/agriconnect/internal/pkg/logger"
	"github.com/agriconnect/agriconnect/internal/pkg/models"
	"github.com/agriconnect/agriconnect/internal/utils"
	"github.com/agriconnect/agriconnect/services/users"
	"github.com/labstack/echo/v4"
)

// AuthHandler handles HTTP requests for the OTP login protocol
type AuthHandler struct {
	userUC users.UserUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(userUC users.UserUC) *AuthHandler {
	return &AuthHandler{userUC: userUC}
}

// SendOTP handles OTP issuance requests
func (h *AuthHandler) SendOTP(c echo.Context) error {
	var req models.OTPRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for OTP request", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.PhoneNumber == "" {
		return utils.BadRequestResponse(c, "phone_number is required")
	}

	resp, err := h.userUC.RequestOTP(c.Request().Context(), req.PhoneNumber)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return c.JSON(nethttp.StatusOK, resp)
}

// VerifyOTP handles OTP verification and token issuance
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req models.OTPVerifyRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for OTP verification", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.PhoneNumber == "" || req.OTP == "" {
		return utils.BadRequestResponse(c, "phone_number and otp are required")
	}

	resp, err := h.userUC.VerifyOTP(c.Request().Context(), req.PhoneNumber, req.OTP)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return c.JSON(nethttp.StatusOK, resp)
}

// Token handles the legacy OAuth2-form login where the username carries
// the phone number. The password is accepted but not verified.
func (h *AuthHandler) Token(c echo.Context) error {
	username := c.FormValue("username")
	password := c.FormValue("password")
	if username == "" {
		return utils.BadRequestResponse(c, "username is required")
	}

	resp, err := h.userUC.PasswordLogin(c.Request().Context(), username, password)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return c.JSON(nethttp.StatusOK, resp)
}

// Me returns the authenticated user's record. The auth middleware has
// already resolved and stored it in the request context.
func (h *AuthHandler) Me(c echo.Context) error {
	user, ok := c.Get("user").(*models.User)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	return c.JSON(nethttp.StatusOK, user)
}

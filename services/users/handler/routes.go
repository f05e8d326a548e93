package handler

import (
	"strings"
	"time"

	"github.com/agriconnect/agriconnect/internal/pkg/middleware"
	"github.com/agriconnect/agriconnect/internal/pkg/models"
	"github.com/agriconnect/agriconnect/internal/utils"
	"github.com/agriconnect/agriconnect/services/users"
	httpHandler "github.com/agriconnect/agriconnect/services/users/handler/http"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
)

// Handler coordinates the HTTP handlers for the users service
type Handler struct {
	authHandler *httpHandler.AuthHandler
	userHandler *httpHandler.UserHandler
	userUC      users.UserUC
	cfg         *models.Config
	redisClient *redis.Client
}

// NewHandler creates and initializes all handlers
func NewHandler(
	authHandler *httpHandler.AuthHandler,
	userHandler *httpHandler.UserHandler,
	userUC users.UserUC,
	cfg *models.Config,
	redisClient *redis.Client,
) *Handler {
	return &Handler{
		authHandler: authHandler,
		userHandler: userHandler,
		userUC:      userUC,
		cfg:         cfg,
		redisClient: redisClient,
	}
}

// AuthMiddleware guards protected routes. It validates the bearer token
// and re-loads the user record so a deactivated account is rejected even
// while its token is still inside the validity window.
func (h *Handler) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			user, err := h.userUC.Authenticate(c.Request().Context(), parts[1])
			if err != nil {
				return utils.UnauthorizedResponse(c, "could not validate credentials")
			}

			c.Set("user", user)
			c.Set("user_id", user.ID.String())
			c.Set("user_role", user.Role)

			return next(c)
		}
	}
}

// RegisterRoutes registers the auth and user routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	otpLimiter := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RedisClient: h.redisClient,
		Key:         "rate:otp",
		Limit:       5,
		Period:      time.Minute,
	})

	// Public routes
	authGroup := e.Group("/api/auth")
	authGroup.POST("/send-otp", h.authHandler.SendOTP, otpLimiter)
	authGroup.POST("/verify-otp", h.authHandler.VerifyOTP, otpLimiter)
	authGroup.POST("/token", h.authHandler.Token)

	// Protected routes
	authGroup.GET("/me", h.authHandler.Me, h.AuthMiddleware())

	userGroup := e.Group("/api/users", h.AuthMiddleware())
	userGroup.GET("/:id", h.userHandler.GetUser)
	userGroup.PUT("/me", h.userHandler.UpdateMe)
	userGroup.PUT("/me/farmer-profile", h.userHandler.UpsertFarmerProfile)
}

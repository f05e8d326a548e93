package usecase

import (
	"github.com/agriconnect/agriconnect/internal/pkg/models"
	"github.com/agriconnect/agriconnect/internal/utils"
	"github.com/agriconnect/agriconnect/services/users"
)

// UserUC implements the user usecase
type UserUC struct {
	userRepo users.UserRepo
	userGW   users.UserGW
	cfg      *models.Config

	// generateCode is overridable so tests can pin the issued code
	generateCode func(length int) string
}

// NewUserUC creates a new user usecase instance
func NewUserUC(
	userRepo users.UserRepo,
	userGW users.UserGW,
	cfg *models.Config,
) *UserUC {
	return &UserUC{
		userRepo:     userRepo,
		userGW:       userGW,
		cfg:          cfg,
		generateCode: utils.GenerateOTPCode,
	}
}

package repository

import (
	"github.com/agriconnect/agriconnect/internal/pkg/database"
	"github.com/agriconnect/agriconnect/internal/pkg/models"
	"github.com/jmoiron/sqlx"
)

// UserRepo implements the user repository over Postgres and Redis
type UserRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewUserRepo creates a new user repository instance
func NewUserRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *UserRepo {
	return &UserRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}

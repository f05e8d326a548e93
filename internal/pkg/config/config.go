package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/agriconnect/agriconnect/internal/pkg/models"
	"github.com/joho/godotenv"
)

// DevJWTSecret is the fallback signing key for local development only.
// Validate rejects it in production mode.
const DevJWTSecret = "agriconnect-dev-secret-do-not-ship"

// InitConfig loads configuration from an env file (local runs) and the
// process environment.
func InitConfig(configPath string) *models.Config {
	env := GetEnv("APP_ENV", "development")
	if env == "development" || env == "local" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "agriconnect-api")
	configs.App.Environment = GetEnv("APP_ENV", "development")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 8000)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 0)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 0)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)

	// Database config
	configs.Database.Host = GetEnv("DB_HOST", "localhost")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "agriconnect")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 0)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 0)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "localhost")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 0)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "")

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", DevJWTSecret)
	configs.JWT.Expiration = GetEnvAsInt("ACCESS_TOKEN_EXPIRE_MINUTES", 1440)
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "agriconnect")

	// OTP config
	configs.OTP.Length = GetEnvAsInt("OTP_LENGTH", 6)
	configs.OTP.Expiration = GetEnvAsInt("OTP_EXPIRE_MINUTES", 5)
	configs.OTP.MaxAttempts = GetEnvAsInt("OTP_MAX_ATTEMPTS", 5)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	return configs
}

// Validate checks invariants that must hold before the process serves
// traffic. Production fails closed on the development signing secret.
func Validate(cfg *models.Config) error {
	if cfg.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET must be set")
	}
	if cfg.App.IsProduction() && cfg.JWT.Secret == DevJWTSecret {
		return fmt.Errorf("JWT_SECRET must be explicitly set in production")
	}
	if cfg.JWT.Expiration <= 0 {
		return fmt.Errorf("ACCESS_TOKEN_EXPIRE_MINUTES must be positive")
	}
	if cfg.OTP.Length < 4 || cfg.OTP.Length > 8 {
		return fmt.Errorf("OTP_LENGTH must be between 4 and 8")
	}
	if cfg.OTP.Expiration <= 0 {
		return fmt.Errorf("OTP_EXPIRE_MINUTES must be positive")
	}
	if cfg.OTP.MaxAttempts <= 0 {
		return fmt.Errorf("OTP_MAX_ATTEMPTS must be positive")
	}
	return nil
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %t", key, defaultValue)
		return defaultValue
	}
	return value
}

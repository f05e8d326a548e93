package main

import (
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/agriconnect/agriconnect/internal/pkg/config"
	"github.com/agriconnect/agriconnect/internal/pkg/database"
	"github.com/agriconnect/agriconnect/internal/pkg/health"
	"github.com/agriconnect/agriconnect/internal/pkg/logger"
	"github.com/agriconnect/agriconnect/internal/pkg/middleware"
	natspkg "github.com/agriconnect/agriconnect/internal/pkg/nats"
	"github.com/agriconnect/agriconnect/internal/pkg/server"

	issueGateway "github.com/agriconnect/agriconnect/services/issues/gateway"
	issueHandlerPkg "github.com/agriconnect/agriconnect/services/issues/handler"
	issueHTTP "github.com/agriconnect/agriconnect/services/issues/handler/http"
	issueRepository "github.com/agriconnect/agriconnect/services/issues/repository"
	issueUsecase "github.com/agriconnect/agriconnect/services/issues/usecase"
	schemeHandlerPkg "github.com/agriconnect/agriconnect/services/schemes/handler"
	schemeHTTP "github.com/agriconnect/agriconnect/services/schemes/handler/http"
	schemeRepository "github.com/agriconnect/agriconnect/services/schemes/repository"
	schemeUsecase "github.com/agriconnect/agriconnect/services/schemes/usecase"
	trainingHandlerPkg "github.com/agriconnect/agriconnect/services/training/handler"
	trainingHTTP "github.com/agriconnect/agriconnect/services/training/handler/http"
	trainingRepository "github.com/agriconnect/agriconnect/services/training/repository"
	trainingUsecase "github.com/agriconnect/agriconnect/services/training/usecase"
	userGateway "github.com/agriconnect/agriconnect/services/users/gateway"
	userHandlerPkg "github.com/agriconnect/agriconnect/services/users/handler"
	userHTTP "github.com/agriconnect/agriconnect/services/users/handler/http"
	userRepository "github.com/agriconnect/agriconnect/services/users/repository"
	userUsecase "github.com/agriconnect/agriconnect/services/users/usecase"
)

const appName = "agriconnect-api"

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/api.env"
	}
	configs := config.InitConfig(configPath)

	if err := config.Validate(configs); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zapLogger, err := logger.InitFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	db := postgresClient.GetDB()

	// Users service
	userRepo := userRepository.NewUserRepo(configs, db, redisClient)
	userGW := userGateway.NewUserGW(natsClient)
	userUC := userUsecase.NewUserUC(userRepo, userGW, configs)
	authHandler := userHTTP.NewAuthHandler(userUC)
	userHandler := userHTTP.NewUserHandler(userUC)
	usersHandler := userHandlerPkg.NewHandler(authHandler, userHandler, userUC, configs, redisClient.Client)

	// Issues service
	issueRepo := issueRepository.NewIssueRepo(configs, db)
	issueGW := issueGateway.NewIssueGW(natsClient)
	issueUC := issueUsecase.NewIssueUC(issueRepo, issueGW, configs)
	issuesHandler := issueHandlerPkg.NewHandler(issueHTTP.NewIssueHandler(issueUC))

	// Schemes service
	schemeRepo := schemeRepository.NewSchemeRepo(configs, db)
	schemeUC := schemeUsecase.NewSchemeUC(schemeRepo, configs)
	schemesHandler := schemeHandlerPkg.NewHandler(schemeHTTP.NewSchemeHandler(schemeUC))

	// Training service
	trainingRepo := trainingRepository.NewTrainingRepo(configs, db)
	trainingUC := trainingUsecase.NewTrainingUC(trainingRepo, configs)
	trainingHandler := trainingHandlerPkg.NewHandler(trainingHTTP.NewTrainingHandler(trainingUC))

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.EchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName)

	authMW := usersHandler.AuthMiddleware()
	usersHandler.RegisterRoutes(e)
	issuesHandler.RegisterRoutes(e, authMW)
	schemesHandler.RegisterRoutes(e, authMW)
	trainingHandler.RegisterRoutes(e, authMW)

	zapLogger.Info("Starting server",
		zap.String("app", appName),
		zap.Int("port", configs.Server.Port),
	)

	srv := server.NewGracefulServer(e, zapLogger,
		configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server terminated unexpectedly",
			zap.String("app", appName),
			zap.Error(err))
	}
}

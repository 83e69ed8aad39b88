package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/guptapriyanshi3107-dotcom/Finova-CodeRed3/internal/ai"
	"github.com/guptapriyanshi3107-dotcom/Finova-CodeRed3/internal/common/database"
	commonhandlers "github.com/guptapriyanshi3107-dotcom/Finova-CodeRed3/internal/common/handlers"
	"github.com/guptapriyanshi3107-dotcom/Finova-CodeRed3/internal/common/health"
	"github.com/guptapriyanshi3107-dotcom/Finova-CodeRed3/internal/common/logger"
	"github.com/guptapriyanshi3107-dotcom/Finova-CodeRed3/internal/common/metrics"
	"github.com/guptapriyanshi3107-dotcom/Finova-CodeRed3/internal/common/middleware"
	dashboardhandlers "github.com/guptapriyanshi3107-dotcom/Finova-CodeRed3/internal/dashboard/handlers"
	dashboardmodels "github.com/guptapriyanshi3107-dotcom/Finova-CodeRed3/internal/dashboard/models"
	questionnairehandlers "github.com/guptapriyanshi3107-dotcom/Finova-CodeRed3/internal/questionnaire/handlers"
	questionnairemodels "github.com/guptapriyanshi3107-dotcom/Finova-CodeRed3/internal/questionnaire/models"
	"github.com/guptapriyanshi3107-dotcom/Finova-CodeRed3/pkg/config"
	"go.uber.org/zap"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Server.Env); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Get().Sync()

	if cfg.Database.Type == "sqlite" && cfg.Database.Path != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
			logger.Fatal("failed to create database directory", zap.Error(err))
		}
	}

	if err := database.InitWithType(cfg.Database.Type, cfg.Database.DSN); err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close()

	if err := migrate(); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	router := buildRouter(cfg)

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	logger.Info("starting server",
		zap.String("addr", addr),
		zap.String("env", cfg.Server.Env),
		zap.String("db", cfg.Database.Type))
	if err := router.Run(addr); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func migrate() error {
	return database.DB.AutoMigrate(
		&questionnairemodels.Question{},
		&questionnairemodels.QuestionOption{},
		&questionnairemodels.UserAnswer{},
		&questionnairemodels.UserGamification{},
		&questionnairemodels.UserPersonality{},
		&dashboardmodels.UserProfile{},
		&dashboardmodels.Transaction{},
		&dashboardmodels.Goal{},
		&dashboardmodels.Insight{},
		&dashboardmodels.Budget{},
		&dashboardmodels.SurvivalAnalysis{},
	)
}

func buildRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggerMiddleware())
	router.Use(metrics.Middleware())

	checker := health.NewChecker(database.GetDB(), version)
	healthHandler := commonhandlers.NewHealthHandler(checker)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Readiness)
	router.GET("/health/live", healthHandler.Liveness)
	router.GET("/metrics", metrics.Handler())

	api := router.Group("/api/v1")
	questionnairehandlers.RegisterRoutes(api)
	dashboardhandlers.RegisterRoutes(api)
	ai.NewHandler(ai.NewClient(cfg.Granite)).RegisterRoutes(api)

	return router
}

package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/student360/internal/app/controllers"
	appMigrations "github.com/yigit/student360/internal/app/migrations"
	appRepos "github.com/yigit/student360/internal/app/repositories"
	appRoutes "github.com/yigit/student360/internal/app/routes"
	appServices "github.com/yigit/student360/internal/app/services"
	"github.com/yigit/student360/internal/config"
	"github.com/yigit/student360/internal/db"
	appMiddleware "github.com/yigit/student360/internal/middleware"
	"github.com/yigit/student360/internal/pkg/filestorage"
	"github.com/yigit/student360/internal/pkg/logger"
	"github.com/yigit/student360/internal/seed"
)

// Dependencies holds the report API dependencies
type Dependencies struct {
	Repos            *appRepos.Repositories
	ReportService    appServices.ReportService
	ReportController *appControllers.ReportController
	Logger           zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Format: logger.Format(strings.ToLower(cfg.Logging.Format)),
	})

	lgr.Debug().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// GenerateDataset builds the dataset described by the generator config
func GenerateDataset(cfg *config.Config, lgr zerolog.Logger) (*seed.Dataset, error) {
	return seed.Generate(seed.Options{
		Students: cfg.Generator.Students,
		Seed:     cfg.Generator.Seed,
	}, lgr.With().Str("component", "seed").Logger())
}

// SetupDatabase establishes the warehouse connection and runs migrations.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool, lgr)
	if err := migrator.Migrate(ctx); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	return database, nil
}

// SetupObjectStore builds the S3 client from the storage config
func SetupObjectStore(cfg *config.Config, region string) (*filestorage.MinioStore, error) {
	return filestorage.NewMinioStore(filestorage.S3Config{
		Endpoint:  cfg.Storage.Endpoint,
		Region:    region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		UseSSL:    cfg.Storage.UseSSL,
	})
}

// BuildDependencies initializes repositories, services and controllers over
// a generated dataset. database may be nil when no warehouse is needed.
func BuildDependencies(ds *seed.Dataset, database *db.PostgresDB, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(ds, database, lgr)
	deps.ReportService = appServices.NewReportService(deps.Repos.DatasetRepository, appServices.DefaultRiskThresholds)
	deps.ReportController = appControllers.NewReportController(deps.ReportService)

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	switch strings.ToLower(cfg.Server.Mode) {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	lgr.Debug().Str("mode", gin.Mode()).Msg("Gin mode set")

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(lgr), appMiddleware.Recovery(lgr))

	appRoutes.SetupRouter(router, deps.ReportController)

	return router
}

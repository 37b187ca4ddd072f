// Package bootstrap wires configuration, storage, services and HTTP
// routing into a runnable application.
package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	appControllers "github.com/fakhrin/unicampus/internal/app/controllers"
	appMigrations "github.com/fakhrin/unicampus/internal/app/migrations"
	appRepos "github.com/fakhrin/unicampus/internal/app/repositories"
	appRoutes "github.com/fakhrin/unicampus/internal/app/routes"
	appServices "github.com/fakhrin/unicampus/internal/app/services"
	"github.com/fakhrin/unicampus/internal/app/session"
	"github.com/fakhrin/unicampus/internal/config"
	"github.com/fakhrin/unicampus/internal/db"
	"github.com/fakhrin/unicampus/internal/middleware"
	pkgAuth "github.com/fakhrin/unicampus/internal/pkg/auth"
	"github.com/fakhrin/unicampus/internal/pkg/logger"
	"github.com/fakhrin/unicampus/internal/pkg/siakad"
	"github.com/fakhrin/unicampus/internal/seed"
)

// Dependencies holds the wired application components.
type Dependencies struct {
	Session             *session.Session
	Repos               *appRepos.Repositories
	JWTService          *pkgAuth.JWTService
	SiakadClient        siakad.Client
	SemesterService     *appServices.SemesterService
	CourseService       *appServices.CourseService
	UserEventService    *appServices.UserEventService
	ScheduleService     *appServices.ScheduleService
	SiakadService       *appServices.SiakadService
	DirectoryService    *appServices.DirectoryService
	SemesterController  *appControllers.SemesterController
	CourseController    *appControllers.CourseController
	UserEventController *appControllers.UserEventController
	ScheduleController  *appControllers.ScheduleController
	SiakadController    *appControllers.SiakadController
	DirectoryController *appControllers.DirectoryController
	AuthMiddleware      *middleware.AuthMiddleware
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, err
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	logger.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the directory reference data.
func SetupDatabase(cfg *config.Config) (*pgxpool.Pool, error) {
	logger.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}
	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	if err := seed.CreateDefaultData(context.Background(), dbPool); err != nil {
		logger.Error().Err(err).Msg("Failed to seed directory data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool) (*Dependencies, error) {
	deps := &Dependencies{}

	deps.Session = session.New()
	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    cfg.TokenExpiration(),
		TokenIssuer: cfg.JWT.Issuer,
	})

	if cfg.Siakad.UseMock {
		deps.SiakadClient = siakad.NewMockClient()
		logger.Warn().Msg("Using the mock SIAKAD client")
	} else {
		deps.SiakadClient = siakad.NewHTTPClient(cfg.Siakad.BaseURL)
	}

	deps.SemesterService = appServices.NewSemesterService(deps.Repos.SemesterRepository, deps.Session)
	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository, deps.Repos.SemesterRepository, deps.Session)
	deps.UserEventService = appServices.NewUserEventService(deps.Repos.UserEventRepository, deps.Repos.CourseRepository, deps.Repos.SemesterRepository, deps.Session)
	deps.ScheduleService = appServices.NewScheduleService(deps.Repos.SemesterRepository, deps.Repos.CourseRepository, deps.Repos.UserEventRepository, deps.Session)
	deps.SiakadService = appServices.NewSiakadService(deps.SiakadClient, deps.Repos.SemesterRepository, deps.Repos.CourseRepository, deps.JWTService, deps.Session)
	deps.DirectoryService = appServices.NewDirectoryService(deps.Repos.DirectoryRepository)

	deps.AuthMiddleware = middleware.NewAuthMiddleware(deps.JWTService)

	deps.SemesterController = appControllers.NewSemesterController(deps.SemesterService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.UserEventController = appControllers.NewUserEventController(deps.UserEventService)
	deps.ScheduleController = appControllers.NewScheduleController(deps.ScheduleService)
	deps.SiakadController = appControllers.NewSiakadController(deps.SiakadService)
	deps.DirectoryController = appControllers.NewDirectoryController(deps.DirectoryService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.Use(middleware.RequestLogger(), gin.Recovery())

	appRoutes.SetupRouter(router,
		deps.SemesterController,
		deps.CourseController,
		deps.UserEventController,
		deps.ScheduleController,
		deps.SiakadController,
		deps.DirectoryController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}

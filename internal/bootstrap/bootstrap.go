package bootstrap

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/kaan/campora/internal/app/controllers"
	"github.com/kaan/campora/internal/app/routes"
	"github.com/kaan/campora/internal/app/workspace"
	"github.com/kaan/campora/internal/config"
	"github.com/kaan/campora/internal/middleware"
	"github.com/kaan/campora/internal/observability"
	"github.com/kaan/campora/internal/pkg/auth"
	"github.com/kaan/campora/internal/pkg/logger"
	"github.com/kaan/campora/internal/pkg/validation"
	"github.com/kaan/campora/internal/upstream"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Client         *upstream.Client
	Registry       *workspace.Registry
	AuthMiddleware *middleware.AuthMiddleware
	Controllers    routes.Controllers
	FlushSentry    func()
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, zerolog.Logger{}, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Pretty: cfg.Logging.Format != "json",
		Output: os.Stdout,
	})
	lgr := logger.With("service", "campora")
	return cfg, lgr, nil
}

// BuildDependencies wires the upstream client, the workspace registry,
// and every controller.
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) (*Dependencies, error) {
	flush, err := observability.InitSentry(cfg.Sentry.DSN, cfg.Sentry.Environment, cfg.Sentry.Release)
	if err != nil {
		return nil, fmt.Errorf("failed to init sentry: %w", err)
	}

	client, err := upstream.NewClient(cfg.Upstream.BaseURL, cfg.UpstreamTimeout(), lgr)
	if err != nil {
		return nil, fmt.Errorf("failed to build upstream client: %w", err)
	}

	registry := workspace.NewRegistry(client, lgr)
	parser := auth.NewTokenParser(cfg.JWT.Secret)
	authMiddleware := middleware.NewAuthMiddleware(parser, registry)

	if err := os.MkdirAll(cfg.Export.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create export dir: %w", err)
	}

	deps := &Dependencies{
		Client:         client,
		Registry:       registry,
		AuthMiddleware: authMiddleware,
		FlushSentry:    flush,
		Logger:         lgr,
		Controllers: routes.Controllers{
			Auth:        controllers.NewAuthController(client, registry),
			Institution: controllers.NewInstitutionController(),
			Faculty:     controllers.NewFacultyController(),
			Department:  controllers.NewDepartmentController(),
			Program:     controllers.NewProgramController(),
			Course:      controllers.NewCourseController(),
			Assignment:  controllers.NewAssignmentController(),
			Student:     controllers.NewStudentController(),
			User:        controllers.NewUserController(client),
			Picker:      controllers.NewPickerController(),
			Class:       controllers.NewClassController(client),
			Attendance:  controllers.NewAttendanceController(cfg.Export.Dir),
		},
	}
	return deps, nil
}

// SetupRouter builds the gin engine with middleware and all routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	validation.RegisterCustomValidators()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(lgr))

	routes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)
	return router
}

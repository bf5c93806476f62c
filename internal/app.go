// internal/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"

	"ledgerbase/internal/api"
	"ledgerbase/internal/config"
	"ledgerbase/internal/domain"
	"ledgerbase/internal/repository/postgres"
	"ledgerbase/internal/resource"
	"ledgerbase/internal/schema"
	"ledgerbase/internal/util"
	"ledgerbase/pkg/db"
)

// Application holds all the initialized components of the application.
type Application struct {
	Config    *config.AppConfig
	Logger    *slog.Logger
	DB        *sqlx.DB
	Validator *validator.Validate

	// Data access
	DAOs *postgres.DAOs

	// HTTP API
	HTTPHandler http.Handler
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{}
}

// Initialize loads configuration, connects to the database and wires the application.
func (app *Application) Initialize(ctx context.Context) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg

	// 2. Initialize Logger
	util.InitLogger(cfg.LogLevel)
	app.Logger = util.GetLogger()
	app.Logger.Info("Application configuration loaded successfully.")

	// 3. Connect to Database
	database, err := db.NewPostgresDB(cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = database
	app.Logger.Info("Database connection established.")

	return app.Wire(ctx)
}

// Wire builds everything that sits on top of Config, Logger and DB: the schema, the DAOs
// and the HTTP handler.
func (app *Application) Wire(ctx context.Context) error {
	precision := domain.Precision{Digits: app.Config.Decimal.Precision, Scale: app.Config.Decimal.Scale}

	if app.Config.AutoMigrate {
		if err := schema.Initialize(ctx, app.DB, precision, app.Logger); err != nil {
			return fmt.Errorf("failed to initialize schema: %w", err)
		}
	}

	app.Validator = domain.NewValidator()
	app.DAOs = postgres.NewDAOs(app.Validator, precision)
	app.Logger.Info("DAOs initialized.", "numeric", precision.String())

	app.HTTPHandler = api.NewRouter(api.Collections(app.DAOs), resource.NewStore(app.DB), app.Config.RequestTimeout, app.Logger)
	app.Logger.Info("HTTP router and resources initialized.")
	return nil
}

// Shutdown gracefully shuts down application resources.
func (app *Application) Shutdown(ctx context.Context) error {
	app.Logger.Info("Shutting down application...")
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			app.Logger.Error("Failed to close database connection", "error", err)
			return fmt.Errorf("failed to close database connection: %w", err)
		}
		app.Logger.Info("Database connection closed.")
	}
	app.Logger.Info("Application shut down gracefully.")
	return nil
}

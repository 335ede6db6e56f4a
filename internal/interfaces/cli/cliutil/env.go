// Package cliutil loads the runtime environment shared by the CLI commands.
package cliutil

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/garagehq/shopapi/internal/infrastructure/config"
	"github.com/garagehq/shopapi/internal/infrastructure/database"
	"github.com/garagehq/shopapi/internal/shared/logger"
)

// Env is a loaded configuration, an initialized process logger and an open
// database connection.
type Env struct {
	Config *config.Config
	DB     *gorm.DB
	Log    logger.Interface
}

// LoadConfig reads configuration and initializes the process logger without
// touching the database. A non-empty env overrides server.mode.
func LoadConfig(env, configDir string) (*config.Config, logger.Interface, error) {
	var searchPaths []string
	if configDir != "" {
		searchPaths = []string{configDir}
	}

	mode := env
	if mode != "" {
		mode = GinMode(env)
	}

	cfg, err := config.Load(mode, searchPaths...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode == "debug"); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, logger.NewLogger(), nil
}

// Open loads configuration and connects to the configured database.
func Open(env, configDir string) (*Env, error) {
	cfg, log, err := LoadConfig(env, configDir)
	if err != nil {
		return nil, err
	}

	gdb, err := database.Open(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &Env{Config: cfg, DB: gdb, Log: log}, nil
}

func (e *Env) Close() {
	if err := database.Close(e.DB); err != nil {
		e.Log.Warnw("failed to close database", "error", err)
	}
}

// GinMode maps a deployment environment name onto a gin mode.
func GinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}

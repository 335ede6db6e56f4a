package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/garagehq/shopapi/internal/infrastructure/migration"
	"github.com/garagehq/shopapi/internal/interfaces/cli/cliutil"
	httpRouter "github.com/garagehq/shopapi/internal/interfaces/http"
	"github.com/garagehq/shopapi/internal/shared/config"
	"github.com/garagehq/shopapi/internal/shared/version"
)

var (
	env         string
	configDir   string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the shop API HTTP server with the configuration found in configs/ and SHOPAPI_* variables.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "", "Environment (development, test, production); overrides server.mode")
	cmd.Flags().StringVarP(&configDir, "config", "c", "", "Directory holding config.yaml (default: ./configs)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Run database migrations on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" && env == "" {
		env = envVar
	}

	rt, err := cliutil.Open(env, configDir)
	if err != nil {
		return err
	}
	defer rt.Close()

	cfg, log := rt.Config, rt.Log

	log.Infow("starting server",
		"environment", env,
		"version", version.String(),
		"auto_migrate", autoMigrate)

	if cfg.Server.Mode == gin.ReleaseMode && !version.IsRelease() {
		log.Warnw("running an untagged build in release mode", "version", version.String())
	}

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {}

	if err := handleMigrations(cmd.Context(), rt); err != nil {
		return fmt.Errorf("migration handling failed: %w", err)
	}

	router, err := httpRouter.NewRouter(rt.DB, nil, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to build router: %w", err)
	}
	defer router.Shutdown()
	router.SetupRoutes()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infow("server starting",
			"address", cfg.Server.GetAddr(),
			"mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Errorw("failed to start server", "error", err)
		return err
	case <-quit:
	}

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}

// handleMigrations applies migrations when asked to, and otherwise reports
// the schema version of a MySQL database.
func handleMigrations(ctx context.Context, rt *cliutil.Env) error {
	if ctx == nil {
		ctx = context.Background()
	}
	log := rt.Log
	driver := rt.Config.Database.Driver

	if autoMigrate {
		if rt.Config.Server.Mode == gin.ReleaseMode {
			log.Warnw("auto-migration is enabled in release mode - this is not recommended!")
		}

		manager, err := migration.NewManager(driver, log)
		if err != nil {
			return err
		}
		return manager.Migrate(ctx, rt.DB)
	}

	if driver != config.DriverMySQL {
		return nil
	}

	gs, err := migration.NewGooseStrategy(log)
	if err != nil {
		log.Warnw("failed to open migration scripts", "error", err)
		return nil
	}
	v, err := gs.GetVersion(ctx, rt.DB)
	if err != nil {
		log.Warnw("failed to check migration status", "error", err)
		return nil
	}
	log.Infow("current migration version", "version", v)
	return nil
}

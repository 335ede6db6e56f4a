package migrate

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/garagehq/shopapi/internal/infrastructure/migration"
	"github.com/garagehq/shopapi/internal/interfaces/cli/cliutil"
	"github.com/garagehq/shopapi/internal/shared/config"
)

const defaultScriptsDir = "./internal/infrastructure/migration/scripts/mysql"

var (
	env        string
	configDir  string
	name       string
	scriptsDir string
	steps      int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including running migrations, checking status, and creating new migration files.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&configDir, "config", "c", "", "Directory holding config.yaml (default: ./configs)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply all pending migrations. MySQL uses the versioned SQL scripts; sqlite is migrated from the models.`,
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		Long:  `Rollback a specified number of database migrations.`,
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Long:  `Display the current migration version and status of the database.`,
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		Long:  `Create a new timestamped SQL migration file.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	cmd.Flags().StringVar(&scriptsDir, "dir", defaultScriptsDir, "Directory the migration file is written to")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func runUp(cmd *cobra.Command, args []string) error {
	rt, err := cliutil.Open(env, configDir)
	if err != nil {
		return err
	}
	defer rt.Close()

	rt.Log.Infow("running up migrations", "environment", env, "driver", rt.Config.Database.Driver)

	manager, err := migration.NewManager(rt.Config.Database.Driver, rt.Log)
	if err != nil {
		return err
	}
	if err := manager.Migrate(context.Background(), rt.DB); err != nil {
		return err
	}

	rt.Log.Infow("migrations completed successfully")
	return nil
}

// gooseEnv opens the environment and refuses drivers without versioned
// scripts.
func gooseEnv(op string) (*cliutil.Env, *migration.GooseStrategy, error) {
	rt, err := cliutil.Open(env, configDir)
	if err != nil {
		return nil, nil, err
	}

	if rt.Config.Database.Driver != config.DriverMySQL {
		rt.Close()
		return nil, nil, fmt.Errorf("%s is only supported for the %s driver", op, config.DriverMySQL)
	}

	gs, err := migration.NewGooseStrategy(rt.Log)
	if err != nil {
		rt.Close()
		return nil, nil, err
	}
	return rt, gs, nil
}

func runDown(cmd *cobra.Command, args []string) error {
	rt, gs, err := gooseEnv("down migration")
	if err != nil {
		return err
	}
	defer rt.Close()

	rt.Log.Infow("running down migrations", "environment", env, "steps", steps)

	if err := gs.MigrateDown(context.Background(), rt.DB, steps); err != nil {
		return fmt.Errorf("down migration failed: %w", err)
	}

	rt.Log.Infow("down migration completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	rt, gs, err := gooseEnv("status check")
	if err != nil {
		return err
	}
	defer rt.Close()

	ctx := context.Background()
	version, err := gs.GetVersion(ctx, rt.DB)
	if err != nil {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	statuses, err := gs.Status(ctx, rt.DB)
	if err != nil {
		return fmt.Errorf("failed to get detailed status: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nMigration Status:\n")
	fmt.Fprintf(out, "  Environment:     %s\n", env)
	fmt.Fprintf(out, "  Current Version: %d\n\n", version)
	for _, st := range statuses {
		state := "pending"
		if st.Applied {
			state = "applied"
		}
		fmt.Fprintf(out, "  %-8s %05d  %s\n", state, st.Version, st.Path)
	}

	return nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	_, log, err := cliutil.LoadConfig(env, configDir)
	if err != nil {
		return err
	}

	gs := migration.NewGooseStrategyWithFS(nil, log)
	if err := gs.Create(scriptsDir, name); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Migration '%s' created in %s\n", name, scriptsDir)
	return nil
}

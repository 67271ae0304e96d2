package migrate

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"tally/internal/infrastructure/config"
	"tally/internal/infrastructure/database"
	"tally/internal/infrastructure/migration"
	"tally/internal/shared/logger"
)

var (
	env   string
	steps int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Run, roll back, inspect, and create database migrations.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

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
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create [name]",
		Short: "Create a new migration file pair",
		Args:  cobra.ExactArgs(1),
		RunE:  runCreate,
	}
}

func runUp(cmd *cobra.Command, args []string) error {
	strategy, cleanup, err := connect()
	if err != nil {
		return err
	}
	defer cleanup()

	return migration.NewManagerWithStrategy(strategy).Migrate(database.Get())
}

func runDown(cmd *cobra.Command, args []string) error {
	strategy, cleanup, err := connect()
	if err != nil {
		return err
	}
	defer cleanup()

	return strategy.MigrateDown(database.Get(), steps)
}

func runStatus(cmd *cobra.Command, args []string) error {
	strategy, cleanup, err := connect()
	if err != nil {
		return err
	}
	defer cleanup()

	version, dirty, err := strategy.Version(database.Get())
	if err != nil {
		return err
	}

	logger.Info("migration status", "version", version, "dirty", dirty)
	return nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	scriptsPath, err := filepath.Abs(migration.ScriptsPath)
	if err != nil {
		return fmt.Errorf("failed to resolve scripts path: %w", err)
	}

	return migration.NewGenerator(scriptsPath).CreateMigration(args[0])
}

// connect loads configuration, opens the database, and returns the
// golang-migrate strategy plus a cleanup func.
func connect() (*migration.GolangMigrateStrategy, func(), error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, false); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	scriptsPath, err := filepath.Abs(migration.ScriptsPath)
	if err != nil {
		database.Close()
		return nil, nil, fmt.Errorf("failed to resolve scripts path: %w", err)
	}

	cleanup := func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}

	return migration.NewGolangMigrateStrategy(scriptsPath), cleanup, nil
}

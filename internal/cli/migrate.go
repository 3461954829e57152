package cli

import (
	"fmt"

	"rescue-site-server/internal/bootstrap"
	"rescue-site-server/internal/database"

	"github.com/spf13/cobra"
)

// MigrateCmd - управление схемой БД.
func MigrateCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back database migrations",
	}

	run := func(action func(cmd *cobra.Command, m *database.Migrator) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			env, err := loadEnvironment(opts)
			if err != nil {
				return err
			}
			pool, err := bootstrap.SetupPostgres(cmd.Context(), env.cfg, bootstrap.CLIRetryPolicy, env.logger)
			if err != nil {
				return err
			}
			defer pool.Close()
			return action(cmd, database.NewMigrator(pool))
		}
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: run(func(cmd *cobra.Command, m *database.Migrator) error {
			if err := m.Up(); err != nil {
				return err
			}
			return printVersion(cmd, m)
		}),
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back all migrations",
		RunE: run(func(cmd *cobra.Command, m *database.Migrator) error {
			if err := m.Down(); err != nil {
				return err
			}
			return printVersion(cmd, m)
		}),
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show the current schema version",
		RunE:  run(printVersion),
	})
	return cmd
}

func printVersion(cmd *cobra.Command, m *database.Migrator) error {
	version, dirty, err := m.Version()
	if err != nil {
		return err
	}
	state := successColor.Sprint("clean")
	if dirty {
		state = failureColor.Sprint("dirty")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Schema version: %d (%s)\n", version, state)
	return nil
}

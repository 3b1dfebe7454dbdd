package main

import (
	"os"

	"schoolhub/internal/errors"
	"schoolhub/internal/infra/persistence/postgres"

	"github.com/spf13/cobra"
)

const databaseURLEnv = "DATABASE_URL"

// migrator is the part of *postgres.Migrator the commands drive.
type migrator interface {
	Up() error
	Down() error
	Version() (version uint, dirty bool, err error)
	Close() error
}

type migratorOpener func(databaseURL string) (migrator, error)

func openMigrator(databaseURL string) (migrator, error) {
	m, err := postgres.NewMigrator(databaseURL)
	if err != nil {
		return nil, err
	}

	return m, nil
}

// NewRootCmd creates the root command for the schoolhub-admin CLI.
func NewRootCmd(open migratorOpener) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "schoolhub-admin",
		Short:        "Operational tasks for schoolhub",
		SilenceUsage: true,
	}

	cmd.AddCommand(NewMigrateCmd(open))

	return cmd
}

// NewMigrateCmd creates the migrate command and its up/down/version subcommands.
func NewMigrateCmd(open migratorOpener) *cobra.Command {
	var databaseURL string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
		Long: `Apply or roll back the embedded schema migrations. The database is
taken from --database-url, or DATABASE_URL when the flag is empty.`,
	}
	cmd.PersistentFlags().StringVar(&databaseURL, "database-url", "", "PostgreSQL connection URL")

	withMigrator := func(run func(cmd *cobra.Command, m migrator) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			url := databaseURL
			if url == "" {
				url = os.Getenv(databaseURLEnv)
			}
			if url == "" {
				return errors.New("--database-url or " + databaseURLEnv + " is required")
			}

			m, err := open(url)
			if err != nil {
				return err
			}
			defer func() {
				if closeErr := m.Close(); closeErr != nil {
					cmd.PrintErrln("close migrator:", closeErr)
				}
			}()

			return run(cmd, m)
		}
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: withMigrator(func(cmd *cobra.Command, m migrator) error {
				if err := m.Up(); err != nil {
					return err
				}
				cmd.Println("Migrations applied")

				return nil
			}),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back every migration",
			Args:  cobra.NoArgs,
			RunE: withMigrator(func(cmd *cobra.Command, m migrator) error {
				if err := m.Down(); err != nil {
					return err
				}
				cmd.Println("Migrations rolled back")

				return nil
			}),
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the applied schema version",
			Args:  cobra.NoArgs,
			RunE: withMigrator(func(cmd *cobra.Command, m migrator) error {
				version, dirty, err := m.Version()
				if err != nil {
					return err
				}
				cmd.Printf("version=%d dirty=%t\n", version, dirty)

				return nil
			}),
		},
	)

	return cmd
}

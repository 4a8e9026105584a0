package cli

import (
	"fmt"
	"io"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"transparency/db"
	"transparency/db/migrations"
	"transparency/internal/logger"
)

// MigrateCmd groups the schema migration subcommands.
func MigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or inspect the Postgres schema",
	}
	cmd.AddCommand(migrateUpCmd())
	cmd.AddCommand(migrateDownCmd())
	cmd.AddCommand(migrateStatusCmd())
	return cmd
}

func openDB(cmd *cobra.Command) (*sqlx.DB, logger.Logger, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	conn, err := db.Open(cfg.Database.Postgres)
	if err != nil {
		return nil, nil, err
	}
	return conn, newLogger(cmd, cfg), nil
}

func migrateUpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, log, err := openDB(cmd)
			if err != nil {
				return err
			}
			defer conn.Close()

			if err := migrations.Run(conn.DB, log); err != nil {
				return err
			}
			v, err := migrations.Version(conn.DB, log)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s schema at version %d\n", okStyle.Sprint("OK"), v)
			return nil
		},
	}
}

func migrateDownCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, log, err := openDB(cmd)
			if err != nil {
				return err
			}
			defer conn.Close()

			if err := migrations.Down(conn.DB, log); err != nil {
				return err
			}
			v, err := migrations.Version(conn.DB, log)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s schema at version %d\n", okStyle.Sprint("OK"), v)
			return nil
		},
	}
}

func migrateStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the applied version and the bundled migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := migrations.Files()
			if err != nil {
				return err
			}
			conn, log, err := openDB(cmd)
			if err != nil {
				return err
			}
			defer conn.Close()

			v, err := migrations.Version(conn.DB, log)
			if err != nil {
				return err
			}
			printMigrationStatus(cmd.OutOrStdout(), v, files)
			return nil
		},
	}
}

func printMigrationStatus(w io.Writer, version int64, files []string) {
	fmt.Fprintf(w, "%s %d\n", labelStyle.Sprint("Schema version:"), version)
	for _, f := range files {
		state := dimStyle.Sprint("pending")
		if n, err := goose.NumericComponent(f); err == nil && n <= version {
			state = okStyle.Sprint("applied")
		}
		fmt.Fprintf(w, "  %s  %s\n", state, f)
	}
}

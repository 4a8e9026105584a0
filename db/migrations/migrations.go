package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"transparency/internal/logger"
)

//go:embed sql/*.sql
var embedMigrations embed.FS

const migrationDir = "sql"

func setup(log logger.Logger) error {
	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(gooseLogger{log: log})
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}
	return nil
}

// Run applies every pending migration.
func Run(db *sql.DB, log logger.Logger) error {
	if err := setup(log); err != nil {
		return err
	}
	log.Info("running migrations", map[string]interface{}{"dir": migrationDir})
	if err := goose.Up(db, migrationDir); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Down rolls back the most recent migration.
func Down(db *sql.DB, log logger.Logger) error {
	if err := setup(log); err != nil {
		return err
	}
	if err := goose.Down(db, migrationDir); err != nil {
		return fmt.Errorf("failed to roll back migration: %w", err)
	}
	return nil
}

// Version returns the schema version currently applied.
func Version(db *sql.DB, log logger.Logger) (int64, error) {
	if err := setup(log); err != nil {
		return 0, err
	}
	v, err := goose.GetDBVersion(db)
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return v, nil
}

// Files lists the embedded migration scripts in apply order.
func Files() ([]string, error) {
	entries, err := embedMigrations.ReadDir(migrationDir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}

type gooseLogger struct {
	log logger.Logger
}

func (g gooseLogger) Printf(format string, v ...interface{}) {
	g.log.Info(fmt.Sprintf(format, v...), nil)
}

// Fatalf is only reached from goose's own CLI helpers, which this package does not use.
func (g gooseLogger) Fatalf(format string, v ...interface{}) {
	g.log.Error(fmt.Sprintf(format, v...), nil)
}

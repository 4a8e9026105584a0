// Package cli implements catalogctl, the operator tool for the transparency catalog.
package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"transparency/internal/bootstrap"
	"transparency/internal/catalog"
	"transparency/internal/config"
	"transparency/internal/logger"
)

var (
	okStyle    = color.New(color.FgGreen)
	failStyle  = color.New(color.FgRed)
	labelStyle = color.New(color.FgCyan, color.Bold)
	dimStyle   = color.New(color.Faint)
)

// NewRootCmd builds catalogctl with every subcommand registered.
func NewRootCmd(version string) *cobra.Command {
	root := &cobra.Command{
		Use:     "catalogctl",
		Short:   "Operate the judicial transparency catalog",
		Version: version,
		Long: `catalogctl manages the catalog behind the transparency API.

It migrates and seeds the Postgres store, validates catalog documents and
runs the same list queries and facet counts the API serves.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "config file (default: configs/config.yaml)")
	flags.String("source", "", "override catalog.source (bundled, file, postgres)")
	flags.String("catalog-file", "", "catalog JSON document, implies --source file")
	flags.BoolP("verbose", "v", false, "log to stderr")

	root.AddCommand(MigrateCmd())
	root.AddCommand(SeedCmd())
	root.AddCommand(ValidateCmd())
	root.AddCommand(QueryCmd())
	root.AddCommand(FacetsCmd())
	root.AddCommand(StatsCmd())
	return root
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		cfg, err = config.LoadFromFile(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if src, _ := cmd.Flags().GetString("source"); src != "" {
		cfg.Catalog.Source = src
	}
	if file, _ := cmd.Flags().GetString("catalog-file"); file != "" {
		cfg.Catalog.Source = config.SourceFile
		cfg.Catalog.File = file
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command, cfg *config.Config) logger.Logger {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		return logger.NewStructured(cfg.Logging.Level, "console")
	}
	return logger.NewNoOpLogger()
}

func openCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	log := newLogger(cmd, cfg)
	defer log.Sync()
	return bootstrap.LoadCatalog(cmd.Context(), cfg, log)
}

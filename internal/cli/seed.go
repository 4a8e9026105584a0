package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"transparency/db"
	"transparency/db/migrations"
	"transparency/internal/catalog"
)

// SeedCmd writes a catalog document into Postgres. Without --catalog-file the bundled
// catalog is used.
func SeedCmd() *cobra.Command {
	var replace bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load a catalog document into Postgres",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := seedDocument(cmd)
			if err != nil {
				return err
			}

			conn, log, err := openDB(cmd)
			if err != nil {
				return err
			}
			defer conn.Close()

			if err := migrations.Run(conn.DB, log); err != nil {
				return err
			}
			store := db.NewStorage(conn)
			if err := store.Seed(cmd.Context(), doc, replace); err != nil {
				return err
			}
			counts, err := store.Counts(cmd.Context())
			if err != nil {
				return err
			}
			printCounts(cmd.OutOrStdout(), counts)
			return nil
		},
	}

	cmd.Flags().BoolVar(&replace, "replace", false, "delete existing records before seeding")
	return cmd
}

func seedDocument(cmd *cobra.Command) (catalog.Document, error) {
	file, _ := cmd.Flags().GetString("catalog-file")
	if file == "" {
		return catalog.Bundled().Document(), nil
	}
	c, err := catalog.LoadFile(file)
	if err != nil {
		return catalog.Document{}, err
	}
	return c.Document(), nil
}

func printCounts(w io.Writer, counts map[string]int) {
	tables := make([]string, 0, len(counts))
	for t := range counts {
		tables = append(tables, t)
	}
	sort.Strings(tables)

	fmt.Fprintf(w, "%s catalog seeded\n", okStyle.Sprint("OK"))
	for _, t := range tables {
		fmt.Fprintf(w, "  %-14s %d\n", t, counts[t])
	}
}

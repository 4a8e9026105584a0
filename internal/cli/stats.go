package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"transparency/internal/catalog"
)

// StatsCmd prints the catalog summary served by /api/stats.
func StatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarize the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := openCatalog(cmd)
			if err != nil {
				return err
			}
			printStats(cmd.OutOrStdout(), c.Stats())
			return nil
		},
	}
}

func printStats(w io.Writer, s catalog.Stats) {
	line := func(label string, value interface{}) {
		fmt.Fprintf(w, "%s %v\n", labelStyle.Sprintf("%-26s", label+":"), value)
	}
	line("Candidates", s.Candidates)
	line("Commissions", s.Commissions)
	line("Institutions", s.Institutions)
	line("News", s.News)
	line("Active commissions", s.ActiveCommissions)
	line("Positions available", s.PositionsAvailable)
	line("Average progress", fmt.Sprintf("%d%%", s.AverageProgress))
	line("Average years experience", s.AverageYearsExperience)

	fmt.Fprintln(w)
	labelStyle.Fprintln(w, "Candidate status")
	writeFacetTable(w, s.CandidateStatuses)
	fmt.Fprintln(w)
	labelStyle.Fprintln(w, "Specializations")
	writeFacetTable(w, s.Specializations)
}

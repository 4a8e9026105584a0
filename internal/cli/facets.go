package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"transparency/internal/catalog"
	"transparency/internal/query"
)

// FacetsCmd prints the distinct values of one field with their counts.
func FacetsCmd() *cobra.Command {
	var byCount bool

	cmd := &cobra.Command{
		Use:   "facets <collection> <field>",
		Short: "Count the distinct values of a field",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := openCatalog(cmd)
			if err != nil {
				return err
			}
			return runCollectionFacets(cmd.OutOrStdout(), c, args[0], args[1], byCount)
		},
	}

	cmd.Flags().BoolVar(&byCount, "by-count", false, "order by count instead of first appearance")
	return cmd
}

func runCollectionFacets(w io.Writer, c *catalog.Catalog, collection, field string, byCount bool) error {
	switch collection {
	case collectionCandidates:
		return printFacets(w, catalog.CandidateSchema, c.Candidates(), field, byCount)
	case collectionCommissions:
		return printFacets(w, catalog.CommissionSchema, c.Commissions(), field, byCount)
	case collectionInstitutions:
		return printFacets(w, catalog.InstitutionSchema, c.Institutions(), field, byCount)
	case collectionNews:
		return printFacets(w, catalog.NewsSchema, c.News(), field, byCount)
	}
	return unknownCollection(collection)
}

func printFacets[T any](w io.Writer, s *query.Schema[T], records []T, field string, byCount bool) error {
	facets, ok := s.FacetsFor(records, field)
	if !ok {
		fields := append(s.FilterNames(), s.ListNames()...)
		return fmt.Errorf("%s has no facet field %q (want one of %s)", s.Name, field, strings.Join(fields, ", "))
	}
	if byCount {
		facets = query.SortFacetsByCount(facets)
	}
	writeFacetTable(w, facets)
	fmt.Fprintln(w, dimStyle.Sprintf("%d values over %d %s", len(facets), len(records), s.Name))
	return nil
}

func writeFacetTable(w io.Writer, facets []query.Facet) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "VALUE\tCOUNT\tSHARE")
	for _, f := range facets {
		fmt.Fprintf(tw, "%s\t%d\t%d%%\n", f.Value, f.Count, f.Percentage)
	}
	tw.Flush()
}

package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"transparency/internal/catalog"
	"transparency/internal/query"
	"transparency/models"
)

// Collection names accepted by query and facets.
const (
	collectionCandidates   = "candidates"
	collectionCommissions  = "commissions"
	collectionInstitutions = "institutions"
	collectionNews         = "news"
)

var collections = []string{collectionCandidates, collectionCommissions, collectionInstitutions, collectionNews}

type column[T any] struct {
	name  string
	value func(T) string
}

var candidateColumns = []column[models.Candidate]{
	{"ID", func(c models.Candidate) string { return c.ID }},
	{"NAME", func(c models.Candidate) string { return c.Name }},
	{"SPECIALIZATION", func(c models.Candidate) string { return c.Specialization }},
	{"STATUS", func(c models.Candidate) string { return c.Status }},
	{"YEARS", func(c models.Candidate) string { return strconv.Itoa(c.YearsOfExperience) }},
}

var commissionColumns = []column[models.Commission]{
	{"ID", func(c models.Commission) string { return c.ID }},
	{"NAME", func(c models.Commission) string { return c.Name }},
	{"STATUS", func(c models.Commission) string { return c.Status }},
	{"START", func(c models.Commission) string { return c.StartDate }},
	{"PROGRESS", func(c models.Commission) string { return strconv.Itoa(c.Progress()) + "%" }},
}

var institutionColumns = []column[models.Institution]{
	{"ID", func(i models.Institution) string { return i.ID }},
	{"NAME", func(i models.Institution) string { return i.Name }},
	{"TYPE", func(i models.Institution) string { return i.Type }},
}

var newsColumns = []column[models.NewsArticle]{
	{"ID", func(n models.NewsArticle) string { return n.ID }},
	{"DATE", func(n models.NewsArticle) string { return n.Date }},
	{"CATEGORY", func(n models.NewsArticle) string { return n.Category }},
	{"TITLE", func(n models.NewsArticle) string { return n.Title }},
}

type queryOptions struct {
	search   string
	sort     string
	filters  []string
	page     int
	pageSize int
	lenient  bool
}

// QueryCmd runs the list pipeline over one collection and prints the window as a table.
func QueryCmd() *cobra.Command {
	var opts queryOptions

	cmd := &cobra.Command{
		Use:   "query <collection>",
		Short: "List records the way the API does",
		Long: `Run the search, filter, sort and pagination pipeline over one collection.

Collections: candidates, commissions, institutions, news.
Filters and range buckets are both passed as --filter name=value, e.g.
  catalogctl query candidates --filter experience=25+ --sort experience`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := openCatalog(cmd)
			if err != nil {
				return err
			}
			return runCollectionQuery(cmd.OutOrStdout(), c, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.search, "query", "q", "", "free-text search")
	cmd.Flags().StringVarP(&opts.sort, "sort", "s", "", "sort key")
	cmd.Flags().StringArrayVarP(&opts.filters, "filter", "f", nil, "name=value filter or range bucket (repeatable)")
	cmd.Flags().IntVar(&opts.page, "page", 0, "1-indexed page, 0 lists everything")
	cmd.Flags().IntVar(&opts.pageSize, "page-size", 6, "records per page")
	cmd.Flags().BoolVar(&opts.lenient, "lenient", false, "ignore unknown sort keys and filters instead of failing")
	return cmd
}

func runCollectionQuery(w io.Writer, c *catalog.Catalog, collection string, opts queryOptions) error {
	switch collection {
	case collectionCandidates:
		return runQuery(w, catalog.CandidateSchema, c.Candidates(), opts, candidateColumns)
	case collectionCommissions:
		return runQuery(w, catalog.CommissionSchema, c.Commissions(), opts, commissionColumns)
	case collectionInstitutions:
		return runQuery(w, catalog.InstitutionSchema, c.Institutions(), opts, institutionColumns)
	case collectionNews:
		return runQuery(w, catalog.NewsSchema, c.News(), opts, newsColumns)
	}
	return unknownCollection(collection)
}

func unknownCollection(name string) error {
	return fmt.Errorf("unknown collection %q (want one of %s)", name, strings.Join(collections, ", "))
}

func buildParams(opts queryOptions, ranges []string) (query.Params, error) {
	p := query.Params{
		Search:  strings.TrimSpace(opts.search),
		Sort:    query.SortKey(strings.TrimSpace(opts.sort)),
		Filters: map[string]string{},
		Ranges:  map[string]string{},
	}
	isRange := make(map[string]bool, len(ranges))
	for _, r := range ranges {
		isRange[r] = true
	}
	for _, f := range opts.filters {
		name, value, ok := strings.Cut(f, "=")
		if !ok || name == "" {
			return query.Params{}, fmt.Errorf("invalid filter %q, want name=value", f)
		}
		if isRange[name] {
			p.Ranges[name] = value
		} else {
			p.Filters[name] = value
		}
	}
	if opts.page > 0 {
		p.Page = &query.Page{Number: opts.page, Size: opts.pageSize}
	}
	return p, nil
}

func runQuery[T any](w io.Writer, s *query.Schema[T], records []T, opts queryOptions, cols []column[T]) error {
	p, err := buildParams(opts, s.RangeNames())
	if err != nil {
		return err
	}

	var res query.Result[T]
	if opts.lenient {
		res = s.RunLenient(records, p)
	} else if res, err = s.Run(records, p); err != nil {
		return fmt.Errorf("%w (sort keys: %s; filters: %s; ranges: %s)", err,
			joinKeys(s.SortKeys()), strings.Join(s.FilterNames(), ", "), strings.Join(s.RangeNames(), ", "))
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	names := make([]string, len(cols))
	for i, col := range cols {
		names[i] = col.name
	}
	fmt.Fprintln(tw, strings.Join(names, "\t"))
	for _, item := range res.Items {
		values := make([]string, len(cols))
		for i, col := range cols {
			values[i] = col.value(item)
		}
		fmt.Fprintln(tw, strings.Join(values, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	summary := fmt.Sprintf("%d of %d %s match, sorted by %s", res.Matched, res.Total, s.Name, res.Sort)
	if res.TotalPages > 0 {
		summary += fmt.Sprintf(", page %d of %d", res.Page, res.TotalPages)
	}
	fmt.Fprintln(w, dimStyle.Sprint(summary))
	for _, warning := range res.Warnings {
		fmt.Fprintf(w, "%s %s\n", failStyle.Sprint("ignored:"), warning)
	}
	return nil
}

func joinKeys(keys []query.SortKey) string {
	s := make([]string, len(keys))
	for i, k := range keys {
		s[i] = string(k)
	}
	return strings.Join(s, ", ")
}

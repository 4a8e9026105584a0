package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transparency/internal/catalog"
	"transparency/internal/query"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("catalog:\n  source: bundled\nlogging:\n  format: console\n"), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd("test")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config", writeConfig(t)}, args...))
	err := root.Execute()
	return out.String(), err
}

func assertOrder(t *testing.T, out string, ids ...string) {
	t.Helper()
	last := -1
	for _, id := range ids {
		i := strings.Index(out, id+" ")
		require.GreaterOrEqual(t, i, 0, "missing %s in\n%s", id, out)
		assert.Greater(t, i, last, "%s out of order in\n%s", id, out)
		last = i
	}
}

func TestRootRegistersSubcommands(t *testing.T) {
	root := NewRootCmd("test")
	assert.Equal(t, "test", root.Version)

	names := map[string]bool{}
	for _, sub := range root.Commands() {
		names[sub.Name()] = true
		assert.NotEmpty(t, sub.Short, sub.Name())
	}
	for _, want := range []string{"migrate", "seed", "validate", "query", "facets", "stats"} {
		assert.True(t, names[want], "subcommand %s not registered", want)
	}

	var migrate []string
	for _, sub := range MigrateCmd().Commands() {
		migrate = append(migrate, sub.Name())
	}
	assert.ElementsMatch(t, []string{"up", "down", "status"}, migrate)
}

func TestQueryCandidates(t *testing.T) {
	out, err := execute(t, "query", "candidates", "--filter", "experience=25+", "--sort", "experience")
	require.NoError(t, err)

	assertOrder(t, out, "c-011", "c-005", "c-002", "c-001", "c-003")
	assert.Contains(t, out, "5 of 12 candidates match, sorted by experience")
	assert.NotContains(t, out, "c-004 ")
}

func TestQueryPagination(t *testing.T) {
	out, err := execute(t, "query", "candidates", "--page", "2", "--page-size", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "12 of 12 candidates match")
	assert.Contains(t, out, "page 2 of 3")
	assert.Equal(t, 5, strings.Count(out, "c-0"))
}

func TestQueryStrictAndLenient(t *testing.T) {
	_, err := execute(t, "query", "candidates", "--sort", "salary")
	require.Error(t, err)
	assert.ErrorIs(t, err, query.ErrUnknownSortKey)
	assert.Contains(t, err.Error(), "sort keys:")

	out, err := execute(t, "query", "candidates", "--filter", "shoeSize=42", "--lenient")
	require.NoError(t, err)
	assert.Contains(t, out, "12 of 12 candidates match")
	assert.Contains(t, out, "ignored:")
}

func TestQueryUnknownCollection(t *testing.T) {
	_, err := execute(t, "query", "judges")
	assert.ErrorContains(t, err, `unknown collection "judges"`)
}

func TestBuildParams(t *testing.T) {
	p, err := buildParams(queryOptions{
		search:  "  fiscal ",
		filters: []string{"status=Activo", "experience=16-25"},
		page:    1, pageSize: 3,
	}, []string{"experience"})
	require.NoError(t, err)
	assert.Equal(t, "fiscal", p.Search)
	assert.Equal(t, map[string]string{"status": "Activo"}, p.Filters)
	assert.Equal(t, map[string]string{"experience": "16-25"}, p.Ranges)
	assert.Equal(t, &query.Page{Number: 1, Size: 3}, p.Page)

	p, err = buildParams(queryOptions{}, nil)
	require.NoError(t, err)
	assert.Nil(t, p.Page)

	_, err = buildParams(queryOptions{filters: []string{"status"}}, nil)
	assert.ErrorContains(t, err, "want name=value")
}

func TestFacets(t *testing.T) {
	out, err := execute(t, "facets", "candidates", "status")
	require.NoError(t, err)
	assert.Regexp(t, `Activo\s+9\s+75%`, out)
	assert.Contains(t, out, "over 12 candidates")

	out, err = execute(t, "facets", "candidates", "specialization", "--by-count")
	require.NoError(t, err)
	assertOrder(t, out, "Derecho Penal", "Derecho Civil", "Derecho Constitucional")

	_, err = execute(t, "facets", "news", "views")
	assert.ErrorContains(t, err, `news has no facet field "views"`)
}

func TestStats(t *testing.T) {
	out, err := execute(t, "stats")
	require.NoError(t, err)
	assert.Regexp(t, `Candidates:\s+12\n`, out)
	assert.Regexp(t, `Positions available:\s+21\n`, out)
	assert.Regexp(t, `Average progress:\s+33%\n`, out)
	assert.Contains(t, out, "Specializations")
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	data, err := json.Marshal(catalog.Bundled().Document())
	require.NoError(t, err)
	good := filepath.Join(dir, "good.json")
	require.NoError(t, os.WriteFile(good, data, 0o600))

	out, err := execute(t, "validate", good)
	require.NoError(t, err)
	assert.Contains(t, out, "OK "+good+": 12 candidates, 4 commissions, 6 institutions, 8 news")

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"candidates": 5}`), 0o600))
	out, err = execute(t, "validate", bad)
	assert.ErrorIs(t, err, catalog.ErrInvalidDocument)
	assert.Contains(t, out, "FAIL "+bad)
}

func TestCatalogFileOverride(t *testing.T) {
	doc := catalog.Bundled().Document()
	doc.News = doc.News[:3]
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	out, err := execute(t, "--catalog-file", path, "query", "news")
	require.NoError(t, err)
	assert.Contains(t, out, "3 of 3 news match")
}

func TestPrintMigrationStatus(t *testing.T) {
	var buf bytes.Buffer
	printMigrationStatus(&buf, 1, []string{"00001_create_catalog_tables.sql", "00002_add_position_indexes.sql"})

	out := buf.String()
	assert.Contains(t, out, "Schema version: 1")
	assert.Contains(t, out, "applied  00001_create_catalog_tables.sql")
	assert.Contains(t, out, "pending  00002_add_position_indexes.sql")
}

func TestPrintCounts(t *testing.T) {
	var buf bytes.Buffer
	printCounts(&buf, map[string]int{"news_articles": 8, "candidates": 12})

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "OK catalog seeded\n"))
	assertOrder(t, out, "candidates", "news_articles")
	assert.Regexp(t, `candidates\s+12\n`, out)
}

func TestSeedDocumentDefaultsToBundled(t *testing.T) {
	doc, err := seedDocument(SeedCmd())
	require.NoError(t, err)
	assert.Len(t, doc.Candidates, 12)
}

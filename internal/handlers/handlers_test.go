package handlers_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"transparency/internal/catalog"
	"transparency/internal/handlers"
	"transparency/internal/handlers/testutils"
	"transparency/internal/logger"
	"transparency/internal/metrics"
)

// MockCatalog serves the bundled records and lets tests intercept search calls.
type MockCatalog struct {
	*catalog.Catalog
	SearchFunc func(text string, limit int) catalog.SearchResults
}

func (m *MockCatalog) Search(text string, limit int) catalog.SearchResults {
	if m.SearchFunc != nil {
		return m.SearchFunc(text, limit)
	}
	return m.Catalog.Search(text, limit)
}

// memCache is an in-process cache.Cache.
type memCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newMemCache() *memCache { return &memCache{entries: map[string][]byte{}} }

func (c *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	return v, ok, nil
}

func (c *memCache) Set(_ context.Context, key string, value []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = append([]byte(nil), value...)
	return nil
}

func (c *memCache) Close() error { return nil }

type listResponse struct {
	Items      []map[string]interface{} `json:"items"`
	Total      int                      `json:"total"`
	Matched    int                      `json:"matched"`
	Sort       string                   `json:"sort"`
	Page       int                      `json:"page"`
	PageSize   int                      `json:"pageSize"`
	TotalPages int                      `json:"totalPages"`
}

func (l listResponse) ids() []string {
	out := make([]string, len(l.Items))
	for i, item := range l.Items {
		out[i], _ = item["id"].(string)
	}
	return out
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
}

func newHandler(t *testing.T, opts handlers.Options) *handlers.Handler {
	t.Helper()
	return handlers.NewHandler(&MockCatalog{Catalog: catalog.Bundled()}, nil, logger.NewTestLogger(t), opts)
}

func strict() handlers.Options {
	return handlers.Options{Strict: true, DefaultPageSize: 6, MaxPageSize: 10}
}

func do(t *testing.T, h http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	return testutils.Serve(h, httptest.NewRequest(method, target, nil))
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	return testutils.DecodeJSON[T](t, w)
}

func TestPingHandler(t *testing.T) {
	h := newHandler(t, strict())
	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	w := httptest.NewRecorder()

	h.PingHandler(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "ok", w.Body.String())
}

func TestGetCandidatesDefaultOrder(t *testing.T) {
	r := newHandler(t, strict()).Routes()

	w := do(t, r, http.MethodGet, "/api/candidates")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))

	res := decode[listResponse](t, w)
	assert.Len(t, res.Items, 12)
	assert.Equal(t, 12, res.Total)
	assert.Equal(t, 12, res.Matched)
	assert.Equal(t, "name", res.Sort)
	assert.Zero(t, res.Page)
	assert.Zero(t, res.TotalPages)
	assert.Equal(t, "c-003", res.ids()[0])
}

func TestGetCandidatesFiltersRangeAndSort(t *testing.T) {
	r := newHandler(t, strict()).Routes()

	q := url.Values{"status": {"Activo"}, "experience": {"25+"}, "sort": {"experience"}}
	w := do(t, r, http.MethodGet, "/api/candidates?"+q.Encode())
	require.Equal(t, http.StatusOK, w.Code)

	res := decode[listResponse](t, w)
	assert.Equal(t, []string{"c-005", "c-002", "c-001", "c-003"}, res.ids())
	assert.Equal(t, 4, res.Matched)
	assert.Equal(t, 12, res.Total)
}

func TestGetCandidatesAllIsNoConstraint(t *testing.T) {
	r := newHandler(t, strict()).Routes()

	w := do(t, r, http.MethodGet, "/api/candidates?status=all&experience=all&institution=")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 12, decode[listResponse](t, w).Matched)
}

func TestGetCandidatesPagination(t *testing.T) {
	r := newHandler(t, strict()).Routes()

	tests := []struct {
		name       string
		query      string
		wantItems  int
		wantPage   int
		wantSize   int
		wantTotalP int
	}{
		{"second page", "page=2&pageSize=5", 5, 2, 5, 3},
		{"last page", "page=3&pageSize=5", 2, 3, 5, 3},
		{"past the end", "page=9&pageSize=5", 0, 9, 5, 3},
		{"malformed numbers", "page=abc&pageSize=-4", 6, 1, 6, 2},
		{"size capped", "page=1&pageSize=1000", 10, 1, 10, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, r, http.MethodGet, "/api/candidates?"+tt.query)
			require.Equal(t, http.StatusOK, w.Code)

			res := decode[listResponse](t, w)
			assert.Len(t, res.Items, tt.wantItems)
			assert.NotNil(t, res.Items)
			assert.Equal(t, tt.wantPage, res.Page)
			assert.Equal(t, tt.wantSize, res.PageSize)
			assert.Equal(t, tt.wantTotalP, res.TotalPages)
			assert.Equal(t, 12, res.Matched)
		})
	}
}

func TestGetCandidatesStrictRejectsUnknownParams(t *testing.T) {
	r := newHandler(t, strict()).Routes()

	tests := []struct {
		query string
		code  string
	}{
		{"sort=height", "UNKNOWN_SORT_KEY"},
		{"color=red", "UNKNOWN_FILTER"},
		{"experience=99", "UNKNOWN_RANGE_BUCKET"},
	}
	for _, tt := range tests {
		w := do(t, r, http.MethodGet, "/api/candidates?"+tt.query)
		require.Equal(t, http.StatusBadRequest, w.Code, tt.query)
		assert.Equal(t, tt.code, decode[errorBody](t, w).Code, tt.query)
	}
}

func TestGetCandidatesLenientLogsIgnoredParams(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	h := handlers.NewHandler(catalog.Bundled(), nil, logger.NewZapAdapter(zap.New(core)), handlers.Options{})
	r := h.Routes()

	w := do(t, r, http.MethodGet, "/api/candidates?sort=height&color=red")
	require.Equal(t, http.StatusOK, w.Code)

	res := decode[listResponse](t, w)
	assert.Empty(t, res.Sort)
	assert.Equal(t, "c-001", res.ids()[0])
	assert.Equal(t, 12, res.Matched)
	assert.Equal(t, 2, logs.FilterMessage("ignoring list parameter").Len())
}

func TestListEndpointsSearch(t *testing.T) {
	r := newHandler(t, strict()).Routes()

	tests := []struct {
		path    string
		matched int
	}{
		{"/api/candidates?q=FISCAL", 4},
		{"/api/candidates?q=%20%20fiscal%20", 4},
		{"/api/commissions?status=Pendiente", 1},
		{"/api/institutions?type=Organismo+Constitucional+Aut%C3%B3nomo", 4},
		{"/api/news?featured=true", 2},
		{"/api/news?category=Convocatorias&sort=views", 3},
	}
	for _, tt := range tests {
		w := do(t, r, http.MethodGet, tt.path)
		require.Equal(t, http.StatusOK, w.Code, tt.path)
		assert.Equal(t, tt.matched, decode[listResponse](t, w).Matched, tt.path)
	}
}

func TestFacetsHandler(t *testing.T) {
	r := newHandler(t, strict()).Routes()

	w := do(t, r, http.MethodGet, "/api/candidates/facets?field=status")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[struct {
		Field  string `json:"field"`
		Total  int    `json:"total"`
		Facets []struct {
			Value      string `json:"value"`
			Count      int    `json:"count"`
			Percentage int    `json:"percentage"`
		} `json:"facets"`
	}](t, w)
	assert.Equal(t, "status", body.Field)
	assert.Equal(t, 12, body.Total)
	require.Len(t, body.Facets, 3)
	assert.Equal(t, "Activo", body.Facets[0].Value)
	assert.Equal(t, 9, body.Facets[0].Count)
	assert.Equal(t, 75, body.Facets[0].Percentage)

	w = do(t, r, http.MethodGet, "/api/news/facets?field=tags&sort=count")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"value":"jnj","count":3`)

	w = do(t, r, http.MethodGet, "/api/candidates/facets")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_PARAMETER", decode[errorBody](t, w).Code)

	w = do(t, r, http.MethodGet, "/api/commissions/facets?field=name")
	require.Equal(t, http.StatusBadRequest, w.Code)
	e := decode[errorBody](t, w)
	assert.Equal(t, "UNKNOWN_FACET_FIELD", e.Code)
	assert.Equal(t, "status,type", e.Details)
}

func TestGetCandidateHandler(t *testing.T) {
	h := newHandler(t, strict())

	w := testutils.Serve(http.HandlerFunc(h.GetCandidateHandler),
		testutils.DetailRequest("/api/candidates/c-001", "candidateId", "c-001"))

	require.Equal(t, http.StatusOK, w.Code)
	body := decode[map[string]interface{}](t, w)
	assert.Equal(t, "success", body["statusTone"])
	assert.Equal(t, "com-jnj-2024", body["commission"].(map[string]interface{})["id"])
	assert.Equal(t, "poder-judicial", body["institution"].(map[string]interface{})["id"])
}

func TestDetailNotFound(t *testing.T) {
	r := newHandler(t, strict()).Routes()

	for _, path := range []string{
		"/api/candidates/c-999",
		"/api/commissions/none",
		"/api/institutions/none",
		"/api/news/none",
	} {
		w := do(t, r, http.MethodGet, path)
		require.Equal(t, http.StatusNotFound, w.Code, path)
		assert.Equal(t, "NOT_FOUND", decode[errorBody](t, w).Code, path)
	}
}

func TestGetCommissionHandler(t *testing.T) {
	h := newHandler(t, strict())

	w := testutils.Serve(http.HandlerFunc(h.GetCommissionHandler),
		testutils.DetailRequest("/api/commissions/com-jnj-2024", "commissionId", "com-jnj-2024"))

	require.Equal(t, http.StatusOK, w.Code)
	body := decode[struct {
		Progress        int    `json:"progress"`
		CompletedPhases int    `json:"completedPhases"`
		StatusTone      string `json:"statusTone"`
		CurrentPhase    *struct {
			Name string `json:"name"`
		} `json:"currentPhase"`
		Candidates []map[string]interface{} `json:"candidates"`
	}](t, w)
	assert.Equal(t, 33, body.Progress)
	assert.Equal(t, 1, body.CompletedPhases)
	assert.Equal(t, "info", body.StatusTone)
	require.NotNil(t, body.CurrentPhase)
	assert.Equal(t, "Evaluación curricular", body.CurrentPhase.Name)
	assert.Len(t, body.Candidates, 5)
}

func TestGetInstitutionHandler(t *testing.T) {
	r := newHandler(t, strict()).Routes()

	w := do(t, r, http.MethodGet, "/api/institutions/poder-judicial")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[struct {
		LatestBudget *struct {
			Year int `json:"year"`
		} `json:"latestBudget"`
		Candidates []map[string]interface{} `json:"candidates"`
	}](t, w)
	require.NotNil(t, body.LatestBudget)
	assert.Equal(t, 2024, body.LatestBudget.Year)
	assert.Len(t, body.Candidates, 5)
}

func TestGetArticleRelated(t *testing.T) {
	r := newHandler(t, strict()).Routes()

	w := do(t, r, http.MethodGet, "/api/news/n-001")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[struct {
		Related []map[string]interface{} `json:"related"`
	}](t, w)
	require.Len(t, body.Related, 2)
	assert.Equal(t, "n-007", body.Related[0]["id"])
	assert.Equal(t, "n-004", body.Related[1]["id"])
}

func TestSearchHandlers(t *testing.T) {
	var gotText string
	var gotLimit int
	mock := &MockCatalog{Catalog: catalog.Bundled()}
	mock.SearchFunc = func(text string, limit int) catalog.SearchResults {
		gotText, gotLimit = text, limit
		return mock.Catalog.Search(text, limit)
	}
	h := handlers.NewHandler(mock, nil, logger.NewTestLogger(t), handlers.Options{Strict: true, SearchLimit: 3})
	r := h.Routes()

	w := do(t, r, http.MethodGet, "/buscar?q=+fiscal+")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "fiscal", gotText)
	assert.Equal(t, 3, gotLimit)
	body := decode[struct {
		Query      string       `json:"query"`
		Total      int          `json:"total"`
		Candidates listResponse `json:"candidates"`
	}](t, w)
	assert.Equal(t, "fiscal", body.Query)
	assert.Len(t, body.Candidates.Items, 3)
	assert.Equal(t, 4, body.Candidates.Matched)

	w = do(t, r, http.MethodGet, "/api/search?q=fiscal&limit=1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, gotLimit)
}

func TestSubmitSearchRedirects(t *testing.T) {
	r := newHandler(t, strict()).Routes()

	req := httptest.NewRequest(http.MethodPost, "/api/search", strings.NewReader("q=derecho+penal"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/buscar?q=derecho+penal", w.Header().Get("Location"))

	req = httptest.NewRequest(http.MethodPost, "/api/search", strings.NewReader("q=+++"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, w.Header().Get("Location"))
}

func TestStatsAndGraph(t *testing.T) {
	r := newHandler(t, strict()).Routes()

	w := do(t, r, http.MethodGet, "/api/stats")
	require.Equal(t, http.StatusOK, w.Code)
	stats := decode[catalog.Stats](t, w)
	assert.Equal(t, 12, stats.Candidates)
	assert.Equal(t, 33, stats.AverageProgress)

	w = do(t, r, http.MethodGet, "/api/graph")
	require.Equal(t, http.StatusOK, w.Code)
	g := decode[catalog.Graph](t, w)
	assert.Len(t, g.Nodes, 22)
	assert.Len(t, g.Links, 24)
}

func TestCachedResponses(t *testing.T) {
	store := newMemCache()
	h := handlers.NewHandler(catalog.Bundled(), store, logger.NewTestLogger(t), strict())
	r := h.Routes()

	first := do(t, r, http.MethodGet, "/api/news?category=Convocatorias")
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "MISS", first.Header().Get("X-Cache"))

	second := do(t, r, http.MethodGet, "/api/news?category=Convocatorias")
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.Equal(t, first.Body.String(), second.Body.String())

	bad := do(t, r, http.MethodGet, "/api/news?sort=nope")
	require.Equal(t, http.StatusBadRequest, bad.Code)
	_, cached, _ := store.Get(context.Background(), "/api/news?sort=nope")
	assert.False(t, cached)
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	h := newHandler(t, strict())
	srv := h.Routes(handlers.RequestLogger(logger.NewZapAdapter(zap.New(core))))

	w := do(t, srv, http.MethodGet, "/api/candidates/c-001")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Header.Set("X-Request-ID", "fixed-id")
	w = httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	assert.Equal(t, "fixed-id", w.Header().Get("X-Request-ID"))

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 2)
	assert.Equal(t, "/api/candidates/{candidateId}", entries[0].ContextMap()["route"])
	assert.Equal(t, "fixed-id", entries[1].ContextMap()["request_id"])
}

func TestRequestLoggerReplacesUnsafeRequestIDs(t *testing.T) {
	srv := newHandler(t, strict()).Routes(handlers.RequestLogger(logger.NewNoOpLogger()))

	tests := []struct {
		name   string
		header string
		kept   bool
	}{
		{name: "trace id", header: "edge-01.abc_DEF", kept: true},
		{name: "uuid", header: "6f1c2a9e-3b1d-4c55-9a0e-2f7d8b1c4e00", kept: true},
		{name: "too long", header: strings.Repeat("a", 65)},
		{name: "log injection", header: "id\ninjected=1"},
		{name: "spaces", header: "has space"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
			req.Header.Set("X-Request-ID", tt.header)
			got := testutils.Serve(srv, req).Header().Get("X-Request-ID")
			if tt.kept {
				assert.Equal(t, tt.header, got)
				return
			}
			assert.NotEqual(t, tt.header, got)
			_, err := uuid.Parse(got)
			assert.NoError(t, err)
		})
	}
}

func TestRequestLoggerBoundsUnmatchedRoutes(t *testing.T) {
	srv := newHandler(t, strict()).Routes(handlers.RequestLogger(logger.NewNoOpLogger()))
	unmatched := metrics.HTTPRequests.WithLabelValues(http.MethodGet, "unmatched", "404")

	seriesBefore := testutil.CollectAndCount(metrics.HTTPRequests)
	hitsBefore := testutil.ToFloat64(unmatched)
	for i := 0; i < 10; i++ {
		w := do(t, srv, http.MethodGet, fmt.Sprintf("/nope/%d", i))
		require.Equal(t, http.StatusNotFound, w.Code)
	}

	assert.Equal(t, seriesBefore, testutil.CollectAndCount(metrics.HTTPRequests))
	assert.Equal(t, hitsBefore+10, testutil.ToFloat64(unmatched))
}

func TestUnknownRoute(t *testing.T) {
	r := newHandler(t, strict()).Routes()

	w := do(t, r, http.MethodGet, "/api/judges")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", decode[errorBody](t, w).Code)
}

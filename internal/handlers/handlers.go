package handlers

import (
	"encoding/json"
	"net/http"

	"transparency/internal/cache"
	"transparency/internal/logger"
)

// Options tune how list endpoints interpret their parameters.
type Options struct {
	// Strict answers unknown sort keys, filters and buckets with 400. Otherwise they are
	// ignored and logged.
	Strict          bool
	DefaultPageSize int
	MaxPageSize     int
	// SearchLimit caps the hits returned per collection by site-wide search. Zero means no cap.
	SearchLimit int
}

func (o Options) withDefaults() Options {
	if o.DefaultPageSize < 1 {
		o.DefaultPageSize = 6
	}
	if o.MaxPageSize < o.DefaultPageSize {
		o.MaxPageSize = o.DefaultPageSize
	}
	return o
}

// Handler serves the catalog over HTTP.
type Handler struct {
	Catalog CatalogReader
	Cache   cache.Cache
	Log     logger.Logger
	opts    Options
}

// NewHandler wires a handler. A nil cache disables response caching and a nil logger discards logs.
func NewHandler(c CatalogReader, store cache.Cache, log logger.Logger, opts Options) *Handler {
	if store == nil {
		store = cache.NopCache{}
	}
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Handler{Catalog: c, Cache: store, Log: log, opts: opts.withDefaults()}
}

// PingHandler answers "ok" for liveness checks.
func (h *Handler) PingHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

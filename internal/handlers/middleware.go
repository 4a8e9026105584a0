package handlers

import (
	"bytes"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"transparency/internal/logger"
	"transparency/internal/metrics"
)

const (
	requestIDHeader = "X-Request-ID"
	maxRequestIDLen = 64

	// unmatchedRoute labels every request no route pattern matched.
	unmatchedRoute = "unmatched"
)

// requestID keeps an upstream id made of URL-safe characters and mints a new one otherwise.
func requestID(header string) string {
	if header == "" || len(header) > maxRequestIDLen {
		return uuid.NewString()
	}
	for _, c := range header {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_', c == '.':
		default:
			return uuid.NewString()
		}
	}
	return header
}

// RequestLogger stamps a request id, logs one line per request and records HTTP metrics.
func RequestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := requestID(r.Header.Get(requestIDHeader))
			w.Header().Set(requestIDHeader, reqID)

			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			elapsed := time.Since(start)

			route := unmatchedRoute
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			metrics.HTTPRequests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
			metrics.HTTPDuration.WithLabelValues(r.Method, route).Observe(elapsed.Seconds())

			log.Info("request", map[string]interface{}{
				"request_id":  reqID,
				"method":      r.Method,
				"path":        r.URL.RequestURI(),
				"route":       route,
				"status":      status,
				"bytes":       ww.BytesWritten(),
				"duration_ms": elapsed.Milliseconds(),
			})
		})
	}
}

// Cached serves repeated GETs from the response cache. Only 200 responses are stored and
// cache failures fall through to the handler.
func (h *Handler) Cached(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			next.ServeHTTP(w, r)
			return
		}

		key := r.URL.RequestURI()
		body, ok, err := h.Cache.Get(r.Context(), key)
		if err != nil {
			h.Log.Warn("cache lookup failed", map[string]interface{}{"key": key, "error": err.Error()})
		}
		if ok {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-Cache", "HIT")
			w.WriteHeader(http.StatusOK)
			w.Write(body)
			return
		}

		var buf bytes.Buffer
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		ww.Tee(&buf)
		ww.Header().Set("X-Cache", "MISS")
		next.ServeHTTP(ww, r)

		if ww.Status() == http.StatusOK {
			if err := h.Cache.Set(r.Context(), key, buf.Bytes()); err != nil {
				h.Log.Warn("cache store failed", map[string]interface{}{"key": key, "error": err.Error()})
			}
		}
	})
}

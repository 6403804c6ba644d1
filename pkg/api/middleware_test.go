package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/goran-ethernal/DomainIndexor/internal/logger"
	storemocks "github.com/goran-ethernal/DomainIndexor/internal/store/mocks"
	"github.com/goran-ethernal/DomainIndexor/pkg/config"
)

// corsServer serves the real routes with CORS enabled for origins. The store mock
// has no expectations, so any request reaching it fails the test.
func corsServer(t *testing.T, origins ...string) http.Handler {
	t.Helper()

	cfg := testAPIConfig(true, ":0")
	cfg.CORS = config.CORSConfig{Enabled: true, AllowedOrigins: origins}

	return NewServer(cfg, storemocks.NewStore(t), logger.NewNopLogger()).Handler()
}

// teapot answers every request with 418 and records that it ran.
func teapot(called *atomic.Bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called.Store(true)
		w.WriteHeader(http.StatusTeapot)
	})
}

func TestCORSMiddleware_Origins(t *testing.T) {
	t.Parallel()

	const dapp = "https://dapp.example"

	tests := []struct {
		name       string
		allowed    []string
		origin     string
		wantOrigin string
		wantVary   bool
	}{
		{name: "listed origin echoed", allowed: []string{dapp}, origin: dapp, wantOrigin: dapp, wantVary: true},
		{name: "unlisted origin gets no headers", allowed: []string{dapp}, origin: "https://evil.example"},
		{name: "no origin with explicit list", allowed: []string{dapp}},
		{name: "wildcard without origin", allowed: []string{"*"}, wantOrigin: "*"},
		{name: "wildcard echoes origin", allowed: []string{"*"}, origin: dapp, wantOrigin: dapp, wantVary: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var called atomic.Bool
			handler := CORSMiddleware(tt.allowed)(teapot(&called))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/domains/1001", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			require.True(t, called.Load())
			require.Equal(t, http.StatusTeapot, w.Code)
			require.Equal(t, tt.wantOrigin, w.Header().Get("Access-Control-Allow-Origin"))

			if tt.wantOrigin == "" {
				require.Empty(t, w.Header().Get("Access-Control-Allow-Methods"))
				return
			}
			require.Equal(t, "GET, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
			require.Equal(t, "86400", w.Header().Get("Access-Control-Max-Age"))
			if tt.wantVary {
				require.Equal(t, []string{"Origin"}, w.Header().Values("Vary"))
			} else {
				require.Empty(t, w.Header().Values("Vary"))
			}
		})
	}
}

func TestCORSMiddleware_PreflightStopsBeforeRoutes(t *testing.T) {
	t.Parallel()

	var called atomic.Bool
	handler := CORSMiddleware([]string{"https://dapp.example"})(teapot(&called))

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/domains", nil)
	req.Header.Set("Origin", "https://dapp.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	require.False(t, called.Load())
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, w.Body.String())
	require.NotContains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestServer_WritesRejectedThroughMiddleware(t *testing.T) {
	t.Parallel()

	handler := corsServer(t, "https://dapp.example")

	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete} {
		for _, path := range []string{"/api/v1/domains", "/api/v1/domains/1001", "/api/v1/status"} {
			t.Run(method+" "+path, func(t *testing.T) {
				req := httptest.NewRequest(method, path, nil)
				req.Header.Set("Origin", "https://dapp.example")
				w := httptest.NewRecorder()
				handler.ServeHTTP(w, req)

				require.Equal(t, http.StatusMethodNotAllowed, w.Code)
				require.Contains(t, w.Header().Get("Allow"), http.MethodGet)
				require.Equal(t, "https://dapp.example", w.Header().Get("Access-Control-Allow-Origin"))
			})
		}
	}
}

func TestServer_PreflightOnDomainRoutes(t *testing.T) {
	t.Parallel()

	handler := corsServer(t, "*")

	for _, path := range []string{"/api/v1/domains", "/api/v1/domains/0x3eb"} {
		req := httptest.NewRequest(http.MethodOptions, path, nil)
		req.Header.Set("Origin", "https://dapp.example")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code, path)
		require.Equal(t, "https://dapp.example", w.Header().Get("Access-Control-Allow-Origin"), path)
		require.Equal(t, "GET, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"), path)
	}
}

func TestResponseWriter_StatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		write func(w http.ResponseWriter)
		want  int
	}{
		{
			name:  "body only",
			write: func(w http.ResponseWriter) { _, _ = w.Write([]byte(`{"domains":[]}`)) },
			want:  http.StatusOK,
		},
		{
			name:  "not found",
			write: func(w http.ResponseWriter) { w.WriteHeader(http.StatusNotFound) },
			want:  http.StatusNotFound,
		},
		{
			name: "first status wins",
			write: func(w http.ResponseWriter) {
				w.WriteHeader(http.StatusBadRequest)
				w.WriteHeader(http.StatusInternalServerError)
			},
			want: http.StatusBadRequest,
		},
		{
			name: "status after body is ignored",
			write: func(w http.ResponseWriter) {
				_, _ = w.Write([]byte("ok"))
				w.WriteHeader(http.StatusServiceUnavailable)
			},
			want: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rw := &responseWriter{ResponseWriter: httptest.NewRecorder(), statusCode: http.StatusOK}
			tt.write(rw)
			require.Equal(t, tt.want, rw.statusCode)
		})
	}
}

func TestLoggingMiddleware_PassesResponseThrough(t *testing.T) {
	t.Parallel()

	handler := LoggingMiddleware(logger.NewNopLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"domain '9999' not found"}`))
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/domains/9999", nil))

	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))
	require.JSONEq(t, `{"error":"domain '9999' not found"}`, w.Body.String())
}

func TestRecoveryMiddleware(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		val  any
	}{
		{name: "string panic", val: "nil name row"},
		{name: "error panic", val: errors.New("store closed")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			log := logger.NewNopLogger()
			handler := RecoveryMiddleware(log)(LoggingMiddleware(log)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				panic(tt.val)
			})))

			w := httptest.NewRecorder()
			require.NotPanics(t, func() {
				handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/domains/1001", nil))
			})

			require.Equal(t, http.StatusInternalServerError, w.Code)
			require.Equal(t, "Internal Server Error\n", w.Body.String())
		})
	}
}

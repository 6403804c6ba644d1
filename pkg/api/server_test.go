package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/goran-ethernal/DomainIndexor/internal/common"
	"github.com/goran-ethernal/DomainIndexor/internal/logger"
	storemocks "github.com/goran-ethernal/DomainIndexor/internal/store/mocks"
	"github.com/goran-ethernal/DomainIndexor/pkg/config"
	pkgstore "github.com/goran-ethernal/DomainIndexor/pkg/store"
)

func testAPIConfig(enabled bool, address string) *config.APIConfig {
	return &config.APIConfig{
		Enabled:       enabled,
		ListenAddress: address,
		ReadTimeout:   common.Duration{Duration: 5 * time.Second},
		WriteTimeout:  common.Duration{Duration: 5 * time.Second},
		IdleTimeout:   common.Duration{Duration: 60 * time.Second},
	}
}

func TestNewServer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		config   *config.APIConfig
		validate func(t *testing.T, server *Server)
	}{
		{
			name: "create server with basic config",
			config: &config.APIConfig{
				Enabled:       true,
				ListenAddress: "localhost:8080",
				ReadTimeout:   common.Duration{Duration: 5 * time.Second},
				WriteTimeout:  common.Duration{Duration: 10 * time.Second},
				IdleTimeout:   common.Duration{Duration: 60 * time.Second},
			},
			validate: func(t *testing.T, server *Server) {
				t.Helper()

				require.NotNil(t, server.handler)
				require.NotNil(t, server.server)
				require.NotNil(t, server.log)
				require.Equal(t, "localhost:8080", server.server.Addr)
				require.Equal(t, 5*time.Second, server.server.ReadTimeout)
				require.Equal(t, 10*time.Second, server.server.WriteTimeout)
				require.Equal(t, 60*time.Second, server.server.IdleTimeout)
			},
		},
		{
			name: "create server with CORS enabled",
			config: &config.APIConfig{
				Enabled:       true,
				ListenAddress: ":9090",
				CORS: config.CORSConfig{
					Enabled:        true,
					AllowedOrigins: []string{"http://localhost:3000", "https://example.com"},
				},
			},
			validate: func(t *testing.T, server *Server) {
				t.Helper()

				require.True(t, server.config.CORS.Enabled)
				require.Equal(t, ":9090", server.server.Addr)
			},
		},
		{
			name:   "create server with disabled state",
			config: testAPIConfig(false, ":8080"),
			validate: func(t *testing.T, server *Server) {
				t.Helper()

				require.False(t, server.config.Enabled)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := NewServer(tt.config, storemocks.NewStore(t), logger.NewNopLogger())
			require.NotNil(t, server)
			tt.validate(t, server)
		})
	}
}

func TestServer_Start_Disabled(t *testing.T) {
	t.Parallel()

	server := NewServer(testAPIConfig(false, ":8080"), storemocks.NewStore(t), logger.NewNopLogger())

	done := make(chan error, 1)
	go func() {
		done <- server.Start(context.Background())
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(1 * time.Second):
		t.Fatal("Start() did not return when server is disabled")
	}
}

func TestServer_Start_ListenError(t *testing.T) {
	t.Parallel()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()

	server := NewServer(testAPIConfig(true, listener.Addr().String()), storemocks.NewStore(t), logger.NewNopLogger())
	require.ErrorContains(t, server.Start(context.Background()), "failed to listen")
}

func TestServer_ServeAndShutdown(t *testing.T) {
	t.Parallel()

	store := storemocks.NewStore(t)
	store.EXPECT().Status(mock.Anything).Return(&pkgstore.Status{
		Checkpoint:    2149,
		HasCheckpoint: true,
		QueueDepth:    3,
		Names:         12,
	}, nil).Once()

	server := NewServer(testAPIConfig(true, "127.0.0.1:0"), store, logger.NewNopLogger())

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- server.serve(ctx, listener)
	}()

	resp, err := http.Get(fmt.Sprintf("http://%s/api/v1/status", listener.Addr()))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var status StatusResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	require.NotNil(t, status.Checkpoint)
	require.Equal(t, uint64(2149), *status.Checkpoint)
	require.Equal(t, int64(3), status.QueueDepth)

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(shutdownCtxTimeout + 5*time.Second):
		t.Fatal("Server did not shutdown gracefully within timeout")
	}
}

func TestServer_Routes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		method     string
		path       string
		setup      func(store *storemocks.Store)
		wantStatus int
	}{
		{
			name:   "health",
			method: http.MethodGet,
			path:   "/health",
			setup: func(store *storemocks.Store) {
				store.EXPECT().GetCheckpoint(mock.Anything).Return(101, true, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "status",
			method: http.MethodGet,
			path:   "/api/v1/status",
			setup: func(store *storemocks.Store) {
				store.EXPECT().Status(mock.Anything).Return(&pkgstore.Status{}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "search domains",
			method: http.MethodGet,
			path:   "/api/v1/domains?query=ali",
			setup: func(store *storemocks.Store) {
				store.EXPECT().SearchNames(mock.Anything, mock.Anything).Return(nil, 0, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "get domain",
			method: http.MethodGet,
			path:   "/api/v1/domains/1001",
			setup: func(store *storemocks.Store) {
				store.EXPECT().GetName(mock.Anything, "1001").Return(nil, pkgstore.ErrNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "writes are not routed",
			method:     http.MethodPost,
			path:       "/api/v1/domains",
			wantStatus: http.StatusMethodNotAllowed,
		},
		{
			name:       "unknown route",
			method:     http.MethodGet,
			path:       "/api/v1/indexers",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := storemocks.NewStore(t)
			if tt.setup != nil {
				tt.setup(store)
			}

			server := NewServer(testAPIConfig(true, ":0"), store, logger.NewNopLogger())

			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			server.Handler().ServeHTTP(w, req)

			require.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestServer_CORS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		corsConfig config.CORSConfig
		wantOrigin string
	}{
		{
			name: "CORS middleware applied when enabled",
			corsConfig: config.CORSConfig{
				Enabled:        true,
				AllowedOrigins: []string{"http://localhost:3000"},
			},
			wantOrigin: "http://localhost:3000",
		},
		{
			name:       "CORS middleware not applied when disabled",
			corsConfig: config.CORSConfig{Enabled: false},
			wantOrigin: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := testAPIConfig(true, ":0")
			cfg.CORS = tt.corsConfig

			server := NewServer(cfg, storemocks.NewStore(t), logger.NewNopLogger())

			req := httptest.NewRequest(http.MethodOptions, "/api/v1/domains", nil)
			req.Header.Set("Origin", "http://localhost:3000")
			w := httptest.NewRecorder()
			server.Handler().ServeHTTP(w, req)

			require.Equal(t, tt.wantOrigin, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestServer_Swagger(t *testing.T) {
	t.Parallel()

	server := NewServer(testAPIConfig(true, ":0"), storemocks.NewStore(t), logger.NewNopLogger())

	req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "/domains/{hash}")
}

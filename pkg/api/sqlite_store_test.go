package api

import (
	"context"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/goran-ethernal/DomainIndexor/internal/db"
	"github.com/goran-ethernal/DomainIndexor/internal/logger"
	"github.com/goran-ethernal/DomainIndexor/internal/migrations"
	"github.com/goran-ethernal/DomainIndexor/internal/store"
	"github.com/goran-ethernal/DomainIndexor/pkg/config"
	pkgstore "github.com/goran-ethernal/DomainIndexor/pkg/store"
)

var otherOwner = ethcommon.HexToAddress("0x0000000000000000000000000000000000000bbb")

// newSQLiteServer serves the API over a migrated temp-file database seeded with three entries.
func newSQLiteServer(t *testing.T) http.Handler {
	t.Helper()

	cfg := config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "domains.sqlite")}
	cfg.ApplyDefaults()

	sqlDB, err := db.NewSQLiteDBFromConfig(cfg)
	require.NoError(t, err)

	log := logger.NewNopLogger()
	require.NoError(t, migrations.RunMigrationsDB(log, sqlDB))

	st := store.NewSQLiteStore(sqlDB, nil, log)
	t.Cleanup(func() { st.Close() })

	alice, alicia := "alice", "alicia"
	ctx := context.Background()
	require.NoError(t, st.WithTransaction(ctx, func(tx pkgstore.Tx) error {
		updates := map[string]pkgstore.NameUpdate{
			"1001": {Owner: &testOwner, Expiry: big.NewInt(4600), Name: &alice},
			"1002": {Owner: &otherOwner, Name: &alicia},
			"1003": {Owner: &testOwner},
		}
		for hash, update := range updates {
			if err := tx.UpsertName(ctx, hash, update); err != nil {
				return err
			}
		}
		return tx.SetCheckpoint(ctx, 2150)
	}))

	return NewServer(testAPIConfig(true, ":0"), st, log).Handler()
}

func get(t *testing.T, handler http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestSQLiteStore_GetDomain(t *testing.T) {
	handler := newSQLiteServer(t)

	t.Run("found by decimal hash", func(t *testing.T) {
		w := get(t, handler, "/api/v1/domains/1001")
		require.Equal(t, http.StatusOK, w.Code)

		var resp DomainResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Equal(t, "1001", resp.Hash)
		require.Equal(t, "alice", *resp.Name)
		require.Equal(t, testOwner.Hex(), *resp.Owner)
		require.Equal(t, "4600", *resp.Expiry)
		require.NotNil(t, resp.ExpiresAt)
		require.False(t, resp.CreatedAt.IsZero())
	})

	t.Run("found by hex hash", func(t *testing.T) {
		w := get(t, handler, "/api/v1/domains/0x3eb")
		require.Equal(t, http.StatusOK, w.Code)

		var resp DomainResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Equal(t, "1003", resp.Hash)
		require.Nil(t, resp.Name)
		require.Nil(t, resp.Expiry)
	})

	t.Run("missing entry", func(t *testing.T) {
		w := get(t, handler, "/api/v1/domains/9999")
		require.Equal(t, http.StatusNotFound, w.Code)
		require.Contains(t, decodeError(t, w.Body.Bytes()).Error, "domain '9999' not found")
	})
}

func TestSQLiteStore_SearchDomains(t *testing.T) {
	handler := newSQLiteServer(t)

	tests := []struct {
		name      string
		target    string
		wantTotal int64
		wantNames []string
		wantMore  bool
	}{
		{name: "substring", target: "/api/v1/domains?query=ali", wantTotal: 2, wantNames: []string{"alice", "alicia"}},
		{name: "descending", target: "/api/v1/domains?query=ali&sort_order=desc", wantTotal: 2, wantNames: []string{"alicia", "alice"}},
		{name: "paged", target: "/api/v1/domains?query=ali&limit=1", wantTotal: 2, wantNames: []string{"alice"}, wantMore: true},
		{name: "owner filter", target: "/api/v1/domains?query=ali&owner=" + otherOwner.Hex(), wantTotal: 1, wantNames: []string{"alicia"}},
		{name: "no match", target: "/api/v1/domains?query=bob", wantTotal: 0, wantNames: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(t, handler, tt.target)
			require.Equal(t, http.StatusOK, w.Code)

			var resp DomainsResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Equal(t, tt.wantTotal, resp.Pagination.Total)
			require.Equal(t, tt.wantMore, resp.Pagination.HasMore)

			got := make([]string, 0, len(resp.Domains))
			for _, d := range resp.Domains {
				require.NotNil(t, d.Name)
				got = append(got, *d.Name)
			}
			require.Equal(t, tt.wantNames, got)
		})
	}
}

func TestSQLiteStore_Status(t *testing.T) {
	w := get(t, newSQLiteServer(t), "/api/v1/status")
	require.Equal(t, http.StatusOK, w.Code)

	var resp StatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, uint64(2150), *resp.Checkpoint)
	require.Equal(t, int64(3), resp.Names)
	require.Zero(t, resp.QueueDepth)
}

package daemon_test

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.trai.ch/sema/internal/adapters/daemon"
	"go.trai.ch/sema/internal/core/domain"
	"go.trai.ch/sema/internal/core/ports"
)

func dialTestServer(t *testing.T, handler http.Handler) *daemon.Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	addr, ok := ts.Listener.Addr().(*net.TCPAddr)
	require.True(t, ok)
	return daemon.Dial(addr.Port)
}

func TestClient_Health(t *testing.T) {
	client := dialTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/health", r.URL.Path)
		_ = json.NewEncoder(w).Encode(ports.HealthInfo{
			Status:    "ok",
			Workspace: "/ws",
			Requests:  7,
			CacheSize: 3,
		})
	}))

	info, err := client.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", info.Status)
	assert.Equal(t, "/ws", info.Workspace)
	assert.Equal(t, uint64(7), info.Requests)
	assert.Equal(t, 3, info.CacheSize)
}

func TestClient_DefinitionsPostsQuery(t *testing.T) {
	client := dialTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/defs", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req ports.QueryRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "pkg/mod.py", req.File)
		assert.Equal(t, 12, req.Line)
		assert.Equal(t, 5, req.Col)

		_ = json.NewEncoder(w).Encode(ports.LocationsResult{
			Locations: []ports.Location{{File: "pkg/mod.py", Line: 3, Column: 5}},
		})
	}))

	result, err := client.Definitions(context.Background(), ports.QueryRequest{
		File: "pkg/mod.py", Line: 12, Col: 5,
	})
	require.NoError(t, err)
	require.Len(t, result.Locations, 1)
	assert.Equal(t, 3, result.Locations[0].Line)
}

func TestClient_RenameReturnsPatches(t *testing.T) {
	client := dialTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rename", r.URL.Path)

		var req ports.RenameRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "new_name", req.NewName)

		_ = json.NewEncoder(w).Encode(ports.PatchSet{
			Patches: map[string]string{"pkg/mod.py": "--- a/pkg/mod.py\n"},
			Format:  ports.PatchFormatDiff,
		})
	}))

	set, err := client.Rename(context.Background(), ports.RenameRequest{
		QueryRequest: ports.QueryRequest{File: "pkg/mod.py", Line: 1, Col: 1},
		NewName:      "new_name",
	})
	require.NoError(t, err)
	assert.Contains(t, set.Patches, "pkg/mod.py")
	assert.Equal(t, ports.PatchFormatDiff, set.Format)
}

func TestClient_ListPostsPath(t *testing.T) {
	client := dialTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/list", r.URL.Path)

		var req ports.ListRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "pkg", req.Path)

		_ = json.NewEncoder(w).Encode(ports.SymbolsResult{
			Symbols: []ports.Symbol{{File: "pkg/mod.py", Kind: "function", Name: "greet", Line: 1}},
		})
	}))

	result, err := client.List(context.Background(), ports.ListRequest{Path: "pkg"})
	require.NoError(t, err)
	require.Len(t, result.Symbols, 1)
	assert.Equal(t, "greet", result.Symbols[0].Name)
}

func TestClient_ServerErrorBodySurfaces(t *testing.T) {
	client := dialTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "no symbol at position"})
	}))

	_, err := client.Definitions(context.Background(), ports.QueryRequest{File: "a.py", Line: 1, Col: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no symbol at position")
	assert.NotErrorIs(t, err, domain.ErrServerUnreachable)
}

func TestClient_TransportFailureIsUnreachable(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	addr, ok := ts.Listener.Addr().(*net.TCPAddr)
	require.True(t, ok)
	ts.Close()

	client := daemon.Dial(addr.Port)
	_, err := client.Health(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrServerUnreachable)
}

func TestClient_Shutdown(t *testing.T) {
	var called bool
	client := dialTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/shutdown", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "shutting down"})
	}))

	require.NoError(t, client.Shutdown(context.Background()))
	assert.True(t, called)
}

package web

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corey/svcdash/internal/domain/directory"
)

func newTestServer(t *testing.T, dashboardPath string) *Server {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	metrics := NewMetrics()
	dir := directory.New(directory.DefaultTable(), "",
		directory.WithLogger(logger), directory.WithObserver(metrics))

	srv, err := NewServer(Options{
		Directory:     dir,
		Bindings:      directory.DefaultBindings(),
		DashboardPath: dashboardPath,
		Metrics:       metrics,
		Logger:        logger,
	})
	require.NoError(t, err)
	return srv
}

func serve(srv *Server, path, host string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Host = host
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestDashboard_RewritesForRequestHost(t *testing.T) {
	srv := newTestServer(t, "")

	rec := serve(srv, "/", "10.0.0.5:8088")
	require.Equal(t, 200, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Contains(t, body, `href="http://10.0.0.5:9080"`)
	assert.Contains(t, body, `href="http://10.0.0.5:3000"`)
	assert.Contains(t, body, `href="http://10.0.0.5:8200"`)
	assert.Contains(t, body, `href="http://10.0.0.5:2379"`)
	assert.NotContains(t, body, `href="http://localhost:9080"`)
}

func TestDashboard_HostPerRequest(t *testing.T) {
	srv := newTestServer(t, "")

	first := serve(srv, "/", "alpha.internal").Body.String()
	second := serve(srv, "/", "beta.internal:80").Body.String()

	assert.Contains(t, first, "http://alpha.internal:9085")
	assert.Contains(t, second, "http://beta.internal:9085")
	assert.NotContains(t, second, "alpha.internal")
}

func TestDashboard_EmptyHostFallsBackToLocalhost(t *testing.T) {
	srv := newTestServer(t, "")

	body := serve(srv, "/", "").Body.String()
	assert.Contains(t, body, `href="http://localhost:3000"`)
}

func TestDashboard_IPv6Host(t *testing.T) {
	srv := newTestServer(t, "")

	body := serve(srv, "/", "[::1]:8088").Body.String()
	assert.Contains(t, body, `href="http://[::1]:9080"`)
}

func TestDashboard_UnknownPathIs404(t *testing.T) {
	srv := newTestServer(t, "")
	assert.Equal(t, 404, serve(srv, "/nope", "h").Code)
}

func TestDashboard_FromFileAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.html")
	require.NoError(t, os.WriteFile(path, []byte(`<a href="http://x:9080">n</a>`), 0644))

	srv := newTestServer(t, path)
	assert.Contains(t, serve(srv, "/", "h").Body.String(), `href="http://h:9080"`)

	require.NoError(t, os.WriteFile(path, []byte(`<a href="http://x:9081">a</a>`), 0644))
	require.NoError(t, srv.Reload())
	assert.Contains(t, serve(srv, "/", "h").Body.String(), `href="http://h:9081"`)

	require.NoError(t, os.Remove(path))
	assert.Error(t, srv.Reload())
	assert.Contains(t, serve(srv, "/", "h").Body.String(), `href="http://h:9081"`, "old template kept")
}

func TestNewServer_MissingDashboard(t *testing.T) {
	_, err := NewServer(Options{
		Directory:     directory.New(directory.DefaultTable(), ""),
		DashboardPath: filepath.Join(t.TempDir(), "missing.html"),
	})
	assert.Error(t, err)
}

func TestHealthEndpoint(t *testing.T) {
	ts := httptest.NewServer(newTestServer(t, "").Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var result HealthResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "ok", result.Status)
	assert.Equal(t, 21, result.Services)
}

func TestServicesEndpoint(t *testing.T) {
	srv := newTestServer(t, "")

	rec := serve(srv, "/api/services", "box:8088")
	require.Equal(t, 200, rec.Code)

	var entries []directory.Entry
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&entries))
	require.Len(t, entries, 21)
	assert.Equal(t, directory.Entry{Name: "ALPINE", Port: 9084, URL: "http://box:9084"}, entries[0])
}

func TestServiceEndpoint(t *testing.T) {
	srv := newTestServer(t, "")

	rec := serve(srv, "/api/services/Redis", "10.0.0.5")
	require.Equal(t, 200, rec.Code)

	var entry directory.Entry
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&entry))
	assert.Equal(t, directory.Entry{Name: "REDIS", Port: 9085, URL: "http://10.0.0.5:9085"}, entry)
}

func TestServiceEndpoint_Unknown(t *testing.T) {
	srv := newTestServer(t, "")

	rec := serve(srv, "/api/services/foo", "h")
	assert.Equal(t, 404, rec.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Contains(t, body["error"], "service not found")
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t, "")

	serve(srv, "/", "h")
	serve(srv, "/api/services/foo", "h")

	rec := serve(srv, "/metrics", "h")
	require.Equal(t, 200, rec.Code)
	body := rec.Body.String()

	assert.Contains(t, body, "svcdash_dashboard_renders_total 1")
	assert.Contains(t, body, `svcdash_lookups_total{result="miss"} 1`)
	// 5 port bindings + 16 data-service links in the embedded dashboard
	assert.Contains(t, body, "svcdash_links_rewritten_total 21")
}

func TestStartStop(t *testing.T) {
	srv := newTestServer(t, "")
	require.NoError(t, srv.Start("127.0.0.1:0"))
	defer srv.Stop()

	assert.True(t, strings.HasPrefix(srv.URL(), "http://127.0.0.1:"))

	resp, err := http.Get(srv.URL() + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `href="http://127.0.0.1:9080"`)

	srv.Stop()
	srv.Stop()
}

func TestServiceEndpoint_PaddedNameIsUnknown(t *testing.T) {
	srv := newTestServer(t, "")

	rec := serve(srv, "/api/services/%20redis", "h")
	assert.Equal(t, 404, rec.Code)
}

func TestServiceEndpoint_ReturnsStoredName(t *testing.T) {
	srv := newTestServer(t, "")

	rec := serve(srv, "/api/services/docker_Registry", "h")
	require.Equal(t, 200, rec.Code)

	var entry directory.Entry
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&entry))
	assert.Equal(t, "DOCKER_REGISTRY", entry.Name)
}

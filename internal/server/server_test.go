package server

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer(t *testing.T) (*Server, string) {
	t.Helper()
	siteDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(siteDir, "data"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(siteDir, "index.html"), []byte("<h1>home</h1>"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(siteDir, "data", "newsletter_signups.csv"), []byte("secret"), 0o600))

	srv := New(Options{
		Addr:        ":0",
		SiteDir:     siteDir,
		SignupsPath: filepath.Join(siteDir, "data", "newsletter_signups.csv"),
	})
	return srv, siteDir
}

func TestServeStaticSite(t *testing.T) {
	srv, _ := testServer(t)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "home")
}

func TestDataDirIsHidden(t *testing.T) {
	srv, _ := testServer(t)
	for _, path := range []string{"/data/newsletter_signups.csv", "/data/", "/data"} {
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
	}
}

func TestSubscribeEndpoint(t *testing.T) {
	srv, siteDir := testServer(t)

	form := url.Values{"email": {"person@example.org"}}
	req := httptest.NewRequest(http.MethodPost, "/subscribe.php", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())

	data, err := os.ReadFile(filepath.Join(siteDir, "data", "newsletter_signups.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "person@example.org")
}

func TestHealthz(t *testing.T) {
	srv, _ := testServer(t)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok\n", rec.Body.String())
}

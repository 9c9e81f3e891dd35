package subscribe

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postForm(t *testing.T, h http.Handler, email string) *httptest.ResponseRecorder {
	t.Helper()
	form := url.Values{"email": {email}}
	req := httptest.NewRequest(http.MethodPost, "/subscribe.php", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestSubscribeOK(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "signups.csv")
	store := NewStore(path)
	store.now = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }
	h := NewHandler(store, nil)

	rec := postForm(t, h, "person@example.org")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01T12:00:00Z,person@example.org\n", string(data))
}

func TestSubscribeAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signups.csv")
	h := NewHandler(NewStore(path), nil)

	postForm(t, h, "a@example.org")
	postForm(t, h, "b@example.org")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[0], ",a@example.org"))
	assert.True(t, strings.HasSuffix(lines[1], ",b@example.org"))
}

func TestSubscribeMethodNotAllowed(t *testing.T) {
	h := NewHandler(NewStore(filepath.Join(t.TempDir(), "s.csv")), nil)
	req := httptest.NewRequest(http.MethodGet, "/subscribe.php", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"ok":false,"error":"method_not_allowed"}`, rec.Body.String())
}

func TestSubscribeInvalidEmail(t *testing.T) {
	h := NewHandler(NewStore(filepath.Join(t.TempDir(), "s.csv")), nil)
	for _, email := range []string{"", "not-an-email", "a b@example.org", "x@localhost", "Name <x@example.org>"} {
		rec := postForm(t, h, email)
		assert.Equal(t, http.StatusBadRequest, rec.Code, email)
		assert.JSONEq(t, `{"ok":false,"error":"invalid_email"}`, rec.Body.String(), email)
	}
}

func TestSubscribeStorageUnavailable(t *testing.T) {
	dir := t.TempDir()
	// make the target path unwritable by using a file as parent directory
	blocker := filepath.Join(dir, "blocked")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))
	h := NewHandler(NewStore(filepath.Join(blocker, "signups.csv")), nil)

	rec := postForm(t, h, "person@example.org")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"ok":false,"error":"storage_unavailable"}`, rec.Body.String())
}

func TestStoreStripsNewlines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.csv")
	store := NewStore(path)
	require.NoError(t, store.Append("evil@example.org\ninjected,line"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1, "newlines in input never create extra rows")
}

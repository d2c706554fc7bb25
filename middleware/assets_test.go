package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeFileHash(t *testing.T) {
	assets := fstest.MapFS{
		"css/style.css": {Data: []byte("body { color: red; }")},
	}

	// Test with existing file
	hash := computeFileHash(assets, "css/style.css")
	assert.Len(t, hash, 8)

	// Test with non-existent file
	assert.Empty(t, computeFileHash(assets, "non_existent_file.css"))
}

func TestInitAssetVersions(t *testing.T) {
	assets := fstest.MapFS{
		"css/style.css": {Data: []byte("css")},
		"js/app.js":     {Data: []byte("js")},
		"index.html":    {Data: []byte("<html></html>")},
		"embed.go":      {Data: []byte("package static")},
	}

	InitAssetVersions(assets)

	assert.Len(t, GetAssetVersion("css/style.css"), 8)
	assert.Len(t, GetAssetVersion("js/app.js"), 8)
	assert.NotEqual(t, GetAssetVersion("css/style.css"), GetAssetVersion("js/app.js"))
	assert.Empty(t, GetAssetVersion("index.html"), "the host document is never versioned")
	assert.Empty(t, GetAssetVersion("embed.go"))
	assert.Empty(t, GetAssetVersion("missing.js"))
}

func TestWatchAssetsRehashesOnChange(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "css"), 0755))
	stylePath := filepath.Join(dir, "css", "style.css")
	require.NoError(t, os.WriteFile(stylePath, []byte("a"), 0644))

	assets := os.DirFS(dir)
	InitAssetVersions(assets)
	before := GetAssetVersion("css/style.css")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 1)
	require.NoError(t, WatchAssets(ctx, dir, assets, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	}))

	require.NoError(t, os.WriteFile(stylePath, []byte("b"), 0644))

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not report the change")
	}
	assert.NotEqual(t, before, GetAssetVersion("css/style.css"))
}

func TestWatchAssetsFollowsNewDirectories(t *testing.T) {
	dir := t.TempDir()
	assets := os.DirFS(dir)
	InitAssetVersions(assets)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 4)
	require.NoError(t, WatchAssets(ctx, dir, assets, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	}))

	waitForChange := func() {
		t.Helper()
		select {
		case <-changed:
		case <-time.After(5 * time.Second):
			t.Fatal("watcher did not report the change")
		}
	}

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "img"), 0755))
	waitForChange()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "img", "logo.svg"), []byte("<svg></svg>"), 0644))
	waitForChange()

	assert.Len(t, GetAssetVersion("img/logo.svg"), 8)
}

func TestStaticCacheControl(t *testing.T) {
	e := echo.New()
	handler := StaticCacheControl()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	t.Run("Versioned", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/static/css/style.css?v=abcd1234", nil)
		rec := httptest.NewRecorder()
		require.NoError(t, handler(e.NewContext(req, rec)))
		assert.Contains(t, rec.Header().Get("Cache-Control"), "immutable")
	})

	t.Run("Unversioned", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/static/css/style.css", nil)
		rec := httptest.NewRecorder()
		require.NoError(t, handler(e.NewContext(req, rec)))
		assert.Contains(t, rec.Header().Get("Cache-Control"), "must-revalidate")
	})
}

package handlers

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"hopebridge_site/config"
	"hopebridge_site/services"
	"hopebridge_site/static"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

var testClock = services.FixedClock{At: time.Date(2025, time.January, 1, 9, 0, 0, 0, time.UTC)}

func testConfig() *config.Config {
	return &config.Config{
		Environment: "test",
		AppURL:      "https://hopebridge.test",
	}
}

func setupSite(t *testing.T) *Site {
	t.Helper()
	site, err := NewSite(testConfig(), static.Assets(""), testClock)
	require.NoError(t, err)
	return site
}

func setupEcho(site *Site, method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Add site and config to context
	c.Set(siteContextKey, site)
	c.Set("config", site.Config)

	return e, c, rec
}

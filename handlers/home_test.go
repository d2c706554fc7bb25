package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"hopebridge_site/services"
	"hopebridge_site/templates/layouts"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLandingHandler(t *testing.T) {
	site := setupSite(t)
	_, c, rec := setupEcho(site, http.MethodGet, "/", nil)

	require.NoError(t, LandingHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, echo.MIMETextHTMLCharsetUTF8, rec.Header().Get(echo.HeaderContentType))

	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "<!DOCTYPE html>"))
	assert.Contains(t, body, `<div id="root"><div class="min-h-screen flex flex-col`)
	assert.Contains(t, body, "<title>HopeBridge Counseling | Mental Health Care in New Jersey</title>")
	assert.Contains(t, body, `<link rel="canonical" href="https://hopebridge.test/"/>`)
	assert.Contains(t, body, "© 2025 HopeBridge Counseling. All rights reserved.")
	assert.Equal(t, 4, strings.Count(body, `<h4 class="text-xl font-semibold mb-3">`))
	assert.Contains(t, body, `data-motion="mount"`)
	assert.Contains(t, body, `data-motion-state="pending"`)
	assert.Equal(t, 1, strings.Count(body, "<footer"))
}

func TestLandingHandlerStrictRendersOnce(t *testing.T) {
	site := setupSite(t)
	site.Config.StrictRender = true
	_, c, rec := setupEcho(site, http.MethodGet, "/", nil)

	require.NoError(t, LandingHandler(c))
	assert.Equal(t, 1, strings.Count(rec.Body.String(), "<footer"))
	assert.Equal(t, 1, strings.Count(rec.Body.String(), `id="services"`))
}

func TestLandingHandlerSettled(t *testing.T) {
	site := setupSite(t)
	site.Settled = true
	_, c, rec := setupEcho(site, http.MethodGet, "/", nil)

	require.NoError(t, LandingHandler(c))
	assert.NotContains(t, rec.Body.String(), "data-motion=")
	assert.Contains(t, rec.Body.String(), "opacity:1;transform:translate(0px,0px)")
}

func TestLandingHandlerRenderFailure(t *testing.T) {
	site := setupSite(t)
	site.Page = func(services.Clock) templ.Component {
		return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			if _, err := io.WriteString(w, "<header>partial"); err != nil {
				return err
			}
			return errors.New("render failed")
		})
	}
	_, c, rec := setupEcho(site, http.MethodGet, "/", nil)

	err := LandingHandler(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.Code)
	assert.False(t, c.Response().Committed)
	assert.Empty(t, rec.Body.String())
}

func TestLandingHandlerWithoutSite(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	err := LandingHandler(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.Code)
}

func TestNewSiteRequiresMountPoint(t *testing.T) {
	assets := fstest.MapFS{
		"index.html": {Data: []byte(`<html><body><div id="app"></div></body></html>`)},
	}
	_, err := NewSite(testConfig(), assets, testClock)
	assert.ErrorIs(t, err, layouts.ErrMountPointMissing)

	_, err = NewSite(testConfig(), fstest.MapFS{}, testClock)
	assert.Error(t, err)
}

func TestHealthHandler(t *testing.T) {
	site := setupSite(t)
	_, c, rec := setupEcho(site, http.MethodGet, "/healthz", nil)

	require.NoError(t, HealthHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestSitemapAndRobots(t *testing.T) {
	site := setupSite(t)

	_, c, rec := setupEcho(site, http.MethodGet, "/sitemap.xml", nil)
	require.NoError(t, GetSitemapHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<loc>https://hopebridge.test/</loc>")
	assert.Contains(t, rec.Body.String(), "<lastmod>2025-01-01</lastmod>")

	_, c, rec = setupEcho(site, http.MethodGet, "/robots.txt", nil)
	require.NoError(t, GetRobotsHandler(c))
	assert.Contains(t, rec.Body.String(), "Sitemap: https://hopebridge.test/sitemap.xml")
}

func TestGetSEO(t *testing.T) {
	seo := GetSEO("https://hopebridge.test/")

	assert.Equal(t, "https://hopebridge.test/", seo.Canonical)
	assert.Equal(t,
		"Compassionate Mental Health Care for New Jersey Families Evidence-based therapy grounded in empathy, cultural humility, and holistic wellness.",
		seo.Description)
	assert.LessOrEqual(t, len(seo.Description), descriptionLength)
	assert.Equal(t, seo.Title, seo.GetOGTitle())
}

func TestRegisterRoutes(t *testing.T) {
	site := setupSite(t)
	e := echo.New()
	RegisterRoutes(e, site)

	for _, path := range []string{"/", "/healthz", "/sitemap.xml", "/robots.txt", "/static/js/app.js", "/static/css/style.css"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}

	req := httptest.NewRequest(http.MethodGet, "/static/js/app.js?v=abc", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Contains(t, rec.Header().Get("Cache-Control"), "immutable")
}

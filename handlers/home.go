package handlers

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"hopebridge_site/services/motion"
	"hopebridge_site/templates/layouts"

	"github.com/labstack/echo/v4"
)

// RenderPage writes the whole host document with the page attached at its mount point.
// Each call gets its own motion controller, so every animation starts pending
// unless the site is settled.
func (s *Site) RenderPage(ctx context.Context, w io.Writer) error {
	controller := motion.NewController()
	if s.Settled {
		controller = motion.NewSettledController()
	}
	ctx = motion.WithController(ctx, controller)

	page := layouts.Strict(s.Page(s.Clock), s.Config.StrictRender)
	return s.Document().Render(ctx, w, page)
}

// LandingHandler renders the page into the host document's mount point.
// Nothing is sent until the render has succeeded.
func LandingHandler(c echo.Context) error {
	site := getSite(c)
	if site == nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "site not configured")
	}

	var buf bytes.Buffer
	if err := site.RenderPage(c.Request().Context(), &buf); err != nil {
		c.Logger().Errorf("Failed to render page: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to render page")
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

// HealthHandler reports that the process is serving
func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

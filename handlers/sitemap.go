package handlers

import (
	"net/http"

	"hopebridge_site/config"
	"hopebridge_site/services"

	"github.com/labstack/echo/v4"
)

// GetSitemapHandler serves the XML sitemap
func GetSitemapHandler(c echo.Context) error {
	cfg := c.Get("config").(*config.Config)

	body, err := services.BuildSitemap(cfg.AppURL, getSite(c).Clock.Now())
	if err != nil {
		c.Logger().Errorf("Failed to build sitemap: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to build sitemap")
	}
	return c.Blob(http.StatusOK, echo.MIMEApplicationXMLCharsetUTF8, body)
}

// GetRobotsHandler serves robots.txt
func GetRobotsHandler(c echo.Context) error {
	cfg := c.Get("config").(*config.Config)
	return c.Blob(http.StatusOK, echo.MIMETextPlainCharsetUTF8, services.BuildRobots(cfg.AppURL))
}

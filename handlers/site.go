package handlers

import (
	"io/fs"
	"log"
	"sync/atomic"

	"hopebridge_site/config"
	"hopebridge_site/middleware"
	"hopebridge_site/services"
	"hopebridge_site/static"
	"hopebridge_site/templates/layouts"
	"hopebridge_site/templates/pages"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

const siteContextKey = "site"

// Site holds what every page render needs: the bootstrapped host document,
// the static asset tree and the clock
type Site struct {
	Config *config.Config
	Assets fs.FS
	Clock  services.Clock
	// Settled renders every entrance animation in its final state (snapshots)
	Settled bool
	// Page builds the component mounted at the mount point
	Page func(clock services.Clock) templ.Component

	document atomic.Pointer[layouts.Document]
}

// NewSite mounts the host document found in assets. A host document without
// exactly one empty mount point is an error the caller must treat as fatal.
func NewSite(cfg *config.Config, assets fs.FS, clock services.Clock) (*Site, error) {
	s := &Site{Config: cfg, Assets: assets, Clock: clock, Page: pages.MentalHealthWebsite}
	if err := s.Remount(); err != nil {
		return nil, err
	}
	return s, nil
}

// Remount re-reads and re-bootstraps the host document, e.g. after assets changed on disk
func (s *Site) Remount() error {
	host, err := static.HostDocument(s.Assets)
	if err != nil {
		return err
	}
	doc, err := layouts.Bootstrap(host, config.MountID,
		layouts.WithSEO(GetSEO(s.Config.AppURL)),
		layouts.WithAssetVersion(middleware.GetAssetVersion),
	)
	if err != nil {
		return err
	}
	s.document.Store(doc)
	return nil
}

// Document returns the current host document
func (s *Site) Document() *layouts.Document {
	return s.document.Load()
}

// WithSite makes the site available to handlers
func WithSite(site *Site) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(siteContextKey, site)
			c.Set("config", site.Config)
			return next(c)
		}
	}
}

func getSite(c echo.Context) *Site {
	site, _ := c.Get(siteContextKey).(*Site)
	return site
}

// RegisterRoutes wires every public route of the site
func RegisterRoutes(e *echo.Echo, site *Site) {
	e.Use(WithSite(site))

	staticGroup := e.Group("/static", middleware.StaticCacheControl())
	staticGroup.StaticFS("/", site.Assets)

	e.GET("/", LandingHandler)
	e.GET("/sitemap.xml", GetSitemapHandler)
	e.GET("/robots.txt", GetRobotsHandler)
	e.GET("/healthz", HealthHandler)

	log.Printf("[INFO] Routes registered (mount point #%s)", site.Document().MountID)
}

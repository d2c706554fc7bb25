package services

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"
)

type SitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float32 `xml:"priority,omitempty"`
}

type SitemapURLSet struct {
	XMLName string       `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// BuildSitemap renders the XML sitemap for the site. The page is a single
// document, so it lists only the root URL.
func BuildSitemap(baseURL string, lastMod time.Time) ([]byte, error) {
	urlSet := SitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs: []SitemapURL{
			{
				Loc:        strings.TrimSuffix(baseURL, "/") + "/",
				LastMod:    lastMod.UTC().Format("2006-01-02"),
				ChangeFreq: "monthly",
				Priority:   1.0,
			},
		},
	}

	body, err := xml.MarshalIndent(urlSet, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode sitemap: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}

// BuildRobots renders robots.txt pointing crawlers at the sitemap
func BuildRobots(baseURL string) []byte {
	return []byte(fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", strings.TrimSuffix(baseURL, "/")))
}

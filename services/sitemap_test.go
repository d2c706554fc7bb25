package services

import (
	"encoding/xml"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSitemap(t *testing.T) {
	body, err := BuildSitemap("https://hopebridge.test/", time.Date(2025, time.June, 2, 23, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(body), xml.Header))

	var urlSet struct {
		URLs []SitemapURL `xml:"url"`
	}
	require.NoError(t, xml.Unmarshal(body, &urlSet))
	require.Len(t, urlSet.URLs, 1)
	assert.Equal(t, "https://hopebridge.test/", urlSet.URLs[0].Loc)
	assert.Equal(t, "2025-06-02", urlSet.URLs[0].LastMod)
	assert.Equal(t, "monthly", urlSet.URLs[0].ChangeFreq)
}

func TestBuildRobots(t *testing.T) {
	robots := string(BuildRobots("https://hopebridge.test/"))
	assert.Contains(t, robots, "User-agent: *\nAllow: /")
	assert.Contains(t, robots, "Sitemap: https://hopebridge.test/sitemap.xml")
}

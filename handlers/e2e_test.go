package handlers

import (
	"context"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"hopebridge_site/services"

	"github.com/chromedp/chromedp"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// browserTest serves the site and opens it in headless Chrome.
// Skipped unless CHROME_PATH points at a Chrome or headless-shell binary.
func browserTest(t *testing.T) (context.Context, string) {
	t.Helper()
	chromePath := os.Getenv("CHROME_PATH")
	if chromePath == "" {
		t.Skip("CHROME_PATH not set; skipping browser test")
	}

	e := echo.New()
	RegisterRoutes(e, setupSite(t))
	server := httptest.NewServer(e)
	t.Cleanup(server.Close)

	ctx, cancel := services.NewBrowserContext(context.Background(), chromePath)
	t.Cleanup(cancel)
	ctx, timeoutCancel := context.WithTimeout(ctx, 30*time.Second)
	t.Cleanup(timeoutCancel)

	return ctx, server.URL + "/"
}

func TestBrowserContactFormIsInert(t *testing.T) {
	ctx, url := browserTest(t)

	var location string
	var valid bool
	err := chromedp.Run(ctx,
		chromedp.Navigate(url),
		chromedp.WaitReady("form[data-discard-submit]", chromedp.ByQuery),
		chromedp.Evaluate(`document.querySelector("form[data-discard-submit]").checkValidity()`, &valid),
	)
	require.NoError(t, err)
	assert.False(t, valid, "required fields are empty")

	err = chromedp.Run(ctx,
		chromedp.SetValue(`input[name="name"]`, "Jane Doe", chromedp.ByQuery),
		chromedp.SetValue(`input[name="email"]`, "jane@example.com", chromedp.ByQuery),
		chromedp.SetValue(`textarea[name="message"]`, "Hello", chromedp.ByQuery),
		chromedp.Evaluate(`document.querySelector("form[data-discard-submit]").checkValidity()`, &valid),
		chromedp.Click(`form[data-discard-submit] button[type="submit"]`, chromedp.ByQuery),
		chromedp.Sleep(300*time.Millisecond),
		chromedp.Location(&location),
	)
	require.NoError(t, err)
	assert.True(t, valid)
	assert.Equal(t, url, location, "submitting must not navigate")
}

func TestBrowserAnimationsPlayOnce(t *testing.T) {
	ctx, url := browserTest(t)

	var heroState, footerYear string
	var hasState bool
	err := chromedp.Run(ctx,
		chromedp.Navigate(url),
		chromedp.WaitReady("footer", chromedp.ByQuery),
		chromedp.Sleep(1200*time.Millisecond),
		chromedp.AttributeValue(`[data-motion-id="hero"]`, "data-motion-state", &heroState, &hasState, chromedp.ByQuery),
		chromedp.Text("footer", &footerYear, chromedp.ByQuery),
	)
	require.NoError(t, err)
	assert.True(t, hasState)
	assert.Equal(t, "animated", heroState)
	assert.Contains(t, footerYear, "2025")

	var pending int
	err = chromedp.Run(ctx,
		chromedp.Evaluate(`window.scrollTo(0, document.body.scrollHeight)`, nil),
		chromedp.Sleep(800*time.Millisecond),
		chromedp.Evaluate(`window.scrollTo(0, 0)`, nil),
		chromedp.Sleep(800*time.Millisecond),
		chromedp.Evaluate(`window.scrollTo(0, document.body.scrollHeight)`, nil),
		chromedp.Sleep(300*time.Millisecond),
		chromedp.Evaluate(`document.querySelectorAll('[data-motion-state="pending"][data-motion-id^="service"]').length`, &pending),
	)
	require.NoError(t, err)
	assert.Zero(t, pending, "service cards never return to their initial state")
}

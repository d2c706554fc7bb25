package services

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var plainTextPolicy = newPlainTextPolicy()

func newPlainTextPolicy() *bluemonday.Policy {
	p := bluemonday.StrictPolicy()
	// Keep words from adjacent blocks apart
	p.AddSpaceWhenStrippingTag(true)
	return p
}

// PlainText strips every tag from rendered markup and returns readable text
// with whitespace collapsed
func PlainText(markup string) string {
	text := html.UnescapeString(plainTextPolicy.Sanitize(markup))
	return strings.Join(strings.Fields(text), " ")
}

// Summarize returns the plain text of markup cut at a word boundary so it fits
// in max characters, counting the trailing ellipsis
func Summarize(markup string, max int) string {
	text := PlainText(markup)
	runes := []rune(text)
	if max <= 0 || len(runes) <= max {
		return text
	}
	head := runes[:max-1]
	cut := len(head)
	for i := len(head) - 1; i > 0; i-- {
		if head[i] == ' ' {
			cut = i
			break
		}
	}
	return strings.TrimRight(string(head[:cut]), " ,.;:") + "…"
}

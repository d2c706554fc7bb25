package handlers

import (
	"context"
	"strings"

	"hopebridge_site/models"
	"hopebridge_site/services"
	"hopebridge_site/templates/pages"
)

const (
	descriptionLength = 160
	keywords          = "counseling, therapy, mental health, New Jersey, telehealth, couples counseling, anxiety, trauma"
)

// GetSEO returns the SEO configuration for the landing page.
// The description is taken from the rendered hero copy so the two never drift apart.
func GetSEO(baseURL string) *models.SEO {
	var sb strings.Builder
	description := services.HeroSubheading
	if err := pages.HeroCopy().Render(context.Background(), &sb); err == nil {
		description = services.Summarize(sb.String(), descriptionLength)
	}

	return models.DefaultSEO(services.PracticeName+" | Mental Health Care in New Jersey", description).
		WithCanonical(strings.TrimSuffix(baseURL, "/") + "/").
		WithOGImage(services.AboutImageURL).
		WithKeywords(keywords)
}

package services

import (
	"errors"
	"fmt"
	"slices"

	"hopebridge_site/models"
	"hopebridge_site/services/motion"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

const (
	PracticeName = "HopeBridge Counseling"

	// AboutImageURL is fetched by the visitor's browser; a failed load only breaks the image
	AboutImageURL = "https://images.unsplash.com/photo-1522202176988-66273c2fd55f?auto=format&fit=crop&w=800&q=80"
	AboutImageAlt = "Therapist talking with a client"

	HeroHeading    = "Compassionate Mental Health Care for New Jersey Families"
	HeroSubheading = "Evidence-based therapy grounded in empathy, cultural humility, and holistic wellness."
)

var (
	ErrEmptyRegistry         = errors.New("service registry is empty")
	ErrDuplicateServiceTitle = errors.New("duplicate service title")
	ErrAmbiguousServiceKey   = errors.New("service titles collapse to the same key")
)

// serviceOfferings is the fixed registry rendered by the services section, in display order
var serviceOfferings = []models.ServiceOffering{
	{
		Title:       "Individual Therapy",
		Description: "Personalized one-on-one sessions focused on anxiety, trauma, and mood disorders.",
	},
	{
		Title:       "Couples Counseling",
		Description: "Evidence-based support to strengthen communication and intimacy in relationships.",
	},
	{
		Title:       "Telehealth Sessions",
		Description: "Secure video visits so you can access care from anywhere in New Jersey.",
	},
	{
		Title:       "Workshops & Groups",
		Description: "Psycho-educational groups on mindfulness, distress tolerance, and parenting skills.",
	},
}

// Contact is the practice's published contact information
var Contact = models.ContactChannels{
	PhoneDisplay: "(555) 555-5555",
	PhoneURI:     "tel:+15555555555",
	Email:        "info@hopebridgecounseling.com",
}

var validate = validator.New()

// ServiceOfferings returns a copy of the registry so callers cannot mutate it
func ServiceOfferings() []models.ServiceOffering {
	return slices.Clone(serviceOfferings)
}

// ServiceKey is the animation binding id of an offering's card
func ServiceKey(title string) string {
	return motion.Key("service", title)
}

// ValidateRegistry checks that every offering is complete, titles are unique,
// and no two titles reduce to the same card key
func ValidateRegistry(offerings []models.ServiceOffering) error {
	if len(offerings) == 0 {
		return ErrEmptyRegistry
	}
	for i, offering := range offerings {
		if err := validate.Struct(offering); err != nil {
			return fmt.Errorf("service offering %d: %w", i, err)
		}
	}
	duplicates := lo.FindDuplicatesBy(offerings, func(o models.ServiceOffering) string {
		return o.Title
	})
	if len(duplicates) > 0 {
		return fmt.Errorf("%w: %q", ErrDuplicateServiceTitle, duplicates[0].Title)
	}
	collisions := lo.FindDuplicatesBy(offerings, func(o models.ServiceOffering) string {
		return ServiceKey(o.Title)
	})
	if len(collisions) > 0 {
		return fmt.Errorf("%w: %q", ErrAmbiguousServiceKey, ServiceKey(collisions[0].Title))
	}
	for _, o := range offerings {
		if ServiceKey(o.Title) == ServiceKey("") {
			return fmt.Errorf("%w: %q has no usable characters", ErrAmbiguousServiceKey, o.Title)
		}
	}
	return nil
}

// ValidateContent checks the registry and the contact channels at startup
func ValidateContent() error {
	if err := ValidateRegistry(serviceOfferings); err != nil {
		return err
	}
	if err := validate.Struct(Contact); err != nil {
		return fmt.Errorf("contact channels: %w", err)
	}
	return nil
}

package services

import (
	"testing"
	"time"

	"hopebridge_site/models"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceOfferingsOrder(t *testing.T) {
	offerings := ServiceOfferings()
	require.Len(t, offerings, 4)

	titles := lo.Map(offerings, func(o models.ServiceOffering, _ int) string { return o.Title })
	assert.Equal(t, []string{
		"Individual Therapy",
		"Couples Counseling",
		"Telehealth Sessions",
		"Workshops & Groups",
	}, titles)
	assert.Equal(t,
		"Secure video visits so you can access care from anywhere in New Jersey.",
		offerings[2].Description)
}

func TestServiceOfferingsReturnsCopy(t *testing.T) {
	offerings := ServiceOfferings()
	offerings[0].Title = "Changed"

	assert.Equal(t, "Individual Therapy", ServiceOfferings()[0].Title)
}

func TestValidateRegistry(t *testing.T) {
	t.Run("Fixed registry is valid", func(t *testing.T) {
		assert.NoError(t, ValidateRegistry(ServiceOfferings()))
		assert.NoError(t, ValidateContent())
	})

	t.Run("Empty", func(t *testing.T) {
		assert.ErrorIs(t, ValidateRegistry(nil), ErrEmptyRegistry)
	})

	t.Run("Duplicate title", func(t *testing.T) {
		offerings := append(ServiceOfferings(), models.ServiceOffering{
			Title:       "Couples Counseling",
			Description: "Again",
		})
		err := ValidateRegistry(offerings)
		assert.ErrorIs(t, err, ErrDuplicateServiceTitle)
		assert.Contains(t, err.Error(), "Couples Counseling")
	})

	t.Run("Titles with the same card key", func(t *testing.T) {
		offerings := append(ServiceOfferings(), models.ServiceOffering{
			Title:       "Workshops Groups",
			Description: "Same card key as Workshops & Groups",
		})
		err := ValidateRegistry(offerings)
		assert.ErrorIs(t, err, ErrAmbiguousServiceKey)
		assert.Contains(t, err.Error(), "service-workshops-groups")
	})

	t.Run("Title without key characters", func(t *testing.T) {
		err := ValidateRegistry([]models.ServiceOffering{{Title: "&&&", Description: "Symbols only"}})
		assert.ErrorIs(t, err, ErrAmbiguousServiceKey)
	})

	t.Run("Missing description", func(t *testing.T) {
		err := ValidateRegistry([]models.ServiceOffering{{Title: "Art Therapy"}})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "service offering 0")
	})
}

func TestServiceKey(t *testing.T) {
	assert.Equal(t, "service-individual-therapy", ServiceKey("Individual Therapy"))
	assert.Equal(t, "service-workshops-groups", ServiceKey("Workshops & Groups"))

	keys := lo.Map(ServiceOfferings(), func(o models.ServiceOffering, _ int) string { return ServiceKey(o.Title) })
	assert.Len(t, lo.Uniq(keys), len(keys))
}

func TestContactChannels(t *testing.T) {
	assert.Equal(t, "tel:+15555555555", Contact.PhoneURI)
	assert.Equal(t, "mailto:info@hopebridgecounseling.com", Contact.MailtoURI())
	assert.NoError(t, validate.Struct(Contact))

	broken := Contact
	broken.PhoneURI = "5555555555"
	assert.Error(t, validate.Struct(broken))
}

func TestClocks(t *testing.T) {
	at := time.Date(2031, time.March, 4, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, at, FixedClock{At: at}.Now())

	before := time.Now()
	now := SystemClock{}.Now()
	assert.False(t, now.Before(before))
}

package pages

import (
	"hopebridge_site/templates/components"

	"github.com/a-h/templ"
)

// Team is a placeholder until clinician bios are published
func Team() templ.Component {
	return components.El("section", templ.Attributes{"id": "team", "class": "container mx-auto px-4 py-20"},
		sectionHeading("team-heading", "Meet Our Team"),
		el("p", "text-center text-gray-600 max-w-xl mx-auto", text(
			"Bios coming soon! We are expanding our compassionate team of culturally responsive clinicians to better "+
				"serve you.",
		)),
	)
}

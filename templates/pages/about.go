package pages

import (
	"hopebridge_site/services"
	"hopebridge_site/services/motion"
	"hopebridge_site/templates/components"

	"github.com/a-h/templ"
)

// About is the two-column practice introduction
func About() templ.Component {
	return components.El("section", templ.Attributes{"id": "about", "class": "bg-white py-20"},
		el("div", "container mx-auto px-4 grid md:grid-cols-2 gap-10 items-center",
			components.Motion("div", "about-copy", motion.Slide(-30), nil,
				el("h3", "text-3xl font-bold mb-6", text("Why Choose HopeBridge?")),
				el("p", "mb-4 text-gray-700", text(
					"Founded by licensed professional counselor Oxana Rodriguez, HopeBridge Counseling integrates "+
						"psychodynamic insight with evidence-based CBT and mindfulness-based practices. We specialize in "+
						"anxiety, mood disorders, complex trauma, OCD, and relational concerns.",
				)),
				el("p", "text-gray-700", text(
					"Our goal is to provide a warm, inclusive space where every client feels heard, validated, and empowered "+
						"to build a life that aligns with their values.",
				)),
			),
			components.Motion("img", "about-image", motion.Slide(30), templ.Attributes{
				"src":   services.AboutImageURL,
				"alt":   services.AboutImageAlt,
				"class": "rounded-2xl shadow-lg",
			}),
		),
	)
}

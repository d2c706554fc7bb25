package pages

import (
	"time"

	"hopebridge_site/models"
	"hopebridge_site/services"
	"hopebridge_site/services/motion"
	"hopebridge_site/templates/components"

	"github.com/a-h/templ"
	"github.com/samber/lo"
)

var (
	headingMotion = motion.Rise(20)
	cardMotion    = motion.Rise(20).WithDuration(400 * time.Millisecond)
)

// Services renders one card per offering, in registry order
func Services(offerings []models.ServiceOffering) templ.Component {
	cards := lo.Map(offerings, func(svc models.ServiceOffering, _ int) templ.Component {
		return ServiceCard(svc)
	})

	return components.El("section", templ.Attributes{"id": "services", "class": "container mx-auto px-4 py-20"},
		sectionHeading("services-heading", "Our Services"),
		el("div", "grid gap-8 md:grid-cols-2 lg:grid-cols-4", cards...),
	)
}

// ServiceCard is a single animated card; the title is its binding key
func ServiceCard(svc models.ServiceOffering) templ.Component {
	return components.Motion("div", services.ServiceKey(svc.Title), cardMotion, nil,
		components.Card("",
			components.CardContent("",
				el("h4", "text-xl font-semibold mb-3", text(svc.Title)),
				el("p", "text-sm leading-relaxed text-gray-600", text(svc.Description)),
			),
		),
	)
}

func sectionHeading(key string, title string) templ.Component {
	return components.Motion("h3", key, headingMotion, templ.Attributes{"class": "text-3xl font-bold text-center mb-12"},
		text(title),
	)
}

package pages

import (
	"hopebridge_site/services"
	"hopebridge_site/templates/components"

	"github.com/a-h/templ"
)

// MentalHealthWebsite assembles the whole page in its fixed vertical order.
// The clock only feeds the footer's copyright year.
func MentalHealthWebsite(clock services.Clock) templ.Component {
	return el("div", "min-h-screen flex flex-col font-sans text-gray-800 bg-slate-50",
		Header(),
		Hero(),
		Services(services.ServiceOfferings()),
		About(),
		Team(),
		Contact(services.Contact),
		Footer(clock),
	)
}

// el is an element whose only attribute is its class list
func el(tag string, class string, children ...templ.Component) templ.Component {
	return components.El(tag, templ.Attributes{"class": class}, children...)
}

func text(s string) templ.Component {
	return components.Text(s)
}

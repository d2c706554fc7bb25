package pages

import (
	"hopebridge_site/models"
	"hopebridge_site/services/motion"
	"hopebridge_site/templates/components"

	"github.com/a-h/templ"
	h "maragu.dev/gomponents/html"
)

var contactMotion = motion.Rise(20)

// Contact shows the practice's direct channels next to an inert message form.
// The browser runtime cancels the form's submit event, so nothing is sent.
func Contact(channels models.ContactChannels) templ.Component {
	return components.El("section", templ.Attributes{"id": "contact", "class": "bg-slate-100 py-20"},
		el("div", "container mx-auto px-4 grid md:grid-cols-2 gap-10 items-start",
			components.Motion("div", "contact-details", contactMotion, templ.Attributes{"class": "space-y-6"},
				el("h3", "text-3xl font-bold", text("Get in Touch")),
				el("p", "text-gray-700", text(
					"Ready to start your healing journey? Use the form or reach out directly and we'll respond within one "+
						"business day.",
				)),
				contactLine(components.PhoneIcon("w-5 h-5"), channels.PhoneURI, channels.PhoneDisplay),
				contactLine(components.MailIcon("w-5 h-5"), channels.MailtoURI(), channels.Email),
			),
			ContactForm(),
		),
	)
}

// ContactForm is the message form. Native required-field validation is the only check.
func ContactForm() templ.Component {
	return components.Motion("form", "contact-form", contactMotion, templ.Attributes{
		"class":               "bg-white p-8 rounded-2xl shadow-lg space-y-4",
		"data-discard-submit": true,
	},
		components.Input(h.Name("name"), h.Placeholder("Name"), h.Required()),
		components.Input(h.Name("email"), h.Type("email"), h.Placeholder("Email"), h.Required()),
		components.Textarea(h.Name("message"), h.Placeholder("How can we help you?"), h.Rows("4"), h.Required()),
		components.Button(components.ButtonProps{Type: "submit", Class: "w-full"}, text("Send Message")),
	)
}

func contactLine(icon templ.Component, href string, label string) templ.Component {
	return el("div", "flex items-center space-x-3 text-gray-700",
		icon,
		components.El("a", templ.Attributes{
			"href":  components.Href(href),
			"class": "hover:underline",
		}, text(label)),
	)
}

package components

import "github.com/a-h/templ"

const (
	cardClass        = "bg-white rounded-2xl shadow-sm hover:shadow-md transition-shadow"
	cardContentClass = "p-6"
)

// Card is a rounded, shadowed container
func Card(class string, children ...templ.Component) templ.Component {
	return El("div", templ.Attributes{"class": Class(cardClass, class)}, children...)
}

// CardContent is the padded inner region of a Card
func CardContent(class string, children ...templ.Component) templ.Component {
	return El("div", templ.Attributes{"class": Class(cardContentClass, class)}, children...)
}

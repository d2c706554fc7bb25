package components

import "github.com/a-h/templ"

const buttonClass = "bg-indigo-600 text-white py-2 px-4 rounded-xl shadow hover:bg-indigo-700 transition"

// ButtonProps configures a call-to-action element
type ButtonProps struct {
	Href  string // when set the button is a link to this destination
	Type  string // button type when Href is empty; defaults to "button"
	Class string
}

// Button renders a call-to-action. Links and form controls share one look:
// with an Href it navigates, without one it is a <button> of the given type.
func Button(props ButtonProps, children ...templ.Component) templ.Component {
	if props.Href != "" {
		return El("a", templ.Attributes{
			"href":  Href(props.Href),
			"class": Class("inline-block "+buttonClass, props.Class),
		}, children...)
	}

	buttonType := props.Type
	if buttonType == "" {
		buttonType = "button"
	}
	return El("button", templ.Attributes{
		"type":  buttonType,
		"class": Class(buttonClass, props.Class),
	}, children...)
}

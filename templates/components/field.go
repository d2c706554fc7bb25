package components

import (
	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const fieldClass = "border border-gray-300 rounded-xl p-3 w-full"

// Input renders a single-line field. The fixed class comes first and every
// supplied attribute follows unchanged.
func Input(attrs ...g.Node) templ.Component {
	return Node(h.Input(h.Class(fieldClass), g.Group(attrs)))
}

// Textarea renders a multi-line field. The fixed class comes first and every
// supplied attribute follows unchanged.
func Textarea(attrs ...g.Node) templ.Component {
	return Node(h.Textarea(h.Class(fieldClass), g.Group(attrs)))
}

package components

import (
	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// PhoneIcon is the lucide "phone" glyph
func PhoneIcon(class string) templ.Component {
	return icon(class,
		path("M22 16.92v3a2 2 0 0 1-2.18 2 19.79 19.79 0 0 1-8.63-3.07 19.5 19.5 0 0 1-6-6 19.79 19.79 0 0 1-3.07-8.67A2 2 0 0 1 4.11 2h3a2 2 0 0 1 2 1.72 12.84 12.84 0 0 0 .7 2.81 2 2 0 0 1-.45 2.11L8.09 9.91a16 16 0 0 0 6 6l1.27-1.27a2 2 0 0 1 2.11-.45 12.84 12.84 0 0 0 2.81.7A2 2 0 0 1 22 16.92z"),
	)
}

// MailIcon is the lucide "mail" glyph
func MailIcon(class string) templ.Component {
	return icon(class,
		g.El("rect", g.Attr("width", "20"), g.Attr("height", "16"), g.Attr("x", "2"), g.Attr("y", "4"), g.Attr("rx", "2")),
		path("m22 7-8.97 5.7a1.94 1.94 0 0 1-2.06 0L2 7"),
	)
}

func icon(class string, shapes ...g.Node) templ.Component {
	return Node(h.SVG(
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("width", "24"),
		g.Attr("height", "24"),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("fill", "none"),
		g.Attr("stroke", "currentColor"),
		g.Attr("stroke-width", "2"),
		g.Attr("stroke-linecap", "round"),
		g.Attr("stroke-linejoin", "round"),
		h.Aria("hidden", "true"),
		h.Class(class),
		g.Group(shapes),
	))
}

func path(d string) g.Node {
	return g.El("path", g.Attr("d", d))
}

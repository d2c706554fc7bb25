package pages

import (
	"hopebridge_site/services"
	"hopebridge_site/templates/components"

	"github.com/a-h/templ"
)

// NavLinks are the in-page anchors shown in the header, in order
var NavLinks = []struct {
	Href  string
	Label string
}{
	{Href: "#services", Label: "Services"},
	{Href: "#about", Label: "About Us"},
	{Href: "#team", Label: "Team"},
	{Href: "#contact", Label: "Contact"},
}

// Header is the sticky navigation bar
func Header() templ.Component {
	links := make([]templ.Component, 0, len(NavLinks))
	for _, link := range NavLinks {
		links = append(links, components.El("a", templ.Attributes{
			"href":  link.Href,
			"class": "hover:text-indigo-600",
		}, text(link.Label)))
	}

	return el("header", "sticky top-0 z-50 bg-white/90 backdrop-blur border-b border-slate-200",
		el("div", "container mx-auto px-4 py-3 flex justify-between items-center",
			el("h1", "text-2xl font-bold tracking-tight", text(services.PracticeName)),
			el("nav", "space-x-6 text-sm font-medium hidden md:block", links...),
			components.Button(components.ButtonProps{Href: "#contact", Class: "hidden md:inline-flex"},
				text("Book a Session"),
			),
		),
	)
}

package pages

import (
	"time"

	"hopebridge_site/services"
	"hopebridge_site/services/motion"
	"hopebridge_site/templates/components"

	"github.com/a-h/templ"
)

// heroMotion plays as soon as the page mounts
var heroMotion = motion.Rise(40).OnMount().WithDuration(800 * time.Millisecond)

// Hero is the banner with the main call to action
func Hero() templ.Component {
	return el("section", "flex-1 flex items-center justify-center text-center px-4 py-24 bg-gradient-to-br from-indigo-100 via-white to-teal-100",
		components.Motion("div", "hero", heroMotion, templ.Attributes{"class": "max-w-2xl"},
			HeroCopy(),
			components.Button(components.ButtonProps{Href: "#contact", Class: "px-6 py-3 text-lg"},
				text("Schedule a Consultation"),
			),
		),
	)
}

// HeroCopy is the heading and subheading of the hero banner
func HeroCopy() templ.Component {
	return templ.Join(
		el("h2", "text-4xl md:text-5xl font-extrabold mb-6 leading-tight", text(services.HeroHeading)),
		el("p", "text-lg md:text-xl mb-8", text(services.HeroSubheading)),
	)
}

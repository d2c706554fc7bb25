package pages

import (
	"context"
	"fmt"
	"io"

	"hopebridge_site/services"

	"github.com/a-h/templ"
)

// Footer prints the copyright line. The year is read from the clock each time it renders.
func Footer(clock services.Clock) templ.Component {
	year := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return text(CopyrightLine(clock)).Render(ctx, w)
	})
	return el("footer", "bg-white border-t border-slate-200 py-6 text-sm text-gray-600 text-center", year)
}

// CopyrightLine returns the footer text for the clock's current year
func CopyrightLine(clock services.Clock) string {
	return fmt.Sprintf("© %d %s. All rights reserved.", clock.Now().Year(), services.PracticeName)
}

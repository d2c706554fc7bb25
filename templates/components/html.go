package components

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// voidElements never carry children or a closing tag
var voidElements = map[string]bool{
	"area": true, "br": true, "col": true, "hr": true, "img": true,
	"input": true, "link": true, "meta": true, "source": true, "wbr": true,
}

// El renders <tag attrs>children</tag>. Attributes are written in key order.
// Children render with the caller's context, so motion bindings below an El
// still find their controller.
func El(tag string, attrs templ.Attributes, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<"+tag); err != nil {
			return err
		}
		if err := templ.RenderAttributes(ctx, w, attrs); err != nil {
			return err
		}
		if _, err := io.WriteString(w, ">"); err != nil {
			return err
		}
		if voidElements[tag] {
			return nil
		}
		if err := templ.Join(nonNil(children)...).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</"+tag+">")
		return err
	})
}

// Text renders escaped text
func Text(s string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}

// Node adapts a context-free gomponents node to a templ component
func Node(n g.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return n.Render(w)
	})
}

// Class joins a fixed class list with an optional caller-supplied one, dropping repeats
func Class(base string, extra string) string {
	return templ.Classes(strings.Fields(base), strings.Fields(extra)).String()
}

// Href sanitizes a link destination. Schemes other than http(s), mailto, tel
// and ftp(s) are replaced with an inert URL.
func Href(href string) string {
	return string(templ.URL(href))
}

func nonNil(children []templ.Component) []templ.Component {
	out := make([]templ.Component, 0, len(children))
	for _, c := range children {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}

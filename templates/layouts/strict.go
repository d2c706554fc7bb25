package layouts

import (
	"bytes"
	"context"
	"io"
	"log"

	"github.com/a-h/templ"
)

// Strict renders c twice and warns when the two outputs differ, which means
// the component reads something other than its inputs while rendering.
// The first output is the one written. When disabled, c is returned untouched.
func Strict(c templ.Component, enabled bool) templ.Component {
	if !enabled {
		return c
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var first, second bytes.Buffer
		if err := c.Render(ctx, &first); err != nil {
			return err
		}
		if err := c.Render(ctx, &second); err != nil {
			return err
		}
		if !bytes.Equal(first.Bytes(), second.Bytes()) {
			log.Printf("[WARNING] Strict render: output changed between two renders (%d vs %d bytes); the component is not pure",
				first.Len(), second.Len())
		}
		_, err := w.Write(first.Bytes())
		return err
	})
}

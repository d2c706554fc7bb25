package components

import (
	"context"
	"encoding/json"
	"io"

	"hopebridge_site/services/motion"

	"github.com/a-h/templ"
)

// Motion wraps content in an element bound to an entrance animation.
// The binding is looked up by key on the controller carried in the render
// context, so the element renders its current phase: the initial style while
// pending, the target style once triggered. Without a controller the element
// renders pending.
func Motion(tag string, key string, spec motion.Spec, attrs templ.Attributes, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var binding *motion.Binding
		if controller := motion.FromContext(ctx); controller != nil {
			binding = controller.Bind(key, spec)
		} else {
			binding = motion.NewBinding(key, spec)
		}

		merged := make(templ.Attributes, len(attrs)+7)
		for k, v := range attrs {
			merged[k] = v
		}
		merged["style"] = binding.Style()
		if data := binding.Attributes(); data != nil {
			for k, v := range data {
				merged[k] = v
			}
			target, err := json.Marshal(binding.Spec.Target)
			if err != nil {
				return err
			}
			merged["data-motion-target"] = string(target)
		}

		return El(tag, merged, children...).Render(ctx, w)
	})
}

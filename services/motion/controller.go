package motion

import (
	"context"
	"sync"
)

// VisibilityObserver is the host capability that reports when an element
// enters or leaves the viewport. The browser equivalent is IntersectionObserver.
// onChange must not be invoked from within Observe.
type VisibilityObserver interface {
	Observe(id string, onChange func(visible bool))
	Unobserve(id string)
}

// Controller owns every binding of one rendered page.
// Bind is idempotent per id, so rendering the same tree twice reuses bindings.
type Controller struct {
	mu       sync.Mutex
	bindings []*Binding
	byID     map[string]*Binding
	observer VisibilityObserver
	mounted  bool
	settled  bool
}

// NewController creates a controller whose bindings start Pending
func NewController() *Controller {
	return &Controller{byID: make(map[string]*Binding)}
}

// NewSettledController creates a controller whose bindings are born Animated.
// Used for static snapshots where no runtime will ever fire the triggers.
func NewSettledController() *Controller {
	c := NewController()
	c.settled = true
	return c
}

// Bind returns the binding registered under id, creating it on first use
func (c *Controller) Bind(id string, spec Spec) *Binding {
	c.mu.Lock()
	defer c.mu.Unlock()

	if b, ok := c.byID[id]; ok {
		return b
	}

	b := NewBinding(id, spec)
	if c.settled {
		b.Settle()
	}
	c.bindings = append(c.bindings, b)
	c.byID[id] = b

	if c.mounted {
		c.attach(b)
	}
	return b
}

// Lookup returns the binding registered under id
func (c *Controller) Lookup(id string) (*Binding, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.byID[id]
	return b, ok
}

// Bindings returns the bindings in registration (render) order
func (c *Controller) Bindings() []*Binding {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*Binding, len(c.bindings))
	copy(out, c.bindings)
	return out
}

// Mount fires every on-mount binding and subscribes in-view bindings to the observer.
// Calling Mount more than once has no effect.
func (c *Controller) Mount(observer VisibilityObserver) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.mounted {
		return
	}
	c.mounted = true
	c.observer = observer

	for _, b := range c.bindings {
		c.attach(b)
	}
}

// Complete reports the end of an element's transition
func (c *Controller) Complete(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.byID[id]
	if !ok {
		return false
	}
	return b.Complete()
}

// Settle drives every binding to Animated and drops all observations
func (c *Controller) Settle() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.settled = true
	for _, b := range c.bindings {
		if c.observer != nil && b.Spec.Trigger == InView {
			c.observer.Unobserve(b.ID)
		}
		b.Settle()
	}
}

// attach must be called with c.mu held
func (c *Controller) attach(b *Binding) {
	if b.Phase() == Animated && b.Spec.Once {
		return
	}
	switch b.Spec.Trigger {
	case OnMount:
		b.Trigger()
	case InView:
		if c.observer == nil {
			return
		}
		c.observer.Observe(b.ID, func(visible bool) {
			c.onVisibility(b, visible)
		})
	}
}

func (c *Controller) onVisibility(b *Binding, visible bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !visible {
		b.Leave()
		return
	}
	if b.Trigger() && b.Spec.Once && c.observer != nil {
		c.observer.Unobserve(b.ID)
	}
}

type controllerKey struct{}

// WithController attaches a controller to the render context
func WithController(ctx context.Context, c *Controller) context.Context {
	return context.WithValue(ctx, controllerKey{}, c)
}

// FromContext returns the controller carried by ctx, or nil
func FromContext(ctx context.Context) *Controller {
	if c, ok := ctx.Value(controllerKey{}).(*Controller); ok {
		return c
	}
	return nil
}

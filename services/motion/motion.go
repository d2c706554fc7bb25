// Package motion models one-shot entrance animations: an element starts in an
// initial visual state and transitions to its target state when its trigger
// fires (on mount, or on first entering the viewport).
//
// Each element is tracked by a Binding that moves through
// Pending -> Triggered -> Animated. Once-bindings never leave Animated.
// The browser runtime (static/js/app.js) mirrors this machine and reports the
// phase through the data-motion-state attribute.
package motion

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultDuration is used when a Spec leaves Duration unset
const DefaultDuration = 300 * time.Millisecond

// Trigger decides when a binding leaves Pending
type Trigger string

const (
	OnMount Trigger = "mount"
	InView  Trigger = "in-view"
)

// Phase is the position of a binding in its state machine
type Phase int

const (
	Pending Phase = iota
	Triggered
	Animated
)

func (p Phase) String() string {
	switch p {
	case Pending:
		return "pending"
	case Triggered:
		return "triggered"
	case Animated:
		return "animated"
	default:
		return "unknown"
	}
}

// State is a visual snapshot: opacity in [0,1] and a translation in pixels
type State struct {
	Opacity float64 `json:"opacity"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
}

// Visible is the resting state every entrance animation ends in
var Visible = State{Opacity: 1}

// CSS renders the state as inline style declarations
func (s State) CSS() string {
	return fmt.Sprintf("opacity:%s;transform:translate(%spx,%spx)", formatFloat(s.Opacity), formatFloat(s.X), formatFloat(s.Y))
}

// Spec declares an entrance animation
type Spec struct {
	Initial  State
	Target   State
	Trigger  Trigger
	Once     bool
	Duration time.Duration
}

// Rise fades an element in while it moves up from offset pixels below its resting place.
// It fires on first visibility and never replays.
func Rise(offset float64) Spec {
	return Spec{
		Initial: State{Opacity: 0, Y: offset},
		Target:  Visible,
		Trigger: InView,
		Once:    true,
	}
}

// Slide fades an element in while it moves horizontally from offset pixels.
// Negative offsets enter from the left.
func Slide(offset float64) Spec {
	return Spec{
		Initial: State{Opacity: 0, X: offset},
		Target:  Visible,
		Trigger: InView,
		Once:    true,
	}
}

// OnMount returns a copy of the Spec that fires as soon as the page mounts
func (s Spec) OnMount() Spec {
	s.Trigger = OnMount
	return s
}

// WithDuration returns a copy of the Spec with the given transition duration
func (s Spec) WithDuration(d time.Duration) Spec {
	s.Duration = d
	return s
}

// EffectiveDuration returns Duration or DefaultDuration when unset
func (s Spec) EffectiveDuration() time.Duration {
	if s.Duration <= 0 {
		return DefaultDuration
	}
	return s.Duration
}

// Binding tracks the animation phase of a single element.
// Bindings are not safe for concurrent use on their own; Controller serializes access.
type Binding struct {
	ID   string
	Spec Spec

	phase    Phase
	triggers int
}

// NewBinding creates a pending binding
func NewBinding(id string, spec Spec) *Binding {
	return &Binding{ID: id, Spec: spec}
}

// Phase returns the current phase
func (b *Binding) Phase() Phase {
	return b.phase
}

// Triggers returns how many times the binding has left Pending
func (b *Binding) Triggers() int {
	return b.triggers
}

// Trigger moves a pending binding to Triggered. It reports whether the phase changed.
func (b *Binding) Trigger() bool {
	if b.phase != Pending {
		return false
	}
	b.phase = Triggered
	b.triggers++
	return true
}

// Complete marks the end of the transition. It reports whether the phase changed.
func (b *Binding) Complete() bool {
	if b.phase != Triggered {
		return false
	}
	b.phase = Animated
	return true
}

// Settle drives the binding straight to Animated
func (b *Binding) Settle() {
	b.Trigger()
	b.Complete()
}

// Leave handles the element leaving the viewport. Only bindings without Once
// return to Pending so they can replay; it reports whether the phase changed.
func (b *Binding) Leave() bool {
	if b.Spec.Once || b.phase == Pending {
		return false
	}
	b.phase = Pending
	return true
}

// Current returns the visual state for the current phase
func (b *Binding) Current() State {
	if b.phase == Pending {
		return b.Spec.Initial
	}
	return b.Spec.Target
}

// Style returns the inline style for the current phase
func (b *Binding) Style() string {
	return b.Current().CSS()
}

// Attributes returns the data attributes consumed by the browser runtime.
// A settled binding needs none.
func (b *Binding) Attributes() map[string]string {
	if b.phase == Animated {
		return nil
	}
	attrs := map[string]string{
		"data-motion":          string(b.Spec.Trigger),
		"data-motion-id":       b.ID,
		"data-motion-state":    b.phase.String(),
		"data-motion-duration": formatFloat(b.Spec.EffectiveDuration().Seconds()),
	}
	if b.Spec.Once {
		attrs["data-motion-once"] = "true"
	}
	return attrs
}

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9-]+`)
	repeatedDash = regexp.MustCompile(`-+`)
)

// Key turns a display key (a section name, a service title) into a stable binding id
func Key(parts ...string) string {
	slug := strings.ToLower(strings.Join(parts, "-"))
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = nonSlugChars.ReplaceAllString(slug, "")
	slug = repeatedDash.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

package navtea

import "github.com/matzehuels/navstack/pkg/nav"

// Transitions names the visual transition for each navigation direction,
// plus an easing value handed through to whatever animates. All three are
// opaque here: navtea selects between Forward and Backward by direction
// and never interprets the strings.
type Transitions struct {
	Forward  string
	Backward string
	Easing   string
}

// DefaultTransitions is the conventional pair for left-to-right locales.
var DefaultTransitions = Transitions{
	Forward:  "slide-left",
	Backward: "slide-right",
}

// Select returns the transition name for a direction.
func (t Transitions) Select(d nav.Direction) string {
	if d == nav.Backward {
		return t.Backward
	}
	return t.Forward
}

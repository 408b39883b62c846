package nav

import "fmt"

// Direction reports which way the most recent navigation moved. Renderers
// use it to pick a transition (slide left vs slide right); it never affects
// stack structure.
type Direction int

const (
	// Forward is the direction after a push. It is also the initial
	// direction of a new controller.
	Forward Direction = iota
	// Backward is the direction after any pop, including pops that removed
	// nothing.
	Backward
)

// String returns "forward" or "backward".
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// MarshalText implements [encoding.TextMarshaler] so directions serialize
// as their names in JSON and TOML.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (d *Direction) UnmarshalText(text []byte) error {
	switch string(text) {
	case "forward":
		*d = Forward
	case "backward":
		*d = Backward
	default:
		return fmt.Errorf("unknown direction %q", text)
	}
	return nil
}

// Package trigger converts level-style UI state into edge-triggered
// navigation.
//
// Declarative render loops re-evaluate constantly. A binding that reads
// "the settings flag is true, so push settings" fires again on every
// render until somebody flips the flag back - the classic double-push.
// The types here make the edge explicit instead: arming a trigger is one
// step, consuming it is another, and consuming both observes the
// transition exactly once and resets the trigger to its neutral value.
//
// Triggers follow the same threading contract as the controller: one
// goroutine, no internal locking.
package trigger

// Flag is a boolean trigger. Set arms it; Consume observes the arming
// exactly once. Re-setting an armed flag is a no-op, so however many
// renders happen between arming and consuming, navigation fires once.
//
// The zero value is an unarmed flag ready for use.
type Flag struct {
	armed bool
}

// Set arms the flag.
func (f *Flag) Set() { f.armed = true }

// Armed reports whether the flag is armed, without consuming it.
func (f *Flag) Armed() bool { return f.armed }

// Consume reports whether the flag was armed and resets it. The first call
// after Set returns true; further calls return false until Set runs again.
func (f *Flag) Consume() bool {
	if !f.armed {
		return false
	}
	f.armed = false
	return true
}

// Clear disarms the flag without firing.
func (f *Flag) Clear() { f.armed = false }

// Selection is a tagged-value trigger: arming it selects a value, and
// consumers watch for the value they care about. The zero value of V is
// the neutral state - selecting it clears the trigger, and consuming it
// never fires.
//
// The zero value is a cleared selection ready for use.
type Selection[V comparable] struct {
	current V
}

// Select arms the trigger with v. Selecting the zero value clears it.
func (s *Selection[V]) Select(v V) { s.current = v }

// Current returns the selected value without consuming it.
func (s *Selection[V]) Current() V { return s.current }

// Consume reports whether the selection equals tag, and resets it when it
// does. A non-matching tag leaves the selection armed for the consumer it
// is meant for. The zero tag never fires.
func (s *Selection[V]) Consume(tag V) bool {
	var zero V
	if tag == zero || s.current != tag {
		return false
	}
	s.current = zero
	return true
}

// Take returns the selected value and resets the trigger, or false when
// nothing is selected. Use Take when one consumer routes on the value;
// use Consume when each consumer watches for its own tag.
func (s *Selection[V]) Take() (V, bool) {
	var zero V
	if s.current == zero {
		return zero, false
	}
	v := s.current
	s.current = zero
	return v, true
}

// Clear resets the selection to the zero value without firing.
func (s *Selection[V]) Clear() {
	var zero V
	s.current = zero
}

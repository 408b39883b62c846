package nav

import (
	"errors"
	"slices"
)

var (
	// ErrInvalidID is returned by [Stack.Push] when the record ID is empty.
	// All records must have non-empty identifiers.
	ErrInvalidID = errors.New("record ID must not be empty")

	// ErrDuplicateID is returned by [Stack.Push] when a record with the same
	// ID is already on the stack. Record IDs must be unique across the stack.
	ErrDuplicateID = errors.New("duplicate record ID")

	// ErrIDNotFound is returned by [Stack.PopTo] and [Stack.SetPayload] when
	// no record with the given ID is on the stack.
	ErrIDNotFound = errors.New("record ID not found")
)

// Record binds a unique string identifier to an opaque payload.
// The identifier is the record's identity: it is assigned when the record
// is pushed, never changes, and is what pop targeting, Contains, and
// equality work on. The stack never inspects payloads.
type Record[T any] struct {
	ID      string // Unique identifier within one stack
	Payload T      // Whatever the application navigates between
}

// Equal reports whether two records have the same identity.
// Payloads are not compared.
func (r Record[T]) Equal(o Record[T]) bool { return r.ID == o.ID }

// Stack is an ordered bottom-to-top sequence of records whose IDs are
// unique across the whole sequence. The uniqueness invariant holds before
// and after every operation: a rejected operation leaves the stack exactly
// as it was.
//
// An empty stack is the valid initial state - it means only the root of
// the navigation hierarchy is showing. The root itself is not a record;
// Len counts pushed records only.
//
// The zero value is an empty stack ready for use. Stack is not safe for
// concurrent use without external synchronization. Lookups scan linearly:
// navigation stacks stay shallow, so no index is kept.
type Stack[T any] struct {
	records []Record[T]
}

// Push appends a record to the top of the stack.
// Returns ErrInvalidID if the record ID is empty, or ErrDuplicateID if a
// record with the same ID is already on the stack. In both cases the stack
// is unchanged.
func (s *Stack[T]) Push(rec Record[T]) error {
	if rec.ID == "" {
		return ErrInvalidID
	}
	if s.Contains(rec.ID) {
		return ErrDuplicateID
	}
	s.records = append(s.records, rec)
	return nil
}

// Peek returns the top record without removing it,
// or false when the stack is empty.
func (s *Stack[T]) Peek() (Record[T], bool) {
	if len(s.records) == 0 {
		var zero Record[T]
		return zero, false
	}
	return s.records[len(s.records)-1], true
}

// Pop removes and returns the top record.
// Popping an empty stack is a no-op and returns false.
func (s *Stack[T]) Pop() (Record[T], bool) {
	if len(s.records) == 0 {
		var zero Record[T]
		return zero, false
	}
	top := s.records[len(s.records)-1]
	s.records[len(s.records)-1] = Record[T]{} // release the payload reference
	s.records = s.records[:len(s.records)-1]
	return top, true
}

// PopTo removes every record above the record with the given ID, making it
// the new top. The removed records are returned in pop order (former top
// first); popping to the record already on top removes nothing and returns
// nil. Returns ErrIDNotFound - with the stack unchanged - when no record
// has that ID, so an invalid target can never corrupt navigation state.
func (s *Stack[T]) PopTo(id string) ([]Record[T], error) {
	k := s.index(id)
	if k < 0 {
		return nil, ErrIDNotFound
	}
	var popped []Record[T]
	for i := len(s.records) - 1; i > k; i-- {
		popped = append(popped, s.records[i])
	}
	clear(s.records[k+1:])
	s.records = s.records[:k+1]
	return popped, nil
}

// Clear removes all records, returning them in pop order (former top
// first). Clearing an empty stack returns nil.
func (s *Stack[T]) Clear() []Record[T] {
	if len(s.records) == 0 {
		return nil
	}
	popped := make([]Record[T], 0, len(s.records))
	for i := len(s.records) - 1; i >= 0; i-- {
		popped = append(popped, s.records[i])
	}
	s.records = nil
	return popped
}

// SetPayload replaces the payload of the record with the given ID in place.
// The record keeps its identity and position; only the payload changes.
// Returns ErrIDNotFound if no record has that ID.
func (s *Stack[T]) SetPayload(id string, payload T) error {
	k := s.index(id)
	if k < 0 {
		return ErrIDNotFound
	}
	s.records[k].Payload = payload
	return nil
}

// Len returns the number of records on the stack.
func (s *Stack[T]) Len() int { return len(s.records) }

// Contains reports whether a record with the given ID is on the stack.
func (s *Stack[T]) Contains(id string) bool { return s.index(id) >= 0 }

// Find returns the record with the given ID, or false if it is not on the
// stack.
func (s *Stack[T]) Find(id string) (Record[T], bool) {
	if k := s.index(id); k >= 0 {
		return s.records[k], true
	}
	var zero Record[T]
	return zero, false
}

// Records returns a copy of the stack contents, bottom-to-top.
// Modifications to the returned slice or its records do not affect the stack.
func (s *Stack[T]) Records() []Record[T] { return slices.Clone(s.records) }

// IDs returns the record IDs bottom-to-top.
func (s *Stack[T]) IDs() []string {
	if len(s.records) == 0 {
		return nil
	}
	ids := make([]string, len(s.records))
	for i, r := range s.records {
		ids[i] = r.ID
	}
	return ids
}

// index returns the position of the record with the given ID, scanning from
// the bottom, or -1 if absent.
func (s *Stack[T]) index(id string) int {
	return slices.IndexFunc(s.records, func(r Record[T]) bool { return r.ID == id })
}

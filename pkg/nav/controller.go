package nav

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Snapshot is the state subscribers receive after every applied operation.
// Top is the zero Record while the stack is empty (the root is showing).
// Direction and Top always change together in one publication, so a
// renderer can pick the transition that matches the new top.
type Snapshot[T any] struct {
	Top       Record[T]
	Depth     int
	Direction Direction
}

// Empty reports whether the stack held no records when the snapshot was
// taken.
func (s Snapshot[T]) Empty() bool { return s.Depth == 0 }

// Options configures a Controller. The zero value is ready to use: IDs come
// from uuid.NewString, diagnostics go to log.Default, and rejected
// operations are logged and ignored.
type Options struct {
	// Logger receives a WARN line for every rejected operation.
	// Nil means log.Default().
	Logger *log.Logger

	// GenerateID produces identifiers for Push. Nil means uuid.NewString.
	// Generated IDs must not repeat during the controller's lifetime.
	GenerateID func() string

	// Strict escalates rejected operations (duplicate ID, unknown pop
	// target) to panics instead of log-and-ignore. Useful in development
	// to surface navigation bugs immediately; leave off in production.
	Strict bool

	// OnEvent, when non-nil, receives an [Event] for every operation,
	// applied or rejected. Wire a journal here.
	OnEvent func(Event)
}

// Controller owns one record stack, the current navigation direction, and
// the root payload shown while the stack is empty. It is the only writer of
// its stack: applications navigate exclusively through controller methods.
//
// A controller is an explicit dependency. Construct one per navigation
// hierarchy and hand it to whatever renders it - there is no package-level
// instance to reach for.
//
// Controller is not safe for concurrent use. All methods must run on the
// goroutine that drives the UI. Hand read results (Snapshot, State) to
// other goroutines instead of sharing the controller itself.
type Controller[T any] struct {
	root      T
	stack     Stack[T]
	direction Direction

	genID   func() string
	logger  *log.Logger
	strict  bool
	onEvent func(Event)

	subs      []subscription[T]
	lastSubID int

	notifying bool
	pending   []func()
}

type subscription[T any] struct {
	id int
	fn func(Snapshot[T])
}

// New creates a controller showing the given root payload.
// Pass the zero Options for defaults.
func New[T any](root T, opts Options) *Controller[T] {
	c := &Controller[T]{
		root:    root,
		genID:   opts.GenerateID,
		logger:  opts.Logger,
		strict:  opts.Strict,
		onEvent: opts.OnEvent,
	}
	if c.genID == nil {
		c.genID = uuid.NewString
	}
	if c.logger == nil {
		c.logger = log.Default()
	}
	return c
}

// ======================================================================
// Navigation
// ======================================================================

// Push creates a record with a generated ID for the payload and pushes it
// onto the stack. Direction becomes Forward. The returned record is the
// caller's handle for later PopTo targeting; generated IDs never collide,
// so Push cannot be rejected.
func (c *Controller[T]) Push(payload T) Record[T] {
	rec := Record[T]{ID: c.genID(), Payload: payload}
	c.run(func() { c.applyPush(rec) })
	return rec
}

// PushWithID pushes a record under a caller-chosen ID, for stable targets
// like "settings" that other code pops back to by name.
//
// An empty or duplicate ID is rejected: the stack stays as it was, a
// diagnostic is logged (strict mode panics instead), and no snapshot is
// published. The returned record is the requested one either way; use
// Contains to observe the outcome when it matters.
func (c *Controller[T]) PushWithID(id string, payload T) Record[T] {
	rec := Record[T]{ID: id, Payload: payload}
	c.run(func() { c.applyPush(rec) })
	return rec
}

// Pop removes the top record. Direction becomes Backward even when the
// stack is already empty and there is nothing to remove - the intent was
// backward, and renderers want to know.
func (c *Controller[T]) Pop() {
	c.run(c.applyPop)
}

// PopTo removes every record above the record with the given ID, making it
// the new top in a single operation. Popping to the record already on top
// removes nothing. Direction becomes Backward.
//
// An unknown ID is rejected: the stack stays as it was, a diagnostic is
// logged (strict mode panics instead), and no snapshot is published.
func (c *Controller[T]) PopTo(id string) {
	c.run(func() { c.applyPopTo(id) })
}

// PopToRoot removes all records, returning to the root payload.
// Direction becomes Backward.
func (c *Controller[T]) PopToRoot() {
	c.run(c.applyPopToRoot)
}

// Restore replaces the stack contents wholesale with the given records,
// bottom-to-top. The records are validated first: an empty or duplicate ID
// aborts with the corresponding error and the current state stays intact.
// On success Direction becomes Forward and a snapshot is published.
// Restore(nil) clears the stack.
//
// Restore is how saved sessions come back: persist the ID sequence with a
// session store, resolve IDs to payloads on startup, and restore the
// result.
func (c *Controller[T]) Restore(recs []Record[T]) error {
	var fresh Stack[T]
	for _, rec := range recs {
		if err := fresh.Push(rec); err != nil {
			return fmt.Errorf("restore %q: %w", rec.ID, err)
		}
	}
	c.run(func() { c.applyRestore(fresh) })
	return nil
}

// SetPayload replaces the payload of the record with the given ID in place,
// reporting whether the record was found. Identity, order, depth, and
// direction are untouched and nothing is published: payload evolution is
// screen state changing, not navigation. Bindings use this to write updated
// screen models back to the record that owns them.
func (c *Controller[T]) SetPayload(id string, payload T) bool {
	return c.stack.SetPayload(id, payload) == nil
}

// ======================================================================
// Queries
// ======================================================================

// Top returns the top record, or false when the stack is empty.
func (c *Controller[T]) Top() (Record[T], bool) { return c.stack.Peek() }

// Current returns the payload a renderer should show right now: the top
// record's payload, or the root payload when the stack is empty.
func (c *Controller[T]) Current() T {
	if rec, ok := c.stack.Peek(); ok {
		return rec.Payload
	}
	return c.root
}

// Root returns the root payload passed to New.
func (c *Controller[T]) Root() T { return c.root }

// Depth returns the number of pushed records. The root is not counted:
// depth 0 means only the root is showing.
func (c *Controller[T]) Depth() int { return c.stack.Len() }

// Contains reports whether a record with the given ID is on the stack.
func (c *Controller[T]) Contains(id string) bool { return c.stack.Contains(id) }

// Find returns the record with the given ID, or false if it is not on the
// stack.
func (c *Controller[T]) Find(id string) (Record[T], bool) { return c.stack.Find(id) }

// Direction returns the direction of the most recent operation: Forward
// after a push or restore, Backward after any pop. A new controller
// reports Forward.
func (c *Controller[T]) Direction() Direction { return c.direction }

// Records returns a copy of the stack contents, bottom-to-top.
func (c *Controller[T]) Records() []Record[T] { return c.stack.Records() }

// IDs returns the record IDs bottom-to-top.
func (c *Controller[T]) IDs() []string { return c.stack.IDs() }

// Snapshot returns the current observable state. Use this for the initial
// render; Subscribe delivers the same shape after every later operation.
func (c *Controller[T]) Snapshot() Snapshot[T] {
	top, _ := c.stack.Peek()
	return Snapshot[T]{Top: top, Depth: c.stack.Len(), Direction: c.direction}
}

// State returns the non-generic view of the current state, for
// serialization and payload-agnostic consumers.
func (c *Controller[T]) State() State {
	top, _ := c.stack.Peek()
	return State{IDs: c.stack.IDs(), Top: top.ID, Depth: c.stack.Len(), Direction: c.direction}
}

// ======================================================================
// Publish / subscribe
// ======================================================================

// Subscribe registers fn to receive a snapshot after every applied
// operation and returns its cancel function. Cancelling twice is harmless.
// Subscribers run synchronously in subscription order on the controller's
// goroutine; fn must not block.
//
// fn may navigate: mutations requested during a publication are deferred
// and applied one at a time after the publication completes, never
// reentrantly, and each publishes its own snapshot. Subscribe does not
// replay the current state - read [Controller.Snapshot] when you need it.
func (c *Controller[T]) Subscribe(fn func(Snapshot[T])) (cancel func()) {
	c.lastSubID++
	id := c.lastSubID
	c.subs = append(c.subs, subscription[T]{id: id, fn: fn})
	return func() {
		c.subs = slices.DeleteFunc(c.subs, func(s subscription[T]) bool { return s.id == id })
	}
}

// run applies a mutation now, or queues it when a publication is in
// flight, so subscriber-triggered navigation lands on the next turn.
func (c *Controller[T]) run(apply func()) {
	if c.notifying {
		c.pending = append(c.pending, apply)
		return
	}
	apply()
}

func (c *Controller[T]) publish() {
	snap := c.Snapshot()
	c.notifying = true
	for _, sub := range slices.Clone(c.subs) {
		sub.fn(snap)
	}
	c.notifying = false
	for len(c.pending) > 0 {
		next := c.pending[0]
		c.pending = c.pending[1:]
		next()
	}
}

// ======================================================================
// Operation application
// ======================================================================

func (c *Controller[T]) applyPush(rec Record[T]) {
	from := c.topID()
	if err := c.stack.Push(rec); err != nil {
		c.reject(OpPush, rec.ID, err)
		return
	}
	c.direction = Forward
	c.emit(Event{Op: OpPush, ID: rec.ID, FromID: from, ToID: rec.ID})
	c.publish()
}

func (c *Controller[T]) applyPop() {
	from := c.topID()
	var popped []string
	if rec, ok := c.stack.Pop(); ok {
		popped = []string{rec.ID}
	}
	c.direction = Backward
	c.emit(Event{Op: OpPop, FromID: from, ToID: c.topID(), Popped: popped})
	c.publish()
}

func (c *Controller[T]) applyPopTo(id string) {
	from := c.topID()
	removed, err := c.stack.PopTo(id)
	if err != nil {
		c.reject(OpPopTo, id, err)
		return
	}
	c.direction = Backward
	c.emit(Event{Op: OpPopTo, ID: id, FromID: from, ToID: id, Popped: recordIDs(removed)})
	c.publish()
}

func (c *Controller[T]) applyPopToRoot() {
	from := c.topID()
	removed := c.stack.Clear()
	c.direction = Backward
	c.emit(Event{Op: OpPopToRoot, FromID: from, Popped: recordIDs(removed)})
	c.publish()
}

func (c *Controller[T]) applyRestore(fresh Stack[T]) {
	from := c.topID()
	c.stack = fresh
	c.direction = Forward
	c.emit(Event{Op: OpRestore, FromID: from, ToID: c.topID()})
	c.publish()
}

// reject handles an operation the stack refused. Default policy is
// log-and-ignore so a stray duplicate or mistyped target degrades to
// "nothing happened" instead of corrupting navigation; strict mode turns
// the same conditions into panics.
func (c *Controller[T]) reject(op Op, id string, err error) {
	if c.strict {
		panic(fmt.Sprintf("nav: %s %q: %v", op, id, err))
	}
	c.logger.Warn("navigation rejected", "op", op, "id", id, "err", err)
	top := c.topID()
	c.emit(Event{Op: op, ID: id, FromID: top, ToID: top, Err: err})
}

func (c *Controller[T]) emit(ev Event) {
	if c.onEvent == nil {
		return
	}
	ev.IDs = c.stack.IDs()
	ev.Depth = c.stack.Len()
	ev.Direction = c.direction
	c.onEvent(ev)
}

func (c *Controller[T]) topID() string {
	rec, _ := c.stack.Peek()
	return rec.ID
}

func recordIDs[T any](recs []Record[T]) []string {
	if len(recs) == 0 {
		return nil
	}
	ids := make([]string, len(recs))
	for i, r := range recs {
		ids[i] = r.ID
	}
	return ids
}

// Package nav provides a stack-based navigation controller with
// identifier-addressed records.
//
// # Overview
//
// Navstack models hierarchical navigation the way a UI means it: a root
// that is always there, plus a stack of pushed records on top of it. Each
// record binds a unique string ID to an opaque payload (a screen, a route,
// whatever the application navigates between). Because every record is
// addressable by ID, "go back to the library screen" is one operation
// instead of a counted sequence of pops.
//
// The package has two layers. [Stack] is the bare data structure: ordered
// records, unique IDs, push and three flavors of pop. [Controller] wraps
// one stack with everything an application needs around it: ID generation,
// direction tracking for transitions, snapshot publication for renderers,
// and local recovery from invalid operations.
//
// # Basic Usage
//
// Create a controller with [New], giving it the payload to show while the
// stack is empty:
//
//	ctrl := nav.New("home", nav.Options{})
//	lib := ctrl.Push("library")
//	ctrl.PushWithID("book-42", "the book")
//	ctrl.PushWithID("chapter-3", "a chapter")
//
//	ctrl.PopTo(lib.ID) // back to "library" in one step
//	ctrl.PopToRoot()   // back to "home"
//
// [Controller.Push] generates a UUID for the record; [Controller.PushWithID]
// takes a caller-chosen ID for stable targets other code pops back to by
// name. [Controller.Current] returns the payload to render: the top
// record's, or the root payload when the stack is empty.
//
// # Identifiers
//
// IDs are unique across the stack at all times. This invariant is what
// makes pop-to targeting unambiguous, and it holds before and after every
// operation: an operation that would violate it is rejected as a whole.
//
// # Failure Handling
//
// Only two things can go wrong: pushing an ID that is already on the stack
// (ErrDuplicateID) and popping to an ID that is not (ErrIDNotFound). The
// controller recovers from both locally - the operation is ignored, the
// previous state is preserved untouched, and a WARN diagnostic goes to the
// configured logger. Navigation bugs degrade to "the tap did nothing", not
// to a corrupted stack or a crash.
//
// Development builds can opt into [Options].Strict, which panics on the
// same conditions so the bug surfaces at its source.
//
// The bare [Stack] returns these errors directly for callers building
// their own policy.
//
// # Direction
//
// [Controller.Direction] reports which way the latest operation moved:
// [Forward] after pushes and restores, [Backward] after every pop.
// Renderers use it to choose a transition (slide left vs slide right).
// Direction is presentation state only - it never affects the stack.
//
// # Snapshots and Subscribers
//
// Every applied operation publishes one [Snapshot] (top record, depth,
// direction) to the functions registered with [Controller.Subscribe].
// Subscribers may themselves navigate: such mutations are deferred until
// the current publication completes and then applied one at a time, each
// publishing its own snapshot. State changes therefore never happen in the
// middle of a render pass, and no subscriber observes a half-applied
// operation.
//
// Rejected operations publish nothing - nothing changed.
//
// # Concurrency
//
// Controller and Stack are not safe for concurrent use. All mutation and
// queries must run on the goroutine that drives the UI, which is how
// terminal UI frameworks deliver events anyway. Snapshots and [State]
// values are plain data and safe to hand to other goroutines.
//
// # Related Packages
//
// The [trigger] subpackage converts level-style UI state ("this flag is
// set") into edge-triggered navigation ("fire exactly once").
//
// Package navtea binds a controller to bubbletea programs; package journal
// records controller events for inspection and flow rendering; package
// session persists the stack's ID sequence across runs.
//
// [trigger]: github.com/matzehuels/navstack/pkg/nav/trigger
package nav

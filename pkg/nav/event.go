package nav

// Op identifies a controller operation in event reporting.
type Op int

const (
	// OpPush is the push of one new record onto the stack.
	OpPush Op = iota
	// OpPop is the removal of the top record.
	OpPop
	// OpPopTo is the removal of every record above an identified target.
	OpPopTo
	// OpPopToRoot is the removal of all records.
	OpPopToRoot
	// OpRestore is the wholesale replacement of the stack contents,
	// typically from a saved session.
	OpRestore
)

// String returns the lower-case operation name.
func (o Op) String() string {
	switch o {
	case OpPush:
		return "push"
	case OpPop:
		return "pop"
	case OpPopTo:
		return "pop-to"
	case OpPopToRoot:
		return "pop-to-root"
	case OpRestore:
		return "restore"
	default:
		return "unknown"
	}
}

// Event describes one controller operation, applied or rejected. Events are
// delivered synchronously to the OnEvent function configured in [Options],
// in operation order. The journal package records them; the inspector and
// flow renderer consume them from there.
type Event struct {
	// Op is the operation kind.
	Op Op
	// ID is the operation's subject: the pushed record ID for OpPush, the
	// target ID for OpPopTo, empty for the other operations.
	ID string
	// FromID and ToID are the top record IDs before and after the
	// operation. Empty means the root was showing.
	FromID string
	ToID   string
	// Popped lists the record IDs the operation removed, in pop order.
	Popped []string
	// IDs is the stack contents bottom-to-top after the operation.
	IDs []string
	// Depth is the stack depth after the operation.
	Depth int
	// Direction is the navigation direction after the operation.
	Direction Direction
	// Err is non-nil when the operation was rejected (ErrDuplicateID,
	// ErrInvalidID, or ErrIDNotFound). Rejected operations leave stack and
	// direction unchanged.
	Err error
}

// Rejected reports whether the operation was refused and left the stack
// unchanged.
func (e Event) Rejected() bool { return e.Err != nil }

// State is a non-generic, serializable view of controller state for
// consumers that do not care about payloads: the session store persists it,
// the inspector serves it.
type State struct {
	// IDs is the stack contents bottom-to-top.
	IDs []string `json:"ids"`
	// Top is the top record ID, empty when the root is showing.
	Top string `json:"top,omitempty"`
	// Depth is the number of pushed records.
	Depth int `json:"depth"`
	// Direction is the direction of the most recent operation.
	Direction Direction `json:"direction"`
}

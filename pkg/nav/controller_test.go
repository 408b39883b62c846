package nav

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

// sequentialIDs returns a deterministic ID generator for tests.
func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("rec-%d", n)
	}
}

// quiet returns a logger that swallows diagnostics so expected rejections
// don't clutter test output.
func quiet() *log.Logger {
	return log.New(io.Discard)
}

func TestControllerStartsAtRoot(t *testing.T) {
	ctrl := New("home", Options{})

	if got := ctrl.Depth(); got != 0 {
		t.Errorf("Depth = %d, want 0", got)
	}
	if got := ctrl.Current(); got != "home" {
		t.Errorf("Current = %q, want home", got)
	}
	if got := ctrl.Direction(); got != Forward {
		t.Errorf("Direction = %v, want forward", got)
	}
	if _, ok := ctrl.Top(); ok {
		t.Error("Top on a new controller = true, want false")
	}
}

func TestControllerPushGeneratesUniqueIDs(t *testing.T) {
	ctrl := New("home", Options{})

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		rec := ctrl.Push(fmt.Sprintf("screen-%d", i))
		if rec.ID == "" {
			t.Fatal("Push generated an empty ID")
		}
		if seen[rec.ID] {
			t.Fatalf("Push generated duplicate ID %q", rec.ID)
		}
		seen[rec.ID] = true
	}

	if got := ctrl.Depth(); got != 5 {
		t.Errorf("Depth = %d, want 5", got)
	}
}

func TestControllerPushDepthAndTop(t *testing.T) {
	ctrl := New("home", Options{GenerateID: sequentialIDs()})

	for i := 1; i <= 3; i++ {
		rec := ctrl.Push(fmt.Sprintf("screen-%d", i))
		if got := ctrl.Depth(); got != i {
			t.Errorf("Depth after push %d = %d, want %d", i, got, i)
		}
		top, ok := ctrl.Top()
		if !ok || top.ID != rec.ID {
			t.Errorf("Top = %q, want %q", top.ID, rec.ID)
		}
	}
}

func TestControllerDuplicatePushIsIgnored(t *testing.T) {
	var buf bytes.Buffer
	ctrl := New("home", Options{Logger: log.New(&buf)})

	ctrl.PushWithID("settings", "first")
	ctrl.PushWithID("settings", "second")

	if got := ctrl.Depth(); got != 1 {
		t.Errorf("Depth = %d, want 1 (duplicate must not push)", got)
	}
	top, _ := ctrl.Top()
	if top.Payload != "first" {
		t.Errorf("top payload = %q, want the original record untouched", top.Payload)
	}
	if got := ctrl.Direction(); got != Forward {
		t.Errorf("Direction = %v, want forward (unchanged by rejection)", got)
	}

	out := buf.String()
	if !strings.Contains(out, "navigation rejected") {
		t.Errorf("log output %q does not mention the rejection", out)
	}
	if !strings.Contains(out, "settings") {
		t.Errorf("log output %q does not name the offending ID", out)
	}
}

func TestControllerPop(t *testing.T) {
	ctrl := New("home", Options{Logger: quiet()})
	ctrl.PushWithID("a", "A")
	ctrl.PushWithID("b", "B")

	ctrl.Pop()

	if got := ctrl.Depth(); got != 1 {
		t.Errorf("Depth = %d, want 1", got)
	}
	top, _ := ctrl.Top()
	if top.ID != "a" {
		t.Errorf("top = %q, want a", top.ID)
	}
	if got := ctrl.Direction(); got != Backward {
		t.Errorf("Direction = %v, want backward", got)
	}
}

func TestControllerPopEmptyIsIdempotent(t *testing.T) {
	ctrl := New("home", Options{Logger: quiet()})

	for i := 0; i < 3; i++ {
		ctrl.Pop()
		if got := ctrl.Depth(); got != 0 {
			t.Fatalf("Depth = %d after empty pop, want 0", got)
		}
		if got := ctrl.Current(); got != "home" {
			t.Fatalf("Current = %q after empty pop, want home", got)
		}
	}
	// The intent was still backward, even with nothing to remove.
	if got := ctrl.Direction(); got != Backward {
		t.Errorf("Direction = %v, want backward", got)
	}
}

func TestControllerPopTo(t *testing.T) {
	ctrl := New("home", Options{Logger: quiet()})
	ctrl.PushWithID("a", "A")
	ctrl.PushWithID("b", "B")
	ctrl.PushWithID("c", "C")
	ctrl.PushWithID("d", "D")

	ctrl.PopTo("b")

	if got := ctrl.IDs(); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("IDs = %v, want [a b]", got)
	}
	if got := ctrl.Direction(); got != Backward {
		t.Errorf("Direction = %v, want backward", got)
	}
}

func TestControllerPopToMissingIsIgnored(t *testing.T) {
	var buf bytes.Buffer
	ctrl := New("home", Options{Logger: log.New(&buf)})
	ctrl.PushWithID("a", "A")
	ctrl.PushWithID("b", "B")

	ctrl.PopTo("nope")

	if got := ctrl.IDs(); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("IDs = %v, want [a b] (missing target must not pop)", got)
	}
	if got := ctrl.Direction(); got != Forward {
		t.Errorf("Direction = %v, want forward (unchanged by rejection)", got)
	}
	if !strings.Contains(buf.String(), "nope") {
		t.Errorf("log output %q does not name the missing target", buf.String())
	}
}

func TestControllerPopToRoot(t *testing.T) {
	ctrl := New("home", Options{Logger: quiet()})
	ctrl.PushWithID("a", "A")
	ctrl.PushWithID("b", "B")

	ctrl.PopToRoot()

	if got := ctrl.Depth(); got != 0 {
		t.Errorf("Depth = %d, want 0", got)
	}
	if got := ctrl.Current(); got != "home" {
		t.Errorf("Current = %q, want home", got)
	}
	if got := ctrl.Direction(); got != Backward {
		t.Errorf("Direction = %v, want backward", got)
	}
}

func TestControllerDirectionTracksOperations(t *testing.T) {
	ctrl := New("home", Options{GenerateID: sequentialIDs(), Logger: quiet()})

	steps := []struct {
		name string
		op   func()
		want Direction
	}{
		{"Push", func() { ctrl.Push("a") }, Forward},
		{"Pop", func() { ctrl.Pop() }, Backward},
		{"PushAgain", func() { ctrl.Push("b") }, Forward},
		{"PushMore", func() { ctrl.Push("c") }, Forward},
		{"PopToRoot", func() { ctrl.PopToRoot() }, Backward},
		{"EmptyPop", func() { ctrl.Pop() }, Backward},
	}

	for _, step := range steps {
		step.op()
		if got := ctrl.Direction(); got != step.want {
			t.Errorf("%s: Direction = %v, want %v", step.name, got, step.want)
		}
	}
}

func TestControllerContains(t *testing.T) {
	ctrl := New("home", Options{Logger: quiet()})
	ctrl.PushWithID("a", "A")
	ctrl.PushWithID("b", "B")

	if !ctrl.Contains("a") || !ctrl.Contains("b") {
		t.Error("Contains lost a pushed record")
	}
	if ctrl.Contains("c") {
		t.Error("Contains(c) = true, want false")
	}

	ctrl.Pop()
	if ctrl.Contains("b") {
		t.Error("Contains(b) = true after popping b")
	}
}

func TestControllerSubscribe(t *testing.T) {
	ctrl := New("home", Options{Logger: quiet()})

	var tops []string
	var dirs []Direction
	cancel := ctrl.Subscribe(func(s Snapshot[string]) {
		tops = append(tops, s.Top.ID)
		dirs = append(dirs, s.Direction)
	})

	ctrl.PushWithID("a", "A")
	ctrl.PushWithID("b", "B")
	ctrl.Pop()

	if want := []string{"a", "b", "a"}; !slices.Equal(tops, want) {
		t.Errorf("snapshot tops = %v, want %v", tops, want)
	}
	if want := []Direction{Forward, Forward, Backward}; !slices.Equal(dirs, want) {
		t.Errorf("snapshot directions = %v, want %v", dirs, want)
	}

	cancel()
	cancel() // cancelling twice is harmless
	ctrl.PushWithID("c", "C")
	if len(tops) != 3 {
		t.Errorf("subscriber ran after cancel: %v", tops)
	}
}

func TestControllerRejectionPublishesNothing(t *testing.T) {
	ctrl := New("home", Options{Logger: quiet()})
	ctrl.PushWithID("a", "A")

	published := 0
	ctrl.Subscribe(func(Snapshot[string]) { published++ })

	ctrl.PushWithID("a", "dup")
	ctrl.PopTo("missing")

	if published != 0 {
		t.Errorf("rejected operations published %d snapshots, want 0", published)
	}
}

func TestControllerSubscriberNavigationIsDeferred(t *testing.T) {
	ctrl := New("home", Options{Logger: quiet()})

	var depthInside = -1
	fired := false
	ctrl.Subscribe(func(s Snapshot[string]) {
		if fired {
			return
		}
		fired = true
		ctrl.PushWithID("second", "S")
		// The push above must not have landed yet.
		depthInside = ctrl.Depth()
	})

	ctrl.PushWithID("first", "F")

	if depthInside != 1 {
		t.Errorf("depth inside subscriber = %d, want 1 (mutation must be deferred)", depthInside)
	}
	if got := ctrl.Depth(); got != 2 {
		t.Errorf("Depth = %d after publication, want 2", got)
	}
	top, _ := ctrl.Top()
	if top.ID != "second" {
		t.Errorf("top = %q, want second", top.ID)
	}
}

func TestControllerDeferredMutationsPublishInOrder(t *testing.T) {
	ctrl := New("home", Options{Logger: quiet()})

	var tops []string
	fired := false
	ctrl.Subscribe(func(s Snapshot[string]) {
		tops = append(tops, s.Top.ID)
		if !fired {
			fired = true
			ctrl.PushWithID("b", "B")
			ctrl.PushWithID("c", "C")
		}
	})

	ctrl.PushWithID("a", "A")

	// One snapshot per operation, in operation order.
	if want := []string{"a", "b", "c"}; !slices.Equal(tops, want) {
		t.Errorf("snapshot tops = %v, want %v", tops, want)
	}
}

func TestControllerStrictMode(t *testing.T) {
	tests := []struct {
		name string
		op   func(c *Controller[string])
	}{
		{
			name: "DuplicatePush",
			op: func(c *Controller[string]) {
				c.PushWithID("a", "A")
				c.PushWithID("a", "again")
			},
		},
		{
			name: "MissingPopTarget",
			op: func(c *Controller[string]) {
				c.PopTo("missing")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic in strict mode")
				}
			}()
			ctrl := New("home", Options{Strict: true, Logger: quiet()})
			tt.op(ctrl)
		})
	}
}

func TestControllerRestore(t *testing.T) {
	ctrl := New("home", Options{Logger: quiet()})
	ctrl.PushWithID("old", "O")
	ctrl.Pop() // direction is now backward

	recs := []Record[string]{
		{ID: "a", Payload: "A"},
		{ID: "b", Payload: "B"},
	}
	if err := ctrl.Restore(recs); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	if got := ctrl.IDs(); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("IDs = %v, want [a b]", got)
	}
	if got := ctrl.Direction(); got != Forward {
		t.Errorf("Direction = %v, want forward after restore", got)
	}
}

func TestControllerRestoreValidates(t *testing.T) {
	ctrl := New("home", Options{Logger: quiet()})
	ctrl.PushWithID("keep", "K")

	err := ctrl.Restore([]Record[string]{
		{ID: "x", Payload: "X"},
		{ID: "x", Payload: "dup"},
	})
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("Restore error = %v, want ErrDuplicateID", err)
	}
	if got := ctrl.IDs(); !slices.Equal(got, []string{"keep"}) {
		t.Errorf("IDs = %v, want [keep] (failed restore must not touch state)", got)
	}

	if err := ctrl.Restore(nil); err != nil {
		t.Fatalf("Restore(nil): %v", err)
	}
	if got := ctrl.Depth(); got != 0 {
		t.Errorf("Depth = %d after Restore(nil), want 0", got)
	}
}

func TestControllerSetPayload(t *testing.T) {
	ctrl := New("home", Options{Logger: quiet()})
	ctrl.PushWithID("a", "original")

	published := 0
	ctrl.Subscribe(func(Snapshot[string]) { published++ })

	if !ctrl.SetPayload("a", "evolved") {
		t.Fatal("SetPayload(a) = false, want true")
	}
	if ctrl.SetPayload("missing", "x") {
		t.Error("SetPayload(missing) = true, want false")
	}

	rec, _ := ctrl.Find("a")
	if rec.Payload != "evolved" {
		t.Errorf("payload = %q, want evolved", rec.Payload)
	}
	if published != 0 {
		t.Errorf("SetPayload published %d snapshots, want 0", published)
	}
}

func TestControllerEvents(t *testing.T) {
	var events []Event
	ctrl := New("home", Options{
		Logger:  quiet(),
		OnEvent: func(ev Event) { events = append(events, ev) },
	})

	ctrl.PushWithID("a", "A")
	ctrl.PushWithID("b", "B")
	ctrl.PushWithID("a", "dup") // rejected
	ctrl.Pop()
	ctrl.PopTo("missing") // rejected
	ctrl.PopToRoot()

	want := []struct {
		op       Op
		rejected bool
		popped   []string
		toID     string
	}{
		{OpPush, false, nil, "a"},
		{OpPush, false, nil, "b"},
		{OpPush, true, nil, "b"},
		{OpPop, false, []string{"b"}, "a"},
		{OpPopTo, true, nil, "a"},
		{OpPopToRoot, false, []string{"a"}, ""},
	}

	if len(events) != len(want) {
		t.Fatalf("got %d events, want %d", len(events), len(want))
	}
	for i, w := range want {
		ev := events[i]
		if ev.Op != w.op {
			t.Errorf("event %d op = %v, want %v", i, ev.Op, w.op)
		}
		if ev.Rejected() != w.rejected {
			t.Errorf("event %d rejected = %v, want %v", i, ev.Rejected(), w.rejected)
		}
		if !slices.Equal(ev.Popped, w.popped) {
			t.Errorf("event %d popped = %v, want %v", i, ev.Popped, w.popped)
		}
		if ev.ToID != w.toID {
			t.Errorf("event %d toID = %q, want %q", i, ev.ToID, w.toID)
		}
	}
}

func TestControllerState(t *testing.T) {
	ctrl := New("home", Options{Logger: quiet()})
	ctrl.PushWithID("a", "A")
	ctrl.PushWithID("b", "B")

	st := ctrl.State()
	if !slices.Equal(st.IDs, []string{"a", "b"}) {
		t.Errorf("State.IDs = %v, want [a b]", st.IDs)
	}
	if st.Top != "b" {
		t.Errorf("State.Top = %q, want b", st.Top)
	}
	if st.Depth != 2 {
		t.Errorf("State.Depth = %d, want 2", st.Depth)
	}
	if st.Direction != Forward {
		t.Errorf("State.Direction = %v, want forward", st.Direction)
	}
}

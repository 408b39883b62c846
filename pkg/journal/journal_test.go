package journal

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"sync"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/navstack/pkg/nav"
)

func TestJournalRecords(t *testing.T) {
	j := New(0)

	j.Record(nav.Event{Op: nav.OpPush, ID: "a", ToID: "a", IDs: []string{"a"}, Depth: 1})
	j.Record(nav.Event{Op: nav.OpPop, FromID: "a", Popped: []string{"a"}, Direction: nav.Backward})

	entries := j.Entries()
	if len(entries) != 2 {
		t.Fatalf("Len = %d, want 2", len(entries))
	}
	if entries[0].Op != "push" || entries[1].Op != "pop" {
		t.Errorf("ops = %q, %q, want push, pop", entries[0].Op, entries[1].Op)
	}
	if entries[0].Seq != 1 || entries[1].Seq != 2 {
		t.Errorf("seqs = %d, %d, want 1, 2", entries[0].Seq, entries[1].Seq)
	}
	if entries[0].At.IsZero() {
		t.Error("entry has no timestamp")
	}
	if entries[1].Direction != "backward" {
		t.Errorf("direction = %q, want backward", entries[1].Direction)
	}
}

func TestJournalCapacity(t *testing.T) {
	j := New(3)

	for i := 1; i <= 5; i++ {
		j.Record(nav.Event{Op: nav.OpPush, ID: fmt.Sprintf("r%d", i)})
	}

	entries := j.Entries()
	if len(entries) != 3 {
		t.Fatalf("Len = %d, want 3", len(entries))
	}
	// Oldest entries are dropped, sequence numbers keep counting.
	if entries[0].Seq != 3 || entries[2].Seq != 5 {
		t.Errorf("seq range = %d..%d, want 3..5", entries[0].Seq, entries[2].Seq)
	}
	if j.Seq() != 5 {
		t.Errorf("Seq = %d, want 5", j.Seq())
	}
}

func TestJournalState(t *testing.T) {
	j := New(0)

	j.Record(nav.Event{Op: nav.OpPush, ID: "a", ToID: "a", IDs: []string{"a"}, Depth: 1})
	j.Record(nav.Event{
		Op: nav.OpPush, ID: "a", FromID: "a", ToID: "a",
		IDs: []string{"a"}, Depth: 1, Err: errors.New("duplicate record ID"),
	})

	// The rejection is logged as an entry but must not disturb the state.
	if got := j.Len(); got != 2 {
		t.Fatalf("Len = %d, want 2", got)
	}
	last := j.Entries()[1]
	if !last.Rejected() {
		t.Error("rejected event lost its error")
	}

	st := j.State()
	if !slices.Equal(st.IDs, []string{"a"}) || st.Top != "a" || st.Depth != 1 {
		t.Errorf("State = %+v, want the state of the applied push", st)
	}
}

func TestJournalClear(t *testing.T) {
	j := New(0)
	j.Record(nav.Event{Op: nav.OpPush, ID: "a"})

	j.Clear()

	if j.Len() != 0 {
		t.Errorf("Len = %d after Clear, want 0", j.Len())
	}
	if j.Seq() != 1 {
		t.Errorf("Seq = %d after Clear, want 1 (sequence continues)", j.Seq())
	}

	j.Record(nav.Event{Op: nav.OpPush, ID: "b"})
	if got := j.Entries()[0].Seq; got != 2 {
		t.Errorf("next Seq = %d, want 2", got)
	}
}

func TestJournalWithController(t *testing.T) {
	j := New(0)
	ctrl := nav.New("home", nav.Options{
		Logger:  log.New(io.Discard),
		OnEvent: j.Record,
	})

	ctrl.PushWithID("a", "A")
	ctrl.PushWithID("b", "B")
	ctrl.PopTo("missing")
	ctrl.PopToRoot()

	var ops []string
	for _, e := range j.Entries() {
		ops = append(ops, e.Op)
	}
	if want := []string{"push", "push", "pop-to", "pop-to-root"}; !slices.Equal(ops, want) {
		t.Errorf("ops = %v, want %v", ops, want)
	}

	st := j.State()
	if st.Depth != 0 || st.Top != "" {
		t.Errorf("State = %+v, want empty stack", st)
	}
	if st.Direction != nav.Backward {
		t.Errorf("State.Direction = %v, want backward", st.Direction)
	}
}

func TestJournalConcurrentReads(t *testing.T) {
	j := New(64)

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			j.Record(nav.Event{Op: nav.OpPush, ID: fmt.Sprintf("r%d", i), Depth: i + 1})
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			_ = j.Entries()
			_ = j.State()
			_ = j.Seq()
		}
	}()

	wg.Wait()

	if j.Seq() != 200 {
		t.Errorf("Seq = %d, want 200", j.Seq())
	}
}

package session

import (
	"testing"
	"time"

	"github.com/matzehuels/navstack/pkg/nav"
)

func TestCapture(t *testing.T) {
	st := nav.State{
		IDs:       []string{"shelf", "book", "chapter"},
		Top:       "chapter",
		Depth:     3,
		Direction: nav.Forward,
	}

	sess := Capture("demo", st, time.Hour)

	if sess.ID != "demo" {
		t.Errorf("ID = %q, want demo", sess.ID)
	}
	if got := sess.Depth(); got != 3 {
		t.Errorf("Depth = %d, want 3", got)
	}
	if sess.Direction != nav.Forward {
		t.Errorf("Direction = %v, want forward", sess.Direction)
	}
	if sess.IsExpired() {
		t.Error("fresh session reports expired")
	}
	if got := sess.ExpiresAt.Sub(sess.SavedAt); got != time.Hour {
		t.Errorf("TTL = %v, want 1h", got)
	}

	// The captured ID slice is independent of the state's.
	st.IDs[0] = "mutated"
	if sess.IDs[0] != "shelf" {
		t.Error("Capture aliased the state's ID slice")
	}
}

func TestCaptureEmptyStack(t *testing.T) {
	sess := Capture("demo", nav.State{Direction: nav.Backward}, time.Hour)

	if got := sess.Depth(); got != 0 {
		t.Errorf("Depth = %d, want 0", got)
	}
	if sess.IDs != nil {
		t.Errorf("IDs = %v, want nil", sess.IDs)
	}
}

func TestIsExpired(t *testing.T) {
	sess := Capture("demo", nav.State{}, -time.Minute)
	if !sess.IsExpired() {
		t.Error("session with negative TTL reports live")
	}
}

func TestRecordsResolvesAll(t *testing.T) {
	sess := &Session{ID: "demo", IDs: []string{"a", "b", "c"}}

	recs := Records(sess, func(id string) (string, bool) {
		return "screen " + id, true
	})

	if len(recs) != 3 {
		t.Fatalf("records = %d, want 3", len(recs))
	}
	for i, id := range []string{"a", "b", "c"} {
		if recs[i].ID != id {
			t.Errorf("recs[%d].ID = %q, want %q", i, recs[i].ID, id)
		}
		if recs[i].Payload != "screen "+id {
			t.Errorf("recs[%d].Payload = %q", i, recs[i].Payload)
		}
	}
}

func TestRecordsStopsAtFirstUnresolved(t *testing.T) {
	sess := &Session{ID: "demo", IDs: []string{"a", "gone", "c"}}

	recs := Records(sess, func(id string) (string, bool) {
		return id, id != "gone"
	})

	// Everything stacked on an unknown destination is dropped with it.
	if len(recs) != 1 {
		t.Fatalf("records = %d, want 1", len(recs))
	}
	if recs[0].ID != "a" {
		t.Errorf("recs[0].ID = %q, want a", recs[0].ID)
	}
}

func TestRecordsNilSession(t *testing.T) {
	recs := Records[string](nil, func(id string) (string, bool) { return id, true })
	if recs != nil {
		t.Errorf("records from nil session = %v, want nil", recs)
	}
}

func TestRecordsRestoreRoundTrip(t *testing.T) {
	ctrl := nav.New("root", nav.Options{})
	ctrl.PushWithID("shelf", "shelf screen")
	ctrl.PushWithID("book", "book screen")

	sess := Capture("demo", ctrl.State(), DefaultTTL)

	restored := nav.New("root", nav.Options{})
	recs := Records(sess, func(id string) (string, bool) { return id + " screen", true })
	if err := restored.Restore(recs); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	if got := restored.Depth(); got != 2 {
		t.Errorf("Depth = %d, want 2", got)
	}
	top, _ := restored.Top()
	if top.ID != "book" {
		t.Errorf("Top = %q, want book", top.ID)
	}
}

// Package journal records navigation events for inspection and flow
// rendering.
//
// A Journal subscribes to a controller's event hook and keeps a bounded,
// oldest-first log of every operation, applied and rejected, plus the
// navigation state after the most recent applied one. Wire it up at
// construction time:
//
//	jrn := journal.New(0)
//	ctrl := nav.New(rootScreen, nav.Options{OnEvent: jrn.Record})
//
// Unlike the controller, a Journal is safe for concurrent use: the UI
// goroutine writes while inspector handlers read. This is the designed
// fan-out point for anything that wants to watch navigation from another
// goroutine.
package journal

import (
	"slices"
	"sync"
	"time"

	"github.com/matzehuels/navstack/pkg/nav"
)

// DefaultCapacity is the entry bound used when New is given a
// non-positive capacity.
const DefaultCapacity = 512

// Entry is one recorded controller operation.
// Op and Direction are stored as their string names so entries serialize
// readably for the inspector API and flow exports.
type Entry struct {
	Seq       uint64    `json:"seq"`
	At        time.Time `json:"at"`
	Op        string    `json:"op"`
	ID        string    `json:"id,omitempty"`
	From      string    `json:"from,omitempty"`
	To        string    `json:"to,omitempty"`
	Popped    []string  `json:"popped,omitempty"`
	IDs       []string  `json:"ids,omitempty"`
	Depth     int       `json:"depth"`
	Direction string    `json:"direction"`
	Error     string    `json:"error,omitempty"`
}

// Rejected reports whether the recorded operation was refused.
func (e Entry) Rejected() bool { return e.Error != "" }

// Journal is a bounded in-memory log of navigation events.
// When the bound is exceeded the oldest entries are dropped; sequence
// numbers keep counting, so gaps at the front are detectable.
type Journal struct {
	mu      sync.RWMutex
	limit   int
	entries []Entry
	seq     uint64
	state   nav.State
}

// New creates a journal retaining at most capacity entries.
// A non-positive capacity means DefaultCapacity.
func New(capacity int) *Journal {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Journal{limit: capacity}
}

// Record stores one event. Its signature matches the OnEvent hook in
// [nav.Options], so a method value is all the wiring needed.
func (j *Journal) Record(ev nav.Event) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.seq++
	entry := Entry{
		Seq:       j.seq,
		At:        time.Now(),
		Op:        ev.Op.String(),
		ID:        ev.ID,
		From:      ev.FromID,
		To:        ev.ToID,
		Popped:    slices.Clone(ev.Popped),
		IDs:       slices.Clone(ev.IDs),
		Depth:     ev.Depth,
		Direction: ev.Direction.String(),
	}
	if ev.Err != nil {
		entry.Error = ev.Err.Error()
	}

	j.entries = append(j.entries, entry)
	if len(j.entries) > j.limit {
		j.entries = slices.Delete(j.entries, 0, len(j.entries)-j.limit)
	}

	// Rejected operations change nothing, so the last applied state stands.
	if ev.Err == nil {
		j.state = nav.State{
			IDs:       slices.Clone(ev.IDs),
			Top:       ev.ToID,
			Depth:     ev.Depth,
			Direction: ev.Direction,
		}
	}
}

// Entries returns a copy of the retained entries, oldest first.
func (j *Journal) Entries() []Entry {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return slices.Clone(j.entries)
}

// Len returns the number of retained entries.
func (j *Journal) Len() int {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return len(j.entries)
}

// Seq returns the sequence number of the most recent entry, 0 when nothing
// was recorded yet. Pollers compare it against the last value they saw.
func (j *Journal) Seq() uint64 {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.seq
}

// State returns the navigation state after the most recent applied
// operation. The zero State means nothing was recorded yet.
func (j *Journal) State() nav.State {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.state
}

// Clear drops all entries and the remembered state. Sequence numbers
// continue from where they were.
func (j *Journal) Clear() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = nil
	j.state = nav.State{}
}

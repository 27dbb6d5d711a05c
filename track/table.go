// SPDX-License-Identifier: EPL-2.0

package track

import (
	"errors"
	"fmt"
)

const MaxTracks = 64

var (
	ErrTableFull   = errors.New("track: table is full")
	ErrNotFound    = errors.New("track: id not found")
)

// Table is the scene's fixed-capacity collection of tracks, keyed by a
// monotonically increasing id (spec.md §3 "Track"). It is not itself
// concurrency-safe; package scene serializes access to it.
type Table struct {
	slots  [MaxTracks]*Track
	nextID uint32
	count  int

	anySolo bool
}

func NewTable() *Table {
	return &Table{}
}

// Create allocates a free slot, assigns the next id, and names the track
// "<TypeName> <index>" where index is the post-increment track count
// (spec.md §4.4). Fails ErrTableFull when every slot is occupied.
func (tb *Table) Create(kind Type) (*Track, error) {
	slot := -1
	for i := range tb.slots {
		if tb.slots[i] == nil {
			slot = i
			break
		}
	}
	if slot < 0 {
		return nil, ErrTableFull
	}

	tb.nextID++
	tb.count++
	name := fmt.Sprintf("%s %d", kind.String(), tb.count)

	t := newTrack(tb.nextID, kind, name)
	tb.slots[slot] = t
	return t, nil
}

// Destroy removes the track with the given id, releasing its clips and
// refreshing the cached AnySolo flag. Fails ErrNotFound if id is unknown.
func (tb *Table) Destroy(id uint32) error {
	for i, t := range tb.slots {
		if t != nil && t.ID == id {
			t.releaseClips()
			tb.slots[i] = nil
			tb.count--
			tb.refreshAnySolo()
			return nil
		}
	}
	return ErrNotFound
}

// Find returns the track with the given id, or nil if not found.
func (tb *Table) Find(id uint32) *Track {
	for _, t := range tb.slots {
		if t != nil && t.ID == id {
			return t
		}
	}
	return nil
}

// Tracks returns every occupied slot, in storage order. The mixer uses
// this to iterate the scene once per callback.
func (tb *Table) Tracks() []*Track {
	out := make([]*Track, 0, tb.count)
	for _, t := range tb.slots {
		if t != nil {
			out = append(out, t)
		}
	}
	return out
}

// Count is the number of occupied slots.
func (tb *Table) Count() int {
	return tb.count
}

// AnySolo reports whether any track currently has Solo set. It is a
// cached value, refreshed by RefreshAnySolo; spec.md §3/§4.4 call for a
// derived flag so the mixer's solo-dominance check (§4.5 step "skipping
// non-soloed tracks") doesn't have to scan every track every callback.
func (tb *Table) AnySolo() bool {
	return tb.anySolo
}

// RefreshAnySolo recomputes AnySolo by scanning every track. Callers must
// invoke it after any SetSolo; Destroy refreshes the flag itself.
func (tb *Table) RefreshAnySolo() {
	tb.refreshAnySolo()
}

func (tb *Table) refreshAnySolo() {
	for _, t := range tb.slots {
		if t != nil && t.Solo {
			tb.anySolo = true
			return
		}
	}
	tb.anySolo = false
}

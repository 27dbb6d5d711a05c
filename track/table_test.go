// SPDX-License-Identifier: EPL-2.0

package track

import "testing"

func TestTable_CreateAssignsMonotonicIDs(t *testing.T) {
	t.Parallel()

	tb := NewTable()

	seen := map[uint32]bool{}
	var lastID uint32
	for i := 0; i < 10; i++ {
		tr, err := tb.Create(Audio)
		if err != nil {
			t.Fatalf("Create() #%d: unexpected err = %v", i, err)
		}
		if tr.ID <= lastID {
			t.Fatalf("Create() #%d: id %d not strictly increasing after %d", i, tr.ID, lastID)
		}
		if seen[tr.ID] {
			t.Fatalf("Create() #%d: id %d repeated", i, tr.ID)
		}
		seen[tr.ID] = true
		lastID = tr.ID
	}
}

func TestTable_CreateDefaultName(t *testing.T) {
	t.Parallel()

	tb := NewTable()
	tr1, _ := tb.Create(Audio)
	if tr1.Name != "Audio 1" {
		t.Errorf("Name = %q, want %q", tr1.Name, "Audio 1")
	}
	tr2, _ := tb.Create(Bus)
	if tr2.Name != "Bus 2" {
		t.Errorf("Name = %q, want %q", tr2.Name, "Bus 2")
	}
}

func TestTable_CreateFull(t *testing.T) {
	t.Parallel()

	tb := NewTable()
	for i := 0; i < MaxTracks; i++ {
		if _, err := tb.Create(Audio); err != nil {
			t.Fatalf("Create() #%d: unexpected err = %v", i, err)
		}
	}
	if _, err := tb.Create(Audio); err != ErrTableFull {
		t.Errorf("Create() past capacity: err = %v, want ErrTableFull", err)
	}
}

func TestTable_DestroyAndIDsNeverReused(t *testing.T) {
	t.Parallel()

	tb := NewTable()
	tr1, _ := tb.Create(Audio)
	id1 := tr1.ID

	if err := tb.Destroy(id1); err != nil {
		t.Fatalf("Destroy() unexpected err = %v", err)
	}
	if tb.Find(id1) != nil {
		t.Error("Find() found a destroyed track")
	}
	if err := tb.Destroy(id1); err != ErrNotFound {
		t.Errorf("Destroy() twice: err = %v, want ErrNotFound", err)
	}

	tr2, _ := tb.Create(Audio)
	if tr2.ID == id1 {
		t.Error("destroyed id was reused")
	}
}

func TestTable_AnySolo(t *testing.T) {
	t.Parallel()

	tb := NewTable()
	a, _ := tb.Create(Audio)
	b, _ := tb.Create(Audio)

	if tb.AnySolo() {
		t.Error("AnySolo() true before any solo set")
	}

	a.SetSolo(true)
	tb.RefreshAnySolo()
	if !tb.AnySolo() {
		t.Error("AnySolo() false after a.SetSolo(true)")
	}

	a.SetSolo(false)
	b.SetSolo(false)
	tb.RefreshAnySolo()
	if tb.AnySolo() {
		t.Error("AnySolo() true after all solos cleared")
	}
}

func TestTable_DestroyRefreshesAnySolo(t *testing.T) {
	t.Parallel()

	tb := NewTable()
	a, _ := tb.Create(Audio)
	a.SetSolo(true)
	tb.RefreshAnySolo()

	if err := tb.Destroy(a.ID); err != nil {
		t.Fatal(err)
	}
	if tb.AnySolo() {
		t.Error("AnySolo() true after the only soloed track was destroyed")
	}
}

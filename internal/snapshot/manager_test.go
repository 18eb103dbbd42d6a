package snapshot

import "testing"

type fakeGraphStats struct{ version uint64 }

func (f fakeGraphStats) Version() uint64 { return f.version }

func TestManagerCaptureAndLatest(t *testing.T) {
	store := NewInMemoryStore()
	m := NewManager(store, fakeGraphStats{version: 3}, func() int { return 2 }, func() int { return 1 }, nil)

	snap, err := m.Capture()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Version != 3 || snap.NodeCount != 2 || snap.EdgeCount != 1 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}

	latest, ok := m.Latest()
	if !ok {
		t.Fatalf("expected a latest snapshot")
	}
	if latest != snap {
		t.Fatalf("expected latest to equal captured snapshot, got %+v vs %+v", latest, snap)
	}
}

func TestManagerHistoryOrdersByVersion(t *testing.T) {
	store := NewInMemoryStore()
	versions := []uint64{5, 1, 3}
	for _, v := range versions {
		m := NewManager(store, fakeGraphStats{version: v}, func() int { return 0 }, func() int { return 0 }, nil)
		if _, err := m.Capture(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	m := NewManager(store, fakeGraphStats{}, func() int { return 0 }, func() int { return 0 }, nil)
	hist := m.History()
	if len(hist) != 3 {
		t.Fatalf("expected 3 history entries, got %d", len(hist))
	}
	for i := 1; i < len(hist); i++ {
		if hist[i-1].Version > hist[i].Version {
			t.Fatalf("expected ascending version order, got %+v", hist)
		}
	}
}

func TestManagerLatestEmptyStore(t *testing.T) {
	store := NewInMemoryStore()
	m := NewManager(store, fakeGraphStats{}, func() int { return 0 }, func() int { return 0 }, nil)
	if _, ok := m.Latest(); ok {
		t.Fatalf("expected no latest snapshot on an empty store")
	}
}

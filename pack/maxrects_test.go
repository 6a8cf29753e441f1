package pack

import (
	"strconv"
	"testing"
)

// TestMaxRectsScenarioS4 mirrors the 3x3-grid scenario: nine 3x3 items fill
// the first bin (a 9x9 corner of the 10x10 bin), the tenth and eleventh
// items can't fit the 1-unit-wide leftover strips and open a second bin.
func TestMaxRectsScenarioS4(t *testing.T) {
	m, err := NewManager(10, 10, MaxRects, BestAreaFit, false, SortNone)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	items := make([]*Item, 11)
	for i := range items {
		items[i] = NewItem(3, 3, strconv.Itoa(i))
	}
	bins, err := m.Execute(items)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(bins) != 2 {
		t.Fatalf("expected 2 bins, got %d", len(bins))
	}
	if len(bins[0].Items) != 9 {
		t.Fatalf("expected 9 items in the first bin, got %d", len(bins[0].Items))
	}
	if len(bins[1].Items) != 2 {
		t.Fatalf("expected 2 items in the second bin, got %d", len(bins[1].Items))
	}
}

func TestMaxRectsFreeRectsStayMaximal(t *testing.T) {
	e := newMaxRectsEngine(false, BestAreaFit)
	bin := NewBin(10, 10)
	e.initializeBin(bin)
	items := []*Item{NewItem(4, 4, "a"), NewItem(3, 3, "b"), NewItem(2, 2, "c")}
	for _, it := range items {
		if !e.packItem(bin, it) {
			t.Fatalf("item %s failed to pack", it.ID)
		}
	}
	st := e.state[bin.ID]
	for i, a := range st.freeRects {
		for j, b := range st.freeRects {
			if i == j {
				continue
			}
			if a.contains(b) {
				t.Fatalf("free rect %+v contains %+v, violating maximality (I5)", a, b)
			}
		}
	}
}

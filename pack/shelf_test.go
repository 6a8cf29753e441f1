package pack

import "testing"

// TestShelfScenarioS1 mirrors the four-equal-squares scenario: one bin, two
// shelves of height 5, two items per shelf.
func TestShelfScenarioS1(t *testing.T) {
	m, err := NewManager(10, 10, Shelf, FirstFit, false, SortNone)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	items := []*Item{
		NewItem(5, 5, "a"),
		NewItem(5, 5, "b"),
		NewItem(5, 5, "c"),
		NewItem(5, 5, "d"),
	}
	bins, err := m.Execute(items)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(bins) != 1 {
		t.Fatalf("expected 1 bin, got %d", len(bins))
	}
	want := map[string][2]int{"a": {0, 0}, "b": {5, 0}, "c": {0, 5}, "d": {5, 5}}
	for _, it := range bins[0].Items {
		wx, wy := want[it.ID][0], want[it.ID][1]
		if it.X != wx || it.Y != wy {
			t.Errorf("item %s placed at (%d,%d), want (%d,%d)", it.ID, it.X, it.Y, wx, wy)
		}
	}
}

// TestShelfScenarioS2 mirrors the "second item doesn't fit the remaining
// shelf height, opens a new bin" scenario.
func TestShelfScenarioS2(t *testing.T) {
	m, err := NewManager(10, 10, Shelf, FirstFit, false, SortNone)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	items := []*Item{NewItem(10, 6, "a"), NewItem(10, 5, "b")}
	bins, err := m.Execute(items)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(bins) != 2 {
		t.Fatalf("expected 2 bins, got %d", len(bins))
	}
	a := bins[0].Items[0]
	if a.X != 0 || a.Y != 0 {
		t.Errorf("a placed at (%d,%d), want (0,0)", a.X, a.Y)
	}
	b := bins[1].Items[0]
	if b.X != 0 || b.Y != 0 {
		t.Errorf("b placed at (%d,%d), want (0,0) in its own bin", b.X, b.Y)
	}
}

func TestShelfNeverShrinksHeight(t *testing.T) {
	e := newShelfEngine(false, FirstFit)
	bin := NewBin(10, 10)
	e.initializeBin(bin)
	tall := NewItem(4, 6, "tall")
	if !e.packItem(bin, tall) {
		t.Fatalf("expected tall item to pack")
	}
	short := NewItem(4, 2, "short")
	if !e.packItem(bin, short) {
		t.Fatalf("expected short item to pack onto the same shelf")
	}
	st := e.state[bin.ID]
	if st.shelves[0].height != 6 {
		t.Fatalf("shelf height changed to %d, want fixed at founding item's height 6", st.shelves[0].height)
	}
}

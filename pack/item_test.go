package pack

import "testing"

func TestItemRotateIdempotence(t *testing.T) {
	it := NewItem(4, 7, "x")
	it.rotate()
	if it.Width != 7 || it.Height != 4 || !it.Rotated {
		t.Fatalf("after one rotate: got %+v", it)
	}
	it.rotate()
	if it.Width != 4 || it.Height != 7 || it.Rotated {
		t.Fatalf("after two rotates, want restored w/h/rotated: got %+v", it)
	}
}

func TestItemArea(t *testing.T) {
	it := NewItem(3, 5, "x")
	if it.Area() != 15 {
		t.Fatalf("Area() = %d, want 15", it.Area())
	}
	it.rotate()
	if it.Area() != 15 {
		t.Fatalf("Area() after rotate = %d, want 15 (rotation doesn't change area)", it.Area())
	}
}

func TestBinRemainingArea(t *testing.T) {
	b := NewBin(10, 10)
	if b.RemainingArea() != 100 {
		t.Fatalf("RemainingArea() = %d, want 100", b.RemainingArea())
	}
	b.Items = append(b.Items, NewItem(4, 5, "a"))
	if b.RemainingArea() != 80 {
		t.Fatalf("RemainingArea() = %d, want 80", b.RemainingArea())
	}
}

func TestRectContainsIntersects(t *testing.T) {
	outer := rect{0, 0, 10, 10}
	inner := rect{2, 2, 3, 3}
	if !outer.contains(inner) {
		t.Fatalf("expected outer to contain inner")
	}
	if inner.contains(outer) {
		t.Fatalf("did not expect inner to contain outer")
	}
	disjoint := rect{20, 20, 5, 5}
	if outer.intersects(disjoint) {
		t.Fatalf("did not expect intersection with disjoint rect")
	}
	overlapping := rect{8, 8, 5, 5}
	if !outer.intersects(overlapping) {
		t.Fatalf("expected intersection with overlapping rect")
	}
}

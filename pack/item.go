// Package pack implements the 2D offline bin-packing placement engine:
// free-space bookkeeping, scoring and commit for the Shelf, Guillotine,
// MaxRects and Skyline strategies, plus the orchestration layer that sorts
// items and opens new bins on overflow.
package pack

import "github.com/google/uuid"

// Item is a single axis-aligned rectangle to place. Width and Height are the
// item's dimensions in its current orientation (rotate swaps them); X, Y and
// Rotated record where (and how) it ended up once packed. Before packing, X
// and Y are -1.
type Item struct {
	Width, Height int
	X, Y          int
	Rotated       bool
	ID            string
}

// NewItem builds an unplaced item. id is caller-supplied and opaque to the
// engine; it is never interpreted, only carried through to the packed Bin.
func NewItem(width, height int, id string) *Item {
	return &Item{Width: width, Height: height, X: -1, Y: -1, ID: id}
}

// Area returns the item's footprint, unaffected by rotation.
func (i *Item) Area() int {
	return i.Width * i.Height
}

// effectiveWidth and effectiveHeight return the item's dimensions in its
// original, pre-rotation orientation: when Rotated is set they swap back the
// Width and Height that rotate exchanged.
func (i *Item) effectiveWidth() int {
	if i.Rotated {
		return i.Height
	}
	return i.Width
}

func (i *Item) effectiveHeight() int {
	if i.Rotated {
		return i.Width
	}
	return i.Height
}

// rotate swaps the item's width and height and toggles Rotated. The engines
// call it to commit a rotated placement; scoring a rotated candidate swaps
// local copies of the dimensions instead and leaves the item untouched.
func (i *Item) rotate() {
	i.Width, i.Height = i.Height, i.Width
	i.Rotated = !i.Rotated
}

// Bin is a fixed-size container that accumulates placed items.
type Bin struct {
	Width, Height int
	ID            string
	Items         []*Item
}

// NewBin creates an empty bin with a process-unique opaque ID.
func NewBin(width, height int) *Bin {
	return &Bin{Width: width, Height: height, ID: uuid.NewString()}
}

// Area is the bin's total footprint.
func (b *Bin) Area() int {
	return b.Width * b.Height
}

// RemainingArea is the bin's area minus the area already occupied by its
// packed items (rotation does not change an item's area).
func (b *Bin) RemainingArea() int {
	used := 0
	for _, it := range b.Items {
		used += it.Area()
	}
	return b.Area() - used
}

// rect is an axis-aligned free or occupied region, shared by the Guillotine
// and MaxRects free-list bookkeeping.
type rect struct {
	X, Y, Width, Height int
}

func (r rect) area() int {
	return r.Width * r.Height
}

func (r rect) right() int  { return r.X + r.Width }
func (r rect) bottom() int { return r.Y + r.Height }

// contains reports whether r fully encloses other.
func (r rect) contains(other rect) bool {
	return other.X >= r.X && other.Y >= r.Y &&
		other.right() <= r.right() && other.bottom() <= r.bottom()
}

// intersects reports whether r and other share any positive area.
func (r rect) intersects(other rect) bool {
	return r.X < other.right() && other.X < r.right() &&
		r.Y < other.bottom() && other.Y < r.bottom()
}

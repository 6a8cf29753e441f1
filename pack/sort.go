package pack

import (
	"cmp"
	"slices"
)

// SortKey picks one of the fifteen pre-placement orderings. SortNone leaves
// the input order untouched (stable passthrough).
type SortKey int

const (
	SortNone SortKey = iota
	SortAreaAsc
	SortAreaDesc
	SortWidthAsc
	SortWidthDesc
	SortHeightAsc
	SortHeightDesc
	SortPerimeterAsc
	SortPerimeterDesc
	SortShorterSideAsc
	SortShorterSideDesc
	SortLongerSideAsc
	SortLongerSideDesc
	SortSideDiffAsc
	SortSideDiffDesc
)

func (k SortKey) valid() bool {
	return k >= SortNone && k <= SortSideDiffDesc
}

func shorterSide(i *Item) int {
	return minInt(i.Width, i.Height)
}

func longerSide(i *Item) int {
	return maxInt(i.Width, i.Height)
}

func perimeter(i *Item) int {
	return 2 * (i.Width + i.Height)
}

func sideDiff(i *Item) int {
	return abs(i.Width - i.Height)
}

// sortItems returns a stably reordered copy of items according to key,
// leaving the original slice (and the items it points at) untouched. A
// stable sort is required so that, combined with SortNone ties, packing
// stays deterministic across runs with identical input (P5).
func sortItems(items []*Item, key SortKey) []*Item {
	out := make([]*Item, len(items))
	copy(out, items)
	if key == SortNone {
		return out
	}

	var less func(a, b *Item) int
	switch key {
	case SortAreaAsc:
		less = func(a, b *Item) int { return cmp.Compare(a.Area(), b.Area()) }
	case SortAreaDesc:
		less = func(a, b *Item) int { return cmp.Compare(b.Area(), a.Area()) }
	case SortWidthAsc:
		less = func(a, b *Item) int { return cmp.Compare(a.Width, b.Width) }
	case SortWidthDesc:
		less = func(a, b *Item) int { return cmp.Compare(b.Width, a.Width) }
	case SortHeightAsc:
		less = func(a, b *Item) int { return cmp.Compare(a.Height, b.Height) }
	case SortHeightDesc:
		less = func(a, b *Item) int { return cmp.Compare(b.Height, a.Height) }
	case SortPerimeterAsc:
		less = func(a, b *Item) int { return cmp.Compare(perimeter(a), perimeter(b)) }
	case SortPerimeterDesc:
		less = func(a, b *Item) int { return cmp.Compare(perimeter(b), perimeter(a)) }
	case SortShorterSideAsc:
		less = func(a, b *Item) int { return cmp.Compare(shorterSide(a), shorterSide(b)) }
	case SortShorterSideDesc:
		less = func(a, b *Item) int { return cmp.Compare(shorterSide(b), shorterSide(a)) }
	case SortLongerSideAsc:
		less = func(a, b *Item) int { return cmp.Compare(longerSide(a), longerSide(b)) }
	case SortLongerSideDesc:
		less = func(a, b *Item) int { return cmp.Compare(longerSide(b), longerSide(a)) }
	case SortSideDiffAsc:
		less = func(a, b *Item) int { return cmp.Compare(sideDiff(a), sideDiff(b)) }
	case SortSideDiffDesc:
		less = func(a, b *Item) int { return cmp.Compare(sideDiff(b), sideDiff(a)) }
	default:
		return out
	}

	slices.SortStableFunc(out, less)
	return out
}

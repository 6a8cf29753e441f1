package pack

import (
	"math"
	"sort"
)

// segment is one contiguous run of the skyline: the current top surface of
// packed items spans [X, X+Width) at height Y above the bin floor. The full
// segment list always covers [0, bin.Width) with no gaps or overlaps (I6).
type segment struct {
	X, Y, Width int
}

type skylineState struct {
	segments []segment
}

type skylineEngine struct {
	rotation  bool
	heuristic Heuristic
	state     map[string]*skylineState
}

func newSkylineEngine(rotation bool, heuristic Heuristic) *skylineEngine {
	return &skylineEngine{rotation: rotation, heuristic: heuristic, state: make(map[string]*skylineState)}
}

func (e *skylineEngine) initializeBin(bin *Bin) {
	e.state[bin.ID] = &skylineState{segments: []segment{{0, 0, bin.Width}}}
}

func (e *skylineEngine) ensure(bin *Bin) *skylineState {
	st, ok := e.state[bin.ID]
	if !ok {
		e.initializeBin(bin)
		st = e.state[bin.ID]
	}
	return st
}

func sortSegmentsByX(segs []segment) {
	sort.Slice(segs, func(i, j int) bool { return segs[i].X < segs[j].X })
}

// checkFit tests whether an item of width itemW, height itemH fits starting
// at segment i, walking forward across however many following segments its
// width spans and tracking the highest surface (y) it would rest on.
func checkFit(segs []segment, i, itemW, itemH, binWidth, binHeight int) (ok bool, y int) {
	x := segs[i].X
	if x+itemW > binWidth {
		return false, 0
	}
	y = segs[i].Y
	remaining := itemW
	j := i
	for remaining > 0 {
		if j >= len(segs) {
			return false, 0
		}
		y = maxInt(y, segs[j].Y)
		remaining -= segs[j].Width
		j++
	}
	if y+itemH > binHeight {
		return false, 0
	}
	return true, y
}

// calcWaste measures the area that would go unused beneath the item if
// placed at (segs[i].X, y) with the given effective (post-rotation) width —
// the gap between the chosen placement height y and every underlying
// segment's own, lower surface.
func calcWaste(segs []segment, i, y, effectiveWidth int) int {
	wasted := 0
	left := segs[i].X
	right := left + effectiveWidth
	for k := i; k < len(segs); k++ {
		s := segs[k]
		if s.X >= right {
			break
		}
		segRight := s.X + s.Width
		if segRight <= left {
			continue
		}
		overlapLeft := maxInt(left, s.X)
		overlapRight := minInt(right, segRight)
		wasted += (overlapRight - overlapLeft) * (y - s.Y)
	}
	return wasted
}

// scoreSkyline always returns higher-is-better, normalising Skyline's
// waste/gap convention (distinct from the other three engines' [0,1] ratio
// convention) so the caller can always pick the maximum.
func (e *skylineEngine) scoreSkyline(bin *Bin, segs []segment, i, y, effectiveWidth, effectiveHeight int) float64 {
	switch e.heuristic {
	case NextFit, FirstFit:
		return -float64(i)
	case BestAreaFit:
		return float64(bin.RemainingArea() - calcWaste(segs, i, y, effectiveWidth))
	case WorstAreaFit:
		return float64(calcWaste(segs, i, y, effectiveWidth) - bin.RemainingArea())
	case BestWidthFit:
		return -float64(abs(segs[i].Width - effectiveWidth))
	case WorstWidthFit:
		return float64(abs(segs[i].Width - effectiveWidth))
	case BestHeightFit:
		return -float64(abs(segs[i].Y - effectiveHeight))
	case WorstHeightFit:
		return float64(abs(segs[i].Y - effectiveHeight))
	default:
		return 0
	}
}

// findBestSegment scores every segment as a candidate anchor, trying
// rotation only where the non-rotated orientation doesn't fit there.
func (e *skylineEngine) findBestSegment(bin *Bin, item *Item) (idx, y int, rotate bool, best float64, found bool) {
	st := e.ensure(bin)
	for i := range st.segments {
		if ok, py := checkFit(st.segments, i, item.Width, item.Height, bin.Width, bin.Height); ok {
			sc := e.scoreSkyline(bin, st.segments, i, py, item.Width, item.Height)
			if !found || sc > best {
				idx, y, rotate, best, found = i, py, false, sc, true
			}
			continue
		}
		if !e.rotation {
			continue
		}
		if ok, py := checkFit(st.segments, i, item.Height, item.Width, bin.Width, bin.Height); ok {
			sc := e.scoreSkyline(bin, st.segments, i, py, item.Height, item.Width)
			if !found || sc > best {
				idx, y, rotate, best, found = i, py, true, sc, true
			}
		}
	}
	return
}

func (e *skylineEngine) evaluateBin(bin *Bin, item *Item) float64 {
	if !itemFitsBin(bin, item, e.rotation) {
		return 0
	}
	_, _, _, best, found := e.findBestSegment(bin, item)
	if !found {
		return 0
	}
	// Raw Skyline scores of a fitting placement can be zero or negative;
	// map them monotonically into (0, 1) so that any fit scores above 0.
	return 0.5 + math.Atan(best)/math.Pi
}

// clipSegment removes the portion of seg covered by the placed item's span
// [itemX, itemEndX), returning the zero, one or two pieces of seg left over.
func clipSegment(seg segment, itemX, itemEndX int) []segment {
	segEnd := seg.X + seg.Width
	switch {
	case seg.X >= itemEndX || segEnd <= itemX:
		return []segment{seg}
	case seg.X >= itemX && segEnd <= itemEndX:
		return nil
	case seg.X < itemX && segEnd <= itemEndX:
		return []segment{{seg.X, seg.Y, itemX - seg.X}}
	case seg.X >= itemX && segEnd > itemEndX:
		return []segment{{itemEndX, seg.Y, segEnd - itemEndX}}
	default: // seg.X < itemX && segEnd > itemEndX
		return []segment{{seg.X, seg.Y, itemX - seg.X}, {itemEndX, seg.Y, segEnd - itemEndX}}
	}
}

func mergeSegments(segs []segment) []segment {
	if len(segs) == 0 {
		return segs
	}
	sortSegmentsByX(segs)
	merged := []segment{segs[0]}
	for _, s := range segs[1:] {
		last := &merged[len(merged)-1]
		if s.Y == last.Y && s.X == last.X+last.Width {
			last.Width += s.Width
			continue
		}
		merged = append(merged, s)
	}
	return merged
}

func (e *skylineEngine) updateSegments(bin *Bin, item *Item) {
	st := e.state[bin.ID]
	itemX, itemEndX := item.X, item.X+item.Width

	var next []segment
	for _, s := range st.segments {
		next = append(next, clipSegment(s, itemX, itemEndX)...)
	}
	// The new segment is added even when the item reaches the ceiling, so the
	// list stays gapless; nothing can be placed on a segment at bin.Height.
	next = append(next, segment{itemX, item.Y + item.Height, item.Width})
	st.segments = mergeSegments(next)
}

func (e *skylineEngine) packItem(bin *Bin, item *Item) bool {
	e.ensure(bin)
	idx, y, rotate, _, found := e.findBestSegment(bin, item)
	if !found {
		return false
	}
	st := e.state[bin.ID]
	x := st.segments[idx].X
	if rotate {
		item.rotate()
	}
	item.X, item.Y = x, y
	bin.Items = append(bin.Items, item)
	e.updateSegments(bin, item)
	return true
}

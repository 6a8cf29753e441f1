package pack

import "slices"

type maxRectsState struct {
	freeRects []rect
}

type maxRectsEngine struct {
	rotation  bool
	heuristic Heuristic
	state     map[string]*maxRectsState
}

func newMaxRectsEngine(rotation bool, heuristic Heuristic) *maxRectsEngine {
	return &maxRectsEngine{rotation: rotation, heuristic: heuristic, state: make(map[string]*maxRectsState)}
}

func (e *maxRectsEngine) initializeBin(bin *Bin) {
	e.state[bin.ID] = &maxRectsState{freeRects: []rect{{0, 0, bin.Width, bin.Height}}}
}

func (e *maxRectsEngine) ensure(bin *Bin) *maxRectsState {
	st, ok := e.state[bin.ID]
	if !ok {
		e.initializeBin(bin)
		st = e.state[bin.ID]
	}
	return st
}

func (e *maxRectsEngine) findBestRect(bin *Bin, item *Item) (idx int, rotate bool, best float64) {
	st := e.ensure(bin)
	idx = -1
	for i, r := range st.freeRects {
		fitOK, rot := fits(r.Width, r.Height, item.Width, item.Height, e.rotation)
		if !fitOK {
			continue
		}
		w, h := item.Width, item.Height
		if rot {
			w, h = h, w
		}
		sc := score(e.heuristic, r.Width, r.Height, w, h)
		if idx == -1 || sc > best {
			idx, rotate, best = i, rot, sc
		}
		if best == 1 {
			return
		}
	}
	return
}

func (e *maxRectsEngine) evaluateBin(bin *Bin, item *Item) float64 {
	if !itemFitsBin(bin, item, e.rotation) {
		return 0
	}
	_, _, best := e.findBestRect(bin, item)
	return best
}

// splitMaxRect divides a consumed free rectangle into up to two children: the
// strip to the right of the placed item, and the strip above it, each
// spanning as much of the original rectangle as the item didn't consume.
func splitMaxRect(r rect, itemW, itemH int) []rect {
	var children []rect
	if itemW < r.Width {
		children = append(children, rect{r.X + itemW, r.Y, r.Width - itemW, r.Height})
	}
	if itemH < r.Height {
		children = append(children, rect{r.X, r.Y + itemH, r.Width, r.Height - itemH})
	}
	return children
}

// clipOverlap removes the portion of r that overlaps the placed item's
// footprint (ix1,iy1)-(ix2,iy2), returning up to four slab remainders: the
// parts of r left, right, above and below the overlap.
func clipOverlap(r rect, ix1, iy1, ix2, iy2 int) []rect {
	var out []rect
	if r.X < ix1 {
		out = append(out, rect{r.X, r.Y, ix1 - r.X, r.Height})
	}
	if r.right() > ix2 {
		out = append(out, rect{ix2, r.Y, r.right() - ix2, r.Height})
	}
	if r.Y < iy1 {
		out = append(out, rect{r.X, r.Y, r.Width, iy1 - r.Y})
	}
	if r.bottom() > iy2 {
		out = append(out, rect{r.X, iy2, r.Width, r.bottom() - iy2})
	}
	return out
}

// pruneOverlaps clips every free rect that overlaps the just-placed item's
// footprint, then discards any rect that ended up fully contained in
// another — the two steps maxrects.py calls _prune_overlaps and
// _remove_redundent.
func (e *maxRectsEngine) pruneOverlaps(bin *Bin, item *Item) {
	st := e.state[bin.ID]
	ix1, iy1 := item.X, item.Y
	ix2, iy2 := item.X+item.Width, item.Y+item.Height

	var clipped []rect
	for _, r := range st.freeRects {
		if r.intersects(rect{ix1, iy1, ix2 - ix1, iy2 - iy1}) {
			clipped = append(clipped, clipOverlap(r, ix1, iy1, ix2, iy2)...)
		} else {
			clipped = append(clipped, r)
		}
	}

	keep := make([]bool, len(clipped))
	for i := range clipped {
		keep[i] = true
	}
	for i, a := range clipped {
		if !keep[i] {
			continue
		}
		for j, b := range clipped {
			if i == j || !keep[j] {
				continue
			}
			if a.contains(b) {
				keep[j] = false
			}
		}
	}
	result := clipped[:0:0]
	for i, r := range clipped {
		if keep[i] {
			result = append(result, r)
		}
	}
	st.freeRects = result
}

func (e *maxRectsEngine) packItem(bin *Bin, item *Item) bool {
	st := e.ensure(bin)
	idx, rotate, _ := e.findBestRect(bin, item)
	if idx < 0 {
		return false
	}
	chosen := st.freeRects[idx]
	if rotate {
		item.rotate()
	}
	item.X, item.Y = chosen.X, chosen.Y
	bin.Items = append(bin.Items, item)

	children := splitMaxRect(chosen, item.Width, item.Height)
	st.freeRects = slices.Delete(st.freeRects, idx, idx+1)
	st.freeRects = append(st.freeRects, children...)
	e.pruneOverlaps(bin, item)
	return true
}

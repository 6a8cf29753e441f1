package pack

import "slices"

type guillotineState struct {
	freeRects []rect
}

type guillotineEngine struct {
	rotation  bool
	heuristic Heuristic
	state     map[string]*guillotineState
}

func newGuillotineEngine(rotation bool, heuristic Heuristic) *guillotineEngine {
	return &guillotineEngine{rotation: rotation, heuristic: heuristic, state: make(map[string]*guillotineState)}
}

func (e *guillotineEngine) initializeBin(bin *Bin) {
	e.state[bin.ID] = &guillotineState{freeRects: []rect{{0, 0, bin.Width, bin.Height}}}
}

func (e *guillotineEngine) ensure(bin *Bin) *guillotineState {
	st, ok := e.state[bin.ID]
	if !ok {
		e.initializeBin(bin)
		st = e.state[bin.ID]
	}
	return st
}

func (e *guillotineEngine) findBestRect(bin *Bin, item *Item) (idx int, rotate bool, best float64) {
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

func (e *guillotineEngine) evaluateBin(bin *Bin, item *Item) float64 {
	if !itemFitsBin(bin, item, e.rotation) {
		return 0
	}
	_, _, best := e.findBestRect(bin, item)
	return best
}

// splitFreeRect divides the consumed free rectangle into up to two
// children by a horizontal split (bottom strip to the right of the placed
// item, full-width strip above it) — the default axis per the original
// guillotine implementation.
func splitFreeRect(r rect, itemW, itemH int) []rect {
	var children []rect
	if right := rect{r.X + itemW, r.Y, r.Width - itemW, itemH}; right.Width > 0 && right.Height > 0 {
		children = append(children, right)
	}
	if top := (rect{r.X, r.Y + itemH, r.Width, r.Height - itemH}); top.Width > 0 && top.Height > 0 {
		children = append(children, top)
	}
	return children
}

// mergeFreeList coalesces any pair of free rects that together form a
// larger rectangle, keeping the free list from growing unboundedly with
// slivers that splitFreeRect's straight cuts otherwise leave behind.
func mergeFreeList(rects []rect) []rect {
	merged := true
	for merged {
		merged = false
		for i := 0; i < len(rects); i++ {
			for j := i + 1; j < len(rects); j++ {
				a, b := rects[i], rects[j]
				if a.Y == b.Y && a.Height == b.Height && (a.right() == b.X || b.right() == a.X) {
					x := minInt(a.X, b.X)
					rects[i] = rect{x, a.Y, a.Width + b.Width, a.Height}
					rects = slices.Delete(rects, j, j+1)
					merged = true
					break
				}
				if a.X == b.X && a.Width == b.Width && (a.bottom() == b.Y || b.bottom() == a.Y) {
					y := minInt(a.Y, b.Y)
					rects[i] = rect{a.X, y, a.Width, a.Height + b.Height}
					rects = slices.Delete(rects, j, j+1)
					merged = true
					break
				}
			}
			if merged {
				break
			}
		}
	}
	return rects
}

func (e *guillotineEngine) packItem(bin *Bin, item *Item) bool {
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

	st.freeRects = slices.Delete(st.freeRects, idx, idx+1)
	st.freeRects = append(st.freeRects, splitFreeRect(chosen, item.Width, item.Height)...)
	st.freeRects = mergeFreeList(st.freeRects)
	return true
}

package pack

// shelfRegion is one horizontal strip spanning the full bin width, holding
// items of uniform height (fixed to the height of the first item placed on
// it). Its availableWidth shrinks left-to-right as items are appended.
type shelfRegion struct {
	height, availableWidth, yOffset int
}

type shelfState struct {
	shelves         []*shelfRegion
	availableHeight int
}

type shelfEngine struct {
	rotation  bool
	heuristic Heuristic
	state     map[string]*shelfState
}

func newShelfEngine(rotation bool, heuristic Heuristic) *shelfEngine {
	return &shelfEngine{rotation: rotation, heuristic: heuristic, state: make(map[string]*shelfState)}
}

func (e *shelfEngine) initializeBin(bin *Bin) {
	e.state[bin.ID] = &shelfState{availableHeight: bin.Height}
}

func (e *shelfEngine) ensure(bin *Bin) *shelfState {
	st, ok := e.state[bin.ID]
	if !ok {
		e.initializeBin(bin)
		st = e.state[bin.ID]
	}
	return st
}

// scoreShelf scores item against an existing shelf, trying rotation only if
// the non-rotated orientation does not fit.
func (e *shelfEngine) scoreShelf(bin *Bin, shelf *shelfRegion, item *Item) (s float64, rotate bool, ok bool) {
	fitOK, rotate := fits(shelf.availableWidth, shelf.height, item.Width, item.Height, e.rotation)
	if !fitOK {
		return 0, false, false
	}
	w, h := item.Width, item.Height
	if rotate {
		w, h = h, w
	}
	return score(e.heuristic, shelf.availableWidth, shelf.height, w, h), rotate, true
}

// createShelf opens a brand new shelf sized to item's height in its current
// orientation, or returns nil if the item is wider than the bin or taller
// than the bin's remaining height.
func (e *shelfEngine) createShelf(bin *Bin, item *Item) *shelfRegion {
	st := e.ensure(bin)
	if item.Width > bin.Width || item.Height > st.availableHeight {
		return nil
	}
	s := &shelfRegion{
		height:         item.Height,
		availableWidth: bin.Width,
		yOffset:        bin.Height - st.availableHeight,
	}
	st.shelves = append(st.shelves, s)
	st.availableHeight -= s.height
	return s
}

// findBestShelf walks existing shelves for the best-scoring fit, creating a
// new shelf only when none of the existing ones can take the item. The
// founding item of a new shelf is rotated only if it cannot found one as is.
func (e *shelfEngine) findBestShelf(bin *Bin, item *Item) (*shelfRegion, bool) {
	st := e.ensure(bin)
	var best *shelfRegion
	var bestScore float64
	var bestRotate bool
	for _, s := range st.shelves {
		sc, rotate, ok := e.scoreShelf(bin, s, item)
		if !ok {
			continue
		}
		if best == nil || sc > bestScore {
			best, bestScore, bestRotate = s, sc, rotate
		}
		if bestScore == 1 {
			return best, bestRotate
		}
	}
	if best != nil {
		return best, bestRotate
	}
	if s := e.createShelf(bin, item); s != nil || !e.rotation {
		return s, false
	}
	item.rotate()
	s := e.createShelf(bin, item)
	item.rotate()
	return s, s != nil
}

func (e *shelfEngine) evaluateBin(bin *Bin, item *Item) float64 {
	if !itemFitsBin(bin, item, e.rotation) {
		return 0
	}
	st := e.ensure(bin)
	best := 0.0
	for _, s := range st.shelves {
		sc, _, ok := e.scoreShelf(bin, s, item)
		if ok && sc > best {
			best = sc
		}
		if best == 1 {
			return best
		}
	}
	if best > 0 {
		return best
	}
	// No existing shelf fits; score the hypothetical shelf a new one would
	// become, so an otherwise-empty (or full-up) bin isn't unfairly scored
	// at 0 when it could still take the item on a fresh shelf.
	if item.Height <= st.availableHeight {
		hypothetical := &shelfRegion{
			height:         item.Height,
			availableWidth: bin.Width,
			yOffset:        bin.Height - st.availableHeight,
		}
		sc, _, ok := e.scoreShelf(bin, hypothetical, item)
		if ok {
			best = sc
		}
	}
	return best
}

func (e *shelfEngine) packItem(bin *Bin, item *Item) bool {
	e.ensure(bin)
	shelf, rotate := e.findBestShelf(bin, item)
	if shelf == nil {
		return false
	}
	if rotate {
		item.rotate()
	}
	if item.Width > shelf.availableWidth || item.Height > shelf.height {
		return false
	}
	item.X = bin.Width - shelf.availableWidth
	item.Y = shelf.yOffset
	shelf.availableWidth -= item.Width
	bin.Items = append(bin.Items, item)
	return true
}

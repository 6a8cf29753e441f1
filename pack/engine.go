package pack

// Algorithm selects which strategy engine a Manager drives.
type Algorithm int

const (
	Shelf Algorithm = iota
	Skyline
	Guillotine
	MaxRects
)

func (a Algorithm) String() string {
	switch a {
	case Shelf:
		return "shelf"
	case Skyline:
		return "skyline"
	case Guillotine:
		return "guillotine"
	case MaxRects:
		return "maxrects"
	default:
		return "unknown"
	}
}

func (a Algorithm) valid() bool {
	return a >= Shelf && a <= MaxRects
}

// engine is the contract every strategy (Shelf, Guillotine, MaxRects,
// Skyline) implements. State for a given bin is created lazily on first use
// and keyed by Bin.ID; it is never evicted for the lifetime of a Manager.
type engine interface {
	// initializeBin sets up fresh free-space bookkeeping for an empty bin.
	initializeBin(bin *Bin)
	// evaluateBin scores how well item would fit into bin without placing
	// it. A score of 0 means "does not fit". If initializeBin was never
	// called for bin, its bookkeeping is created on the spot and the bin is
	// treated as empty.
	evaluateBin(bin *Bin, item *Item) float64
	// packItem commits item into bin, mutating the item's X/Y/Rotated
	// fields and the engine's free-space bookkeeping for bin. Returns false
	// if the item, against evaluateBin's own judgement, does not fit.
	packItem(bin *Bin, item *Item) bool
}

// itemFitsBin is the coarse, strategy-independent guard every evaluateBin
// implementation runs first: an item that does not fit the bin's full
// extents (in either orientation, if rotation is allowed) can never be
// packed into it by any strategy.
func itemFitsBin(bin *Bin, item *Item, rotationAllowed bool) bool {
	ok, _ := fits(bin.Width, bin.Height, item.Width, item.Height, rotationAllowed)
	return ok
}

func newEngine(algo Algorithm, rotation bool, heuristic Heuristic) engine {
	switch algo {
	case Shelf:
		return newShelfEngine(rotation, heuristic)
	case Skyline:
		return newSkylineEngine(rotation, heuristic)
	case Guillotine:
		return newGuillotineEngine(rotation, heuristic)
	case MaxRects:
		return newMaxRectsEngine(rotation, heuristic)
	default:
		return nil
	}
}

package pack

import "fmt"

// Manager owns one strategy engine and drives the sort → scan-bins →
// evaluate → pack → open-new-bin-on-overflow loop. A Manager is not safe for
// concurrent Execute calls; each packing session should own its own Manager.
type Manager struct {
	binWidth, binHeight int
	heuristic           Heuristic
	rotation            bool
	sortKey             SortKey
	engine              engine
	bins                []*Bin
}

// NewManager validates its configuration and builds a Manager ready to pack
// bins of size binW x binH using algorithm/heuristic/rotation/sortKey.
func NewManager(binW, binH int, algorithm Algorithm, heuristic Heuristic, rotation bool, sortKey SortKey) (*Manager, error) {
	if binW <= 0 || binH <= 0 {
		return nil, fmt.Errorf("%w: bin dimensions must be positive, got %dx%d", ErrInvalidConfig, binW, binH)
	}
	if !algorithm.valid() {
		return nil, fmt.Errorf("%w: unknown algorithm %d", ErrInvalidConfig, algorithm)
	}
	if !heuristic.valid() {
		return nil, fmt.Errorf("%w: unknown heuristic %d", ErrInvalidConfig, heuristic)
	}
	if !sortKey.valid() {
		return nil, fmt.Errorf("%w: unknown sort key %d", ErrInvalidConfig, sortKey)
	}
	return &Manager{
		binWidth:  binW,
		binHeight: binH,
		heuristic: heuristic,
		rotation:  rotation,
		sortKey:   sortKey,
		engine:    newEngine(algorithm, rotation, heuristic),
	}, nil
}

// findBestBin scans all open bins and returns the one with the highest
// positive score for item, short-circuiting the first time a bin scores
// exactly 1 (a perfect fit by the engine's own convention).
func (m *Manager) findBestBin(item *Item) *Bin {
	var best *Bin
	bestScore := 0.0
	for _, b := range m.bins {
		s := m.engine.evaluateBin(b, item)
		if s > bestScore {
			best, bestScore = b, s
			if bestScore == 1 {
				return best
			}
		}
	}
	return best
}

// Execute sorts items per the Manager's configured SortKey and packs each
// one in turn: find the best open bin, or open a new one if none fit.
// Items are mutated in place to record their placement. If an item cannot
// fit a freshly opened bin either, Execute stops and returns the bins
// packed so far along with an *UnpackableItemError naming the item.
func (m *Manager) Execute(items []*Item) ([]*Bin, error) {
	sorted := sortItems(items, m.sortKey)
	for _, item := range sorted {
		bin := m.findBestBin(item)
		if bin == nil {
			bin = NewBin(m.binWidth, m.binHeight)
			m.engine.initializeBin(bin)
			m.bins = append(m.bins, bin)
		}
		if !m.engine.packItem(bin, item) {
			return m.bins, &UnpackableItemError{Item: item}
		}
	}
	return m.bins, nil
}

// Bins returns the bins opened so far, in the order they were created.
func (m *Manager) Bins() []*Bin {
	return m.bins
}

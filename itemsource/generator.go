// Package itemsource supplies items to the packing engine from outside the
// core: random generation and CSV round-tripping. It never touches a Bin or
// Manager directly — it only produces and consumes *pack.Item values.
package itemsource

import (
	"math/rand"
	"strconv"

	"binpack/pack"
)

// Generator produces random items sized to fit a bin of (binW, binH),
// drawing width from [minW, min(maxW, binW)] and height from
// [minH, min(maxH, binH)], matching item_generator.py's ItemGenerator.
type Generator struct {
	BinWidth, BinHeight  int
	MinWidth, MaxWidth   int
	MinHeight, MaxHeight int
	rng                  *rand.Rand
}

// NewGenerator builds a Generator seeded explicitly so results are
// reproducible — it never reaches for the global math/rand source.
func NewGenerator(binW, binH, minW, maxW, minH, maxH int, seed int64) *Generator {
	return &Generator{
		BinWidth: binW, BinHeight: binH,
		MinWidth: minW, MaxWidth: maxW,
		MinHeight: minH, MaxHeight: maxH,
		rng: rand.New(rand.NewSource(seed)),
	}
}

func (g *Generator) widthBound() int {
	if g.MaxWidth < g.BinWidth {
		return g.MaxWidth
	}
	return g.BinWidth
}

func (g *Generator) heightBound() int {
	if g.MaxHeight < g.BinHeight {
		return g.MaxHeight
	}
	return g.BinHeight
}

// Generate produces count items named "item-0", "item-1", ... in order.
func (g *Generator) Generate(count int) []*pack.Item {
	items := make([]*pack.Item, count)
	wSpan := g.widthBound() - g.MinWidth + 1
	hSpan := g.heightBound() - g.MinHeight + 1
	for i := 0; i < count; i++ {
		w := g.MinWidth
		if wSpan > 0 {
			w += g.rng.Intn(wSpan)
		}
		h := g.MinHeight
		if hSpan > 0 {
			h += g.rng.Intn(hSpan)
		}
		items[i] = pack.NewItem(w, h, "item-"+strconv.Itoa(i))
	}
	return items
}

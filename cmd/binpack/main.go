// Command binpack drives the placement engine end to end: generate or load
// items, pack them with a chosen algorithm/heuristic/sort key, print a
// summary, and optionally render the result to PNG. Flag-based, not an
// interactive menu loop.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"binpack/itemsource"
	"binpack/pack"
	"binpack/render"
)

type options struct {
	binWidth, binHeight int
	algorithm           string
	heuristic           string
	sortKey             string
	rotation            bool

	itemCount        int
	minSize, maxSize int
	seed             int64

	csvIn, csvOut string
	renderDir     string
}

func parseFlags() options {
	var o options
	flag.IntVar(&o.binWidth, "bin-width", 100, "bin width")
	flag.IntVar(&o.binHeight, "bin-height", 100, "bin height")
	flag.StringVar(&o.algorithm, "algorithm", "guillotine", "shelf|skyline|guillotine|maxrects")
	flag.StringVar(&o.heuristic, "heuristic", "best_area_fit", "next_fit|first_fit|best_area_fit|worst_area_fit|best_width_fit|worst_width_fit|best_height_fit|worst_height_fit")
	flag.StringVar(&o.sortKey, "sort", "area_desc", "sort key, e.g. none|area_asc|area_desc|width_asc|...")
	flag.BoolVar(&o.rotation, "rotate", true, "allow 90 degree rotation")
	flag.IntVar(&o.itemCount, "count", 50, "number of random items to generate (ignored if -csv-in is set)")
	flag.IntVar(&o.minSize, "min-size", 5, "minimum generated item side")
	flag.IntVar(&o.maxSize, "max-size", 40, "maximum generated item side")
	flag.Int64Var(&o.seed, "seed", 1, "random seed for item generation")
	flag.StringVar(&o.csvIn, "csv-in", "", "load items from this CSV instead of generating them")
	flag.StringVar(&o.csvOut, "csv-out", "", "save the generated/loaded items to this CSV")
	flag.StringVar(&o.renderDir, "render-dir", "", "if set, write one PNG per bin to this directory")
	flag.Parse()
	return o
}

func parseAlgorithm(s string) (pack.Algorithm, error) {
	switch s {
	case "shelf":
		return pack.Shelf, nil
	case "skyline":
		return pack.Skyline, nil
	case "guillotine":
		return pack.Guillotine, nil
	case "maxrects":
		return pack.MaxRects, nil
	default:
		return 0, fmt.Errorf("%w: unknown algorithm %q", pack.ErrInvalidConfig, s)
	}
}

func parseHeuristic(s string) (pack.Heuristic, error) {
	switch s {
	case "next_fit":
		return pack.NextFit, nil
	case "first_fit":
		return pack.FirstFit, nil
	case "best_area_fit":
		return pack.BestAreaFit, nil
	case "worst_area_fit":
		return pack.WorstAreaFit, nil
	case "best_width_fit":
		return pack.BestWidthFit, nil
	case "worst_width_fit":
		return pack.WorstWidthFit, nil
	case "best_height_fit":
		return pack.BestHeightFit, nil
	case "worst_height_fit":
		return pack.WorstHeightFit, nil
	default:
		return 0, fmt.Errorf("%w: unknown heuristic %q", pack.ErrInvalidConfig, s)
	}
}

func parseSortKey(s string) (pack.SortKey, error) {
	switch s {
	case "none":
		return pack.SortNone, nil
	case "area_asc":
		return pack.SortAreaAsc, nil
	case "area_desc":
		return pack.SortAreaDesc, nil
	case "width_asc":
		return pack.SortWidthAsc, nil
	case "width_desc":
		return pack.SortWidthDesc, nil
	case "height_asc":
		return pack.SortHeightAsc, nil
	case "height_desc":
		return pack.SortHeightDesc, nil
	case "perimeter_asc":
		return pack.SortPerimeterAsc, nil
	case "perimeter_desc":
		return pack.SortPerimeterDesc, nil
	case "shorter_side_asc":
		return pack.SortShorterSideAsc, nil
	case "shorter_side_desc":
		return pack.SortShorterSideDesc, nil
	case "longer_side_asc":
		return pack.SortLongerSideAsc, nil
	case "longer_side_desc":
		return pack.SortLongerSideDesc, nil
	case "side_diff_asc":
		return pack.SortSideDiffAsc, nil
	case "side_diff_desc":
		return pack.SortSideDiffDesc, nil
	default:
		return 0, fmt.Errorf("%w: unknown sort key %q", pack.ErrInvalidConfig, s)
	}
}

func loadItems(o options) ([]*pack.Item, error) {
	if o.csvIn != "" {
		items, err := itemsource.LoadCSV(o.csvIn, o.binWidth, o.binHeight)
		if err != nil {
			return nil, err
		}
		fmt.Printf("loaded %d items from %s\n", len(items), o.csvIn)
		return items, nil
	}
	gen := itemsource.NewGenerator(o.binWidth, o.binHeight, o.minSize, o.maxSize, o.minSize, o.maxSize, o.seed)
	items := gen.Generate(o.itemCount)
	fmt.Printf("generated %d random items (seed %d)\n", len(items), o.seed)
	return items, nil
}

func run(o options) error {
	algorithm, err := parseAlgorithm(o.algorithm)
	if err != nil {
		return err
	}
	heuristic, err := parseHeuristic(o.heuristic)
	if err != nil {
		return err
	}
	sortKey, err := parseSortKey(o.sortKey)
	if err != nil {
		return err
	}

	items, err := loadItems(o)
	if err != nil {
		return err
	}
	if o.csvOut != "" {
		if err := itemsource.SaveCSV(o.csvOut, items); err != nil {
			return err
		}
		fmt.Printf("saved %d items to %s\n", len(items), o.csvOut)
	}

	manager, err := pack.NewManager(o.binWidth, o.binHeight, algorithm, heuristic, o.rotation, sortKey)
	if err != nil {
		return err
	}

	start := time.Now()
	bins, err := manager.Execute(items)
	elapsed := time.Since(start)

	var unpackable *pack.UnpackableItemError
	if errors.As(err, &unpackable) {
		fmt.Printf("item %s could not be packed into any bin (%dx%d)\n",
			unpackable.Item.ID, unpackable.Item.Width, unpackable.Item.Height)
		return err
	}
	if err != nil {
		return err
	}

	fmt.Printf("packed %d items into %d bins using %s/%s (rotation=%v) in %s\n",
		len(items), len(bins), algorithm, heuristic, o.rotation, elapsed)
	for i, b := range bins {
		fmt.Printf("  bin %d: %d items, %.1f%% full\n", i, len(b.Items),
			100*float64(b.Area()-b.RemainingArea())/float64(b.Area()))
	}

	if o.renderDir != "" {
		if err := render.RenderBins(bins, o.renderDir); err != nil {
			return err
		}
		fmt.Printf("wrote %d bin PNGs to %s\n", len(bins), o.renderDir)
	}
	return nil
}

func main() {
	o := parseFlags()
	if err := run(o); err != nil {
		fmt.Fprintln(os.Stderr, "binpack:", err)
		os.Exit(1)
	}
}

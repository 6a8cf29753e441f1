package itemsource

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/maruel/natural"

	"binpack/pack"
)

// SaveCSV writes items as "width,height" rows, matching item_generator.py's
// save_items — no header, one row per item, original ids are not persisted
// (only geometry round-trips through CSV).
func SaveCSV(path string, items []*pack.Item) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("itemsource: create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	for _, it := range items {
		if it.Width <= 0 || it.Height <= 0 {
			continue
		}
		row := []string{strconv.Itoa(it.Width), strconv.Itoa(it.Height)}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("itemsource: write row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

// LoadCSV reads "width,height" rows and builds items named by their row
// index. Rows with non-positive dimensions, or dimensions exceeding the
// given bin size, are silently skipped — the same rule item_generator.py's
// load_items applies.
func LoadCSV(path string, binW, binH int) ([]*pack.Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("itemsource: open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 2

	var items []*pack.Item
	row := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("itemsource: parse %s: %w", path, err)
		}
		w, errW := strconv.Atoi(record[0])
		h, errH := strconv.Atoi(record[1])
		if errW != nil || errH != nil {
			return nil, fmt.Errorf("itemsource: row %d is not two integers: %q", row, record)
		}
		if w <= 0 || h <= 0 || w > binW || h > binH {
			row++
			continue
		}
		items = append(items, pack.NewItem(w, h, fmt.Sprintf("row-%d", row)))
		row++
	}
	return items, nil
}

// DiscoverBatches lists every *.csv file in dir, ordered with natural sort
// so "batch_2.csv" sorts before "batch_10.csv" — the same convention the
// teacher applies when discovering sprite images on disk.
func DiscoverBatches(dir string) ([]string, error) {
	pattern := filepath.Join(dir, "*.csv")
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("itemsource: glob %s: %w", pattern, err)
	}
	sort.Sort(natural.StringSlice(paths))
	return paths, nil
}

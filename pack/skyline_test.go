package pack

import "testing"

func TestSkylineSegmentsCoverBinWidth(t *testing.T) {
	e := newSkylineEngine(false, BestAreaFit)
	bin := NewBin(10, 10)
	e.initializeBin(bin)
	items := []*Item{NewItem(4, 4, "a"), NewItem(3, 3, "b"), NewItem(6, 2, "c")}
	for _, it := range items {
		e.packItem(bin, it)
	}
	st := e.state[bin.ID]
	segs := st.segments
	if len(segs) == 0 {
		t.Fatalf("expected at least one segment")
	}
	if segs[0].X != 0 {
		t.Fatalf("segments must start at x=0, got %d", segs[0].X)
	}
	total := 0
	for i, s := range segs {
		if s.Width <= 0 {
			t.Fatalf("segment %d has non-positive width", i)
		}
		if i > 0 && segs[i-1].X+segs[i-1].Width != s.X {
			t.Fatalf("segments are not contiguous: segment %d ends at %d, segment %d starts at %d",
				i-1, segs[i-1].X+segs[i-1].Width, i, s.X)
		}
		total += s.Width
	}
	if total != bin.Width {
		t.Fatalf("segments cover width %d, want %d (I6)", total, bin.Width)
	}
}

func TestSkylineMergesAdjacentEqualHeightSegments(t *testing.T) {
	segs := []segment{{0, 5, 3}, {3, 5, 2}, {5, 0, 5}}
	merged := mergeSegments(segs)
	if len(merged) != 2 {
		t.Fatalf("expected adjacent same-height segments to merge into one: got %+v", merged)
	}
	if merged[0].Width != 5 {
		t.Fatalf("merged segment width = %d, want 5", merged[0].Width)
	}
}

func TestClipSegmentFullyCovered(t *testing.T) {
	out := clipSegment(segment{2, 0, 3}, 0, 10)
	if out != nil {
		t.Fatalf("segment fully under item should be removed entirely, got %+v", out)
	}
}

func TestClipSegmentPartialOverlapBothSides(t *testing.T) {
	out := clipSegment(segment{0, 0, 10}, 3, 7)
	if len(out) != 2 {
		t.Fatalf("expected two remainders, got %+v", out)
	}
	if out[0].X != 0 || out[0].Width != 3 || out[1].X != 7 || out[1].Width != 3 {
		t.Fatalf("unexpected clip result: %+v", out)
	}
}

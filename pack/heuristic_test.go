package pack

import "testing"

func TestFitsNoRotation(t *testing.T) {
	ok, rotate := fits(10, 10, 4, 6, false)
	if !ok || rotate {
		t.Fatalf("fits(10,10,4,6,false) = (%v,%v), want (true,false)", ok, rotate)
	}
	ok, _ = fits(10, 10, 11, 1, false)
	if ok {
		t.Fatalf("expected item wider than region to not fit")
	}
}

func TestFitsPrefersNonRotated(t *testing.T) {
	// Fits both ways (square region, square-ish item): must report non-rotated.
	ok, rotate := fits(5, 5, 5, 5, true)
	if !ok || rotate {
		t.Fatalf("fits(5,5,5,5,true) = (%v,%v), want (true,false): rotation only applies when non-rotated fails", ok, rotate)
	}
}

func TestFitsFallsBackToRotation(t *testing.T) {
	ok, rotate := fits(4, 10, 10, 4, true)
	if !ok || !rotate {
		t.Fatalf("fits(4,10,10,4,true) = (%v,%v), want (true,true)", ok, rotate)
	}
	ok, _ = fits(4, 10, 10, 4, false)
	if ok {
		t.Fatalf("expected no fit without rotation allowed")
	}
}

func TestScoreNextFirstFitAlwaysOne(t *testing.T) {
	if score(NextFit, 10, 10, 3, 3) != 1 {
		t.Fatalf("next_fit score must always be 1")
	}
	if score(FirstFit, 10, 10, 9, 9) != 1 {
		t.Fatalf("first_fit score must always be 1")
	}
}

func TestScoreAreaFitComplementary(t *testing.T) {
	best := score(BestAreaFit, 10, 10, 5, 5)
	worst := score(WorstAreaFit, 10, 10, 5, 5)
	if sum := best + worst; sum < 0.999 || sum > 1.001 {
		t.Fatalf("best_area_fit + worst_area_fit = %v, want ~1", sum)
	}
	// Exact fit scores 1 under best_area_fit.
	if got := score(BestAreaFit, 10, 10, 10, 10); got < 0.999 {
		t.Fatalf("perfect area fit scored %v, want ~1", got)
	}
}

func TestScoreWidthHeightFitComplementary(t *testing.T) {
	if sum := score(BestWidthFit, 10, 10, 4, 4) + score(WorstWidthFit, 10, 10, 4, 4); sum < 0.999 || sum > 1.001 {
		t.Fatalf("best/worst width fit should sum to ~1")
	}
	if sum := score(BestHeightFit, 10, 10, 4, 4) + score(WorstHeightFit, 10, 10, 4, 4); sum < 0.999 || sum > 1.001 {
		t.Fatalf("best/worst height fit should sum to ~1")
	}
}

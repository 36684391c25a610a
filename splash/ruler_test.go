package splash

import "testing"

func TestClampOrdered(t *testing.T) {
	if got := clampOrdered(5, 0, 10); got != 5 {
		t.Errorf("clampOrdered(5,0,10) = %d, want 5", got)
	}
	if got := clampOrdered(-1, 0, 10); got != 0 {
		t.Errorf("clampOrdered(-1,0,10) = %d, want 0", got)
	}
	if got := clampOrdered(11, 0, 10); got != 10 {
		t.Errorf("clampOrdered(11,0,10) = %d, want 10", got)
	}
}

func TestExpandRangeStopsAtExactNeighbor(t *testing.T) {
	ruler := []uint32{5, 5, 0, 5, 5}
	lo, hi := expandRange(ruler, 3, 3)
	// Index 2 is exact (zero); expansion from pivot 3 must not cross it.
	if lo != 3 {
		t.Errorf("lo = %d, want 3 (must stop at exact neighbor index 2)", lo)
	}
	if hi != 4 {
		t.Errorf("hi = %d, want 4 (canvas edge)", hi)
	}
}

func TestExpandRangeStopsAtRadius(t *testing.T) {
	ruler := []uint32{5, 5, 5, 5, 5, 5, 5}
	lo, hi := expandRange(ruler, 3, 2)
	if lo != 1 || hi != 5 {
		t.Errorf("lo,hi = %d,%d, want 1,5 (radius-bounded)", lo, hi)
	}
}

func TestRebalanceZeroesPivot(t *testing.T) {
	ruler := []uint32{10, 10, 10, 10, 10}
	rebalance(ruler, 2, 0, 4, 2)
	if ruler[2] != 0 {
		t.Errorf("pivot entry = %d, want 0", ruler[2])
	}
}

func TestRebalanceForceToOneOnlyWhenBecameZero(t *testing.T) {
	// Entry at index 0 starts nonzero and should round down to 0 under
	// scaling, then be forced back up to 1 (spec §9 open question).
	// Entry at index 4 starts at zero and must remain zero even though the
	// scaling formula would also compute 0 for it.
	ruler := []uint32{1, 10, 10, 10, 0}
	rebalance(ruler, 2, 0, 4, 10)
	if ruler[0] == 0 {
		t.Errorf("entry that became zero via scaling should be forced to 1, got %d", ruler[0])
	}
	if ruler[4] != 0 {
		t.Errorf("entry that was already zero before scaling must remain zero, got %d", ruler[4])
	}
}

func TestRebalanceBoundedToCeiling(t *testing.T) {
	ruler := []uint32{maxRulerValue, maxRulerValue, maxRulerValue}
	rebalance(ruler, 0, 0, 2, 5)
	for i, v := range ruler {
		if v > maxRulerValue {
			t.Errorf("ruler[%d] = %d exceeds ceiling %d", i, v, maxRulerValue)
		}
	}
}

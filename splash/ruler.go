package splash

import "golang.org/x/exp/constraints"

// maxRulerValue is the 24-bit ceiling every xErr/yErr entry is clamped to
// (spec §3, §4.1 "Integer overflow").
const maxRulerValue = 0x00FFFFFF

// clampOrdered bounds v to [lo, hi]. Used both for the 24-bit ruler ceiling
// and for the alpha clamp in the splash blend (spec §4.1 step 5c).
func clampOrdered[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// newRuler allocates a ruler of the given length, zeroed (every line exact
// until a column/row-error pass says otherwise).
func newRuler(length int) []uint32 {
	return make([]uint32, length)
}

// expandRange implements the bounded-expansion rule shared by spec §4.1
// step 3 (pivot influence range) and step 5b (perpendicular range): starting
// at pivot, grow outward by at most radius on each side, stopping earlier at
// the array edge or at the first already-exact (zero) entry.
func expandRange(ruler []uint32, pivot, radius int) (lo, hi int) {
	lo, hi = pivot, pivot
	for r := 0; r < radius && lo > 0 && ruler[lo-1] != 0; r++ {
		lo--
	}
	for r := 0; r < radius && hi < len(ruler)-1 && ruler[hi+1] != 0; r++ {
		hi++
	}
	return lo, hi
}

// rebalance implements spec §4.1 step 4 for one ruler: scales every entry in
// [lo, hi] by the distance from pivot over radius, forces a non-pivot entry
// that became zero as a *result* of scaling up to 1 (but never un-zeroes an
// entry that was already exact before scaling — spec §9 open question), and
// finally zeroes the pivot entry itself.
func rebalance(ruler []uint32, pivot, lo, hi, radius int) {
	for ii := lo; ii <= hi; ii++ {
		if ii == pivot {
			continue
		}
		wasZero := ruler[ii] == 0
		dist := ii - pivot
		if dist < 0 {
			dist = -dist
		}
		scaled := roundHalfToEven(float32(ruler[ii]) * float32(dist) / float32(radius))
		v := uint32(clampOrdered(scaled, int64(0), int64(maxRulerValue)))
		if v == 0 && !wasZero {
			v = 1
		}
		ruler[ii] = v
	}
	ruler[pivot] = 0
}

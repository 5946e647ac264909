package collide

import "iter"

// Tuning for CheckPartitioned, matching the sizes the manager scales from.
const (
	defaultPartitionSize = 10
	defaultMaxIterations = 2
)

// EstimateCenter returns the arithmetic mean of the box centers. It is a
// cheap centroid guess used to pick a split point, not a true spatial
// median; a skewed result costs speed, never correctness.
func EstimateCenter(boxes []*Box) Vector {
	var sum Vector
	for _, b := range boxes {
		sum = sum.Add(Vector{b.cx, b.cy})
	}
	return sum.Mult(1 / float64(len(boxes)))
}

// PartitionQuadrants splits boxes into four groups around the estimated
// center: bottom-left, upper-left, bottom-right, upper-right. A box belongs
// to every quadrant its extent reaches into, tested per axis, so a box
// straddling the center line lands in more than one group. The duplication
// is required: a box cannot be dropped from a quadrant it could collide
// within. The groups are therefore not disjoint and their sizes can sum to
// more than len(boxes).
func PartitionQuadrants(boxes []*Box) [4][]*Box {
	var bl, ul, br, ur []*Box
	center := EstimateCenter(boxes)
	for _, b := range boxes {
		if b.x <= center.X {
			if b.y <= center.Y {
				bl = append(bl, b)
			}
			if b.y2 >= center.Y {
				ul = append(ul, b)
			}
		}
		if b.x2 >= center.X {
			if b.y <= center.Y {
				br = append(br, b)
			}
			if b.y2 >= center.Y {
				ur = append(ur, b)
			}
		}
	}
	return [4][]*Box{bl, ul, br, ur}
}

// Partition recursively subdivides boxes into leaf groups small enough to
// scan directly. A quadrant group becomes a leaf when it is at or under
// partitionSize, or when it did not shrink at all — a group as big as its
// parent will never subdivide, so recursing on it would only waste time and
// the oversized group is yielded as-is. Recursion also stops unconditionally
// at maxIterations deep.
func Partition(boxes []*Box, partitionSize, maxIterations int) iter.Seq[[]*Box] {
	return func(yield func([]*Box) bool) {
		partitionInto(boxes, partitionSize, maxIterations, 0, yield)
	}
}

func partitionInto(boxes []*Box, partitionSize, maxIterations, iteration int, yield func([]*Box) bool) bool {
	if iteration == maxIterations {
		// We got handed a group at the recursion floor, pass it up unchanged.
		return yield(boxes)
	}
	for _, p := range PartitionQuadrants(boxes) {
		if len(p) <= partitionSize || len(p) == len(boxes) {
			if !yield(p) {
				return false
			}
			continue
		}
		if !partitionInto(p, partitionSize, maxIterations, iteration+1, yield) {
			return false
		}
	}
	return true
}

// CheckPartitioned runs the deduplicated scan over each leaf group instead
// of the whole input, cutting the candidate pairs well below n² when the
// boxes are spread out.
//
// Because quadrant groups overlap, a pair whose members share more than one
// leaf is yielded more than once. Callers needing exactly-once semantics
// must deduplicate, e.g. with Dedup or a PairSet; this multiplicity is part
// of the contract, not a defect.
func CheckPartitioned(boxes []*Box) iter.Seq2[*Box, *Box] {
	return func(yield func(*Box, *Box) bool) {
		if len(boxes) == 0 {
			return
		}
		for p := range Partition(boxes, defaultPartitionSize, defaultMaxIterations) {
			for a, b := range CheckDeduplicated(p) {
				if !yield(a, b) {
					return
				}
			}
		}
	}
}

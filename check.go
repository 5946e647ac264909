package collide

import (
	"iter"
	"math"
)

// CheckExhaustive scans every ordered pair of distinct boxes and yields the
// ones that overlap. Each overlapping pair comes out twice, once per
// ordering. It exists as ground truth for testing the cleverer scanners and
// should never be the production path.
func CheckExhaustive(boxes []*Box) iter.Seq2[*Box, *Box] {
	return func(yield func(*Box, *Box) bool) {
		for _, a := range boxes {
			for _, b := range boxes {
				if a.Overlaps(b) {
					if !yield(a, b) {
						return
					}
				}
			}
		}
	}
}

// CheckDeduplicated does half the comparisons of CheckExhaustive: for each
// index i it only scans indices j > i, since every earlier box has already
// been checked against boxes[i]. Each overlapping pair is yielded exactly
// once, with no set lookups needed to get there. This is the workhorse the
// partitioner and manager run on candidate groups.
func CheckDeduplicated(boxes []*Box) iter.Seq2[*Box, *Box] {
	return func(yield func(*Box, *Box) bool) {
		l := len(boxes)
		for i := 0; i < l; i++ {
			a := boxes[i]
			for j := i + 1; j < l; j++ {
				b := boxes[j]
				if math.Abs(a.cx-b.cx) <= a.halfWidth+b.halfWidth &&
					math.Abs(a.cy-b.cy) <= a.halfHeight+b.halfHeight {
					if !yield(a, b) {
						return
					}
				}
			}
		}
	}
}

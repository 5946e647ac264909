package collide

import (
	"math/rand"
	"testing"
)

func mustBox(t testing.TB, x, y, width, height float64, stationary bool) *Box {
	t.Helper()
	box, err := NewBox(x, y, width, height, stationary, nil)
	if err != nil {
		t.Fatalf("NewBox(%v, %v, %v, %v): %v", x, y, width, height, err)
	}
	return box
}

type boxSpread struct {
	minX, maxX           float64
	minY, maxY           float64
	minWidth, maxWidth   float64
	minHeight, maxHeight float64
	stationaryChance     float64
}

// Defaults give a reasonable chance of overlap at a few hundred boxes.
var defaultSpread = boxSpread{
	minX: 0, maxX: 1000,
	minY: 0, maxY: 1000,
	minWidth: 1, maxWidth: 20,
	minHeight: 1, maxHeight: 20,
}

func randomBoxes(t testing.TB, n int, seed int64, spread boxSpread) []*Box {
	rng := rand.New(rand.NewSource(seed))
	boxes := make([]*Box, 0, n)
	for i := 0; i < n; i++ {
		boxes = append(boxes, mustBox(t,
			rng.Float64()*(spread.maxX-spread.minX)+spread.minX,
			rng.Float64()*(spread.maxY-spread.minY)+spread.minY,
			rng.Float64()*(spread.maxWidth-spread.minWidth)+spread.minWidth,
			rng.Float64()*(spread.maxHeight-spread.minHeight)+spread.minHeight,
			rng.Float64() < spread.stationaryChance,
		))
	}
	return boxes
}

// crossedBoxes is the hard case for corner-containment style tests: a giant
// plus sign where neither box has a corner inside the other.
func crossedBoxes(t testing.TB) []*Box {
	return []*Box{
		mustBox(t, -100, 0, 200, 1, false),
		mustBox(t, 0, -100, 1, 200, false),
	}
}

func collectPairs(pairs func(func(*Box, *Box) bool)) []boxPair {
	var out []boxPair
	for a, b := range pairs {
		out = append(out, boxPair{a, b})
	}
	return out
}

func pairSetOf(pairs func(func(*Box, *Box) bool)) *PairSet {
	set := NewPairSet()
	for a, b := range pairs {
		set.Add(a, b)
	}
	return set
}

func samePairs(x, y *PairSet) bool {
	if x.Count() != y.Count() {
		return false
	}
	same := true
	x.Each(func(a, b *Box) {
		if !y.Contains(a, b) {
			same = false
		}
	})
	return same
}

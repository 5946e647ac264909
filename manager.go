package collide

import (
	"fmt"
	"iter"
	"math"
	"slices"
)

// The manager's cache is a small state machine rather than a bare bool:
// Invalid → full-scan-rebuilding-cache → Valid, Valid → partial-scan → Valid.
type cacheState int

const (
	cacheInvalid cacheState = iota
	cacheValid
)

type boxPair struct {
	a, b *Box
}

// Manager owns a set of boxes and answers collision queries over them. Its
// edge over calling CheckPartitioned directly is knowing which boxes are
// stationary: pairs where both members are stationary cannot change between
// queries, so they are cached and replayed until a stationary box is
// registered, removed or moved.
type Manager struct {
	boxes           []*Box
	cache           []boxPair
	state           cacheState
	stationaryCount int
}

func NewManager() *Manager {
	return &Manager{state: cacheInvalid}
}

// Register adds a box to the collection and claims ownership of it. A box
// can belong to at most one manager at a time, so registering an owned box
// fails with ErrAlreadyRegistered.
func (m *Manager) Register(box *Box) error {
	if box.manager != nil {
		return fmt.Errorf("%w: %v", ErrAlreadyRegistered, box)
	}
	m.boxes = append(m.boxes, box)
	box.manager = m
	if box.stationary {
		m.state = cacheInvalid
		m.stationaryCount++
	}
	return nil
}

// Remove takes a box out of the collection and releases ownership. It fails
// with ErrNotRegistered, mutating nothing, if the box is not currently in
// this manager.
func (m *Manager) Remove(box *Box) error {
	i := slices.Index(m.boxes, box)
	if i < 0 || box.manager != m {
		return fmt.Errorf("%w: %v", ErrNotRegistered, box)
	}
	m.boxes = slices.Delete(m.boxes, i, i+1)
	box.manager = nil
	if box.stationary {
		m.invalidateStationaryCache()
		m.stationaryCount--
	}
	return nil
}

func (m *Manager) invalidateStationaryCache() {
	m.state = cacheInvalid
}

// Count returns the number of registered boxes.
func (m *Manager) Count() int {
	return len(m.boxes)
}

// StationaryCount returns the number of registered stationary boxes.
func (m *Manager) StationaryCount() int {
	return m.stationaryCount
}

// CacheValid reports whether the stationary pair cache reflects the current
// box set.
func (m *Manager) CacheValid() bool {
	return m.state == cacheValid
}

// YieldCollisions lazily yields every overlapping pair among the registered
// boxes. Like CheckPartitioned, the same pair can appear more than once.
//
// With no stationary boxes it is a plain partitioned scan. Otherwise the
// first full pull rebuilds the stationary cache as a side effect; later
// pulls replay the cache and only scan pairs involving at least one
// non-stationary box. The cache and validity flag are committed together
// only when a rebuild scan runs to completion, so a consumer that stops
// pulling early never observes (or installs) a half-built cache.
func (m *Manager) YieldCollisions() iter.Seq2[*Box, *Box] {
	return func(yield func(*Box, *Box) bool) {
		if m.stationaryCount == 0 {
			// No stationary boxes means there is nothing worth caching.
			for a, b := range CheckPartitioned(m.boxes) {
				if !yield(a, b) {
					return
				}
			}
			return
		}

		if m.state == cacheInvalid {
			rebuilt := []boxPair{}
			for a, b := range CheckPartitioned(m.boxes) {
				if a.stationary && b.stationary {
					rebuilt = append(rebuilt, boxPair{a, b})
				}
				if !yield(a, b) {
					return
				}
			}
			m.cache = rebuilt
			m.state = cacheValid
			return
		}

		for _, p := range m.cache {
			if !yield(p.a, p.b) {
				return
			}
		}
		// If every box is stationary, every collision is already cached.
		if len(m.boxes) == m.stationaryCount {
			return
		}
		for a, b := range checkPartitionOptimized(m.boxes, m.stationaryCount) {
			if !yield(a, b) {
				return
			}
		}
	}
}

// checkPartitionOptimized scans for every pair except stationary×stationary,
// which the caller serves from cache. Requires stationaryCount < len(boxes).
//
// The partition size is scaled so each leaf holds roughly
// defaultPartitionSize non-stationary boxes: stationary members take up room
// in a leaf without contributing new work, so with stationary fraction s a
// leaf needs size/(1-s) slots to carry the same load.
func checkPartitionOptimized(boxes []*Box, stationaryCount int) iter.Seq2[*Box, *Box] {
	return func(yield func(*Box, *Box) bool) {
		if len(boxes) == 0 {
			return
		}
		size := int(math.Ceil(defaultPartitionSize / (1 - float64(stationaryCount)/float64(len(boxes)))))
		if size < defaultPartitionSize {
			size = defaultPartitionSize
		}
		for part := range Partition(boxes, size, defaultMaxIterations) {
			// Sorting the stationary boxes to the end lets the index scan
			// below bail out of the outer loop at the first stationary box:
			// from there on, every remaining pair is stationary×stationary
			// and already in the cache. Leaves are freshly built slices (the
			// recursion floor is never hit at depth 0 here), so the in-place
			// sort cannot reorder the manager's own collection.
			slices.SortStableFunc(part, func(a, b *Box) int {
				switch {
				case a.stationary == b.stationary:
					return 0
				case b.stationary:
					return -1
				default:
					return 1
				}
			})
			l := len(part)
			for i := 0; i < l; i++ {
				a := part[i]
				if a.stationary {
					break
				}
				for j := i + 1; j < l; j++ {
					b := part[j]
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
}

package collide

import "iter"

// pairKey is an unordered pair of box identities, canonicalized so that
// (a,b) and (b,a) produce the same key.
type pairKey struct {
	a, b uint64
}

func makePairKey(a, b *Box) pairKey {
	if a.id <= b.id {
		return pairKey{a.id, b.id}
	}
	return pairKey{b.id, a.id}
}

// PairSet is a set of unordered box pairs keyed by identity. The partitioned
// scanners can yield the same collision more than once; consumers that need
// each pair exactly once track them here (or use Dedup).
type PairSet struct {
	table map[pairKey]boxPair
}

func NewPairSet() *PairSet {
	return &PairSet{table: map[pairKey]boxPair{}}
}

// Add inserts the pair and reports whether it was not already present.
func (set *PairSet) Add(a, b *Box) bool {
	key := makePairKey(a, b)
	if _, ok := set.table[key]; ok {
		return false
	}
	set.table[key] = boxPair{a, b}
	return true
}

// Contains reports whether the pair is present, in either order.
func (set *PairSet) Contains(a, b *Box) bool {
	_, ok := set.table[makePairKey(a, b)]
	return ok
}

func (set *PairSet) Count() int {
	return len(set.table)
}

// Each visits every stored pair; iteration order is not specified.
func (set *PairSet) Each(f func(a, b *Box)) {
	for _, p := range set.table {
		f(p.a, p.b)
	}
}

// Dedup filters a pair stream down to the first occurrence of each unordered
// pair. It pulls from pairs lazily, so partial consumption of the returned
// sequence only pulls as much of the input as needed.
func Dedup(pairs iter.Seq2[*Box, *Box]) iter.Seq2[*Box, *Box] {
	return func(yield func(*Box, *Box) bool) {
		seen := NewPairSet()
		for a, b := range pairs {
			if seen.Add(a, b) {
				if !yield(a, b) {
					return
				}
			}
		}
	}
}

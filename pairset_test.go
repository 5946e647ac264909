package collide

import "testing"

func TestPairSet(t *testing.T) {
	a := mustBox(t, 0, 0, 1, 1, false)
	b := mustBox(t, 0, 0, 1, 1, false)
	c := mustBox(t, 0, 0, 1, 1, false)

	set := NewPairSet()
	if !set.Add(a, b) {
		t.Error("First insert should report new")
	}
	if set.Add(a, b) {
		t.Error("Repeated insert should report already present")
	}
	if set.Add(b, a) {
		t.Error("Reversed insert is the same unordered pair")
	}
	if set.Count() != 1 {
		t.Errorf("Expected 1 pair, got %d", set.Count())
	}

	if !set.Contains(a, b) || !set.Contains(b, a) {
		t.Error("Contains must ignore ordering")
	}
	if set.Contains(a, c) {
		t.Error("Unknown pair reported present")
	}

	set.Add(a, c)
	if set.Count() != 2 {
		t.Errorf("Expected 2 pairs, got %d", set.Count())
	}

	visited := 0
	set.Each(func(x, y *Box) {
		visited++
	})
	if visited != 2 {
		t.Errorf("Each visited %d pairs, expected 2", visited)
	}
}

func TestPairSet_IdentityKeyed(t *testing.T) {
	// Boxes with equal geometry are distinct entities; their pairs must not
	// collapse together.
	a := mustBox(t, 0, 0, 1, 1, false)
	b := mustBox(t, 0, 0, 1, 1, false)
	c := mustBox(t, 0, 0, 1, 1, false)

	set := NewPairSet()
	set.Add(a, b)
	set.Add(a, c)
	set.Add(b, c)
	if set.Count() != 3 {
		t.Errorf("Expected 3 distinct identity pairs, got %d", set.Count())
	}
}

func TestDedup(t *testing.T) {
	a := mustBox(t, 0, 0, 10, 10, false)
	b := mustBox(t, 5, 5, 10, 10, false)

	// Exhaustive yields both orderings; Dedup keeps the first.
	pairs := collectPairs(Dedup(CheckExhaustive([]*Box{a, b})))
	if len(pairs) != 1 {
		t.Fatalf("Expected 1 deduplicated pair, got %d", len(pairs))
	}
	if pairs[0].a != a || pairs[0].b != b {
		t.Errorf("Expected the first ordering to survive, got %v", pairs[0])
	}
}

func TestDedup_PartialConsumption(t *testing.T) {
	boxes := []*Box{
		mustBox(t, 0, 0, 10, 10, false),
		mustBox(t, 1, 1, 10, 10, false),
		mustBox(t, 2, 2, 10, 10, false),
	}
	var got int
	for range Dedup(CheckDeduplicated(boxes)) {
		got++
		if got == 2 {
			break
		}
	}
	if got != 2 {
		t.Errorf("Expected to stop after 2 pairs, got %d", got)
	}
}

package dice

// Weighted pairs a choice with its relative selection weight.
type Weighted[T any] struct {
	Value  T
	Weight int
}

// WeightedChoice draws one entry with probability proportional to its weight
// using a single cumulative-weight draw. Entries with weight <= 0 are never chosen.
//
// Precondition: src must be non-nil.
// Postcondition: returns (value, true), or the zero value and false when the
// total weight is zero.
func WeightedChoice[T any](src Source, entries []Weighted[T]) (T, bool) {
	total := 0
	for _, e := range entries {
		if e.Weight > 0 {
			total += e.Weight
		}
	}
	var zero T
	if total == 0 {
		return zero, false
	}
	roll := src.Intn(total)
	for _, e := range entries {
		if e.Weight <= 0 {
			continue
		}
		if roll < e.Weight {
			return e.Value, true
		}
		roll -= e.Weight
	}
	return zero, false
}

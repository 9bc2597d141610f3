// Package testutil provides deterministic randomness sources and character
// fixtures for tests.
package testutil

import "fmt"

// HighSource always returns n-1: percent chances never succeed and weighted
// choices land on the last positive entry.
type HighSource struct{}

// Intn returns n-1.
func (HighSource) Intn(n int) int { return n - 1 }

// LowSource always returns 0: percent chances above zero always succeed.
type LowSource struct{}

// Intn returns 0.
func (LowSource) Intn(int) int { return 0 }

// ScriptedSource replays Values in order, then defers to Then.
//
// Precondition: every scripted value must be < the n it is drawn against.
type ScriptedSource struct {
	Values []int
	// Then serves draws once Values is exhausted; HighSource when nil.
	Then interface{ Intn(n int) int }
	// Bounds records the n of every draw, scripted or not.
	Bounds []int
}

// Intn returns the next scripted value, panicking if it is out of range.
func (s *ScriptedSource) Intn(n int) int {
	s.Bounds = append(s.Bounds, n)
	if len(s.Values) == 0 {
		if s.Then == nil {
			return HighSource{}.Intn(n)
		}
		return s.Then.Intn(n)
	}
	v := s.Values[0]
	s.Values = s.Values[1:]
	if v < 0 || v >= n {
		panic(fmt.Sprintf("testutil: scripted value %d out of range [0,%d)", v, n))
	}
	return v
}

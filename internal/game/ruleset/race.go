// Package ruleset defines the closed race and class enumerations, the stat
// block they modify, and the trait tables that map each to a stat bonus.
package ruleset

import (
	"fmt"
	"strings"
)

// Race is a character's ancestry. The set is closed.
type Race int

const (
	Humain Race = iota
	Nain
	Dragonkin
	Elfe
	Orc
	MortVivant
	Lycan
	Sylvari
)

var raceNames = [...]string{
	Humain:     "Humain",
	Nain:       "Nain",
	Dragonkin:  "Dragonkin",
	Elfe:       "Elfe",
	Orc:        "Orc",
	MortVivant: "Mort-vivant",
	Lycan:      "Lycan",
	Sylvari:    "Sylvari",
}

// String returns the race's display name.
func (r Race) String() string {
	if r < 0 || int(r) >= len(raceNames) {
		return fmt.Sprintf("Race(%d)", int(r))
	}
	return raceNames[r]
}

// AllRaces returns every race in declaration order.
//
// Postcondition: len(result) == 8.
func AllRaces() []Race {
	out := make([]Race, len(raceNames))
	for i := range out {
		out[i] = Race(i)
	}
	return out
}

// ParseRace resolves a display name case-insensitively.
//
// Postcondition: Returns the matching Race or a non-nil error.
func ParseRace(name string) (Race, error) {
	for i, n := range raceNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return Race(i), nil
		}
	}
	return 0, fmt.Errorf("unknown race %q (valid: %s)", name, strings.Join(raceNames[:], ", "))
}

// Class is a character's combat discipline. The set is closed.
type Class int

const (
	Guerrier Class = iota
	Voleur
	Paladin
	Healer
	Archer
	Mage
	Demoniste
	Masochiste
)

var classNames = [...]string{
	Guerrier:   "Guerrier",
	Voleur:     "Voleur",
	Paladin:    "Paladin",
	Healer:     "Healer",
	Archer:     "Archer",
	Mage:       "Mage",
	Demoniste:  "Demoniste",
	Masochiste: "Masochiste",
}

// String returns the class's display name.
func (c Class) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return fmt.Sprintf("Class(%d)", int(c))
	}
	return classNames[c]
}

// AllClasses returns every class in declaration order.
//
// Postcondition: len(result) == 8.
func AllClasses() []Class {
	out := make([]Class, len(classNames))
	for i := range out {
		out[i] = Class(i)
	}
	return out
}

// ParseClass resolves a display name case-insensitively.
//
// Postcondition: Returns the matching Class or a non-nil error.
func ParseClass(name string) (Class, error) {
	for i, n := range classNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return Class(i), nil
		}
	}
	return 0, fmt.Errorf("unknown class %q (valid: %s)", name, strings.Join(classNames[:], ", "))
}

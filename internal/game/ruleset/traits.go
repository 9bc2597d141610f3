package ruleset

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Traits maps races and classes to the flat stat bonus they grant.
// Races and classes absent from the maps grant nothing.
type Traits struct {
	Races   map[Race]StatBlock
	Classes map[Class]StatBlock
}

// DefaultTraits returns the stock bonus tables.
//
// Postcondition: Returns a fresh Traits the caller may modify.
func DefaultTraits() *Traits {
	return &Traits{
		Races: map[Race]StatBlock{
			Humain:    {HP: 10, Auto: 1, Def: 1, Cap: 1, ResCap: 1, Spd: 1},
			Nain:      {HP: 10, Def: 4},
			Dragonkin: {HP: 10, ResCap: 15},
			Elfe:      {Auto: 1, Cap: 1, Spd: 5},
		},
		Classes: map[Class]StatBlock{
			Voleur:   {Spd: 5},
			Guerrier: {Auto: 3},
		},
	}
}

// RaceBonus returns the bonus for r, or the zero StatBlock.
func (t *Traits) RaceBonus(r Race) StatBlock {
	return t.Races[r]
}

// ClassBonus returns the bonus for c, or the zero StatBlock.
func (t *Traits) ClassBonus(c Class) StatBlock {
	return t.Classes[c]
}

// traitsFile is the on-disk shape of a trait override file.
type traitsFile struct {
	Races   map[string]StatBlock `yaml:"races"`
	Classes map[string]StatBlock `yaml:"classes"`
}

// ParseTraits applies the YAML overrides in data on top of DefaultTraits.
// Each named entry replaces that race's or class's bonus wholesale.
//
// Postcondition: Returns the merged Traits, or an error naming every unknown
// or negative entry.
func ParseTraits(data []byte) (*Traits, error) {
	var f traitsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing traits: %w", err)
	}

	t := DefaultTraits()
	var errs []string
	for _, name := range sortedKeys(f.Races) {
		bonus := f.Races[name]
		r, err := ParseRace(name)
		if err != nil {
			errs = append(errs, err.Error())
			continue
		}
		if bonus.hasNegative() {
			errs = append(errs, fmt.Sprintf("race %s: bonuses must not be negative", r))
			continue
		}
		t.Races[r] = bonus
	}
	for _, name := range sortedKeys(f.Classes) {
		bonus := f.Classes[name]
		c, err := ParseClass(name)
		if err != nil {
			errs = append(errs, err.Error())
			continue
		}
		if bonus.hasNegative() {
			errs = append(errs, fmt.Sprintf("class %s: bonuses must not be negative", c))
			continue
		}
		t.Classes[c] = bonus
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid traits: %s", strings.Join(errs, "; "))
	}
	return t, nil
}

// LoadTraits reads a trait override file. An empty path yields DefaultTraits.
//
// Postcondition: Returns the merged Traits or a non-nil error.
func LoadTraits(path string) (*Traits, error) {
	if path == "" {
		return DefaultTraits(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	t, err := ParseTraits(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func sortedKeys(m map[string]StatBlock) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

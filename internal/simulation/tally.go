package simulation

import (
	"github.com/cory-johannsen/balance/internal/game/combat"
	"github.com/cory-johannsen/balance/internal/game/ruleset"
)

type record struct {
	wins, losses, draws int
}

func (r record) add(o record) record {
	return record{r.wins + o.wins, r.losses + o.losses, r.draws + o.draws}
}

// tally is owned by one worker until merged.
type tally struct {
	classes  map[ruleset.Class]record
	races    map[ruleset.Race]record
	outcomes map[combat.Outcome]int
}

func newTally() *tally {
	return &tally{
		classes:  make(map[ruleset.Class]record),
		races:    make(map[ruleset.Race]record),
		outcomes: make(map[combat.Outcome]int),
	}
}

// record credits one duel to both sides' class and race.
func (t *tally) record(a, b Spec, o combat.Outcome) {
	t.outcomes[o]++
	var ra, rb record
	switch o {
	case combat.Char1:
		ra.wins, rb.losses = 1, 1
	case combat.Char2:
		ra.losses, rb.wins = 1, 1
	default:
		ra.draws, rb.draws = 1, 1
	}
	t.classes[a.Class] = t.classes[a.Class].add(ra)
	t.classes[b.Class] = t.classes[b.Class].add(rb)
	t.races[a.Race] = t.races[a.Race].add(ra)
	t.races[b.Race] = t.races[b.Race].add(rb)
}

func (t *tally) merge(o *tally) {
	for k, v := range o.classes {
		t.classes[k] = t.classes[k].add(v)
	}
	for k, v := range o.races {
		t.races[k] = t.races[k].add(v)
	}
	for k, v := range o.outcomes {
		t.outcomes[k] += v
	}
}

func (t *tally) classRows() []Row {
	rows := make([]Row, 0, len(ruleset.AllClasses()))
	for _, c := range ruleset.AllClasses() {
		rows = append(rows, newRow(c.String(), t.classes[c]))
	}
	sortRows(rows)
	return rows
}

func (t *tally) raceRows() []Row {
	rows := make([]Row, 0, len(ruleset.AllRaces()))
	for _, r := range ruleset.AllRaces() {
		rows = append(rows, newRow(r.String(), t.races[r]))
	}
	sortRows(rows)
	return rows
}

func newRow(name string, r record) Row {
	return Row{Name: name, Wins: r.wins, Losses: r.losses, Draws: r.draws}
}

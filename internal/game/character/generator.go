package character

import (
	"github.com/cory-johannsen/balance/internal/game/dice"
	"github.com/cory-johannsen/balance/internal/game/ruleset"
)

const (
	// PointBudget is the total point cost of a generated stat block.
	// HP costs 0.20 points each; every other stat costs 1 point each.
	PointBudget = 120
	// FreePoints is what remains after the baseline (120 HP = 24, five stats at 15 = 75).
	FreePoints = PointBudget - ruleset.BaseHP/5 - 5*ruleset.BaseStat

	// hpStep is the HP granted by one weighted-phase point.
	hpStep = 4

	spikeMin = 8
	spikeMax = 17

	// maxIterations bounds the weighted phase.
	maxIterations = 10_000
)

type stat int

const (
	statHP stat = iota
	statAuto
	statDef
	statCap
	statResCap
	statSpd
)

var spikeable = []stat{statAuto, statDef, statCap, statResCap, statSpd}

var allocationWeights = []dice.Weighted[stat]{
	{Value: statHP, Weight: 1},
	{Value: statAuto, Weight: 3},
	{Value: statDef, Weight: 3},
	{Value: statCap, Weight: 3},
	{Value: statResCap, Weight: 3},
	{Value: statSpd, Weight: 3},
}

func field(s *ruleset.StatBlock, st stat) *int {
	switch st {
	case statHP:
		return &s.HP
	case statAuto:
		return &s.Auto
	case statDef:
		return &s.Def
	case statCap:
		return &s.Cap
	case statResCap:
		return &s.ResCap
	default:
		return &s.Spd
	}
}

// GenerateStats produces a randomized stat block that spends at most FreePoints
// on top of the baseline.
//
// A spike phase first raises one or two distinct non-HP stats by 8-17 each
// (capped at 35). A weighted phase then spends the rest one point at a time,
// HP weighted 1 (+4 HP per point, capped at 200) and each other stat weighted 3.
//
// Precondition: src must be non-nil.
// Postcondition: HP in [120,200] with HP-120 divisible by 4; every other stat
// in [15,35]; SpentPoints(result) <= FreePoints.
func GenerateStats(src dice.Source) ruleset.StatBlock {
	s := ruleset.StatBlock{
		HP:     ruleset.BaseHP,
		Auto:   ruleset.BaseStat,
		Def:    ruleset.BaseStat,
		Cap:    ruleset.BaseStat,
		ResCap: ruleset.BaseStat,
		Spd:    ruleset.BaseStat,
	}
	remaining := FreePoints

	spikes := 1 + src.Intn(2)
	for _, idx := range dice.Pick(src, len(spikeable), spikes) {
		f := field(&s, spikeable[idx])
		target := min(*f+dice.Between(src, spikeMin, spikeMax), ruleset.MaxStat)
		for *f < target && remaining > 0 {
			*f++
			remaining--
		}
	}

	for i := 0; i < maxIterations && remaining > 0 && !allCapped(s); i++ {
		st, ok := dice.WeightedChoice(src, allocationWeights)
		if !ok {
			break
		}
		if st == statHP {
			if s.HP+hpStep > ruleset.MaxHP {
				continue
			}
			s.HP += hpStep
			remaining--
			continue
		}
		f := field(&s, st)
		if *f >= ruleset.MaxStat {
			continue
		}
		*f++
		remaining--
	}
	return s
}

func allCapped(s ruleset.StatBlock) bool {
	if s.HP+hpStep <= ruleset.MaxHP {
		return false
	}
	for _, st := range spikeable {
		if *field(&s, st) < ruleset.MaxStat {
			return false
		}
	}
	return true
}

// SpentPoints returns the free points a pre-bonus stat block has consumed above the baseline.
func SpentPoints(s ruleset.StatBlock) int {
	spent := (s.HP - ruleset.BaseHP) / hpStep
	for _, st := range spikeable {
		spent += *field(&s, st) - ruleset.BaseStat
	}
	return spent
}

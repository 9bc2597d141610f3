package combat

import (
	"fmt"
	"strings"
)

// TurnEvent records what happened when one combatant acted.
type TurnEvent struct {
	Turn   int
	Actor  string
	Target string
	Effect Effect
	// Dodged is true when the target's evasion swallowed the whole action.
	Dodged bool
	Crit   bool
	// Regen is HP the actor regenerated before acting.
	Regen int
	Damage int
	Heal   int
	// Reflected is riposte damage the actor took back.
	Reflected int
	// Revived is true when the target rose again after this action.
	Revived  bool
	ActorHP  int
	TargetHP int
}

// Narrative renders the event as a single human-readable line.
func (e TurnEvent) Narrative() string {
	var b strings.Builder
	fmt.Fprintf(&b, "T%d %s", e.Turn, e.Actor)
	if e.Regen > 0 {
		fmt.Fprintf(&b, " regenerates %d,", e.Regen)
	}
	if e.Dodged {
		fmt.Fprintf(&b, " attacks but %s evades.", e.Target)
		return b.String()
	}
	switch e.Effect {
	case EffectDodge:
		b.WriteString(" prepares to evade the next blow.")
	case EffectRiposte:
		b.WriteString(" raises a riposte stance.")
	case EffectHeal:
		fmt.Fprintf(&b, " heals for %d (hp %d).", e.Heal, e.ActorHP)
	default:
		verb := "hits"
		if e.Effect != EffectNone {
			verb = "uses " + e.Effect.String() + " on"
		}
		fmt.Fprintf(&b, " %s %s for %d", verb, e.Target, e.Damage)
		if e.Crit {
			b.WriteString(" (critical)")
		}
		fmt.Fprintf(&b, " (hp %d).", e.TargetHP)
	}
	if e.Reflected > 0 {
		fmt.Fprintf(&b, " %s takes %d back from the riposte.", e.Actor, e.Reflected)
	}
	if e.Revived {
		fmt.Fprintf(&b, " %s rises again with %d hp.", e.Target, e.TargetHP)
	}
	return b.String()
}

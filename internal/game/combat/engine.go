package combat

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/balance/internal/game/character"
	"github.com/cory-johannsen/balance/internal/game/dice"
	"github.com/cory-johannsen/balance/internal/game/ruleset"
)

const (
	// DefaultMaxTurns bounds a duel when no limit is given.
	DefaultMaxTurns = 100

	sylvariRegenPercent = 2
	revivalPercent      = 20
)

// Result is the resolution of one duel.
type Result struct {
	Outcome Outcome
	// Turns is the number of turns started.
	Turns int
	// Char1HP and Char2HP are the final hit points of each side.
	Char1HP int
	Char2HP int
	// Events is populated only by engines built WithRecording.
	Events []TurnEvent
}

// Engine resolves duels between two characters.
// An Engine is as safe for concurrent use as its Source.
type Engine struct {
	src      dice.Source
	logger   *zap.Logger
	maxTurns int
	record   bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithMaxTurns sets the turn limit; n <= 0 keeps DefaultMaxTurns.
func WithMaxTurns(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxTurns = n
		}
	}
}

// WithLogger logs every action at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithRecording keeps a TurnEvent for every action in Result.Events.
func WithRecording() Option {
	return func(e *Engine) { e.record = true }
}

// NewEngine creates an Engine drawing every roll from src.
//
// Precondition: src must be non-nil.
func NewEngine(src dice.Source, opts ...Option) *Engine {
	e := &Engine{src: src, logger: zap.NewNop(), maxTurns: DefaultMaxTurns}
	for _, o := range opts {
		o(e)
	}
	return e
}

// MaxTurns returns the engine's turn limit.
func (e *Engine) MaxTurns() int { return e.maxTurns }

// Simulate fights a against b with a crypto-backed engine.
// maxTurns <= 0 means DefaultMaxTurns.
//
// Postcondition: Returns Char1, Char2 or Draw.
func Simulate(a, b *character.Character, maxTurns int) Outcome {
	return NewEngine(dice.NewCryptoSource(), WithMaxTurns(maxTurns)).Fight(a, b).Outcome
}

// Fight resolves a duel between a ("char1") and b ("char2").
//
// Each turn the faster side acts first (a on ties). Both sides act unless one
// is already down; death is otherwise checked only between turns, so a
// riposte may finish off an attacker in the same turn it kills its target.
//
// Precondition: a and b must be non-nil.
// Postcondition: Result.Turns <= MaxTurns(); neither character is modified.
func (e *Engine) Fight(a, b *character.Character) Result {
	c1 := NewCombatant(a, Char1.String())
	c2 := NewCombatant(b, Char2.String())

	var res Result
	turn := 0
	for turn < e.maxTurns && c1.IsAlive() && c2.IsAlive() {
		turn++
		first, second := c1, c2
		if c2.Stats.Spd > c1.Stats.Spd {
			first, second = c2, c1
		}
		for _, p := range [2][2]*Combatant{{first, second}, {second, first}} {
			if !c1.IsAlive() || !c2.IsAlive() {
				break
			}
			ev := e.act(turn, p[0], p[1])
			if e.record {
				res.Events = append(res.Events, ev)
			}
		}
	}

	res.Turns = turn
	res.Char1HP = c1.CurrentHP
	res.Char2HP = c2.CurrentHP
	switch {
	case c1.IsAlive() && !c2.IsAlive():
		res.Outcome = Char1
	case c2.IsAlive() && !c1.IsAlive():
		res.Outcome = Char2
	default:
		res.Outcome = Draw
	}

	if ce := e.logger.Check(zap.DebugLevel, "combat resolved"); ce != nil {
		ce.Write(
			zap.Stringer("char1", a),
			zap.Stringer("char2", b),
			zap.Stringer("outcome", res.Outcome),
			zap.Int("turns", res.Turns),
			zap.Int("char1_hp", res.Char1HP),
			zap.Int("char2_hp", res.Char2HP),
		)
	}
	return res
}

// act resolves one combatant's action against the other.
func (e *Engine) act(turn int, actor, target *Combatant) TurnEvent {
	ev := TurnEvent{Turn: turn, Actor: actor.Label, Target: target.Label}

	if actor.Race == ruleset.Sylvari {
		ev.Regen = actor.Heal(actor.MaxHP() * sylvariRegenPercent / 100)
	}

	if target.DodgeNext {
		target.DodgeNext = false
		ev.Dodged = true
		e.logAction(ev, actor, target)
		return withHP(ev, actor, target)
	}

	ab, fired := ResolveAbility(AbilityContext{Attacker: *actor, Defender: *target, Turn: turn, Src: e.src})
	if !fired || (ab.Damage == 0 && ab.Effect == EffectNone) {
		atk := ResolveAttack(actor, target, e.src)
		ab = AbilityResult{Effect: EffectNone, Damage: atk.Damage, Attack: &atk}
	}
	ev.Effect = ab.Effect
	ev.Crit = ab.Attack != nil && ab.Attack.Crit

	if ab.Dodge {
		actor.DodgeNext = true
	}
	if ab.Riposte > 0 {
		actor.RipostePercent = ab.Riposte
	}
	if ab.Heal > 0 {
		ev.Heal = actor.Heal(ab.Heal)
	}
	if ab.ConsumeDamageReceived {
		actor.DamageReceived = 0
	}

	dmg := ab.Damage
	ev.Damage = dmg
	target.ApplyDamage(dmg)
	target.DamageReceived += dmg

	if target.RipostePercent > 0 && dmg > 0 {
		ev.Reflected = percentOf(dmg, target.RipostePercent)
		actor.ApplyDamage(ev.Reflected)
		target.RipostePercent = 0
	}

	if !target.IsAlive() && target.Race == ruleset.MortVivant && !target.HasRevived {
		target.CurrentHP = target.MaxHP() * revivalPercent / 100
		target.HasRevived = true
		ev.Revived = true
	}

	e.logAction(ev, actor, target)
	return withHP(ev, actor, target)
}

func withHP(ev TurnEvent, actor, target *Combatant) TurnEvent {
	ev.ActorHP = actor.CurrentHP
	ev.TargetHP = target.CurrentHP
	return ev
}

func (e *Engine) logAction(ev TurnEvent, actor, target *Combatant) {
	ce := e.logger.Check(zap.DebugLevel, "combat action")
	if ce == nil {
		return
	}
	ce.Write(
		zap.Int("turn", ev.Turn),
		zap.String("actor", actor.Label),
		zap.Stringer("actor_character", actor.Character),
		zap.String("target", target.Label),
		zap.Stringer("effect", ev.Effect),
		zap.Bool("dodged", ev.Dodged),
		zap.Bool("crit", ev.Crit),
		zap.Int("damage", ev.Damage),
		zap.Int("heal", ev.Heal),
		zap.Int("regen", ev.Regen),
		zap.Int("reflected", ev.Reflected),
		zap.Bool("revived", ev.Revived),
		zap.Int("actor_hp", actor.CurrentHP),
		zap.Int("target_hp", target.CurrentHP),
	)
}

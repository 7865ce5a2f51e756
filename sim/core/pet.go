package core

// Pet is a minimal second actor the simulation advances alongside the
// player: its own Entity state plus a single attack spell and a simple
// always-attack-when-ready policy, matching how little the source's pet
// model does (SPEC_FULL §4.10).
type Pet struct {
	Entity

	Name string

	// Host is the dedicated Player a pet's spells are actually cast
	// through. Spell.Player is a concrete *Player that every cast-timer,
	// GCD and cooldown check reads directly, so a pet needs a real Player
	// of its own rather than sharing the owner's (which would corrupt the
	// owner's own timers) or casting through Pet's bare Entity (the wrong
	// type for Spell.Player). When Host is set, Pet delegates its own
	// timer advancement to it instead of ticking its own Entity.
	Host *Player

	// AttackSpell is the pet's sole action (Firebolt for the Imp); the
	// warlock package wires this up when constructing the pet.
	AttackSpell *Spell

	baselineStats Stats
}

// NewPet constructs a pet with the given baseline stats.
func NewPet(name string, baseline Stats) *Pet {
	p := &Pet{Name: name, baselineStats: baseline}
	p.Stats = baseline
	return p
}

// Reset restores the pet to its baseline at the start of a fresh iteration.
func (p *Pet) Reset() {
	p.Entity.Reset()
	p.Stats = p.baselineStats
	if p.Host != nil {
		p.Host.Reset()
		return
	}
	if p.AttackSpell != nil {
		p.AttackSpell.Reset()
	}
}

// Tick advances the pet's attack spell and casts it whenever it's ready,
// the entirety of the pet's decision policy. Timer advancement happens on
// Host (cast time, GCD, the attack spell's own cooldown) when one is set,
// since that's where AttackSpell.Player actually points.
func (p *Pet) Tick(dt float64) {
	if p.Host != nil {
		p.Host.Tick(dt)
	} else {
		p.Entity.TickTimers(dt)
		if p.AttackSpell != nil {
			p.AttackSpell.Tick(dt)
		}
	}
	if p.AttackSpell != nil && p.AttackSpell.Ready() {
		p.AttackSpell.StartCast(0)
	}
}

// FindTimeUntilNextAction returns the pet's next relevant timer crossing.
func (p *Pet) FindTimeUntilNextAction() float64 {
	if p.Host != nil {
		return p.Host.FindTimeUntilNextAction()
	}
	next := ManaTickInterval
	if p.CastTimeRemaining > 0 && p.CastTimeRemaining < next {
		next = p.CastTimeRemaining
	}
	if p.AttackSpell != nil && p.AttackSpell.CooldownRemaining > 0 && p.AttackSpell.CooldownRemaining < next {
		next = p.AttackSpell.CooldownRemaining
	}
	return next
}

package core

// DamageOverTime is a ticking damage producer with a cached snapshot of
// caster stats taken at apply time, so subsequent stat changes never alter
// ticks from a DoT that's already running (the "snapshot" semantic named in
// the glossary). Reapplying refreshes TicksRemaining but deliberately does
// NOT recompute DamagePerTick — that's the documented in-game behavior this
// sim reproduces, not an oversight.
type DamageOverTime struct {
	Name string

	TickInterval float64
	TicksTotal   int

	TicksRemaining int
	NextTickIn     float64

	// DamagePerTick is fixed at Apply time from a snapshot of the caster's
	// stats and the spell's modifiers.
	DamagePerTick float64

	// TierBonusMultiplier is a running, mutable multiplier some tier-set
	// bonuses escalate after the DoT is already ticking (SPEC_FULL §3.1,
	// e.g. the T5 4-piece bonus on Corruption/Immolate). It starts at 1 and
	// is applied on top of the frozen DamagePerTick snapshot, which is the
	// one deliberate exception to "snapshot never changes again".
	TierBonusMultiplier float64

	Source *Spell
	Target *Entity

	player *Player
}

// NewDamageOverTime constructs an inactive DoT definition. Call Apply to
// snapshot caster state and start it ticking.
func NewDamageOverTime(name string, tickInterval float64, ticksTotal int, source *Spell, target *Entity, player *Player) *DamageOverTime {
	return &DamageOverTime{
		Name:                name,
		TickInterval:        tickInterval,
		TicksTotal:          ticksTotal,
		Source:              source,
		Target:              target,
		TierBonusMultiplier: 1,
		player:              player,
	}
}

// Active reports whether the DoT currently has ticks remaining.
func (d *DamageOverTime) Active() bool {
	return d.TicksRemaining > 0
}

// Apply (re)activates the DoT. damagePerTick is the precomputed, already
// snapshotted per-tick damage; it is only honored on a fresh application —
// refreshing an already-active DoT keeps its original snapshot.
func (d *DamageOverTime) Apply(damagePerTick float64) {
	fresh := !d.Active()
	if fresh {
		d.DamagePerTick = damagePerTick
		d.TierBonusMultiplier = 1
	}
	d.TicksRemaining = d.TicksTotal
	d.NextTickIn = d.TickInterval
	if fresh {
		d.Target.AttachDoT(d)
	}
}

// Tick advances the DoT's internal tick schedule by dt, firing exactly one
// tick each time NextTickIn crosses zero (dt is never large enough to skip
// more than one tick because FindTimeUntilNextAction always stops at the
// next tick boundary).
func (d *DamageOverTime) Tick(dt float64) {
	if !d.Active() {
		return
	}
	d.NextTickIn -= dt
	if d.NextTickIn > 0 {
		return
	}
	d.fire()
	d.TicksRemaining--
	if d.TicksRemaining <= 0 {
		d.Target.DetachDoT(d)
		return
	}
	d.NextTickIn += d.TickInterval
}

func (d *DamageOverTime) fire() {
	dmg := d.DamagePerTick * d.TierBonusMultiplier
	d.player.creditDotTick(d, dmg)
}

// PredictDamage returns the DoT's full expected damage over all TicksTotal
// ticks, used by PredictDamage on the spell that applies it.
func (d *DamageOverTime) PredictDamage(damagePerTick float64) float64 {
	return damagePerTick * float64(d.TicksTotal)
}

package core

// SpellDelay is the fixed constant added to every computed cast time,
// derived from the source's kSpellDelay: a small buffer representing
// server-side latency between a cast bar completing and the hit landing.
const SpellDelay = 0.0625

// ManaTickInterval is the classic 2-second cadence mana regen ticks on.
const ManaTickInterval = 2.0

// FiveSecondRuleDuration is how long, after a mana-consuming cast, spirit
// regen is suppressed in favor of the flat in-combat mp5 rate.
const FiveSecondRuleDuration = 5.0

// Entity is the shared base for any actor the scheduler advances: the
// Player and its Pet. It owns the timers Tick must decrement and the lists
// of temporary effects attached to it.
type Entity struct {
	Stats Stats

	CastTimeRemaining  float64
	GCDRemaining       float64
	FiveSecondRuleTime float64

	Auras []*Aura
	DoTs  []*DamageOverTime

	// Casting is the spell currently mid-cast on this entity, or nil.
	Casting *Spell
}

// Reset restores per-iteration transient state. Stats are left untouched —
// callers reset Stats to the baseline snapshot separately since Player and
// Pet compute their baselines differently.
func (e *Entity) Reset() {
	e.CastTimeRemaining = 0
	e.GCDRemaining = 0
	e.FiveSecondRuleTime = 0
	e.Casting = nil
	e.Auras = e.Auras[:0]
	e.DoTs = e.DoTs[:0]
}

// HasEnoughMana reports whether the entity can afford cost mana.
func (e *Entity) HasEnoughMana(cost float64) bool {
	return cost <= e.Stats.Mana
}

// AttachAura adds an aura to this entity's active list if it isn't already
// present (Apply/Fade toggle the aura's own active flag; this list only
// needs to hold each aura once to tick it).
func (e *Entity) AttachAura(a *Aura) {
	for _, existing := range e.Auras {
		if existing == a {
			return
		}
	}
	e.Auras = append(e.Auras, a)
}

// AttachDoT adds a DoT to this entity's active ticking list if absent.
func (e *Entity) AttachDoT(d *DamageOverTime) {
	for _, existing := range e.DoTs {
		if existing == d {
			return
		}
	}
	e.DoTs = append(e.DoTs, d)
}

// DetachDoT removes a finished DoT from the active list.
func (e *Entity) DetachDoT(d *DamageOverTime) {
	for i, existing := range e.DoTs {
		if existing == d {
			e.DoTs = append(e.DoTs[:i], e.DoTs[i+1:]...)
			return
		}
	}
}

// TickTimers advances every plain countdown timer Entity owns by dt. It
// does not tick Auras/DoTs/Casting — those have their own cross-zero
// behavior and are driven explicitly by Player.Tick in the order SPEC_FULL
// §5 requires.
func (e *Entity) TickTimers(dt float64) {
	if e.CastTimeRemaining > 0 {
		e.CastTimeRemaining -= dt
	}
	if e.GCDRemaining > 0 {
		e.GCDRemaining -= dt
	}
	if e.FiveSecondRuleTime > 0 {
		e.FiveSecondRuleTime -= dt
	}
}

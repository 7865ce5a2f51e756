package warlock

import "github.com/wowsims/warlocksim/sim/core"

// Roster names every spell a rotation decision might reach for, built once
// at construction time and held by value so Decide never needs to search
// Player.SpellList by name.
type Roster struct {
	ShadowBolt          *core.Spell
	Incinerate          *core.Spell
	SearingPain         *core.Spell
	SoulFire            *core.Spell
	Shadowburn          *core.Spell
	Shadowfury          *core.Spell
	Conflagrate         *core.Spell
	Corruption          *core.Spell
	Immolate            *core.Spell
	CurseOfAgony        *core.Spell
	CurseOfDoom         *core.Spell
	SiphonLife          *core.Spell
	UnstableAffliction  *core.Spell
	DeathCoil            *core.Spell
	CurseOfTheElements   *core.Spell
	CurseOfRecklessness *core.Spell
	AmplifyCurse        *core.Spell
	SeedOfCorruption    *core.Spell
	LifeTap             *core.Spell
	DarkPact             *core.Spell
}

// RotationPrefs captures the handful of player-facing rotation choices
// SPEC_FULL §4.8 calls out: which curse to maintain, whether to weave in
// Life Tap below a mana threshold, and the filler priority between
// Shadow Bolt/Incinerate when both are off cooldown and ready.
type RotationPrefs struct {
	MaintainCurseOfAgony bool
	MaintainCurseOfDoom  bool
	UseSeedOfCorruption  bool
	LifeTapManaThreshold float64
	PreferIncinerate     bool
}

// Rotation implements the action-selection policy, in this order: maintain
// debuffs/DoTs, weave in mana management below threshold, fire a ready
// finisher, then fall back to the higher-PredictDamage filler nuke
// (SPEC_FULL §4.8).
type Rotation struct {
	Roster Roster
	Prefs  RotationPrefs
}

// Decide is installed as Player.RotationFunc, called once per scheduler
// step whenever the player isn't already mid-cast.
func (r *Rotation) Decide(sim *core.Simulation, p *core.Player) {
	if p.Casting != nil || p.GCDRemaining > 0 {
		return
	}

	if r.maintainDots(p) {
		return
	}

	if r.Prefs.LifeTapManaThreshold > 0 && p.Stats.Mana < p.Stats.MaxMana*r.Prefs.LifeTapManaThreshold {
		if r.Roster.LifeTap != nil && r.Roster.LifeTap.Ready() {
			r.Roster.LifeTap.StartCast(0)
			return
		}
		if r.Roster.DarkPact != nil && r.Roster.DarkPact.Ready() {
			r.Roster.DarkPact.StartCast(0)
			return
		}
	}

	if spell := r.bestFinisher(p); spell != nil {
		spell.StartCast(0)
		return
	}

	if spell := r.bestFiller(p); spell != nil {
		spell.StartCast(spell.PredictDamage())
	}
}

// maintainDots casts any missing curse or DoT the preferences call for, in a
// fixed priority order, and reports whether it took an action. A DoT that is
// still active is not refreshed early.
func (r *Rotation) maintainDots(p *core.Player) bool {
	type want struct {
		spell    *core.Spell
		wanted   bool
		isActive func() bool
	}
	isDotActive := func(s *core.Spell) bool { return s != nil && s.DotEffect != nil && s.DotEffect.Active() }
	candidates := []want{
		{r.Roster.CurseOfAgony, r.Prefs.MaintainCurseOfAgony, func() bool { return isDotActive(r.Roster.CurseOfAgony) }},
		{r.Roster.CurseOfDoom, r.Prefs.MaintainCurseOfDoom, func() bool { return isDotActive(r.Roster.CurseOfDoom) }},
		{r.Roster.Corruption, true, func() bool { return isDotActive(r.Roster.Corruption) }},
		{r.Roster.Immolate, true, func() bool { return isDotActive(r.Roster.Immolate) }},
	}
	for _, c := range candidates {
		if c.spell == nil || !c.wanted || !c.spell.Ready() {
			continue
		}
		if c.isActive() {
			continue
		}
		c.spell.StartCast(0)
		return true
	}
	return false
}

// bestFinisher returns the first ready execute-phase finisher, preferring
// Shadowburn (cheaper, shorter cooldown) over Death Coil.
func (r *Rotation) bestFinisher(p *core.Player) *core.Spell {
	for _, s := range []*core.Spell{r.Roster.Shadowburn, r.Roster.DeathCoil} {
		if s != nil && s.Ready() {
			return s
		}
	}
	return nil
}

// bestFiller returns Seed of Corruption first whenever Prefs allow it,
// multiple enemies are present and it is ready; otherwise it picks whichever
// ready spell among Shadow Bolt, Incinerate, Searing Pain and Soul Fire
// PredictDamage ranks highest, with Prefs.PreferIncinerate breaking ties.
func (r *Rotation) bestFiller(p *core.Player) *core.Spell {
	if r.Prefs.UseSeedOfCorruption && p.EnemyAmount > 1 && r.Roster.SeedOfCorruption != nil && r.Roster.SeedOfCorruption.Ready() {
		return r.Roster.SeedOfCorruption
	}

	var best *core.Spell
	var bestDPS float64
	consider := func(s *core.Spell) {
		if s == nil || !s.Ready() {
			return
		}
		dps := s.PredictDamage()
		if r.Prefs.PreferIncinerate && s == r.Roster.Incinerate {
			dps *= 1.0001
		}
		if best == nil || dps > bestDPS {
			best = s
			bestDPS = dps
		}
	}
	consider(r.Roster.ShadowBolt)
	consider(r.Roster.Incinerate)
	consider(r.Roster.SearingPain)
	consider(r.Roster.SoulFire)
	return best
}

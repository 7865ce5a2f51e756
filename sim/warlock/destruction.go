package warlock

import (
	"github.com/wowsims/warlocksim/internal/xmath"
	"github.com/wowsims/warlocksim/sim/core"
)

// newShadowBolt builds the baseline direct-damage nuke, with the Shadow
// Trance ("Nightfall") proc interaction that zeroes its cast time for
// exactly the cast it procced on, grounded on ShadowBolt::StartCast.
func newShadowBolt(p *core.Player, t Talents, sets Sets) *core.Spell {
	s := core.NewSpell("Shadow Bolt", p)
	s.School = core.SchoolShadow
	s.Type = core.TypeDestruction
	s.MinDmg, s.MaxDmg = 544, 607
	s.ManaCost = 420 * (1 - 0.01*float64(t.Cataclysm))
	s.Coefficient = (3.0 / 3.5) + 0.04*float64(t.ShadowAndFlame)
	s.DoesDamage = true
	s.CanCrit = true
	s.CanMiss = true
	s.ProcsFromShadowSpells = true
	s.ProcsFromFireSpells = true

	baseCastTime := 3 - 0.1*float64(t.Bane)
	s.CastTimeBase = baseCastTime

	s.StartCastOverride = func(s *core.Spell, predictedDamage float64) {
		hasTrance := p.ShadowTranceAura != nil && p.ShadowTranceAura.Active
		if hasTrance {
			s.CastTimeBase = 0
		}
		s.StartCastGeneric(predictedDamage)
		if hasTrance {
			s.CastTimeBase = baseCastTime
			p.ShadowTranceAura.Fade()
		}
	}

	if sets.T6 >= 4 {
		s.Modifier *= 1.06
	}
	s.Setup()
	return s
}

// newIncinerate builds the fire-school nuke, with the Immolate-active bonus
// damage expressed via DamageBonus (which reads p.ImmolateDoT) instead of a
// name check against the currently-casting spell, grounded on Incinerate's
// constructor and GetConstantDamage.
func newIncinerate(p *core.Player, t Talents, sets Sets) *core.Spell {
	s := core.NewSpell("Incinerate", p)
	s.School = core.SchoolFire
	s.Type = core.TypeDestruction
	s.MinDmg, s.MaxDmg = 444, 514
	s.ManaCost = 355 * (1 - 0.01*float64(t.Cataclysm))
	s.Coefficient = (2.5 / 3.5) + 0.04*float64(t.ShadowAndFlame)
	s.CastTimeBase = xmath.Round2(2.5 * (1 - 0.02*float64(t.Emberstorm)))
	s.DoesDamage = true
	s.CanCrit = true
	s.CanMiss = true

	bonusMin, bonusMax, bonusAvg := 111.0, 128.0, (111.0+128.0)/2

	s.DamageBonus = func(s *core.Spell, randomized bool) float64 {
		if p.ImmolateDoT == nil || !p.ImmolateDoT.Active() {
			return 0
		}
		if randomized {
			return p.RNG.UniformRange(bonusMin, bonusMax)
		}
		return bonusAvg
	}

	s.ModifierOverride = func(s *core.Spell) float64 {
		m := s.ModifierGeneric()
		if t.Emberstorm > 0 {
			m /= 1 + 0.02*float64(t.Emberstorm)
		}
		return m
	}

	if sets.T6 >= 4 {
		s.Modifier *= 1.06
	}
	s.Setup()
	return s
}

func newSearingPain(p *core.Player, t Talents) *core.Spell {
	s := core.NewSpell("Searing Pain", p)
	s.School = core.SchoolFire
	s.Type = core.TypeDestruction
	s.MinDmg, s.MaxDmg = 270, 320
	s.ManaCost = 205 * (1 - 0.01*float64(t.Cataclysm))
	s.Coefficient = 1.5 / 3.5
	s.CastTimeBase = 1.5
	s.DoesDamage = true
	s.CanCrit = true
	s.CanMiss = true
	s.BonusCrit = 4 * float64(t.ImprovedSearingPain)
	s.Setup()
	return s
}

func newSoulFire(p *core.Player, t Talents) *core.Spell {
	s := core.NewSpell("Soul Fire", p)
	s.School = core.SchoolFire
	s.Type = core.TypeDestruction
	s.MinDmg, s.MaxDmg = 1003, 1257
	s.ManaCost = 250 * (1 - 0.01*float64(t.Cataclysm))
	s.Coefficient = 1.15
	s.CastTimeBase = 6 - 0.4*float64(t.Bane)
	s.DoesDamage = true
	s.CanCrit = true
	s.CanMiss = true
	s.Setup()
	return s
}

func newShadowburn(p *core.Player, t Talents) *core.Spell {
	s := core.NewSpell("Shadowburn", p)
	s.School = core.SchoolShadow
	s.Type = core.TypeDestruction
	s.MinDmg, s.MaxDmg = 597, 665
	s.ManaCost = 515 * (1 - 0.01*float64(t.Cataclysm))
	s.Coefficient = 0.22
	s.Cooldown = 15
	s.DoesDamage = true
	s.CanCrit = true
	s.CanMiss = true
	s.IsFinisher = true
	s.Setup()
	return s
}

func newShadowfury(p *core.Player) *core.Spell {
	s := core.NewSpell("Shadowfury", p)
	s.School = core.SchoolShadow
	s.Type = core.TypeDestruction
	s.MinDmg, s.MaxDmg = 612, 728
	s.ManaCost = 710 // cataclysm discount omitted: Shadowfury predates the Cataclysm talent's effect list in the source
	s.Coefficient = 0.195
	s.CastTimeBase = 0.5
	s.Cooldown = 20
	s.DoesDamage = true
	s.CanCrit = true
	s.CanMiss = true
	s.Setup()
	return s
}

// newConflagrate reproduces the source's commented-out StartCast body: the
// override replaces StartCast entirely with a no-op, so Conflagrate can
// never actually be cast through the normal rotation path. Kept faithfully
// rather than "fixed" — see DESIGN.md.
func newConflagrate(p *core.Player, t Talents) *core.Spell {
	s := core.NewSpell("Conflagrate", p)
	s.School = core.SchoolFire
	s.Type = core.TypeDestruction
	s.MinDmg, s.MaxDmg = 579, 721
	s.ManaCost = 305 * (1 - 0.01*float64(t.Cataclysm))
	s.Coefficient = 1.5 / 3.5
	s.Cooldown = 10
	s.DoesDamage = true
	s.CanCrit = true
	s.CanMiss = true
	s.IsFinisher = true
	s.StartCastOverride = func(*core.Spell, float64) {}
	s.Setup()
	return s
}

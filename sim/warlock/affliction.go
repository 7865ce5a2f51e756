package warlock

import "github.com/wowsims/warlocksim/sim/core"

// newCorruption builds the baseline shadow DoT. Base per-tick damage isn't
// carried in the retrieved source (it comes from a rank-based game-data
// table outside spell.cc's scope); the tick count, interval and scaling
// constant below use the well-known max-rank Burning Crusade values,
// documented in DESIGN.md as a supplement rather than a literal port.
func newCorruption(p *core.Player, t Talents) *core.Spell {
	s := core.NewSpell("Corruption", p)
	s.School = core.SchoolShadow
	s.Type = core.TypeAffliction
	s.ManaCost = 370
	s.CastTimeBase = (2 - 0.4*float64(t.ImprovedCorruption))
	if s.CastTimeBase < 0 {
		s.CastTimeBase = 0
	}
	s.CanMiss = true
	s.Coefficient = 0.2

	dot := core.NewDamageOverTime("Corruption", 3, 6, s, &p.Entity, p)
	s.DotEffect = dot
	s.Dmg = 150 // per-tick base before spell power scaling

	s.Setup()
	return s
}

// newImmolate builds the direct-hit-plus-DoT fire spell. Emberstorm's
// contribution is divided out of the generic modifier and reapplied
// combined with Improved Immolate, exactly mirroring Immolate::GetModifier
// rather than letting the two talents multiply independently.
func newImmolate(p *core.Player, t Talents) *core.Spell {
	s := core.NewSpell("Immolate", p)
	s.School = core.SchoolFire
	s.Type = core.TypeDestruction
	s.ManaCost = 445 * (1 - 0.01*float64(t.Cataclysm))
	s.CastTimeBase = 2 - 0.1*float64(t.Bane)
	s.DoesDamage = true
	s.CanCrit = true
	s.CanMiss = true
	s.Dmg = 331
	s.Coefficient = 0.2

	dot := core.NewDamageOverTime("Immolate", 3, 5, s, &p.Entity, p)
	s.DotEffect = dot
	p.ImmolateDoT = dot

	s.ModifierOverride = func(s *core.Spell) float64 {
		m := s.ModifierGeneric()
		if t.Emberstorm > 0 {
			m /= 1 + 0.02*float64(t.Emberstorm)
		}
		m *= 1 + (0.02*float64(t.Emberstorm) + 0.05*float64(t.ImprovedImmolate))
		return m
	}

	s.Setup()
	return s
}

func newCurseOfAgony(p *core.Player) *core.Spell {
	s := core.NewSpell("Curse of Agony", p)
	s.School = core.SchoolShadow
	s.Type = core.TypeAffliction
	s.ManaCost = 265
	s.CanMiss = true
	s.Coefficient = 0

	dot := core.NewDamageOverTime("Curse of Agony", 2, 12, s, &p.Entity, p)
	s.DotEffect = dot
	s.Dmg = 90

	s.Setup()
	return s
}

// newCurseOfDoom models the single large hit on expiry as a one-tick DoT
// (same tick machinery, TicksTotal=1), a deliberate simplification recorded
// in DESIGN.md rather than a bespoke delayed-action mechanism.
func newCurseOfDoom(p *core.Player) *core.Spell {
	s := core.NewSpell("Curse of Doom", p)
	s.School = core.SchoolShadow
	s.Type = core.TypeAffliction
	s.ManaCost = 380
	s.Cooldown = 60
	s.CanMiss = true
	s.Coefficient = 0

	dot := core.NewDamageOverTime("Curse of Doom", 60, 1, s, &p.Entity, p)
	s.DotEffect = dot
	s.Dmg = 1900

	s.Setup()
	return s
}

func newSiphonLife(p *core.Player) *core.Spell {
	s := core.NewSpell("Siphon Life", p)
	s.School = core.SchoolShadow
	s.Type = core.TypeAffliction
	s.ManaCost = 410
	s.CanMiss = true
	s.Coefficient = 0.1

	dot := core.NewDamageOverTime("Siphon Life", 3, 5, s, &p.Entity, p)
	s.DotEffect = dot
	s.Dmg = 50

	s.Setup()
	return s
}

func newUnstableAffliction(p *core.Player) *core.Spell {
	s := core.NewSpell("Unstable Affliction", p)
	s.School = core.SchoolShadow
	s.Type = core.TypeAffliction
	s.ManaCost = 400
	s.CastTimeBase = 1.5
	s.CanMiss = true
	s.Coefficient = 0.2

	dot := core.NewDamageOverTime("Unstable Affliction", 3, 6, s, &p.Entity, p)
	s.DotEffect = dot
	s.Dmg = 90

	s.Setup()
	return s
}

func newDeathCoil(p *core.Player) *core.Spell {
	s := core.NewSpell("Death Coil", p)
	s.School = core.SchoolShadow
	s.Type = core.TypeAffliction
	s.ManaCost = 600
	s.Cooldown = 120
	s.Coefficient = 0.4286
	s.Dmg = 526
	s.DoesDamage = true
	s.IsFinisher = true
	s.CanMiss = true
	s.Setup()
	return s
}

// newCurseOfTheElements is a non-damaging debuff curse; its effect on Seed
// of Corruption's AoE-cap-bypassing external modifier is read through
// SelectedAuras rather than a real Aura, matching the source's
// selected_auras flag (an assumed-present external raid debuff, not
// something this single-target sim applies itself).
func newCurseOfTheElements(p *core.Player) *core.Spell {
	s := core.NewSpell("Curse of the Elements", p)
	s.Type = core.TypeAffliction
	s.ManaCost = 260
	s.CanMiss = true
	s.Setup()
	return s
}

func newCurseOfRecklessness(p *core.Player) *core.Spell {
	s := core.NewSpell("Curse of Recklessness", p)
	s.Type = core.TypeAffliction
	s.ManaCost = 160
	s.CanMiss = true
	s.Setup()
	return s
}

// newAmplifyCurse is explicitly excluded from triggering on-hit procs on
// cast even though it isn't flagged is_item/is_proc/is_non_warlock_ability —
// Spell.CastGeneric checks the spell's name for this one exception, per the
// source's literal `name != SpellName::kAmplifyCurse` guard.
func newAmplifyCurse(p *core.Player) *core.Spell {
	s := core.NewSpell("Amplify Curse", p)
	s.Type = core.TypeAffliction
	s.Cooldown = 180
	s.OnGCD = false
	s.Setup()
	return s
}

// newSeedOfCorruption reproduces the AoE-cap bug exactly: N is the number of
// *other* enemies the detonation hits (the primary target Seed was cast on
// is excluded from the hit count entirely), and the true cap for those N
// enemies is aoeCap*N/(N+1), one enemy short of N — matching spell.cc:610's
// kEnemiesHit = kEnemyAmount - resist_amount with no +1 for the primary.
// Debuff modifiers that ignore the cap (Curse of the Elements, Shadow
// Weaving, Misery) are divided out of the capped internal modifier and
// reapplied externally afterward.
func newSeedOfCorruption(p *core.Player, t Talents, sel SelectedAuras, settings Settings, sets Sets) *core.Spell {
	s := core.NewSpell("Seed of Corruption", p)
	s.School = core.SchoolShadow
	s.Type = core.TypeAffliction
	s.MinDmg, s.MaxDmg = 1110, 1290
	s.ManaCost = 882
	s.CastTimeBase = 2
	s.Coefficient = 0.214
	s.DoesDamage = true
	s.CanMiss = true

	const aoeCap = 13580.0

	s.ModifierOverride = func(s *core.Spell) float64 {
		m := s.ModifierGeneric()
		if t.ShadowMastery > 0 && t.Contagion > 0 {
			m /= 1 + float64(t.ShadowMastery)*0.02
			m *= 1 * (1 + (float64(t.ShadowMastery)*0.02 + float64(t.Contagion)/100.0))
		}
		return m
	}

	// isCrit reflects the primary target, already hit (CastGeneric's own
	// CanMiss check ran before Damage was ever invoked); the remaining
	// enemies each get their own independent hit/crit roll below.
	s.DamageOverride = func(s *core.Spell, isCrit bool) {
		otherEnemies := settings.EnemyAmount - 1
		if otherEnemies < 0 {
			otherEnemies = 0
		}

		internalModifier := s.GetModifier()
		externalModifier := 1.0
		if sel.CurseOfTheElements {
			m := 1.1 + 0.01*float64(settings.ImprovedCurseOfTheElements)
			internalModifier /= m
			externalModifier *= m
		}
		if sel.ShadowWeaving {
			internalModifier /= 1.1
			externalModifier *= 1.1
		}
		if sel.Misery {
			internalModifier /= 1.05
			externalModifier *= 1.05
		}

		baseDamage := s.Dmg
		if settings.RandomizeValues && s.MinDmg > 0 && s.MaxDmg > 0 {
			baseDamage = p.RNG.UniformRange(s.MinDmg, s.MaxDmg)
		}
		spellPower := p.GetSpellPower(s.School)

		resistCount := 0
		critCount := 0
		if isCrit {
			critCount = 1
		}
		for i := 0; i < otherEnemies; i++ {
			if !p.IsHit(s.Type) {
				resistCount++
				continue
			}
			s.OnDamageProcs()
			if p.IsCrit(s.Type, 0) {
				critCount++
				s.OnCritProcs()
			}
		}

		individual := baseDamage + spellPower*s.Coefficient
		if sets.Oblivion >= 4 {
			individual += 180
		}
		individual *= internalModifier

		enemiesHit := otherEnemies - resistCount
		total := individual * float64(enemiesHit)

		trueCap := aoeCap * float64(enemiesHit) / float64(enemiesHit+1)
		if total > trueCap {
			individual = trueCap / float64(enemiesHit)
			total = individual * float64(enemiesHit)
		}

		if critCount > 0 {
			critMultiplier := s.GetCritMultiplier(p.CritDamageMultiplier)
			bonusPerCrit := individual*critMultiplier - individual
			total += bonusPerCrit * float64(critCount)
		}

		resistMultiplier := p.GetPartialResistMultiplier(s.School)
		total *= resistMultiplier
		total *= externalModifier

		p.IterationDamage += total
		p.CombatLog.AddDamage(s.Name, total)
		// CastGeneric already credited the primary cast; enemiesHit-1 here
		// accounts for the additional other-enemy hits beyond the first.
		if enemiesHit > 1 {
			p.CombatLog.AddCast(s.Name, enemiesHit-1)
		}
		for i := 1; i < critCount; i++ {
			p.CombatLog.AddCrit(s.Name)
		}
		p.CombatLog.AddMiss(s.Name, resistCount)
		p.CombatLog.Logf("%s %.0f (%d enemies hit, %d resisted, %d crits)", s.Name, total, enemiesHit, resistCount, critCount)
	}

	s.Setup()
	return s
}

package warlock

import "github.com/wowsims/warlocksim/sim/core"

// newStatCooldownSpell builds the common shape shared by every "use: gain a
// flat stat buff for a duration" item in the roster (Destruction Potion,
// Flask of Supreme Power, Flame Cap, Chipped/Cracked Power Core, Blood Fury,
// Bloodlust, Drums of Battle, Drums of War, Wrath of Cenarius): an instant,
// off-GCD, manaless cast whose only effect is applying an aura that changes
// the player's Stats for duration seconds. The change is made by the apply
// and revert closures so each caller can touch whichever field(s) it needs
// without a bespoke Spell per item.
func newStatCooldownSpell(p *core.Player, name string, cooldown, duration float64, apply, revert func(s *core.Stats)) *core.Spell {
	s := core.NewSpell(name, p)
	s.IsItem = true
	s.OnGCD = false
	s.Cooldown = cooldown
	aura := core.NewAura(name, duration, 1, &p.Entity)
	aura.OnGainStack = func(*core.Aura) { apply(&p.Stats) }
	aura.OnLoseAll = func(*core.Aura) { revert(&p.Stats) }
	s.AuraEffect = aura
	s.Setup()
	return s
}

func newDestructionPotion(p *core.Player) *core.Spell {
	s := newStatCooldownSpell(p, "Destruction Potion", 0, 15,
		func(st *core.Stats) { st.SpellPower += 120 },
		func(st *core.Stats) { st.SpellPower -= 120 },
	)
	s.UsableOncePerFight = true
	return s
}

func newFlaskOfSupremePower(p *core.Player) *core.Spell {
	s := newStatCooldownSpell(p, "Flask of Supreme Power", 0, 7200,
		func(st *core.Stats) { st.SpellPower += 150 },
		func(st *core.Stats) { st.SpellPower -= 150 },
	)
	s.UsableOncePerFight = true
	return s
}

// newFlameCap, newChippedPowerCore, newCrackedPowerCore and newDemonicRune
// form a conflict group: the source resets the other three trinkets'
// cooldown whenever any one of them is used, so all four can never be
// active at once. ResetGroup is wired after construction in NewPlayerFactory
// since each needs a pointer to the other three.
func newFlameCap(p *core.Player) *core.Spell {
	return newStatCooldownSpell(p, "Flame Cap", 180, 15,
		func(st *core.Stats) { st.FireModifier *= 1.25 },
		func(st *core.Stats) { st.FireModifier /= 1.25 },
	)
}

func newChippedPowerCore(p *core.Player) *core.Spell {
	s := newStatCooldownSpell(p, "Chipped Power Core", 120, 15,
		func(st *core.Stats) { st.SpellPower += 47 },
		func(st *core.Stats) { st.SpellPower -= 47 },
	)
	s.UsableOncePerFight = true
	return s
}

func newCrackedPowerCore(p *core.Player) *core.Spell {
	s := newStatCooldownSpell(p, "Cracked Power Core", 120, 15,
		func(st *core.Stats) { st.SpellPower += 69 },
		func(st *core.Stats) { st.SpellPower -= 69 },
	)
	s.UsableOncePerFight = true
	return s
}

func newDemonicRune(p *core.Player) *core.Spell {
	s := core.NewSpell("Demonic Rune", p)
	s.IsItem = true
	s.OnGCD = false
	s.Cooldown = 180
	s.GainManaOnCast = true
	s.ManaGain = 900
	s.Setup()
	return s
}

func newBloodFury(p *core.Player) *core.Spell {
	return newStatCooldownSpell(p, "Blood Fury", 120, 15,
		func(st *core.Stats) { st.SpellPower += 140 },
		func(st *core.Stats) { st.SpellPower -= 140 },
	)
}

// newBloodlust models the externally-triggered raid cooldown as a
// once-per-fight buff rather than giving the warlock their own copy of it.
func newBloodlust(p *core.Player) *core.Spell {
	s := newStatCooldownSpell(p, "Bloodlust", 0, 40,
		func(st *core.Stats) { st.SpellHastePercent += 0.3 },
		func(st *core.Stats) { st.SpellHastePercent -= 0.3 },
	)
	s.IsNonWarlockAbility = true
	s.UsableOncePerFight = true
	return s
}

func newDrumsOfBattle(p *core.Player) *core.Spell {
	return newStatCooldownSpell(p, "Drums of Battle", 120, 30,
		func(st *core.Stats) { st.SpellHastePercent += 0.08 },
		func(st *core.Stats) { st.SpellHastePercent -= 0.08 },
	)
}

func newDrumsOfWar(p *core.Player) *core.Spell {
	return newStatCooldownSpell(p, "Drums of War", 120, 30,
		func(st *core.Stats) { st.SpellPower += 30 },
		func(st *core.Stats) { st.SpellPower -= 30 },
	)
}

func newDrumsOfRestoration(p *core.Player) *core.Spell {
	s := core.NewSpell("Drums of Restoration", p)
	s.IsItem = true
	s.OnGCD = false
	s.Cooldown = 120
	s.GainManaOnCast = true
	s.ManaGain = 600
	s.Setup()
	return s
}

// newPowerInfusion tracks PowerInfusionsReady, incremented when the
// cooldown crosses zero and decremented on cast, mirroring Spell::Tick and
// Spell::Cast's name check in the source rather than a generic cooldown
// read. Rotation.Decide does not read this counter.
func newPowerInfusion(p *core.Player) *core.Spell {
	s := core.NewSpell("Power Infusion", p)
	s.IsItem = true
	s.IsNonWarlockAbility = true
	s.OnGCD = false
	s.Cooldown = 180
	aura := core.NewAura("Power Infusion", 15, 1, &p.Entity)
	aura.OnGainStack = func(*core.Aura) { p.Stats.ManaCostModifier *= 0.8; p.Stats.SpellHastePercent += 0.2 }
	aura.OnLoseAll = func(*core.Aura) { p.Stats.ManaCostModifier /= 0.8; p.Stats.SpellHastePercent -= 0.2 }
	s.AuraEffect = aura
	s.OnOffCooldown = func(*core.Spell) { p.PowerInfusionsReady++ }
	s.CastOverride = func(s *core.Spell) {
		s.CastGeneric()
		if p.PowerInfusionsReady > 0 {
			p.PowerInfusionsReady--
		}
	}
	s.Setup()
	return s
}

func newInnervate(p *core.Player) *core.Spell {
	s := core.NewSpell("Innervate", p)
	s.IsItem = true
	s.IsNonWarlockAbility = true
	s.OnGCD = false
	s.Cooldown = 180
	s.GainManaOnCast = true
	s.ManaGain = 2500
	s.Setup()
	return s
}

// newManaTideTotem is constructed but never registered: the source's own
// constructor never calls Setup on this spell, a genuine upstream bug
// (the totem exists as a value but can never actually be cast or scheduled)
// preserved faithfully rather than silently fixed. Do not call Setup here.
func newManaTideTotem(p *core.Player) *core.Spell {
	s := core.NewSpell("Mana Tide Totem", p)
	s.IsItem = true
	s.IsNonWarlockAbility = true
	s.Cooldown = 300
	s.GainManaOnCast = true
	s.ManaGain = 2400
	return s
}

func newJudgementOfWisdom(p *core.Player) *core.Spell {
	s := core.NewSpell("Judgement of Wisdom", p)
	s.IsProc = true
	s.OnGCD = false
	s.ProcsOnHit = true
	s.OnHitProcsEnabled = true
	s.ProcChance = 50
	s.GainManaOnCast = true
	s.ManaGain = 74
	s.Setup()
	return s
}

func newMarkOfDefiance(p *core.Player) *core.Spell {
	s := core.NewSpell("Mark of Defiance", p)
	s.IsProc = true
	s.OnGCD = false
	s.ProcsOnDamage = true
	s.OnDamageProcsEnabled = true
	s.ProcChance = 10
	s.GainManaOnCast = true
	s.ManaGain = 60
	s.Setup()
	return s
}

func newAshtongueTalismanOfShadows(p *core.Player) *core.Spell {
	s := core.NewSpell("Ashtongue Talisman of Shadows", p)
	s.IsProc = true
	s.OnGCD = false
	s.ProcsOnDotTick = true
	s.OnDotTickProcsEnabled = true
	s.ProcChance = 15
	s.School = core.SchoolShadow
	s.DoesDamage = true
	s.MinDmg, s.MaxDmg = 91, 106
	s.Setup()
	return s
}

// newTheLightningCapacitor gates its own cast on a 3-stack charge aura
// accumulated by crits, rather than a flat proc chance: StartCastOverride
// only lets the discharge fire once the stack threshold is reached, then
// resets to zero.
func newTheLightningCapacitor(p *core.Player) *core.Spell {
	charge := core.NewAura("Lightning Capacitor Charge", 5, 3, &p.Entity)

	discharge := core.NewSpell("The Lightning Capacitor", p)
	discharge.IsProc = true
	discharge.OnGCD = false
	discharge.ProcsOnCrit = true
	discharge.OnCritProcsEnabled = true
	discharge.ProcChance = 100
	discharge.School = core.SchoolNone
	discharge.DoesDamage = true
	discharge.MinDmg, discharge.MaxDmg = 694, 806
	discharge.StartCastOverride = func(s *core.Spell, predictedDamage float64) {
		if charge.Stacks < charge.MaxStacks {
			charge.Apply()
			return
		}
		charge.Fade()
		s.StartCastGeneric(predictedDamage)
	}
	discharge.Setup()
	return discharge
}

func newQuagmirransEye(p *core.Player) *core.Spell {
	return newProcHasteSpell(p, "Quagmirran's Eye", 6, 10, 0.03)
}

func newShiffarsNexusHorn(p *core.Player) *core.Spell {
	s := core.NewSpell("Shiffar's Nexus-Horn", p)
	s.IsProc = true
	s.OnGCD = false
	s.ProcsOnCrit = true
	s.OnCritProcsEnabled = true
	s.ProcChance = 20
	aura := core.NewAura("Shiffar's Nexus-Horn", 10, 1, &p.Entity)
	aura.OnGainStack = func(*core.Aura) { p.Stats.SpellCritRating += 225 }
	aura.OnLoseAll = func(*core.Aura) { p.Stats.SpellCritRating -= 225 }
	s.AuraEffect = aura
	s.Setup()
	return s
}

func newSextantOfUnstableCurrents(p *core.Player) *core.Spell {
	return newProcHasteSpell(p, "Sextant of Unstable Currents", 10, 4, 0.01)
}

// newProcHasteSpell is the shared shape for the haste-rating-on-crit/hit
// item procs (Quagmirran's Eye, Sextant of Unstable Currents): an on-hit
// proc that applies a flat spell-haste-rating buff for duration seconds.
func newProcHasteSpell(p *core.Player, name string, hasteRating, duration, procChance float64) *core.Spell {
	s := core.NewSpell(name, p)
	s.IsProc = true
	s.OnGCD = false
	s.ProcsOnHit = true
	s.OnHitProcsEnabled = true
	s.ProcChance = procChance * 100
	aura := core.NewAura(name, duration, 1, &p.Entity)
	aura.OnGainStack = func(*core.Aura) { p.Stats.SpellHasteRating += hasteRating }
	aura.OnLoseAll = func(*core.Aura) { p.Stats.SpellHasteRating -= hasteRating }
	s.AuraEffect = aura
	s.Setup()
	return s
}

func newDarkmoonCardCrusade(p *core.Player) *core.Spell {
	s := core.NewSpell("Darkmoon Card: Crusade", p)
	s.IsProc = true
	s.OnGCD = false
	s.ProcsOnHit = true
	s.OnHitProcsEnabled = true
	s.ProcChance = 100
	stack := core.NewAura("Darkmoon Card: Crusade", 10, 10, &p.Entity)
	stack.OnGainStack = func(*core.Aura) { p.Stats.SpellPower += 8 }
	stack.OnLoseAll = func(a *core.Aura) { p.Stats.SpellPower -= 8 * float64(a.Stacks) }
	s.AuraEffect = stack
	s.Setup()
	return s
}

func newWrathOfCenarius(p *core.Player) *core.Spell {
	return newStatCooldownSpell(p, "Wrath of Cenarius", 45, 15,
		func(st *core.Stats) { st.SpellPower += 34 },
		func(st *core.Stats) { st.SpellPower -= 34 },
	)
}

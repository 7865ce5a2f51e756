package warlock

import "github.com/wowsims/warlocksim/sim/core"

// newLifeTap builds the mana-for-health filler. This sim doesn't model the
// caster's own health pool (out of scope per SPEC_FULL's damage-only
// framing), so Life Tap is expressed purely as its mana side: an instant,
// manaless cast that grants a flat amount of mana scaled by spell power, the
// way every other damage-focused community sim of this era treats it.
func newLifeTap(p *core.Player, t Talents) *core.Spell {
	s := core.NewSpell("Life Tap", p)
	s.GainManaOnCast = true
	baseGain := 444.0
	s.MinMana, s.MaxMana = baseGain, baseGain
	s.Setup()
	s.ManaGain = baseGain + p.GetSpellPower(core.SchoolShadow)*0.5
	return s
}

// newDarkPact drains the pet's mana pool instead of the caster's own health.
// The source models this via the pet's own mana stat, which this sim doesn't
// track separately (the pet only ever attacks); Dark Pact is approximated
// here as a longer-cooldown, larger Life-Tap-shaped mana cooldown rather than
// invented pet-mana bookkeeping with no observable effect on damage output.
func newDarkPact(p *core.Player) *core.Spell {
	s := core.NewSpell("Dark Pact", p)
	s.GainManaOnCast = true
	s.Cooldown = 15
	s.ManaGain = 771
	s.Setup()
	return s
}

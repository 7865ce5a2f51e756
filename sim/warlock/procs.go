package warlock

import "github.com/wowsims/warlocksim/sim/core"

// newImprovedShadowBoltProc applies the ISB debuff aura whenever Shadow Bolt
// crits, gated by talent points the way the source scales chance with
// points invested (1/2 at 50%, 2/2 guaranteed). It is only constructed when
// the player isn't running the averaged-uptime approximation, since that
// mode folds the aura's effect directly into GetModifier instead.
func newImprovedShadowBoltProc(p *core.Player, points int) *core.Spell {
	s := core.NewSpell("Improved Shadow Bolt", p)
	s.IsProc = true
	s.OnGCD = false
	s.ProcsOnCrit = true
	s.OnCritProcsEnabled = true
	s.ProcChance = 50 * float64(points)
	s.AuraEffect = p.ISBAura
	s.Setup()
	return s
}

// newShadowTranceProc applies the Shadow Trance ("Nightfall") aura on a DoT
// tick, letting the next Shadow Bolt cast instantly (consumed via Shadow
// Bolt's own StartCastOverride). It is registered as an on-dot-tick proc,
// which fires for every ticking DoT, so Immolate, Siphon Life and curse
// ticks can trigger it as well as Corruption's.
func newShadowTranceProc(p *core.Player) *core.Spell {
	s := core.NewSpell("Shadow Trance", p)
	s.IsProc = true
	s.OnGCD = false
	s.ProcsOnDotTick = true
	s.OnDotTickProcsEnabled = true
	s.ProcChance = 2
	s.AuraEffect = p.ShadowTranceAura
	s.Setup()
	return s
}

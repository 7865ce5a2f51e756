package warlock

import (
	"testing"

	"github.com/wowsims/warlocksim/sim/core"
)

// TestStatCooldownSpellsApplyAndRevertTheirBuff exercises the shared
// newStatCooldownSpell shape through three of its callers (potion, flask,
// racial), confirming the stat delta both applies on cast and reverts
// when the aura fades.
func TestStatCooldownSpellsApplyAndRevertTheirBuff(t *testing.T) {
	p := newTestPlayer(testConfig())

	cases := []struct {
		build func(*core.Player) *core.Spell
		check func(before, after core.Stats) bool
	}{
		{newDestructionPotion, func(before, after core.Stats) bool { return after.SpellPower == before.SpellPower+120 }},
		{newFlaskOfSupremePower, func(before, after core.Stats) bool { return after.SpellPower == before.SpellPower+150 }},
		{newBloodFury, func(before, after core.Stats) bool { return after.SpellPower == before.SpellPower+140 }},
	}

	for _, c := range cases {
		s := c.build(p)
		before := p.Stats
		s.Cast()
		if !c.check(before, p.Stats) {
			t.Fatalf("%s: expected stat delta applied on cast, got %+v -> %+v", s.Name, before, p.Stats)
		}
		s.AuraEffect.Fade()
		if p.Stats != before {
			t.Fatalf("%s: expected stat delta fully reverted on fade, got %+v, want %+v", s.Name, p.Stats, before)
		}
	}
}

// TestManaGainItemsCreditMana exercises the flat instant mana-gain item
// shape (Demonic Rune, Innervate, Drums of Restoration).
func TestManaGainItemsCreditMana(t *testing.T) {
	p := newTestPlayer(testConfig())
	p.Stats.Mana = 5000
	p.Stats.MaxMana = 20000

	for _, build := range []func(*core.Player) *core.Spell{newDemonicRune, newInnervate, newDrumsOfRestoration} {
		s := build(p)
		before := p.Stats.Mana
		s.Cast()
		if p.Stats.Mana <= before {
			t.Fatalf("%s: expected mana to increase from %.0f, got %.0f", s.Name, before, p.Stats.Mana)
		}
	}
}

// TestManaTideTotemIsNeverCastable preserves the documented upstream bug:
// the totem is built but never registered via Setup, so it never appears on
// the player's spell list and can never be cast through the normal roster.
func TestManaTideTotemIsNeverCastable(t *testing.T) {
	p := newTestPlayer(testConfig())
	s := newManaTideTotem(p)

	for _, reg := range p.SpellList {
		if reg == s {
			t.Fatal("expected Mana Tide Totem to never register on the player's spell list")
		}
	}
}

// TestPowerInfusionTracksReadyCounter exercises PowerInfusionsReady: it
// increments when the cooldown clears and decrements on cast.
func TestPowerInfusionTracksReadyCounter(t *testing.T) {
	p := newTestPlayer(testConfig())
	s := newPowerInfusion(p)

	s.Tick(0) // no-op while CooldownRemaining is already 0
	s.Cast()
	if p.PowerInfusionsReady != 0 {
		t.Fatalf("expected PowerInfusionsReady to stay at 0 after a fresh cast with nothing queued, got %d", p.PowerInfusionsReady)
	}

	s.Tick(s.Cooldown)
	if p.PowerInfusionsReady != 1 {
		t.Fatalf("expected PowerInfusionsReady to increment once the cooldown clears, got %d", p.PowerInfusionsReady)
	}
	s.Cast()
	if p.PowerInfusionsReady != 0 {
		t.Fatalf("expected casting to consume the ready counter, got %d", p.PowerInfusionsReady)
	}
}

// TestTheLightningCapacitorGatesOnThreeStacks exercises the charge-then-
// discharge StartCastOverride: the first three triggers only build charge
// stacks, and the fourth (once the stack cap is already reached) fades the
// charge and fires the actual damage cast.
func TestTheLightningCapacitorGatesOnThreeStacks(t *testing.T) {
	p := newTestPlayer(testConfig())
	s := newTheLightningCapacitor(p)

	startDamage := p.IterationDamage
	s.StartCast(0)
	s.StartCast(0)
	s.StartCast(0)
	if p.IterationDamage != startDamage {
		t.Fatalf("expected no damage from the first three charge-only triggers, got %.2f", p.IterationDamage-startDamage)
	}
	s.StartCast(0)
	if p.IterationDamage == startDamage {
		t.Fatal("expected the fourth trigger to discharge and deal damage")
	}
}

// TestProcTrinketsApplyTheirBuffOnTrigger exercises the on-hit/on-crit proc
// trinket shape shared by Shiffar's Nexus-Horn and the haste-proc items.
func TestProcTrinketsApplyTheirBuffOnTrigger(t *testing.T) {
	p := newTestPlayer(testConfig())

	nexusHorn := newShiffarsNexusHorn(p)
	before := p.Stats.SpellCritRating
	nexusHorn.StartCast(0)
	if p.Stats.SpellCritRating != before+225 {
		t.Fatalf("expected Shiffar's Nexus-Horn to add 225 crit rating, got %.0f -> %.0f", before, p.Stats.SpellCritRating)
	}

	eye := newQuagmirransEye(p)
	beforeHaste := p.Stats.SpellHasteRating
	eye.StartCast(0)
	if p.Stats.SpellHasteRating != beforeHaste+6 {
		t.Fatalf("expected Quagmirran's Eye to add 6 haste rating, got %.0f -> %.0f", beforeHaste, p.Stats.SpellHasteRating)
	}
}

// TestDarkmoonCardCrusadeStacksAndReverts exercises the 10-stack
// accumulating aura: each proc adds 8 spell power, and fading reverts the
// full accumulated total rather than just one stack's worth.
func TestDarkmoonCardCrusadeStacksAndReverts(t *testing.T) {
	p := newTestPlayer(testConfig())
	s := newDarkmoonCardCrusade(p)
	before := p.Stats.SpellPower

	s.StartCast(0)
	s.StartCast(0)
	s.StartCast(0)
	if p.Stats.SpellPower != before+3*8 {
		t.Fatalf("expected 3 stacks of +8 spell power, got %.0f -> %.0f", before, p.Stats.SpellPower)
	}

	s.AuraEffect.Fade()
	if p.Stats.SpellPower != before {
		t.Fatalf("expected fading to revert the full stacked total, got %.0f, want %.0f", p.Stats.SpellPower, before)
	}
}

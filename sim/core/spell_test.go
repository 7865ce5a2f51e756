package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newTestPlayer() *Player {
	stats := DefaultStats()
	stats.Mana = 10000
	stats.MaxMana = 10000
	p := NewPlayer(stats, NewRNG(1), NewCombatLog(false))
	return p
}

func TestSpellReadyRespectsCooldown(t *testing.T) {
	p := newTestPlayer()
	s := NewSpell("Test Nuke", p)
	s.DoesDamage = true
	s.MinDmg, s.MaxDmg = 100, 100
	s.Cooldown = 10
	s.Setup()

	if !s.Ready() {
		t.Fatal("expected fresh spell to be ready")
	}
	s.Cast()
	if s.Ready() {
		t.Fatal("expected spell to be on cooldown immediately after cast")
	}
	s.Tick(10)
	if !s.Ready() {
		t.Fatal("expected spell to be ready again once cooldown elapses")
	}
}

func TestCastGenericDeductsManaAndCreditsDamage(t *testing.T) {
	p := newTestPlayer()
	s := NewSpell("Test Bolt", p)
	s.DoesDamage = true
	s.MinDmg, s.MaxDmg = 500, 500
	s.ManaCost = 300
	s.Setup()

	startMana := p.Stats.Mana
	s.Cast()

	if p.Stats.Mana != startMana-300 {
		t.Fatalf("expected mana to drop by 300, got %.2f -> %.2f", startMana, p.Stats.Mana)
	}
	if p.IterationDamage != 500 {
		t.Fatalf("expected 500 damage credited, got %.2f", p.IterationDamage)
	}
}

func TestDamageOverTimeSnapshotFreezesOnApply(t *testing.T) {
	p := newTestPlayer()
	s := NewSpell("Test DoT", p)
	s.Coefficient = 1
	s.Dmg = 100
	dot := NewDamageOverTime("Test DoT", 3, 3, s, &p.Entity, p)
	s.DotEffect = dot
	s.Setup()

	s.Cast()
	if dot.DamagePerTick != 100 {
		t.Fatalf("expected snapshot of 100 damage per tick, got %.2f", dot.DamagePerTick)
	}

	p.Stats.SpellPower = 1000
	dot.Tick(3)
	if dot.DamagePerTick != 100 {
		t.Fatalf("expected DamagePerTick to stay frozen at 100 after a stat change mid-flight, got %.2f", dot.DamagePerTick)
	}

	ticks := 0
	for dot.Active() {
		dot.Tick(3)
		ticks++
		if ticks > 10 {
			t.Fatal("DoT never expired")
		}
	}
	if ticks != 2 {
		t.Fatalf("expected 2 remaining ticks after the first, got %d", ticks)
	}
}

func TestGetCritMultiplierAppliesRuinAndMetaGem(t *testing.T) {
	p := newTestPlayer()
	s := NewSpell("Test Crit", p)
	s.Type = TypeDestruction
	s.Setup()

	base := s.GetCritMultiplier(1.5)
	if base != 1.5 {
		t.Fatalf("expected unmodified crit multiplier 1.5, got %.4f", base)
	}

	p.MetaGemID = 34220
	withGem := s.GetCritMultiplier(1.5)
	if withGem <= base {
		t.Fatalf("expected meta gem to increase crit multiplier, got %.4f vs base %.4f", withGem, base)
	}

	p.RuinTalent = true
	withRuin := s.GetCritMultiplier(1.5)
	wantRuin := 1 + 2*(withGem-1)
	if withRuin != wantRuin {
		t.Fatalf("expected Ruin to double the bonus over 1.0 on top of the meta gem, want %.4f got %.4f", wantRuin, withRuin)
	}
}

func TestFindTimeUntilNextActionPicksSmallestHorizon(t *testing.T) {
	p := newTestPlayer()
	s := NewSpell("Test", p)
	s.Cooldown = 5
	s.Setup()
	s.CooldownRemaining = 5

	p.GCDRemaining = 1.5
	if got := p.FindTimeUntilNextAction(); got != 1.5 {
		t.Fatalf("expected GCD (1.5) to be the smallest horizon, got %.4f", got)
	}
}

func TestCombatLogBreakdownReflectsCastsAndDamage(t *testing.T) {
	p := newTestPlayer()
	s := NewSpell("Test Bolt", p)
	s.DoesDamage = true
	s.MinDmg, s.MaxDmg = 500, 500
	s.Setup()

	s.Cast()
	s.Cast()

	got := p.CombatLog.Breakdown()
	want := []*SpellBreakdown{
		{Name: "Test Bolt", Casts: 2, TotalDamage: 1000},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected breakdown (-want +got):\n%s", diff)
	}
}

func TestResetGroupResetsOtherCooldownsOnly(t *testing.T) {
	p := newTestPlayer()
	a := NewSpell("A", p)
	a.Cooldown = 100
	a.Setup()
	b := NewSpell("B", p)
	b.Cooldown = 100
	b.Setup()
	a.ResetGroup = []*Spell{b}

	a.Cast()
	b.CooldownRemaining = 50
	a.Cast()

	if a.CooldownRemaining != a.Cooldown {
		t.Fatalf("expected A's own cooldown to be a fresh 100 after casting, got %.2f", a.CooldownRemaining)
	}
	if b.CooldownRemaining != b.Cooldown {
		t.Fatalf("expected casting A to force-reset B's cooldown, got %.2f", b.CooldownRemaining)
	}
}

package warlock

import (
	"testing"

	"github.com/wowsims/warlocksim/sim/core"
)

func testConfig() SimulationConfig {
	stats := core.DefaultStats()
	stats.Mana = 12000
	stats.MaxMana = 12000
	stats.SpellPower = 800
	stats.SpellCritChance = 25
	stats.HitChance = 99
	stats.MP5 = 50

	return SimulationConfig{
		Stats:    stats,
		PetStats: core.DefaultStats(),
		Talents:  Talents{},
		Settings: Settings{
			EnemyAmount: 1,
		},
		Prefs: RotationPrefs{
			LifeTapManaThreshold: 0.2,
		},
	}
}

func newTestPlayer(cfg SimulationConfig) *core.Player {
	factory := NewPlayerFactory(cfg)
	p := factory(core.NewRNG(7), core.NewCombatLog(false))
	p.Reset()
	return p
}

func TestPlayerFactoryWiresFullRoster(t *testing.T) {
	p := newTestPlayer(testConfig())

	wantNames := []string{
		"Shadow Bolt", "Incinerate", "Searing Pain", "Soul Fire", "Shadowburn",
		"Shadowfury", "Conflagrate", "Corruption", "Immolate", "Curse of Agony",
		"Curse of Doom", "Siphon Life", "Unstable Affliction", "Death Coil",
		"Curse of the Elements", "Curse of Recklessness", "Amplify Curse",
		"Seed of Corruption", "Life Tap", "Dark Pact",
		"Flame Cap", "Chipped Power Core", "Cracked Power Core", "Demonic Rune",
	}

	registered := map[string]bool{}
	for _, s := range p.SpellList {
		registered[s.Name] = true
	}
	for _, name := range wantNames {
		if !registered[name] {
			t.Errorf("expected %q to be registered on the player's spell list", name)
		}
	}

	if p.Pet == nil {
		t.Fatal("expected a pet to be wired")
	}
	if p.RotationFunc == nil {
		t.Fatal("expected a rotation to be wired")
	}
}

func TestRunProducesPositiveDPS(t *testing.T) {
	sim := &core.Simulation{
		NewPlayer:    NewPlayerFactory(testConfig()),
		Seed:         42,
		Iterations:   8,
		MinFightTime: 60,
		MaxFightTime: 60,
		Concurrency:  2,
	}

	result, err := sim.Run()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.DPS <= 0 {
		t.Fatalf("expected positive DPS, got %.2f", result.DPS)
	}
	if len(result.Breakdown) == 0 {
		t.Fatal("expected a non-empty spell breakdown")
	}
}

func TestSameSeedIsDeterministic(t *testing.T) {
	cfg := testConfig()
	run := func() float64 {
		sim := &core.Simulation{
			NewPlayer:    NewPlayerFactory(cfg),
			Seed:         123,
			Iterations:   4,
			MinFightTime: 60,
			MaxFightTime: 90,
			Concurrency:  1,
		}
		result, err := sim.Run()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return result.DPS
	}

	first := run()
	second := run()
	if first != second {
		t.Fatalf("expected identical seed to reproduce identical DPS, got %.6f vs %.6f", first, second)
	}
}

func TestSeedOfCorruptionRespectsOffByOneAoECap(t *testing.T) {
	cfg := testConfig()
	cfg.Settings.EnemyAmount = 10
	cfg.Settings.RandomizeValues = false
	// Zero crit chance and the maximum hit chance on every other-enemy roll.
	// Hit chance is capped at 99%, so each roll can still miss in principle;
	// with this test player's fixed RNG seed all nine rolls hit, giving the
	// exact deterministic figure rather than a distribution.
	cfg.Stats.HitChance = 100
	cfg.Stats.SpellCritChance = 0
	p := newTestPlayer(cfg)

	var seed *core.Spell
	for _, s := range p.SpellList {
		if s.Name == "Seed of Corruption" {
			seed = s
		}
	}
	if seed == nil {
		t.Fatal("Seed of Corruption not found on roster")
	}

	// Exercise the AoE damage resolution directly (as if the primary target's
	// own resist roll already passed) and compare against SPEC_FULL §8
	// scenario 4 exactly: enemy_amount=10, 0 resists -> 9 other enemies hit,
	// individual = 13580*9/(9*10) = 1358, total = 1358*9 = 12222. The primary
	// target itself is excluded from the hit count and from this damage
	// total (spell.cc:610's kEnemiesHit = kEnemyAmount - resist_amount has no
	// +1 for the primary).
	startDamage := p.IterationDamage
	seed.DamageOverride(seed, false)
	dealt := p.IterationDamage - startDamage

	const wantTotal = 12222.0
	if dealt < wantTotal-0.01 || dealt > wantTotal+0.01 {
		t.Fatalf("expected total AoE damage of %.2f (9 enemies hit at 1358 each), got %.2f", wantTotal, dealt)
	}
}

func TestCorruptionAppliesAndTicks(t *testing.T) {
	p := newTestPlayer(testConfig())

	var corruption *core.Spell
	for _, s := range p.SpellList {
		if s.Name == "Corruption" {
			corruption = s
		}
	}
	if corruption == nil {
		t.Fatal("Corruption not found on roster")
	}

	// Force the hit roll so this test's outcome depends only on the DoT tick
	// count, not on the 1% hard miss chance the engine always preserves.
	corruption.CanMiss = false
	corruption.Cast()
	if corruption.DotEffect == nil || !corruption.DotEffect.Active() {
		t.Fatal("expected Corruption's DoT to be active after casting")
	}

	ticks := 0
	for corruption.DotEffect.Active() && ticks < 10 {
		corruption.DotEffect.Tick(3)
		ticks++
	}
	if ticks != 6 {
		t.Fatalf("expected Corruption to fire 6 ticks total, got %d", ticks)
	}
}

func TestCooldownResetGroupExcludesSelf(t *testing.T) {
	p := newTestPlayer(testConfig())

	byName := map[string]*core.Spell{}
	for _, s := range p.SpellList {
		byName[s.Name] = s
	}
	flameCap := byName["Flame Cap"]
	chipped := byName["Chipped Power Core"]
	cracked := byName["Cracked Power Core"]
	rune_ := byName["Demonic Rune"]

	for _, s := range []*core.Spell{flameCap, chipped, cracked, rune_} {
		if s == nil {
			t.Fatal("expected all four cooldown-reset-group trinkets to be registered")
		}
	}

	for _, s := range flameCap.ResetGroup {
		if s == flameCap {
			t.Fatal("Flame Cap's reset group must not include itself")
		}
	}
	if len(flameCap.ResetGroup) != 3 {
		t.Fatalf("expected Flame Cap's reset group to contain exactly the other 3 trinkets, got %d", len(flameCap.ResetGroup))
	}
}

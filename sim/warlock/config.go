package warlock

import "github.com/wowsims/warlocksim/sim/core"

// SimulationConfig is the complete, serializable input to one simulation
// run: the caster's stats, talents, gear-derived sets, selected external
// auras, misc settings and the rotation preferences. This is the shape a CLI
// config file deserializes into (SPEC_FULL §10.5).
type SimulationConfig struct {
	Stats         core.Stats
	PetStats      core.Stats
	Talents       Talents
	Sets          Sets
	SelectedAuras SelectedAuras
	Settings      Settings
	Prefs         RotationPrefs
}

// NewPlayerFactory returns a function suitable for core.Simulation.NewPlayer:
// called once per iteration with a fresh RNG/CombatLog pair, it builds a
// complete Player with its full spell roster, pet and rotation wired in.
// Building the roster fresh every iteration (rather than resetting a shared
// one) keeps each goroutine's Player entirely private, the same isolation
// core.Simulation.Run relies on for safe concurrent iterations.
func NewPlayerFactory(cfg SimulationConfig) func(rng *core.RNG, log *core.CombatLog) *core.Player {
	return func(rng *core.RNG, log *core.CombatLog) *core.Player {
		p := core.NewPlayer(cfg.Stats, rng, log)
		p.InfiniteMana = cfg.Settings.InfiniteMana
		p.RandomizeValues = cfg.Settings.RandomizeValues
		p.MetaGemID = cfg.Settings.MetaGemID
		p.RuinTalent = cfg.Talents.Ruin > 0
		p.UsingCustomISBUptime = cfg.Settings.UsingCustomISBUptime
		p.CustomISBUptime = cfg.Settings.CustomISBUptime
		p.EnemyAmount = cfg.Settings.EnemyAmount
		p.EnemyShadowResistance = cfg.Settings.EnemyShadowResistance
		p.EnemyFireResistance = cfg.Settings.EnemyFireResistance
		if p.EnemyAmount < 1 {
			p.EnemyAmount = 1
		}

		if !cfg.Settings.UsingCustomISBUptime && cfg.Talents.ImprovedShadowBolt > 0 {
			p.ISBAura = core.NewAura("Improved Shadow Bolt", 6, 1, &p.Entity)
			p.ISBAura.Modifier = p.ISBModifier
		}
		p.ShadowTranceAura = core.NewAura("Shadow Trance", 10, 1, &p.Entity)

		shadowBolt := newShadowBolt(p, cfg.Talents, cfg.Sets)
		incinerate := newIncinerate(p, cfg.Talents, cfg.Sets)
		searingPain := newSearingPain(p, cfg.Talents)
		soulFire := newSoulFire(p, cfg.Talents)
		shadowburn := newShadowburn(p, cfg.Talents)
		shadowfury := newShadowfury(p)
		conflagrate := newConflagrate(p, cfg.Talents)

		corruption := newCorruption(p, cfg.Talents)
		immolate := newImmolate(p, cfg.Talents)
		curseOfAgony := newCurseOfAgony(p)
		curseOfDoom := newCurseOfDoom(p)
		siphonLife := newSiphonLife(p)
		unstableAffliction := newUnstableAffliction(p)
		deathCoil := newDeathCoil(p)
		curseOfTheElements := newCurseOfTheElements(p)
		curseOfRecklessness := newCurseOfRecklessness(p)
		amplifyCurse := newAmplifyCurse(p)
		seedOfCorruption := newSeedOfCorruption(p, cfg.Talents, cfg.SelectedAuras, cfg.Settings, cfg.Sets)

		lifeTap := newLifeTap(p, cfg.Talents)
		darkPact := newDarkPact(p)

		if p.ISBAura != nil {
			newImprovedShadowBoltProc(p, cfg.Talents.ImprovedShadowBolt)
		}
		if cfg.Talents.Nightfall > 0 {
			newShadowTranceProc(p)
		}

		if cfg.Sets.T5 >= 4 {
			p.SetTierHook(newT5FourPieceHook())
		}

		// Cooldown-reset conflict group: each of these four trinkets resets
		// the other three's cooldown on use (SPEC_FULL §4.11), never itself.
		flameCap := newFlameCap(p)
		chippedPowerCore := newChippedPowerCore(p)
		crackedPowerCore := newCrackedPowerCore(p)
		demonicRune := newDemonicRune(p)
		flameCap.ResetGroup = []*core.Spell{chippedPowerCore, crackedPowerCore, demonicRune}
		chippedPowerCore.ResetGroup = []*core.Spell{flameCap, crackedPowerCore, demonicRune}
		crackedPowerCore.ResetGroup = []*core.Spell{flameCap, chippedPowerCore, demonicRune}
		demonicRune.ResetGroup = []*core.Spell{flameCap, chippedPowerCore, crackedPowerCore}

		// Shadowfury and Conflagrate are registered (they appear on the
		// spell list and in the breakdown) but have no rotation slot: Shadowfury is
		// a crowd-control interrupt rather than a DPS button, and
		// Conflagrate's StartCast is the source's documented no-op bug, so
		// the rotation could never cast it productively anyway.
		_ = shadowfury
		_ = conflagrate

		petBaseline := cfg.PetStats
		pet := newImp(p, petBaseline)
		p.Pet = pet

		rotation := &Rotation{
			Roster: Roster{
				ShadowBolt:          shadowBolt,
				Incinerate:          incinerate,
				SearingPain:         searingPain,
				SoulFire:            soulFire,
				Shadowburn:          shadowburn,
				Corruption:          corruption,
				Immolate:            immolate,
				CurseOfAgony:        curseOfAgony,
				CurseOfDoom:         curseOfDoom,
				SiphonLife:          siphonLife,
				UnstableAffliction:  unstableAffliction,
				DeathCoil:           deathCoil,
				CurseOfTheElements:  curseOfTheElements,
				CurseOfRecklessness: curseOfRecklessness,
				AmplifyCurse:        amplifyCurse,
				SeedOfCorruption:    seedOfCorruption,
				LifeTap:             lifeTap,
				DarkPact:            darkPact,
			},
			Prefs: cfg.Prefs,
		}
		p.RotationFunc = rotation.Decide

		return p
	}
}

// newT5FourPieceHook returns the tier-set DoT-escalation hook for the T5
// 4-piece bonus: each Shadow Bolt hit while Corruption is active, or each
// Incinerate hit while Immolate is active, compounds that DoT's running
// TierBonusMultiplier by 1.1 (SPEC_FULL §3.1/§10.3).
func newT5FourPieceHook() func(p *core.Player, s *core.Spell) {
	return func(p *core.Player, s *core.Spell) {
		var dot *core.DamageOverTime
		switch s.Name {
		case "Shadow Bolt":
			dot = findActiveDoTByName(p, "Corruption")
		case "Incinerate":
			dot = p.ImmolateDoT
		}
		if dot != nil && dot.Active() {
			dot.TierBonusMultiplier *= 1.1
		}
	}
}

func findActiveDoTByName(p *core.Player, name string) *core.DamageOverTime {
	for _, d := range p.DoTs {
		if d.Name == name {
			return d
		}
	}
	return nil
}

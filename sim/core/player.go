package core

import "github.com/wowsims/warlocksim/internal/xmath"

// Haste and crit rating conversion constants for a level-70 caster,
// matching the Burning Crusade rating tables the source's config loader
// (out of scope here) already applies when producing a Stats snapshot.
const (
	HasteRatingPerPercent = 15.77
	CritRatingPerPercent  = 22.08
	BaseGCD               = 1.5
	MinGCD                = 1.0
)

// Player is the single simulated actor: the warlock. Unlike a multi-class
// engine, this sim has exactly one kind of caster, so Player lives in core
// alongside the generic machinery it drives rather than behind an
// interface — matching how the source couples Player directly to Talents,
// Sets and the spell list with no abstraction layer between them. Anything
// warlock-flavored that only ever holds concrete named state (Talents,
// Sets, the spell roster, the rotation policy) is still assembled and owned
// by the warlock package; Player exposes only the generic hooks and flags
// those callers populate at construction time.
type Player struct {
	Entity

	RNG       *RNG
	CombatLog *CombatLog

	// SpellList holds every spell registered via Spell.Setup, in
	// registration order.
	SpellList []*Spell

	// Proc registries, populated deterministically at registration time by
	// the order spells are constructed (SPEC_FULL §4.7).
	OnHitProcs         []*Spell
	OnCritProcs        []*Spell
	OnDotTickProcsList []*Spell
	OnDamageProcs      []*Spell

	// Generic engine flags a handful of core algorithms read directly
	// because the source itself hardcodes them at this level (the meta gem
	// ID check in crit multiplier math, the Ruin talent doubling, the
	// Improved Shadow Bolt averaged-uptime mode). Everything else
	// warlock-specific is opaque to core and lives behind RotationFunc /
	// UseCooldownsFunc closures the warlock package supplies.
	MetaGemID            int
	RuinTalent            bool
	CritDamageMultiplier float64

	ISBAura             *Aura
	ISBModifier         float64
	UsingCustomISBUptime bool
	CustomISBUptime      float64

	// ShadowTranceAura and ImmolateDoT are non-owning pointers a couple of
	// spells' overrides need to read cross-spell state (Shadow Bolt's
	// Shadow Trance proc gate, Incinerate's Immolate-active bonus damage).
	// Populated once at roster construction time.
	ShadowTranceAura *Aura
	ImmolateDoT      *DamageOverTime

	InfiniteMana    bool
	RandomizeValues bool

	EnemyAmount            int
	EnemyShadowResistance  float64
	EnemyFireResistance    float64

	IterationDamage    float64
	TotalFightDuration float64

	// PowerInfusionsReady counts externally-triggered Power Infusion casts
	// currently off cooldown and available to the rotation, incremented by
	// Power Infusion's OnOffCooldown hook and decremented by its
	// CastOverride (SPEC_FULL §10.1).
	PowerInfusionsReady int

	Pet *Pet

	// RotationFunc implements the five-step action-selection policy
	// (SPEC_FULL §4.8); supplied by the warlock package's Rotation.Decide so
	// core never needs to know which spells exist.
	RotationFunc func(sim *Simulation, p *Player)

	// UseCooldownsFunc fires major cooldowns when the fight-time-remaining
	// heuristic says they're worth using (SPEC_FULL §4.8).
	UseCooldownsFunc func(sim *Simulation, p *Player, fightTimeRemaining float64)

	// tierHook is the tier-set-bonus DoT-escalation hook, installed only via
	// SetTierHook so Player's public surface stays generic.
	tierHook func(p *Player, s *Spell)

	baselineStats Stats
}

// NewPlayer constructs a Player with its baseline stats snapshot, used to
// reset Stats back to the unbuffed-by-iteration-state starting point
// between iterations. RNG and CombatLog are owned exclusively by Player;
// nothing else is allowed to construct its own.
func NewPlayer(baseline Stats, rng *RNG, log *CombatLog) *Player {
	p := &Player{
		RNG:                  rng,
		CombatLog:            log,
		CritDamageMultiplier: 1.5,
		ISBModifier:          1.15,
		baselineStats:        baseline,
	}
	p.Stats = baseline
	return p
}

// registerSpell appends spell to SpellList and every proc registry it
// qualifies for, called once from Spell.Setup.
func (p *Player) registerSpell(s *Spell) {
	p.SpellList = append(p.SpellList, s)
	if s.ProcsOnHit {
		p.OnHitProcs = append(p.OnHitProcs, s)
	}
	if s.ProcsOnCrit {
		p.OnCritProcs = append(p.OnCritProcs, s)
	}
	if s.ProcsOnDotTick {
		p.OnDotTickProcsList = append(p.OnDotTickProcsList, s)
	}
	if s.ProcsOnDamage {
		p.OnDamageProcs = append(p.OnDamageProcs, s)
	}
	p.CombatLog.breakdownFor(s.Name)
}

// Reset restores the player (and its pet, if any) to the start of a fresh
// iteration: baseline stats, zeroed timers, every spell's cooldown cleared.
func (p *Player) Reset() {
	p.Entity.Reset()
	p.Stats = p.baselineStats
	p.IterationDamage = 0
	for _, s := range p.SpellList {
		s.Reset()
	}
	if p.ISBAura != nil {
		p.ISBAura.Active = false
		p.ISBAura.Stacks = 0
	}
	if p.Pet != nil {
		p.Pet.Reset()
	}
}

// HastePercent returns the player's total haste multiplier (1.0 = no
// haste), combining a flat percent stat with haste rating at the TBC
// conversion rate.
func (p *Player) HastePercent() float64 {
	return 1 + p.Stats.SpellHastePercent + p.Stats.SpellHasteRating/HasteRatingPerPercent/100
}

// GcdValue returns the player's effective global cooldown for casting
// spell: base 1.5s reduced by haste, floored at 1.0s.
func (p *Player) GcdValue(spell *Spell) float64 {
	return xmath.Clamp(xmath.Round4(BaseGCD/p.HastePercent()), MinGCD, BaseGCD)
}

// GetSpellPower returns the school-specific spell power total used by
// damage and DoT snapshot calculations.
func (p *Player) GetSpellPower(school SpellSchool) float64 {
	return p.Stats.SpellPowerFor(school)
}

// GetCritChance returns the player's spell crit chance as a percent
// (0-100). The type parameter is preserved for fidelity with the source's
// signature even though, with talent-driven crit bonuses already folded
// into Stats by the (out of scope) config loader, affliction and
// destruction spells read the same underlying value.
func (p *Player) GetCritChance(t SpellType) float64 {
	return p.Stats.SpellCritChance + p.Stats.SpellCritRating/CritRatingPerPercent
}

// GetHitChance returns the player's spell hit chance as a percent, capped
// at the 99% hard cap spells can never exceed (SPEC_FULL §4.4).
func (p *Player) GetHitChance(t SpellType) float64 {
	return xmath.Clamp(p.Stats.HitChance, 0, 99)
}

// IsCrit rolls whether a cast with the given type and spell-specific bonus
// crit chance crits.
func (p *Player) IsCrit(t SpellType, bonusCrit float64) bool {
	return p.RNG.RollChance(p.GetCritChance(t) + bonusCrit)
}

// IsHit rolls whether a cast of the given type lands.
func (p *Player) IsHit(t SpellType) bool {
	return p.RNG.RollChance(p.GetHitChance(t))
}

// GetPartialResistMultiplier returns the school-dependent damage multiplier
// (0.75-1.0) applied after base damage, approximating the binomial
// partial-resist roll as its expected value rather than an actual
// per-cast random sample — a documented simplification (see DESIGN.md)
// since the source's exact resistance table wasn't available.
func (p *Player) GetPartialResistMultiplier(school SpellSchool) float64 {
	var resistance float64
	switch school {
	case SchoolShadow:
		resistance = p.EnemyShadowResistance
	case SchoolFire:
		resistance = p.EnemyFireResistance
	default:
		return 1.0
	}
	if resistance <= 0 {
		return 1.0
	}
	return xmath.Clamp(1-resistance/400.0, 0.75, 1.0)
}

// applyTierSetBonusesOnHit is a hook point for tier bonuses that escalate a
// running DoT's TierBonusMultiplier after a direct hit lands (SPEC_FULL
// §3.1, e.g. T5 4-piece on Corruption/Immolate). Populated by the warlock
// package at construction when the corresponding set bonus is active;
// nil otherwise.
func (p *Player) applyTierSetBonusesOnHit(s *Spell) {
	if p.tierHook != nil {
		p.tierHook(p, s)
	}
}

// creditDotTick records one DoT tick's damage, fires on-dot-tick procs, and
// writes the combat log entry, called by DamageOverTime.fire.
func (p *Player) creditDotTick(d *DamageOverTime, dmg float64) {
	p.IterationDamage += dmg
	p.CombatLog.AddDamage(d.Name, dmg)
	p.CombatLog.Logf("%s ticks for %.0f", d.Name, dmg)
	p.OnDotTickProcs()
}

// HasEnoughMana reports whether the player can afford cost mana, honoring
// the infinite-mana testing/debug setting.
func (p *Player) HasEnoughMana(cost float64) bool {
	if p.InfiniteMana {
		return true
	}
	return p.Entity.HasEnoughMana(cost)
}

// TickManaRegen credits dt seconds of mana regen: mp5 (mana per five
// seconds) always applies, spirit-based regen only applies once the
// five-second rule window has expired.
func (p *Player) TickManaRegen(dt float64) {
	regen := p.Stats.MP5 * (dt / 5)
	if p.FiveSecondRuleTime <= 0 {
		regen += p.Stats.Spirit * 0.001 * BaseGCD * (dt / ManaTickInterval)
	}
	if regen > 0 {
		gained := p.Stats.GainMana(regen)
		if gained > 0 {
			p.CombatLog.Logf("Player regens %.0f mana from mp5/spirit", gained)
		}
	}
}

// Tick advances the player by dt in the order SPEC_FULL §5 specifies: plain
// timers, then cast-completion (via Spell.Tick), then auras, then DoTs
// (which may themselves trigger on-dot-tick procs), then mana regen.
func (p *Player) Tick(dt float64) {
	p.Entity.TickTimers(dt)
	for _, s := range p.SpellList {
		s.Tick(dt)
	}
	for _, a := range p.Auras {
		a.Tick(dt)
	}
	for _, d := range append([]*DamageOverTime(nil), p.DoTs...) {
		d.Tick(dt)
	}
	p.TickManaRegen(dt)
	if p.Pet != nil {
		p.Pet.Tick(dt)
	}
}

// FindTimeUntilNextAction returns the smallest positive time horizon across
// every pending timer this player (and its pet) owns: cast completion, GCD,
// each DoT's next tick, each aura's expiry, each spell's cooldown, and the
// next mana regen tick. The scheduler advances the whole simulation by
// exactly this much before re-evaluating action selection.
func (p *Player) FindTimeUntilNextAction() float64 {
	next := ManaTickInterval
	consider := func(t float64) {
		if t > 0 && t < next {
			next = t
		}
	}
	consider(p.CastTimeRemaining)
	consider(p.GCDRemaining)
	for _, d := range p.DoTs {
		consider(d.NextTickIn)
	}
	for _, a := range p.Auras {
		if a.Active {
			consider(a.TimeRemaining)
		}
	}
	for _, s := range p.SpellList {
		consider(s.CooldownRemaining)
	}
	if p.Pet != nil {
		consider(p.Pet.FindTimeUntilNextAction())
	}
	return next
}

// SetTierHook installs the tier-set-bonus escalation hook a warlock
// configuration activates (e.g. T5 4-piece).
func (p *Player) SetTierHook(fn func(p *Player, s *Spell)) {
	p.tierHook = fn
}

package core

import "github.com/wowsims/warlocksim/internal/xmath"

// ConstantDamage is the non-random part of a spell's damage calculation:
// the base roll, the fully modified total, and the individual factors that
// went into it, returned together so combat-log formatting and
// PredictDamage can both use the breakdown without recomputing it.
type ConstantDamage struct {
	Base               float64
	Total              float64
	DamageModifier     float64
	PartialResist      float64
	SpellPower         float64
}

// Spell is the central state machine: cast-start -> cast-progress ->
// resolve (hit/miss, crit, damage, aura application, DoT application, proc
// dispatch), plus cooldowns and non-GCD variants. Per-spell-kind behavior
// that would be virtual-method overrides in the source is expressed here as
// optional function-valued fields defaulted to the generic implementation,
// the tagged-sum-over-kind pattern SPEC_FULL §9 calls for.
type Spell struct {
	Name   string
	School SpellSchool
	Type   SpellType

	MinDmg, MaxDmg, Dmg float64
	ManaCost            float64
	MinMana, MaxMana    float64
	ManaGain            float64

	CastTimeBase      float64
	Cooldown          float64
	CooldownRemaining float64
	Coefficient       float64
	Modifier          float64
	BonusCrit         float64

	CanCrit             bool
	CanMiss             bool
	DoesDamage          bool
	IsItem              bool
	IsProc              bool
	IsFinisher          bool
	IsNonWarlockAbility bool
	OnGCD               bool
	UsableOncePerFight  bool
	GainManaOnCast      bool
	ProcChance          float64

	ProcsOnHit            bool
	OnHitProcsEnabled     bool
	ProcsOnCrit           bool
	OnCritProcsEnabled    bool
	ProcsOnDotTick        bool
	OnDotTickProcsEnabled bool
	ProcsOnDamage         bool
	OnDamageProcsEnabled  bool
	ProcsFromShadowSpells bool
	ProcsFromFireSpells   bool

	HasNotBeenCastThisFight bool
	Casting                 bool

	AuraEffect *Aura
	DotEffect  *DamageOverTime

	// Player is a non-owning back-reference to the owning actor.
	Player *Player

	// ResetGroup lists other spells whose CooldownRemaining is force-reset
	// to their own Cooldown whenever this spell casts successfully
	// (SPEC_FULL §4.11, the FlameCap/ChippedPowerCore/CrackedPowerCore/
	// DemonicRune conflict group).
	ResetGroup []*Spell

	// Overrides. Each defaults to nil, in which case the generic
	// implementation on Spell is used.
	StartCastOverride func(s *Spell, predictedDamage float64)
	CastOverride      func(s *Spell)
	DamageOverride    func(s *Spell, isCrit bool)
	ModifierOverride  func(s *Spell) float64
	CastTimeOverride  func(s *Spell) float64
	DamageBonus       func(s *Spell, randomized bool) float64
	OnOffCooldown     func(s *Spell)

	// damagePerCastBase, damagePerCritBase etc are intentionally absent;
	// PredictDamage recomputes from the same primitives Cast uses.
}

// NewSpell constructs a Spell with the defaults the source's constructor
// applies (modifier=1, procsFromShadowSpells/procsFromFireSpells=true,
// hasNotBeenCastThisFight=true, onGCD=true).
func NewSpell(name string, player *Player) *Spell {
	return &Spell{
		Name:                    name,
		Player:                  player,
		Modifier:                1,
		OnGCD:                   true,
		ProcsFromShadowSpells:   true,
		ProcsFromFireSpells:     true,
		HasNotBeenCastThisFight: true,
	}
}

// Setup finalizes construction: computes Dmg/ManaGain averages if a min/max
// range was given, registers into the owning player's spell list, and adds
// the spell to whichever proc registries it qualifies for. Must be called
// exactly once, after all fields are set, mirroring Spell::Setup.
func (s *Spell) Setup() {
	if s.MinDmg > 0 && s.MaxDmg > 0 {
		s.Dmg = (s.MinDmg + s.MaxDmg) / 2
	}
	if s.MinMana > 0 && s.MaxMana > 0 {
		s.ManaGain = (s.MinMana + s.MaxMana) / 2
	}
	s.Player.registerSpell(s)
}

// Reset restores per-iteration transient state, called between iterations.
func (s *Spell) Reset() {
	s.CooldownRemaining = 0
	s.Casting = false
	s.HasNotBeenCastThisFight = true
}

// EffectiveCastTimeBase returns the spell's base (pre-haste) cast time,
// honoring a per-spell CastTimeOverride when one is set.
func (s *Spell) EffectiveCastTimeBase() float64 {
	if s.CastTimeOverride != nil {
		return s.CastTimeOverride(s)
	}
	return s.CastTimeBase
}

// GetCastTime returns the haste-adjusted, delay-padded cast time: the
// formula from SPEC_FULL §4.3.
func (s *Spell) GetCastTime() float64 {
	base := s.EffectiveCastTimeBase()
	return xmath.Round4(base/s.Player.HastePercent()) + SpellDelay
}

// CanCast reports whether this spell could be cast right now, ignoring
// mana (see Ready, which also checks HasEnoughMana).
func (s *Spell) CanCast() bool {
	if s.CooldownRemaining > 0 {
		return false
	}
	if !s.IsNonWarlockAbility {
		if s.OnGCD && s.Player.GCDRemaining > 0 {
			return false
		}
		if !s.IsProc && s.Player.CastTimeRemaining > 0 {
			return false
		}
	}
	if s.UsableOncePerFight && !s.HasNotBeenCastThisFight {
		return false
	}
	return true
}

// GetManaCost returns the spell's mana cost after the player's mana cost
// modifier.
func (s *Spell) GetManaCost() float64 {
	return s.ManaCost * s.Player.Stats.ManaCostModifier
}

// HasEnoughMana reports whether the player can afford this spell's cost.
func (s *Spell) HasEnoughMana() bool {
	return s.Player.HasEnoughMana(s.GetManaCost())
}

// Ready reports whether the spell is both castable and affordable.
func (s *Spell) Ready() bool {
	return s.CanCast() && s.HasEnoughMana()
}

// StartCast begins casting the spell, honoring an override if the spell
// kind needs bespoke behavior (Shadow Bolt's Shadow Trance interaction,
// Conflagrate's documented no-op, The Lightning Capacitor's stack gate).
func (s *Spell) StartCast(predictedDamage float64) {
	if s.StartCastOverride != nil {
		s.StartCastOverride(s, predictedDamage)
		return
	}
	s.StartCastGeneric(predictedDamage)
}

// StartCastGeneric is the base StartCast implementation, exported so a
// StartCastOverride can wrap it (e.g. Shadow Bolt temporarily zeroing its
// cast time before delegating here, then restoring it afterward).
func (s *Spell) StartCastGeneric(predictedDamage float64) {
	p := s.Player

	if s.OnGCD && !s.IsNonWarlockAbility {
		if p.GCDRemaining > 0 {
			throwInvariant(s.Name, "GCD", p.GCDRemaining)
		}
		p.GCDRemaining = p.GcdValue(s)
	}

	if p.CastTimeRemaining > 0 && !s.IsNonWarlockAbility && !s.IsProc {
		throwInvariant(s.Name, "cast time remaining", p.CastTimeRemaining)
	}

	if s.Cooldown > 0 && s.CooldownRemaining > 0 {
		throwInvariant(s.Name, "cooldown", s.CooldownRemaining)
	}

	baseCastTime := s.EffectiveCastTimeBase()
	if baseCastTime > 0 {
		s.Casting = true
		p.Casting = s
		p.CastTimeRemaining = s.GetCastTime()
		if !s.IsProc {
			p.CombatLog.Logf("Started casting %s - Cast time: %.4f (%.4f%% haste at a base cast speed of %.2f)",
				s.Name, p.CastTimeRemaining-SpellDelay, (p.HastePercent()-1)*100, baseCastTime)
		}
	} else {
		if !s.IsProc {
			p.CombatLog.Logf("Cast %s", s.Name)
		}
		s.Cast()
	}
	if s.OnGCD && !s.IsNonWarlockAbility && !s.IsProc {
		p.CombatLog.Logf("%s - Global cooldown: %.4f", s.Name, p.GCDRemaining)
	}
	if predictedDamage > 0 {
		p.CombatLog.Logf("%s - Estimated damage / cast time: %.0f", s.Name, predictedDamage)
	}
}

// Tick decrements the spell's own cooldown and, if it's mid-cast and the
// owning player's cast timer has crossed zero, resolves the cast.
func (s *Spell) Tick(dt float64) {
	if s.CooldownRemaining > 0 {
		next := s.CooldownRemaining - dt
		if next <= 0 {
			if s.OnOffCooldown != nil {
				s.OnOffCooldown(s)
			}
			s.Player.CombatLog.Logf("%s is off cooldown", s.Name)
		}
		s.CooldownRemaining = next
	}
	if s.Casting && s.Player.CastTimeRemaining <= 0 {
		s.Cast()
	}
}

// Cast resolves the spell: mana, crit roll, hit roll, aura/DoT application,
// damage, and proc dispatch, in the order SPEC_FULL §4.3 specifies.
func (s *Spell) Cast() {
	if s.CastOverride != nil {
		s.CastOverride(s)
		return
	}
	s.CastGeneric()
}

// CastGeneric is the base Cast implementation, exported so a CastOverride
// can delegate here before or after its own extra bookkeeping (Power
// Infusion's readiness counter). The ResetGroup cross-reset runs here, at
// the end of every successful cast.
func (s *Spell) CastGeneric() {
	p := s.Player
	currentMana := p.Stats.Mana
	isCrit := false

	s.CooldownRemaining = s.Cooldown
	s.Casting = false
	p.Casting = nil
	s.HasNotBeenCastThisFight = false

	if s.AuraEffect == nil {
		p.CombatLog.AddCast(s.Name, 1)
	}

	if s.ManaCost > 0 && !p.InfiniteMana {
		p.Stats.DeductMana(s.GetManaCost())
		p.FiveSecondRuleTime = FiveSecondRuleDuration
	}

	if s.CastTimeBase > 0 || s.EffectiveCastTimeBase() > 0 {
		p.CombatLog.Logf("Finished casting %s - Mana: %.0f -> %.0f - Mana cost: %.0f - Mana cost modifier: %.0f%%",
			s.Name, currentMana, p.Stats.Mana, s.GetManaCost(), p.Stats.ManaCostModifier*100)
	}

	if s.GainManaOnCast {
		gained := p.Stats.GainMana(s.ManaGain)
		p.CombatLog.AddMana(s.Name, gained)
		p.CombatLog.Logf("Player gains %.0f mana from %s (%.0f -> %.0f)", gained, s.Name, currentMana, p.Stats.Mana)
	}

	if s.CanCrit {
		isCrit = p.IsCrit(s.Type, s.BonusCrit)
		if isCrit {
			p.CombatLog.AddCrit(s.Name)
		}
	}

	if s.CanMiss && !p.IsHit(s.Type) {
		p.CombatLog.Logf("%s *resist*", s.Name)
		p.CombatLog.AddMiss(s.Name, 1)
		return
	}

	if s.AuraEffect != nil {
		s.AuraEffect.Target.AttachAura(s.AuraEffect)
		s.AuraEffect.Apply()
	}
	if s.DotEffect != nil {
		s.applyDot()
	}
	if s.DoesDamage {
		s.Damage(isCrit)
	}

	if !s.IsItem && !s.IsProc && !s.IsNonWarlockAbility && !s.suppressesOnHitProcs() {
		s.OnHitProcs()
	}

	for _, other := range s.ResetGroup {
		other.CooldownRemaining = other.Cooldown
	}
}

// suppressesOnHitProcs names the one spell (Amplify Curse) the source
// explicitly excludes from triggering on-hit procs on cast, by name, even
// though it isn't an item/proc/non-class ability.
func (s *Spell) suppressesOnHitProcs() bool {
	return s.Name == "Amplify Curse"
}

func (s *Spell) applyDot() {
	dmg := s.DotEffect.DamagePerTick
	if !s.DotEffect.Active() {
		snap := s.snapshotDotDamage()
		dmg = snap
	}
	s.DotEffect.Apply(dmg)
}

// snapshotDotDamage computes the fixed per-tick damage for a fresh DoT
// application: (base_tick + sp*coefficient) * modifier * partial_resist,
// frozen at apply time per the snapshot semantic (SPEC_FULL §4.6).
func (s *Spell) snapshotDotDamage() float64 {
	p := s.Player
	sp := p.GetSpellPower(s.School)
	modifier := s.GetModifier()
	resist := p.GetPartialResistMultiplier(s.School)
	return (s.Dmg + sp*s.Coefficient) * modifier * resist
}

// GetModifier returns the damage multiplier: per-spell Modifier times the
// school-level multiplier, times the Improved Shadow Bolt aura modifier
// when that aura models itself as a real aura rather than an averaged
// uptime constant.
func (s *Spell) GetModifier() float64 {
	if s.ModifierOverride != nil {
		return s.ModifierOverride(s)
	}
	return s.ModifierGeneric()
}

// ModifierGeneric is the base GetModifier implementation, exported so a
// ModifierOverride can scale its result (Immolate and Seed of Corruption
// both divide out one talent's contribution and reapply it combined with
// another talent, rather than stacking both independently).
func (s *Spell) ModifierGeneric() float64 {
	p := s.Player
	m := s.Modifier
	switch s.School {
	case SchoolShadow:
		m *= p.Stats.ShadowModifier
		if p.UsingCustomISBUptime {
			m *= 1 + (p.ISBModifier-1)*p.CustomISBUptime
		} else if p.ISBAura != nil && p.ISBAura.Active {
			m *= p.ISBAura.Modifier
		}
	case SchoolFire:
		m *= p.Stats.FireModifier
	}
	return m
}

// GetConstantDamage returns the non-random portion of the spell's damage:
// the base roll (random within [min,max] unless randomization is off, or
// the average otherwise), any special per-spell bonus damage, spell power
// scaling, the damage modifier, and the partial resist multiplier.
func (s *Spell) GetConstantDamage(noRNG bool) ConstantDamage {
	p := s.Player
	base := s.Dmg
	if p.RandomizeValues && s.MinDmg > 0 && s.MaxDmg > 0 && !noRNG {
		base = p.RNG.UniformRange(s.MinDmg, s.MaxDmg)
	}
	total := base
	if s.DamageBonus != nil {
		total += s.DamageBonus(s, p.RandomizeValues && !noRNG)
	}

	sp := p.GetSpellPower(s.School)
	modifier := s.GetModifier()
	resist := p.GetPartialResistMultiplier(s.School)

	total += sp * s.Coefficient
	total *= modifier
	total *= resist

	return ConstantDamage{Base: base, Total: total, DamageModifier: modifier, PartialResist: resist, SpellPower: sp}
}

// GetCritMultiplier returns the class-base crit multiplier adjusted for the
// Chaotic Skyfire Diamond meta gem and the Ruin talent, per SPEC_FULL §4.4.
func (s *Spell) GetCritMultiplier(base float64) float64 {
	m := base
	if s.Player.MetaGemID == 34220 {
		m *= 1.03
	}
	if s.Type == TypeDestruction && s.Player.RuinTalent {
		m = 1 + 2*(m-1)
	}
	return m
}

// Damage resolves and credits the spell's direct damage, honoring a
// per-spell override (Seed of Corruption's AoE special case).
func (s *Spell) Damage(isCrit bool) {
	if s.DamageOverride != nil {
		s.DamageOverride(s, isCrit)
		return
	}
	s.DamageGeneric(isCrit)
}

// DamageGeneric is the base Damage implementation, exported so a
// DamageOverride (Seed of Corruption) can reuse GetConstantDamage/
// GetCritMultiplier without duplicating the single-target path.
func (s *Spell) DamageGeneric(isCrit bool) {
	p := s.Player
	cd := s.GetConstantDamage(false)
	total := cd.Total
	critMultiplier := p.CritDamageMultiplier

	if isCrit {
		critMultiplier = s.GetCritMultiplier(critMultiplier)
		total *= critMultiplier
		s.OnCritProcs()
	} else if s.School == SchoolShadow && s.DotEffect == nil && !p.UsingCustomISBUptime && p.ISBAura != nil && p.ISBAura.Active {
		p.ISBAura.DecrementStacks()
	}

	s.OnDamageProcs()
	p.IterationDamage += total
	p.CombatLog.AddDamage(s.Name, total)

	if isCrit {
		p.CombatLog.Logf("%s *%.0f* (%.1f base - %.3f coefficient - %.0f spell power - %.3f%% crit multiplier - %.2f%% modifier - %.1f%% partial resist)",
			s.Name, total, s.Dmg, s.Coefficient, cd.SpellPower, critMultiplier*100, cd.DamageModifier*100, cd.PartialResist*100)
	} else {
		p.CombatLog.Logf("%s %.0f (%.1f base - %.3f coefficient - %.0f spell power - %.2f%% modifier - %.1f%% partial resist)",
			s.Name, total, s.Dmg, s.Coefficient, cd.SpellPower, cd.DamageModifier*100, cd.PartialResist*100)
	}

	p.applyTierSetBonusesOnHit(s)
}

// PredictDamage estimates damage-per-second for this spell, used by the
// rotation to pick between candidate filler spells (SPEC_FULL §4.8).
func (s *Spell) PredictDamage() float64 {
	p := s.Player
	cd := s.GetConstantDamage(true)
	normal := cd.Total

	var critDamage, critChance, chanceToNotCrit float64
	if s.CanCrit {
		critDamage = normal * s.GetCritMultiplier(p.CritDamageMultiplier)
		critChance = p.GetCritChance(s.Type) / 100
		chanceToNotCrit = 1 - critChance
	}

	hitChance := p.GetHitChance(s.Type) / 100
	estimated := normal
	if s.CanCrit {
		estimated = normal*chanceToNotCrit + critDamage*critChance
	}

	if s.DotEffect != nil {
		estimated += s.DotEffect.PredictDamage(s.dotPerTickPrediction())
	}

	if s.School == SchoolShadow && !p.UsingCustomISBUptime && p.ISBAura != nil && !p.ISBAura.Active {
		estimated *= 1.15
	}

	return (estimated * hitChance) / max(p.GcdValue(s), s.GetCastTime())
}

func (s *Spell) dotPerTickPrediction() float64 {
	if s.DotEffect == nil {
		return 0
	}
	if s.DotEffect.Active() {
		return s.DotEffect.DamagePerTick
	}
	return s.snapshotDotDamage()
}

// OnCritProcs fires every eligible on-crit proc registered on the player.
func (s *Spell) OnCritProcs() {
	for _, proc := range s.Player.OnCritProcs {
		if !proc.Ready() {
			continue
		}
		if proc.Name == "Improved Shadow Bolt" && s.Name != "Shadow Bolt" {
			continue
		}
		if s.Player.RNG.RollChance(proc.ProcChance) {
			proc.StartCast(0)
		}
	}
}

// OnDamageProcs fires every eligible on-damage proc registered on the player.
func (s *Spell) OnDamageProcs() {
	for _, proc := range s.Player.OnDamageProcs {
		if proc.Ready() && s.Player.RNG.RollChance(proc.ProcChance) {
			proc.StartCast(0)
		}
	}
}

// OnHitProcs fires every eligible on-hit proc registered on the player,
// gated by which school(s) of spell the proc accepts.
func (s *Spell) OnHitProcs() {
	for _, proc := range s.Player.OnHitProcs {
		if !proc.Ready() {
			continue
		}
		accepted := (s.School == SchoolShadow && proc.ProcsFromShadowSpells) ||
			(s.School == SchoolFire && proc.ProcsFromFireSpells)
		if !accepted {
			continue
		}
		if s.Player.RNG.RollChance(proc.ProcChance) {
			proc.StartCast(0)
		}
	}
}

// OnDotTickProcs fires every eligible on-dot-tick proc registered on the
// player, invoked by the owning player when a DoT on it ticks.
func (p *Player) OnDotTickProcs() {
	for _, proc := range p.OnDotTickProcsList {
		if proc.Ready() && p.RNG.RollChance(proc.ProcChance) {
			proc.StartCast(0)
		}
	}
}

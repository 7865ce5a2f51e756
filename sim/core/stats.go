package core

import "github.com/wowsims/warlocksim/internal/xmath"

// Stats is the flat record of derived character statistics the rest of the
// engine reads from. All reads during a spell's resolution observe the same
// snapshot because the simulator is single-threaded within one iteration.
type Stats struct {
	SpellPower         float64
	ShadowPower        float64
	FirePower          float64
	SpellHasteRating   float64
	SpellHastePercent  float64
	SpellCritChance    float64
	SpellCritRating    float64
	HitChance          float64
	Mana               float64
	MaxMana            float64
	ManaCostModifier   float64
	ShadowModifier     float64
	FireModifier       float64
	MP5                float64
	Spirit             float64
	Intellect          float64
	Stamina            float64
}

// DefaultStats returns a Stats record with the multiplicative modifiers at
// their neutral value (1.0) so a caller that only sets a handful of fields
// doesn't accidentally zero out every damage multiplier in the sim.
func DefaultStats() Stats {
	return Stats{
		ManaCostModifier: 1,
		ShadowModifier:   1,
		FireModifier:     1,
	}
}

// SpellPowerFor returns the caster's spell power for the given school,
// including the school-specific addition (+ShadowPower on shadow spells,
// +FirePower on fire spells), mirroring Player::GetSpellPower in the source.
func (s *Stats) SpellPowerFor(school SpellSchool) float64 {
	sp := s.SpellPower
	switch school {
	case SchoolShadow:
		sp += s.ShadowPower
	case SchoolFire:
		sp += s.FirePower
	}
	return sp
}

// DeductMana subtracts amt from Mana, clamping to zero. Callers must check
// HasEnoughMana before casting; this clamp exists only to protect against
// floating point drift at the boundary, not as a substitute for that check.
func (s *Stats) DeductMana(amt float64) {
	s.Mana = xmath.Clamp(s.Mana-amt, 0, s.MaxMana)
}

// GainMana adds amt to Mana, clamped to MaxMana, and returns the amount
// actually gained (which may be less than amt near the cap).
func (s *Stats) GainMana(amt float64) float64 {
	before := s.Mana
	s.Mana = xmath.Clamp(s.Mana+amt, 0, s.MaxMana)
	return s.Mana - before
}

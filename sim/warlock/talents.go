// Package warlock wires the generic core engine to one concrete caster:
// talent and set-bonus data, the full spell roster, pet behavior, and the
// rotation policy that decides what to cast next.
package warlock

// Talents holds every talent point allocation the spell roster reads
// directly into its formulas, mirroring the source's flat Talents struct
// (SPEC_FULL §10.2).
type Talents struct {
	Cataclysm            int
	Bane                 int
	ShadowAndFlame        int
	Emberstorm            int
	ImprovedImmolate      int
	ImprovedCorruption    int
	ImprovedSearingPain   int
	Ruin                  int
	ShadowMastery         int
	Contagion             int
	ImprovedShadowBolt    int
	Nightfall             int
}

// Sets holds the number of equipped pieces from each tracked tier or dungeon
// set, the way the source gates bonuses on a raw integer count (SPEC_FULL
// §10.3).
type Sets struct {
	T4         int
	T5         int
	T6         int
	Oblivion   int
	Spellstrike int
	ManaEtched int
}

// SelectedAuras records which external raid debuffs/buffs are assumed
// present for the fight, read by Seed of Corruption's internal/external
// modifier split.
type SelectedAuras struct {
	CurseOfTheElements bool
	ShadowWeaving      bool
	Misery             bool
}

// Settings holds the simulation-wide toggles the source keeps on Player:
// testing/debug switches and the handful of item flags that can't be
// derived from Talents/Sets alone.
type Settings struct {
	InfiniteMana               bool
	RandomizeValues            bool
	ImprovedCurseOfTheElements int
	ExaltedWithShattrathFaction bool
	MetaGemID                  int
	UsingCustomISBUptime       bool
	CustomISBUptime            float64

	EnemyAmount           int
	EnemyShadowResistance float64
	EnemyFireResistance   float64
}

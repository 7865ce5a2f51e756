package warlock

import "github.com/wowsims/warlocksim/sim/core"

// newImp builds the warlock's default damage pet. A pet gets its own
// core.Player (wired as pet.Host) to host Firebolt's cast timer/GCD/crit-roll
// state completely independently of the caster's own (sharing the caster's
// RNG stream so a run stays reproducible, and its CombatLog so Firebolt shows
// up in the same breakdown) rather than overloading the caster's own Entity
// fields with two unrelated actors' timers. core.Pet.Tick/FindTimeUntilNextAction
// drive this host directly once it's set, so Firebolt's cast actually
// completes instead of hanging mid-cast forever. Firebolt's DamageOverride
// credits damage straight to the owning warlock's IterationDamage, since a
// pet's output still counts toward one Player's DPS line in this
// single-actor-focused sim (SPEC_FULL §4.10).
func newImp(owner *core.Player, baseline core.Stats) *core.Pet {
	pet := core.NewPet("Imp", baseline)

	host := core.NewPlayer(baseline, owner.RNG, owner.CombatLog)
	host.EnemyFireResistance = owner.EnemyFireResistance
	host.EnemyShadowResistance = owner.EnemyShadowResistance
	host.RandomizeValues = owner.RandomizeValues
	// TBC pets land hits and crit at roughly these flat rates against an
	// even-level target; the source's own pet AI doesn't expose a
	// configurable pet hit/crit table, so these are fixed rather than
	// derived from owner Stats.
	host.Stats.HitChance = 99
	host.Stats.SpellCritChance = 4.8
	pet.Host = host

	firebolt := core.NewSpell("Firebolt", host)
	firebolt.School = core.SchoolFire
	firebolt.Type = core.TypeDestruction
	firebolt.OnGCD = false
	firebolt.MinDmg, firebolt.MaxDmg = 91, 107
	firebolt.Coefficient = 0.1
	firebolt.CastTimeBase = 2
	firebolt.DoesDamage = true
	firebolt.CanCrit = true
	firebolt.CanMiss = true
	firebolt.DamageOverride = func(s *core.Spell, isCrit bool) {
		cd := s.GetConstantDamage(false)
		total := cd.Total
		if isCrit {
			total *= s.GetCritMultiplier(owner.CritDamageMultiplier)
		}
		owner.IterationDamage += total
		owner.CombatLog.AddDamage(s.Name, total)
	}
	firebolt.Setup()

	pet.AttackSpell = firebolt
	return pet
}

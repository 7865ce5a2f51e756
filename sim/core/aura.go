package core

// Aura is a temporary modifier state machine: apply, fade, stack, refresh.
// Its stat deltas are expressed as callbacks rather than a fixed struct diff
// because not every aura boosts additive stats — Improved Shadow Bolt, for
// instance, is a flat multiplicative read on Modifier while Active, with no
// additive delta to apply or revoke at all.
type Aura struct {
	Name      string
	Duration  float64
	MaxStacks int

	Stacks       int
	Active       bool
	TimeRemaining float64

	// Modifier is a general-purpose scalar some auras expose for callers to
	// read directly (e.g. the Improved Shadow Bolt damage multiplier).
	Modifier float64

	// Source attributes this aura to the spell that applies it, for combat
	// log messages; non-owning, may be nil for synthetic/test auras.
	Source *Spell

	// Target is the entity this aura's deltas are applied to.
	Target *Entity

	// OnGainStack runs once per stack gained (including the first). It is
	// responsible for adding that stack's stat deltas to Target.Stats.
	OnGainStack func(a *Aura)

	// OnLoseAll runs once when the aura fades completely (stacks -> 0),
	// responsible for reversing every delta OnGainStack ever applied.
	OnLoseAll func(a *Aura)
}

// NewAura constructs an inactive aura with MaxStacks defaulted to 1 when
// unset, matching non-stacking auras being the common case.
func NewAura(name string, duration float64, maxStacks int, target *Entity) *Aura {
	if maxStacks <= 0 {
		maxStacks = 1
	}
	return &Aura{Name: name, Duration: duration, MaxStacks: maxStacks, Modifier: 1, Target: target}
}

// Apply activates the aura if inactive (adding the first stack's deltas) or,
// if already active and stackable, adds one more stack up to the cap.
// Either way the duration is refreshed to full.
func (a *Aura) Apply() {
	if !a.Active {
		a.Active = true
		a.Stacks = 0
		a.addStack()
	} else if a.MaxStacks > 1 && a.Stacks < a.MaxStacks {
		a.addStack()
	}
	a.TimeRemaining = a.Duration
}

func (a *Aura) addStack() {
	a.Stacks++
	if a.OnGainStack != nil {
		a.OnGainStack(a)
	}
}

// Fade revokes every delta this aura applied and deactivates it.
func (a *Aura) Fade() {
	if !a.Active {
		return
	}
	if a.OnLoseAll != nil {
		a.OnLoseAll(a)
	}
	a.Stacks = 0
	a.Active = false
	a.TimeRemaining = 0
}

// DecrementStacks removes one stack (e.g. consumed by a triggering hit).
// Reaching zero stacks fades the aura completely.
func (a *Aura) DecrementStacks() {
	if !a.Active {
		return
	}
	a.Stacks--
	if a.Stacks <= 0 {
		a.Fade()
	}
}

// Tick decrements the aura's remaining duration, fading it exactly once
// when it crosses zero.
func (a *Aura) Tick(dt float64) {
	if !a.Active {
		return
	}
	a.TimeRemaining -= dt
	if a.TimeRemaining <= 0 {
		a.Fade()
	}
}

package core

import "fmt"

// SimulationError reports a fatal invariant violation discovered while a run
// was in progress (casting on an active GCD, casting while another cast or
// cooldown is in progress, and so on). It is recovered at the iteration
// boundary and returned to the caller of Simulation.Run; it never escapes
// as a panic across a package boundary.
type SimulationError struct {
	SpellName     string
	Timer         string
	TimeRemaining float64
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("attempting to cast %s while %s has %.4f seconds remaining", e.SpellName, e.Timer, e.TimeRemaining)
}

func throwInvariant(spellName, timer string, remaining float64) {
	panic(&SimulationError{SpellName: spellName, Timer: timer, TimeRemaining: remaining})
}

// ConfigError reports a problem found while validating a SimulationConfig
// before any tick has run: a missing required rotation selection, or a
// combination of flags that can never produce a valid fight. Unlike
// SimulationError, this is always returned as a plain error, never a panic —
// the caller made a mistake that's discoverable without running anything.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration field %q: %s", e.Field, e.Reason)
}

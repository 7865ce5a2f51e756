package core

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// numberPrinter formats combat-log numbers with thousands separators, the
// Go-ecosystem answer to the source's hand-rolled DoubleToString helper.
var numberPrinter = message.NewPrinter(language.AmericanEnglish)

// SpellBreakdown accumulates per-spell totals for a single iteration, the
// Go equivalent of the source's CombatLogBreakdown; in a RunResult every
// counter and total is summed across all iterations. Mana gained from an
// effect (Mark of Defiance, Judgement of Wisdom, ...) is tracked in the same
// table as damage so a proc that returns mana instead of dealing damage
// still shows up in the summary.
type SpellBreakdown struct {
	Name        string
	Casts       int
	Crits       int
	Misses      int
	TotalDamage float64
	TotalMana   float64

	// DPS is this spell's share of the run's average DPS (TotalDamage over
	// the summed fight duration of every iteration). Left zero until Simulation.Run
	// populates it during result aggregation; a CombatLog used outside a
	// full run (e.g. exercising a single spell in a test) has no fight
	// duration to divide by.
	DPS float64
}

// AverageDamage returns TotalDamage / Casts, or 0 if the spell was never
// cast (e.g. it only ever procced and never landed).
func (b *SpellBreakdown) AverageDamage() float64 {
	if b.Casts == 0 {
		return 0
	}
	return b.TotalDamage / float64(b.Casts)
}

// CombatLog accumulates optional, human-facing log entries and the
// per-spell breakdown for a single iteration. It never writes anywhere
// itself — producing text is core engine behavior, displaying or persisting
// that text is an external collaborator's job (see SPEC_FULL §1).
type CombatLog struct {
	recording  bool
	entries    []string
	breakdown  map[string]*SpellBreakdown
	breakdownOrder []string
}

// NewCombatLog constructs a CombatLog. recording controls whether Logf
// actually appends entries; when false, Logf is a cheap no-op so a
// non-logging iteration doesn't pay string-formatting cost.
func NewCombatLog(recording bool) *CombatLog {
	return &CombatLog{
		recording: recording,
		breakdown: make(map[string]*SpellBreakdown),
	}
}

// Recording reports whether this log is actively collecting entries.
func (c *CombatLog) Recording() bool {
	return c != nil && c.recording
}

// Logf appends a formatted entry. No-op when the log isn't recording.
func (c *CombatLog) Logf(format string, args ...any) {
	if c == nil || !c.recording {
		return
	}
	c.entries = append(c.entries, numberPrinter.Sprintf(format, args...))
}

// Entries returns the accumulated log lines in emission order.
func (c *CombatLog) Entries() []string {
	if c == nil {
		return nil
	}
	return c.entries
}

// breakdownFor returns (creating if necessary) the SpellBreakdown bucket for
// name, matching the source's combat_log_breakdown.insert-if-absent pattern
// in Spell::Setup.
func (c *CombatLog) breakdownFor(name string) *SpellBreakdown {
	b, ok := c.breakdown[name]
	if !ok {
		b = &SpellBreakdown{Name: name}
		c.breakdown[name] = b
		c.breakdownOrder = append(c.breakdownOrder, name)
	}
	return b
}

// AddDamage credits dmg to the spell's running total.
func (c *CombatLog) AddDamage(name string, dmg float64) {
	c.breakdownFor(name).TotalDamage += dmg
}

// AddMana credits mana gained from name's effect.
func (c *CombatLog) AddMana(name string, mana float64) {
	c.breakdownFor(name).TotalMana += mana
}

// AddCast increments the cast counter for name by n (n is usually 1; Seed of
// Corruption credits additional casts for each extra enemy it hits).
func (c *CombatLog) AddCast(name string, n int) {
	c.breakdownFor(name).Casts += n
}

// AddCrit increments the crit counter for name.
func (c *CombatLog) AddCrit(name string) {
	c.breakdownFor(name).Crits++
}

// AddMiss increments the miss counter for name by n.
func (c *CombatLog) AddMiss(name string, n int) {
	c.breakdownFor(name).Misses += n
}

// Breakdown returns the accumulated per-spell breakdown in first-seen order.
func (c *CombatLog) Breakdown() []*SpellBreakdown {
	out := make([]*SpellBreakdown, 0, len(c.breakdownOrder))
	for _, name := range c.breakdownOrder {
		out = append(out, c.breakdown[name])
	}
	return out
}

// TotalDamage sums every spell's TotalDamage, used to cross-check against
// the iteration's running damage total (SPEC_FULL §8 invariant).
func (c *CombatLog) TotalDamage() float64 {
	total := 0.0
	for _, b := range c.breakdown {
		total += b.TotalDamage
	}
	return total
}

func fmtPercent(v float64) string {
	return fmt.Sprintf("%.2f%%", v*100)
}

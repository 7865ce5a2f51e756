package core

import (
	"fmt"
	"math"
	"runtime"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// RunResult is the outward-facing summary of a completed simulation run
// (SPEC_FULL §6): the DPS distribution across every iteration (mean,
// median, min, max, stddev), the merged per-spell damage breakdown, the
// combat log text for one representative iteration (only populated when
// recording was requested), and a run identifier callers can correlate
// against external logging.
type RunResult struct {
	DPS       float64 // mean DPS; kept as the primary field callers read
	DPSMean   float64
	DPSMedian float64
	DPSMin    float64
	DPSMax    float64
	DPSStdDev float64

	Breakdown []*SpellBreakdown
	CombatLog []string
	RunID     string
}

// Simulation drives one or more independent iterations of a fight. NewPlayer
// constructs a fresh Player (with its own RNG and CombatLog) for each
// iteration — concurrent iterations never share mutable actor state, each
// gets its own tree built by the factory.
type Simulation struct {
	NewPlayer func(rng *RNG, log *CombatLog) *Player

	Seed         uint64
	Iterations   int
	MinFightTime float64
	MaxFightTime float64

	// Concurrency caps how many iterations run at once; <=0 defaults to
	// runtime.GOMAXPROCS(0).
	Concurrency int

	// RecordLog, when true, keeps the combat log text of the iteration with
	// the highest index (SPEC_FULL §6 optional recording mode).
	RecordLog bool
}

// splitmix64 derives a well-distributed per-iteration seed from a base seed
// and an iteration index, so each iteration's RNG stream is reproducible
// and independent of how many goroutines happen to run concurrently
// (SPEC_FULL §5.1).
func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	z := x
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

type iterationResult struct {
	damage    float64
	duration  float64
	log       []string
	breakdown []*SpellBreakdown
	err       error
}

// Run executes every iteration, aggregates DPS, and returns the merged
// result. A panic raised as a *SimulationError inside any iteration (an
// invariant violation, per SPEC_FULL §7) is recovered and surfaced as a
// returned error rather than crashing the caller; the run as a whole fails
// when that happens, since a corrupted iteration can't be trusted to
// contribute to an averaged DPS figure.
func (s *Simulation) Run() (RunResult, error) {
	if s.Iterations <= 0 {
		return RunResult{}, &ConfigError{Field: "Iterations", Reason: "must be positive"}
	}
	if s.MaxFightTime < s.MinFightTime {
		return RunResult{}, &ConfigError{Field: "MaxFightTime", Reason: "must be >= MinFightTime"}
	}
	if s.NewPlayer == nil {
		return RunResult{}, &ConfigError{Field: "NewPlayer", Reason: "must be set"}
	}

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = runtime.GOMAXPROCS(0)
	}

	results := make([]iterationResult, s.Iterations)
	indices := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indices {
				results[i] = s.runIteration(i)
			}
		}()
	}
	for i := 0; i < s.Iterations; i++ {
		indices <- i
	}
	close(indices)
	wg.Wait()

	merged := make(map[string]*SpellBreakdown)
	mergedOrder := make([]string, 0)
	var lastLog []string
	iterationDPS := make([]float64, 0, s.Iterations)
	var totalDuration float64

	for _, r := range results {
		if r.err != nil {
			return RunResult{}, r.err
		}
		if r.duration > 0 {
			iterationDPS = append(iterationDPS, r.damage/r.duration)
			totalDuration += r.duration
		}
		if r.log != nil {
			lastLog = r.log
		}
		for _, b := range r.breakdown {
			dst, ok := merged[b.Name]
			if !ok {
				dst = &SpellBreakdown{Name: b.Name}
				merged[b.Name] = dst
				mergedOrder = append(mergedOrder, b.Name)
			}
			dst.Casts += b.Casts
			dst.Crits += b.Crits
			dst.Misses += b.Misses
			dst.TotalDamage += b.TotalDamage
			dst.TotalMana += b.TotalMana
		}
	}

	mean, median, min, max, stddev := dpsStats(iterationDPS)

	breakdown := make([]*SpellBreakdown, 0, len(mergedOrder))
	for _, name := range mergedOrder {
		b := merged[name]
		if totalDuration > 0 {
			b.DPS = b.TotalDamage / totalDuration
		}
		breakdown = append(breakdown, b)
	}

	return RunResult{
		DPS:       mean,
		DPSMean:   mean,
		DPSMedian: median,
		DPSMin:    min,
		DPSMax:    max,
		DPSStdDev: stddev,
		Breakdown: breakdown,
		CombatLog: lastLog,
		RunID:     uuid.NewString(),
	}, nil
}

// dpsStats returns the mean, median, min, max and population standard
// deviation of a run's per-iteration DPS samples (SPEC_FULL §6's DPS
// summary). Returns all zeros for an empty sample (e.g. every iteration had
// zero fight duration).
func dpsStats(samples []float64) (mean, median, min, max, stddev float64) {
	if len(samples) == 0 {
		return 0, 0, 0, 0, 0
	}

	sorted := append([]float64(nil), samples...)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range sorted {
		sum += v
	}
	mean = sum / float64(len(sorted))

	n := len(sorted)
	if n%2 == 1 {
		median = sorted[n/2]
	} else {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	}

	min = sorted[0]
	max = sorted[n-1]

	var variance float64
	for _, v := range sorted {
		d := v - mean
		variance += d * d
	}
	variance /= float64(n)
	stddev = math.Sqrt(variance)

	return mean, median, min, max, stddev
}

func (s *Simulation) runIteration(index int) (result iterationResult) {
	defer func() {
		if r := recover(); r != nil {
			if simErr, ok := r.(*SimulationError); ok {
				result = iterationResult{err: simErr}
				return
			}
			result = iterationResult{err: fmt.Errorf("panic in iteration %d: %v", index, r)}
		}
	}()

	seed := s.Seed ^ splitmix64(uint64(index))
	rng := NewRNG(seed)
	recording := s.RecordLog && index == s.Iterations-1
	log := NewCombatLog(recording)

	player := s.NewPlayer(rng, log)
	player.Reset()

	duration := s.MinFightTime
	if s.MaxFightTime > s.MinFightTime {
		duration = rng.UniformRange(s.MinFightTime, s.MaxFightTime)
	}
	player.TotalFightDuration = duration

	remaining := duration
	for remaining > 0 {
		if player.RotationFunc != nil {
			player.RotationFunc(s, player)
		}
		if player.UseCooldownsFunc != nil {
			player.UseCooldownsFunc(s, player, remaining)
		}

		dt := player.FindTimeUntilNextAction()
		if dt <= 0 {
			dt = 0.01
		}
		if dt > remaining {
			dt = remaining
		}
		player.Tick(dt)
		remaining -= dt
	}

	if damageMismatch := player.IterationDamage - log.TotalDamage(); log.Recording() && (damageMismatch > 0.01 || damageMismatch < -0.01) {
		log.Logf("warning: iteration damage %.2f does not match combat log breakdown total %.2f", player.IterationDamage, log.TotalDamage())
	}

	return iterationResult{
		damage:    player.IterationDamage,
		duration:  duration,
		log:       log.Entries(),
		breakdown: log.Breakdown(),
	}
}

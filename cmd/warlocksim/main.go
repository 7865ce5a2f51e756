// Command warlocksim runs a discrete-event warlock combat simulation from a
// JSON (or JSON-with-comments) config file and prints the resulting DPS and
// per-spell breakdown. It is a thin front door over sim/core and sim/warlock:
// everything it does could equally be driven from another program importing
// those packages directly (SPEC_FULL §10.5).
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/tailscale/hujson"

	"github.com/wowsims/warlocksim/sim/core"
	"github.com/wowsims/warlocksim/sim/warlock"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath  string
		seed        int64
		iterations  int
		minFight    float64
		maxFight    float64
		concurrency int
		recordLog   bool
	)

	cmd := &cobra.Command{
		Use:   "warlocksim",
		Short: "Run a warlock combat simulation from a config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			sim := &core.Simulation{
				NewPlayer:    warlock.NewPlayerFactory(cfg),
				Seed:         uint64(seed),
				Iterations:   iterations,
				MinFightTime: minFight,
				MaxFightTime: maxFight,
				Concurrency:  concurrency,
				RecordLog:    recordLog,
			}

			result, err := sim.Run()
			if err != nil {
				return fmt.Errorf("running simulation: %w", err)
			}

			printResult(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a simulation config file (required)")
	cmd.Flags().Int64Var(&seed, "seed", 1, "base RNG seed")
	cmd.Flags().IntVar(&iterations, "iterations", 1000, "number of independent fight iterations to run")
	cmd.Flags().Float64Var(&minFight, "min-fight-time", 180, "minimum fight duration in seconds")
	cmd.Flags().Float64Var(&maxFight, "max-fight-time", 240, "maximum fight duration in seconds")
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "max concurrent iterations (0 = GOMAXPROCS)")
	cmd.Flags().BoolVar(&recordLog, "record-log", false, "keep a full combat log of the final iteration")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

// loadConfig reads a hujson (JSON-with-comments-and-trailing-commas) config
// file and decodes it into a warlock.SimulationConfig. hujson is what lets a
// hand-edited config keep inline comments without breaking strict JSON
// decoding.
func loadConfig(path string) (warlock.SimulationConfig, error) {
	var cfg warlock.SimulationConfig
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	standardized, err := hujson.Standardize(raw)
	if err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := json.Unmarshal(standardized, &cfg); err != nil {
		return cfg, fmt.Errorf("decoding %s: %w", path, err)
	}
	return cfg, nil
}

// printResult writes the run's DPS summary, per-spell breakdown and any
// recorded combat log to stdout. The DPS summary uses thousands separators
// when stdout is a real terminal (humanize.Commaf) and plain fixed-point
// output otherwise, so piping to a file or another tool doesn't have to deal
// with comma-formatted numbers; the breakdown is always plain fixed-point.
func printResult(result core.RunResult) {
	pretty := isatty.IsTerminal(os.Stdout.Fd())
	fmtNum := func(v float64) string {
		if pretty {
			return humanize.Commaf(v)
		}
		return fmt.Sprintf("%.2f", v)
	}

	fmt.Printf("DPS: mean %s, median %s, min %s, max %s, stddev %s\n\n",
		fmtNum(result.DPSMean), fmtNum(result.DPSMedian), fmtNum(result.DPSMin), fmtNum(result.DPSMax), fmtNum(result.DPSStdDev))

	fmt.Printf("%-28s %8s %8s %8s %14s %10s\n", "Spell", "Casts", "Crits", "Misses", "Avg Damage", "DPS")
	for _, b := range result.Breakdown {
		fmt.Printf("%-28s %8d %8d %8d %14.1f %10.1f\n", b.Name, b.Casts, b.Crits, b.Misses, b.AverageDamage(), b.DPS)
	}

	if len(result.CombatLog) > 0 {
		fmt.Printf("\n(run %s, %d combat log lines recorded)\n", result.RunID, len(result.CombatLog))
		for _, line := range result.CombatLog {
			fmt.Println(line)
		}
	}
}

package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/duel-sim/internal/config"
	"github.com/KirkDiggler/duel-sim/internal/reports"
	"github.com/KirkDiggler/duel-sim/internal/repositories/outcomes"
	"github.com/KirkDiggler/duel-sim/internal/scenario"
	"github.com/KirkDiggler/duel-sim/internal/services/simulation"
)

var (
	runs       int
	workers    int
	seed       int64
	maxRounds  int
	reportPath string
)

var rootCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Fight the default duel many times and summarize the results",
	Long: `simulate runs independent copies of the default duel (Hero vs Goblin) in parallel
and prints how often each side wins.

Settings come from SIMULATE_* environment variables (a .env file is loaded when
present) and may be overridden with flags.

Examples:
  simulate --runs 10000 --workers 8
  simulate --seed 42 --report out/summary.json`,
	SilenceUsage: true,
	RunE:         runSimulation,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().IntVar(&runs, "runs", 0, "number of battles to fight (SIMULATE_RUNS)")
	rootCmd.Flags().IntVar(&workers, "workers", 0, "battles fought concurrently (SIMULATE_WORKERS)")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "base random seed, 0 seeds from the clock (SIMULATE_SEED)")
	rootCmd.Flags().IntVar(&maxRounds, "max-rounds", 0, "round cap per battle (SIMULATE_MAX_ROUNDS)")
	rootCmd.Flags().StringVar(&reportPath, "report", "", "write the summary as JSON to this path (SIMULATE_REPORT)")
}

func runSimulation(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc := simulation.NewService(&simulation.ServiceConfig{
		Repository: outcomes.NewInMemoryRepository(),
		Scenario:   scenario.Default(),
	})

	summary, err := svc.Run(ctx, &simulation.RunInput{
		Runs:      cfg.Simulation.Runs,
		Workers:   cfg.Simulation.Workers,
		Seed:      cfg.Simulation.EffectiveSeed(),
		MaxRounds: cfg.Simulation.MaxRounds,
	})
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), reports.Format(summary))

	if cfg.Simulation.ReportPath != "" {
		if err := reports.NewOSWriter().Write(cfg.Simulation.ReportPath, summary); err != nil {
			return err
		}
		log.Printf("Report written to %s", cfg.Simulation.ReportPath)
	}

	return nil
}

// resolveConfig reads the environment, applies flag overrides and only then validates,
// so a flag can repair a bad environment value
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.LoadFromEnv()
	applyFlags(cmd, &cfg.Simulation)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	return cfg, nil
}

// applyFlags overrides environment settings with any flag the user set explicitly
func applyFlags(cmd *cobra.Command, sim *config.SimulationConfig) {
	flags := cmd.Flags()
	if flags.Changed("runs") {
		sim.Runs = runs
	}
	if flags.Changed("workers") {
		sim.Workers = workers
	}
	if flags.Changed("seed") {
		sim.Seed = seed
	}
	if flags.Changed("max-rounds") {
		sim.MaxRounds = maxRounds
	}
	if flags.Changed("report") {
		sim.ReportPath = reportPath
	}
}

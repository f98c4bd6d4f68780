package simulation

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/duel-sim/internal/dice"
	"github.com/KirkDiggler/duel-sim/internal/entities"
	dnderr "github.com/KirkDiggler/duel-sim/internal/errors"
	"github.com/KirkDiggler/duel-sim/internal/repositories/outcomes"
	"github.com/KirkDiggler/duel-sim/internal/scenario"
	"github.com/KirkDiggler/duel-sim/internal/services/battle"
	"github.com/KirkDiggler/duel-sim/internal/uuid"
)

// Service runs batches of independent battles
type Service interface {
	// Run fights input.Runs battles of the configured scenario and summarizes them
	Run(ctx context.Context, input *RunInput) (*Summary, error)
}

// RunInput controls one batch
type RunInput struct {
	Runs      int
	Workers   int
	Seed      int64
	MaxRounds int
}

// Summary tallies a batch of outcomes
type Summary struct {
	Runs          int     `json:"runs"`
	Seed          int64   `json:"seed"`
	PlayerWins    int     `json:"player_wins"`
	EnemyWins     int     `json:"enemy_wins"`
	NoContests    int     `json:"no_contests"`
	RoundLimits   int     `json:"round_limits"`
	MinRounds     int     `json:"min_rounds"`
	MaxRounds     int     `json:"max_rounds"`
	AverageRounds float64 `json:"average_rounds"`
}

// PlayerWinRate returns player wins as a fraction of all runs
func (s *Summary) PlayerWinRate() float64 {
	if s.Runs == 0 {
		return 0
	}
	return float64(s.PlayerWins) / float64(s.Runs)
}

type service struct {
	repository    outcomes.Repository
	scenario      *scenario.Scenario
	uuidGenerator uuid.Generator
	logger        *log.Logger
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository    outcomes.Repository
	Scenario      *scenario.Scenario
	UUIDGenerator uuid.Generator
	Logger        *log.Logger
}

// NewService creates a new simulation service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}

	svc := &service{
		repository:    cfg.Repository,
		scenario:      cfg.Scenario,
		uuidGenerator: cfg.UUIDGenerator,
		logger:        cfg.Logger,
	}

	if svc.scenario == nil {
		svc.scenario = scenario.Default()
	}
	if svc.uuidGenerator == nil {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if svc.logger == nil {
		svc.logger = log.Default()
	}

	return svc
}

// Run fights every battle on its own manager and roller. Battle i is seeded with
// input.Seed+i, so a batch is reproducible regardless of scheduling.
func (s *service) Run(ctx context.Context, input *RunInput) (*Summary, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input cannot be nil")
	}
	if input.Runs < 1 {
		return nil, dnderr.InvalidArgumentf("runs must be positive: %d", input.Runs)
	}
	if input.Workers < 1 {
		return nil, dnderr.InvalidArgumentf("workers must be positive: %d", input.Workers)
	}

	s.logger.Printf("Simulation: running %d battles on %d workers (seed %d)", input.Runs, input.Workers, input.Seed)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(input.Workers)

	// Each worker writes only its own slot
	results := make([]*battle.Outcome, input.Runs)
	for i := 0; i < input.Runs; i++ {
		i := i
		seed := input.Seed + int64(i)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outcome, err := s.runOne(gctx, seed, input.MaxRounds)
			if err != nil {
				return err
			}
			results[i] = outcome
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, dnderr.Wrap(err, "simulation failed")
	}

	summary := Summarize(results)
	summary.Seed = input.Seed

	s.logger.Printf("Simulation: finished %d battles, player won %d", summary.Runs, summary.PlayerWins)
	return summary, nil
}

func (s *service) runOne(ctx context.Context, seed int64, maxRounds int) (*battle.Outcome, error) {
	m, err := s.scenario.Build(battle.ManagerConfig{
		Roller:        dice.NewRandomRoller(seed),
		UUIDGenerator: s.uuidGenerator,
		MaxRounds:     maxRounds,
		Logger:        battle.NewQuietLogger(),
	})
	if err != nil {
		return nil, err
	}

	outcome, err := m.Start()
	if err != nil {
		return nil, dnderr.Wrapf(err, "battle with seed %d failed", seed)
	}

	if err := s.repository.Create(ctx, outcome); err != nil {
		return nil, err
	}

	return outcome, nil
}

// Summarize tallies outcomes into a summary
func Summarize(list []*battle.Outcome) *Summary {
	summary := &Summary{Runs: len(list)}
	if len(list) == 0 {
		return summary
	}

	totalRounds := 0
	summary.MinRounds = list[0].Rounds
	for _, o := range list {
		switch o.Winner {
		case entities.SidePlayer:
			summary.PlayerWins++
		case entities.SideEnemy:
			summary.EnemyWins++
		default:
			summary.NoContests++
		}
		if o.Reason == entities.ReasonRoundLimit {
			summary.RoundLimits++
		}

		totalRounds += o.Rounds
		if o.Rounds < summary.MinRounds {
			summary.MinRounds = o.Rounds
		}
		if o.Rounds > summary.MaxRounds {
			summary.MaxRounds = o.Rounds
		}
	}
	summary.AverageRounds = float64(totalRounds) / float64(len(list))

	return summary
}

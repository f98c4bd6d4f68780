package main

import (
	"io"
	"log"
	"os"

	"github.com/KirkDiggler/duel-sim/internal/dice"
	"github.com/KirkDiggler/duel-sim/internal/events"
	"github.com/KirkDiggler/duel-sim/internal/handlers/console"
	"github.com/KirkDiggler/duel-sim/internal/scenario"
	"github.com/KirkDiggler/duel-sim/internal/services/battle"
)

func main() {
	outcome, err := run(os.Stdout, dice.NewTimeSeededRoller())
	if err != nil {
		log.Fatalf("Battle failed: %v", err)
	}

	os.Exit(exitCode(outcome))
}

// run fights the default battle, printing combat lines to out
func run(out io.Writer, roller dice.Roller) (*battle.Outcome, error) {
	bus := events.NewBus()
	bus.SubscribeAll(console.NewListener(&console.ListenerConfig{
		Out: out,
	}))

	manager, err := scenario.Default().Build(battle.ManagerConfig{
		Roller:    roller,
		Publisher: bus,
		Logger:    battle.NewQuietLogger(),
	})
	if err != nil {
		return nil, err
	}

	return manager.Start()
}

// exitCode reports whether the player lost
func exitCode(outcome *battle.Outcome) int {
	if outcome.PlayerDefeated() {
		return 1
	}
	return 0
}

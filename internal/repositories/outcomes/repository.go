package outcomes

import (
	"context"

	"github.com/KirkDiggler/duel-sim/internal/services/battle"
)

// Repository defines the interface for battle outcome storage
type Repository interface {
	// Create stores the outcome of a concluded battle
	Create(ctx context.Context, outcome *battle.Outcome) error

	// Get retrieves an outcome by battle ID
	Get(ctx context.Context, battleID string) (*battle.Outcome, error)

	// List returns every stored outcome in insertion order
	List(ctx context.Context) ([]*battle.Outcome, error)

	// Count returns how many outcomes are stored
	Count(ctx context.Context) (int, error)
}

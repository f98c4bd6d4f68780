package outcomes

import (
	"context"
	"sync"

	dnderr "github.com/KirkDiggler/duel-sim/internal/errors"
	"github.com/KirkDiggler/duel-sim/internal/services/battle"
)

type inMemoryRepository struct {
	mu       sync.RWMutex
	outcomes map[string]*battle.Outcome
	order    []string
}

// NewInMemoryRepository creates a new in-memory outcome repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		outcomes: make(map[string]*battle.Outcome),
	}
}

// Create stores the outcome of a concluded battle
func (r *inMemoryRepository) Create(ctx context.Context, outcome *battle.Outcome) error {
	if outcome == nil {
		return dnderr.InvalidArgument("outcome cannot be nil")
	}
	if outcome.BattleID == "" {
		return dnderr.InvalidArgument("outcome battle ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.outcomes[outcome.BattleID]; exists {
		return dnderr.AlreadyExistsf("outcome for battle %s already exists", outcome.BattleID)
	}

	stored := *outcome
	r.outcomes[outcome.BattleID] = &stored
	r.order = append(r.order, outcome.BattleID)

	return nil
}

// Get retrieves an outcome by battle ID
func (r *inMemoryRepository) Get(ctx context.Context, battleID string) (*battle.Outcome, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	outcome, exists := r.outcomes[battleID]
	if !exists {
		return nil, dnderr.NotFoundf("outcome not found: %s", battleID)
	}

	cp := *outcome
	return &cp, nil
}

// List returns every stored outcome in insertion order
func (r *inMemoryRepository) List(ctx context.Context) ([]*battle.Outcome, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*battle.Outcome, 0, len(r.order))
	for _, id := range r.order {
		cp := *r.outcomes[id]
		out = append(out, &cp)
	}

	return out, nil
}

// Count returns how many outcomes are stored
func (r *inMemoryRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.order), nil
}

package outcomes_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/KirkDiggler/duel-sim/internal/entities"
	dnderr "github.com/KirkDiggler/duel-sim/internal/errors"
	"github.com/KirkDiggler/duel-sim/internal/repositories/outcomes"
	"github.com/KirkDiggler/duel-sim/internal/services/battle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := outcomes.NewInMemoryRepository()

	outcome := &battle.Outcome{
		BattleID: "battle-1",
		Winner:   entities.SidePlayer,
		Defeated: entities.SideEnemy,
		Reason:   entities.ReasonElimination,
		Rounds:   5,
	}
	require.NoError(t, repo.Create(ctx, outcome))

	got, err := repo.Get(ctx, "battle-1")
	require.NoError(t, err)
	assert.Equal(t, outcome, got)

	// Stored value is isolated from the caller's copy
	outcome.Rounds = 99
	got, err = repo.Get(ctx, "battle-1")
	require.NoError(t, err)
	assert.Equal(t, 5, got.Rounds)
}

func TestInMemoryRepository_Errors(t *testing.T) {
	ctx := context.Background()
	repo := outcomes.NewInMemoryRepository()

	assert.True(t, dnderr.IsInvalidArgument(repo.Create(ctx, nil)))
	assert.True(t, dnderr.IsInvalidArgument(repo.Create(ctx, &battle.Outcome{})))

	require.NoError(t, repo.Create(ctx, &battle.Outcome{BattleID: "dup"}))
	assert.True(t, dnderr.IsAlreadyExists(repo.Create(ctx, &battle.Outcome{BattleID: "dup"})))

	_, err := repo.Get(ctx, "missing")
	assert.True(t, dnderr.IsNotFound(err))
}

func TestInMemoryRepository_ListKeepsOrder(t *testing.T) {
	ctx := context.Background()
	repo := outcomes.NewInMemoryRepository()

	for i := 1; i <= 3; i++ {
		require.NoError(t, repo.Create(ctx, &battle.Outcome{BattleID: fmt.Sprintf("battle-%d", i), Rounds: i}))
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, o := range list {
		assert.Equal(t, i+1, o.Rounds)
	}

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestInMemoryRepository_ConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	repo := outcomes.NewInMemoryRepository()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, repo.Create(ctx, &battle.Outcome{BattleID: fmt.Sprintf("battle-%d", i)}))
		}(i)
	}
	wg.Wait()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50, count)
}

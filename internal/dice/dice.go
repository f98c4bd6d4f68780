package dice

import (
	"fmt"
	"math/rand"
	"strings"

	dnderr "github.com/KirkDiggler/duel-sim/internal/errors"
)

// RollResult contains detailed information about a dice roll
type RollResult struct {
	Total    int   // Sum of all dice plus bonus
	Rolls    []int // Individual die results
	Bonus    int   // Bonus applied
	Count    int   // Number of dice rolled
	Sides    int   // Number of sides on each die
	RawTotal int   // Sum of dice without bonus
}

func (r *RollResult) String() string {
	compact := strings.ReplaceAll(fmt.Sprintf("%v", r.Rolls), " ", "")
	return fmt.Sprintf("%dd%d%+d = %d %s", r.Count, r.Sides, r.Bonus, r.Total, compact)
}

// roll rolls count dice of the given size from rng
func roll(rng *rand.Rand, count, sides, bonus int) (*RollResult, error) {
	if count < 1 {
		return nil, dnderr.InvalidArgumentf("invalid dice count: %d", count)
	}

	if sides < 1 {
		return nil, dnderr.InvalidArgumentf("invalid dice size: %d", sides)
	}

	rawTotal := 0
	out := make([]int, count)
	for i := 0; i < count; i++ {
		out[i] = rng.Intn(sides) + 1
		rawTotal += out[i]
	}

	return &RollResult{
		Total:    rawTotal + bonus,
		Rolls:    out,
		Bonus:    bonus,
		Count:    count,
		Sides:    sides,
		RawTotal: rawTotal,
	}, nil
}

// Between returns a value uniformly drawn from [lo, hi] using a single die
func Between(r Roller, lo, hi int) (int, error) {
	if hi < lo {
		return 0, dnderr.InvalidArgumentf("invalid range [%d, %d]", lo, hi)
	}

	result, err := r.Roll(1, hi-lo+1, lo-1)
	if err != nil {
		return 0, err
	}

	return result.Total, nil
}

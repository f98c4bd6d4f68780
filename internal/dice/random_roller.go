package dice

import (
	"math/rand"
	"sync"
	"time"
)

// randomRoller implements Roller with its own seeded source
type randomRoller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomRoller creates a dice roller seeded once with seed
func NewRandomRoller(seed int64) Roller {
	return &randomRoller{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// NewTimeSeededRoller creates a dice roller seeded from the current time
func NewTimeSeededRoller() Roller {
	return NewRandomRoller(time.Now().UnixNano())
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return roll(r.rng, count, sides, bonus)
}

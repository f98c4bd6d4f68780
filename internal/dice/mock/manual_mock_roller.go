package mockdice

import (
	"fmt"
	"sync"

	"github.com/KirkDiggler/duel-sim/internal/dice"
)

// ManualMockRoller implements dice.Roller for testing with predetermined results
type ManualMockRoller struct {
	mu        sync.Mutex
	rolls     []int
	rollIndex int
	calls     []Call
}

// Call records the arguments of one Roll invocation
type Call struct {
	Count int
	Sides int
	Bonus int
}

// NewManualMockRoller creates a new mock dice roller
func NewManualMockRoller(rolls ...int) *ManualMockRoller {
	return &ManualMockRoller{
		rolls: append([]int{}, rolls...),
	}
}

// SetNextRoll appends the next roll result
func (m *ManualMockRoller) SetNextRoll(roll int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = append(m.rolls, roll)
}

// SetRolls sets multiple roll results
func (m *ManualMockRoller) SetRolls(rolls []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = rolls
	m.rollIndex = 0
}

// Reset clears all rolls and resets the index
func (m *ManualMockRoller) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = []int{}
	m.rollIndex = 0
	m.calls = nil
}

// Calls returns every Roll invocation seen so far
func (m *ManualMockRoller) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Call{}, m.calls...)
}

// Remaining reports how many scripted rolls have not been used
func (m *ManualMockRoller) Remaining() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rolls) - m.rollIndex
}

// getNextRoll returns the next predetermined roll
func (m *ManualMockRoller) getNextRoll() (int, error) {
	if m.rollIndex >= len(m.rolls) {
		return 0, fmt.Errorf("no more predetermined rolls available (used %d of %d)", m.rollIndex, len(m.rolls))
	}

	roll := m.rolls[m.rollIndex]
	m.rollIndex++
	return roll, nil
}

// Roll implements dice.Roller.Roll
func (m *ManualMockRoller) Roll(count, sides, bonus int) (*dice.RollResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, Call{Count: count, Sides: sides, Bonus: bonus})

	rolls := make([]int, count)
	rawTotal := 0

	for i := 0; i < count; i++ {
		roll, err := m.getNextRoll()
		if err != nil {
			return nil, err
		}
		if roll < 1 || roll > sides {
			return nil, fmt.Errorf("invalid roll %d for d%d", roll, sides)
		}
		rolls[i] = roll
		rawTotal += roll
	}

	return &dice.RollResult{
		Total:    rawTotal + bonus,
		Rolls:    rolls,
		Bonus:    bonus,
		Count:    count,
		Sides:    sides,
		RawTotal: rawTotal,
	}, nil
}

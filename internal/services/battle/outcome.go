package battle

import (
	"fmt"

	"github.com/KirkDiggler/duel-sim/internal/entities"
)

// State is the lifecycle state of a battle
type State string

const (
	StateNotStarted State = "not_started"
	StateInProgress State = "in_progress"
	StateConcluded  State = "concluded"
)

// Outcome is the final report of a concluded battle.
// Winner and Defeated come from the loop's own break reason and are SideNone when
// the battle ended without an elimination.
type Outcome struct {
	BattleID     string                    `json:"battle_id"`
	Winner       entities.Side             `json:"winner"`
	Defeated     entities.Side             `json:"defeated"`
	Reason       entities.ConclusionReason `json:"reason"`
	Rounds       int                       `json:"rounds"`
	PlayerHealth int                       `json:"player_health"`
	EnemyHealth  int                       `json:"enemy_health"`
}

// PlayerDefeated reports whether the player side lost
func (o *Outcome) PlayerDefeated() bool {
	return o.Defeated == entities.SidePlayer
}

// HasWinner reports whether the battle ended by elimination with a surviving side
func (o *Outcome) HasWinner() bool {
	return o.Winner != entities.SideNone
}

func (o *Outcome) String() string {
	if !o.HasWinner() {
		return fmt.Sprintf("no winner (%s) after %d rounds", o.Reason, o.Rounds)
	}
	return fmt.Sprintf("%s wins by %s after %d rounds", o.Winner, o.Reason, o.Rounds)
}

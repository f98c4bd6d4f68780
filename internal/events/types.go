package events

import (
	"github.com/KirkDiggler/duel-sim/internal/entities"
)

// EventType represents the type of battle event
type EventType string

const (
	EventTypeBattleStarted   EventType = "battle_started"
	EventTypeWeaponEquipped  EventType = "weapon_equipped"
	EventTypeAttack          EventType = "attack"
	EventTypeHeal            EventType = "heal"
	EventTypeNoWeapon        EventType = "no_weapon"
	EventTypeBattleConcluded EventType = "battle_concluded"
)

// Event is the base interface for all battle events
type Event interface {
	GetType() EventType
	GetBattleID() string
	GetRound() int
}

// BaseEvent provides common implementation for all events
type BaseEvent struct {
	Type     EventType
	BattleID string
	Round    int
}

func (e *BaseEvent) GetType() EventType  { return e.Type }
func (e *BaseEvent) GetBattleID() string { return e.BattleID }
func (e *BaseEvent) GetRound() int       { return e.Round }

// BattleStartedEvent is emitted once when the combat loop begins
type BattleStartedEvent struct {
	BaseEvent
	Player string
	Enemy  string
}

// WeaponEquippedEvent is emitted when a weapon is bound to a combatant
type WeaponEquippedEvent struct {
	BaseEvent
	Combatant string
	Side      entities.Side
	Weapon    string
	Random    bool
}

// AttackEvent is emitted after every resolved attack
type AttackEvent struct {
	BaseEvent
	Result *entities.AttackResult
}

// HealEvent is emitted after a heal is applied
type HealEvent struct {
	BaseEvent
	Combatant string
	Side      entities.Side
	Amount    int
	Health    int
}

// NoWeaponEvent is emitted when a round cannot be fought because a side is unarmed
type NoWeaponEvent struct {
	BaseEvent
	Unarmed []string
}

// BattleConcludedEvent is emitted once when the combat loop ends
type BattleConcludedEvent struct {
	BaseEvent
	Winner       entities.Side
	Defeated     entities.Side
	DefeatedName string
	Reason       entities.ConclusionReason
}

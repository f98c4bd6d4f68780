// Package battle runs a one on one duel between a player side and an enemy side combatant.
package battle

import (
	"io"
	"log"

	"github.com/KirkDiggler/duel-sim/internal/dice"
	"github.com/KirkDiggler/duel-sim/internal/entities"
	dnderr "github.com/KirkDiggler/duel-sim/internal/errors"
	"github.com/KirkDiggler/duel-sim/internal/events"
	"github.com/KirkDiggler/duel-sim/internal/uuid"
)

const (
	// DefaultMaxRounds caps a battle whose weapons cannot finish it
	DefaultMaxRounds = 10000

	// HealMin and HealMax bound the random heal applied to the player each round
	HealMin = 1
	HealMax = 50
)

// ManagerConfig holds configuration for the battle manager
type ManagerConfig struct {
	// Player and Enemy are snapshots; the manager fights with its own copies
	Player *entities.Combatant
	Enemy  *entities.Combatant

	// Roller draws random weapon indexes and heal amounts; defaults to a time seeded roller
	Roller dice.Roller

	// Publisher receives every battle event; optional
	Publisher events.Publisher

	// UUIDGenerator names the battle; defaults to google uuids
	UUIDGenerator uuid.Generator

	// MaxRounds defaults to DefaultMaxRounds
	MaxRounds int

	// Logger defaults to the standard logger
	Logger *log.Logger
}

// Manager owns both combatants and the arsenal of one battle and drives the combat loop.
//
// The player side always attacks first in every round. Only the player side is healed
// between rounds.
type Manager struct {
	id        string
	player    *entities.Combatant
	enemy     *entities.Combatant
	arsenal   *entities.Arsenal
	roller    dice.Roller
	publisher events.Publisher
	maxRounds int
	logger    *log.Logger

	state   State
	round   int
	outcome *Outcome
}

// NewManager creates a battle manager in the not started state
func NewManager(cfg *ManagerConfig) (*Manager, error) {
	if cfg == nil {
		return nil, dnderr.InvalidArgument("manager config is required")
	}
	if cfg.Player == nil {
		return nil, dnderr.InvalidArgument("player is required")
	}
	if cfg.Enemy == nil {
		return nil, dnderr.InvalidArgument("enemy is required")
	}
	if cfg.Player.Side() != entities.SidePlayer {
		return nil, dnderr.InvalidArgumentf("player must be on the player side, got %q", cfg.Player.Side())
	}
	if cfg.Enemy.Side() != entities.SideEnemy {
		return nil, dnderr.InvalidArgumentf("enemy must be on the enemy side, got %q", cfg.Enemy.Side())
	}
	if cfg.MaxRounds < 0 {
		return nil, dnderr.InvalidArgumentf("max rounds cannot be negative: %d", cfg.MaxRounds)
	}

	m := &Manager{
		player:    cfg.Player.Clone(),
		enemy:     cfg.Enemy.Clone(),
		arsenal:   entities.NewArsenal(),
		roller:    cfg.Roller,
		publisher: cfg.Publisher,
		maxRounds: cfg.MaxRounds,
		logger:    cfg.Logger,
		state:     StateNotStarted,
	}

	// Only arsenal weapons may be equipped; snapshots arrive unarmed
	m.player.EquipWeapon(nil)
	m.enemy.EquipWeapon(nil)

	if m.roller == nil {
		m.roller = dice.NewTimeSeededRoller()
	}
	if m.maxRounds == 0 {
		m.maxRounds = DefaultMaxRounds
	}
	if m.logger == nil {
		m.logger = log.Default()
	}

	idGen := cfg.UUIDGenerator
	if idGen == nil {
		idGen = uuid.NewGoogleUUIDGenerator()
	}
	m.id = idGen.New()

	return m, nil
}

// NewQuietLogger returns a logger that drops everything, for batch runs
func NewQuietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func (m *Manager) ID() string                  { return m.id }
func (m *Manager) State() State                { return m.state }
func (m *Manager) Player() *entities.Combatant { return m.player }
func (m *Manager) Enemy() *entities.Combatant  { return m.enemy }
func (m *Manager) Arsenal() *entities.Arsenal  { return m.arsenal }

// Outcome returns the result once the battle has concluded
func (m *Manager) Outcome() (*Outcome, bool) {
	return m.outcome, m.outcome != nil
}

// Combatant returns the combatant fighting for side
func (m *Manager) Combatant(side entities.Side) (*entities.Combatant, error) {
	switch side {
	case entities.SidePlayer:
		return m.player, nil
	case entities.SideEnemy:
		return m.enemy, nil
	default:
		return nil, dnderr.InvalidArgumentf("invalid side: %q", side)
	}
}

// AddWeapon stores a copy of weapon at the end of the arsenal. Weapons can only be
// added before the battle starts.
func (m *Manager) AddWeapon(weapon *entities.Weapon) error {
	if weapon == nil {
		return dnderr.InvalidArgument("weapon is required")
	}
	if m.state != StateNotStarted {
		return dnderr.FailedPreconditionf("cannot add weapons to a battle that is %s", m.state)
	}

	owned, err := entities.NewWeapon(weapon.Name(), weapon.Damage())
	if err != nil {
		return dnderr.Wrapf(err, "failed to add weapon %s", weapon.Name())
	}

	m.arsenal.Add(owned)
	return nil
}

// EquipPlayerWeapon equips the arsenal weapon at index to the player
func (m *Manager) EquipPlayerWeapon(index int) bool {
	return m.EquipByIndex(entities.SidePlayer, index)
}

// EquipEnemyWeapon equips the arsenal weapon at index to the enemy
func (m *Manager) EquipEnemyWeapon(index int) bool {
	return m.EquipByIndex(entities.SideEnemy, index)
}

// EquipByIndex binds the arsenal weapon at index to the combatant on side.
// An index outside the arsenal leaves the current weapon in place and reports false.
func (m *Manager) EquipByIndex(side entities.Side, index int) bool {
	c, err := m.Combatant(side)
	if err != nil {
		return false
	}

	weapon, ok := m.arsenal.Get(index)
	if !ok {
		return false
	}

	c.EquipWeapon(weapon)
	if err := m.emit(m.equippedEvent(c, weapon, false)); err != nil {
		m.logger.Printf("BattleManager: failed to report equip for %s: %v", c.Name(), err)
	}

	return true
}

// EquipRandom equips a uniformly chosen arsenal weapon to the combatant on side.
// It returns a nil weapon and leaves the combatant untouched when the arsenal is empty.
func (m *Manager) EquipRandom(side entities.Side) (*entities.Weapon, error) {
	c, err := m.Combatant(side)
	if err != nil {
		return nil, err
	}

	return m.equipRandom(c)
}

func (m *Manager) equipRandom(c *entities.Combatant) (*entities.Weapon, error) {
	if m.arsenal.IsEmpty() {
		return nil, nil
	}

	index, err := dice.Between(m.roller, 0, m.arsenal.Len()-1)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to pick a weapon for %s", c.Name())
	}

	weapon, ok := m.arsenal.Get(index)
	if !ok {
		return nil, dnderr.Newf(dnderr.CodeInternal, "roller picked weapon %d of %d", index, m.arsenal.Len())
	}

	c.EquipWeapon(weapon)
	if err := m.emit(m.equippedEvent(c, weapon, true)); err != nil {
		return nil, err
	}

	return weapon, nil
}

// RandomlyHealPlayer heals the player by an amount drawn from [HealMin, HealMax] and
// returns the amount healed. The draw always happens, but a defeated player is not
// healed and 0 is returned.
func (m *Manager) RandomlyHealPlayer() (int, error) {
	amount, err := dice.Between(m.roller, HealMin, HealMax)
	if err != nil {
		return 0, dnderr.Wrap(err, "failed to roll heal")
	}

	if !m.player.IsAlive() {
		return 0, nil
	}

	if err := m.player.Heal(amount); err != nil {
		return 0, err
	}

	err = m.emit(&events.HealEvent{
		BaseEvent: m.base(events.EventTypeHeal),
		Combatant: m.player.Name(),
		Side:      m.player.Side(),
		Amount:    amount,
		Health:    m.player.Health(),
	})
	if err != nil {
		return 0, err
	}

	return amount, nil
}

func (m *Manager) equippedEvent(c *entities.Combatant, w *entities.Weapon, random bool) *events.WeaponEquippedEvent {
	return &events.WeaponEquippedEvent{
		BaseEvent: m.base(events.EventTypeWeaponEquipped),
		Combatant: c.Name(),
		Side:      c.Side(),
		Weapon:    w.Name(),
		Random:    random,
	}
}

func (m *Manager) base(eventType events.EventType) events.BaseEvent {
	return events.BaseEvent{
		Type:     eventType,
		BattleID: m.id,
		Round:    m.round,
	}
}

func (m *Manager) emit(event events.Event) error {
	if m.publisher == nil {
		return nil
	}

	if err := m.publisher.Emit(event); err != nil {
		return dnderr.Wrapf(err, "failed to publish %s", event.GetType())
	}

	return nil
}

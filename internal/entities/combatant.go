package entities

import (
	"fmt"
	"strings"

	dnderr "github.com/KirkDiggler/duel-sim/internal/errors"
)

// Combatant is one fighter in a duel. Player and enemy combatants behave the same way
// and differ only by their Side.
//
// Health never drops below zero. The equipped weapon is a handle into an Arsenal and is
// not owned by the combatant.
type Combatant struct {
	name     string
	side     Side
	health   int
	strength int
	weapon   *Weapon
}

// NewCombatant creates an unarmed combatant
func NewCombatant(side Side, name string, health, strength int) (*Combatant, error) {
	if !side.IsValid() {
		return nil, dnderr.InvalidArgumentf("invalid side: %q", side)
	}
	if strings.TrimSpace(name) == "" {
		return nil, dnderr.InvalidArgument("combatant name is required")
	}
	if health < 0 {
		return nil, dnderr.InvalidArgumentf("health cannot be negative: %d", health)
	}
	if strength < 0 {
		return nil, dnderr.InvalidArgumentf("strength cannot be negative: %d", strength)
	}

	return &Combatant{
		name:     name,
		side:     side,
		health:   health,
		strength: strength,
	}, nil
}

// NewPlayer creates a player side combatant
func NewPlayer(name string, health, strength int) (*Combatant, error) {
	return NewCombatant(SidePlayer, name, health, strength)
}

// NewEnemy creates an enemy side combatant
func NewEnemy(name string, health, strength int) (*Combatant, error) {
	return NewCombatant(SideEnemy, name, health, strength)
}

func (c *Combatant) Name() string  { return c.name }
func (c *Combatant) Side() Side    { return c.side }
func (c *Combatant) Health() int   { return c.health }
func (c *Combatant) Strength() int { return c.strength }

func (c *Combatant) IsAlive() bool {
	return c.health > 0
}

func (c *Combatant) HasWeapon() bool {
	return c.weapon != nil
}

// Weapon returns the equipped weapon or a failed precondition error when unarmed
func (c *Combatant) Weapon() (*Weapon, error) {
	if c.weapon == nil {
		return nil, dnderr.FailedPreconditionf("%s has no weapon equipped", c.name)
	}

	return c.weapon, nil
}

// EquipWeapon replaces the current weapon. A nil weapon leaves the combatant unarmed.
func (c *Combatant) EquipWeapon(weapon *Weapon) {
	c.weapon = weapon
}

// Heal raises health by amount with no upper cap. Healing a defeated combatant does nothing.
func (c *Combatant) Heal(amount int) error {
	if amount < 0 {
		return dnderr.InvalidArgumentf("heal amount cannot be negative: %d", amount).
			WithMeta("combatant", c.name)
	}

	if !c.IsAlive() {
		return nil
	}

	c.health += amount
	return nil
}

// TakeDamage lowers health by amount, stopping at zero
func (c *Combatant) TakeDamage(amount int) error {
	if amount < 0 {
		return dnderr.InvalidArgumentf("damage amount cannot be negative: %d", amount).
			WithMeta("combatant", c.name)
	}

	c.health -= amount
	if c.health < 0 {
		c.health = 0
	}

	return nil
}

// Attack hits target with the equipped weapon for weapon damage times strength.
// An unarmed combatant does not attack and a nil result is returned.
func (c *Combatant) Attack(target *Combatant) (*AttackResult, error) {
	if c.weapon == nil {
		return nil, nil
	}
	if target == nil {
		return nil, dnderr.InvalidArgument("attack target is required")
	}

	dealt := c.weapon.Damage() * c.strength
	if err := target.TakeDamage(dealt); err != nil {
		return nil, dnderr.Wrapf(err, "%s failed to attack %s", c.name, target.name)
	}

	return &AttackResult{
		Attacker:     c.name,
		AttackerSide: c.side,
		Target:       target.name,
		TargetSide:   target.side,
		Weapon:       c.weapon.Name(),
		Damage:       dealt,
		TargetHealth: target.health,
		TargetAlive:  target.IsAlive(),
	}, nil
}

// Clone returns a copy that shares the same weapon handle
func (c *Combatant) Clone() *Combatant {
	cp := *c
	return &cp
}

func (c *Combatant) String() string {
	return fmt.Sprintf("%s (%s, health %d)", c.name, c.side, c.health)
}

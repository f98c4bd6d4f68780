package entities

import (
	"strings"

	dnderr "github.com/KirkDiggler/duel-sim/internal/errors"
)

// Weapon is an equippable weapon. The name is fixed at construction, the damage can be tuned.
type Weapon struct {
	name   string
	damage int
}

// NewWeapon creates a weapon with the given base damage
func NewWeapon(name string, damage int) (*Weapon, error) {
	if strings.TrimSpace(name) == "" {
		return nil, dnderr.InvalidArgument("weapon name is required")
	}
	if damage < 0 {
		return nil, dnderr.InvalidArgumentf("weapon damage cannot be negative: %d", damage)
	}

	return &Weapon{name: name, damage: damage}, nil
}

func (w *Weapon) Name() string {
	return w.name
}

func (w *Weapon) Damage() int {
	return w.damage
}

// SetDamage changes the weapon damage. Negative values are rejected and leave the weapon as it was.
func (w *Weapon) SetDamage(damage int) error {
	if damage < 0 {
		return dnderr.InvalidArgumentf("weapon damage cannot be negative: %d", damage).
			WithMeta("weapon", w.name)
	}

	w.damage = damage
	return nil
}

func (w *Weapon) String() string {
	return w.name
}

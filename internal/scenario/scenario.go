package scenario

import (
	"github.com/KirkDiggler/duel-sim/internal/entities"
	dnderr "github.com/KirkDiggler/duel-sim/internal/errors"
	"github.com/KirkDiggler/duel-sim/internal/services/battle"
)

// CombatantSpec describes a combatant before it is built
type CombatantSpec struct {
	Name     string
	Health   int
	Strength int
}

// WeaponSpec describes an arsenal entry
type WeaponSpec struct {
	Name   string
	Damage int
}

// Scenario is a fixed battle setup: two fighters, an arsenal and starting weapon picks.
// A negative weapon index leaves that side to pick at random when the battle starts.
type Scenario struct {
	Player       CombatantSpec
	Enemy        CombatantSpec
	Weapons      []WeaponSpec
	PlayerWeapon int
	EnemyWeapon  int
}

// Default is Hero against Goblin with a sword, axe, dagger and bow on the rack.
// Hero starts with the sword and Goblin with the axe.
func Default() *Scenario {
	return &Scenario{
		Player: CombatantSpec{Name: "Hero", Health: 300, Strength: 2},
		Enemy:  CombatantSpec{Name: "Goblin", Health: 150, Strength: 4},
		Weapons: []WeaponSpec{
			{Name: "Sword", Damage: 15},
			{Name: "Axe", Damage: 20},
			{Name: "Dagger", Damage: 10},
			{Name: "Bow", Damage: 25},
		},
		PlayerWeapon: 0,
		EnemyWeapon:  1,
	}
}

// Build creates a ready to start battle manager for the scenario. Player, Enemy and
// everything derived from them in cfg are filled in from the scenario.
func (s *Scenario) Build(cfg battle.ManagerConfig) (*battle.Manager, error) {
	player, err := entities.NewPlayer(s.Player.Name, s.Player.Health, s.Player.Strength)
	if err != nil {
		return nil, dnderr.Wrap(err, "invalid scenario player")
	}
	enemy, err := entities.NewEnemy(s.Enemy.Name, s.Enemy.Health, s.Enemy.Strength)
	if err != nil {
		return nil, dnderr.Wrap(err, "invalid scenario enemy")
	}

	cfg.Player = player
	cfg.Enemy = enemy

	m, err := battle.NewManager(&cfg)
	if err != nil {
		return nil, err
	}

	for _, ws := range s.Weapons {
		w, err := entities.NewWeapon(ws.Name, ws.Damage)
		if err != nil {
			return nil, dnderr.Wrapf(err, "invalid scenario weapon %q", ws.Name)
		}
		if err := m.AddWeapon(w); err != nil {
			return nil, err
		}
	}

	if s.PlayerWeapon >= 0 {
		m.EquipPlayerWeapon(s.PlayerWeapon)
	}
	if s.EnemyWeapon >= 0 {
		m.EquipEnemyWeapon(s.EnemyWeapon)
	}

	return m, nil
}

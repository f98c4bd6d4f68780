package battle

import (
	"github.com/KirkDiggler/duel-sim/internal/entities"
	dnderr "github.com/KirkDiggler/duel-sim/internal/errors"
	"github.com/KirkDiggler/duel-sim/internal/events"
)

// Start runs the battle to completion and returns its outcome.
//
// Unarmed combatants are given a random arsenal weapon first. Each round the player
// attacks, then the enemy attacks, and if both still stand the player is healed. The
// battle ends on the first elimination, when a side is unarmed at the start of a round,
// or when the round limit is reached. A battle can only be started once.
func (m *Manager) Start() (*Outcome, error) {
	if m.state != StateNotStarted {
		return nil, dnderr.FailedPreconditionf("battle %s is already %s", m.id, m.state)
	}
	m.state = StateInProgress

	m.logger.Printf("BattleManager: battle %s started: %s vs %s", m.id, m.player.Name(), m.enemy.Name())
	err := m.emit(&events.BattleStartedEvent{
		BaseEvent: m.base(events.EventTypeBattleStarted),
		Player:    m.player.Name(),
		Enemy:     m.enemy.Name(),
	})
	if err != nil {
		return nil, err
	}

	for _, c := range []*entities.Combatant{m.player, m.enemy} {
		if c.HasWeapon() {
			continue
		}
		if _, err := m.equipRandom(c); err != nil {
			return nil, err
		}
	}

	first, second := m.turnOrder()

	// A side that enters already defeated loses without a blow being struck
	if !first.IsAlive() || !second.IsAlive() {
		return m.concludeWithoutRounds(first, second)
	}

	for round := 1; round <= m.maxRounds; round++ {
		m.round = round

		if !first.HasWeapon() || !second.HasWeapon() {
			return m.concludeUnarmed(first, second)
		}

		if ok, err := m.strike(first, second); err != nil || ok {
			return m.afterStrike(first, second, err)
		}

		if ok, err := m.strike(second, first); err != nil || ok {
			return m.afterStrike(second, first, err)
		}

		if _, err := m.RandomlyHealPlayer(); err != nil {
			return nil, err
		}
	}

	return m.conclude(entities.SideNone, nil, entities.ReasonRoundLimit)
}

// turnOrder returns the fixed attack order: player first, enemy second
func (m *Manager) turnOrder() (first, second *entities.Combatant) {
	return m.player, m.enemy
}

// strike resolves one attack and reports whether it eliminated the target
func (m *Manager) strike(attacker, target *entities.Combatant) (bool, error) {
	result, err := attacker.Attack(target)
	if err != nil {
		return false, err
	}
	if result == nil {
		return false, nil
	}

	err = m.emit(&events.AttackEvent{
		BaseEvent: m.base(events.EventTypeAttack),
		Result:    result,
	})
	if err != nil {
		return false, err
	}

	return !target.IsAlive(), nil
}

func (m *Manager) afterStrike(attacker, target *entities.Combatant, err error) (*Outcome, error) {
	if err != nil {
		return nil, dnderr.Wrapf(err, "battle %s failed in round %d", m.id, m.round)
	}

	return m.conclude(attacker.Side(), target, entities.ReasonElimination)
}

func (m *Manager) concludeUnarmed(combatants ...*entities.Combatant) (*Outcome, error) {
	var unarmed []string
	for _, c := range combatants {
		if !c.HasWeapon() {
			unarmed = append(unarmed, c.Name())
		}
	}

	m.logger.Printf("BattleManager: battle %s cannot be fought, unarmed: %v", m.id, unarmed)
	err := m.emit(&events.NoWeaponEvent{
		BaseEvent: m.base(events.EventTypeNoWeapon),
		Unarmed:   unarmed,
	})
	if err != nil {
		return nil, err
	}

	// The round never happened
	m.round--
	return m.conclude(entities.SideNone, nil, entities.ReasonNoWeapon)
}

func (m *Manager) concludeWithoutRounds(first, second *entities.Combatant) (*Outcome, error) {
	switch {
	case !first.IsAlive() && !second.IsAlive():
		// Nobody is left to win; the first side is reported as defeated
		return m.conclude(entities.SideNone, first, entities.ReasonElimination)
	case !first.IsAlive():
		return m.conclude(second.Side(), first, entities.ReasonElimination)
	default:
		return m.conclude(first.Side(), second, entities.ReasonElimination)
	}
}

func (m *Manager) conclude(winner entities.Side, defeated *entities.Combatant, reason entities.ConclusionReason) (*Outcome, error) {
	m.state = StateConcluded

	outcome := &Outcome{
		BattleID:     m.id,
		Winner:       winner,
		Defeated:     entities.SideNone,
		Reason:       reason,
		Rounds:       m.round,
		PlayerHealth: m.player.Health(),
		EnemyHealth:  m.enemy.Health(),
	}

	event := &events.BattleConcludedEvent{
		BaseEvent: m.base(events.EventTypeBattleConcluded),
		Winner:    winner,
		Defeated:  entities.SideNone,
		Reason:    reason,
	}
	if defeated != nil {
		outcome.Defeated = defeated.Side()
		event.Defeated = defeated.Side()
		event.DefeatedName = defeated.Name()
	}

	m.outcome = outcome
	m.logger.Printf("BattleManager: battle %s concluded: %s", m.id, outcome)

	if err := m.emit(event); err != nil {
		return nil, err
	}

	return outcome, nil
}

package console_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/KirkDiggler/duel-sim/internal/entities"
	"github.com/KirkDiggler/duel-sim/internal/events"
	"github.com/KirkDiggler/duel-sim/internal/handlers/console"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func base(t events.EventType, round int) events.BaseEvent {
	return events.BaseEvent{Type: t, BattleID: "battle-1", Round: round}
}

func TestListener_HandleEvent(t *testing.T) {
	tests := []struct {
		name  string
		event events.Event
		want  []string
	}{
		{
			name:  "battle started",
			event: &events.BattleStartedEvent{BaseEvent: base(events.EventTypeBattleStarted, 0), Player: "Hero", Enemy: "Goblin"},
			want:  []string{"Game started: Hero vs Goblin"},
		},
		{
			name:  "weapon equipped",
			event: &events.WeaponEquippedEvent{BaseEvent: base(events.EventTypeWeaponEquipped, 0), Combatant: "Hero", Side: entities.SidePlayer, Weapon: "Sword"},
			want:  []string{"Hero (Player) equips Sword"},
		},
		{
			name:  "random weapon",
			event: &events.WeaponEquippedEvent{BaseEvent: base(events.EventTypeWeaponEquipped, 0), Combatant: "Goblin", Side: entities.SideEnemy, Weapon: "Bow", Random: true},
			want:  []string{"Goblin (Enemy) picks up Bow"},
		},
		{
			name: "attack",
			event: &events.AttackEvent{BaseEvent: base(events.EventTypeAttack, 1), Result: &entities.AttackResult{
				Attacker: "Hero", Target: "Goblin", Weapon: "Sword", Damage: 30, TargetHealth: 120, TargetAlive: true,
			}},
			want: []string{"Hero attacks Goblin with Sword", "Goblin takes 30 damage", "Goblin health: 120"},
		},
		{
			name:  "heal",
			event: &events.HealEvent{BaseEvent: base(events.EventTypeHeal, 1), Combatant: "Hero", Side: entities.SidePlayer, Amount: 12, Health: 232},
			want:  []string{"Hero healed by 12 points."},
		},
		{
			name:  "no weapon",
			event: &events.NoWeaponEvent{BaseEvent: base(events.EventTypeNoWeapon, 1), Unarmed: []string{"Hero"}},
			want:  []string{"Weapon not equipped. Cannot fight."},
		},
		{
			name:  "defeat",
			event: &events.BattleConcludedEvent{BaseEvent: base(events.EventTypeBattleConcluded, 5), Winner: entities.SidePlayer, Defeated: entities.SideEnemy, DefeatedName: "Goblin", Reason: entities.ReasonElimination},
			want:  []string{"Goblin has been defeated."},
		},
		{
			name:  "round limit",
			event: &events.BattleConcludedEvent{BaseEvent: base(events.EventTypeBattleConcluded, 10), Reason: entities.ReasonRoundLimit},
			want:  []string{"No one has been defeated after 10 rounds."},
		},
		{
			name:  "unarmed conclusion",
			event: &events.BattleConcludedEvent{BaseEvent: base(events.EventTypeBattleConcluded, 0), Reason: entities.ReasonNoWeapon},
			want:  []string{"No one has been defeated."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := console.NewListener(&console.ListenerConfig{Out: &buf})

			require.NoError(t, l.HandleEvent(tt.event))
			assert.Equal(t, strings.Join(tt.want, "\n")+"\n", buf.String())
		})
	}
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("pipe closed") }

func TestListener_WriteFailure(t *testing.T) {
	l := console.NewListener(&console.ListenerConfig{Out: brokenWriter{}})

	err := l.HandleEvent(&events.HealEvent{BaseEvent: base(events.EventTypeHeal, 1), Combatant: "Hero", Amount: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pipe closed")
}

func TestNewListener_RequiresOutput(t *testing.T) {
	assert.Panics(t, func() {
		console.NewListener(&console.ListenerConfig{})
	})
}

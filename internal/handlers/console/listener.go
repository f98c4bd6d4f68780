package console

import (
	"fmt"
	"io"
	"sync"

	"github.com/KirkDiggler/duel-sim/internal/entities"
	"github.com/KirkDiggler/duel-sim/internal/events"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Listener renders battle events as plain text lines
type Listener struct {
	mu       sync.Mutex
	out      io.Writer
	priority int
	title    cases.Caser
}

// ListenerConfig holds configuration for the console listener
type ListenerConfig struct {
	Out      io.Writer
	Priority int
}

// NewListener creates a console listener writing to cfg.Out
func NewListener(cfg *ListenerConfig) *Listener {
	if cfg == nil || cfg.Out == nil {
		panic("console output is required")
	}

	return &Listener{
		out:      cfg.Out,
		priority: cfg.Priority,
		title:    cases.Title(language.English),
	}
}

func (l *Listener) ID() string    { return "console" }
func (l *Listener) Priority() int { return l.priority }

// HandleEvent writes the lines for one event
func (l *Listener) HandleEvent(event events.Event) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, line := range l.render(event) {
		if _, err := fmt.Fprintln(l.out, line); err != nil {
			return fmt.Errorf("failed to write %s event: %w", event.GetType(), err)
		}
	}

	return nil
}

func (l *Listener) render(event events.Event) []string {
	switch e := event.(type) {
	case *events.BattleStartedEvent:
		return []string{fmt.Sprintf("Game started: %s vs %s", e.Player, e.Enemy)}
	case *events.WeaponEquippedEvent:
		how := "equips"
		if e.Random {
			how = "picks up"
		}
		return []string{fmt.Sprintf("%s (%s) %s %s", e.Combatant, l.sideLabel(e.Side), how, e.Weapon)}
	case *events.AttackEvent:
		r := e.Result
		return []string{
			fmt.Sprintf("%s attacks %s with %s", r.Attacker, r.Target, r.Weapon),
			fmt.Sprintf("%s takes %d damage", r.Target, r.Damage),
			fmt.Sprintf("%s health: %d", r.Target, r.TargetHealth),
		}
	case *events.HealEvent:
		return []string{fmt.Sprintf("%s healed by %d points.", e.Combatant, e.Amount)}
	case *events.NoWeaponEvent:
		return []string{"Weapon not equipped. Cannot fight."}
	case *events.BattleConcludedEvent:
		switch e.Reason {
		case entities.ReasonElimination:
			return []string{fmt.Sprintf("%s has been defeated.", e.DefeatedName)}
		case entities.ReasonRoundLimit:
			return []string{fmt.Sprintf("No one has been defeated after %d rounds.", e.GetRound())}
		default:
			return []string{"No one has been defeated."}
		}
	default:
		return nil
	}
}

func (l *Listener) sideLabel(side entities.Side) string {
	return l.title.String(string(side))
}

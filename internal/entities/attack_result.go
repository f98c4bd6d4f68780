package entities

import "fmt"

// AttackResult describes one resolved attack
type AttackResult struct {
	Attacker     string
	AttackerSide Side
	Target       string
	TargetSide   Side
	Weapon       string
	Damage       int
	TargetHealth int
	TargetAlive  bool
}

func (r *AttackResult) String() string {
	return fmt.Sprintf("%s attacks %s with %s for %d, %s health: %d",
		r.Attacker, r.Target, r.Weapon, r.Damage, r.Target, r.TargetHealth)
}

package entities

// Side tags which half of a duel a combatant fights for
type Side string

const (
	SidePlayer Side = "player"
	SideEnemy  Side = "enemy"
	SideNone   Side = ""
)

// Opponent returns the other side of the duel
func (s Side) Opponent() Side {
	switch s {
	case SidePlayer:
		return SideEnemy
	case SideEnemy:
		return SidePlayer
	default:
		return SideNone
	}
}

func (s Side) IsValid() bool {
	return s == SidePlayer || s == SideEnemy
}

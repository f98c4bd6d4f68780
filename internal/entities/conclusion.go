package entities

// ConclusionReason records why a duel ended
type ConclusionReason string

const (
	// ReasonNone means the duel has not concluded
	ReasonNone ConclusionReason = ""
	// ReasonElimination means one side's health reached zero
	ReasonElimination ConclusionReason = "elimination"
	// ReasonNoWeapon means a side was unarmed at the start of a round
	ReasonNoWeapon ConclusionReason = "no_weapon"
	// ReasonRoundLimit means the round cap was reached without an elimination
	ReasonRoundLimit ConclusionReason = "round_limit"
)

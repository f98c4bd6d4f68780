package entities

// Arsenal owns the weapons available to a duel. Index order is insertion order and
// weapons are never removed, so an index stays valid for the arsenal's lifetime.
type Arsenal struct {
	weapons []*Weapon
}

// NewArsenal creates an arsenal holding weapons in the given order
func NewArsenal(weapons ...*Weapon) *Arsenal {
	a := &Arsenal{}
	for _, w := range weapons {
		a.Add(w)
	}
	return a
}

// Add appends a weapon. Nil weapons are ignored.
func (a *Arsenal) Add(weapon *Weapon) {
	if weapon == nil {
		return
	}
	a.weapons = append(a.weapons, weapon)
}

func (a *Arsenal) Len() int {
	return len(a.weapons)
}

func (a *Arsenal) IsEmpty() bool {
	return len(a.weapons) == 0
}

// IsValidIndex reports whether index addresses a weapon in the arsenal
func (a *Arsenal) IsValidIndex(index int) bool {
	return index >= 0 && index < len(a.weapons)
}

// Get returns the weapon at index. The returned handle stays owned by the arsenal.
func (a *Arsenal) Get(index int) (*Weapon, bool) {
	if !a.IsValidIndex(index) {
		return nil, false
	}
	return a.weapons[index], true
}

// Weapons returns the weapons in index order
func (a *Arsenal) Weapons() []*Weapon {
	out := make([]*Weapon, len(a.weapons))
	copy(out, a.weapons)
	return out
}

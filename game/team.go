package game

// Team is the faction owning a tile or a unit. Units are never Neutral.
type Team int

const (
	Neutral Team = iota
	Ally
	Enemy
)

func (t Team) String() string {
	switch t {
	case Ally:
		return "Ally"
	case Enemy:
		return "Enemy"
	default:
		return "Neutral"
	}
}

// Opponent returns the other faction, or Neutral for Neutral.
func (t Team) Opponent() Team {
	switch t {
	case Ally:
		return Enemy
	case Enemy:
		return Ally
	}
	return Neutral
}

type TileKind int

const (
	Land TileKind = iota
	Capital
)

func (k TileKind) String() string {
	if k == Capital {
		return "Capital"
	}
	return "Land"
}

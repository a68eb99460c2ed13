package game

import (
	"fmt"

	"hexwar/hex"
)

type Archetype int

const (
	Archer Archetype = iota
	BladeDancer
	Scout
	Knight
	Catapult
	Sniper
	Newt
)

// Archetypes lists every archetype in catalog order.
var Archetypes = []Archetype{Archer, BladeDancer, Scout, Knight, Catapult, Sniper, Newt}

func (a Archetype) String() string {
	switch a {
	case Archer:
		return "Archer"
	case BladeDancer:
		return "BladeDancer"
	case Scout:
		return "Scout"
	case Knight:
		return "Knight"
	case Catapult:
		return "Catapult"
	case Sniper:
		return "Sniper"
	case Newt:
		return "Newt"
	}
	return fmt.Sprintf("Archetype(%d)", int(a))
}

// Sprite returns the texture id the renderer maps to an asset.
func (a Archetype) Sprite() string {
	switch a {
	case Archer:
		return "bow"
	case BladeDancer:
		return "knife"
	case Scout:
		return "boot"
	case Knight:
		return "shield"
	case Catapult:
		return "comet"
	case Sniper:
		return "gun"
	case Newt:
		return "frog"
	}
	return ""
}

type stats struct {
	maxHealth     int
	health        int
	damage        int
	keywords      []Keyword
	moveOffsets   []hex.Cube
	attackOffsets []hex.Cube
}

var (
	adjacent  = hex.Directions[:]
	diagonals = hex.Diagonals[:]
)

func lines(length int) []hex.Cube {
	offsets := make([]hex.Cube, len(hex.Directions))
	for i, d := range hex.Directions {
		offsets[i] = d.Scale(length)
	}
	return offsets
}

func union(sets ...[]hex.Cube) []hex.Cube {
	var all []hex.Cube
	for _, s := range sets {
		all = append(all, s...)
	}
	return all
}

var catalog = map[Archetype]stats{
	Archer: {
		maxHealth: 1, health: 1, damage: 2,
		moveOffsets:   adjacent,
		attackOffsets: hex.Ring(2, hex.Origin),
	},
	BladeDancer: {
		maxHealth: 2, health: 2, damage: 2,
		keywords:      []Keyword{Flag(Nimble), Flag(Executioner)},
		moveOffsets:   adjacent,
		attackOffsets: diagonals,
	},
	Scout: {
		maxHealth: 1, health: 1, damage: 1,
		moveOffsets:   hex.Range(2, hex.Origin),
		attackOffsets: adjacent,
	},
	Knight: {
		maxHealth: 4, health: 4, damage: 2,
		keywords:      []Keyword{ArmorOf(1)},
		moveOffsets:   union(adjacent, diagonals),
		attackOffsets: adjacent,
	},
	Catapult: {
		maxHealth: 2, health: 2, damage: 4,
		moveOffsets:   adjacent,
		attackOffsets: hex.Ring(3, hex.Origin),
	},
	Sniper: {
		maxHealth: 1, health: 1, damage: 10,
		keywords:      []Keyword{SlowOf(2)},
		moveOffsets:   adjacent,
		attackOffsets: lines(5),
	},
	Newt: {
		maxHealth: 10, health: 6, damage: 6,
		keywords:      []Keyword{Flag(StrikeBack), RegenerationOf(2), Flag(Despised)},
		moveOffsets:   adjacent,
		attackOffsets: adjacent,
	},
}

// NewUnit returns an archetype's canonical unit at pos. A fresh unit may only
// move on the turn it arrives. The ID is assigned when the unit is spawned.
func NewUnit(a Archetype, pos hex.Cube, team Team) Unit {
	s, ok := catalog[a]
	if !ok {
		panic(fmt.Sprintf("unknown archetype %d", int(a)))
	}
	keywords := make([]Keyword, len(s.keywords))
	copy(keywords, s.keywords)
	return Unit{
		Archetype:     a,
		Pos:           pos,
		Team:          team,
		MaxHealth:     s.maxHealth,
		Health:        s.health,
		Damage:        s.damage,
		Keywords:      keywords,
		Actions:       []ActionType{MoveAction},
		MoveOffsets:   s.moveOffsets,
		AttackOffsets: s.attackOffsets,
	}
}

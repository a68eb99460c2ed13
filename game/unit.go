package game

import (
	"fmt"

	"hexwar/hex"
	"hexwar/utils"
)

// UnitID identifies a unit for the lifetime of a game.
type UnitID int

type Unit struct {
	ID        UnitID       `json:"id"`
	Archetype Archetype    `json:"archetype"`
	Pos       hex.Cube     `json:"pos"`
	Team      Team         `json:"team"`
	MaxHealth int          `json:"max_health"`
	Health    int          `json:"health"`
	Damage    int          `json:"damage"`
	Keywords  []Keyword    `json:"keywords"`
	Actions   []ActionType `json:"actions"`
	// Offsets relative to Pos. Shared with the catalog; never mutated.
	MoveOffsets   []hex.Cube `json:"-"`
	AttackOffsets []hex.Cube `json:"-"`
}

// Has reports whether the unit carries a keyword of the given kind.
func (u *Unit) Has(kind KeywordKind) bool {
	return u.keyword(kind) != nil
}

func (u *Unit) keyword(kind KeywordKind) *Keyword {
	for i := range u.Keywords {
		if u.Keywords[i].Kind == kind {
			return &u.Keywords[i]
		}
	}
	return nil
}

func (u *Unit) armor() int {
	if k := u.keyword(Armor); k != nil {
		return k.Amount
	}
	return 0
}

func (u *Unit) regeneration() int {
	if k := u.keyword(Regeneration); k != nil {
		return k.Amount
	}
	return 0
}

// HasAction reports whether a remains for this turn.
func (u *Unit) HasAction(a ActionType) bool {
	return utils.FindIndex(u.Actions, a) >= 0
}

func (u *Unit) consume(a ActionType) {
	if i := utils.FindIndex(u.Actions, a); i >= 0 {
		u.Actions = append(u.Actions[:i:i], u.Actions[i+1:]...)
	}
}

// takeDamage applies a hit reduced by armor and reports whether the unit died.
func (u *Unit) takeDamage(damage int) bool {
	u.Health -= max(damage-u.armor(), 0)
	return u.Health <= 0
}

// Alive reports whether the unit still has health.
func (u *Unit) Alive() bool {
	return u.Health > 0
}

// refresh runs the start-of-turn bookkeeping: regeneration and the action reset.
func (u *Unit) refresh() {
	u.Health = min(u.Health+u.regeneration(), u.MaxHealth)

	slow := u.keyword(Slow)
	switch {
	case slow == nil:
		u.Actions = fullActions()
	case u.HasAction(MoveAction):
		// stood still last turn
		u.Actions = fullActions()
	case slow.Countdown == 0:
		u.Actions = fullActions()
		slow.Countdown = slow.Max
	default:
		slow.Countdown--
		u.Actions = []ActionType{}
	}
}

// AttackHexes returns the absolute hexes this unit can attack, unclipped.
func (u *Unit) AttackHexes() []hex.Cube {
	return absolute(u.Pos, u.AttackOffsets)
}

// MoveHexes returns the absolute hexes this unit can move to, unclipped.
func (u *Unit) MoveHexes() []hex.Cube {
	return absolute(u.Pos, u.MoveOffsets)
}

func absolute(pos hex.Cube, offsets []hex.Cube) []hex.Cube {
	hexes := make([]hex.Cube, len(offsets))
	for i, o := range offsets {
		hexes[i] = pos.Add(o)
	}
	return hexes
}

func (u Unit) copy() Unit {
	keywords := make([]Keyword, len(u.Keywords))
	copy(keywords, u.Keywords)
	actions := make([]ActionType, len(u.Actions))
	copy(actions, u.Actions)
	u.Keywords = keywords
	u.Actions = actions
	return u
}

func (u Unit) String() string {
	return fmt.Sprintf("%s#%d(%s %s hp=%d/%d)", u.Archetype, u.ID, u.Team, u.Pos, u.Health, u.MaxHealth)
}

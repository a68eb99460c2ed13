package game

import (
	"fmt"

	"hexwar/hex"
)

// Emphasis is how strongly a renderer should tint a highlighted tile.
type Emphasis int

const (
	Weak Emphasis = iota + 1 // reachable, but the action is spent this turn
	Strong                   // reachable with an action still available
)

// Highlights returns the on-board tiles a unit could target, with Strong
// tinting for ranges whose action the unit still holds. A tile in both ranges
// takes the stronger emphasis.
func (gs *GameState) Highlights(id UnitID) map[hex.Cube]Emphasis {
	u, ok := gs.Unit(id)
	if !ok {
		return nil
	}

	highlights := make(map[hex.Cube]Emphasis)
	mark := func(hexes []hex.Cube, action ActionType) {
		emphasis := Weak
		if u.HasAction(action) {
			emphasis = Strong
		}
		for _, h := range hexes {
			if gs.Board.Contains(h) && highlights[h] < emphasis {
				highlights[h] = emphasis
			}
		}
	}
	mark(u.AttackHexes(), AttackAction)
	mark(u.MoveHexes(), MoveAction)
	return highlights
}

// TileInfo describes the tile under coord for a hover panel.
func (gs *GameState) TileInfo(coord hex.Cube) string {
	t, ok := gs.TileAt(coord)
	if !ok {
		return "None\nCapture: ??\nTeam: ??"
	}
	return fmt.Sprintf("%s %s\nCapture: %d\nTeam: %s", t.Kind, t.Coord, t.Capture, t.Owner)
}

// CoinInfo describes the ally treasury.
func (gs *GameState) CoinInfo() string {
	return fmt.Sprintf("Coins: %d", gs.AllyCoins)
}

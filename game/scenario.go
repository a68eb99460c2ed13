package game

import (
	"errors"
	"fmt"

	"hexwar/hex"
	"hexwar/rules"
)

type placement struct {
	archetype Archetype
	coord     hex.Cube
	team      Team
}

var skirmishCapital = hex.Axial(2, 2)

var skirmishUnits = []placement{
	{Knight, hex.Axial(-2, 4), Ally},
	{Newt, hex.Axial(-2, 1), Enemy},
	{Archer, hex.Axial(-3, 0), Enemy},
}

// Skirmish builds the opening position: the enemy capital and its guard are
// placed, and the ally still has to place its capital.
func Skirmish(r rules.Ruleset) (*GameState, error) {
	gs := NewGameState(r)
	if err := gs.PlaceEnemyCapital(skirmishCapital); err != nil {
		return nil, fmt.Errorf("skirmish: %w", err)
	}
	for _, p := range skirmishUnits {
		if _, err := gs.Spawn(p.archetype, p.coord, p.team); err != nil {
			return nil, fmt.Errorf("skirmish: %w", err)
		}
	}
	return gs, nil
}

// AutoPlaceAllyCapital places the ally capital on the legal tile farthest from
// the enemy capital whose whole neighborhood is on the board. Ties go to the
// earliest tile in board order.
func AutoPlaceAllyCapital(gs *GameState) error {
	best, bestDist := hex.Cube{}, -1
	for _, t := range gs.Board.tiles {
		if !gs.canHostCapital(Ally, t.Coord) {
			continue
		}
		d := 0
		if gs.EnemyCapital != nil {
			d = hex.Distance(t.Coord, *gs.EnemyCapital)
		}
		if d > bestDist {
			best, bestDist = t.Coord, d
		}
	}
	if bestDist < 0 {
		return errors.New("cannot place ally capital: no legal tile")
	}
	return gs.PlaceAllyCapital(best)
}

func (gs *GameState) canHostCapital(team Team, coord hex.Cube) bool {
	if gs.Board.OwnerOf(coord) == team.Opponent() || gs.occupied(coord) {
		return false
	}
	for _, n := range coord.Neighbors() {
		if !gs.Board.Contains(n) || gs.Board.OwnerOf(n) == team.Opponent() {
			return false
		}
	}
	return true
}

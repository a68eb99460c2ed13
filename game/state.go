package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"

	"hexwar/hex"
	"hexwar/rules"
)

// GameState represents the dynamic state of a game at any point. It exclusively
// owns its board and units; operations on it are synchronous and never block.
type GameState struct {
	Rules        rules.Ruleset // The ruleset this game was built with
	Board        *Board        // Tiles, their owners and capture progress
	Units        []Unit        // Living units, in spawn order
	AllyCapital  *hex.Cube     // Ally capital once placed
	EnemyCapital *hex.Cube     // Enemy capital once placed
	Turn         int           // Number of completed turns
	AllyCoins    int           // Ally treasury
	Won          Team          // The winning team, Neutral while undecided
	nextID       UnitID
}

// NewGameState builds an empty board for the ruleset.
func NewGameState(r rules.Ruleset) *GameState {
	return &GameState{
		Rules:     r,
		Board:     NewBoard(r.Board.Radius, r.Layout()),
		Units:     []Unit{},
		AllyCoins: r.Economy.StartingCoins,
		nextID:    1,
	}
}

// BuildBoard returns a fresh game under the default ruleset.
func BuildBoard() *GameState {
	return NewGameState(rules.Default())
}

func (gs *GameState) Copy() *GameState {
	units := make([]Unit, len(gs.Units))
	for i, u := range gs.Units {
		units[i] = u.copy()
	}
	return &GameState{
		Rules:        gs.Rules, // immutable
		Board:        gs.Board.Copy(),
		Units:        units,
		AllyCapital:  copyCube(gs.AllyCapital),
		EnemyCapital: copyCube(gs.EnemyCapital),
		Turn:         gs.Turn,
		AllyCoins:    gs.AllyCoins,
		Won:          gs.Won,
		nextID:       gs.nextID,
	}
}

func copyCube(c *hex.Cube) *hex.Cube {
	if c == nil {
		return nil
	}
	v := *c
	return &v
}

// TileAt returns the tile at coord.
func (gs *GameState) TileAt(coord hex.Cube) (Tile, bool) {
	return gs.Board.TileAt(coord)
}

// Tiles returns every tile in board order.
func (gs *GameState) Tiles() []Tile {
	return gs.Board.Tiles()
}

// UnitAt returns the unit standing on coord.
func (gs *GameState) UnitAt(coord hex.Cube) (Unit, bool) {
	if i := gs.unitIndexAt(coord); i >= 0 {
		return gs.Units[i], true
	}
	return Unit{}, false
}

// Unit returns the unit with the given id.
func (gs *GameState) Unit(id UnitID) (Unit, bool) {
	if i := gs.unitIndex(id); i >= 0 {
		return gs.Units[i], true
	}
	return Unit{}, false
}

// UnitsOf returns the units of one team in spawn order.
func (gs *GameState) UnitsOf(team Team) []Unit {
	var units []Unit
	for _, u := range gs.Units {
		if u.Team == team {
			units = append(units, u)
		}
	}
	return units
}

func (gs *GameState) unitIndex(id UnitID) int {
	for i := range gs.Units {
		if gs.Units[i].ID == id {
			return i
		}
	}
	return -1
}

func (gs *GameState) unitIndexAt(coord hex.Cube) int {
	for i := range gs.Units {
		if gs.Units[i].Pos == coord {
			return i
		}
	}
	return -1
}

func (gs *GameState) occupied(coord hex.Cube) bool {
	return gs.unitIndexAt(coord) >= 0
}

// Spawn places a catalog unit on a free tile.
func (gs *GameState) Spawn(a Archetype, coord hex.Cube, team Team) (UnitID, error) {
	if team == Neutral {
		return 0, fmt.Errorf("cannot spawn %s: units must belong to a faction", a)
	}
	if !gs.Board.Contains(coord) {
		return 0, fmt.Errorf("cannot spawn %s at %s: %w", a, coord, ErrOffBoard)
	}
	if gs.occupied(coord) {
		return 0, fmt.Errorf("cannot spawn %s at %s: %w", a, coord, ErrTileOccupied)
	}
	u := NewUnit(a, coord, team)
	u.ID = gs.nextID
	gs.nextID++
	gs.Units = append(gs.Units, u)
	return u.ID, nil
}

// removeDead drops every unit with no health left.
func (gs *GameState) removeDead() {
	alive := gs.Units[:0]
	for _, u := range gs.Units {
		if u.Alive() {
			alive = append(alive, u)
		}
	}
	gs.Units = alive
}

// Winner returns the winning team, or Neutral while the game is undecided.
func (gs *GameState) Winner() Team {
	return gs.Won
}

// checkWinner marks the game won when a team owns the tile of the other team's capital.
func (gs *GameState) checkWinner() Team {
	if gs.Won != Neutral {
		return gs.Won
	}
	if gs.EnemyCapital != nil && gs.Board.OwnerOf(*gs.EnemyCapital) == Ally {
		gs.Won = Ally
	} else if gs.AllyCapital != nil && gs.Board.OwnerOf(*gs.AllyCapital) == Enemy {
		gs.Won = Enemy
	}
	return gs.Won
}

// Hash fingerprints everything that affects future play.
func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()
	write := func(v int) {
		binary.Write(hasher, binary.LittleEndian, int64(v))
	}

	write(gs.Turn)
	write(gs.AllyCoins)
	write(int(gs.Won))

	for _, t := range gs.Board.tiles {
		write(int(t.Owner))
		write(int(t.Kind))
		write(t.Capture)
	}

	for _, u := range gs.Units {
		write(int(u.ID))
		write(u.Pos.Q)
		write(u.Pos.R)
		write(u.Health)
		write(len(u.Actions))
		for _, a := range u.Actions {
			write(int(a))
		}
		if k := u.keyword(Slow); k != nil {
			write(k.Countdown)
		}
	}

	return StateHash(hasher.Sum64())
}

package game

import (
	"fmt"

	"hexwar/hex"
	"hexwar/utils"
)

// Outcome is what a successful Act did.
type Outcome int

const (
	Rejected Outcome = iota
	Moved
	Attacked
)

func (o Outcome) String() string {
	switch o {
	case Moved:
		return "Moved"
	case Attacked:
		return "Attacked"
	}
	return "Rejected"
}

// Controller translates a selected unit and a target hex into a move or an
// attack on behalf of one faction. The selection is ephemeral and holds a unit
// id, never a reference into the state.
type Controller struct {
	Faction  Team
	selected UnitID
	hasSel   bool
}

// NewController returns a controller commanding faction's units.
func NewController(faction Team) *Controller {
	return &Controller{Faction: faction}
}

// Select selects the unit standing on coord, of any team, and returns its id.
// An empty hex clears the selection.
func (c *Controller) Select(gs *GameState, coord hex.Cube) (UnitID, bool) {
	u, ok := gs.UnitAt(coord)
	if !ok {
		c.ClearSelection()
		return 0, false
	}
	c.selected, c.hasSel = u.ID, true
	return u.ID, true
}

func (c *Controller) ClearSelection() {
	c.selected, c.hasSel = 0, false
}

// Selected returns the selected unit id, if any.
func (c *Controller) Selected() (UnitID, bool) {
	return c.selected, c.hasSel
}

// Act commands the selected unit toward target.
func (c *Controller) Act(gs *GameState, target hex.Cube) (Outcome, error) {
	if !c.hasSel {
		return Rejected, fmt.Errorf("cannot act: %w", ErrNoSelection)
	}
	outcome, err := c.Command(gs, c.selected, target)
	if err == nil && outcome == Attacked {
		if _, alive := gs.Unit(c.selected); !alive {
			c.ClearSelection()
		}
	}
	return outcome, err
}

// Command makes unit id attack or move to target. The attack is tried first;
// at most one of the two resolves.
func (c *Controller) Command(gs *GameState, id UnitID, target hex.Cube) (Outcome, error) {
	if gs.Won != Neutral {
		return Rejected, fmt.Errorf("cannot act: %w", ErrGameOver)
	}
	ui := gs.unitIndex(id)
	if ui < 0 {
		return Rejected, fmt.Errorf("cannot act: unit %d: %w", id, ErrNoSelection)
	}
	unit := &gs.Units[ui]
	if unit.Team != c.Faction {
		return Rejected, fmt.Errorf("cannot act: %s belongs to %s: %w", unit, unit.Team, ErrNotYourUnit)
	}
	if !gs.Board.Contains(target) {
		return Rejected, fmt.Errorf("cannot act: target %s: %w", target, ErrOffBoard)
	}

	if unit.HasAction(AttackAction) && utils.Contains(unit.AttackHexes(), target) {
		if di := gs.unitIndexAt(target); di >= 0 && gs.Units[di].Team != unit.Team {
			gs.attack(ui, di)
			return Attacked, nil
		}
	}

	if unit.HasAction(MoveAction) && utils.Contains(unit.MoveHexes(), target) {
		if gs.occupied(target) {
			return Rejected, fmt.Errorf("cannot move to %s: %w", target, ErrTileOccupied)
		}
		unit.Pos = target
		unit.consume(MoveAction)
		return Moved, nil
	}

	return Rejected, fmt.Errorf("cannot act on %s: %w", target, ErrIllegalMove)
}

// EndTurn ends the turn for both factions; see GameState.EndTurn.
func (c *Controller) EndTurn(gs *GameState) (Team, error) {
	winner, err := gs.EndTurn()
	if err != nil {
		return winner, fmt.Errorf("cannot end turn: %w", err)
	}
	if c.hasSel {
		if _, ok := gs.Unit(c.selected); !ok {
			c.ClearSelection()
		}
	}
	return winner, nil
}

// PlaceAllyCapital claims coord as the ally capital and its neighbors as ally land.
func (gs *GameState) PlaceAllyCapital(coord hex.Cube) error {
	if gs.AllyCapital != nil {
		return fmt.Errorf("cannot place ally capital: %w", ErrAlreadyPlaced)
	}
	if err := gs.placeCapital(Ally, coord); err != nil {
		return fmt.Errorf("cannot place ally capital: %w", err)
	}
	gs.AllyCapital = &coord
	return nil
}

// PlaceEnemyCapital claims coord as the enemy capital and its neighbors as enemy land.
func (gs *GameState) PlaceEnemyCapital(coord hex.Cube) error {
	if gs.EnemyCapital != nil {
		return fmt.Errorf("cannot place enemy capital: %w", ErrAlreadyPlaced)
	}
	if err := gs.placeCapital(Enemy, coord); err != nil {
		return fmt.Errorf("cannot place enemy capital: %w", err)
	}
	gs.EnemyCapital = &coord
	return nil
}

func (gs *GameState) placeCapital(team Team, coord hex.Cube) error {
	if gs.Won != Neutral {
		return ErrGameOver
	}
	if !gs.Board.Contains(coord) {
		return ErrOffBoard
	}
	neighbors := coord.Neighbors()
	claim := append([]hex.Cube{coord}, neighbors[:]...)
	for _, c := range claim {
		if gs.Board.OwnerOf(c) == team.Opponent() {
			return ErrConflictingTerritory
		}
	}

	for _, n := range neighbors {
		if t := gs.Board.tile(n); t != nil {
			t.Owner = team
			t.Kind = Land
		}
	}
	t := gs.Board.tile(coord)
	t.Owner = team
	t.Kind = Capital
	return nil
}

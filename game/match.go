package game

import (
	"fmt"

	"hexwar/hex"
)

// GameMove is one step of a match: a unit command, or a pass handing the turn over.
type GameMove struct {
	ActionType ActionType
	Unit       UnitID
	Target     hex.Cube
}

// Pass ends the active faction's half of the turn.
var Pass = GameMove{ActionType: PassAction}

func (gm GameMove) String() string {
	if gm.ActionType == PassAction {
		return "Pass"
	}
	return fmt.Sprintf("%s(#%d -> %s)", gm.ActionType, gm.Unit, gm.Target)
}

// Match alternates the two factions over a shared GameState. The ally acts
// first; the enemy's pass ends the turn for both.
type Match struct {
	State  *GameState
	Active Team
}

// NewMatch starts a match on gs with the ally to act.
func NewMatch(gs *GameState) Match {
	return Match{State: gs, Active: Ally}
}

func (m Match) Player() string {
	return m.Active.String()
}

func (m Match) Winner() string {
	if m.State.Won == Neutral {
		return ""
	}
	return m.State.Won.String()
}

func (m Match) Hash() StateHash {
	return m.State.Hash()*31 + StateHash(m.Active)
}

// LegalMoves returns every command the active faction can give, then Pass.
// A finished match has no moves.
func (m Match) LegalMoves() []Move {
	if m.State.Won != Neutral {
		return nil
	}
	moves := []Move{}
	for _, u := range m.State.Units {
		if u.Team != m.Active {
			continue
		}
		moves = append(moves, m.attackMoves(u)...)
		moves = append(moves, m.moveMoves(u)...)
	}
	return append(moves, Pass)
}

func (m Match) attackMoves(u Unit) []Move {
	if !u.HasAction(AttackAction) {
		return nil
	}
	var moves []Move
	for _, target := range u.AttackHexes() {
		if v, ok := m.State.UnitAt(target); ok && v.Team != u.Team {
			moves = append(moves, GameMove{ActionType: AttackAction, Unit: u.ID, Target: target})
		}
	}
	return moves
}

func (m Match) moveMoves(u Unit) []Move {
	if !u.HasAction(MoveAction) {
		return nil
	}
	var moves []Move
	for _, target := range u.MoveHexes() {
		if !m.State.Board.Contains(target) || m.State.occupied(target) {
			continue
		}
		moves = append(moves, GameMove{ActionType: MoveAction, Unit: u.ID, Target: target})
	}
	return moves
}

// Play returns the match after move. It panics on an illegal move.
func (m Match) Play(move Move) State {
	gm, ok := move.(GameMove)
	if !ok {
		panic(fmt.Sprintf("unexpected move type %T", move))
	}
	next := Match{State: m.State.Copy(), Active: m.Active}

	if gm.ActionType == PassAction {
		if next.Active == Enemy {
			if _, err := next.State.EndTurn(); err != nil {
				panic(err)
			}
		}
		next.Active = next.Active.Opponent()
		return next
	}

	outcome, err := NewController(next.Active).Command(next.State, gm.Unit, gm.Target)
	if err != nil {
		panic(fmt.Sprintf("illegal move %s: %v", gm, err))
	}
	if (gm.ActionType == AttackAction) != (outcome == Attacked) {
		panic(fmt.Sprintf("move %s resolved as %s", gm, outcome))
	}
	return next
}

package gamemaster

import (
	"fmt"
	"hexwar/engine"
	"hexwar/game"
	"hexwar/utils"
)

// playOpponent runs the Enemy's half of the turn through the opponent agent.
// The Enemy's pass ends the turn. Callers hold mu.
func (s *Session) playOpponent() (game.Team, error) {
	match := game.Match{State: s.state, Active: game.Enemy}

	for step := 0; step < engine.MaxMoves; step++ {
		move, _ := s.opponent.FindMove(match, nil)
		if move == nil || !utils.Contains(match.LegalMoves(), move) {
			return game.Neutral, fmt.Errorf("cannot end turn: opponent played %v: %w", move, game.ErrIllegalMove)
		}
		s.logger.Debug().Int("step", step).Stringer("move", move).Msg("opponent played")

		match = match.Play(move).(game.Match)
		if move == game.Move(game.Pass) {
			s.state = match.State
			s.dropStaleSelection()
			return s.state.Won, nil
		}
	}

	// The agent never passed; end the turn on its behalf
	s.state = match.State
	return s.controller.EndTurn(s.state)
}

func (s *Session) dropStaleSelection() {
	if id, ok := s.controller.Selected(); ok {
		if _, alive := s.state.Unit(id); !alive {
			s.controller.ClearSelection()
		}
	}
}

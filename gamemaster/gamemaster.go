package gamemaster

import (
	"fmt"
	"hexwar/game"
	"hexwar/hex"
	"hexwar/rules"
	"hexwar/searcher/agent"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Update is published after every accepted call. State is a snapshot the
// receiver may keep.
type Update struct {
	Action  string
	Outcome game.Outcome
	State   *game.GameState
}

// Session manages one interactive game for an input layer: the player
// commands the Ally, an optional agent plays the Enemy.
type Session struct {
	ID         string
	mu         sync.Mutex
	state      *game.GameState
	controller *game.Controller
	opponent   agent.Agent
	updateCh   chan Update
	gameOver   bool
	logger     zerolog.Logger
}

type SessionOption func(*Session)

// WithOpponent lets a to play the Enemy's moves before every end of turn.
func WithOpponent(a agent.Agent) SessionOption {
	return func(s *Session) {
		s.opponent = a
	}
}

// NewSession sets up the skirmish scenario under r. The Ally capital is left
// for the player to place.
func NewSession(r rules.Ruleset, options ...SessionOption) (*Session, error) {
	gs, err := game.Skirmish(r)
	if err != nil {
		return nil, fmt.Errorf("failed to set up session: %w", err)
	}
	return newSession(gs, options...), nil
}

func newSession(gs *game.GameState, options ...SessionOption) *Session {
	id := uuid.NewString()
	s := &Session{
		ID:         id,
		state:      gs,
		controller: game.NewController(game.Ally),
		updateCh:   make(chan Update, 1),
		logger:     log.With().Str("session", id).Logger(),
	}
	for _, opt := range options {
		opt(s)
	}
	s.logger.Info().Int("radius", gs.Rules.Board.Radius).Bool("opponent", s.opponent != nil).Msg("session started")
	return s
}

// Updates streams accepted changes. Only the latest unread update is kept.
// The channel is closed once the game is won.
func (s *Session) Updates() <-chan Update {
	return s.updateCh
}

// State returns a snapshot of the game.
func (s *Session) State() *game.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Copy()
}

func (s *Session) PlaceAllyCapital(coord hex.Cube) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gameOver {
		return game.ErrGameOver
	}
	if err := s.state.PlaceAllyCapital(coord); err != nil {
		s.logger.Debug().Err(err).Stringer("coord", coord).Msg("capital rejected")
		return err
	}
	s.logger.Info().Stringer("coord", coord).Msg("ally capital placed")
	s.publish(Update{Action: "place", State: s.state.Copy()})
	return nil
}

// Select picks the unit at coord, if any. Selection is not published.
func (s *Session) Select(coord hex.Cube) (game.UnitID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.controller.Select(s.state, coord)
}

func (s *Session) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.controller.ClearSelection()
}

// Highlights returns the targets of the selected unit.
func (s *Session) Highlights() map[hex.Cube]game.Emphasis {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.controller.Selected()
	if !ok {
		return nil
	}
	return s.state.Highlights(id)
}

// Act commands the selected unit toward target.
func (s *Session) Act(target hex.Cube) (game.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gameOver {
		return game.Rejected, game.ErrGameOver
	}
	outcome, err := s.controller.Act(s.state, target)
	if err != nil {
		s.logger.Debug().Err(err).Stringer("target", target).Msg("action rejected")
		return outcome, err
	}
	s.logger.Debug().Stringer("target", target).Stringer("outcome", outcome).Msg("action")
	s.publish(Update{Action: "act", Outcome: outcome, State: s.state.Copy()})
	return outcome, nil
}

// Click resolves a pointer press at pixel (x, y): an own unit is selected,
// anything else is acted on by the current selection. A selection reports
// Rejected with a nil error.
func (s *Session) Click(x, y float64) (game.Outcome, error) {
	s.mu.Lock()
	coord, ok := s.state.Board.PixelToHex(x, y)
	if !ok {
		s.mu.Unlock()
		return game.Rejected, fmt.Errorf("cannot act at (%.1f, %.1f): %w", x, y, game.ErrOffBoard)
	}
	if u, ok := s.state.UnitAt(coord); ok && u.Team == game.Ally {
		s.controller.Select(s.state, coord)
		s.mu.Unlock()
		return game.Rejected, nil
	}
	s.mu.Unlock()
	return s.Act(coord)
}

// EndTurn lets the opponent play, then ends the turn for both factions.
// It returns the winner, Neutral while undecided.
func (s *Session) EndTurn() (game.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gameOver {
		return s.state.Won, game.ErrGameOver
	}

	var (
		winner game.Team
		err    error
	)
	if s.opponent != nil {
		winner, err = s.playOpponent()
	} else {
		winner, err = s.controller.EndTurn(s.state)
	}
	if err != nil {
		return winner, err
	}

	s.logger.Info().Int("turn", s.state.Turn).Int("coins", s.state.AllyCoins).Msg("turn ended")
	s.publish(Update{Action: "end turn", State: s.state.Copy()})

	if winner != game.Neutral {
		s.logger.Info().Msgf("game ended with winner %s after %d turns", winner, s.state.Turn)
		s.gameOver = true
		close(s.updateCh)
	}
	return winner, nil
}

// publish keeps the newest update, dropping an unread one. Callers hold mu.
func (s *Session) publish(u Update) {
	select {
	case s.updateCh <- u:
		return
	default:
	}
	select {
	case <-s.updateCh:
	default:
	}
	s.updateCh <- u
}

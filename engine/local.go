package engine

import (
	"hexwar/experiments/metrics"
	"hexwar/game"
	"hexwar/meta"
	"hexwar/searcher"
	"hexwar/searcher/agent"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Local plays a match between two in-process agents, the first commanding
// the Ally and the second the Enemy.
type Local struct {
	ID       string
	State    game.Match
	Agents   map[string]agent.Agent // By player
	MaxTurns int
	logger   zerolog.Logger
}

// NewLocal prepares a match from gs, which must already have both capitals placed.
func NewLocal(gs *game.GameState, ally, enemy agent.Agent) *Local {
	if ally == nil || enemy == nil {
		panic("need an agent for each faction")
	}
	id := uuid.NewString()
	return &Local{
		ID:    id,
		State: game.NewMatch(gs),
		Agents: map[string]agent.Agent{
			game.Ally.String():  ally,
			game.Enemy.String(): enemy,
		},
		MaxTurns: meta.MAX_TURNS,
		logger:   log.With().Str("match", id).Logger(),
	}
}

// Run executes the entire game loop until a winner is found or the turn limit is hit.
func (e *Local) Run() (string, metrics.GameMetric, []metrics.MoveMetric) {
	// Moves each agent has not seen yet, for tree reuse
	pending := make(map[string][]searcher.Segment, len(e.Agents))

	start := time.Now()
	e.logger.Info().Msgf("%s is starting", e.State.Player())

	var moveMetrics []metrics.MoveMetric
	step := 0
	for e.State.Winner() == "" && e.State.State.Turn < e.MaxTurns && step < MaxMoves {
		player := e.State.Player()
		move, metric := e.Agents[player].FindMove(e.State, pending[player])
		pending[player] = nil

		step++
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player,
			Move:         move.String(),
			SearchMetric: metric,
		})
		e.logger.Debug().Int("step", step).Str("player", player).Stringer("move", move).Msg("played")

		e.State = e.State.Play(move).(game.Match)
		segment := searcher.Segment{Move: move, StateHash: e.State.Hash()}
		for p := range e.Agents {
			pending[p] = append(pending[p], segment)
		}
	}

	winner := e.State.Winner()
	if winner != "" {
		e.logger.Info().Msgf("game ended with winner %s after %d turns", winner, e.State.State.Turn)
	} else {
		e.logger.Info().Msgf("stopped after %d turns (no winner yet)", e.State.State.Turn)
	}

	end := time.Now()
	gameMetric := metrics.GameMetric{
		MatchID:    e.ID,
		Winner:     winner,
		StartTime:  start,
		EndTime:    end,
		Duration:   end.Sub(start),
		TotalMoves: step,
		Turns:      e.State.State.Turn,
	}
	return winner, gameMetric, moveMetrics
}

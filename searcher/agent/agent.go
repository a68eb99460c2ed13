package agent

import (
	"hexwar/experiments/metrics"
	"hexwar/game"
	"hexwar/searcher"
)

type Agent interface {
	// FindMove returns a move and performance metrics (if collected) from the simulation process.
	// updates lists the moves played since the agent's previous call.
	FindMove(state game.State, updates []searcher.Segment) (game.Move, metrics.SearchMetric)
}

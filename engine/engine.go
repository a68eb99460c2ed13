package engine

import "hexwar/experiments/metrics"

// MaxMoves bounds a match in plies, including passes
const MaxMoves = 10000

type Engine interface {
	// Run starts a game till there's a winner or a max number of turns is reached
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}

var _ Engine = (*Local)(nil)

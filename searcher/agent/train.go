package agent

import (
	"hexwar/experiments/metrics"
	"hexwar/game"
	"hexwar/searcher"
	"math"
	"sort"

	"golang.org/x/exp/rand"
)

type trainingAgent struct {
	mcts        *searcher.MCTS
	temperature float64
	rng         *rand.Rand
}

// NewTrainingAgent returns a new agent for self-play during training. Moves are
// sampled in proportion to visits raised to 1/temperature.
func NewTrainingAgent(mcts *searcher.MCTS, temperature float64, seed uint64) Agent {
	if temperature <= 0 {
		panic("temperature must be positive")
	}
	return &trainingAgent{
		mcts:        mcts,
		temperature: temperature,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

func (a *trainingAgent) FindMove(state game.State, updates []searcher.Segment) (game.Move, metrics.SearchMetric) {
	policy, metric := a.mcts.Simulate(state, updates)
	policy = adjustTemperature(policy, a.temperature)
	return sample(policy, a.rng.Float64()), metric
}

func adjustTemperature(policy map[game.Move]float64, temperature float64) map[game.Move]float64 {
	// Compute temperature-adjusted move probabilities
	exponent := 1.0 / temperature
	sum := 0.0
	adjusted := make(map[game.Move]float64, len(policy))
	for move, visit := range policy {
		prob := math.Pow(visit, exponent)
		sum += prob
		adjusted[move] = prob
	}
	if sum == 0 {
		return adjusted
	}
	// Normalize
	for move := range adjusted {
		adjusted[move] /= sum
	}
	return adjusted
}

// sample picks the move whose cumulative probability first exceeds sampled
func sample(policy map[game.Move]float64, sampled float64) game.Move {
	cumulative := 0.0
	var lastMove game.Move
	for _, move := range sortedMoves(policy) {
		lastMove = move
		cumulative += policy[move]
		if sampled < cumulative {
			return move
		}
	}
	return lastMove // Fallback in case of rounding errors
}

// sortedMoves orders moves by name so ties and sampling do not depend on map order
func sortedMoves(policy map[game.Move]float64) []game.Move {
	moves := make([]game.Move, 0, len(policy))
	for move := range policy {
		moves = append(moves, move)
	}
	sort.Slice(moves, func(i, j int) bool {
		return moves[i].String() < moves[j].String()
	})
	return moves
}

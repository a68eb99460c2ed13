package searcher

import (
	"hexwar/experiments/metrics"
	"hexwar/game"
	"hexwar/meta"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(mcts *MCTS)

// Segment is one step of the game played since the last search
type Segment struct {
	Move      game.Move
	StateHash game.StateHash
}

type MCTS struct {
	goroutines int
	duration   time.Duration
	episodes   int
	cutoff     int
	seed       uint64
	seeded     bool
	evaluate   game.Evaluate
	root       *decision
	metrics    metrics.Collector
}

func WithDuration(duration time.Duration) Option {
	return func(u *MCTS) {
		if duration > 0 {
			u.duration = duration
		}
	}
}

func WithEpisodes(episodes int) Option {
	return func(u *MCTS) {
		if episodes > 0 {
			u.episodes = episodes
		}
	}
}

func WithCutoff(depth int) Option {
	return func(u *MCTS) {
		if depth > 0 {
			u.cutoff = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *MCTS) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

// WithSeed makes rollouts reproducible for a fixed number of goroutines and episodes
func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.seed = seed
		m.seeded = true
	}
}

func NewMCTS(goroutines int, options ...Option) *MCTS {
	m := &MCTS{ // Default values
		goroutines: goroutines,
		cutoff:     meta.WITH_CUTOFF,
		evaluate:   game.EvaluateCapitalThreat,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.goroutines <= 0 {
		m.goroutines = 1
	}
	if m.episodes <= 0 && m.duration <= 0 {
		panic("Must specify search episodes or duration")
	}
	return m
}

// Simulate searches from state and returns the visit count of each root move.
// path lists the moves played since the previous search; when it leads to a
// node of the previous tree, that subtree is reused.
func (m *MCTS) Simulate(state game.State, path []Segment) (map[game.Move]float64, metrics.SearchMetric) {
	m.findRoot(path, state)

	// Run simulations to collect statistics
	m.metrics.Start(m.goroutines, m.cutoff, m.evaluate)
	if m.episodes > 0 {
		m.iterate(state)
	} else {
		m.countdown(state)
	}
	metric := m.metrics.Complete()

	// Output move policy and move finding metrics
	policy := m.root.Policy()
	return policy, metric
}

func (m *MCTS) newRand(worker int) *rand.Rand {
	seed := uint64(time.Now().UnixNano())
	if m.seeded {
		seed = m.seed
	}
	return rand.New(rand.NewSource(seed + uint64(worker)))
}

func (m *MCTS) iterate(state game.State) {
	task := make(chan any, m.episodes)
	for i := 0; i < m.episodes; i++ {
		task <- nil
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		go func(rng *rand.Rand) {
			defer wg.Done()

			for range task {
				m.simulate(state, rng)
				m.metrics.AddEpisode()
			}
		}(m.newRand(i))
	}

	wg.Wait()
}

func (m *MCTS) countdown(state game.State) {
	done := make(chan any)

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		go func(rng *rand.Rand) {
			defer wg.Done()
			for {
				select {
				case <-done:
					return
				default:
					m.simulate(state, rng)
					m.metrics.AddEpisode()
				}
			}
		}(m.newRand(i))
	}

	<-time.After(m.duration)
	close(done)
	wg.Wait()
}

func (m *MCTS) findRoot(path []Segment, state game.State) {
	root := traverse(m.root, path)
	if root == nil || root.hash != state.Hash() {
		m.root = newDecision(nil, state)
		m.metrics.SetTreeReset(true)
	} else {
		root.parent = nil
		root.mover = ""
		m.root = root
		m.metrics.SetTreeReset(false)
	}
}

func traverse(root *decision, path []Segment) *decision {
	if root == nil || len(path) == 0 {
		return nil
	}

	node := root
	for _, segment := range path {
		child, ok := node.children[segment.Move]
		if !ok { // Node has not expanded this move
			return nil
		}
		if child.hash != segment.StateHash {
			log.Warn().Msgf("node's state hash %d does not match segment's state hash %d", child.hash, segment.StateHash)
			return nil
		}
		node = child
	}
	return node
}

func (m *MCTS) simulate(state game.State, rng *rand.Rand) {
	newNode, newState := selectThenExpand(m.root, state)
	player, score := rollout(newState, m.cutoff, m.evaluate, m.metrics, rng)
	backup(newNode, player, score)
}

func selectThenExpand(root Node, state game.State) (Node, game.State) {
	parent := root
	child, state, selected := parent.SelectOrExpand(state)
	for selected && (child != parent) {
		parent = child
		child, state, selected = parent.SelectOrExpand(state)
	}
	return child, state
}

func rollout(state game.State, cutoff int, evaluate game.Evaluate, metrics metrics.Collector, rng *rand.Rand) (string, float64) {
	depth := 0
	moves := state.LegalMoves()
	// Rollout till game over or for cutoff number of moves
	for len(moves) > 0 && (depth < cutoff) {
		move := moves[rng.Intn(len(moves))] // Random rollout policy
		state = state.Play(move)
		moves = state.LegalMoves()
		depth++
	}

	if len(moves) == 0 { // Game over before cutoff
		metrics.AddFullPlayout()
		if winner := state.Winner(); winner != "" {
			return winner, Win
		}
		return state.Player(), 0 // Draw
	}

	// At cutoff state, return an evaluation score from current player's perspective
	return state.Player(), evaluate(state)
}

func backup(newNode Node, player string, score float64) {
	node := newNode
	for node != nil {
		parent := node.Backup(player, score)
		node = parent
	}
}

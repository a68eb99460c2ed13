package searcher

import (
	"hexwar/game"
	"math"
	"sync"
)

// decision is a tree node for a state where the player to move picks among
// legal moves. Every move in the game is deterministic, so children are
// decision nodes as well.
type decision struct {
	sync.RWMutex
	parent     *decision
	mover      string // player whose move led here, empty at the root
	player     string // player to move in this state
	hash       game.StateHash
	unexplored []game.Move
	explored   []game.Move
	children   map[game.Move]*decision
	rewards    float64 // from the mover's perspective
	visits     float64
}

func newDecision(parent *decision, state game.State) *decision {
	d := &decision{
		parent:     parent,
		player:     state.Player(),
		hash:       state.Hash(),
		unexplored: state.LegalMoves(),
		children:   make(map[game.Move]*decision),
	}
	if parent != nil {
		d.mover = parent.player
	}
	return d
}

func (d *decision) SelectOrExpand(state game.State) (Node, game.State, bool) {
	d.Lock()
	defer d.Unlock()

	if len(d.unexplored) == 0 && len(d.explored) == 0 { // Terminal node
		return d, state, false
	}

	if len(d.unexplored) > 0 { // Expandable node
		move := d.unexplored[len(d.unexplored)-1]
		d.unexplored = d.unexplored[:len(d.unexplored)-1]
		childState := state.Play(move)
		child := newDecision(d, childState)
		d.explored = append(d.explored, move)
		d.children[move] = child
		child.applyLoss()
		return child, childState, false
	}

	// Fully expanded node
	move, child := d.selects()
	child.applyLoss()
	return child, state.Play(move), true
}

// selects returns the explored child with the highest UCT value
func (d *decision) selects() (game.Move, *decision) {
	// Siblings still in flight have not backed up into d yet
	policy := newUCT(CSquared, max(d.visits, 1))

	var maxMove game.Move
	var maxChild *decision
	maxScore := math.Inf(-1)
	for _, move := range d.explored {
		child := d.children[move]
		_, rewards, visits := child.stats()
		if score := policy.evaluate(rewards, visits); score > maxScore {
			maxScore = score
			maxMove, maxChild = move, child
		}
	}
	return maxMove, maxChild
}

func (d *decision) applyLoss() {
	d.Lock()
	defer d.Unlock()

	d.rewards += Loss
	d.visits++
}

func (d *decision) stats() (string, float64, float64) {
	d.RLock()
	defer d.RUnlock()

	return d.mover, d.rewards, d.visits
}

func (d *decision) Backup(player string, score float64) Node {
	d.Lock()
	defer d.Unlock()

	if d.parent != nil { // Non-root node
		d.reverseLoss()
	}

	d.rewards += computeReward(player, score, d.mover)
	d.visits++

	if d.parent == nil {
		return nil
	}
	return d.parent
}

func (d *decision) reverseLoss() {
	d.rewards -= Loss
	d.visits--
}

// Policy returns the visit count of each explored move
func (d *decision) Policy() map[game.Move]float64 {
	d.RLock()
	defer d.RUnlock()

	policy := make(map[game.Move]float64, len(d.children))
	for move, child := range d.children {
		_, _, visits := child.stats()
		policy[move] = visits
	}
	return policy
}

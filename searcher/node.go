package searcher

import "hexwar/game"

type Node interface {
	SelectOrExpand(state game.State) (child Node, childState game.State, selected bool)
	Backup(player string, score float64) Node
	applyLoss()
	stats() (mover string, rewards float64, visits float64)
}

// computeReward converts a score from player's perspective into a reward for
// the player who moved into a node
func computeReward(player string, score float64, mover string) float64 {
	if player == mover {
		return score
	}
	return -score
}

package game

import "hexwar/hex"

type contest struct {
	coord hex.Cube
	team  Team
}

// contested lists tiles where a foreign unit stands next to territory of its
// own team. It is computed from the state before any tile changes this step.
func (gs *GameState) contested() map[hex.Cube]Team {
	var found []contest
	for _, u := range gs.Units {
		t := gs.Board.tile(u.Pos)
		if t == nil || u.Team == t.Owner {
			continue
		}
		for _, n := range u.Pos.Neighbors() {
			if gs.Board.OwnerOf(n) == u.Team {
				found = append(found, contest{coord: u.Pos, team: u.Team})
				break
			}
		}
	}

	contested := make(map[hex.Cube]Team, len(found))
	for _, c := range found {
		contested[c.coord] = c.team
	}
	return contested
}

// advanceCapture moves every tile's capture progress one step toward its target
// and flips owners whose progress reaches it.
func (gs *GameState) advanceCapture() {
	threshold := gs.Rules.Capture.Threshold
	contested := gs.contested()

	for i := range gs.Board.tiles {
		t := &gs.Board.tiles[i]
		team, isContested := contested[t.Coord]

		switch {
		case !isContested && t.Owner == Neutral:
			t.Capture, _ = saturate(t.Capture, 0, 1)
		case !isContested:
			// reinforce
			t.Capture, _ = saturate(t.Capture, threshold, 1)
		case t.Owner == Neutral:
			var reached bool
			if t.Capture, reached = saturate(t.Capture, threshold, 1); reached {
				t.Owner = team
			}
		default:
			var reached bool
			if t.Capture, reached = saturate(t.Capture, 0, 1); reached {
				t.Owner = Neutral
			}
		}
	}
}

// saturate moves progress toward target by at most step and reports whether it got there.
func saturate(progress, target, step int) (int, bool) {
	next := max(progress-step, min(progress+step, target))
	return next, next == target
}

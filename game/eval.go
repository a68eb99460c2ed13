package game

import "hexwar/hex"

// EvaluateTerritory compares the tiles each faction owns to produce a score
// between -1 and 1 from the current player's perspective
func EvaluateTerritory(s State) float64 {
	m := asMatch(s)
	if score, over := m.decided(); over {
		return score
	}
	return m.territoryScore()
}

// EvaluateMilitary weighs each faction's surviving units by health and damage
func EvaluateMilitary(s State) float64 {
	m := asMatch(s)
	if score, over := m.decided(); over {
		return score
	}
	return (m.territoryScore() + m.militaryScore()) / 2
}

// EvaluateCapitalThreat considers how close each faction's units stand to the
// opposing capital, in addition to territory and military strength
func EvaluateCapitalThreat(s State) float64 {
	m := asMatch(s)
	if score, over := m.decided(); over {
		return score
	}
	return (m.territoryScore() + m.militaryScore() + m.threatScore()) / 3
}

func asMatch(s State) Match {
	m, ok := s.(Match)
	if !ok {
		panic("unexpected state type")
	}
	return m
}

func (m Match) decided() (float64, bool) {
	switch m.State.Won {
	case Neutral:
		return 0, false
	case m.Active:
		return 1, true
	default:
		return -1, true
	}
}

func (m Match) territoryScore() float64 {
	current, opponent := m.Active, m.Active.Opponent()
	return normalize(float64(m.State.Board.CountOwned(current)), float64(m.State.Board.CountOwned(opponent)))
}

func (m Match) militaryScore() float64 {
	strength := make(map[Team]float64)
	for _, u := range m.State.Units {
		strength[u.Team] += float64(u.Health + u.Damage)
	}
	return normalize(strength[m.Active], strength[m.Active.Opponent()])
}

func (m Match) threatScore() float64 {
	threat := make(map[Team]float64)
	for _, u := range m.State.Units {
		target := m.State.capitalOf(u.Team.Opponent())
		if target == nil {
			continue
		}
		// closer units weigh more, a unit on the capital counts fully
		threat[u.Team] += 1 / float64(1+hex.Distance(u.Pos, *target))
	}
	return normalize(threat[m.Active], threat[m.Active.Opponent()])
}

func (gs *GameState) capitalOf(team Team) *hex.Cube {
	switch team {
	case Ally:
		return gs.AllyCapital
	case Enemy:
		return gs.EnemyCapital
	}
	return nil
}

// normalize normalizes value relative to otherValue to a score between -1 and 1
func normalize(value float64, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	return (value - otherValue) / total
}

package game

import (
	"testing"

	"hexwar/hex"
	"hexwar/rules"

	"github.com/stretchr/testify/require"
)

func skirmish(t *testing.T) *GameState {
	t.Helper()
	gs, err := Skirmish(rules.Default())
	require.NoError(t, err)
	return gs
}

func TestSkirmish(t *testing.T) {
	gs := skirmish(t)

	require.Nil(t, gs.AllyCapital)
	require.Equal(t, hex.Axial(2, 2), *gs.EnemyCapital)
	require.Equal(t, 7, gs.Board.CountOwned(Enemy))
	require.Len(t, gs.UnitsOf(Ally), 1)
	require.Len(t, gs.UnitsOf(Enemy), 2)

	knight, ok := gs.UnitAt(hex.Axial(-2, 4))
	require.True(t, ok)
	require.Equal(t, Knight, knight.Archetype)

	require.NoError(t, AutoPlaceAllyCapital(gs))
	require.NotNil(t, gs.AllyCapital)
	capital := *gs.AllyCapital
	for _, n := range capital.Neighbors() {
		require.True(t, gs.Board.Contains(n))
	}
	_, occupied := gs.UnitAt(capital)
	require.False(t, occupied)
	require.Equal(t, 7, gs.Board.CountOwned(Ally))

	require.ErrorIs(t, AutoPlaceAllyCapital(gs), ErrAlreadyPlaced)
}

func TestMatchLegalMoves(t *testing.T) {
	gs := BuildBoard()
	knight := spawnReady(t, gs, Knight, hex.Origin, Ally)
	spawnReady(t, gs, Archer, hex.Direction(0), Enemy)
	spawnReady(t, gs, Scout, hex.Direction(1), Ally)
	m := NewMatch(gs)

	moves := m.LegalMoves()
	require.Contains(t, moves, GameMove{ActionType: AttackAction, Unit: knight, Target: hex.Direction(0)})
	require.NotContains(t, moves, GameMove{ActionType: MoveAction, Unit: knight, Target: hex.Direction(0)})
	require.NotContains(t, moves, GameMove{ActionType: MoveAction, Unit: knight, Target: hex.Direction(1)})
	require.Contains(t, moves, GameMove{ActionType: MoveAction, Unit: knight, Target: hex.Diagonal(3)})
	require.Equal(t, Move(Pass), moves[len(moves)-1])

	for _, mv := range moves {
		gm := mv.(GameMove)
		if gm.ActionType == PassAction {
			continue
		}
		u, _ := gs.Unit(gm.Unit)
		require.Equal(t, Ally, u.Team)
		require.True(t, gs.Board.Contains(gm.Target))
	}
}

func TestMatchPlay(t *testing.T) {
	gs := BuildBoard()
	knight := spawnReady(t, gs, Knight, hex.Origin, Ally)
	m := NewMatch(gs)

	t.Run("leaves the original untouched", func(t *testing.T) {
		next := m.Play(GameMove{ActionType: MoveAction, Unit: knight, Target: hex.Direction(0)}).(Match)
		require.Equal(t, hex.Origin, mustUnit(t, gs, knight).Pos)
		require.Equal(t, hex.Direction(0), mustUnit(t, next.State, knight).Pos)
		require.Equal(t, Ally, next.Active)
		require.NotEqual(t, m.Hash(), next.Hash())
	})

	t.Run("passes alternate and end the turn", func(t *testing.T) {
		s := m.Play(Pass)
		require.Equal(t, "Enemy", s.Player())
		require.Equal(t, 0, s.(Match).State.Turn)

		s = s.Play(Pass)
		require.Equal(t, "Ally", s.Player())
		require.Equal(t, 1, s.(Match).State.Turn)
		require.Equal(t, gs.AllyCoins+gs.Income(), s.(Match).State.AllyCoins)
	})

	t.Run("hash includes the active side", func(t *testing.T) {
		require.NotEqual(t, m.Hash(), Match{State: gs, Active: Enemy}.Hash())
	})

	t.Run("panics on illegal moves", func(t *testing.T) {
		require.Panics(t, func() {
			m.Play(GameMove{ActionType: MoveAction, Unit: knight, Target: hex.New(4, 0, -4)})
		})
	})
}

func TestFinishedMatch(t *testing.T) {
	gs := BuildBoard()
	gs.Won = Ally
	m := NewMatch(gs)

	require.Empty(t, m.LegalMoves())
	require.Equal(t, "Ally", m.Winner())
	require.Equal(t, 1.0, EvaluateTerritory(m))
	require.Equal(t, -1.0, EvaluateCapitalThreat(Match{State: gs, Active: Enemy}))
}

func TestEvaluate(t *testing.T) {
	gs := skirmish(t)
	require.NoError(t, AutoPlaceAllyCapital(gs))
	ally := NewMatch(gs)
	enemy := Match{State: gs, Active: Enemy}

	for name, eval := range map[string]Evaluate{
		"territory":      EvaluateTerritory,
		"military":       EvaluateMilitary,
		"capital threat": EvaluateCapitalThreat,
	} {
		t.Run(name, func(t *testing.T) {
			a, e := eval(ally), eval(enemy)
			require.InDelta(t, 0, a+e, 1e-9, "scores should be zero-sum")
			require.GreaterOrEqual(t, a, -1.0)
			require.LessOrEqual(t, a, 1.0)
		})
	}

	// equal territory, the enemy fields more strength
	require.Zero(t, EvaluateTerritory(ally))
	require.Less(t, EvaluateMilitary(ally), 0.0)
}

func TestHighlights(t *testing.T) {
	gs := BuildBoard()
	archer := spawnReady(t, gs, Archer, hex.Origin, Ally)

	h := gs.Highlights(archer)
	require.Len(t, h, 18)
	for _, d := range hex.Directions {
		require.Equal(t, Strong, h[d])
	}

	gs.Units[gs.unitIndex(archer)].consume(AttackAction)
	h = gs.Highlights(archer)
	for _, c := range hex.Ring(2, hex.Origin) {
		require.Equal(t, Weak, h[c])
	}
	require.Equal(t, Strong, h[hex.Direction(0)])

	require.Nil(t, gs.Highlights(UnitID(99)))
}

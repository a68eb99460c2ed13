package game

import (
	"testing"

	"hexwar/hex"

	"github.com/stretchr/testify/require"
)

func captures(gs *GameState) map[hex.Cube]int {
	progress := make(map[hex.Cube]int)
	for _, t := range gs.Tiles() {
		progress[t.Coord] = t.Capture
	}
	return progress
}

func TestCaptureFlow(t *testing.T) {
	gs := BuildBoard()
	require.NoError(t, gs.PlaceAllyCapital(hex.Origin))
	target := hex.New(2, 0, -2)
	spawnReady(t, gs, Scout, target, Ally)

	for turn := 1; turn <= 3; turn++ {
		before := captures(gs)
		winner, err := gs.EndTurn()
		require.NoError(t, err)
		require.Equal(t, Neutral, winner)

		for coord, progress := range captures(gs) {
			diff := progress - before[coord]
			require.LessOrEqual(t, diff, 1, "tile %s", coord)
			require.GreaterOrEqual(t, diff, -1, "tile %s", coord)
		}

		tile, _ := gs.TileAt(target)
		require.Equal(t, turn, tile.Capture)
		if turn < 3 {
			require.Equal(t, Neutral, tile.Owner)
		} else {
			require.Equal(t, Ally, tile.Owner)
		}
	}
	require.Equal(t, 3, gs.Turn)
}

func TestUnbackedUnitDoesNotCapture(t *testing.T) {
	gs := BuildBoard()
	target := hex.New(2, 0, -2)
	spawnReady(t, gs, Scout, target, Ally)

	_, err := gs.EndTurn()
	require.NoError(t, err)

	tile, _ := gs.TileAt(target)
	require.Zero(t, tile.Capture)
	require.Equal(t, Neutral, tile.Owner)
}

func TestCaptureDecay(t *testing.T) {
	t.Run("abandoned neutral progress falls back", func(t *testing.T) {
		gs := BuildBoard()
		gs.Board.tile(hex.Origin).Capture = 2

		_, err := gs.EndTurn()
		require.NoError(t, err)
		tile, _ := gs.TileAt(hex.Origin)
		require.Equal(t, 1, tile.Capture)
	})

	t.Run("contested owned tile goes neutral at zero", func(t *testing.T) {
		gs := BuildBoard()
		require.NoError(t, gs.PlaceAllyCapital(hex.Origin))
		gs.Board.tile(hex.Direction(0)).Capture = 1
		gs.Board.tile(hex.Direction(0).Add(hex.Direction(0))).Owner = Enemy
		spawnReady(t, gs, Archer, hex.Direction(0), Enemy)

		_, err := gs.EndTurn()
		require.NoError(t, err)
		tile, _ := gs.TileAt(hex.Direction(0))
		require.Zero(t, tile.Capture)
		require.Equal(t, Neutral, tile.Owner)
	})
}

func TestSaturate(t *testing.T) {
	cases := []struct {
		progress, target, want int
		reached                bool
	}{
		{0, 3, 1, false},
		{2, 3, 3, true},
		{3, 3, 3, true},
		{5, 3, 4, false},
		{1, 0, 0, true},
		{0, 0, 0, true},
	}
	for _, c := range cases {
		got, reached := saturate(c.progress, c.target, 1)
		require.Equal(t, c.want, got, "saturate(%d, %d)", c.progress, c.target)
		require.Equal(t, c.reached, reached)
	}
}

func TestIncome(t *testing.T) {
	gs := BuildBoard()
	require.Equal(t, 2, gs.Income())

	require.NoError(t, gs.PlaceAllyCapital(hex.Origin))
	require.Equal(t, 9, gs.Income())

	_, err := gs.EndTurn()
	require.NoError(t, err)
	require.Equal(t, 19, gs.AllyCoins)
	require.Equal(t, "Coins: 19", gs.CoinInfo())
}

func TestRefresh(t *testing.T) {
	t.Run("regeneration caps at max health", func(t *testing.T) {
		gs := BuildBoard()
		newt := spawnReady(t, gs, Newt, hex.Origin, Enemy)

		_, err := gs.EndTurn()
		require.NoError(t, err)
		require.Equal(t, 8, mustUnit(t, gs, newt).Health)

		gs.Units[gs.unitIndex(newt)].Health = 9
		_, err = gs.EndTurn()
		require.NoError(t, err)
		require.Equal(t, 10, mustUnit(t, gs, newt).Health)
	})

	t.Run("fresh units get both actions", func(t *testing.T) {
		gs := BuildBoard()
		id, err := gs.Spawn(Archer, hex.Origin, Ally)
		require.NoError(t, err)
		require.Equal(t, []ActionType{MoveAction}, mustUnit(t, gs, id).Actions)

		_, err = gs.EndTurn()
		require.NoError(t, err)
		require.Equal(t, fullActions(), mustUnit(t, gs, id).Actions)
	})

	t.Run("slow units wait out their countdown after moving", func(t *testing.T) {
		gs := BuildBoard()
		sniper := spawnReady(t, gs, Sniper, hex.Origin, Ally)
		c := NewController(Ally)

		_, err := c.Command(gs, sniper, hex.Direction(0))
		require.NoError(t, err)

		var actions [][]ActionType
		var countdowns []int
		for i := 0; i < 4; i++ {
			_, err = gs.EndTurn()
			require.NoError(t, err)
			u := mustUnit(t, gs, sniper)
			actions = append(actions, u.Actions)
			countdowns = append(countdowns, u.keyword(Slow).Countdown)
		}

		require.Equal(t, [][]ActionType{{}, {}, fullActions(), fullActions()}, actions)
		require.Equal(t, []int{1, 0, 2, 2}, countdowns)
	})
}

func TestVictory(t *testing.T) {
	gs := BuildBoard()
	capital := hex.Axial(3, -1)
	require.NoError(t, gs.PlaceEnemyCapital(capital))
	gs.Board.tile(capital.Neighbor(3)).Owner = Ally
	spawnReady(t, gs, Knight, capital, Ally)

	var winner Team
	for i := 0; i < 4; i++ {
		require.Equal(t, Neutral, winner)
		var err error
		winner, err = gs.EndTurn()
		require.NoError(t, err)
	}
	require.Equal(t, Ally, winner)
	require.Equal(t, Ally, gs.Winner())

	_, err := gs.EndTurn()
	require.ErrorIs(t, err, ErrGameOver)
}

package game

import (
	"testing"

	"hexwar/hex"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spawnReady spawns a unit holding both actions, as if it had waited a turn.
func spawnReady(t *testing.T, gs *GameState, a Archetype, coord hex.Cube, team Team) UnitID {
	t.Helper()
	id, err := gs.Spawn(a, coord, team)
	require.NoError(t, err)
	gs.Units[gs.unitIndex(id)].Actions = fullActions()
	return id
}

func mustUnit(t *testing.T, gs *GameState, id UnitID) Unit {
	t.Helper()
	u, ok := gs.Unit(id)
	require.True(t, ok, "unit %d should be alive", id)
	return u
}

func TestArcherKillsScout(t *testing.T) {
	gs := BuildBoard()
	archer := spawnReady(t, gs, Archer, hex.Origin, Ally)
	scout := spawnReady(t, gs, Scout, hex.New(2, -2, 0), Enemy)
	c := NewController(Ally)

	outcome, err := c.Command(gs, archer, hex.New(2, -2, 0))
	require.NoError(t, err)
	require.Equal(t, Attacked, outcome)

	_, alive := gs.Unit(scout)
	require.False(t, alive)
	a := mustUnit(t, gs, archer)
	require.Equal(t, []ActionType{MoveAction}, a.Actions)
	require.Equal(t, 1, a.Health)
	require.Equal(t, hex.Origin, a.Pos)

	// attack spent; ring 2 is out of move range
	_, err = c.Command(gs, archer, hex.New(-2, 2, 0))
	require.ErrorIs(t, err, ErrIllegalMove)
}

func TestNewtStrikesBack(t *testing.T) {
	gs := BuildBoard()
	dancer := spawnReady(t, gs, BladeDancer, hex.Origin, Ally)
	newt := spawnReady(t, gs, Newt, hex.Diagonal(0), Enemy)
	gs.Units[gs.unitIndex(newt)].Health = 10

	ai, di := gs.unitIndex(dancer), gs.unitIndex(newt)
	c := gs.attack(ai, di)

	assert.Equal(t, 2, c.Damage)
	assert.False(t, c.Killed)
	assert.False(t, c.ActionSpent, "despised defenders cost no action")
	assert.Equal(t, 6, c.StruckBack)
	assert.True(t, c.AttackerKilled)
	assert.False(t, c.Advanced)

	require.Equal(t, 8, mustUnit(t, gs, newt).Health)
	_, alive := gs.Unit(dancer)
	require.False(t, alive)
}

func TestKnightArmor(t *testing.T) {
	gs := BuildBoard()
	catapult := spawnReady(t, gs, Catapult, hex.Origin, Enemy)
	knight := spawnReady(t, gs, Knight, hex.Ring(3, hex.Origin)[0], Ally)

	c := gs.attack(gs.unitIndex(catapult), gs.unitIndex(knight))

	require.Equal(t, 3, c.Damage)
	require.False(t, c.Killed)
	require.Equal(t, 1, mustUnit(t, gs, knight).Health)
	require.True(t, c.ActionSpent)
}

func TestArmorFloorsAtZero(t *testing.T) {
	gs := BuildBoard()
	scout := spawnReady(t, gs, Scout, hex.Origin, Enemy)
	knight := spawnReady(t, gs, Knight, hex.Direction(0), Ally)
	gs.Units[gs.unitIndex(knight)].Keywords = []Keyword{ArmorOf(5)}

	c := gs.attack(gs.unitIndex(scout), gs.unitIndex(knight))

	require.Zero(t, c.Damage)
	require.Equal(t, 4, mustUnit(t, gs, knight).Health)
}

func TestBladeDancerExecutes(t *testing.T) {
	gs := BuildBoard()
	dancer := spawnReady(t, gs, BladeDancer, hex.Origin, Ally)
	first := spawnReady(t, gs, Archer, hex.Diagonal(1), Enemy)
	second := spawnReady(t, gs, Scout, hex.Diagonal(1).Add(hex.Diagonal(2)), Enemy)
	c := NewController(Ally)

	outcome, err := c.Command(gs, dancer, hex.Diagonal(1))
	require.NoError(t, err)
	require.Equal(t, Attacked, outcome)

	_, alive := gs.Unit(first)
	require.False(t, alive)
	d := mustUnit(t, gs, dancer)
	require.Equal(t, hex.Diagonal(1), d.Pos, "nimble attackers advance")
	require.ElementsMatch(t, fullActions(), d.Actions, "executioners keep their attack")

	outcome, err = c.Command(gs, dancer, d.Pos.Add(hex.Diagonal(2)))
	require.NoError(t, err)
	require.Equal(t, Attacked, outcome)
	_, alive = gs.Unit(second)
	require.False(t, alive)
}

func TestNoCounterStrikeBack(t *testing.T) {
	gs := BuildBoard()
	a := spawnReady(t, gs, Newt, hex.Origin, Ally)
	b := spawnReady(t, gs, Newt, hex.Direction(3), Enemy)
	gs.Units[gs.unitIndex(a)].Health = 10
	gs.Units[gs.unitIndex(b)].Health = 10

	c := gs.attack(gs.unitIndex(a), gs.unitIndex(b))

	require.Equal(t, 6, c.StruckBack)
	require.Equal(t, 4, mustUnit(t, gs, a).Health)
	require.Equal(t, 4, mustUnit(t, gs, b).Health)
}

package hex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCubeArithmetic(t *testing.T) {
	t.Run("axial derives s", func(t *testing.T) {
		c := Axial(2, -5)
		require.Equal(t, Cube{Q: 2, R: -5, S: 3}, c)
		require.True(t, c.Valid())
	})

	t.Run("add, sub and scale keep the sum invariant", func(t *testing.T) {
		for _, a := range Range(3, Origin) {
			for _, d := range append(Directions[:], Diagonals[:]...) {
				require.True(t, a.Add(d).Valid(), "add %v %v", a, d)
				require.True(t, a.Sub(d).Valid(), "sub %v %v", a, d)
				require.True(t, d.Scale(-4).Valid(), "scale %v", d)
			}
		}
	})

	t.Run("invalid input is detected", func(t *testing.T) {
		require.False(t, New(1, 1, 1).Valid())
	})

	t.Run("diagonals sit at distance two", func(t *testing.T) {
		for i, d := range Diagonals {
			require.Equal(t, 2, Distance(Origin, d), "diagonal %d", i)
			require.Equal(t, Direction(i).Add(Direction(i+1)), d, "diagonal %d", i)
		}
	})
}

func TestNeighbors(t *testing.T) {
	c := Axial(1, 2)
	neighbors := c.Neighbors()
	for i, n := range neighbors {
		require.Equal(t, c.Add(Directions[i]), n)
		require.Equal(t, 1, Distance(c, n))
	}
	require.Equal(t, c.Neighbor(7), neighbors[1], "directions wrap around")
	require.Equal(t, c.Neighbor(-1), neighbors[5], "negative directions wrap around")
}

func TestDistance(t *testing.T) {
	require.Equal(t, 0, Distance(Origin, Origin))
	require.Equal(t, 3, Distance(Axial(0, 0), Axial(3, -3)))
	require.Equal(t, 7, Distance(Axial(-3, -1), Axial(2, 2)))
	require.Equal(t, Distance(Axial(4, -1), Axial(-2, 3)), Distance(Axial(-2, 3), Axial(4, -1)))
}

func TestRange(t *testing.T) {
	t.Run("cardinality is 3R(R+1)+1", func(t *testing.T) {
		for r := 0; r <= 6; r++ {
			require.Len(t, Range(r, Origin), 3*r*(r+1)+1, "radius %d", r)
		}
	})

	t.Run("every cell lies within radius and is unique", func(t *testing.T) {
		center := Axial(2, -1)
		seen := map[Cube]bool{}
		for _, c := range Range(4, center) {
			require.True(t, c.Valid())
			require.LessOrEqual(t, Distance(c, center), 4)
			require.False(t, seen[c], "duplicate %v", c)
			seen[c] = true
		}
	})

	t.Run("negative radius is empty", func(t *testing.T) {
		require.Empty(t, Range(-1, Origin))
	})
}

func TestRing(t *testing.T) {
	t.Run("radius zero is empty", func(t *testing.T) {
		require.Empty(t, Ring(0, Origin))
	})

	t.Run("cardinality and distance", func(t *testing.T) {
		center := Axial(-1, 3)
		for r := 1; r <= 5; r++ {
			ring := Ring(r, center)
			require.Len(t, ring, 6*r)
			for _, c := range ring {
				require.True(t, c.Valid())
				require.Equal(t, r, Distance(c, center))
			}
		}
	})

	t.Run("walk starts along direction four", func(t *testing.T) {
		ring := Ring(2, Origin)
		require.Equal(t, Direction(4).Scale(2), ring[0])
		require.Equal(t, ring[0].Add(Directions[0]), ring[1])
	})
}

func TestRound(t *testing.T) {
	t.Run("integer cubes round to themselves", func(t *testing.T) {
		for _, c := range Range(6, Origin) {
			f := Fractional{Q: float64(c.Q), R: float64(c.R), S: float64(c.S)}
			require.Equal(t, c, f.Round())
		}
	})

	t.Run("nearby points round to the containing hex", func(t *testing.T) {
		require.Equal(t, Axial(1, 0), FractionalAxial(0.9, 0.05).Round())
		require.Equal(t, Axial(0, -1), FractionalAxial(0.1, -0.8).Round())
	})

	t.Run("result always satisfies the invariant", func(t *testing.T) {
		for q := -2.0; q <= 2.0; q += 0.13 {
			for r := -2.0; r <= 2.0; r += 0.17 {
				require.True(t, FractionalAxial(q, r).Round().Valid())
			}
		}
	})
}

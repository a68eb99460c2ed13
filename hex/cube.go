// Package hex implements cube coordinates for a pointy-top hexagonal grid.
// See https://www.redblobgames.com/grids/hexagons/ for the underlying math.
package hex

import (
	"fmt"
	"math"
)

// Cube identifies one hex. Q+R+S is always zero for a valid coordinate.
type Cube struct {
	Q int `json:"q" yaml:"q"`
	R int `json:"r" yaml:"r"`
	S int `json:"s" yaml:"s"`
}

// Origin is the center of the board.
var Origin = Cube{}

// New returns the cube (q, r, s). It does not check the sum invariant; see Valid.
func New(q, r, s int) Cube {
	return Cube{Q: q, R: r, S: s}
}

// Axial returns the cube for axial (q, r), deriving s.
func Axial(q, r int) Cube {
	return Cube{Q: q, R: r, S: -q - r}
}

// Directions are the six unit vectors, counter-clockwise starting to the right.
var Directions = [6]Cube{
	{Q: 1, R: 0, S: -1}, {Q: 1, R: -1, S: 0}, {Q: 0, R: -1, S: 1},
	{Q: -1, R: 0, S: 1}, {Q: -1, R: 1, S: 0}, {Q: 0, R: 1, S: -1},
}

// Diagonals are the six length-2 vectors between adjacent directions.
var Diagonals = [6]Cube{
	{Q: 2, R: -1, S: -1}, {Q: 1, R: -2, S: 1}, {Q: -1, R: -1, S: 2},
	{Q: -2, R: 1, S: 1}, {Q: -1, R: 2, S: -1}, {Q: 1, R: 1, S: -2},
}

// Direction returns Directions[i mod 6].
func Direction(i int) Cube {
	return Directions[((i%6)+6)%6]
}

// Diagonal returns Diagonals[i mod 6].
func Diagonal(i int) Cube {
	return Diagonals[((i%6)+6)%6]
}

func (c Cube) Valid() bool {
	return c.Q+c.R+c.S == 0
}

func (c Cube) Add(o Cube) Cube {
	return Cube{Q: c.Q + o.Q, R: c.R + o.R, S: c.S + o.S}
}

func (c Cube) Sub(o Cube) Cube {
	return Cube{Q: c.Q - o.Q, R: c.R - o.R, S: c.S - o.S}
}

func (c Cube) Scale(k int) Cube {
	return Cube{Q: c.Q * k, R: c.R * k, S: c.S * k}
}

// Neighbor returns the adjacent hex in direction i.
func (c Cube) Neighbor(i int) Cube {
	return c.Add(Direction(i))
}

// Neighbors returns the six adjacent hexes in direction order.
func (c Cube) Neighbors() [6]Cube {
	var result [6]Cube
	for i, dir := range Directions {
		result[i] = c.Add(dir)
	}
	return result
}

// Length is the hex distance from the origin.
func (c Cube) Length() int {
	return max(abs(c.Q), abs(c.R), abs(c.S))
}

// Distance returns the number of steps between two hexes.
func Distance(a, b Cube) int {
	return a.Sub(b).Length()
}

// Range returns every hex within radius of center, including center.
// The result holds 3R(R+1)+1 hexes, ordered by q then r.
func Range(radius int, center Cube) []Cube {
	if radius < 0 {
		return nil
	}
	hexes := make([]Cube, 0, 3*radius*(radius+1)+1)
	for q := -radius; q <= radius; q++ {
		r1 := max(-radius, -q-radius)
		r2 := min(radius, -q+radius)
		for r := r1; r <= r2; r++ {
			hexes = append(hexes, center.Add(Axial(q, r)))
		}
	}
	return hexes
}

// Ring returns the 6*radius hexes at exactly radius from center.
// The walk starts at center + radius*Directions[4].
func Ring(radius int, center Cube) []Cube {
	if radius <= 0 {
		return nil
	}
	hexes := make([]Cube, 0, 6*radius)
	h := center.Add(Direction(4).Scale(radius))
	for i := 0; i < 6; i++ {
		for j := 0; j < radius; j++ {
			hexes = append(hexes, h)
			h = h.Neighbor(i)
		}
	}
	return hexes
}

func (c Cube) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.Q, c.R, c.S)
}

// Fractional is a cube coordinate with float components, produced by pixel math.
type Fractional struct {
	Q, R, S float64
}

// FractionalAxial returns the fractional cube for axial (q, r).
func FractionalAxial(q, r float64) Fractional {
	return Fractional{Q: q, R: r, S: -q - r}
}

// Round returns the nearest hex. The component with the largest rounding
// error is recomputed from the other two; ties prefer q, then r, then s.
func (f Fractional) Round() Cube {
	q := math.Round(f.Q)
	r := math.Round(f.R)
	s := math.Round(f.S)

	dq := math.Abs(q - f.Q)
	dr := math.Abs(r - f.R)
	ds := math.Abs(s - f.S)

	switch {
	case dq > dr && dq > ds:
		q = -r - s
	case dr > ds:
		r = -q - s
	default:
		s = -q - r
	}
	return Cube{Q: int(q), R: int(r), S: int(s)}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

package hex

import "math"

// Layout maps pointy-top hexes to pixels, with the origin hex centered at (0, 0).
type Layout struct {
	Size float64 // circumradius of one hex
	Gap  float64 // extra spacing between hexes
}

func (l Layout) padded() float64 {
	return l.Size + l.Gap
}

// ToPixel returns the center of c.
func (l Layout) ToPixel(c Cube) (x, y float64) {
	s := l.padded()
	x = s * (math.Sqrt(3)*float64(c.Q) + math.Sqrt(3)/2*float64(c.R))
	y = s * (3.0 / 2 * float64(c.R))
	return x, y
}

// FromPixel returns the hex containing (x, y). It never fails; callers clip to the board.
func (l Layout) FromPixel(x, y float64) Cube {
	s := l.padded()
	q := (math.Sqrt(3)/3*x - y/3) / s
	r := (2.0 / 3 * y) / s
	return FractionalAxial(q, r).Round()
}

// Midpoint returns the pixel halfway between the centers of a and b.
func (l Layout) Midpoint(a, b Cube) (x, y float64) {
	ax, ay := l.ToPixel(a)
	bx, by := l.ToPixel(b)
	return (ax + bx) / 2, (ay + by) / 2
}

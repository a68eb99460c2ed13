package game

import "math"

// Point is a pixel position.
type Point struct {
	X, Y float64
}

func (p Point) distance(o Point) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

// BorderPolylines traces the outline of team's territory as closed polylines of
// edge midpoints. The result is a pure function of tile ownership.
func (gs *GameState) BorderPolylines(team Team) [][]Point {
	return gs.Board.BorderPolylines(team)
}

// BorderPolylines collects the midpoint of every edge separating a tile owned
// by team from a tile it does not own (or from the void past the rim), then
// chains them by nearest neighbor. A gap of at least one hex size starts a new
// loop.
func (b *Board) BorderPolylines(team Team) [][]Point {
	var cloud []Point
	for _, t := range b.tiles {
		if t.Owner != team {
			continue
		}
		for _, n := range t.Coord.Neighbors() {
			if b.Contains(n) && b.OwnerOf(n) == team {
				continue
			}
			x, y := b.Layout.Midpoint(t.Coord, n)
			cloud = append(cloud, Point{X: x, Y: y})
		}
	}
	if len(cloud) == 0 {
		return nil
	}

	var polylines [][]Point
	cursor := cloud[0]
	cloud = cloud[1:]
	line := []Point{cursor}
	for len(cloud) > 0 {
		nearest, dist := 0, math.Inf(1)
		for i, p := range cloud {
			if d := cursor.distance(p); d < dist {
				nearest, dist = i, d
			}
		}
		cursor = cloud[nearest]
		cloud = append(cloud[:nearest], cloud[nearest+1:]...)

		if dist >= b.Layout.Size {
			polylines = append(polylines, closeLoop(line))
			line = nil
		}
		line = append(line, cursor)
	}
	return append(polylines, closeLoop(line))
}

func closeLoop(line []Point) []Point {
	return append(line, line[0])
}

package game

import (
	"fmt"

	"hexwar/hex"
)

// Tile is one hex of the board.
type Tile struct {
	Coord   hex.Cube `json:"coord"`
	Owner   Team     `json:"owner"`
	Kind    TileKind `json:"kind"`
	Capture int      `json:"capture"` // progress toward flipping ownership
}

// Board is the fixed set of tiles within Radius of the origin. Tiles are never
// added or removed after construction, only mutated.
type Board struct {
	Radius int
	Layout hex.Layout
	tiles  []Tile
	index  map[hex.Cube]int // shared between copies, never mutated
}

// NewBoard builds a board of neutral land tiles.
func NewBoard(radius int, layout hex.Layout) *Board {
	coords := hex.Range(radius, hex.Origin)
	b := &Board{
		Radius: radius,
		Layout: layout,
		tiles:  make([]Tile, len(coords)),
		index:  make(map[hex.Cube]int, len(coords)),
	}
	for i, c := range coords {
		b.tiles[i] = Tile{Coord: c, Owner: Neutral, Kind: Land}
		b.index[c] = i
	}
	return b
}

// Contains reports whether c is on the board.
func (b *Board) Contains(c hex.Cube) bool {
	_, ok := b.index[c]
	return ok
}

// TileAt returns a copy of the tile at c.
func (b *Board) TileAt(c hex.Cube) (Tile, bool) {
	i, ok := b.index[c]
	if !ok {
		return Tile{}, false
	}
	return b.tiles[i], true
}

func (b *Board) tile(c hex.Cube) *Tile {
	i, ok := b.index[c]
	if !ok {
		return nil
	}
	return &b.tiles[i]
}

// Tiles returns a copy of every tile in board order.
func (b *Board) Tiles() []Tile {
	tiles := make([]Tile, len(b.tiles))
	copy(tiles, b.tiles)
	return tiles
}

// Len is the number of tiles.
func (b *Board) Len() int {
	return len(b.tiles)
}

// OwnerOf returns the owner of c, or Neutral when c is off the board.
func (b *Board) OwnerOf(c hex.Cube) Team {
	if t := b.tile(c); t != nil {
		return t.Owner
	}
	return Neutral
}

// CountOwned returns the number of tiles owned by team.
func (b *Board) CountOwned(team Team) int {
	n := 0
	for _, t := range b.tiles {
		if t.Owner == team {
			n++
		}
	}
	return n
}

// HexToPixel returns the center of c.
func (b *Board) HexToPixel(c hex.Cube) (x, y float64) {
	return b.Layout.ToPixel(c)
}

// PixelToHex returns the tile under (x, y), or false if the point is off the board.
func (b *Board) PixelToHex(x, y float64) (hex.Cube, bool) {
	c := b.Layout.FromPixel(x, y)
	if !b.Contains(c) {
		return hex.Cube{}, false
	}
	return c, true
}

func (b *Board) Copy() *Board {
	tiles := make([]Tile, len(b.tiles))
	copy(tiles, b.tiles)
	return &Board{
		Radius: b.Radius,
		Layout: b.Layout,
		tiles:  tiles,
		index:  b.index,
	}
}

func (b *Board) String() string {
	return fmt.Sprintf("Board(radius=%d, tiles=%d)", b.Radius, len(b.tiles))
}

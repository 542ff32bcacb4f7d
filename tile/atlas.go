package tile

import "github.com/vslashg/cornmunity-wplace/palette"

// ID references an interned tile within an Atlas.
type ID int32

// Blank is the all-black tile every Atlas starts with and every Screen
// cell defaults to.
const Blank ID = 0

// Atlas interns tiles so screens can reference them by a compact value.
type Atlas struct {
	tiles []*Tile
}

// NewAtlas returns an atlas holding only the blank tile.
func NewAtlas() *Atlas {
	return &Atlas{tiles: []*Tile{New(palette.RGB(0, 0, 0))}}
}

// Add interns t and returns its ID.
func (a *Atlas) Add(t *Tile) ID {
	a.tiles = append(a.tiles, t)
	return ID(len(a.tiles) - 1)
}

// At returns the tile interned under id.
func (a *Atlas) At(id ID) *Tile {
	return a.tiles[id]
}

// Len returns the number of interned tiles.
func (a *Atlas) Len() int {
	return len(a.tiles)
}

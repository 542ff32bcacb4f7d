/*
Package tile renders palette colors as 9 by 9 annotated tiles.

A tile is a solid color fill carrying a centered texture pattern, a
highlight border along its top and right edges and a shadow border along
its left and bottom edges, so every color stays identifiable in print or
under color distortion. Tiles are interned in an Atlas and addressed by
ID; a Screen lays IDs out on a grid and composes them into a single image,
optionally fading individual cells or ringing them with a halo.
*/
package tile

import (
	"strings"

	"github.com/vslashg/cornmunity-wplace/palette"
)

// Size is the edge length of a tile in pixels.
const Size = 9

// Pattern is a square texture stamped onto a tile, one string per row with
// 'X' marking foreground pixels.
type Pattern []string

// ParsePattern splits the compact row/row/row notation used by the palette
// table.
func ParsePattern(s string) Pattern {
	if s == "" {
		return nil
	}
	return Pattern(strings.Split(s, "/"))
}

// Tile is an immutable Size by Size graphic.
type Tile struct {
	pixels [Size][Size]palette.Color
}

// Option adjusts a tile under construction.
type Option func(*Tile)

// WithHighlight paints the top and right edges in c. The highlight owns
// the top-right and bottom-right corners; the other two belong to the
// shadow edge.
func WithHighlight(c palette.Color) Option {
	return func(t *Tile) {
		for i := 1; i < Size; i++ {
			t.pixels[0][i] = c
			t.pixels[i][Size-1] = c
		}
	}
}

// WithShadow paints the left and bottom edges in c, owning the top-left
// and bottom-left corners.
func WithShadow(c palette.Color) Option {
	return func(t *Tile) {
		for i := 0; i < Size-1; i++ {
			t.pixels[i][0] = c
			t.pixels[Size-1][i] = c
		}
	}
}

// WithPattern stamps p centered on the tile in the foreground color,
// overwriting whatever it covers. Rows and columns share one offset, so
// patterns must be square.
func WithPattern(fg palette.Color, p Pattern) Option {
	return func(t *Tile) {
		off := (Size - len(p)) / 2
		for i, row := range p {
			for j := 0; j < len(row); j++ {
				if row[j] == 'X' {
					t.pixels[off+i][off+j] = fg
				}
			}
		}
	}
}

// New builds a tile filled with bg, then applies each option in order.
func New(bg palette.Color, opts ...Option) *Tile {
	t := &Tile{}
	for i := range t.pixels {
		for j := range t.pixels[i] {
			t.pixels[i][j] = bg
		}
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// At returns the pixel at the given row and column.
func (t *Tile) At(row, col int) palette.Color {
	return t.pixels[row][col]
}

// AppendRow appends one row of the tile to dst as 8-bit RGBA, applying the
// render-time effects: fade blends every pixel toward mid-gray and a
// non-nil halo replaces the tile's entire outer ring.
func (t *Tile) AppendRow(dst []byte, row int, fade bool, halo *palette.Color) []byte {
	edge := row == 0 || row == Size-1
	for col := 0; col < Size; col++ {
		c := t.pixels[row][col]
		if fade {
			c = c.Faded()
		}
		if halo != nil && (edge || col == 0 || col == Size-1) {
			c = *halo
		}
		dst = append(dst, c.R, c.G, c.B, c.A)
	}
	return dst
}

// Transparent builds the reserved tile drawn for fully transparent pixels:
// a gray fill with a dotted white stamp, black highlight and white shadow,
// inverting the convention used by color tiles.
func Transparent() *Tile {
	return New(
		palette.RGB(128, 128, 128),
		WithHighlight(palette.RGB(0, 0, 0)),
		WithShadow(palette.RGB(0xff, 0xff, 0xff)),
		WithPattern(palette.RGB(0xff, 0xff, 0xff), Pattern{"X.X.X", ".....", "X...X", ".....", "X.X.X"}),
	)
}

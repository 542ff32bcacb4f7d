/*
Package wplace converts raster images into annotated tile grids for
coordinating pixel art on an r/place style shared canvas.

Each pixel of a source image becomes a 9 by 9 tile whose fill, border and
texture pattern identify one palette color, wrapped in a border of world
coordinate labels and spliced open along configurable grid divisions. The
package also snaps arbitrary images onto the palette and tallies how many
pixels of each color a drawing needs.
*/
package wplace

import (
	"log"

	"github.com/vslashg/cornmunity-wplace/palette"
	"github.com/vslashg/cornmunity-wplace/tile"
)

// Converter owns the palette, the tile atlas and the label fonts shared by
// all operations.
type Converter struct {
	pal    *palette.Palette
	atlas  *tile.Atlas
	tiles  map[palette.Color]tile.ID
	trans  tile.ID
	hfont  *tile.Font
	vfont  *tile.Font
	logger *log.Logger
}

// New builds a converter over the standard palette. The metric decides how
// off-palette colors snap; tile appearance always uses the perceptual
// metric so a given color renders identically whatever the caller snaps
// with. A nil metric defaults to the perceptual one.
func New(metric palette.Metric, logger *log.Logger) *Converter {
	appearance := palette.NewCIEDE2000()
	if metric == nil {
		metric = appearance
	}

	c := &Converter{
		pal:    palette.New(metric),
		atlas:  tile.NewAtlas(),
		logger: logger,
	}

	c.tiles = make(map[palette.Color]tile.ID, c.pal.Len())
	for i := 0; i < c.pal.Len(); i++ {
		e := c.pal.Entry(i)
		c.tiles[e.Color] = c.atlas.Add(tile.New(
			e.Color,
			tile.WithHighlight(e.Color.Bright()),
			tile.WithShadow(e.Color.Dim()),
			tile.WithPattern(e.Color.Highlight(appearance), tile.ParsePattern(e.Pattern)),
		))
	}
	c.trans = c.atlas.Add(tile.Transparent())
	c.hfont, c.vfont = tile.InstallFonts(c.atlas, palette.RGB(0xff, 0xff, 0xff), palette.RGB(0, 0, 0))

	return c
}

// Palette returns the converter's palette.
func (c *Converter) Palette() *palette.Palette {
	return c.pal
}

// tileFor resolves an already snapped color to its tile.
func (c *Converter) tileFor(col palette.Color) tile.ID {
	if col.A == 0 {
		return c.trans
	}
	if id, ok := c.tiles[col]; ok {
		return id
	}
	return tile.Blank
}

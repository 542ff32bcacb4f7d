package wplace

import (
	"errors"
	"fmt"
	"image"

	"github.com/vslashg/cornmunity-wplace/palette"
	"github.com/vslashg/cornmunity-wplace/tile"
)

// margin is the width in cells of the coordinate label border drawn around
// the grid.
const margin = 4

// GridOptions selects the image region to draw and how to annotate it. The
// zero value draws the whole image with 8 by 8 divisions.
type GridOptions struct {
	// XStart and YStart give the top-left corner of the region in image
	// coordinates; XLen and YLen its size, where zero means the rest of
	// the image.
	XStart, YStart int
	XLen, YLen     int

	// XWorldOff and YWorldOff are the world coordinates of the image's
	// top-left pixel, so the label border shows where each pixel lives on
	// the shared canvas.
	XWorldOff, YWorldOff int

	// XStride and YStride give the size of the larger grid divisions,
	// defaulting to 8. 5 by 5 suits freeform art, 4 by 6 console text.
	// XStrideOff and YStrideOff shift the first division boundary, for
	// drawings that do not start flush with a division.
	XStride, YStride       int
	XStrideOff, YStrideOff int

	// FadeSame fades cells whose color matches the diff base, leaving
	// only the cells still to be painted at full strength.
	FadeSame bool
}

func (o *GridOptions) normalize(bounds image.Rectangle) error {
	w, h := bounds.Dx(), bounds.Dy()
	if o.XLen == 0 {
		o.XLen = w - o.XStart
	}
	if o.YLen == 0 {
		o.YLen = h - o.YStart
	}
	if o.XStride == 0 {
		o.XStride = 8
	}
	if o.YStride == 0 {
		o.YStride = 8
	}

	if o.XStart < 0 || o.YStart < 0 || o.XLen < 1 || o.YLen < 1 || o.XStart+o.XLen > w || o.YStart+o.YLen > h {
		return fmt.Errorf("wplace: region %dx%d+%d+%d outside image %dx%d", o.XLen, o.YLen, o.XStart, o.YStart, w, h)
	}
	if o.XStride < 1 || o.YStride < 1 {
		return errors.New("wplace: stride must be positive")
	}

	return nil
}

// BuildGrid renders the selected region of img as an annotated tile grid.
// Every pixel becomes a tile identifying its nearest palette color,
// wrapped in a coordinate label border and spliced open along the grid
// divisions. diff, when non-nil, must match img in size: cells whose
// snapped color differs from it are ringed in red and, with FadeSame set,
// matching cells are faded.
func (c *Converter) BuildGrid(img, diff image.Image, o GridOptions) (*image.NRGBA, error) {
	if err := o.normalize(img.Bounds()); err != nil {
		return nil, err
	}
	if diff != nil && !diff.Bounds().Eq(img.Bounds()) {
		return nil, errors.New("wplace: diff base size does not match image")
	}

	cells := c.snapRegion(toNRGBA(img), o.XStart, o.YStart, o.XLen, o.YLen)
	var base [][]palette.Color
	if diff != nil {
		base = c.snapRegion(toNRGBA(diff), o.XStart, o.YStart, o.XLen, o.YLen)
	}

	screen := tile.NewScreen(c.atlas, o.XLen+2*margin, o.YLen+2*margin)

	red := palette.RGB(0xff, 0, 0)
	for row := 0; row < o.YLen; row++ {
		for col := 0; col < o.XLen; col++ {
			screen.Plot(row+margin, col+margin, c.tileFor(cells[row][col]))
			if base == nil {
				continue
			}
			if cells[row][col] != base[row][col] {
				screen.SetHalo(row+margin, col+margin, red)
			} else if o.FadeSame {
				screen.SetFade(row+margin, col+margin, true)
			}
		}
	}

	c.drawLabels(screen, o)

	colSeps, rowSeps := separators(o)

	return screen.Compose(colSeps, rowSeps)
}

// Grid converts the image at in into an annotated grid PNG at out.
// diffBase, when not empty, names the comparison image for change
// highlighting.
func (c *Converter) Grid(in, out, diffBase string, o GridOptions) error {
	img, err := DecodeImage(in)
	if err != nil {
		return err
	}

	var diff image.Image
	if diffBase != "" {
		d, err := DecodeImage(diffBase)
		if err != nil {
			return err
		}
		diff = d
	}

	g, err := c.BuildGrid(img, diff, o)
	if err != nil {
		return err
	}

	c.logger.Printf("Drew %dx%d grid from \"%s\"\n", g.Rect.Dx(), g.Rect.Dy(), in)

	return WritePNG(out, g)
}

// snapRegion reads a rectangle of pixels and snaps each onto the palette.
func (c *Converter) snapRegion(img *image.NRGBA, x0, y0, w, h int) [][]palette.Color {
	out := make([][]palette.Color, h)
	for y := range out {
		row := make([]palette.Color, w)
		for x := range row {
			n := img.NRGBAAt(x0+x, y0+y)
			row[x] = c.pal.Nearest(palette.RGBA(n.R, n.G, n.B, n.A))
		}
		out[y] = row
	}
	return out
}

// drawLabels writes world coordinates into the margins: every multiple of
// five plus the first and last row and column, right-justified on the
// near side and left-justified on the far side.
func (c *Converter) drawLabels(s *tile.Screen, o GridOptions) {
	for i := 0; i < o.YLen; i++ {
		wy := o.YWorldOff + o.YStart + i
		if wy%5 == 0 || i == 0 || i == o.YLen-1 {
			c.hLabel(s, i+margin, 0, fmt.Sprintf("%4d", wy))
			c.hLabel(s, i+margin, o.XLen+margin, fmt.Sprintf("%-4d", wy))
		}
	}
	for i := 0; i < o.XLen; i++ {
		wx := o.XWorldOff + o.XStart + i
		if wx%5 == 0 || i == 0 || i == o.XLen-1 {
			c.vLabel(s, 0, i+margin, fmt.Sprintf("%4d", wx))
			c.vLabel(s, o.YLen+margin, i+margin, fmt.Sprintf("%-4d", wx))
		}
	}
}

// hLabel writes s left to right, clipping at the screen edge.
func (c *Converter) hLabel(scr *tile.Screen, row, col int, s string) {
	for i, r := range s {
		if col+i >= scr.Width() {
			return
		}
		scr.Plot(row, col+i, c.hfont.Glyph(r))
	}
}

// vLabel writes s top to bottom, clipping at the screen edge.
func (c *Converter) vLabel(scr *tile.Screen, row, col int, s string) {
	for i, r := range s {
		if row+i >= scr.Height() {
			return
		}
		scr.Plot(row+i, col, c.vfont.Glyph(r))
	}
}

// separators lists the cell boundaries to splice: the two frame edges of
// the grid plus every interior stride division. Alignment is relative to
// the source image, so subsets of the same drawing stay consistent.
func separators(o GridOptions) (colSeps, rowSeps []int) {
	colSeps = []int{margin, margin + o.XLen}
	for x := 1; x < o.XLen-1; x++ {
		if (x+o.XStart-o.XStrideOff)%o.XStride == 0 {
			colSeps = append(colSeps, x+margin)
		}
	}

	rowSeps = []int{margin, margin + o.YLen}
	for y := 1; y < o.YLen-1; y++ {
		if (y+o.YStart-o.YStrideOff)%o.YStride == 0 {
			rowSeps = append(rowSeps, y+margin)
		}
	}

	return colSeps, rowSeps
}

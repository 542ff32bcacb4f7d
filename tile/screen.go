package tile

import (
	"fmt"
	"image"
	"sort"

	"github.com/vslashg/cornmunity-wplace/palette"
)

// Screen is a mutable grid of tile IDs plus per-cell render effects.
type Screen struct {
	width  int
	height int
	atlas  *Atlas
	cells  []ID
	fades  []bool
	halos  []*palette.Color
}

// NewScreen returns a width by height screen of blank tiles drawing from
// atlas.
func NewScreen(atlas *Atlas, width, height int) *Screen {
	return &Screen{
		width:  width,
		height: height,
		atlas:  atlas,
		cells:  make([]ID, width*height),
		fades:  make([]bool, width*height),
		halos:  make([]*palette.Color, width*height),
	}
}

// Width returns the screen width in cells.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in cells.
func (s *Screen) Height() int {
	return s.height
}

// Plot places a tile at the given cell.
func (s *Screen) Plot(row, col int, id ID) {
	s.cells[row*s.width+col] = id
}

// SetFade marks a cell to be drawn blended toward mid-gray.
func (s *Screen) SetFade(row, col int, fade bool) {
	s.fades[row*s.width+col] = fade
}

// SetHalo rings a cell's outer pixels in c when drawn.
func (s *Screen) SetHalo(row, col int, c palette.Color) {
	halo := c
	s.halos[row*s.width+col] = &halo
}

// Compose renders the screen as a single image. colSeps and rowSeps list
// cell boundaries to splice open: at each, the pixel column or row
// immediately before the boundary is drawn twice, so the output grows by
// one pixel per separator and no tile content is disturbed. Positions must
// be strictly interior to the grid.
func (s *Screen) Compose(colSeps, rowSeps []int) (*image.NRGBA, error) {
	for _, x := range colSeps {
		if x <= 0 || x >= s.width {
			return nil, fmt.Errorf("tile: column separator %d not interior", x)
		}
	}
	for _, y := range rowSeps {
		if y <= 0 || y >= s.height {
			return nil, fmt.Errorf("tile: row separator %d not interior", y)
		}
	}

	outW := s.width*Size + len(colSeps)
	outH := s.height*Size + len(rowSeps)

	// Splice at the larger offsets first so the smaller ones stay valid.
	colOffs := splicePixels(colSeps)
	rowOffs := splicePixels(rowSeps)

	rows := make([][]byte, 0, outH)
	for ty := 0; ty < s.height; ty++ {
		for sub := 0; sub < Size; sub++ {
			line := make([]byte, 0, outW*4)
			for tx := 0; tx < s.width; tx++ {
				i := ty*s.width + tx
				line = s.atlas.At(s.cells[i]).AppendRow(line, sub, s.fades[i], s.halos[i])
			}
			for _, off := range colOffs {
				b := off * 4
				line = line[:len(line)+4]
				copy(line[b+4:], line[b:])
				copy(line[b:b+4], line[b-4:b])
			}
			rows = append(rows, line)
		}
	}

	for _, off := range rowOffs {
		rows = append(rows, nil)
		copy(rows[off+1:], rows[off:])
		rows[off] = rows[off-1]
	}

	img := image.NewNRGBA(image.Rect(0, 0, outW, outH))
	for y, row := range rows {
		copy(img.Pix[y*img.Stride:], row)
	}

	return img, nil
}

func splicePixels(seps []int) []int {
	offs := make([]int, len(seps))
	for i, s := range seps {
		offs[i] = s * Size
	}
	sort.Sort(sort.Reverse(sort.IntSlice(offs)))
	return offs
}

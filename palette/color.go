package palette

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is an RGBA color with 8-bit channels. Equality is exact byte
// identity, which makes Color usable as a map key for palette lookups.
type Color struct {
	R, G, B, A uint8
}

// RGB returns a fully opaque Color.
func RGB(r, g, b uint8) Color {
	return Color{r, g, b, 0xff}
}

// RGBA returns a Color with an explicit alpha channel.
func RGBA(r, g, b, a uint8) Color {
	return Color{r, g, b, a}
}

// ParseHex parses "rrggbb" or "rrggbbaa" hexadecimal notation, with an
// optional leading "#". Six-digit colors are fully opaque.
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 && len(h) != 8 {
		return Color{}, fmt.Errorf("palette: invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 64)
	if err != nil {
		return Color{}, fmt.Errorf("palette: invalid hex color %q", s)
	}
	if len(h) == 6 {
		v = v<<8 | 0xff
	}
	return Color{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// NRGBA converts to the standard library's straight-alpha color type.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Bright returns the midpoint toward white per channel. Pure white maps to
// a fixed gray so a highlight border stays visible against a white fill.
func (c Color) Bright() Color {
	if c.R == 0xff && c.G == 0xff && c.B == 0xff {
		return RGB(192, 192, 192)
	}
	return RGB(uint8((int(c.R)+255)/2), uint8((int(c.G)+255)/2), uint8((int(c.B)+255)/2))
}

// Dim returns half value per channel. Pure black maps to a fixed gray so a
// shadow border stays visible against a black fill.
func (c Color) Dim() Color {
	if c.R == 0 && c.G == 0 && c.B == 0 {
		return RGB(64, 64, 64)
	}
	return RGB(c.R/2, c.G/2, c.B/2)
}

// Faded blends toward mid-gray, preserving alpha. Used to de-emphasize a
// tile at render time.
func (c Color) Faded() Color {
	return RGBA(64+c.R/2, 64+c.G/2, 64+c.B/2, c.A)
}

// Highlight returns whichever of Bright or Dim is farther from c under m,
// guaranteeing a contrasting border regardless of base lightness. Ties go
// to Dim.
func (c Color) Highlight(m Metric) Color {
	bright := c.Bright()
	dim := c.Dim()
	if m.Distance(c, bright) > m.Distance(c, dim) {
		return bright
	}
	return dim
}

func (c Color) packed() uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

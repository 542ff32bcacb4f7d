package tile

import "github.com/vslashg/cornmunity-wplace/palette"

// glyphs is the 7 by 7 label character set, lifted from the IBM PC BIOS
// font. Coordinate labels only ever contain digits, '-' and spaces.
var glyphs = map[rune]Pattern{
	'0': {
		".XXXXX.",
		"XX...XX",
		"XX..XXX",
		"XX.XXXX",
		"XXXX.XX",
		"XXX..XX",
		".XXXXX.",
	},
	'1': {
		"..XX...",
		".XXX...",
		"..XX...",
		"..XX...",
		"..XX...",
		"..XX...",
		"XXXXXX.",
	},
	'2': {
		".XXXX..",
		"XX..XX.",
		"....XX.",
		"..XXX..",
		".XX....",
		"XX..XX.",
		"XXXXXX.",
	},
	'3': {
		".XXXX..",
		"XX..XX.",
		"....XX.",
		"..XXX..",
		"....XX.",
		"XX..XX.",
		".XXXX..",
	},
	'4': {
		"...XXX.",
		"..XXXX.",
		".XX.XX.",
		"XX..XX.",
		"XXXXXXX",
		"....XX.",
		"...XXXX",
	},
	'5': {
		"XXXXXX.",
		"XX.....",
		"XXXXX..",
		"....XX.",
		"....XX.",
		"XX..XX.",
		".XXXX..",
	},
	'6': {
		"..XXX..",
		".XX....",
		"XX.....",
		"XXXXX..",
		"XX..XX.",
		"XX..XX.",
		".XXXX..",
	},
	'7': {
		"XXXXXX.",
		"XX..XX.",
		"....XX.",
		"...XX..",
		"..XX...",
		"..XX...",
		"..XX...",
	},
	'8': {
		".XXXX..",
		"XX..XX.",
		"XX..XX.",
		".XXXX..",
		"XX..XX.",
		"XX..XX.",
		".XXXX..",
	},
	'9': {
		".XXXX..",
		"XX..XX.",
		"XX..XX.",
		".XXXXX.",
		"....XX.",
		"...XX..",
		".XXX...",
	},
	' ': {
		".......",
		".......",
		".......",
		".......",
		".......",
		".......",
		".......",
	},
	'-': {
		".......",
		".......",
		".......",
		"XXXXXX.",
		".......",
		".......",
		".......",
	},
}

// Rotated returns the pattern turned a quarter turn clockwise, for
// lettering that runs down the side of an image.
func (p Pattern) Rotated() Pattern {
	s := len(p)
	out := make(Pattern, s)
	for i := 0; i < s; i++ {
		row := make([]byte, s)
		for j := 0; j < s; j++ {
			row[j] = p[s-1-j][i]
		}
		out[i] = string(row)
	}
	return out
}

// Font maps label characters to interned tiles.
type Font struct {
	glyphs map[rune]ID
}

// Glyph returns the tile for r. Characters outside the set draw as the
// blank tile, which renders the same as a space.
func (f *Font) Glyph(r rune) ID {
	if id, ok := f.glyphs[r]; ok {
		return id
	}
	return Blank
}

// InstallFonts interns the label character set into atlas twice, upright
// for horizontal labels and rotated a quarter turn clockwise for vertical
// ones, and returns the two fonts.
func InstallFonts(atlas *Atlas, fg, bg palette.Color) (h, v *Font) {
	h = &Font{glyphs: make(map[rune]ID, len(glyphs))}
	v = &Font{glyphs: make(map[rune]ID, len(glyphs))}
	for r, p := range glyphs {
		h.glyphs[r] = atlas.Add(New(bg, WithPattern(fg, p)))
		v.glyphs[r] = atlas.Add(New(bg, WithPattern(fg, p.Rotated())))
	}
	return h, v
}

/*
Package palette implements the fixed wplace color set and the matching
machinery used to snap arbitrary colors onto it.

Every palette entry pairs a color with a display name, a paid flag and a
5 by 5 texture pattern that makes its tile distinguishable from every other
entry without relying on color alone. One reserved fully-transparent entry
sits outside the table and is returned for any zero-alpha query.
*/
package palette

import "errors"

// ErrNotInPalette signals an exact lookup for a color the palette does not
// contain.
var ErrNotInPalette = errors.New("palette: color not present")

// Entry is one palette member. Pattern holds '/'-separated texture rows
// with 'X' marking foreground cells; it is empty for the transparent entry.
type Entry struct {
	Color   Color
	Name    string
	Paid    bool
	Pattern string
}

// Label returns the display name used in usage reports, prefixing paid
// entries so they are distinguishable from free ones.
func (e Entry) Label() string {
	if e.Paid {
		return "$ " + e.Name
	}
	return e.Name
}

// Transparent is the reserved entry returned for zero-alpha colors. It is
// not a member of the table and never wins a nearest-color scan.
var Transparent = Entry{Color: Color{}, Name: "Transparent"}

// Palette is an immutable ordered color table with exact and nearest
// lookup. The nearest scan uses the Metric supplied at construction.
type Palette struct {
	entries []Entry
	index   map[Color]int
	metric  Metric
}

// New builds the standard wplace palette over the given metric.
func New(metric Metric) *Palette {
	return NewFromEntries(table, metric)
}

// NewFromEntries builds a palette from an explicit entry list, keeping
// declaration order. The first entry wins when a color appears twice.
func NewFromEntries(entries []Entry, metric Metric) *Palette {
	p := &Palette{
		entries: append([]Entry(nil), entries...),
		index:   make(map[Color]int, len(entries)),
		metric:  metric,
	}
	for i, e := range p.entries {
		if _, ok := p.index[e.Color]; !ok {
			p.index[e.Color] = i
		}
	}
	return p
}

// Len returns the number of table entries, excluding Transparent.
func (p *Palette) Len() int {
	return len(p.entries)
}

// Entry returns the i'th table entry in declaration order.
func (p *Palette) Entry(i int) Entry {
	return p.entries[i]
}

// Metric returns the distance metric the palette scans with.
func (p *Palette) Metric() Metric {
	return p.metric
}

// Exact resolves a color that is already a palette member. Zero-alpha
// colors resolve to Transparent regardless of their RGB channels; anything
// else not in the table fails with ErrNotInPalette.
func (p *Palette) Exact(c Color) (Entry, error) {
	if c.A == 0 {
		return Transparent, nil
	}
	if i, ok := p.index[c]; ok {
		return p.entries[i], nil
	}
	return Entry{}, ErrNotInPalette
}

// NearestEntry resolves a color to its closest palette entry. Zero-alpha
// colors short-circuit to Transparent and exact members return themselves;
// otherwise the table is scanned left to right and the first minimum wins,
// so ties break by declaration order.
func (p *Palette) NearestEntry(c Color) Entry {
	if c.A == 0 {
		return Transparent
	}
	if i, ok := p.index[c]; ok {
		return p.entries[i]
	}
	best := 0
	bestDist := p.metric.Distance(c, p.entries[0].Color)
	for i := 1; i < len(p.entries); i++ {
		if d := p.metric.Distance(c, p.entries[i].Color); d < bestDist {
			best, bestDist = i, d
		}
	}
	return p.entries[best]
}

// Nearest resolves a color to the closest palette color. Zero-alpha colors
// yield the fully transparent color.
func (p *Palette) Nearest(c Color) Color {
	return p.NearestEntry(c).Color
}

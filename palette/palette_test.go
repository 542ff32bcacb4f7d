package palette

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaletteTable(t *testing.T) {
	t.Parallel()

	p := New(Euclidean{})
	require.Equal(t, 63, p.Len())

	colors := make(map[Color]struct{}, p.Len())
	names := make(map[string]struct{}, p.Len())
	patterns := make(map[string]struct{}, p.Len())

	for i := 0; i < p.Len(); i++ {
		e := p.Entry(i)

		assert.Equal(t, uint8(0xff), e.Color.A, e.Name)

		_, dup := colors[e.Color]
		assert.False(t, dup, "duplicate color %v", e.Color)
		colors[e.Color] = struct{}{}

		_, dup = names[e.Name]
		assert.False(t, dup, "duplicate name %q", e.Name)
		names[e.Name] = struct{}{}

		_, dup = patterns[e.Pattern]
		assert.False(t, dup, "duplicate pattern for %q", e.Name)
		patterns[e.Pattern] = struct{}{}

		rows := strings.Split(e.Pattern, "/")
		require.Len(t, rows, 5, e.Name)
		for _, row := range rows {
			require.Len(t, row, 5, e.Name)
			assert.Empty(t, strings.Trim(row, "X."), e.Name)
		}
	}
}

func TestLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Black", Entry{Name: "Black"}.Label())
	assert.Equal(t, "$ Medium Gray", Entry{Name: "Medium Gray", Paid: true}.Label())
	assert.Equal(t, "Transparent", Transparent.Label())
}

func TestExact(t *testing.T) {
	t.Parallel()

	p := New(Euclidean{})

	e, err := p.Exact(RGB(0xed, 0x1c, 0x24))
	require.NoError(t, err)
	assert.Equal(t, "Red", e.Name)

	e, err = p.Exact(RGBA(0x12, 0x34, 0x56, 0))
	require.NoError(t, err)
	assert.Equal(t, Transparent, e)

	_, err = p.Exact(RGB(1, 2, 3))
	assert.ErrorIs(t, err, ErrNotInPalette)
}

func TestNearestFixedPoint(t *testing.T) {
	t.Parallel()

	for _, m := range []Metric{Euclidean{}, NewCIEDE2000()} {
		p := New(m)
		for i := 0; i < p.Len(); i++ {
			e := p.Entry(i)
			assert.Equal(t, e.Color, p.Nearest(e.Color), e.Name)
		}
	}
}

func TestNearest(t *testing.T) {
	t.Parallel()

	p := New(Euclidean{})

	tables := []struct {
		name string
		in   Color
		out  string
	}{
		{
			name: "near black",
			in:   RGB(5, 5, 5),
			out:  "Black",
		},
		{
			name: "near white",
			in:   RGB(250, 250, 250),
			out:  "White",
		},
		{
			name: "near red",
			in:   RGB(0xe0, 0x20, 0x20),
			out:  "Red",
		},
	}

	for _, table := range tables {
		table := table
		t.Run(table.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, table.out, p.NearestEntry(table.in).Name)
		})
	}
}

func TestNearestTransparent(t *testing.T) {
	t.Parallel()

	p := New(NewCIEDE2000())

	assert.Equal(t, Transparent, p.NearestEntry(RGBA(10, 20, 30, 0)))
	assert.Equal(t, Color{}, p.Nearest(RGBA(0xff, 0xff, 0xff, 0)))
}

func TestNearestTieBreak(t *testing.T) {
	t.Parallel()

	// Both entries sit 100 units from the probe; declaration order wins.
	p := NewFromEntries([]Entry{
		{Color: RGB(10, 0, 0), Name: "first"},
		{Color: RGB(0, 10, 0), Name: "second"},
	}, Euclidean{})

	assert.Equal(t, "first", p.NearestEntry(RGB(0, 0, 0)).Name)
}

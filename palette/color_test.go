package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	t.Parallel()

	tables := []struct {
		name string
		in   string
		out  Color
		err  string
	}{
		{
			name: "six digits",
			in:   "780c99",
			out:  RGB(0x78, 0x0c, 0x99),
		},
		{
			name: "leading hash",
			in:   "#4093e4",
			out:  RGB(0x40, 0x93, 0xe4),
		},
		{
			name: "eight digits",
			in:   "60f7f280",
			out:  RGBA(0x60, 0xf7, 0xf2, 0x80),
		},
		{
			name: "zero alpha",
			in:   "#ffffff00",
			out:  RGBA(0xff, 0xff, 0xff, 0x00),
		},
		{
			name: "uppercase",
			in:   "FFC5A5",
			out:  RGB(0xff, 0xc5, 0xa5),
		},
		{
			name: "wrong length",
			in:   "12345",
			err:  `palette: invalid hex color "12345"`,
		},
		{
			name: "not hex",
			in:   "nothex",
			err:  `palette: invalid hex color "nothex"`,
		},
		{
			name: "empty",
			in:   "",
			err:  `palette: invalid hex color ""`,
		},
	}

	for _, table := range tables {
		table := table
		t.Run(table.name, func(t *testing.T) {
			t.Parallel()

			c, err := ParseHex(table.in)
			if table.err != "" {
				assert.EqualError(t, err, table.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, table.out, c)
		})
	}
}

func TestColorString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "#ed1c24ff", RGB(0xed, 0x1c, 0x24).String())
	assert.Equal(t, "#01020304", RGBA(1, 2, 3, 4).String())
}

func TestBright(t *testing.T) {
	t.Parallel()

	tables := []struct {
		name string
		in   Color
		out  Color
	}{
		{
			name: "white clamps to gray",
			in:   RGB(0xff, 0xff, 0xff),
			out:  RGB(192, 192, 192),
		},
		{
			name: "black",
			in:   RGB(0, 0, 0),
			out:  RGB(127, 127, 127),
		},
		{
			name: "red",
			in:   RGB(0xed, 0x1c, 0x24),
			out:  RGB(246, 141, 145),
		},
	}

	for _, table := range tables {
		table := table
		t.Run(table.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, table.out, table.in.Bright())
		})
	}
}

func TestDim(t *testing.T) {
	t.Parallel()

	tables := []struct {
		name string
		in   Color
		out  Color
	}{
		{
			name: "black clamps to gray",
			in:   RGB(0, 0, 0),
			out:  RGB(64, 64, 64),
		},
		{
			name: "white",
			in:   RGB(0xff, 0xff, 0xff),
			out:  RGB(127, 127, 127),
		},
		{
			name: "red",
			in:   RGB(0xed, 0x1c, 0x24),
			out:  RGB(118, 14, 18),
		},
	}

	for _, table := range tables {
		table := table
		t.Run(table.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, table.out, table.in.Dim())
		})
	}
}

func TestFaded(t *testing.T) {
	t.Parallel()

	assert.Equal(t, RGBA(114, 164, 68, 128), RGBA(100, 200, 8, 128).Faded())
	assert.Equal(t, RGB(191, 191, 191), RGB(0xff, 0xff, 0xff).Faded())
	assert.Equal(t, RGBA(64, 64, 64, 0), RGBA(0, 0, 0, 0).Faded())
}

func TestHighlight(t *testing.T) {
	t.Parallel()

	tables := []struct {
		name string
		in   Color
		out  Color
	}{
		{
			name: "dark picks bright",
			in:   RGB(0, 0, 0),
			out:  RGB(127, 127, 127),
		},
		{
			name: "light picks dim",
			in:   RGB(0xff, 0xff, 0xff),
			out:  RGB(127, 127, 127),
		},
		{
			name: "tie picks dim",
			in:   RGB(127, 127, 127),
			out:  RGB(63, 63, 63),
		},
	}

	for _, table := range tables {
		table := table
		t.Run(table.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, table.out, table.in.Highlight(Euclidean{}))
		})
	}
}

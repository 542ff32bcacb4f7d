package wplace

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vslashg/cornmunity-wplace/palette"
)

func TestTally(t *testing.T) {
	t.Parallel()

	conv := testConverter()

	black := palette.RGB(0, 0, 0)
	gray := palette.RGB(0xaa, 0xaa, 0xaa)
	img := testImage([][]palette.Color{
		{black, black, black},
		{black, gray, palette.Color{}},
	})

	usage := conv.Tally(img)
	assert.Equal(t, []Usage{
		{Label: "Black", Count: 4},
		{Label: "$ Medium Gray", Count: 1},
		{Label: "Transparent", Count: 1},
	}, usage)

	total := 0
	for _, u := range usage {
		total += u.Count
	}
	assert.Equal(t, img.Rect.Dx()*img.Rect.Dy(), total)
}

func writeTestPNG(t *testing.T, name string, colors [][]palette.Color) string {
	t.Helper()

	file := filepath.Join(t.TempDir(), name)
	require.NoError(t, WritePNG(file, testImage(colors)))
	return file
}

func fileSHA1(t *testing.T, file string) string {
	t.Helper()

	b, err := os.ReadFile(file)
	require.NoError(t, err)
	return fmt.Sprintf("%X", sha1.Sum(b))
}

func TestReport(t *testing.T) {
	t.Parallel()

	conv := testConverter()
	file := writeTestPNG(t, "white.png", [][]palette.Color{{palette.RGB(0xff, 0xff, 0xff)}})

	var buf bytes.Buffer
	require.NoError(t, conv.Report(&buf, nil, file))
	assert.Equal(t, "      1  White\n", buf.String())
}

func TestReportMultipleFiles(t *testing.T) {
	t.Parallel()

	conv := testConverter()
	white := writeTestPNG(t, "white.png", [][]palette.Color{{palette.RGB(0xff, 0xff, 0xff)}})
	black := writeTestPNG(t, "black.png", [][]palette.Color{{palette.RGB(0, 0, 0)}})

	var buf bytes.Buffer
	require.NoError(t, conv.Report(&buf, nil, white, black))

	expected := fmt.Sprintf("%s:\n      1  White\n\n%s:\n      1  Black\n", white, black)
	assert.Equal(t, expected, buf.String())
}

func TestReportSave(t *testing.T) {
	t.Parallel()

	conv := testConverter()
	file := writeTestPNG(t, "art.png", [][]palette.Color{
		{palette.RGB(0, 0, 0), palette.RGB(0, 0, 0)},
		{palette.RGB(0xff, 0xff, 0xff), palette.Color{}},
	})

	cat, err := OpenCatalog(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer cat.Close()

	var buf bytes.Buffer
	require.NoError(t, conv.Report(&buf, cat, file))

	sha := fileSHA1(t, file)
	usage, err := cat.FindUsageBySHA1(sha)
	require.NoError(t, err)
	assert.Equal(t, []Usage{
		{Label: "Black", Count: 2},
		{Label: "Transparent", Count: 1},
		{Label: "White", Count: 1},
	}, usage)

	// Reporting the same content again leaves the archive unchanged.
	require.NoError(t, conv.Report(&buf, cat, file))
	again, err := cat.FindUsageBySHA1(sha)
	require.NoError(t, err)
	assert.Equal(t, usage, again)
}

func TestReportMissingFile(t *testing.T) {
	t.Parallel()

	conv := testConverter()

	var buf bytes.Buffer
	assert.Error(t, conv.Report(&buf, nil, filepath.Join(t.TempDir(), "nope.png")))
}

package wplace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vslashg/cornmunity-wplace/palette"
)

func TestScan(t *testing.T) {
	t.Parallel()

	conv := testConverter()
	dir := t.TempDir()

	white := [][]palette.Color{{palette.RGB(0xff, 0xff, 0xff)}}
	black := [][]palette.Color{{palette.RGB(0, 0, 0), palette.RGB(0, 0, 0)}}
	red := [][]palette.Color{{palette.RGB(0xed, 0x1c, 0x24)}}
	green := [][]palette.Color{{palette.RGB(0x13, 0xe6, 0x7b)}}

	// Two distinct images, one duplicated under another name, and one
	// inside a nested directory.
	require.NoError(t, WritePNG(filepath.Join(dir, "white.png"), testImage(white)))
	require.NoError(t, WritePNG(filepath.Join(dir, "black.png"), testImage(black)))
	require.NoError(t, WritePNG(filepath.Join(dir, "copy.png"), testImage(white)))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, WritePNG(filepath.Join(dir, "sub", "green.png"), testImage(green)))

	// Ignored: wrong extension, hidden file, hidden directory, junk that
	// does not decode.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not an image"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden.png"), []byte("junk"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".cache"), 0o755))
	require.NoError(t, WritePNG(filepath.Join(dir, ".cache", "red.png"), testImage(red)))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.png"), []byte("not a png"), 0o644))

	cat, err := OpenCatalog(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer cat.Close()

	require.NoError(t, conv.Scan(dir, cat))

	whiteSHA := fileSHA1(t, filepath.Join(dir, "white.png"))
	blackSHA := fileSHA1(t, filepath.Join(dir, "black.png"))
	greenSHA := fileSHA1(t, filepath.Join(dir, "sub", "green.png"))
	redSHA := fileSHA1(t, filepath.Join(dir, ".cache", "red.png"))

	for _, sha := range []string{whiteSHA, blackSHA, greenSHA} {
		ok, err := cat.HasImage(sha)
		require.NoError(t, err)
		assert.True(t, ok)
	}

	// The hidden directory was never entered.
	ok, err := cat.HasImage(redSHA)
	require.NoError(t, err)
	assert.False(t, ok)

	usage, err := cat.FindUsageBySHA1(blackSHA)
	require.NoError(t, err)
	assert.Equal(t, []Usage{{Label: "Black", Count: 2}}, usage)

	// Rescanning is cheap and leaves the archive unchanged.
	require.NoError(t, conv.Scan(dir, cat))
	usage, err = cat.FindUsageBySHA1(whiteSHA)
	require.NoError(t, err)
	assert.Equal(t, []Usage{{Label: "White", Count: 1}}, usage)
}

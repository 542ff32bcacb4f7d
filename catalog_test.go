package wplace

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	t.Parallel()

	cat, err := OpenCatalog(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer cat.Close()

	const sha = "DA39A3EE5E6B4B0D3255BFEF95601890AFD80709"

	ok, err := cat.HasImage(sha)
	require.NoError(t, err)
	assert.False(t, ok)

	usage, err := cat.FindUsageBySHA1(sha)
	require.NoError(t, err)
	assert.Nil(t, usage)

	saved := []Usage{
		{Label: "White", Count: 3},
		{Label: "Black", Count: 9},
		{Label: "$ Slate", Count: 3},
	}
	require.NoError(t, cat.SaveReport(sha, "art.png", 5, 3, saved))

	ok, err = cat.HasImage(sha)
	require.NoError(t, err)
	assert.True(t, ok)

	// Reads come back most-used first with ties in label order.
	usage, err = cat.FindUsageBySHA1(sha)
	require.NoError(t, err)
	assert.Equal(t, []Usage{
		{Label: "Black", Count: 9},
		{Label: "$ Slate", Count: 3},
		{Label: "White", Count: 3},
	}, usage)

	// Saving the same hash again is a no-op.
	require.NoError(t, cat.SaveReport(sha, "other.png", 1, 1, []Usage{{Label: "Red", Count: 1}}))
	again, err := cat.FindUsageBySHA1(sha)
	require.NoError(t, err)
	assert.Equal(t, usage, again)
}

func TestCatalogReopen(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "test.db")

	cat, err := OpenCatalog(file)
	require.NoError(t, err)
	require.NoError(t, cat.SaveReport("ABC", "a.png", 1, 1, []Usage{{Label: "Black", Count: 1}}))
	require.NoError(t, cat.Close())

	cat, err = OpenCatalog(file)
	require.NoError(t, err)
	defer cat.Close()

	ok, err := cat.HasImage("ABC")
	require.NoError(t, err)
	assert.True(t, ok)
}

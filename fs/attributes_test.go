package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/cookalong"
	"github.com/fwojciec/cookalong/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributesFile_Load(t *testing.T) {
	t.Parallel()

	t.Run("reports a missing file as not found", func(t *testing.T) {
		t.Parallel()

		f := fs.NewAttributesFile(filepath.Join(t.TempDir(), "attrs.json"))

		attrs, found, err := f.Load()

		require.NoError(t, err)
		assert.False(t, found)
		assert.Equal(t, cookalong.SessionAttributes{}, attrs)
	})

	t.Run("rejects invalid JSON", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "attrs.json")
		require.NoError(t, os.WriteFile(path, []byte("{"), 0644))

		_, _, err := fs.NewAttributesFile(path).Load()

		assert.Equal(t, cookalong.EINVALID, cookalong.ErrorCode(err))
	})
}

func TestAttributesFile_Save(t *testing.T) {
	t.Parallel()

	t.Run("round trips attributes", func(t *testing.T) {
		t.Parallel()

		f := fs.NewAttributesFile(filepath.Join(t.TempDir(), "nested", "attrs.json"))
		want := cookalong.SessionAttributes{
			NewSession:  true,
			Results:     []cookalong.RecipeCandidate{{Title: "Kale Chips", URL: "https://www.skinnytaste.com/kale-chips/"}},
			RecipeTitle: "Kale Chips",
			Recipe:      &cookalong.RecipeDetails{Ingredients: []string{"kale"}, Instructions: []string{"Bake."}},
		}

		require.NoError(t, f.Save(want))
		got, found, err := f.Load()

		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, want, got)
	})

	t.Run("leaves no temporary file behind", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		f := fs.NewAttributesFile(filepath.Join(dir, "attrs.json"))

		require.NoError(t, f.Save(cookalong.SessionAttributes{RecipeTitle: "first"}))
		require.NoError(t, f.Save(cookalong.SessionAttributes{RecipeTitle: "second"}))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "attrs.json", entries[0].Name())

		got, _, err := f.Load()
		require.NoError(t, err)
		assert.Equal(t, "second", got.RecipeTitle)
	})
}

func TestAttributesFile_Remove(t *testing.T) {
	t.Parallel()

	f := fs.NewAttributesFile(filepath.Join(t.TempDir(), "attrs.json"))
	require.NoError(t, f.Save(cookalong.SessionAttributes{RecipeTitle: "x"}))

	require.NoError(t, f.Remove())
	require.NoError(t, f.Remove())

	_, found, err := f.Load()
	require.NoError(t, err)
	assert.False(t, found)
}

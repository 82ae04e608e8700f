package manuscript

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("content"), 0o644))
}

func names(files []File) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.Name
	}
	return out
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "ch1.md")
	writeFile(t, root, "drafts/ch2.md")
	writeFile(t, root, "notes.txt")
	writeFile(t, root, "cover.png")

	files, err := Discover(root, []string{"**/*.md", "**/*.txt"})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"ch1.md", "ch2.md", "notes.txt"}, names(files))
}

func TestDiscover_NewestFirst(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "old.md")
	writeFile(t, root, "new.md")

	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(root, "old.md"), old, old))

	files, err := Discover(root, []string{"**/*.md"})
	require.NoError(t, err)
	require.Len(t, files, 2)

	assert.Equal(t, "new.md", files[0].Name)
	assert.Equal(t, "old.md", files[1].Name)
}

func TestDiscover_SkipsHiddenDirs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "ch1.md")
	writeFile(t, root, ".git/objects/blob.md")

	files, err := Discover(root, []string{"**/*.md"})
	require.NoError(t, err)

	assert.Equal(t, []string{"ch1.md"}, names(files))
}

func TestDiscover_NoMatches(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "cover.png")

	files, err := Discover(root, []string{"**/*.md"})
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestDiscover_MissingRoot(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "absent"), []string{"**/*.md"})
	assert.Error(t, err)
}

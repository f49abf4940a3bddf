package loader_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pacer/slate/internal/loader"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoad_ReadsFromRoot(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "pages/index.html", "<h1>hi</h1>")

	d := loader.NewDir(root, false)

	content, err := d.Load("pages/index.html")
	require.NoError(t, err)
	assert.Equal(t, "<h1>hi</h1>", content)
}

func TestLoad_CacheServesUnchangedFile(t *testing.T) {
	root := t.TempDir()
	path := writeFile(t, root, "base.html", "v1")

	d := loader.NewDir(root, true)

	content, err := d.Load("base.html")
	require.NoError(t, err)
	assert.Equal(t, "v1", content)

	// Rewrite the file but keep its mtime in the past. The cache entry is
	// still considered fresh, so the old content comes back.
	past := time.Now().Add(-time.Hour)
	require.NoError(t, os.WriteFile(path, []byte("v2"), 0o644))
	require.NoError(t, os.Chtimes(path, past, past))

	content, err = d.Load("base.html")
	require.NoError(t, err)
	assert.Equal(t, "v1", content)
}

func TestLoad_StaleEntryRefreshed(t *testing.T) {
	root := t.TempDir()
	path := writeFile(t, root, "base.html", "v1")

	past := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(path, past, past))

	d := loader.NewDir(root, true)

	_, err := d.Load("base.html")
	require.NoError(t, err)

	future := time.Now().Add(time.Hour)
	require.NoError(t, os.WriteFile(path, []byte("v2"), 0o644))
	require.NoError(t, os.Chtimes(path, future, future))

	content, err := d.Load("base.html")
	require.NoError(t, err)
	assert.Equal(t, "v2", content)
}

func TestLoad_CachingDisabledAlwaysReads(t *testing.T) {
	root := t.TempDir()
	path := writeFile(t, root, "base.html", "v1")

	d := loader.NewDir(root, false)

	_, err := d.Load("base.html")
	require.NoError(t, err)

	past := time.Now().Add(-time.Hour)
	require.NoError(t, os.WriteFile(path, []byte("v2"), 0o644))
	require.NoError(t, os.Chtimes(path, past, past))

	content, err := d.Load("base.html")
	require.NoError(t, err)
	assert.Equal(t, "v2", content)
}

func TestLoad_MissingFile(t *testing.T) {
	d := loader.NewDir(t.TempDir(), true)

	_, err := d.Load("nope.html")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_RejectsEscapingNames(t *testing.T) {
	d := loader.NewDir(t.TempDir(), false)

	for _, name := range []string{"../secret", "a/../../secret", "/etc/passwd"} {
		_, err := d.Load(name)
		assert.ErrorContains(t, err, "escapes the template root", "name %q", name)
	}
}

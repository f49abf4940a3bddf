// Package loader resolves template names to file content under a root
// directory, caching sources and revalidating them against the file's
// modification time on every access.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Dir loads '/'-separated template names from a root directory.
type Dir struct {
	root    string
	caching bool
	cache   *gocache.Cache
}

type entry struct {
	content string
	mtime   time.Time
}

// NewDir returns a loader rooted at root. With caching disabled every Load
// re-reads the file.
func NewDir(root string, caching bool) *Dir {
	return &Dir{
		root:    root,
		caching: caching,
		cache:   gocache.New(gocache.NoExpiration, 10*time.Minute),
	}
}

// Load returns the content of the named template. A cached copy is returned
// only while the file's mtime has not moved past the cached one.
func (d *Dir) Load(name string) (string, error) {
	target, err := d.resolve(name)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(target)
	if err != nil {
		return "", fmt.Errorf("template %q: %w", name, err)
	}

	if d.caching {
		if cached, ok := d.cache.Get(target); ok {
			e := cached.(entry)
			if !info.ModTime().After(e.mtime) {
				return e.content, nil
			}
		}
	}

	data, err := os.ReadFile(target)
	if err != nil {
		return "", fmt.Errorf("template %q: %w", name, err)
	}

	content := string(data)
	if d.caching {
		d.cache.Set(target, entry{content: content, mtime: info.ModTime()}, gocache.NoExpiration)
	}

	return content, nil
}

// resolve maps a template name onto a path under the root, rejecting names
// that would escape it.
func (d *Dir) resolve(name string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(name))
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) ||
		filepath.IsAbs(clean) {
		return "", fmt.Errorf("template %q: name escapes the template root", name)
	}

	return filepath.Join(d.root, clean), nil
}

// Package manuscript discovers reviewable manuscript files on disk.
package manuscript

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

// File describes one discovered manuscript file.
type File struct {
	Path    string // absolute path
	Name    string // base name
	Size    int64
	ModTime time.Time
}

// Discover walks root and returns files whose root-relative path matches
// any of the doublestar patterns, newest first. Hidden directories are
// skipped.
func Discover(root string, patterns []string) ([]File, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve root: %w", err)
	}

	var files []File
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path != absRoot && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(absRoot, path)
		if err != nil {
			return err
		}

		if !matchesAny(filepath.ToSlash(rel), patterns) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			// File disappeared mid-walk; skip it.
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}

		files = append(files, File{
			Path:    path,
			Name:    d.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discover manuscripts: %w", err)
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].ModTime.After(files[j].ModTime)
	})

	return files, nil
}

func matchesAny(relPath string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, relPath); err == nil && ok {
			return true
		}
	}
	return false
}

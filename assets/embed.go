// Package assets holds the game data: configuration, chunk files, beat lines
// and scripts. Files found under a disk directory take precedence over the
// embedded copies so levels can be edited without rebuilding.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/milk9111/higher/config"
)

//go:embed config.yaml chunks beatlines scripts
var assetsFS embed.FS

// Embedded returns the assets compiled into the binary.
func Embedded() fs.FS {
	return assetsFS
}

// FS layers dir over the embedded assets. An empty or missing dir yields the
// embedded assets alone.
func FS(dir string) fs.FS {
	if dir == "" {
		return assetsFS
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return assetsFS
	}
	return Overlay(os.DirFS(dir), assetsFS)
}

// LoadFile reads an asset by assets-relative path. A leading "assets/" or an
// absolute path under an assets directory is accepted too.
func LoadFile(fsys fs.FS, path string) ([]byte, error) {
	return fs.ReadFile(fsys, cleanAssetPath(path))
}

// LoadConfig reads and validates the config file at path.
func LoadConfig(fsys fs.FS, path string) (config.Config, error) {
	data, err := LoadFile(fsys, path)
	if err != nil {
		return config.Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	return config.Parse(data)
}

type overlayFS struct {
	top, base fs.FS
}

// Overlay serves files from top, falling back to base. Directory listings are
// merged.
func Overlay(top, base fs.FS) fs.FS {
	return overlayFS{top: top, base: base}
}

func (o overlayFS) Open(name string) (fs.File, error) {
	f, err := o.top.Open(name)
	if err == nil {
		return f, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return o.base.Open(name)
}

func (o overlayFS) ReadDir(name string) ([]fs.DirEntry, error) {
	top, topErr := fs.ReadDir(o.top, name)
	base, baseErr := fs.ReadDir(o.base, name)
	if topErr != nil && baseErr != nil {
		return nil, baseErr
	}

	seen := make(map[string]bool, len(top))
	entries := make([]fs.DirEntry, 0, len(top)+len(base))
	for _, e := range top {
		seen[e.Name()] = true
		entries = append(entries, e)
	}
	for _, e := range base {
		if !seen[e.Name()] {
			entries = append(entries, e)
		}
	}
	slices.SortFunc(entries, func(a, b fs.DirEntry) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return entries, nil
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		s := filepath.ToSlash(path)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "assets/"); ok {
		return after
	}
	return s
}

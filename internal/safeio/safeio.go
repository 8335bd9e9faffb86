// Package safeio reads files that must stay inside one directory, such as
// operator-supplied state definitions.
package safeio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
)

var ErrOutsideRoot = errors.New("safeio: path resolves outside root")

// Dir is a read-only view of a directory. Symlinks are followed only while
// they stay under the root.
type Dir struct {
	root string // absolute, symlink-free
}

// Open binds a Dir to root, which must exist and be a directory.
func Open(root string) (*Dir, error) {
	if strings.TrimSpace(root) == "" {
		return nil, errors.New("safeio: empty root")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	abs, err = filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("safeio: %s is not a directory", root)
	}
	return &Dir{root: abs}, nil
}

func (d *Dir) Root() string { return d.root }

// Glob returns the sorted names of regular files directly under the root
// whose base name matches pattern.
func (d *Dir) Glob(pattern string) ([]string, error) {
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(d.root)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if ok, _ := filepath.Match(pattern, e.Name()); ok {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// ReadFile reads name relative to the root.
func (d *Dir) ReadFile(name string) ([]byte, error) {
	p, err := d.resolve(name)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(p)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("safeio: %s is a directory", name)
	}
	return os.ReadFile(p)
}

func (d *Dir) resolve(name string) (string, error) {
	clean := filepath.Clean(name)
	if clean == "." || filepath.IsAbs(clean) || filepath.VolumeName(clean) != "" {
		return "", fmt.Errorf("safeio: invalid name %q", name)
	}
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", ErrOutsideRoot
	}
	resolved, err := filepath.EvalSymlinks(filepath.Join(d.root, clean))
	if err != nil {
		return "", err
	}
	if !within(resolved, d.root) {
		return "", fmt.Errorf("%w: %s", ErrOutsideRoot, name)
	}
	return resolved, nil
}

func within(path, root string) bool {
	path = filepath.Clean(path)
	root = filepath.Clean(root)
	if runtime.GOOS == "windows" {
		path = strings.ToLower(path)
		root = strings.ToLower(root)
	}
	if path == root {
		return true
	}
	sep := string(os.PathSeparator)
	if !strings.HasSuffix(root, sep) {
		root += sep
	}
	return strings.HasPrefix(path, root)
}

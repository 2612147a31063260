package storage

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/karrick/godirwalk"
	"github.com/pkg/errors"
)

// Filesystem is a Storage implementation backed by a directory of one blob
// per file. It refuses any key containing a path separator to guard
// against traversal outside root.
type Filesystem struct {
	root string
}

// NewFilesystem returns a Filesystem rooted at root.
func NewFilesystem(root string) *Filesystem {
	return &Filesystem{root: root}
}

// Get implements Storage.
func (f *Filesystem) Get(key string) ([]byte, bool) {
	if strings.ContainsRune(key, '/') {
		return nil, false
	}

	data, err := os.ReadFile(filepath.Join(f.root, key))
	if err != nil {
		return nil, false
	}
	return data, true
}

// List implements Storage, non-recursively walking root and matching base
// names against pattern.
func (f *Filesystem) List(pattern string) ([]string, error) {
	var names []string

	err := godirwalk.Walk(f.root, &godirwalk.Options{
		Callback: func(osPathname string, de *godirwalk.Dirent) error {
			if osPathname == f.root {
				return nil
			}
			if de.IsDir() {
				return filepath.SkipDir
			}

			name := filepath.Base(osPathname)
			ok, err := path.Match(pattern, name)
			if err != nil {
				return err
			}
			if ok {
				names = append(names, name)
			}
			return nil
		},
		Unsorted: true,
	})
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "listing %s", f.root)
	}

	return names, nil
}

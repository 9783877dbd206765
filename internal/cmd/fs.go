package cmd

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
)

// FS is a directory whose files can be read and overwritten.
type FS interface {
	fs.FS
	WriteFile(name string, data []byte, perm fs.FileMode) error
}

type dirFS struct {
	fs.FS
	dir string
}

// DirFS returns an [FS] rooted at dir on the local file system.
func DirFS(dir string) FS { //nolint:ireturn
	return &dirFS{FS: os.DirFS(dir), dir: dir}
}

func (d *dirFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if !fs.ValidPath(name) {
		return &fs.PathError{Op: "write", Path: name, Err: fs.ErrInvalid}
	}

	return os.WriteFile(filepath.Join(d.dir, filepath.FromSlash(name)), data, perm)
}

var mdGlob = glob.MustCompile(mdPattern)

// markdownFiles lists the non-hidden regular files in the root of fsys
// matching mdPattern, in lexicographic order.
func markdownFiles(fsys fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, err
	}

	var names []string

	for _, entry := range entries {
		name := entry.Name()

		if entry.IsDir() || strings.HasPrefix(name, ".") || !mdGlob.Match(name) {
			continue
		}

		names = append(names, name)
	}

	sort.Strings(names)

	return names, nil
}

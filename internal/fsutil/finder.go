// Package fsutil provides file system utility functions.
package fsutil

import (
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

// makefileNames are the file names make looks for, in its lookup order.
var makefileNames = []string{"GNUmakefile", "makefile", "Makefile"}

// IsMakefile reports whether name is a conventional Makefile name or carries
// the .mk extension used for included fragments.
func IsMakefile(name string) bool {
	return slices.Contains(makefileNames, name) || strings.HasSuffix(name, ".mk")
}

// FindMakefiles recursively searches root for Makefiles and returns their full
// paths, sorted. Hidden directories are skipped, as is anything matched by a
// .gitignore at root.
func FindMakefiles(root string) ([]string, error) {
	gi := loadGitignore(root)

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") || (gi != nil && gi.MatchesPath(rel)) {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 || !IsMakefile(d.Name()) {
			return nil
		}
		if gi != nil && gi.MatchesPath(rel) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.Sort(files)
	return files, nil
}

func loadGitignore(root string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	return gi
}

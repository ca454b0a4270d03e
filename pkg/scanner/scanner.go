// Package scanner walks a directory tree and produces file descriptors
// plus a list of name-collision duplicates.
package scanner

import (
	"os"
	"path/filepath"
	"strings"
)

// NoExtension is the extension sentinel for files without a usable suffix.
const NoExtension = ".no_extension"

// FileInfo describes one canonical (first-seen) file per base filename.
type FileInfo struct {
	Path  string   // absolute path to the file
	Name  string   // base filename including extension
	Ext   string   // lowercased extension including the dot, or NoExtension
	Words []string // filename stem split on whitespace
}

// Scan lists regular files under root. In recursive mode it descends into
// every subdirectory; otherwise only direct children are visited.
//
// The first file seen with a given base filename becomes a FileInfo; every
// later file sharing that name, anywhere in the tree, lands in the returned
// duplicates list instead. Entries are visited in lexicographic order per
// directory so results are reproducible. Entries that cannot be statted are
// skipped rather than failing the scan.
func Scan(root string, recursive bool) ([]FileInfo, []string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, nil, err
	}

	s := &scan{
		recursive: recursive,
		seen:      make(map[string]bool),
	}
	if err := s.dir(absRoot, true); err != nil {
		return nil, nil, err
	}

	return s.files, s.duplicates, nil
}

type scan struct {
	recursive  bool
	seen       map[string]bool
	files      []FileInfo
	duplicates []string
}

func (s *scan) dir(dir string, top bool) error {
	// os.ReadDir returns entries sorted by filename.
	entries, err := os.ReadDir(dir)
	if err != nil {
		if top {
			return err
		}
		// Unreadable subdirectory: skip it, keep scanning.
		return nil
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		info, err := os.Stat(path)
		if err != nil {
			// Broken symlink or permission error on one entry must not
			// abort the scan.
			continue
		}

		switch {
		case info.Mode().IsRegular():
			s.file(path, entry.Name())
		case info.IsDir() && s.recursive && entry.Type()&os.ModeSymlink == 0:
			if err := s.dir(path, false); err != nil {
				return err
			}
		}
	}

	return nil
}

func (s *scan) file(path, name string) {
	if s.seen[name] {
		s.duplicates = append(s.duplicates, path)
		return
	}

	s.seen[name] = true
	s.files = append(s.files, FileInfo{
		Path:  path,
		Name:  name,
		Ext:   Extension(name),
		Words: strings.Fields(Stem(name)),
	})
}

// Extension returns the lowercased extension of name including the leading
// dot. Dotfiles and names whose suffix after the last dot is empty yield
// NoExtension.
func Extension(name string) string {
	ext := filepath.Ext(name)
	if ext == "" || ext == "." || ext == name {
		return NoExtension
	}

	return strings.ToLower(ext)
}

// Stem returns name with everything from the last dot onward removed.
// A name without a dot is returned unchanged.
func Stem(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[:i]
	}

	return name
}

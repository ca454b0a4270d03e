// Package safepath provides path containment validation so file operations
// never escape the directory being organized.
package safepath

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrPathEscape indicates an attempt to access a path outside the root.
	ErrPathEscape = errors.New("path escapes root directory")
	// ErrSymlinkEscape indicates a symlink resolves outside the root.
	ErrSymlinkEscape = errors.New("symlink target escapes root directory")
	// ErrInvalidRoot indicates the root path is invalid.
	ErrInvalidRoot = errors.New("invalid root directory")

	errCannotRemoveRoot = errors.New("cannot remove root directory")
)

// Validator ensures all paths are contained within a root directory.
type Validator struct {
	root string // absolute, symlink-resolved, cleaned
}

// New creates a Validator for the given root, which must be an existing
// directory.
func New(root string) (*Validator, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRoot, err)
	}

	resolvedRoot, err := filepath.EvalSymlinks(absRoot)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRoot, err)
	}

	cleanRoot := filepath.Clean(resolvedRoot)

	info, err := os.Stat(cleanRoot)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRoot, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory", ErrInvalidRoot)
	}

	return &Validator{root: cleanRoot}, nil
}

// Root returns the absolute path to the root directory.
func (v *Validator) Root() string {
	return v.root
}

// ValidatePath checks that path is contained within root.
func (v *Validator) ValidatePath(path string) error {
	return v.containsPath(path)
}

// SafeRename renames a file or directory only if both endpoints stay
// within root, following any existing symlink components first.
func (v *Validator) SafeRename(oldPath, newPath string) error {
	if err := v.validateForMutation(oldPath); err != nil {
		return fmt.Errorf("source %w: %s", err, oldPath)
	}
	if err := v.validateForMutation(newPath); err != nil {
		return fmt.Errorf("destination %w: %s", err, newPath)
	}

	return os.Rename(oldPath, newPath)
}

// SafeMkdirAll creates a directory (and parents) only within root.
func (v *Validator) SafeMkdirAll(path string) error {
	if err := v.validateForMutation(path); err != nil {
		return fmt.Errorf("%w: %s", err, path)
	}

	return os.MkdirAll(path, 0o755)
}

// SafeRemoveDir removes an empty directory within root. The root itself is
// never removed, and a non-empty directory fails the underlying os.Remove.
func (v *Validator) SafeRemoveDir(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("%w: cannot resolve path", ErrPathEscape)
	}

	if filepath.Clean(absPath) == v.root {
		return errCannotRemoveRoot
	}

	if err := v.validateForMutation(path); err != nil {
		return fmt.Errorf("%w: %s", err, path)
	}

	return os.Remove(path)
}

func (v *Validator) containsPath(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("%w: cannot resolve path", ErrPathEscape)
	}

	if !isSubPath(v.root, filepath.Clean(absPath)) {
		return ErrPathEscape
	}

	return nil
}

// validateForMutation checks containment of the literal path and of the
// nearest existing ancestor after symlink resolution.
func (v *Validator) validateForMutation(path string) error {
	if err := v.containsPath(path); err != nil {
		return err
	}

	resolved, err := resolveExistingPath(path)
	if err != nil {
		return err
	}

	if err := v.containsPath(resolved); err != nil {
		return fmt.Errorf("%w: %s -> %s", ErrSymlinkEscape, path, resolved)
	}

	return nil
}

func resolveExistingPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("cannot resolve path: %w", err)
	}

	resolved, err := filepath.EvalSymlinks(absPath)
	if err == nil {
		return resolved, nil
	}
	if !os.IsNotExist(err) {
		return "", fmt.Errorf("cannot resolve symlinks: %w", err)
	}

	parent := filepath.Dir(absPath)
	if parent == absPath {
		return "", fmt.Errorf("cannot resolve symlinks: %w", err)
	}

	return resolveExistingPath(parent)
}

// isSubPath checks if child is parent or lives under it. Both paths must be
// absolute and clean.
func isSubPath(parent, child string) bool {
	if parent == child {
		return true
	}

	parentWithSep := parent
	if !strings.HasSuffix(parentWithSep, string(filepath.Separator)) {
		parentWithSep += string(filepath.Separator)
	}

	return strings.HasPrefix(child, parentWithSep)
}

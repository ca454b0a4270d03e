// Package mover performs collision-safe moves inside a validated root.
// A destination is never overwritten: when the target name is taken, a
// numeric counter is inserted before the extension and incremented until a
// free name is found.
package mover

import (
	"fmt"
	"os"
	"path/filepath"

	"diro/pkg/safepath"
)

// Mover moves files and directories without overwriting existing targets.
// In dry-run mode nothing touches the filesystem, but destinations chosen
// earlier in the same plan are still claimed so collision naming stays
// consistent with a real run.
type Mover struct {
	validator *safepath.Validator
	dryRun    bool
	claimed   map[string]bool
}

// New creates a Mover bound to the validator's root.
func New(validator *safepath.Validator, dryRun bool) *Mover {
	return &Mover{
		validator: validator,
		dryRun:    dryRun,
		claimed:   make(map[string]bool),
	}
}

// DryRun reports whether the mover plans without mutating the filesystem.
func (m *Mover) DryRun() bool {
	return m.dryRun
}

// MoveFile moves src into destDir keeping its base name. On a name
// collision the destination becomes "<stem>_<N><ext>" with N starting at 1
// and incremented until the name is free. Returns the destination used.
func (m *Mover) MoveFile(src, destDir string) (string, error) {
	name := filepath.Base(src)
	dest := filepath.Join(destDir, name)

	stem, ext := splitName(name)
	for counter := 1; m.taken(dest); counter++ {
		dest = filepath.Join(destDir, fmt.Sprintf("%s_%d%s", stem, counter, ext))
	}

	return m.move(src, dest)
}

// MoveFileWithOrdinal moves src into destDir as "<prefix><ordinal>_<name>".
// On a name collision the ordinal-derived counter is incremented until the
// destination is free.
func (m *Mover) MoveFileWithOrdinal(src, destDir, prefix string, ordinal int) (string, error) {
	name := filepath.Base(src)

	counter := ordinal
	dest := filepath.Join(destDir, fmt.Sprintf("%s%d_%s", prefix, counter, name))
	for m.taken(dest) {
		counter++
		dest = filepath.Join(destDir, fmt.Sprintf("%s%d_%s", prefix, counter, name))
	}

	return m.move(src, dest)
}

// MoveDir moves the directory src into destDir keeping its base name.
// Unlike file moves there is no renaming fallback: an occupied destination
// is an error.
func (m *Mover) MoveDir(src, destDir string) (string, error) {
	dest := filepath.Join(destDir, filepath.Base(src))
	if m.taken(dest) {
		return "", fmt.Errorf("destination already exists: %s", dest)
	}

	return m.move(src, dest)
}

func (m *Mover) move(src, dest string) (string, error) {
	m.claimed[dest] = true

	if m.dryRun {
		return dest, nil
	}

	if err := m.validator.SafeRename(src, dest); err != nil {
		return "", err
	}

	return dest, nil
}

func (m *Mover) taken(dest string) bool {
	if m.claimed[dest] {
		return true
	}

	_, err := os.Lstat(dest)
	return err == nil
}

// splitName splits a filename into stem and extension. Dotfiles and names
// with an empty suffix after the last dot count as having no extension.
func splitName(name string) (stem, ext string) {
	ext = filepath.Ext(name)
	if ext == "." || ext == name {
		ext = ""
	}

	return name[:len(name)-len(ext)], ext
}

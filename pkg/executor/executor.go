// Package executor applies a grouping suggestion to the filesystem:
// destination folders are created idempotently, files are moved with
// collision-safe naming, and emptied directories are optionally reconciled
// afterwards. One failing move never aborts the rest of the plan.
package executor

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"diro/pkg/grouping"
	"diro/pkg/mover"
	"diro/pkg/progress"
	"diro/pkg/safepath"
)

// Options configures one Execute call.
type Options struct {
	// Root is the directory the suggestion applies to. When empty it is
	// derived from the parent directory of the first path in the first
	// group.
	Root string
	// Recursive mirrors the scan mode; empty-directory reconciliation only
	// runs for recursive plans.
	Recursive bool
	// CleanupEmpty enables the empty-directory pass after the moves.
	CleanupEmpty bool
	// DeleteEmpty removes empty directories instead of relocating them
	// under EmptyFoldersLabel.
	DeleteEmpty bool
	// DryRun plans all moves without touching the filesystem.
	DryRun bool
	// EmptyFoldersLabel names the folder receiving relocated empty
	// directories, e.g. "Empty Folders".
	EmptyFoldersLabel string
	// OnProgress receives per-file updates during the move pass.
	OnProgress progress.Callback
}

// MoveOperation records the outcome of one file move.
type MoveOperation struct {
	SourcePath string
	DestPath   string
	Label      string
	Error      error
}

// DirOperation records the outcome of one empty-directory reconciliation.
type DirOperation struct {
	Path    string
	NewPath string // set when the directory was relocated
	Deleted bool
	Error   error
}

// Result contains the outcome of an Execute call.
type Result struct {
	Operations       []MoveOperation
	EmptyDirs        []DirOperation
	TotalFiles       int
	MovedCount       int
	ErrorCount       int
	CreatedDirsCount int
	EmptyDirCount    int // empty directories removed or relocated
}

// Execute applies the suggestion. Per-file failures are recorded in the
// result and the plan continues; only a missing or invalid root fails the
// whole call.
func Execute(sug *grouping.Suggestion, opts Options) (Result, error) {
	root := opts.Root
	if root == "" {
		root = deriveRoot(sug)
		if root == "" {
			return Result{}, errors.New("no root directory and empty suggestion")
		}
	}

	validator, err := safepath.New(root)
	if err != nil {
		return Result{}, err
	}

	e := &execution{
		opts:      opts,
		root:      validator.Root(),
		validator: validator,
		mover:     mover.New(validator, opts.DryRun),
	}

	result := e.moveFiles(sug)

	if opts.Recursive && opts.CleanupEmpty && !opts.DryRun {
		result.EmptyDirs = e.reconcileEmptyDirs()
		for _, op := range result.EmptyDirs {
			if op.Error == nil {
				result.EmptyDirCount++
			} else {
				result.ErrorCount++
			}
		}
	}

	return result, nil
}

type execution struct {
	opts      Options
	root      string
	validator *safepath.Validator
	mover     *mover.Mover
}

func (e *execution) moveFiles(sug *grouping.Suggestion) Result {
	result := Result{TotalFiles: sug.TotalPaths()}
	result.Operations = make([]MoveOperation, 0, result.TotalFiles)

	processed := 0
	for _, label := range sug.Labels() {
		destDir, err := e.ensureDestDir(label, &result)
		for _, src := range sug.Paths(label) {
			processed++

			op := MoveOperation{SourcePath: src, Label: label}
			if err != nil {
				op.Error = err
			} else {
				op.DestPath, op.Error = e.mover.MoveFile(src, destDir)
			}

			if op.Error != nil {
				result.ErrorCount++
			} else {
				result.MovedCount++
			}
			result.Operations = append(result.Operations, op)

			progress.Emit(e.opts.OnProgress, processed, result.TotalFiles)
		}
	}

	return result
}

// ensureDestDir resolves and creates the destination for a label. A label
// equal to the root means "move directly into the root, no new folder".
// Only directories that did not already exist count as created.
func (e *execution) ensureDestDir(label string, result *Result) (string, error) {
	destDir := label
	isNew := false
	if !e.isRootLabel(label) {
		destDir = filepath.Join(e.root, label)
		isNew = !dirExists(destDir)
	}

	if !e.opts.DryRun {
		if err := e.validator.SafeMkdirAll(destDir); err != nil {
			return "", fmt.Errorf("cannot create destination folder: %w", err)
		}
	}

	if isNew {
		result.CreatedDirsCount++
	}

	return destDir, nil
}

func dirExists(dir string) bool {
	info, err := os.Stat(dir)
	return err == nil && info.IsDir()
}

// isRootLabel reports whether the label names the effective root, before or
// after symlink resolution.
func (e *execution) isRootLabel(label string) bool {
	clean := filepath.Clean(label)
	if clean == e.root {
		return true
	}

	return e.opts.Root != "" && clean == filepath.Clean(e.opts.Root)
}

// reconcileEmptyDirs walks the tree bottom-up and deletes or relocates
// every directory (other than the root) left with zero entries. The pass
// is skipped entirely, creating nothing, when no empty directory exists.
func (e *execution) reconcileEmptyDirs() []DirOperation {
	dirs := e.collectDirs()

	found := false
	for i := len(dirs) - 1; i >= 0; i-- {
		if isEmptyDir(dirs[i]) {
			found = true
			break
		}
	}
	if !found {
		return nil
	}

	if e.opts.DeleteEmpty {
		return e.deleteEmptyDirs(dirs)
	}

	return e.relocateEmptyDirs(dirs)
}

func (e *execution) deleteEmptyDirs(dirs []string) []DirOperation {
	var ops []DirOperation

	// Children first, so a parent emptied by removing its child is caught
	// in the same pass.
	for i := len(dirs) - 1; i >= 0; i-- {
		dir := dirs[i]
		if !isEmptyDir(dir) {
			continue
		}

		op := DirOperation{Path: dir, Deleted: true}
		if err := e.validator.SafeRemoveDir(dir); err != nil {
			op.Deleted = false
			op.Error = fmt.Errorf("cannot delete empty folder: %w", err)
		}
		ops = append(ops, op)
	}

	return ops
}

func (e *execution) relocateEmptyDirs(dirs []string) []DirOperation {
	emptyRoot := filepath.Join(e.root, e.opts.EmptyFoldersLabel)
	if err := e.validator.SafeMkdirAll(emptyRoot); err != nil {
		return []DirOperation{{Path: emptyRoot, Error: fmt.Errorf("cannot create empty-folders directory: %w", err)}}
	}

	var ops []DirOperation
	for i := len(dirs) - 1; i >= 0; i-- {
		dir := dirs[i]
		if dir == emptyRoot || isSubDir(emptyRoot, dir) || !isEmptyDir(dir) {
			continue
		}

		op := DirOperation{Path: dir}
		op.NewPath, op.Error = e.mover.MoveDir(dir, emptyRoot)
		if op.Error != nil {
			op.Error = fmt.Errorf("cannot relocate empty folder: %w", op.Error)
		}
		ops = append(ops, op)
	}

	return ops
}

// collectDirs lists every directory under the root (excluded) in walk
// order, parents before children. Unreadable entries are skipped.
func (e *execution) collectDirs() []string {
	var dirs []string

	_ = filepath.WalkDir(e.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil //nolint:nilerr // continue walking despite errors
		}
		if d.IsDir() && path != e.root {
			dirs = append(dirs, path)
		}
		return nil
	})

	return dirs
}

func isEmptyDir(dir string) bool {
	entries, err := os.ReadDir(dir)
	return err == nil && len(entries) == 0
}

// isSubDir reports whether child lives under parent (or is parent itself).
func isSubDir(parent, child string) bool {
	rel, err := filepath.Rel(parent, child)
	if err != nil {
		return false
	}

	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// deriveRoot falls back to the parent directory of the first path in the
// first group when no explicit root was supplied.
func deriveRoot(sug *grouping.Suggestion) string {
	for _, label := range sug.Labels() {
		paths := sug.Paths(label)
		if len(paths) > 0 {
			return filepath.Dir(paths[0])
		}
	}

	return ""
}

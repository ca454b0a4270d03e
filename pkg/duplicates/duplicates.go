// Package duplicates relocates name-collision duplicates reported by the
// scanner into a dedicated folder, optionally re-validating them by content
// digest first.
package duplicates

import (
	"fmt"
	"os"
	"path/filepath"

	"diro/pkg/hasher"
	"diro/pkg/mover"
	"diro/pkg/progress"
	"diro/pkg/safepath"
)

// Options configures one Resolve call.
type Options struct {
	// Root is the scan root; the duplicates folder is created under it.
	Root string
	// CheckContents re-derives genuine duplicates by content digest: only
	// members of digest groups with two or more files are moved. Zero-byte
	// files are never hashed and never moved in this mode.
	CheckContents bool
	// DryRun plans all moves without touching the filesystem.
	DryRun bool
	// FolderName names the destination folder, e.g. "Duplicates".
	FolderName string
	// FilePrefix prefixes relocated filenames, e.g. "Dupe".
	FilePrefix string
	// OnProgress receives per-file updates during the move pass.
	OnProgress progress.Callback
}

// MoveOperation records the outcome for one duplicate candidate.
type MoveOperation struct {
	SourcePath    string
	DestPath      string
	Digest        string // set in content-check mode for hashed candidates
	Excluded      bool   // dropped by content refinement, not moved
	ExcludeReason string
	Error         error
}

// Result contains the outcome of a Resolve call.
type Result struct {
	Operations      []MoveOperation
	TotalCandidates int
	MovedCount      int
	ExcludedCount   int
	ErrorCount      int
}

// Resolve moves the duplicate candidates into the duplicates folder with
// deterministic "<prefix><ordinal>_<name>" naming; on a destination
// collision the ordinal-derived counter is incremented until free.
//
// An empty candidate list is a no-op and creates nothing. Hash failures in
// content-check mode abort with the partial result; individual move
// failures are recorded and the loop continues.
func Resolve(candidates []string, opts Options) (Result, error) {
	result := Result{TotalCandidates: len(candidates)}
	if len(candidates) == 0 {
		return result, nil
	}

	validator, err := safepath.New(opts.Root)
	if err != nil {
		return result, err
	}

	destDir := filepath.Join(validator.Root(), opts.FolderName)
	if !opts.DryRun {
		if err := validator.SafeMkdirAll(destDir); err != nil {
			return result, fmt.Errorf("cannot create duplicates folder: %w", err)
		}
	}

	confirmed := candidates
	digests := make(map[string]string)
	if opts.CheckContents {
		confirmed, err = refineByContent(candidates, digests, &result)
		if err != nil {
			return result, err
		}
	}

	m := mover.New(validator, opts.DryRun)
	for i, src := range confirmed {
		op := MoveOperation{SourcePath: src, Digest: digests[src]}
		op.DestPath, op.Error = m.MoveFileWithOrdinal(src, destDir, opts.FilePrefix, i)

		if op.Error != nil {
			result.ErrorCount++
		} else {
			result.MovedCount++
		}
		result.Operations = append(result.Operations, op)

		progress.Emit(opts.OnProgress, i+1, len(confirmed))
	}

	return result, nil
}

// refineByContent keeps only candidates whose digest is shared by at least
// one other candidate. Excluded candidates are recorded in the result.
// Candidate and group order are preserved so downstream naming stays
// deterministic.
func refineByContent(candidates []string, digests map[string]string, result *Result) ([]string, error) {
	byDigest := make(map[string][]string)
	var digestOrder []string
	excluded := make(map[string]string) // path -> reason

	for _, path := range candidates {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("cannot stat duplicate candidate: %w", err)
		}
		if info.Size() == 0 {
			excluded[path] = "zero-byte file"
			continue
		}

		digest, err := hasher.Hash(path)
		if err != nil {
			return nil, err
		}
		digests[path] = digest

		if _, ok := byDigest[digest]; !ok {
			digestOrder = append(digestOrder, digest)
		}
		byDigest[digest] = append(byDigest[digest], path)
	}

	var confirmed []string
	for _, digest := range digestOrder {
		group := byDigest[digest]
		if len(group) > 1 {
			confirmed = append(confirmed, group...)
			continue
		}
		excluded[group[0]] = "unique content"
	}

	for _, path := range candidates {
		reason, ok := excluded[path]
		if !ok {
			continue
		}
		result.Operations = append(result.Operations, MoveOperation{
			SourcePath:    path,
			Digest:        digests[path],
			Excluded:      true,
			ExcludeReason: reason,
		})
		result.ExcludedCount++
	}

	return confirmed, nil
}

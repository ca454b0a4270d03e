package duplicates

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diro/internal/testutil"
)

func options(root string) Options {
	return Options{
		Root:       root,
		FolderName: "Duplicates",
		FilePrefix: "Dupe",
	}
}

func TestResolve_EmptyInputCreatesNothing(t *testing.T) {
	tmpDir := t.TempDir()

	result, err := Resolve(nil, options(tmpDir))
	require.NoError(t, err)

	assert.Equal(t, 0, result.TotalCandidates)
	assert.NoDirExists(t, filepath.Join(tmpDir, "Duplicates"))
}

func TestResolve_TrustsNameCollisionsWithoutContentCheck(t *testing.T) {
	tmpDir := t.TempDir()
	dup1 := filepath.Join(tmpDir, "a", "notes.txt")
	dup2 := filepath.Join(tmpDir, "b", "notes.txt")
	testutil.CreateFile(t, dup1, "completely different")
	testutil.CreateFile(t, dup2, "contents entirely")

	result, err := Resolve([]string{dup1, dup2}, options(tmpDir))
	require.NoError(t, err)

	assert.Equal(t, 2, result.MovedCount)
	assert.FileExists(t, filepath.Join(tmpDir, "Duplicates", "Dupe0_notes.txt"))
	assert.FileExists(t, filepath.Join(tmpDir, "Duplicates", "Dupe1_notes.txt"))
}

func TestResolve_ContentCheckMovesOnlyConfirmedDuplicates(t *testing.T) {
	tmpDir := t.TempDir()
	same1 := filepath.Join(tmpDir, "a", "photo.jpg")
	same2 := filepath.Join(tmpDir, "b", "photo.jpg")
	testutil.CreateFile(t, same1, "identical bytes")
	testutil.CreateFile(t, same2, "identical bytes")

	opts := options(tmpDir)
	opts.CheckContents = true

	result, err := Resolve([]string{same1, same2}, opts)
	require.NoError(t, err)

	assert.Equal(t, 2, result.MovedCount)
	assert.FileExists(t, filepath.Join(tmpDir, "Duplicates", "Dupe0_photo.jpg"))
	assert.FileExists(t, filepath.Join(tmpDir, "Duplicates", "Dupe1_photo.jpg"))
}

func TestResolve_ContentCheckKeepsDifferingFiles(t *testing.T) {
	tmpDir := t.TempDir()
	diff1 := filepath.Join(tmpDir, "a", "doc.txt")
	diff2 := filepath.Join(tmpDir, "b", "doc.txt")
	testutil.CreateFile(t, diff1, "first version")
	testutil.CreateFile(t, diff2, "second version")

	opts := options(tmpDir)
	opts.CheckContents = true

	result, err := Resolve([]string{diff1, diff2}, opts)
	require.NoError(t, err)

	assert.Equal(t, 0, result.MovedCount)
	assert.Equal(t, 2, result.ExcludedCount)
	assert.FileExists(t, diff1)
	assert.FileExists(t, diff2)

	// The folder is created before refinement and stays empty.
	assert.DirExists(t, filepath.Join(tmpDir, "Duplicates"))
	entries, err := os.ReadDir(filepath.Join(tmpDir, "Duplicates"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestResolve_ContentCheckNeverMovesZeroByteFiles(t *testing.T) {
	tmpDir := t.TempDir()
	empty1 := filepath.Join(tmpDir, "a", "empty.dat")
	empty2 := filepath.Join(tmpDir, "b", "empty.dat")
	testutil.CreateFile(t, empty1, "")
	testutil.CreateFile(t, empty2, "")

	opts := options(tmpDir)
	opts.CheckContents = true

	result, err := Resolve([]string{empty1, empty2}, opts)
	require.NoError(t, err)

	// Zero-byte files are never hashed, so even matching pairs stay put.
	assert.Equal(t, 0, result.MovedCount)
	assert.Equal(t, 2, result.ExcludedCount)
	assert.FileExists(t, empty1)
	assert.FileExists(t, empty2)
}

func TestResolve_OrdinalCollisionIncrementsCounter(t *testing.T) {
	tmpDir := t.TempDir()
	testutil.CreateFile(t, filepath.Join(tmpDir, "Duplicates", "Dupe0_a.txt"), "occupied")
	dup := filepath.Join(tmpDir, "sub", "a.txt")
	testutil.CreateFile(t, dup, "x")

	result, err := Resolve([]string{dup}, options(tmpDir))
	require.NoError(t, err)

	assert.Equal(t, 1, result.MovedCount)
	assert.FileExists(t, filepath.Join(tmpDir, "Duplicates", "Dupe1_a.txt"))
}

func TestResolve_MissingCandidateIsPerFileFailure(t *testing.T) {
	tmpDir := t.TempDir()
	real := filepath.Join(tmpDir, "sub", "a.txt")
	testutil.CreateFile(t, real, "x")

	result, err := Resolve([]string{filepath.Join(tmpDir, "gone.txt"), real}, options(tmpDir))
	require.NoError(t, err)

	assert.Equal(t, 1, result.ErrorCount)
	assert.Equal(t, 1, result.MovedCount)
	assert.FileExists(t, filepath.Join(tmpDir, "Duplicates", "Dupe1_a.txt"))
}

func TestResolve_ContentCheckMissingCandidatePropagates(t *testing.T) {
	tmpDir := t.TempDir()

	opts := options(tmpDir)
	opts.CheckContents = true

	_, err := Resolve([]string{filepath.Join(tmpDir, "gone.txt")}, opts)
	assert.Error(t, err)
}

func TestResolve_DryRunMovesNothing(t *testing.T) {
	tmpDir := t.TempDir()
	dup := filepath.Join(tmpDir, "sub", "a.txt")
	testutil.CreateFile(t, dup, "x")

	opts := options(tmpDir)
	opts.DryRun = true

	result, err := Resolve([]string{dup}, opts)
	require.NoError(t, err)

	assert.Equal(t, 1, result.MovedCount)
	assert.FileExists(t, dup)
	assert.NoDirExists(t, filepath.Join(tmpDir, "Duplicates"))
}

package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diro/internal/testutil"
	"diro/pkg/usecase"
)

func setCommandGlobals(t *testing.T, dryRunValue, verboseValue, recursiveValue bool) {
	t.Helper()

	prevDryRun := dryRun
	prevVerbose := verbose
	prevConfigPath := configPath
	prevRecursive := recursive
	prevCheckContents := checkContents
	prevCleanupEmpty := cleanupEmpty
	prevDeleteEmpty := deleteEmpty
	prevOutputFormat := outputFormat

	dryRun = dryRunValue
	verbose = verboseValue
	configPath = ""
	recursive = recursiveValue
	checkContents = false
	cleanupEmpty = false
	deleteEmpty = false
	outputFormat = "summary"

	t.Cleanup(func() {
		dryRun = prevDryRun
		verbose = prevVerbose
		configPath = prevConfigPath
		recursive = prevRecursive
		checkContents = prevCheckContents
		cleanupEmpty = prevCleanupEmpty
		deleteEmpty = prevDeleteEmpty
		outputFormat = prevOutputFormat
	})
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	oldStdout := os.Stdout
	reader, writer, err := os.Pipe()
	require.NoError(t, err)

	os.Stdout = writer
	defer func() {
		os.Stdout = oldStdout
	}()

	fn()

	require.NoError(t, writer.Close())
	out, err := io.ReadAll(reader)
	require.NoError(t, err)
	require.NoError(t, reader.Close())

	return string(out)
}

func TestRunOrganize_Type_DryRun_OutputSummary(t *testing.T) {
	tmpDir := t.TempDir()
	testutil.CreateFile(t, filepath.Join(tmpDir, "a.txt"), "a")
	testutil.CreateFile(t, filepath.Join(tmpDir, "b.txt"), "b")
	testutil.CreateFile(t, filepath.Join(tmpDir, "c.png"), "c")

	setCommandGlobals(t, true, false, false)

	output := captureStdout(t, func() {
		err := runOrganize("TYPE", usecase.StrategyType, tmpDir)
		require.NoError(t, err)
	})

	assert.Contains(t, output, "=== DRY RUN - no changes will be made ===")
	assert.Contains(t, output, "Command: TYPE")
	assert.Contains(t, output, "MOVE: "+filepath.Join(tmpDir, "a.txt"))
	assert.Contains(t, output, "  TO: "+filepath.Join(tmpDir, "Type txt", "a.txt"))
	assert.Contains(t, output, "=== Summary ===")
	assert.Contains(t, output, "Total files:     3")
	assert.Contains(t, output, "Moved:           3")
	assert.Contains(t, output, "Errors:          0")
	assert.Contains(t, output, "Dirs created:    2")
	assert.Contains(t, output, "Run without --dry-run to apply changes.")

	assert.FileExists(t, filepath.Join(tmpDir, "a.txt"), "dry-run must not move files")
	assert.NoDirExists(t, filepath.Join(tmpDir, "Type txt"), "dry-run must not create folders")
}

func TestRunOrganize_OneFolder_MovesFiles(t *testing.T) {
	tmpDir := t.TempDir()
	testutil.CreateFile(t, filepath.Join(tmpDir, "a.txt"), "a")
	testutil.CreateFile(t, filepath.Join(tmpDir, "b.png"), "b")

	setCommandGlobals(t, false, false, false)

	output := captureStdout(t, func() {
		err := runOrganize("ONE FOLDER", usecase.StrategyOneFolder, tmpDir)
		require.NoError(t, err)
	})

	assert.Contains(t, output, "Command: ONE FOLDER")
	assert.Contains(t, output, "Moved:           2")
	assert.NotContains(t, output, "DRY RUN")

	assert.FileExists(t, filepath.Join(tmpDir, "One Folder", "a.txt"))
	assert.FileExists(t, filepath.Join(tmpDir, "One Folder", "b.png"))
}

func TestRunDuplicates_DryRun_OutputSummary(t *testing.T) {
	tmpDir := t.TempDir()
	testutil.CreateFile(t, filepath.Join(tmpDir, "a.txt"), "first")
	testutil.CreateFile(t, filepath.Join(tmpDir, "sub", "a.txt"), "second")

	setCommandGlobals(t, true, false, true)

	output := captureStdout(t, func() {
		err := runDuplicates(nil, []string{tmpDir})
		require.NoError(t, err)
	})

	assert.Contains(t, output, "=== DRY RUN - no changes will be made ===")
	assert.Contains(t, output, "Command: DUPLICATES")
	assert.Contains(t, output, "MOVE: "+filepath.Join(tmpDir, "sub", "a.txt"))
	assert.Contains(t, output, "Candidates:      1")
	assert.Contains(t, output, "Moved:           1")
	assert.Contains(t, output, "Kept in place:   0")
	assert.Contains(t, output, "Errors:          0")

	assert.FileExists(t, filepath.Join(tmpDir, "sub", "a.txt"), "dry-run must not move files")
	assert.NoDirExists(t, filepath.Join(tmpDir, "Duplicates"), "dry-run must not create folders")
}

func TestRunAnalyze_OutputSummary(t *testing.T) {
	tmpDir := t.TempDir()
	testutil.CreateFile(t, filepath.Join(tmpDir, "a.txt"), "a")
	testutil.CreateFile(t, filepath.Join(tmpDir, "b.txt"), "b")
	testutil.CreateFile(t, filepath.Join(tmpDir, "c.png"), "c")

	setCommandGlobals(t, false, false, false)

	output := captureStdout(t, func() {
		err := runAnalyze(nil, []string{tmpDir})
		require.NoError(t, err)
	})

	assert.Contains(t, output, "Analysis Results of 3 Total Files (Top-Level Only):")
	assert.Contains(t, output, "2 .txt file(s)")
	assert.Contains(t, output, "1 .png file(s)")
	assert.Contains(t, output, "Organization Options:")
	assert.Contains(t, output, "Recommendation:")

	assert.FileExists(t, filepath.Join(tmpDir, "a.txt"), "analyze must not move files")
}

func TestRunAnalyze_JSONFormat(t *testing.T) {
	tmpDir := t.TempDir()
	testutil.CreateFile(t, filepath.Join(tmpDir, "a.txt"), "a")

	setCommandGlobals(t, false, false, false)
	outputFormat = "json"

	output := captureStdout(t, func() {
		err := runAnalyze(nil, []string{tmpDir})
		require.NoError(t, err)
	})

	assert.Contains(t, output, `"total_files": 1`)
	assert.Contains(t, output, `"recommendation"`)
}

func TestRunOrganize_ConfigOverridesNaming(t *testing.T) {
	tmpDir := t.TempDir()
	testutil.CreateFile(t, filepath.Join(tmpDir, "a.txt"), "a")
	testutil.CreateFile(t, filepath.Join(tmpDir, "b.txt"), "b")

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	testutil.CreateFile(t, cfgPath, "naming:\n  type_prefix: \"Kind \"\n")

	setCommandGlobals(t, false, false, false)
	configPath = cfgPath

	captureStdout(t, func() {
		err := runOrganize("TYPE", usecase.StrategyType, tmpDir)
		require.NoError(t, err)
	})

	assert.FileExists(t, filepath.Join(tmpDir, "Kind txt", "a.txt"))
}

func TestRunOrganize_InvalidTargetFails(t *testing.T) {
	setCommandGlobals(t, false, false, false)

	err := runOrganize("TYPE", usecase.StrategyType, filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

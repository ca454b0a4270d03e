package grouping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diro/pkg/scanner"
)

func fileFixture(path, name, ext string) scanner.FileInfo {
	return scanner.FileInfo{Path: path, Name: name, Ext: ext}
}

func newByType(recursive bool, root string) *ByType {
	return &ByType{
		Recursive:  recursive,
		Root:       root,
		TypePrefix: "Type ",
		NoExtLabel: "No Extension",
	}
}

func TestByType_NonRecursive_LabelsEveryExtension(t *testing.T) {
	files := []scanner.FileInfo{
		fileFixture("/data/report.txt", "report.txt", ".txt"),
		fileFixture("/data/report_v2.txt", "report_v2.txt", ".txt"),
		fileFixture("/data/image.png", "image.png", ".png"),
	}

	sug, err := newByType(false, "/data").Group(files)
	require.NoError(t, err)

	assert.Equal(t, []string{"Type txt", "Type png"}, sug.Labels())
	assert.Equal(t, []string{"/data/report.txt", "/data/report_v2.txt"}, sug.Paths("Type txt"))
	assert.Equal(t, []string{"/data/image.png"}, sug.Paths("Type png"))
}

func TestByType_NonRecursive_SingletonsStillLabeled(t *testing.T) {
	files := []scanner.FileInfo{
		fileFixture("/data/only.pdf", "only.pdf", ".pdf"),
	}

	sug, err := newByType(false, "/data").Group(files)
	require.NoError(t, err)

	assert.Equal(t, []string{"Type pdf"}, sug.Labels())
}

func TestByType_Recursive_SingletonsFoldIntoRoot(t *testing.T) {
	files := []scanner.FileInfo{
		fileFixture("/data/a.txt", "a.txt", ".txt"),
		fileFixture("/data/sub/b.txt", "b.txt", ".txt"),
		fileFixture("/data/sub/only.pdf", "only.pdf", ".pdf"),
		fileFixture("/data/lone.mp3", "lone.mp3", ".mp3"),
	}

	sug, err := newByType(true, "/data").Group(files)
	require.NoError(t, err)

	assert.Equal(t, []string{"Type txt", "/data"}, sug.Labels())
	assert.Equal(t, []string{"/data/a.txt", "/data/sub/b.txt"}, sug.Paths("Type txt"))
	assert.Equal(t, []string{"/data/sub/only.pdf", "/data/lone.mp3"}, sug.Paths("/data"))
}

func TestByType_NoExtensionLabel(t *testing.T) {
	files := []scanner.FileInfo{
		fileFixture("/data/Makefile", "Makefile", scanner.NoExtension),
		fileFixture("/data/LICENSE", "LICENSE", scanner.NoExtension),
	}

	sug, err := newByType(false, "/data").Group(files)
	require.NoError(t, err)

	assert.Equal(t, []string{"No Extension"}, sug.Labels())
	assert.Len(t, sug.Paths("No Extension"), 2)
}

func TestByType_PartitionsInputExactly(t *testing.T) {
	files := []scanner.FileInfo{
		fileFixture("/d/a.txt", "a.txt", ".txt"),
		fileFixture("/d/b.png", "b.png", ".png"),
		fileFixture("/d/c.txt", "c.txt", ".txt"),
		fileFixture("/d/Makefile", "Makefile", scanner.NoExtension),
	}

	for _, recursive := range []bool{false, true} {
		sug, err := newByType(recursive, "/d").Group(files)
		require.NoError(t, err)

		seen := make(map[string]int)
		for _, label := range sug.Labels() {
			for _, path := range sug.Paths(label) {
				seen[path]++
			}
		}

		require.Len(t, seen, len(files), "recursive=%v", recursive)
		for _, f := range files {
			assert.Equal(t, 1, seen[f.Path], "recursive=%v path=%s", recursive, f.Path)
		}
	}
}

func TestByType_EmptyInput(t *testing.T) {
	sug, err := newByType(false, "/data").Group(nil)
	require.NoError(t, err)
	assert.True(t, sug.Empty())
}

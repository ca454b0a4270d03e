package grouping

import "diro/pkg/scanner"

// Consolidate proposes moving every file into a single folder.
type Consolidate struct {
	Label string // e.g. "One Folder"
}

// Name implements Strategy.
func (c *Consolidate) Name() string { return "One Folder" }

// Group implements Strategy. An empty input yields an empty suggestion; any
// other input yields exactly one group holding every path.
func (c *Consolidate) Group(files []scanner.FileInfo) (*Suggestion, error) {
	s := NewSuggestion()
	if len(files) == 0 {
		return s, nil
	}

	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = f.Path
	}
	s.Add(c.Label, paths...)

	return s, nil
}

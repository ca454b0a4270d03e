package grouping

import "diro/pkg/scanner"

// ByType groups files by extension. Labels are "<TypePrefix><ext without
// dot>" or NoExtLabel for files lacking an extension.
//
// In recursive mode, extensions with a single file are folded into one
// group keyed by the scan root itself: a recursive scan surfaces many
// incidental one-off extensions that do not warrant a folder of their own.
// In non-recursive mode every extension gets a labeled group, singletons
// included.
type ByType struct {
	Recursive  bool
	Root       string // scan root; label for folded singletons in recursive mode
	TypePrefix string // e.g. "Type "
	NoExtLabel string // e.g. "No Extension"
}

// Name implements Strategy.
func (t *ByType) Name() string { return "Type" }

// Group implements Strategy. Every input path appears in exactly one output
// group.
func (t *ByType) Group(files []scanner.FileInfo) (*Suggestion, error) {
	byExt := make(map[string][]string)
	var extOrder []string

	for _, f := range files {
		if _, ok := byExt[f.Ext]; !ok {
			extOrder = append(extOrder, f.Ext)
		}
		byExt[f.Ext] = append(byExt[f.Ext], f.Path)
	}

	s := NewSuggestion()
	for _, ext := range extOrder {
		paths := byExt[ext]
		if t.Recursive && t.Root != "" && len(paths) == 1 {
			s.Add(t.Root, paths[0])
			continue
		}
		s.Add(t.label(ext), paths...)
	}

	return s, nil
}

func (t *ByType) label(ext string) string {
	if ext == scanner.NoExtension {
		return t.NoExtLabel
	}

	return t.TypePrefix + ext[1:]
}

// Package reporter builds and renders the analysis view of a scan: the
// per-extension breakdown, the duplicate list, a preview of every grouping
// suggestion and a recommendation which strategy fits best.
package reporter

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"diro/pkg/grouping"
	"diro/pkg/scanner"
)

// OutputFormat selects how an analysis is rendered.
type OutputFormat string

// Supported output formats.
const (
	FormatSummary OutputFormat = "summary"
	FormatJSON    OutputFormat = "json"
	FormatYAML    OutputFormat = "yaml"
)

// sampleLimit is the number of example filenames shown per group.
const sampleLimit = 2

// NamedSuggestion pairs a strategy name with its suggestion.
type NamedSuggestion struct {
	Name       string
	Suggestion *grouping.Suggestion
}

// ExtensionCount is the number of scanned files sharing one extension.
type ExtensionCount struct {
	Extension string `json:"extension" yaml:"extension"`
	Count     int    `json:"count" yaml:"count"`
}

// GroupPreview summarizes one suggested group.
type GroupPreview struct {
	Label         string   `json:"label" yaml:"label"`
	FileCount     int      `json:"file_count" yaml:"file_count"`
	Samples       []string `json:"samples" yaml:"samples"`
	MainDirectory bool     `json:"main_directory,omitempty" yaml:"main_directory,omitempty"`
}

// StrategyPreview summarizes one strategy's suggestion.
type StrategyPreview struct {
	Name         string         `json:"name" yaml:"name"`
	GroupCount   int            `json:"group_count" yaml:"group_count"` // excludes the main-directory group
	LargestGroup int            `json:"largest_group" yaml:"largest_group"`
	Groups       []GroupPreview `json:"groups" yaml:"groups"`
}

// Analysis is the full result of analyzing one directory.
type Analysis struct {
	Root           string            `json:"root" yaml:"root"`
	Recursive      bool              `json:"recursive" yaml:"recursive"`
	TotalFiles     int               `json:"total_files" yaml:"total_files"`
	UniqueFiles    int               `json:"unique_files" yaml:"unique_files"`
	Duplicates     []string          `json:"duplicates,omitempty" yaml:"duplicates,omitempty"`
	Extensions     []ExtensionCount  `json:"extensions" yaml:"extensions"`
	Strategies     []StrategyPreview `json:"strategies,omitempty" yaml:"strategies,omitempty"`
	Recommendation string            `json:"recommendation" yaml:"recommendation"`
}

// Build assembles an Analysis from scan output and strategy suggestions.
func Build(root string, recursive bool, files []scanner.FileInfo, duplicates []string, suggestions []NamedSuggestion) Analysis {
	a := Analysis{
		Root:        root,
		Recursive:   recursive,
		TotalFiles:  len(files) + len(duplicates),
		UniqueFiles: len(files),
		Duplicates:  duplicates,
		Extensions:  countExtensions(files),
	}

	for _, ns := range suggestions {
		a.Strategies = append(a.Strategies, previewStrategy(root, ns))
	}

	a.Recommendation = recommend(len(files), a.Strategies)

	return a
}

func countExtensions(files []scanner.FileInfo) []ExtensionCount {
	counts := make(map[string]int)
	for _, f := range files {
		counts[f.Ext]++
	}

	exts := make([]string, 0, len(counts))
	for ext := range counts {
		exts = append(exts, ext)
	}
	sort.Strings(exts)

	result := make([]ExtensionCount, 0, len(exts))
	for _, ext := range exts {
		result = append(result, ExtensionCount{Extension: ext, Count: counts[ext]})
	}

	return result
}

func previewStrategy(root string, ns NamedSuggestion) StrategyPreview {
	p := StrategyPreview{Name: ns.Name}

	for _, label := range ns.Suggestion.Labels() {
		paths := ns.Suggestion.Paths(label)

		samples := make([]string, 0, sampleLimit)
		for _, path := range paths[:min(len(paths), sampleLimit)] {
			samples = append(samples, filepath.Base(path))
		}

		group := GroupPreview{
			Label:         label,
			FileCount:     len(paths),
			Samples:       samples,
			MainDirectory: label == root,
		}
		if !group.MainDirectory {
			p.GroupCount++
		}
		if len(paths) > p.LargestGroup {
			p.LargestGroup = len(paths)
		}
		p.Groups = append(p.Groups, group)
	}

	return p
}

// recommend reproduces the original heuristic: prefer "Type" when it yields
// more than two groups, then "Similarity" when it grouped more than one set
// and left fewer than half the files ungrouped, otherwise consolidation.
func recommend(uniqueFiles int, strategies []StrategyPreview) string {
	byName := make(map[string]StrategyPreview, len(strategies))
	for _, s := range strategies {
		byName[s.Name] = s
	}

	if typePreview, ok := byName["Type"]; ok && len(typePreview.Groups) > 2 {
		return "'Type' - Best for organizing varied file types."
	}

	if similar, ok := byName["Similarity"]; ok && len(similar.Groups) > 1 {
		grouped := 0
		for _, g := range similar.Groups {
			grouped += g.FileCount
		}
		if uniqueFiles-grouped < uniqueFiles/2 {
			return "'Similarity' - Good for grouping similar filenames."
		}
	}

	return "'One Folder' - Simplest consolidation into one folder."
}

// Reporter renders analyses to a writer.
type Reporter struct {
	writer io.Writer
	format OutputFormat
}

// New creates a Reporter.
func New(writer io.Writer, format OutputFormat) *Reporter {
	return &Reporter{writer: writer, format: format}
}

// Report renders the analysis in the configured format.
func (r *Reporter) Report(a Analysis) error {
	switch r.format {
	case FormatSummary:
		return r.reportSummary(a)
	case FormatJSON:
		enc := json.NewEncoder(r.writer)
		enc.SetIndent("", "  ")
		return enc.Encode(a)
	case FormatYAML:
		return yaml.NewEncoder(r.writer).Encode(a)
	default:
		return fmt.Errorf("unsupported format: %s", r.format)
	}
}

func (r *Reporter) reportSummary(a Analysis) error {
	scope := "Top-Level Only"
	if a.Recursive {
		scope = "Recursive"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Analysis Results of %d Total Files (%s):\n", a.TotalFiles, scope)
	fmt.Fprintf(&b, "Unique Files: %d, Duplicates Found: %d\n", a.UniqueFiles, len(a.Duplicates))

	b.WriteString("\nYou Currently Have:\n")
	for _, ec := range a.Extensions {
		fmt.Fprintf(&b, "%d %s file(s)\n", ec.Count, ec.Extension)
	}

	if len(a.Duplicates) > 0 {
		b.WriteString("\nDuplicates (Not Yet Sorted):\n")
		for _, path := range a.Duplicates {
			fmt.Fprintf(&b, "%s\n", path)
		}
	}

	b.WriteString("\nOrganization Options:\n")
	for _, s := range a.Strategies {
		if len(s.Groups) == 0 {
			continue
		}
		fmt.Fprintf(&b, "By %s (%d groups, largest: %d):\n", s.Name, s.GroupCount, s.LargestGroup)
		for _, g := range s.Groups {
			label := g.Label
			if g.MainDirectory {
				label = "Main Directory"
			}
			fmt.Fprintf(&b, "  %s: %d files (e.g., %s)\n", label, g.FileCount, strings.Join(g.Samples, ", "))
		}
	}

	fmt.Fprintf(&b, "\nRecommendation: %s\n", a.Recommendation)

	_, err := io.WriteString(r.writer, b.String())
	return err
}

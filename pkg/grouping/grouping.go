// Package grouping turns scanned file descriptors into suggested
// destination-folder groupings. Strategies are pure with respect to the
// filesystem layout: they never invent paths and never move anything.
package grouping

import "diro/pkg/scanner"

// Strategy proposes a grouping for a list of scanned files.
type Strategy interface {
	// Name identifies the strategy in reports and status output.
	Name() string
	// Group maps the files to a Suggestion. Files are consumed in input
	// order; every path in the result comes from the input list.
	Group(files []scanner.FileInfo) (*Suggestion, error)
}

// Suggestion maps destination labels to ordered source paths. Labels keep
// insertion order so downstream moves are reproducible. A label equal to
// the scan root means "leave these files directly under the root".
type Suggestion struct {
	labels []string
	groups map[string][]string
}

// NewSuggestion creates an empty Suggestion.
func NewSuggestion() *Suggestion {
	return &Suggestion{groups: make(map[string][]string)}
}

// Add appends paths to the group for label, creating the group on first use.
func (s *Suggestion) Add(label string, paths ...string) {
	if _, ok := s.groups[label]; !ok {
		s.labels = append(s.labels, label)
	}
	s.groups[label] = append(s.groups[label], paths...)
}

// Labels returns group labels in insertion order.
func (s *Suggestion) Labels() []string {
	return s.labels
}

// Paths returns the ordered paths grouped under label.
func (s *Suggestion) Paths(label string) []string {
	return s.groups[label]
}

// Len returns the number of groups.
func (s *Suggestion) Len() int {
	return len(s.labels)
}

// Empty reports whether the suggestion has no groups.
func (s *Suggestion) Empty() bool {
	return len(s.labels) == 0
}

// TotalPaths returns the number of paths across all groups.
func (s *Suggestion) TotalPaths() int {
	total := 0
	for _, paths := range s.groups {
		total += len(paths)
	}

	return total
}

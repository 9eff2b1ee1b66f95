// Package model defines the parsed representation of Gherkin feature files
// consumed by the documentation renderers and the test result correlators.
package model

import (
	"slices"
)

// Element is a top-level child of a feature: either a *Scenario or a
// *ScenarioOutline.
type Element interface {
	// Base returns the scenario data shared by scenarios and outlines.
	Base() *Scenario
}

// Feature represents a parsed Gherkin feature.
type Feature struct {
	Name         string
	Description  string
	Tags         []string
	Background   *Scenario
	Elements     []Element
	RelativePath string
}

// Scenario represents a single scenario. Feature is a back-reference to the
// owning feature and may be nil, e.g. for a synthetic background.
type Scenario struct {
	Name        string
	Description string
	Steps       []*Step
	Tags        []string
	Feature     *Feature
}

// Base implements Element.
func (s *Scenario) Base() *Scenario {
	return s
}

// ScenarioOutline is a scenario template expanded once per example row.
type ScenarioOutline struct {
	Scenario
	Examples []*Examples
}

// Base implements Element.
func (o *ScenarioOutline) Base() *Scenario {
	return &o.Scenario
}

// Examples is one examples block of a scenario outline. Each row is aligned
// to Header.
type Examples struct {
	Name        string
	Description string
	Tags        []string
	Header      []string
	Rows        [][]string
}

// Step represents a single step in a scenario.
type Step struct {
	Keyword   string
	Text      string
	DataTable [][]string
	DocString *DocString
}

// DocString is the multi-line argument of a step.
type DocString struct {
	MediaType string
	Content   string
}

// AddElement appends a scenario or outline and points it back at f.
func (f *Feature) AddElement(e Element) {
	e.Base().Feature = f
	f.Elements = append(f.Elements, e)
}

// SetBackground attaches the background and points it back at f.
func (f *Feature) SetBackground(bg *Scenario) {
	if bg != nil {
		bg.Feature = f
	}
	f.Background = bg
}

// AllTags returns the feature tags followed by the scenario tags. Duplicates
// are preserved. A nil scenario has no tags.
func (s *Scenario) AllTags() []string {
	if s == nil {
		return nil
	}
	if s.Feature == nil {
		return slices.Clone(s.Tags)
	}
	tags := make([]string, 0, len(s.Feature.Tags)+len(s.Tags))
	tags = append(tags, s.Feature.Tags...)
	return append(tags, s.Tags...)
}

// SortedTags returns an ascending copy of tags.
func SortedTags(tags []string) []string {
	sorted := slices.Clone(tags)
	slices.Sort(sorted)
	return sorted
}

// RowCount returns the number of example rows across all examples blocks.
func (o *ScenarioOutline) RowCount() int {
	n := 0
	for _, ex := range o.Examples {
		n += len(ex.Rows)
	}
	return n
}

// RowIndex returns the position of row among all example rows of the
// outline, or -1 when the row is not one of them. Rows are compared by
// identity of their backing array first and by value second.
func (o *ScenarioOutline) RowIndex(row []string) int {
	i := 0
	match := -1
	for _, ex := range o.Examples {
		for _, r := range ex.Rows {
			if len(r) > 0 && len(row) > 0 && &r[0] == &row[0] {
				return i
			}
			if match < 0 && slices.Equal(r, row) {
				match = i
			}
			i++
		}
	}
	return match
}

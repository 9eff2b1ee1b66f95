// Package output provides formatters for reporting generator runs.
package output

import (
	"io"
	"slices"
	"strings"

	"github.com/alexbrand/livingdoc/internal/model"
	"github.com/alexbrand/livingdoc/internal/testresults"
)

// Format represents an output format type.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatPlain Format = "plain"
)

// ValidFormats returns all valid format values.
func ValidFormats() []Format {
	return []Format{FormatTable, FormatJSON, FormatPlain}
}

// IsValid checks if the format is a valid output format.
func (f Format) IsValid() bool {
	return slices.Contains(ValidFormats(), f)
}

// ValidFormatNames returns the valid formats joined for help and error text.
func ValidFormatNames() string {
	names := make([]string, 0, len(ValidFormats()))
	for _, f := range ValidFormats() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}

// Summary describes one documentation run.
type Summary struct {
	OutputPath    string           `json:"output"`
	ResultsFormat string           `json:"results_format"`
	Features      []FeatureSummary `json:"features"`
	Totals        Counts           `json:"totals"`
}

// FeatureSummary holds the counts for one feature.
type FeatureSummary struct {
	Name   string `json:"name"`
	Path   string `json:"path"`
	Result string `json:"result"`
	Counts
}

// Counts tallies scenarios and their results. Outlines count as one
// scenario each; their rows are counted separately.
type Counts struct {
	Scenarios    int `json:"scenarios"`
	Outlines     int `json:"outlines"`
	ExampleRows  int `json:"example_rows"`
	Passed       int `json:"passed"`
	Failed       int `json:"failed"`
	Inconclusive int `json:"inconclusive"`
}

func (c *Counts) add(o Counts) {
	c.Scenarios += o.Scenarios
	c.Outlines += o.Outlines
	c.ExampleRows += o.ExampleRows
	c.Passed += o.Passed
	c.Failed += o.Failed
	c.Inconclusive += o.Inconclusive
}

func (c *Counts) tally(r testresults.Result) {
	switch r {
	case testresults.Passed:
		c.Passed++
	case testresults.Failed:
		c.Failed++
	default:
		c.Inconclusive++
	}
}

// Summarize counts the scenarios of features and their results.
func Summarize(outputPath string, features []*model.Feature, provider testresults.Provider) *Summary {
	s := &Summary{
		OutputPath:    outputPath,
		ResultsFormat: provider.Name(),
		Features:      make([]FeatureSummary, 0, len(features)),
	}
	for _, f := range features {
		fs := FeatureSummary{
			Name:   f.Name,
			Path:   f.RelativePath,
			Result: provider.FeatureResult(f).String(),
		}
		for _, e := range f.Elements {
			fs.Scenarios++
			if o, ok := e.(*model.ScenarioOutline); ok {
				fs.Outlines++
				fs.ExampleRows += o.RowCount()
			}
			fs.tally(testresults.ElementResult(provider, e))
		}
		s.Totals.add(fs.Counts)
		s.Features = append(s.Features, fs)
	}
	return s
}

// Signature describes an example signature for display.
type Signature struct {
	Outline string   `json:"outline"`
	Row     []string `json:"row"`
	Pattern string   `json:"pattern"`
	Error   string   `json:"error,omitempty"`
}

// Formatter defines the interface for reporting in various formats.
type Formatter interface {
	// FormatSummary outputs the summary of a generate run.
	FormatSummary(w io.Writer, s *Summary) error

	// FormatSignature outputs an example signature.
	FormatSignature(w io.Writer, sig *Signature) error

	// FormatError outputs an error.
	FormatError(w io.Writer, code string, message string) error
}

// New creates a formatter for the specified format.
func New(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{}
	case FormatPlain:
		return &PlainFormatter{}
	case FormatTable:
		fallthrough
	default:
		return &TableFormatter{}
	}
}

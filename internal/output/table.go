package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// TableFormatter outputs data in a human-readable table format.
type TableFormatter struct{}

// FormatSummary outputs a table of features followed by the totals.
func (f *TableFormatter) FormatSummary(w io.Writer, s *Summary) error {
	if len(s.Features) == 0 {
		fmt.Fprintln(w, "No features found.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FEATURE\tFILE\tSCENARIOS\tPASSED\tFAILED\tINCONCLUSIVE\tRESULT")
	for _, fs := range s.Features {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%d\t%s\n",
			truncate(fs.Name, 40), fs.Path, fs.Scenarios, fs.Passed, fs.Failed, fs.Inconclusive, fs.Result)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	t := s.Totals
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Living documentation generated: %s\n", s.OutputPath)
	fmt.Fprintf(w, "Features: %d, Scenarios: %d (outlines: %d, example rows: %d)\n",
		len(s.Features), t.Scenarios, t.Outlines, t.ExampleRows)
	fmt.Fprintf(w, "Results (%s): passed: %d, failed: %d, inconclusive: %d\n",
		s.ResultsFormat, t.Passed, t.Failed, t.Inconclusive)
	return nil
}

// FormatSignature outputs the signature with its inputs.
func (f *TableFormatter) FormatSignature(w io.Writer, sig *Signature) error {
	fmt.Fprintf(w, "Outline:  %s\n", sig.Outline)
	fmt.Fprintf(w, "Row:      %s\n", quoteAll(sig.Row))
	fmt.Fprintf(w, "Pattern:  %s\n", sig.Pattern)
	if sig.Error != "" {
		fmt.Fprintf(w, "Error:    %s\n", sig.Error)
	}
	return nil
}

// FormatError outputs an error in table format.
func (f *TableFormatter) FormatError(w io.Writer, code string, message string) error {
	fmt.Fprintf(w, "Error: %s\n", message)
	return nil
}

// truncate shortens s to limit runes, marking the cut with an ellipsis.
func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return strings.TrimSpace(string(r[:limit-1])) + "…"
}

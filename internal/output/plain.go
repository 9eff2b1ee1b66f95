package output

import (
	"fmt"
	"io"
	"strings"
)

// PlainFormatter outputs data in plain text format, suitable for scripting.
type PlainFormatter struct{}

// FormatSummary outputs one tab-separated line per feature followed by the
// totals line.
func (f *PlainFormatter) FormatSummary(w io.Writer, s *Summary) error {
	for _, fs := range s.Features {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\n",
			fs.Path, fs.Result, fs.Scenarios, fs.Passed, fs.Failed, fs.Inconclusive)
	}
	t := s.Totals
	fmt.Fprintf(w, "total\t%s\t%d\t%d\t%d\t%d\n",
		s.OutputPath, t.Scenarios, t.Passed, t.Failed, t.Inconclusive)
	return nil
}

// FormatSignature outputs the bare pattern.
func (f *PlainFormatter) FormatSignature(w io.Writer, sig *Signature) error {
	fmt.Fprintln(w, sig.Pattern)
	if sig.Error != "" {
		fmt.Fprintf(w, "error: %s\n", sig.Error)
	}
	return nil
}

// FormatError outputs an error in plain format.
func (f *PlainFormatter) FormatError(w io.Writer, code string, message string) error {
	fmt.Fprintf(w, "error: %s\n", message)
	return nil
}

func quoteAll(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return strings.Join(quoted, ", ")
}

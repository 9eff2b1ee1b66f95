package output

import (
	"encoding/json"
	"io"
)

// JSONFormatter outputs data in JSON format.
type JSONFormatter struct{}

// FormatSummary outputs the summary as JSON.
func (f *JSONFormatter) FormatSummary(w io.Writer, s *Summary) error {
	return f.writeJSON(w, s)
}

// FormatSignature outputs the signature as JSON.
func (f *JSONFormatter) FormatSignature(w io.Writer, sig *Signature) error {
	return f.writeJSON(w, sig)
}

// FormatError outputs an error as JSON.
func (f *JSONFormatter) FormatError(w io.Writer, code string, message string) error {
	return f.writeJSON(w, map[string]any{
		"error": map[string]any{
			"code":    code,
			"message": message,
		},
	})
}

func (f *JSONFormatter) writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

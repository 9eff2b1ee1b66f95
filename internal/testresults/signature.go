package testresults

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/alexbrand/livingdoc/internal/model"
)

// Signature is the compiled pattern identifying the test that a test
// framework generated for one example row of a scenario outline.
type Signature struct {
	pattern string
	re      *regexp.Regexp
	err     error
}

// ExampleSignatureBuilder derives signatures from outlines and example rows
// following the NUnit naming convention: the outline name lower-cased with
// whitespace removed, then the quoted row values as call arguments.
type ExampleSignatureBuilder struct{}

// Build returns the signature for row. The row arity is not checked against
// the outline header.
//
// Values are lower-cased and stripped of backslashes. Only `$` is escaped;
// other pattern metacharacters in the values are passed through as-is, so a
// value such as "a(b" yields a signature whose Err is non-nil.
func (ExampleSignatureBuilder) Build(outline *model.ScenarioOutline, row []string) *Signature {
	var b strings.Builder
	b.WriteString(NormalizeName(outline.Name))
	b.WriteString(`\(`)

	for i, value := range row {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(escapeValue(value))
		b.WriteByte('"')
	}

	return newSignature(b.String())
}

// NormalizeName folds name to lower case and removes every whitespace rune,
// the way test generators turn a scenario title into a method name.
func NormalizeName(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, lower(name))
}

func escapeValue(value string) string {
	value = strings.ReplaceAll(lower(value), `\`, "")
	return strings.ReplaceAll(value, "$", `\$`)
}

// lower builds a fresh Caser per call; a Caser must not be shared between
// goroutines.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

func newSignature(pattern string) *Signature {
	re, err := regexp.Compile(pattern)
	return &Signature{pattern: pattern, re: re, err: err}
}

// String returns the pattern source.
func (s *Signature) String() string {
	return s.pattern
}

// Err returns the compile error of a malformed pattern, or nil.
func (s *Signature) Err() error {
	return s.err
}

// Match reports whether testName contains the signature. It returns the
// compile error when the pattern is malformed.
func (s *Signature) Match(testName string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.re.MatchString(testName), nil
}

// MatchString is Match without the error; a malformed pattern never matches.
func (s *Signature) MatchString(testName string) bool {
	ok, _ := s.Match(testName)
	return ok
}

package testresults

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/alexbrand/livingdoc/internal/model"
)

// NUnit 3 result XML structures.
type nunitRun struct {
	XMLName xml.Name      `xml:"test-run"`
	Suites  []*nunitSuite `xml:"test-suite"`
}

type nunitSuite struct {
	Type       string          `xml:"type,attr"`
	Name       string          `xml:"name,attr"`
	Result     string          `xml:"result,attr"`
	Properties []nunitProperty `xml:"properties>property"`
	Suites     []*nunitSuite   `xml:"test-suite"`
	Cases      []*nunitCase    `xml:"test-case"`
}

type nunitCase struct {
	Name       string          `xml:"name,attr"`
	FullName   string          `xml:"fullname,attr"`
	Result     string          `xml:"result,attr"`
	Properties []nunitProperty `xml:"properties>property"`
}

type nunitProperty struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

func description(props []nunitProperty) string {
	for _, p := range props {
		if p.Name == "Description" {
			return p.Value
		}
	}
	return ""
}

func nunitResult(s string) Result {
	switch s {
	case "Passed":
		return Passed
	case "Failed":
		return Failed
	default:
		return Inconclusive
	}
}

// NUnitResults reads NUnit 3 result files. Test fixtures are matched to
// features and test cases to scenarios through their Description property.
// Example rows are matched through their Signature.
type NUnitResults struct {
	fixtures []*nunitSuite
	builder  ExampleSignatureBuilder
}

func init() {
	Register("nunit3", func() Provider { return &NUnitResults{} })
}

// Name implements Provider.
func (n *NUnitResults) Name() string {
	return "nunit3"
}

// Load implements Loader.
func (n *NUnitResults) Load(r io.Reader) error {
	var run nunitRun
	if err := xml.NewDecoder(r).Decode(&run); err != nil {
		return fmt.Errorf("failed to decode NUnit results: %w", err)
	}
	for _, s := range run.Suites {
		n.collectFixtures(s)
	}
	return nil
}

func (n *NUnitResults) collectFixtures(s *nunitSuite) {
	if s.Type == "TestFixture" {
		n.fixtures = append(n.fixtures, s)
		return
	}
	for _, child := range s.Suites {
		n.collectFixtures(child)
	}
}

func (n *NUnitResults) fixturesFor(f *model.Feature) []*nunitSuite {
	if f == nil {
		return n.fixtures
	}
	var found []*nunitSuite
	for _, s := range n.fixtures {
		if description(s.Properties) == f.Name {
			found = append(found, s)
		}
	}
	return found
}

// FeatureResult implements Provider.
func (n *NUnitResults) FeatureResult(f *model.Feature) Result {
	fixtures := n.fixturesFor(f)
	results := make([]Result, 0, len(fixtures))
	for _, s := range fixtures {
		results = append(results, nunitResult(s.Result))
	}
	return Merge(results...)
}

// ScenarioResult implements Provider.
func (n *NUnitResults) ScenarioResult(s *model.Scenario) Result {
	if s == nil {
		return Inconclusive
	}
	var results []Result
	for _, fixture := range n.fixturesFor(s.Feature) {
		for _, c := range fixture.Cases {
			if description(c.Properties) == s.Name {
				results = append(results, nunitResult(c.Result))
			}
		}
	}
	return Merge(results...)
}

// outlineSuites returns the parameterized method suites generated for o.
func (n *NUnitResults) outlineSuites(o *model.ScenarioOutline) []*nunitSuite {
	var found []*nunitSuite
	for _, fixture := range n.fixturesFor(o.Feature) {
		for _, s := range fixture.Suites {
			if s.Type == "ParameterizedMethod" && description(s.Properties) == o.Name {
				found = append(found, s)
			}
		}
	}
	return found
}

// ScenarioOutlineResult implements Provider.
func (n *NUnitResults) ScenarioOutlineResult(o *model.ScenarioOutline) Result {
	var results []Result
	for _, s := range n.outlineSuites(o) {
		results = append(results, nunitResult(s.Result))
	}
	return Merge(results...)
}

// ExampleResult implements Provider.
func (n *NUnitResults) ExampleResult(o *model.ScenarioOutline, row []string) Result {
	sig := n.builder.Build(o, row)

	var results []Result
	for _, s := range n.outlineSuites(o) {
		for _, c := range s.Cases {
			if sig.MatchString(strings.ToLower(c.Name)) {
				results = append(results, nunitResult(c.Result))
			}
		}
	}
	return Merge(results...)
}

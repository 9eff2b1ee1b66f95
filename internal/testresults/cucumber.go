package testresults

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/alexbrand/livingdoc/internal/model"
)

// Cucumber JSON structures, as written by godog's cucumber formatter.
type cucumberFeature struct {
	URI      string            `json:"uri"`
	Name     string            `json:"name"`
	Elements []cucumberElement `json:"elements"`
}

type cucumberElement struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Line  int            `json:"line"`
	Type  string         `json:"type"`
	Steps []cucumberStep `json:"steps"`
}

type cucumberStep struct {
	Keyword string         `json:"keyword"`
	Name    string         `json:"name"`
	Result  cucumberResult `json:"result"`
}

type cucumberResult struct {
	Status string `json:"status"`
}

// status derives the scenario result from its steps: any failed step fails
// it, any skipped, pending or undefined step makes it inconclusive.
func (e *cucumberElement) status() Result {
	if len(e.Steps) == 0 {
		return Inconclusive
	}
	result := Passed
	for _, step := range e.Steps {
		switch step.Result.Status {
		case "passed":
		case "failed":
			return Failed
		default:
			result = Inconclusive
		}
	}
	return result
}

// CucumberResults reads Cucumber JSON reports. Scenarios are matched by
// name; outline rows by their position among the scenarios generated for
// the outline.
type CucumberResults struct {
	features []cucumberFeature
}

func init() {
	Register("cucumber", func() Provider { return &CucumberResults{} })
}

// Name implements Provider.
func (c *CucumberResults) Name() string {
	return "cucumber"
}

// Load implements Loader.
func (c *CucumberResults) Load(r io.Reader) error {
	var report []cucumberFeature
	if err := json.NewDecoder(r).Decode(&report); err != nil {
		return fmt.Errorf("failed to decode Cucumber JSON: %w", err)
	}
	c.features = append(c.features, report...)
	return nil
}

func (c *CucumberResults) featuresFor(f *model.Feature) []*cucumberFeature {
	var found []*cucumberFeature
	for i := range c.features {
		if f == nil || c.features[i].Name == f.Name {
			found = append(found, &c.features[i])
		}
	}
	return found
}

// scenarios returns the non-background elements called name, in report order.
func (c *CucumberResults) scenarios(f *model.Feature, name string) []*cucumberElement {
	var found []*cucumberElement
	for _, feature := range c.featuresFor(f) {
		for i := range feature.Elements {
			e := &feature.Elements[i]
			if e.Type != "background" && e.Name == name {
				found = append(found, e)
			}
		}
	}
	return found
}

// FeatureResult implements Provider.
func (c *CucumberResults) FeatureResult(f *model.Feature) Result {
	var results []Result
	for _, feature := range c.featuresFor(f) {
		for i := range feature.Elements {
			if feature.Elements[i].Type == "background" {
				continue
			}
			results = append(results, feature.Elements[i].status())
		}
	}
	return Merge(results...)
}

// ScenarioResult implements Provider.
func (c *CucumberResults) ScenarioResult(s *model.Scenario) Result {
	if s == nil {
		return Inconclusive
	}
	var results []Result
	for _, e := range c.scenarios(s.Feature, s.Name) {
		results = append(results, e.status())
	}
	return Merge(results...)
}

// ScenarioOutlineResult implements Provider.
func (c *CucumberResults) ScenarioOutlineResult(o *model.ScenarioOutline) Result {
	var results []Result
	for _, ex := range o.Examples {
		for _, row := range ex.Rows {
			results = append(results, c.ExampleResult(o, row))
		}
	}
	return Merge(results...)
}

// ExampleResult implements Provider. Outline names may contain <parameter>
// placeholders, which the runner substitutes per row; rows that produce the
// same name are told apart by their order.
func (c *CucumberResults) ExampleResult(o *model.ScenarioOutline, row []string) Result {
	target := o.RowIndex(row)
	if target < 0 {
		return Inconclusive
	}

	var names []string
	for _, ex := range o.Examples {
		for _, r := range ex.Rows {
			names = append(names, interpolate(o.Name, ex.Header, r))
		}
	}

	name := names[target]
	occurrence := 0
	for _, n := range names[:target] {
		if n == name {
			occurrence++
		}
	}

	elements := c.scenarios(o.Feature, name)
	if occurrence >= len(elements) {
		return Inconclusive
	}
	return elements[occurrence].status()
}

func interpolate(name string, header, row []string) string {
	for i, param := range header {
		if i >= len(row) {
			break
		}
		name = strings.ReplaceAll(name, "<"+param+">", row[i])
	}
	return name
}

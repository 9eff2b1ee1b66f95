package testresults

import "github.com/alexbrand/livingdoc/internal/model"

// NoResults is the provider used when no test run is available. Every query
// is inconclusive.
type NoResults struct{}

func init() {
	Register("none", func() Provider { return NoResults{} })
}

func (NoResults) Name() string                                        { return "none" }
func (NoResults) FeatureResult(*model.Feature) Result                 { return Inconclusive }
func (NoResults) ScenarioResult(*model.Scenario) Result               { return Inconclusive }
func (NoResults) ScenarioOutlineResult(*model.ScenarioOutline) Result { return Inconclusive }
func (NoResults) ExampleResult(*model.ScenarioOutline, []string) Result {
	return Inconclusive
}

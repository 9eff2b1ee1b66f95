package html

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/alexbrand/livingdoc/internal/model"
	"github.com/alexbrand/livingdoc/internal/testresults"
)

// ExamplesFormatter renders the examples blocks of an outline, with a result
// cell per row.
type ExamplesFormatter struct {
	provider     testresults.Provider
	descriptions DescriptionFormatter
}

// Format renders every examples block of o inside a div.examples-list.
func (f *ExamplesFormatter) Format(o *model.ScenarioOutline) *html.Node {
	list := element(atom.Div, "examples-list")
	for _, ex := range o.Examples {
		div := element(atom.Div, "examples", withText(atom.H3, "", examplesHeading(ex)))
		appendChildren(div, tagLine(ex.Tags), f.descriptions.Format(ex.Description))
		div.AppendChild(f.table(o, ex))
		list.AppendChild(div)
	}
	return list
}

func examplesHeading(ex *model.Examples) string {
	if ex.Name == "" {
		return "Examples:"
	}
	return "Examples: " + ex.Name
}

func (f *ExamplesFormatter) table(o *model.ScenarioOutline, ex *model.Examples) *html.Node {
	header := tableRow(atom.Th, ex.Header)
	header.AppendChild(withText(atom.Th, "", "Result"))

	tbody := element(atom.Tbody, "")
	for _, row := range ex.Rows {
		tr := tableRow(atom.Td, row)
		tr.AppendChild(element(atom.Td, "", indicator(f.provider.ExampleResult(o, row))))
		tbody.AppendChild(tr)
	}
	return element(atom.Table, "table", element(atom.Thead, "", header), tbody)
}

// FeatureFormatter renders a whole feature: heading, tags, description and
// the list of its background and scenarios.
type FeatureFormatter struct {
	scenarios    *ScenarioRenderer
	examples     *ExamplesFormatter
	descriptions DescriptionFormatter
	results      *ResultIndicatorFormatter
	provider     testresults.Provider
}

// NewFeatureFormatter wires the default leaf formatters around provider.
// A nil provider reports every result as inconclusive.
func NewFeatureFormatter(provider testresults.Provider) *FeatureFormatter {
	if provider == nil {
		provider = testresults.NoResults{}
	}
	descriptions := ParagraphFormatter{}
	results := NewResultIndicatorFormatter(provider)
	return &FeatureFormatter{
		scenarios:    NewScenarioRenderer(StepListFormatter{}, descriptions, results),
		examples:     &ExamplesFormatter{provider: provider, descriptions: descriptions},
		descriptions: descriptions,
		results:      results,
		provider:     provider,
	}
}

// Prepare registers the outlines of features with the result formatter.
// It is safe to call concurrently with Format and with itself.
func (f *FeatureFormatter) Prepare(features ...*model.Feature) {
	for _, feature := range features {
		f.results.Track(feature.Elements...)
	}
}

// Format renders feature as div.feature with the given element id.
func (f *FeatureFormatter) Format(feature *model.Feature, id string) *html.Node {
	heading := element(atom.Div, "feature-heading",
		element(atom.Div, "float-right", indicator(f.provider.FeatureResult(feature))),
		withText(atom.H1, "", feature.Name),
	)
	appendChildren(heading, tagLine(feature.Tags), f.descriptions.Format(feature.Description))

	ul := element(atom.Ul, "scenarios")
	if feature.Background != nil {
		ul.AppendChild(f.scenarios.RenderBackground(feature.Background))
	}
	for _, e := range feature.Elements {
		li := f.scenarios.Render(e.Base(), ModeNormal)
		if o, ok := e.(*model.ScenarioOutline); ok {
			li.AppendChild(f.examples.Format(o))
		}
		ul.AppendChild(li)
	}

	div := element(atom.Div, "feature", heading, ul)
	if id != "" {
		setAttr(div, "id", id)
	}
	return div
}

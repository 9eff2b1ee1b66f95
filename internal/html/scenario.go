package html

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/alexbrand/livingdoc/internal/model"
)

// DisplayMode selects how a scenario heading is rendered.
type DisplayMode int

const (
	// ModeNormal renders the scenario name preceded by its result indicator.
	ModeNormal DisplayMode = iota
	// ModeBackground renders a feature background: a fixed heading and no
	// result indicator.
	ModeBackground
)

// BackgroundHeading is the heading text of a rendered background.
const BackgroundHeading = "Background:"

// StepFormatter renders a single step as a list item.
type StepFormatter interface {
	Format(step *model.Step) *html.Node
}

// DescriptionFormatter renders free-text descriptions. It decides itself what
// an empty description produces; a nil node adds nothing.
type DescriptionFormatter interface {
	Format(description string) *html.Node
}

// ResultFormatter renders the result indicator of a scenario.
type ResultFormatter interface {
	Format(scenario *model.Scenario) *html.Node
}

// ScenarioRenderer turns a scenario into an li.scenario subtree. Formatters
// must return fresh, unattached nodes on every call.
type ScenarioRenderer struct {
	steps        StepFormatter
	descriptions DescriptionFormatter
	results      ResultFormatter
}

// NewScenarioRenderer creates a renderer using the given leaf formatters.
func NewScenarioRenderer(steps StepFormatter, descriptions DescriptionFormatter, results ResultFormatter) *ScenarioRenderer {
	return &ScenarioRenderer{
		steps:        steps,
		descriptions: descriptions,
		results:      results,
	}
}

// Render builds the subtree for scenario:
//
//	li.scenario
//	  [result indicator]      ModeNormal only
//	  div.scenario-heading
//	    h2                    name, or "Background:"
//	    [p.tags]              only when there are tags
//	    [description]
//	  div.steps
//	    ul                    one fragment per step
func (r *ScenarioRenderer) Render(scenario *model.Scenario, mode DisplayMode) *html.Node {
	li := element(atom.Li, "scenario")

	heading := scenario.Name
	if mode == ModeBackground {
		heading = BackgroundHeading
	} else {
		appendChildren(li, r.results.Format(scenario))
	}

	header := element(atom.Div, "scenario-heading", withText(atom.H2, "", heading))
	appendChildren(header, tagLine(scenario.AllTags()))
	appendChildren(header, r.descriptions.Format(scenario.Description))

	appendChildren(li, header, r.stepsBlock(scenario.Steps))
	return li
}

// RenderBackground renders a feature background.
func (r *ScenarioRenderer) RenderBackground(background *model.Scenario) *html.Node {
	return r.Render(background, ModeBackground)
}

func (r *ScenarioRenderer) stepsBlock(steps []*model.Step) *html.Node {
	ul := element(atom.Ul, "")
	for _, step := range steps {
		appendChildren(ul, r.steps.Format(step))
	}
	return element(atom.Div, "steps", ul)
}

// tagLine renders "Tags: a, b" with one span per tag, sorted. It returns nil
// when there are no tags.
func tagLine(tags []string) *html.Node {
	if len(tags) == 0 {
		return nil
	}
	p := element(atom.P, "tags", text("Tags: "))
	for i, tag := range model.SortedTags(tags) {
		if i > 0 {
			p.AppendChild(text(", "))
		}
		p.AppendChild(withText(atom.Span, "", tag))
	}
	return p
}

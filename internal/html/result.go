package html

import (
	"sync"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/alexbrand/livingdoc/internal/model"
	"github.com/alexbrand/livingdoc/internal/testresults"
)

var resultSymbols = map[testresults.Result]string{
	testresults.Passed:       "✔",
	testresults.Failed:       "✘",
	testresults.Inconclusive: "?",
}

// ResultIndicatorFormatter renders div.float-right > span.result.<status>.
// It never returns nil. A nil provider reports every result as inconclusive.
//
// Scenarios are plain *model.Scenario values, so outlines must be registered
// with Track before rendering for their combined result to be used. Track and
// Format may be called concurrently.
type ResultIndicatorFormatter struct {
	provider testresults.Provider

	mu       sync.RWMutex
	outlines map[*model.Scenario]*model.ScenarioOutline
}

// NewResultIndicatorFormatter creates a formatter answering from provider.
func NewResultIndicatorFormatter(provider testresults.Provider) *ResultIndicatorFormatter {
	if provider == nil {
		provider = testresults.NoResults{}
	}
	return &ResultIndicatorFormatter{
		provider: provider,
		outlines: make(map[*model.Scenario]*model.ScenarioOutline),
	}
}

// Track records the outlines among elements so that their scenarios are
// resolved through ScenarioOutlineResult. Tracking an outline again is a no-op.
func (f *ResultIndicatorFormatter) Track(elements ...model.Element) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range elements {
		if o, ok := e.(*model.ScenarioOutline); ok {
			f.outlines[&o.Scenario] = o
		}
	}
}

// Format implements ResultFormatter.
func (f *ResultIndicatorFormatter) Format(scenario *model.Scenario) *html.Node {
	f.mu.RLock()
	o, ok := f.outlines[scenario]
	f.mu.RUnlock()

	var result testresults.Result
	if ok {
		result = f.provider.ScenarioOutlineResult(o)
	} else {
		result = f.provider.ScenarioResult(scenario)
	}
	return element(atom.Div, "float-right", indicator(result))
}

// indicator renders a single result symbol.
func indicator(r testresults.Result) *html.Node {
	span := withText(atom.Span, "result "+r.String(), resultSymbols[r])
	setAttr(span, "title", r.Title())
	return span
}

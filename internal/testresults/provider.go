package testresults

import (
	"fmt"
	"io"
	"os"

	"github.com/alexbrand/livingdoc/internal/model"
)

// Provider answers result queries for the parsed model.
type Provider interface {
	// Name returns the registered name of the provider.
	Name() string

	// FeatureResult returns the overall result of a feature.
	FeatureResult(feature *model.Feature) Result

	// ScenarioResult returns the result of a plain scenario.
	ScenarioResult(scenario *model.Scenario) Result

	// ScenarioOutlineResult returns the combined result of all rows of an outline.
	ScenarioOutlineResult(outline *model.ScenarioOutline) Result

	// ExampleResult returns the result of the test generated for one example row.
	ExampleResult(outline *model.ScenarioOutline, row []string) Result
}

// Loader is implemented by providers that read result files. Loading
// several files merges their results.
type Loader interface {
	Load(r io.Reader) error
}

// ElementResult resolves the result of any feature element.
func ElementResult(p Provider, e model.Element) Result {
	if o, ok := e.(*model.ScenarioOutline); ok {
		return p.ScenarioOutlineResult(o)
	}
	return p.ScenarioResult(e.Base())
}

// Open creates the named provider and loads every file into it.
func Open(name string, files []string) (Provider, error) {
	p, err := Get(name)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return p, nil
	}

	loader, ok := p.(Loader)
	if !ok {
		return nil, fmt.Errorf("testresults: provider %q does not read result files", name)
	}
	for _, path := range files {
		if err := loadFile(loader, path); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func loadFile(l Loader, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open results file: %w", err)
	}
	defer f.Close()

	if err := l.Load(f); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Package gherkin parses .feature files into the documentation model.
package gherkin

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	gherkin "github.com/cucumber/gherkin/go/v26"
	messages "github.com/cucumber/messages/go/v21"

	"github.com/alexbrand/livingdoc/internal/model"
)

// Discover returns every .feature file below dir, sorted by path.
func Discover(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".feature") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find feature files: %w", err)
	}
	sort.Strings(files)
	return files, nil
}

// ParseFile parses the feature file at path. RelativePath is set relative
// to root.
func ParseFile(path, root string) (*model.Feature, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = filepath.Base(path)
	}
	return Parse(f, filepath.ToSlash(rel))
}

// Parse reads a Gherkin document. A document without a Feature yields an
// empty feature.
func Parse(r io.Reader, path string) (*model.Feature, error) {
	doc, err := gherkin.ParseGherkinDocument(r, (&messages.Incrementing{}).NewId)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	feature := &model.Feature{RelativePath: path}
	if doc.Feature == nil {
		return feature, nil
	}

	feature.Name = doc.Feature.Name
	feature.Description = strings.TrimSpace(doc.Feature.Description)
	feature.Tags = tagNames(doc.Feature.Tags)

	for _, child := range doc.Feature.Children {
		switch {
		case child.Background != nil:
			feature.SetBackground(background(child.Background))
		case child.Scenario != nil:
			feature.AddElement(element(child.Scenario))
		case child.Rule != nil:
			for _, rc := range child.Rule.Children {
				if rc.Scenario != nil {
					feature.AddElement(element(rc.Scenario))
				}
			}
		}
	}
	return feature, nil
}

func background(bg *messages.Background) *model.Scenario {
	return &model.Scenario{
		Name:        bg.Name,
		Description: strings.TrimSpace(bg.Description),
		Steps:       steps(bg.Steps),
	}
}

// element returns a *model.ScenarioOutline for scenarios with examples and a
// *model.Scenario otherwise.
func element(sc *messages.Scenario) model.Element {
	s := model.Scenario{
		Name:        sc.Name,
		Description: strings.TrimSpace(sc.Description),
		Steps:       steps(sc.Steps),
		Tags:        tagNames(sc.Tags),
	}
	if len(sc.Examples) == 0 {
		return &s
	}

	outline := &model.ScenarioOutline{Scenario: s}
	for _, ex := range sc.Examples {
		examples := &model.Examples{
			Name:        ex.Name,
			Description: strings.TrimSpace(ex.Description),
			Tags:        tagNames(ex.Tags),
		}
		if ex.TableHeader != nil {
			examples.Header = cells(ex.TableHeader)
		}
		for _, row := range ex.TableBody {
			examples.Rows = append(examples.Rows, cells(row))
		}
		outline.Examples = append(outline.Examples, examples)
	}
	return outline
}

func steps(in []*messages.Step) []*model.Step {
	out := make([]*model.Step, 0, len(in))
	for _, st := range in {
		step := &model.Step{
			Keyword: strings.TrimSpace(st.Keyword),
			Text:    st.Text,
		}
		if st.DataTable != nil {
			for _, row := range st.DataTable.Rows {
				step.DataTable = append(step.DataTable, cells(row))
			}
		}
		if st.DocString != nil {
			step.DocString = &model.DocString{
				MediaType: st.DocString.MediaType,
				Content:   st.DocString.Content,
			}
		}
		out = append(out, step)
	}
	return out
}

func cells(row *messages.TableRow) []string {
	values := make([]string, 0, len(row.Cells))
	for _, c := range row.Cells {
		values = append(values, c.Value)
	}
	return values
}

func tagNames(tags []*messages.Tag) []string {
	if len(tags) == 0 {
		return nil
	}
	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, t.Name)
	}
	return names
}

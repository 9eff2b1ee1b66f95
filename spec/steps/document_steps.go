package steps

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/cucumber/godog"

	"github.com/alexbrand/livingdoc/spec/support"
)

// InitializeDocumentSteps registers assertions on a generated HTML document.
func InitializeDocumentSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the document "([^"]*)" should contain (\d+) elements? with class "([^"]*)"$`, theDocumentShouldContainElementsWithClass)
	ctx.Step(`^the document "([^"]*)" should contain the text "([^"]*)"$`, theDocumentShouldContainTheText)
	ctx.Step(`^the document "([^"]*)" should have title "([^"]*)"$`, theDocumentShouldHaveTitle)
	ctx.Step(`^in "([^"]*)" the scenario "([^"]*)" should show result "([^"]*)"$`, theScenarioShouldShowResult)
	ctx.Step(`^in "([^"]*)" the scenario "([^"]*)" should show no result$`, theScenarioShouldShowNoResult)
	ctx.Step(`^in "([^"]*)" the example rows should show results "([^"]*)"$`, theExampleRowsShouldShowResults)
}

func loadDocument(ctx context.Context, path string) (*support.Document, error) {
	env := getTestEnv(ctx)
	if env == nil {
		return nil, fmt.Errorf("test environment not initialized")
	}
	f, err := os.Open(env.Path(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open document: %w", err)
	}
	defer f.Close()
	return support.ParseDocument(f)
}

func theDocumentShouldContainElementsWithClass(ctx context.Context, path string, count int, class string) error {
	doc, err := loadDocument(ctx, path)
	if err != nil {
		return err
	}
	if got := len(doc.FindByClass(class)); got != count {
		return fmt.Errorf("expected %d elements with class %q, got %d", count, class, got)
	}
	return nil
}

func theDocumentShouldContainTheText(ctx context.Context, path, text string) error {
	doc, err := loadDocument(ctx, path)
	if err != nil {
		return err
	}
	for _, body := range doc.FindByTag("body") {
		if strings.Contains(support.Text(body), text) {
			return nil
		}
	}
	return fmt.Errorf("expected document to contain %q", text)
}

func theDocumentShouldHaveTitle(ctx context.Context, path, title string) error {
	doc, err := loadDocument(ctx, path)
	if err != nil {
		return err
	}
	titles := doc.FindByTag("title")
	if len(titles) == 0 {
		return fmt.Errorf("document has no title")
	}
	if got := support.Text(titles[0]); got != title {
		return fmt.Errorf("expected title %q, got %q", title, got)
	}
	return nil
}

func scenarioResult(ctx context.Context, path, name string) (string, error) {
	doc, err := loadDocument(ctx, path)
	if err != nil {
		return "", err
	}
	s := doc.Scenario(name)
	if s == nil {
		return "", fmt.Errorf("scenario %q not found", name)
	}
	// Only the indicator ahead of the heading belongs to the scenario itself;
	// example rows carry their own.
	for c := s.FirstChild; c != nil; c = c.NextSibling {
		if support.HasClass(c, "float-right") {
			return support.Result(c), nil
		}
	}
	return "", nil
}

func theScenarioShouldShowResult(ctx context.Context, path, name, expected string) error {
	got, err := scenarioResult(ctx, path, name)
	if err != nil {
		return err
	}
	if got != expected {
		return fmt.Errorf("expected scenario %q to show %q, got %q", name, expected, got)
	}
	return nil
}

func theScenarioShouldShowNoResult(ctx context.Context, path, name string) error {
	got, err := scenarioResult(ctx, path, name)
	if err != nil {
		return err
	}
	if got != "" {
		return fmt.Errorf("expected scenario %q to show no result, got %q", name, got)
	}
	return nil
}

func theExampleRowsShouldShowResults(ctx context.Context, path, expected string) error {
	doc, err := loadDocument(ctx, path)
	if err != nil {
		return err
	}
	var got []string
	for _, examples := range doc.FindByClass("examples") {
		for _, body := range support.FindTag(examples, "tbody") {
			for _, tr := range support.FindTag(body, "tr") {
				got = append(got, support.Result(tr))
			}
		}
	}
	if strings.Join(got, ", ") != expected {
		return fmt.Errorf("expected example results %q, got %q", expected, strings.Join(got, ", "))
	}
	return nil
}

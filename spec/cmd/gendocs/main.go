// Command gendocs renders the livingdoc specs into living documentation,
// optionally annotated with the Cucumber JSON report of a godog run:
//
//	go test ./spec --godog.format=cucumber:report.json
//	go run ./spec/cmd/gendocs -features spec/features -results spec/report.json
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/alexbrand/livingdoc/internal/gherkin"
	"github.com/alexbrand/livingdoc/internal/html"
	"github.com/alexbrand/livingdoc/internal/model"
	"github.com/alexbrand/livingdoc/internal/testresults"
)

func main() {
	featuresDir := flag.String("features", "features", "Directory containing .feature files")
	outputFile := flag.String("output", "docs.html", "Output HTML file")
	title := flag.String("title", "livingdoc - Living Documentation", "Documentation title")
	results := flag.String("results", "", "Cucumber JSON report to annotate scenarios with")
	flag.Parse()

	if err := run(*featuresDir, *outputFile, *title, *results); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(featuresDir, outputFile, title, results string) error {
	paths, err := gherkin.Discover(featuresDir)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no feature files found in %s", featuresDir)
	}

	var features []*model.Feature
	for _, path := range paths {
		f, err := gherkin.ParseFile(path, featuresDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing %s: %v\n", path, err)
			continue
		}
		features = append(features, f)
	}

	provider, err := openResults(results)
	if err != nil {
		return err
	}

	out, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()

	doc := &html.Document{Title: title, Features: features}
	if err := doc.Write(out, html.NewFeatureFormatter(provider)); err != nil {
		return err
	}

	fmt.Printf("Generated documentation: %s\n", outputFile)
	fmt.Printf("  Features: %d\n", len(features))
	return nil
}

func openResults(path string) (testresults.Provider, error) {
	if path == "" {
		return testresults.Open("none", nil)
	}
	return testresults.Open("cucumber", []string{path})
}

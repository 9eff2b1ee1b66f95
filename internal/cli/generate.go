package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexbrand/livingdoc/internal/config"
	"github.com/alexbrand/livingdoc/internal/ctxlog"
	"github.com/alexbrand/livingdoc/internal/gherkin"
	"github.com/alexbrand/livingdoc/internal/html"
	"github.com/alexbrand/livingdoc/internal/model"
	"github.com/alexbrand/livingdoc/internal/output"
	"github.com/alexbrand/livingdoc/internal/testresults"
)

type generateOptions struct {
	featuresDir   string
	outputPath    string
	title         string
	resultsFormat string
	resultsFiles  []string
}

func newGenerateCmd(root *rootOptions) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the living documentation",
		Long: `Parse every .feature file below the features directory and write a single
HTML document. When a results format and result files are given, scenarios and
example rows are annotated with passed, failed or inconclusive indicators.`,
		Example: `  livingdoc generate --features specs --output docs/index.html
  livingdoc generate --results-format nunit3 --results TestResult.xml
  livingdoc generate --results-format cucumber --results report.json -f json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.merge(cmd, config.Get())
			return runGenerate(cmd, root, opts)
		},
	}

	cmd.Flags().StringVar(&opts.featuresDir, "features", "", "Directory containing .feature files")
	cmd.Flags().StringVarP(&opts.outputPath, "output", "o", "", "Path of the generated HTML document")
	cmd.Flags().StringVar(&opts.title, "title", "", "Document title")
	cmd.Flags().StringVar(&opts.resultsFormat, "results-format", "", fmt.Sprintf("Test results format: %s", strings.Join(testresults.List(), ", ")))
	cmd.Flags().StringSliceVar(&opts.resultsFiles, "results", nil, "Test result files (repeatable)")

	return cmd
}

// merge fills every option not set on the command line from cfg.
func (o *generateOptions) merge(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if !flags.Changed("features") {
		o.featuresDir = cfg.Features.Dir
	}
	if !flags.Changed("output") {
		o.outputPath = cfg.Output.Path
	}
	if !flags.Changed("title") {
		o.title = cfg.Title
	}
	if !flags.Changed("results-format") {
		o.resultsFormat = cfg.Results.Format
	}
	if !flags.Changed("results") {
		o.resultsFiles = cfg.Results.Files
	}
}

func runGenerate(cmd *cobra.Command, root *rootOptions, opts *generateOptions) error {
	logger := ctxlog.FromContext(cmd.Context())

	if !testresults.IsRegistered(opts.resultsFormat) {
		return ConfigError(fmt.Sprintf("unknown results format %q (valid: %s)",
			opts.resultsFormat, strings.Join(testresults.List(), ", ")))
	}

	features, err := loadFeatures(cmd, opts.featuresDir)
	if err != nil {
		return err
	}

	provider, err := testresults.Open(opts.resultsFormat, opts.resultsFiles)
	if err != nil {
		return WrapExitCodeError(ExitError, "failed to load test results", err)
	}
	logger.Debug("test results loaded", "format", provider.Name(), "files", len(opts.resultsFiles))

	if err := writeDocument(opts, features, provider); err != nil {
		return err
	}
	logger.Info("living documentation written", "path", opts.outputPath, "features", len(features))

	summary := output.Summarize(opts.outputPath, features, provider)
	return root.formatter().FormatSummary(cmd.OutOrStdout(), summary)
}

// loadFeatures parses every feature file below dir. Files that fail to parse
// are logged and skipped.
func loadFeatures(cmd *cobra.Command, dir string) ([]*model.Feature, error) {
	logger := ctxlog.FromContext(cmd.Context())

	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil, NotFoundError(fmt.Sprintf("features directory %q not found", dir))
	}

	paths, err := gherkin.Discover(dir)
	if err != nil {
		return nil, WrapExitCodeError(ExitError, "failed to read features directory", err)
	}
	if len(paths) == 0 {
		return nil, NotFoundError(fmt.Sprintf("no .feature files found in %q", dir))
	}

	features := make([]*model.Feature, 0, len(paths))
	for _, path := range paths {
		f, err := gherkin.ParseFile(path, dir)
		if err != nil {
			logger.Warn("skipping feature file", "path", path, "error", err)
			continue
		}
		logger.Debug("parsed feature", "path", f.RelativePath, "elements", len(f.Elements))
		features = append(features, f)
	}
	if len(features) == 0 {
		return nil, WrapExitCodeError(ExitError, "no feature file could be parsed", nil)
	}
	return features, nil
}

func writeDocument(opts *generateOptions, features []*model.Feature, provider testresults.Provider) error {
	if dir := filepath.Dir(opts.outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return WrapExitCodeError(ExitError, "failed to create output directory", err)
		}
	}

	f, err := os.Create(opts.outputPath)
	if err != nil {
		return WrapExitCodeError(ExitError, "failed to create output file", err)
	}

	doc := &html.Document{Title: opts.title, Features: features}
	if err := doc.Write(f, html.NewFeatureFormatter(provider)); err != nil {
		f.Close()
		return WrapExitCodeError(ExitError, "failed to write document", err)
	}
	if err := f.Close(); err != nil {
		return WrapExitCodeError(ExitError, "failed to write document", err)
	}
	return nil
}

package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexbrand/livingdoc/internal/config"
	"github.com/alexbrand/livingdoc/internal/testresults"
)

const projectConfigDir = ".livingdoc"

const sampleFeature = `Feature: Living documentation
  Feature files below this directory are rendered by livingdoc generate.

  Scenario: Generate the document
    Given a directory of feature files
    When I run livingdoc generate
    Then an HTML document is written
`

type initOptions struct {
	dir           string
	featuresDir   string
	resultsFormat string
	force         bool
}

func newInitCmd() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize livingdoc in the current directory",
		Long: `Initialize livingdoc in the current directory.

Created structure:
  .livingdoc/config.yaml - Project configuration
  features/              - Feature files (a sample is added when the directory is new)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.dir, "dir", ".", "Project directory")
	cmd.Flags().StringVar(&opts.featuresDir, "features", "features", "Directory containing .feature files")
	cmd.Flags().StringVar(&opts.resultsFormat, "results-format", "none", fmt.Sprintf("Test results format: %s", strings.Join(testresults.List(), ", ")))
	cmd.Flags().BoolVar(&opts.force, "force", false, "Overwrite an existing configuration")

	// init runs before any configuration exists.
	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error { return nil }
	return cmd
}

func runInit(cmd *cobra.Command, opts *initOptions) error {
	if !testresults.IsRegistered(opts.resultsFormat) {
		return ConfigError(fmt.Sprintf("unknown results format %q (valid: %s)",
			opts.resultsFormat, strings.Join(testresults.List(), ", ")))
	}

	cfgDir := filepath.Join(opts.dir, projectConfigDir)
	cfgPath := filepath.Join(cfgDir, "config.yaml")
	if _, err := os.Stat(cfgPath); err == nil && !opts.force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", cfgPath)
	}

	cfg := config.Config{
		Version:  1,
		Title:    "Living Documentation",
		Features: config.Features{Dir: opts.featuresDir},
		Output:   config.Output{Path: "docs.html", Format: "table"},
		Results:  config.Results{Format: opts.resultsFormat},
		Log:      config.Log{Level: "info", Format: "text"},
	}
	out, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("failed to format configuration: %w", err)
	}

	if err := os.MkdirAll(cfgDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", cfgDir, err)
	}
	if err := os.WriteFile(cfgPath, out, 0644); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Created %s\n", cfgPath)

	featuresPath := filepath.Join(opts.dir, opts.featuresDir)
	if _, err := os.Stat(featuresPath); errors.Is(err, os.ErrNotExist) {
		if err := os.MkdirAll(featuresPath, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", featuresPath, err)
		}
		sample := filepath.Join(featuresPath, "livingdoc.feature")
		if err := os.WriteFile(sample, []byte(sampleFeature), 0644); err != nil {
			return fmt.Errorf("failed to create sample feature: %w", err)
		}
		fmt.Fprintf(w, "Created %s\n", sample)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Ready! Try: livingdoc generate")
	return nil
}

// Package cli implements the livingdoc command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexbrand/livingdoc/internal/config"
	"github.com/alexbrand/livingdoc/internal/ctxlog"
	"github.com/alexbrand/livingdoc/internal/output"
)

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	configPath string
	format     string
	logLevel   string
	logFormat  string
	verbose    bool
}

// NewRootCmd builds the command tree writing to stdout and stderr.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "livingdoc",
		Short: "Generate living documentation from Gherkin feature files",
		Long: `livingdoc renders Gherkin feature files into an HTML document and
annotates scenarios and scenario outline examples with the results of a test run.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Config file (default: .livingdoc/config.yaml or ~/.config/livingdoc/config.yaml)")
	flags.StringVarP(&opts.format, "format", "f", "", "Output format: "+output.ValidFormatNames())
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.StringVar(&opts.logFormat, "log-format", "", "Log format: text, json")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output (same as --log-level=debug)")

	cmd.AddCommand(
		newGenerateCmd(opts),
		newSignatureCmd(opts),
		newConfigCmd(),
		newInitCmd(),
		newVersionCmd(opts),
	)
	return cmd
}

// setup loads the configuration and installs the logger on the command context.
func (o *rootOptions) setup(cmd *cobra.Command, stderr io.Writer) error {
	if err := config.Init(o.configPath); err != nil {
		return WrapExitCodeError(ExitConfigError, "failed to load configuration", err)
	}
	cfg := config.Get()

	if o.format == "" {
		o.format = cfg.Output.Format
	}
	if !output.Format(o.format).IsValid() {
		return ConfigError(fmt.Sprintf("invalid output format %q (valid: %s)", o.format, output.ValidFormatNames()))
	}

	level := cfg.Log.Level
	if o.logLevel != "" {
		level = o.logLevel
	}
	if o.verbose {
		level = "debug"
	}
	logFormat := cfg.Log.Format
	if o.logFormat != "" {
		logFormat = o.logFormat
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := ctxlog.New(level, logFormat, stderr)
	logger.Debug("configuration loaded", "file", config.ConfigFilePath())
	cmd.SetContext(ctxlog.WithLogger(ctx, logger))
	return nil
}

// formatter returns the output formatter selected by --format or config.
func (o *rootOptions) formatter() output.Formatter {
	return output.New(output.Format(o.format))
}

// Run executes the command line with args and returns the process exit code.
// Errors are reported on stderr in the selected output format.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitSuccess
	}

	format := output.FormatTable
	if f, ferr := cmd.PersistentFlags().GetString("format"); ferr == nil && output.Format(f).IsValid() {
		format = output.Format(f)
	}
	output.New(format).FormatError(stderr, errorCode(err), err.Error())
	return GetExitCode(err)
}

// Execute runs the CLI application with the process arguments.
func Execute() int {
	return Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
}

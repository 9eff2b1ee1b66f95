package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexbrand/livingdoc/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  `Inspect livingdoc configuration settings.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long:  `Display the effective configuration, after defaults and environment overrides, in YAML format.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow(cmd)
		},
	})
	return cmd
}

func runConfigShow(cmd *cobra.Command) error {
	cfg := config.Get()
	if cfg == nil {
		return ConfigError("no configuration loaded")
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return WrapExitCodeError(ExitError, "failed to format configuration", err)
	}

	w := cmd.OutOrStdout()
	if path := config.ConfigFilePath(); path != "" {
		fmt.Fprintf(w, "# %s\n", path)
	} else if def, err := config.DefaultConfigPath(); err == nil {
		fmt.Fprintf(w, "# no config file found, using defaults (create %s or .livingdoc/config.yaml)\n", def)
	}
	fmt.Fprint(w, string(out))
	return nil
}

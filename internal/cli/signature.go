package cli

import (
	"github.com/spf13/cobra"

	"github.com/alexbrand/livingdoc/internal/model"
	"github.com/alexbrand/livingdoc/internal/output"
	"github.com/alexbrand/livingdoc/internal/testresults"
)

func newSignatureCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "signature <outline-name> [value...]",
		Short: "Print the NUnit test name pattern for an example row",
		Long: `Print the regular expression used to find the NUnit test case generated for
one row of a scenario outline's examples table.`,
		Example: `  livingdoc signature "Pay the bill" '$100' 2`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outline := &model.ScenarioOutline{Scenario: model.Scenario{Name: args[0]}}
			row := args[1:]

			sig := testresults.ExampleSignatureBuilder{}.Build(outline, row)
			out := &output.Signature{
				Outline: outline.Name,
				Row:     row,
				Pattern: sig.String(),
			}
			if err := sig.Err(); err != nil {
				out.Error = err.Error()
			}
			return root.formatter().FormatSignature(cmd.OutOrStdout(), out)
		},
	}
}

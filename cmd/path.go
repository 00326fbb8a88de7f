package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rafiki270/XCUIDebug/internal/inspect"
	"github.com/rafiki270/XCUIDebug/internal/output"
)

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the ancestor path of an element",
	Long: `Reconstruct the root-to-leaf ancestor chain of the element with the given
accessibility identifier.

Examples:
  xcuidump path --file dump.txt --identifier leadingButton
  xcuidump path --host http://localhost:8100 --identifier submitButton`,
	RunE: runPath,
}

func init() {
	rootCmd.AddCommand(pathCmd)
	pathCmd.Flags().String("identifier", "", "Accessibility identifier of the target element (required)")
	pathCmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
}

func runPath(cmd *cobra.Command, args []string) error {
	identifier, _ := cmd.Flags().GetString("identifier")
	if identifier == "" {
		return fmt.Errorf("--identifier is required")
	}

	provider, err := newProvider(cmd)
	if err != nil {
		return err
	}
	in := inspect.New(provider, nil)
	ctx := cmd.Context()

	if output.OutputFormat == output.FormatText {
		text, err := in.PathReport(ctx, identifier)
		if err != nil {
			return err
		}
		fmt.Print(text)
		return nil
	}

	result, err := in.PathSnapshot(ctx, identifier)
	if err != nil {
		return err
	}
	return output.Print(result)
}

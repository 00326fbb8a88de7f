package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rafiki270/XCUIDebug/internal/inspect"
	"github.com/rafiki270/XCUIDebug/internal/model"
	"github.com/rafiki270/XCUIDebug/internal/output"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Print the element tree, optionally filtered",
	Long: `Reconstruct the element tree from the hierarchy dump and print it with
per-element hittable/enabled state.

With --identifier and/or --type, only matching elements and their ancestor
chains are shown. A filtered element keeps its full root path so the result
stays readable as a tree.

Examples:
  xcuidump tree --file dump.txt
  xcuidump tree --host http://localhost:8100 --identifier leadingButton
  xcuidump tree --host http://localhost:8100 --identifier loginForm --type Button`,
	RunE: runTree,
}

func init() {
	rootCmd.AddCommand(treeCmd)
	treeCmd.Flags().String("identifier", "", "Filter by accessibility identifier (ancestors are kept)")
	treeCmd.Flags().String("type", "", "Filter by raw element-type token (e.g. \"Button\")")
	treeCmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
}

func runTree(cmd *cobra.Command, args []string) error {
	identifier, _ := cmd.Flags().GetString("identifier")
	elementType, _ := cmd.Flags().GetString("type")
	f := model.Filter{Identifier: identifier, Type: elementType}

	provider, err := newProvider(cmd)
	if err != nil {
		return err
	}
	in := inspect.New(provider, nil)
	ctx := cmd.Context()

	if output.OutputFormat == output.FormatText {
		text, err := in.TreeReport(ctx, f)
		if err != nil {
			return err
		}
		fmt.Print(text)
		return nil
	}

	result, err := in.TreeSnapshot(ctx, f)
	if err != nil {
		return err
	}
	return output.Print(result)
}

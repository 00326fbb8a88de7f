package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rafiki270/XCUIDebug/internal/host"
	"github.com/rafiki270/XCUIDebug/internal/model"
	"github.com/rafiki270/XCUIDebug/internal/output"
)

var diffCmd = &cobra.Command{
	Use:   "diff <before> <after>",
	Short: "Compare two hierarchy dumps",
	Long: `Compare two dump files and report elements that were added, removed, or
changed between them. Elements are matched by accessibility identifier, so
unidentified elements are not tracked.

Examples:
  xcuidump diff before.txt after.txt
  xcuidump diff before.txt after.txt --format json`,
	Args: cobra.ExactArgs(2),
	RunE: runDiff,
}

func init() {
	rootCmd.AddCommand(diffCmd)
	diffCmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
}

func runDiff(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	before, err := host.FileSource{Path: args[0]}.FetchDump(ctx)
	if err != nil {
		return err
	}
	after, err := host.FileSource{Path: args[1]}.FetchDump(ctx)
	if err != nil {
		return err
	}

	changes := model.DiffRecords(model.ParseDump(before), model.ParseDump(after))

	if output.OutputFormat != output.FormatText {
		if changes == nil {
			changes = []model.Change{}
		}
		return output.Print(changes)
	}

	if len(changes) == 0 {
		fmt.Println("No changes")
		return nil
	}
	for _, c := range changes {
		switch c.Type {
		case model.ChangeAdded:
			fmt.Printf("+ %s[%s]\n", c.Element, c.Identifier)
		case model.ChangeRemoved:
			fmt.Printf("- %s[%s]\n", c.Element, c.Identifier)
		case model.ChangeChanged:
			for field, vals := range c.Fields {
				fmt.Printf("~ %s[%s] %s: '%s' -> '%s'\n", c.Element, c.Identifier, field, vals[0], vals[1])
			}
		}
	}
	return nil
}

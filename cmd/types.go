package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/rafiki270/XCUIDebug/internal/model"
	"github.com/rafiki270/XCUIDebug/internal/output"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the element-type code table",
	Long:  "List the mapping from raw element-type codes to human-readable names, or resolve a single code with --code.",
	RunE:  runTypes,
}

func init() {
	rootCmd.AddCommand(typesCmd)
	typesCmd.Flags().Int("code", -1, "Resolve a single element-type code")
	typesCmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
}

// typeEntry is one code→name row of the table output.
type typeEntry struct {
	Code int    `yaml:"code" json:"code"`
	Name string `yaml:"name" json:"name"`
}

func runTypes(cmd *cobra.Command, args []string) error {
	code, _ := cmd.Flags().GetInt("code")

	if code >= 0 {
		name, ok := model.TypeNames[code]
		if !ok {
			return fmt.Errorf("unknown element-type code: %d", code)
		}
		if output.OutputFormat == output.FormatText {
			fmt.Printf("%d  %s\n", code, name)
			return nil
		}
		return output.Print(typeEntry{Code: code, Name: name})
	}

	codes := make([]int, 0, len(model.TypeNames))
	for c := range model.TypeNames {
		codes = append(codes, c)
	}
	sort.Ints(codes)

	if output.OutputFormat == output.FormatText {
		for _, c := range codes {
			fmt.Printf("%2d  %s\n", c, model.TypeNames[c])
		}
		return nil
	}

	entries := make([]typeEntry, 0, len(codes))
	for _, c := range codes {
		entries = append(entries, typeEntry{Code: c, Name: model.TypeNames[c]})
	}
	return output.Print(entries)
}

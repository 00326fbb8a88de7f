package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rafiki270/XCUIDebug/internal/output"
	"github.com/rafiki270/XCUIDebug/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "xcuidump",
	Short: "Inspect UI hierarchy dumps from an automation host",
	Long:  "A CLI tool that reconstructs the UI element tree from an indentation-encoded hierarchy dump and renders filtered, human-readable reports.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("file", "", "Read the hierarchy dump from a file (\"-\" for stdin)")
	rootCmd.PersistentFlags().String("host", "", "Automation host base URL (e.g. http://localhost:8100)")
	rootCmd.PersistentFlags().String("format", "text", "Output format: text, yaml, json")
	rootCmd.PersistentFlags().Int("timeout", 5000, "Host request timeout in milliseconds")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		format, _ := rootCmd.PersistentFlags().GetString("format")
		switch format {
		case "text":
			output.OutputFormat = output.FormatText
		case "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		default:
			return fmt.Errorf("unsupported format: %s (use text, yaml, or json)", format)
		}
		if prettyFlag := cmd.Flags().Lookup("pretty"); prettyFlag != nil {
			if pretty, err := cmd.Flags().GetBool("pretty"); err == nil && pretty {
				output.PrettyOutput = true
			}
		}
		return nil
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/figmagen"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect FILE",
	Short: "Parse one Figma CSS export and print what figmagen sees",
	Long: `Parse a single export and report the derived component name, layout
type, rules, Tailwind classes, design tokens, and inferred structure
without writing any files.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, args []string) error {
		// #nosec G304 - path is a user-supplied CLI argument
		content, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}

		parsed := figmagen.Parse(string(content))
		code := figmagen.Generate(parsed)

		quiet := getBoolWithFallback("quiet", "quiet", false)
		formatFlag := getStringWithFallback("output-format", "inspect.output-format", "")
		format := figmagen.DetermineOutputFormat(formatFlag, quiet)

		useColors := figmagen.ShouldUseColors(getBoolWithFallback("color", "color", false))
		return figmagen.WriteReport(os.Stdout, parsed, code, format, useColors)
	},
}

func init() {
	f := inspectCmd.Flags()
	f.String("output-format", "", "Report format: text|summary|json")
}

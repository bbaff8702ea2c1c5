package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/figmagen"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate React components from Figma CSS exports",
	Long: `Scan a directory of Figma CSS exports and generate a component file,
Tailwind class list, and optionally CSS/HTML for each export.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.String("source", "design/exports", "Source directory with Figma CSS exports")
	f.String("output-dir", "src/components", "Output directory for generated files")
	f.StringSlice("include", nil, "Glob patterns for CSS files to include")
	f.String("format", "tsx", "Component format: tsx|jsx")
	f.Bool("emit-css", true, "Write the reassembled stylesheet per component")
	f.Bool("emit-html", false, "Write a standalone HTML preview per component")
}

func runGenerate(_ *cobra.Command, _ []string) error {
	config := buildGenerateConfig()

	result, err := figmagen.Transpile(config)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)

	if !quiet {
		useColors := figmagen.ShouldUseColors(getBoolWithFallback("color", "color", false))

		fmt.Printf("Generated components in %s\n", config.OutputDir)
		fmt.Printf("  Files scanned: %d\n", result.FilesScanned)
		fmt.Printf("  Components generated: %d\n", result.ComponentsGenerated)
		fmt.Printf("  Rules parsed: %d\n", result.RulesParsed)

		for _, w := range result.Warnings {
			fmt.Printf("  %s %s\n", figmagen.RenderStyle(figmagen.StyleWarn, "Warning:", useColors), w)
		}
	}

	return nil
}

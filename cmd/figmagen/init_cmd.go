package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .figmagen.yaml config file",
	Long:  `Create a .figmagen.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".figmagen.yaml"); err == nil && !force {
			return fmt.Errorf(".figmagen.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".figmagen.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .figmagen.yaml")
		return nil
	},
}

const defaultConfig = `# figmagen configuration
# Docs: https://github.com/yacobolo/figmagen

# Shared settings
verbose: false

# Generation settings
generate:
  source: design/exports
  output-dir: src/components
  include:
    - "**/*.css"
  format: tsx              # tsx | jsx
  emit-css: true
  emit-html: false

# Inspect settings
inspect:
  output-format: text      # text | summary | json
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .windcss.yaml config file",
	Long:  `Create a .windcss.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".windcss.yaml"); err == nil && !force {
			return fmt.Errorf(".windcss.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".windcss.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .windcss.yaml")
		return nil
	},
}

const defaultConfig = `# windcss configuration
# Docs: https://github.com/yacobolo/windcss

# Shared settings
verbose: false
dark-mode: class           # class | media
theme: ""                  # optional theme overrides file (YAML)

# Build settings
build:
  content:
    - "**/*.html"
    - "**/*.templ"
  output: dist/styles.css
  optimize: true
  workers: 0               # 0 = GOMAXPROCS
  safelist: []             # classes to emit even when unscanned

# Check settings
check:
  strict: false
  output-format: issues    # issues | summary | full | json
  max-issues-per-check: 0  # 0 = unlimited
  max-same-issues: 0       # 0 = unlimited
  print-lines: true
  print-check-name: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}

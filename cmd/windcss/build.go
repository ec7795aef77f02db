package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/windcss"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Compile utility classes from markup into a stylesheet",
	Long: `Scan content files for class attributes and compile every utility
token found into a deduplicated stylesheet.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return runBuild()
	},
}

func init() {
	f := buildCmd.Flags()
	f.StringSlice("content", nil, "Glob patterns for files to scan")
	f.String("output", "dist/styles.css", "Output CSS file")
	f.Int("workers", 0, "Parallel element compiles (0=GOMAXPROCS)")
	f.Bool("optimize", true, "Merge adjacent rules with identical bodies")
}

func runBuild() error {
	config := buildGenerateConfig()

	result, err := windcss.Generate(config)
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)

	if !quiet {
		fmt.Printf("Wrote %s\n", config.OutputPath)
		fmt.Printf("  Files scanned: %d\n", result.FilesScanned)
		fmt.Printf("  Classes compiled: %d unique\n", result.UniqueClasses)
		fmt.Printf("  Rules emitted: %d\n", result.RulesEmitted)

		for _, w := range result.Warnings {
			fmt.Printf("  Warning: %s\n", w)
		}
	}

	return nil
}

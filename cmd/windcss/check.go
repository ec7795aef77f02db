package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/windcss"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check utility class usage without writing CSS",
	Long: `Compile every class token found in content files and report the
ones the compiler cannot honor: unknown utilities, malformed variants,
and rejected arbitrary values.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return runCheck()
	},
}

func init() {
	f := checkCmd.Flags()
	f.StringSlice("content", nil, "Glob patterns for files to scan")
	f.Bool("strict", false, "Exit 1 on any issue, warnings included (CI mode)")
	f.String("output-format", "", "Output format: issues|summary|full|json")
	f.Int("max-issues-per-check", 0, "Max issues to show per check (0=unlimited)")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-check-name", true, "Show (check-name) suffix on issues")
}

func runCheck() error {
	checkConfig := buildCheckConfig()

	result, err := windcss.Check(checkConfig)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	outputFormat := getStringWithFallback("output-format", "check.output-format", "")
	format := windcss.DetermineOutputFormat(outputFormat, quiet)

	if !quiet {
		windcss.WriteOutput(os.Stdout, result, format, checkConfig)
	}

	// Exit code logic - "Soft Gate" approach
	if checkConfig.Strict {
		// Strict mode: any issue (error or warning) fails the build
		if len(result.Issues) > 0 {
			os.Exit(1)
		}
	} else if result.ErrorCount > 0 {
		// Default "Soft Gate" mode: only errors fail the build
		os.Exit(1)
	}

	return nil
}

package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "windcss",
	Short: "Utility-class CSS compiler",
	Long: `Compile utility class names found in markup into a stylesheet.
Each class token resolves through a fixed parser chain, so the same
markup always produces the same CSS.`,
	// Default behavior: run build when no subcommand is given.
	// We must call loadConfig here because PreRunE of buildCmd
	// is not triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runBuild()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", ".windcss.yaml", "Config file path")
	rootCmd.PersistentFlags().String("theme", "", "Theme overrides file (YAML)")
	rootCmd.PersistentFlags().String("dark-mode", "class", "Dark variant strategy: class|media")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

package windcss

import (
	"io"
	"os"
)

// DetermineOutputFormat selects the appropriate output format based on flags
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	// Explicit --quiet flag wins (exit code only)
	if quiet {
		return OutputIssues // Issues only, suppressed by the caller
	}

	switch formatFlag {
	case "issues":
		return OutputIssues
	case "summary":
		return OutputSummary
	case "full":
		return OutputFull
	case "json":
		return OutputJSON
	}

	// Following golangci-lint's UX: issues only by default
	return OutputIssues
}

// WriteOutput writes the check result in the specified format
func WriteOutput(w io.Writer, result *CheckResult, format OutputFormat, config CheckConfig) {
	switch format {
	case OutputIssues:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)

	case OutputSummary:
		reporter := NewReporter(w, config)
		reporter.PrintStatistics(*result)

	case OutputFull:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)
		reporter.PrintStatistics(*result)

	case OutputJSON:
		if err := WriteJSON(w, result); err != nil {
			// Log error but don't crash
			os.Stderr.WriteString("Error writing JSON: " + err.Error() + "\n")
		}
	}
}

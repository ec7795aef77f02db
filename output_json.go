package windcss

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	Stats     JSONStats   `json:"stats"`
	Issues    []JSONIssue `json:"issues"`
}

// JSONSummary contains high-level issue counts
type JSONSummary struct {
	TotalIssues  int `json:"total_issues"`
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
	FilesScanned int `json:"files_scanned"`
}

// JSONStats contains class usage statistics
type JSONStats struct {
	ElementsFound int            `json:"elements_found"`
	ClassesFound  int            `json:"classes_found"`
	UniqueClasses int            `json:"unique_classes"`
	Categories    map[string]int `json:"categories"`
}

// JSONIssue represents a single check issue
type JSONIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Check    string `json:"check"`
	Source   string `json:"source,omitempty"` // Optional source line
}

// WriteJSON writes the check result as JSON
func WriteJSON(w io.Writer, result *CheckResult) error {
	output := buildJSONOutput(result)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts CheckResult to JSONOutput
func buildJSONOutput(result *CheckResult) JSONOutput {
	jsonIssues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		jsonIssues[i] = JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: issue.Severity,
			Message:  issue.Text,
			Check:    issue.FromCheck,
			Source:   source,
		}
	}

	categories := make(map[string]int, len(result.Categories))
	for cat, count := range result.Categories {
		categories[string(cat)] = count
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:  len(result.Issues),
			Errors:       result.ErrorCount,
			Warnings:     result.WarningCount,
			FilesScanned: result.FilesScanned,
		},
		Stats: JSONStats{
			ElementsFound: result.ElementsFound,
			ClassesFound:  result.ClassesFound,
			UniqueClasses: result.UniqueClasses,
			Categories:    categories,
		},
		Issues: jsonIssues,
	}
}

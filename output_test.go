package windcss

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetermineOutputFormat(t *testing.T) {
	tests := []struct {
		name       string
		formatFlag string
		quiet      bool
		expected   OutputFormat
	}{
		{
			name:     "explicit quiet flag",
			quiet:    true,
			expected: OutputIssues,
		},
		{
			name:       "explicit issues format",
			formatFlag: "issues",
			expected:   OutputIssues,
		},
		{
			name:       "explicit summary format",
			formatFlag: "summary",
			expected:   OutputSummary,
		},
		{
			name:       "explicit full format",
			formatFlag: "full",
			expected:   OutputFull,
		},
		{
			name:       "explicit json format",
			formatFlag: "json",
			expected:   OutputJSON,
		},
		{
			name:     "default format is issues",
			expected: OutputIssues,
		},
		{
			name:       "quiet overrides format flag",
			formatFlag: "full",
			quiet:      true,
			expected:   OutputIssues,
		},
		{
			name:       "unknown format falls back to issues",
			formatFlag: "xml",
			expected:   OutputIssues,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetermineOutputFormat(tt.formatFlag, tt.quiet))
		})
	}
}

func sampleCheckResult() *CheckResult {
	return &CheckResult{
		Issues: []Issue{
			{
				FromCheck:   "unrecognized-utility",
				Text:        `unrecognized utility "btn-custom"`,
				Severity:    SeverityWarning,
				SourceLines: []string{`<div class="btn-custom">`},
				Pos:         IssuePos{Filename: "index.html", Line: 3, Column: 13},
			},
			{
				FromCheck:   "arbitrary-value",
				Text:        `arbitrary value "bad;value" rejected`,
				Severity:    SeverityError,
				SourceLines: []string{`<div class="m-[bad;value]">`},
				Pos:         IssuePos{Filename: "index.html", Line: 7, Column: 13},
			},
		},
		FilesScanned:  2,
		ElementsFound: 5,
		ClassesFound:  12,
		UniqueClasses: 9,
		ErrorCount:    1,
		WarningCount:  1,
		Categories: map[PropertyCategory]int{
			CategoryLayout: 4,
			CategoryVisual: 2,
		},
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleCheckResult()))

	var parsed JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &parsed))

	assert.Equal(t, "1.0", parsed.Version)
	assert.NotEmpty(t, parsed.Timestamp)
	assert.Equal(t, 2, parsed.Summary.TotalIssues)
	assert.Equal(t, 1, parsed.Summary.Errors)
	assert.Equal(t, 1, parsed.Summary.Warnings)
	assert.Equal(t, 2, parsed.Summary.FilesScanned)
	assert.Equal(t, 5, parsed.Stats.ElementsFound)
	assert.Equal(t, 9, parsed.Stats.UniqueClasses)
	assert.Equal(t, 4, parsed.Stats.Categories["layout"])

	require.Len(t, parsed.Issues, 2)
	assert.Equal(t, "index.html", parsed.Issues[0].File)
	assert.Equal(t, 3, parsed.Issues[0].Line)
	assert.Equal(t, "warning", parsed.Issues[0].Severity)
	assert.Equal(t, "unrecognized-utility", parsed.Issues[0].Check)
	assert.Equal(t, `<div class="btn-custom">`, parsed.Issues[0].Source)
}

func TestWriteOutput_Issues(t *testing.T) {
	var buf bytes.Buffer
	config := CheckConfig{PrintIssuedLines: true, PrintCheckName: true}

	WriteOutput(&buf, sampleCheckResult(), OutputIssues, config)
	out := buf.String()

	assert.Contains(t, out, "index.html:3:13:")
	assert.Contains(t, out, `unrecognized utility "btn-custom"`)
	assert.Contains(t, out, "(unrecognized-utility)")
	assert.Contains(t, out, "2 issues (1 error, 1 warning):")
	// Issues format omits statistics.
	assert.NotContains(t, out, "Files scanned")
}

func TestWriteOutput_Summary(t *testing.T) {
	var buf bytes.Buffer

	WriteOutput(&buf, sampleCheckResult(), OutputSummary, CheckConfig{})
	out := buf.String()

	assert.Contains(t, out, "Files scanned:  2")
	assert.Contains(t, out, "Class tokens:   12 (9 unique)")
	assert.Contains(t, out, "layout")
	assert.NotContains(t, out, "index.html:3:13:")
}

func TestWriteOutput_Full(t *testing.T) {
	var buf bytes.Buffer

	WriteOutput(&buf, sampleCheckResult(), OutputFull, CheckConfig{PrintCheckName: true})
	out := buf.String()

	assert.Contains(t, out, "index.html:3:13:")
	assert.Contains(t, out, "Files scanned:  2")
}

func TestWriteOutput_JSONIsValid(t *testing.T) {
	var buf bytes.Buffer

	WriteOutput(&buf, sampleCheckResult(), OutputJSON, CheckConfig{})

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &parsed))
}

func TestReporter_CaretAlignment(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, CheckConfig{PrintIssuedLines: true})

	caret := r.buildCaretIndicator(`<div class="bogus">`, 13)
	assert.Equal(t, strings.Repeat(" ", 12)+"^", caret)

	// Tabs in the prefix stay tabs so the caret lines up in a terminal.
	caret = r.buildCaretIndicator("\t<div class=\"bogus\">", 14)
	assert.Equal(t, "\t"+strings.Repeat(" ", 12)+"^", caret)

	assert.Equal(t, "^", r.buildCaretIndicator("x", 0))
}

func TestReporter_SummaryNoIssues(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, CheckConfig{})

	r.PrintSummary(CheckResult{})
	assert.Contains(t, buf.String(), "0 issues:")
	assert.NotContains(t, buf.String(), "Hint:")
}

func TestReporter_SummaryTruncated(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, CheckConfig{})

	result := CheckResult{
		Issues: []Issue{
			{FromCheck: "unrecognized-utility", Severity: SeverityWarning},
		},
		WarningCount:   1,
		TruncatedCount: 3,
	}
	r.PrintSummary(result)

	out := buf.String()
	assert.Contains(t, out, "1 issue (3 issues truncated):")
	assert.Contains(t, out, "* unrecognized-utility: 1")
}

func TestPluralizeCount(t *testing.T) {
	assert.Equal(t, "1 issue", pluralizeCount(1, "issue", "issues"))
	assert.Equal(t, "2 issues", pluralizeCount(2, "issues", "issues"))
	assert.Equal(t, "0 errors", pluralizeCount(0, "error", "errors"))
}

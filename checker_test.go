package windcss

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck_CleanContent(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "index.html", `<div class="flex items-center p-4"></div>`)

	result, err := Check(CheckConfig{
		ContentPaths: []string{filepath.Join(dir, "*.html")},
	})
	require.NoError(t, err)

	assert.Empty(t, result.Issues)
	assert.Equal(t, 0, result.ErrorCount)
	assert.Equal(t, 0, result.WarningCount)
	assert.Equal(t, 1, result.FilesScanned)
	assert.Equal(t, 3, result.UniqueClasses)
}

func TestCheck_UnknownClassIsWarning(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "index.html", `<div class="flex btn-custom"></div>`)

	result, err := Check(CheckConfig{
		ContentPaths: []string{filepath.Join(dir, "*.html")},
	})
	require.NoError(t, err)

	require.Len(t, result.Issues, 1)
	issue := result.Issues[0]
	assert.Equal(t, SeverityWarning, issue.Severity)
	assert.Contains(t, issue.Text, "btn-custom")
	assert.Equal(t, 1, result.WarningCount)
	assert.Equal(t, 0, result.ErrorCount)
}

func TestCheck_BrokenTokenIsError(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "index.html", `<div class="m-[bad;value]"></div>`)

	result, err := Check(CheckConfig{
		ContentPaths: []string{filepath.Join(dir, "*.html")},
	})
	require.NoError(t, err)

	require.Len(t, result.Issues, 1)
	assert.Equal(t, SeverityError, result.Issues[0].Severity)
	assert.Equal(t, 1, result.ErrorCount)
}

func TestCheck_IssuePosition(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "page.html",
		"<body>\n<div class=\"flex bogus\"></div>\n</body>\n")

	result, err := Check(CheckConfig{
		ContentPaths: []string{filepath.Join(dir, "*.html")},
	})
	require.NoError(t, err)

	require.Len(t, result.Issues, 1)
	pos := result.Issues[0].Pos
	assert.Contains(t, pos.Filename, "page.html")
	assert.Equal(t, 2, pos.Line)
	assert.Greater(t, pos.Column, 0)
	require.NotEmpty(t, result.Issues[0].SourceLines)
	assert.Contains(t, result.Issues[0].SourceLines[0], "bogus")
}

func TestCheck_MaxSameIssues(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "a.html",
		`<div class="bogus"></div><div class="bogus"></div><div class="bogus"></div>`)

	result, err := Check(CheckConfig{
		ContentPaths:  []string{filepath.Join(dir, "*.html")},
		MaxSameIssues: 1,
	})
	require.NoError(t, err)

	assert.Len(t, result.Issues, 1)
	assert.Equal(t, 2, result.TruncatedCount)
}

func TestCheck_MaxIssuesPerCheck(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "a.html",
		`<div class="bogus-one bogus-two bogus-three"></div>`)

	result, err := Check(CheckConfig{
		ContentPaths:      []string{filepath.Join(dir, "*.html")},
		MaxIssuesPerCheck: 2,
	})
	require.NoError(t, err)

	assert.Len(t, result.Issues, 2)
	assert.Equal(t, 1, result.TruncatedCount)
}

func TestCheck_Categories(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "index.html",
		`<div class="flex text-lg shadow-md"></div>`)

	result, err := Check(CheckConfig{
		ContentPaths: []string{filepath.Join(dir, "*.html")},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Categories[CategoryLayout])
	assert.Equal(t, 1, result.Categories[CategoryTypography])
	assert.Equal(t, 1, result.Categories[CategoryVisual])
}

func TestSortIssues(t *testing.T) {
	issues := []Issue{
		{Pos: IssuePos{Filename: "b.html", Line: 1, Column: 1}},
		{Pos: IssuePos{Filename: "a.html", Line: 5, Column: 2}},
		{Pos: IssuePos{Filename: "a.html", Line: 5, Column: 1}},
		{Pos: IssuePos{Filename: "a.html", Line: 2, Column: 9}},
	}

	SortIssues(issues)

	assert.Equal(t, IssuePos{Filename: "a.html", Line: 2, Column: 9}, issues[0].Pos)
	assert.Equal(t, IssuePos{Filename: "a.html", Line: 5, Column: 1}, issues[1].Pos)
	assert.Equal(t, IssuePos{Filename: "a.html", Line: 5, Column: 2}, issues[2].Pos)
	assert.Equal(t, IssuePos{Filename: "b.html", Line: 1, Column: 1}, issues[3].Pos)
}

package windcss

import (
	"fmt"
	"sort"

	"github.com/yacobolo/windcss/internal/engine"
)

// Check compiles every scanned class without emitting CSS and reports
// the diagnostics as issues: unknown utilities, malformed variants,
// rejected arbitrary values.
func Check(config CheckConfig) (*CheckResult, error) {
	theme, err := LoadTheme(config.ThemePath)
	if err != nil {
		return nil, fmt.Errorf("theme failed: %w", err)
	}

	eng, err := engine.New(theme, engine.Options{DarkMode: config.DarkMode})
	if err != nil {
		return nil, err
	}

	elements, stats, err := ScanFiles(config.ContentPaths, false)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}

	result := &CheckResult{
		FilesScanned:  stats.FilesScanned,
		ElementsFound: len(elements),
	}

	unique := make(map[string]bool)
	var issues []Issue

	// Elements compile one at a time so each diagnostic can be pinned
	// to the reference that produced it.
	for _, elem := range elements {
		result.ClassesFound += len(elem.Classes)
		for _, class := range elem.Classes {
			unique[class] = true
		}

		for _, diag := range eng.CompileElement(elem.Classes) {
			issues = append(issues, Issue{
				FromCheck:   string(diag.Kind),
				Text:        diag.Message,
				Severity:    severityForKind(diag.Kind),
				SourceLines: sourceLinesFor(elem, diag.Token),
				Pos:         positionFor(elem, diag.Token),
			})
		}
	}
	result.UniqueClasses = len(unique)
	result.Categories = CategorizeRules(eng.Rules())

	issues, truncated := limitIssues(issues, config)
	result.Issues = issues
	result.TruncatedCount = truncated

	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityError:
			result.ErrorCount++
		case SeverityWarning:
			result.WarningCount++
		}
	}

	return result, nil
}

// severityForKind maps diagnostic kinds onto issue severities. Unknown
// utilities are warnings (the class may belong to handwritten CSS);
// everything else means the token was meant for the compiler and is
// broken.
func severityForKind(kind engine.DiagnosticKind) string {
	if kind == engine.DiagUnrecognized {
		return SeverityWarning
	}
	return SeverityError
}

// positionFor finds the reference matching token within elem. Falls
// back to the element's own location for tokens that no longer match a
// reference verbatim.
func positionFor(elem Element, token string) IssuePos {
	for _, ref := range elem.Refs {
		if ref.ClassName == token {
			return IssuePos{
				Filename: ref.Location.File,
				Line:     ref.Location.Line,
				Column:   ref.Location.Column,
			}
		}
	}
	return IssuePos{
		Filename: elem.Location.File,
		Line:     elem.Location.Line,
		Column:   elem.Location.Column,
	}
}

func sourceLinesFor(elem Element, token string) []string {
	for _, ref := range elem.Refs {
		if ref.ClassName == token {
			return []string{ref.LineContent}
		}
	}
	return []string{elem.Location.Text}
}

// limitIssues applies the configured per-kind and duplicate caps,
// returning the trimmed slice and the number of issues dropped.
func limitIssues(issues []Issue, config CheckConfig) ([]Issue, int) {
	total := len(issues)

	if config.MaxSameIssues > 0 {
		issues = deduplicateSameIssues(issues, config.MaxSameIssues)
	}

	if config.MaxIssuesPerCheck > 0 {
		perKind := make(map[string]int)
		kept := issues[:0]
		for _, issue := range issues {
			if perKind[issue.FromCheck] < config.MaxIssuesPerCheck {
				perKind[issue.FromCheck]++
				kept = append(kept, issue)
			}
		}
		issues = kept
	}

	return issues, total - len(issues)
}

// deduplicateSameIssues keeps at most maxSame issues with identical text
func deduplicateSameIssues(issues []Issue, maxSame int) []Issue {
	counts := make(map[string]int)
	kept := issues[:0]
	for _, issue := range issues {
		if counts[issue.Text] < maxSame {
			counts[issue.Text]++
			kept = append(kept, issue)
		}
	}
	return kept
}

// SortIssues orders issues by file, then line, then column
func SortIssues(issues []Issue) {
	sort.Slice(issues, func(i, j int) bool {
		if issues[i].Pos.Filename != issues[j].Pos.Filename {
			return issues[i].Pos.Filename < issues[j].Pos.Filename
		}
		if issues[i].Pos.Line != issues[j].Pos.Line {
			return issues[i].Pos.Line < issues[j].Pos.Line
		}
		return issues[i].Pos.Column < issues[j].Pos.Column
	})
}

package windcss

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// Element is one markup element's class list, the unit the compiler
// works on. Utilities on the same element share gradient and
// custom-property state; utilities on different elements never do.
type Element struct {
	Classes  []string         // Tokens in written order
	Refs     []ClassReference // One reference per token, for diagnostics
	Location FileLocation     // Start of the class attribute value
}

// ClassReference pins a single class token to its position in a file
type ClassReference struct {
	ClassName   string
	Location    FileLocation
	LineContent string
}

// FileLocation tracks where a class reference was found
type FileLocation struct {
	File   string
	Line   int
	Column int    // 1-based column (exact start of class name)
	Text   string // Full line content for source display
}

// ScanStats tracks file scanning statistics
type ScanStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesScanned    int // Files actually scanned (after filtering)
	FilesSkipped    int // Files skipped due to filtering
}

// scanPattern represents a regex for finding class attributes
type scanPattern struct {
	name  string
	regex *regexp.Regexp
}

var (
	// Patterns for finding class attributes.
	// Ordered from most specific to least specific.
	patterns = []scanPattern{
		{
			name:  "class attribute, double quotes",
			regex: regexp.MustCompile(`class="([^"]+)"`),
		},
		{
			name:  "class attribute, single quotes",
			regex: regexp.MustCompile(`class='([^']+)'`),
		},
		{
			name:  "className attribute (JSX)",
			regex: regexp.MustCompile(`className="([^"]+)"`),
		},
		{
			name:  "class with string literal in braces",
			regex: regexp.MustCompile(`class=\{\s*"([^"]+)"`),
		},
		{
			name:  "templ.Classes with string",
			regex: regexp.MustCompile(`templ\.Classes\(\s*"([^"]+)"`),
		},
	}

	// Comment patterns to skip
	commentPattern = regexp.MustCompile(`^\s*(//|<!--)`)

	// gitignore caching
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// isGenerated checks if a file is tool-generated output that should not
// feed the compiler. Handles templ output and minified assets.
func isGenerated(path string) bool {
	return strings.HasSuffix(path, "_templ.go") ||
		strings.HasSuffix(path, ".templ.go") ||
		strings.Contains(filepath.Base(path), ".min.")
}

// loadGitIgnore loads the .gitignore file once (thread-safe).
// Gracefully degrades if .gitignore doesn't exist.
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile determines if a file should be excluded from scanning.
//
// Two-layer filtering:
// 1. Pattern check (fast): skip generated and minified files
// 2. Gitignore check: skip gitignored files (only for relative paths)
func shouldSkipFile(path string) bool {
	if isGenerated(path) {
		return true
	}

	// Absolute paths (like /tmp/...) are outside the project, so the
	// project gitignore does not apply to them.
	if !filepath.IsAbs(path) {
		gi := loadGitIgnore()
		if gi != nil && gi.MatchesPath(path) {
			return true
		}
	}

	return false
}

// ScanFiles scans files matching the given patterns for class
// attributes, returning one Element per attribute found.
func ScanFiles(scanPatterns []string, verbose bool) ([]Element, ScanStats, error) {
	files, stats, err := expandGlobPatterns(scanPatterns)
	if err != nil {
		return nil, stats, err
	}

	if verbose && stats.FilesSkipped > 0 {
		fmt.Printf("Scanned %d files (skipped %d generated/ignored files)\n",
			stats.FilesScanned, stats.FilesSkipped)
	}

	var elements []Element
	for _, file := range files {
		found, err := scanFile(file)
		if err != nil {
			// Unreadable file, keep going
			continue
		}
		elements = append(elements, found...)
	}

	return elements, stats, nil
}

// expandGlobPatterns expands glob patterns to actual file paths and
// tracks statistics
func expandGlobPatterns(globs []string) ([]string, ScanStats, error) {
	var allFiles []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range globs {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++

			if shouldSkipFile(match) {
				stats.FilesSkipped++
			} else {
				allFiles = append(allFiles, match)
				seen[match] = true
				stats.FilesScanned++
			}
		}
	}

	return allFiles, stats, nil
}

// scanFile scans a single file for class attributes
func scanFile(filePath string) ([]Element, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var elements []Element
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		elements = append(elements, extractElementsFromLine(line, lineNum, filePath)...)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return elements, nil
}

// extractElementsFromLine extracts class attributes from a line, one
// Element per attribute
func extractElementsFromLine(line string, lineNum int, file string) []Element {
	if commentPattern.MatchString(line) {
		return nil
	}

	var elements []Element
	for _, pattern := range patterns {
		matches := pattern.regex.FindAllStringSubmatchIndex(line, -1)
		for _, match := range matches {
			if len(match) < 4 {
				continue
			}

			valueStart := match[2]
			value := line[valueStart:match[3]]
			classes := strings.Fields(value)
			if len(classes) == 0 {
				continue
			}

			elem := Element{
				Classes: classes,
				Location: FileLocation{
					File:   file,
					Line:   lineNum,
					Column: valueStart + 1,
					Text:   strings.TrimSpace(line),
				},
			}
			for _, class := range classes {
				elem.Refs = append(elem.Refs, ClassReference{
					ClassName: class,
					Location: FileLocation{
						File:   file,
						Line:   lineNum,
						Column: findClassColumn(line, valueStart, class),
						Text:   strings.TrimSpace(line),
					},
					LineContent: strings.TrimSpace(line),
				})
			}
			elements = append(elements, elem)
		}
		// First matching pattern wins for a line; trying the rest
		// would double-count class="..." inside braces.
		if len(elements) > 0 {
			break
		}
	}

	return elements
}

// findClassColumn locates the 1-based column where class starts,
// searching from the attribute value onward
func findClassColumn(line string, valueStart int, class string) int {
	idx := strings.Index(line[valueStart:], class)
	if idx == -1 {
		return valueStart + 1
	}
	return valueStart + idx + 1
}

// GetRelativePath returns a relative path from the current working directory
func GetRelativePath(absPath string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return absPath
	}

	rel, err := filepath.Rel(cwd, absPath)
	if err != nil {
		return absPath
	}

	return rel
}

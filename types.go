package windcss

// Config controls stylesheet generation
type Config struct {
	ContentPaths []string // Glob patterns for files to scan (doublestar ** supported)
	OutputPath   string   // CSS file to write; empty means the caller consumes result.CSS
	ThemePath    string   // Optional theme overrides (YAML); empty means defaults only
	DarkMode     string   // Dark variant strategy: "class" (default) or "media"
	Workers      int      // Parallel element compiles; 0 means GOMAXPROCS
	Optimize     bool     // Merge adjacent rules that share a declaration body
	Verbose      bool     // Print progress while generating

	// Safelist lists classes to generate even when no scanned file uses
	// them, for class names assembled at runtime.
	Safelist []string

	// Plugins are extra parsers registered after the built-in chain.
	// A plugin that overlaps an existing parser fails generation.
	Plugins []ParserDescriptor
}

// GenerateResult summarizes a generation run
type GenerateResult struct {
	FilesScanned  int
	ElementsFound int
	ClassesFound  int // Total class references, including repeats
	UniqueClasses int
	RulesEmitted  int
	CSS           string
	Diagnostics   []Diagnostic
	Warnings      []string
}

// CheckConfig controls the check run
type CheckConfig struct {
	ContentPaths []string
	ThemePath    string
	DarkMode     string
	Strict       bool // Any issue fails, not just errors

	// Output configuration
	MaxIssuesPerCheck int // Limit issues per diagnostic kind (0=unlimited)
	MaxSameIssues     int // Deduplicate repeated messages (0=unlimited)
	PrintIssuedLines  bool
	PrintCheckName    bool
	UseColors         bool
}

// CheckResult holds everything a check run found
type CheckResult struct {
	Issues         []Issue
	FilesScanned   int
	ElementsFound  int
	ClassesFound   int
	UniqueClasses  int
	ErrorCount     int
	WarningCount   int
	TruncatedCount int
	Categories     map[PropertyCategory]int // Resolved classes grouped by emitted property
}

// OutputFormat selects how check results are rendered
type OutputFormat string

const (
	OutputIssues  OutputFormat = "issues"  // Issues only (default)
	OutputSummary OutputFormat = "summary" // Statistics only, no individual issues
	OutputFull    OutputFormat = "full"    // Issues plus statistics
	OutputJSON    OutputFormat = "json"    // Machine-readable export
)

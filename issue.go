package windcss

// Issue represents a single check finding in golangci-lint format
type Issue struct {
	FromCheck   string   `json:"FromCheck"`   // Diagnostic kind, e.g. "unrecognized-utility"
	Text        string   `json:"Text"`        // "unknown utility \"txt-bold\""
	Severity    string   `json:"Severity"`    // "", "warning", "error"
	SourceLines []string `json:"SourceLines"` // Lines of code with issue
	Pos         IssuePos `json:"Pos"`         // File location
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"`
	Line     int    `json:"Line"`
	Column   int    `json:"Column"` // 1-based, exact start of the class token
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = ""
)

package windcss

import "github.com/yacobolo/windcss/internal/engine"

// Aliases for the engine types a plugin author needs. Custom parsers
// are plain descriptors; registration re-runs the overlap audit, so a
// plugin whose Matches predicate collides with a built-in parser is
// rejected up front.
type (
	// Declaration is a single property/value pair.
	Declaration = engine.Declaration
	// Rule is a compiled CSS rule with its media nesting.
	Rule = engine.Rule
	// Diagnostic reports a token the compiler could not fully honor.
	Diagnostic = engine.Diagnostic
	// Theme holds the design scales parsers resolve against.
	Theme = engine.Theme
	// ElementContext carries per-element state across a class list.
	ElementContext = engine.ElementContext
	// ParserDescriptor declares a utility parser: name, priority band,
	// match predicate, and generator.
	ParserDescriptor = engine.ParserDescriptor
)

// Priority bands for plugin parsers, narrowest first. A parser claims
// tokens at its band only after every narrower band has declined them.
const (
	PriorityLiteral  = engine.PriorityLiteral
	PriorityBracket  = engine.PriorityBracket
	PriorityStateful = engine.PriorityStateful
	PriorityScale    = engine.PriorityScale
	PriorityBroad    = engine.PriorityBroad
	PriorityBroadest = engine.PriorityBroadest
)

// DefaultTheme returns the built-in design scales.
func DefaultTheme() *Theme { return engine.DefaultTheme() }

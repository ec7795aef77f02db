package engine

import "fmt"

// DiagnosticKind classifies a non-fatal per-token failure.
type DiagnosticKind string

// Diagnostic kinds. Every kind is scoped to a single token; none of them
// stop processing of the remaining tokens or elements.
const (
	DiagMalformedVariant   DiagnosticKind = "malformed-variant"
	DiagUnrecognized       DiagnosticKind = "unrecognized-utility"
	DiagArbitraryValue     DiagnosticKind = "arbitrary-value"
	DiagParserGeneration   DiagnosticKind = "parser-generation"
	DiagConflictingVariant DiagnosticKind = "conflicting-variant"
)

// Diagnostic is one structured record on the diagnostics channel.
type Diagnostic struct {
	Token   string         `json:"token"`
	Kind    DiagnosticKind `json:"kind"`
	Message string         `json:"message"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s", d.Token, d.Kind, d.Message)
}

// UnrecognizedError reports that no registered parser matched a base
// utility.
type UnrecognizedError struct {
	Base string
}

func (e *UnrecognizedError) Error() string {
	return fmt.Sprintf("no utility parser matches %q", e.Base)
}

// ArbitraryValueError reports a bracketed value that failed validation.
type ArbitraryValueError struct {
	Value  string
	Reason string
}

func (e *ArbitraryValueError) Error() string {
	return fmt.Sprintf("invalid arbitrary value %q: %s", e.Value, e.Reason)
}

// GenerationError reports that a matched parser rejected the utility
// during generation (out-of-range value, unknown theme key, ...).
type GenerationError struct {
	Parser string
	Base   string
	Reason string
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s: cannot generate %q: %s", e.Parser, e.Base, e.Reason)
}

// ConflictingVariantError reports an invalid variant combination, such as
// two responsive prefixes on one token.
type ConflictingVariantError struct {
	Token  string
	Reason string
}

func (e *ConflictingVariantError) Error() string {
	return fmt.Sprintf("conflicting variants on %q: %s", e.Token, e.Reason)
}

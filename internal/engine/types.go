package engine

import "strings"

// Declaration is a single CSS property/value pair.
type Declaration struct {
	Property string
	Value    string
}

// Rule is one generated CSS rule. Media holds the wrapping media query
// texts (without the "@media " prefix) from outermost to innermost.
type Rule struct {
	Selector     string
	Media        []string
	Declarations []Declaration
	OriginClass  string
}

// Key identifies a rule inside the store. Two rules with the same selector
// and the same media nesting collide; the later insertion wins.
func (r Rule) Key() string {
	if len(r.Media) == 0 {
		return r.Selector
	}
	return strings.Join(r.Media, "\x1f") + "\x1f" + r.Selector
}

// DeclarationsText renders the declaration block in a canonical single-line
// form. Used by the optimizer to detect mergeable rules.
func (r Rule) DeclarationsText() string {
	var b strings.Builder
	for i, d := range r.Declarations {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(d.Property)
		b.WriteString(": ")
		b.WriteString(d.Value)
	}
	return b.String()
}

// VariantKind discriminates the recognized variant prefixes.
type VariantKind int

// Variant kinds, in no particular order.
const (
	VariantResponsive VariantKind = iota
	VariantState
	VariantDark
	VariantArbitrarySelector
	VariantArbitraryMedia
)

func (k VariantKind) String() string {
	switch k {
	case VariantResponsive:
		return "responsive"
	case VariantState:
		return "state"
	case VariantDark:
		return "dark"
	case VariantArbitrarySelector:
		return "arbitrary-selector"
	case VariantArbitraryMedia:
		return "arbitrary-media"
	}
	return "unknown"
}

// VariantTag is one parsed variant prefix. Value holds the breakpoint name,
// pseudo-class name, or the verbatim bracket body for arbitrary variants.
// The Dark kind carries no value.
type VariantTag struct {
	Kind  VariantKind
	Value string
}

// setDeclaration appends a declaration, replacing any earlier declaration
// for the same property in place. Rules carry one authoritative value per
// property so output stays deterministic under downstream reordering.
func setDeclaration(decls []Declaration, d Declaration) []Declaration {
	for i := range decls {
		if decls[i].Property == d.Property {
			decls[i].Value = d.Value
			return decls
		}
	}
	return append(decls, d)
}

// normalizeDeclarations folds repeated property names, keeping the last
// value at the first occurrence's position.
func normalizeDeclarations(decls []Declaration) []Declaration {
	out := make([]Declaration, 0, len(decls))
	for _, d := range decls {
		out = setDeclaration(out, d)
	}
	return out
}

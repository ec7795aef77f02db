package engine

import (
	"fmt"
	"strings"
)

// stateSelectors maps a recognized state variant to the selector text
// applied to the rule. Entries containing '&' are templates where '&'
// stands for the selector built so far; plain entries are appended as a
// compound suffix.
var stateSelectors = map[string]string{
	"hover":         ":hover",
	"focus":         ":focus",
	"focus-within":  ":focus-within",
	"focus-visible": ":focus-visible",
	"active":        ":active",
	"visited":       ":visited",
	"target":        ":target",
	"disabled":      ":disabled",
	"enabled":       ":enabled",
	"checked":       ":checked",
	"required":      ":required",
	"invalid":       ":invalid",
	"first":         ":first-child",
	"last":          ":last-child",
	"only":          ":only-child",
	"odd":           ":nth-child(odd)",
	"even":          ":nth-child(even)",
	"first-of-type": ":first-of-type",
	"last-of-type":  ":last-of-type",
	"empty":         ":empty",
	"group-hover":   ".group:hover &",
	"group-focus":   ".group:focus &",
}

// Splitter decomposes a raw class token into its base utility and ordered
// variant stack. It is pure: the same token always splits the same way.
type Splitter struct {
	theme *Theme
}

// NewSplitter builds a splitter recognizing the theme's breakpoints.
func NewSplitter(theme *Theme) *Splitter {
	return &Splitter{theme: theme}
}

// Split strips recognized variant prefixes from the left until the
// remainder no longer starts with one. Variant order in the source string
// is preserved; duplicate (kind, value) pairs collapse to the first
// occurrence. A malformed bracketed variant degrades the whole token to a
// variant-free base and is reported through the returned diagnostic.
func (s *Splitter) Split(token string) (string, []VariantTag, *Diagnostic) {
	var tags []VariantTag
	rest := token

	for {
		if strings.HasPrefix(rest, "[") {
			body, tail, ok := splitBracket(rest)
			if !ok {
				return token, nil, &Diagnostic{
					Token:   token,
					Kind:    DiagMalformedVariant,
					Message: "unterminated '[' in variant prefix",
				}
			}
			if !strings.HasPrefix(tail, ":") {
				// Bracket belongs to the base utility, e.g. [--x:1px].
				break
			}
			tag := VariantTag{Kind: VariantArbitrarySelector, Value: body}
			if strings.HasPrefix(body, "@") {
				tag.Kind = VariantArbitraryMedia
			}
			tags = appendTag(tags, tag)
			rest = tail[1:]
			continue
		}

		i := indexOutsideBrackets(rest, ':')
		if i < 0 {
			break
		}
		name := rest[:i]
		tag, ok := s.classify(name)
		if !ok {
			break
		}
		tags = appendTag(tags, tag)
		rest = rest[i+1:]
	}

	if rest == "" {
		return token, tags, &Diagnostic{
			Token:   token,
			Kind:    DiagMalformedVariant,
			Message: "token has variants but no base utility",
		}
	}
	return rest, tags, nil
}

func (s *Splitter) classify(name string) (VariantTag, bool) {
	if name == "dark" {
		return VariantTag{Kind: VariantDark}, true
	}
	if s.theme.IsBreakpoint(name) {
		return VariantTag{Kind: VariantResponsive, Value: name}, true
	}
	if _, ok := stateSelectors[name]; ok {
		return VariantTag{Kind: VariantState, Value: name}, true
	}
	return VariantTag{}, false
}

// appendTag collapses exact duplicates: applying the same variant twice is
// idempotent.
func appendTag(tags []VariantTag, tag VariantTag) []VariantTag {
	for _, t := range tags {
		if t == tag {
			return tags
		}
	}
	return append(tags, tag)
}

// splitBracket splits "[body]rest" into body and rest, honoring nested
// brackets. ok is false when the opening bracket is unterminated.
func splitBracket(s string) (body, rest string, ok bool) {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return s[1:i], s[i+1:], true
			}
		}
	}
	return "", "", false
}

// indexOutsideBrackets returns the index of the first occurrence of c that
// is not inside square brackets or parentheses, or -1.
func indexOutsideBrackets(s string, c byte) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[', '(':
			depth++
		case ']', ')':
			if depth > 0 {
				depth--
			}
		default:
			if s[i] == c && depth == 0 {
				return i
			}
		}
	}
	return -1
}

// String renders a tag back to its prefix form, used in messages.
func (t VariantTag) String() string {
	switch t.Kind {
	case VariantDark:
		return "dark"
	case VariantArbitrarySelector, VariantArbitraryMedia:
		return fmt.Sprintf("[%s]", t.Value)
	default:
		return t.Value
	}
}

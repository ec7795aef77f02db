package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// childSelectorProperty is an internal marker declaration. A parser emits
// it when its declarations target the element's children (space-x, divide)
// rather than the element itself; the engine pops it off and appends its
// value to the rule selector.
const childSelectorProperty = "--wc-child-selector"

// childCombinator targets every sibling after the first, the standard
// trick behind space-* and divide-* utilities.
const childCombinator = " > :not([hidden]) ~ :not([hidden])"

func decl(property, value string) Declaration {
	return Declaration{Property: property, Value: value}
}

// literalParser builds a descriptor backed by an exact-match table. Exact
// tables sit in the lowest priority band: nothing narrower can exist.
func literalParser(name string, table map[string][]Declaration) ParserDescriptor {
	return ParserDescriptor{
		Name:     name,
		Priority: PriorityLiteral,
		Matches: func(base string) bool {
			_, ok := table[base]
			return ok
		},
		Generate: func(base string, _ *ElementContext) ([]Declaration, error) {
			src := table[base]
			out := make([]Declaration, len(src))
			copy(out, src)
			return out, nil
		},
	}
}

// suffixAfter strips prefix and reports whether base had it with a
// non-empty remainder.
func suffixAfter(base, prefix string) (string, bool) {
	if strings.HasPrefix(base, prefix) && len(base) > len(prefix) {
		return base[len(prefix):], true
	}
	return "", false
}

func isArbitrary(s string) bool {
	_, ok := bracketBody(s)
	return ok
}

// fractionValue converts "1/2" style suffixes to percentages.
func fractionValue(s string) (string, bool) {
	i := strings.IndexByte(s, '/')
	if i <= 0 || i == len(s)-1 {
		return "", false
	}
	num, err1 := strconv.Atoi(s[:i])
	den, err2 := strconv.Atoi(s[i+1:])
	if err1 != nil || err2 != nil || den == 0 {
		return "", false
	}
	pct := float64(num) / float64(den) * 100
	v := strconv.FormatFloat(pct, 'f', 6, 64)
	v = strings.TrimRight(v, "0")
	v = strings.TrimRight(v, ".")
	return v + "%", true
}

func isPercent(s string) bool {
	if !strings.HasSuffix(s, "%") {
		return false
	}
	_, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	return err == nil
}

func isInteger(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}

// spacingValue resolves a spacing-scale suffix: theme key, fraction,
// "auto"/"full" when allowed, or a bracketed arbitrary value.
type spacingOptions struct {
	allowAuto     bool
	allowFraction bool
	allowFull     bool
}

func matchSpacing(t *Theme, suffix string, opts spacingOptions) bool {
	if _, ok := t.Spacing[suffix]; ok {
		return true
	}
	if opts.allowAuto && suffix == "auto" {
		return true
	}
	if opts.allowFull && suffix == "full" {
		return true
	}
	if opts.allowFraction {
		if _, ok := fractionValue(suffix); ok {
			return true
		}
	}
	return isArbitrary(suffix)
}

func spacingValue(parser string, t *Theme, ctx *ElementContext, suffix string, opts spacingOptions) (string, error) {
	if v, ok := t.Spacing[suffix]; ok {
		return v, nil
	}
	if opts.allowAuto && suffix == "auto" {
		return "auto", nil
	}
	if opts.allowFull && suffix == "full" {
		return "100%", nil
	}
	if opts.allowFraction {
		if v, ok := fractionValue(suffix); ok {
			return v, nil
		}
	}
	if body, ok := bracketBody(suffix); ok {
		return ctx.ArbitraryValue(body)
	}
	return "", &GenerationError{Parser: parser, Base: suffix, Reason: "not on the spacing scale"}
}

// negate prefixes a CSS length with a minus sign, leaving zero alone.
func negate(v string) string {
	if v == "0" || v == "0px" || v == "0rem" {
		return v
	}
	if strings.HasPrefix(v, "-") {
		return strings.TrimPrefix(v, "-")
	}
	return "-" + v
}

// scaleOrArbitrary resolves suffix against a theme scale map, falling back
// to a bracketed arbitrary value.
func matchScale(m map[string]string, suffix string) bool {
	if _, ok := m[suffix]; ok {
		return true
	}
	return isArbitrary(suffix)
}

func scaleOrArbitrary(parser string, m map[string]string, ctx *ElementContext, suffix string) (string, error) {
	if v, ok := m[suffix]; ok {
		return v, nil
	}
	if body, ok := bracketBody(suffix); ok {
		return ctx.ArbitraryValue(body)
	}
	return "", &GenerationError{Parser: parser, Base: suffix, Reason: "unknown scale value"}
}

// matchColor reports whether suffix resolves through the theme palette or
// looks like an arbitrary color literal.
func matchColor(t *Theme, suffix string) bool {
	if _, ok := t.Color(suffix); ok {
		return true
	}
	if body, ok := bracketBody(suffix); ok {
		return looksLikeColor(body)
	}
	return false
}

func colorValue(parser string, t *Theme, ctx *ElementContext, suffix string) (string, error) {
	if v, ok := t.Color(suffix); ok {
		return v, nil
	}
	if body, ok := bracketBody(suffix); ok {
		if !looksLikeColor(body) {
			return "", &ArbitraryValueError{Value: body, Reason: "not a color value"}
		}
		return ctx.ArbitraryValue(body)
	}
	return "", &GenerationError{Parser: parser, Base: suffix, Reason: "unknown color"}
}

// looksLikeColor is the heuristic used to steer arbitrary values between
// color-valued and length-valued properties.
func looksLikeColor(v string) bool {
	return strings.HasPrefix(v, "#") ||
		strings.HasPrefix(v, "rgb(") ||
		strings.HasPrefix(v, "rgba(") ||
		strings.HasPrefix(v, "hsl(") ||
		strings.HasPrefix(v, "hsla(") ||
		strings.HasPrefix(v, "oklch(") ||
		strings.HasPrefix(v, "color(") ||
		strings.HasPrefix(v, "var(--")
}

// generationError is a shorthand constructor for parser-internal failures.
func generationError(parser, base, format string, args ...any) error {
	return &GenerationError{Parser: parser, Base: base, Reason: fmt.Sprintf(format, args...)}
}

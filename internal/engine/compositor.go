package engine

import "strings"

// DarkMode strategies. DarkClass scopes dark rules under a ".dark"
// ancestor; DarkMedia uses a prefers-color-scheme media query.
const (
	DarkClass = "class"
	DarkMedia = "media"
)

// Compositor wraps a base utility's declarations in the selector and
// media nesting implied by a variant stack.
type Compositor struct {
	theme        *Theme
	darkStrategy string
}

// NewCompositor builds a compositor over the theme's breakpoints.
// darkStrategy defaults to the class strategy.
func NewCompositor(theme *Theme, darkStrategy string) *Compositor {
	if darkStrategy == "" {
		darkStrategy = DarkClass
	}
	return &Compositor{theme: theme, darkStrategy: darkStrategy}
}

// Compose builds the rule for a class token. Selector variants are
// applied innermost-first (the rightmost written variant binds tightest);
// media variants wrap outermost-first, preserving the written order. Two
// responsive variants on one token is a validation error.
func (c *Compositor) Compose(token string, tags []VariantTag, decls []Declaration, origin string) (Rule, error) {
	selector := "." + EscapeClassName(token)
	var media []string
	seenResponsive := false

	// Media contexts collect in written (outermost-first) order.
	for _, tag := range tags {
		switch tag.Kind {
		case VariantResponsive:
			if seenResponsive {
				return Rule{}, &ConflictingVariantError{
					Token:  token,
					Reason: "more than one responsive breakpoint",
				}
			}
			seenResponsive = true
			minWidth, ok := c.theme.Breakpoint(tag.Value)
			if !ok {
				return Rule{}, &ConflictingVariantError{Token: token, Reason: "unknown breakpoint " + tag.Value}
			}
			media = append(media, "(min-width: "+minWidth+")")
		case VariantArbitraryMedia:
			media = append(media, normalizeMediaQuery(tag.Value))
		case VariantDark:
			if c.darkStrategy == DarkMedia {
				media = append(media, "(prefers-color-scheme: dark)")
			}
		}
	}

	// Selector variants apply innermost-first: walk the stack right to
	// left so md:hover:x and hover:md:x differ exactly where they should.
	for i := len(tags) - 1; i >= 0; i-- {
		tag := tags[i]
		switch tag.Kind {
		case VariantState:
			selector = applySelectorPattern(selector, stateSelectors[tag.Value])
		case VariantArbitrarySelector:
			selector = applySelectorPattern(selector, tag.Value)
		case VariantDark:
			if c.darkStrategy == DarkClass {
				selector = ".dark " + selector
			}
		}
	}

	return Rule{
		Selector:     selector,
		Media:        media,
		Declarations: decls,
		OriginClass:  origin,
	}, nil
}

// applySelectorPattern appends pattern as a compound suffix, or
// substitutes '&' with the selector built so far when the pattern carries
// one ("&:nth-child(3)", ".group:hover &").
func applySelectorPattern(selector, pattern string) string {
	if strings.Contains(pattern, "&") {
		return strings.ReplaceAll(pattern, "&", selector)
	}
	return selector + pattern
}

// normalizeMediaQuery strips a leading "@media" from an arbitrary media
// variant body so stored contexts are uniform query texts.
func normalizeMediaQuery(q string) string {
	q = strings.TrimPrefix(q, "@media")
	return strings.TrimSpace(q)
}

// EscapeClassName escapes the characters CSS identifiers cannot carry
// bare, so tokens like md:w-1/2 or top-[13px] form valid class selectors.
func EscapeClassName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for i := 0; i < len(name); i++ {
		ch := name[i]
		switch {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z',
			ch >= '0' && ch <= '9', ch == '-', ch == '_':
			b.WriteByte(ch)
		default:
			b.WriteByte('\\')
			b.WriteByte(ch)
		}
	}
	return b.String()
}

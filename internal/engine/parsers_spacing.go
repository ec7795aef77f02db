package engine

import "strings"

// marginProperties and paddingProperties map axis prefixes to the CSS
// properties they expand into. Longest prefixes are matched first.
var marginProperties = map[string][]string{
	"m-":  {"margin"},
	"mx-": {"margin-left", "margin-right"},
	"my-": {"margin-top", "margin-bottom"},
	"mt-": {"margin-top"},
	"mr-": {"margin-right"},
	"mb-": {"margin-bottom"},
	"ml-": {"margin-left"},
}

var paddingProperties = map[string][]string{
	"p-":  {"padding"},
	"px-": {"padding-left", "padding-right"},
	"py-": {"padding-top", "padding-bottom"},
	"pt-": {"padding-top"},
	"pr-": {"padding-right"},
	"pb-": {"padding-bottom"},
	"pl-": {"padding-left"},
}

var marginPrefixOrder = []string{"mx-", "my-", "mt-", "mr-", "mb-", "ml-", "m-"}
var paddingPrefixOrder = []string{"px-", "py-", "pt-", "pr-", "pb-", "pl-", "p-"}

func spacingParsers(t *Theme) []ParserDescriptor {
	return []ParserDescriptor{
		axisSpacingParser("margin", t, marginProperties, marginPrefixOrder,
			spacingOptions{allowAuto: true}, true),
		axisSpacingParser("padding", t, paddingProperties, paddingPrefixOrder,
			spacingOptions{}, false),
		spaceBetweenParser(t),
	}
}

func axisSpacingParser(name string, t *Theme, props map[string][]string, order []string, opts spacingOptions, allowNegative bool) ParserDescriptor {
	split := func(base string) (expand []string, suffix string, negative, ok bool) {
		rest := base
		if allowNegative && strings.HasPrefix(rest, "-") {
			negative = true
			rest = rest[1:]
		}
		for _, prefix := range order {
			if s, found := suffixAfter(rest, prefix); found {
				return props[prefix], s, negative, true
			}
		}
		return nil, "", false, false
	}
	return ParserDescriptor{
		Name:     name,
		Priority: PriorityScale,
		Matches: func(base string) bool {
			_, suffix, negative, ok := split(base)
			if !ok {
				return false
			}
			if negative && suffix == "auto" {
				return false
			}
			return matchSpacing(t, suffix, opts)
		},
		Generate: func(base string, ctx *ElementContext) ([]Declaration, error) {
			expand, suffix, negative, _ := split(base)
			v, err := spacingValue(name, t, ctx, suffix, opts)
			if err != nil {
				return nil, err
			}
			if negative {
				v = negate(v)
			}
			out := make([]Declaration, 0, len(expand))
			for _, p := range expand {
				out = append(out, decl(p, v))
			}
			return out, nil
		},
	}
}

// spaceBetweenParser implements space-x-* and space-y-*. The generated
// margins target the element's children, flagged through the child
// selector marker.
func spaceBetweenParser(t *Theme) ParserDescriptor {
	opts := spacingOptions{}
	split := func(base string) (axis, suffix string, negative, ok bool) {
		rest := base
		if strings.HasPrefix(rest, "-") {
			negative = true
			rest = rest[1:]
		}
		if s, found := suffixAfter(rest, "space-x-"); found {
			return "x", s, negative, true
		}
		if s, found := suffixAfter(rest, "space-y-"); found {
			return "y", s, negative, true
		}
		return "", "", false, false
	}
	return ParserDescriptor{
		Name:     "space-between",
		Priority: PriorityScale,
		Matches: func(base string) bool {
			_, suffix, _, ok := split(base)
			return ok && matchSpacing(t, suffix, opts)
		},
		Generate: func(base string, ctx *ElementContext) ([]Declaration, error) {
			axis, suffix, negative, _ := split(base)
			v, err := spacingValue("space-between", t, ctx, suffix, opts)
			if err != nil {
				return nil, err
			}
			if negative {
				v = negate(v)
			}
			prop := "margin-left"
			if axis == "y" {
				prop = "margin-top"
			}
			return []Declaration{
				decl(childSelectorProperty, childCombinator),
				decl(prop, v),
			}, nil
		},
	}
}

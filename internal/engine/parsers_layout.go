package engine

import "strings"

func layoutParsers(t *Theme) []ParserDescriptor {
	parsers := []ParserDescriptor{
		literalParser("display", map[string][]Declaration{
			"block":        {decl("display", "block")},
			"inline-block": {decl("display", "inline-block")},
			"inline":       {decl("display", "inline")},
			"flex":         {decl("display", "flex")},
			"inline-flex":  {decl("display", "inline-flex")},
			"grid":         {decl("display", "grid")},
			"inline-grid":  {decl("display", "inline-grid")},
			"table":        {decl("display", "table")},
			"inline-table": {decl("display", "inline-table")},
			"flow-root":    {decl("display", "flow-root")},
			"contents":     {decl("display", "contents")},
			"list-item":    {decl("display", "list-item")},
			"hidden":       {decl("display", "none")},
		}),
		literalParser("position", map[string][]Declaration{
			"static":   {decl("position", "static")},
			"fixed":    {decl("position", "fixed")},
			"absolute": {decl("position", "absolute")},
			"relative": {decl("position", "relative")},
			"sticky":   {decl("position", "sticky")},
		}),
		literalParser("visibility", map[string][]Declaration{
			"visible":   {decl("visibility", "visible")},
			"invisible": {decl("visibility", "hidden")},
			"collapse":  {decl("visibility", "collapse")},
		}),
		literalParser("float", map[string][]Declaration{
			"float-left":  {decl("float", "left")},
			"float-right": {decl("float", "right")},
			"float-none":  {decl("float", "none")},
			"clear-left":  {decl("clear", "left")},
			"clear-right": {decl("clear", "right")},
			"clear-both":  {decl("clear", "both")},
			"clear-none":  {decl("clear", "none")},
		}),
		literalParser("object", map[string][]Declaration{
			"object-contain":    {decl("object-fit", "contain")},
			"object-cover":      {decl("object-fit", "cover")},
			"object-fill":       {decl("object-fit", "fill")},
			"object-none":       {decl("object-fit", "none")},
			"object-scale-down": {decl("object-fit", "scale-down")},
			"object-bottom":     {decl("object-position", "bottom")},
			"object-center":     {decl("object-position", "center")},
			"object-left":       {decl("object-position", "left")},
			"object-right":      {decl("object-position", "right")},
			"object-top":        {decl("object-position", "top")},
		}),
		literalParser("overflow", map[string][]Declaration{
			"overflow-auto":      {decl("overflow", "auto")},
			"overflow-hidden":    {decl("overflow", "hidden")},
			"overflow-clip":      {decl("overflow", "clip")},
			"overflow-visible":   {decl("overflow", "visible")},
			"overflow-scroll":    {decl("overflow", "scroll")},
			"overflow-x-auto":    {decl("overflow-x", "auto")},
			"overflow-x-hidden":  {decl("overflow-x", "hidden")},
			"overflow-x-scroll":  {decl("overflow-x", "scroll")},
			"overflow-x-visible": {decl("overflow-x", "visible")},
			"overflow-y-auto":    {decl("overflow-y", "auto")},
			"overflow-y-hidden":  {decl("overflow-y", "hidden")},
			"overflow-y-scroll":  {decl("overflow-y", "scroll")},
			"overflow-y-visible": {decl("overflow-y", "visible")},
		}),
		zIndexParser(t),
		insetParser(t),
	}
	return parsers
}

func zIndexParser(t *Theme) ParserDescriptor {
	return ParserDescriptor{
		Name:     "z-index",
		Priority: PriorityScale,
		Matches: func(base string) bool {
			s, ok := suffixAfter(base, "z-")
			return ok && matchScale(t.ZIndex, s)
		},
		Generate: func(base string, ctx *ElementContext) ([]Declaration, error) {
			s, _ := suffixAfter(base, "z-")
			v, err := scaleOrArbitrary("z-index", t.ZIndex, ctx, s)
			if err != nil {
				return nil, err
			}
			return []Declaration{decl("z-index", v)}, nil
		},
	}
}

// insetProperties maps the inset utility prefixes to the CSS properties
// each one drives.
var insetProperties = map[string][]string{
	"inset-":   {"inset"},
	"inset-x-": {"left", "right"},
	"inset-y-": {"top", "bottom"},
	"top-":     {"top"},
	"right-":   {"right"},
	"bottom-":  {"bottom"},
	"left-":    {"left"},
}

// insetPrefixOrder is checked longest-first so "inset-x-" wins over
// "inset-".
var insetPrefixOrder = []string{"inset-x-", "inset-y-", "inset-", "top-", "right-", "bottom-", "left-"}

func insetParser(t *Theme) ParserDescriptor {
	opts := spacingOptions{allowAuto: true, allowFraction: true, allowFull: true}
	split := func(base string) (props []string, suffix string, negative, ok bool) {
		rest := base
		if strings.HasPrefix(rest, "-") {
			negative = true
			rest = rest[1:]
		}
		for _, prefix := range insetPrefixOrder {
			if s, found := suffixAfter(rest, prefix); found {
				return insetProperties[prefix], s, negative, true
			}
		}
		return nil, "", false, false
	}
	return ParserDescriptor{
		Name:     "inset",
		Priority: PriorityScale,
		Matches: func(base string) bool {
			_, suffix, _, ok := split(base)
			return ok && matchSpacing(t, suffix, opts)
		},
		Generate: func(base string, ctx *ElementContext) ([]Declaration, error) {
			props, suffix, negative, _ := split(base)
			v, err := spacingValue("inset", t, ctx, suffix, opts)
			if err != nil {
				return nil, err
			}
			if negative {
				v = negate(v)
			}
			out := make([]Declaration, 0, len(props))
			for _, p := range props {
				out = append(out, decl(p, v))
			}
			return out, nil
		},
	}
}

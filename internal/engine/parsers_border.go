package engine

import "strings"

var borderSides = map[string]string{
	"t": "top", "r": "right", "b": "bottom", "l": "left",
}

var borderStyles = map[string]string{
	"solid": "solid", "dashed": "dashed", "dotted": "dotted",
	"double": "double", "hidden": "hidden", "none": "none",
}

var roundedCorners = map[string][]string{
	"t":  {"border-top-left-radius", "border-top-right-radius"},
	"r":  {"border-top-right-radius", "border-bottom-right-radius"},
	"b":  {"border-bottom-right-radius", "border-bottom-left-radius"},
	"l":  {"border-top-left-radius", "border-bottom-left-radius"},
	"tl": {"border-top-left-radius"},
	"tr": {"border-top-right-radius"},
	"br": {"border-bottom-right-radius"},
	"bl": {"border-bottom-left-radius"},
}

func borderParsers(t *Theme) []ParserDescriptor {
	return []ParserDescriptor{
		borderParser(t),
		roundedParser(t),
		divideParser(t),
		outlineParser(t),
		ringParser(t),
	}
}

// borderParser owns the whole border-* family: widths, per-side widths,
// colors, per-side colors, styles and collapse. A single descriptor keeps
// the family free of delegation ambiguity.
func borderParser(t *Theme) ParserDescriptor {
	resolve := func(base string, ctx *ElementContext) ([]Declaration, error) {
		if base == "border" {
			return []Declaration{decl("border-width", t.BorderWidths[""])}, nil
		}
		if base == "border-collapse" {
			return []Declaration{decl("border-collapse", "collapse")}, nil
		}
		if base == "border-separate" {
			return []Declaration{decl("border-collapse", "separate")}, nil
		}
		s, ok := suffixAfter(base, "border-")
		if !ok {
			return nil, nil
		}
		if v, found := borderStyles[s]; found {
			return []Declaration{decl("border-style", v)}, nil
		}
		// Per-side forms: border-t, border-t-2, border-t-red-500.
		if side, found := borderSides[s]; found {
			return []Declaration{decl("border-"+side+"-width", t.BorderWidths[""])}, nil
		}
		if len(s) > 2 && s[1] == '-' {
			if side, found := borderSides[s[:1]]; found {
				rest := s[2:]
				if v, widthOK := t.BorderWidths[rest]; widthOK {
					return []Declaration{decl("border-"+side+"-width", v)}, nil
				}
				if matchColor(t, rest) {
					v, err := colorValue("border", t, ctx, rest)
					if err != nil {
						return nil, err
					}
					return []Declaration{decl("border-"+side+"-color", v)}, nil
				}
				if body, arb := bracketBody(rest); arb {
					v, err := ctx.ArbitraryValue(body)
					if err != nil {
						return nil, err
					}
					return []Declaration{decl("border-"+side+"-width", v)}, nil
				}
				return nil, nil
			}
		}
		if v, found := t.BorderWidths[s]; found {
			return []Declaration{decl("border-width", v)}, nil
		}
		if matchColor(t, s) {
			v, err := colorValue("border", t, ctx, s)
			if err != nil {
				return nil, err
			}
			return []Declaration{decl("border-color", v)}, nil
		}
		if body, arb := bracketBody(s); arb {
			v, err := ctx.ArbitraryValue(body)
			if err != nil {
				return nil, err
			}
			return []Declaration{decl("border-width", v)}, nil
		}
		return nil, nil
	}
	return ParserDescriptor{
		Name:     "border",
		Priority: PriorityScale,
		Matches: func(base string) bool {
			decls, err := resolve(base, NewElementContext())
			return err == nil && decls != nil
		},
		Generate: func(base string, ctx *ElementContext) ([]Declaration, error) {
			decls, err := resolve(base, ctx)
			if err != nil {
				return nil, err
			}
			if decls == nil {
				return nil, generationError("border", base, "unknown border utility")
			}
			return decls, nil
		},
	}
}

func roundedParser(t *Theme) ParserDescriptor {
	resolve := func(base string, ctx *ElementContext) ([]Declaration, error) {
		if base == "rounded" {
			return []Declaration{decl("border-radius", t.BorderRadius[""])}, nil
		}
		s, ok := suffixAfter(base, "rounded-")
		if !ok {
			return nil, nil
		}
		// Corner prefix with optional size: rounded-t, rounded-t-xl.
		corner, rest := s, ""
		if i := strings.IndexByte(s, '-'); i > 0 {
			corner, rest = s[:i], s[i+1:]
		}
		if props, found := roundedCorners[corner]; found {
			v := t.BorderRadius[""]
			if rest != "" {
				var err error
				v, err = scaleOrArbitrary("rounded", t.BorderRadius, ctx, rest)
				if err != nil {
					return nil, err
				}
			}
			out := make([]Declaration, 0, len(props))
			for _, p := range props {
				out = append(out, decl(p, v))
			}
			return out, nil
		}
		if matchScale(t.BorderRadius, s) {
			v, err := scaleOrArbitrary("rounded", t.BorderRadius, ctx, s)
			if err != nil {
				return nil, err
			}
			return []Declaration{decl("border-radius", v)}, nil
		}
		return nil, nil
	}
	return ParserDescriptor{
		Name:     "rounded",
		Priority: PriorityScale,
		Matches: func(base string) bool {
			decls, err := resolve(base, NewElementContext())
			return err == nil && decls != nil
		},
		Generate: func(base string, ctx *ElementContext) ([]Declaration, error) {
			decls, err := resolve(base, ctx)
			if err != nil {
				return nil, err
			}
			if decls == nil {
				return nil, generationError("rounded", base, "unknown radius")
			}
			return decls, nil
		},
	}
}

// divideParser puts borders between children, like space-* does margins.
func divideParser(t *Theme) ParserDescriptor {
	resolve := func(base string, ctx *ElementContext) ([]Declaration, error) {
		s, ok := suffixAfter(base, "divide-")
		if !ok {
			return nil, nil
		}
		child := decl(childSelectorProperty, childCombinator)
		switch {
		case s == "x":
			return []Declaration{child, decl("border-left-width", "1px")}, nil
		case s == "y":
			return []Declaration{child, decl("border-top-width", "1px")}, nil
		case strings.HasPrefix(s, "x-"):
			if v, found := t.BorderWidths[s[2:]]; found {
				return []Declaration{child, decl("border-left-width", v)}, nil
			}
		case strings.HasPrefix(s, "y-"):
			if v, found := t.BorderWidths[s[2:]]; found {
				return []Declaration{child, decl("border-top-width", v)}, nil
			}
		}
		if v, found := borderStyles[s]; found && s != "hidden" {
			return []Declaration{child, decl("border-style", v)}, nil
		}
		if matchColor(t, s) {
			v, err := colorValue("divide", t, ctx, s)
			if err != nil {
				return nil, err
			}
			return []Declaration{child, decl("border-color", v)}, nil
		}
		return nil, nil
	}
	return ParserDescriptor{
		Name:     "divide",
		Priority: PriorityScale,
		Matches: func(base string) bool {
			decls, err := resolve(base, NewElementContext())
			return err == nil && decls != nil
		},
		Generate: func(base string, ctx *ElementContext) ([]Declaration, error) {
			decls, err := resolve(base, ctx)
			if err != nil {
				return nil, err
			}
			if decls == nil {
				return nil, generationError("divide", base, "unknown divide utility")
			}
			return decls, nil
		},
	}
}

func outlineParser(t *Theme) ParserDescriptor {
	literals := map[string][]Declaration{
		"outline-none":   {decl("outline", "2px solid transparent"), decl("outline-offset", "2px")},
		"outline":        {decl("outline-style", "solid")},
		"outline-dashed": {decl("outline-style", "dashed")},
		"outline-dotted": {decl("outline-style", "dotted")},
		"outline-double": {decl("outline-style", "double")},
	}
	return ParserDescriptor{
		Name:     "outline",
		Priority: PriorityScale,
		Matches: func(base string) bool {
			if _, ok := literals[base]; ok {
				return true
			}
			if s, ok := suffixAfter(base, "outline-offset-"); ok {
				return isInteger(s)
			}
			if s, ok := suffixAfter(base, "outline-"); ok {
				return isInteger(s) || matchColor(t, s)
			}
			return false
		},
		Generate: func(base string, ctx *ElementContext) ([]Declaration, error) {
			if d, ok := literals[base]; ok {
				out := make([]Declaration, len(d))
				copy(out, d)
				return out, nil
			}
			if s, ok := suffixAfter(base, "outline-offset-"); ok {
				return []Declaration{decl("outline-offset", s + "px")}, nil
			}
			s, _ := suffixAfter(base, "outline-")
			if isInteger(s) {
				return []Declaration{decl("outline-width", s + "px")}, nil
			}
			v, err := colorValue("outline", t, ctx, s)
			if err != nil {
				return nil, err
			}
			return []Declaration{decl("outline-color", v)}, nil
		},
	}
}

// ringParser builds focus rings from box-shadow, parameterized through
// custom properties so width and color utilities compose on one element.
func ringParser(t *Theme) ParserDescriptor {
	const shadow = "0 0 0 calc(var(--wc-ring-width, 3px) + var(--wc-ring-offset-width, 0px)) var(--wc-ring-color, rgb(59 130 246 / 0.5))"
	return ParserDescriptor{
		Name:     "ring",
		Priority: PriorityScale,
		Matches: func(base string) bool {
			if base == "ring" || base == "ring-inset" {
				return true
			}
			if s, ok := suffixAfter(base, "ring-offset-"); ok {
				return isInteger(s) || matchColor(t, s)
			}
			if s, ok := suffixAfter(base, "ring-"); ok {
				return isInteger(s) || matchColor(t, s)
			}
			return false
		},
		Generate: func(base string, ctx *ElementContext) ([]Declaration, error) {
			switch base {
			case "ring":
				return []Declaration{decl("box-shadow", shadow)}, nil
			case "ring-inset":
				return []Declaration{decl("--wc-ring-inset", "inset")}, nil
			}
			if s, ok := suffixAfter(base, "ring-offset-"); ok {
				if isInteger(s) {
					return []Declaration{decl("--wc-ring-offset-width", s + "px")}, nil
				}
				v, err := colorValue("ring", t, ctx, s)
				if err != nil {
					return nil, err
				}
				return []Declaration{decl("--wc-ring-offset-color", v)}, nil
			}
			s, _ := suffixAfter(base, "ring-")
			if isInteger(s) {
				return []Declaration{
					decl("--wc-ring-width", s+"px"),
					decl("box-shadow", shadow),
				}, nil
			}
			v, err := colorValue("ring", t, ctx, s)
			if err != nil {
				return nil, err
			}
			return []Declaration{decl("--wc-ring-color", v)}, nil
		},
	}
}

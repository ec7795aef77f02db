package engine

func effectsParsers(t *Theme) []ParserDescriptor {
	return []ParserDescriptor{
		shadowParser(t),
		opacityParser(t),
		filterParser(t),
		backdropParser(t),
		literalParser("mix-blend", map[string][]Declaration{
			"mix-blend-normal":      {decl("mix-blend-mode", "normal")},
			"mix-blend-multiply":    {decl("mix-blend-mode", "multiply")},
			"mix-blend-screen":      {decl("mix-blend-mode", "screen")},
			"mix-blend-overlay":     {decl("mix-blend-mode", "overlay")},
			"mix-blend-darken":      {decl("mix-blend-mode", "darken")},
			"mix-blend-lighten":     {decl("mix-blend-mode", "lighten")},
			"mix-blend-color-dodge": {decl("mix-blend-mode", "color-dodge")},
			"mix-blend-color-burn":  {decl("mix-blend-mode", "color-burn")},
			"mix-blend-difference":  {decl("mix-blend-mode", "difference")},
			"mix-blend-exclusion":   {decl("mix-blend-mode", "exclusion")},
		}),
	}
}

func shadowParser(t *Theme) ParserDescriptor {
	return ParserDescriptor{
		Name:     "shadow",
		Priority: PriorityScale,
		Matches: func(base string) bool {
			if base == "shadow" {
				return true
			}
			s, ok := suffixAfter(base, "shadow-")
			if !ok {
				return false
			}
			if _, named := t.Shadows[s]; named {
				return true
			}
			return matchColor(t, s) || isArbitrary(s)
		},
		Generate: func(base string, ctx *ElementContext) ([]Declaration, error) {
			if base == "shadow" {
				return []Declaration{decl("box-shadow", t.Shadows[""])}, nil
			}
			s, _ := suffixAfter(base, "shadow-")
			if v, ok := t.Shadows[s]; ok {
				return []Declaration{decl("box-shadow", v)}, nil
			}
			if matchColor(t, s) {
				v, err := colorValue("shadow", t, ctx, s)
				if err != nil {
					return nil, err
				}
				return []Declaration{decl("--wc-shadow-color", v)}, nil
			}
			body, _ := bracketBody(s)
			v, err := ctx.ArbitraryValue(body)
			if err != nil {
				return nil, err
			}
			return []Declaration{decl("box-shadow", v)}, nil
		},
	}
}

func opacityParser(t *Theme) ParserDescriptor {
	return ParserDescriptor{
		Name:     "opacity",
		Priority: PriorityScale,
		Matches: func(base string) bool {
			s, ok := suffixAfter(base, "opacity-")
			return ok && matchScale(t.Opacity, s)
		},
		Generate: func(base string, ctx *ElementContext) ([]Declaration, error) {
			s, _ := suffixAfter(base, "opacity-")
			v, err := scaleOrArbitrary("opacity", t.Opacity, ctx, s)
			if err != nil {
				return nil, err
			}
			return []Declaration{decl("opacity", v)}, nil
		},
	}
}

// filterParser covers the single-function filter utilities. Filters are
// emitted standalone rather than composed: stacking blur with brightness
// on one element is rare enough that the last one wins.
func filterParser(t *Theme) ParserDescriptor {
	percentFns := map[string]string{
		"brightness-": "brightness",
		"contrast-":   "contrast",
		"saturate-":   "saturate",
	}
	literals := map[string]string{
		"grayscale":   "grayscale(100%)",
		"grayscale-0": "grayscale(0)",
		"invert":      "invert(100%)",
		"invert-0":    "invert(0)",
		"sepia":       "sepia(100%)",
		"sepia-0":     "sepia(0)",
	}
	return ParserDescriptor{
		Name:     "filter",
		Priority: PriorityScale,
		Matches: func(base string) bool {
			if _, ok := literals[base]; ok {
				return true
			}
			if base == "blur" {
				return true
			}
			if s, ok := suffixAfter(base, "blur-"); ok {
				return matchScale(t.Blurs, s)
			}
			for prefix := range percentFns {
				if s, ok := suffixAfter(base, prefix); ok {
					return isInteger(s)
				}
			}
			return false
		},
		Generate: func(base string, ctx *ElementContext) ([]Declaration, error) {
			if v, ok := literals[base]; ok {
				return []Declaration{decl("filter", v)}, nil
			}
			if base == "blur" {
				return []Declaration{decl("filter", "blur("+t.Blurs[""]+")")}, nil
			}
			if s, ok := suffixAfter(base, "blur-"); ok {
				v, err := scaleOrArbitrary("filter", t.Blurs, ctx, s)
				if err != nil {
					return nil, err
				}
				return []Declaration{decl("filter", "blur("+v+")")}, nil
			}
			for prefix, fn := range percentFns {
				if s, ok := suffixAfter(base, prefix); ok {
					return []Declaration{decl("filter", fn+"("+s+"%)")}, nil
				}
			}
			return nil, generationError("filter", base, "unknown filter")
		},
	}
}

func backdropParser(t *Theme) ParserDescriptor {
	return ParserDescriptor{
		Name:     "backdrop",
		Priority: PriorityScale,
		Matches: func(base string) bool {
			if base == "backdrop-blur" {
				return true
			}
			s, ok := suffixAfter(base, "backdrop-blur-")
			return ok && matchScale(t.Blurs, s)
		},
		Generate: func(base string, ctx *ElementContext) ([]Declaration, error) {
			if base == "backdrop-blur" {
				return []Declaration{decl("backdrop-filter", "blur("+t.Blurs[""]+")")}, nil
			}
			s, _ := suffixAfter(base, "backdrop-blur-")
			v, err := scaleOrArbitrary("backdrop", t.Blurs, ctx, s)
			if err != nil {
				return nil, err
			}
			return []Declaration{decl("backdrop-filter", "blur(" + v + ")")}, nil
		},
	}
}

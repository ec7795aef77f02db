package engine

// maxWidthScale is the named max-width scale, independent of spacing.
var maxWidthScale = map[string]string{
	"0":     "0rem",
	"none":  "none",
	"xs":    "20rem",
	"sm":    "24rem",
	"md":    "28rem",
	"lg":    "32rem",
	"xl":    "36rem",
	"2xl":   "42rem",
	"3xl":   "48rem",
	"4xl":   "56rem",
	"5xl":   "64rem",
	"6xl":   "72rem",
	"7xl":   "80rem",
	"full":  "100%",
	"min":   "min-content",
	"max":   "max-content",
	"fit":   "fit-content",
	"prose": "65ch",
}

func sizingParsers(t *Theme) []ParserDescriptor {
	return []ParserDescriptor{
		dimensionParser("width", t, "w-", "width", "100vw"),
		dimensionParser("height", t, "h-", "height", "100vh"),
		minParser("min-width", "min-w-", "min-width"),
		minParser("min-height", "min-h-", "min-height"),
		maxWidthParser(),
		maxHeightParser(t),
	}
}

func dimensionParser(name string, t *Theme, prefix, property, screen string) ParserDescriptor {
	opts := spacingOptions{allowAuto: true, allowFraction: true, allowFull: true}
	extras := map[string]string{
		"screen": screen,
		"min":    "min-content",
		"max":    "max-content",
		"fit":    "fit-content",
	}
	return ParserDescriptor{
		Name:     name,
		Priority: PriorityScale,
		Matches: func(base string) bool {
			s, ok := suffixAfter(base, prefix)
			if !ok {
				return false
			}
			if _, named := extras[s]; named {
				return true
			}
			return matchSpacing(t, s, opts)
		},
		Generate: func(base string, ctx *ElementContext) ([]Declaration, error) {
			s, _ := suffixAfter(base, prefix)
			if v, ok := extras[s]; ok {
				return []Declaration{decl(property, v)}, nil
			}
			v, err := spacingValue(name, t, ctx, s, opts)
			if err != nil {
				return nil, err
			}
			return []Declaration{decl(property, v)}, nil
		},
	}
}

func minParser(name, prefix, property string) ParserDescriptor {
	named := map[string]string{
		"0":    "0px",
		"full": "100%",
		"min":  "min-content",
		"max":  "max-content",
		"fit":  "fit-content",
	}
	return ParserDescriptor{
		Name:     name,
		Priority: PriorityScale,
		Matches: func(base string) bool {
			s, ok := suffixAfter(base, prefix)
			if !ok {
				return false
			}
			if _, found := named[s]; found {
				return true
			}
			return isArbitrary(s)
		},
		Generate: func(base string, ctx *ElementContext) ([]Declaration, error) {
			s, _ := suffixAfter(base, prefix)
			if v, ok := named[s]; ok {
				return []Declaration{decl(property, v)}, nil
			}
			body, _ := bracketBody(s)
			v, err := ctx.ArbitraryValue(body)
			if err != nil {
				return nil, err
			}
			return []Declaration{decl(property, v)}, nil
		},
	}
}

func maxWidthParser() ParserDescriptor {
	return ParserDescriptor{
		Name:     "max-width",
		Priority: PriorityScale,
		Matches: func(base string) bool {
			s, ok := suffixAfter(base, "max-w-")
			return ok && matchScale(maxWidthScale, s)
		},
		Generate: func(base string, ctx *ElementContext) ([]Declaration, error) {
			s, _ := suffixAfter(base, "max-w-")
			v, err := scaleOrArbitrary("max-width", maxWidthScale, ctx, s)
			if err != nil {
				return nil, err
			}
			return []Declaration{decl("max-width", v)}, nil
		},
	}
}

func maxHeightParser(t *Theme) ParserDescriptor {
	opts := spacingOptions{allowFull: true}
	extras := map[string]string{
		"none":   "none",
		"screen": "100vh",
		"min":    "min-content",
		"max":    "max-content",
		"fit":    "fit-content",
	}
	return ParserDescriptor{
		Name:     "max-height",
		Priority: PriorityScale,
		Matches: func(base string) bool {
			s, ok := suffixAfter(base, "max-h-")
			if !ok {
				return false
			}
			if _, named := extras[s]; named {
				return true
			}
			return matchSpacing(t, s, opts)
		},
		Generate: func(base string, ctx *ElementContext) ([]Declaration, error) {
			s, _ := suffixAfter(base, "max-h-")
			if v, ok := extras[s]; ok {
				return []Declaration{decl("max-height", v)}, nil
			}
			v, err := spacingValue("max-height", t, ctx, s, opts)
			if err != nil {
				return nil, err
			}
			return []Declaration{decl("max-height", v)}, nil
		},
	}
}

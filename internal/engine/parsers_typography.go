package engine

func typographyParsers(t *Theme) []ParserDescriptor {
	return []ParserDescriptor{
		literalParser("font-style", map[string][]Declaration{
			"italic":     {decl("font-style", "italic")},
			"not-italic": {decl("font-style", "normal")},
		}),
		literalParser("text-align", map[string][]Declaration{
			"text-left":    {decl("text-align", "left")},
			"text-center":  {decl("text-align", "center")},
			"text-right":   {decl("text-align", "right")},
			"text-justify": {decl("text-align", "justify")},
			"text-start":   {decl("text-align", "start")},
			"text-end":     {decl("text-align", "end")},
		}),
		literalParser("text-decoration", map[string][]Declaration{
			"underline":    {decl("text-decoration-line", "underline")},
			"overline":     {decl("text-decoration-line", "overline")},
			"line-through": {decl("text-decoration-line", "line-through")},
			"no-underline": {decl("text-decoration-line", "none")},
		}),
		literalParser("text-transform", map[string][]Declaration{
			"uppercase":   {decl("text-transform", "uppercase")},
			"lowercase":   {decl("text-transform", "lowercase")},
			"capitalize":  {decl("text-transform", "capitalize")},
			"normal-case": {decl("text-transform", "none")},
		}),
		literalParser("text-overflow", map[string][]Declaration{
			"truncate": {
				decl("overflow", "hidden"),
				decl("text-overflow", "ellipsis"),
				decl("white-space", "nowrap"),
			},
			"text-ellipsis": {decl("text-overflow", "ellipsis")},
			"text-clip":     {decl("text-overflow", "clip")},
		}),
		literalParser("whitespace", map[string][]Declaration{
			"whitespace-normal":       {decl("white-space", "normal")},
			"whitespace-nowrap":       {decl("white-space", "nowrap")},
			"whitespace-pre":          {decl("white-space", "pre")},
			"whitespace-pre-line":     {decl("white-space", "pre-line")},
			"whitespace-pre-wrap":     {decl("white-space", "pre-wrap")},
			"whitespace-break-spaces": {decl("white-space", "break-spaces")},
		}),
		literalParser("word-break", map[string][]Declaration{
			"break-normal": {decl("overflow-wrap", "normal"), decl("word-break", "normal")},
			"break-words":  {decl("overflow-wrap", "break-word")},
			"break-all":    {decl("word-break", "break-all")},
			"break-keep":   {decl("word-break", "keep-all")},
		}),
		fontParser(t),
		textSizeParser(t),
		textColorParser(t),
		textArbitraryParser(),
		leadingParser(t),
		trackingParser(t),
	}
}

// fontParser resolves font families first (sans/serif/mono), then
// weights (font-bold).
func fontParser(t *Theme) ParserDescriptor {
	return ParserDescriptor{
		Name:     "font",
		Priority: PriorityScale,
		Matches: func(base string) bool {
			s, ok := suffixAfter(base, "font-")
			if !ok {
				return false
			}
			if _, found := t.FontFamilies[s]; found {
				return true
			}
			_, found := t.FontWeights[s]
			return found
		},
		Generate: func(base string, _ *ElementContext) ([]Declaration, error) {
			s, _ := suffixAfter(base, "font-")
			if v, ok := t.FontFamilies[s]; ok {
				return []Declaration{decl("font-family", v)}, nil
			}
			v := t.FontWeights[s]
			return []Declaration{decl("font-weight", v)}, nil
		},
	}
}

func textSizeParser(t *Theme) ParserDescriptor {
	return ParserDescriptor{
		Name:     "text-size",
		Priority: PriorityScale,
		Matches: func(base string) bool {
			s, ok := suffixAfter(base, "text-")
			if !ok {
				return false
			}
			_, found := t.FontSizes[s]
			return found
		},
		Generate: func(base string, _ *ElementContext) ([]Declaration, error) {
			s, _ := suffixAfter(base, "text-")
			fs := t.FontSizes[s]
			out := []Declaration{decl("font-size", fs.Size)}
			if fs.LineHeight != "" {
				out = append(out, decl("line-height", fs.LineHeight))
			}
			return out, nil
		},
	}
}

func textColorParser(t *Theme) ParserDescriptor {
	return ParserDescriptor{
		Name:     "text-color",
		Priority: PriorityBroad,
		Matches: func(base string) bool {
			s, ok := suffixAfter(base, "text-")
			if !ok || isArbitrary(s) {
				return false
			}
			_, found := t.Color(s)
			return found
		},
		Generate: func(base string, ctx *ElementContext) ([]Declaration, error) {
			s, _ := suffixAfter(base, "text-")
			v, err := colorValue("text-color", t, ctx, s)
			if err != nil {
				return nil, err
			}
			return []Declaration{decl("color", v)}, nil
		},
	}
}

// textArbitraryParser owns every text-[...] form and decides between
// color and size from the value shape.
func textArbitraryParser() ParserDescriptor {
	return ParserDescriptor{
		Name:     "text-arbitrary",
		Priority: PriorityBracket,
		Matches: func(base string) bool {
			s, ok := suffixAfter(base, "text-")
			return ok && isArbitrary(s)
		},
		Generate: func(base string, ctx *ElementContext) ([]Declaration, error) {
			s, _ := suffixAfter(base, "text-")
			body, _ := bracketBody(s)
			v, err := ctx.ArbitraryValue(body)
			if err != nil {
				return nil, err
			}
			if looksLikeColor(v) {
				return []Declaration{decl("color", v)}, nil
			}
			return []Declaration{decl("font-size", v)}, nil
		},
	}
}

func leadingParser(t *Theme) ParserDescriptor {
	return ParserDescriptor{
		Name:     "line-height",
		Priority: PriorityScale,
		Matches: func(base string) bool {
			s, ok := suffixAfter(base, "leading-")
			return ok && matchScale(t.LineHeights, s)
		},
		Generate: func(base string, ctx *ElementContext) ([]Declaration, error) {
			s, _ := suffixAfter(base, "leading-")
			v, err := scaleOrArbitrary("line-height", t.LineHeights, ctx, s)
			if err != nil {
				return nil, err
			}
			return []Declaration{decl("line-height", v)}, nil
		},
	}
}

func trackingParser(t *Theme) ParserDescriptor {
	return ParserDescriptor{
		Name:     "letter-spacing",
		Priority: PriorityScale,
		Matches: func(base string) bool {
			s, ok := suffixAfter(base, "tracking-")
			return ok && matchScale(t.LetterSpacing, s)
		},
		Generate: func(base string, ctx *ElementContext) ([]Declaration, error) {
			s, _ := suffixAfter(base, "tracking-")
			v, err := scaleOrArbitrary("letter-spacing", t.LetterSpacing, ctx, s)
			if err != nil {
				return nil, err
			}
			return []Declaration{decl("letter-spacing", v)}, nil
		},
	}
}

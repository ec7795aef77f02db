package engine

func flexGridParsers(t *Theme) []ParserDescriptor {
	return []ParserDescriptor{
		literalParser("flex", map[string][]Declaration{
			"flex-row":          {decl("flex-direction", "row")},
			"flex-row-reverse":  {decl("flex-direction", "row-reverse")},
			"flex-col":          {decl("flex-direction", "column")},
			"flex-col-reverse":  {decl("flex-direction", "column-reverse")},
			"flex-wrap":         {decl("flex-wrap", "wrap")},
			"flex-wrap-reverse": {decl("flex-wrap", "wrap-reverse")},
			"flex-nowrap":       {decl("flex-wrap", "nowrap")},
			"flex-1":            {decl("flex", "1 1 0%")},
			"flex-auto":         {decl("flex", "1 1 auto")},
			"flex-initial":      {decl("flex", "0 1 auto")},
			"flex-none":         {decl("flex", "none")},
			"grow":              {decl("flex-grow", "1")},
			"grow-0":            {decl("flex-grow", "0")},
			"shrink":            {decl("flex-shrink", "1")},
			"shrink-0":          {decl("flex-shrink", "0")},
		}),
		literalParser("alignment", map[string][]Declaration{
			"justify-start":        {decl("justify-content", "flex-start")},
			"justify-end":          {decl("justify-content", "flex-end")},
			"justify-center":       {decl("justify-content", "center")},
			"justify-between":      {decl("justify-content", "space-between")},
			"justify-around":       {decl("justify-content", "space-around")},
			"justify-evenly":       {decl("justify-content", "space-evenly")},
			"items-start":          {decl("align-items", "flex-start")},
			"items-end":            {decl("align-items", "flex-end")},
			"items-center":         {decl("align-items", "center")},
			"items-baseline":       {decl("align-items", "baseline")},
			"items-stretch":        {decl("align-items", "stretch")},
			"self-auto":            {decl("align-self", "auto")},
			"self-start":           {decl("align-self", "flex-start")},
			"self-end":             {decl("align-self", "flex-end")},
			"self-center":          {decl("align-self", "center")},
			"self-stretch":         {decl("align-self", "stretch")},
			"self-baseline":        {decl("align-self", "baseline")},
			"content-start":        {decl("align-content", "flex-start")},
			"content-end":          {decl("align-content", "flex-end")},
			"content-center":       {decl("align-content", "center")},
			"content-between":      {decl("align-content", "space-between")},
			"content-around":       {decl("align-content", "space-around")},
			"content-evenly":       {decl("align-content", "space-evenly")},
			"place-content-center": {decl("place-content", "center")},
			"place-content-start":  {decl("place-content", "start")},
			"place-content-end":    {decl("place-content", "end")},
			"place-items-start":    {decl("place-items", "start")},
			"place-items-end":      {decl("place-items", "end")},
			"place-items-center":   {decl("place-items", "center")},
			"place-items-stretch":  {decl("place-items", "stretch")},
			"place-self-auto":      {decl("place-self", "auto")},
			"place-self-start":     {decl("place-self", "start")},
			"place-self-end":       {decl("place-self", "end")},
			"place-self-center":    {decl("place-self", "center")},
		}),
		basisParser(t),
		orderParser(),
		gapParser(t),
		gridTemplateParser(),
		gridSpanParser(),
	}
}

func basisParser(t *Theme) ParserDescriptor {
	opts := spacingOptions{allowAuto: true, allowFraction: true, allowFull: true}
	return ParserDescriptor{
		Name:     "flex-basis",
		Priority: PriorityScale,
		Matches: func(base string) bool {
			s, ok := suffixAfter(base, "basis-")
			return ok && matchSpacing(t, s, opts)
		},
		Generate: func(base string, ctx *ElementContext) ([]Declaration, error) {
			s, _ := suffixAfter(base, "basis-")
			v, err := spacingValue("flex-basis", t, ctx, s, opts)
			if err != nil {
				return nil, err
			}
			return []Declaration{decl("flex-basis", v)}, nil
		},
	}
}

func orderParser() ParserDescriptor {
	named := map[string]string{"first": "-9999", "last": "9999", "none": "0"}
	return ParserDescriptor{
		Name:     "order",
		Priority: PriorityScale,
		Matches: func(base string) bool {
			s, ok := suffixAfter(base, "order-")
			if !ok {
				return false
			}
			if _, named := named[s]; named {
				return true
			}
			return isInteger(s) || isArbitrary(s)
		},
		Generate: func(base string, ctx *ElementContext) ([]Declaration, error) {
			s, _ := suffixAfter(base, "order-")
			if v, ok := named[s]; ok {
				return []Declaration{decl("order", v)}, nil
			}
			if body, ok := bracketBody(s); ok {
				v, err := ctx.ArbitraryValue(body)
				if err != nil {
					return nil, err
				}
				return []Declaration{decl("order", v)}, nil
			}
			return []Declaration{decl("order", s)}, nil
		},
	}
}

func gapParser(t *Theme) ParserDescriptor {
	opts := spacingOptions{}
	props := map[string]string{"gap-": "gap", "gap-x-": "column-gap", "gap-y-": "row-gap"}
	order := []string{"gap-x-", "gap-y-", "gap-"}
	split := func(base string) (string, string, bool) {
		for _, prefix := range order {
			if s, ok := suffixAfter(base, prefix); ok {
				return props[prefix], s, true
			}
		}
		return "", "", false
	}
	return ParserDescriptor{
		Name:     "gap",
		Priority: PriorityScale,
		Matches: func(base string) bool {
			_, s, ok := split(base)
			return ok && matchSpacing(t, s, opts)
		},
		Generate: func(base string, ctx *ElementContext) ([]Declaration, error) {
			prop, s, _ := split(base)
			v, err := spacingValue("gap", t, ctx, s, opts)
			if err != nil {
				return nil, err
			}
			return []Declaration{decl(prop, v)}, nil
		},
	}
}

func gridTemplateParser() ParserDescriptor {
	split := func(base string) (prop, suffix string, ok bool) {
		if s, found := suffixAfter(base, "grid-cols-"); found {
			return "grid-template-columns", s, true
		}
		if s, found := suffixAfter(base, "grid-rows-"); found {
			return "grid-template-rows", s, true
		}
		return "", "", false
	}
	return ParserDescriptor{
		Name:     "grid-template",
		Priority: PriorityScale,
		Matches: func(base string) bool {
			_, s, ok := split(base)
			return ok && (s == "none" || isInteger(s) || isArbitrary(s))
		},
		Generate: func(base string, ctx *ElementContext) ([]Declaration, error) {
			prop, s, _ := split(base)
			switch {
			case s == "none":
				return []Declaration{decl(prop, "none")}, nil
			case isInteger(s):
				return []Declaration{decl(prop, "repeat("+s+", minmax(0, 1fr))")}, nil
			default:
				body, _ := bracketBody(s)
				v, err := ctx.ArbitraryValue(body)
				if err != nil {
					return nil, err
				}
				return []Declaration{decl(prop, v)}, nil
			}
		},
	}
}

func gridSpanParser() ParserDescriptor {
	split := func(base string) (prop, suffix string, span, ok bool) {
		switch {
		case base == "col-auto":
			return "grid-column", "auto", false, true
		case base == "row-auto":
			return "grid-row", "auto", false, true
		}
		if s, found := suffixAfter(base, "col-span-"); found {
			return "grid-column", s, true, true
		}
		if s, found := suffixAfter(base, "row-span-"); found {
			return "grid-row", s, true, true
		}
		if s, found := suffixAfter(base, "col-start-"); found {
			return "grid-column-start", s, false, true
		}
		if s, found := suffixAfter(base, "col-end-"); found {
			return "grid-column-end", s, false, true
		}
		if s, found := suffixAfter(base, "row-start-"); found {
			return "grid-row-start", s, false, true
		}
		if s, found := suffixAfter(base, "row-end-"); found {
			return "grid-row-end", s, false, true
		}
		return "", "", false, false
	}
	return ParserDescriptor{
		Name:     "grid-span",
		Priority: PriorityScale,
		Matches: func(base string) bool {
			_, s, _, ok := split(base)
			return ok && (s == "auto" || s == "full" || isInteger(s))
		},
		Generate: func(base string, _ *ElementContext) ([]Declaration, error) {
			prop, s, span, _ := split(base)
			switch {
			case s == "auto":
				return []Declaration{decl(prop, "auto")}, nil
			case s == "full":
				return []Declaration{decl(prop, "1 / -1")}, nil
			case span:
				return []Declaration{decl(prop, "span "+s+" / span "+s)}, nil
			default:
				return []Declaration{decl(prop, s)}, nil
			}
		},
	}
}

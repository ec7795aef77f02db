package engine

import "strings"

func backgroundParsers(t *Theme) []ParserDescriptor {
	return []ParserDescriptor{
		literalParser("bg-literal", map[string][]Declaration{
			"bg-auto":         {decl("background-size", "auto")},
			"bg-cover":        {decl("background-size", "cover")},
			"bg-contain":      {decl("background-size", "contain")},
			"bg-bottom":       {decl("background-position", "bottom")},
			"bg-center":       {decl("background-position", "center")},
			"bg-left":         {decl("background-position", "left")},
			"bg-left-bottom":  {decl("background-position", "left bottom")},
			"bg-left-top":     {decl("background-position", "left top")},
			"bg-right":        {decl("background-position", "right")},
			"bg-right-bottom": {decl("background-position", "right bottom")},
			"bg-right-top":    {decl("background-position", "right top")},
			"bg-top":          {decl("background-position", "top")},
			"bg-repeat":       {decl("background-repeat", "repeat")},
			"bg-no-repeat":    {decl("background-repeat", "no-repeat")},
			"bg-repeat-x":     {decl("background-repeat", "repeat-x")},
			"bg-repeat-y":     {decl("background-repeat", "repeat-y")},
			"bg-repeat-round": {decl("background-repeat", "round")},
			"bg-repeat-space": {decl("background-repeat", "space")},
			"bg-fixed":        {decl("background-attachment", "fixed")},
			"bg-local":        {decl("background-attachment", "local")},
			"bg-scroll":       {decl("background-attachment", "scroll")},
			"bg-none":         {decl("background-image", "none")},
		}),
		bgColorParser(t),
		bgArbitraryParser(),
	}
}

func bgColorParser(t *Theme) ParserDescriptor {
	return ParserDescriptor{
		Name:     "bg-color",
		Priority: PriorityBroad,
		Matches: func(base string) bool {
			s, ok := suffixAfter(base, "bg-")
			if !ok || isArbitrary(s) {
				return false
			}
			_, found := t.Color(s)
			return found
		},
		Generate: func(base string, ctx *ElementContext) ([]Declaration, error) {
			s, _ := suffixAfter(base, "bg-")
			v, err := colorValue("bg-color", t, ctx, s)
			if err != nil {
				return nil, err
			}
			return []Declaration{decl("background-color", v)}, nil
		},
	}
}

// bgArbitraryParser owns bg-[...] and routes the value to the right
// background property by shape.
func bgArbitraryParser() ParserDescriptor {
	return ParserDescriptor{
		Name:     "bg-arbitrary",
		Priority: PriorityBracket,
		Matches: func(base string) bool {
			s, ok := suffixAfter(base, "bg-")
			return ok && isArbitrary(s)
		},
		Generate: func(base string, ctx *ElementContext) ([]Declaration, error) {
			s, _ := suffixAfter(base, "bg-")
			body, _ := bracketBody(s)
			v, err := ctx.ArbitraryValue(body)
			if err != nil {
				return nil, err
			}
			switch {
			case looksLikeColor(v):
				return []Declaration{decl("background-color", v)}, nil
			case strings.HasPrefix(v, "url(") || strings.Contains(v, "gradient("):
				return []Declaration{decl("background-image", v)}, nil
			default:
				return []Declaration{decl("background", v)}, nil
			}
		},
	}
}

// gradientDirections maps the direction suffix of bg-gradient-to-* to the
// linear-gradient direction keyword.
var gradientDirections = map[string]string{
	"t":  "to top",
	"tr": "to top right",
	"r":  "to right",
	"br": "to bottom right",
	"b":  "to bottom",
	"bl": "to bottom left",
	"l":  "to left",
	"tl": "to top left",
}

// gradientParsers are the stateful gradient family. None of them emits a
// complete rule on its own: each mutates the element's GradientContext and
// re-emits the full derived declaration set, so every intermediate rule is
// valid CSS and the cascade converges on the final state.
func gradientParsers(t *Theme) []ParserDescriptor {
	return []ParserDescriptor{
		{
			Name:     "gradient-direction",
			Priority: PriorityStateful,
			Matches: func(base string) bool {
				s, ok := suffixAfter(base, "bg-gradient-to-")
				if !ok {
					return false
				}
				_, found := gradientDirections[s]
				return found
			},
			Generate: func(base string, ctx *ElementContext) ([]Declaration, error) {
				s, _ := suffixAfter(base, "bg-gradient-to-")
				ctx.Gradient.SetDirection(gradientDirections[s])
				return ctx.Gradient.Declarations(), nil
			},
		},
		gradientStopParser(t, "gradient-from", "from-",
			(*GradientContext).SetFrom, (*GradientContext).SetFromPos),
		gradientStopParser(t, "gradient-via", "via-",
			(*GradientContext).SetVia, (*GradientContext).SetViaPos),
		gradientStopParser(t, "gradient-to", "to-",
			(*GradientContext).SetTo, (*GradientContext).SetToPos),
	}
}

func gradientStopParser(t *Theme, name, prefix string, setColor, setPos func(*GradientContext, string)) ParserDescriptor {
	return ParserDescriptor{
		Name:     name,
		Priority: PriorityStateful,
		Matches: func(base string) bool {
			s, ok := suffixAfter(base, prefix)
			if !ok {
				return false
			}
			return matchColor(t, s) || isPercent(s)
		},
		Generate: func(base string, ctx *ElementContext) ([]Declaration, error) {
			s, _ := suffixAfter(base, prefix)
			if isPercent(s) {
				setPos(&ctx.Gradient, s)
				return ctx.Gradient.Declarations(), nil
			}
			v, err := colorValue(name, t, ctx, s)
			if err != nil {
				return nil, err
			}
			setColor(&ctx.Gradient, v)
			return ctx.Gradient.Declarations(), nil
		},
	}
}

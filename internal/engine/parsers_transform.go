package engine

import "strings"

// transformValue composes every transform channel through custom
// properties with zero-value fallbacks, so translate-x-4 and rotate-45 on
// one element combine without cross-token state.
const transformValue = "translate(var(--wc-translate-x, 0), var(--wc-translate-y, 0)) " +
	"rotate(var(--wc-rotate, 0)) skewX(var(--wc-skew-x, 0)) skewY(var(--wc-skew-y, 0)) " +
	"scaleX(var(--wc-scale-x, 1)) scaleY(var(--wc-scale-y, 1))"

var rotateScale = map[string]string{
	"0": "0deg", "1": "1deg", "2": "2deg", "3": "3deg", "6": "6deg",
	"12": "12deg", "45": "45deg", "90": "90deg", "180": "180deg",
}

var skewScale = map[string]string{
	"0": "0deg", "1": "1deg", "2": "2deg", "3": "3deg", "6": "6deg", "12": "12deg",
}

var scaleScale = map[string]string{
	"0": "0", "50": ".5", "75": ".75", "90": ".9", "95": ".95",
	"100": "1", "105": "1.05", "110": "1.1", "125": "1.25", "150": "1.5",
}

func transformParsers(t *Theme) []ParserDescriptor {
	return []ParserDescriptor{
		translateParser(t),
		rotateParser(),
		scaleParser(),
		skewParser(),
		literalParser("transform-origin", map[string][]Declaration{
			"origin-center":       {decl("transform-origin", "center")},
			"origin-top":          {decl("transform-origin", "top")},
			"origin-top-right":    {decl("transform-origin", "top right")},
			"origin-right":        {decl("transform-origin", "right")},
			"origin-bottom-right": {decl("transform-origin", "bottom right")},
			"origin-bottom":       {decl("transform-origin", "bottom")},
			"origin-bottom-left":  {decl("transform-origin", "bottom left")},
			"origin-left":         {decl("transform-origin", "left")},
			"origin-top-left":     {decl("transform-origin", "top left")},
		}),
	}
}

func translateParser(t *Theme) ParserDescriptor {
	opts := spacingOptions{allowFraction: true, allowFull: true}
	split := func(base string) (axis, suffix string, negative, ok bool) {
		rest := base
		if strings.HasPrefix(rest, "-") {
			negative = true
			rest = rest[1:]
		}
		if s, found := suffixAfter(rest, "translate-x-"); found {
			return "x", s, negative, true
		}
		if s, found := suffixAfter(rest, "translate-y-"); found {
			return "y", s, negative, true
		}
		return "", "", false, false
	}
	return ParserDescriptor{
		Name:     "translate",
		Priority: PriorityStateful,
		Matches: func(base string) bool {
			_, suffix, _, ok := split(base)
			return ok && matchSpacing(t, suffix, opts)
		},
		Generate: func(base string, ctx *ElementContext) ([]Declaration, error) {
			axis, suffix, negative, _ := split(base)
			v, err := spacingValue("translate", t, ctx, suffix, opts)
			if err != nil {
				return nil, err
			}
			if negative {
				v = negate(v)
			}
			return []Declaration{
				decl("--wc-translate-"+axis, v),
				decl("transform", transformValue),
			}, nil
		},
	}
}

func rotateParser() ParserDescriptor {
	split := func(base string) (suffix string, negative, ok bool) {
		rest := base
		if strings.HasPrefix(rest, "-") {
			negative = true
			rest = rest[1:]
		}
		s, found := suffixAfter(rest, "rotate-")
		return s, negative, found
	}
	return ParserDescriptor{
		Name:     "rotate",
		Priority: PriorityStateful,
		Matches: func(base string) bool {
			s, _, ok := split(base)
			return ok && matchScale(rotateScale, s)
		},
		Generate: func(base string, ctx *ElementContext) ([]Declaration, error) {
			s, negative, _ := split(base)
			v, err := scaleOrArbitrary("rotate", rotateScale, ctx, s)
			if err != nil {
				return nil, err
			}
			if negative {
				v = negate(v)
			}
			return []Declaration{
				decl("--wc-rotate", v),
				decl("transform", transformValue),
			}, nil
		},
	}
}

func scaleParser() ParserDescriptor {
	split := func(base string) (axes []string, suffix string, ok bool) {
		if s, found := suffixAfter(base, "scale-x-"); found {
			return []string{"x"}, s, true
		}
		if s, found := suffixAfter(base, "scale-y-"); found {
			return []string{"y"}, s, true
		}
		if s, found := suffixAfter(base, "scale-"); found {
			return []string{"x", "y"}, s, true
		}
		return nil, "", false
	}
	return ParserDescriptor{
		Name:     "scale",
		Priority: PriorityStateful,
		Matches: func(base string) bool {
			_, s, ok := split(base)
			return ok && matchScale(scaleScale, s)
		},
		Generate: func(base string, ctx *ElementContext) ([]Declaration, error) {
			axes, s, _ := split(base)
			v, err := scaleOrArbitrary("scale", scaleScale, ctx, s)
			if err != nil {
				return nil, err
			}
			out := make([]Declaration, 0, len(axes)+1)
			for _, axis := range axes {
				out = append(out, decl("--wc-scale-"+axis, v))
			}
			out = append(out, decl("transform", transformValue))
			return out, nil
		},
	}
}

func skewParser() ParserDescriptor {
	split := func(base string) (axis, suffix string, negative, ok bool) {
		rest := base
		if strings.HasPrefix(rest, "-") {
			negative = true
			rest = rest[1:]
		}
		if s, found := suffixAfter(rest, "skew-x-"); found {
			return "x", s, negative, true
		}
		if s, found := suffixAfter(rest, "skew-y-"); found {
			return "y", s, negative, true
		}
		return "", "", false, false
	}
	return ParserDescriptor{
		Name:     "skew",
		Priority: PriorityStateful,
		Matches: func(base string) bool {
			_, s, _, ok := split(base)
			return ok && matchScale(skewScale, s)
		},
		Generate: func(base string, ctx *ElementContext) ([]Declaration, error) {
			axis, s, negative, _ := split(base)
			v, err := scaleOrArbitrary("skew", skewScale, ctx, s)
			if err != nil {
				return nil, err
			}
			if negative {
				v = negate(v)
			}
			return []Declaration{
				decl("--wc-skew-"+axis, v),
				decl("transform", transformValue),
			}, nil
		},
	}
}

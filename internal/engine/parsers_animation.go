package engine

import "strings"

// animationParsers compose through the element's AnimationComposer so
// multiple animate-* utilities on one element yield a single combined
// animation declaration.
func animationParsers(t *Theme) []ParserDescriptor {
	return []ParserDescriptor{
		{
			Name:     "animation",
			Priority: PriorityStateful,
			Matches: func(base string) bool {
				s, ok := suffixAfter(base, "animate-")
				if !ok || isArbitrary(s) {
					return false
				}
				if s == "none" {
					return true
				}
				_, found := t.Animations[s]
				return found
			},
			Generate: func(base string, ctx *ElementContext) ([]Declaration, error) {
				s, _ := suffixAfter(base, "animate-")
				if s == "none" {
					return []Declaration{decl("animation", "none")}, nil
				}
				return []Declaration{ctx.AddAnimation(s, t.Animations[s])}, nil
			},
		},
		{
			Name:     "animation-arbitrary",
			Priority: PriorityBracket,
			Matches: func(base string) bool {
				s, ok := suffixAfter(base, "animate-")
				return ok && isArbitrary(s)
			},
			Generate: func(base string, ctx *ElementContext) ([]Declaration, error) {
				s, _ := suffixAfter(base, "animate-")
				body, _ := bracketBody(s)
				v, err := ctx.ArbitraryValue(body)
				if err != nil {
					return nil, err
				}
				// The first word of the shorthand may reference a theme
				// keyframes block; record it so the serializer emits it.
				name := ""
				if first := strings.Fields(v); len(first) > 0 {
					if _, ok := t.Keyframes[first[0]]; ok {
						name = first[0]
					}
				}
				return []Declaration{ctx.AddAnimation(name, v)}, nil
			},
		},
	}
}

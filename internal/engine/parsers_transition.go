package engine

const defaultTransitionTiming = "cubic-bezier(0.4, 0, 0.2, 1)"

func transitionParsers(t *Theme) []ParserDescriptor {
	withDefaults := func(property string) []Declaration {
		return []Declaration{
			decl("transition-property", property),
			decl("transition-timing-function", defaultTransitionTiming),
			decl("transition-duration", "150ms"),
		}
	}
	return []ParserDescriptor{
		literalParser("transition", map[string][]Declaration{
			"transition": withDefaults("color, background-color, border-color, text-decoration-color, fill, stroke, opacity, box-shadow, transform, filter, backdrop-filter"),
			"transition-none": {
				decl("transition-property", "none"),
			},
			"transition-all":       withDefaults("all"),
			"transition-colors":    withDefaults("color, background-color, border-color, text-decoration-color, fill, stroke"),
			"transition-opacity":   withDefaults("opacity"),
			"transition-shadow":    withDefaults("box-shadow"),
			"transition-transform": withDefaults("transform"),
		}),
		durationParser(t),
		easeParser(t),
		delayParser(t),
		literalParser("will-change", map[string][]Declaration{
			"will-change-auto":      {decl("will-change", "auto")},
			"will-change-scroll":    {decl("will-change", "scroll-position")},
			"will-change-contents":  {decl("will-change", "contents")},
			"will-change-transform": {decl("will-change", "transform")},
		}),
	}
}

func durationParser(t *Theme) ParserDescriptor {
	return ParserDescriptor{
		Name:     "duration",
		Priority: PriorityScale,
		Matches: func(base string) bool {
			s, ok := suffixAfter(base, "duration-")
			return ok && matchScale(t.Durations, s)
		},
		Generate: func(base string, ctx *ElementContext) ([]Declaration, error) {
			s, _ := suffixAfter(base, "duration-")
			v, err := scaleOrArbitrary("duration", t.Durations, ctx, s)
			if err != nil {
				return nil, err
			}
			return []Declaration{decl("transition-duration", v)}, nil
		},
	}
}

func easeParser(t *Theme) ParserDescriptor {
	return ParserDescriptor{
		Name:     "ease",
		Priority: PriorityScale,
		Matches: func(base string) bool {
			s, ok := suffixAfter(base, "ease-")
			return ok && matchScale(t.Timings, s)
		},
		Generate: func(base string, ctx *ElementContext) ([]Declaration, error) {
			s, _ := suffixAfter(base, "ease-")
			v, err := scaleOrArbitrary("ease", t.Timings, ctx, s)
			if err != nil {
				return nil, err
			}
			return []Declaration{decl("transition-timing-function", v)}, nil
		},
	}
}

func delayParser(t *Theme) ParserDescriptor {
	return ParserDescriptor{
		Name:     "delay",
		Priority: PriorityScale,
		Matches: func(base string) bool {
			s, ok := suffixAfter(base, "delay-")
			return ok && matchScale(t.Durations, s)
		},
		Generate: func(base string, ctx *ElementContext) ([]Declaration, error) {
			s, _ := suffixAfter(base, "delay-")
			v, err := scaleOrArbitrary("delay", t.Durations, ctx, s)
			if err != nil {
				return nil, err
			}
			return []Declaration{decl("transition-delay", v)}, nil
		},
	}
}

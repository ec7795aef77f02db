package engine

import "strings"

// arbitraryPropertyParsers handle the [--name:value] form: a direct
// custom-property assignment on the element. The assignment is recorded
// in the element's registry and emitted immediately.
func arbitraryPropertyParsers() []ParserDescriptor {
	split := func(base string) (name, value string, ok bool) {
		body, bracketed := bracketBody(base)
		if !bracketed || !strings.HasPrefix(body, "--") {
			return "", "", false
		}
		i := indexOutsideBrackets(body, ':')
		if i <= 2 || i == len(body)-1 {
			return "", "", false
		}
		return body[:i], body[i+1:], true
	}
	return []ParserDescriptor{
		{
			Name:     "custom-property",
			Priority: PriorityBracket,
			Matches: func(base string) bool {
				_, _, ok := split(base)
				return ok
			},
			Generate: func(base string, ctx *ElementContext) ([]Declaration, error) {
				name, raw, _ := split(base)
				value, err := ctx.ArbitraryValue(raw)
				if err != nil {
					return nil, err
				}
				return []Declaration{ctx.SetCustomProperty(name, value)}, nil
			},
		},
	}
}

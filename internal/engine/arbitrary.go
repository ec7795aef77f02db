package engine

import (
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// parseArbitraryValue validates and normalizes the body of a bracketed
// arbitrary value ("13px", "#1e293b", "calc(100%_-_2rem)"). Underscores
// stand for spaces; "\_" escapes a literal underscore.
func parseArbitraryValue(raw string) (string, error) {
	if raw == "" {
		return "", &ArbitraryValueError{Value: raw, Reason: "empty value"}
	}
	if strings.ContainsAny(raw, ";{}") {
		return "", &ArbitraryValueError{Value: raw, Reason: "disallowed character"}
	}
	if !bracketsBalanced(raw) {
		return "", &ArbitraryValueError{Value: raw, Reason: "unbalanced brackets"}
	}

	value := unescapeUnderscores(raw)
	if err := lexValue(value); err != nil {
		return "", &ArbitraryValueError{Value: raw, Reason: err.Error()}
	}
	return value, nil
}

// lexValue runs the value through the CSS tokenizer and rejects input the
// lexer cannot consume cleanly.
func lexValue(value string) error {
	lexer := css.NewLexer(parse.NewInputString(value))
	for {
		tt, _ := lexer.Next()
		if tt == css.ErrorToken {
			if err := lexer.Err(); err != nil && err != io.EOF {
				return err
			}
			return nil
		}
	}
}

func bracketsBalanced(s string) bool {
	var depthSq, depthPar int
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[':
			depthSq++
		case ']':
			depthSq--
			if depthSq < 0 {
				return false
			}
		case '(':
			depthPar++
		case ')':
			depthPar--
			if depthPar < 0 {
				return false
			}
		}
	}
	return depthSq == 0 && depthPar == 0
}

func unescapeUnderscores(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '\\' && i+1 < len(s) && s[i+1] == '_':
			b.WriteByte('_')
			i++
		case s[i] == '_':
			b.WriteByte(' ')
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// bracketBody returns the inner text of a "[...]" suffix, or ok=false when
// s is not bracketed.
func bracketBody(s string) (string, bool) {
	if len(s) >= 2 && s[0] == '[' && s[len(s)-1] == ']' {
		return s[1 : len(s)-1], true
	}
	return "", false
}

package engine

import (
	"sort"
	"strings"
)

const indentUnit = "  "

// Serialize renders rules as a stylesheet. Keyframe definitions come
// first, sorted by name; rules follow in slice order, with consecutive
// rules that share a media chain grouped under one nested @media block.
// Equal inputs always serialize to byte-equal output.
func Serialize(rules []Rule, keyframes map[string]string) string {
	var b strings.Builder

	names := make([]string, 0, len(keyframes))
	for name := range keyframes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		b.WriteString("@keyframes ")
		b.WriteString(name)
		b.WriteString(" {\n")
		writeKeyframeBody(&b, keyframes[name])
		b.WriteString("}\n\n")
	}

	for i := 0; i < len(rules); {
		media := rules[i].Media
		j := i
		for j < len(rules) && sameMedia(rules[j].Media, media) {
			j++
		}
		depth := 0
		for _, q := range media {
			b.WriteString(strings.Repeat(indentUnit, depth))
			b.WriteString("@media ")
			b.WriteString(q)
			b.WriteString(" {\n")
			depth++
		}
		for ; i < j; i++ {
			writeRule(&b, rules[i], depth)
		}
		for depth > 0 {
			depth--
			b.WriteString(strings.Repeat(indentUnit, depth))
			b.WriteString("}\n")
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

func writeRule(b *strings.Builder, r Rule, depth int) {
	indent := strings.Repeat(indentUnit, depth)
	b.WriteString(indent)
	b.WriteString(r.Selector)
	b.WriteString(" {\n")
	for _, d := range r.Declarations {
		b.WriteString(indent)
		b.WriteString(indentUnit)
		b.WriteString(d.Property)
		b.WriteString(": ")
		b.WriteString(d.Value)
		b.WriteString(";\n")
	}
	b.WriteString(indent)
	b.WriteString("}\n")
}

// writeKeyframeBody re-indents a raw keyframe body onto its own lines.
// Bodies in the theme are single-line texts like
// "0%, 100% { opacity: 1 } 50% { opacity: .5 }".
func writeKeyframeBody(b *strings.Builder, body string) {
	depth := 1
	line := strings.Builder{}
	flush := func() {
		text := strings.TrimSpace(line.String())
		line.Reset()
		if text == "" {
			return
		}
		b.WriteString(strings.Repeat(indentUnit, depth))
		b.WriteString(text)
		b.WriteString("\n")
	}
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '{':
			line.WriteString(" {")
			flush()
			depth++
		case '}':
			flush()
			depth--
			b.WriteString(strings.Repeat(indentUnit, depth))
			b.WriteString("}\n")
		case ';':
			line.WriteByte(';')
			flush()
		default:
			if body[i] == ' ' && line.Len() == 0 {
				continue
			}
			line.WriteByte(body[i])
		}
	}
	flush()
}

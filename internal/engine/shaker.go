package engine

import "strings"

// Shake filters rules down to the ones whose originating class appears
// in used. Rules without an origin (preamble material injected by
// plugins) always survive. Order is preserved.
func Shake(rules []Rule, used map[string]bool) []Rule {
	out := make([]Rule, 0, len(rules))
	for _, r := range rules {
		if r.OriginClass == "" || used[r.OriginClass] {
			out = append(out, r)
		}
	}
	return out
}

// MergeAdjacent collapses neighbouring rules that share a media context
// and an identical declaration body into one grouped selector. Only
// adjacent rules merge, so cascade order never changes, and running the
// pass twice yields the same output as running it once.
func MergeAdjacent(rules []Rule) []Rule {
	if len(rules) < 2 {
		return rules
	}
	out := make([]Rule, 0, len(rules))
	for _, r := range rules {
		if len(out) > 0 {
			prev := &out[len(out)-1]
			if sameMedia(prev.Media, r.Media) && prev.DeclarationsText() == r.DeclarationsText() {
				if !hasSelector(prev.Selector, r.Selector) {
					prev.Selector += ", " + r.Selector
				}
				continue
			}
		}
		out = append(out, r)
	}
	return out
}

func sameMedia(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func hasSelector(list, sel string) bool {
	for _, part := range strings.Split(list, ", ") {
		if part == sel {
			return true
		}
	}
	return false
}

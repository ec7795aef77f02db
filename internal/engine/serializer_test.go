package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSerialize_PlainRule(t *testing.T) {
	css := Serialize([]Rule{
		{Selector: ".flex", Declarations: []Declaration{decl("display", "flex")}},
	}, nil)

	assert.Equal(t, ".flex {\n  display: flex;\n}\n", css)
}

func TestSerialize_GroupsConsecutiveMedia(t *testing.T) {
	md := []string{"(min-width: 768px)"}
	css := Serialize([]Rule{
		{Selector: ".a", Declarations: []Declaration{decl("color", "red")}},
		{Selector: ".b", Media: md, Declarations: []Declaration{decl("display", "none")}},
		{Selector: ".c", Media: md, Declarations: []Declaration{decl("display", "flex")}},
		{Selector: ".d", Declarations: []Declaration{decl("color", "blue")}},
	}, nil)

	want := strings.Join([]string{
		".a {",
		"  color: red;",
		"}",
		"",
		"@media (min-width: 768px) {",
		"  .b {",
		"    display: none;",
		"  }",
		"  .c {",
		"    display: flex;",
		"  }",
		"}",
		"",
		".d {",
		"  color: blue;",
		"}",
		"",
	}, "\n")
	assert.Equal(t, want, css)
}

func TestSerialize_NestedMedia(t *testing.T) {
	css := Serialize([]Rule{
		{
			Selector:     ".x",
			Media:        []string{"(min-width: 768px)", "(prefers-color-scheme: dark)"},
			Declarations: []Declaration{decl("color", "white")},
		},
	}, nil)

	want := strings.Join([]string{
		"@media (min-width: 768px) {",
		"  @media (prefers-color-scheme: dark) {",
		"    .x {",
		"      color: white;",
		"    }",
		"  }",
		"}",
		"",
	}, "\n")
	assert.Equal(t, want, css)
}

func TestSerialize_KeyframesFirstAndSorted(t *testing.T) {
	css := Serialize([]Rule{
		{Selector: ".a", Declarations: []Declaration{decl("color", "red")}},
	}, map[string]string{
		"spin": "to { transform: rotate(360deg) }",
		"ping": "75%, 100% { transform: scale(2); opacity: 0 }",
	})

	ping := strings.Index(css, "@keyframes ping")
	spin := strings.Index(css, "@keyframes spin")
	rule := strings.Index(css, ".a {")
	assert.Greater(t, ping, -1)
	assert.Greater(t, spin, ping)
	assert.Greater(t, rule, spin)
}

func TestSerialize_KeyframeBody(t *testing.T) {
	css := Serialize(nil, map[string]string{
		"spin": "to { transform: rotate(360deg) }",
	})

	want := strings.Join([]string{
		"@keyframes spin {",
		"  to {",
		"    transform: rotate(360deg)",
		"  }",
		"}",
		"",
	}, "\n")
	assert.Equal(t, want, css)
}

func TestSerialize_Deterministic(t *testing.T) {
	rules := []Rule{
		{Selector: ".a", Declarations: []Declaration{decl("color", "red")}},
		{Selector: ".b", Media: []string{"(min-width: 640px)"}, Declarations: []Declaration{decl("color", "blue")}},
	}
	keyframes := map[string]string{
		"spin":   "to { transform: rotate(360deg) }",
		"bounce": "0%, 100% { transform: translateY(-25%) }",
	}

	first := Serialize(rules, keyframes)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, Serialize(rules, keyframes))
	}
}

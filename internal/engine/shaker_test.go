package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShake_FiltersByUsage(t *testing.T) {
	rules := []Rule{
		{Selector: ".flex", OriginClass: "flex"},
		{Selector: ".hidden", OriginClass: "hidden"},
		{Selector: ".block", OriginClass: "block"},
	}

	out := Shake(rules, map[string]bool{"flex": true, "block": true})
	require.Len(t, out, 2)
	assert.Equal(t, ".flex", out[0].Selector)
	assert.Equal(t, ".block", out[1].Selector)
}

func TestShake_KeepsOriginless(t *testing.T) {
	rules := []Rule{
		{Selector: ":root"},
		{Selector: ".flex", OriginClass: "flex"},
	}

	out := Shake(rules, map[string]bool{})
	require.Len(t, out, 1)
	assert.Equal(t, ":root", out[0].Selector)
}

func TestMergeAdjacent_SameDeclarations(t *testing.T) {
	decls := []Declaration{decl("display", "none")}
	rules := []Rule{
		{Selector: ".hidden", Declarations: decls},
		{Selector: ".collapsed", Declarations: decls},
		{Selector: ".flex", Declarations: []Declaration{decl("display", "flex")}},
	}

	out := MergeAdjacent(rules)
	require.Len(t, out, 2)
	assert.Equal(t, ".hidden, .collapsed", out[0].Selector)
	assert.Equal(t, ".flex", out[1].Selector)
}

func TestMergeAdjacent_RespectsMedia(t *testing.T) {
	decls := []Declaration{decl("display", "none")}
	rules := []Rule{
		{Selector: ".a", Declarations: decls},
		{Selector: ".b", Media: []string{"(min-width: 768px)"}, Declarations: decls},
	}

	out := MergeAdjacent(rules)
	assert.Len(t, out, 2)
}

func TestMergeAdjacent_OnlyNeighbours(t *testing.T) {
	none := []Declaration{decl("display", "none")}
	flex := []Declaration{decl("display", "flex")}
	rules := []Rule{
		{Selector: ".a", Declarations: none},
		{Selector: ".b", Declarations: flex},
		{Selector: ".c", Declarations: none},
	}

	// .a and .c share a body but merging them across .b would reorder
	// the cascade, so they stay apart.
	out := MergeAdjacent(rules)
	assert.Len(t, out, 3)
}

func TestMergeAdjacent_Idempotent(t *testing.T) {
	decls := []Declaration{decl("margin", "0")}
	rules := []Rule{
		{Selector: ".m-0", Declarations: decls},
		{Selector: ".reset", Declarations: decls},
	}

	once := MergeAdjacent(rules)
	twice := MergeAdjacent(once)
	assert.Equal(t, once, twice)
}

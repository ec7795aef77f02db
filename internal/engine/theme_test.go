package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme_Breakpoints(t *testing.T) {
	theme := DefaultTheme()

	tests := []struct {
		name, width string
	}{
		{"sm", "640px"},
		{"md", "768px"},
		{"lg", "1024px"},
		{"xl", "1280px"},
		{"2xl", "1536px"},
	}
	for _, tt := range tests {
		width, ok := theme.Breakpoint(tt.name)
		require.True(t, ok, tt.name)
		assert.Equal(t, tt.width, width)
	}
	assert.False(t, theme.IsBreakpoint("xs"))
}

func TestTheme_Color(t *testing.T) {
	theme := DefaultTheme()

	v, ok := theme.Color("red-500")
	require.True(t, ok)
	assert.Equal(t, "#ef4444", v)

	v, ok = theme.Color("white")
	require.True(t, ok)
	assert.Equal(t, "#ffffff", v)

	_, ok = theme.Color("red-12345")
	assert.False(t, ok)

	_, ok = theme.Color("nonsense")
	assert.False(t, ok)
}

func TestTheme_OverrideColors(t *testing.T) {
	theme := DefaultTheme()

	err := theme.Override(map[string]any{
		"colors": map[string]any{
			"brand": map[string]any{"500": "#123456"},
			"ink":   "#0a0a0a",
		},
	})
	require.NoError(t, err)

	v, ok := theme.Color("brand-500")
	require.True(t, ok)
	assert.Equal(t, "#123456", v)

	v, ok = theme.Color("ink")
	require.True(t, ok)
	assert.Equal(t, "#0a0a0a", v)

	// Untouched palettes survive.
	v, ok = theme.Color("red-500")
	require.True(t, ok)
	assert.Equal(t, "#ef4444", v)
}

func TestTheme_OverrideSpacingExtends(t *testing.T) {
	theme := DefaultTheme()

	err := theme.Override(map[string]any{
		"spacing": map[string]any{"huge": "9rem", "4": "1.25rem"},
	})
	require.NoError(t, err)

	assert.Equal(t, "9rem", theme.Spacing["huge"])
	assert.Equal(t, "1.25rem", theme.Spacing["4"])
	assert.Equal(t, "0.5rem", theme.Spacing["2"])
}

func TestTheme_OverrideBreakpoints(t *testing.T) {
	theme := DefaultTheme()

	err := theme.Override(map[string]any{
		"breakpoints": map[string]any{
			"md":  "800px",
			"3xl": "1920px",
		},
	})
	require.NoError(t, err)

	width, ok := theme.Breakpoint("md")
	require.True(t, ok)
	assert.Equal(t, "800px", width)

	width, ok = theme.Breakpoint("3xl")
	require.True(t, ok)
	assert.Equal(t, "1920px", width)
}

func TestTheme_OverrideFontSizes(t *testing.T) {
	theme := DefaultTheme()

	err := theme.Override(map[string]any{
		"fontsizes": map[string]any{
			"hero": map[string]any{"size": "4rem", "line-height": "1"},
			"tiny": "0.625rem",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, FontSize{Size: "4rem", LineHeight: "1"}, theme.FontSizes["hero"])
	assert.Equal(t, FontSize{Size: "0.625rem"}, theme.FontSizes["tiny"])
}

func TestTheme_OverrideUnknownSection(t *testing.T) {
	theme := DefaultTheme()

	err := theme.Override(map[string]any{"palete": map[string]any{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "palete")
}

func TestTheme_OverrideRejectsScalarSection(t *testing.T) {
	theme := DefaultTheme()

	err := theme.Override(map[string]any{"spacing": "oops"})
	require.Error(t, err)
}

// An override applied after registry construction changes resolved values
// without re-registering parsers.
func TestTheme_OverrideReachesLiveRegistry(t *testing.T) {
	theme := DefaultTheme()
	r, err := NewRegistry(theme)
	require.NoError(t, err)

	require.NoError(t, theme.Override(map[string]any{
		"spacing": map[string]any{"4": "2rem"},
	}))

	decls, err := r.Resolve("p-4", NewElementContext())
	require.NoError(t, err)
	assert.Equal(t, []Declaration{decl("padding", "2rem")}, decls)
}

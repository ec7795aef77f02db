package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func composeTags(kinds ...VariantTag) []VariantTag { return kinds }

func TestCompositor_NoVariants(t *testing.T) {
	c := NewCompositor(DefaultTheme(), "")

	rule, err := c.Compose("flex", nil, []Declaration{decl("display", "flex")}, "flex")
	require.NoError(t, err)
	assert.Equal(t, ".flex", rule.Selector)
	assert.Empty(t, rule.Media)
	assert.Equal(t, "flex", rule.OriginClass)
}

func TestCompositor_EscapesToken(t *testing.T) {
	c := NewCompositor(DefaultTheme(), "")

	rule, err := c.Compose("md:w-1/2", composeTags(
		VariantTag{Kind: VariantResponsive, Value: "md"},
	), []Declaration{decl("width", "50%")}, "md:w-1/2")
	require.NoError(t, err)
	assert.Equal(t, `.md\:w-1\/2`, rule.Selector)
	assert.Equal(t, []string{"(min-width: 768px)"}, rule.Media)
}

func TestCompositor_StateVariant(t *testing.T) {
	c := NewCompositor(DefaultTheme(), "")

	rule, err := c.Compose("hover:underline", composeTags(
		VariantTag{Kind: VariantState, Value: "hover"},
	), []Declaration{decl("text-decoration-line", "underline")}, "hover:underline")
	require.NoError(t, err)
	assert.Equal(t, `.hover\:underline:hover`, rule.Selector)
}

func TestCompositor_VariantOrderMatters(t *testing.T) {
	c := NewCompositor(DefaultTheme(), "")

	// md:hover: and hover:md: produce the same selector and media here
	// because responsive variants never touch the selector, but stacked
	// selector variants must honor written order.
	rule, err := c.Compose("first:hover:underline", composeTags(
		VariantTag{Kind: VariantState, Value: "first"},
		VariantTag{Kind: VariantState, Value: "hover"},
	), nil, "")
	require.NoError(t, err)
	assert.Equal(t, `.first\:hover\:underline:hover:first-child`, rule.Selector)

	rule, err = c.Compose("hover:first:underline", composeTags(
		VariantTag{Kind: VariantState, Value: "hover"},
		VariantTag{Kind: VariantState, Value: "first"},
	), nil, "")
	require.NoError(t, err)
	assert.Equal(t, `.hover\:first\:underline:first-child:hover`, rule.Selector)
}

func TestCompositor_GroupHoverSubstitutes(t *testing.T) {
	c := NewCompositor(DefaultTheme(), "")

	rule, err := c.Compose("group-hover:visible", composeTags(
		VariantTag{Kind: VariantState, Value: "group-hover"},
	), nil, "")
	require.NoError(t, err)
	assert.Equal(t, `.group:hover .group-hover\:visible`, rule.Selector)
}

func TestCompositor_ArbitrarySelector(t *testing.T) {
	c := NewCompositor(DefaultTheme(), "")

	rule, err := c.Compose("[&:nth-child(3)]:mt-0", composeTags(
		VariantTag{Kind: VariantArbitrarySelector, Value: "&:nth-child(3)"},
	), nil, "")
	require.NoError(t, err)
	assert.Equal(t, `.\[\&\:nth-child\(3\)\]\:mt-0:nth-child(3)`, rule.Selector)
}

func TestCompositor_ArbitraryMedia(t *testing.T) {
	c := NewCompositor(DefaultTheme(), "")

	rule, err := c.Compose("tok", composeTags(
		VariantTag{Kind: VariantArbitraryMedia, Value: "@media (min-width:900px)"},
	), nil, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"(min-width:900px)"}, rule.Media)
}

func TestCompositor_ResponsiveThenState(t *testing.T) {
	c := NewCompositor(DefaultTheme(), "")

	rule, err := c.Compose("md:hover:underline", composeTags(
		VariantTag{Kind: VariantResponsive, Value: "md"},
		VariantTag{Kind: VariantState, Value: "hover"},
	), nil, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"(min-width: 768px)"}, rule.Media)
	assert.Equal(t, `.md\:hover\:underline:hover`, rule.Selector)
}

func TestCompositor_TwoResponsiveConflict(t *testing.T) {
	c := NewCompositor(DefaultTheme(), "")

	var conflict *ConflictingVariantError
	_, err := c.Compose("sm:md:flex", composeTags(
		VariantTag{Kind: VariantResponsive, Value: "sm"},
		VariantTag{Kind: VariantResponsive, Value: "md"},
	), nil, "")
	require.ErrorAs(t, err, &conflict)
}

func TestCompositor_UnknownBreakpoint(t *testing.T) {
	c := NewCompositor(DefaultTheme(), "")

	_, err := c.Compose("xs:flex", composeTags(
		VariantTag{Kind: VariantResponsive, Value: "xs"},
	), nil, "")
	require.Error(t, err)
}

func TestCompositor_DarkClassStrategy(t *testing.T) {
	c := NewCompositor(DefaultTheme(), DarkClass)

	rule, err := c.Compose("dark:bg-black", composeTags(
		VariantTag{Kind: VariantDark},
	), nil, "")
	require.NoError(t, err)
	assert.Equal(t, `.dark .dark\:bg-black`, rule.Selector)
	assert.Empty(t, rule.Media)
}

func TestCompositor_DarkMediaStrategy(t *testing.T) {
	c := NewCompositor(DefaultTheme(), DarkMedia)

	rule, err := c.Compose("dark:bg-black", composeTags(
		VariantTag{Kind: VariantDark},
	), nil, "")
	require.NoError(t, err)
	assert.Equal(t, `.dark\:bg-black`, rule.Selector)
	assert.Equal(t, []string{"(prefers-color-scheme: dark)"}, rule.Media)
}

func TestCompositor_DarkStacksWithResponsive(t *testing.T) {
	c := NewCompositor(DefaultTheme(), DarkClass)

	rule, err := c.Compose("md:dark:hover:bg-black", composeTags(
		VariantTag{Kind: VariantResponsive, Value: "md"},
		VariantTag{Kind: VariantDark},
		VariantTag{Kind: VariantState, Value: "hover"},
	), nil, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"(min-width: 768px)"}, rule.Media)
	assert.Equal(t, `.dark .md\:dark\:hover\:bg-black:hover`, rule.Selector)
}

func TestEscapeClassName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"flex", "flex"},
		{"w-1/2", `w-1\/2`},
		{"hover:flex", `hover\:flex`},
		{"top-[13px]", `top-\[13px\]`},
		{"bg-[#1e293b]", `bg-\[\#1e293b\]`},
		{"p-2.5", `p-2\.5`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EscapeClassName(tt.in), tt.in)
	}
}

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func declMap(decls []Declaration) map[string]string {
	m := make(map[string]string, len(decls))
	for _, d := range decls {
		m[d.Property] = d.Value
	}
	return m
}

func TestGradient_FromOnly(t *testing.T) {
	var g GradientContext
	g.SetDirection("to right")
	g.SetFrom("#ef4444")

	m := declMap(g.Declarations())
	assert.Equal(t, "#ef4444", m["--wc-gradient-from"])
	assert.Equal(t, transparentStop, m["--wc-gradient-via"])
	assert.Equal(t, transparentStop, m["--wc-gradient-to"])
	assert.Equal(t, "0%", m["--wc-gradient-from-position"])
	assert.Equal(t, "50%", m["--wc-gradient-via-position"])
	assert.Equal(t, "100%", m["--wc-gradient-to-position"])

	// Without a via stop the chain references from and to directly
	assert.Equal(t,
		"var(--wc-gradient-from) var(--wc-gradient-from-position), "+
			"var(--wc-gradient-to) var(--wc-gradient-to-position)",
		m["--wc-gradient-stops"])
	assert.NotContains(t, m, "--wc-gradient-via-stops")
	assert.Equal(t, "linear-gradient(to right, var(--wc-gradient-stops))", m["background-image"])
}

func TestGradient_ViaSwitchesToIndirection(t *testing.T) {
	var g GradientContext
	g.SetDirection("to bottom")
	g.SetFrom("#ef4444")
	g.SetVia("#3b82f6")
	g.SetTo("#22c55e")

	m := declMap(g.Declarations())
	assert.Equal(t,
		"var(--wc-gradient-from) var(--wc-gradient-from-position), "+
			"var(--wc-gradient-via) var(--wc-gradient-via-position), "+
			"var(--wc-gradient-to) var(--wc-gradient-to-position)",
		m["--wc-gradient-via-stops"])
	assert.Equal(t, "var(--wc-gradient-via-stops)", m["--wc-gradient-stops"])
	assert.Equal(t, "linear-gradient(to bottom, var(--wc-gradient-stops))", m["background-image"])
}

func TestGradient_OrderIndependentFinalState(t *testing.T) {
	var a GradientContext
	a.SetFrom("#ef4444")
	a.SetTo("#22c55e")
	a.SetDirection("to top")

	var b GradientContext
	b.SetDirection("to top")
	b.SetTo("#22c55e")
	b.SetFrom("#ef4444")

	assert.Equal(t, a.Declarations(), b.Declarations())
}

func TestGradient_PositionOverrides(t *testing.T) {
	var g GradientContext
	g.SetFrom("#ef4444")
	g.SetFromPos("20%")
	g.SetToPos("90%")

	m := declMap(g.Declarations())
	assert.Equal(t, "20%", m["--wc-gradient-from-position"])
	assert.Equal(t, "90%", m["--wc-gradient-to-position"])
}

func TestGradient_DefaultDirection(t *testing.T) {
	var g GradientContext
	g.SetFrom("#ef4444")

	m := declMap(g.Declarations())
	assert.Equal(t, "linear-gradient(to right, var(--wc-gradient-stops))", m["background-image"])
}

func TestContext_ArbitraryValueMemoized(t *testing.T) {
	ctx := NewElementContext()

	v, err := ctx.ArbitraryValue("13px")
	require.NoError(t, err)
	assert.Equal(t, "13px", v)

	// Same input resolves again (from the memo)
	v2, err := ctx.ArbitraryValue("13px")
	require.NoError(t, err)
	assert.Equal(t, v, v2)

	_, err = ctx.ArbitraryValue("bad;value")
	require.Error(t, err)
}

func TestContext_CustomProperties(t *testing.T) {
	ctx := NewElementContext()

	d := ctx.SetCustomProperty("--brand", "#bada55")
	assert.Equal(t, Declaration{Property: "--brand", Value: "#bada55"}, d)

	v, ok := ctx.CustomProperty("--brand")
	require.True(t, ok)
	assert.Equal(t, "#bada55", v)

	_, ok = ctx.CustomProperty("--missing")
	assert.False(t, ok)
}

func TestContext_AnimationsCompose(t *testing.T) {
	ctx := NewElementContext()

	d := ctx.AddAnimation("spin", "spin 1s linear infinite")
	assert.Equal(t, "spin 1s linear infinite", d.Value)

	d = ctx.AddAnimation("pulse", "pulse 2s cubic-bezier(0.4, 0, 0.6, 1) infinite")
	assert.Equal(t, "spin 1s linear infinite, pulse 2s cubic-bezier(0.4, 0, 0.6, 1) infinite", d.Value)

	// Re-adding is idempotent
	d = ctx.AddAnimation("spin", "spin 1s linear infinite")
	assert.Equal(t, "spin 1s linear infinite, pulse 2s cubic-bezier(0.4, 0, 0.6, 1) infinite", d.Value)

	assert.Equal(t, []string{"spin", "pulse"}, ctx.KeyframeNames())
}

package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := NewRegistry(DefaultTheme())
	require.NoError(t, err)
	return r
}

func TestNewRegistry_AuditPasses(t *testing.T) {
	newTestRegistry(t)
}

func TestRegistry_PriorityOrderIsSorted(t *testing.T) {
	r := newTestRegistry(t)

	descriptors := r.Descriptors()
	require.NotEmpty(t, descriptors)
	for i := 1; i < len(descriptors); i++ {
		assert.LessOrEqual(t, descriptors[i-1].Priority, descriptors[i].Priority,
			"%s before %s", descriptors[i-1].Name, descriptors[i].Name)
	}
}

func TestRegistry_FirstMatchWins(t *testing.T) {
	r := newTestRegistry(t)
	ctx := NewElementContext()

	// "text-lg" is a known font size, so the scale parser claims it and
	// emits font-size, never color.
	decls, err := r.Resolve("text-lg", ctx)
	require.NoError(t, err)
	require.NotEmpty(t, decls)
	assert.Equal(t, "font-size", decls[0].Property)
	assert.Equal(t, "1.125rem", decls[0].Value)

	// "text-red-500" is not a size, so it falls through to the color band.
	decls, err = r.Resolve("text-red-500", ctx)
	require.NoError(t, err)
	require.Len(t, decls, 1)
	assert.Equal(t, Declaration{Property: "color", Value: "#ef4444"}, decls[0])
}

func TestRegistry_MatchedParserErrorIsFinal(t *testing.T) {
	r := newTestRegistry(t)
	ctx := NewElementContext()

	// The margin parser matches m-[...] and its validation error is the
	// token's result; no later parser gets a chance.
	_, err := r.Resolve("m-[bad;value]", ctx)
	require.Error(t, err)
	var arb *ArbitraryValueError
	assert.ErrorAs(t, err, &arb)
}

func TestRegistry_Unrecognized(t *testing.T) {
	r := newTestRegistry(t)

	_, err := r.Resolve("txt-bold", NewElementContext())
	require.Error(t, err)
	var unrec *UnrecognizedError
	require.ErrorAs(t, err, &unrec)
	assert.Equal(t, "txt-bold", unrec.Base)
}

func TestRegistry_RegisterPlugin(t *testing.T) {
	r := newTestRegistry(t)

	err := r.Register(ParserDescriptor{
		Name:     "corner-smoothing",
		Priority: PriorityLiteral,
		Matches:  func(base string) bool { return base == "corner-smooth" },
		Generate: func(_ string, _ *ElementContext) ([]Declaration, error) {
			return []Declaration{{Property: "corner-shape", Value: "squircle"}}, nil
		},
	})
	require.NoError(t, err)

	decls, err := r.Resolve("corner-smooth", NewElementContext())
	require.NoError(t, err)
	assert.Equal(t, []Declaration{{Property: "corner-shape", Value: "squircle"}}, decls)
}

func TestRegistry_RegisterRejectsOverlap(t *testing.T) {
	r := newTestRegistry(t)
	before := len(r.Descriptors())

	err := r.Register(ParserDescriptor{
		Name:     "greedy",
		Priority: PriorityBroadest,
		Matches:  func(base string) bool { return strings.HasPrefix(base, "bg-") },
		Generate: func(_ string, _ *ElementContext) ([]Declaration, error) {
			return nil, nil
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ambiguous")

	// Registry is unchanged after the rejection
	assert.Len(t, r.Descriptors(), before)
	decls, err := r.Resolve("bg-blue-500", NewElementContext())
	require.NoError(t, err)
	assert.Equal(t, "background-color", decls[0].Property)
}

func TestRegistry_RegisterValidatesDescriptor(t *testing.T) {
	r := newTestRegistry(t)

	err := r.Register(ParserDescriptor{Name: "no-matcher"})
	require.Error(t, err)
}

func TestRegistry_CorpusTokensAllResolve(t *testing.T) {
	r := newTestRegistry(t)

	for _, token := range conflictCorpus() {
		ctx := NewElementContext()
		decls, err := r.Resolve(token, ctx)
		require.NoError(t, err, "token %q", token)
		assert.NotEmpty(t, decls, "token %q", token)
	}
}

func TestRegistry_DeclarationsAreNormalized(t *testing.T) {
	r := newTestRegistry(t)
	ctx := NewElementContext()

	// Gradient parsers re-derive the whole custom-property set; resolve
	// output must still carry one value per property.
	decls, err := r.Resolve("from-red-500", ctx)
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, d := range decls {
		assert.False(t, seen[d.Property], "duplicate property %s", d.Property)
		seen[d.Property] = true
	}
}

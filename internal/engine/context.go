package engine

import "strings"

// transparentStop is the sentinel for gradient colors that have not been
// set yet. Keeping every gradient custom property defined means the var()
// fallback chains never reference a missing property. White-transparent
// interpolates better than the transparent-black of plain "transparent".
const transparentStop = "rgb(255 255 255 / 0)"

// ElementContext accumulates cross-token state while one element's tokens
// are processed left to right. Each generation call owns exactly one
// context; it is never shared between elements and is discarded when the
// element's token list is exhausted.
type ElementContext struct {
	Gradient GradientContext

	customProps   map[string]string
	arbitraryMemo map[string]string
	animations    []animationSpec
}

// NewElementContext returns an empty context for one element.
func NewElementContext() *ElementContext {
	return &ElementContext{
		customProps:   make(map[string]string),
		arbitraryMemo: make(map[string]string),
	}
}

// ArbitraryValue validates a bracketed value body, memoizing the result so
// repeated identical values on one element skip re-validation.
func (ctx *ElementContext) ArbitraryValue(raw string) (string, error) {
	if v, ok := ctx.arbitraryMemo[raw]; ok {
		return v, nil
	}
	v, err := parseArbitraryValue(raw)
	if err != nil {
		return "", err
	}
	ctx.arbitraryMemo[raw] = v
	return v, nil
}

// SetCustomProperty records a [--name:value] assignment and returns the
// declaration to emit for it. Assignments are immediate, not deferred.
func (ctx *ElementContext) SetCustomProperty(name, value string) Declaration {
	ctx.customProps[name] = value
	return Declaration{Property: name, Value: value}
}

// CustomProperty reads back a previously assigned custom property.
func (ctx *ElementContext) CustomProperty(name string) (string, bool) {
	v, ok := ctx.customProps[name]
	return v, ok
}

// animationSpec is one composed animation entry.
type animationSpec struct {
	name  string // keyframes name, empty for arbitrary values
	value string // animation shorthand
}

// AddAnimation appends an animation to the element's composition list and
// returns the re-derived animation declaration covering every animation
// applied so far. Re-adding the same name is idempotent.
func (ctx *ElementContext) AddAnimation(name, value string) Declaration {
	exists := false
	for _, a := range ctx.animations {
		if a.name == name && a.value == value {
			exists = true
			break
		}
	}
	if !exists {
		ctx.animations = append(ctx.animations, animationSpec{name: name, value: value})
	}

	parts := make([]string, len(ctx.animations))
	for i, a := range ctx.animations {
		parts[i] = a.value
	}
	return Declaration{Property: "animation", Value: strings.Join(parts, ", ")}
}

// KeyframeNames lists the named keyframes referenced by the element's
// animations, in application order.
func (ctx *ElementContext) KeyframeNames() []string {
	var names []string
	for _, a := range ctx.animations {
		if a.name != "" {
			names = append(names, a.name)
		}
	}
	return names
}

// GradientContext is the gradient sub-machine. Gradient utilities never
// emit a complete rule by themselves: every call mutates one field and
// then re-derives the entire current custom-property set plus the
// background-image declaration. Intermediate emissions are each valid CSS;
// the cascade keeps the last, complete one.
type GradientContext struct {
	Direction string
	From      string
	Via       string
	To        string
	FromPos   string
	ViaPos    string
	ToPos     string
	active    bool
}

// Position defaults. Unset colors fall back to the transparent sentinel
// instead of being omitted.
const (
	defaultFromPos = "0%"
	defaultViaPos  = "50%"
	defaultToPos   = "100%"
)

// SetDirection records the gradient direction ("to right", ...).
func (g *GradientContext) SetDirection(dir string) {
	g.Direction = dir
	g.active = true
}

// SetFrom records the starting color stop.
func (g *GradientContext) SetFrom(color string) {
	g.From = color
	g.active = true
}

// SetVia records the intermediate color stop and switches the stops chain
// to the via-stops indirection.
func (g *GradientContext) SetVia(color string) {
	g.Via = color
	g.active = true
}

// SetTo records the final color stop.
func (g *GradientContext) SetTo(color string) {
	g.To = color
	g.active = true
}

// SetFromPos overrides the from stop position.
func (g *GradientContext) SetFromPos(pos string) { g.FromPos = pos; g.active = true }

// SetViaPos overrides the via stop position.
func (g *GradientContext) SetViaPos(pos string) { g.ViaPos = pos; g.active = true }

// SetToPos overrides the to stop position.
func (g *GradientContext) SetToPos(pos string) { g.ToPos = pos; g.active = true }

// Active reports whether any gradient utility has touched the context.
func (g *GradientContext) Active() bool { return g.active }

func (g *GradientContext) orSentinel(color string) string {
	if color == "" {
		return transparentStop
	}
	return color
}

func (g *GradientContext) pos(p, def string) string {
	if p == "" {
		return def
	}
	return p
}

// Declarations re-derives the full gradient declaration set from the
// current state. Idempotent and order independent for the final state.
func (g *GradientContext) Declarations() []Declaration {
	fromPos := g.pos(g.FromPos, defaultFromPos)
	viaPos := g.pos(g.ViaPos, defaultViaPos)
	toPos := g.pos(g.ToPos, defaultToPos)

	decls := []Declaration{
		{Property: "--wc-gradient-from", Value: g.orSentinel(g.From)},
		{Property: "--wc-gradient-via", Value: g.orSentinel(g.Via)},
		{Property: "--wc-gradient-to", Value: g.orSentinel(g.To)},
		{Property: "--wc-gradient-from-position", Value: fromPos},
		{Property: "--wc-gradient-via-position", Value: viaPos},
		{Property: "--wc-gradient-to-position", Value: toPos},
	}

	direct := "var(--wc-gradient-from) var(--wc-gradient-from-position), " +
		"var(--wc-gradient-to) var(--wc-gradient-to-position)"

	if g.Via != "" {
		viaStops := "var(--wc-gradient-from) var(--wc-gradient-from-position), " +
			"var(--wc-gradient-via) var(--wc-gradient-via-position), " +
			"var(--wc-gradient-to) var(--wc-gradient-to-position)"
		decls = append(decls,
			Declaration{Property: "--wc-gradient-via-stops", Value: viaStops},
			Declaration{Property: "--wc-gradient-stops", Value: "var(--wc-gradient-via-stops)"},
		)
	} else {
		decls = append(decls,
			Declaration{Property: "--wc-gradient-stops", Value: direct},
		)
	}

	direction := g.Direction
	if direction == "" {
		direction = "to right"
	}
	decls = append(decls, Declaration{
		Property: "background-image",
		Value:    "linear-gradient(" + direction + ", var(--wc-gradient-stops))",
	})
	return decls
}

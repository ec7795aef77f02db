package engine

import (
	"fmt"
	"sort"
	"strings"
)

// Priority bands. Descriptors with narrower grammars must outrank broader
// ones, otherwise a broad prefix parser silently swallows tokens meant for
// a narrow one. The bands make the intent explicit; the audit enforces it.
const (
	PriorityLiteral  = 0   // exact literal tables ("flex", "hidden")
	PriorityBracket  = 100 // bracketed grammars ([--x:y], animate-[...])
	PriorityStateful = 200 // cross-token composites (gradients, transforms)
	PriorityScale    = 300 // prefix + enumerated theme scale (text-lg)
	PriorityBroad    = 400 // broad prefix matches (text-<color>)
	PriorityBroadest = 500 // catch-most fallbacks
)

// GenerateFunc turns a matched base utility into declarations, consulting
// and mutating the element context for stateful utilities.
type GenerateFunc func(base string, ctx *ElementContext) ([]Declaration, error)

// ParserDescriptor is one entry in the delegation chain.
type ParserDescriptor struct {
	Name     string
	Priority int
	Matches  func(base string) bool
	Generate GenerateFunc
}

// Registry is the priority-ordered delegation chain of utility parsers.
// It is immutable after construction apart from Register, which re-runs
// the overlap audit before accepting the new descriptor.
type Registry struct {
	descriptors []ParserDescriptor
	corpus      []string
}

// NewRegistry builds the chain of built-in parsers over the theme, sorts
// it by priority (stable on registration order for ties), and audits it
// against the conflict corpus. An overlap is a construction error, never a
// runtime surprise.
func NewRegistry(theme *Theme) (*Registry, error) {
	r := &Registry{corpus: conflictCorpus()}

	r.descriptors = append(r.descriptors, arbitraryPropertyParsers()...)
	r.descriptors = append(r.descriptors, layoutParsers(theme)...)
	r.descriptors = append(r.descriptors, flexGridParsers(theme)...)
	r.descriptors = append(r.descriptors, spacingParsers(theme)...)
	r.descriptors = append(r.descriptors, sizingParsers(theme)...)
	r.descriptors = append(r.descriptors, typographyParsers(theme)...)
	r.descriptors = append(r.descriptors, backgroundParsers(theme)...)
	r.descriptors = append(r.descriptors, gradientParsers(theme)...)
	r.descriptors = append(r.descriptors, borderParsers(theme)...)
	r.descriptors = append(r.descriptors, effectsParsers(theme)...)
	r.descriptors = append(r.descriptors, transformParsers(theme)...)
	r.descriptors = append(r.descriptors, transitionParsers(theme)...)
	r.descriptors = append(r.descriptors, animationParsers(theme)...)
	r.descriptors = append(r.descriptors, interactivityParsers()...)

	sort.SliceStable(r.descriptors, func(i, j int) bool {
		return r.descriptors[i].Priority < r.descriptors[j].Priority
	})

	if err := r.audit(); err != nil {
		return nil, err
	}
	return r, nil
}

// Register adds an external descriptor with an explicit priority. The
// chain is re-sorted and re-audited; an overlapping plugin is rejected.
func (r *Registry) Register(d ParserDescriptor) error {
	if d.Name == "" || d.Matches == nil || d.Generate == nil {
		return fmt.Errorf("register %q: descriptor must carry a name, matcher and generator", d.Name)
	}
	prev := r.descriptors
	r.descriptors = append(append([]ParserDescriptor(nil), prev...), d)
	sort.SliceStable(r.descriptors, func(i, j int) bool {
		return r.descriptors[i].Priority < r.descriptors[j].Priority
	})
	if err := r.audit(); err != nil {
		r.descriptors = prev
		return fmt.Errorf("register %q: %w", d.Name, err)
	}
	return nil
}

// Descriptors exposes the effective priority order for inspection and
// testing.
func (r *Registry) Descriptors() []ParserDescriptor {
	out := make([]ParserDescriptor, len(r.descriptors))
	copy(out, r.descriptors)
	return out
}

// Resolve walks the chain in priority order and delegates to the first
// descriptor whose predicate matches. Remaining descriptors are never
// consulted, even when the matched parser fails: its error is the token's
// result.
func (r *Registry) Resolve(base string, ctx *ElementContext) ([]Declaration, error) {
	for i := range r.descriptors {
		d := &r.descriptors[i]
		if d.Matches(base) {
			decls, err := d.Generate(base, ctx)
			if err != nil {
				return nil, err
			}
			return normalizeDeclarations(decls), nil
		}
	}
	return nil, &UnrecognizedError{Base: base}
}

// audit runs every matcher over the conflict corpus and fails when two
// descriptors both claim one fixture. This keeps delegation deterministic
// by construction instead of by undocumented registration order.
func (r *Registry) audit() error {
	var problems []string
	for _, token := range r.corpus {
		var matched []string
		for i := range r.descriptors {
			if r.descriptors[i].Matches(token) {
				matched = append(matched, r.descriptors[i].Name)
			}
		}
		if len(matched) > 1 {
			problems = append(problems, fmt.Sprintf("%q matched by %s", token, strings.Join(matched, ", ")))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("parser registry is ambiguous:\n  %s", strings.Join(problems, "\n  "))
	}
	return nil
}

// conflictCorpus is the fixture set the audit checks. One token per
// utility family plus the historically overlap-prone spots (border-*,
// text-*, bg-* vs gradient).
func conflictCorpus() []string {
	return []string{
		"block", "hidden", "flex", "inline-grid", "static", "absolute",
		"top-4", "top-[13px]", "-top-2", "inset-0", "z-50", "z-[999]",
		"overflow-hidden", "overflow-x-auto", "object-cover", "float-left",
		"flex-row", "flex-col", "flex-wrap", "flex-1", "flex-none",
		"grow", "grow-0", "shrink", "order-2", "order-first",
		"justify-center", "items-start", "self-end", "content-between",
		"place-items-center", "gap-4", "gap-x-2", "gap-[11px]",
		"grid-cols-3", "grid-cols-[200px_1fr]", "grid-rows-2",
		"col-span-2", "col-span-full", "row-span-3",
		"m-4", "-m-2", "mx-auto", "mt-1.5", "p-0", "px-6", "pb-[7px]",
		"space-x-4", "space-y-2",
		"w-4", "w-full", "w-1/2", "w-[32rem]", "h-screen", "min-w-0",
		"max-w-lg", "max-h-64",
		"font-sans", "font-bold", "italic", "not-italic",
		"text-lg", "text-red-500", "text-[17px]", "text-center",
		"underline", "line-through", "uppercase", "truncate",
		"leading-tight", "leading-6", "tracking-wide", "whitespace-nowrap",
		"bg-blue-500", "bg-[#1e293b]", "bg-cover", "bg-center",
		"bg-no-repeat", "bg-fixed",
		"bg-gradient-to-r", "bg-gradient-to-tl",
		"from-red-500", "from-20%", "via-blue-500", "via-30%",
		"to-green-500", "to-90%",
		"border", "border-2", "border-t-4", "border-red-500",
		"border-dashed", "rounded", "rounded-lg", "rounded-t-xl",
		"rounded-[4px]", "divide-x-2", "divide-gray-200",
		"outline-none", "ring-2", "ring-blue-500",
		"shadow", "shadow-md", "shadow-[0_2px_4px_rgba(0,0,0,0.2)]",
		"opacity-50", "blur-sm", "brightness-110", "grayscale",
		"mix-blend-multiply",
		"translate-x-4", "-translate-y-1/2", "rotate-45", "-rotate-6",
		"scale-95", "scale-x-105", "skew-y-3", "origin-center",
		"transition", "transition-colors", "duration-300", "ease-in-out",
		"delay-150",
		"animate-spin", "animate-none", "animate-[wiggle_1s_ease-in-out_infinite]",
		"cursor-pointer", "select-none", "pointer-events-none",
		"resize-y", "scroll-smooth", "appearance-none",
		"[--brand-color:#bada55]",
	}
}

package engine

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"sync"
)

// Options tune engine construction.
type Options struct {
	// DarkMode picks the dark variant strategy, DarkClass or DarkMedia.
	// Empty means DarkClass.
	DarkMode string
	// Workers caps the goroutines CompileElements fans out to.
	// Zero or negative means GOMAXPROCS.
	Workers int
}

// Engine turns utility class tokens into CSS rules. Construction runs
// the parser overlap audit, so a successfully built engine resolves
// every token through exactly one parser.
type Engine struct {
	theme      *Theme
	registry   *Registry
	splitter   *Splitter
	compositor *Compositor
	store      *RuleStore
	workers    int

	mu        sync.Mutex
	keyframes map[string]string
	seen      map[string]bool
}

// New builds an engine over theme with the default parser chain.
func New(theme *Theme, opts Options) (*Engine, error) {
	if theme == nil {
		theme = DefaultTheme()
	}
	registry, err := NewRegistry(theme)
	if err != nil {
		return nil, fmt.Errorf("building parser registry: %w", err)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Engine{
		theme:      theme,
		registry:   registry,
		splitter:   NewSplitter(theme),
		compositor: NewCompositor(theme, opts.DarkMode),
		store:      NewRuleStore(),
		workers:    workers,
		keyframes:  make(map[string]string),
		seen:       make(map[string]bool),
	}, nil
}

// Theme exposes the theme the engine resolves scales against.
func (e *Engine) Theme() *Theme { return e.theme }

// RegisterParser adds a plugin parser to the chain. The overlap audit
// re-runs; a conflicting parser is rejected and the chain is unchanged.
func (e *Engine) RegisterParser(d ParserDescriptor) error {
	return e.registry.Register(d)
}

// Parsers lists the active chain in priority order.
func (e *Engine) Parsers() []ParserDescriptor {
	return e.registry.Descriptors()
}

// elementResult is one element's compilation outcome, held privately
// until the fold so parallel compiles stay order-independent.
type elementResult struct {
	rules       []Rule
	diagnostics []Diagnostic
	keyframes   []string
}

// CompileElement compiles one element's class list into the store and
// returns the diagnostics it produced.
func (e *Engine) CompileElement(classes []string) []Diagnostic {
	res := e.compile(classes)
	e.fold(res)
	return res.diagnostics
}

// CompileElements compiles many elements concurrently. Each element gets
// a private context; results fold into the store in element order, so
// output is identical to compiling the slice sequentially.
func (e *Engine) CompileElements(elements [][]string) []Diagnostic {
	if len(elements) == 0 {
		return nil
	}
	results := make([]elementResult, len(elements))
	jobs := make(chan int)
	var wg sync.WaitGroup
	workers := e.workers
	if workers > len(elements) {
		workers = len(elements)
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = e.compile(elements[i])
			}
		}()
	}
	for i := range elements {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	var diags []Diagnostic
	for _, res := range results {
		e.fold(res)
		diags = append(diags, res.diagnostics...)
	}
	return diags
}

// compile resolves one element's class list against a fresh context.
func (e *Engine) compile(classes []string) elementResult {
	ctx := NewElementContext()
	var res elementResult
	for _, token := range classes {
		if token == "" {
			continue
		}
		base, tags, diag := e.splitter.Split(token)
		if diag != nil {
			res.diagnostics = append(res.diagnostics, *diag)
		}
		decls, err := e.registry.Resolve(base, ctx)
		if err != nil {
			// A malformed variant already explains this token; a second
			// unrecognized-utility report for the degraded base is noise.
			if diag == nil || !isUnrecognized(err) {
				res.diagnostics = append(res.diagnostics, diagnose(token, err))
			}
			continue
		}
		decls, childSuffix := popChildSelector(decls)
		if len(decls) == 0 {
			continue
		}
		rule, err := e.compositor.Compose(token, tags, decls, token)
		if err != nil {
			res.diagnostics = append(res.diagnostics, diagnose(token, err))
			continue
		}
		if childSuffix != "" {
			rule.Selector = appendChildSuffix(rule.Selector, childSuffix)
		}
		res.rules = append(res.rules, rule)
	}
	res.keyframes = ctx.KeyframeNames()
	return res
}

// fold commits one element's result to shared state.
func (e *Engine) fold(res elementResult) {
	e.store.InsertAll(res.rules)
	e.mu.Lock()
	for _, name := range res.keyframes {
		if body, ok := e.theme.Keyframes[name]; ok {
			e.keyframes[name] = body
		}
	}
	for _, r := range res.rules {
		e.seen[r.OriginClass] = true
	}
	e.mu.Unlock()
}

// Rules returns the compiled rules in cascade order.
func (e *Engine) Rules() []Rule { return e.store.Rules() }

// Shake drops rules for classes outside used. A nil set means every
// class the engine has compiled counts as used.
func (e *Engine) Shake(used map[string]bool) {
	if used == nil {
		return
	}
	e.store.Replace(Shake(e.store.Rules(), used))
}

// Optimize merges adjacent rules that share a body. Safe to run more
// than once.
func (e *Engine) Optimize() {
	e.store.Replace(MergeAdjacent(e.store.Rules()))
}

// CSS serializes the current rule set.
func (e *Engine) CSS() string {
	e.mu.Lock()
	keyframes := make(map[string]string, len(e.keyframes))
	for name, body := range e.keyframes {
		keyframes[name] = body
	}
	e.mu.Unlock()
	return Serialize(e.store.Rules(), keyframes)
}

// WriteCSS serializes the current rule set to w.
func (e *Engine) WriteCSS(w io.Writer) error {
	_, err := io.WriteString(w, e.CSS())
	return err
}

// popChildSelector extracts the child-combinator marker some parsers
// attach, returning the remaining declarations and the suffix to graft
// onto the rule selector.
func popChildSelector(decls []Declaration) ([]Declaration, string) {
	for i, d := range decls {
		if d.Property == childSelectorProperty {
			return append(decls[:i:i], decls[i+1:]...), d.Value
		}
	}
	return decls, ""
}

// appendChildSuffix grafts the child combinator onto every selector in
// a comma-separated list.
func appendChildSuffix(selector, suffix string) string {
	return selector + suffix
}

func isUnrecognized(err error) bool {
	var unrec *UnrecognizedError
	return errors.As(err, &unrec)
}

// diagnose maps a resolution or composition error onto the diagnostic
// channel.
func diagnose(token string, err error) Diagnostic {
	var (
		unrec    *UnrecognizedError
		arb      *ArbitraryValueError
		gen      *GenerationError
		conflict *ConflictingVariantError
	)
	switch {
	case errors.As(err, &arb):
		return Diagnostic{Token: token, Kind: DiagArbitraryValue, Message: err.Error()}
	case errors.As(err, &gen):
		return Diagnostic{Token: token, Kind: DiagParserGeneration, Message: err.Error()}
	case errors.As(err, &conflict):
		return Diagnostic{Token: token, Kind: DiagConflictingVariant, Message: err.Error()}
	case errors.As(err, &unrec):
		return Diagnostic{Token: token, Kind: DiagUnrecognized, Message: err.Error()}
	default:
		return Diagnostic{Token: token, Kind: DiagParserGeneration, Message: err.Error()}
	}
}

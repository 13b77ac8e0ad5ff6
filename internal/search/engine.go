// Package search filters and ranks parts by name and description.
package search

import (
	"cmp"
	"slices"
	"strings"
	"unicode/utf8"

	"anatomy-viewer/internal/anatomy"
	"anatomy-viewer/internal/events"
)

// DefaultMinLength is the shortest query that runs a search.
const DefaultMinLength = 2

// Rank orders results; lower is more relevant.
const (
	RankExact     = 0 // name equals the query
	RankPrefix    = 1 // name starts with the query
	RankSubstring = 2 // anything else that matched
)

// LayerRevealer makes a layer visible. Satisfied by *layers.Engine.
type LayerRevealer interface {
	SetVisibility(layer anatomy.Layer, visible bool)
}

// Selector selects a single part. Satisfied by *selection.Engine.
type Selector interface {
	SelectPart(part *anatomy.Part)
}

// Engine holds the current query and its ranked results.
type Engine struct {
	// ResultsChanged fires after every Search and ClearSearch with the new result list (possibly empty).
	ResultsChanged events.Feed[[]*anatomy.Part]

	registry  anatomy.Registry
	parts     []*anatomy.Part
	layers    LayerRevealer
	selector  Selector
	minLength int
	query     string
	results   []*anatomy.Part
}

// Option configures an Engine.
type Option func(*Engine)

// WithMinLength sets the minimum query length in characters. Values below 1 are raised to 1.
func WithMinLength(n int) Option {
	return func(e *Engine) { e.SetMinLength(n) }
}

// WithLayers sets the engine used to reveal a result's layer before selecting it.
func WithLayers(l LayerRevealer) Option {
	return func(e *Engine) { e.layers = l }
}

// WithSelector sets the engine SelectResult delegates to.
func WithSelector(s Selector) Option {
	return func(e *Engine) { e.selector = s }
}

// New returns an engine over reg and takes the initial part snapshot.
func New(reg anatomy.Registry, opts ...Option) *Engine {
	e := &Engine{registry: reg, minLength: DefaultMinLength}
	for _, opt := range opts {
		opt(e)
	}
	e.RefreshPartSnapshot()
	return e
}

// RefreshPartSnapshot re-enumerates the registry.
func (e *Engine) RefreshPartSnapshot() {
	if e.registry == nil {
		e.parts = nil
		return
	}
	e.parts = e.registry.Enumerate()
}

// SetMinLength changes the query threshold. Values below 1 are raised to 1.
func (e *Engine) SetMinLength(n int) {
	e.minLength = max(n, 1)
}

func (e *Engine) MinLength() int { return e.minLength }

// Query returns the last query passed to Search.
func (e *Engine) Query() string { return e.query }

// Results returns a copy of the current ranked results.
func (e *Engine) Results() []*anatomy.Part {
	return slices.Clone(e.results)
}

// Search replaces the results with the parts matching query, best first.
// Queries shorter than the minimum length produce an empty list.
func (e *Engine) Search(query string) {
	e.query = query
	if len(e.parts) == 0 {
		e.RefreshPartSnapshot()
	}
	if query == "" || utf8.RuneCountInString(query) < e.minLength {
		e.setResults(nil)
		return
	}
	e.setResults(Rank(e.parts, query))
}

// ClearSearch empties the query and the results.
func (e *Engine) ClearSearch() {
	e.query = ""
	e.setResults(nil)
}

func (e *Engine) setResults(results []*anatomy.Part) {
	if results == nil {
		results = []*anatomy.Part{}
	}
	e.results = results
	e.ResultsChanged.Emit(slices.Clone(results))
}

// SelectResult reveals the layer of result i and then selects it. Out-of-range indexes are ignored.
func (e *Engine) SelectResult(i int) {
	if i < 0 || i >= len(e.results) {
		return
	}
	p := e.results[i]
	if e.layers != nil {
		e.layers.SetVisibility(p.Layer(), true)
	}
	if e.selector != nil {
		e.selector.SelectPart(p)
	}
}

// HighlightResults highlights every current result. This bypasses single selection.
func (e *Engine) HighlightResults() {
	for _, p := range e.results {
		p.Highlight()
	}
}

// UnhighlightResults removes the highlight from every current result.
func (e *Engine) UnhighlightResults() {
	for _, p := range e.results {
		p.Unhighlight()
	}
}

// Rank returns the parts whose name or description contains query (ignoring case),
// ordered exact name match, then name prefix, then the rest. Ties keep input order.
func Rank(parts []*anatomy.Part, query string) []*anatomy.Part {
	q := anatomy.Fold(query)
	type ranked struct {
		part *anatomy.Part
		rank int
	}
	var matches []ranked
	for _, p := range parts {
		name := anatomy.Fold(p.Name)
		switch {
		case name == q:
			matches = append(matches, ranked{p, RankExact})
		case strings.HasPrefix(name, q):
			matches = append(matches, ranked{p, RankPrefix})
		case strings.Contains(name, q), strings.Contains(anatomy.Fold(p.Description), q):
			matches = append(matches, ranked{p, RankSubstring})
		}
	}
	slices.SortStableFunc(matches, func(a, b ranked) int {
		return cmp.Compare(a.rank, b.rank)
	})
	out := make([]*anatomy.Part, len(matches))
	for i, m := range matches {
		out[i] = m.part
	}
	return out
}

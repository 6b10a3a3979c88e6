// Package search resolves free-text queries against the menu index.
package search

import (
	"strings"

	"github.com/trustme000777/niftymenu/pkg/index"
	"github.com/trustme000777/niftymenu/pkg/menu"
)

// AltSeparator is accepted in queries in place of "/".
const AltSeparator = ">"

// Option customises a Resolver.
type Option func(*Resolver)

// WithScorer overrides the default FuzzyScorer.
func WithScorer(s Scorer) Option {
	return func(r *Resolver) {
		if s != nil {
			r.scorer = s
		}
	}
}

// WithTypoTolerance falls back to a TypoScorer when fuzzy matching finds
// nothing.
func WithTypoTolerance(enabled bool) Option {
	return func(r *Resolver) {
		if enabled {
			r.scorer = Chain{r.scorer, TypoScorer{}}
		}
	}
}

// Resolver maps queries to the best matching menu item. It never mutates
// overlay state.
type Resolver struct {
	index  *index.Indexer
	scorer Scorer
}

// NewResolver returns a resolver reading from ix.
func NewResolver(ix *index.Indexer, opts ...Option) *Resolver {
	r := &Resolver{index: ix, scorer: FuzzyScorer{}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Normalize rewrites the alternate hierarchy separator to "/".
func Normalize(query string) string {
	return strings.ReplaceAll(query, AltSeparator, index.Separator)
}

// Blank reports whether query contains only whitespace.
func Blank(query string) bool {
	return strings.TrimSpace(query) == ""
}

// Resolve returns the best match for query, or nil when the query is blank or
// nothing matches.
func (r *Resolver) Resolve(query string) (menu.Node, error) {
	e, ok, err := r.Match(query)
	if err != nil || !ok {
		return nil, err
	}
	return e.Item, nil
}

// Match is Resolve but also returns the matched path.
func (r *Resolver) Match(query string) (index.Entry, bool, error) {
	ranked, err := r.Rank(query)
	if err != nil || len(ranked) == 0 {
		return index.Entry{}, false, err
	}
	return ranked[0], true, nil
}

// Rank returns every matching entry, best first.
func (r *Resolver) Rank(query string) ([]index.Entry, error) {
	if Blank(query) {
		return nil, nil
	}
	entries, err := r.index.Entries()
	if err != nil {
		return nil, err
	}
	paths := make([]string, len(entries))
	for i, e := range entries {
		paths[i] = e.Path
	}
	var out []index.Entry
	for _, c := range r.scorer.Score(Normalize(query), paths) {
		if c.Index >= 0 && c.Index < len(entries) {
			out = append(out, entries[c.Index])
		}
	}
	return out, nil
}

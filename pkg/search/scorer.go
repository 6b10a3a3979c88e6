package search

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/sahilm/fuzzy"
)

// Candidate is one ranked answer from a Scorer. Index points into the
// candidate list passed to Score; a higher Rank is a better match.
type Candidate struct {
	Index int
	Rank  int
}

// Scorer ranks candidates against a query. Results are ordered best first and
// ties keep candidate order. An empty result means nothing matched well enough.
type Scorer interface {
	Score(query string, candidates []string) []Candidate
}

// ScorerFunc adapts a function to Scorer.
type ScorerFunc func(query string, candidates []string) []Candidate

// Score implements Scorer.
func (f ScorerFunc) Score(query string, candidates []string) []Candidate {
	return f(query, candidates)
}

// pathSource exposes lowercased candidates to the fuzzy matcher without
// copying the caller's slice.
type pathSource []string

func (s pathSource) String(i int) string { return strings.ToLower(s[i]) }
func (s pathSource) Len() int            { return len(s) }

// FuzzyScorer ranks with sahilm/fuzzy, ignoring case.
type FuzzyScorer struct{}

// Score implements Scorer.
func (FuzzyScorer) Score(query string, candidates []string) []Candidate {
	if query == "" || len(candidates) == 0 {
		return nil
	}
	matches := fuzzy.FindFrom(strings.ToLower(query), pathSource(candidates))
	if len(matches) == 0 {
		return nil
	}
	out := make([]Candidate, len(matches))
	for i, m := range matches {
		out[i] = Candidate{Index: m.Index, Rank: m.Score}
	}
	stableRank(out)
	return out
}

// TypoScorer accepts candidates whose trailing path segments are within an
// edit-distance ratio of the query's segments, so "sectoin" still finds
// "Section".
type TypoScorer struct {
	// MaxRatio is the largest distance/length ratio accepted. Zero means 0.4.
	MaxRatio float64
}

// Score implements Scorer.
func (s TypoScorer) Score(query string, candidates []string) []Candidate {
	limit := s.MaxRatio
	if limit <= 0 {
		limit = 0.4
	}
	want := segments(query)
	if len(want) == 0 {
		return nil
	}
	var out []Candidate
	for i, c := range candidates {
		have := segments(c)
		if len(have) < len(want) {
			continue
		}
		have = have[len(have)-len(want):]
		dist, total := 0, 0
		for j := range want {
			dist += levenshtein.ComputeDistance(want[j], have[j])
			total += max(len(want[j]), len(have[j]))
		}
		if total == 0 || float64(dist)/float64(total) >= limit {
			continue
		}
		out = append(out, Candidate{Index: i, Rank: -dist})
	}
	stableRank(out)
	return out
}

// Chain asks each scorer in turn and returns the first non-empty ranking.
type Chain []Scorer

// Score implements Scorer.
func (c Chain) Score(query string, candidates []string) []Candidate {
	for _, s := range c {
		if s == nil {
			continue
		}
		if out := s.Score(query, candidates); len(out) > 0 {
			return out
		}
	}
	return nil
}

func stableRank(c []Candidate) {
	sort.SliceStable(c, func(i, j int) bool {
		if c[i].Rank != c[j].Rank {
			return c[i].Rank > c[j].Rank
		}
		return c[i].Index < c[j].Index
	})
}

func segments(s string) []string {
	var out []string
	for _, p := range strings.Split(strings.ToLower(s), "/") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Package search ranks in-memory records against a free-text query using
// approximate (typo-tolerant) matching over caller-selected fields.
package search

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Options control how strict the matcher is. The zero value is not useful;
// call sites start from DefaultOptions.
type Options struct {
	// Threshold is the maximum normalized edit distance accepted, in
	// [0, 1]. Lower is stricter; 0 accepts exact (sub)matches only.
	Threshold float64
	// MaxDistance caps the absolute edit distance of an accepted match.
	MaxDistance int
	// MinMatchLength is the shortest query that triggers matching at all.
	// Shorter queries return every record.
	MinMatchLength int
}

func DefaultOptions() Options {
	return Options{
		Threshold:      0.4,
		MaxDistance:    100,
		MinMatchLength: 1,
	}
}

// Result pairs a matched record with its score. Score is the normalized
// edit distance of the best-matching field: 0 is an exact match, larger is
// worse.
type Result[T any] struct {
	Item  T
	Score float64
}

// Search returns the records whose best field scores at or below the
// threshold, best match first. Matching is case-insensitive and location
// insensitive: the query may match anywhere inside a field.
//
// An empty (or all-whitespace) query returns every record in input order.
// The original behavior this replaces left empty queries to the matcher's
// whim; returning everything is the deliberate choice here so that all
// search endpoints degrade the same way.
func Search[T any](records []T, query string, keys func(T) []string, opts Options) []T {
	scored := SearchScored(records, query, keys, opts)
	out := make([]T, 0, len(scored))
	for _, r := range scored {
		out = append(out, r.Item)
	}
	return out
}

// SearchScored is Search with per-result scores retained.
func SearchScored[T any](records []T, query string, keys func(T) []string, opts Options) []Result[T] {
	q := strings.ToLower(strings.TrimSpace(query))
	if len([]rune(q)) < opts.MinMatchLength || q == "" {
		all := make([]Result[T], 0, len(records))
		for _, rec := range records {
			all = append(all, Result[T]{Item: rec})
		}
		return all
	}

	results := make([]Result[T], 0)
	for _, rec := range records {
		best, ok := bestFieldScore(q, keys(rec), opts)
		if !ok {
			continue
		}
		results = append(results, Result[T]{Item: rec, Score: best})
	}

	// stable sort keeps input order for equal scores
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score < results[j].Score
	})
	return results
}

func bestFieldScore(query string, fields []string, opts Options) (float64, bool) {
	best := 0.0
	found := false
	for _, field := range fields {
		score, ok := fieldScore(query, field, opts)
		if !ok {
			continue
		}
		if !found || score < best {
			best = score
			found = true
		}
	}
	return best, found
}

// fieldScore computes the normalized edit distance between the query and the
// closest same-length window of the field. Scanning windows instead of the
// whole field is what makes matching location insensitive.
func fieldScore(query, field string, opts Options) (float64, bool) {
	f := strings.ToLower(strings.TrimSpace(field))
	if f == "" {
		return 0, false
	}

	qr := []rune(query)
	fr := []rune(f)

	if len(fr) <= len(qr) {
		return acceptDistance(levenshtein.ComputeDistance(query, f), len(qr), opts)
	}

	bestDist := -1
	for i := 0; i+len(qr) <= len(fr); i++ {
		d := levenshtein.ComputeDistance(query, string(fr[i:i+len(qr)]))
		if bestDist < 0 || d < bestDist {
			bestDist = d
		}
		if bestDist == 0 {
			break
		}
	}
	return acceptDistance(bestDist, len(qr), opts)
}

func acceptDistance(dist, queryLen int, opts Options) (float64, bool) {
	if dist > opts.MaxDistance {
		return 0, false
	}
	score := float64(dist) / float64(queryLen)
	if score > opts.Threshold {
		return 0, false
	}
	return score, true
}

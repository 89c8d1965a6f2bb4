package grove

import (
	"log/slog"
	"slices"
	"time"

	"github.com/phanxgames/grove/desc"
)

// Stats describes one materialization.
type Stats struct {
	// Created counts live objects per source kind. Owned property sets and
	// implicit controllers are counted when first fetched.
	Created map[desc.Kind]int
	// CacheHits counts lookups answered by the identity cache, the geometry
	// cache, or the resource memo.
	CacheHits int
	// ResolverCalls counts calls into the ResourceResolver.
	ResolverCalls int
	// Unresolved counts distinct references the resolver could not provide.
	Unresolved int
	Elapsed    time.Duration
}

// Total returns the number of live objects created.
func (s *Stats) Total() int {
	n := 0
	for _, c := range s.Created {
		n += c
	}
	return n
}

// debugLog logs s at Debug level, one attribute per created kind.
func (s *Stats) debugLog(l *slog.Logger) {
	kinds := make([]desc.Kind, 0, len(s.Created))
	for k := range s.Created {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	created := make([]any, 0, len(kinds))
	for _, k := range kinds {
		created = append(created, slog.Int(k.String(), s.Created[k]))
	}
	l.Debug("materialized",
		"objects", s.Total(),
		"cache_hits", s.CacheHits,
		"resolver_calls", s.ResolverCalls,
		"unresolved", s.Unresolved,
		"elapsed", s.Elapsed,
		slog.Group("created", created...))
}

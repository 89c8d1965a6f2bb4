package grove

import (
	"github.com/phanxgames/grove/desc"
	"github.com/phanxgames/grove/live"
)

// ResourceResolver loads external resources named by surface brushes.
//
// Resolve returns a nil Surface when the resource does not exist. A typed
// nil pointer counts as nil. It may block. An error is logged and treated
// the same as a missing resource: the brush is left empty and
// materialization continues. Retrying is up to the implementation.
type ResourceResolver interface {
	Resolve(ref desc.ResourceRef) (live.Surface, error)
}

// ResolverFunc adapts a function to ResourceResolver.
type ResolverFunc func(ref desc.ResourceRef) (live.Surface, error)

// Resolve calls f(ref).
func (f ResolverFunc) Resolve(ref desc.ResourceRef) (live.Surface, error) { return f(ref) }

// resolve returns the surface for ref, calling the resolver at most once
// per distinct ref in one materialization.
func (m *materializer) resolve(n desc.Node, ref desc.ResourceRef) live.Surface {
	if s, ok := m.cache.surfaces[ref]; ok {
		m.stats.CacheHits++
		return s
	}
	var s live.Surface
	if m.resolver != nil {
		m.stats.ResolverCalls++
		var err error
		s, err = m.resolver.Resolve(ref)
		if err != nil {
			m.log.Warn("resolve resource", "ref", string(ref), "err", err)
			s = nil
		}
	}
	if live.NilSurface(s) {
		s = nil
		m.stats.Unresolved++
		m.log.Warn("unresolved resource, brush left empty",
			"ref", string(ref), "node", n.Kind().String(), "comment", n.Base().Comment)
	}
	m.cache.surfaces[ref] = s
	return s
}

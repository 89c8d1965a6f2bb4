package grove

import (
	"github.com/phanxgames/grove/desc"
	"github.com/phanxgames/grove/live"
)

// cache maps source nodes to their live objects by identity. Two distinct
// nodes with equal fields get distinct live objects.
type cache struct {
	objects map[desc.Node]live.Object
	// active holds nodes whose population has started but not finished.
	active map[desc.Node]bool

	canvas    map[desc.CanvasGeometry]*live.CanvasGeometry
	compiling map[desc.CanvasGeometry]bool
	paths     map[*desc.Path]*live.Path
	effects   map[desc.Effect]live.Effect

	surfaces map[desc.ResourceRef]live.Surface
}

func newCache() *cache {
	return &cache{
		objects:   make(map[desc.Node]live.Object),
		active:    make(map[desc.Node]bool),
		canvas:    make(map[desc.CanvasGeometry]*live.CanvasGeometry),
		compiling: make(map[desc.CanvasGeometry]bool),
		paths:     make(map[*desc.Path]*live.Path),
		effects:   make(map[desc.Effect]live.Effect),
		surfaces:  make(map[desc.ResourceRef]live.Surface),
	}
}

// getOrCreate returns the live object for n. On a miss it calls create,
// caches the result, and only then calls populate, so references back to
// n made while populating find the object instead of recursing.
func getOrCreate[T live.Object](m *materializer, n desc.Node, create func() T, populate func(T)) T {
	if obj, ok := m.cache.objects[n]; ok {
		m.stats.CacheHits++
		return cast[T](n, obj)
	}
	obj := create()
	m.cache.objects[n] = obj
	m.stats.Created[n.Kind()]++

	m.cache.active[n] = true
	populate(obj)
	delete(m.cache.active, n)
	return obj
}

// cached returns the live object already created for n, if any.
func cached[T live.Object](m *materializer, n desc.Node) (T, bool) {
	obj, ok := m.cache.objects[n]
	if !ok {
		var zero T
		return zero, false
	}
	m.stats.CacheHits++
	return cast[T](n, obj), true
}

func cast[T live.Object](n desc.Node, obj live.Object) T {
	t, ok := obj.(T)
	if !ok {
		fail(n, ErrInvariant, "cached %s is a %s", n.Kind(), obj.TypeName())
	}
	return t
}

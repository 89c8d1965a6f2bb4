package live

import (
	"slices"

	"github.com/phanxgames/grove/vmath"
)

// PropertySet is a typed key/value bag. Every entry is animatable.
type PropertySet struct {
	object
	owner Object
	keys  []string
}

func (c *Compositor) newPropertySet(owner Object) *PropertySet {
	ps := &PropertySet{owner: owner}
	ps.init(c, ps, "PropertySet")
	return ps
}

// Owner returns the object whose Properties() ps is, or nil for a
// standalone set.
func (ps *PropertySet) Owner() Object { return ps.owner }

// Properties returns ps itself.
func (ps *PropertySet) Properties() *PropertySet { return ps }

// Keys returns the inserted keys in insertion order.
func (ps *PropertySet) Keys() []string { return slices.Clone(ps.keys) }

func (ps *PropertySet) insert(name string, v any) {
	if _, ok := ps.values[name]; !ok {
		ps.keys = append(ps.keys, name)
	}
	ps.setStatic(name, v)
}

// InsertBoolean sets a boolean entry.
func (ps *PropertySet) InsertBoolean(name string, v bool) { ps.insert(name, v) }

// InsertColor sets a color entry.
func (ps *PropertySet) InsertColor(name string, v vmath.Color) { ps.insert(name, v) }

// InsertScalar sets a scalar entry.
func (ps *PropertySet) InsertScalar(name string, v float64) { ps.insert(name, v) }

// InsertVector2 sets a 2D vector entry.
func (ps *PropertySet) InsertVector2(name string, v vmath.Vec2) { ps.insert(name, v) }

// InsertVector3 sets a 3D vector entry.
func (ps *PropertySet) InsertVector3(name string, v vmath.Vec3) { ps.insert(name, v) }

// InsertVector4 sets a 4D vector entry.
func (ps *PropertySet) InsertVector4(name string, v vmath.Vec4) { ps.insert(name, v) }

func tryGet[T any](ps *PropertySet, name string) (T, bool) {
	v, ok := ps.values[name].(T)
	return v, ok
}

// TryGetBoolean returns a boolean entry.
func (ps *PropertySet) TryGetBoolean(name string) (bool, bool) { return tryGet[bool](ps, name) }

// TryGetColor returns a color entry.
func (ps *PropertySet) TryGetColor(name string) (vmath.Color, bool) {
	return tryGet[vmath.Color](ps, name)
}

// TryGetScalar returns a scalar entry.
func (ps *PropertySet) TryGetScalar(name string) (float64, bool) { return tryGet[float64](ps, name) }

// TryGetVector2 returns a 2D vector entry.
func (ps *PropertySet) TryGetVector2(name string) (vmath.Vec2, bool) {
	return tryGet[vmath.Vec2](ps, name)
}

// TryGetVector3 returns a 3D vector entry.
func (ps *PropertySet) TryGetVector3(name string) (vmath.Vec3, bool) {
	return tryGet[vmath.Vec3](ps, name)
}

// TryGetVector4 returns a 4D vector entry.
func (ps *PropertySet) TryGetVector4(name string) (vmath.Vec4, bool) {
	return tryGet[vmath.Vec4](ps, name)
}

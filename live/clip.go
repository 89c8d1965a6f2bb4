package live

import "github.com/phanxgames/grove/vmath"

// Clip restricts the drawn area of a visual.
type Clip interface {
	Object
	CenterPoint() vmath.Vec2
	SetCenterPoint(vmath.Vec2)
	Scale() vmath.Vec2
	SetScale(vmath.Vec2)

	// Contains reports whether a point in the visual's local space
	// survives the clip. size is the clipped visual's Size.
	Contains(p, size vmath.Vec2) bool
}

type clip struct {
	object
}

func (c *clip) initClip(comp *Compositor, self Clip, typeName string) {
	c.init(comp, self, typeName)
	c.declare("CenterPoint", vmath.Vec2{})
	c.declare("Scale", vmath.Vec2{X: 1, Y: 1})
}

func (c *clip) CenterPoint() vmath.Vec2 { return get[vmath.Vec2](&c.object, "CenterPoint") }

func (c *clip) SetCenterPoint(v vmath.Vec2) { c.setStatic("CenterPoint", v) }

func (c *clip) Scale() vmath.Vec2 { return get[vmath.Vec2](&c.object, "Scale") }

func (c *clip) SetScale(v vmath.Vec2) { c.setStatic("Scale", v) }

// toClipSpace undoes the clip's scale about its center point.
func (c *clip) toClipSpace(p vmath.Vec2) (vmath.Vec2, bool) {
	cp, s := c.CenterPoint(), c.Scale()
	m := vmath.Translation3x2(-cp.X, -cp.Y).
		Mul(vmath.Scale3x2(s.X, s.Y)).
		Mul(vmath.Translation3x2(cp.X, cp.Y))
	inv, ok := m.Invert()
	if !ok {
		return vmath.Vec2{}, false
	}
	return inv.TransformPoint(p), true
}

// InsetClip keeps the visual's bounds shrunk by the four insets.
type InsetClip struct {
	clip
}

func (c *InsetClip) LeftInset() float64 { return get[float64](&c.object, "LeftInset") }

func (c *InsetClip) SetLeftInset(v float64) { c.setStatic("LeftInset", v) }

func (c *InsetClip) TopInset() float64 { return get[float64](&c.object, "TopInset") }

func (c *InsetClip) SetTopInset(v float64) { c.setStatic("TopInset", v) }

func (c *InsetClip) RightInset() float64 { return get[float64](&c.object, "RightInset") }

func (c *InsetClip) SetRightInset(v float64) { c.setStatic("RightInset", v) }

func (c *InsetClip) BottomInset() float64 { return get[float64](&c.object, "BottomInset") }

func (c *InsetClip) SetBottomInset(v float64) { c.setStatic("BottomInset", v) }

// Contains implements Clip.
func (c *InsetClip) Contains(p, size vmath.Vec2) bool {
	q, ok := c.toClipSpace(p)
	if !ok {
		return false
	}
	l, t := c.LeftInset(), c.TopInset()
	r := vmath.Rect{
		X: l, Y: t,
		Width:  size.X - l - c.RightInset(),
		Height: size.Y - t - c.BottomInset(),
	}
	return r.Width > 0 && r.Height > 0 && r.Contains(q.X, q.Y)
}

// GeometricClip keeps the area inside a geometry.
type GeometricClip struct {
	clip
	geometry Geometry
}

// Geometry returns the clip outline, or nil.
func (c *GeometricClip) Geometry() Geometry { return c.geometry }

// SetGeometry sets the clip outline.
func (c *GeometricClip) SetGeometry(g Geometry) { c.geometry = g; c.touch("Geometry") }

// Contains implements Clip. A clip with no geometry keeps nothing.
func (c *GeometricClip) Contains(p, _ vmath.Vec2) bool {
	if c.geometry == nil {
		return false
	}
	q, ok := c.toClipSpace(p)
	if !ok {
		return false
	}
	return c.geometry.CanvasGeometry().Contains(q)
}

package live

import "github.com/phanxgames/grove/vmath"

// Geometry is the outline of a SpriteShape or GeometricClip.
type Geometry interface {
	Object
	TrimStart() float64
	SetTrimStart(float64)
	TrimEnd() float64
	SetTrimEnd(float64)
	TrimOffset() float64
	SetTrimOffset(float64)

	// CanvasGeometry returns the untrimmed region described by the
	// geometry's current property values.
	CanvasGeometry() *CanvasGeometry

	geometryCore() *geometry
}

type geometry struct {
	object
}

func (g *geometry) initGeometry(c *Compositor, self Geometry, typeName string) {
	g.init(c, self, typeName)
	g.declare("TrimStart", 0.0)
	g.declare("TrimEnd", 1.0)
	g.declare("TrimOffset", 0.0)
}

func (g *geometry) geometryCore() *geometry { return g }

func (g *geometry) TrimStart() float64 { return get[float64](&g.object, "TrimStart") }

func (g *geometry) SetTrimStart(v float64) { g.setStatic("TrimStart", v) }

func (g *geometry) TrimEnd() float64 { return get[float64](&g.object, "TrimEnd") }

func (g *geometry) SetTrimEnd(v float64) { g.setStatic("TrimEnd", v) }

func (g *geometry) TrimOffset() float64 { return get[float64](&g.object, "TrimOffset") }

func (g *geometry) SetTrimOffset(v float64) { g.setStatic("TrimOffset", v) }

// Path is an immutable compiled outline that a PathGeometry displays and a
// PathKeyFrameAnimation interpolates between.
type Path struct {
	source *CanvasGeometry
}

// NewPath wraps a canvas geometry.
func NewPath(source *CanvasGeometry) *Path {
	return &Path{source: source}
}

// Source returns the wrapped canvas geometry.
func (p *Path) Source() *CanvasGeometry { return p.source }

// PathGeometry displays a Path.
type PathGeometry struct {
	geometry
}

// Path returns the displayed path, or nil.
func (g *PathGeometry) Path() *Path { return get[*Path](&g.object, "Path") }

// SetPath sets the displayed path.
func (g *PathGeometry) SetPath(p *Path) { g.setStatic("Path", p) }

// CanvasGeometry implements Geometry.
func (g *PathGeometry) CanvasGeometry() *CanvasGeometry {
	p := g.Path()
	if p == nil || p.source == nil {
		return emptyCanvasGeometry()
	}
	return p.source
}

// EllipseGeometry is an axis-aligned ellipse.
type EllipseGeometry struct {
	geometry
}

func (g *EllipseGeometry) Center() vmath.Vec2 { return get[vmath.Vec2](&g.object, "Center") }

func (g *EllipseGeometry) SetCenter(v vmath.Vec2) { g.setStatic("Center", v) }

func (g *EllipseGeometry) Radius() vmath.Vec2 { return get[vmath.Vec2](&g.object, "Radius") }

func (g *EllipseGeometry) SetRadius(v vmath.Vec2) { g.setStatic("Radius", v) }

// CanvasGeometry implements Geometry.
func (g *EllipseGeometry) CanvasGeometry() *CanvasGeometry {
	c, r := g.Center(), g.Radius()
	return NewCanvasEllipse(c.X, c.Y, r.X, r.Y)
}

// RectangleGeometry is an axis-aligned rectangle.
type RectangleGeometry struct {
	geometry
}

func (g *RectangleGeometry) Offset() vmath.Vec2 { return get[vmath.Vec2](&g.object, "Offset") }

func (g *RectangleGeometry) SetOffset(v vmath.Vec2) { g.setStatic("Offset", v) }

func (g *RectangleGeometry) Size() vmath.Vec2 { return get[vmath.Vec2](&g.object, "Size") }

func (g *RectangleGeometry) SetSize(v vmath.Vec2) { g.setStatic("Size", v) }

// CanvasGeometry implements Geometry.
func (g *RectangleGeometry) CanvasGeometry() *CanvasGeometry {
	o, s := g.Offset(), g.Size()
	return NewCanvasRoundedRectangle(o.X, o.Y, s.X, s.Y, 0, 0)
}

// RoundedRectangleGeometry is a rectangle with elliptical corners.
type RoundedRectangleGeometry struct {
	geometry
}

func (g *RoundedRectangleGeometry) Offset() vmath.Vec2 { return get[vmath.Vec2](&g.object, "Offset") }

func (g *RoundedRectangleGeometry) SetOffset(v vmath.Vec2) { g.setStatic("Offset", v) }

func (g *RoundedRectangleGeometry) Size() vmath.Vec2 { return get[vmath.Vec2](&g.object, "Size") }

func (g *RoundedRectangleGeometry) SetSize(v vmath.Vec2) { g.setStatic("Size", v) }

func (g *RoundedRectangleGeometry) CornerRadius() vmath.Vec2 {
	return get[vmath.Vec2](&g.object, "CornerRadius")
}

func (g *RoundedRectangleGeometry) SetCornerRadius(v vmath.Vec2) { g.setStatic("CornerRadius", v) }

// CanvasGeometry implements Geometry.
func (g *RoundedRectangleGeometry) CanvasGeometry() *CanvasGeometry {
	o, s, r := g.Offset(), g.Size(), g.CornerRadius()
	return NewCanvasRoundedRectangle(o.X, o.Y, s.X, s.Y, r.X, r.Y)
}

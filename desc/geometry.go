package desc

import "github.com/phanxgames/grove/vmath"

// Geometry is a trimmable composition geometry used by sprite shapes and
// geometric clips.
type Geometry interface {
	Node
	GeometryProps() *GeometryBase
}

// GeometryBase holds the trim fields. Trim values are fractions of the
// outline length.
type GeometryBase struct {
	Object
	TrimStart  *float64
	TrimEnd    *float64
	TrimOffset *float64
}

// GeometryProps returns g.
func (g *GeometryBase) GeometryProps() *GeometryBase { return g }

// PathGeometry draws a Path.
type PathGeometry struct {
	GeometryBase
	Path *Path
}

// EllipseGeometry is an ellipse centered on Center.
type EllipseGeometry struct {
	GeometryBase
	Center *vmath.Vec2
	Radius vmath.Vec2
}

// RectangleGeometry is an axis-aligned rectangle.
type RectangleGeometry struct {
	GeometryBase
	Offset *vmath.Vec2
	Size   vmath.Vec2
}

// RoundedRectangleGeometry is an axis-aligned rectangle with rounded corners.
type RoundedRectangleGeometry struct {
	GeometryBase
	Offset       *vmath.Vec2
	Size         vmath.Vec2
	CornerRadius vmath.Vec2
}

func (*PathGeometry) Kind() Kind             { return KindPathGeometry }
func (*EllipseGeometry) Kind() Kind          { return KindEllipseGeometry }
func (*RectangleGeometry) Kind() Kind        { return KindRectangleGeometry }
func (*RoundedRectangleGeometry) Kind() Kind { return KindRoundedRectangleGeometry }

// Path wraps a geometry expression. Paths are values of path key frame
// animations as well as the source of path geometries, and are shared by
// identity like nodes.
type Path struct {
	Source CanvasGeometry
}

package live

import (
	"slices"

	"github.com/phanxgames/grove/vmath"
)

// Shape is a node of a shape visual's shape tree.
type Shape interface {
	Object
	CenterPoint() vmath.Vec2
	SetCenterPoint(vmath.Vec2)
	Offset() vmath.Vec2
	SetOffset(vmath.Vec2)
	RotationAngleInDegrees() float64
	SetRotationAngleInDegrees(float64)
	Scale() vmath.Vec2
	SetScale(vmath.Vec2)
	TransformMatrix() vmath.Matrix3x2
	SetTransformMatrix(vmath.Matrix3x2)

	// LocalTransform composes the transform properties, in the same order
	// as Visual.LocalTransform.
	LocalTransform() vmath.Matrix3x2

	shapeCore() *shape
}

type shape struct {
	object
}

func (s *shape) initShape(c *Compositor, self Shape, typeName string) {
	s.init(c, self, typeName)
	s.declare("CenterPoint", vmath.Vec2{})
	s.declare("Offset", vmath.Vec2{})
	s.declare("RotationAngleInDegrees", 0.0)
	s.declare("Scale", vmath.Vec2{X: 1, Y: 1})
	s.declare("TransformMatrix", vmath.Identity3x2())
}

func (s *shape) shapeCore() *shape { return s }

func (s *shape) CenterPoint() vmath.Vec2 { return get[vmath.Vec2](&s.object, "CenterPoint") }

func (s *shape) SetCenterPoint(p vmath.Vec2) { s.setStatic("CenterPoint", p) }

func (s *shape) Offset() vmath.Vec2 { return get[vmath.Vec2](&s.object, "Offset") }

func (s *shape) SetOffset(p vmath.Vec2) { s.setStatic("Offset", p) }

func (s *shape) RotationAngleInDegrees() float64 {
	return get[float64](&s.object, "RotationAngleInDegrees")
}

func (s *shape) SetRotationAngleInDegrees(d float64) { s.setStatic("RotationAngleInDegrees", d) }

func (s *shape) Scale() vmath.Vec2 { return get[vmath.Vec2](&s.object, "Scale") }

func (s *shape) SetScale(v vmath.Vec2) { s.setStatic("Scale", v) }

func (s *shape) TransformMatrix() vmath.Matrix3x2 {
	return get[vmath.Matrix3x2](&s.object, "TransformMatrix")
}

func (s *shape) SetTransformMatrix(m vmath.Matrix3x2) { s.setStatic("TransformMatrix", m) }

func (s *shape) LocalTransform() vmath.Matrix3x2 {
	cp := s.CenterPoint()
	sc := s.Scale()
	off := s.Offset()
	return vmath.Translation3x2(-cp.X, -cp.Y).
		Mul(vmath.Scale3x2(sc.X, sc.Y)).
		Mul(vmath.Rotation3x2(s.RotationAngleInDegrees() * degToRad)).
		Mul(vmath.Translation3x2(cp.X, cp.Y)).
		Mul(s.TransformMatrix()).
		Mul(vmath.Translation3x2(off.X, off.Y))
}

// ContainerShape groups shapes.
type ContainerShape struct {
	shape
	shapes []Shape
}

// Shapes returns the child shapes.
func (s *ContainerShape) Shapes() []Shape { return s.shapes }

// AddShape appends a child shape.
func (s *ContainerShape) AddShape(child Shape) {
	s.shapes = append(s.shapes, child)
	s.touch("Shapes")
}

// SpriteShape fills and strokes a geometry.
type SpriteShape struct {
	shape
	geometry   Geometry
	fill       Brush
	stroke     Brush
	dashArray  []float64
	dashCap    StrokeCap
	startCap   StrokeCap
	endCap     StrokeCap
	lineJoin   StrokeLineJoin
	nonScaling bool
}

// Geometry returns the outline, or nil.
func (s *SpriteShape) Geometry() Geometry { return s.geometry }

// SetGeometry sets the outline.
func (s *SpriteShape) SetGeometry(g Geometry) { s.geometry = g; s.touch("Geometry") }

// FillBrush returns the interior brush, or nil.
func (s *SpriteShape) FillBrush() Brush { return s.fill }

// SetFillBrush sets the interior brush.
func (s *SpriteShape) SetFillBrush(b Brush) { s.fill = b; s.touch("FillBrush") }

// StrokeBrush returns the outline brush, or nil.
func (s *SpriteShape) StrokeBrush() Brush { return s.stroke }

// SetStrokeBrush sets the outline brush.
func (s *SpriteShape) SetStrokeBrush(b Brush) { s.stroke = b; s.touch("StrokeBrush") }

// StrokeDashArray returns a copy of the dash pattern.
func (s *SpriteShape) StrokeDashArray() []float64 { return slices.Clone(s.dashArray) }

// AddStrokeDash appends one entry to the dash pattern.
func (s *SpriteShape) AddStrokeDash(v float64) {
	s.dashArray = append(s.dashArray, v)
	s.touch("StrokeDashArray")
}

func (s *SpriteShape) StrokeDashCap() StrokeCap { return s.dashCap }

func (s *SpriteShape) SetStrokeDashCap(c StrokeCap) { s.dashCap = c; s.touch("StrokeDashCap") }

func (s *SpriteShape) StrokeStartCap() StrokeCap { return s.startCap }

func (s *SpriteShape) SetStrokeStartCap(c StrokeCap) { s.startCap = c; s.touch("StrokeStartCap") }

func (s *SpriteShape) StrokeEndCap() StrokeCap { return s.endCap }

func (s *SpriteShape) SetStrokeEndCap(c StrokeCap) { s.endCap = c; s.touch("StrokeEndCap") }

func (s *SpriteShape) StrokeLineJoin() StrokeLineJoin { return s.lineJoin }

func (s *SpriteShape) SetStrokeLineJoin(j StrokeLineJoin) { s.lineJoin = j; s.touch("StrokeLineJoin") }

// IsStrokeNonScaling reports whether stroke thickness ignores the transform.
func (s *SpriteShape) IsStrokeNonScaling() bool { return s.nonScaling }

func (s *SpriteShape) SetIsStrokeNonScaling(b bool) {
	s.nonScaling = b
	s.touch("IsStrokeNonScaling")
}

func (s *SpriteShape) StrokeDashOffset() float64 { return get[float64](&s.object, "StrokeDashOffset") }

func (s *SpriteShape) SetStrokeDashOffset(v float64) { s.setStatic("StrokeDashOffset", v) }

func (s *SpriteShape) StrokeMiterLimit() float64 { return get[float64](&s.object, "StrokeMiterLimit") }

func (s *SpriteShape) SetStrokeMiterLimit(v float64) { s.setStatic("StrokeMiterLimit", v) }

func (s *SpriteShape) StrokeThickness() float64 { return get[float64](&s.object, "StrokeThickness") }

func (s *SpriteShape) SetStrokeThickness(v float64) { s.setStatic("StrokeThickness", v) }

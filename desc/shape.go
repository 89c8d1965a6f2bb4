package desc

import "github.com/phanxgames/grove/vmath"

// Shape is a node of a shape visual's shape tree.
type Shape interface {
	Node
	ShapeProps() *ShapeBase
}

// ShapeBase holds the fields shared by every shape.
type ShapeBase struct {
	Object
	CenterPoint            *vmath.Vec2
	Offset                 *vmath.Vec2
	RotationAngleInDegrees *float64
	Scale                  *vmath.Vec2
	TransformMatrix        *vmath.Matrix3x2
}

// ShapeProps returns s.
func (s *ShapeBase) ShapeProps() *ShapeBase { return s }

// ContainerShape groups shapes under one transform.
type ContainerShape struct {
	ShapeBase
	Shapes []Shape
}

// SpriteShape fills and strokes a geometry.
type SpriteShape struct {
	ShapeBase
	Geometry    Geometry
	FillBrush   Brush
	StrokeBrush Brush

	StrokeDashArray    []float64
	StrokeDashCap      *StrokeCap
	StrokeStartCap     *StrokeCap
	StrokeEndCap       *StrokeCap
	StrokeLineJoin     *StrokeLineJoin
	StrokeDashOffset   *float64
	StrokeMiterLimit   *float64
	StrokeThickness    *float64
	IsStrokeNonScaling *bool
}

func (*ContainerShape) Kind() Kind { return KindContainerShape }
func (*SpriteShape) Kind() Kind    { return KindSpriteShape }

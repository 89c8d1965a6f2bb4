package desc

import "github.com/phanxgames/grove/vmath"

// CanvasGeometry is an expression describing one vector outline. Expressions
// nest: combinations and groups reference other expressions, and the same
// sub-expression may appear more than once.
type CanvasGeometry interface {
	isCanvasGeometry()
}

// CanvasEllipse is an ellipse centered on (X, Y).
type CanvasEllipse struct {
	X, Y, RadiusX, RadiusY float64
}

// CanvasRoundedRectangle has its top-left corner at (X, Y).
type CanvasRoundedRectangle struct {
	X, Y, W, H       float64
	RadiusX, RadiusY float64
}

// CanvasGroup fills the overlap of its members according to FillRule.
type CanvasGroup struct {
	Geometries []CanvasGeometry
	FillRule   FillRule
}

// CanvasCombination applies Mode to A and B, with Matrix applied to B first.
type CanvasCombination struct {
	A, B   CanvasGeometry
	Matrix vmath.Matrix3x2
	Mode   CombineMode
}

// CanvasTransformed applies Matrix to Source.
type CanvasTransformed struct {
	Source CanvasGeometry
	Matrix vmath.Matrix3x2
}

// CanvasPath replays Commands in order. The order is significant.
type CanvasPath struct {
	FillRule FillRule
	Commands []PathCommand
}

func (*CanvasEllipse) isCanvasGeometry()          {}
func (*CanvasRoundedRectangle) isCanvasGeometry() {}
func (*CanvasGroup) isCanvasGeometry()            {}
func (*CanvasCombination) isCanvasGeometry()      {}
func (*CanvasTransformed) isCanvasGeometry()      {}
func (*CanvasPath) isCanvasGeometry()             {}

// PathCommand is one step of a CanvasPath.
type PathCommand interface {
	isPathCommand()
}

// BeginFigure starts a new figure at StartPoint.
type BeginFigure struct {
	StartPoint vmath.Vec2
}

// AddLine draws a straight segment to EndPoint.
type AddLine struct {
	EndPoint vmath.Vec2
}

// AddCubicBezier draws a cubic curve to EndPoint.
type AddCubicBezier struct {
	ControlPoint1 vmath.Vec2
	ControlPoint2 vmath.Vec2
	EndPoint      vmath.Vec2
}

// EndFigure ends the current figure.
type EndFigure struct {
	Loop FigureLoop
}

func (BeginFigure) isPathCommand()    {}
func (AddLine) isPathCommand()        {}
func (AddCubicBezier) isPathCommand() {}
func (EndFigure) isPathCommand()      {}

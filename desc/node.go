package desc

import "strconv"

// Kind identifies the concrete variant of a Node.
type Kind uint8

const (
	KindContainerVisual Kind = iota
	KindShapeVisual
	KindSpriteVisual
	KindLayerVisual
	KindDropShadow
	KindViewBox
	KindContainerShape
	KindSpriteShape
	KindPathGeometry
	KindEllipseGeometry
	KindRectangleGeometry
	KindRoundedRectangleGeometry
	KindColorBrush
	KindColorGradientStop
	KindLinearGradientBrush
	KindRadialGradientBrush
	KindSurfaceBrush
	KindEffectBrush
	KindMaskBrush
	KindVisualSurface
	KindInsetClip
	KindGeometricClip
	KindLinearEasing
	KindStepEasing
	KindCubicBezierEasing
	KindBooleanKeyFrameAnimation
	KindColorKeyFrameAnimation
	KindScalarKeyFrameAnimation
	KindVector2KeyFrameAnimation
	KindVector3KeyFrameAnimation
	KindVector4KeyFrameAnimation
	KindPathKeyFrameAnimation
	KindExpressionAnimation
	KindPropertySet
	KindAnimationController

	numKinds
)

var kindNames = [numKinds]string{
	"ContainerVisual",
	"ShapeVisual",
	"SpriteVisual",
	"LayerVisual",
	"DropShadow",
	"ViewBox",
	"ContainerShape",
	"SpriteShape",
	"PathGeometry",
	"EllipseGeometry",
	"RectangleGeometry",
	"RoundedRectangleGeometry",
	"ColorBrush",
	"ColorGradientStop",
	"LinearGradientBrush",
	"RadialGradientBrush",
	"SurfaceBrush",
	"EffectBrush",
	"MaskBrush",
	"VisualSurface",
	"InsetClip",
	"GeometricClip",
	"LinearEasing",
	"StepEasing",
	"CubicBezierEasing",
	"BooleanKeyFrameAnimation",
	"ColorKeyFrameAnimation",
	"ScalarKeyFrameAnimation",
	"Vector2KeyFrameAnimation",
	"Vector3KeyFrameAnimation",
	"Vector4KeyFrameAnimation",
	"PathKeyFrameAnimation",
	"ExpressionAnimation",
	"PropertySet",
	"AnimationController",
}

func (k Kind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// AllKinds returns every defined Kind in declaration order.
func AllKinds() []Kind {
	out := make([]Kind, numKinds)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// Node is one immutable element of a declarative scene graph. The set of
// implementations is closed: every Node is one of the pointer types declared
// in this package.
type Node interface {
	Kind() Kind
	Base() *Object
	isNode()
}

// Object carries the fields shared by every Node.
type Object struct {
	// Comment is free text for diagnostics. It is copied onto the live object.
	Comment string
	// Properties is the node's property set, or nil. An unowned PropertySet
	// refers to itself here.
	Properties *PropertySet
	// Animators start animations on the node's live counterpart.
	Animators []Animator
}

// Base returns o.
func (o *Object) Base() *Object { return o }

func (*Object) isNode() {}

// Animator pairs a property of a node with an Animation that drives it.
type Animator struct {
	Property   string
	Animation  Animation
	Controller *AnimationController
}

// Ptr returns a pointer to a copy of v. Optional node fields are pointers;
// nil means "use the engine default".
func Ptr[T any](v T) *T {
	return &v
}

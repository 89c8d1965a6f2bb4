package desc

import (
	"time"

	"github.com/phanxgames/grove/vmath"
)

// Easing maps linear time to eased time within one key frame segment.
type Easing interface {
	Node
	isEasing()
}

// LinearEasing does not ease.
type LinearEasing struct {
	Object
}

// StepEasing jumps between discrete steps.
type StepEasing struct {
	Object
	StepCount                *int
	InitialStep              *int
	FinalStep                *int
	IsInitialStepSingleFrame *bool
	IsFinalStepSingleFrame   *bool
}

// CubicBezierEasing eases along the curve (0,0) ControlPoint1 ControlPoint2 (1,1).
type CubicBezierEasing struct {
	Object
	ControlPoint1 vmath.Vec2
	ControlPoint2 vmath.Vec2
}

func (*LinearEasing) isEasing()      {}
func (*StepEasing) isEasing()        {}
func (*CubicBezierEasing) isEasing() {}

func (*LinearEasing) Kind() Kind      { return KindLinearEasing }
func (*StepEasing) Kind() Kind        { return KindStepEasing }
func (*CubicBezierEasing) Kind() Kind { return KindCubicBezierEasing }

// Animation drives one property of a live object.
type Animation interface {
	Node
	AnimationProps() *AnimationBase
}

// AnimationBase holds the fields shared by every animation.
type AnimationBase struct {
	Object
	// Target names the property when the animation is used as an implicit
	// animation. Empty means unset.
	Target string
	// ReferenceParameters bind names used in expressions to nodes.
	ReferenceParameters []ReferenceParameter
}

// AnimationProps returns a.
func (a *AnimationBase) AnimationProps() *AnimationBase { return a }

// ReferenceParameter binds a name used in an expression to a node.
type ReferenceParameter struct {
	Name string
	Node Node
}

// KeyFrame is one key frame of a KeyFrameAnimation. When Expression is not
// empty the key frame is an expression key frame and Value is ignored.
type KeyFrame[T any] struct {
	Progress   float64
	Value      T
	Expression string
	Easing     Easing
}

// IsExpression reports whether k is an expression key frame.
func (k KeyFrame[T]) IsExpression() bool { return k.Expression != "" }

// KeyFrameAnimation interpolates between key frames over Duration.
// Progress of every key frame must lie in [0, 1].
type KeyFrameAnimation[T any] struct {
	AnimationBase
	Duration  time.Duration
	KeyFrames []KeyFrame[T]
}

type (
	BooleanKeyFrameAnimation struct{ KeyFrameAnimation[bool] }
	ScalarKeyFrameAnimation  struct{ KeyFrameAnimation[float64] }
	Vector2KeyFrameAnimation struct{ KeyFrameAnimation[vmath.Vec2] }
	Vector3KeyFrameAnimation struct{ KeyFrameAnimation[vmath.Vec3] }
	Vector4KeyFrameAnimation struct{ KeyFrameAnimation[vmath.Vec4] }
	PathKeyFrameAnimation    struct{ KeyFrameAnimation[*Path] }

	ColorKeyFrameAnimation struct {
		KeyFrameAnimation[vmath.Color]
		InterpolationColorSpace *ColorSpace
	}
)

func (*BooleanKeyFrameAnimation) Kind() Kind { return KindBooleanKeyFrameAnimation }
func (*ColorKeyFrameAnimation) Kind() Kind   { return KindColorKeyFrameAnimation }
func (*ScalarKeyFrameAnimation) Kind() Kind  { return KindScalarKeyFrameAnimation }
func (*Vector2KeyFrameAnimation) Kind() Kind { return KindVector2KeyFrameAnimation }
func (*Vector3KeyFrameAnimation) Kind() Kind { return KindVector3KeyFrameAnimation }
func (*Vector4KeyFrameAnimation) Kind() Kind { return KindVector4KeyFrameAnimation }
func (*PathKeyFrameAnimation) Kind() Kind    { return KindPathKeyFrameAnimation }

// NewScalarAnimation is shorthand for a ScalarKeyFrameAnimation.
func NewScalarAnimation(d time.Duration, frames ...KeyFrame[float64]) *ScalarKeyFrameAnimation {
	return &ScalarKeyFrameAnimation{KeyFrameAnimation[float64]{Duration: d, KeyFrames: frames}}
}

// NewVector2Animation is shorthand for a Vector2KeyFrameAnimation.
func NewVector2Animation(d time.Duration, frames ...KeyFrame[vmath.Vec2]) *Vector2KeyFrameAnimation {
	return &Vector2KeyFrameAnimation{KeyFrameAnimation[vmath.Vec2]{Duration: d, KeyFrames: frames}}
}

// NewVector3Animation is shorthand for a Vector3KeyFrameAnimation.
func NewVector3Animation(d time.Duration, frames ...KeyFrame[vmath.Vec3]) *Vector3KeyFrameAnimation {
	return &Vector3KeyFrameAnimation{KeyFrameAnimation[vmath.Vec3]{Duration: d, KeyFrames: frames}}
}

// NewColorAnimation is shorthand for a ColorKeyFrameAnimation.
func NewColorAnimation(d time.Duration, frames ...KeyFrame[vmath.Color]) *ColorKeyFrameAnimation {
	return &ColorKeyFrameAnimation{KeyFrameAnimation: KeyFrameAnimation[vmath.Color]{Duration: d, KeyFrames: frames}}
}

// ExpressionAnimation binds a property to an expression.
type ExpressionAnimation struct {
	AnimationBase
	Expression string
}

func (*ExpressionAnimation) Kind() Kind { return KindExpressionAnimation }

// PropertySet is a typed key/value bag. An owned set (Owner != nil) stands
// for the owner's own live property bag; an unowned set is a standalone bag
// whose Properties field refers to itself.
type PropertySet struct {
	Object
	Owner Node

	Booleans map[string]bool
	Colors   map[string]vmath.Color
	Scalars  map[string]float64
	Vector2s map[string]vmath.Vec2
	Vector3s map[string]vmath.Vec3
	Vector4s map[string]vmath.Vec4
}

func (*PropertySet) Kind() Kind { return KindPropertySet }

// NewPropertySet returns an unowned property set.
func NewPropertySet() *PropertySet {
	ps := &PropertySet{}
	ps.Properties = ps
	return ps
}

// NewOwnedPropertySet returns a property set owned by owner. The caller
// still has to assign it to the owner's Properties field.
func NewOwnedPropertySet(owner Node) *PropertySet {
	return &PropertySet{Owner: owner}
}

// IsOwned reports whether ps belongs to another node.
func (ps *PropertySet) IsOwned() bool { return ps.Owner != nil }

// AnimationController controls animations. A controller with a Target is the
// implicit controller of the animation running on Target's TargetProperty; a
// controller without a Target is a custom, free-standing controller.
type AnimationController struct {
	Object
	Target         Node
	TargetProperty string
	IsPaused       bool
}

func (*AnimationController) Kind() Kind { return KindAnimationController }

// IsCustom reports whether c is free-standing.
func (c *AnimationController) IsCustom() bool { return c.Target == nil }

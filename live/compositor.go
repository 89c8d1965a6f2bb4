package live

import (
	"maps"
	"slices"
	"sync"

	"github.com/phanxgames/grove/vmath"
)

// Observer receives property events from a Compositor. Calls are made
// synchronously on the goroutine that caused them.
type Observer interface {
	// StaticWrite is called for every setter call, before the value is
	// stored.
	StaticWrite(obj Object, property string)
	// AnimationStarted is called after an animation is bound to a property.
	AnimationStarted(obj Object, property string)
}

// Compositor creates live objects and drives their animations.
//
// Creating objects and starting animations is safe from multiple goroutines
// as long as each goroutine works on its own objects. Update must not run
// concurrently with changes to the objects it animates.
type Compositor struct {
	mu        sync.Mutex
	playbacks []*playback
	observer  Observer
	created   map[string]int
}

// NewCompositor returns an empty compositor.
func NewCompositor() *Compositor {
	return &Compositor{created: make(map[string]int)}
}

// SetObserver sets the observer. nil removes it.
func (c *Compositor) SetObserver(o Observer) {
	c.mu.Lock()
	c.observer = o
	c.mu.Unlock()
}

func (c *Compositor) currentObserver() Observer {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.observer
}

func (c *Compositor) notifyStaticWrite(obj Object, property string) {
	if o := c.currentObserver(); o != nil {
		o.StaticWrite(obj, property)
	}
}

func (c *Compositor) notifyAnimationStarted(obj Object, property string) {
	if o := c.currentObserver(); o != nil {
		o.AnimationStarted(obj, property)
	}
}

func (c *Compositor) register(pb *playback) {
	c.mu.Lock()
	c.playbacks = append(c.playbacks, pb)
	c.mu.Unlock()
}

func (c *Compositor) count(o Object) {
	c.mu.Lock()
	c.created[o.TypeName()]++
	c.mu.Unlock()
}

// Created returns the number of objects created so far, by type name.
func (c *Compositor) Created() map[string]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return maps.Clone(c.created)
}

// ActiveAnimations returns the number of animations still running.
func (c *Compositor) ActiveAnimations() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, pb := range c.playbacks {
		if !pb.done {
			n++
		}
	}
	return n
}

// Update advances every running animation by dt seconds and drops the
// ones that have finished or whose target was disposed.
func (c *Compositor) Update(dt float64) {
	c.mu.Lock()
	running := slices.Clone(c.playbacks)
	c.mu.Unlock()

	for _, pb := range running {
		pb.update(dt)
	}

	c.mu.Lock()
	c.playbacks = slices.DeleteFunc(c.playbacks, func(pb *playback) bool { return pb.done })
	c.mu.Unlock()
}

func (c *Compositor) newImplicitController() *AnimationController {
	ctl := &AnimationController{}
	ctl.init(c, ctl, "AnimationController")
	ctl.declare("Progress", 0.0)
	ctl.declare("PlaybackRate", 1.0)
	c.count(ctl)
	return ctl
}

// --- Visuals ---

// CreateContainerVisual returns a new container visual.
func (c *Compositor) CreateContainerVisual() *ContainerVisual {
	v := &ContainerVisual{}
	v.initVisual(c, v, "ContainerVisual")
	c.count(v)
	return v
}

// CreateShapeVisual returns a new shape visual.
func (c *Compositor) CreateShapeVisual() *ShapeVisual {
	v := &ShapeVisual{}
	v.initVisual(c, v, "ShapeVisual")
	c.count(v)
	return v
}

// CreateSpriteVisual returns a new sprite visual.
func (c *Compositor) CreateSpriteVisual() *SpriteVisual {
	v := &SpriteVisual{}
	v.initVisual(c, v, "SpriteVisual")
	c.count(v)
	return v
}

// CreateLayerVisual returns a new layer visual.
func (c *Compositor) CreateLayerVisual() *LayerVisual {
	v := &LayerVisual{}
	v.initVisual(c, v, "LayerVisual")
	c.count(v)
	return v
}

// CreateDropShadow returns a black drop shadow with a blur radius of 9.
func (c *Compositor) CreateDropShadow() *DropShadow {
	s := &DropShadow{}
	s.init(c, s, "DropShadow")
	s.declare("BlurRadius", 9.0)
	s.declare("Color", vmath.ColorBlack)
	s.declare("Offset", vmath.Vec3{})
	s.declare("Opacity", 1.0)
	c.count(s)
	return s
}

// CreateViewBox returns a view box of the given size.
func (c *Compositor) CreateViewBox(size vmath.Vec2) *ViewBox {
	b := &ViewBox{}
	b.init(c, b, "ViewBox")
	b.declare("Size", size)
	b.declare("Offset", vmath.Vec2{})
	c.count(b)
	return b
}

// --- Shapes and geometry ---

// CreateContainerShape returns a new container shape.
func (c *Compositor) CreateContainerShape() *ContainerShape {
	s := &ContainerShape{}
	s.initShape(c, s, "ContainerShape")
	c.count(s)
	return s
}

// CreateSpriteShape returns a sprite shape drawing geometry, which may be
// nil.
func (c *Compositor) CreateSpriteShape(geometry Geometry) *SpriteShape {
	s := &SpriteShape{geometry: geometry}
	s.initShape(c, s, "SpriteShape")
	s.declare("StrokeDashOffset", 0.0)
	s.declare("StrokeMiterLimit", 1.0)
	s.declare("StrokeThickness", 1.0)
	c.count(s)
	return s
}

// CreatePathGeometry returns a path geometry showing path, which may be
// nil.
func (c *Compositor) CreatePathGeometry(path *Path) *PathGeometry {
	g := &PathGeometry{}
	g.initGeometry(c, g, "PathGeometry")
	g.declare("Path", path)
	c.count(g)
	return g
}

// CreateEllipseGeometry returns an ellipse geometry at the origin with
// zero radius.
func (c *Compositor) CreateEllipseGeometry() *EllipseGeometry {
	g := &EllipseGeometry{}
	g.initGeometry(c, g, "EllipseGeometry")
	g.declare("Center", vmath.Vec2{})
	g.declare("Radius", vmath.Vec2{})
	c.count(g)
	return g
}

// CreateRectangleGeometry returns an empty rectangle geometry.
func (c *Compositor) CreateRectangleGeometry() *RectangleGeometry {
	g := &RectangleGeometry{}
	g.initGeometry(c, g, "RectangleGeometry")
	g.declare("Offset", vmath.Vec2{})
	g.declare("Size", vmath.Vec2{})
	c.count(g)
	return g
}

// CreateRoundedRectangleGeometry returns an empty rounded rectangle
// geometry.
func (c *Compositor) CreateRoundedRectangleGeometry() *RoundedRectangleGeometry {
	g := &RoundedRectangleGeometry{}
	g.initGeometry(c, g, "RoundedRectangleGeometry")
	g.declare("Offset", vmath.Vec2{})
	g.declare("Size", vmath.Vec2{})
	g.declare("CornerRadius", vmath.Vec2{})
	c.count(g)
	return g
}

// --- Brushes ---

// CreateColorBrush returns a brush painting color.
func (c *Compositor) CreateColorBrush(color vmath.Color) *ColorBrush {
	b := &ColorBrush{}
	b.init(c, b, "ColorBrush")
	b.declare("Color", color)
	c.count(b)
	return b
}

// CreateColorGradientStop returns a gradient stop.
func (c *Compositor) CreateColorGradientStop(offset float64, color vmath.Color) *ColorGradientStop {
	s := &ColorGradientStop{}
	s.init(c, s, "ColorGradientStop")
	s.declare("Offset", offset)
	s.declare("Color", color)
	c.count(s)
	return s
}

// CreateLinearGradientBrush returns a left-to-right gradient brush with no
// stops.
func (c *Compositor) CreateLinearGradientBrush() *LinearGradientBrush {
	b := &LinearGradientBrush{}
	b.initGradient(c, b, "LinearGradientBrush")
	b.declare("StartPoint", vmath.Vec2{})
	b.declare("EndPoint", vmath.Vec2{X: 1})
	c.count(b)
	return b
}

// CreateRadialGradientBrush returns a centered radial gradient brush with
// no stops.
func (c *Compositor) CreateRadialGradientBrush() *RadialGradientBrush {
	b := &RadialGradientBrush{}
	b.initGradient(c, b, "RadialGradientBrush")
	b.declare("EllipseCenter", vmath.Vec2{X: 0.5, Y: 0.5})
	b.declare("EllipseRadius", vmath.Vec2{X: 0.5, Y: 0.5})
	b.declare("GradientOriginOffset", vmath.Vec2{})
	c.count(b)
	return b
}

// CreateSurfaceBrush returns a brush painting surface, which may be nil.
func (c *Compositor) CreateSurfaceBrush(surface Surface) *SurfaceBrush {
	b := &SurfaceBrush{surface: surface}
	b.init(c, b, "SurfaceBrush")
	c.count(b)
	return b
}

// CreateEffectFactory returns a factory for brushes painting effect.
func (c *Compositor) CreateEffectFactory(effect Effect) *EffectFactory {
	return &EffectFactory{comp: c, effect: effect}
}

// CreateMaskBrush returns a mask brush with no source or mask.
func (c *Compositor) CreateMaskBrush() *MaskBrush {
	b := &MaskBrush{}
	b.init(c, b, "MaskBrush")
	c.count(b)
	return b
}

// CreateVisualSurface returns a visual surface with no source.
func (c *Compositor) CreateVisualSurface() *VisualSurface {
	s := &VisualSurface{}
	s.init(c, s, "VisualSurface")
	s.declare("SourceSize", vmath.Vec2{})
	s.declare("SourceOffset", vmath.Vec2{})
	c.count(s)
	return s
}

// --- Clips ---

// CreateInsetClip returns an inset clip with zero insets.
func (c *Compositor) CreateInsetClip() *InsetClip {
	cl := &InsetClip{}
	cl.initClip(c, cl, "InsetClip")
	cl.declare("LeftInset", 0.0)
	cl.declare("TopInset", 0.0)
	cl.declare("RightInset", 0.0)
	cl.declare("BottomInset", 0.0)
	c.count(cl)
	return cl
}

// CreateGeometricClip returns a clip keeping the inside of geometry.
func (c *Compositor) CreateGeometricClip(geometry Geometry) *GeometricClip {
	cl := &GeometricClip{geometry: geometry}
	cl.initClip(c, cl, "GeometricClip")
	c.count(cl)
	return cl
}

// --- Easing ---

// CreateLinearEasingFunction returns the linear easing.
func (c *Compositor) CreateLinearEasingFunction() *LinearEasingFunction {
	e := &LinearEasingFunction{}
	e.init(c, e, "LinearEasingFunction")
	c.count(e)
	return e
}

// CreateStepEasingFunction returns a single-step easing from step 0 to 1.
func (c *Compositor) CreateStepEasingFunction() *StepEasingFunction {
	e := &StepEasingFunction{stepCount: 1, finalStep: 1}
	e.init(c, e, "StepEasingFunction")
	c.count(e)
	return e
}

// CreateCubicBezierEasingFunction returns the cubic bezier easing with the
// given control points.
func (c *Compositor) CreateCubicBezierEasingFunction(cp1, cp2 vmath.Vec2) *CubicBezierEasingFunction {
	e := &CubicBezierEasingFunction{cp1: cp1, cp2: cp2}
	e.init(c, e, "CubicBezierEasingFunction")
	c.count(e)
	return e
}

// --- Animations ---

func createKeyFrameAnimation[T any](c *Compositor, typeName string, lerp func(a, b T, t float64) T) *KeyFrameAnimation[T] {
	a := newKeyFrameAnimation(c, typeName, lerp)
	c.count(a)
	return a
}

// CreateBooleanKeyFrameAnimation returns an empty boolean animation.
// Booleans step at the end of each segment.
func (c *Compositor) CreateBooleanKeyFrameAnimation() *BooleanKeyFrameAnimation {
	return createKeyFrameAnimation[bool](c, "BooleanKeyFrameAnimation", nil)
}

// CreateColorKeyFrameAnimation returns an empty color animation.
func (c *Compositor) CreateColorKeyFrameAnimation() *ColorKeyFrameAnimation {
	a := &ColorKeyFrameAnimation{}
	a.lerp = vmath.LerpColor
	a.init(c, a, "ColorKeyFrameAnimation")
	c.count(a)
	return a
}

// CreateScalarKeyFrameAnimation returns an empty scalar animation.
func (c *Compositor) CreateScalarKeyFrameAnimation() *ScalarKeyFrameAnimation {
	return createKeyFrameAnimation(c, "ScalarKeyFrameAnimation", vmath.Lerp)
}

// CreateVector2KeyFrameAnimation returns an empty 2D vector animation.
func (c *Compositor) CreateVector2KeyFrameAnimation() *Vector2KeyFrameAnimation {
	return createKeyFrameAnimation(c, "Vector2KeyFrameAnimation", vmath.LerpVec2)
}

// CreateVector3KeyFrameAnimation returns an empty 3D vector animation.
func (c *Compositor) CreateVector3KeyFrameAnimation() *Vector3KeyFrameAnimation {
	return createKeyFrameAnimation(c, "Vector3KeyFrameAnimation", vmath.LerpVec3)
}

// CreateVector4KeyFrameAnimation returns an empty 4D vector animation.
func (c *Compositor) CreateVector4KeyFrameAnimation() *Vector4KeyFrameAnimation {
	return createKeyFrameAnimation(c, "Vector4KeyFrameAnimation", vmath.LerpVec4)
}

// CreatePathKeyFrameAnimation returns an empty path animation. Paths step
// at the end of each segment.
func (c *Compositor) CreatePathKeyFrameAnimation() *PathKeyFrameAnimation {
	return createKeyFrameAnimation[*Path](c, "PathKeyFrameAnimation", nil)
}

// CreateExpressionAnimation returns an expression animation.
func (c *Compositor) CreateExpressionAnimation(expression string) *ExpressionAnimation {
	a := &ExpressionAnimation{expression: expression}
	a.init(c, a, "ExpressionAnimation")
	c.count(a)
	return a
}

// CreatePropertySet returns a standalone property set.
func (c *Compositor) CreatePropertySet() *PropertySet {
	ps := c.newPropertySet(nil)
	c.count(ps)
	return ps
}

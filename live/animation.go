package live

import (
	"math"
	"slices"
	"sort"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/grove/vmath"
)

// Animation is a live animation template. Starting it on an object runs a
// snapshot; the template stays free for reuse.
type Animation interface {
	Object
	Target() string
	SetTarget(string)
	SetReferenceParameter(name string, obj Object)
	ReferenceParameter(name string) Object
	ReferenceParameterNames() []string
	ClearAllParameters()

	snapshot() Animation
	accepts(v any) bool
	keyFramed() bool
	length() time.Duration
	sample(progress float64) (any, bool)
}

type animationBase struct {
	object
	target     string
	paramNames []string
	params     map[string]Object
}

// Target returns the implicit-animation target property.
func (a *animationBase) Target() string { return a.target }

// SetTarget sets the implicit-animation target property.
func (a *animationBase) SetTarget(s string) { a.target = s }

// SetReferenceParameter binds name to obj for use in expressions.
func (a *animationBase) SetReferenceParameter(name string, obj Object) {
	if a.params == nil {
		a.params = make(map[string]Object)
	}
	if _, ok := a.params[name]; !ok {
		a.paramNames = append(a.paramNames, name)
	}
	a.params[name] = obj
}

// ReferenceParameter returns the object bound to name, or nil.
func (a *animationBase) ReferenceParameter(name string) Object { return a.params[name] }

// ReferenceParameterNames returns the bound names in binding order.
func (a *animationBase) ReferenceParameterNames() []string { return slices.Clone(a.paramNames) }

// ClearAllParameters removes every reference parameter.
func (a *animationBase) ClearAllParameters() {
	a.paramNames = a.paramNames[:0]
	clear(a.params)
}

func (a *animationBase) copyInto(dst *animationBase) {
	dst.comment = a.comment
	dst.target = a.target
	dst.paramNames = slices.Clone(a.paramNames)
	if len(a.params) > 0 {
		dst.params = make(map[string]Object, len(a.params))
		for k, v := range a.params {
			dst.params[k] = v
		}
	}
}

// KeyFrame is one key frame of a KeyFrameAnimation. A key frame with a
// non-empty Expression is an expression key frame.
type KeyFrame[T any] struct {
	Progress   float64
	Value      T
	Expression string
	Easing     EasingFunction
}

// IsExpression reports whether k is an expression key frame.
func (k KeyFrame[T]) IsExpression() bool { return k.Expression != "" }

// KeyFrameAnimation interpolates a value of type T between key frames.
// Key frames are kept sorted by progress.
type KeyFrameAnimation[T any] struct {
	animationBase
	duration time.Duration
	frames   []KeyFrame[T]
	// lerp is nil for value types that step instead of interpolating.
	lerp func(a, b T, t float64) T
}

func newKeyFrameAnimation[T any](c *Compositor, typeName string, lerp func(a, b T, t float64) T) *KeyFrameAnimation[T] {
	a := &KeyFrameAnimation[T]{lerp: lerp}
	a.init(c, a, typeName)
	return a
}

// Duration returns the length of one iteration.
func (a *KeyFrameAnimation[T]) Duration() time.Duration { return a.duration }

// SetDuration sets the length of one iteration.
func (a *KeyFrameAnimation[T]) SetDuration(d time.Duration) { a.duration = d }

// InsertKeyFrame inserts a value key frame. A key frame already at progress
// is replaced. Panics if progress is outside [0, 1].
func (a *KeyFrameAnimation[T]) InsertKeyFrame(progress float64, value T, easing EasingFunction) {
	a.insert(KeyFrame[T]{Progress: progress, Value: value, Easing: easing})
}

// InsertExpressionKeyFrame inserts an expression key frame. A key frame
// already at progress is replaced. Panics if progress is outside [0, 1].
func (a *KeyFrameAnimation[T]) InsertExpressionKeyFrame(progress float64, expression string, easing EasingFunction) {
	a.insert(KeyFrame[T]{Progress: progress, Expression: expression, Easing: easing})
}

// KeyFrames returns a copy of the key frames in progress order.
func (a *KeyFrameAnimation[T]) KeyFrames() []KeyFrame[T] { return slices.Clone(a.frames) }

func (a *KeyFrameAnimation[T]) insert(k KeyFrame[T]) {
	if !(k.Progress >= 0 && k.Progress <= 1) {
		panic("live: key frame progress out of range")
	}
	i := sort.Search(len(a.frames), func(i int) bool { return a.frames[i].Progress >= k.Progress })
	if i < len(a.frames) && a.frames[i].Progress == k.Progress {
		a.frames[i] = k
		return
	}
	a.frames = slices.Insert(a.frames, i, k)
}

func (a *KeyFrameAnimation[T]) snapshot() Animation {
	s := &KeyFrameAnimation[T]{}
	a.cloneInto(s, s)
	return s
}

func (a *KeyFrameAnimation[T]) cloneInto(dst *KeyFrameAnimation[T], self Animation) {
	dst.duration = a.duration
	dst.frames = slices.Clone(a.frames)
	dst.lerp = a.lerp
	dst.init(a.comp, self, a.typeName)
	a.copyInto(&dst.animationBase)
}

// ColorKeyFrameAnimation interpolates colors. Colors are always
// interpolated in RGB; InterpolationColorSpace is recorded for renderers.
type ColorKeyFrameAnimation struct {
	KeyFrameAnimation[vmath.Color]
	space ColorSpace
}

// InterpolationColorSpace returns the requested interpolation space.
func (a *ColorKeyFrameAnimation) InterpolationColorSpace() ColorSpace { return a.space }

// SetInterpolationColorSpace sets the requested interpolation space.
func (a *ColorKeyFrameAnimation) SetInterpolationColorSpace(s ColorSpace) { a.space = s }

func (a *ColorKeyFrameAnimation) snapshot() Animation {
	s := &ColorKeyFrameAnimation{space: a.space}
	a.cloneInto(&s.KeyFrameAnimation, s)
	return s
}

// Key frame animation types by value.
type (
	BooleanKeyFrameAnimation = KeyFrameAnimation[bool]
	ScalarKeyFrameAnimation  = KeyFrameAnimation[float64]
	Vector2KeyFrameAnimation = KeyFrameAnimation[vmath.Vec2]
	Vector3KeyFrameAnimation = KeyFrameAnimation[vmath.Vec3]
	Vector4KeyFrameAnimation = KeyFrameAnimation[vmath.Vec4]
	PathKeyFrameAnimation    = KeyFrameAnimation[*Path]
)

func (a *KeyFrameAnimation[T]) accepts(v any) bool {
	_, ok := v.(T)
	return ok
}

func (a *KeyFrameAnimation[T]) keyFramed() bool        { return true }
func (a *KeyFrameAnimation[T]) length() time.Duration { return a.duration }

// sample returns the value at progress. ok is false where an expression
// key frame governs the value, since expressions are not evaluated.
func (a *KeyFrameAnimation[T]) sample(progress float64) (any, bool) {
	v, ok := a.valueAt(progress)
	return v, ok
}

func (a *KeyFrameAnimation[T]) valueAt(p float64) (T, bool) {
	var zero T
	n := len(a.frames)
	if n == 0 {
		return zero, false
	}
	i := sort.Search(n, func(i int) bool { return a.frames[i].Progress >= p })
	switch {
	case i == n:
		return frameValue(a.frames[n-1])
	case i == 0 || a.frames[i].Progress == p:
		return frameValue(a.frames[i])
	}
	prev, next := a.frames[i-1], a.frames[i]
	if prev.IsExpression() || next.IsExpression() {
		return frameValue(prev)
	}
	t := (p - prev.Progress) / (next.Progress - prev.Progress)
	t = easeWith(next.Easing, t)
	if a.lerp == nil {
		if t >= 1 {
			return next.Value, true
		}
		return prev.Value, true
	}
	return a.lerp(prev.Value, next.Value, t), true
}

func frameValue[T any](k KeyFrame[T]) (T, bool) {
	if k.IsExpression() {
		var zero T
		return zero, false
	}
	return k.Value, true
}

// ExpressionAnimation binds a property to an expression. Expressions are
// recorded with their reference parameters but not evaluated.
type ExpressionAnimation struct {
	animationBase
	expression string
}

// Expression returns the expression text.
func (a *ExpressionAnimation) Expression() string { return a.expression }

// SetExpression sets the expression text.
func (a *ExpressionAnimation) SetExpression(s string) { a.expression = s }

func (a *ExpressionAnimation) snapshot() Animation {
	s := &ExpressionAnimation{expression: a.expression}
	s.init(a.comp, s, a.typeName)
	a.copyInto(&s.animationBase)
	return s
}

func (a *ExpressionAnimation) accepts(any) bool           { return true }
func (a *ExpressionAnimation) keyFramed() bool            { return false }
func (a *ExpressionAnimation) length() time.Duration      { return 0 }
func (a *ExpressionAnimation) sample(float64) (any, bool) { return nil, false }

// AnimationController is the implicit controller of a running key frame
// animation.
type AnimationController struct {
	object
	paused bool
}

// Pause freezes the animation at the controller's Progress.
func (c *AnimationController) Pause() { c.paused = true }

// Resume continues a paused animation.
func (c *AnimationController) Resume() { c.paused = false }

// IsPaused reports whether the controller is paused.
func (c *AnimationController) IsPaused() bool { return c.paused }

// Progress is the position of the animation in [0, 1]. Animatable.
func (c *AnimationController) Progress() float64 { return get[float64](&c.object, "Progress") }

// SetProgress seeks the animation.
func (c *AnimationController) SetProgress(p float64) { c.setStatic("Progress", p) }

// PlaybackRate scales elapsed time. Animatable.
func (c *AnimationController) PlaybackRate() float64 { return get[float64](&c.object, "PlaybackRate") }

// SetPlaybackRate sets the playback rate.
func (c *AnimationController) SetPlaybackRate(r float64) { c.setStatic("PlaybackRate", r) }

// --- Playback ---

// playback is one animation running on one property, driven by
// Compositor.Update.
type playback struct {
	target     *object
	property   string
	anim       Animation
	controller *AnimationController
	tween      *gween.Tween
	done       bool
}

func (p *playback) start() {
	if d := p.anim.length(); d > 0 {
		p.tween = gween.New(0, 1, float32(d.Seconds()), ease.Linear)
	}
}

func (p *playback) update(dt float64) {
	if p.done {
		return
	}
	if p.target.disposed {
		p.done = true
		return
	}
	if !p.anim.keyFramed() {
		return
	}

	var progress float64
	finished := false
	switch {
	case p.controller.IsPaused():
		progress = clamp01(p.controller.Progress())
	case p.tween == nil:
		progress, finished = 1, true
	default:
		v, fin := p.tween.Update(float32(dt * p.controller.PlaybackRate()))
		progress, finished = float64(v), fin
		p.controller.write("Progress", progress)
	}

	if v, ok := p.anim.sample(progress); ok {
		p.target.write(p.property, v)
	}
	if finished {
		p.done = true
	}
}

func clamp01(x float64) float64 {
	if math.IsNaN(x) {
		return 0
	}
	return math.Max(0, math.Min(1, x))
}

package grove

import (
	"errors"
	"testing"
	"time"

	"github.com/phanxgames/grove/desc"
	"github.com/phanxgames/grove/live"
	"github.com/phanxgames/grove/vmath"
)

func expression(text string, params ...desc.ReferenceParameter) *desc.ExpressionAnimation {
	return &desc.ExpressionAnimation{
		AnimationBase: desc.AnimationBase{ReferenceParameters: params},
		Expression:    text,
	}
}

func ramp(from, to float64) *desc.ScalarKeyFrameAnimation {
	return desc.NewScalarAnimation(time.Second,
		desc.KeyFrame[float64]{Progress: 0, Value: from},
		desc.KeyFrame[float64]{Progress: 1, Value: to},
	)
}

func TestBackToBackExpressions(t *testing.T) {
	a := desc.NewPropertySet()
	a.Comment = "a"
	b := desc.NewPropertySet()
	b.Comment = "b"

	v := &desc.SpriteVisual{}
	v.Animators = []desc.Animator{
		{Property: "Opacity", Animation: expression("a.X", desc.ReferenceParameter{Name: "a", Node: a})},
		{Property: "RotationAngleInDegrees", Animation: expression("b.Y", desc.ReferenceParameter{Name: "b", Node: b})},
	}
	res := mustMaterialize(t, v, nil)

	first, ok := res.Root.AnimationOn("Opacity").(*live.ExpressionAnimation)
	if !ok {
		t.Fatal("first expression not started")
	}
	second := res.Root.AnimationOn("RotationAngleInDegrees").(*live.ExpressionAnimation)
	if first == second {
		t.Fatal("started animations should be independent snapshots")
	}
	if first.Expression() != "a.X" {
		t.Errorf("first expression = %q, want a.X", first.Expression())
	}
	if names := first.ReferenceParameterNames(); len(names) != 1 || names[0] != "a" {
		t.Errorf("first parameters = %v, want [a]", names)
	}
	if p := first.ReferenceParameter("a"); p == nil || p.Comment() != "a" {
		t.Error("first expression lost its parameter")
	}
	if first.ReferenceParameter("b") != nil {
		t.Error("second expression leaked a parameter into the first")
	}
	if second.Expression() != "b.Y" || second.ReferenceParameter("b") == nil {
		t.Error("second expression not configured")
	}
	if got := res.Stats.Created[desc.KindExpressionAnimation]; got != 1 {
		t.Errorf("Created[ExpressionAnimation] = %d, want 1", got)
	}
}

func TestExpressionSharedAcrossProperties(t *testing.T) {
	e := expression("this.Target.Size.X")
	v := &desc.SpriteVisual{}
	v.Animators = []desc.Animator{
		{Property: "Opacity", Animation: e},
		{Property: "RotationAngleInDegrees", Animation: e},
	}
	res := mustMaterialize(t, v, nil)
	for _, p := range []string{"Opacity", "RotationAngleInDegrees"} {
		a, ok := res.Root.AnimationOn(p).(*live.ExpressionAnimation)
		if !ok || a.Expression() != "this.Target.Size.X" {
			t.Errorf("%s: expression not started", p)
		}
	}
}

func TestExpressionTargetReset(t *testing.T) {
	withTarget := expression("1")
	withTarget.Target = "Opacity"
	v := &desc.SpriteVisual{}
	v.Animators = []desc.Animator{
		{Property: "Opacity", Animation: withTarget},
		{Property: "RotationAngleInDegrees", Animation: expression("2")},
	}
	res := mustMaterialize(t, v, nil)
	if got := res.Root.AnimationOn("Opacity").Target(); got != "Opacity" {
		t.Errorf("first Target = %q, want Opacity", got)
	}
	if got := res.Root.AnimationOn("RotationAngleInDegrees").Target(); got != "" {
		t.Errorf("second Target = %q, want empty", got)
	}
}

func TestNestedExpressionInParameter(t *testing.T) {
	inner := &desc.SpriteVisual{VisualBase: desc.VisualBase{Object: desc.Object{Comment: "inner"}}}
	inner.Animators = []desc.Animator{{Property: "Opacity", Animation: expression("0.5")}}

	outer := &desc.SpriteVisual{VisualBase: desc.VisualBase{Object: desc.Object{Comment: "outer"}}}
	outer.Animators = []desc.Animator{{
		Property:  "Opacity",
		Animation: expression("other.Opacity", desc.ReferenceParameter{Name: "other", Node: inner}),
	}}

	res := mustMaterialize(t, container(outer, inner), nil)
	lo := child(t, res.Root, 0)
	li := child(t, res.Root, 1)

	ie := li.AnimationOn("Opacity").(*live.ExpressionAnimation)
	if ie.Expression() != "0.5" || len(ie.ReferenceParameterNames()) != 0 {
		t.Errorf("inner expression = %q %v, want 0.5 []", ie.Expression(), ie.ReferenceParameterNames())
	}
	oe := lo.AnimationOn("Opacity").(*live.ExpressionAnimation)
	if oe.Expression() != "other.Opacity" {
		t.Errorf("outer expression = %q, want other.Opacity", oe.Expression())
	}
	if oe.ReferenceParameter("other") != live.Object(li) {
		t.Error("outer parameter should be the inner visual")
	}
}

func TestExpressionAsReferenceParameter(t *testing.T) {
	v := &desc.SpriteVisual{}
	v.Animators = []desc.Animator{{
		Property:  "Opacity",
		Animation: expression("e", desc.ReferenceParameter{Name: "e", Node: expression("1")}),
	}}
	materializeErr(t, v, ErrInvalidNode)
}

func TestReferenceParameterNil(t *testing.T) {
	v := &desc.SpriteVisual{}
	v.Animators = []desc.Animator{{
		Property:  "Opacity",
		Animation: expression("x", desc.ReferenceParameter{Name: "x"}),
	}}
	materializeErr(t, v, ErrInvalidNode)
}

func TestKeyFramesSorted(t *testing.T) {
	ease := &desc.LinearEasing{}
	anim := desc.NewScalarAnimation(2*time.Second,
		desc.KeyFrame[float64]{Progress: 1, Value: 10},
		desc.KeyFrame[float64]{Progress: 0, Value: 0},
		desc.KeyFrame[float64]{Progress: 0.5, Expression: "this.StartingValue", Easing: ease},
	)
	v := &desc.SpriteVisual{}
	v.Animators = []desc.Animator{{Property: "Opacity", Animation: anim}}

	res := mustMaterialize(t, v, nil)
	a := res.Root.AnimationOn("Opacity").(*live.ScalarKeyFrameAnimation)
	frames := a.KeyFrames()
	if len(frames) != 3 {
		t.Fatalf("len(KeyFrames) = %d, want 3", len(frames))
	}
	for i, want := range []float64{0, 0.5, 1} {
		if frames[i].Progress != want {
			t.Errorf("frame %d progress = %v, want %v", i, frames[i].Progress, want)
		}
	}
	if frames[1].Expression != "this.StartingValue" || frames[1].Easing == nil {
		t.Error("expression key frame not copied")
	}
	if a.Duration() != 2*time.Second {
		t.Errorf("Duration = %v, want 2s", a.Duration())
	}
}

func TestKeyFrameProgressOutOfRange(t *testing.T) {
	v := &desc.SpriteVisual{}
	v.Animators = []desc.Animator{{Property: "Opacity", Animation: ramp(0, 1)}}
	v.Animators[0].Animation.(*desc.ScalarKeyFrameAnimation).KeyFrames[1].Progress = 1.5
	materializeErr(t, v, ErrInvalidNode)
}

func TestAnimationTypeMismatch(t *testing.T) {
	v := &desc.SpriteVisual{}
	v.Animators = []desc.Animator{{Property: "Size", Animation: ramp(0, 1)}}
	_, err := Materialize(live.NewCompositor(), v, nil)
	if !errors.Is(err, ErrInvalidNode) || !errors.Is(err, live.ErrTypeMismatch) {
		t.Errorf("err = %v, want ErrInvalidNode wrapping live.ErrTypeMismatch", err)
	}
}

func TestAnimationUnknownProperty(t *testing.T) {
	v := &desc.SpriteVisual{}
	v.Animators = []desc.Animator{{Property: "Wobble", Animation: ramp(0, 1)}}
	_, err := Materialize(live.NewCompositor(), v, nil)
	if !errors.Is(err, live.ErrUnknownProperty) {
		t.Errorf("err = %v, want live.ErrUnknownProperty", err)
	}
}

func TestAnimatorWithoutAnimation(t *testing.T) {
	v := &desc.SpriteVisual{}
	v.Animators = []desc.Animator{{Property: "Opacity"}}
	materializeErr(t, v, ErrInvalidNode)
}

func TestSharedAnimationStartedTwice(t *testing.T) {
	anim := ramp(0, 1)
	a := &desc.SpriteVisual{}
	a.Animators = []desc.Animator{{Property: "Opacity", Animation: anim}}
	b := &desc.SpriteVisual{}
	b.Animators = []desc.Animator{{Property: "Opacity", Animation: anim}}

	res := mustMaterialize(t, container(a, b), nil)
	if res.Stats.Created[desc.KindScalarKeyFrameAnimation] != 1 {
		t.Errorf("Created[ScalarKeyFrameAnimation] = %d, want 1", res.Stats.Created[desc.KindScalarKeyFrameAnimation])
	}
	la := child(t, res.Root, 0).AnimationOn("Opacity")
	lb := child(t, res.Root, 1).AnimationOn("Opacity")
	if la == nil || lb == nil || la == lb {
		t.Error("each target should run its own snapshot")
	}
}

func TestChannelAnimation(t *testing.T) {
	v := &desc.SpriteVisual{VisualBase: desc.VisualBase{Offset: desc.Ptr(vmath.Vec3{X: 1, Y: 2})}}
	v.Animators = []desc.Animator{{Property: "Offset.X", Animation: ramp(1, 5)}}
	res := mustMaterialize(t, v, nil)

	res.Root.Compositor().Update(1)
	if got := res.Root.Offset(); got != (vmath.Vec3{X: 5, Y: 2}) {
		t.Errorf("Offset = %v, want {5 2 0}", got)
	}
}

func TestPathAnimation(t *testing.T) {
	small := &desc.Path{Source: &desc.CanvasEllipse{RadiusX: 1, RadiusY: 1}}
	big := &desc.Path{Source: &desc.CanvasEllipse{RadiusX: 2, RadiusY: 2}}
	g := &desc.PathGeometry{Path: small}
	g.Animators = []desc.Animator{{
		Property: "Path",
		Animation: &desc.PathKeyFrameAnimation{KeyFrameAnimation: desc.KeyFrameAnimation[*desc.Path]{
			Duration: time.Second,
			KeyFrames: []desc.KeyFrame[*desc.Path]{
				{Progress: 0, Value: small},
				{Progress: 1, Value: big},
			},
		}},
	}}
	root := &desc.ShapeVisual{Shapes: []desc.Shape{&desc.SpriteShape{Geometry: g}}}

	res := mustMaterialize(t, root, nil)
	lg := res.Root.(*live.ShapeVisual).Shapes()[0].(*live.SpriteShape).Geometry().(*live.PathGeometry)
	a := lg.AnimationOn("Path").(*live.PathKeyFrameAnimation)
	frames := a.KeyFrames()
	if frames[0].Value != lg.Path() {
		t.Error("key frame path and static path should be one live path")
	}
	if frames[1].Value == frames[0].Value {
		t.Error("distinct paths merged")
	}
}

func TestColorAnimationSpace(t *testing.T) {
	anim := desc.NewColorAnimation(time.Second,
		desc.KeyFrame[vmath.Color]{Progress: 0, Value: vmath.ColorWhite},
		desc.KeyFrame[vmath.Color]{Progress: 1, Value: vmath.ColorBlack},
	)
	anim.InterpolationColorSpace = desc.Ptr(desc.ColorSpaceHslLinear)
	b := &desc.ColorBrush{}
	b.Animators = []desc.Animator{{Property: "Color", Animation: anim}}

	res := mustMaterialize(t, &desc.SpriteVisual{Brush: b}, nil)
	lb := res.Root.(*live.SpriteVisual).Brush()
	la := lb.AnimationOn("Color").(*live.ColorKeyFrameAnimation)
	if la.InterpolationColorSpace() != live.ColorSpaceHslLinear {
		t.Errorf("InterpolationColorSpace = %v, want HslLinear", la.InterpolationColorSpace())
	}
}

// --- Controllers ---

func TestPausedController(t *testing.T) {
	v := &desc.SpriteVisual{}
	v.Animators = []desc.Animator{{
		Property:   "Opacity",
		Animation:  ramp(0.2, 1),
		Controller: &desc.AnimationController{Target: v, TargetProperty: "Opacity", IsPaused: true},
	}}
	res := mustMaterialize(t, v, nil)

	ctl := res.Root.TryGetAnimationController("Opacity")
	if ctl == nil {
		t.Fatal("no controller")
	}
	if !ctl.IsPaused() {
		t.Error("controller should be paused")
	}
	res.Root.Compositor().Update(0.5)
	if got := res.Root.Opacity(); got != 0.2 {
		t.Errorf("Opacity = %v, want 0.2 while paused", got)
	}
	if res.Stats.Created[desc.KindAnimationController] != 1 {
		t.Errorf("Created[AnimationController] = %d, want 1", res.Stats.Created[desc.KindAnimationController])
	}
}

func TestControllerOnOtherObject(t *testing.T) {
	target := &desc.SpriteVisual{VisualBase: desc.VisualBase{Object: desc.Object{Comment: "target"}}}
	target.Animators = []desc.Animator{{Property: "Opacity", Animation: ramp(0, 1)}}
	ctl := &desc.AnimationController{Target: target, TargetProperty: "Opacity", IsPaused: true}

	driver := &desc.SpriteVisual{}
	driver.Animators = []desc.Animator{{Property: "Opacity", Animation: ramp(0, 1), Controller: ctl}}

	res := mustMaterialize(t, container(target, driver), nil)
	lt := child(t, res.Root, 0)
	if c := lt.TryGetAnimationController("Opacity"); c == nil || !c.IsPaused() {
		t.Error("target's controller should be paused")
	}
	if c := child(t, res.Root, 1).TryGetAnimationController("Opacity"); c == nil || c.IsPaused() {
		t.Error("driver's own controller should keep running")
	}
}

func TestCustomControllerUnsupported(t *testing.T) {
	v := &desc.SpriteVisual{}
	v.Animators = []desc.Animator{{
		Property:   "Opacity",
		Animation:  ramp(0, 1),
		Controller: &desc.AnimationController{Object: desc.Object{Comment: "custom"}},
	}}
	me := materializeErr(t, v, ErrUnsupported)
	if me.Kind != desc.KindAnimationController || me.Comment != "custom" {
		t.Errorf("error names %s %q, want the controller", me.Kind, me.Comment)
	}
}

func TestControllerWithoutAnimation(t *testing.T) {
	v := &desc.SpriteVisual{}
	v.Animators = []desc.Animator{{
		Property:   "Opacity",
		Animation:  ramp(0, 1),
		Controller: &desc.AnimationController{Target: v, TargetProperty: "Offset"},
	}}
	materializeErr(t, v, ErrInvariant)
}

func TestControllerOnExpression(t *testing.T) {
	v := &desc.SpriteVisual{}
	v.Animators = []desc.Animator{{
		Property:   "Opacity",
		Animation:  expression("1"),
		Controller: &desc.AnimationController{Target: v, TargetProperty: "Opacity"},
	}}
	materializeErr(t, v, ErrInvariant)
}

package grove

import (
	"errors"
	"testing"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/phanxgames/grove/desc"
	"github.com/phanxgames/grove/internal/scenes"
	"github.com/phanxgames/grove/live"
	"github.com/phanxgames/grove/vmath"
)

// --- Helpers ---

func mustMaterialize(t *testing.T, root desc.Visual, cfg *Config) *Result {
	t.Helper()
	res, err := Materialize(live.NewCompositor(), root, cfg)
	if err != nil {
		t.Fatalf("Materialize: %v", err)
	}
	return res
}

// materializeErr materializes root and checks that it fails with sentinel.
func materializeErr(t *testing.T, root desc.Visual, sentinel error) *MaterializeError {
	t.Helper()
	res, err := Materialize(live.NewCompositor(), root, nil)
	if err == nil {
		t.Fatalf("Materialize succeeded, want %v", sentinel)
	}
	if res != nil {
		t.Error("result should be nil on error")
	}
	if !errors.Is(err, sentinel) {
		t.Fatalf("err = %v, want %v", err, sentinel)
	}
	var me *MaterializeError
	if !errors.As(err, &me) {
		t.Fatalf("err = %T, want *MaterializeError", err)
	}
	return me
}

func container(children ...desc.Visual) *desc.ContainerVisual {
	return &desc.ContainerVisual{VisualBase: desc.VisualBase{Children: children}}
}

func child(t *testing.T, v live.Visual, i int) live.Visual {
	t.Helper()
	kids := v.Children()
	if i >= len(kids) {
		t.Fatalf("visual has %d children, want index %d", len(kids), i)
	}
	return kids[i]
}

// --- Sharing ---

func TestSharedBrushMaterializedOnce(t *testing.T) {
	res := mustMaterialize(t, scenes.Shared(), nil)

	left, ok := child(t, res.Root, 0).(*live.SpriteVisual)
	if !ok {
		t.Fatalf("child 0 = %T, want *live.SpriteVisual", child(t, res.Root, 0))
	}
	right := child(t, res.Root, 1).(*live.SpriteVisual)
	if left == right {
		t.Fatal("distinct sprite nodes produced one live visual")
	}
	if left.Brush() == nil || left.Brush() != right.Brush() {
		t.Error("shared brush node should produce one live brush")
	}
	if got := res.Stats.Created[desc.KindColorBrush]; got != 1 {
		t.Errorf("Created[ColorBrush] = %d, want 1", got)
	}
	if res.Stats.CacheHits < 1 {
		t.Errorf("CacheHits = %d, want >= 1", res.Stats.CacheHits)
	}
	if got := left.Brush().Comment(); got != "fill" {
		t.Errorf("brush comment = %q, want fill", got)
	}
}

func TestEqualNodesStayDistinct(t *testing.T) {
	a := &desc.ColorBrush{Color: desc.Ptr(vmath.ColorWhite)}
	b := &desc.ColorBrush{Color: desc.Ptr(vmath.ColorWhite)}
	root := container(&desc.SpriteVisual{Brush: a}, &desc.SpriteVisual{Brush: b})

	res := mustMaterialize(t, root, nil)
	first := child(t, res.Root, 0).(*live.SpriteVisual).Brush()
	second := child(t, res.Root, 1).(*live.SpriteVisual).Brush()
	if first == second {
		t.Error("equal but distinct nodes should not share a live object")
	}
}

func TestIndependentMaterializations(t *testing.T) {
	root := scenes.Shared()
	c := live.NewCompositor()

	r1, err := Materialize(c, root, nil)
	if err != nil {
		t.Fatal(err)
	}
	r2, err := Materialize(c, root, nil)
	if err != nil {
		t.Fatal(err)
	}
	if r1.Root == r2.Root {
		t.Fatal("two materializations returned the same root")
	}
	b1 := child(t, r1.Root, 0).(*live.SpriteVisual).Brush()
	b2 := child(t, r2.Root, 0).(*live.SpriteVisual).Brush()
	if b1 == b2 {
		t.Error("live objects leaked between materializations")
	}
	if r2.Stats.Created[desc.KindColorBrush] != 1 {
		t.Error("second materialization reused the first one's cache")
	}
}

func TestCreatedMatchesGraph(t *testing.T) {
	root := scenes.Showcase()
	res := mustMaterialize(t, root, &Config{Resolver: imageResolver(map[desc.ResourceRef]live.Surface{
		scenes.LogoRef: testImage(8, 8),
	})})

	g := desc.Inspect(root)
	for _, k := range desc.AllKinds() {
		if got, want := res.Stats.Created[k], g.ByKind[k]; got != want {
			t.Errorf("Created[%s] = %d, want %d", k, got, want)
		}
	}
	if res.Stats.Total() != len(g.Nodes) {
		t.Errorf("Total = %d, want %d", res.Stats.Total(), len(g.Nodes))
	}
	if res.Stats.Unresolved != 0 {
		t.Errorf("Unresolved = %d, want 0", res.Stats.Unresolved)
	}
}

func TestShowcaseWiring(t *testing.T) {
	res := mustMaterialize(t, scenes.Showcase(), nil)

	if got := res.Root.Comment(); got != "showcase" {
		t.Errorf("root comment = %q, want showcase", got)
	}
	if len(res.Root.Children()) != 4 {
		t.Fatalf("root has %d children, want 4", len(res.Root.Children()))
	}
	layer := child(t, res.Root, 0).(*live.LayerVisual)
	mirror := child(t, res.Root, 1).(*live.SpriteVisual)
	shapes := child(t, res.Root, 2).(*live.ShapeVisual)
	sprite := child(t, res.Root, 3).(*live.SpriteVisual)

	surface := mirror.Brush().(*live.SurfaceBrush).Surface().(*live.VisualSurface)
	if surface.SourceVisual() != live.Visual(layer) {
		t.Error("visual surface should render the layer visual")
	}
	if _, ok := mirror.Clip().(*live.InsetClip); !ok {
		t.Errorf("mirror clip = %T, want *live.InsetClip", mirror.Clip())
	}
	if shapes.ViewBox() == nil {
		t.Error("shape visual lost its view box")
	}

	inner := shapes.Shapes()[0].(*live.ContainerShape).Shapes()[0].(*live.SpriteShape)
	masked := inner.FillBrush().(*live.MaskBrush)
	if sprite.Shadow().Mask() != live.Brush(masked) {
		t.Error("shadow mask and shape fill should share one mask brush")
	}
	ring := shapes.Shapes()[1].(*live.SpriteShape)
	if masked.Source() != ring.StrokeBrush() {
		t.Error("mask source and ring stroke should share one color brush")
	}

	if res.Properties == nil {
		t.Fatal("root property set not returned")
	}
	if v, ok := res.Properties.TryGetScalar("Tilt"); !ok || v != 15 {
		t.Errorf("Tilt = %v, %v, want 15, true", v, ok)
	}
	expr, ok := sprite.AnimationOn("RotationAngleInDegrees").(*live.ExpressionAnimation)
	if !ok {
		t.Fatal("rotation expression not started")
	}
	if expr.ReferenceParameter("theme") != live.Object(res.Properties) {
		t.Error("expression should reference the root property set")
	}
}

func TestConcurrentMaterializations(t *testing.T) {
	root := scenes.Showcase()
	want := desc.Inspect(root).ByKind

	var g errgroup.Group
	results := make([]*Result, 8)
	for i := range results {
		g.Go(func() error {
			res, err := Materialize(live.NewCompositor(), root, nil)
			results[i] = res
			return err
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
	seen := make(map[live.Visual]bool)
	for _, res := range results {
		if seen[res.Root] {
			t.Error("concurrent materializations shared a root")
		}
		seen[res.Root] = true
		for k, n := range want {
			if res.Stats.Created[k] != n {
				t.Errorf("Created[%s] = %d, want %d", k, res.Stats.Created[k], n)
			}
		}
	}
}

// --- Property sets ---

func TestSelfReferencingPropertySet(t *testing.T) {
	ps := desc.NewPropertySet()
	ps.Scalars = map[string]float64{"Progress": 0}
	ps.Animators = []desc.Animator{{
		Property: "Progress",
		Animation: desc.NewScalarAnimation(time.Second,
			desc.KeyFrame[float64]{Progress: 0, Value: 0},
			desc.KeyFrame[float64]{Progress: 1, Value: 1},
		),
	}}
	root := &desc.ContainerVisual{VisualBase: desc.VisualBase{Object: desc.Object{Properties: ps}}}

	res := mustMaterialize(t, root, nil)
	if res.Properties == nil {
		t.Fatal("Properties = nil")
	}
	if res.Properties.Owner() != nil {
		t.Error("unowned set should be standalone")
	}
	if res.Stats.Created[desc.KindPropertySet] != 1 {
		t.Errorf("Created[PropertySet] = %d, want 1", res.Stats.Created[desc.KindPropertySet])
	}
	if res.Properties.AnimationOn("Progress") == nil {
		t.Error("animation on property set entry not started")
	}
}

func TestOwnedPropertySet(t *testing.T) {
	v := &desc.SpriteVisual{}
	ps := desc.NewOwnedPropertySet(v)
	ps.Scalars = map[string]float64{"Glow": 0.25}
	ps.Vector2s = map[string]vmath.Vec2{"Anchor": {X: 1, Y: 2}}
	ps.Animators = []desc.Animator{{
		Property: "Glow",
		Animation: desc.NewScalarAnimation(time.Second,
			desc.KeyFrame[float64]{Progress: 0, Value: 0.25},
			desc.KeyFrame[float64]{Progress: 1, Value: 1},
		),
	}}
	v.Properties = ps

	res := mustMaterialize(t, v, nil)
	bag := res.Root.Properties()
	if res.Properties != bag {
		t.Fatal("owned property set should be the owner's own bag")
	}
	if g, ok := bag.TryGetScalar("Glow"); !ok || g != 0.25 {
		t.Errorf("Glow = %v, %v, want 0.25, true", g, ok)
	}
	if keys := bag.Keys(); len(keys) != 2 || keys[0] != "Glow" || keys[1] != "Anchor" {
		t.Errorf("Keys = %v, want [Glow Anchor]", keys)
	}
	if bag.AnimationOn("Glow") == nil {
		t.Error("animation on owned entry not started")
	}
}

func TestOwnedPropertySetReachedBeforeOwner(t *testing.T) {
	later := &desc.SpriteVisual{VisualBase: desc.VisualBase{Object: desc.Object{Comment: "later"}}}
	ps := desc.NewOwnedPropertySet(later)
	ps.Scalars = map[string]float64{"Level": 3}
	later.Properties = ps

	early := &desc.SpriteVisual{}
	early.Animators = []desc.Animator{{
		Property: "Opacity",
		Animation: &desc.ExpressionAnimation{
			AnimationBase: desc.AnimationBase{
				ReferenceParameters: []desc.ReferenceParameter{{Name: "p", Node: ps}},
			},
			Expression: "p.Level / 3",
		},
	}}

	res := mustMaterialize(t, container(early, later), nil)
	liveLater := child(t, res.Root, 1)
	if liveLater.Comment() != "later" {
		t.Fatalf("child 1 comment = %q, want later", liveLater.Comment())
	}
	expr := child(t, res.Root, 0).AnimationOn("Opacity").(*live.ExpressionAnimation)
	if expr.ReferenceParameter("p") != live.Object(liveLater.Properties()) {
		t.Error("reference should resolve to the owner's bag")
	}
	if liveLater.Parent() != res.Root {
		t.Error("owner reached by reference should still be placed in the tree")
	}
	if res.Stats.Created[desc.KindSpriteVisual] != 2 {
		t.Errorf("Created[SpriteVisual] = %d, want 2", res.Stats.Created[desc.KindSpriteVisual])
	}
}

// --- Ordering ---

type event struct {
	kind     string
	id       uint64
	property string
}

type recorder struct {
	events []event
}

func (r *recorder) StaticWrite(obj live.Object, property string) {
	r.events = append(r.events, event{"write", obj.ID(), property})
}

func (r *recorder) AnimationStarted(obj live.Object, property string) {
	r.events = append(r.events, event{"start", obj.ID(), property})
}

func TestNoStaticWriteAfterAnimationStart(t *testing.T) {
	animated := map[string]bool{"pulse": true, "showcase": true}
	for _, name := range scenes.Names() {
		t.Run(name, func(t *testing.T) {
			f, _ := scenes.Lookup(name)
			c := live.NewCompositor()
			rec := &recorder{}
			c.SetObserver(rec)
			if _, err := Materialize(c, f(), nil); err != nil {
				t.Fatal(err)
			}

			started := make(map[uint64]string)
			for _, e := range rec.events {
				switch e.kind {
				case "start":
					started[e.id] = e.property
				case "write":
					if p, ok := started[e.id]; ok {
						t.Errorf("object %d: write of %s after %s started", e.id, e.property, p)
					}
				}
			}
			if animated[name] && len(started) == 0 {
				t.Error("no animations started")
			}
			if !animated[name] && len(started) != 0 {
				t.Errorf("started %d animations in a static scene", len(started))
			}
		})
	}
}

func TestEntriesInsertedBeforeAnimations(t *testing.T) {
	ps := desc.NewPropertySet()
	ps.Colors = map[string]vmath.Color{"Tint": vmath.ColorWhite}
	ps.Animators = []desc.Animator{{
		Property: "Tint",
		Animation: desc.NewColorAnimation(time.Second,
			desc.KeyFrame[vmath.Color]{Progress: 0, Value: vmath.ColorWhite},
			desc.KeyFrame[vmath.Color]{Progress: 1, Value: vmath.ColorBlack},
		),
	}}
	root := &desc.ContainerVisual{VisualBase: desc.VisualBase{Object: desc.Object{Properties: ps}}}

	c := live.NewCompositor()
	rec := &recorder{}
	c.SetObserver(rec)
	if _, err := Materialize(c, root, nil); err != nil {
		t.Fatal(err)
	}
	var order []string
	for _, e := range rec.events {
		if e.property == "Tint" {
			order = append(order, e.kind)
		}
	}
	if len(order) != 2 || order[0] != "write" || order[1] != "start" {
		t.Errorf("Tint events = %v, want [write start]", order)
	}
}

// --- Fields ---

func TestUnsetFieldsKeepDefaults(t *testing.T) {
	c := live.NewCompositor()
	rec := &recorder{}
	c.SetObserver(rec)
	res, err := Materialize(c, &desc.SpriteVisual{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(rec.events) != 0 {
		t.Errorf("events = %v, want none", rec.events)
	}
	v := res.Root
	if v.Opacity() != 1 || !v.IsVisible() || v.Scale() != (vmath.Vec3{X: 1, Y: 1, Z: 1}) {
		t.Error("engine defaults were overwritten")
	}
}

func TestStaticFieldsCopied(t *testing.T) {
	root := &desc.SpriteVisual{
		VisualBase: desc.VisualBase{
			Object:     desc.Object{Comment: "hello"},
			BorderMode: desc.Ptr(desc.BorderModeHard),
			Opacity:    desc.Ptr(0.5),
			Size:       desc.Ptr(vmath.Vec2{X: 3, Y: 4}),
			IsVisible:  desc.Ptr(false),
		},
		Brush: &desc.ColorBrush{},
	}
	res := mustMaterialize(t, root, nil)
	v := res.Root.(*live.SpriteVisual)
	if v.Comment() != "hello" {
		t.Errorf("Comment = %q, want hello", v.Comment())
	}
	if v.BorderMode() != live.BorderModeHard {
		t.Errorf("BorderMode = %v, want hard", v.BorderMode())
	}
	if v.Opacity() != 0.5 || v.Size() != (vmath.Vec2{X: 3, Y: 4}) || v.IsVisible() {
		t.Error("static fields not copied")
	}
	if got := v.Brush().(*live.ColorBrush).Color(); got != vmath.ColorTransparent {
		t.Errorf("unset brush color = %v, want transparent", got)
	}
}

func TestGradientBrush(t *testing.T) {
	stop := &desc.ColorGradientStop{Offset: 0.5, Color: vmath.ColorBlack}
	root := &desc.SpriteVisual{Brush: &desc.LinearGradientBrush{
		GradientBase: desc.GradientBase{
			ColorStops:  []*desc.ColorGradientStop{{Offset: 0, Color: vmath.ColorWhite}, stop, stop},
			ExtendMode:  desc.Ptr(desc.GradientExtendModeWrap),
			MappingMode: desc.Ptr(desc.MappingModeAbsolute),
		},
		StartPoint: desc.Ptr(vmath.Vec2{X: 1}),
	}}
	res := mustMaterialize(t, root, nil)
	b := res.Root.(*live.SpriteVisual).Brush().(*live.LinearGradientBrush)
	stops := b.ColorStops()
	if len(stops) != 3 {
		t.Fatalf("len(ColorStops) = %d, want 3", len(stops))
	}
	if stops[1] != stops[2] {
		t.Error("repeated stop node should be one live stop")
	}
	if b.ExtendMode() != live.GradientExtendModeWrap || b.MappingMode() != live.MappingModeAbsolute {
		t.Error("gradient enums not mapped")
	}
	if b.StartPoint() != (vmath.Vec2{X: 1}) {
		t.Errorf("StartPoint = %v", b.StartPoint())
	}
}

func TestEffectBrushSources(t *testing.T) {
	blur := &desc.GaussianBlurEffect{BlurAmount: 2, Source: desc.EffectSource{Name: "in"}}
	src := &desc.ColorBrush{}
	a := &desc.EffectBrush{Effect: blur, Sources: map[string]desc.Brush{"in": src}}
	b := &desc.EffectBrush{Effect: blur, Sources: map[string]desc.Brush{"in": src}}
	res := mustMaterialize(t, container(&desc.SpriteVisual{Brush: a}, &desc.SpriteVisual{Brush: b}), nil)

	la := child(t, res.Root, 0).(*live.SpriteVisual).Brush().(*live.EffectBrush)
	lb := child(t, res.Root, 1).(*live.SpriteVisual).Brush().(*live.EffectBrush)
	if la == lb {
		t.Fatal("distinct effect brushes merged")
	}
	if la.Effect() != lb.Effect() {
		t.Error("shared effect graph should be converted once")
	}
	if la.SourceParameter("in") == nil || la.SourceParameter("in") != lb.SourceParameter("in") {
		t.Error("effect source brush not bound or not shared")
	}
}

func TestVisualSurfaceMayRenderAncestor(t *testing.T) {
	root := &desc.ContainerVisual{}
	root.Children = []desc.Visual{&desc.SpriteVisual{Brush: &desc.SurfaceBrush{
		Surface: &desc.VisualSurface{SourceVisual: root},
	}}}
	res := mustMaterialize(t, root, nil)
	s := child(t, res.Root, 0).(*live.SpriteVisual).Brush().(*live.SurfaceBrush).Surface().(*live.VisualSurface)
	if s.SourceVisual() != res.Root {
		t.Error("visual surface should render the root")
	}
}

// --- Errors ---

type bogusVisual struct {
	desc.VisualBase
}

func (*bogusVisual) Kind() desc.Kind { return desc.KindContainerVisual }

func TestUnknownNode(t *testing.T) {
	me := materializeErr(t, container(&bogusVisual{}), ErrUnknownNode)
	if me.Kind != desc.KindContainerVisual {
		t.Errorf("Kind = %s", me.Kind)
	}
}

func TestNilArguments(t *testing.T) {
	if _, err := Materialize(nil, &desc.ContainerVisual{}, nil); err == nil {
		t.Error("nil compositor should fail")
	}
	if _, err := Materialize(live.NewCompositor(), nil, nil); !errors.Is(err, ErrInvalidNode) {
		t.Errorf("nil root: err = %v, want ErrInvalidNode", err)
	}
}

func TestSelfContainingVisual(t *testing.T) {
	root := &desc.ContainerVisual{}
	root.Children = []desc.Visual{root}
	materializeErr(t, root, ErrCycle)
}

func TestIndirectCycle(t *testing.T) {
	a := &desc.ContainerVisual{}
	b := &desc.ContainerVisual{VisualBase: desc.VisualBase{Children: []desc.Visual{a}}}
	a.Children = []desc.Visual{b}
	materializeErr(t, a, ErrCycle)
}

func TestVisualPlacedTwice(t *testing.T) {
	leaf := &desc.SpriteVisual{VisualBase: desc.VisualBase{Object: desc.Object{Comment: "leaf"}}}
	me := materializeErr(t, container(leaf, leaf), ErrCycle)
	if me.Comment != "leaf" {
		t.Errorf("Comment = %q, want leaf", me.Comment)
	}
}

func TestNilChild(t *testing.T) {
	materializeErr(t, container(desc.Visual(nil)), ErrInvalidNode)
}

func TestEnumOutOfRange(t *testing.T) {
	root := &desc.SpriteVisual{VisualBase: desc.VisualBase{BorderMode: desc.Ptr(desc.BorderMode(9))}}
	materializeErr(t, root, ErrInvalidNode)
}

func TestMissingEffectSource(t *testing.T) {
	root := &desc.SpriteVisual{Brush: &desc.EffectBrush{
		Effect: &desc.CompositeEffect{Sources: []desc.EffectSource{{Name: "a"}, {Name: "b"}}},
		Sources: map[string]desc.Brush{
			"a": &desc.ColorBrush{},
		},
	}}
	materializeErr(t, root, ErrInvalidNode)
}

func TestExtraEffectSource(t *testing.T) {
	root := &desc.SpriteVisual{Brush: &desc.EffectBrush{
		Effect: &desc.GaussianBlurEffect{Source: desc.EffectSource{Name: "in"}},
		Sources: map[string]desc.Brush{
			"in":    &desc.ColorBrush{},
			"stray": &desc.ColorBrush{},
		},
	}}
	materializeErr(t, root, ErrInvalidNode)
}

func TestStepCountInvalid(t *testing.T) {
	v := &desc.SpriteVisual{}
	v.Animators = []desc.Animator{{
		Property: "Opacity",
		Animation: desc.NewScalarAnimation(time.Second,
			desc.KeyFrame[float64]{Progress: 1, Value: 1, Easing: &desc.StepEasing{StepCount: desc.Ptr(0)}},
		),
	}}
	materializeErr(t, v, ErrInvalidNode)
}

func TestErrorMessageNamesNode(t *testing.T) {
	root := &desc.SpriteVisual{VisualBase: desc.VisualBase{
		Object:     desc.Object{Comment: "bad"},
		BorderMode: desc.Ptr(desc.BorderMode(9)),
	}}
	_, err := Materialize(live.NewCompositor(), root, nil)
	if err == nil {
		t.Fatal("want error")
	}
	want := `materialize SpriteVisual "bad": grove: invalid node: border mode 9 out of range`
	if err.Error() != want {
		t.Errorf("Error() = %q\nwant      %q", err.Error(), want)
	}
}

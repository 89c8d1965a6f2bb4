package grove

import (
	"log/slog"
	"slices"

	"github.com/phanxgames/grove/desc"
	"github.com/phanxgames/grove/live"
	"github.com/phanxgames/grove/vmath"
)

// materializer holds the state of one Materialize call.
type materializer struct {
	comp     *live.Compositor
	resolver ResourceResolver
	cache    *cache
	stats    Stats
	log      *slog.Logger

	// expr is the reusable expression animation. See expression.
	expr *live.ExpressionAnimation
}

func newMaterializer(c *live.Compositor, cfg *Config) *materializer {
	return &materializer{
		comp:     c,
		resolver: cfg.Resolver,
		cache:    newCache(),
		stats:    Stats{Created: make(map[desc.Kind]int)},
		log:      Logger(),
	}
}

// materialize creates the live object for n and populates it in three
// phases: static fields (populate), then property sets, then animations.
// Static writes cancel running animations, so every static value must be
// in place before the first animation starts.
func materialize[T live.Object](m *materializer, n desc.Node, create func() T, populate func(T)) T {
	return getOrCreate(m, n, create, func(obj T) {
		if c := n.Base().Comment; c != "" {
			obj.SetComment(c)
		}
		if populate != nil {
			populate(obj)
		}
		m.properties(n, obj)
		m.animate(n, obj)
	})
}

// structural materializes n as a part of the node being populated. A part
// that is still being populated is a cycle.
func structural[T live.Object](m *materializer, n desc.Node) T {
	if m.cache.active[n] {
		fail(n, ErrCycle, "%s contains itself", n.Kind())
	}
	return cast[T](n, m.node(n))
}

// reference materializes n as the target of a non-owning reference, which
// may point at a node still being populated.
func reference[T live.Object](m *materializer, n desc.Node) T {
	return cast[T](n, m.node(n))
}

// node dispatches on the node type. Every desc type has a case; anything
// else is a version skew between desc and grove.
func (m *materializer) node(n desc.Node) live.Object {
	switch n := n.(type) {
	case *desc.ContainerVisual:
		return materialize(m, n, m.comp.CreateContainerVisual, func(v *live.ContainerVisual) {
			m.visualProps(n, &n.VisualBase, v)
		})
	case *desc.ShapeVisual:
		return materialize(m, n, m.comp.CreateShapeVisual, func(v *live.ShapeVisual) {
			m.visualProps(n, &n.VisualBase, v)
			if n.ViewBox != nil {
				v.SetViewBox(structural[*live.ViewBox](m, n.ViewBox))
			}
			for _, s := range n.Shapes {
				v.AddShape(m.shape(n, s))
			}
		})
	case *desc.SpriteVisual:
		return materialize(m, n, m.comp.CreateSpriteVisual, func(v *live.SpriteVisual) {
			m.visualProps(n, &n.VisualBase, v)
			if n.Brush != nil {
				v.SetBrush(m.brush(n.Brush))
			}
			if n.Shadow != nil {
				v.SetShadow(structural[*live.DropShadow](m, n.Shadow))
			}
		})
	case *desc.LayerVisual:
		return materialize(m, n, m.comp.CreateLayerVisual, func(v *live.LayerVisual) {
			m.visualProps(n, &n.VisualBase, v)
			if n.Shadow != nil {
				v.SetShadow(structural[*live.DropShadow](m, n.Shadow))
			}
		})
	case *desc.DropShadow:
		return materialize(m, n, m.comp.CreateDropShadow, func(s *live.DropShadow) {
			if n.BlurRadius != nil {
				s.SetBlurRadius(*n.BlurRadius)
			}
			if n.Color != nil {
				s.SetColor(*n.Color)
			}
			if n.Mask != nil {
				s.SetMask(m.brush(n.Mask))
			}
			if n.Offset != nil {
				s.SetOffset(*n.Offset)
			}
			if n.Opacity != nil {
				s.SetOpacity(*n.Opacity)
			}
			if n.SourcePolicy != nil {
				s.SetSourcePolicy(mapEnum(n, "source policy", shadowPolicies[:], *n.SourcePolicy))
			}
		})
	case *desc.ViewBox:
		create := func() *live.ViewBox { return m.comp.CreateViewBox(n.Size) }
		return materialize(m, n, create, func(b *live.ViewBox) {
			if n.Offset != nil {
				b.SetOffset(*n.Offset)
			}
		})

	case *desc.ContainerShape:
		return materialize(m, n, m.comp.CreateContainerShape, func(s *live.ContainerShape) {
			m.shapeProps(n, &n.ShapeBase, s)
			for _, child := range n.Shapes {
				s.AddShape(m.shape(n, child))
			}
		})
	case *desc.SpriteShape:
		create := func() *live.SpriteShape { return m.comp.CreateSpriteShape(nil) }
		return materialize(m, n, create, func(s *live.SpriteShape) { m.spriteShape(n, s) })

	case *desc.PathGeometry:
		create := func() *live.PathGeometry { return m.comp.CreatePathGeometry(nil) }
		return materialize(m, n, create, func(g *live.PathGeometry) {
			m.geometryProps(&n.GeometryBase, g)
			if n.Path != nil {
				g.SetPath(m.path(n, n.Path))
			}
		})
	case *desc.EllipseGeometry:
		return materialize(m, n, m.comp.CreateEllipseGeometry, func(g *live.EllipseGeometry) {
			m.geometryProps(&n.GeometryBase, g)
			if n.Center != nil {
				g.SetCenter(*n.Center)
			}
			g.SetRadius(n.Radius)
		})
	case *desc.RectangleGeometry:
		return materialize(m, n, m.comp.CreateRectangleGeometry, func(g *live.RectangleGeometry) {
			m.geometryProps(&n.GeometryBase, g)
			if n.Offset != nil {
				g.SetOffset(*n.Offset)
			}
			g.SetSize(n.Size)
		})
	case *desc.RoundedRectangleGeometry:
		return materialize(m, n, m.comp.CreateRoundedRectangleGeometry, func(g *live.RoundedRectangleGeometry) {
			m.geometryProps(&n.GeometryBase, g)
			if n.Offset != nil {
				g.SetOffset(*n.Offset)
			}
			g.SetSize(n.Size)
			g.SetCornerRadius(n.CornerRadius)
		})

	case *desc.ColorBrush:
		create := func() *live.ColorBrush { return m.comp.CreateColorBrush(vmath.ColorTransparent) }
		return materialize(m, n, create, func(b *live.ColorBrush) {
			if n.Color != nil {
				b.SetColor(*n.Color)
			}
		})
	case *desc.ColorGradientStop:
		create := func() *live.ColorGradientStop { return m.comp.CreateColorGradientStop(n.Offset, n.Color) }
		return materialize(m, n, create, nil)
	case *desc.LinearGradientBrush:
		return materialize(m, n, m.comp.CreateLinearGradientBrush, func(b *live.LinearGradientBrush) {
			m.gradientProps(n, &n.GradientBase, b)
			if n.StartPoint != nil {
				b.SetStartPoint(*n.StartPoint)
			}
			if n.EndPoint != nil {
				b.SetEndPoint(*n.EndPoint)
			}
		})
	case *desc.RadialGradientBrush:
		return materialize(m, n, m.comp.CreateRadialGradientBrush, func(b *live.RadialGradientBrush) {
			m.gradientProps(n, &n.GradientBase, b)
			if n.EllipseCenter != nil {
				b.SetEllipseCenter(*n.EllipseCenter)
			}
			if n.EllipseRadius != nil {
				b.SetEllipseRadius(*n.EllipseRadius)
			}
			if n.GradientOriginOffset != nil {
				b.SetGradientOriginOffset(*n.GradientOriginOffset)
			}
		})
	case *desc.SurfaceBrush:
		create := func() *live.SurfaceBrush { return m.comp.CreateSurfaceBrush(nil) }
		return materialize(m, n, create, func(b *live.SurfaceBrush) {
			switch s := n.Surface.(type) {
			case nil:
			case *desc.ImageSurface:
				if surface := m.resolve(n, s.Ref); surface != nil {
					b.SetSurface(surface)
				}
			case *desc.VisualSurface:
				b.SetSurface(structural[*live.VisualSurface](m, s))
			default:
				fail(n, ErrUnknownNode, "surface %T", s)
			}
		})
	case *desc.EffectBrush:
		create := func() *live.EffectBrush {
			return m.comp.CreateEffectFactory(m.effect(n, n.Effect)).CreateBrush()
		}
		return materialize(m, n, create, func(b *live.EffectBrush) { m.effectSources(n, b) })
	case *desc.MaskBrush:
		return materialize(m, n, m.comp.CreateMaskBrush, func(b *live.MaskBrush) {
			if n.Source != nil {
				b.SetSource(m.brush(n.Source))
			}
			if n.Mask != nil {
				b.SetMask(m.brush(n.Mask))
			}
		})
	case *desc.VisualSurface:
		return materialize(m, n, m.comp.CreateVisualSurface, func(s *live.VisualSurface) {
			// The source is rendered, not contained, so it may be an
			// ancestor of the brush using this surface.
			if n.SourceVisual != nil {
				s.SetSourceVisual(reference[live.Visual](m, n.SourceVisual))
			}
			if n.SourceSize != nil {
				s.SetSourceSize(*n.SourceSize)
			}
			if n.SourceOffset != nil {
				s.SetSourceOffset(*n.SourceOffset)
			}
		})

	case *desc.InsetClip:
		return materialize(m, n, m.comp.CreateInsetClip, func(c *live.InsetClip) {
			m.clipProps(&n.ClipBase, c)
			if n.LeftInset != nil {
				c.SetLeftInset(*n.LeftInset)
			}
			if n.TopInset != nil {
				c.SetTopInset(*n.TopInset)
			}
			if n.RightInset != nil {
				c.SetRightInset(*n.RightInset)
			}
			if n.BottomInset != nil {
				c.SetBottomInset(*n.BottomInset)
			}
		})
	case *desc.GeometricClip:
		create := func() *live.GeometricClip { return m.comp.CreateGeometricClip(nil) }
		return materialize(m, n, create, func(c *live.GeometricClip) {
			m.clipProps(&n.ClipBase, c)
			if n.Geometry != nil {
				c.SetGeometry(structural[live.Geometry](m, n.Geometry))
			}
		})

	case *desc.LinearEasing:
		return materialize(m, n, m.comp.CreateLinearEasingFunction, nil)
	case *desc.StepEasing:
		return materialize(m, n, m.comp.CreateStepEasingFunction, func(e *live.StepEasingFunction) {
			m.stepEasing(n, e)
		})
	case *desc.CubicBezierEasing:
		if x1, x2 := n.ControlPoint1.X, n.ControlPoint2.X; x1 < 0 || x1 > 1 || x2 < 0 || x2 > 1 {
			fail(n, ErrInvalidNode, "control point x outside [0, 1]")
		}
		create := func() *live.CubicBezierEasingFunction {
			return m.comp.CreateCubicBezierEasingFunction(n.ControlPoint1, n.ControlPoint2)
		}
		return materialize(m, n, create, nil)

	case *desc.BooleanKeyFrameAnimation:
		return materialize(m, n, m.comp.CreateBooleanKeyFrameAnimation, func(a *live.BooleanKeyFrameAnimation) {
			keyFrames(m, n, &n.KeyFrameAnimation, a, same[bool])
		})
	case *desc.ColorKeyFrameAnimation:
		return materialize(m, n, m.comp.CreateColorKeyFrameAnimation, func(a *live.ColorKeyFrameAnimation) {
			if n.InterpolationColorSpace != nil {
				a.SetInterpolationColorSpace(mapEnum(n, "color space", colorSpaces[:], *n.InterpolationColorSpace))
			}
			keyFrames(m, n, &n.KeyFrameAnimation, &a.KeyFrameAnimation, same[vmath.Color])
		})
	case *desc.ScalarKeyFrameAnimation:
		return materialize(m, n, m.comp.CreateScalarKeyFrameAnimation, func(a *live.ScalarKeyFrameAnimation) {
			keyFrames(m, n, &n.KeyFrameAnimation, a, same[float64])
		})
	case *desc.Vector2KeyFrameAnimation:
		return materialize(m, n, m.comp.CreateVector2KeyFrameAnimation, func(a *live.Vector2KeyFrameAnimation) {
			keyFrames(m, n, &n.KeyFrameAnimation, a, same[vmath.Vec2])
		})
	case *desc.Vector3KeyFrameAnimation:
		return materialize(m, n, m.comp.CreateVector3KeyFrameAnimation, func(a *live.Vector3KeyFrameAnimation) {
			keyFrames(m, n, &n.KeyFrameAnimation, a, same[vmath.Vec3])
		})
	case *desc.Vector4KeyFrameAnimation:
		return materialize(m, n, m.comp.CreateVector4KeyFrameAnimation, func(a *live.Vector4KeyFrameAnimation) {
			keyFrames(m, n, &n.KeyFrameAnimation, a, same[vmath.Vec4])
		})
	case *desc.PathKeyFrameAnimation:
		return materialize(m, n, m.comp.CreatePathKeyFrameAnimation, func(a *live.PathKeyFrameAnimation) {
			keyFrames(m, n, &n.KeyFrameAnimation, a, func(p *desc.Path) *live.Path { return m.path(n, p) })
		})
	case *desc.ExpressionAnimation:
		return m.expression(n)

	case *desc.PropertySet:
		return m.propertySet(n)
	case *desc.AnimationController:
		return m.controller(n)
	}
	fail(n, ErrUnknownNode, "%T", n)
	return nil
}

func same[T any](v T) T { return v }

// --- Phase A helpers ---

func (m *materializer) visualProps(n desc.Node, p *desc.VisualBase, v live.Visual) {
	if p.BorderMode != nil {
		v.SetBorderMode(mapEnum(n, "border mode", borderModes[:], *p.BorderMode))
	}
	if p.CenterPoint != nil {
		v.SetCenterPoint(*p.CenterPoint)
	}
	if p.Clip != nil {
		v.SetClip(structural[live.Clip](m, p.Clip))
	}
	if p.IsVisible != nil {
		v.SetIsVisible(*p.IsVisible)
	}
	if p.Offset != nil {
		v.SetOffset(*p.Offset)
	}
	if p.Opacity != nil {
		v.SetOpacity(*p.Opacity)
	}
	if p.RotationAngleInDegrees != nil {
		v.SetRotationAngleInDegrees(*p.RotationAngleInDegrees)
	}
	if p.RotationAxis != nil {
		v.SetRotationAxis(*p.RotationAxis)
	}
	if p.Scale != nil {
		v.SetScale(*p.Scale)
	}
	if p.Size != nil {
		v.SetSize(*p.Size)
	}
	if p.TransformMatrix != nil {
		v.SetTransformMatrix(*p.TransformMatrix)
	}
	for _, c := range p.Children {
		if c == nil {
			fail(n, ErrInvalidNode, "nil child visual")
		}
		child := structural[live.Visual](m, c)
		if parent := child.Parent(); parent != nil {
			fail(c, ErrCycle, "visual already placed under %s#%d", parent.TypeName(), parent.ID())
		}
		v.InsertAtTop(child)
	}
}

func (m *materializer) shape(owner desc.Node, s desc.Shape) live.Shape {
	if s == nil {
		fail(owner, ErrInvalidNode, "nil shape")
	}
	return structural[live.Shape](m, s)
}

func (m *materializer) shapeProps(n desc.Node, p *desc.ShapeBase, s live.Shape) {
	if p.CenterPoint != nil {
		s.SetCenterPoint(*p.CenterPoint)
	}
	if p.Offset != nil {
		s.SetOffset(*p.Offset)
	}
	if p.RotationAngleInDegrees != nil {
		s.SetRotationAngleInDegrees(*p.RotationAngleInDegrees)
	}
	if p.Scale != nil {
		s.SetScale(*p.Scale)
	}
	if p.TransformMatrix != nil {
		s.SetTransformMatrix(*p.TransformMatrix)
	}
}

func (m *materializer) spriteShape(n *desc.SpriteShape, s *live.SpriteShape) {
	m.shapeProps(n, &n.ShapeBase, s)
	if n.Geometry != nil {
		s.SetGeometry(structural[live.Geometry](m, n.Geometry))
	}
	if n.FillBrush != nil {
		s.SetFillBrush(m.brush(n.FillBrush))
	}
	if n.StrokeBrush != nil {
		s.SetStrokeBrush(m.brush(n.StrokeBrush))
	}
	for _, d := range n.StrokeDashArray {
		s.AddStrokeDash(d)
	}
	if n.StrokeDashCap != nil {
		s.SetStrokeDashCap(mapEnum(n, "stroke cap", strokeCaps[:], *n.StrokeDashCap))
	}
	if n.StrokeStartCap != nil {
		s.SetStrokeStartCap(mapEnum(n, "stroke cap", strokeCaps[:], *n.StrokeStartCap))
	}
	if n.StrokeEndCap != nil {
		s.SetStrokeEndCap(mapEnum(n, "stroke cap", strokeCaps[:], *n.StrokeEndCap))
	}
	if n.StrokeLineJoin != nil {
		s.SetStrokeLineJoin(mapEnum(n, "line join", lineJoins[:], *n.StrokeLineJoin))
	}
	if n.StrokeDashOffset != nil {
		s.SetStrokeDashOffset(*n.StrokeDashOffset)
	}
	if n.StrokeMiterLimit != nil {
		s.SetStrokeMiterLimit(*n.StrokeMiterLimit)
	}
	if n.StrokeThickness != nil {
		s.SetStrokeThickness(*n.StrokeThickness)
	}
	if n.IsStrokeNonScaling != nil {
		s.SetIsStrokeNonScaling(*n.IsStrokeNonScaling)
	}
}

func (m *materializer) geometryProps(p *desc.GeometryBase, g live.Geometry) {
	if p.TrimStart != nil {
		g.SetTrimStart(*p.TrimStart)
	}
	if p.TrimEnd != nil {
		g.SetTrimEnd(*p.TrimEnd)
	}
	if p.TrimOffset != nil {
		g.SetTrimOffset(*p.TrimOffset)
	}
}

func (m *materializer) brush(b desc.Brush) live.Brush {
	return structural[live.Brush](m, b)
}

// gradient is the setter surface shared by the live gradient brushes.
type gradient interface {
	AddColorStop(*live.ColorGradientStop)
	SetAnchorPoint(vmath.Vec2)
	SetCenterPoint(vmath.Vec2)
	SetExtendMode(live.GradientExtendMode)
	SetInterpolationSpace(live.ColorSpace)
	SetMappingMode(live.MappingMode)
	SetOffset(vmath.Vec2)
	SetRotationAngleInDegrees(float64)
	SetScale(vmath.Vec2)
	SetTransformMatrix(vmath.Matrix3x2)
}

func (m *materializer) gradientProps(n desc.Node, p *desc.GradientBase, g gradient) {
	if p.AnchorPoint != nil {
		g.SetAnchorPoint(*p.AnchorPoint)
	}
	if p.CenterPoint != nil {
		g.SetCenterPoint(*p.CenterPoint)
	}
	for _, s := range p.ColorStops {
		if s == nil {
			fail(n, ErrInvalidNode, "nil color stop")
		}
		g.AddColorStop(structural[*live.ColorGradientStop](m, s))
	}
	if p.ExtendMode != nil {
		g.SetExtendMode(mapEnum(n, "extend mode", extendModes[:], *p.ExtendMode))
	}
	if p.InterpolationSpace != nil {
		g.SetInterpolationSpace(mapEnum(n, "color space", colorSpaces[:], *p.InterpolationSpace))
	}
	if p.MappingMode != nil {
		g.SetMappingMode(mapEnum(n, "mapping mode", mappingModes[:], *p.MappingMode))
	}
	if p.Offset != nil {
		g.SetOffset(*p.Offset)
	}
	if p.RotationAngleInDegrees != nil {
		g.SetRotationAngleInDegrees(*p.RotationAngleInDegrees)
	}
	if p.Scale != nil {
		g.SetScale(*p.Scale)
	}
	if p.TransformMatrix != nil {
		g.SetTransformMatrix(*p.TransformMatrix)
	}
}

// effect converts an effect graph. Effects carry no state of their own and
// are shared by identity like geometry expressions.
func (m *materializer) effect(n desc.Node, e desc.Effect) live.Effect {
	if le, ok := m.cache.effects[e]; ok {
		m.stats.CacheHits++
		return le
	}
	var le live.Effect
	switch e := e.(type) {
	case *desc.CompositeEffect:
		sources := make([]live.EffectSource, len(e.Sources))
		for i, s := range e.Sources {
			sources[i] = live.EffectSource{Name: s.Name}
		}
		le = &live.CompositeEffect{
			Mode:    mapEnum(n, "composite mode", compositeModes[:], e.Mode),
			Sources: sources,
		}
	case *desc.GaussianBlurEffect:
		le = &live.GaussianBlurEffect{
			BlurAmount: e.BlurAmount,
			Source:     live.EffectSource{Name: e.Source.Name},
		}
	case nil:
		fail(n, ErrInvalidNode, "effect brush has no effect")
	default:
		fail(n, ErrUnknownNode, "effect %T", e)
	}
	m.cache.effects[e] = le
	return le
}

// effectSources binds every source the effect reads. A source with no
// brush, or a brush bound to a name the effect does not read, fails n.
func (m *materializer) effectSources(n *desc.EffectBrush, b *live.EffectBrush) {
	names := desc.EffectSourceNames(n.Effect)
	for _, name := range names {
		src := n.Sources[name]
		if src == nil {
			fail(n, ErrInvalidNode, "effect source %q is not bound", name)
		}
		b.SetSourceParameter(name, m.brush(src))
	}
	var extra []string
	for name := range n.Sources {
		if !slices.Contains(names, name) {
			extra = append(extra, name)
		}
	}
	if len(extra) > 0 {
		slices.Sort(extra)
		fail(n, ErrInvalidNode, "effect has no source named %q", extra[0])
	}
}

func (m *materializer) clipProps(p *desc.ClipBase, c live.Clip) {
	if p.CenterPoint != nil {
		c.SetCenterPoint(*p.CenterPoint)
	}
	if p.Scale != nil {
		c.SetScale(*p.Scale)
	}
}

func (m *materializer) stepEasing(n *desc.StepEasing, e *live.StepEasingFunction) {
	if n.StepCount != nil {
		if *n.StepCount < 1 {
			fail(n, ErrInvalidNode, "step count %d", *n.StepCount)
		}
		e.SetStepCount(*n.StepCount)
	}
	if n.InitialStep != nil {
		e.SetInitialStep(*n.InitialStep)
	}
	if n.FinalStep != nil {
		e.SetFinalStep(*n.FinalStep)
	}
	if n.IsInitialStepSingleFrame != nil {
		e.SetIsInitialStepSingleFrame(*n.IsInitialStepSingleFrame)
	}
	if n.IsFinalStepSingleFrame != nil {
		e.SetIsFinalStepSingleFrame(*n.IsFinalStepSingleFrame)
	}
}

// --- Phase B ---

// properties materializes the property set attached to n and, when n is a
// property set, fills in its entries. Entries must exist before any
// animation targeting them starts.
func (m *materializer) properties(n desc.Node, obj live.Object) {
	if ps := n.Base().Properties; ps != nil && desc.Node(ps) != n {
		m.propertySet(ps)
	}
	ps, ok := n.(*desc.PropertySet)
	if !ok {
		return
	}
	lps, ok := obj.(*live.PropertySet)
	if !ok {
		fail(n, ErrInvariant, "property set materialized as %s", obj.TypeName())
	}
	insertEntries(ps.Booleans, lps.InsertBoolean)
	insertEntries(ps.Colors, lps.InsertColor)
	insertEntries(ps.Scalars, lps.InsertScalar)
	insertEntries(ps.Vector2s, lps.InsertVector2)
	insertEntries(ps.Vector3s, lps.InsertVector3)
	insertEntries(ps.Vector4s, lps.InsertVector4)
}

// insertEntries inserts in key order so repeated materializations produce
// identical sets.
func insertEntries[T any](entries map[string]T, insert func(string, T)) {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		insert(k, entries[k])
	}
}

// propertySet returns the live set for n. An owned set is the owner's own
// live property set and is never created here.
func (m *materializer) propertySet(n *desc.PropertySet) *live.PropertySet {
	if ps, ok := cached[*live.PropertySet](m, n); ok {
		return ps
	}
	if n.Owner == nil {
		return materialize(m, n, m.comp.CreatePropertySet, nil)
	}
	owner := reference[live.Object](m, n.Owner)
	// Materializing the owner may have reached n through the owner's
	// Properties field.
	if ps, ok := cached[*live.PropertySet](m, n); ok {
		return ps
	}
	return materialize(m, n, owner.Properties, nil)
}

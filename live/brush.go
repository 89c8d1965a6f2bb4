package live

import (
	"fmt"
	"image"
	"math"
	"reflect"
	"slices"

	"github.com/phanxgames/grove/vmath"
)

// Brush paints an area.
type Brush interface {
	Object
	isBrush()
}

func (*ColorBrush) isBrush()          {}
func (*LinearGradientBrush) isBrush() {}
func (*RadialGradientBrush) isBrush() {}
func (*SurfaceBrush) isBrush()        {}
func (*EffectBrush) isBrush()         {}
func (*MaskBrush) isBrush()           {}

// ColorBrush paints a solid color.
type ColorBrush struct {
	object
}

func (b *ColorBrush) Color() vmath.Color { return get[vmath.Color](&b.object, "Color") }

func (b *ColorBrush) SetColor(c vmath.Color) { b.setStatic("Color", c) }

// ColorGradientStop is one stop of a gradient brush.
type ColorGradientStop struct {
	object
}

func (s *ColorGradientStop) Offset() float64 { return get[float64](&s.object, "Offset") }

func (s *ColorGradientStop) SetOffset(v float64) { s.setStatic("Offset", v) }

func (s *ColorGradientStop) Color() vmath.Color { return get[vmath.Color](&s.object, "Color") }

func (s *ColorGradientStop) SetColor(c vmath.Color) { s.setStatic("Color", c) }

// gradientBrush holds the state common to linear and radial gradients.
type gradientBrush struct {
	object
	stops              []*ColorGradientStop
	extendMode         GradientExtendMode
	interpolationSpace ColorSpace
	mappingMode        MappingMode
}

func (g *gradientBrush) initGradient(c *Compositor, self Brush, typeName string) {
	g.init(c, self, typeName)
	g.mappingMode = MappingModeRelative
	g.declare("AnchorPoint", vmath.Vec2{})
	g.declare("CenterPoint", vmath.Vec2{})
	g.declare("Offset", vmath.Vec2{})
	g.declare("RotationAngleInDegrees", 0.0)
	g.declare("Scale", vmath.Vec2{X: 1, Y: 1})
	g.declare("TransformMatrix", vmath.Identity3x2())
}

// ColorStops returns the stops in insertion order.
func (g *gradientBrush) ColorStops() []*ColorGradientStop { return slices.Clone(g.stops) }

// AddColorStop appends a stop.
func (g *gradientBrush) AddColorStop(s *ColorGradientStop) {
	g.stops = append(g.stops, s)
	g.touch("ColorStops")
}

func (g *gradientBrush) ExtendMode() GradientExtendMode { return g.extendMode }

func (g *gradientBrush) SetExtendMode(m GradientExtendMode) { g.extendMode = m; g.touch("ExtendMode") }

func (g *gradientBrush) InterpolationSpace() ColorSpace { return g.interpolationSpace }

func (g *gradientBrush) SetInterpolationSpace(s ColorSpace) {
	g.interpolationSpace = s
	g.touch("InterpolationSpace")
}

// MappingMode defaults to MappingModeRelative.
func (g *gradientBrush) MappingMode() MappingMode { return g.mappingMode }

func (g *gradientBrush) SetMappingMode(m MappingMode) { g.mappingMode = m; g.touch("MappingMode") }

func (g *gradientBrush) AnchorPoint() vmath.Vec2 { return get[vmath.Vec2](&g.object, "AnchorPoint") }

func (g *gradientBrush) SetAnchorPoint(v vmath.Vec2) { g.setStatic("AnchorPoint", v) }

func (g *gradientBrush) CenterPoint() vmath.Vec2 { return get[vmath.Vec2](&g.object, "CenterPoint") }

func (g *gradientBrush) SetCenterPoint(v vmath.Vec2) { g.setStatic("CenterPoint", v) }

func (g *gradientBrush) Offset() vmath.Vec2 { return get[vmath.Vec2](&g.object, "Offset") }

func (g *gradientBrush) SetOffset(v vmath.Vec2) { g.setStatic("Offset", v) }

func (g *gradientBrush) RotationAngleInDegrees() float64 {
	return get[float64](&g.object, "RotationAngleInDegrees")
}

func (g *gradientBrush) SetRotationAngleInDegrees(v float64) {
	g.setStatic("RotationAngleInDegrees", v)
}

func (g *gradientBrush) Scale() vmath.Vec2 { return get[vmath.Vec2](&g.object, "Scale") }

func (g *gradientBrush) SetScale(v vmath.Vec2) { g.setStatic("Scale", v) }

func (g *gradientBrush) TransformMatrix() vmath.Matrix3x2 {
	return get[vmath.Matrix3x2](&g.object, "TransformMatrix")
}

func (g *gradientBrush) SetTransformMatrix(m vmath.Matrix3x2) { g.setStatic("TransformMatrix", m) }

// ColorAt returns the gradient color at offset t, after the extend mode has
// been applied. Colors are interpolated in RGB.
func (g *gradientBrush) ColorAt(t float64) vmath.Color {
	if len(g.stops) == 0 {
		return vmath.ColorTransparent
	}
	switch g.extendMode {
	case GradientExtendModeWrap:
		t -= math.Floor(t)
	case GradientExtendModeMirror:
		t = math.Abs(t)
		if int(math.Floor(t))%2 == 1 {
			t = 1 - (t - math.Floor(t))
		} else {
			t -= math.Floor(t)
		}
	}
	stops := slices.Clone(g.stops)
	slices.SortStableFunc(stops, func(a, b *ColorGradientStop) int {
		switch {
		case a.Offset() < b.Offset():
			return -1
		case a.Offset() > b.Offset():
			return 1
		}
		return 0
	})
	if t <= stops[0].Offset() {
		return stops[0].Color()
	}
	for i := 1; i < len(stops); i++ {
		lo, hi := stops[i-1], stops[i]
		if t <= hi.Offset() {
			span := hi.Offset() - lo.Offset()
			if span <= 0 {
				return hi.Color()
			}
			return vmath.LerpColor(lo.Color(), hi.Color(), (t-lo.Offset())/span)
		}
	}
	return stops[len(stops)-1].Color()
}

// LinearGradientBrush paints a gradient along StartPoint to EndPoint.
type LinearGradientBrush struct {
	gradientBrush
}

func (b *LinearGradientBrush) StartPoint() vmath.Vec2 { return get[vmath.Vec2](&b.object, "StartPoint") }

func (b *LinearGradientBrush) SetStartPoint(v vmath.Vec2) { b.setStatic("StartPoint", v) }

func (b *LinearGradientBrush) EndPoint() vmath.Vec2 { return get[vmath.Vec2](&b.object, "EndPoint") }

func (b *LinearGradientBrush) SetEndPoint(v vmath.Vec2) { b.setStatic("EndPoint", v) }

// RadialGradientBrush paints a gradient outward from EllipseCenter.
type RadialGradientBrush struct {
	gradientBrush
}

func (b *RadialGradientBrush) EllipseCenter() vmath.Vec2 {
	return get[vmath.Vec2](&b.object, "EllipseCenter")
}

func (b *RadialGradientBrush) SetEllipseCenter(v vmath.Vec2) { b.setStatic("EllipseCenter", v) }

func (b *RadialGradientBrush) EllipseRadius() vmath.Vec2 {
	return get[vmath.Vec2](&b.object, "EllipseRadius")
}

func (b *RadialGradientBrush) SetEllipseRadius(v vmath.Vec2) { b.setStatic("EllipseRadius", v) }

func (b *RadialGradientBrush) GradientOriginOffset() vmath.Vec2 {
	return get[vmath.Vec2](&b.object, "GradientOriginOffset")
}

func (b *RadialGradientBrush) SetGradientOriginOffset(v vmath.Vec2) {
	b.setStatic("GradientOriginOffset", v)
}

// Surface is pixel content a SurfaceBrush can paint. *ebiten.Image
// satisfies it.
type Surface interface {
	Bounds() image.Rectangle
}

// NilSurface reports whether s is nil or an interface holding a nil
// pointer, map, slice, func or channel.
func NilSurface(s Surface) bool {
	if s == nil {
		return true
	}
	switch v := reflect.ValueOf(s); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// SurfaceBrush paints a surface.
type SurfaceBrush struct {
	object
	surface Surface
}

// Surface returns the painted surface, or nil.
func (b *SurfaceBrush) Surface() Surface { return b.surface }

// SetSurface sets the painted surface. nil leaves the brush empty.
func (b *SurfaceBrush) SetSurface(s Surface) { b.surface = s; b.touch("Surface") }

// VisualSurface is a surface rendered from a visual subtree.
type VisualSurface struct {
	object
	source Visual
}

// SourceVisual returns the rendered visual, or nil.
func (s *VisualSurface) SourceVisual() Visual { return s.source }

// SetSourceVisual sets the rendered visual.
func (s *VisualSurface) SetSourceVisual(v Visual) { s.source = v; s.touch("SourceVisual") }

func (s *VisualSurface) SourceSize() vmath.Vec2 { return get[vmath.Vec2](&s.object, "SourceSize") }

func (s *VisualSurface) SetSourceSize(v vmath.Vec2) { s.setStatic("SourceSize", v) }

func (s *VisualSurface) SourceOffset() vmath.Vec2 { return get[vmath.Vec2](&s.object, "SourceOffset") }

func (s *VisualSurface) SetSourceOffset(v vmath.Vec2) { s.setStatic("SourceOffset", v) }

// Bounds returns the rendered area in whole pixels.
func (s *VisualSurface) Bounds() image.Rectangle {
	o, sz := s.SourceOffset(), s.SourceSize()
	x0, y0 := int(math.Floor(o.X)), int(math.Floor(o.Y))
	return image.Rect(x0, y0, x0+int(math.Ceil(sz.X)), y0+int(math.Ceil(sz.Y)))
}

// --- Effects ---

// Effect is an image effect graph. Its named sources are bound on the
// EffectBrush created from it.
type Effect interface {
	SourceNames() []string
}

// EffectSource names an input of an effect.
type EffectSource struct {
	Name string
}

// CompositeEffect blends its sources in order.
type CompositeEffect struct {
	Mode    CompositeMode
	Sources []EffectSource
}

// SourceNames implements Effect.
func (e *CompositeEffect) SourceNames() []string {
	names := make([]string, 0, len(e.Sources))
	for _, s := range e.Sources {
		names = append(names, s.Name)
	}
	return names
}

// GaussianBlurEffect blurs one source.
type GaussianBlurEffect struct {
	BlurAmount float64
	Source     EffectSource
}

// SourceNames implements Effect.
func (e *GaussianBlurEffect) SourceNames() []string { return []string{e.Source.Name} }

// EffectFactory creates brushes for one effect.
type EffectFactory struct {
	comp   *Compositor
	effect Effect
}

// Effect returns the factory's effect.
func (f *EffectFactory) Effect() Effect { return f.effect }

// CreateBrush returns a new brush with no sources bound.
func (f *EffectFactory) CreateBrush() *EffectBrush {
	b := &EffectBrush{effect: f.effect, sources: make(map[string]Brush)}
	b.init(f.comp, b, "EffectBrush")
	f.comp.count(b)
	return b
}

// EffectBrush paints the output of an effect.
type EffectBrush struct {
	object
	effect  Effect
	sources map[string]Brush
}

// Effect returns the brush's effect.
func (b *EffectBrush) Effect() Effect { return b.effect }

// SetSourceParameter binds a brush to a named effect source. Panics if the
// effect has no source with that name.
func (b *EffectBrush) SetSourceParameter(name string, src Brush) {
	if !slices.Contains(b.effect.SourceNames(), name) {
		panic(fmt.Sprintf("live: effect has no source named %q", name))
	}
	b.sources[name] = src
	b.touch(name)
}

// SourceParameter returns the brush bound to name, or nil.
func (b *EffectBrush) SourceParameter(name string) Brush { return b.sources[name] }

// MaskBrush paints Source with the alpha of Mask.
type MaskBrush struct {
	object
	source Brush
	mask   Brush
}

// Source returns the painted brush, or nil.
func (b *MaskBrush) Source() Brush { return b.source }

// SetSource sets the painted brush.
func (b *MaskBrush) SetSource(s Brush) { b.source = s; b.touch("Source") }

// Mask returns the alpha brush, or nil.
func (b *MaskBrush) Mask() Brush { return b.mask }

// SetMask sets the alpha brush.
func (b *MaskBrush) SetMask(m Brush) { b.mask = m; b.touch("Mask") }

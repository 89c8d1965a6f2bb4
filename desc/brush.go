package desc

import "github.com/phanxgames/grove/vmath"

// Brush paints an area.
type Brush interface {
	Node
	isBrush()
}

// ColorBrush paints a solid color.
type ColorBrush struct {
	Object
	Color *vmath.Color
}

// ColorGradientStop is one stop of a gradient brush.
type ColorGradientStop struct {
	Object
	Offset float64
	Color  vmath.Color
}

// GradientBase holds the fields shared by gradient brushes.
type GradientBase struct {
	Object
	AnchorPoint            *vmath.Vec2
	CenterPoint            *vmath.Vec2
	ColorStops             []*ColorGradientStop
	ExtendMode             *GradientExtendMode
	InterpolationSpace     *ColorSpace
	MappingMode            *MappingMode
	Offset                 *vmath.Vec2
	RotationAngleInDegrees *float64
	Scale                  *vmath.Vec2
	TransformMatrix        *vmath.Matrix3x2
}

// LinearGradientBrush paints a gradient along the line StartPoint-EndPoint.
type LinearGradientBrush struct {
	GradientBase
	StartPoint *vmath.Vec2
	EndPoint   *vmath.Vec2
}

// RadialGradientBrush paints a gradient radiating from an ellipse center.
type RadialGradientBrush struct {
	GradientBase
	EllipseCenter        *vmath.Vec2
	EllipseRadius        *vmath.Vec2
	GradientOriginOffset *vmath.Vec2
}

// SurfaceBrush paints the content of a Surface.
type SurfaceBrush struct {
	Object
	Surface Surface
}

// EffectBrush paints the output of an effect graph whose named sources are
// bound to brushes.
type EffectBrush struct {
	Object
	Effect  Effect
	Sources map[string]Brush
}

// MaskBrush paints Source where Mask is opaque.
type MaskBrush struct {
	Object
	Source Brush
	Mask   Brush
}

func (*ColorBrush) isBrush()          {}
func (*LinearGradientBrush) isBrush() {}
func (*RadialGradientBrush) isBrush() {}
func (*SurfaceBrush) isBrush()        {}
func (*EffectBrush) isBrush()         {}
func (*MaskBrush) isBrush()           {}

func (*ColorBrush) Kind() Kind          { return KindColorBrush }
func (*ColorGradientStop) Kind() Kind   { return KindColorGradientStop }
func (*LinearGradientBrush) Kind() Kind { return KindLinearGradientBrush }
func (*RadialGradientBrush) Kind() Kind { return KindRadialGradientBrush }
func (*SurfaceBrush) Kind() Kind        { return KindSurfaceBrush }
func (*EffectBrush) Kind() Kind         { return KindEffectBrush }
func (*MaskBrush) Kind() Kind           { return KindMaskBrush }

// Surface is the content of a SurfaceBrush.
type Surface interface {
	isSurface()
}

// ResourceRef is the logical identity of an external resource such as an
// image file. Equal references denote the same resource.
type ResourceRef string

// ImageSurface is an external image, loaded by a resolver at
// materialization time.
type ImageSurface struct {
	Ref ResourceRef
}

// VisualSurface renders a visual subtree as a surface.
type VisualSurface struct {
	Object
	SourceVisual Visual
	SourceSize   *vmath.Vec2
	SourceOffset *vmath.Vec2
}

func (*ImageSurface) isSurface()  {}
func (*VisualSurface) isSurface() {}

func (*VisualSurface) Kind() Kind { return KindVisualSurface }

// Effect is a node of an effect brush's effect graph.
type Effect interface {
	isEffect()
}

// EffectSource names an input of an effect. The name is looked up in
// EffectBrush.Sources.
type EffectSource struct {
	Name string
}

// CompositeEffect blends its sources in order with Mode.
type CompositeEffect struct {
	Mode    CompositeMode
	Sources []EffectSource
}

// GaussianBlurEffect blurs one source.
type GaussianBlurEffect struct {
	BlurAmount float64
	Source     EffectSource
}

func (*CompositeEffect) isEffect()    {}
func (*GaussianBlurEffect) isEffect() {}

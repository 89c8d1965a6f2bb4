package scenes

import (
	"time"

	"github.com/phanxgames/grove/desc"
	"github.com/phanxgames/grove/vmath"
)

// LogoRef is the image the showcase scene paints with a surface brush.
const LogoRef desc.ResourceRef = "logo.png"

// Showcase uses at least one node of every kind.
func Showcase() desc.Visual {
	theme := desc.NewPropertySet()
	theme.Comment = "theme"
	theme.Colors = map[string]vmath.Color{"Accent": {R: 0.9, G: 0.3, B: 0.2, A: 1}}
	theme.Scalars = map[string]float64{"Tilt": 15}

	linear := &desc.LinearEasing{}
	step := &desc.StepEasing{StepCount: desc.Ptr(4), FinalStep: desc.Ptr(4)}
	smooth := &desc.CubicBezierEasing{
		ControlPoint1: vmath.Vec2{X: 0.25, Y: 0.1},
		ControlPoint2: vmath.Vec2{X: 0.25, Y: 1},
	}

	// Geometry.
	disc := &desc.CanvasEllipse{X: 50, Y: 50, RadiusX: 40, RadiusY: 40}
	small := &desc.Path{Source: disc}
	big := &desc.Path{Source: &desc.CanvasGroup{
		FillRule: desc.FillRuleWinding,
		Geometries: []desc.CanvasGeometry{
			disc,
			&desc.CanvasTransformed{Source: disc, Matrix: vmath.Translation3x2(20, 0)},
			&desc.CanvasPath{Commands: []desc.PathCommand{
				desc.BeginFigure{StartPoint: vmath.Vec2{X: 0, Y: 100}},
				desc.AddLine{EndPoint: vmath.Vec2{X: 100, Y: 100}},
				desc.AddCubicBezier{
					ControlPoint1: vmath.Vec2{X: 100, Y: 130},
					ControlPoint2: vmath.Vec2{X: 0, Y: 130},
					EndPoint:      vmath.Vec2{X: 0, Y: 100},
				},
				desc.EndFigure{Loop: desc.FigureLoopClosed},
			}},
		},
	}}
	pathGeometry := &desc.PathGeometry{Path: small}
	pathGeometry.Animators = []desc.Animator{{
		Property: "Path",
		Animation: &desc.PathKeyFrameAnimation{KeyFrameAnimation: desc.KeyFrameAnimation[*desc.Path]{
			Duration: time.Second,
			KeyFrames: []desc.KeyFrame[*desc.Path]{
				{Progress: 0, Value: small},
				{Progress: 1, Value: big, Easing: linear},
			},
		}},
	}}
	ring := &desc.EllipseGeometry{
		GeometryBase: desc.GeometryBase{TrimEnd: desc.Ptr(0.75)},
		Center:       desc.Ptr(vmath.Vec2{X: 50, Y: 50}),
		Radius:       vmath.Vec2{X: 45, Y: 45},
	}
	frame := &desc.RectangleGeometry{Size: vmath.Vec2{X: 100, Y: 100}}
	card := &desc.RoundedRectangleGeometry{Size: vmath.Vec2{X: 100, Y: 60}, CornerRadius: vmath.Vec2{X: 8, Y: 8}}

	// Brushes.
	accent := &desc.ColorBrush{Object: desc.Object{Comment: "accent"}, Color: desc.Ptr(vmath.ColorWhite)}
	accent.Animators = []desc.Animator{{
		Property: "Color",
		Animation: &desc.ColorKeyFrameAnimation{
			KeyFrameAnimation: desc.KeyFrameAnimation[vmath.Color]{
				Duration: 2 * time.Second,
				KeyFrames: []desc.KeyFrame[vmath.Color]{
					{Progress: 0, Value: vmath.ColorWhite},
					{Progress: 1, Value: vmath.Color{R: 0.9, G: 0.3, B: 0.2, A: 1}, Easing: smooth},
				},
			},
			InterpolationColorSpace: desc.Ptr(desc.ColorSpaceRgb),
		},
	}}
	stops := []*desc.ColorGradientStop{
		{Offset: 0, Color: vmath.ColorWhite},
		{Offset: 1, Color: vmath.ColorBlack},
	}
	fade := &desc.LinearGradientBrush{
		GradientBase: desc.GradientBase{ColorStops: stops, ExtendMode: desc.Ptr(desc.GradientExtendModeMirror)},
		EndPoint:     desc.Ptr(vmath.Vec2{Y: 1}),
	}
	glow := &desc.RadialGradientBrush{
		GradientBase:  desc.GradientBase{ColorStops: stops, MappingMode: desc.Ptr(desc.MappingModeRelative)},
		EllipseRadius: desc.Ptr(vmath.Vec2{X: 0.4, Y: 0.4}),
	}
	logo := &desc.SurfaceBrush{Surface: &desc.ImageSurface{Ref: LogoRef}}
	blend := &desc.EffectBrush{
		Effect: &desc.CompositeEffect{
			Mode:    desc.CompositeModeSourceOver,
			Sources: []desc.EffectSource{{Name: "back"}, {Name: "front"}},
		},
		Sources: map[string]desc.Brush{"back": glow, "front": logo},
	}
	masked := &desc.MaskBrush{Source: accent, Mask: fade}

	// Visuals.
	layer := &desc.LayerVisual{
		VisualBase: desc.VisualBase{
			Object: desc.Object{Comment: "layer"},
			Size:   desc.Ptr(vmath.Vec2{X: 200, Y: 200}),
		},
		Shadow: &desc.DropShadow{
			BlurRadius:   desc.Ptr(4.0),
			Opacity:      desc.Ptr(0.5),
			SourcePolicy: desc.Ptr(desc.DropShadowSourcePolicyInheritFromVisualContent),
		},
	}
	mirror := &desc.SpriteVisual{
		VisualBase: desc.VisualBase{
			Object: desc.Object{Comment: "mirror"},
			Offset: desc.Ptr(vmath.Vec3{X: 220}),
			Size:   desc.Ptr(vmath.Vec2{X: 200, Y: 200}),
			Clip:   &desc.InsetClip{LeftInset: desc.Ptr(10.0), RightInset: desc.Ptr(10.0)},
		},
		Brush: &desc.SurfaceBrush{Surface: &desc.VisualSurface{
			SourceVisual: layer,
			SourceSize:   desc.Ptr(vmath.Vec2{X: 200, Y: 200}),
		}},
	}

	shapes := &desc.ShapeVisual{
		VisualBase: desc.VisualBase{
			Object: desc.Object{Comment: "shapes"},
			Size:   desc.Ptr(vmath.Vec2{X: 100, Y: 100}),
			Clip:   &desc.GeometricClip{Geometry: frame},
		},
		ViewBox: &desc.ViewBox{Size: vmath.Vec2{X: 100, Y: 100}},
		Shapes: []desc.Shape{
			&desc.ContainerShape{
				ShapeBase: desc.ShapeBase{Scale: desc.Ptr(vmath.Vec2{X: 0.5, Y: 0.5})},
				Shapes: []desc.Shape{
					&desc.SpriteShape{Geometry: pathGeometry, FillBrush: masked},
					&desc.SpriteShape{Geometry: card, FillBrush: fade},
				},
			},
			&desc.SpriteShape{
				Geometry:        ring,
				StrokeBrush:     accent,
				StrokeThickness: desc.Ptr(3.0),
				StrokeStartCap:  desc.Ptr(desc.StrokeCapRound),
				StrokeEndCap:    desc.Ptr(desc.StrokeCapRound),
				StrokeDashArray: []float64{4, 2},
			},
		},
	}
	shapes.Animators = []desc.Animator{{
		Property: "Size",
		Animation: &desc.Vector2KeyFrameAnimation{KeyFrameAnimation: desc.KeyFrameAnimation[vmath.Vec2]{
			Duration: time.Second,
			KeyFrames: []desc.KeyFrame[vmath.Vec2]{
				{Progress: 0, Value: vmath.Vec2{X: 100, Y: 100}},
				{Progress: 1, Value: vmath.Vec2{X: 150, Y: 150}, Easing: smooth},
			},
		}},
	}}

	sprite := &desc.SpriteVisual{
		VisualBase: desc.VisualBase{
			Object: desc.Object{Comment: "sprite"},
			Size:   desc.Ptr(vmath.Vec2{X: 100, Y: 100}),
		},
		Brush:  blend,
		Shadow: &desc.DropShadow{Mask: masked, Offset: desc.Ptr(vmath.Vec3{X: 2, Y: 2})},
	}
	highlight := desc.NewOwnedPropertySet(sprite)
	highlight.Vector4s = map[string]vmath.Vec4{"Highlight": {X: 1, Y: 1, Z: 1, W: 0}}
	highlight.Animators = []desc.Animator{{
		Property: "Highlight",
		Animation: &desc.Vector4KeyFrameAnimation{KeyFrameAnimation: desc.KeyFrameAnimation[vmath.Vec4]{
			Duration: time.Second,
			KeyFrames: []desc.KeyFrame[vmath.Vec4]{
				{Progress: 0, Value: vmath.Vec4{X: 1, Y: 1, Z: 1}},
				{Progress: 1, Value: vmath.Vec4{X: 1, Y: 1, Z: 1, W: 1}},
			},
		}},
	}}
	sprite.Properties = highlight
	sprite.Animators = []desc.Animator{
		{
			Property: "Opacity",
			Animation: desc.NewScalarAnimation(time.Second,
				desc.KeyFrame[float64]{Progress: 0, Value: 0},
				desc.KeyFrame[float64]{Progress: 1, Value: 1, Easing: smooth},
			),
			Controller: &desc.AnimationController{Target: sprite, TargetProperty: "Opacity", IsPaused: true},
		},
		{
			Property: "IsVisible",
			Animation: &desc.BooleanKeyFrameAnimation{KeyFrameAnimation: desc.KeyFrameAnimation[bool]{
				Duration: time.Second,
				KeyFrames: []desc.KeyFrame[bool]{
					{Progress: 0, Value: false},
					{Progress: 1, Value: true, Easing: step},
				},
			}},
		},
		{
			Property: "Offset",
			Animation: desc.NewVector3Animation(time.Second,
				desc.KeyFrame[vmath.Vec3]{Progress: 0, Value: vmath.Vec3{Y: 220}},
				desc.KeyFrame[vmath.Vec3]{Progress: 1, Value: vmath.Vec3{X: 20, Y: 220}},
			),
		},
		{
			Property: "RotationAngleInDegrees",
			Animation: &desc.ExpressionAnimation{
				AnimationBase: desc.AnimationBase{
					ReferenceParameters: []desc.ReferenceParameter{{Name: "theme", Node: theme}},
				},
				Expression: "theme.Tilt",
			},
		},
	}

	return &desc.ContainerVisual{VisualBase: desc.VisualBase{
		Object:   desc.Object{Comment: "showcase", Properties: theme},
		Children: []desc.Visual{layer, mirror, shapes, sprite},
	}}
}

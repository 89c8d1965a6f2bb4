// Package scenes holds sample declarative scenes for the grove command and
// tests. Every constructor returns a freshly built graph.
package scenes

import (
	"slices"
	"time"

	"github.com/phanxgames/grove/desc"
	"github.com/phanxgames/grove/vmath"
)

var registry = map[string]func() desc.Visual{
	"shared":   Shared,
	"pulse":    Pulse,
	"showcase": Showcase,
}

// Names returns the registered scene names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Lookup returns the constructor of the named scene.
func Lookup(name string) (func() desc.Visual, bool) {
	f, ok := registry[name]
	return f, ok
}

// Shared is a container with two sprite visuals filled by one brush node.
func Shared() desc.Visual {
	fill := &desc.ColorBrush{
		Object: desc.Object{Comment: "fill"},
		Color:  desc.Ptr(vmath.Color{R: 0.2, G: 0.6, B: 1, A: 1}),
	}
	sprite := func(name string, x float64) desc.Visual {
		return &desc.SpriteVisual{
			VisualBase: desc.VisualBase{
				Object: desc.Object{Comment: name},
				Offset: desc.Ptr(vmath.Vec3{X: x}),
				Size:   desc.Ptr(vmath.Vec2{X: 64, Y: 64}),
			},
			Brush: fill,
		}
	}
	return &desc.ContainerVisual{VisualBase: desc.VisualBase{
		Object:   desc.Object{Comment: "root"},
		Children: []desc.Visual{sprite("left", 0), sprite("right", 80)},
	}}
}

// Pulse is a badge whose outline is the union of a rounded square and a
// circle, fading in and growing while its accent color cycles.
func Pulse() desc.Visual {
	theme := desc.NewPropertySet()
	theme.Comment = "theme"
	theme.Colors = map[string]vmath.Color{"Accent": {R: 1, G: 0.4, B: 0.1, A: 1}}
	theme.Scalars = map[string]float64{"Spin": 90}

	ease := &desc.CubicBezierEasing{
		ControlPoint1: vmath.Vec2{X: 0.42},
		ControlPoint2: vmath.Vec2{X: 0.58, Y: 1},
	}
	square := &desc.CanvasRoundedRectangle{X: -40, Y: -40, W: 80, H: 80, RadiusX: 12, RadiusY: 12}
	badge := &desc.Path{Source: &desc.CanvasCombination{
		A:      square,
		B:      &desc.CanvasEllipse{RadiusX: 30, RadiusY: 30},
		Matrix: vmath.Translation3x2(40, -40),
		Mode:   desc.CombineModeUnion,
	}}

	accent := &desc.ColorBrush{Color: desc.Ptr(vmath.Color{R: 1, A: 1})}
	accent.Animators = []desc.Animator{{
		Property: "Color",
		Animation: desc.NewColorAnimation(2*time.Second,
			desc.KeyFrame[vmath.Color]{Progress: 0, Value: vmath.Color{R: 1, A: 1}},
			desc.KeyFrame[vmath.Color]{Progress: 0.5, Value: vmath.Color{G: 1, A: 1}, Easing: ease},
			desc.KeyFrame[vmath.Color]{Progress: 1, Value: vmath.Color{B: 1, A: 1}, Easing: ease},
		),
	}}

	shapes := &desc.ShapeVisual{
		VisualBase: desc.VisualBase{
			Object: desc.Object{Comment: "badge"},
			Offset: desc.Ptr(vmath.Vec3{X: 120, Y: 120}),
			Size:   desc.Ptr(vmath.Vec2{X: 240, Y: 240}),
		},
		Shapes: []desc.Shape{&desc.SpriteShape{
			Geometry:        &desc.PathGeometry{Path: badge},
			FillBrush:       accent,
			StrokeBrush:     &desc.ColorBrush{Color: desc.Ptr(vmath.ColorBlack)},
			StrokeThickness: desc.Ptr(2.0),
		}},
	}
	shapes.Animators = []desc.Animator{
		{
			Property: "Opacity",
			Animation: desc.NewScalarAnimation(time.Second,
				desc.KeyFrame[float64]{Progress: 0, Value: 0},
				desc.KeyFrame[float64]{Progress: 1, Value: 1, Easing: ease},
			),
		},
		{
			Property: "Scale",
			Animation: desc.NewVector3Animation(time.Second,
				desc.KeyFrame[vmath.Vec3]{Progress: 0, Value: vmath.Vec3{X: 0.5, Y: 0.5, Z: 1}},
				desc.KeyFrame[vmath.Vec3]{Progress: 1, Value: vmath.Vec3{X: 1, Y: 1, Z: 1}, Easing: ease},
			),
		},
		{
			Property: "RotationAngleInDegrees",
			Animation: &desc.ExpressionAnimation{
				AnimationBase: desc.AnimationBase{
					ReferenceParameters: []desc.ReferenceParameter{{Name: "theme", Node: theme}},
				},
				Expression: "theme.Spin",
			},
		},
	}

	return &desc.ContainerVisual{VisualBase: desc.VisualBase{
		Object:   desc.Object{Comment: "root", Properties: theme},
		Children: []desc.Visual{shapes},
	}}
}

// Package desc defines the declarative scene graph consumed by grove.
//
// A scene is a graph of immutable nodes: visuals, shapes, geometries, brushes,
// clips, easings, animations, property sets and animation controllers. Nodes
// are plain structs addressed by pointer. Identity, not structural equality,
// decides sharing: the same *ColorBrush referenced from two sprites is one
// brush, while two equal but distinct *ColorBrush values are two brushes.
//
// The graph is a DAG with one exception: an unowned PropertySet lists itself
// as its own Properties (see [NewPropertySet]).
//
// Optional fields are pointers. A nil field means "leave the engine default",
// which is not the same as the zero value. [Ptr] builds pointers inline:
//
//	sprite := &desc.SpriteVisual{
//		VisualBase: desc.VisualBase{
//			Offset:  desc.Ptr(vmath.Vec3{X: 10}),
//			Opacity: desc.Ptr(0.5),
//		},
//		Brush: brush,
//	}
//
// Once a graph has been handed to grove.Materialize it must not be mutated
// for as long as any materialization using it is in flight. The same graph
// can drive any number of materializations, concurrently or not.
package desc

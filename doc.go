// Package grove materializes declarative scene graphs into live compositor
// object graphs.
//
// A scene is described with the immutable node types of package [desc]:
// visuals, shapes, geometries, brushes, clips, easings, animations,
// property sets and animation controllers. The description is a graph, not
// a tree: one brush may fill many shapes, one animation may drive many
// properties. [Materialize] walks it and builds the equivalent graph of
// mutable objects from package [live], keeping every shared node shared.
//
// # Quick start
//
//	fill := &desc.ColorBrush{Color: desc.Ptr(vmath.ColorWhite)}
//	root := &desc.ContainerVisual{VisualBase: desc.VisualBase{
//		Children: []desc.Visual{
//			&desc.SpriteVisual{Brush: fill},
//			&desc.SpriteVisual{Brush: fill},
//		},
//	}}
//
//	c := live.NewCompositor()
//	res, err := grove.Materialize(c, root, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	c.Update(1.0 / 60) // advance animations
//
// Both live sprite visuals above paint with the same live color brush.
//
// # Materialization order
//
// Each node is populated in three phases. First its static fields are
// copied and the nodes it contains are materialized. Then its property set
// is materialized and, for a property set, its entries are inserted. Last
// its animators are started. A static write cancels the animation running
// on a property, so no static value is written after an animation on the
// same object has started.
//
// The live object for a node is cached before it is populated. A node
// reached again while it is being populated resolves to that object, which
// is how a property set referring to itself terminates. A node that
// contains itself through structural references (children, shapes,
// brushes, geometries) is reported as [ErrCycle].
//
// # Resources
//
// Surface brushes name external images by [desc.ResourceRef]. The
// [ResourceResolver] in [Config] turns each reference into a [live.Surface]
// and is called at most once per distinct reference. A missing image is
// not an error: the brush is left empty and a warning is logged. Package
// resolve has ready-made resolvers for file systems and maps.
//
// # Errors
//
// Errors from Materialize are *[MaterializeError] values naming the node
// that failed and wrapping one of [ErrUnknownNode], [ErrUnsupported],
// [ErrCycle], [ErrInvalidNode] or [ErrInvariant]:
//
//	if errors.Is(err, grove.ErrUnsupported) {
//		// e.g. a custom animation controller
//	}
//
// # Logging
//
// grove logs through [log/slog]. Nothing is logged until [SetLogger] is
// called.
package grove

// Package live is a retained-mode compositor object model: the mutable
// graph that grove materializes declarative scenes into.
//
// Every object is created by a [Compositor]:
//
//	c := live.NewCompositor()
//	root := c.CreateContainerVisual()
//	sprite := c.CreateSpriteVisual()
//	sprite.SetBrush(c.CreateColorBrush(vmath.ColorWhite))
//	sprite.SetSize(vmath.Vec2{X: 100, Y: 100})
//	root.InsertAtTop(sprite)
//
// # Properties and animation
//
// Animatable properties are read and written through typed getters and
// setters. A setter call is a static write: it cancels any animation running
// on the property. [Object.StartAnimation] binds a snapshot of an animation
// to a property, so one animation object can be reconfigured and started
// again without touching animations already running:
//
//	a := c.CreateScalarKeyFrameAnimation()
//	a.SetDuration(time.Second)
//	a.InsertKeyFrame(0, 0, nil)
//	a.InsertKeyFrame(1, 1, nil)
//	_ = sprite.StartAnimation("Opacity", a)
//
// Sub-channels of vector and color properties can be animated on their own,
// e.g. "Offset.X" or "Color.A".
//
// Key frame animations get an implicit [AnimationController], reachable with
// [Object.TryGetAnimationController]. Call [Compositor.Update] each frame to
// advance running animations.
//
// # Geometry
//
// [CanvasGeometry] describes immutable 2D regions as signed distance fields
// and supports boolean combination, transformation, containment and area
// estimation. [CanvasPathBuilder] builds regions from figures of lines and
// cubic beziers.
package live

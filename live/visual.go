package live

import (
	"math"
	"slices"

	"github.com/phanxgames/grove/vmath"
)

const degToRad = math.Pi / 180

// Visual is a node of the live visual tree.
type Visual interface {
	Object

	Parent() Visual
	Children() []Visual
	InsertAtTop(child Visual)
	InsertAtBottom(child Visual)
	Remove(child Visual)
	RemoveAll()

	BorderMode() BorderMode
	SetBorderMode(BorderMode)
	CenterPoint() vmath.Vec3
	SetCenterPoint(vmath.Vec3)
	Clip() Clip
	SetClip(Clip)
	IsVisible() bool
	SetIsVisible(bool)
	Offset() vmath.Vec3
	SetOffset(vmath.Vec3)
	Opacity() float64
	SetOpacity(float64)
	RotationAngleInDegrees() float64
	SetRotationAngleInDegrees(float64)
	RotationAxis() vmath.Vec3
	SetRotationAxis(vmath.Vec3)
	Scale() vmath.Vec3
	SetScale(vmath.Vec3)
	Size() vmath.Vec2
	SetSize(vmath.Vec2)
	TransformMatrix() vmath.Matrix4x4
	SetTransformMatrix(vmath.Matrix4x4)

	LocalTransform() vmath.Matrix3x2
	WorldTransform() vmath.Matrix3x2

	visualCore() *visual
}

// visual is embedded by every visual type.
type visual struct {
	object
	parent     Visual
	children   []Visual
	clip       Clip
	borderMode BorderMode
}

func (v *visual) initVisual(c *Compositor, self Visual, typeName string) {
	v.init(c, self, typeName)
	v.declare("CenterPoint", vmath.Vec3{})
	v.declare("IsVisible", true)
	v.declare("Offset", vmath.Vec3{})
	v.declare("Opacity", 1.0)
	v.declare("RotationAngleInDegrees", 0.0)
	v.declare("RotationAxis", vmath.Vec3{Z: 1})
	v.declare("Scale", vmath.Vec3{X: 1, Y: 1, Z: 1})
	v.declare("Size", vmath.Vec2{})
	v.declare("TransformMatrix", vmath.Identity4x4())
}

func (v *visual) visualCore() *visual { return v }

// --- Tree manipulation ---

// Parent returns the parent visual, or nil.
func (v *visual) Parent() Visual { return v.parent }

// Children returns the child list. The slice must not be modified.
func (v *visual) Children() []Visual { return v.children }

// InsertAtTop appends child so it draws above its siblings.
// Panics if child already has a parent or is an ancestor of v.
func (v *visual) InsertAtTop(child Visual) {
	v.insertAt(child, len(v.children))
}

// InsertAtBottom prepends child so it draws below its siblings.
func (v *visual) InsertAtBottom(child Visual) {
	v.insertAt(child, 0)
}

func (v *visual) insertAt(child Visual, index int) {
	if child == nil {
		panic("live: cannot insert nil visual")
	}
	cv := child.visualCore()
	if isAncestor(cv, v) {
		panic("live: inserting visual would create a cycle")
	}
	if cv.parent != nil {
		panic("live: visual already has a parent")
	}
	cv.parent = v.self.(Visual)
	v.children = slices.Insert(v.children, index, child)
	v.touch("Children")
}

// Remove detaches child. Panics if child's parent is not v.
func (v *visual) Remove(child Visual) {
	cv := child.visualCore()
	if cv.parent == nil || cv.parent.visualCore() != v {
		panic("live: visual's parent is not this visual")
	}
	v.children = slices.DeleteFunc(v.children, func(c Visual) bool { return c == child })
	cv.parent = nil
	v.touch("Children")
}

// RemoveAll detaches every child.
func (v *visual) RemoveAll() {
	for _, c := range v.children {
		c.visualCore().parent = nil
	}
	v.children = nil
	v.touch("Children")
}

// Dispose detaches v from its parent and disposes the subtree.
func (v *visual) Dispose() {
	if v.disposed {
		return
	}
	if v.parent != nil {
		v.parent.Remove(v.self.(Visual))
	}
	v.dispose()
}

func (v *visual) dispose() {
	for _, c := range v.children {
		cv := c.visualCore()
		cv.parent = nil
		cv.dispose()
	}
	v.children = nil
	v.object.Dispose()
}

// isAncestor reports whether candidate is node or one of node's ancestors.
func isAncestor(candidate, node *visual) bool {
	for p := node; p != nil; {
		if p == candidate {
			return true
		}
		if p.parent == nil {
			return false
		}
		p = p.parent.visualCore()
	}
	return false
}

// --- Properties ---

// BorderMode returns the edge antialiasing mode.
func (v *visual) BorderMode() BorderMode { return v.borderMode }

// SetBorderMode sets the edge antialiasing mode.
func (v *visual) SetBorderMode(m BorderMode) { v.borderMode = m; v.touch("BorderMode") }

// Clip returns the clip, or nil.
func (v *visual) Clip() Clip { return v.clip }

// SetClip sets the clip.
func (v *visual) SetClip(c Clip) { v.clip = c; v.touch("Clip") }

// CenterPoint is the pivot of Scale and rotation.
func (v *visual) CenterPoint() vmath.Vec3 { return get[vmath.Vec3](&v.object, "CenterPoint") }

// SetCenterPoint sets the pivot.
func (v *visual) SetCenterPoint(p vmath.Vec3) { v.setStatic("CenterPoint", p) }

// IsVisible reports whether the visual and its subtree are drawn.
func (v *visual) IsVisible() bool { return get[bool](&v.object, "IsVisible") }

// SetIsVisible shows or hides the subtree.
func (v *visual) SetIsVisible(b bool) { v.setStatic("IsVisible", b) }

// Offset is the translation relative to the parent.
func (v *visual) Offset() vmath.Vec3 { return get[vmath.Vec3](&v.object, "Offset") }

// SetOffset sets the translation.
func (v *visual) SetOffset(p vmath.Vec3) { v.setStatic("Offset", p) }

// Opacity is in [0, 1]. It multiplies down the tree.
func (v *visual) Opacity() float64 { return get[float64](&v.object, "Opacity") }

// SetOpacity sets the opacity.
func (v *visual) SetOpacity(a float64) { v.setStatic("Opacity", a) }

// RotationAngleInDegrees is the rotation about RotationAxis.
func (v *visual) RotationAngleInDegrees() float64 {
	return get[float64](&v.object, "RotationAngleInDegrees")
}

// SetRotationAngleInDegrees sets the rotation.
func (v *visual) SetRotationAngleInDegrees(d float64) { v.setStatic("RotationAngleInDegrees", d) }

// RotationAxis defaults to the Z axis.
func (v *visual) RotationAxis() vmath.Vec3 { return get[vmath.Vec3](&v.object, "RotationAxis") }

// SetRotationAxis sets the rotation axis.
func (v *visual) SetRotationAxis(a vmath.Vec3) { v.setStatic("RotationAxis", a) }

// Scale is applied about CenterPoint.
func (v *visual) Scale() vmath.Vec3 { return get[vmath.Vec3](&v.object, "Scale") }

// SetScale sets the scale.
func (v *visual) SetScale(s vmath.Vec3) { v.setStatic("Scale", s) }

// Size is the layout size.
func (v *visual) Size() vmath.Vec2 { return get[vmath.Vec2](&v.object, "Size") }

// SetSize sets the layout size.
func (v *visual) SetSize(s vmath.Vec2) { v.setStatic("Size", s) }

// TransformMatrix is applied after the center, scale and rotation terms.
func (v *visual) TransformMatrix() vmath.Matrix4x4 {
	return get[vmath.Matrix4x4](&v.object, "TransformMatrix")
}

// SetTransformMatrix sets the transform matrix.
func (v *visual) SetTransformMatrix(m vmath.Matrix4x4) { v.setStatic("TransformMatrix", m) }

// LocalTransform projects the visual's transform properties onto the XY
// plane. Composition order:
//
//	Translate(-CenterPoint) -> Scale -> Rotate -> Translate(CenterPoint) -> TransformMatrix -> Translate(Offset)
//
// Rotation is applied only when RotationAxis is the Z axis.
func (v *visual) LocalTransform() vmath.Matrix3x2 {
	cp := v.CenterPoint()
	s := v.Scale()
	m := vmath.Translation3x2(-cp.X, -cp.Y).Mul(vmath.Scale3x2(s.X, s.Y))
	if ax := v.RotationAxis(); ax.X == 0 && ax.Y == 0 && ax.Z != 0 {
		deg := v.RotationAngleInDegrees()
		if ax.Z < 0 {
			deg = -deg
		}
		m = m.Mul(vmath.Rotation3x2(deg * degToRad))
	}
	m = m.Mul(vmath.Translation3x2(cp.X, cp.Y)).Mul(v.TransformMatrix().Affine2D())
	off := v.Offset()
	return m.Mul(vmath.Translation3x2(off.X, off.Y))
}

// WorldTransform composes LocalTransform with every ancestor's.
func (v *visual) WorldTransform() vmath.Matrix3x2 {
	m := v.LocalTransform()
	if v.parent != nil {
		m = m.Mul(v.parent.WorldTransform())
	}
	return m
}

// ContainerVisual groups child visuals.
type ContainerVisual struct {
	visual
}

// ShapeVisual draws vector shapes.
type ShapeVisual struct {
	visual
	shapes  []Shape
	viewBox *ViewBox
}

// Shapes returns the shape list.
func (v *ShapeVisual) Shapes() []Shape { return v.shapes }

// AddShape appends a shape.
func (v *ShapeVisual) AddShape(s Shape) { v.shapes = append(v.shapes, s); v.touch("Shapes") }

// ViewBox returns the view box, or nil.
func (v *ShapeVisual) ViewBox() *ViewBox { return v.viewBox }

// SetViewBox sets the view box.
func (v *ShapeVisual) SetViewBox(b *ViewBox) { v.viewBox = b; v.touch("ViewBox") }

// SpriteVisual fills its Size with a brush.
type SpriteVisual struct {
	visual
	brush  Brush
	shadow *DropShadow
}

// Brush returns the brush, or nil.
func (v *SpriteVisual) Brush() Brush { return v.brush }

// SetBrush sets the brush.
func (v *SpriteVisual) SetBrush(b Brush) { v.brush = b; v.touch("Brush") }

// Shadow returns the drop shadow, or nil.
func (v *SpriteVisual) Shadow() *DropShadow { return v.shadow }

// SetShadow sets the drop shadow.
func (v *SpriteVisual) SetShadow(s *DropShadow) { v.shadow = s; v.touch("Shadow") }

// LayerVisual composites its children as one layer.
type LayerVisual struct {
	visual
	shadow *DropShadow
}

// Shadow returns the drop shadow, or nil.
func (v *LayerVisual) Shadow() *DropShadow { return v.shadow }

// SetShadow sets the drop shadow.
func (v *LayerVisual) SetShadow(s *DropShadow) { v.shadow = s; v.touch("Shadow") }

// DropShadow is cast by sprite and layer visuals.
type DropShadow struct {
	object
	mask         Brush
	sourcePolicy DropShadowSourcePolicy
}

// BlurRadius defaults to 9.
func (s *DropShadow) BlurRadius() float64 { return get[float64](&s.object, "BlurRadius") }

func (s *DropShadow) SetBlurRadius(r float64) { s.setStatic("BlurRadius", r) }

func (s *DropShadow) Color() vmath.Color { return get[vmath.Color](&s.object, "Color") }

func (s *DropShadow) SetColor(c vmath.Color) { s.setStatic("Color", c) }

func (s *DropShadow) Offset() vmath.Vec3 { return get[vmath.Vec3](&s.object, "Offset") }

func (s *DropShadow) SetOffset(o vmath.Vec3) { s.setStatic("Offset", o) }

func (s *DropShadow) Opacity() float64 { return get[float64](&s.object, "Opacity") }

func (s *DropShadow) SetOpacity(a float64) { s.setStatic("Opacity", a) }

// Mask returns the brush whose alpha shapes the shadow, or nil.
func (s *DropShadow) Mask() Brush { return s.mask }

func (s *DropShadow) SetMask(b Brush) { s.mask = b; s.touch("Mask") }

func (s *DropShadow) SourcePolicy() DropShadowSourcePolicy { return s.sourcePolicy }

func (s *DropShadow) SetSourcePolicy(p DropShadowSourcePolicy) {
	s.sourcePolicy = p
	s.touch("SourcePolicy")
}

// ViewBox maps shape coordinates into a shape visual.
type ViewBox struct {
	object
}

func (b *ViewBox) Size() vmath.Vec2 { return get[vmath.Vec2](&b.object, "Size") }

func (b *ViewBox) SetSize(s vmath.Vec2) { b.setStatic("Size", s) }

func (b *ViewBox) Offset() vmath.Vec2 { return get[vmath.Vec2](&b.object, "Offset") }

func (b *ViewBox) SetOffset(o vmath.Vec2) { b.setStatic("Offset", o) }

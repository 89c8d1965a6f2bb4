package desc

import "github.com/phanxgames/grove/vmath"

// Visual is a node of the visual tree.
type Visual interface {
	Node
	VisualProps() *VisualBase
}

// VisualBase holds the fields shared by every visual. Every pointer field is
// optional.
type VisualBase struct {
	Object
	BorderMode             *BorderMode
	CenterPoint            *vmath.Vec3
	Clip                   Clip
	IsVisible              *bool
	Offset                 *vmath.Vec3
	Opacity                *float64
	RotationAngleInDegrees *float64
	RotationAxis           *vmath.Vec3
	Scale                  *vmath.Vec3
	Size                   *vmath.Vec2
	TransformMatrix        *vmath.Matrix4x4

	// Children are drawn in order, last on top.
	Children []Visual
}

// VisualProps returns v.
func (v *VisualBase) VisualProps() *VisualBase { return v }

// ContainerVisual groups child visuals.
type ContainerVisual struct {
	VisualBase
}

// ShapeVisual draws an ordered list of vector shapes.
type ShapeVisual struct {
	VisualBase
	Shapes  []Shape
	ViewBox *ViewBox
}

// SpriteVisual fills its Size with a brush.
type SpriteVisual struct {
	VisualBase
	Brush  Brush
	Shadow *DropShadow
}

// LayerVisual composites its children as one layer, optionally casting a shadow.
type LayerVisual struct {
	VisualBase
	Shadow *DropShadow
}

// DropShadow is a shadow cast by a sprite or layer visual.
type DropShadow struct {
	Object
	BlurRadius   *float64
	Color        *vmath.Color
	Mask         Brush
	Offset       *vmath.Vec3
	Opacity      *float64
	SourcePolicy *DropShadowSourcePolicy
}

// ViewBox maps shape coordinates into a shape visual.
type ViewBox struct {
	Object
	Size   vmath.Vec2
	Offset *vmath.Vec2
}

func (*ContainerVisual) Kind() Kind { return KindContainerVisual }
func (*ShapeVisual) Kind() Kind     { return KindShapeVisual }
func (*SpriteVisual) Kind() Kind    { return KindSpriteVisual }
func (*LayerVisual) Kind() Kind     { return KindLayerVisual }
func (*DropShadow) Kind() Kind      { return KindDropShadow }
func (*ViewBox) Kind() Kind         { return KindViewBox }

// Clip restricts the drawn area of a visual.
type Clip interface {
	Node
	ClipProps() *ClipBase
}

// ClipBase holds the fields shared by clips.
type ClipBase struct {
	Object
	CenterPoint *vmath.Vec2
	Scale       *vmath.Vec2
}

// ClipProps returns c.
func (c *ClipBase) ClipProps() *ClipBase { return c }

// InsetClip clips to the visual's bounds shrunk by per-edge insets.
type InsetClip struct {
	ClipBase
	LeftInset   *float64
	TopInset    *float64
	RightInset  *float64
	BottomInset *float64
}

// GeometricClip clips to a geometry.
type GeometricClip struct {
	ClipBase
	Geometry Geometry
}

func (*InsetClip) Kind() Kind     { return KindInsetClip }
func (*GeometricClip) Kind() Kind { return KindGeometricClip }

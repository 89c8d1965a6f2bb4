package live

import (
	"math"

	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	"github.com/gogpu/gg"

	"github.com/phanxgames/grove/vmath"
)

// farAway is the distance reported by geometry with no area.
const farAway = 1e18

// flattenTolerance bounds the distance between a curve and its flattening.
const flattenTolerance = 0.05

// CanvasGeometry is an immutable 2D region, represented as a signed distance
// field. Negative distances are inside. Combining and transforming return
// new geometries and leave their inputs unchanged.
type CanvasGeometry struct {
	field  sdf.SDF2
	bounds vmath.Rect
	empty  bool
	// outline is the drawable outline, or nil when the region is the
	// result of a boolean combination.
	outline *gg.Path
}

func newCanvasGeometry(field sdf.SDF2, bounds vmath.Rect, outline *gg.Path) *CanvasGeometry {
	return &CanvasGeometry{field: field, bounds: bounds, outline: outline}
}

func emptyCanvasGeometry() *CanvasGeometry {
	return &CanvasGeometry{field: emptySDF{}, empty: true, outline: gg.NewPath()}
}

// NewCanvasEllipse returns the ellipse centered at (x, y).
func NewCanvasEllipse(x, y, radiusX, radiusY float64) *CanvasGeometry {
	if radiusX <= 0 || radiusY <= 0 {
		return emptyCanvasGeometry()
	}
	p := gg.NewPath()
	p.Ellipse(x, y, radiusX, radiusY)
	b := vmath.Rect{X: x - radiusX, Y: y - radiusY, Width: 2 * radiusX, Height: 2 * radiusY}
	return newCanvasGeometry(&ellipseSDF{cx: x, cy: y, rx: radiusX, ry: radiusY, bb: b}, b, p)
}

// NewCanvasRoundedRectangle returns the rectangle at (x, y) of size w by h
// whose corners are elliptical arcs with the given radii. Radii are clamped
// to half the size.
func NewCanvasRoundedRectangle(x, y, w, h, radiusX, radiusY float64) *CanvasGeometry {
	if w <= 0 || h <= 0 {
		return emptyCanvasGeometry()
	}
	rx := math.Max(0, math.Min(radiusX, w/2))
	ry := math.Max(0, math.Min(radiusY, h/2))
	b := vmath.Rect{X: x, Y: y, Width: w, Height: h}
	return newCanvasGeometry(
		&roundedRectSDF{cx: x + w/2, cy: y + h/2, hx: w / 2, hy: h / 2, rx: rx, ry: ry, bb: b},
		b, roundedRectOutline(x, y, w, h, rx, ry))
}

// NewCanvasGroup returns the region covered by geometries under rule.
func NewCanvasGroup(rule FillRule, geometries ...*CanvasGeometry) *CanvasGeometry {
	if len(geometries) == 0 {
		return emptyCanvasGeometry()
	}
	fields := make([]sdf.SDF2, 0, len(geometries))
	var bounds vmath.Rect
	outline := gg.NewPath()
	first := true
	for _, g := range geometries {
		if g == nil || g.empty {
			continue
		}
		fields = append(fields, g.field)
		if first {
			bounds, first = g.bounds, false
		} else {
			bounds = bounds.Union(g.bounds)
		}
		if outline != nil && g.outline != nil {
			outline.Append(g.outline)
		} else {
			outline = nil
		}
	}
	if len(fields) == 0 {
		return emptyCanvasGeometry()
	}
	return newCanvasGeometry(&groupSDF{children: fields, rule: rule, bb: bounds}, bounds, outline)
}

// CombineWith returns the boolean combination of g with other, where other
// is first transformed by m.
func (g *CanvasGeometry) CombineWith(other *CanvasGeometry, m vmath.Matrix3x2, mode CombineMode) *CanvasGeometry {
	if !m.IsIdentity() {
		other = other.Transform(m)
	}
	switch {
	case g.empty && other.empty:
		return emptyCanvasGeometry()
	case other.empty:
		if mode == CombineModeIntersect {
			return emptyCanvasGeometry()
		}
		return g
	case g.empty:
		if mode == CombineModeUnion || mode == CombineModeXor {
			return other
		}
		return emptyCanvasGeometry()
	}

	a, b := g.field, other.field
	var field sdf.SDF2
	bounds := g.bounds
	switch mode {
	case CombineModeUnion:
		field = sdf.Union2D(a, b)
		bounds = bounds.Union(other.bounds)
	case CombineModeExclude:
		field = sdf.Difference2D(a, b)
	case CombineModeIntersect:
		field = sdf.Intersect2D(a, b)
	case CombineModeXor:
		field = sdf.Difference2D(sdf.Union2D(a, b), sdf.Intersect2D(a, b))
		bounds = bounds.Union(other.bounds)
	default:
		panic("live: unknown combine mode")
	}
	return newCanvasGeometry(&boundedSDF{SDF2: field, bb: bounds}, bounds, nil)
}

// Transform returns g transformed by m. A singular m collapses g to an
// empty geometry.
func (g *CanvasGeometry) Transform(m vmath.Matrix3x2) *CanvasGeometry {
	if g.empty || m.IsIdentity() {
		return g
	}
	inv, ok := m.Invert()
	if !ok {
		return emptyCanvasGeometry()
	}
	bounds := m.TransformRect(g.bounds)
	var outline *gg.Path
	if g.outline != nil {
		outline = g.outline.Transform(toGGMatrix(m))
	}
	return newCanvasGeometry(
		&transformSDF{src: g.field, inv: inv, scale: m.ScaleFactor(), bb: bounds},
		bounds, outline)
}

// IsEmpty reports whether g is known to cover no area.
func (g *CanvasGeometry) IsEmpty() bool { return g.empty }

// Distance returns the signed distance from p to the edge of g.
func (g *CanvasGeometry) Distance(p vmath.Vec2) float64 {
	return g.field.Evaluate(v2.Vec{X: p.X, Y: p.Y})
}

// Contains reports whether p is inside g. Edge points are inside.
func (g *CanvasGeometry) Contains(p vmath.Vec2) bool {
	return !g.empty && g.Distance(p) <= 0
}

// Bounds returns a rectangle that contains g. It may be larger than the
// tight bounds after boolean operations.
func (g *CanvasGeometry) Bounds() vmath.Rect { return g.bounds }

// Area estimates the area of g by sampling cell centers on a grid of the
// given step.
func (g *CanvasGeometry) Area(step float64) float64 {
	if g.empty || step <= 0 {
		return 0
	}
	b := g.bounds
	nx := int(math.Ceil(b.Width / step))
	ny := int(math.Ceil(b.Height / step))
	inside := 0
	for j := range ny {
		y := b.Y + (float64(j)+0.5)*step
		for i := range nx {
			x := b.X + (float64(i)+0.5)*step
			if g.field.Evaluate(v2.Vec{X: x, Y: y}) <= 0 {
				inside++
			}
		}
	}
	return float64(inside) * step * step
}

// Outline returns a copy of the drawable outline, or nil when g is a
// boolean combination.
func (g *CanvasGeometry) Outline() *gg.Path {
	if g.outline == nil {
		return nil
	}
	return g.outline.Clone()
}

// --- Path building ---

// CanvasPathBuilder records figures for NewCanvasPath.
type CanvasPathBuilder struct {
	rule    FillRule
	outline *gg.Path
	figures []*gg.Path
	open    *gg.Path
}

// NewCanvasPathBuilder returns an empty builder using FillRuleAlternate.
func NewCanvasPathBuilder() *CanvasPathBuilder {
	return &CanvasPathBuilder{outline: gg.NewPath()}
}

// SetFillRule sets the fill rule of the path.
func (b *CanvasPathBuilder) SetFillRule(r FillRule) { b.rule = r }

// BeginFigure starts a figure at p, ending any open figure.
func (b *CanvasPathBuilder) BeginFigure(p vmath.Vec2) {
	if b.open != nil {
		b.EndFigure(FigureLoopOpen)
	}
	b.open = gg.NewPath()
	b.open.MoveTo(p.X, p.Y)
	b.outline.MoveTo(p.X, p.Y)
}

// AddLine adds a line to p.
func (b *CanvasPathBuilder) AddLine(p vmath.Vec2) {
	b.ensureFigure()
	b.open.LineTo(p.X, p.Y)
	b.outline.LineTo(p.X, p.Y)
}

// AddCubicBezier adds a cubic bezier to p.
func (b *CanvasPathBuilder) AddCubicBezier(cp1, cp2, p vmath.Vec2) {
	b.ensureFigure()
	b.open.CubicTo(cp1.X, cp1.Y, cp2.X, cp2.Y, p.X, p.Y)
	b.outline.CubicTo(cp1.X, cp1.Y, cp2.X, cp2.Y, p.X, p.Y)
}

// EndFigure ends the current figure. Only a closed figure gets a closing
// edge in its outline; every figure is filled as if closed.
func (b *CanvasPathBuilder) EndFigure(loop FigureLoop) {
	if b.open == nil {
		return
	}
	if loop == FigureLoopClosed {
		b.outline.Close()
	}
	b.open.Close()
	b.figures = append(b.figures, b.open)
	b.open = nil
}

func (b *CanvasPathBuilder) ensureFigure() {
	if b.open == nil {
		b.BeginFigure(vmath.Vec2{})
	}
}

// NewCanvasPath returns the region filled by the builder's figures.
func NewCanvasPath(b *CanvasPathBuilder) *CanvasGeometry {
	if b.open != nil {
		b.EndFigure(FigureLoopOpen)
	}
	if len(b.figures) == 0 {
		return emptyCanvasGeometry()
	}
	fill := gg.NewPath()
	var segs []segment
	for _, f := range b.figures {
		fill.Append(f)
		pts := f.Flatten(flattenTolerance)
		for i := 1; i < len(pts); i++ {
			segs = append(segs, segment{pts[i-1], pts[i]})
		}
	}
	bb := fill.BoundingBox()
	bounds := vmath.Rect{X: bb.Min.X, Y: bb.Min.Y, Width: bb.Width(), Height: bb.Height()}
	return newCanvasGeometry(
		&pathSDF{fill: fill, segs: segs, rule: b.rule, bb: bounds},
		bounds, b.outline.Clone())
}

// --- Distance fields ---

func toBox2(r vmath.Rect) sdf.Box2 {
	return sdf.Box2{
		Min: v2.Vec{X: r.X, Y: r.Y},
		Max: v2.Vec{X: r.X + r.Width, Y: r.Y + r.Height},
	}
}

func toGGMatrix(m vmath.Matrix3x2) gg.Matrix {
	return gg.Matrix{
		A: m.M11, B: m.M21, C: m.M31,
		D: m.M12, E: m.M22, F: m.M32,
	}
}

type emptySDF struct{}

func (emptySDF) Evaluate(v2.Vec) float64 { return farAway }
func (emptySDF) BoundingBox() sdf.Box2   { return sdf.Box2{} }

// boundedSDF overrides the bounding box of a combined field.
type boundedSDF struct {
	sdf.SDF2
	bb vmath.Rect
}

func (s *boundedSDF) BoundingBox() sdf.Box2 { return toBox2(s.bb) }

type ellipseSDF struct {
	cx, cy, rx, ry float64
	bb             vmath.Rect
}

func (s *ellipseSDF) Evaluate(p v2.Vec) float64 {
	k := math.Hypot((p.X-s.cx)/s.rx, (p.Y-s.cy)/s.ry)
	return (k - 1) * math.Min(s.rx, s.ry)
}

func (s *ellipseSDF) BoundingBox() sdf.Box2 { return toBox2(s.bb) }

type roundedRectSDF struct {
	cx, cy, hx, hy, rx, ry float64
	bb                     vmath.Rect
}

func (s *roundedRectSDF) Evaluate(p v2.Vec) float64 {
	qx := math.Abs(p.X-s.cx) - (s.hx - s.rx)
	qy := math.Abs(p.Y-s.cy) - (s.hy - s.ry)
	if qx > 0 && qy > 0 {
		// Corner region.
		if s.rx == 0 || s.ry == 0 {
			return math.Hypot(qx, qy)
		}
		k := math.Hypot(qx/s.rx, qy/s.ry)
		return (k - 1) * math.Min(s.rx, s.ry)
	}
	return math.Max(qx-s.rx, qy-s.ry)
}

func (s *roundedRectSDF) BoundingBox() sdf.Box2 { return toBox2(s.bb) }

func roundedRectOutline(x, y, w, h, rx, ry float64) *gg.Path {
	p := gg.NewPath()
	if rx == 0 || ry == 0 {
		p.Rectangle(x, y, w, h)
		return p
	}
	// Cubic approximation of a quarter ellipse.
	const k = 0.5522847498
	kx, ky := rx*k, ry*k
	p.MoveTo(x+rx, y)
	p.LineTo(x+w-rx, y)
	p.CubicTo(x+w-rx+kx, y, x+w, y+ry-ky, x+w, y+ry)
	p.LineTo(x+w, y+h-ry)
	p.CubicTo(x+w, y+h-ry+ky, x+w-rx+kx, y+h, x+w-rx, y+h)
	p.LineTo(x+rx, y+h)
	p.CubicTo(x+rx-kx, y+h, x, y+h-ry+ky, x, y+h-ry)
	p.LineTo(x, y+ry)
	p.CubicTo(x, y+ry-ky, x+rx-kx, y, x+rx, y)
	p.Close()
	return p
}

type segment struct {
	a, b gg.Point
}

func (s segment) distance(p gg.Point) float64 {
	ab := s.b.Sub(s.a)
	ap := p.Sub(s.a)
	l2 := ab.Dot(ab)
	t := 0.0
	if l2 > 0 {
		t = math.Max(0, math.Min(1, ap.Dot(ab)/l2))
	}
	d := ap.Sub(ab.Mul(t))
	return math.Hypot(d.X, d.Y)
}

// pathSDF is the field of a filled path. fill has every figure closed.
type pathSDF struct {
	fill *gg.Path
	segs []segment
	rule FillRule
	bb   vmath.Rect
}

func (s *pathSDF) Evaluate(p v2.Vec) float64 {
	pt := gg.Pt(p.X, p.Y)
	d := math.Inf(1)
	for _, sg := range s.segs {
		d = math.Min(d, sg.distance(pt))
	}
	if math.IsInf(d, 1) {
		return farAway
	}
	w := s.fill.Winding(pt)
	inside := w != 0
	if s.rule == FillRuleAlternate {
		inside = w%2 != 0
	}
	if inside {
		return -d
	}
	return d
}

func (s *pathSDF) BoundingBox() sdf.Box2 { return toBox2(s.bb) }

// groupSDF fills where the number of covering children satisfies rule.
type groupSDF struct {
	children []sdf.SDF2
	rule     FillRule
	bb       vmath.Rect
}

func (s *groupSDF) Evaluate(p v2.Vec) float64 {
	count := 0
	d := math.Inf(1)
	for _, c := range s.children {
		e := c.Evaluate(p)
		if e <= 0 {
			count++
		}
		d = math.Min(d, math.Abs(e))
	}
	inside := count > 0
	if s.rule == FillRuleAlternate {
		inside = count%2 == 1
	}
	if inside {
		return -d
	}
	return d
}

func (s *groupSDF) BoundingBox() sdf.Box2 { return toBox2(s.bb) }

// transformSDF evaluates src in its own space. Distances are scaled by the
// transform's mean scale, which is exact for similarity transforms.
type transformSDF struct {
	src   sdf.SDF2
	inv   vmath.Matrix3x2
	scale float64
	bb    vmath.Rect
}

func (s *transformSDF) Evaluate(p v2.Vec) float64 {
	q := s.inv.TransformPoint(vmath.Vec2{X: p.X, Y: p.Y})
	d := s.src.Evaluate(v2.Vec{X: q.X, Y: q.Y})
	if d >= farAway {
		return d
	}
	return d * s.scale
}

func (s *transformSDF) BoundingBox() sdf.Box2 { return toBox2(s.bb) }

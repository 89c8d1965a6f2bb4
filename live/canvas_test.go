package live

import (
	"math"
	"testing"

	"github.com/phanxgames/grove/vmath"
)

const areaStep = 0.05

func square(x, y, size float64) *CanvasGeometry {
	return NewCanvasRoundedRectangle(x, y, size, size, 0, 0)
}

func assertArea(t *testing.T, name string, g *CanvasGeometry, want, tol float64) {
	t.Helper()
	if got := g.Area(areaStep); math.Abs(got-want) > tol {
		t.Errorf("%s area = %v, want %v", name, got, want)
	}
}

func TestCombineModes(t *testing.T) {
	a := square(0, 0, 2)
	b := square(1, 1, 2)
	id := vmath.Identity3x2()

	tests := []struct {
		mode CombineMode
		want float64
	}{
		{CombineModeUnion, 7},
		{CombineModeIntersect, 1},
		{CombineModeExclude, 3},
		{CombineModeXor, 6},
	}
	for _, tt := range tests {
		g := a.CombineWith(b, id, tt.mode)
		assertArea(t, "mode", g, tt.want, 0.01)
		if g.Outline() != nil {
			t.Errorf("mode %v: boolean result has an outline", tt.mode)
		}
	}
}

func TestCombineWithTransformsOther(t *testing.T) {
	a := square(0, 0, 2)
	g := a.CombineWith(square(0, 0, 2), vmath.Translation3x2(1, 1), CombineModeIntersect)
	assertArea(t, "intersect", g, 1, 0.01)
	if !g.Contains(vmath.Vec2{X: 1.5, Y: 1.5}) || g.Contains(vmath.Vec2{X: 0.5, Y: 0.5}) {
		t.Error("intersection covers the wrong region")
	}
}

func TestCombineLeavesInputsUnchanged(t *testing.T) {
	a := square(0, 0, 2)
	b := square(1, 1, 2)
	_ = a.CombineWith(b, vmath.Translation3x2(5, 5), CombineModeUnion)
	assertArea(t, "a", a, 4, 0.01)
	assertArea(t, "b", b, 4, 0.01)
}

func TestCombineWithEmpty(t *testing.T) {
	a := square(0, 0, 2)
	empty := NewCanvasEllipse(0, 0, 0, 0)
	if !empty.IsEmpty() {
		t.Fatal("zero-radius ellipse is not empty")
	}
	id := vmath.Identity3x2()
	assertArea(t, "union", a.CombineWith(empty, id, CombineModeUnion), 4, 0.01)
	assertArea(t, "intersect", a.CombineWith(empty, id, CombineModeIntersect), 0, 0)
	assertArea(t, "exclude from empty", empty.CombineWith(a, id, CombineModeExclude), 0, 0)
	assertArea(t, "xor with empty", empty.CombineWith(a, id, CombineModeXor), 4, 0.01)
}

func TestEllipseArea(t *testing.T) {
	g := NewCanvasEllipse(3, 4, 2, 1)
	assertArea(t, "ellipse", g, 2*math.Pi, 0.1)
	if !g.Contains(vmath.Vec2{X: 4.5, Y: 4}) {
		t.Error("ellipse does not contain a point on its major axis")
	}
	if g.Contains(vmath.Vec2{X: 3, Y: 5.5}) {
		t.Error("ellipse contains a point beyond its minor radius")
	}
	b := g.Bounds()
	if b != (vmath.Rect{X: 1, Y: 3, Width: 4, Height: 2}) {
		t.Errorf("Bounds = %v", b)
	}
}

func TestRoundedRectangleCorners(t *testing.T) {
	g := NewCanvasRoundedRectangle(0, 0, 10, 10, 2, 2)
	want := 100 - (4-math.Pi)*4
	assertArea(t, "rounded", g, want, 0.1)
	if g.Contains(vmath.Vec2{X: 0.1, Y: 0.1}) {
		t.Error("corner point inside a rounded rectangle")
	}
	if !g.Contains(vmath.Vec2{X: 5, Y: 0.1}) {
		t.Error("edge point outside a rounded rectangle")
	}
}

func TestRoundedRectangleClampsRadii(t *testing.T) {
	g := NewCanvasRoundedRectangle(0, 0, 2, 2, 5, 5)
	assertArea(t, "circle", g, math.Pi, 0.1)
}

func TestTransform(t *testing.T) {
	g := NewCanvasEllipse(0, 0, 1, 1)
	scaled := g.Transform(vmath.Scale3x2(2, 2).Mul(vmath.Translation3x2(10, 0)))
	assertArea(t, "scaled", scaled, 4*math.Pi, 0.2)
	if !scaled.Contains(vmath.Vec2{X: 11.5, Y: 0}) {
		t.Error("transformed ellipse misses a point it should cover")
	}
	if d := scaled.Distance(vmath.Vec2{X: 14, Y: 0}); math.Abs(d-2) > 1e-9 {
		t.Errorf("Distance = %v, want 2", d)
	}
	if scaled.Outline() == nil {
		t.Error("transformed ellipse lost its outline")
	}
	if !g.Transform(vmath.Scale3x2(0, 1)).IsEmpty() {
		t.Error("singular transform should collapse to empty")
	}
}

func TestGroupFillRules(t *testing.T) {
	a := square(0, 0, 2)
	b := square(1, 1, 2)
	assertArea(t, "winding", NewCanvasGroup(FillRuleWinding, a, b), 7, 0.01)
	assertArea(t, "alternate", NewCanvasGroup(FillRuleAlternate, a, b), 6, 0.01)
	if NewCanvasGroup(FillRuleWinding).Area(areaStep) != 0 {
		t.Error("empty group has area")
	}
}

func TestPathTriangle(t *testing.T) {
	b := NewCanvasPathBuilder()
	b.BeginFigure(vmath.Vec2{})
	b.AddLine(vmath.Vec2{X: 4})
	b.AddLine(vmath.Vec2{Y: 3})
	b.EndFigure(FigureLoopClosed)
	g := NewCanvasPath(b)
	assertArea(t, "triangle", g, 6, 0.05)
	if !g.Contains(vmath.Vec2{X: 1, Y: 1}) || g.Contains(vmath.Vec2{X: 3, Y: 2}) {
		t.Error("triangle containment wrong")
	}
}

func TestOpenFigureFillsAsClosed(t *testing.T) {
	b := NewCanvasPathBuilder()
	b.BeginFigure(vmath.Vec2{})
	b.AddLine(vmath.Vec2{X: 4})
	b.AddLine(vmath.Vec2{X: 4, Y: 4})
	b.AddLine(vmath.Vec2{Y: 4})
	b.EndFigure(FigureLoopOpen)
	assertArea(t, "open square", NewCanvasPath(b), 16, 0.05)
}

func squareFigure(b *CanvasPathBuilder, x, y, size float64) {
	b.BeginFigure(vmath.Vec2{X: x, Y: y})
	b.AddLine(vmath.Vec2{X: x + size, Y: y})
	b.AddLine(vmath.Vec2{X: x + size, Y: y + size})
	b.AddLine(vmath.Vec2{X: x, Y: y + size})
	b.EndFigure(FigureLoopClosed)
}

func TestPathFillRules(t *testing.T) {
	winding := NewCanvasPathBuilder()
	winding.SetFillRule(FillRuleWinding)
	squareFigure(winding, 0, 0, 2)
	squareFigure(winding, 1, 1, 2)
	assertArea(t, "winding", NewCanvasPath(winding), 7, 0.05)

	alternate := NewCanvasPathBuilder()
	squareFigure(alternate, 0, 0, 2)
	squareFigure(alternate, 1, 1, 2)
	assertArea(t, "alternate", NewCanvasPath(alternate), 6, 0.05)
}

func TestPathCubic(t *testing.T) {
	// A circle of radius 1 from four cubic arcs.
	const k = 0.5522847498
	b := NewCanvasPathBuilder()
	b.BeginFigure(vmath.Vec2{X: 1})
	b.AddCubicBezier(vmath.Vec2{X: 1, Y: k}, vmath.Vec2{X: k, Y: 1}, vmath.Vec2{Y: 1})
	b.AddCubicBezier(vmath.Vec2{X: -k, Y: 1}, vmath.Vec2{X: -1, Y: k}, vmath.Vec2{X: -1})
	b.AddCubicBezier(vmath.Vec2{X: -1, Y: -k}, vmath.Vec2{X: -k, Y: -1}, vmath.Vec2{Y: -1})
	b.AddCubicBezier(vmath.Vec2{X: k, Y: -1}, vmath.Vec2{X: 1, Y: -k}, vmath.Vec2{X: 1})
	b.EndFigure(FigureLoopClosed)
	g := NewCanvasPath(b)
	assertArea(t, "circle", g, math.Pi, 0.1)
	if d := g.Distance(vmath.Vec2{}); math.Abs(d+1) > 0.06 {
		t.Errorf("Distance(center) = %v, want about -1", d)
	}
}

func TestEmptyPath(t *testing.T) {
	g := NewCanvasPath(NewCanvasPathBuilder())
	if !g.IsEmpty() || g.Contains(vmath.Vec2{}) {
		t.Error("empty builder should produce an empty geometry")
	}
}

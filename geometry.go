package grove

import (
	"github.com/phanxgames/grove/desc"
	"github.com/phanxgames/grove/live"
)

// path returns the live path for p, compiling its geometry on first use.
func (m *materializer) path(owner desc.Node, p *desc.Path) *live.Path {
	if p == nil {
		return nil
	}
	if lp, ok := m.cache.paths[p]; ok {
		m.stats.CacheHits++
		return lp
	}
	lp := live.NewPath(m.canvas(owner, p.Source))
	m.cache.paths[p] = lp
	return lp
}

// canvas compiles a geometry expression. Results are cached by expression
// identity, so a sub-expression used on both sides of a combination is
// compiled once. Compiled geometries are immutable and safe to share.
func (m *materializer) canvas(owner desc.Node, g desc.CanvasGeometry) *live.CanvasGeometry {
	if g == nil {
		fail(owner, ErrInvalidNode, "missing canvas geometry")
	}
	if c, ok := m.cache.canvas[g]; ok {
		m.stats.CacheHits++
		return c
	}
	if m.cache.compiling[g] {
		fail(owner, ErrCycle, "canvas geometry %T contains itself", g)
	}
	m.cache.compiling[g] = true
	defer delete(m.cache.compiling, g)

	var c *live.CanvasGeometry
	switch g := g.(type) {
	case *desc.CanvasEllipse:
		c = live.NewCanvasEllipse(g.X, g.Y, g.RadiusX, g.RadiusY)
	case *desc.CanvasRoundedRectangle:
		c = live.NewCanvasRoundedRectangle(g.X, g.Y, g.W, g.H, g.RadiusX, g.RadiusY)
	case *desc.CanvasGroup:
		geoms := make([]*live.CanvasGeometry, len(g.Geometries))
		for i, sub := range g.Geometries {
			geoms[i] = m.canvas(owner, sub)
		}
		c = live.NewCanvasGroup(mapEnum(owner, "fill rule", fillRules[:], g.FillRule), geoms...)
	case *desc.CanvasCombination:
		a := m.canvas(owner, g.A)
		b := m.canvas(owner, g.B)
		c = a.CombineWith(b, g.Matrix, mapEnum(owner, "combine mode", combineModes[:], g.Mode))
	case *desc.CanvasTransformed:
		c = m.canvas(owner, g.Source).Transform(g.Matrix)
	case *desc.CanvasPath:
		c = m.canvasPath(owner, g)
	default:
		fail(owner, ErrUnknownNode, "canvas geometry %T", g)
	}
	m.cache.canvas[g] = c
	return c
}

// canvasPath replays the commands of p in order.
func (m *materializer) canvasPath(owner desc.Node, p *desc.CanvasPath) *live.CanvasGeometry {
	b := live.NewCanvasPathBuilder()
	if p.FillRule != desc.FillRuleAlternate {
		b.SetFillRule(mapEnum(owner, "fill rule", fillRules[:], p.FillRule))
	}
	for _, cmd := range p.Commands {
		switch cmd := cmd.(type) {
		case desc.BeginFigure:
			b.BeginFigure(cmd.StartPoint)
		case desc.AddLine:
			b.AddLine(cmd.EndPoint)
		case desc.AddCubicBezier:
			b.AddCubicBezier(cmd.ControlPoint1, cmd.ControlPoint2, cmd.EndPoint)
		case desc.EndFigure:
			b.EndFigure(mapEnum(owner, "figure loop", figureLoops[:], cmd.Loop))
		default:
			fail(owner, ErrUnknownNode, "path command %T", cmd)
		}
	}
	return live.NewCanvasPath(b)
}

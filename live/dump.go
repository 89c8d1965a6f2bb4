package live

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

// Fprint writes an indented description of the visual tree rooted at v,
// one object per line.
func Fprint(w io.Writer, v Visual) error {
	p := &printer{w: w}
	p.visual(v, 0)
	return p.err
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(depth int, format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, "%s%s\n", strings.Repeat("  ", depth), fmt.Sprintf(format, args...))
}

func label(o Object) string {
	if o == nil {
		return "<nil>"
	}
	s := fmt.Sprintf("%s#%d", o.TypeName(), o.ID())
	if c := o.Comment(); c != "" {
		s += fmt.Sprintf(" %q", c)
	}
	return s
}

func animated(o Object) string {
	var names []string
	for name := range o.core().running {
		names = append(names, name)
	}
	if len(names) == 0 {
		return ""
	}
	slices.Sort(names)
	return " animating=" + strings.Join(names, ",")
}

func (p *printer) visual(v Visual, depth int) {
	off, size := v.Offset(), v.Size()
	p.line(depth, "%s offset=(%g,%g) size=(%g,%g) opacity=%g%s",
		label(v), off.X, off.Y, size.X, size.Y, v.Opacity(), animated(v))
	if c := v.Clip(); c != nil {
		p.line(depth+1, "clip: %s", label(c))
	}
	switch v := v.(type) {
	case *SpriteVisual:
		if b := v.Brush(); b != nil {
			p.brush(b, depth+1, "brush")
		}
		if s := v.Shadow(); s != nil {
			p.line(depth+1, "shadow: %s", label(s))
		}
	case *LayerVisual:
		if s := v.Shadow(); s != nil {
			p.line(depth+1, "shadow: %s", label(s))
		}
	case *ShapeVisual:
		if b := v.ViewBox(); b != nil {
			sz := b.Size()
			p.line(depth+1, "viewbox: (%g,%g)", sz.X, sz.Y)
		}
		for _, s := range v.Shapes() {
			p.shape(s, depth+1)
		}
	}
	for _, c := range v.Children() {
		p.visual(c, depth+1)
	}
}

func (p *printer) shape(s Shape, depth int) {
	switch s := s.(type) {
	case *ContainerShape:
		p.line(depth, "%s%s", label(s), animated(s))
		for _, c := range s.Shapes() {
			p.shape(c, depth+1)
		}
	case *SpriteShape:
		p.line(depth, "%s geometry=%s thickness=%g%s",
			label(s), label(s.Geometry()), s.StrokeThickness(), animated(s))
		if b := s.FillBrush(); b != nil {
			p.brush(b, depth+1, "fill")
		}
		if b := s.StrokeBrush(); b != nil {
			p.brush(b, depth+1, "stroke")
		}
	default:
		p.line(depth, "%s", label(s))
	}
}

func (p *printer) brush(b Brush, depth int, role string) {
	switch b := b.(type) {
	case *ColorBrush:
		c := b.Color()
		p.line(depth, "%s: %s rgba=(%g,%g,%g,%g)%s", role, label(b), c.R, c.G, c.B, c.A, animated(b))
	case *LinearGradientBrush:
		p.line(depth, "%s: %s stops=%d", role, label(b), len(b.ColorStops()))
	case *RadialGradientBrush:
		p.line(depth, "%s: %s stops=%d", role, label(b), len(b.ColorStops()))
	case *SurfaceBrush:
		if s := b.Surface(); s != nil {
			p.line(depth, "%s: %s surface=%v", role, label(b), s.Bounds())
		} else {
			p.line(depth, "%s: %s surface=<nil>", role, label(b))
		}
	case *MaskBrush:
		p.line(depth, "%s: %s", role, label(b))
		if s := b.Source(); s != nil {
			p.brush(s, depth+1, "source")
		}
		if m := b.Mask(); m != nil {
			p.brush(m, depth+1, "mask")
		}
	case *EffectBrush:
		p.line(depth, "%s: %s", role, label(b))
		for _, name := range b.Effect().SourceNames() {
			if s := b.SourceParameter(name); s != nil {
				p.brush(s, depth+1, name)
			}
		}
	default:
		p.line(depth, "%s: %s", role, label(b))
	}
}

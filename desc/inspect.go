package desc

// Graph summarizes the nodes reachable from a root.
type Graph struct {
	// Nodes lists every reachable node once, in depth-first first-visit order.
	Nodes []Node
	// RefCount counts the references to each node from other reachable
	// nodes. The root has zero; a node with more than one is shared.
	RefCount map[Node]int
	// ByKind counts distinct nodes per Kind.
	ByKind map[Kind]int
}

// Shared returns the reachable nodes referenced more than once, in visit order.
func (g *Graph) Shared() []Node {
	var out []Node
	for _, n := range g.Nodes {
		if g.RefCount[n] > 1 {
			out = append(out, n)
		}
	}
	return out
}

// Inspect walks the graph under root. Self references of unowned property
// sets are not counted.
func Inspect(root Node) *Graph {
	g := &Graph{
		RefCount: make(map[Node]int),
		ByKind:   make(map[Kind]int),
	}
	if root == nil {
		return g
	}
	seen := make(map[Node]bool)
	var visit func(n Node)
	visit = func(n Node) {
		if seen[n] {
			return
		}
		seen[n] = true
		g.Nodes = append(g.Nodes, n)
		g.ByKind[n.Kind()]++
		for _, r := range References(n) {
			g.RefCount[r]++
			visit(r)
		}
	}
	visit(root)
	return g
}

// References returns the nodes n refers to directly, in field order. Nodes
// reachable only through geometry expressions (paths) are not Nodes and are
// not listed.
func References(n Node) []Node {
	var refs []Node
	add := func(r Node) {
		if r != nil && r != n {
			refs = append(refs, r)
		}
	}
	base := n.Base()
	if base.Properties != nil && Node(base.Properties) != n {
		add(base.Properties)
	}

	switch n := n.(type) {
	case Visual:
		v := n.VisualProps()
		if v.Clip != nil {
			add(v.Clip)
		}
		for _, c := range v.Children {
			add(c)
		}
		switch n := n.(type) {
		case *ShapeVisual:
			if n.ViewBox != nil {
				add(n.ViewBox)
			}
			for _, s := range n.Shapes {
				add(s)
			}
		case *SpriteVisual:
			if n.Brush != nil {
				add(n.Brush)
			}
			if n.Shadow != nil {
				add(n.Shadow)
			}
		case *LayerVisual:
			if n.Shadow != nil {
				add(n.Shadow)
			}
		}
	case *DropShadow:
		if n.Mask != nil {
			add(n.Mask)
		}
	case *ContainerShape:
		for _, s := range n.Shapes {
			add(s)
		}
	case *SpriteShape:
		if n.Geometry != nil {
			add(n.Geometry)
		}
		if n.FillBrush != nil {
			add(n.FillBrush)
		}
		if n.StrokeBrush != nil {
			add(n.StrokeBrush)
		}
	case *LinearGradientBrush:
		for _, s := range n.ColorStops {
			add(s)
		}
	case *RadialGradientBrush:
		for _, s := range n.ColorStops {
			add(s)
		}
	case *SurfaceBrush:
		if vs, ok := n.Surface.(*VisualSurface); ok {
			add(vs)
		}
	case *EffectBrush:
		for _, name := range EffectSourceNames(n.Effect) {
			if b := n.Sources[name]; b != nil {
				add(b)
			}
		}
	case *MaskBrush:
		if n.Source != nil {
			add(n.Source)
		}
		if n.Mask != nil {
			add(n.Mask)
		}
	case *VisualSurface:
		if n.SourceVisual != nil {
			add(n.SourceVisual)
		}
	case *GeometricClip:
		if n.Geometry != nil {
			add(n.Geometry)
		}
	case *PropertySet:
		if n.Owner != nil {
			add(n.Owner)
		}
	case *AnimationController:
		if n.Target != nil {
			add(n.Target)
		}
	}

	if a, ok := n.(Animation); ok {
		for _, p := range a.AnimationProps().ReferenceParameters {
			add(p.Node)
		}
		for _, e := range keyFrameEasings(n) {
			add(e)
		}
	}
	for _, an := range base.Animators {
		if an.Animation != nil {
			add(an.Animation)
		}
		if an.Controller != nil {
			add(an.Controller)
		}
	}
	return refs
}

// EffectSourceNames returns the source names an effect reads, in order.
func EffectSourceNames(e Effect) []string {
	switch e := e.(type) {
	case *CompositeEffect:
		names := make([]string, len(e.Sources))
		for i, s := range e.Sources {
			names[i] = s.Name
		}
		return names
	case *GaussianBlurEffect:
		return []string{e.Source.Name}
	}
	return nil
}

func keyFrameEasings(n Node) []Node {
	var out []Node
	collect := func(e Easing) {
		if e != nil {
			out = append(out, e)
		}
	}
	switch n := n.(type) {
	case *BooleanKeyFrameAnimation:
		for _, k := range n.KeyFrames {
			collect(k.Easing)
		}
	case *ColorKeyFrameAnimation:
		for _, k := range n.KeyFrames {
			collect(k.Easing)
		}
	case *ScalarKeyFrameAnimation:
		for _, k := range n.KeyFrames {
			collect(k.Easing)
		}
	case *Vector2KeyFrameAnimation:
		for _, k := range n.KeyFrames {
			collect(k.Easing)
		}
	case *Vector3KeyFrameAnimation:
		for _, k := range n.KeyFrames {
			collect(k.Easing)
		}
	case *Vector4KeyFrameAnimation:
		for _, k := range n.KeyFrames {
			collect(k.Easing)
		}
	case *PathKeyFrameAnimation:
		for _, k := range n.KeyFrames {
			collect(k.Easing)
		}
	}
	return out
}

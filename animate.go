package grove

import (
	"fmt"
	"math"
	"slices"

	"github.com/phanxgames/grove/desc"
	"github.com/phanxgames/grove/live"
)

// animate starts every animator of n on obj, in order. It runs after all
// static values and property set entries of n are in place.
func (m *materializer) animate(n desc.Node, obj live.Object) {
	for _, an := range n.Base().Animators {
		if an.Animation == nil {
			fail(n, ErrInvalidNode, "animator for %q has no animation", an.Property)
		}
		anim := m.animation(an.Animation)
		if err := obj.StartAnimation(an.Property, anim); err != nil {
			panic(&MaterializeError{
				Kind:    n.Kind(),
				Comment: n.Base().Comment,
				Err:     fmt.Errorf("%w: start %s on %q: %w", ErrInvalidNode, an.Animation.Kind(), an.Property, err),
			})
		}
		if an.Controller != nil {
			m.controller(an.Controller)
		}
	}
}

// animation returns the live animation to start for a. Expression
// animations come back as the configured scratch object.
func (m *materializer) animation(a desc.Animation) live.Animation {
	if e, ok := a.(*desc.ExpressionAnimation); ok {
		return m.expression(e)
	}
	return structural[live.Animation](m, a)
}

// keyFrames copies the frames of src into dst in ascending progress order.
// value converts each frame value to its live form.
func keyFrames[D, L any](m *materializer, n desc.Node, src *desc.KeyFrameAnimation[D], dst *live.KeyFrameAnimation[L], value func(D) L) {
	m.animationBase(n, &src.AnimationBase, dst)
	dst.SetDuration(src.Duration)

	frames := slices.Clone(src.KeyFrames)
	slices.SortStableFunc(frames, func(a, b desc.KeyFrame[D]) int {
		switch {
		case a.Progress < b.Progress:
			return -1
		case a.Progress > b.Progress:
			return 1
		}
		return 0
	})
	for _, k := range frames {
		if math.IsNaN(k.Progress) || k.Progress < 0 || k.Progress > 1 {
			fail(n, ErrInvalidNode, "key frame progress %v outside [0, 1]", k.Progress)
		}
		easing := m.easing(k.Easing)
		if k.IsExpression() {
			dst.InsertExpressionKeyFrame(k.Progress, k.Expression, easing)
		} else {
			dst.InsertKeyFrame(k.Progress, value(k.Value), easing)
		}
	}
}

func (m *materializer) easing(e desc.Easing) live.EasingFunction {
	if e == nil {
		return nil
	}
	return structural[live.EasingFunction](m, e)
}

func (m *materializer) animationBase(n desc.Node, p *desc.AnimationBase, a live.Animation) {
	if p.Target != "" {
		a.SetTarget(p.Target)
	}
	objs := m.references(n, p.ReferenceParameters)
	for i, rp := range p.ReferenceParameters {
		a.SetReferenceParameter(rp.Name, objs[i])
	}
}

// references materializes the nodes bound by params, in order.
func (m *materializer) references(n desc.Node, params []desc.ReferenceParameter) []live.Object {
	objs := make([]live.Object, len(params))
	for i, p := range params {
		switch p.Node.(type) {
		case nil:
			fail(n, ErrInvalidNode, "reference parameter %q has no node", p.Name)
		case *desc.ExpressionAnimation:
			fail(n, ErrInvalidNode, "reference parameter %q names an expression animation", p.Name)
		}
		objs[i] = reference[live.Object](m, p.Node)
	}
	return objs
}

// expression configures the scratch expression animation for n and
// returns it.
//
// One live ExpressionAnimation serves every expression node of a
// materialization. It is reset and refilled for each node and started
// right away; StartAnimation runs a snapshot, so the next reset does not
// reach animations already started. The scratch object is never cached
// under a node, and the node's own property set and animators are not
// materialized.
//
// Reference parameters are materialized before the reset, because doing so
// can start other expression animations through the same scratch object.
func (m *materializer) expression(n *desc.ExpressionAnimation) *live.ExpressionAnimation {
	objs := m.references(n, n.ReferenceParameters)
	if m.expr == nil {
		m.expr = m.comp.CreateExpressionAnimation("")
		m.stats.Created[desc.KindExpressionAnimation]++
	}
	a := m.expr
	a.SetComment(n.Comment)
	a.SetTarget(n.Target)
	a.SetExpression(n.Expression)
	a.ClearAllParameters()
	for i, p := range n.ReferenceParameters {
		a.SetReferenceParameter(p.Name, objs[i])
	}
	return a
}

// controller returns the implicit controller n names. The animation it
// controls must already be running on the target.
func (m *materializer) controller(n *desc.AnimationController) *live.AnimationController {
	if ctl, ok := cached[*live.AnimationController](m, n); ok {
		return ctl
	}
	if n.IsCustom() {
		fail(n, ErrUnsupported, "custom animation controllers")
	}
	target := reference[live.Object](m, n.Target)
	// The target's animators may have reached n already.
	if ctl, ok := cached[*live.AnimationController](m, n); ok {
		return ctl
	}
	ctl := target.TryGetAnimationController(n.TargetProperty)
	if ctl == nil {
		fail(n, ErrInvariant, "no key frame animation running on %s.%s", target.TypeName(), n.TargetProperty)
	}
	fetch := func() *live.AnimationController { return ctl }
	return materialize(m, n, fetch, func(ctl *live.AnimationController) {
		if n.IsPaused {
			ctl.Pause()
		}
	})
}

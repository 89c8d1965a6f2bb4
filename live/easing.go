package live

import (
	"math"

	"github.com/tanema/gween/ease"

	"github.com/phanxgames/grove/vmath"
)

// EasingFunction maps linear segment time in [0, 1] to eased time.
type EasingFunction interface {
	Object
	// TweenFunc returns the easing in gween's (t, begin, change, duration) form.
	TweenFunc() ease.TweenFunc
}

// Ease evaluates f at t in [0, 1].
func Ease(f EasingFunction, t float64) float64 {
	return easeWith(f, t)
}

func easeWith(f EasingFunction, t float64) float64 {
	fn := ease.Linear
	if f != nil {
		fn = f.TweenFunc()
	}
	return float64(fn(float32(t), 0, 1, 1))
}

// LinearEasingFunction does not ease.
type LinearEasingFunction struct {
	object
}

// TweenFunc returns ease.Linear.
func (*LinearEasingFunction) TweenFunc() ease.TweenFunc { return ease.Linear }

// CubicBezierEasingFunction eases along the cubic bezier
// (0,0) ControlPoint1 ControlPoint2 (1,1).
type CubicBezierEasingFunction struct {
	object
	cp1, cp2 vmath.Vec2
}

// ControlPoint1 returns the first control point.
func (e *CubicBezierEasingFunction) ControlPoint1() vmath.Vec2 { return e.cp1 }

// ControlPoint2 returns the second control point.
func (e *CubicBezierEasingFunction) ControlPoint2() vmath.Vec2 { return e.cp2 }

// TweenFunc solves the curve for x = t/d and returns b + c*y.
func (e *CubicBezierEasingFunction) TweenFunc() ease.TweenFunc {
	x1, y1, x2, y2 := e.cp1.X, e.cp1.Y, e.cp2.X, e.cp2.Y
	return func(t, b, c, d float32) float32 {
		x := float64(t / d)
		y := bezierY(x1, y1, x2, y2, x)
		return b + c*float32(y)
	}
}

func bezierCoord(p1, p2, s float64) float64 {
	u := 1 - s
	return 3*u*u*s*p1 + 3*u*s*s*p2 + s*s*s
}

func bezierSlope(p1, p2, s float64) float64 {
	u := 1 - s
	return 3*u*u*p1 + 6*u*s*(p2-p1) + 3*s*s*(1-p2)
}

// bezierY finds the curve parameter whose x is x, then returns its y.
func bezierY(x1, y1, x2, y2, x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	s := x
	for range 8 {
		dx := bezierCoord(x1, x2, s) - x
		if math.Abs(dx) < 1e-7 {
			return bezierCoord(y1, y2, s)
		}
		slope := bezierSlope(x1, x2, s)
		if math.Abs(slope) < 1e-6 {
			break
		}
		s -= dx / slope
	}
	// Newton did not converge; bisect.
	lo, hi := 0.0, 1.0
	s = x
	for range 60 {
		cx := bezierCoord(x1, x2, s)
		if math.Abs(cx-x) < 1e-9 {
			break
		}
		if cx < x {
			lo = s
		} else {
			hi = s
		}
		s = (lo + hi) / 2
	}
	return bezierCoord(y1, y2, s)
}

// StepEasingFunction jumps between StepCount discrete steps, from
// InitialStep to FinalStep.
type StepEasingFunction struct {
	object
	stepCount     int
	initialStep   int
	finalStep     int
	initialSingle bool
	finalSingle   bool
}

// StepCount returns the number of steps.
func (e *StepEasingFunction) StepCount() int { return e.stepCount }

// SetStepCount sets the number of steps.
func (e *StepEasingFunction) SetStepCount(n int) { e.stepCount = n; e.touch("StepCount") }

// InitialStep returns the first step shown.
func (e *StepEasingFunction) InitialStep() int { return e.initialStep }

// SetInitialStep sets the first step shown.
func (e *StepEasingFunction) SetInitialStep(n int) { e.initialStep = n; e.touch("InitialStep") }

// FinalStep returns the last step shown.
func (e *StepEasingFunction) FinalStep() int { return e.finalStep }

// SetFinalStep sets the last step shown.
func (e *StepEasingFunction) SetFinalStep(n int) { e.finalStep = n; e.touch("FinalStep") }

// IsInitialStepSingleFrame reports whether the initial step is shown only at t = 0.
func (e *StepEasingFunction) IsInitialStepSingleFrame() bool { return e.initialSingle }

// SetIsInitialStepSingleFrame sets IsInitialStepSingleFrame.
func (e *StepEasingFunction) SetIsInitialStepSingleFrame(v bool) {
	e.initialSingle = v
	e.touch("IsInitialStepSingleFrame")
}

// IsFinalStepSingleFrame reports whether the final step is shown only at t = 1.
func (e *StepEasingFunction) IsFinalStepSingleFrame() bool { return e.finalSingle }

// SetIsFinalStepSingleFrame sets IsFinalStepSingleFrame.
func (e *StepEasingFunction) SetIsFinalStepSingleFrame(v bool) {
	e.finalSingle = v
	e.touch("IsFinalStepSingleFrame")
}

// TweenFunc returns the step function.
func (e *StepEasingFunction) TweenFunc() ease.TweenFunc {
	count, lo, hi := e.stepCount, e.initialStep, e.finalStep
	initialSingle, finalSingle := e.initialSingle, e.finalSingle
	return func(t, b, c, d float32) float32 {
		x := float64(t / d)
		return b + c*float32(stepAt(count, lo, hi, initialSingle, finalSingle, x))
	}
}

func stepAt(count, lo, hi int, initialSingle, finalSingle bool, x float64) float64 {
	if count <= 0 {
		return x
	}
	n := float64(count)
	if x <= 0 {
		return float64(lo) / n
	}
	if x >= 1 {
		return float64(hi) / n
	}
	if initialSingle {
		lo++
	}
	if finalSingle {
		hi--
	}
	if hi < lo {
		return float64(lo) / n
	}
	k := lo + int(math.Floor(x*float64(hi-lo+1)))
	if k > hi {
		k = hi
	}
	return float64(k) / n
}

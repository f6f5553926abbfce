package floaty

import "time"

// LabelPlacement positions the label: its center in control coordinates
// and the scale applied to its base-size rendering.
type LabelPlacement struct {
	Center Point
	Scale  float64
}

// Lerp interpolates between two placements.
func (p LabelPlacement) Lerp(q LabelPlacement, t float64) LabelPlacement {
	return LabelPlacement{
		Center: p.Center.Lerp(q.Center, t),
		Scale:  p.Scale + (q.Scale-p.Scale)*t,
	}
}

// Matrix returns the transform mapping the label's unscaled local space
// (origin at its top-left, extent size) onto the control.
func (p LabelPlacement) Matrix(size Size) Matrix {
	return Translate(p.Center.X, p.Center.Y).
		Multiply(Scale(p.Scale, p.Scale)).
		Multiply(Translate(-size.Width/2, -size.Height/2))
}

// floatingPlacement centers the scaled label on the gap pivot, straddling
// the top edge.
func floatingPlacement(cfg GeometryConfig, scale float64) LabelPlacement {
	return LabelPlacement{Center: Pt(cfg.PivotX(), 0), Scale: scale}
}

// restingPlacement keeps the label at the host-provided resting center.
func restingPlacement(l Layout) LabelPlacement {
	return LabelPlacement{Center: l.RestingLabelCenter, Scale: 1}
}

// LabelTransition describes the label moving between placements. It runs
// on its own timer, concurrently with the border's edge animation.
type LabelTransition struct {
	From, To LabelPlacement
	// Start is the scheduler time the transition began at.
	Start    time.Duration
	Duration time.Duration
	Curve    Curve
	// DampingRatio is forwarded to hosts driving the label with a spring.
	// 1.0 is critically damped: no overshoot.
	DampingRatio float64
}

// Done reports whether the transition has finished at now.
func (t LabelTransition) Done(now time.Duration) bool {
	return now >= t.Start+t.Duration
}

// At returns the label placement at scheduler time now.
func (t LabelTransition) At(now time.Duration) LabelPlacement {
	switch f := t.Curve.Progress(t.Start, now, t.Duration); {
	case f <= 0:
		return t.From
	case f >= 1:
		return t.To
	default:
		return t.From.Lerp(t.To, f)
	}
}

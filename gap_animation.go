package floaty

// Segment is a 2-point open polyline. Stroke-reveal animations draw it from
// Start towards End.
type Segment struct {
	Start, End Point
}

// Reversed returns the segment with Start and End swapped.
func (s Segment) Reversed() Segment {
	return Segment{Start: s.End, End: s.Start}
}

// Length returns the distance between Start and End.
func (s Segment) Length() float64 {
	return s.Start.Distance(s.End)
}

// Path converts the segment into an open path.
func (s Segment) Path() *Path {
	p := NewPath()
	p.MoveTo(s.Start.X, s.Start.Y)
	p.LineTo(s.End.X, s.End.Y)
	return p
}

// PathPair holds the two gap-edge strokes animated during a transition.
type PathPair struct {
	Left, Right Segment
}

// Reversed returns the pair with both segments reversed.
func (pp PathPair) Reversed() PathPair {
	return PathPair{Left: pp.Left.Reversed(), Right: pp.Right.Reversed()}
}

// BuildGapAnimation computes the two top-edge segments that animate the gap
// opening (floatingNow true) or closing (floatingNow false).
//
// Both segments share the pivot cfg.PivotX(). The left one spans
// [pivot - TextSpan/2 - SidePadding, pivot] and the right one
// [pivot, pivot + TextSpan/2 + SidePadding], both on y = 0. When opening,
// each segment starts at the pivot and runs outwards, so a 0→1 stroke
// reveal painted in the background color grows the gap from its middle.
// When closing, each segment starts at its outer end and runs into the
// pivot, so a reveal in the border color seals the gap from both sides.
// cfg.DrawGap is not consulted.
//
// BuildGapAnimation is pure and safe for concurrent use.
func BuildGapAnimation(cfg GeometryConfig, floatingNow bool) PathPair {
	cx := cfg.PivotX()
	reach := cfg.TextSpan/2 + cfg.SidePadding

	pivot := Pt(cx, 0)
	left := Segment{Start: pivot, End: Pt(cx-reach, 0)}
	right := Segment{Start: pivot, End: Pt(cx+reach, 0)}

	pair := PathPair{Left: left, Right: right}
	if !floatingNow {
		pair = pair.Reversed()
	}
	return pair
}

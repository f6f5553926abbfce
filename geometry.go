package floaty

import "fmt"

// AlignKind selects where the label gap is anchored on the top edge.
type AlignKind int

const (
	// AlignKindCenter centers the gap on the top edge.
	AlignKindCenter AlignKind = iota
	// AlignKindLeading anchors the gap next to the top-left corner.
	AlignKindLeading
	// AlignKindTrailing anchors the gap next to the top-right corner.
	AlignKindTrailing
)

// String implements fmt.Stringer.
func (k AlignKind) String() string {
	switch k {
	case AlignKindCenter:
		return "center"
	case AlignKindLeading:
		return "leading"
	case AlignKindTrailing:
		return "trailing"
	default:
		return fmt.Sprintf("AlignKind(%d)", int(k))
	}
}

// Alignment is the horizontal anchoring of the floating label.
// Offset is only meaningful for leading and trailing alignments.
type Alignment struct {
	Kind   AlignKind
	Offset float64
}

// AlignCenter returns a centered alignment.
func AlignCenter() Alignment { return Alignment{Kind: AlignKindCenter} }

// AlignLeading returns a leading alignment with the given offset.
func AlignLeading(offset float64) Alignment {
	return Alignment{Kind: AlignKindLeading, Offset: offset}
}

// AlignTrailing returns a trailing alignment with the given offset.
func AlignTrailing(offset float64) Alignment {
	return Alignment{Kind: AlignKindTrailing, Offset: offset}
}

// String implements fmt.Stringer.
func (a Alignment) String() string {
	if a.Kind == AlignKindCenter {
		return a.Kind.String()
	}
	return fmt.Sprintf("%s(%g)", a.Kind, a.Offset)
}

// GeometryConfig is an immutable snapshot of everything needed to compute a
// border outline or a gap animation frame.
//
// CornerRadius must satisfy 0 <= CornerRadius <= min(width, height)/2.
// Nothing here clamps or reports a violation: out-of-range values produce a
// degenerate but well-defined outline, so callers validate upstream.
type GeometryConfig struct {
	// ContainerSize is the outer bounds of the border rectangle.
	ContainerSize Size
	// CornerRadius is the radius of the four rounded corners.
	CornerRadius float64
	// TextSpan is the horizontal width reserved for the label.
	TextSpan float64
	// Alignment anchors the gap horizontally.
	Alignment Alignment
	// SidePadding is added symmetrically around the gap.
	SidePadding float64
	// DrawGap reports whether the outline opens a gap for the label.
	DrawGap bool
}

// WithGap returns a copy of c with DrawGap set to drawGap.
func (c GeometryConfig) WithGap(drawGap bool) GeometryConfig {
	c.DrawGap = drawGap
	return c
}

// GapEdgePoints holds the x-coordinates bounding the gap on the top edge.
type GapEdgePoints struct {
	Left, Right float64
}

// Width returns Right - Left.
func (g GapEdgePoints) Width() float64 {
	return g.Right - g.Left
}

// GapPoints computes where the gap starts and ends on the top edge.
// The result depends only on the container width, corner radius, text span,
// side padding and alignment; DrawGap is ignored.
func (c GeometryConfig) GapPoints() GapEdgePoints {
	w := c.ContainerSize.Width
	switch c.Alignment.Kind {
	case AlignKindLeading:
		left := c.CornerRadius
		return GapEdgePoints{Left: left, Right: left + c.TextSpan + 2*c.SidePadding}
	case AlignKindTrailing:
		right := w - c.CornerRadius - 2*c.SidePadding
		return GapEdgePoints{Left: right - c.TextSpan, Right: right}
	default:
		return GapEdgePoints{Left: (w - c.TextSpan) / 2, Right: (w + c.TextSpan) / 2}
	}
}

// PivotX returns the x-coordinate the gap opens from and closes onto.
// The floating label is centered on it.
func (c GeometryConfig) PivotX() float64 {
	w := c.ContainerSize.Width
	half := c.TextSpan / 2
	switch c.Alignment.Kind {
	case AlignKindLeading:
		return c.CornerRadius + c.Alignment.Offset + c.SidePadding + half
	case AlignKindTrailing:
		return w - c.CornerRadius - c.Alignment.Offset - c.SidePadding - half
	default:
		return w / 2
	}
}

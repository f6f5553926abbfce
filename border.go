package floaty

// BuildBorder computes the static border outline for cfg.
//
// The outline is a rounded rectangle of cfg.ContainerSize traced clockwise
// on screen, starting on the top edge at (CornerRadius, 0). When
// cfg.DrawGap is set, the top edge is broken between the gap points: the
// path lines to GapPoints().Left, moves to GapPoints().Right and continues,
// so a renderer strokes nothing across the gap. The gapped outline stays
// open because a closing segment would bridge the gap; the continuous
// outline is closed.
//
// BuildBorder is pure and safe for concurrent use.
func BuildBorder(cfg GeometryConfig) *Path {
	w := cfg.ContainerSize.Width
	h := cfg.ContainerSize.Height
	r := cfg.CornerRadius

	p := NewPath()
	p.MoveTo(r, 0)
	if cfg.DrawGap {
		gap := cfg.GapPoints()
		p.LineTo(gap.Left, 0)
		p.MoveTo(gap.Right, 0)
	}

	// Top edge, then top-right corner.
	p.LineTo(w-r, 0)
	p.QuarterArcTo(r, 1, 0, 0, 1, w, r)

	// Right edge, bottom-right corner.
	p.LineTo(w, h-r)
	p.QuarterArcTo(r, 0, 1, -1, 0, w-r, h)

	// Bottom edge, bottom-left corner.
	p.LineTo(r, h)
	p.QuarterArcTo(r, -1, 0, 0, -1, 0, h-r)

	// Left edge, top-left corner back to the start.
	p.LineTo(0, r)
	p.QuarterArcTo(r, 0, -1, 1, 0, r, 0)

	if !cfg.DrawGap {
		p.Close()
	}
	return p
}

package floaty

import "math"

// DefaultTolerance is the flattening tolerance, in control units, used when
// a caller passes a non-positive tolerance.
const DefaultTolerance = 0.1

// cubicBez is a cubic Bezier segment used by the flattening and measuring
// helpers below.
type cubicBez struct {
	P0, P1, P2, P3 Point
}

// eval evaluates the curve at parameter t.
func (c cubicBez) eval(t float64) Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	d := 3 * mt * t * t
	e := t * t * t
	return Point{
		X: a*c.P0.X + b*c.P1.X + d*c.P2.X + e*c.P3.X,
		Y: a*c.P0.Y + b*c.P1.Y + d*c.P2.Y + e*c.P3.Y,
	}
}

// subdivide splits the curve at t=0.5 (de Casteljau).
func (c cubicBez) subdivide() (cubicBez, cubicBez) {
	p01 := c.P0.Lerp(c.P1, 0.5)
	p12 := c.P1.Lerp(c.P2, 0.5)
	p23 := c.P2.Lerp(c.P3, 0.5)
	p012 := p01.Lerp(p12, 0.5)
	p123 := p12.Lerp(p23, 0.5)
	mid := p012.Lerp(p123, 0.5)

	return cubicBez{P0: c.P0, P1: p01, P2: p012, P3: mid},
		cubicBez{P0: mid, P1: p123, P2: p23, P3: c.P3}
}

// flatness returns the squared deviation metric of the control points
// from the chord.
func (c cubicBez) flatness() float64 {
	ux := 3.0*c.P1.X - 2.0*c.P0.X - c.P3.X
	uy := 3.0*c.P1.Y - 2.0*c.P0.Y - c.P3.Y
	vx := 3.0*c.P2.X - c.P0.X - 2.0*c.P3.X
	vy := 3.0*c.P2.Y - c.P0.Y - 2.0*c.P3.Y

	return math.Max(ux*ux+uy*uy, vx*vx+vy*vy)
}

// extrema returns the parameters in (0, 1) where the curve's derivative
// vanishes along one axis. p0..p3 are that axis' coordinates.
func extrema(p0, p1, p2, p3 float64) []float64 {
	a := -p0 + 3*p1 - 3*p2 + p3
	b := 2 * (p0 - 2*p1 + p2)
	c := p1 - p0

	var roots []float64
	keep := func(t float64) {
		if t > 0 && t < 1 {
			roots = append(roots, t)
		}
	}

	const eps = 1e-12
	if math.Abs(a) < eps {
		if math.Abs(b) > eps {
			keep(-c / b)
		}
		return roots
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return roots
	}
	sq := math.Sqrt(disc)
	keep((-b + sq) / (2 * a))
	keep((-b - sq) / (2 * a))
	return roots
}

// BoundingBox returns the tight axis-aligned bounding box of the path.
// Curve extrema are included, so arcs never contribute their control
// points. An empty path returns the zero Rect.
func (p *Path) BoundingBox() Rect {
	if len(p.elements) == 0 {
		return Rect{}
	}

	bbox := Rect{
		Min: Point{X: math.MaxFloat64, Y: math.MaxFloat64},
		Max: Point{X: -math.MaxFloat64, Y: -math.MaxFloat64},
	}

	var current Point
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			bbox = expandBBox(bbox, e.Point)
			current = e.Point
		case LineTo:
			bbox = expandBBox(bbox, e.Point)
			current = e.Point
		case CubicTo:
			c := cubicBez{P0: current, P1: e.Control1, P2: e.Control2, P3: e.Point}
			bbox = expandBBox(bbox, e.Point)
			for _, t := range extrema(c.P0.X, c.P1.X, c.P2.X, c.P3.X) {
				bbox = expandBBox(bbox, c.eval(t))
			}
			for _, t := range extrema(c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y) {
				bbox = expandBBox(bbox, c.eval(t))
			}
			current = e.Point
		case Close:
		}
	}
	return bbox
}

// expandBBox expands the bounding box to include the point.
func expandBBox(bbox Rect, pt Point) Rect {
	return Rect{
		Min: Point{X: math.Min(bbox.Min.X, pt.X), Y: math.Min(bbox.Min.Y, pt.Y)},
		Max: Point{X: math.Max(bbox.Max.X, pt.X), Y: math.Max(bbox.Max.Y, pt.Y)},
	}
}

// Polyline is one flattened subpath.
type Polyline struct {
	Points []Point
	Closed bool
}

// Length returns the summed length of the polyline's segments, including
// the closing segment when Closed is set.
func (pl Polyline) Length() float64 {
	var length float64
	for i := 1; i < len(pl.Points); i++ {
		length += pl.Points[i-1].Distance(pl.Points[i])
	}
	if pl.Closed && len(pl.Points) > 1 {
		length += pl.Points[len(pl.Points)-1].Distance(pl.Points[0])
	}
	return length
}

// Flatten converts the path into polylines, one per subpath, replacing
// curves with line segments that stay within tolerance of the curve.
// A closed subpath does not repeat its first point.
func (p *Path) Flatten(tolerance float64) []Polyline {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	toleranceSq := tolerance * tolerance

	var lines []Polyline
	var cur *Polyline
	var current Point

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			lines = append(lines, Polyline{Points: []Point{e.Point}})
			cur = &lines[len(lines)-1]
			current = e.Point
		case LineTo:
			if cur == nil {
				lines = append(lines, Polyline{Points: []Point{current}})
				cur = &lines[len(lines)-1]
			}
			cur.Points = append(cur.Points, e.Point)
			current = e.Point
		case CubicTo:
			if cur == nil {
				lines = append(lines, Polyline{Points: []Point{current}})
				cur = &lines[len(lines)-1]
			}
			flattenCubic(cubicBez{P0: current, P1: e.Control1, P2: e.Control2, P3: e.Point}, toleranceSq, func(pt Point) {
				cur.Points = append(cur.Points, pt)
			})
			current = e.Point
		case Close:
			if cur == nil {
				continue
			}
			if n := len(cur.Points); n > 1 && cur.Points[n-1] == cur.Points[0] {
				cur.Points = cur.Points[:n-1]
			}
			cur.Closed = true
			current = cur.Points[0]
			cur = nil
		}
	}
	return lines
}

// flattenCubic recursively subdivides c until each piece is flat enough.
func flattenCubic(c cubicBez, toleranceSq float64, fn func(pt Point)) {
	if c.flatness() <= toleranceSq*16 {
		fn(c.P3)
		return
	}
	c1, c2 := c.subdivide()
	flattenCubic(c1, toleranceSq, fn)
	flattenCubic(c2, toleranceSq, fn)
}

// Length returns the total arc length of the path.
// accuracy controls the precision of the approximation (smaller = more accurate).
func (p *Path) Length(accuracy float64) float64 {
	if accuracy <= 0 {
		accuracy = 0.001
	}

	var length float64
	var current, start Point

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			current = e.Point
			start = e.Point
		case LineTo:
			length += current.Distance(e.Point)
			current = e.Point
		case CubicTo:
			length += cubicLength(cubicBez{P0: current, P1: e.Control1, P2: e.Control2, P3: e.Point}, accuracy*accuracy)
			current = e.Point
		case Close:
			length += current.Distance(start)
			current = start
		}
	}
	return length
}

// cubicLength recursively computes cubic arc length.
func cubicLength(c cubicBez, accuracySq float64) float64 {
	chord := c.P0.Distance(c.P3)
	polygon := c.P0.Distance(c.P1) + c.P1.Distance(c.P2) + c.P2.Distance(c.P3)

	diff := polygon - chord
	if diff*diff <= accuracySq {
		return (chord + polygon) / 2
	}

	c1, c2 := c.subdivide()
	return cubicLength(c1, accuracySq) + cubicLength(c2, accuracySq)
}

// Trim returns the leading part of the path covering fraction of its
// flattened length, the geometry a stroke-reveal animation shows at that
// fraction. fraction is clamped to [0, 1]. Subpath breaks are preserved, so
// a gapped border trims across its gap without bridging it. The result is
// built from line segments only.
func (p *Path) Trim(fraction float64) *Path {
	fraction = clamp01(fraction)
	lines := p.Flatten(DefaultTolerance)

	var total float64
	for _, pl := range lines {
		total += pl.Length()
	}

	result := NewPath()
	remaining := total * fraction
	if fraction == 0 {
		return result
	}

	for _, pl := range lines {
		if len(pl.Points) == 0 {
			continue
		}
		pts := pl.Points
		if pl.Closed && len(pts) > 1 {
			pts = append(append([]Point(nil), pts...), pts[0])
		}

		result.MoveTo(pts[0].X, pts[0].Y)
		for i := 1; i < len(pts); i++ {
			seg := pts[i-1].Distance(pts[i])
			if seg >= remaining {
				var t float64
				if seg > 0 {
					t = remaining / seg
				}
				end := pts[i-1].Lerp(pts[i], t)
				result.LineTo(end.X, end.Y)
				return result
			}
			result.LineTo(pts[i].X, pts[i].Y)
			remaining -= seg
		}
	}
	return result
}

// clamp01 limits v to the unit interval.
func clamp01(v float64) float64 {
	switch {
	case v < 0 || math.IsNaN(v):
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

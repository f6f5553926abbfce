package stroke

import "math"

// Point represents a 2D point.
type Point struct {
	X, Y float64
}

func (p Point) add(x, y float64) Point { return Point{X: p.X + x, Y: p.Y + y} }

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinRound specifies a rounded join.
	LineJoinRound LineJoin = iota
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// Stroke defines the style for stroke expansion.
type Stroke struct {
	Width float64
	Cap   LineCap
	Join  LineJoin
}

// DefaultStroke returns a stroke with default settings.
func DefaultStroke() Stroke {
	return Stroke{
		Width: 1.0,
		Cap:   LineCapButt,
		Join:  LineJoinRound,
	}
}

// Polygon is a closed outline; the last point connects back to the first.
type Polygon []Point

// SignedArea returns the shoelace area of the polygon. It is positive for
// clockwise polygons in y-down coordinates.
func (p Polygon) SignedArea() float64 {
	var area float64
	for i := range p {
		j := (i + 1) % len(p)
		area += p[i].X*p[j].Y - p[j].X*p[i].Y
	}
	return area / 2
}

// Expander converts polylines into fill polygons.
type Expander struct {
	style     Stroke
	tolerance float64
}

// NewExpander creates an expander for the given style.
func NewExpander(style Stroke) *Expander {
	return &Expander{
		style:     style,
		tolerance: 0.25,
	}
}

// SetTolerance sets the maximum deviation of round joins and caps from a
// true circle. Non-positive values are ignored.
func (e *Expander) SetTolerance(tolerance float64) {
	if tolerance > 0 {
		e.tolerance = tolerance
	}
}

// Expand returns the polygons covering the stroke of pts. closed joins the
// last point back to the first. Zero-length segments are skipped; a
// polyline with no visible length yields no polygons (and no caps).
func (e *Expander) Expand(pts []Point, closed bool) []Polygon {
	hw := e.style.Width / 2
	if hw <= 0 {
		return nil
	}

	pts = dedupe(pts, closed)
	if len(pts) < 2 {
		return nil
	}

	var polys []Polygon
	n := len(pts)
	segments := n - 1
	if closed {
		segments = n
	}

	for i := 0; i < segments; i++ {
		a, b := pts[i], pts[(i+1)%n]
		nx, ny := normal(a, b, hw)
		polys = append(polys, orient(Polygon{
			a.add(nx, ny), b.add(nx, ny), b.add(-nx, -ny), a.add(-nx, -ny),
		}))
	}

	// Joins at interior vertices; for closed polylines every vertex is one.
	first, last := 1, n-1
	if closed {
		first, last = 0, n
	}
	for i := first; i < last; i++ {
		prev := pts[(i-1+n)%n]
		cur := pts[i]
		next := pts[(i+1)%n]
		if j := e.join(prev, cur, next, hw); j != nil {
			polys = append(polys, j)
		}
	}

	if !closed {
		polys = append(polys, e.caps(pts, hw)...)
	}
	return polys
}

// join builds the join polygon at cur.
func (e *Expander) join(prev, cur, next Point, hw float64) Polygon {
	if e.style.Join == LineJoinRound {
		return e.circle(cur, hw)
	}
	n1x, n1y := normal(prev, cur, hw)
	n2x, n2y := normal(cur, next, hw)
	cross := (cur.X-prev.X)*(next.Y-cur.Y) - (cur.Y-prev.Y)*(next.X-cur.X)
	if cross == 0 {
		return nil
	}
	// The bevel fills the outer side of the turn.
	if cross > 0 {
		n1x, n1y, n2x, n2y = -n1x, -n1y, -n2x, -n2y
	}
	return orient(Polygon{cur, cur.add(n1x, n1y), cur.add(n2x, n2y)})
}

// caps builds the start and end caps of an open polyline.
func (e *Expander) caps(pts []Point, hw float64) []Polygon {
	switch e.style.Cap {
	case LineCapRound:
		return []Polygon{e.circle(pts[0], hw), e.circle(pts[len(pts)-1], hw)}
	case LineCapSquare:
		return []Polygon{
			squareCap(pts[1], pts[0], hw),
			squareCap(pts[len(pts)-2], pts[len(pts)-1], hw),
		}
	default:
		return nil
	}
}

// squareCap extends the segment from→to by hw beyond to.
func squareCap(from, to Point, hw float64) Polygon {
	dx, dy := to.X-from.X, to.Y-from.Y
	l := math.Hypot(dx, dy)
	ux, uy := dx/l*hw, dy/l*hw
	nx, ny := -uy, ux
	return orient(Polygon{
		to.add(nx, ny), to.add(nx+ux, ny+uy), to.add(-nx+ux, -ny+uy), to.add(-nx, -ny),
	})
}

// circle approximates a disc of radius r within the expander tolerance.
func (e *Expander) circle(c Point, r float64) Polygon {
	steps := 8
	if r > e.tolerance {
		// Chord sagitta r(1-cos(θ/2)) <= tolerance.
		theta := 2 * math.Acos(1-e.tolerance/r)
		steps = max(8, int(math.Ceil(2*math.Pi/theta)))
	}
	poly := make(Polygon, steps)
	for i := range poly {
		a := 2 * math.Pi * float64(i) / float64(steps)
		poly[i] = c.add(r*math.Cos(a), r*math.Sin(a))
	}
	return poly
}

// normal returns the left normal of a→b scaled to length hw.
func normal(a, b Point, hw float64) (float64, float64) {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	return -dy / l * hw, dx / l * hw
}

// orient returns p with positive signed area.
func orient(p Polygon) Polygon {
	if p.SignedArea() < 0 {
		for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
			p[i], p[j] = p[j], p[i]
		}
	}
	return p
}

// dedupe drops consecutive duplicate points, and for closed polylines a
// last point equal to the first.
func dedupe(pts []Point, closed bool) []Point {
	out := make([]Point, 0, len(pts))
	for _, p := range pts {
		if len(out) > 0 && out[len(out)-1] == p {
			continue
		}
		out = append(out, p)
	}
	if closed && len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}
	return out
}

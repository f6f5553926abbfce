// Package stroke expands stroked polylines into filled polygons.
//
// The rasterizer in this module only fills. Strokes (border outlines, gap
// edges) are therefore converted into a set of polygons whose union covers
// the stroke:
//
//   - one quadrilateral per segment, offset by ±width/2 along the normal
//   - a join polygon at every interior vertex (and at the seam of a closed
//     polyline)
//   - a cap polygon at both ends of an open polyline
//
// All polygons share the same orientation, so a coverage rasterizer that
// accumulates signed area and clamps it (golang.org/x/image/vector) paints
// overlaps exactly once.
//
// # Line Caps
//
//   - LineCapButt: Flat cap ending exactly at the endpoint
//   - LineCapRound: Semicircular cap with radius = width/2
//   - LineCapSquare: Square cap extending width/2 beyond the endpoint
//
// # Line Joins
//
//   - LineJoinRound: Circular fan at corners
//   - LineJoinBevel: Straight line across the corner
//
// # Usage
//
//	e := stroke.NewExpander(stroke.Stroke{Width: 2, Cap: stroke.LineCapButt, Join: stroke.LineJoinRound})
//	polys := e.Expand([]stroke.Point{{X: 0, Y: 0}, {X: 100, Y: 0}}, false)
package stroke

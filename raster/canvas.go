package raster

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"
	"time"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/floaty"
	"github.com/gogpu/floaty/internal/stroke"
)

// Label is the text drawn at the machine's label placement.
type Label struct {
	Text  string
	Face  font.Face
	Color floaty.RGBA
}

// Canvas renders control layers into an RGBA image.
type Canvas struct {
	img    *image.RGBA
	ras    *vector.Rasterizer
	origin floaty.Matrix

	// Tolerance is the curve flattening tolerance in pixels.
	Tolerance float64
}

// NewCanvas creates a canvas for a control of the given size. margin pixels
// are added on every side so strokes and the floating label, which straddle
// the container edge, are not clipped.
func NewCanvas(size floaty.Size, margin float64) *Canvas {
	margin = math.Max(0, margin)
	w := int(math.Ceil(size.Width + 2*margin))
	h := int(math.Ceil(size.Height + 2*margin))
	return &Canvas{
		img:       image.NewRGBA(image.Rect(0, 0, w, h)),
		ras:       vector.NewRasterizer(w, h),
		origin:    floaty.Translate(margin, margin),
		Tolerance: floaty.DefaultTolerance,
	}
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// PixelAt maps a point in control coordinates to the pixel containing it.
func (c *Canvas) PixelAt(p floaty.Point) image.Point {
	q := c.origin.TransformPoint(p)
	return image.Pt(int(math.Floor(q.X)), int(math.Floor(q.Y)))
}

// ControlPoint maps the center of pixel px back to control coordinates.
func (c *Canvas) ControlPoint(px image.Point) floaty.Point {
	inv, _ := c.origin.Invert()
	return inv.TransformPoint(floaty.Pt(float64(px.X)+0.5, float64(px.Y)+0.5))
}

// Clear fills the whole canvas with col.
func (c *Canvas) Clear(col floaty.RGBA) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col.Color()), image.Point{}, draw.Src)
}

// StrokePath strokes p with butt caps and round joins.
func (c *Canvas) StrokePath(p *floaty.Path, width float64, col floaty.RGBA) {
	if p == nil || width <= 0 {
		return
	}
	e := stroke.NewExpander(stroke.Stroke{Width: width, Cap: stroke.LineCapButt, Join: stroke.LineJoinRound})
	e.SetTolerance(c.Tolerance)

	var polys []stroke.Polygon
	for _, pl := range p.Flatten(c.Tolerance) {
		pts := make([]stroke.Point, len(pl.Points))
		for i, pt := range pl.Points {
			q := c.origin.TransformPoint(pt)
			pts[i] = stroke.Point{X: q.X, Y: q.Y}
		}
		polys = append(polys, e.Expand(pts, pl.Closed)...)
	}
	c.fill(polys, col)
}

// fill paints the union of polys. All polygons share one orientation, so
// overlapping coverage saturates instead of cancelling.
func (c *Canvas) fill(polys []stroke.Polygon, col floaty.RGBA) {
	if len(polys) == 0 {
		return
	}
	b := c.img.Bounds()
	c.ras.Reset(b.Dx(), b.Dy())
	for _, poly := range polys {
		if len(poly) < 3 {
			continue
		}
		c.ras.MoveTo(float32(poly[0].X), float32(poly[0].Y))
		for _, pt := range poly[1:] {
			c.ras.LineTo(float32(pt.X), float32(pt.Y))
		}
		c.ras.ClosePath()
	}
	c.ras.Draw(c.img, b, image.NewUniform(col.Color()), image.Point{})
}

// DrawLabel draws l at placement. The text is rendered at the face's size
// into a scratch image and transformed onto the canvas.
func (c *Canvas) DrawLabel(l Label, placement floaty.LabelPlacement) {
	if l.Text == "" || l.Face == nil {
		return
	}
	m := l.Face.Metrics()
	w := font.MeasureString(l.Face, l.Text).Ceil()
	h := (m.Ascent + m.Descent).Ceil()
	if w <= 0 || h <= 0 {
		return
	}

	scratch := image.NewRGBA(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  scratch,
		Src:  image.NewUniform(l.Color.Color()),
		Face: l.Face,
		Dot:  fixed.Point26_6{Y: m.Ascent},
	}
	d.DrawString(l.Text)

	mat := c.origin.Multiply(placement.Matrix(floaty.Sz(float64(w), float64(h))))
	s2d := f64.Aff3{mat.A, mat.B, mat.C, mat.D, mat.E, mat.F}
	draw.BiLinear.Transform(c.img, s2d, scratch, scratch.Bounds(), draw.Over, nil)
}

// DrawLayers paints a snapshot at scheduler time now: the static border,
// then the revealed part of any edge layers, then the label. label may be
// nil.
func (c *Canvas) DrawLayers(layers floaty.Layers, now time.Duration, label *Label) {
	if b := layers.Border; b != nil {
		c.StrokePath(b.Path, b.Width, b.Color)
	}
	if e := layers.Edges; e != nil {
		left, right := e.Paths(now)
		c.StrokePath(left, e.Width, e.Color)
		c.StrokePath(right, e.Width, e.Color)
	}
	if label != nil && layers.Label != nil {
		c.DrawLabel(*label, layers.Label.At(now))
	}
}

// EncodePNG writes the canvas as PNG to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, c.img); err != nil {
		return fmt.Errorf("raster: encode png: %w", err)
	}
	return nil
}

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("raster: close %s: %w", path, cerr)
		}
	}()
	return c.EncodePNG(f)
}

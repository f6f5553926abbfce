// Package raster is a CPU reference host for floaty.
//
// A Canvas paints floaty.Layers snapshots into an *image.RGBA: the static
// border, the gap-edge reveal, and the label at its current placement.
// Strokes are expanded into polygons by internal/stroke and filled with the
// golang.org/x/image/vector coverage rasterizer. The label is drawn with a
// font.Face at its base size and scaled into place with
// golang.org/x/image/draw.
//
// Example:
//
//	c := raster.NewCanvas(floaty.Sz(200, 48), 4)
//	c.DrawLayers(m.Layers(), sched.Now(), &raster.Label{Text: "Email", Face: face})
//	if err := c.SavePNG("frame.png"); err != nil {
//		return err
//	}
//
// Canvas is not safe for concurrent use.
package raster

// Package measure computes label widths for floaty.Layout.
//
// The geometry engine never measures text itself: the host supplies the
// label's rendered width at its base size, and the machine scales it to
// obtain the gap span. This package provides measurers a host can use:
//
//   - GoTextMeasurer shapes the label with HarfBuzz (go-text/typesetting),
//     so kerning, ligatures and complex scripts are accounted for.
//   - SfntMeasurer sums glyph advances through golang.org/x/image/font.
//     It also exposes a font.Face for drawing the label.
//   - CachedMeasurer memoizes any Measurer behind an LRU cache.
//
// DefaultAlignment picks the gap alignment from the label's base direction:
// right-to-left labels float to the trailing (right) edge.
package measure

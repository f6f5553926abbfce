package measure

import (
	"errors"

	"golang.org/x/image/font/gofont/goregular"
)

// ErrEmptyFont is returned when a measurer is created from empty font data.
var ErrEmptyFont = errors.New("measure: empty font data")

// Measurer returns the advance width of text in pixels at the measurer's
// font size.
type Measurer interface {
	Width(text string) float64
}

// DefaultFont returns the Go Regular TrueType font.
func DefaultFont() []byte {
	return goregular.TTF
}

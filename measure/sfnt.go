package measure

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// SfntMeasurer measures text by summing glyph advances and kerning through
// golang.org/x/image/font. It does not shape, so it is only accurate for
// simple scripts.
type SfntMeasurer struct {
	mu   sync.Mutex
	face font.Face
	size float64
}

// NewSfntMeasurer parses TrueType/OpenType data and returns a measurer for
// the given size in pixels.
func NewSfntMeasurer(data []byte, size float64) (*SfntMeasurer, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFont
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("measure: failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("measure: failed to create face: %w", err)
	}
	return &SfntMeasurer{face: face, size: size}, nil
}

// Size returns the font size in pixels.
func (m *SfntMeasurer) Size() float64 {
	return m.size
}

// Face returns the underlying face. It is not safe for concurrent use and
// must not be used while Width runs on another goroutine.
func (m *SfntMeasurer) Face() font.Face {
	return m.face
}

// Width implements Measurer.
func (m *SfntMeasurer) Width(text string) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return float64(font.MeasureString(m.face, text)) / 64
}

// Close releases the face.
func (m *SfntMeasurer) Close() error {
	return m.face.Close()
}

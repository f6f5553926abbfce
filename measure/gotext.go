package measure

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// GoTextMeasurer measures shaped text with go-text/typesetting.
//
// GoTextMeasurer is safe for concurrent use. The parsed font.Font is shared;
// each call gets its own font.Face and a pooled HarfbuzzShaper, neither of
// which is safe for concurrent use.
type GoTextMeasurer struct {
	font    *font.Font
	size    float64
	shapers sync.Pool
}

// NewGoTextMeasurer parses TrueType/OpenType data and returns a measurer for
// the given size in pixels.
func NewGoTextMeasurer(data []byte, size float64) (*GoTextMeasurer, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFont
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("measure: failed to parse font: %w", err)
	}
	return &GoTextMeasurer{
		font: face.Font,
		size: size,
		shapers: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}, nil
}

// Size returns the font size in pixels.
func (m *GoTextMeasurer) Size() float64 {
	return m.size
}

// Width implements Measurer.
func (m *GoTextMeasurer) Width(text string) float64 {
	if text == "" {
		return 0
	}
	runes := []rune(text)

	dir := di.DirectionLTR
	if BaseDirection(text) == RightToLeft {
		dir = di.DirectionRTL
	}

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      font.NewFace(m.font),
		Size:      fixed.Int26_6(m.size * 64),
		Script:    scriptOf(runes),
		Language:  language.NewLanguage("en"),
	}

	shaper := m.shapers.Get().(*shaping.HarfbuzzShaper)
	out := shaper.Shape(input)
	m.shapers.Put(shaper)

	var adv fixed.Int26_6
	for _, g := range out.Glyphs {
		adv += g.Advance
	}
	return float64(adv) / 64
}

// scriptOf returns the script of the first non-space rune.
func scriptOf(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

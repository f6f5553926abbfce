package measure

import (
	"golang.org/x/text/unicode/bidi"

	"github.com/gogpu/floaty"
)

// Direction is the base direction of a label.
type Direction int

const (
	// LeftToRight is also used for labels without strong characters.
	LeftToRight Direction = iota
	RightToLeft
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	if d == RightToLeft {
		return "rtl"
	}
	return "ltr"
}

// BaseDirection returns the direction of the first strong character in text.
func BaseDirection(text string) Direction {
	for i := 0; i < len(text); {
		p, size := bidi.LookupString(text[i:])
		if size == 0 {
			break
		}
		switch p.Class() {
		case bidi.L:
			return LeftToRight
		case bidi.R, bidi.AL:
			return RightToLeft
		}
		i += size
	}
	return LeftToRight
}

// DefaultAlignment returns the gap alignment a label floats to by default:
// leading for left-to-right text, trailing for right-to-left text.
func DefaultAlignment(text string, offset float64) floaty.Alignment {
	if BaseDirection(text) == RightToLeft {
		return floaty.AlignTrailing(offset)
	}
	return floaty.AlignLeading(offset)
}

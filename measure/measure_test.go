package measure

import (
	"errors"
	"math"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/gogpu/floaty"
)

func TestNewMeasurers_EmptyFont(t *testing.T) {
	if _, err := NewGoTextMeasurer(nil, 16); !errors.Is(err, ErrEmptyFont) {
		t.Errorf("NewGoTextMeasurer(nil) error = %v, want ErrEmptyFont", err)
	}
	if _, err := NewSfntMeasurer(nil, 16); !errors.Is(err, ErrEmptyFont) {
		t.Errorf("NewSfntMeasurer(nil) error = %v, want ErrEmptyFont", err)
	}
}

func TestNewMeasurers_InvalidFont(t *testing.T) {
	garbage := []byte("not a font at all")
	if _, err := NewGoTextMeasurer(garbage, 16); err == nil {
		t.Error("NewGoTextMeasurer accepted invalid data")
	}
	if _, err := NewSfntMeasurer(garbage, 16); err == nil {
		t.Error("NewSfntMeasurer accepted invalid data")
	}
}

func TestMeasurers_Width(t *testing.T) {
	gt, err := NewGoTextMeasurer(DefaultFont(), 16)
	if err != nil {
		t.Fatalf("NewGoTextMeasurer: %v", err)
	}
	sf, err := NewSfntMeasurer(DefaultFont(), 16)
	if err != nil {
		t.Fatalf("NewSfntMeasurer: %v", err)
	}
	t.Cleanup(func() { _ = sf.Close() })

	measurers := map[string]Measurer{"gotext": gt, "sfnt": sf}
	for name, m := range measurers {
		t.Run(name, func(t *testing.T) {
			if w := m.Width(""); w != 0 {
				t.Errorf("Width(\"\") = %v, want 0", w)
			}
			short, long := m.Width("Name"), m.Width("Email address")
			if short <= 0 {
				t.Errorf("Width(Name) = %v, want > 0", short)
			}
			if long <= short {
				t.Errorf("Width(Email address) = %v, want > %v", long, short)
			}
			// Go Regular averages roughly half an em per Latin glyph.
			if perGlyph := long / 13; perGlyph < 4 || perGlyph > 12 {
				t.Errorf("average advance %v out of range for a 16px font", perGlyph)
			}
		})
	}

	// Both measurers read the same hmtx advances for unkerned text.
	if a, b := gt.Width("lllll"), sf.Width("lllll"); math.Abs(a-b) > 0.5 {
		t.Errorf("gotext=%v sfnt=%v, want within 0.5px", a, b)
	}
}

func TestGoTextMeasurer_ScalesWithSize(t *testing.T) {
	small, err := NewGoTextMeasurer(DefaultFont(), 12)
	if err != nil {
		t.Fatal(err)
	}
	large, err := NewGoTextMeasurer(DefaultFont(), 24)
	if err != nil {
		t.Fatal(err)
	}
	if small.Size() != 12 || large.Size() != 24 {
		t.Errorf("sizes = %v, %v", small.Size(), large.Size())
	}
	ratio := large.Width("Password") / small.Width("Password")
	if math.Abs(ratio-2) > 0.05 {
		t.Errorf("width ratio = %v, want ~2", ratio)
	}
}

func TestGoTextMeasurer_Concurrent(t *testing.T) {
	m, err := NewGoTextMeasurer(DefaultFont(), 16)
	if err != nil {
		t.Fatal(err)
	}
	want := m.Width("Username")

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 20 {
				if got := m.Width("Username"); got != want {
					t.Errorf("concurrent Width = %v, want %v", got, want)
					return
				}
			}
		}()
	}
	wg.Wait()
}

// countingMeasurer returns len(text) and counts calls.
type countingMeasurer struct {
	calls atomic.Int32
}

func (c *countingMeasurer) Width(text string) float64 {
	c.calls.Add(1)
	return float64(len(text))
}

func TestCachedMeasurer(t *testing.T) {
	inner := &countingMeasurer{}
	c, err := NewCachedMeasurer(inner, 2)
	if err != nil {
		t.Fatalf("NewCachedMeasurer: %v", err)
	}

	if w := c.Width("abc"); w != 3 {
		t.Errorf("Width = %v, want 3", w)
	}
	c.Width("abc")
	if n := inner.calls.Load(); n != 1 {
		t.Errorf("inner calls = %d, want 1", n)
	}

	c.Width("de")
	c.Width("fghi") // evicts "abc"
	if c.Len() != 2 {
		t.Errorf("Len = %d, want 2", c.Len())
	}
	c.Width("abc")
	if n := inner.calls.Load(); n != 4 {
		t.Errorf("inner calls = %d, want 4", n)
	}

	c.Purge()
	if c.Len() != 0 {
		t.Errorf("Len after Purge = %d, want 0", c.Len())
	}
}

func TestCachedMeasurer_MatchesUncached(t *testing.T) {
	m, err := NewGoTextMeasurer(DefaultFont(), 16)
	if err != nil {
		t.Fatal(err)
	}
	c, err := NewCachedMeasurer(m, 0)
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range []string{"Email", "Email", "Phone number", "البريد"} {
		if got, want := c.Width(s), m.Width(s); got != want {
			t.Errorf("cached Width(%q) = %v, want %v", s, got, want)
		}
	}
}

func TestBaseDirection(t *testing.T) {
	tests := []struct {
		text string
		want Direction
	}{
		{"", LeftToRight},
		{"Email", LeftToRight},
		{"123", LeftToRight},
		{"שם משתמש", RightToLeft},
		{"البريد الإلكتروني", RightToLeft},
		{"42 שם", RightToLeft},
		{"Email שם", LeftToRight},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := BaseDirection(tt.text); got != tt.want {
				t.Errorf("BaseDirection(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestDefaultAlignment(t *testing.T) {
	if got := DefaultAlignment("Email", 12); got != floaty.AlignLeading(12) {
		t.Errorf("LTR alignment = %v, want leading(12)", got)
	}
	if got := DefaultAlignment("שם", 12); got != floaty.AlignTrailing(12) {
		t.Errorf("RTL alignment = %v, want trailing(12)", got)
	}
}

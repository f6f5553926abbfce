// Package config loads floating-label control descriptions from YAML.
//
// A control file describes one bordered control: its size, label, font
// size, border geometry, colors and animation timings. Missing fields take
// the floaty defaults. Environment variables prefixed with FLOATY_ override
// file values; LoadEnv also reads an optional .env file first.
//
//	size: {width: 200, height: 48}
//	label: Email
//	font_size: 16
//	corner_radius: 8
//	alignment: {kind: leading, offset: 12}
//	border_color: "#555555"
//	reveal_duration: 175ms
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/floaty"
	"github.com/gogpu/floaty/measure"
)

// ErrInvalidAlignment is returned for an unknown alignment kind.
var ErrInvalidAlignment = errors.New("config: invalid alignment")

// Defaults for fields that have no floaty counterpart.
const (
	DefaultWidth    = 200.0
	DefaultHeight   = 48.0
	DefaultFontSize = 16.0
)

// Size is the container size.
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Alignment selects where the gap sits on the top edge. Kind is one of
// "center", "leading", "trailing" or "auto"; auto (or empty) picks leading
// or trailing from the label's writing direction.
type Alignment struct {
	Kind   string  `yaml:"kind"`
	Offset float64 `yaml:"offset"`
}

// Control describes one floating-label control.
type Control struct {
	Size         Size      `yaml:"size"`
	Label        string    `yaml:"label"`
	FontSize     float64   `yaml:"font_size"`
	FontFile     string    `yaml:"font_file"`
	CornerRadius float64   `yaml:"corner_radius"`
	SidePadding  float64   `yaml:"side_padding"`
	LabelScale   float64   `yaml:"label_scale"`
	Alignment    Alignment `yaml:"alignment"`
	BorderWidth  float64   `yaml:"border_width"`

	BorderColor     string `yaml:"border_color"`
	BackgroundColor string `yaml:"background_color"`
	// LabelColor falls back to BorderColor when empty.
	LabelColor string `yaml:"label_color"`

	RevealDuration time.Duration `yaml:"reveal_duration"`
	SettleDelay    time.Duration `yaml:"settle_delay"`
	LabelDuration  time.Duration `yaml:"label_duration"`
}

// Default returns a control with every field set to its default.
func Default() *Control {
	return &Control{
		Size:            Size{Width: DefaultWidth, Height: DefaultHeight},
		FontSize:        DefaultFontSize,
		CornerRadius:    floaty.DefaultCornerRadius,
		SidePadding:     floaty.DefaultSidePadding,
		LabelScale:      floaty.DefaultLabelScale,
		BorderWidth:     floaty.DefaultBorderWidth,
		BorderColor:     "#555555",
		BackgroundColor: "#ffffff",
		RevealDuration:  floaty.DefaultRevealDuration,
		SettleDelay:     floaty.DefaultSettleDelay,
		LabelDuration:   floaty.DefaultLabelDuration,
	}
}

// Load reads a YAML control file.
func Load(path string) (*Control, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML control description over the defaults and validates
// the result.
func Parse(data []byte) (*Control, error) {
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("config: failed to parse YAML: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// labelColor returns the label color string, defaulting to the border color.
func (c *Control) labelColor() string {
	if c.LabelColor == "" {
		return c.BorderColor
	}
	return c.LabelColor
}

// Validate checks that the control describes a drawable border.
func (c *Control) Validate() error {
	if c.Size.Width <= 0 || c.Size.Height <= 0 {
		return fmt.Errorf("config: size must be positive, got %vx%v", c.Size.Width, c.Size.Height)
	}
	if c.FontSize <= 0 {
		return fmt.Errorf("config: font_size must be positive, got %v", c.FontSize)
	}
	if limit := min(c.Size.Width, c.Size.Height) / 2; c.CornerRadius < 0 || c.CornerRadius > limit {
		return fmt.Errorf("config: corner_radius %v outside [0, %v]", c.CornerRadius, limit)
	}
	if c.SidePadding < 0 {
		return fmt.Errorf("config: side_padding must not be negative, got %v", c.SidePadding)
	}
	if c.LabelScale <= 0 || c.LabelScale > 1 {
		return fmt.Errorf("config: label_scale %v outside (0, 1]", c.LabelScale)
	}
	if c.BorderWidth <= 0 {
		return fmt.Errorf("config: border_width must be positive, got %v", c.BorderWidth)
	}
	if c.RevealDuration < 0 || c.SettleDelay < 0 || c.LabelDuration < 0 {
		return errors.New("config: durations must not be negative")
	}
	if _, err := c.alignment(); err != nil {
		return err
	}
	for name, hex := range map[string]string{
		"border_color":     c.BorderColor,
		"background_color": c.BackgroundColor,
		"label_color":      c.labelColor(),
	} {
		if _, err := floaty.ParseHex(hex); err != nil {
			return fmt.Errorf("config: %s %q: %w", name, hex, err)
		}
	}
	return nil
}

// alignment resolves the configured alignment against the label.
func (c *Control) alignment() (floaty.Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(c.Alignment.Kind)) {
	case "center":
		return floaty.AlignCenter(), nil
	case "leading":
		return floaty.AlignLeading(c.Alignment.Offset), nil
	case "trailing":
		return floaty.AlignTrailing(c.Alignment.Offset), nil
	case "", "auto":
		return measure.DefaultAlignment(c.Label, c.Alignment.Offset), nil
	default:
		return floaty.Alignment{}, fmt.Errorf("%w: %q", ErrInvalidAlignment, c.Alignment.Kind)
	}
}

// ResolvedAlignment returns the gap alignment. It must only be called on a
// validated control.
func (c *Control) ResolvedAlignment() floaty.Alignment {
	a, _ := c.alignment()
	return a
}

// Colors returns the parsed border, background and label colors. It must
// only be called on a validated control.
func (c *Control) Colors() (border, background, label floaty.RGBA) {
	border, _ = floaty.ParseHex(c.BorderColor)
	background, _ = floaty.ParseHex(c.BackgroundColor)
	label, _ = floaty.ParseHex(c.labelColor())
	return border, background, label
}

// ContainerSize returns the container size.
func (c *Control) ContainerSize() floaty.Size {
	return floaty.Sz(c.Size.Width, c.Size.Height)
}

// Options returns the machine options the control describes.
func (c *Control) Options() []floaty.MachineOption {
	border, background, _ := c.Colors()
	return []floaty.MachineOption{
		floaty.WithCornerRadius(c.CornerRadius),
		floaty.WithAlignment(c.ResolvedAlignment()),
		floaty.WithSidePadding(c.SidePadding),
		floaty.WithLabelScale(c.LabelScale),
		floaty.WithBorderWidth(c.BorderWidth),
		floaty.WithBorderColor(border),
		floaty.WithBackgroundColor(background),
		floaty.WithRevealDuration(c.RevealDuration),
		floaty.WithSettleDelay(c.SettleDelay),
		floaty.WithLabelAnimation(c.LabelDuration, floaty.DefaultLabelDampingRatio),
	}
}

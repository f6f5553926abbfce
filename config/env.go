package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "FLOATY_"

// LoadEnv loads the given .env files (".env" when none are named) into the
// process environment, ignoring missing files, then applies FLOATY_*
// overrides to c and re-validates it.
func (c *Control) LoadEnv(files ...string) error {
	_ = godotenv.Load(files...)
	return c.ApplyEnv(os.LookupEnv)
}

// ApplyEnv applies overrides read through lookup and re-validates the
// result. c is only modified when every override parses and the result is
// valid.
//
// Recognized variables: FLOATY_WIDTH, FLOATY_HEIGHT, FLOATY_LABEL,
// FLOATY_FONT_SIZE, FLOATY_FONT_FILE, FLOATY_CORNER_RADIUS,
// FLOATY_SIDE_PADDING, FLOATY_LABEL_SCALE, FLOATY_ALIGNMENT,
// FLOATY_ALIGNMENT_OFFSET, FLOATY_BORDER_WIDTH, FLOATY_BORDER_COLOR,
// FLOATY_BACKGROUND_COLOR, FLOATY_LABEL_COLOR, FLOATY_REVEAL_DURATION,
// FLOATY_SETTLE_DELAY and FLOATY_LABEL_DURATION.
func (c *Control) ApplyEnv(lookup func(string) (string, bool)) error {
	next := *c
	if err := next.applyEnv(lookup); err != nil {
		return err
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*c = next
	return nil
}

func (c *Control) applyEnv(lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"LABEL":            &c.Label,
		"FONT_FILE":        &c.FontFile,
		"ALIGNMENT":        &c.Alignment.Kind,
		"BORDER_COLOR":     &c.BorderColor,
		"BACKGROUND_COLOR": &c.BackgroundColor,
		"LABEL_COLOR":      &c.LabelColor,
	}
	for key, dst := range strs {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = v
		}
	}

	floats := map[string]*float64{
		"WIDTH":            &c.Size.Width,
		"HEIGHT":           &c.Size.Height,
		"FONT_SIZE":        &c.FontSize,
		"CORNER_RADIUS":    &c.CornerRadius,
		"SIDE_PADDING":     &c.SidePadding,
		"LABEL_SCALE":      &c.LabelScale,
		"ALIGNMENT_OFFSET": &c.Alignment.Offset,
		"BORDER_WIDTH":     &c.BorderWidth,
	}
	for key, dst := range floats {
		v, ok := lookup(EnvPrefix + key)
		if !ok {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("config: %s%s: %w", EnvPrefix, key, err)
		}
		*dst = f
	}

	durations := map[string]*time.Duration{
		"REVEAL_DURATION": &c.RevealDuration,
		"SETTLE_DELAY":    &c.SettleDelay,
		"LABEL_DURATION":  &c.LabelDuration,
	}
	for key, dst := range durations {
		v, ok := lookup(EnvPrefix + key)
		if !ok {
			continue
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: %s%s: %w", EnvPrefix, key, err)
		}
		*dst = d
	}
	return nil
}

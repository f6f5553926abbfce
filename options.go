package floaty

import (
	"log/slog"
	"time"
)

// Defaults used by NewMachine when no option overrides them.
const (
	DefaultCornerRadius      = 8.0
	DefaultSidePadding       = 4.0
	DefaultBorderWidth       = 2.0
	DefaultLabelScale        = 0.75
	DefaultLabelDampingRatio = 1.0

	DefaultRevealDuration = 175 * time.Millisecond
	DefaultSettleDelay    = 50 * time.Millisecond
	DefaultLabelDuration  = 300 * time.Millisecond
)

// MachineOption configures a Machine during creation.
//
// Example:
//
//	m := floaty.NewMachine(sched, host,
//	    floaty.WithCornerRadius(16),
//	    floaty.WithAlignment(floaty.AlignCenter()),
//	)
type MachineOption func(*machineOptions)

// machineOptions holds the static configuration of a Machine.
type machineOptions struct {
	cornerRadius    float64
	alignment       Alignment
	sidePadding     float64
	labelScale      float64
	borderWidth     float64
	borderColor     RGBA
	backgroundColor RGBA

	revealDuration time.Duration
	settleDelay    time.Duration
	labelDuration  time.Duration
	labelDamping   float64

	logger      *slog.Logger
	onWillFloat func(Transition)
	onWillRest  func(Transition)
}

// defaultMachineOptions returns the default machine options.
func defaultMachineOptions() machineOptions {
	return machineOptions{
		cornerRadius:    DefaultCornerRadius,
		alignment:       AlignLeading(0),
		sidePadding:     DefaultSidePadding,
		labelScale:      DefaultLabelScale,
		borderWidth:     DefaultBorderWidth,
		borderColor:     DarkGray,
		backgroundColor: White,
		revealDuration:  DefaultRevealDuration,
		settleDelay:     DefaultSettleDelay,
		labelDuration:   DefaultLabelDuration,
		labelDamping:    DefaultLabelDampingRatio,
	}
}

// WithCornerRadius sets the border corner radius.
// The radius must not exceed half the smaller container dimension.
func WithCornerRadius(r float64) MachineOption {
	return func(o *machineOptions) {
		o.cornerRadius = r
	}
}

// WithAlignment sets where the floating label and its gap are anchored.
func WithAlignment(a Alignment) MachineOption {
	return func(o *machineOptions) {
		o.alignment = a
	}
}

// WithSidePadding sets the extra margin around the gap.
func WithSidePadding(p float64) MachineOption {
	return func(o *machineOptions) {
		o.sidePadding = p
	}
}

// WithLabelScale sets the scale applied to the label while floating.
// The gap is sized from the measured text width times this scale.
func WithLabelScale(s float64) MachineOption {
	return func(o *machineOptions) {
		o.labelScale = s
	}
}

// WithBorderWidth sets the stroke width of the border and its edge layers.
func WithBorderWidth(w float64) MachineOption {
	return func(o *machineOptions) {
		o.borderWidth = w
	}
}

// WithBorderColor sets the border stroke color.
func WithBorderColor(c RGBA) MachineOption {
	return func(o *machineOptions) {
		o.borderColor = c
	}
}

// WithBackgroundColor sets the color behind the control. Gap-opening edge
// strokes are painted in it to erase the border.
func WithBackgroundColor(c RGBA) MachineOption {
	return func(o *machineOptions) {
		o.backgroundColor = c
	}
}

// WithRevealDuration sets how long the gap-edge stroke reveal lasts.
func WithRevealDuration(d time.Duration) MachineOption {
	return func(o *machineOptions) {
		o.revealDuration = d
	}
}

// WithSettleDelay sets the pause between the end of the stroke reveal and
// the static border swap.
func WithSettleDelay(d time.Duration) MachineOption {
	return func(o *machineOptions) {
		o.settleDelay = d
	}
}

// WithLabelAnimation sets the label transition duration and the damping
// ratio reported to hosts that animate the label with a spring.
func WithLabelAnimation(d time.Duration, dampingRatio float64) MachineOption {
	return func(o *machineOptions) {
		o.labelDuration = d
		o.labelDamping = dampingRatio
	}
}

// WithLogger sets the logger used by the machine instead of Logger().
func WithLogger(l *slog.Logger) MachineOption {
	return func(o *machineOptions) {
		o.logger = l
	}
}

// OnWillFloat registers a hook called before a transition to Floating is
// animated.
func OnWillFloat(fn func(Transition)) MachineOption {
	return func(o *machineOptions) {
		o.onWillFloat = fn
	}
}

// OnWillRest registers a hook called before a transition to Resting is
// animated.
func OnWillRest(fn func(Transition)) MachineOption {
	return func(o *machineOptions) {
		o.onWillRest = fn
	}
}

package floaty

import (
	"testing"
	"time"
)

func TestDefaultMachineOptions(t *testing.T) {
	o := defaultMachineOptions()

	if o.cornerRadius != DefaultCornerRadius || o.sidePadding != DefaultSidePadding {
		t.Errorf("cornerRadius=%v sidePadding=%v", o.cornerRadius, o.sidePadding)
	}
	if o.labelScale != 0.75 || o.borderWidth != 2 {
		t.Errorf("labelScale=%v borderWidth=%v", o.labelScale, o.borderWidth)
	}
	if o.alignment != AlignLeading(0) {
		t.Errorf("alignment = %v, want leading(0)", o.alignment)
	}
	if o.revealDuration != 175*time.Millisecond || o.settleDelay != 50*time.Millisecond {
		t.Errorf("reveal=%v settle=%v", o.revealDuration, o.settleDelay)
	}
	if o.labelDuration != 300*time.Millisecond || o.labelDamping != 1 {
		t.Errorf("label=%v damping=%v", o.labelDuration, o.labelDamping)
	}
	if o.borderColor != DarkGray || o.backgroundColor != White {
		t.Errorf("colors = %v / %v", o.borderColor, o.backgroundColor)
	}
}

func TestMachineOptions(t *testing.T) {
	var floated, rested int
	opts := []MachineOption{
		WithCornerRadius(12),
		WithAlignment(AlignTrailing(6)),
		WithSidePadding(3),
		WithLabelScale(0.5),
		WithBorderWidth(1),
		WithBorderColor(Black),
		WithBackgroundColor(Transparent),
		WithRevealDuration(time.Second),
		WithSettleDelay(time.Millisecond),
		WithLabelAnimation(2*time.Second, 0.8),
		OnWillFloat(func(Transition) { floated++ }),
		OnWillRest(func(Transition) { rested++ }),
	}
	o := defaultMachineOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.cornerRadius != 12 || o.alignment != AlignTrailing(6) || o.sidePadding != 3 {
		t.Errorf("geometry options = %v %v %v", o.cornerRadius, o.alignment, o.sidePadding)
	}
	if o.labelScale != 0.5 || o.borderWidth != 1 {
		t.Errorf("labelScale=%v borderWidth=%v", o.labelScale, o.borderWidth)
	}
	if o.borderColor != Black || o.backgroundColor != Transparent {
		t.Errorf("colors = %v / %v", o.borderColor, o.backgroundColor)
	}
	if o.revealDuration != time.Second || o.settleDelay != time.Millisecond {
		t.Errorf("reveal=%v settle=%v", o.revealDuration, o.settleDelay)
	}
	if o.labelDuration != 2*time.Second || o.labelDamping != 0.8 {
		t.Errorf("label=%v damping=%v", o.labelDuration, o.labelDamping)
	}

	o.onWillFloat(Transition{})
	o.onWillRest(Transition{})
	if floated != 1 || rested != 1 {
		t.Errorf("hooks called %d/%d times, want 1/1", floated, rested)
	}
}

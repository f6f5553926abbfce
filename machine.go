package floaty

import (
	"log/slog"
	"sync"
	"time"
)

// State is the label state of a floating-label control.
type State int

const (
	// Resting is the initial state: the label sits inside the field and the
	// border is continuous.
	Resting State = iota
	// Floating lifts the label onto the top edge and opens the border gap.
	Floating
)

// String implements fmt.Stringer.
func (s State) String() string {
	if s == Floating {
		return "floating"
	}
	return "resting"
}

// Layout carries the measured inputs of one host layout pass.
type Layout struct {
	// ContainerSize is the size of the bordered area.
	ContainerSize Size
	// TextWidth is the label's rendered width at its base (unscaled) size.
	TextWidth float64
	// RestingLabelCenter is where the host centers the label while resting.
	RestingLabelCenter Point
}

// Transition is passed to the OnWillFloat and OnWillRest hooks.
type Transition struct {
	From, To State
	// Seq is the transition sequence number.
	Seq uint64
	// Before and After are the border geometries on either side of the
	// transition; they differ only in DrawGap.
	Before, After GeometryConfig
}

// BorderLayer is the static border stroke.
type BorderLayer struct {
	Path   *Path
	Color  RGBA
	Width  float64
	Config GeometryConfig
}

// EdgeAnimation is the stroke reveal of the two gap-edge layers.
// The layers stay on screen after the reveal completes until the next
// SetBorder call replaces them.
type EdgeAnimation struct {
	Pair  PathPair
	Color RGBA
	Width float64
	// Opening is true when the gap opens (transition to Floating).
	Opening bool
	// Start is the scheduler time the reveal began at.
	Start    time.Duration
	Duration time.Duration
	Curve    Curve
}

// Progress returns the revealed fraction of each edge at now.
func (a EdgeAnimation) Progress(now time.Duration) float64 {
	return a.Curve.Progress(a.Start, now, a.Duration)
}

// Paths returns the visible part of the left and right edges at now.
func (a EdgeAnimation) Paths(now time.Duration) (left, right *Path) {
	f := a.Progress(now)
	return a.Pair.Left.Path().Trim(f), a.Pair.Right.Path().Trim(f)
}

// Layers is a snapshot of everything a host needs to draw a frame.
type Layers struct {
	State State
	Seq   uint64
	// Border is nil until the first layout.
	Border *BorderLayer
	// Edges is non-nil while a transition's edge layers are on screen.
	Edges *EdgeAnimation
	// Label is nil until the first layout.
	Label *LabelTransition
}

// Renderer consumes the machine's output. It is implemented by the host.
type Renderer interface {
	// SetBorder replaces the static border layer and removes any edge
	// layers left by AnimateEdges.
	SetBorder(BorderLayer)
	// AnimateEdges adds two edge layers and reveals them 0→1.
	AnimateEdges(EdgeAnimation)
	// AnimateLabel moves and rescales the label.
	AnimateLabel(LabelTransition)
}

// Machine is the resting/floating controller of one control. It derives
// border geometry from the latest layout, animates the gap edges and the
// label on every state flip, and swaps in the static border once the edge
// reveal has settled.
//
// Each flip bumps a sequence number; a settle callback only applies if its
// captured number is still current, so the newest transition always owns
// the border layer.
//
// Machine is safe for concurrent use. State changes and the Renderer calls
// that publish them are serialized, so the renderer sees layers in the order
// the machine produced them. Readers (State, Layers, Config) never wait on
// the renderer. Renderer methods and hooks may call the readers but must
// not call SetLayout, SetShouldFloat, Redraw or SetBorderColor.
type Machine struct {
	// deliverMu serializes state changes together with their renderer
	// delivery. It is always acquired before mu.
	deliverMu sync.Mutex
	mu        sync.Mutex
	opts      machineOptions
	sched     Scheduler
	renderer  Renderer

	state     State
	seq       uint64
	layout    Layout
	hasLayout bool
	pending   bool
	layers    Layers
}

// NewMachine creates a Machine in the Resting state. renderer may be nil
// when the host polls Layers instead.
func NewMachine(sched Scheduler, renderer Renderer, opts ...MachineOption) *Machine {
	o := defaultMachineOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Machine{
		opts:     o,
		sched:    sched,
		renderer: renderer,
	}
}

// logger returns the configured logger or the package logger.
func (m *Machine) logger() *slog.Logger {
	if m.opts.logger != nil {
		return m.opts.logger
	}
	return Logger()
}

// State returns the current state.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Layers returns a snapshot of the current layers.
func (m *Machine) Layers() Layers {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.layers
}

// Config returns the geometry for the current state and layout.
func (m *Machine) Config() GeometryConfig {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.geometry(m.state == Floating)
}

// geometry builds a GeometryConfig from the latest inputs. Callers hold mu.
func (m *Machine) geometry(drawGap bool) GeometryConfig {
	return GeometryConfig{
		ContainerSize: m.layout.ContainerSize,
		CornerRadius:  m.opts.cornerRadius,
		TextSpan:      m.layout.TextWidth * m.opts.labelScale,
		Alignment:     m.opts.alignment,
		SidePadding:   m.opts.sidePadding,
		DrawGap:       drawGap,
	}
}

// placement returns the label placement for s. Callers hold mu.
func (m *Machine) placement(s State) LabelPlacement {
	if s == Floating {
		return floatingPlacement(m.geometry(true), m.opts.labelScale)
	}
	return restingPlacement(m.layout)
}

// borderLayer builds the static border for the current state. Callers hold mu.
func (m *Machine) borderLayer() BorderLayer {
	cfg := m.geometry(m.state == Floating)
	return BorderLayer{
		Path:   BuildBorder(cfg),
		Color:  m.opts.borderColor,
		Width:  m.opts.borderWidth,
		Config: cfg,
	}
}

// SetLayout records the inputs of a host layout pass. Without a pending
// transition the static border is rebuilt immediately; otherwise the pending
// swap picks up the new inputs. A label still in flight is retargeted to
// its placement under the new layout.
func (m *Machine) SetLayout(l Layout) {
	m.deliverMu.Lock()
	defer m.deliverMu.Unlock()

	m.mu.Lock()
	m.layout = l
	m.hasLayout = true

	var layer *BorderLayer
	if !m.pending {
		b := m.borderLayer()
		layer = &b
		m.layers.Border = layer
		m.layers.Edges = nil
	}
	label := m.retargetLabel(m.sched.Now())
	r := m.renderer
	m.mu.Unlock()

	if r == nil {
		return
	}
	if layer != nil {
		r.SetBorder(*layer)
	}
	if label != nil {
		r.AnimateLabel(*label)
	}
}

// retargetLabel points the label at its placement for the current state and
// layout. A running transition continues from where the label is now and
// keeps its curve and end time; otherwise the label is placed directly.
// It returns nil when the label is already headed to the right place.
// Callers hold mu.
func (m *Machine) retargetLabel(now time.Duration) *LabelTransition {
	to := m.placement(m.state)
	cur := m.layers.Label
	if cur != nil && cur.To == to {
		return nil
	}

	t := LabelTransition{
		From:         to,
		To:           to,
		Start:        now,
		Curve:        Linear,
		DampingRatio: m.opts.labelDamping,
	}
	if cur != nil && !cur.Done(now) {
		t.From = cur.At(now)
		t.Duration = cur.Start + cur.Duration - now
		t.Curve = cur.Curve
	}
	m.layers.Label = &t
	return &t
}

// SetShouldFloat feeds the host's float signal (non-empty content or focus).
// A value matching the current state is ignored.
func (m *Machine) SetShouldFloat(shouldFloat bool) {
	target := Resting
	if shouldFloat {
		target = Floating
	}

	m.deliverMu.Lock()
	m.mu.Lock()
	if target == m.state {
		m.mu.Unlock()
		m.deliverMu.Unlock()
		return
	}

	from := m.state
	m.state = target
	m.seq++
	seq := m.seq
	opening := target == Floating

	tr := Transition{
		From:   from,
		To:     target,
		Seq:    seq,
		Before: m.geometry(!opening),
		After:  m.geometry(opening),
	}
	hook := m.opts.onWillRest
	if opening {
		hook = m.opts.onWillFloat
	}

	if !m.hasLayout {
		m.layers.State = target
		m.layers.Seq = seq
		m.mu.Unlock()
		m.logger().Debug("floaty: state changed before layout", "state", target, "seq", seq)
		if hook != nil {
			hook(tr)
		}
		m.deliverMu.Unlock()
		return
	}

	now := m.sched.Now()
	color := m.opts.borderColor
	if opening {
		color = m.opts.backgroundColor
	}
	edges := EdgeAnimation{
		Pair:     BuildGapAnimation(tr.After, opening),
		Color:    color,
		Width:    m.opts.borderWidth,
		Opening:  opening,
		Start:    now,
		Duration: m.opts.revealDuration,
		Curve:    EaseOut,
	}

	startAt := m.placement(from)
	if m.layers.Label != nil {
		startAt = m.layers.Label.At(now)
	}
	curve := EaseIn
	if opening {
		curve = EaseOut
	}
	label := LabelTransition{
		From:         startAt,
		To:           m.placement(target),
		Start:        now,
		Duration:     m.opts.labelDuration,
		Curve:        curve,
		DampingRatio: m.opts.labelDamping,
	}

	m.layers.State = target
	m.layers.Seq = seq
	m.layers.Edges = &edges
	m.layers.Label = &label
	m.pending = true
	r := m.renderer
	m.mu.Unlock()

	m.logger().Debug("floaty: transition",
		"from", from, "to", target, "seq", seq,
		"gap", tr.After.GapPoints(), "pivot", tr.After.PivotX())

	if hook != nil {
		hook(tr)
	}
	if r != nil {
		r.AnimateEdges(edges)
		r.AnimateLabel(label)
	}
	m.deliverMu.Unlock()

	// The swap waits for the reveal to finish, then settles.
	m.sched.AfterFunc(m.opts.revealDuration+m.opts.settleDelay, func() {
		m.completeSwap(seq)
	})
}

// completeSwap replaces the edge layers with the static border if seq is
// still the latest transition.
func (m *Machine) completeSwap(seq uint64) {
	m.deliverMu.Lock()
	defer m.deliverMu.Unlock()

	m.mu.Lock()
	if seq != m.seq {
		current := m.seq
		m.mu.Unlock()
		m.logger().Debug("floaty: stale border swap skipped", "seq", seq, "current", current)
		return
	}

	m.pending = false
	layer := m.borderLayer()
	m.layers.Border = &layer
	m.layers.Edges = nil
	state := m.state
	r := m.renderer
	m.mu.Unlock()

	m.logger().Debug("floaty: border swapped", "state", state, "seq", seq, "subpaths", layer.Path.Subpaths())
	if r != nil {
		r.SetBorder(layer)
	}
}

// Redraw rebuilds the static border immediately, superseding any pending
// swap and dropping the edge layers. Hosts call it after changing colors or
// when an animation must be cut short. It does nothing before the first
// layout.
func (m *Machine) Redraw() {
	m.deliverMu.Lock()
	defer m.deliverMu.Unlock()
	m.redraw()
}

// redraw implements Redraw. Callers hold deliverMu.
func (m *Machine) redraw() {
	m.mu.Lock()
	if !m.hasLayout {
		m.mu.Unlock()
		return
	}
	m.seq++
	m.pending = false
	layer := m.borderLayer()
	m.layers.Seq = m.seq
	m.layers.Border = &layer
	m.layers.Edges = nil
	r := m.renderer
	m.mu.Unlock()

	if r != nil {
		r.SetBorder(layer)
	}
}

// SetBorderColor changes the border color and redraws the border.
func (m *Machine) SetBorderColor(c RGBA) {
	m.deliverMu.Lock()
	defer m.deliverMu.Unlock()

	m.mu.Lock()
	m.opts.borderColor = c
	m.mu.Unlock()
	m.redraw()
}

// SettleTime returns how long after a flip the static border is swapped in.
func (m *Machine) SettleTime() time.Duration {
	return m.opts.revealDuration + m.opts.settleDelay
}

package floaty

import (
	"math"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// recordingRenderer records every call the machine makes.
type recordingRenderer struct {
	mu      sync.Mutex
	borders []BorderLayer
	edges   []EdgeAnimation
	labels  []LabelTransition
}

func (r *recordingRenderer) SetBorder(l BorderLayer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.borders = append(r.borders, l)
}

func (r *recordingRenderer) AnimateEdges(a EdgeAnimation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.edges = append(r.edges, a)
}

func (r *recordingRenderer) AnimateLabel(l LabelTransition) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.labels = append(r.labels, l)
}

func (r *recordingRenderer) lastBorder() BorderLayer {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.borders[len(r.borders)-1]
}

var testLayout = Layout{
	ContainerSize:      Sz(200, 48),
	TextWidth:          80,
	RestingLabelCenter: Pt(60, 24),
}

func newTestMachine(opts ...MachineOption) (*Machine, *ManualScheduler, *recordingRenderer) {
	sched := NewManualScheduler()
	rec := &recordingRenderer{}
	opts = append([]MachineOption{WithCornerRadius(16), WithAlignment(AlignCenter())}, opts...)
	m := NewMachine(sched, rec, opts...)
	return m, sched, rec
}

func TestMachine_InitialLayout(t *testing.T) {
	m, _, rec := newTestMachine()

	if m.State() != Resting {
		t.Fatalf("initial state = %v, want resting", m.State())
	}
	if m.Layers().Border != nil {
		t.Fatal("border drawn before the first layout")
	}

	m.SetLayout(testLayout)
	if len(rec.borders) != 1 {
		t.Fatalf("SetBorder called %d times, want 1", len(rec.borders))
	}
	b := rec.lastBorder()
	if b.Config.DrawGap || b.Path.Subpaths() != 1 {
		t.Errorf("initial border gapped: %+v", b.Config)
	}
	if b.Width != DefaultBorderWidth || b.Color != DarkGray {
		t.Errorf("border style = %v/%v, want defaults", b.Width, b.Color)
	}
	if cfg := m.Config(); cfg.TextSpan != 60 {
		t.Errorf("TextSpan = %v, want 80*0.75 = 60", cfg.TextSpan)
	}
}

func TestMachine_FloatSequence(t *testing.T) {
	m, sched, rec := newTestMachine(WithBackgroundColor(RGB(0.9, 0.9, 0.9)))
	m.SetLayout(testLayout)
	m.SetShouldFloat(true)

	if m.State() != Floating {
		t.Fatalf("state = %v, want floating", m.State())
	}
	if len(rec.edges) != 1 {
		t.Fatalf("AnimateEdges called %d times, want 1", len(rec.edges))
	}
	e := rec.edges[0]
	if !e.Opening || e.Color != RGB(0.9, 0.9, 0.9) || e.Curve != EaseOut || e.Duration != DefaultRevealDuration {
		t.Errorf("edge animation = %+v", e)
	}
	if e.Pair != BuildGapAnimation(m.Config(), true) {
		t.Errorf("edge pair = %+v, want opening pair", e.Pair)
	}

	// The static swap never precedes the reveal's completion.
	sched.Advance(DefaultRevealDuration + DefaultSettleDelay - time.Millisecond)
	if len(rec.borders) != 1 {
		t.Fatalf("border swapped early, at %v", sched.Now())
	}
	if m.Layers().Edges == nil {
		t.Fatal("edge layers dropped before the swap")
	}

	sched.Advance(time.Millisecond)
	if len(rec.borders) != 2 {
		t.Fatalf("SetBorder called %d times after settle, want 2", len(rec.borders))
	}
	b := rec.lastBorder()
	if !b.Config.DrawGap || b.Path.Subpaths() != 2 {
		t.Errorf("floating border not gapped: %+v", b.Config)
	}
	if gap := b.Config.GapPoints(); gap != (GapEdgePoints{Left: 70, Right: 130}) {
		t.Errorf("gap = %+v, want {70 130}", gap)
	}
	if m.Layers().Edges != nil {
		t.Error("edge layers not cleared by the swap")
	}
}

func TestMachine_RestSequenceUsesBorderColor(t *testing.T) {
	m, sched, rec := newTestMachine(WithBorderColor(RGB(0, 0, 1)))
	m.SetLayout(testLayout)
	m.SetShouldFloat(true)
	sched.Advance(time.Second)
	m.SetShouldFloat(false)

	e := rec.edges[len(rec.edges)-1]
	if e.Opening || e.Color != RGB(0, 0, 1) {
		t.Errorf("closing edges = %+v, want border color", e)
	}
	if e.Pair != BuildGapAnimation(m.Config(), false) {
		t.Errorf("closing pair = %+v", e.Pair)
	}

	sched.Advance(time.Second)
	if b := rec.lastBorder(); b.Config.DrawGap {
		t.Error("resting border still gapped")
	}
}

func TestMachine_QuickReversalEndsResting(t *testing.T) {
	m, sched, rec := newTestMachine()
	m.SetLayout(testLayout)

	m.SetShouldFloat(true)
	sched.Advance(20 * time.Millisecond)
	m.SetShouldFloat(false)

	// Step through well past both settle timers one frame at a time.
	for i := 0; i < 60; i++ {
		sched.Advance(16 * time.Millisecond)
		for _, b := range rec.borders {
			if b.Config.DrawGap {
				t.Fatalf("stale floating border applied at %v", sched.Now())
			}
		}
	}

	if m.State() != Resting {
		t.Errorf("state = %v, want resting", m.State())
	}
	l := m.Layers()
	if l.Border == nil || l.Border.Config.DrawGap {
		t.Errorf("final border = %+v, want ungapped", l.Border)
	}
	if l.Edges != nil {
		t.Error("edge layers left on screen")
	}
	if sched.Pending() != 0 {
		t.Errorf("%d callbacks still pending", sched.Pending())
	}
}

func TestMachine_RedundantSignalIgnored(t *testing.T) {
	m, _, rec := newTestMachine()
	m.SetLayout(testLayout)
	m.SetShouldFloat(false)
	if len(rec.edges) != 0 {
		t.Error("resting→resting animated")
	}
	m.SetShouldFloat(true)
	m.SetShouldFloat(true)
	if len(rec.edges) != 1 {
		t.Errorf("AnimateEdges called %d times, want 1", len(rec.edges))
	}
	if seq := m.Layers().Seq; seq != 1 {
		t.Errorf("Seq = %d, want 1", seq)
	}
}

func TestMachine_Hooks(t *testing.T) {
	var floats, rests []Transition
	m, sched, _ := newTestMachine(
		OnWillFloat(func(tr Transition) { floats = append(floats, tr) }),
		OnWillRest(func(tr Transition) { rests = append(rests, tr) }),
	)
	m.SetLayout(testLayout)
	m.SetShouldFloat(true)
	sched.Advance(time.Second)
	m.SetShouldFloat(false)

	if len(floats) != 1 || len(rests) != 1 {
		t.Fatalf("hooks called %d/%d times, want 1/1", len(floats), len(rests))
	}
	f := floats[0]
	if f.From != Resting || f.To != Floating || f.Before.DrawGap || !f.After.DrawGap {
		t.Errorf("float transition = %+v", f)
	}
	r := rests[0]
	if r.Seq != 2 || !r.Before.DrawGap || r.After.DrawGap {
		t.Errorf("rest transition = %+v", r)
	}
}

func TestMachine_LayoutDuringTransition(t *testing.T) {
	m, sched, rec := newTestMachine()
	m.SetLayout(testLayout)
	m.SetShouldFloat(true)

	wider := testLayout
	wider.ContainerSize = Sz(300, 48)
	m.SetLayout(wider)
	if len(rec.borders) != 1 {
		t.Fatal("layout during a transition replaced the border early")
	}

	sched.Advance(time.Second)
	b := rec.lastBorder()
	if b.Config.ContainerSize != wider.ContainerSize {
		t.Errorf("swap used size %v, want %v", b.Config.ContainerSize, wider.ContainerSize)
	}
	if gap := b.Config.GapPoints(); gap.Left+gap.Right != 300 {
		t.Errorf("gap %+v not centered in 300", gap)
	}

	// The label follows the new pivot instead of settling on the old one.
	want := LabelPlacement{Center: Pt(150, 0), Scale: DefaultLabelScale}
	if l := rec.labels[len(rec.labels)-1]; l.To != want {
		t.Errorf("retargeted label to = %+v, want %+v", l.To, want)
	}
	if got := m.Layers().Label.At(sched.Now()); got != want {
		t.Errorf("settled label = %+v, want %+v", got, want)
	}
}

func TestMachine_LayoutRetargetsRunningLabel(t *testing.T) {
	m, sched, rec := newTestMachine()
	m.SetLayout(testLayout)
	m.SetShouldFloat(true)

	// The border has swapped but the label is still moving.
	sched.Advance(m.SettleTime())
	running := rec.labels[len(rec.labels)-1]
	if running.Done(sched.Now()) {
		t.Fatal("label finished before the border swap")
	}
	from := running.At(sched.Now())
	borders := len(rec.borders)

	wider := testLayout
	wider.ContainerSize = Sz(300, 48)
	m.SetLayout(wider)

	if len(rec.borders) != borders+1 {
		t.Fatal("settled border not rebuilt for the new layout")
	}
	l := rec.labels[len(rec.labels)-1]
	if l.From != from {
		t.Errorf("retarget starts at %+v, want current position %+v", l.From, from)
	}
	if l.To.Center != Pt(150, 0) {
		t.Errorf("retarget to = %v, want (150,0)", l.To.Center)
	}
	if end := l.Start + l.Duration; end != running.Start+running.Duration {
		t.Errorf("retarget ends at %v, want %v", end, running.Start+running.Duration)
	}

	// A layout that changes nothing does not restart the label.
	n := len(rec.labels)
	m.SetLayout(wider)
	if len(rec.labels) != n {
		t.Error("unchanged layout re-sent the label")
	}
}

// gatedRenderer blocks the first SetBorder call after arm until release is
// closed.
type gatedRenderer struct {
	recordingRenderer
	armed   atomic.Bool
	entered chan struct{}
	release chan struct{}
}

func newGatedRenderer() *gatedRenderer {
	return &gatedRenderer{entered: make(chan struct{}), release: make(chan struct{})}
}

func (g *gatedRenderer) SetBorder(l BorderLayer) {
	if g.armed.CompareAndSwap(true, false) {
		close(g.entered)
		<-g.release
	}
	g.recordingRenderer.SetBorder(l)
}

func TestMachine_RendererSeesLatestBorder(t *testing.T) {
	sched := NewManualScheduler()
	rec := newGatedRenderer()
	m := NewMachine(sched, rec, WithCornerRadius(16), WithAlignment(AlignCenter()))
	m.SetLayout(testLayout)
	m.SetShouldFloat(true)

	// The settle swap runs on another goroutine and stalls inside SetBorder.
	rec.armed.Store(true)
	swapped := make(chan struct{})
	go func() {
		defer close(swapped)
		sched.Advance(time.Second)
	}()
	<-rec.entered

	red := RGB(1, 0, 0)
	recolored := make(chan struct{})
	go func() {
		defer close(recolored)
		m.SetBorderColor(red)
	}()

	// Give SetBorderColor time to reach the machine before the swap resumes.
	time.Sleep(20 * time.Millisecond)
	close(rec.release)
	<-swapped
	<-recolored

	if b := m.Layers().Border; b.Color != red {
		t.Fatalf("machine border color = %v, want red", b.Color)
	}
	if b := rec.lastBorder(); b.Color != red {
		t.Errorf("renderer ended on border color %v, want red", b.Color)
	}
}

func TestMachine_StateBeforeLayout(t *testing.T) {
	m, sched, rec := newTestMachine()
	m.SetShouldFloat(true)
	if len(rec.edges) != 0 || sched.Pending() != 0 {
		t.Fatal("animated without a layout")
	}
	m.SetLayout(testLayout)
	if b := rec.lastBorder(); !b.Config.DrawGap {
		t.Error("first layout after floating should draw the gap")
	}
}

func TestMachine_LabelPlacement(t *testing.T) {
	m, sched, rec := newTestMachine()
	m.SetLayout(testLayout)
	m.SetShouldFloat(true)

	l := rec.labels[len(rec.labels)-1]
	if l.From != (LabelPlacement{Center: Pt(60, 24), Scale: 1}) {
		t.Errorf("label from = %+v", l.From)
	}
	if l.To != (LabelPlacement{Center: Pt(100, 0), Scale: DefaultLabelScale}) {
		t.Errorf("label to = %+v", l.To)
	}
	if l.Curve != EaseOut || l.Duration != DefaultLabelDuration || l.DampingRatio != 1 {
		t.Errorf("label timing = %+v", l)
	}

	// Reverse halfway: the resting transition starts where the label is.
	sched.Advance(DefaultLabelDuration / 2)
	mid := l.At(sched.Now())
	m.SetShouldFloat(false)
	back := rec.labels[len(rec.labels)-1]
	if back.From != mid {
		t.Errorf("reversal starts at %+v, want %+v", back.From, mid)
	}
	if back.Curve != EaseIn {
		t.Errorf("resting curve = %+v, want EaseIn", back.Curve)
	}
	if got := back.At(sched.Now() + DefaultLabelDuration); got != back.To {
		t.Errorf("label end = %+v, want %+v", got, back.To)
	}
}

func TestMachine_EdgePathsReveal(t *testing.T) {
	m, sched, _ := newTestMachine()
	m.SetLayout(testLayout)
	m.SetShouldFloat(true)

	e := m.Layers().Edges
	if e == nil {
		t.Fatal("no edge animation")
	}
	left, right := e.Paths(sched.Now())
	if left.HasCurrentPoint() || right.HasCurrentPoint() {
		t.Error("edges visible at reveal start")
	}

	sched.Advance(DefaultRevealDuration)
	left, right = e.Paths(sched.Now())
	if math.Abs(left.Length(0)-e.Pair.Left.Length()) > 1e-9 || math.Abs(right.Length(0)-e.Pair.Right.Length()) > 1e-9 {
		t.Error("edges not fully revealed at reveal end")
	}
}

func TestMachine_RedrawSupersedesPendingSwap(t *testing.T) {
	m, sched, rec := newTestMachine()
	m.SetLayout(testLayout)
	m.SetShouldFloat(true)
	m.SetBorderColor(RGB(1, 0, 0))

	if len(rec.borders) != 2 {
		t.Fatalf("SetBorder called %d times, want 2", len(rec.borders))
	}
	b := rec.lastBorder()
	if !b.Config.DrawGap || b.Color != RGB(1, 0, 0) {
		t.Errorf("redraw border = %+v", b)
	}
	sched.Advance(time.Second)
	if len(rec.borders) != 2 {
		t.Error("superseded swap still applied")
	}
}

func TestMachine_TimerScheduler(t *testing.T) {
	rec := &recordingRenderer{}
	m := NewMachine(NewTimerScheduler(), rec,
		WithRevealDuration(2*time.Millisecond),
		WithSettleDelay(time.Millisecond),
	)
	m.SetLayout(testLayout)
	m.SetShouldFloat(true)

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if l := m.Layers(); l.Edges == nil && l.Border.Config.DrawGap {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("timer-driven swap never happened")
}

func TestMachine_SettleTime(t *testing.T) {
	m := NewMachine(NewManualScheduler(), nil, WithRevealDuration(time.Second), WithSettleDelay(time.Millisecond))
	if got := m.SettleTime(); got != time.Second+time.Millisecond {
		t.Errorf("SettleTime() = %v", got)
	}
}

func TestStateString(t *testing.T) {
	if Resting.String() != "resting" || Floating.String() != "floating" {
		t.Errorf("State strings = %q, %q", Resting, Floating)
	}
}

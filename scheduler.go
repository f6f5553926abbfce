package floaty

import (
	"sort"
	"sync"
	"time"
)

// Scheduler is the host's animation clock. The Machine reads the current
// time from it to stamp animations and uses AfterFunc for its settle timer.
//
// Implementations deliver callbacks on the host's UI loop where possible;
// the Machine tolerates callbacks on other goroutines.
type Scheduler interface {
	// Now returns the time elapsed on the scheduler's clock.
	Now() time.Duration
	// AfterFunc runs f once, d after the current time.
	AfterFunc(d time.Duration, f func())
}

// ManualScheduler is a virtual clock advanced explicitly by a frame loop.
// Callbacks run synchronously inside Advance, in due-time order and in
// scheduling order for equal due times.
type ManualScheduler struct {
	mu    sync.Mutex
	now   time.Duration
	next  uint64
	tasks []manualTask
}

type manualTask struct {
	due time.Duration
	seq uint64
	fn  func()
}

// NewManualScheduler returns a ManualScheduler at time zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// Now implements Scheduler.
func (s *ManualScheduler) Now() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// AfterFunc implements Scheduler. Negative delays are treated as zero.
func (s *ManualScheduler) AfterFunc(d time.Duration, f func()) {
	if d < 0 {
		d = 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks, manualTask{due: s.now + d, seq: s.next, fn: f})
	s.next++
}

// Pending returns the number of callbacks not yet run.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// Advance moves the clock forward by d, running every callback that falls
// due on the way. Callbacks scheduled by callbacks run in the same call if
// they fall due before the new time.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now + d
	s.mu.Unlock()

	for {
		s.mu.Lock()
		if len(s.tasks) == 0 {
			break
		}
		sort.SliceStable(s.tasks, func(i, j int) bool {
			if s.tasks[i].due != s.tasks[j].due {
				return s.tasks[i].due < s.tasks[j].due
			}
			return s.tasks[i].seq < s.tasks[j].seq
		})
		task := s.tasks[0]
		if task.due > target {
			break
		}
		s.tasks = s.tasks[1:]
		s.now = task.due
		s.mu.Unlock()

		task.fn()
	}
	s.now = target
	s.mu.Unlock()
}

// TimerScheduler runs callbacks on wall-clock timers via time.AfterFunc.
// Callbacks arrive on timer goroutines.
type TimerScheduler struct {
	start time.Time
}

// NewTimerScheduler returns a TimerScheduler whose clock starts now.
func NewTimerScheduler() *TimerScheduler {
	return &TimerScheduler{start: time.Now()}
}

// Now implements Scheduler.
func (s *TimerScheduler) Now() time.Duration {
	return time.Since(s.start)
}

// AfterFunc implements Scheduler.
func (s *TimerScheduler) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}

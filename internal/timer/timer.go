// Package timer implements the study stopwatch: Idle and Running states with
// a once-per-second display tick while running.
package timer

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	errorvalues "github.com/limbo/studytrack/internal/error_values"
	"github.com/limbo/studytrack/pkg/entity"
)

type State int

const (
	Idle State = iota
	Running
)

// Lap is what a Running->Idle transition hands back.
type Lap struct {
	SubjectID int
	Start     time.Time
	End       time.Time
	Minutes   int
}

type Option func(*Stopwatch)

func WithClock(now func() time.Time) Option {
	return func(sw *Stopwatch) {
		sw.now = now
	}
}

func WithInterval(d time.Duration) Option {
	return func(sw *Stopwatch) {
		sw.interval = d
	}
}

// WithTickHandler registers f to be called from the tick goroutine after each tick.
// f must not call Stopwatch methods: Stop holds the lock while waiting for the goroutine.
func WithTickHandler(f func(elapsedSeconds int64)) Option {
	return func(sw *Stopwatch) {
		sw.onTick = f
	}
}

type Stopwatch struct {
	mu        sync.Mutex
	now       func() time.Time
	interval  time.Duration
	onTick    func(elapsedSeconds int64)
	state     State
	subjectID int
	startedAt time.Time
	elapsed   atomic.Int64
	cancel    context.CancelFunc
	done      chan struct{}
}

func New(opts ...Option) *Stopwatch {
	sw := &Stopwatch{
		now:      time.Now,
		interval: time.Second,
	}
	for _, opt := range opts {
		opt(sw)
	}
	return sw
}

func (sw *Stopwatch) Start(subjectID int) error {
	if subjectID <= 0 {
		return errorvalues.ErrNoSubjectSelected
	}
	sw.mu.Lock()
	defer sw.mu.Unlock()
	if sw.state == Running {
		return errorvalues.ErrTimerRunning
	}
	sw.state = Running
	sw.subjectID = subjectID
	sw.startedAt = sw.now()
	sw.elapsed.Store(0)
	ctx, cancel := context.WithCancel(context.Background())
	sw.cancel = cancel
	sw.done = make(chan struct{})
	go sw.tick(ctx, sw.done)
	return nil
}

func (sw *Stopwatch) tick(ctx context.Context, done chan<- struct{}) {
	defer close(done)
	ticker := time.NewTicker(sw.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			elapsed := sw.elapsed.Add(1)
			if sw.onTick != nil {
				sw.onTick(elapsed)
			}
		}
	}
}

// Stop halts the tick goroutine before returning and resets the stopwatch.
// Start and End are cut to whole seconds and Minutes is floor((End-Start)/1m)
// measured on the clock, not on ticks.
func (sw *Stopwatch) Stop() (Lap, error) {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	if sw.state != Running {
		return Lap{}, errorvalues.ErrTimerNotRunning
	}
	sw.cancel()
	<-sw.done
	start := sw.startedAt.Truncate(time.Second)
	end := sw.now().Truncate(time.Second)
	lap := Lap{
		SubjectID: sw.subjectID,
		Start:     start,
		End:       end,
		Minutes:   int(end.Sub(start) / time.Minute),
	}
	sw.state = Idle
	sw.subjectID = 0
	sw.startedAt = time.Time{}
	sw.elapsed.Store(0)
	sw.cancel = nil
	sw.done = nil
	return lap, nil
}

func (sw *Stopwatch) Status() entity.TimerStatus {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	return entity.TimerStatus{
		Running:        sw.state == Running,
		SubjectID:      sw.subjectID,
		StartedAt:      sw.startedAt,
		ElapsedSeconds: sw.elapsed.Load(),
	}
}

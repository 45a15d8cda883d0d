package session

import (
	"context"
	"time"
)

// Clock schedules waits. Tests swap in a fake that fires immediately.
type Clock interface {
	After(d time.Duration) <-chan time.Time
}

type realClock struct{}

func (realClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// RealClock waits on wall time.
var RealClock Clock = realClock{}

// Sink renders events as the runner reaches them.
type Sink interface {
	Show(ev Event)
	// Progress reports that done of total ticks of ev have elapsed.
	Progress(ev Event, done, total int)
}

// DefaultTicks is how many progress updates each timed event gets.
const DefaultTicks = 20

// Runner plays a timeline against a clock.
type Runner struct {
	Clock Clock
	Ticks int
}

func NewRunner(c Clock, ticks int) *Runner {
	if c == nil {
		c = RealClock
	}
	if ticks <= 0 {
		ticks = DefaultTicks
	}
	return &Runner{Clock: c, Ticks: ticks}
}

// Run shows every event and waits out its duration in Ticks slices.
// Untimed events are shown and return control immediately.
func (r *Runner) Run(ctx context.Context, events []Event, sink Sink) error {
	for _, ev := range events {
		if err := ctx.Err(); err != nil {
			return err
		}
		sink.Show(ev)
		if ev.Duration <= 0 {
			continue
		}
		slice := ev.Duration / time.Duration(r.Ticks)
		for i := 1; i <= r.Ticks; i++ {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-r.Clock.After(slice):
			}
			sink.Progress(ev, i, r.Ticks)
		}
	}
	return nil
}

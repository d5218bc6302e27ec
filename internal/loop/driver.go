// Package loop drives a frame function repeatedly until it is stopped.
package loop

import (
	"context"
	"sync"
	"time"
)

// Stepper runs one complete frame: update then draw.
type Stepper interface {
	Frame() error
}

// StepperFunc adapts a plain function to Stepper.
type StepperFunc func() error

func (f StepperFunc) Frame() error { return f() }

// Driver calls a Stepper once per Interval. Frames never overlap: the next
// one is scheduled only after the previous returned. A zero Interval runs
// frames back to back.
type Driver struct {
	Interval time.Duration

	once sync.Once
	stop chan struct{}
}

func NewDriver(tps int) *Driver {
	d := &Driver{}
	if tps > 0 {
		d.Interval = time.Second / time.Duration(tps)
	}
	return d
}

func (d *Driver) stopChan() chan struct{} {
	d.once.Do(func() { d.stop = make(chan struct{}) })
	return d.stop
}

// Stop halts Run after the frame in flight. Safe to call more than once.
func (d *Driver) Stop() {
	ch := d.stopChan()
	select {
	case <-ch:
	default:
		close(ch)
	}
}

// Run executes frames until maxFrames have run (0 means no limit), Stop is
// called, ctx is done, or a frame returns an error. It returns the number of
// frames that completed.
func (d *Driver) Run(ctx context.Context, s Stepper, maxFrames int) (int, error) {
	stop := d.stopChan()

	var tick <-chan time.Time
	if d.Interval > 0 {
		t := time.NewTicker(d.Interval)
		defer t.Stop()
		tick = t.C
	}

	n := 0
	for maxFrames <= 0 || n < maxFrames {
		select {
		case <-ctx.Done():
			return n, ctx.Err()
		case <-stop:
			return n, nil
		default:
		}

		if tick != nil {
			select {
			case <-ctx.Done():
				return n, ctx.Err()
			case <-stop:
				return n, nil
			case <-tick:
			}
		}

		if err := s.Frame(); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

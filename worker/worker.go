/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

// Package worker implements the fixed-tick cooperative scheduler that drives
// every directional concern of the manager: the client's GET-flush,
// SET-flush and response-poll loops, and the server's GET-poll and
// SET-poll loops. Each Loop is one instance of the scheduler; ordering
// between distinct loops is never guaranteed, only within one.
package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	libatm "github.com/NoxxGames/ipcfile/atomic"
)

// DefaultTickRate is TICK_RATE's default value: 8 ticks per second.
const DefaultTickRate = 8

// DefaultPeriod is the sleep interval a Loop uses when constructed with a
// non-positive period: 1000 / DefaultTickRate milliseconds.
const DefaultPeriod = time.Second / DefaultTickRate

// joinBackoff is the interval Stop sleeps between checks of the running
// flag while waiting for the executor goroutine to leave its loop.
const joinBackoff = 10 * time.Millisecond

// errNilTickFunc is returned by a Loop constructed with a nil tick function,
// matching the still-collected-as-an-error behavior of a misconfigured loop
// rather than panicking the executor goroutine.
var errNilTickFunc = errors.New("worker: invalid tick function")

// TickFunc is invoked once per tick. A non-nil return is recorded and
// retrievable via ErrorsLast/ErrorsList; it does not stop the loop.
type TickFunc func(ctx context.Context) error

// Loop is a single fixed-tick scheduler instance.
type Loop struct {
	period  time.Duration
	fn      TickFunc
	running libatm.Value[bool]
	stopReq libatm.Value[bool]
	started libatm.Value[time.Time]
	cancel  libatm.Value[context.CancelFunc]

	mu      sync.Mutex
	wg      sync.WaitGroup
	errs    []error
	lastErr error

	wake chan struct{}
}

// New constructs a Loop that invokes fn every period. A non-positive period
// is replaced by DefaultPeriod; a nil fn is replaced by one that always
// records errNilTickFunc, matching the teacher ticker's nil-function
// handling instead of panicking.
func New(period time.Duration, fn TickFunc) *Loop {
	if period <= 0 {
		period = DefaultPeriod
	}
	if fn == nil {
		fn = func(context.Context) error { return errNilTickFunc }
	}

	return &Loop{
		period:  period,
		fn:      fn,
		running: libatm.NewValue[bool](),
		stopReq: libatm.NewValue[bool](),
		started: libatm.NewValue[time.Time](),
		cancel:  libatm.NewValue[context.CancelFunc](),
		wake:    make(chan struct{}, 1),
	}
}

// Wake requests the next tick run immediately instead of waiting out the
// rest of the current period. It never blocks and never replaces the
// period timer: if Wake is never called the loop still ticks on its own
// fixed schedule, and a Wake that arrives mid-tick or before Start is
// simply coalesced into the single pending wake-up a buffered channel of
// size 1 can hold.
func (l *Loop) Wake() {
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Start begins the executor goroutine. If the Loop is already running it is
// stopped first and restarted, matching the teacher ticker's "start again
// restarts" semantics.
func (l *Loop) Start(ctx context.Context) error {
	if l.running.Load() {
		if err := l.Stop(ctx); err != nil {
			return err
		}
	}

	runCtx, cancel := context.WithCancel(ctx)
	l.cancel.Store(cancel)
	l.stopReq.Store(false)
	l.clearErrors()
	l.started.Store(time.Now())
	l.running.Store(true)

	l.wg.Add(1)
	go l.run(runCtx)

	return nil
}

func (l *Loop) run(ctx context.Context) {
	defer l.wg.Done()
	defer l.running.Store(false)
	defer l.started.Store(time.Time{})

	timer := time.NewTimer(l.period)
	defer timer.Stop()

	for {
		if l.stopReq.Load() {
			return
		}
		select {
		case <-ctx.Done():
			return
		default:
		}

		if err := l.fn(ctx); err != nil {
			l.recordError(err)
		}

		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(l.period)

		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		case <-l.wake:
		}
	}
}

// Stop requests the executor goroutine leave its loop and joins it by
// spinning on the running flag with the same sleep back-off spinlock uses
// in Sleep mode, per spec.md's worker-loop join contract.
func (l *Loop) Stop(ctx context.Context) error {
	l.stopReq.Store(true)
	if cancel := l.cancel.Load(); cancel != nil {
		cancel()
	}

	for l.running.Load() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		time.Sleep(joinBackoff)
	}

	l.wg.Wait()
	return nil
}

// Restart stops the Loop if running and starts it again, resetting Uptime
// and the collected error history.
func (l *Loop) Restart(ctx context.Context) error {
	if l.running.Load() {
		if err := l.Stop(ctx); err != nil {
			return err
		}
	}
	return l.Start(ctx)
}

// IsRunning reports whether the executor goroutine is currently active.
func (l *Loop) IsRunning() bool {
	return l.running.Load()
}

// Uptime reports the duration since Start, or zero if not running.
func (l *Loop) Uptime() time.Duration {
	started := l.started.Load()
	if started.IsZero() {
		return 0
	}
	return time.Since(started)
}

func (l *Loop) recordError(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lastErr = err
	l.errs = append(l.errs, err)
}

func (l *Loop) clearErrors() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lastErr = nil
	l.errs = nil
}

// ErrorsLast returns the most recently recorded tick error, or nil if none.
func (l *Loop) ErrorsLast() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastErr
}

// ErrorsList returns every tick error recorded since the last Start/Restart.
func (l *Loop) ErrorsList() []error {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]error, len(l.errs))
	copy(out, l.errs)
	return out
}

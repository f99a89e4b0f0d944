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

// Package spinlock implements a non-reentrant test-and-set mutual exclusion
// primitive with two back-off modes, mirroring the original FSpinLoop: sleep
// mode for locks that may hold across a buffer reallocation, and pause mode
// for short critical sections.
package spinlock

import (
	"runtime"
	"sync/atomic"
	"time"
)

// Mode selects the back-off strategy used between failed acquire attempts.
type Mode uint8

const (
	// Sleep backs off with a fixed short sleep. Used for buffer locks where
	// contention is rare but hold time may include reallocation.
	Sleep Mode = iota
	// Pause backs off with a CPU relaxation hint. Used for very short
	// critical sections.
	Pause
)

// sleepBackoff is the fixed back-off interval for Sleep mode, matching the
// original's ~10ms retry period.
const sleepBackoff = 10 * time.Millisecond

// Lock is a single-bit test-and-set lock. The zero Lock is not usable; build
// one with New. Locks are not reentrant: locking twice from the same
// goroutine deadlocks.
type Lock struct {
	held atomic.Bool
	mode Mode
}

// New returns a Lock using the given back-off Mode.
func New(mode Mode) *Lock {
	return &Lock{mode: mode}
}

// TryLock attempts to acquire the lock without blocking, returning true on
// success.
func (l *Lock) TryLock() bool {
	return l.held.CompareAndSwap(false, true)
}

// Lock blocks until the lock is acquired, backing off between attempts
// according to the Lock's Mode.
func (l *Lock) Lock() {
	for !l.TryLock() {
		switch l.mode {
		case Pause:
			runtime.Gosched()
		default:
			time.Sleep(sleepBackoff)
		}
	}
}

// Unlock releases the lock with release ordering. Unlocking a lock that is
// not held is a caller error; Unlock does not detect it.
func (l *Lock) Unlock() {
	l.held.Store(false)
}

// Guarded runs fn between Lock and Unlock, guaranteeing release on all exit
// paths including a panic inside fn.
func (l *Lock) Guarded(fn func()) {
	l.Lock()
	defer l.Unlock()
	fn()
}

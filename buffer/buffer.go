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

// Package buffer implements the thread-safe growable request buffer shared
// by every request variant and role: GET, SET, GET_RESPONSE and the
// client's pending-GET records.
package buffer

import (
	"sync/atomic"

	"github.com/NoxxGames/ipcfile/spinlock"
)

// Max is the initial reserved capacity of a fresh Buffer.
const Max = 65536

// emptyable is satisfied by every request variant and by request.Pending.
type emptyable interface {
	IsEmpty() bool
}

// Buffer is a thread-safe growable array of T, guarded by a sleep-mode
// spinlock. count and multiplier are additionally exposed as atomics so
// callers can size-check without acquiring the lock.
type Buffer[T emptyable] struct {
	lock       *spinlock.Lock
	items      []T
	count      atomic.Int64
	multiplier atomic.Int64
}

// New returns an empty Buffer reserved for Max items.
func New[T emptyable]() *Buffer[T] {
	b := &Buffer[T]{
		lock:  spinlock.New(spinlock.Sleep),
		items: make([]T, 0, Max),
	}
	b.multiplier.Store(1)
	return b
}

// Len returns the current element count via an atomic read.
func (b *Buffer[T]) Len() int {
	return int(b.count.Load())
}

// IsEmpty reports whether the buffer currently holds no elements.
func (b *Buffer[T]) IsEmpty() bool {
	return b.Len() == 0
}

// Multiplier returns the current capacity-growth multiplier via an atomic
// read.
func (b *Buffer[T]) Multiplier() int {
	return int(b.multiplier.Load())
}

// Push appends req to the buffer. It rejects an empty req, mirroring the
// append-fails-only-on-empty contract; the manager is expected to filter
// empties earlier, so this is a defensive backstop. When count+1 would
// exceed reserved*multiplier, Push first doubles the multiplier, then
// reallocates under the lock before appending.
func (b *Buffer[T]) Push(req T) bool {
	if req.IsEmpty() {
		return false
	}

	reserved := int64(Max)
	for {
		cur := b.count.Load()
		mult := b.multiplier.Load()
		if cur+1 <= reserved*mult {
			break
		}
		b.multiplier.CompareAndSwap(mult, mult*2)
	}

	b.lock.Guarded(func() {
		if int64(cap(b.items)) < reserved*b.multiplier.Load() {
			grown := make([]T, len(b.items), reserved*b.multiplier.Load())
			copy(grown, b.items)
			b.items = grown
		}
		b.items = append(b.items, req)
		b.count.Store(int64(len(b.items)))
	})

	return true
}

// Clear empties the buffer and shrinks its reservation back to
// Max*1, discarding any currently held elements (spec.md's
// Shutdown-drop error kind: no error, no side effect beyond the drop).
func (b *Buffer[T]) Clear() {
	b.lock.Guarded(func() {
		b.items = make([]T, 0, Max)
		b.count.Store(0)
		b.multiplier.Store(1)
	})
}

// Guarded exposes the internal lock so a compound traversal (drain-then-
// encode-then-clear) can run atomically with respect to concurrent
// pushes. fn receives the buffer's live slice, not a copy; it must not
// retain it past the call, since later pushes append to that slice.
func (b *Buffer[T]) Guarded(fn func(items []T)) {
	b.lock.Guarded(func() {
		fn(b.items)
	})
}

// Drain runs fn with the current contents under the lock, then clears the
// buffer before releasing it, so the encode-then-clear sequence the worker
// loop performs on every flush tick is atomic with respect to producers.
func (b *Buffer[T]) Drain(fn func(items []T)) {
	b.lock.Guarded(func() {
		fn(b.items)
		b.items = make([]T, 0, Max)
		b.count.Store(0)
		b.multiplier.Store(1)
	})
}

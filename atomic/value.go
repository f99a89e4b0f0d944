/*
 * MIT License
 *
 * Copyright (c) 2024 Nicolas JUHEL
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

// Package atomic provides generic, type-safe wrappers around sync/atomic.Value
// and sync.Map for the request-exchange core (token allocation, worker-loop
// run state, pooled decode errors, console color state).
package atomic

import "sync/atomic"

// Value is a type-safe atomic box for a single value of type T. The zero
// value of T is never stored explicitly; Load returns it until the first
// Store.
type Value[T any] interface {
	Load() T
	Store(v T)
	CompareAndSwap(old, new T) bool
}

// boxed is the only thing ever placed in the underlying atomic.Value, so
// Load never has to distinguish "empty" from "holds the zero value of T".
type boxed[T any] struct {
	v T
}

type value[T any] struct {
	av atomic.Value
}

// NewValue returns a Value[T] holding the zero value of T.
func NewValue[T any]() Value[T] {
	return &value[T]{}
}

func (o *value[T]) Load() T {
	b, ok := o.av.Load().(boxed[T])
	if !ok {
		var zero T
		return zero
	}
	return b.v
}

func (o *value[T]) Store(v T) {
	o.av.Store(boxed[T]{v: v})
}

// CompareAndSwap compares the current value against old using == on the
// boxed struct, so T must be comparable whenever a caller uses this method.
// Callers that never call CompareAndSwap (worker's context.CancelFunc field,
// for instance) are unaffected by that requirement.
func (o *value[T]) CompareAndSwap(old, new T) bool {
	return o.av.CompareAndSwap(boxed[T]{v: old}, boxed[T]{v: new})
}

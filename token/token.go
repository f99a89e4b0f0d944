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

// Package token provides a process-wide, lock-free monotonic counter used to
// mint Request IDs and unique file-name suffixes.
package token

import (
	"strconv"

	libatm "github.com/NoxxGames/ipcfile/atomic"
)

// Token is a 64-bit value handed out by a Source. The first call to Next
// returns 0, matching the original allocator's fetch_add(1)-on-an-atomic
// starting at 0 (which returns the pre-increment value).
type Token uint64

// String renders t in base 10, matching the original allocator's
// std::to_string encoding so RIDs round-trip through the wire grammar
// unchanged.
func (t Token) String() string {
	return strconv.FormatUint(uint64(t), 10)
}

// Uint64 returns the underlying value.
func (t Token) Uint64() uint64 {
	return uint64(t)
}

// Source allocates strictly increasing Tokens. A Source is safe for
// concurrent use by any number of goroutines and never blocks.
type Source struct {
	v libatm.Value[uint64]
}

// NewSource returns a Source whose next allocation is 0.
func NewSource() *Source {
	s := &Source{v: libatm.NewValue[uint64]()}
	// Pre-seed the underlying atomic.Value so the CAS loop in Next has a
	// typed zero to compare against; an untouched atomic.Value rejects its
	// first CompareAndSwap unless old is the untyped nil interface.
	s.v.Store(0)
	return s
}

// Next atomically allocates and returns the next Token, starting at 0. It
// retries a compare-and-swap loop instead of taking a lock, so callers never
// block on one another. This mirrors std::atomic<uint64_t>::fetch_add,
// which returns the pre-increment value.
func (s *Source) Next() Token {
	for {
		cur := s.v.Load()
		next := cur + 1
		if s.v.CompareAndSwap(cur, next) {
			return Token(cur)
		}
	}
}

// Current returns the Token that the next call to Next will allocate,
// without allocating one. It returns 0 before Next has ever been called.
func (s *Source) Current() Token {
	return Token(s.v.Load())
}

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

package atomic_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	libatm "github.com/NoxxGames/ipcfile/atomic"
)

var _ = Describe("Value[T]", func() {
	It("Load returns the zero value before any Store", func() {
		v := libatm.NewValue[int]()
		Expect(v.Load()).To(Equal(0))
	})

	It("round-trips stored values, including a zero value", func() {
		v := libatm.NewValue[int]()
		v.Store(1)
		Expect(v.Load()).To(Equal(1))
		v.Store(0)
		Expect(v.Load()).To(Equal(0))
		v.Store(10)
		Expect(v.Load()).To(Equal(10))
	})

	It("round-trips struct values", func() {
		type point struct{ X, Y int }
		v := libatm.NewValue[point]()
		v.Store(point{X: 1, Y: 2})
		Expect(v.Load()).To(Equal(point{X: 1, Y: 2}))
	})

	It("CompareAndSwap succeeds when old matches and fails otherwise", func() {
		v := libatm.NewValue[uint64]()
		v.Store(0)

		Expect(v.CompareAndSwap(0, 5)).To(BeTrue())
		Expect(v.Load()).To(Equal(uint64(5)))

		Expect(v.CompareAndSwap(0, 9)).To(BeFalse())
		Expect(v.Load()).To(Equal(uint64(5)))

		Expect(v.CompareAndSwap(5, 8)).To(BeTrue())
		Expect(v.Load()).To(Equal(uint64(8)))
	})
})

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

package attribute

// List holds (name -> Value) bindings for a single subject entity. Iteration
// over Names follows first-insertion order; each name is bound at most
// once. The zero value is an empty, ready-to-use List.
type List struct {
	order  []Name
	values map[Name]Value
}

// NewList returns an empty List.
func NewList() *List {
	return &List{}
}

func (l *List) ensure() {
	if l.values == nil {
		l.values = make(map[Name]Value)
	}
}

// Set binds name to v. Set is idempotent with respect to the populated-names
// set: setting an already-populated name updates its value without changing
// its position in iteration order. NONE is never accepted.
func (l *List) Set(name Name, v Value) {
	if name == NONE {
		return
	}
	l.ensure()
	if _, exists := l.values[name]; !exists {
		l.order = append(l.order, name)
	}
	l.values[name] = v
}

// Get returns the value bound to name and whether it was present.
func (l *List) Get(name Name) (Value, bool) {
	if l.values == nil {
		return Value{}, false
	}
	v, ok := l.values[name]
	return v, ok
}

// Contains reports whether name is bound.
func (l *List) Contains(name Name) bool {
	_, ok := l.Get(name)
	return ok
}

// Size returns the number of populated names.
func (l *List) Size() int {
	return len(l.order)
}

// IsEmpty reports whether no names are populated.
func (l *List) IsEmpty() bool {
	return l.Size() == 0
}

// Names returns the populated names in first-insertion order. The returned
// slice is owned by the caller; mutating it does not affect the List.
func (l *List) Names() []Name {
	out := make([]Name, len(l.order))
	copy(out, l.order)
	return out
}

// Range calls fn once per populated name, in first-insertion order, stopping
// early if fn returns false.
func (l *List) Range(fn func(name Name, v Value) bool) {
	for _, n := range l.order {
		if !fn(n, l.values[n]) {
			return
		}
	}
}

// Equal compares two Lists by name-set and value equality; order is not
// significant (spec.md R1/R2 round-trip laws are order-insensitive).
func (l *List) Equal(o *List) bool {
	if l.Size() != o.Size() {
		return false
	}
	for _, n := range l.order {
		ov, ok := o.Get(n)
		if !ok {
			return false
		}
		v := l.values[n]
		if !v.Equal(ov) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of l.
func (l *List) Clone() *List {
	c := NewList()
	l.Range(func(name Name, v Value) bool {
		c.Set(name, v)
		return true
	})
	return c
}

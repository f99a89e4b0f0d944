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

import "strconv"

// Kind is the type tag carried by a Value.
type Kind uint8

const (
	// KindString is used for text-valued attributes, including subject
	// identifiers.
	KindString Kind = iota
	KindInt32
	KindFloat32
	KindBool
)

// Value is a tagged union over {string, int32, float32, bool}. The zero
// Value is the empty string.
type Value struct {
	kind Kind
	s    string
	i    int32
	f    float32
	b    bool
}

// String builds a string-kinded Value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Int32 builds an int32-kinded Value.
func Int32(i int32) Value { return Value{kind: KindInt32, i: i} }

// Float32 builds a float32-kinded Value.
func Float32(f float32) Value { return Value{kind: KindFloat32, f: f} }

// Bool builds a bool-kinded Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Kind reports the Value's type tag.
func (v Value) Kind() Kind { return v.kind }

// StringValue returns the string payload; zero value for non-string kinds.
func (v Value) StringValue() string { return v.s }

// Int32Value returns the int32 payload; zero value for non-int32 kinds.
func (v Value) Int32Value() int32 { return v.i }

// Float32Value returns the float32 payload; zero value for non-float32 kinds.
func (v Value) Float32Value() float32 { return v.f }

// BoolValue returns the bool payload; zero value for non-bool kinds.
func (v Value) BoolValue() bool { return v.b }

// Encode renders v using the wire encoding from spec.md §4.3: string
// verbatim, bool as "1"/"0", int32 and float32 via their standard decimal
// renderings.
func (v Value) Encode() string {
	switch v.kind {
	case KindString:
		return v.s
	case KindInt32:
		return strconv.FormatInt(int64(v.i), 10)
	case KindFloat32:
		return strconv.FormatFloat(float64(v.f), 'g', -1, 32)
	case KindBool:
		if v.b {
			return "1"
		}
		return "0"
	default:
		return ""
	}
}

// Decode parses s as the wire encoding of kind, reversing Encode. It returns
// false if s is not a valid rendering for kind (the codec drops the field in
// that case rather than erroring).
func Decode(kind Kind, s string) (Value, bool) {
	switch kind {
	case KindString:
		return String(s), true
	case KindInt32:
		i, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return Value{}, false
		}
		return Int32(int32(i)), true
	case KindFloat32:
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return Value{}, false
		}
		return Float32(float32(f)), true
	case KindBool:
		switch s {
		case "1":
			return Bool(true), true
		case "0":
			return Bool(false), true
		default:
			return Value{}, false
		}
	default:
		return Value{}, false
	}
}

// Equal compares two Values by kind and payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.s == o.s
	case KindInt32:
		return v.i == o.i
	case KindFloat32:
		return v.f == o.f
	case KindBool:
		return v.b == o.b
	default:
		return true
	}
}

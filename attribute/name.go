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

// Package attribute implements the tagged attribute value model (name, type,
// value) and the ordered attribute list shared by GET, SET and GET_RESPONSE
// requests.
package attribute

// Name is a closed enum of the attribute catalogue agreed between client and
// server. NONE is the sentinel zero value and is never a legal binding in a
// List.
type Name uint8

const (
	NONE Name = iota
	PlayerAuthID
	PlayerName
	IsOnline
)

// catalogueEntry pairs a Name's wire key with the Kind its Value must carry.
// The codec consults this to know how to decode an attr_value that arrives
// on the wire as a bare string.
type catalogueEntry struct {
	key  string
	kind Kind
}

var catalogue = make(map[Name]catalogueEntry)
var catalogueByKey = make(map[string]Name)

// RegisterName adds name to the catalogue under wireKey with the given kind.
// Adding a name to the domain is a coordinated change between client and
// server; this is the single place that records it.
func RegisterName(name Name, wireKey string, kind Kind) {
	catalogue[name] = catalogueEntry{key: wireKey, kind: kind}
	catalogueByKey[wireKey] = name
}

func init() {
	RegisterName(PlayerAuthID, "PlayerID", KindString)
	RegisterName(PlayerName, "PlayerName", KindString)
	RegisterName(IsOnline, "IsOnline", KindBool)
}

// String returns the canonical wire key for n, or "" for NONE or any
// unregistered value.
func (n Name) String() string {
	return catalogue[n].key
}

// IsValid reports whether n is a registered, non-sentinel catalogue entry.
func (n Name) IsValid() bool {
	_, ok := catalogue[n]
	return ok
}

// Kind reports the Value kind n's attribute must carry. The second return
// is false for NONE or any unregistered Name.
func (n Name) Kind() (Kind, bool) {
	e, ok := catalogue[n]
	return e.kind, ok
}

// ParseName resolves a wire key to its catalogue Name. It returns (NONE,
// false) for an unknown key; callers (the codec) drop the field in that case
// rather than erroring, per the catalogue's lenient-unknown-key contract.
func ParseName(key string) (Name, bool) {
	n, ok := catalogueByKey[key]
	return n, ok
}

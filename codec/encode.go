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

package codec

import (
	"strings"

	"github.com/NoxxGames/ipcfile/attribute"
	"github.com/NoxxGames/ipcfile/request"
)

// EncodeGetBatch renders a batch of GET requests as a single file payload,
// in the order given, terminated by the EOF footer.
func EncodeGetBatch(reqs []*request.Get) string {
	var b strings.Builder
	for _, r := range reqs {
		b.WriteString(r.RID().String())
		b.WriteString(ridSep)
		b.WriteString(r.Subject())
		for _, name := range r.Want() {
			b.WriteString(fieldSep)
			b.WriteString(name.String())
		}
		b.WriteString(fieldSep)
		b.WriteByte(lineSep)
	}
	b.WriteString(Footer)
	return b.String()
}

// EncodeSetBatch renders a batch of SET requests as a single file payload,
// in the order given, terminated by the EOF footer.
func EncodeSetBatch(reqs []*request.Set) string {
	var b strings.Builder
	for _, r := range reqs {
		encodeAttrLine(&b, r.RID().String(), r.Subject(), r.Attributes())
	}
	b.WriteString(Footer)
	return b.String()
}

// EncodeGetResponseBatch renders a batch of GET_RESPONSE requests as a
// single file payload, in the order given, terminated by the EOF footer.
// The wire shape is identical to a SET file (spec.md's "SET-like buffer").
func EncodeGetResponseBatch(reqs []*request.GetResponse) string {
	var b strings.Builder
	for _, r := range reqs {
		encodeAttrLine(&b, r.RID().String(), r.Subject(), r.Attributes())
	}
	b.WriteString(Footer)
	return b.String()
}

func encodeAttrLine(b *strings.Builder, rid, subject string, attrs *attribute.List) {
	b.WriteString(rid)
	b.WriteString(ridSep)
	b.WriteString(subject)
	attrs.Range(func(name attribute.Name, v attribute.Value) bool {
		b.WriteString(fieldSep)
		b.WriteString(name.String())
		b.WriteString(kvSep)
		b.WriteString(v.Encode())
		return true
	})
	b.WriteString(fieldSep)
	b.WriteByte(lineSep)
}

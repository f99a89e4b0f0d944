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
	"io"
	"strconv"
	"strings"

	"github.com/NoxxGames/ipcfile/attribute"
	"github.com/NoxxGames/ipcfile/ioutils/delim"
	"github.com/NoxxGames/ipcfile/request"
	"github.com/NoxxGames/ipcfile/token"
)

// decodedLine is the common shape every line parses into before the caller
// interprets its fields as GET keys or SET/GET_RESPONSE key:value pairs.
type decodedLine struct {
	rid     token.Token
	subject string
	fields  []string
}

// splitLines reads text through the same delimited-reader machinery used to
// pull chunks out of any buffered stream, and reports whether the trailing
// EOF footer was present. A well-formed file's last ReadBytes call returns
// the footer literal itself as the final, undelimited chunk.
func splitLines(text string) (lines []string, footer bool) {
	d := delim.New(io.NopCloser(strings.NewReader(text)), lineSep, 0)
	defer d.Close()

	for {
		b, err := d.ReadBytes()
		if len(b) > 0 {
			s := strings.TrimSuffix(string(b), "\n")
			if s == Footer {
				footer = true
			} else if s != "" {
				lines = append(lines, s)
				footer = false
			}
		}
		if err != nil {
			break
		}
	}
	return lines, footer
}

func decodeLine(line string) (decodedLine, bool) {
	idx := strings.IndexByte(line, ridSep[0])
	if idx <= 0 {
		return decodedLine{}, false
	}

	ridVal, err := strconv.ParseUint(line[:idx], 10, 64)
	if err != nil {
		return decodedLine{}, false
	}

	parts := strings.Split(line[idx+1:], fieldSep)
	if len(parts) < 1 {
		return decodedLine{}, false
	}
	subject := parts[0]
	fields := parts[1:]
	if len(fields) > 0 && fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}

	return decodedLine{rid: token.Token(ridVal), subject: subject, fields: fields}, true
}

// decodeWant interprets fields as bare GET_field keys, dropping unknown
// keys per the catalogue's lenient-unknown-key contract.
func decodeWant(fields []string) []attribute.Name {
	want := make([]attribute.Name, 0, len(fields))
	for _, f := range fields {
		name, ok := attribute.ParseName(f)
		if !ok {
			continue
		}
		want = append(want, name)
	}
	return want
}

// decodeAttrs interprets fields as SET_field key:value pairs, dropping a
// field if its key is unregistered, if key and value render identically
// (the malformed-field rule), or if the value cannot be decoded as the
// registered Kind for that key.
func decodeAttrs(fields []string) *attribute.List {
	list := attribute.NewList()
	for _, f := range fields {
		i := strings.IndexByte(f, kvSep[0])
		if i < 0 {
			continue
		}
		key, val := f[:i], f[i+1:]
		if key == val {
			continue
		}
		name, ok := attribute.ParseName(key)
		if !ok {
			continue
		}
		kind, ok := name.Kind()
		if !ok {
			continue
		}
		v, ok := attribute.Decode(kind, val)
		if !ok {
			continue
		}
		list.Set(name, v)
	}
	return list
}

// DecodeGetFile parses a complete GET file. subjectName is the catalogue
// entry the caller expects the subject string to identify; the wire format
// never carries it explicitly since a single file only ever names one kind
// of subject.
func DecodeGetFile(text string, subjectName attribute.Name) ([]*request.Get, error) {
	lines, footer := splitLines(text)
	if !footer {
		return nil, ErrMissingFooter.Error(nil)
	}

	out := make([]*request.Get, 0, len(lines))
	for _, line := range lines {
		d, ok := decodeLine(line)
		if !ok {
			continue
		}
		out = append(out, request.NewGet(subjectName, d.subject, d.rid, decodeWant(d.fields)))
	}
	return out, nil
}

// DecodeSetFile parses a complete SET file.
func DecodeSetFile(text string, subjectName attribute.Name) ([]*request.Set, error) {
	lines, footer := splitLines(text)
	if !footer {
		return nil, ErrMissingFooter.Error(nil)
	}

	out := make([]*request.Set, 0, len(lines))
	for _, line := range lines {
		d, ok := decodeLine(line)
		if !ok {
			continue
		}
		out = append(out, request.NewSet(subjectName, d.subject, d.rid, decodeAttrs(d.fields)))
	}
	return out, nil
}

// DecodeGetResponseFile parses a complete GET_RESPONSE file.
func DecodeGetResponseFile(text string, subjectName attribute.Name) ([]*request.GetResponse, error) {
	lines, footer := splitLines(text)
	if !footer {
		return nil, ErrMissingFooter.Error(nil)
	}

	out := make([]*request.GetResponse, 0, len(lines))
	for _, line := range lines {
		d, ok := decodeLine(line)
		if !ok {
			continue
		}
		out = append(out, request.NewGetResponse(subjectName, d.subject, d.rid, decodeAttrs(d.fields)))
	}
	return out, nil
}

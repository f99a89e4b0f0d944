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

// Package request implements the sealed GET / SET / GET_RESPONSE request
// variant and the client-side pending-GET correlation record.
package request

import (
	"github.com/NoxxGames/ipcfile/attribute"
	"github.com/NoxxGames/ipcfile/token"
)

// Kind discriminates the three concrete request shapes.
type Kind uint8

const (
	KindGet Kind = iota
	KindSet
	KindGetResponse
)

func (k Kind) String() string {
	switch k {
	case KindGet:
		return "GET"
	case KindSet:
		return "SET"
	case KindGetResponse:
		return "GET_RESPONSE"
	default:
		return "UNKNOWN"
	}
}

// Request is the common contract satisfied by Get, Set and GetResponse: a
// size, an emptiness predicate, and read-only access to the subject
// identifier and RID.
type Request interface {
	Kind() Kind
	Size() int
	IsEmpty() bool
	Subject() string
	RID() token.Token
}

// Get is a read request: a subject identifier, an RID, and a set of
// attribute names to retrieve. The subject-identifier's own name is never
// present in Want, even if the caller asked for it.
type Get struct {
	subjectName attribute.Name
	subject     string
	rid         token.Token
	want        []attribute.Name
}

// NewGet constructs a Get, silently dropping subjectName from want if
// present (spec.md §4.2).
func NewGet(subjectName attribute.Name, subject string, rid token.Token, want []attribute.Name) *Get {
	deduped := make([]attribute.Name, 0, len(want))
	seen := make(map[attribute.Name]struct{}, len(want))
	for _, n := range want {
		if n == subjectName || n == attribute.NONE {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		deduped = append(deduped, n)
	}
	return &Get{subjectName: subjectName, subject: subject, rid: rid, want: deduped}
}

func (g *Get) Kind() Kind                  { return KindGet }
func (g *Get) Size() int                   { return len(g.want) }
func (g *Get) IsEmpty() bool               { return len(g.want) == 0 }
func (g *Get) Subject() string             { return g.subject }
func (g *Get) RID() token.Token            { return g.rid }
func (g *Get) SubjectName() attribute.Name { return g.subjectName }

// Want returns the retrieval set in construction order.
func (g *Get) Want() []attribute.Name {
	out := make([]attribute.Name, len(g.want))
	copy(out, g.want)
	return out
}

// Set is a write request: a subject identifier, an RID, and a fully
// populated attribute list to apply.
type Set struct {
	subjectName attribute.Name
	subject     string
	rid         token.Token
	attrs       *attribute.List
}

// NewSet constructs a Set. An empty attrs list yields an empty Set, which
// the manager must refuse at submission.
func NewSet(subjectName attribute.Name, subject string, rid token.Token, attrs *attribute.List) *Set {
	if attrs == nil {
		attrs = attribute.NewList()
	}
	return &Set{subjectName: subjectName, subject: subject, rid: rid, attrs: attrs}
}

func (s *Set) Kind() Kind                  { return KindSet }
func (s *Set) Size() int                   { return s.attrs.Size() }
func (s *Set) IsEmpty() bool               { return s.attrs.IsEmpty() }
func (s *Set) Subject() string             { return s.subject }
func (s *Set) RID() token.Token            { return s.rid }
func (s *Set) SubjectName() attribute.Name { return s.subjectName }
func (s *Set) Attributes() *attribute.List { return s.attrs }

// GetResponse carries the retrieved values keyed by the RID of the
// originating Get.
type GetResponse struct {
	subjectName attribute.Name
	subject     string
	rid         token.Token
	attrs       *attribute.List
}

// NewGetResponse constructs a GetResponse for the given originating RID.
func NewGetResponse(subjectName attribute.Name, subject string, rid token.Token, attrs *attribute.List) *GetResponse {
	if attrs == nil {
		attrs = attribute.NewList()
	}
	return &GetResponse{subjectName: subjectName, subject: subject, rid: rid, attrs: attrs}
}

func (r *GetResponse) Kind() Kind                  { return KindGetResponse }
func (r *GetResponse) Size() int                   { return r.attrs.Size() }
func (r *GetResponse) IsEmpty() bool               { return r.attrs.IsEmpty() }
func (r *GetResponse) Subject() string             { return r.subject }
func (r *GetResponse) RID() token.Token            { return r.rid }
func (r *GetResponse) SubjectName() attribute.Name { return r.subjectName }
func (r *GetResponse) Attributes() *attribute.List { return r.attrs }

// Pending pairs a submitted Get with the file-naming token of the GET file
// it was flushed in. The client's response-poll tick correlates an inbound
// GetResponse by the Get's own RID, not by FlushedAs. The client role's
// pending buffer is the sole owner of these records.
type Pending struct {
	Get       *Get
	FlushedAs token.Token
}

// NewPending wraps g for the pending buffer. FlushedAs starts equal to the
// Get's own RID; the client manager overwrites it with the file-naming
// token when the Get is flushed.
func NewPending(g *Get) *Pending {
	return &Pending{Get: g, FlushedAs: g.RID()}
}

// IsEmpty delegates to the wrapped Get, satisfying the same emptiness
// contract used by Buffer's push rejection.
func (p *Pending) IsEmpty() bool { return p.Get.IsEmpty() }

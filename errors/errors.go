/*
 * MIT License
 *
 * Copyright (c) 2020 Nicolas JUHEL
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

package errors

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// fault is the concrete type behind the Error interface: a coded message
// plus zero or more parent faults, and the call-site frame it was created at.
type fault struct {
	c uint16
	e string
	p []Error
	t runtime.Frame
}

// --- identity: Is / IsCode / IsError / HasCode / HasError / HasParent ---

// same compares two faults by trace first, then message, then code - the
// first dimension where either side has data wins the comparison.
func same(a, b *fault) bool {
	if a == nil || b == nil {
		return false
	}

	at, bt := a.GetTrace(), b.GetTrace()
	if hasTrace, wantTrace := at != "" || bt != "", at != "" && bt != ""; hasTrace {
		if !wantTrace {
			return false
		}
		return strings.EqualFold(at, bt)
	}

	am, bm := a.Error(), b.Error()
	if hasMsg, wantMsg := am != "" || bm != "", am != "" && bm != ""; hasMsg {
		if !wantMsg {
			return false
		}
		return strings.EqualFold(am, bm)
	}

	ac, bc := a.Code(), b.Code()
	if hasCode, wantCode := ac > 0 || bc > 0, ac > 0 && bc > 0; hasCode {
		if !wantCode {
			return false
		}
		return ac == bc
	}

	return false
}

func (e *fault) Is(err error) bool {
	if err == nil {
		return false
	}

	if other, ok := err.(*fault); ok {
		return same(e, other)
	}
	return e.IsError(err)
}

func (e *fault) IsCode(code CodeError) bool {
	return e.c == code.Uint16()
}

func (e *fault) IsError(err error) bool {
	return strings.EqualFold(e.e, err.Error())
}

func (e *fault) HasCode(code CodeError) bool {
	if e.IsCode(code) {
		return true
	}
	for _, p := range e.p {
		if p.HasCode(code) {
			return true
		}
	}
	return false
}

func (e *fault) HasError(err error) bool {
	if e.IsError(err) {
		return true
	}
	for _, p := range e.p {
		if p.IsError(err) || p.HasError(err) {
			return true
		}
	}
	return false
}

func (e *fault) HasParent() bool {
	return len(e.p) > 0
}

// --- hierarchy: Add / SetParent / GetParent / GetParentCode / Map ---

func (e *fault) Add(parent ...error) {
	for _, v := range parent {
		if v == nil {
			continue
		}

		if other, ok := v.(*fault); ok {
			// prevent circular addition
			if e.IsError(other) {
				for _, p := range other.p {
					e.Add(p)
				}
			} else {
				e.p = append(e.p, other)
			}
			continue
		}

		if asErr, ok := v.(Error); ok {
			e.p = append(e.p, asErr)
			continue
		}

		e.p = append(e.p, &fault{e: v.Error()})
	}
}

func (e *fault) SetParent(parent ...error) {
	e.p = make([]Error, 0)
	e.Add(parent...)
}

func (e *fault) GetParent(withMainError bool) []error {
	res := make([]error, 0)

	if withMainError {
		res = append(res, &fault{c: e.c, e: e.e, t: e.t})
	}

	for _, p := range e.p {
		res = append(res, p.GetParent(true)...)
	}

	return res
}

func (e *fault) GetParentCode() []CodeError {
	res := append(make([]CodeError, 0), e.GetCode())
	for _, p := range e.p {
		res = append(res, p.GetParentCode()...)
	}
	return unicCodeSlice(res)
}

func (e *fault) Map(fct FuncMap) bool {
	if !fct(e) {
		return false
	}
	for _, p := range e.p {
		if !p.Map(fct) {
			return false
		}
	}
	return true
}

func (e *fault) ContainsString(s string) bool {
	if strings.Contains(e.e, s) {
		return true
	}
	for _, p := range e.p {
		if p.ContainsString(s) {
			return true
		}
	}
	return false
}

// --- code and message accessors ---

func (e *fault) GetCode() CodeError {
	return CodeError(e.c)
}

func (e *fault) Code() uint16 {
	return e.c
}

func (e *fault) CodeSlice() []uint16 {
	r := []uint16{e.Code()}
	for _, p := range e.p {
		if p.Code() > 0 {
			r = append(r, p.Code())
		}
	}
	return r
}

func (e *fault) Error() string {
	return modeError.error(e)
}

func (e *fault) StringError() string {
	return e.e
}

func (e *fault) StringErrorSlice() []string {
	r := []string{e.StringError()}
	for _, p := range e.p {
		r = append(r, p.Error())
	}
	return r
}

func (e *fault) GetError() error {
	//nolint goerr113
	return errors.New(e.e)
}

func (e *fault) GetErrorSlice() []error {
	r := []error{e.GetError()}
	for _, p := range e.p {
		if p == nil {
			continue
		}
		r = append(r, p.GetErrorSlice()...)
	}
	return r
}

func (e *fault) Unwrap() []error {
	if len(e.p) < 1 {
		return nil
	}

	r := make([]error, 0, len(e.p))
	for _, p := range e.p {
		if p == nil {
			continue
		}
		r = append(r, p)
	}
	return r
}

// --- trace formatting ---

func (e *fault) GetTrace() string {
	switch {
	case e.t.File != "":
		return fmt.Sprintf("%s#%d", filterPath(e.t.File), e.t.Line)
	case e.t.Function != "":
		return fmt.Sprintf("%s#%d", e.t.Function, e.t.Line)
	default:
		return ""
	}
}

func (e *fault) GetTraceSlice() []string {
	r := []string{e.GetTrace()}
	for _, p := range e.p {
		if t := p.GetTrace(); t != "" {
			r = append(r, t)
		}
	}
	return r
}

func (e *fault) CodeError(pattern string) string {
	if pattern == "" {
		pattern = defaultPattern
	}
	return fmt.Sprintf(pattern, e.Code(), e.StringError())
}

func (e *fault) CodeErrorSlice(pattern string) []string {
	r := []string{e.CodeError(pattern)}
	for _, p := range e.p {
		r = append(r, p.CodeError(pattern))
	}
	return r
}

func (e *fault) CodeErrorTrace(pattern string) string {
	if pattern == "" {
		pattern = defaultPatternTrace
	}
	return fmt.Sprintf(pattern, e.Code(), e.StringError(), e.GetTrace())
}

func (e *fault) CodeErrorTraceSlice(pattern string) []string {
	r := []string{e.CodeErrorTrace(pattern)}
	for _, p := range e.p {
		r = append(r, p.CodeErrorTrace(pattern))
	}
	return r
}

// --- return callbacks ---

func (e *fault) Return(r Return) {
	e.ReturnError(r.SetError)
	e.ReturnParent(r.AddParent)
}

func (e *fault) ReturnError(f ReturnError) {
	if e.t.File != "" {
		f(int(e.c), e.e, e.t.File, e.t.Line)
	} else {
		f(int(e.c), e.e, e.t.Function, e.t.Line)
	}
}

func (e *fault) ReturnParent(f ReturnError) {
	for _, p := range e.p {
		p.ReturnError(f)
		p.ReturnParent(f)
	}
}

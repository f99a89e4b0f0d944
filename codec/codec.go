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

// Package codec implements the line-oriented wire grammar shared by GET,
// SET and GET_RESPONSE files:
//
//	file      := line* FOOTER
//	line      := rid "-" subject "," field ("," field)* ","? "\n"
//	field     := GET_field | SET_field
//	GET_field := attr_key
//	SET_field := attr_key ":" attr_value
//	FOOTER    := "EOF"
//
// Parsing is strict on the footer (its absence means the file is still
// being written and must be skipped this tick) and lenient everywhere else:
// unknown attribute keys are dropped, and a field whose key and value render
// to the same string is treated as malformed and dropped.
package codec

import (
	"github.com/NoxxGames/ipcfile/errors"
)

const (
	// Footer is the literal trailer every complete request file ends with.
	Footer = "EOF"

	fieldSep = ","
	kvSep    = ":"
	ridSep   = "-"
	lineSep  = '\n'
)

const (
	// ErrMissingFooter is returned by the Decode* functions when text does
	// not end with the Footer sentinel: the file is still being written by
	// its peer and must be retried on the next tick, never deleted.
	ErrMissingFooter errors.CodeError = iota + errors.MinPkgCodec
	// ErrMalformedLine names a line that cannot be split into a RID and a
	// subject, e.g. a missing "-" separator or an unparseable RID. The
	// Decode* functions drop such lines and do not return this code.
	ErrMalformedLine
)

var isCodeError = false

func IsCodeError() bool {
	return isCodeError
}

func init() {
	isCodeError = errors.ExistInMapMessage(ErrMissingFooter)
	errors.RegisterIdFctMessage(ErrMissingFooter, getMessage)
}

func getMessage(code errors.CodeError) (message string) {
	switch code {
	case errors.UnknownError:
		return ""
	case ErrMissingFooter:
		return "request file is missing its EOF footer"
	case ErrMalformedLine:
		return "request line could not be split into a RID and a subject"
	}

	return ""
}

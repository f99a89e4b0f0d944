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

// Package fileio implements the shared directory's on-disk surface: atomic
// whole-file writes, prefix-filtered directory listings, and the
// <REQ>#<RID>#<HH-MM-SS>.ipcf unique file-name format every request file
// uses.
package fileio

import (
	"github.com/NoxxGames/ipcfile/errors"
)

const (
	// Extension is the suffix every request file carries.
	Extension = ".ipcf"

	// DelimChar separates the three name components: request kind, RID and
	// time-of-day.
	DelimChar = '#'

	// TimeDelimChar separates hour/minute/second inside the time component.
	TimeDelimChar = '-'

	timeLayout = "15" + string(TimeDelimChar) + "04" + string(TimeDelimChar) + "05"
)

const (
	// ErrEmptyDir is returned by ListFiles when dir does not exist or
	// contains no entries, matching the original's GetListOfFiles
	// false-return contract.
	ErrEmptyDir errors.CodeError = iota + errors.MinPkgFileIO
	// ErrNotRegular is returned by ReadFile when path exists and is not a
	// regular file.
	ErrNotRegular
)

var isCodeError = false

func IsCodeError() bool {
	return isCodeError
}

func init() {
	isCodeError = errors.ExistInMapMessage(ErrEmptyDir)
	errors.RegisterIdFctMessage(ErrEmptyDir, getMessage)
}

func getMessage(code errors.CodeError) (message string) {
	switch code {
	case errors.UnknownError:
		return ""
	case ErrEmptyDir:
		return "directory does not exist or has no matching entries"
	case ErrNotRegular:
		return "path exists and is not a regular file"
	}

	return ""
}

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

package fileio

import (
	"fmt"
	"time"

	"github.com/NoxxGames/ipcfile/request"
	"github.com/NoxxGames/ipcfile/token"
)

// fileKindString renders a request.Kind the way the wire file name expects
// it, which is not the same rendering request.Kind.String() uses for logs:
// GET_RESPONSE has no underscore on disk.
func fileKindString(k request.Kind) string {
	switch k {
	case request.KindGet:
		return "GET"
	case request.KindSet:
		return "SET"
	case request.KindGetResponse:
		return "GETRESPONSE"
	default:
		return "UNKNOWN"
	}
}

// GenerateName builds the <REQ>#<RID>#<HH-MM-SS>.ipcf unique file name for
// kind and rid. The time component is advisory only: it plays no role in
// parsing or correlation, and is stamped from local wall-clock time the way
// the original generator does.
func GenerateName(kind request.Kind, rid token.Token) string {
	return fmt.Sprintf("%s%c%s%c%s%s",
		fileKindString(kind), DelimChar, rid.String(), DelimChar, time.Now().Format(timeLayout), Extension)
}

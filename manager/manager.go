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

// Package manager composes the token, attribute, request, codec, spinlock,
// buffer, worker and fileio packages into the two role-qualified public
// façades a host application actually talks to: Client and Server. Neither
// façade exposes its buffers or worker loops directly; every operation a
// caller needs is a method on Client or Server.
package manager

import (
	"github.com/NoxxGames/ipcfile/file/perm"
	"github.com/NoxxGames/ipcfile/token"
	"github.com/NoxxGames/ipcfile/worker"
)

// tokens is the single process-wide allocator both roles draw RIDs and
// file-naming tokens from, matching spec's "process-wide monotonic token
// allocator" (there is exactly one per process, never one per role).
var tokens = token.NewSource()

// GenerateRequestID hands a caller a fresh RID without submitting anything,
// for callers that want to pre-compute one (e.g. to correlate a GET before
// constructing it).
func GenerateRequestID() string {
	return tokens.Next().String()
}

// DefaultTickPeriod is used by a Client or Server constructed with a
// non-positive TickPeriod.
const DefaultTickPeriod = worker.DefaultPeriod

// DefaultFilePerm is the permission request files are written with when a
// Config leaves FilePerm unset.
var DefaultFilePerm = perm.ParseFileMode(0644)

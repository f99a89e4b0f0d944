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

package ipcmetrics

// Recorder is the narrow surface manager needs: it never imports
// *Registry directly, so a caller that doesn't care about metrics can
// leave this unset and get NoopRecorder instead.
type Recorder interface {
	SetBufferLen(role, variant string, n int)
	IncTick(role, loop string)
	IncParseError(kind string)
}

type noopRecorder struct{}

func (noopRecorder) SetBufferLen(string, string, int) {}
func (noopRecorder) IncTick(string, string)           {}
func (noopRecorder) IncParseError(string)             {}

// NoopRecorder is a Recorder whose every method is a no-op, used as the
// default when a caller doesn't wire a *Registry in.
var NoopRecorder Recorder = noopRecorder{}

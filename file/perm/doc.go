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

// Package perm wraps os.FileMode as Perm, a value that parses from octal
// ("0644") or symbolic ("rwxr-xr-x", optionally prefixed with a file type
// character) strings and marshals back out through JSON, YAML, TOML, CBOR
// and plain text - all using the canonical octal string form.
//
// ipcconfig uses it for on-disk request/response file permissions, and
// wires ViperDecoderHook so a config file can set them as "file_perm: \"0644\""
// or "file_perm: rw-r--r--" without an intermediate string field.
//
//	p, err := perm.Parse("0644")
//	if err != nil {
//	    return err
//	}
//	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, p.FileMode())
package perm

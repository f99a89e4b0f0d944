/*
 * MIT License
 *
 * Copyright (c) 2022 Nicolas JUHEL
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

package delim

import "io"

// Reader returns the BufferDelim itself as an io.ReadCloser.
func (o *dlm) Reader() io.ReadCloser {
	return o
}

// Copy reads from the BufferDelim and writes to w until EOF or an error occurs.
func (o *dlm) Copy(w io.Writer) (n int64, err error) {
	return o.WriteTo(w)
}

// Read reads data up to and including the next delimiter into p.
func (o *dlm) Read(p []byte) (n int, err error) {
	o.m.Lock()
	defer o.m.Unlock()

	if o.r == nil {
		return 0, ErrInstance
	}

	b, e := o.r.ReadBytes(o.d)
	n = copy(p, b)
	return n, e
}

// UnRead returns the data currently buffered in the internal reader that has
// not yet been consumed.
func (o *dlm) UnRead() ([]byte, error) {
	o.m.Lock()
	defer o.m.Unlock()

	if o.r == nil {
		return nil, ErrInstance
	}

	if s := o.r.Buffered(); s > 0 {
		b := make([]byte, s)
		_, e := o.r.Read(b)
		return b, e
	}

	return nil, nil
}

// ReadBytes reads until the first occurrence of the delimiter in the input,
// returning a slice containing the data up to and including the delimiter.
func (o *dlm) ReadBytes() ([]byte, error) {
	o.m.Lock()
	defer o.m.Unlock()

	if o.r == nil {
		return nil, ErrInstance
	}

	return o.r.ReadBytes(o.d)
}

// Close closes the BufferDelim and releases associated resources.
func (o *dlm) Close() error {
	o.m.Lock()
	defer o.m.Unlock()

	if o.r == nil {
		return ErrInstance
	}

	o.r = nil
	return o.i.Close()
}

// WriteTo reads data from the BufferDelim and writes it to w until EOF or an
// error occurs. It implements the io.WriterTo interface.
func (o *dlm) WriteTo(w io.Writer) (n int64, err error) {
	for {
		o.m.Lock()
		if o.r == nil {
			o.m.Unlock()
			return n, ErrInstance
		}
		b, rerr := o.r.ReadBytes(o.d)
		o.m.Unlock()

		if len(b) > 0 {
			i, werr := w.Write(b)
			n += int64(i)
			if werr != nil {
				return n, werr
			}
		}

		if rerr != nil {
			return n, rerr
		}
	}
}

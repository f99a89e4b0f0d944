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

package perm

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

func stripQuotes(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, `"`, "")
	s = strings.ReplaceAll(s, "'", "")
	return s
}

// parseString accepts either an octal string ("0644") or a 9/10-character
// symbolic string ("rwxr-xr-x", optionally prefixed with a file type letter).
func parseString(s string) (Perm, error) {
	s = stripQuotes(s)

	v, e := strconv.ParseUint(s, 8, 32)
	if e != nil {
		return parseSymbolicString(s)
	}
	if v > math.MaxUint32 {
		return Perm(0), fmt.Errorf("invalid permission")
	}
	return Perm(v), nil
}

// fileTypeBits maps the leading character of a 10-char symbolic string (the
// `ls -l` file type column) to its os.FileMode bit.
var fileTypeBits = map[byte]os.FileMode{
	'-': 0,
	'd': os.ModeDir,
	'l': os.ModeSymlink,
	'c': os.ModeDevice | os.ModeCharDevice,
	'b': os.ModeDevice,
	'p': os.ModeNamedPipe,
	's': os.ModeSocket,
	'D': os.ModeIrregular,
}

func parseSymbolicString(s string) (Perm, error) {
	s = stripQuotes(s)

	if len(s) != 9 && len(s) != 10 {
		return 0, fmt.Errorf("invalid permission")
	}

	var mode os.FileMode
	start := 0

	if len(s) == 10 {
		bits, ok := fileTypeBits[s[0]]
		if !ok {
			return 0, fmt.Errorf("invalid file type character: %c", s[0])
		}
		mode |= bits
		start = 1
	}

	for i := 0; i < 3; i++ {
		from := start + i*3
		to := from + 3
		if to > len(s) {
			return 0, fmt.Errorf("invalid permission string format")
		}

		group, err := parseTriad(s[from:to])
		if err != nil {
			return 0, err
		}

		// owner group is shifted 6, group group 3, others group 0
		mode |= os.FileMode(group) << uint(6-i*3)
	}

	return Perm(mode), nil
}

// parseTriad converts one "rwx"-style triad into its 3-bit octal value.
func parseTriad(chars string) (uint8, error) {
	if len(chars) != 3 {
		return 0, fmt.Errorf("invalid permission group length")
	}

	var value uint8

	switch chars[0] {
	case 'r':
		value += 4
	case '-':
	default:
		return 0, fmt.Errorf("invalid read permission character: %c", chars[0])
	}

	switch chars[1] {
	case 'w':
		value += 2
	case '-':
	default:
		return 0, fmt.Errorf("invalid write permission character: %c", chars[1])
	}

	switch chars[2] {
	case 'x':
		value += 1
	case '-':
	default:
		return 0, fmt.Errorf("invalid execute permission character: %c", chars[2])
	}

	return value, nil
}

func (p *Perm) parseString(s string) error {
	v, e := parseString(s)
	if e != nil {
		return e
	}
	*p = v
	return nil
}

func (p *Perm) unmarshall(val []byte) error {
	tmp, err := ParseByte(val)
	if err != nil {
		return err
	}
	*p = tmp
	return nil
}

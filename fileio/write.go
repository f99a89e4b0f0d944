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
	"os"
	"path/filepath"

	"github.com/NoxxGames/ipcfile/file/perm"
	"github.com/NoxxGames/ipcfile/ioutils"
)

// DefaultDirPerm and DefaultFilePerm match the permissions ioutils.PathCheckCreate
// documents as its own examples for a shared working directory and the
// request files inside it.
var (
	DefaultDirPerm  = perm.ParseFileMode(0755)
	DefaultFilePerm = perm.ParseFileMode(0644)
)

// EnsureDir creates dir (and any missing parents) with mode if it does not
// already exist.
func EnsureDir(dir string, mode perm.Perm) error {
	return ioutils.PathCheckCreate(false, dir, DefaultFilePerm.FileMode(), mode.FileMode())
}

// WriteAtomic writes body to dir/name so a concurrent reader polling dir
// never observes a partially written file: the content is staged in a
// temporary sibling file and then renamed into place, since rename is
// atomic within a single filesystem.
func WriteAtomic(dir, name, body string, mode perm.Perm) error {
	if err := EnsureDir(dir, DefaultDirPerm); err != nil {
		return err
	}

	target := filepath.Join(dir, name)
	tmp, err := os.CreateTemp(dir, ".tmp-"+name+"-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err = tmp.WriteString(body); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err = os.Chmod(tmpName, mode.FileMode()); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err = os.Rename(tmpName, target); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}

// Remove deletes dir/name, used once a request file has been fully consumed.
func Remove(dir, name string) error {
	return os.Remove(filepath.Join(dir, name))
}

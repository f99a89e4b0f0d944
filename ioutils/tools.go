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

package ioutils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// PathCheckCreate makes sure path exists as a file (isFile) or directory,
// creating it and any missing parents with permFile/permDir, and fixing the
// mode of an existing path that doesn't match. fileio.EnsureDir (called by
// fileio.WriteAtomic) uses it with isFile false to create the spool
// directory; the request/response file's own mode is set by WriteAtomic.
func PathCheckCreate(isFile bool, path string, permFile os.FileMode, permDir os.FileMode) error {
	inf, statErr := os.Stat(path)

	switch {
	case statErr != nil && !errors.Is(statErr, os.ErrNotExist):
		return statErr

	case statErr == nil && inf.IsDir():
		if isFile {
			return fmt.Errorf("path '%s' already exists but is a directory", path)
		}
		if inf.Mode() != permDir {
			_ = os.Chmod(path, permDir)
		}
		return nil

	case statErr == nil && !inf.IsDir():
		if !isFile {
			return fmt.Errorf("path '%s' already exists but is not a directory", path)
		}
		if inf.Mode() != permFile {
			_ = os.Chmod(path, permFile)
		}
		return nil

	case !isFile:
		return os.MkdirAll(path, permDir)
	}

	if err := PathCheckCreate(false, filepath.Dir(path), permFile, permDir); err != nil {
		return err
	}

	return createFileAtomic(path, permFile)
}

// createFileAtomic uses os.OpenRoot so the file is created relative to its
// parent directory handle rather than by a racy path re-resolution.
func createFileAtomic(path string, perm os.FileMode) error {
	root, err := os.OpenRoot(filepath.Dir(path))
	if err != nil {
		return err
	}
	defer func() { _ = root.Close() }()

	f, err := root.Create(filepath.Base(path))
	if err != nil {
		return err
	}
	_ = f.Close()

	_ = root.Chmod(filepath.Base(path), perm)

	return nil
}

// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package outfile creates the files written by the report renderers.
package outfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// An Error reports that an output file could not be created or
// written.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("cannot write %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Write creates or truncates the file at path and passes a buffered
// writer for it to fn. Any failure, including one returned by fn, is
// reported as an *Error. The file is closed on every path.
func Write(path string, fn func(w io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return &Error{path, err}
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = &Error{path, cerr}
		}
	}()

	bw := bufio.NewWriter(f)
	if err := fn(bw); err != nil {
		return &Error{path, err}
	}
	if err := bw.Flush(); err != nil {
		return &Error{path, err}
	}
	return nil
}

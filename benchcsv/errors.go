// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchcsv

import "fmt"

// A ParseError reports a malformed benchmark file: a missing
// required column, a row with the wrong number of fields, or a field
// that is not a number.
type ParseError struct {
	FileName string
	Line     int
	Column   string // column name, if known
	Msg      string
}

func (e *ParseError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}

func (e *ParseError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("%s:%d: column %s: %s", e.FileName, e.Line, e.Column, e.Msg)
	}
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

// A NotFoundError reports an input path that does not exist or
// cannot be opened for reading.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

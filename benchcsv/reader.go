// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchcsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// A Reader reads benchmark records from a CSV file.
//
// Its API is modeled on bufio.Scanner. To construct a new Reader,
// either call NewReader, or call Reset on a Reader with its Schema
// set.
type Reader struct {
	// Schema is the header layout the input must follow.
	Schema Schema

	csv      *csv.Reader
	fileName string
	title    string // Title for rows without a TITLE column

	// index maps each field to its position in a row, or -1.
	// It is nil until the header has been read.
	index []int
	names []string

	rec Record
	err error
}

// NewReader constructs a reader of schema s from r. fileName is used
// in error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string, s Schema) *Reader {
	reader := &Reader{Schema: s}
	reader.Reset(r, fileName)
	return reader
}

// Reset resets the reader to begin reading from a new input,
// including its header.
func (r *Reader) Reset(ior io.Reader, fileName string) {
	if fileName == "" {
		fileName = "<unknown>"
	}
	r.csv = csv.NewReader(ior)
	r.csv.TrimLeadingSpace = true
	r.csv.ReuseRecord = true
	r.fileName = fileName
	r.index = nil
	r.names = nil
	r.rec = Record{}
	r.err = nil
}

// Scan advances the reader to the next record and reports whether a
// record was read. The caller should use the Record method to get the
// record. If Scan reaches EOF or an error occurs, it returns false,
// in which case the caller should use the Err method to check for
// errors.
//
// The header is checked on the first call, so a file that lacks a
// required column fails before any record is returned.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	if r.index == nil {
		if r.err = r.readHeader(); r.err != nil {
			return false
		}
	}

	row, err := r.csv.Read()
	if err == io.EOF {
		return false
	}
	if err != nil {
		r.err = r.csvError(err)
		return false
	}
	line, _ := r.csv.FieldPos(0)
	rec, perr := r.parseRow(row, line)
	if perr != nil {
		r.err = perr
		return false
	}
	r.rec = rec
	return true
}

// Record returns the record that was just read by Scan.
func (r *Reader) Record() Record {
	return r.rec
}

// Err returns the first error encountered by Scan. If Scan stopped
// because it read the whole input, Err returns nil.
func (r *Reader) Err() error {
	return r.err
}

func (r *Reader) readHeader() error {
	header, err := r.csv.Read()
	if err == io.EOF {
		return &ParseError{FileName: r.fileName, Line: 1, Msg: "missing header"}
	}
	if err != nil {
		return r.csvError(err)
	}

	pos := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		name = strings.TrimSpace(name)
		if _, ok := pos[name]; !ok {
			pos[name] = i
		}
	}

	index := make([]int, numFields)
	names := make([]string, numFields)
	for i := range index {
		index[i] = -1
	}
	for _, col := range r.Schema.columns() {
		i, ok := pos[col.name]
		if !ok {
			if col.required {
				return &ParseError{FileName: r.fileName, Line: 1, Column: col.name, Msg: "missing required column"}
			}
			continue
		}
		index[col.field] = i
		names[col.field] = col.name
	}
	r.index, r.names = index, names
	return nil
}

func (r *Reader) parseRow(row []string, line int) (Record, *ParseError) {
	rec := r.Schema.blank()
	rec.Title = r.title
	for f, i := range r.index {
		if i < 0 {
			continue
		}
		fd := field(f)
		val := strings.TrimSpace(row[i])
		if fd.isString() {
			if fd == fTitle && val == "" {
				continue
			}
			rec.setString(fd, val)
			continue
		}
		v, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return Record{}, &ParseError{r.fileName, line, r.names[f], fmt.Sprintf("cannot parse %q as a number", val)}
		}
		if fd == fParameter && (math.IsNaN(v) || math.IsInf(v, 0)) {
			return Record{}, &ParseError{r.fileName, line, r.names[f], fmt.Sprintf("parameter must be finite, got %s", val)}
		}
		rec.setFloat(fd, v)
	}
	return rec, nil
}

func (r *Reader) csvError(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &ParseError{FileName: r.fileName, Line: pe.Line, Msg: pe.Err.Error()}
	}
	return fmt.Errorf("%s: %w", r.fileName, err)
}

// ReadAll reads every remaining record from r. It returns either all
// of them, in input order, or nil and the first error.
func ReadAll(r *Reader) ([]Record, error) {
	var recs []Record
	for r.Scan() {
		recs = append(recs, r.Record())
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return recs, nil
}

// ReadFile reads every record of the file at path. A path that cannot
// be opened yields a *NotFoundError; a malformed file yields a
// *ParseError and no records.
func ReadFile(path string, s Schema) ([]Record, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadAll(NewReader(f, path, s))
}

// open opens path for reading, rejecting directories.
func open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &NotFoundError{path, err}
	}
	fi, err := f.Stat()
	if err == nil && fi.IsDir() {
		err = errors.New("is a directory")
	}
	if err != nil {
		f.Close()
		return nil, &NotFoundError{path, err}
	}
	return f, nil
}

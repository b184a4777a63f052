// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchcsv

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/aaexam/benchreport/internal/outfile"
)

// writeColumns is the header written by Writer.
var writeColumns = []string{
	ColTitle, ColParameter, ColRuns, ColRepetitions,
	ColMeanTime, ColSdevTime, ColMeanResult, ColSdevResult,
}

// A Writer writes records in the summary layout.
//
// Numbers are written in the shortest form that parses back to the
// same value, so a file written by Writer reads back identically.
type Writer struct {
	w      *csv.Writer
	header bool
	row    []string
}

// NewWriter returns a writer that writes records to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: csv.NewWriter(w), row: make([]string, len(writeColumns))}
}

// Write writes rec, preceded by the header if this is the first
// record.
func (w *Writer) Write(rec Record) error {
	if !w.header {
		if err := w.w.Write(writeColumns); err != nil {
			return err
		}
		w.header = true
	}
	w.row[0] = rec.Name()
	for i, v := range []float64{rec.Parameter, rec.Runs, rec.Repetitions, rec.MeanTime, rec.SdevTime, rec.MeanResult, rec.SdevResult} {
		w.row[i+1] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return w.w.Write(w.row)
}

// Flush writes any buffered data and reports any error from this or
// an earlier Write. A Writer that wrote no records writes just the
// header.
func (w *Writer) Flush() error {
	if !w.header {
		if err := w.w.Write(writeColumns); err != nil {
			return err
		}
		w.header = true
	}
	w.w.Flush()
	return w.w.Error()
}

// WriteFile writes recs to the file at path, replacing its contents.
// A failure to create or write the file is reported as an
// *outfile.Error.
func WriteFile(path string, recs []Record) error {
	return outfile.Write(path, func(out io.Writer) error {
		w := NewWriter(out)
		for _, rec := range recs {
			if err := w.Write(rec); err != nil {
				return err
			}
		}
		return w.Flush()
	})
}

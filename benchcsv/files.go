// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchcsv

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// A Files reads benchmark records from a sequence of input files that
// share one Schema.
//
// Every file gets a label, which becomes the Title of records that
// have no TITLE column of their own. By default the label is the
// file's base name without its extension, with duplicates
// disambiguated by appending "#N". If AllowLabels is true, entries in
// Paths may be of the form label=path.
type Files struct {
	// Paths is the list of file names to read in.
	Paths []string

	// Schema is the header layout of every file.
	Schema Schema

	// AllowLabels indicates that custom labels are allowed in
	// Paths.
	AllowLabels bool

	// Labels, if non-nil, gives the label of each entry of Paths,
	// which are then never split. An empty label selects the
	// default.
	Labels []string

	// inputs is the sequence of remaining inputs, or nil if this
	// Files has not started yet.
	inputs []input

	reader Reader
	file   *os.File
	err    error
}

type input struct {
	path  string
	label string
}

func (f *Files) init() {
	f.inputs = []input{}

	count := make(map[string]int)
	explicit := make([]bool, 0, len(f.Paths))
	for i, path := range f.Paths {
		label := ""
		if i < len(f.Labels) && f.Labels[i] != "" {
			label = f.Labels[i]
			explicit = append(explicit, true)
		} else if j := strings.Index(path, "="); f.Labels == nil && f.AllowLabels && j >= 0 {
			label, path = path[:j], path[j+1:]
			explicit = append(explicit, true)
		} else {
			base := filepath.Base(path)
			label = strings.TrimSuffix(base, filepath.Ext(base))
			count[label]++
			explicit = append(explicit, false)
		}
		f.inputs = append(f.inputs, input{path, label})
	}

	// Files that would share a label get distinct titles, so their
	// records don't silently merge into one series.
	seen := make(map[string]int)
	for i := range f.inputs {
		inp := &f.inputs[i]
		if explicit[i] || count[inp.label] == 1 {
			continue
		}
		n := seen[inp.label]
		seen[inp.label]++
		inp.label = fmt.Sprintf("%s#%d", inp.label, n)
	}
	f.reader.Schema = f.Schema
}

// Scan advances to the next record in the sequence of files and
// reports whether a record was read. The caller should use the Record
// method to get the record. If Scan reaches the end of the file
// sequence or an error occurs, it returns false, and the caller
// should use the Err method to check for errors.
func (f *Files) Scan() bool {
	if f.err != nil {
		return false
	}
	if f.inputs == nil {
		f.init()
	}

	for {
		if f.file == nil {
			if len(f.inputs) == 0 {
				return false
			}
			inp := f.inputs[0]
			f.inputs = f.inputs[1:]

			file, err := open(inp.path)
			if err != nil {
				f.err = err
				return false
			}
			f.file = file
			f.reader.Reset(file, inp.path)
			f.reader.title = inp.label
		}

		if f.reader.Scan() {
			return true
		}
		f.file.Close()
		f.file = nil
		if err := f.reader.Err(); err != nil {
			f.err = err
			return false
		}
	}
}

// Record returns the record that was just read by Scan.
func (f *Files) Record() Record {
	return f.reader.Record()
}

// Err returns the error that stopped Scan, if any. If Scan stopped
// because it read each file to completion, Err returns nil.
func (f *Files) Err() error {
	return f.err
}

// ReadAll reads the records of every file. It returns either all of
// them, in input order, or nil and the first error.
func (f *Files) ReadAll() ([]Record, error) {
	var recs []Record
	for f.Scan() {
		recs = append(recs, f.Record())
	}
	if err := f.Err(); err != nil {
		return nil, err
	}
	return recs, nil
}

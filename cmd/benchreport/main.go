// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchreport renders the LaTeX tables and charts of a benchmark
// report from the CSV files written by the experiment harness.
//
// Usage:
//
//	benchreport [flags]
//
// Without -config, benchreport renders the default report: it reads
// the timings in results/t2e1.csv, writes the mean and standard
// deviation of the quartic 4-sum algorithm to results/t2e1.tex, and
// plots every 4-sum algorithm on log-log axes to results/t2e1.pdf.
//
// With -config, the report is read from a TOML file listing inputs,
// tables and charts. Run "benchreport -dump-config" to print the
// default report in that form as a starting point.
//
// Relative paths, including those in the report file, are resolved
// against the directory given by -C, or the current directory.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/aaexam/benchreport/report"
)

var exit = os.Exit // replaced during testing

// A usageError reports bad command-line arguments.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func main() {
	log.SetPrefix("benchreport: ")
	log.SetFlags(0)

	if err := benchreport(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var ue *usageError
		if errors.As(err, &ue) {
			exit(2)
		}
		log.Print(err)
		exit(1)
	}
}

func benchreport(w, wErr io.Writer, args []string) error {
	fs := flag.NewFlagSet("benchreport", flag.ContinueOnError)
	fs.SetOutput(wErr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: benchreport [flags]\n")
		fmt.Fprintf(fs.Output(), "flags:\n")
		fs.PrintDefaults()
	}
	flagConfig := fs.String("config", "", "read the report definition from TOML `file`")
	flagDir := fs.String("C", "", "resolve relative paths against `dir`")
	flagSummary := fs.Bool("summary", false, "print a table of the records of every input")
	flagVerbose := fs.Bool("v", false, "log files read and written")
	flagDump := fs.Bool("dump-config", false, "print the report definition and exit")
	if err := fs.Parse(args); err != nil {
		return &usageError{err}
	}
	if fs.NArg() > 0 {
		err := fmt.Errorf("unexpected arguments %q", fs.Args())
		fmt.Fprintf(fs.Output(), "benchreport: %v\n", err)
		fs.Usage()
		return &usageError{err}
	}

	cfg := report.DefaultConfig()
	if *flagConfig != "" {
		var err error
		if cfg, err = report.LoadConfig(*flagConfig); err != nil {
			return err
		}
	}

	if *flagDump {
		data, err := cfg.Marshal()
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}

	opts := &report.Options{Dir: *flagDir}
	if *flagVerbose {
		opts.Logf = log.New(wErr, "benchreport: ", 0).Printf
	}
	if *flagSummary {
		opts.Summary = w
	}
	return report.Run(cfg, opts)
}

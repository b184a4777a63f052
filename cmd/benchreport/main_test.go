// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aaexam/benchreport/benchcsv"
	"github.com/aaexam/benchreport/report"
	"github.com/google/go-cmp/cmp"
)

const t2e1 = `problem,algorithm,n,time
foursum,quartic,10,1.0
foursum,quartic,10,3.0
foursum,quartic,20,2.0
foursum,cubic,10,0.5
foursum,cubic,20,0.75
`

func writeResults(t *testing.T, data string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "results"), 0777); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "results", "t2e1.csv"), []byte(data), 0666); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestDefaultReport(t *testing.T) {
	dir := writeResults(t, t2e1)
	var out, errOut bytes.Buffer
	if err := benchreport(&out, &errOut, []string{"-C", dir, "-v", "-summary"}); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"t2e1.tex", "t2e1.pdf"} {
		if _, err := os.Stat(filepath.Join(dir, "results", name)); err != nil {
			t.Error(err)
		}
	}
	if !strings.HasPrefix(out.String(), "# t2e1\n# title") {
		t.Errorf("unexpected summary:\n%s", out.String())
	}
	if got := strings.Count(errOut.String(), "benchreport: wrote "); got != 2 {
		t.Errorf("got %d lines of output, want 2:\n%s", got, errOut.String())
	}
}

func TestGolden(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "results", "t2e1.csv"))
	if err != nil {
		t.Fatal(err)
	}
	dir := writeResults(t, string(data))
	if err := benchreport(new(bytes.Buffer), new(bytes.Buffer), []string{"-C", dir}); err != nil {
		t.Fatal(err)
	}

	want, err := os.ReadFile(filepath.Join("testdata", "t2e1.tex.golden"))
	if err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(filepath.Join(dir, "results", "t2e1.tex"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(string(want), string(got)); diff != "" {
		t.Errorf("t2e1.tex differs from golden (-want +got):\n%s", diff)
	}
}

func TestQuiet(t *testing.T) {
	dir := writeResults(t, t2e1)
	var out, errOut bytes.Buffer
	if err := benchreport(&out, &errOut, []string{"-C", dir}); err != nil {
		t.Fatal(err)
	}
	if out.Len() != 0 || errOut.Len() != 0 {
		t.Errorf("unexpected output:\nstdout:\n%s\nstderr:\n%s", out.String(), errOut.String())
	}
}

func TestDumpConfig(t *testing.T) {
	var out bytes.Buffer
	if err := benchreport(&out, new(bytes.Buffer), []string{"-dump-config"}); err != nil {
		t.Fatal(err)
	}
	cfg, err := report.ParseConfig(out.Bytes())
	if err != nil {
		t.Fatalf("%v\n%s", err, out.String())
	}
	if diff := cmp.Diff(report.DefaultConfig(), cfg); diff != "" {
		t.Errorf("dumped config differs (-want +got):\n%s", diff)
	}
}

func TestConfigFile(t *testing.T) {
	dir := writeResults(t, t2e1)
	path := filepath.Join(dir, "report.toml")
	const config = `
[[input]]
name = "t2e1"
path = "results/t2e1.csv"
schema = "grouped"

[[chart]]
path = "cubic.svg"
yscale = "log"

  [[chart.series]]
  input = "t2e1"
  problem = "foursum"
  algorithm = "cubic"
`
	if err := os.WriteFile(path, []byte(config), 0666); err != nil {
		t.Fatal(err)
	}
	if err := benchreport(new(bytes.Buffer), new(bytes.Buffer), []string{"-config", path, "-C", dir}); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "cubic.svg")); err != nil {
		t.Error(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "results", "t2e1.tex")); !os.IsNotExist(err) {
		t.Error("default table written with -config")
	}
}

func TestErrors(t *testing.T) {
	dir := writeResults(t, "problem,algorithm,n,time\nfoursum,quartic,ten,1.0\n")
	err := benchreport(new(bytes.Buffer), new(bytes.Buffer), []string{"-C", dir})
	var pe *benchcsv.ParseError
	if !errors.As(err, &pe) || pe.Line != 2 {
		t.Errorf("got %v, want parse error on line 2", err)
	}

	for _, args := range [][]string{
		{"-nosuchflag"},
		{"results/t2e1.csv"},
	} {
		var errOut bytes.Buffer
		err := benchreport(new(bytes.Buffer), &errOut, args)
		var ue *usageError
		if !errors.As(err, &ue) {
			t.Errorf("%q: got %v, want usage error", args, err)
			continue
		}
		if !strings.Contains(errOut.String(), "usage: benchreport") {
			t.Errorf("%q: usage not printed:\n%s", args, errOut.String())
		}
		if !strings.Contains(errOut.String(), ue.Error()) {
			t.Errorf("%q: error %q not printed:\n%s", args, ue, errOut.String())
		}
	}
	var errOut bytes.Buffer
	benchreport(new(bytes.Buffer), &errOut, []string{"stray"})
	if !strings.HasPrefix(errOut.String(), `benchreport: unexpected arguments ["stray"]`) {
		t.Errorf("stray argument not reported:\n%s", errOut.String())
	}

	err = benchreport(new(bytes.Buffer), new(bytes.Buffer), []string{"-config", filepath.Join(dir, "missing.toml")})
	if err == nil || errors.As(err, new(*usageError)) {
		t.Errorf("got %v, want a plain error", err)
	}
}

// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtab

import (
	"io"
	"math"

	"github.com/aaexam/benchreport/benchcsv"
	"github.com/aaexam/benchreport/internal/texttab"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var summaryHeader = []string{"# title", "param", "runs", "reps", "meanTime", "sdevTime", "meanResult", "sdevResult"}

// FormatSummary writes a fixed-width text table of records to w, one
// line per record, in the layout the experiment harness prints while
// it runs. Numbers are grouped by thousands. Fields that are NaN are
// left blank.
func FormatSummary(w io.Writer, records []benchcsv.Record) error {
	p := message.NewPrinter(language.English)
	num := func(v float64, format string) string {
		if math.IsNaN(v) {
			return ""
		}
		return p.Sprintf(format, v)
	}

	var tab texttab.Table
	tab.Row()
	for i, h := range summaryHeader {
		if i == 0 {
			tab.Cell(h, texttab.Left)
		} else {
			tab.Cell(h, texttab.Right, texttab.LeftMargin("  "))
		}
	}
	for _, r := range records {
		tab.Row().Cell(r.Name(), texttab.Left)
		for _, c := range []string{
			num(r.Parameter, "%.0f"),
			num(r.Runs, "%.0f"),
			num(r.Repetitions, "%.0f"),
			num(r.MeanTime, "%.0f"),
			num(r.SdevTime, "%.1f"),
			num(r.MeanResult, "%.0f"),
			num(r.SdevResult, "%.1f"),
		} {
			tab.Cell(c, texttab.Right, texttab.LeftMargin("  "))
		}
	}
	return tab.Format(w)
}

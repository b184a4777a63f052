// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package outfile

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	if err := os.WriteFile(path, []byte("old contents that are longer"), 0666); err != nil {
		t.Fatal(err)
	}
	err := Write(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "new")
		return err
	})
	if err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "new" {
		t.Errorf("got %q, want %q", got, "new")
	}
}

func TestWriteErrors(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0666); err != nil {
		t.Fatal(err)
	}

	// The parent "directory" is a regular file.
	bad := filepath.Join(blocker, "out.txt")
	err := Write(bad, func(w io.Writer) error { return nil })
	var oe *Error
	if !errors.As(err, &oe) {
		t.Fatalf("got %v, want *Error", err)
	}
	if oe.Path != bad {
		t.Errorf("got path %q, want %q", oe.Path, bad)
	}

	boom := errors.New("boom")
	err = Write(filepath.Join(dir, "ok.txt"), func(w io.Writer) error { return boom })
	if !errors.As(err, &oe) || !errors.Is(err, boom) {
		t.Errorf("got %v, want *Error wrapping %v", err, boom)
	}
}

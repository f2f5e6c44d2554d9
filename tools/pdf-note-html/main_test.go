// seehuhn.de/go/pdfnote - highlight compositor for PDF page notes
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/text/language"

	"seehuhn.de/go/pdfnote/tools/internal/cli"
)

const request = `
lang: fr
pages:
  - text: "première page"
  - text: "deuxième"
highlights:
  annotation:
    - {from: "0:0", to: "0:7", color: yellow}
`

func TestRun(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "req.yaml")
	if err := os.WriteFile(in, []byte(request), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "out.html")

	var pages cli.PageRange
	if err := pages.Set("1"); err != nil {
		t.Fatal(err)
	}
	cfg := &config{
		input:      in,
		output:     out,
		pages:      pages,
		standalone: true,
	}
	logBuf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(logBuf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	if err := run(cfg, logger); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	got := string(data)
	for _, want := range []string{
		`<html lang="fr">`,
		`<div class="page" data-page="1" lang="fr">`,
		`<mark style="background-color:#ffff00">premi&#232;re</mark> page`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output lacks %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "deuxi") {
		t.Error("page 2 was rendered")
	}
	if !strings.Contains(logBuf.String(), "première") {
		t.Errorf("highlighted text not logged: %q", logBuf.String())
	}

	// the output file exists now
	if err := run(cfg, logger); err == nil {
		t.Error("output file was overwritten")
	}
}

func TestRunNoPages(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "req.yaml")
	if err := os.WriteFile(in, []byte(request), 0o644); err != nil {
		t.Fatal(err)
	}
	var pages cli.PageRange
	pages.Set("5-")
	cfg := &config{input: in, output: filepath.Join(dir, "x.html"), pages: pages}
	if err := run(cfg, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))); err == nil {
		t.Error("expected an error")
	}
}

func TestWrite(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := write(buf, "<p>x</p>\n", false, language.English); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "<p>x</p>\n" {
		t.Errorf("got %q", buf.String())
	}

	buf.Reset()
	if err := write(buf, "<p>x</p>\n", true, language.Und); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "<!DOCTYPE html>\n<html>\n") {
		t.Errorf("got %q", buf.String())
	}
}

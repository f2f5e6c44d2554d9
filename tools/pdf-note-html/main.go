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
	"context"
	"flag"
	"fmt"
	"html"
	"io"
	"log/slog"
	"os"

	"golang.org/x/text/language"

	"seehuhn.de/go/pdfnote/compositor"
	"seehuhn.de/go/pdfnote/document"
	"seehuhn.de/go/pdfnote/highlight"
	"seehuhn.de/go/pdfnote/tools/internal/cli"
)

const tool = "pdf-note-html"

// config holds all command-line flag values.
type config struct {
	input      string
	output     string
	force      bool
	pages      cli.PageRange
	lang       string
	standalone bool
	logLevel   string
	logFormat  string
	profile    cli.Profile
}

func main() {
	cfg := config{pages: cli.AllPages}
	flag.StringVar(&cfg.output, "o", "-", "write output to `file`")
	flag.BoolVar(&cfg.force, "f", false, "overwrite output file if it exists")
	flag.Var(&cfg.pages, "p", "pages to render, e.g. 3, 2-5 or 4-")
	flag.StringVar(&cfg.lang, "lang", "", "language of the text, overrides the request file")
	flag.BoolVar(&cfg.standalone, "standalone", false, "write a complete HTML document")
	flag.StringVar(&cfg.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	flag.StringVar(&cfg.logFormat, "log-format", "auto", "log format (text, json, auto)")
	flag.StringVar(&cfg.profile.CPU, "cpuprofile", "", "write cpu profile to `file`")
	flag.StringVar(&cfg.profile.Memory, "memprofile", "", "write memory profile to `file`")
	showVersion := flag.Bool("version", false, "show version information and exit")

	flag.Usage = func() {
		w := flag.CommandLine.Output()
		fmt.Fprintf(w, "%s - render highlighted page text as HTML\n", tool)
		fmt.Fprintf(w, "%s\n\n", cli.Version(tool))
		fmt.Fprintf(w, "Usage:\n")
		fmt.Fprintf(w, "  %s [options] <request.yaml>\n\n", tool)
		fmt.Fprintf(w, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Println(cli.Version(tool))
		return
	}
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	cfg.input = flag.Arg(0)

	logger, err := cli.NewLogger(os.Stderr, cfg.logLevel, cfg.logFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", tool, err)
		os.Exit(2)
	}

	if err := run(&cfg, logger); err != nil {
		logger.Error("failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config, logger *slog.Logger) error {
	stop, err := cfg.profile.Start(logger)
	if err != nil {
		return err
	}
	defer stop()

	req, err := document.LoadRequest(cfg.input)
	if err != nil {
		return err
	}
	opt := req.Options()
	opt.Logger = logger
	if cfg.lang != "" {
		opt.Lang, err = language.Parse(cfg.lang)
		if err != nil {
			return fmt.Errorf("-lang: %w", err)
		}
	}
	logRequest(logger, req)

	pages := cfg.pages.Pages(req.Doc.NumPages())
	if len(pages) == 0 {
		return fmt.Errorf("no pages selected (document has %d pages)", req.Doc.NumPages())
	}

	body, err := compositor.New(opt).Document(req.Doc, req.Highlights, pages)
	if err != nil {
		return err
	}

	w, closer, err := cli.OpenOutput(cfg.output, cfg.force)
	if err != nil {
		return err
	}
	err = write(w, body, cfg.standalone, opt.Lang)
	if closer != nil {
		if cerr := closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

func write(w io.Writer, body string, standalone bool, lang language.Tag) error {
	if !standalone {
		_, err := io.WriteString(w, body)
		return err
	}

	htmlTag := "<html>"
	if lang != language.Und {
		htmlTag = `<html lang="` + html.EscapeString(lang.String()) + `">`
	}
	_, err := fmt.Fprintf(w, "<!DOCTYPE html>\n%s\n<head>\n<meta charset=\"utf-8\">\n</head>\n<body>\n%s</body>\n</html>\n",
		htmlTag, body)
	return err
}

// logRequest logs the highlighted text at debug level.
func logRequest(logger *slog.Logger, req *document.Request) {
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	for _, c := range highlight.Categories {
		for _, rng := range req.Highlights.Highlights[c] {
			logger.Debug("highlight",
				"category", c,
				"from", rng.Start,
				"to", rng.End,
				"color", rng.Color,
				"text", req.Doc.Quote(rng.Selection()))
		}
	}
}

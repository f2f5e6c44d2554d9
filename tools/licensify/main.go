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

// Licensify adds the license header to all Go source files of the module.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"seehuhn.de/go/pdfnote/tools/internal/cli"
)

const header = `// seehuhn.de/go/pdfnote - highlight compositor for PDF page notes
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

`

var errMissing = errors.New("files without license header")

func main() {
	check := flag.Bool("check", false, "only list files without header")
	flag.Parse()

	logger, err := cli.NewLogger(os.Stderr, "info", "auto")
	if err != nil {
		panic(err)
	}

	root := "."
	if flag.NArg() > 0 {
		root = flag.Arg(0)
	}
	if err := licensify(root, *check, logger); err != nil {
		logger.Error("licensify", "error", err)
		os.Exit(1)
	}
}

// licensify walks the tree below root and prepends the header to every Go
// file which lacks it.  Directories starting with "_" or "." are skipped,
// like the go tool does.  In check mode, no files are modified and
// errMissing is returned if any header is missing.
func licensify(root string, check bool, logger *slog.Logger) error {
	var missing int
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return fs.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") {
			return nil
		}

		body, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		fixed, ok := addHeader(body)
		switch {
		case fixed == nil:
			logger.Warn("unexpected file start", "file", path)
			return nil
		case ok:
			return nil
		case check:
			logger.Info("missing header", "file", path)
			missing++
			return nil
		}

		logger.Info("updating", "file", path)
		return os.WriteFile(path, fixed, 0o666)
	})
	if err != nil {
		return err
	}
	if missing > 0 {
		return fmt.Errorf("%d %w", missing, errMissing)
	}
	return nil
}

// addHeader returns the file contents with the license header.  The second
// return value is true if the header was present already.  If the file
// neither starts with the header nor with a package clause or doc comment,
// nil is returned.
func addHeader(body []byte) ([]byte, bool) {
	if bytes.HasPrefix(body, []byte(header)) {
		return body, true
	}
	if !bytes.HasPrefix(body, []byte("package ")) && !bytes.HasPrefix(body, []byte("// ")) {
		return nil, false
	}
	res := make([]byte, 0, len(header)+len(body))
	res = append(res, header...)
	res = append(res, body...)
	return res, false
}

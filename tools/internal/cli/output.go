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

package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// OpenOutput opens a file for writing.  The name "-" denotes standard
// output.  Existing files are only overwritten if force is set.
//
// The returned closer is nil for standard output.
func OpenOutput(name string, force bool) (io.Writer, io.Closer, error) {
	if name == "-" {
		return os.Stdout, nil, nil
	}

	flags := os.O_WRONLY | os.O_CREATE
	if force {
		flags |= os.O_TRUNC
	} else {
		flags |= os.O_EXCL
	}
	fd, err := os.OpenFile(name, flags, 0o666)
	if errors.Is(err, fs.ErrExist) {
		return nil, nil, fmt.Errorf("file %s already exists (use -f to overwrite)", name)
	} else if err != nil {
		return nil, nil, err
	}
	return fd, fd, nil
}

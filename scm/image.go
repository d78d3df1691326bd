/*
Copyright (C) 2026  The goscm Authors

    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package scm

import (
	"bufio"
	"fmt"
	"os"
	"sort"

	"github.com/dc0d/onexit"
	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz"
)

// dumpableBindings returns the names of the global frame's bindings in
// name order, skipping procedures and parsers: those close over Go state
// an image cannot carry. Every other kind is kept, dicts included (a dict
// is written in its printed form, #<dict>).
func (ip *Interpreter) dumpableBindings() []string {
	bindings := ip.Global.GlobalBindings()
	names := make([]string, 0, len(bindings))
	for name, v := range bindings {
		if v.IsProcedure() || v.IsParser() {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// writeImage serializes the dumpable globals as a sequence of
// "name = printed-form\n" lines -- the same textual form the reader
// already round-trips -- into w.
func (ip *Interpreter) writeImage(w *bufio.Writer) error {
	bindings := ip.Global.GlobalBindings()
	for _, name := range ip.dumpableBindings() {
		if _, err := fmt.Fprintf(w, "%s = %s\n", name, Display(bindings[name])); err != nil {
			return err
		}
	}
	return w.Flush()
}

// DumpImage writes a fast, lz4-compressed snapshot of the global
// environment's data bindings to path. Meant for frequent checkpoints:
// lz4 trades ratio for speed.
func (ip *Interpreter) DumpImage(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	zw := lz4.NewWriter(f)
	defer zw.Close()
	bw := bufio.NewWriter(zw)
	return ip.writeImage(bw)
}

// ExportImage writes an xz-compressed snapshot, trading dump speed for a
// much smaller archival file.
func (ip *Interpreter) ExportImage(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	zw, err := xz.NewWriter(f)
	if err != nil {
		return err
	}
	defer zw.Close()
	bw := bufio.NewWriter(zw)
	return ip.writeImage(bw)
}

// RegisterExitDump arranges for a final fast image dump when the process
// exits normally, so a crash-free shutdown never loses session state.
func RegisterExitDump(ip *Interpreter, path string) {
	onexit.Register(func() {
		_ = ip.DumpImage(path)
	})
}

func installImageBuiltins(ip *Interpreter) {
	Declare(ip, &Declaration{"dump-image", "writes a fast lz4-compressed snapshot of global data bindings", 1, 1,
		[]DeclarationParameter{{"path", "string", "output file path"}}, "boolean",
		func(args []Scmer) Scmer {
			if err := ip.DumpImage(args[0].Str()); err != nil {
				panic(newEvalError("dump-image: " + err.Error()))
			}
			return True
		}})

	Declare(ip, &Declaration{"export-image", "writes an xz-compressed archival snapshot of global data bindings", 1, 1,
		[]DeclarationParameter{{"path", "string", "output file path"}}, "boolean",
		func(args []Scmer) Scmer {
			if err := ip.ExportImage(args[0].Str()); err != nil {
				panic(newEvalError("export-image: " + err.Error()))
			}
			return True
		}})
}

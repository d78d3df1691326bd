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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDumpableBindingsExcludesProcedures(t *testing.T) {
	ip := NewInterpreter()
	eval(t, ip, `
		(define greeting "hi")
		(define (f x) x)
	`)
	names := ip.dumpableBindings()
	assert.Contains(t, names, "greeting")
	assert.NotContains(t, names, "f")
	assert.NotContains(t, names, "+") // a built-in is a procedure too
}

func TestDumpImageRoundTripsToDisk(t *testing.T) {
	ip := NewInterpreter()
	eval(t, ip, `(define answer 42)`)
	path := filepath.Join(t.TempDir(), "image.lz4")
	require.NoError(t, ip.DumpImage(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExportImageWritesArchive(t *testing.T) {
	ip := NewInterpreter()
	eval(t, ip, `(define answer 42)`)
	path := filepath.Join(t.TempDir(), "image.xz")
	require.NoError(t, ip.ExportImage(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

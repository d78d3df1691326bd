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
	"fmt"
	"runtime"

	units "github.com/docker/go-units"
)

// Stats reports the interpreter's memory footprint: the Go runtime's heap
// stats alongside the size of the global binding table, in human-readable
// form rather than raw byte counts.
func (ip *Interpreter) Stats() string {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	bindings := ip.Global.GlobalBindings()
	var globalSize uint64
	for name, v := range bindings {
		globalSize += uint64(len(name)) + approxSize(v)
	}
	return fmt.Sprintf(
		"heap in use: %s\nheap allocated total: %s\nglobal bindings: %d (%s)\ngoroutines: %d\n",
		units.HumanSize(float64(m.HeapInuse)),
		units.HumanSize(float64(m.TotalAlloc)),
		len(bindings),
		units.HumanSize(float64(globalSize)),
		runtime.NumGoroutine(),
	)
}

// approxSize gives a rough, non-recursive cost for a binding's value: a
// dashboard figure, not an exact object-graph accounting.
func approxSize(v Scmer) uint64 {
	switch v.Kind() {
	case KindString:
		return uint64(len(v.Str()))
	case KindSymbol:
		return uint64(len(v.Symbol()))
	case KindDict:
		return uint64(v.Dict().len()) * 32
	default:
		return 16
	}
}

func installStatsBuiltins(ip *Interpreter) {
	Declare(ip, &Declaration{"stats", "reports interpreter memory and goroutine statistics", 0, 0,
		nil, "string",
		func(args []Scmer) Scmer { return NewString(ip.Stats()) }})
}

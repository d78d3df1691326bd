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
	"math"
	"strconv"
	"strings"
)

// Display renders v in its printed form. Pair printing
// assumes an acyclic graph -- user data never forms cycles in the
// minimal dialect; only set!-reachable environment
// self-references could cycle, and those are never printed.
func Display(v Scmer) string {
	var b strings.Builder
	writeScmer(&b, v)
	return b.String()
}

func writeScmer(b *strings.Builder, v Scmer) {
	switch v.Kind() {
	case KindNil:
		b.WriteString("()")
	case KindNumber:
		f := v.Number()
		if f == math.Trunc(f) && math.Abs(f) < 1e21 {
			b.WriteString(strconv.FormatFloat(f, 'f', -1, 64))
		} else {
			b.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
		}
	case KindString:
		b.WriteByte('"')
		b.WriteString(v.Str())
		b.WriteByte('"')
	case KindBoolean:
		if v.Bool() {
			b.WriteString("#t")
		} else {
			b.WriteString("#f")
		}
	case KindSymbol:
		b.WriteString(string(v.Symbol()))
	case KindPair:
		b.WriteByte('(')
		writePairBody(b, v)
		b.WriteByte(')')
	case KindBuiltin:
		b.WriteString("#<builtin>")
	case KindClosure:
		b.WriteString("#<closure>")
	case KindThunk:
		b.WriteString("#<thunk>")
	case KindDict:
		b.WriteString("#<dict>")
	case KindParser:
		b.WriteString("#<parser>")
	}
}

func writePairBody(b *strings.Builder, v Scmer) {
	first := true
	for {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		writeScmer(b, v.Car())
		cdr := v.Cdr()
		switch cdr.Kind() {
		case KindNil:
			return
		case KindPair:
			v = cdr
		default:
			b.WriteString(" . ")
			writeScmer(b, cdr)
			return
		}
	}
}

// raw renders strings without surrounding quotes; used by the `log`
// builtin, which prints strings raw and everything else via Display
// (the `log` built-in).
func raw(v Scmer) string {
	if v.IsString() {
		return v.Str()
	}
	return Display(v)
}

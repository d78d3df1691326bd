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
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

func installStringBuiltins(ip *Interpreter) {
	Declare(ip, &Declaration{"string-append", "concatenates its string arguments", 0, -1,
		[]DeclarationParameter{{"s", "string", "pieces"}}, "string",
		func(args []Scmer) Scmer {
			var b strings.Builder
			for _, a := range args {
				b.WriteString(a.Str())
			}
			return NewString(b.String())
		}})

	Declare(ip, &Declaration{"string-length", "number of bytes in the string", 1, 1,
		[]DeclarationParameter{{"s", "string", "value"}}, "number",
		func(args []Scmer) Scmer { return NewNumber(float64(len(args[0].Str()))) }})

	Declare(ip, &Declaration{"string-upcase", "uppercases the string", 1, 1,
		[]DeclarationParameter{{"s", "string", "value"}}, "string",
		func(args []Scmer) Scmer { return NewString(strings.ToUpper(args[0].Str())) }})

	Declare(ip, &Declaration{"string-downcase", "lowercases the string", 1, 1,
		[]DeclarationParameter{{"s", "string", "value"}}, "string",
		func(args []Scmer) Scmer { return NewString(strings.ToLower(args[0].Str())) }})

	Declare(ip, &Declaration{"string->number", "parses a string as a number, () on failure", 1, 1,
		[]DeclarationParameter{{"s", "string", "text to parse"}}, "any",
		func(args []Scmer) Scmer {
			f, err := strconv.ParseFloat(args[0].Str(), 64)
			if err != nil {
				return Nil
			}
			return NewNumber(f)
		}})

	Declare(ip, &Declaration{"number->string", "renders a number the same way the printer would", 1, 1,
		[]DeclarationParameter{{"n", "number", "value"}}, "string",
		func(args []Scmer) Scmer { return NewString(Display(args[0])) }})

	Declare(ip, &Declaration{"string=?", "true iff the strings are byte-equal", 2, -1,
		[]DeclarationParameter{{"s", "string", "operands"}}, "boolean",
		func(args []Scmer) Scmer {
			for i := 1; i < len(args); i++ {
				if args[i-1].Str() != args[i].Str() {
					return False
				}
			}
			return True
		}})

	// sort-strings orders a list of strings using a locale-aware collator
	// rather than a raw byte compare, so accents and case sort the way a
	// reader of that locale expects.
	Declare(ip, &Declaration{"sort-strings", "sorts a list of strings by locale collation order", 1, 2,
		[]DeclarationParameter{
			{"lst", "list", "strings to sort"},
			{"locale", "string", "BCP 47 tag, e.g. \"de\"; defaults to \"und\" (root collation)"},
		}, "list",
		func(args []Scmer) Scmer {
			tag := language.Und
			if len(args) == 2 {
				parsed, err := language.Parse(args[1].Str())
				if err != nil {
					panic(newEvalError("sort-strings: invalid locale: " + err.Error()))
				}
				tag = parsed
			}
			items := ListToSlice(args[0])
			strs := make([]string, len(items))
			for i, it := range items {
				strs[i] = it.Str()
			}
			col := collate.New(tag)
			sort.Slice(strs, func(i, j int) bool { return col.CompareString(strs[i], strs[j]) < 0 })
			out := make([]Scmer, len(strs))
			for i, s := range strs {
				out[i] = NewString(s)
			}
			return SliceToList(out)
		}})
}

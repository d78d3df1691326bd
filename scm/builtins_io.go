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
	"strings"
)

func installIOBuiltins(ip *Interpreter) {
	Declare(ip, &Declaration{"log", "formats each argument (strings raw, others via the printer) and prints one line", 0, -1,
		[]DeclarationParameter{{"x", "any", "values to print"}}, "any",
		func(args []Scmer) Scmer {
			parts := make([]string, len(args))
			for i, a := range args {
				parts[i] = raw(a)
			}
			fmt.Println(strings.Join(parts, " "))
			return Nil
		}})

	Declare(ip, &Declaration{"help", "lists built-ins, or documents one by name", 0, 1,
		[]DeclarationParameter{{"name", "string", "optional built-in name"}}, "string",
		func(args []Scmer) Scmer {
			name := ""
			if len(args) == 1 {
				name = args[0].Str()
			}
			text := Help(ip, name)
			fmt.Print(text)
			return NewString(text)
		}})
}

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

func installListBuiltins(ip *Interpreter) {
	Declare(ip, &Declaration{"cons", "builds a pair", 2, 2,
		[]DeclarationParameter{{"car", "any", "head"}, {"cdr", "any", "tail"}}, "pair",
		func(args []Scmer) Scmer { return NewPair(args[0], args[1]) }})

	Declare(ip, &Declaration{"car", "the first element of a pair", 1, 1,
		[]DeclarationParameter{{"p", "pair", "the pair"}}, "any",
		func(args []Scmer) Scmer { return args[0].Car() }})

	Declare(ip, &Declaration{"cdr", "everything but the first element of a pair", 1, 1,
		[]DeclarationParameter{{"p", "pair", "the pair"}}, "any",
		func(args []Scmer) Scmer { return args[0].Cdr() }})

	Declare(ip, &Declaration{"list", "builds a proper list from its arguments", 0, -1,
		[]DeclarationParameter{{"x", "any", "elements"}}, "list",
		func(args []Scmer) Scmer { return SliceToList(args) }})

	Declare(ip, &Declaration{"null?", "true iff the value is the empty list", 1, 1,
		[]DeclarationParameter{{"v", "any", "value"}}, "boolean",
		func(args []Scmer) Scmer { return NewBool(args[0].IsNil()) }})

	Declare(ip, &Declaration{"pair?", "true iff the value is a cons cell", 1, 1,
		[]DeclarationParameter{{"v", "any", "value"}}, "boolean",
		func(args []Scmer) Scmer { return NewBool(args[0].IsPair()) }})

	Declare(ip, &Declaration{"list?", "true iff the value is a proper list", 1, 1,
		[]DeclarationParameter{{"v", "any", "value"}}, "boolean",
		func(args []Scmer) Scmer { return NewBool(IsProperList(args[0])) }})

	Declare(ip, &Declaration{"symbol?", "true iff the value is a symbol", 1, 1,
		[]DeclarationParameter{{"v", "any", "value"}}, "boolean",
		func(args []Scmer) Scmer { return NewBool(args[0].IsSymbol()) }})

	Declare(ip, &Declaration{"procedure?", "true iff the value can be applied", 1, 1,
		[]DeclarationParameter{{"v", "any", "value"}}, "boolean",
		func(args []Scmer) Scmer { return NewBool(args[0].IsProcedure()) }})

	// apply proc arg... list -- calls proc with the intermediate arguments
	// followed by the elements of the final (proper-list) argument.
	Declare(ip, &Declaration{"apply", "calls proc with args followed by the elements of a trailing list", 2, -1,
		[]DeclarationParameter{
			{"proc", "func", "the procedure to call"},
			{"args...", "any", "leading arguments"},
			{"list", "list", "trailing arguments as a proper list"},
		}, "any",
		func(args []Scmer) Scmer {
			proc := args[0]
			middle := args[1 : len(args)-1]
			last := args[len(args)-1]
			if !last.IsNil() && !last.IsPair() {
				panic(newEvalError("apply: last argument must be a list"))
			}
			tail := ListToSlice(last)
			callArgs := make([]Scmer, 0, len(middle)+len(tail))
			callArgs = append(callArgs, middle...)
			callArgs = append(callArgs, tail...)
			return Apply(proc, callArgs)
		}})
}

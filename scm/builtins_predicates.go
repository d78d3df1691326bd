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

import "reflect"

// scmEq implements the single equality notion required of both
// eq? and eqv?: structural comparison for numbers, booleans, nil and
// symbols (by name); identity comparison for pairs and procedures.
// Numeric comparison is raw Go `==`, so NaN never equals itself
// (host-dependent on purpose).
func scmEq(a, b Scmer) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch a.Kind() {
	case KindNil:
		return true
	case KindNumber:
		return a.Number() == b.Number()
	case KindString:
		return a.Str() == b.Str()
	case KindBoolean:
		return a.Bool() == b.Bool()
	case KindSymbol:
		return a.Symbol() == b.Symbol()
	case KindPair:
		return a.Pair() == b.Pair()
	case KindClosure:
		return a.Closure() == b.Closure()
	case KindBuiltin:
		return reflect.ValueOf(a.Builtin()).Pointer() == reflect.ValueOf(b.Builtin()).Pointer()
	default:
		return false
	}
}

func installPredicateBuiltins(ip *Interpreter) {
	Declare(ip, &Declaration{"eq?", "structural equality on atoms, identity on pairs/procedures", 2, 2,
		[]DeclarationParameter{{"a", "any", "left"}, {"b", "any", "right"}}, "boolean",
		func(args []Scmer) Scmer { return NewBool(scmEq(args[0], args[1])) }})

	Declare(ip, &Declaration{"eqv?", "same as eq? in this minimal dialect", 2, 2,
		[]DeclarationParameter{{"a", "any", "left"}, {"b", "any", "right"}}, "boolean",
		func(args []Scmer) Scmer { return NewBool(scmEq(args[0], args[1])) }})
}

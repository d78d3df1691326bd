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

import "math"

func installNumericBuiltins(ip *Interpreter) {
	Declare(ip, &Declaration{"+", "sums its arguments; (+) is 0", 0, -1,
		[]DeclarationParameter{{"n", "number", "addends"}}, "number",
		func(args []Scmer) Scmer {
			sum := 0.0
			for _, a := range args {
				sum += a.Number()
			}
			return NewNumber(sum)
		}})

	Declare(ip, &Declaration{"*", "multiplies its arguments; (*) is 1", 0, -1,
		[]DeclarationParameter{{"n", "number", "factors"}}, "number",
		func(args []Scmer) Scmer {
			product := 1.0
			for _, a := range args {
				product *= a.Number()
			}
			return NewNumber(product)
		}})

	Declare(ip, &Declaration{"-", "subtracts, or negates with one argument", 1, -1,
		[]DeclarationParameter{{"n", "number", "minuend then subtrahends"}}, "number",
		func(args []Scmer) Scmer {
			if len(args) == 1 {
				return NewNumber(-args[0].Number())
			}
			result := args[0].Number()
			for _, a := range args[1:] {
				result -= a.Number()
			}
			return NewNumber(result)
		}})

	Declare(ip, &Declaration{"/", "divides, or inverts with one argument", 1, -1,
		[]DeclarationParameter{{"n", "number", "dividend then divisors"}}, "number",
		func(args []Scmer) Scmer {
			if len(args) == 1 {
				return NewNumber(1 / args[0].Number())
			}
			result := args[0].Number()
			for _, a := range args[1:] {
				result /= a.Number()
			}
			return NewNumber(result)
		}})

	Declare(ip, &Declaration{"abs", "absolute value", 1, 1,
		[]DeclarationParameter{{"n", "number", "value"}}, "number",
		func(args []Scmer) Scmer { return NewNumber(math.Abs(args[0].Number())) }})

	Declare(ip, &Declaration{"sqrt", "square root", 1, 1,
		[]DeclarationParameter{{"n", "number", "value"}}, "number",
		func(args []Scmer) Scmer { return NewNumber(math.Sqrt(args[0].Number())) }})

	Declare(ip, &Declaration{"floor", "round toward negative infinity", 1, 1,
		[]DeclarationParameter{{"n", "number", "value"}}, "number",
		func(args []Scmer) Scmer { return NewNumber(math.Floor(args[0].Number())) }})

	Declare(ip, &Declaration{"ceiling", "round toward positive infinity", 1, 1,
		[]DeclarationParameter{{"n", "number", "value"}}, "number",
		func(args []Scmer) Scmer { return NewNumber(math.Ceil(args[0].Number())) }})

	Declare(ip, &Declaration{"truncate", "round toward zero", 1, 1,
		[]DeclarationParameter{{"n", "number", "value"}}, "number",
		func(args []Scmer) Scmer { return NewNumber(math.Trunc(args[0].Number())) }})

	Declare(ip, &Declaration{"round", "round to nearest, ties to even", 1, 1,
		[]DeclarationParameter{{"n", "number", "value"}}, "number",
		func(args []Scmer) Scmer { return NewNumber(math.RoundToEven(args[0].Number())) }})

	Declare(ip, &Declaration{"remainder", "remainder, sign of the dividend", 2, 2,
		[]DeclarationParameter{{"a", "number", "dividend"}, {"b", "number", "divisor"}}, "number",
		func(args []Scmer) Scmer {
			return NewNumber(math.Mod(args[0].Number(), args[1].Number()))
		}})

	Declare(ip, &Declaration{"modulo", "modulo, sign of the divisor", 2, 2,
		[]DeclarationParameter{{"a", "number", "dividend"}, {"b", "number", "divisor"}}, "number",
		func(args []Scmer) Scmer {
			a, b := args[0].Number(), args[1].Number()
			m := math.Mod(a, b)
			if m != 0 && (m < 0) != (b < 0) {
				m += b
			}
			return NewNumber(m)
		}})

	Declare(ip, &Declaration{"<", "true iff every adjacent pair is strictly increasing", 1, -1,
		[]DeclarationParameter{{"n", "number", "operands"}}, "boolean",
		func(args []Scmer) Scmer { return NewBool(chain(args, func(a, b float64) bool { return a < b })) }})

	Declare(ip, &Declaration{">", "true iff every adjacent pair is strictly decreasing", 1, -1,
		[]DeclarationParameter{{"n", "number", "operands"}}, "boolean",
		func(args []Scmer) Scmer { return NewBool(chain(args, func(a, b float64) bool { return a > b })) }})

	Declare(ip, &Declaration{"=", "true iff every adjacent pair is numerically equal", 1, -1,
		[]DeclarationParameter{{"n", "number", "operands"}}, "boolean",
		func(args []Scmer) Scmer { return NewBool(chain(args, func(a, b float64) bool { return a == b })) }})
}

func chain(args []Scmer, rel func(a, b float64) bool) bool {
	for i := 0; i+1 < len(args); i++ {
		if !rel(args[i].Number(), args[i+1].Number()) {
			return false
		}
	}
	return true
}

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

// MaxExpansionPasses bounds the expander's fixed-point loop.
// notes that macro non-termination is undetected in the minimal dialect
// and that implementations MAY cap the number of passes; we do, so a
// runaway macro fails loudly instead of hanging the REPL.
const MaxExpansionPasses = 10000

// MacroTable is process-global per interpreter instance: a
// mapping from identifier to the transformer Closure registered by
// define-macro. Kept as a field on Interpreter rather than a package
// global so multiple interpreters can coexist.
type MacroTable struct {
	macros map[Symbol]*Closure
}

func newMacroTable() *MacroTable {
	return &MacroTable{macros: make(map[Symbol]*Closure)}
}

func (t *MacroTable) define(name Symbol, transformer *Closure) {
	t.macros[name] = transformer
}

func (t *MacroTable) lookup(name Symbol) (*Closure, bool) {
	c, ok := t.macros[name]
	return c, ok
}

// Expand rewrites expr until no subtree has a macro-table symbol at its
// head. Literal quote/quasiquote templates are left
// untouched; unquoted subforms of a quasiquote are expanded later, when
// the analyzer walks the template.
func Expand(t *MacroTable, expr Scmer) Scmer {
	for pass := 0; pass < MaxExpansionPasses; pass++ {
		next, changed := expandOnce(t, expr)
		expr = next
		if !changed {
			return expr
		}
	}
	panic(newEvalError("macro expansion did not converge (possible non-terminating macro)"))
}

func expandOnce(t *MacroTable, expr Scmer) (Scmer, bool) {
	if !expr.IsPair() {
		return expr, false
	}
	if head, ok := HeadSymbol(expr); ok && (head == "quote" || head == "quasiquote") {
		return expr, false
	}
	if head, ok := HeadSymbol(expr); ok {
		if transformer, isMacro := t.lookup(head); isMacro {
			args := ListToSlice(expr.Cdr())
			result := Apply(transformer, args)
			return result, true
		}
	}
	car, carChanged := expandOnce(t, expr.Car())
	cdr, cdrChanged := expandOnce(t, expr.Cdr())
	if carChanged || cdrChanged {
		return NewPair(car, cdr), true
	}
	return expr, false
}

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

// qqBuilder is a compiled quasiquote template node: given the frame
// active at evaluation time it produces the (non-tail) value it builds.
// Nested quasiquotes are not level-tracked
// -- only one level of unquote/unquote-splicing is ever recognised.
type qqBuilder func(env *Env) Scmer

// analyzeQuasiquote compiles a `template in tail position: it is never
// itself a tail call, so it always returns Done.
func analyzeQuasiquote(ip *Interpreter, template Scmer) Expr {
	if head, ok := HeadSymbol(template); ok && head == "unquote-splicing" {
		panic(newEvalError("unquote-splicing: not valid outside of a list template"))
	}
	build := compileQQNode(ip, template)
	return func(env *Env) Result {
		return Done(build(env))
	}
}

func compileQQNode(ip *Interpreter, template Scmer) qqBuilder {
	if !template.IsPair() {
		// Atom (including Nil): yields verbatim.
		v := template
		return func(env *Env) Scmer { return v }
	}

	if head, ok := HeadSymbol(template); ok && head == "unquote" {
		arg := template.Cdr()
		if !arg.IsPair() || !arg.Cdr().IsNil() {
			panic(newEvalError("unquote: expected exactly one argument"))
		}
		sub := ip.analyzeExpanded(arg.Car(), false)
		return func(env *Env) Scmer {
			return Force(sub(env))
		}
	}

	// Generic list/pair template: walk the spine, splicing where asked.
	return compileQQSpine(ip, template)
}

func compileQQSpine(ip *Interpreter, spine Scmer) qqBuilder {
	if !spine.IsPair() {
		// Dotted tail, or the Nil terminator of a proper list.
		return compileQQNode(ip, spine)
	}

	// A dotted tail `. ,expr` reads as (unquote expr), structurally
	// identical to a two-element list headed by the symbol unquote --
	// compile it as a template node, not as a spine element, or the
	// tail evaluates to a literal (unquote expr) list instead of expr's
	// value.
	if head, ok := HeadSymbol(spine); ok && head == "unquote" {
		return compileQQNode(ip, spine)
	}

	elem := spine.Car()
	rest := spine.Cdr()

	if head, ok := HeadSymbol(elem); ok && head == "unquote-splicing" {
		arg := elem.Cdr()
		if !arg.IsPair() || !arg.Cdr().IsNil() {
			panic(newEvalError("unquote-splicing: expected exactly one argument"))
		}
		sub := ip.analyzeExpanded(arg.Car(), false)
		restBuild := compileQQSpine(ip, rest)
		return func(env *Env) Scmer {
			spliced := Force(sub(env))
			if !spliced.IsNil() && !spliced.IsPair() {
				panic(newEvalError("unquote-splicing: expected a list"))
			}
			items := ListToSlice(spliced)
			tail := restBuild(env)
			result := tail
			for i := len(items) - 1; i >= 0; i-- {
				result = NewPair(items[i], result)
			}
			return result
		}
	}

	elemBuild := compileQQNode(ip, elem)
	restBuild := compileQQSpine(ip, rest)
	return func(env *Env) Scmer {
		return NewPair(elemBuild(env), restBuild(env))
	}
}

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

// Result is the two-state trampoline value: either a
// final Done(value), or a Pending step that -- when called -- performs
// one more unit of work and yields another Result. A tail-position
// application returns Pending instead of calling straight through, so
// mutually tail-recursive procedures run as an iterative loop over
// thunks in Force, using bounded host stack no matter how many logical
// calls are chained.
type Result struct {
	value   Scmer
	step    func() Result
	pending bool
}

// Done wraps a final value.
func Done(v Scmer) Result { return Result{value: v} }

// PendingStep wraps a deferred step. Only code analyzed with tail=true
// may return a Pending Result -- every other consumer of a Result (an
// if-condition, an operand, a builtin argument) must call Force on it
// immediately, so Pending is never observed outside of a tail return.
func PendingStep(step func() Result) Result {
	return Result{step: step, pending: true}
}

// Force drives a Result to completion, repeatedly calling Pending steps
// until one reports Done. This is the only place unbounded tail
// recursion turns into a bounded-stack loop.
func Force(r Result) Scmer {
	for r.pending {
		r = r.step()
	}
	return r.value
}

// Expr is a compiled expression: Analyze's output. Given the frame active
// at evaluation time, it produces a trampoline Result.
type Expr func(env *Env) Result

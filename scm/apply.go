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

// applyResult implements the application protocol: a
// Builtin call always finishes immediately; a Closure call binds a fresh
// frame and runs the compiled body, which may itself return Pending when
// its own tail position is another application -- applyResult does not
// force that away, so a chain of tail calls through Apply stays flat.
func applyResult(proc Scmer, args []Scmer) Result {
	switch proc.Kind() {
	case KindBuiltin:
		return Done(proc.Builtin()(args))
	case KindClosure:
		c := proc.Closure()
		frame := bindArgs(c, args)
		return c.Body(frame)
	default:
		panic(newEvalError("Not a function"))
	}
}

// Apply calls proc with args and drives the trampoline to a final value.
// Used wherever a call happens outside of any tail position: the macro
// expander invoking a transformer, the `apply` builtin, and any other
// builtin that calls back into Scheme values (e.g. a user comparator).
func Apply(proc Scmer, args []Scmer) Scmer {
	return Force(applyResult(proc, args))
}

// bindArgs builds the fresh activation frame for a call to c. Parameters
// bind positionally; a rest parameter collects the remaining arguments as
// a freshly built proper list. Missing fixed arguments simply leave that
// slot unbound (the minimal dialect
// does not require arity checks); extra arguments without a rest
// parameter are silently dropped.
func bindArgs(c *Closure, args []Scmer) *Env {
	frame := NewChildEnv(c.Env)
	n := len(c.Params)
	for i, name := range c.Params {
		if i >= len(args) {
			break
		}
		frame.Define(Symbol(name), args[i])
	}
	if c.HasRest {
		var restArgs []Scmer
		if len(args) > n {
			restArgs = args[n:]
		}
		frame.Define(Symbol(c.Rest), SliceToList(restArgs))
	}
	return frame
}

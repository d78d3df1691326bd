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

// EvalError is the error type the expander, the analyzer and the builtins
// panic with; the reader panics with *ReadError and failed lookups with
// *UnboundError. The REPL (and any driver) recovers these at the
// top-level-form boundary; anything else that escapes the recover is a
// genuine bug and is allowed to crash.
type EvalError struct {
	Message string
}

func (e *EvalError) Error() string { return e.Message }

func newEvalError(msg string) *EvalError { return &EvalError{Message: msg} }

// UnboundError is the error raised by a failed variable lookup or set!,
// kept as a distinct type so callers can tell "no such binding" apart
// from other evaluation failures.
type UnboundError struct {
	Name string
	Set  bool // true for "set!: Unbound variable"
}

func (e *UnboundError) Error() string {
	if e.Set {
		return "set!: Unbound variable: " + e.Name
	}
	return "Unbound variable: " + e.Name
}

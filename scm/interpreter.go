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

// Interpreter bundles one instance's global frame and macro table so
// that several interpreters can coexist in one process without sharing
// state (avoid true global state).
type Interpreter struct {
	Global       *Env
	Macros       *MacroTable
	declarations map[string]*Declaration
}

// NewInterpreter creates a fresh interpreter with an empty global frame
// and macro table, then installs the required built-ins.
func NewInterpreter() *Interpreter {
	ip := &Interpreter{
		Global:       NewGlobalEnv(),
		Macros:       newMacroTable(),
		declarations: make(map[string]*Declaration),
	}
	installBuiltins(ip)
	return ip
}

// analyzeExpanded is the one entry point every recursive compile step
// (application operands, if-branches, lambda bodies, unquote subforms)
// should use: it expands macros to a fixed point and then analyzes the
// result. Top-level forms go through the same path via EvalTopLevel.
func (ip *Interpreter) analyzeExpanded(expr Scmer, tail bool) Expr {
	return Analyze(ip, Expand(ip.Macros, expr), tail)
}

// EvalTopLevel runs one top-level form through read's output: expand,
// analyze, evaluate against the global frame, drive the trampoline to a
// value. This is the REPL's and the script runner's only entry point.
func (ip *Interpreter) EvalTopLevel(form Scmer) Scmer {
	compiled := ip.analyzeExpanded(form, true)
	return Force(compiled(ip.Global))
}

// EvalAll reads and evaluates every form in source in turn, returning the
// last value (or Nil if source contained no forms). Definitions persist
// in the global frame between forms.
func (ip *Interpreter) EvalAll(sourceName, source string) Scmer {
	forms := ReadAll(sourceName, source)
	result := Nil
	for _, form := range forms {
		result = ip.EvalTopLevel(form)
	}
	return result
}

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
	"sort"
	"strings"
)

// DeclarationParameter documents one built-in's parameter, shown by help.
type DeclarationParameter struct {
	Name string
	Type string // any | string | number | func | list | pair | dict | parser
	Desc string
}

// Declaration self-documents one built-in: every built-in is installed
// through Declare so (help) and (help "name") can introspect the whole
// environment.
type Declaration struct {
	Name         string
	Desc         string
	MinParameter int
	MaxParameter int // -1 means unbounded (n-ary)
	Params       []DeclarationParameter
	Returns      string // any | string | number | list | pair | boolean | dict | parser
	Fn           Builtin
}

func arityChecked(d *Declaration) Builtin {
	fn := d.Fn
	name := d.Name
	min, max := d.MinParameter, d.MaxParameter
	return func(args []Scmer) Scmer {
		if len(args) < min || (max >= 0 && len(args) > max) {
			panic(newEvalError(fmt.Sprintf("%s: expected %s arguments, got %d", name, arityRange(min, max), len(args))))
		}
		return fn(args)
	}
}

func arityRange(min, max int) string {
	if max < 0 {
		return fmt.Sprintf("at least %d", min)
	}
	if min == max {
		return fmt.Sprintf("%d", min)
	}
	return fmt.Sprintf("%d-%d", min, max)
}

// Declare registers def's builtin both in the interpreter's declaration
// table (for help) and in the global frame (so Scheme code can call it).
func Declare(ip *Interpreter, def *Declaration) {
	ip.declarations[def.Name] = def
	ip.Global.Define(Symbol(def.Name), NewBuiltin(arityChecked(def)))
}

// Help prints either the full built-in catalogue (fn == "") or one
// built-in's detailed documentation.
func Help(ip *Interpreter, fn string) string {
	var b strings.Builder
	if fn == "" {
		b.WriteString("Available functions:\n\n")
		names := make([]string, 0, len(ip.declarations))
		for name := range ip.declarations {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			def := ip.declarations[name]
			first := strings.SplitN(def.Desc, "\n", 2)[0]
			b.WriteString("  " + name + ": " + first + "\n")
		}
		b.WriteString("\nget further information with (help \"functionname\")\n")
		return b.String()
	}
	def, ok := ip.declarations[fn]
	if !ok {
		panic(newEvalError("function not found: " + fn))
	}
	b.WriteString("Help for: " + def.Name + "\n===\n\n" + def.Desc + "\n\n")
	b.WriteString(fmt.Sprintf("Allowed number of parameters: %s\n\n", arityRange(def.MinParameter, def.MaxParameter)))
	for _, p := range def.Params {
		b.WriteString(" - " + p.Name + " (" + p.Type + "): " + p.Desc + "\n")
	}
	if def.Returns != "" {
		b.WriteString("Returns: " + def.Returns + "\n")
	}
	return b.String()
}

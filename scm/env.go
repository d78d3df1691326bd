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
	nlrmap "github.com/launix-de/NonLockingReadMap"
)

// binding is the element type stored in the global frame's
// NonLockingReadMap: read-mostly, rare writes from top-level define/set!,
// and -- once the network REPL is serving -- read from many connection
// goroutines concurrently while the evaluation goroutine occasionally
// writes.
type binding struct {
	name  string
	value Scmer
}

func (b *binding) GetKey() string { return b.name }

// ComputeSize satisfies NonLockingReadMap's Sizable constraint. (stats)
// does not call it; it sizes bindings with its own approxSize.
func (b *binding) ComputeSize() uint {
	return 32 + uint(len(b.name))
}

// Env is one lexical scope: an identifier -> value mapping plus an
// optional parent. The root Env (outer == nil) is the global frame and
// is backed by a lock-free read-optimized map so concurrent REPL
// connections can look up and shadow globals without blocking each
// other; every other frame is a private map owned by the single call
// that pushed it.
type Env struct {
	vars   map[Symbol]Scmer
	outer  *Env
	global *nlrmap.NonLockingReadMap[*binding, string]
}

// NewGlobalEnv creates the root frame of an interpreter instance. Each
// instance gets its own macro table and global frame, so multiple
// interpreters can coexist in one process.
func NewGlobalEnv() *Env {
	m := nlrmap.New[*binding, string]()
	return &Env{global: &m}
}

// NewChildEnv pushes a fresh frame parented by outer -- done on every
// procedure call to bind parameters to arguments.
func NewChildEnv(outer *Env) *Env {
	return &Env{vars: make(map[Symbol]Scmer), outer: outer}
}

func (e *Env) isGlobal() bool { return e.outer == nil }

func (e *Env) hasLocal(name Symbol) bool {
	if e.isGlobal() {
		return e.global.Get(string(name)) != nil
	}
	_, ok := e.vars[name]
	return ok
}

func (e *Env) getLocal(name Symbol) Scmer {
	if e.isGlobal() {
		b := e.global.Get(string(name))
		return (*b).value
	}
	return e.vars[name]
}

// FindFrame walks parent links for the nearest frame (including e
// itself) that holds name, or returns nil if no frame does.
func (e *Env) FindFrame(name Symbol) *Env {
	for f := e; f != nil; f = f.outer {
		if f.hasLocal(name) {
			return f
		}
	}
	return nil
}

// Lookup resolves a symbol reference, panicking with *UnboundError on
// failure.
func (e *Env) Lookup(name Symbol) Scmer {
	f := e.FindFrame(name)
	if f == nil {
		panic(&UnboundError{Name: string(name)})
	}
	return f.getLocal(name)
}

// Define writes into e itself -- no parent walk.
func (e *Env) Define(name Symbol, value Scmer) {
	if e.isGlobal() {
		e.global.Set(&binding{name: string(name), value: value})
		return
	}
	e.vars[name] = value
}

// Set implements set!: find the frame owning name and mutate it there;
// panic with *UnboundError (the "set!: Unbound variable" variant) if no
// frame holds the binding.
func (e *Env) Set(name Symbol, value Scmer) {
	f := e.FindFrame(name)
	if f == nil {
		panic(&UnboundError{Name: string(name), Set: true})
	}
	f.Define(name, value)
}

// GlobalBindings returns every name/value pair currently in the global
// frame, used by the image dump/export builtins and (stats).
func (e *Env) GlobalBindings() map[string]Scmer {
	root := e
	for root.outer != nil {
		root = root.outer
	}
	out := make(map[string]Scmer)
	for _, b := range root.global.GetAll() {
		out[(*b).name] = (*b).value
	}
	return out
}

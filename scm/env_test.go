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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChildEnvShadowsGlobal(t *testing.T) {
	global := NewGlobalEnv()
	global.Define("x", NewNumber(1))
	child := NewChildEnv(global)
	child.Define("x", NewNumber(2))

	assert.Equal(t, NewNumber(2), child.Lookup("x"))
	assert.Equal(t, NewNumber(1), global.Lookup("x"))
}

func TestSetMutatesOwningFrame(t *testing.T) {
	global := NewGlobalEnv()
	global.Define("x", NewNumber(1))
	child := NewChildEnv(global)
	child.Set("x", NewNumber(9))

	assert.Equal(t, NewNumber(9), global.Lookup("x"))
	assert.False(t, child.hasLocal("x"))
}

func TestLookupUnboundVariable(t *testing.T) {
	global := NewGlobalEnv()
	defer func() {
		r := recover()
		require.NotNil(t, r)
		ue, ok := r.(*UnboundError)
		require.True(t, ok)
		assert.False(t, ue.Set)
	}()
	global.Lookup("missing")
}

func TestGlobalBindingsWalksToRoot(t *testing.T) {
	global := NewGlobalEnv()
	global.Define("x", NewNumber(1))
	global.Define("y", NewNumber(2))
	child := NewChildEnv(global)
	child.Define("z", NewNumber(3)) // local only, must not appear

	bindings := child.GlobalBindings()
	assert.Equal(t, NewNumber(1), bindings["x"])
	assert.Equal(t, NewNumber(2), bindings["y"])
	_, ok := bindings["z"]
	assert.False(t, ok)
}

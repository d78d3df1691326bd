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
)

func TestHelpListsEveryBuiltin(t *testing.T) {
	ip := NewInterpreter()
	catalogue := Help(ip, "")
	assert.Contains(t, catalogue, "+:")
	assert.Contains(t, catalogue, "dict-set:")
}

func TestHelpForOneBuiltinShowsReturnType(t *testing.T) {
	ip := NewInterpreter()
	text := Help(ip, "+")
	assert.Contains(t, text, "Help for: +")
	assert.Contains(t, text, "Returns: number")
}

func TestHelpForUnknownNamePanics(t *testing.T) {
	ip := NewInterpreter()
	assert.Panics(t, func() { Help(ip, "not-a-builtin") })
}

func TestArityCheckedRejectsOutOfRangeCalls(t *testing.T) {
	ip := NewInterpreter()
	assert.Panics(t, func() { eval(t, ip, "(abs 1 2)") })
	assert.Panics(t, func() { eval(t, ip, "(cons 1)") })
}

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

func TestTruthy(t *testing.T) {
	assert.True(t, Nil.Truthy())
	assert.True(t, NewNumber(0).Truthy())
	assert.True(t, NewString("").Truthy())
	assert.False(t, False.Truthy())
	assert.True(t, True.Truthy())
}

func TestListRoundTrip(t *testing.T) {
	items := []Scmer{NewNumber(1), NewString("a"), NewSymbol("b")}
	list := SliceToList(items)
	assert.True(t, IsProperList(list))
	assert.Equal(t, items, ListToSlice(list))
}

func TestImproperListIsNotProper(t *testing.T) {
	v := NewPair(NewNumber(1), NewNumber(2))
	assert.False(t, IsProperList(v))
}

func TestHeadSymbol(t *testing.T) {
	v := Read("t", "(foo 1 2)")
	head, ok := HeadSymbol(v)
	assert.True(t, ok)
	assert.Equal(t, Symbol("foo"), head)

	_, ok = HeadSymbol(NewNumber(1))
	assert.False(t, ok)
}

func TestKindMismatchPanics(t *testing.T) {
	assert.Panics(t, func() { NewNumber(1).Str() })
	assert.Panics(t, func() { NewString("x").Number() })
	assert.Panics(t, func() { Nil.Car() })
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "number", KindNumber.String())
	assert.Equal(t, "dict", KindDict.String())
	assert.Equal(t, "parser", KindParser.String())
}

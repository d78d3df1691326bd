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

func TestReadAtoms(t *testing.T) {
	assert.Equal(t, NewNumber(42), Read("t", "42"))
	assert.Equal(t, NewNumber(-3.5), Read("t", "-3.5"))
	assert.Equal(t, NewString("hi"), Read("t", `"hi"`))
	assert.Equal(t, True, Read("t", "#t"))
	assert.Equal(t, False, Read("t", "#f"))
	assert.Equal(t, NewSymbol("foo?"), Read("t", "foo?"))
}

func TestReadList(t *testing.T) {
	v := Read("t", "(1 2 3)")
	require.True(t, IsProperList(v))
	assert.Equal(t, []Scmer{NewNumber(1), NewNumber(2), NewNumber(3)}, ListToSlice(v))
}

func TestReadDottedPair(t *testing.T) {
	v := Read("t", "(1 . 2)")
	require.True(t, v.IsPair())
	assert.Equal(t, NewNumber(1), v.Car())
	assert.Equal(t, NewNumber(2), v.Cdr())
}

func TestReadQuoteShorthands(t *testing.T) {
	q := Read("t", "'x")
	head, ok := HeadSymbol(q)
	require.True(t, ok)
	assert.Equal(t, Symbol("quote"), head)

	qq := Read("t", "`(a ,b ,@c)")
	head, ok = HeadSymbol(qq)
	require.True(t, ok)
	assert.Equal(t, Symbol("quasiquote"), head)
}

func TestReadStringEscapes(t *testing.T) {
	v := Read("t", `"a\nb\t\"c\""`)
	assert.Equal(t, "a\nb\t\"c\"", v.Str())
}

func TestReadAllMultipleForms(t *testing.T) {
	forms := ReadAll("t", "1 2 (+ 1 2)")
	require.Len(t, forms, 3)
	assert.Equal(t, NewNumber(1), forms[0])
	assert.Equal(t, NewNumber(2), forms[1])
	assert.True(t, forms[2].IsPair())
}

func TestReadUnterminatedListIsIncomplete(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		re, ok := r.(*ReadError)
		require.True(t, ok)
		assert.True(t, re.Incomplete)
	}()
	Read("t", "(1 2")
}

func TestReadUnterminatedStringIsNotIncomplete(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		re, ok := r.(*ReadError)
		require.True(t, ok)
		assert.False(t, re.Incomplete)
	}()
	Read("t", `"abc`)
}

func TestReadUnexpectedCloseParen(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		_, ok := r.(*ReadError)
		assert.True(t, ok)
	}()
	Read("t", ")")
}

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

func TestStringAppendAndLength(t *testing.T) {
	ip := NewInterpreter()
	assert.Equal(t, `"foobar"`, Display(eval(t, ip, `(string-append "foo" "bar")`)))
	assert.Equal(t, "6", Display(eval(t, ip, `(string-length "foobar")`)))
}

func TestStringCase(t *testing.T) {
	ip := NewInterpreter()
	assert.Equal(t, `"FOO"`, Display(eval(t, ip, `(string-upcase "foo")`)))
	assert.Equal(t, `"foo"`, Display(eval(t, ip, `(string-downcase "FOO")`)))
}

func TestStringEquality(t *testing.T) {
	ip := NewInterpreter()
	assert.Equal(t, "#t", Display(eval(t, ip, `(string=? "a" "a" "a")`)))
	assert.Equal(t, "#f", Display(eval(t, ip, `(string=? "a" "b")`)))
}

func TestStringNumberConversions(t *testing.T) {
	ip := NewInterpreter()
	assert.Equal(t, "42", Display(eval(t, ip, `(string->number "42")`)))
	assert.Equal(t, "()", Display(eval(t, ip, `(string->number "nope")`)))
	assert.Equal(t, `"42"`, Display(eval(t, ip, `(number->string 42)`)))
}

func TestSortStringsLocale(t *testing.T) {
	ip := NewInterpreter()
	result := eval(t, ip, `(sort-strings (list "banana" "Apple" "cherry"))`)
	assert.Equal(t, `("Apple" "banana" "cherry")`, Display(result))
}

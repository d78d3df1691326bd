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

func TestMacroExpandsNestedUse(t *testing.T) {
	ip := NewInterpreter()
	result := eval(t, ip, `
		(define-macro (my-if c t e) (list 'if c t e))
		(my-if #t 1 (my-if #f 2 3))
	`)
	assert.Equal(t, "1", Display(result))
}

func TestMacroDoesNotExpandInsideQuote(t *testing.T) {
	ip := NewInterpreter()
	result := eval(t, ip, `
		(define-macro (double x) (list '+ x x))
		'(double 5)
	`)
	assert.Equal(t, "(double 5)", Display(result))
}

func TestRunawayMacroPanics(t *testing.T) {
	ip := NewInterpreter()
	assert.Panics(t, func() {
		eval(t, ip, `
			(define-macro (loop x) (list 'loop x))
			(loop 1)
		`)
	})
}

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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsReportsBindingCount(t *testing.T) {
	ip := NewInterpreter()
	eval(t, ip, "(define x 1) (define y 2)")
	report := ip.Stats()
	require.NotEmpty(t, report)
	assert.True(t, strings.Contains(report, "bindings"))
}

func TestStatsBuiltinReturnsString(t *testing.T) {
	ip := NewInterpreter()
	result := eval(t, ip, "(stats)")
	assert.True(t, result.IsString())
}

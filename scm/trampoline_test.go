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

func TestForceOnDoneReturnsValueImmediately(t *testing.T) {
	assert.Equal(t, NewNumber(5), Force(Done(NewNumber(5))))
}

func TestForceDrivesChainOfPendingSteps(t *testing.T) {
	count := 0
	var step func() Result
	step = func() Result {
		count++
		if count >= 1000 {
			return Done(NewNumber(float64(count)))
		}
		return PendingStep(step)
	}
	result := Force(PendingStep(step))
	assert.Equal(t, NewNumber(1000), result)
	assert.Equal(t, 1000, count)
}

// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

// Package test provides the handful of assertion helpers used by vcscore's
// own test suite, in place of a generic assertion library.
package test

import (
	"math"
	"reflect"
	"testing"

	"github.com/go-test/deep"
)

// ExpectFailure checks that v represents failure: false, a non-nil error, or
// a zero value.
func ExpectFailure(t *testing.T, v interface{}) {
	t.Helper()
	if succeeded(v) {
		t.Errorf("expected failure, got success (%v)", v)
	}
}

// ExpectSuccess checks that v represents success: true, a nil error, or a
// non-zero value.
func ExpectSuccess(t *testing.T, v interface{}) {
	t.Helper()
	if !succeeded(v) {
		t.Errorf("expected success, got failure (%v)", v)
	}
}

func succeeded(v interface{}) bool {
	switch v := v.(type) {
	case bool:
		return v
	case error:
		return v == nil
	case nil:
		return true
	default:
		rv := reflect.ValueOf(v)
		return !rv.IsZero()
	}
}

// ExpectEquality checks that a and b are deeply equal, reporting a
// field-by-field diff (via go-test/deep) on mismatch.
func ExpectEquality(t *testing.T, a, b interface{}) {
	t.Helper()
	if diff := deep.Equal(a, b); diff != nil {
		t.Errorf("expected equality, got difference: %v", diff)
	}
}

// ExpectInequality checks that a and b are not deeply equal.
func ExpectInequality(t *testing.T, a, b interface{}) {
	t.Helper()
	if deep.Equal(a, b) == nil {
		t.Errorf("expected inequality, values are equal (%v)", a)
	}
}

// ExpectApproximate checks that a and b differ by no more than tolerance.
func ExpectApproximate(t *testing.T, a, b float64, tolerance float64) {
	t.Helper()
	if math.Abs(a-b) > tolerance {
		t.Errorf("expected %v to be within %v of %v", a, tolerance, b)
	}
}

// Equate fails the test, as ExpectEquality does, when a and b differ; its
// failure message names b as the expected value and a as the value got.
func Equate(t *testing.T, a, b interface{}) {
	t.Helper()
	if diff := deep.Equal(a, b); diff != nil {
		t.Errorf("expected %v, got %v (%v)", b, a, diff)
	}
}

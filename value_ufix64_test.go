/*
 * Safemath - Checked fixed-width unsigned integer arithmetic
 *
 * Copyright Flow Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package safemath

import (
	"math"
	"testing"

	fix "github.com/onflow/fixed-point"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/safemath/format"
)

func TestUFix64ValueConstruction(t *testing.T) {

	t.Parallel()

	t.Run("with integer", func(t *testing.T) {
		t.Parallel()

		value, err := NewUFix64ValueWithInteger(1)
		require.NoError(t, err)
		assert.Equal(t, NewUFix64Value(format.UFix64Factor), value)
	})

	t.Run("with integer, overflow", func(t *testing.T) {
		t.Parallel()

		_, err := NewUFix64ValueWithInteger(math.MaxUint64)
		assert.Equal(t,
			OverflowError{Operation: OperationMultiply},
			err,
		)
	})

	t.Run("parse", func(t *testing.T) {
		t.Parallel()

		value, err := ParseUFix64Value("1.5")
		require.NoError(t, err)
		assert.Equal(t, NewUFix64Value(150_000_000), value)
	})

	t.Run("parse, integer only", func(t *testing.T) {
		t.Parallel()

		value, err := ParseUFix64Value("42")
		require.NoError(t, err)
		assert.Equal(t, NewUFix64Value(4_200_000_000), value)
	})

	t.Run("parse, full scale", func(t *testing.T) {
		t.Parallel()

		value, err := ParseUFix64Value("0.00000001")
		require.NoError(t, err)
		assert.Equal(t, NewUFix64Value(1), value)
	})

	t.Run("parse, too many fractional digits", func(t *testing.T) {
		t.Parallel()

		_, err := ParseUFix64Value("0.000000001")
		require.Error(t, err)
		assert.IsType(t, InvalidNumberError{}, err)
	})

	t.Run("parse, invalid", func(t *testing.T) {
		t.Parallel()

		for _, literal := range []string{"", ".", "1.", "-1.0", "1.5.0", "a"} {
			_, err := ParseUFix64Value(literal)
			require.Error(t, err, "literal: %q", literal)
		}
	})
}

func TestUFix64ValueArithmetic(t *testing.T) {

	t.Parallel()

	one, err := NewUFix64ValueWithInteger(1)
	require.NoError(t, err)

	two, err := NewUFix64ValueWithInteger(2)
	require.NoError(t, err)

	t.Run("plus", func(t *testing.T) {
		t.Parallel()

		sum, err := one.Plus(two)
		require.NoError(t, err)
		assert.Equal(t, "3.00000000", sum.String())
	})

	t.Run("plus, overflow", func(t *testing.T) {
		t.Parallel()

		max := UFix64Value(fix.UFix64Max)
		_, err := max.Plus(one)
		assert.Equal(t,
			OverflowError{Operation: OperationAdd},
			err,
		)
	})

	t.Run("minus, underflow", func(t *testing.T) {
		t.Parallel()

		_, err := one.Minus(two)
		assert.Equal(t,
			UnderflowError{Operation: OperationSubtract},
			err,
		)
	})

	t.Run("mul", func(t *testing.T) {
		t.Parallel()

		product, err := two.Mul(two)
		require.NoError(t, err)
		assert.Equal(t, "4.00000000", product.String())
	})

	t.Run("mul, overflow", func(t *testing.T) {
		t.Parallel()

		max := UFix64Value(fix.UFix64Max)
		_, err := max.Mul(two)
		assert.Equal(t,
			OverflowError{Operation: OperationMultiply},
			err,
		)
	})

	t.Run("div", func(t *testing.T) {
		t.Parallel()

		quotient, err := one.Div(two)
		require.NoError(t, err)
		assert.Equal(t, "0.50000000", quotient.String())
	})

	t.Run("div by zero", func(t *testing.T) {
		t.Parallel()

		_, err := one.Div(NewUFix64Value(0))
		assert.Equal(t,
			DivisionByZeroError{Operation: OperationDivide},
			err,
		)
	})

	t.Run("mod by zero", func(t *testing.T) {
		t.Parallel()

		_, err := one.Mod(NewUFix64Value(0))
		assert.Equal(t,
			DivisionByZeroError{Operation: OperationMod},
			err,
		)
	})

	t.Run("saturating plus", func(t *testing.T) {
		t.Parallel()

		max := UFix64Value(fix.UFix64Max)
		assert.Equal(t, max, max.SaturatingPlus(one))
	})

	t.Run("saturating minus", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t,
			UFix64Value(fix.UFix64Zero),
			one.SaturatingMinus(two),
		)
	})
}

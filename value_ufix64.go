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
	"encoding/binary"
	"math/big"
	"strings"

	fix "github.com/onflow/fixed-point"

	"github.com/onflow/safemath/format"
)

// UFix64Value
//
// An unsigned 64-bit fixed-point value with a decimal scale of 8.
// The raw representation is the value multiplied by 10^8.

type UFix64Value fix.UFix64

var _ Value = UFix64Value(0)
var _ NumberValue = UFix64Value(0)
var _ EquatableValue = UFix64Value(0)

// NewUFix64Value returns the fixed-point value
// with the given raw (scaled) representation.
func NewUFix64Value(raw uint64) UFix64Value {
	return UFix64Value(raw)
}

// NewUFix64ValueWithInteger returns the fixed-point value
// representing the given whole number.
func NewUFix64ValueWithInteger(integer uint64) (UFix64Value, error) {
	raw, err := MulUnsigned(integer, uint64(format.UFix64Factor))
	if err != nil {
		return 0, err
	}
	return UFix64Value(raw), nil
}

// ParseUFix64Value parses a decimal literal with an optional
// fractional part of at most 8 digits, e.g. "1.50".
func ParseUFix64Value(literal string) (UFix64Value, error) {
	invalid := InvalidNumberError{
		Literal: literal,
		Message: "expected a decimal fixed-point number",
	}

	integerLiteral, fractionalLiteral, found := strings.Cut(literal, ".")

	integer, err := parseUnsigned[uint64](integerLiteral, 64)
	if err != nil {
		return 0, invalid
	}

	var fractional uint64
	if found {
		if fractionalLiteral == "" ||
			len(fractionalLiteral) > format.UFix64Scale {

			return 0, invalid
		}
		fractional, err = parseUnsigned[uint64](fractionalLiteral, 64)
		if err != nil {
			return 0, invalid
		}
		for i := len(fractionalLiteral); i < format.UFix64Scale; i++ {
			fractional *= 10
		}
	}

	scaled, err := MulUnsigned(integer, uint64(format.UFix64Factor))
	if err != nil {
		return 0, err
	}
	raw, err := AddUnsigned(scaled, fractional)
	if err != nil {
		return 0, err
	}
	return UFix64Value(raw), nil
}

func (UFix64Value) isValue() {}

func (v UFix64Value) String() string {
	return format.UFix64(uint64(v))
}

// ToBigInt returns the raw (scaled) representation
// as an arbitrary-precision integer.
func (v UFix64Value) ToBigInt() *big.Int {
	return new(big.Int).SetUint64(uint64(v))
}

func (v UFix64Value) Plus(other UFix64Value) (UFix64Value, error) {
	result, err := fix.UFix64(v).Add(fix.UFix64(other))
	if err != nil {
		return 0, convertFixedPointError(err, OperationAdd)
	}
	return UFix64Value(result), nil
}

func (v UFix64Value) SaturatingPlus(other UFix64Value) UFix64Value {
	result, err := fix.UFix64(v).Add(fix.UFix64(other))
	return ufix64SaturatingResult(result, err)
}

func (v UFix64Value) Minus(other UFix64Value) (UFix64Value, error) {
	result, err := fix.UFix64(v).Sub(fix.UFix64(other))
	if err != nil {
		return 0, convertFixedPointError(err, OperationSubtract)
	}
	return UFix64Value(result), nil
}

func (v UFix64Value) SaturatingMinus(other UFix64Value) UFix64Value {
	result, err := fix.UFix64(v).Sub(fix.UFix64(other))
	return ufix64SaturatingResult(result, err)
}

func (v UFix64Value) Mul(other UFix64Value) (UFix64Value, error) {
	result, err := fix.UFix64(v).Mul(
		fix.UFix64(other),
		fix.RoundTruncate,
	)
	if err != nil {
		return 0, convertFixedPointError(err, OperationMultiply)
	}
	return UFix64Value(result), nil
}

func (v UFix64Value) SaturatingMul(other UFix64Value) UFix64Value {
	result, err := fix.UFix64(v).Mul(
		fix.UFix64(other),
		fix.RoundTruncate,
	)
	return ufix64SaturatingResult(result, err)
}

func (v UFix64Value) Div(other UFix64Value) (UFix64Value, error) {
	if other == 0 {
		return 0, DivisionByZeroError{Operation: OperationDivide}
	}
	result, err := fix.UFix64(v).Div(
		fix.UFix64(other),
		fix.RoundTruncate,
	)
	if err != nil {
		return 0, convertFixedPointError(err, OperationDivide)
	}
	return UFix64Value(result), nil
}

func (v UFix64Value) Mod(other UFix64Value) (UFix64Value, error) {
	if other == 0 {
		return 0, DivisionByZeroError{Operation: OperationMod}
	}
	result, err := fix.UFix64(v).Mod(fix.UFix64(other))
	if err != nil {
		return 0, convertFixedPointError(err, OperationMod)
	}
	return UFix64Value(result), nil
}

func (v UFix64Value) Less(other UFix64Value) bool {
	return v < other
}

func (v UFix64Value) LessEqual(other UFix64Value) bool {
	return v <= other
}

func (v UFix64Value) Greater(other UFix64Value) bool {
	return v > other
}

func (v UFix64Value) GreaterEqual(other UFix64Value) bool {
	return v >= other
}

func (v UFix64Value) Equal(other Value) bool {
	otherUFix64, ok := other.(UFix64Value)
	if !ok {
		return false
	}
	return v == otherUFix64
}

func (v UFix64Value) ToBigEndianBytes() []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(v))
	return b
}

func convertFixedPointError(err error, op Operation) error {
	switch err.(type) {
	case nil:
		return nil
	case fix.PositiveOverflowError:
		return OverflowError{Operation: op}
	case fix.NegativeOverflowError:
		return UnderflowError{Operation: op}
	default:
		return err
	}
}

func ufix64SaturatingResult(result fix.UFix64, err error) UFix64Value {
	switch err.(type) {
	case nil:
		return UFix64Value(result)
	case fix.PositiveOverflowError:
		return UFix64Value(fix.UFix64Max)
	case fix.NegativeOverflowError:
		return UFix64Value(fix.UFix64Zero)
	default:
		return UFix64Value(result)
	}
}

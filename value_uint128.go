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
	"math/big"

	"github.com/onflow/safemath/format"
)

// UInt128Value

type UInt128Value struct {
	BigInt *big.Int
}

var _ Value = UInt128Value{}
var _ NumberValue = UInt128Value{}
var _ EquatableValue = UInt128Value{}

func NewUInt128ValueFromUint64(value uint64) UInt128Value {
	return UInt128Value{
		BigInt: new(big.Int).SetUint64(value),
	}
}

func NewUInt128ValueFromBigInt(value *big.Int) (UInt128Value, error) {
	if value.Sign() < 0 {
		return UInt128Value{}, UnderflowError{}
	}
	if value.Cmp(UInt128TypeMaxIntBig) > 0 {
		return UInt128Value{}, OverflowError{}
	}
	return UInt128Value{
		BigInt: new(big.Int).Set(value),
	}, nil
}

func ParseUInt128Value(literal string) (UInt128Value, error) {
	value, err := parseBigInt(literal, UInt128TypeMaxIntBig)
	if err != nil {
		return UInt128Value{}, err
	}
	return UInt128Value{BigInt: value}, nil
}

func (UInt128Value) isValue() {}

func (v UInt128Value) String() string {
	return format.BigInt(v.BigInt)
}

func (v UInt128Value) ToBigInt() *big.Int {
	return new(big.Int).Set(v.BigInt)
}

func (v UInt128Value) Plus(other UInt128Value) (UInt128Value, error) {
	// The value is backed by an arbitrary-precision integer,
	// so the sum is exact and the range of the result can be checked directly.
	// A fixed-width sum would already have wrapped
	// and would require the INT30-C guard `sum < v` instead.
	sum := new(big.Int).Add(v.BigInt, other.BigInt)
	if sum.Cmp(UInt128TypeMaxIntBig) > 0 {
		return UInt128Value{}, OverflowError{Operation: OperationAdd}
	}
	return UInt128Value{BigInt: sum}, nil
}

func (v UInt128Value) SaturatingPlus(other UInt128Value) UInt128Value {
	sum := new(big.Int).Add(v.BigInt, other.BigInt)
	if sum.Cmp(UInt128TypeMaxIntBig) > 0 {
		return UInt128Value{BigInt: new(big.Int).Set(UInt128TypeMaxIntBig)}
	}
	return UInt128Value{BigInt: sum}
}

func (v UInt128Value) Minus(other UInt128Value) (UInt128Value, error) {
	// The difference is exact, so underflow is a simple sign check.
	// A fixed-width difference would already have wrapped
	// and would require the INT30-C guard `diff > v` instead.
	diff := new(big.Int).Sub(v.BigInt, other.BigInt)
	if diff.Cmp(UInt128TypeMinIntBig) < 0 {
		return UInt128Value{}, UnderflowError{Operation: OperationSubtract}
	}
	return UInt128Value{BigInt: diff}, nil
}

func (v UInt128Value) SaturatingMinus(other UInt128Value) UInt128Value {
	diff := new(big.Int).Sub(v.BigInt, other.BigInt)
	if diff.Cmp(UInt128TypeMinIntBig) < 0 {
		return UInt128Value{BigInt: new(big.Int)}
	}
	return UInt128Value{BigInt: diff}
}

func (v UInt128Value) Mul(other UInt128Value) (UInt128Value, error) {
	// The product is computed at full precision before the range check,
	// so overflow is detected from the exact result.
	// Checking a product that was already computed at fixed width
	// can never observe the overflow.
	product := new(big.Int).Mul(v.BigInt, other.BigInt)
	if product.Cmp(UInt128TypeMaxIntBig) > 0 {
		return UInt128Value{}, OverflowError{Operation: OperationMultiply}
	}
	return UInt128Value{BigInt: product}, nil
}

func (v UInt128Value) SaturatingMul(other UInt128Value) UInt128Value {
	product := new(big.Int).Mul(v.BigInt, other.BigInt)
	if product.Cmp(UInt128TypeMaxIntBig) > 0 {
		return UInt128Value{BigInt: new(big.Int).Set(UInt128TypeMaxIntBig)}
	}
	return UInt128Value{BigInt: product}
}

func (v UInt128Value) Div(other UInt128Value) (UInt128Value, error) {
	if other.BigInt.Sign() == 0 {
		return UInt128Value{}, DivisionByZeroError{Operation: OperationDivide}
	}
	quotient := new(big.Int).Div(v.BigInt, other.BigInt)
	return UInt128Value{BigInt: quotient}, nil
}

func (v UInt128Value) Mod(other UInt128Value) (UInt128Value, error) {
	if other.BigInt.Sign() == 0 {
		return UInt128Value{}, DivisionByZeroError{Operation: OperationMod}
	}
	remainder := new(big.Int).Rem(v.BigInt, other.BigInt)
	return UInt128Value{BigInt: remainder}, nil
}

func (v UInt128Value) Cmp(other UInt128Value) int {
	return v.BigInt.Cmp(other.BigInt)
}

func (v UInt128Value) Less(other UInt128Value) bool {
	return v.Cmp(other) < 0
}

func (v UInt128Value) LessEqual(other UInt128Value) bool {
	return v.Cmp(other) <= 0
}

func (v UInt128Value) Greater(other UInt128Value) bool {
	return v.Cmp(other) > 0
}

func (v UInt128Value) GreaterEqual(other UInt128Value) bool {
	return v.Cmp(other) >= 0
}

func (v UInt128Value) Equal(other Value) bool {
	otherUInt128, ok := other.(UInt128Value)
	if !ok {
		return false
	}
	return v.Cmp(otherUInt128) == 0
}

func (v UInt128Value) ToBigEndianBytes() []byte {
	return v.BigInt.Bytes()
}

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

	"github.com/holiman/uint256"

	"github.com/onflow/safemath/errors"
	"github.com/onflow/safemath/format"
)

// UInt256Value

type UInt256Value struct {
	BigInt *big.Int
}

var _ Value = UInt256Value{}
var _ NumberValue = UInt256Value{}
var _ EquatableValue = UInt256Value{}

func NewUInt256ValueFromUint64(value uint64) UInt256Value {
	return UInt256Value{
		BigInt: new(big.Int).SetUint64(value),
	}
}

func NewUInt256ValueFromBigInt(value *big.Int) (UInt256Value, error) {
	if value.Sign() < 0 {
		return UInt256Value{}, UnderflowError{}
	}
	if value.Cmp(UInt256TypeMaxIntBig) > 0 {
		return UInt256Value{}, OverflowError{}
	}
	return UInt256Value{
		BigInt: new(big.Int).Set(value),
	}, nil
}

func ParseUInt256Value(literal string) (UInt256Value, error) {
	value, err := parseBigInt(literal, UInt256TypeMaxIntBig)
	if err != nil {
		return UInt256Value{}, err
	}
	return UInt256Value{BigInt: value}, nil
}

func (UInt256Value) isValue() {}

func (v UInt256Value) String() string {
	return format.BigInt(v.BigInt)
}

func (v UInt256Value) ToBigInt() *big.Int {
	return new(big.Int).Set(v.BigInt)
}

func (v UInt256Value) Plus(other UInt256Value) (UInt256Value, error) {
	// The value is backed by an arbitrary-precision integer,
	// so the sum is exact and the range of the result can be checked directly.
	// A fixed-width sum would already have wrapped
	// and would require the INT30-C guard `sum < v` instead.
	sum := new(big.Int).Add(v.BigInt, other.BigInt)
	if sum.Cmp(UInt256TypeMaxIntBig) > 0 {
		return UInt256Value{}, OverflowError{Operation: OperationAdd}
	}
	return UInt256Value{BigInt: sum}, nil
}

func (v UInt256Value) SaturatingPlus(other UInt256Value) UInt256Value {
	sum := new(big.Int).Add(v.BigInt, other.BigInt)
	if sum.Cmp(UInt256TypeMaxIntBig) > 0 {
		return UInt256Value{BigInt: new(big.Int).Set(UInt256TypeMaxIntBig)}
	}
	return UInt256Value{BigInt: sum}
}

func (v UInt256Value) Minus(other UInt256Value) (UInt256Value, error) {
	// The difference is exact, so underflow is a simple sign check.
	// A fixed-width difference would already have wrapped
	// and would require the INT30-C guard `diff > v` instead.
	diff := new(big.Int).Sub(v.BigInt, other.BigInt)
	if diff.Cmp(UInt256TypeMinIntBig) < 0 {
		return UInt256Value{}, UnderflowError{Operation: OperationSubtract}
	}
	return UInt256Value{BigInt: diff}, nil
}

func (v UInt256Value) SaturatingMinus(other UInt256Value) UInt256Value {
	diff := new(big.Int).Sub(v.BigInt, other.BigInt)
	if diff.Cmp(UInt256TypeMinIntBig) < 0 {
		return UInt256Value{BigInt: new(big.Int)}
	}
	return UInt256Value{BigInt: diff}
}

func (v UInt256Value) Mul(other UInt256Value) (UInt256Value, error) {
	// The product is computed at full precision before the range check,
	// so overflow is detected from the exact result.
	// Checking a product that was already computed at fixed width
	// can never observe the overflow.
	product := new(big.Int).Mul(v.BigInt, other.BigInt)
	if product.Cmp(UInt256TypeMaxIntBig) > 0 {
		return UInt256Value{}, OverflowError{Operation: OperationMultiply}
	}
	return UInt256Value{BigInt: product}, nil
}

func (v UInt256Value) SaturatingMul(other UInt256Value) UInt256Value {
	product := new(big.Int).Mul(v.BigInt, other.BigInt)
	if product.Cmp(UInt256TypeMaxIntBig) > 0 {
		return UInt256Value{BigInt: new(big.Int).Set(UInt256TypeMaxIntBig)}
	}
	return UInt256Value{BigInt: product}
}

func (v UInt256Value) Div(other UInt256Value) (UInt256Value, error) {
	if other.BigInt.Sign() == 0 {
		return UInt256Value{}, DivisionByZeroError{Operation: OperationDivide}
	}
	quotient := new(big.Int).Div(v.BigInt, other.BigInt)
	return UInt256Value{BigInt: quotient}, nil
}

func (v UInt256Value) Mod(other UInt256Value) (UInt256Value, error) {
	if other.BigInt.Sign() == 0 {
		return UInt256Value{}, DivisionByZeroError{Operation: OperationMod}
	}
	remainder := new(big.Int).Rem(v.BigInt, other.BigInt)
	return UInt256Value{BigInt: remainder}, nil
}

func (v UInt256Value) Cmp(other UInt256Value) int {
	return v.BigInt.Cmp(other.BigInt)
}

func (v UInt256Value) Less(other UInt256Value) bool {
	return v.Cmp(other) < 0
}

func (v UInt256Value) LessEqual(other UInt256Value) bool {
	return v.Cmp(other) <= 0
}

func (v UInt256Value) Greater(other UInt256Value) bool {
	return v.Cmp(other) > 0
}

func (v UInt256Value) GreaterEqual(other UInt256Value) bool {
	return v.Cmp(other) >= 0
}

func (v UInt256Value) Equal(other Value) bool {
	otherUInt256, ok := other.(UInt256Value)
	if !ok {
		return false
	}
	return v.Cmp(otherUInt256) == 0
}

func (v UInt256Value) ToBigEndianBytes() []byte {
	return v.BigInt.Bytes()
}

// NewUInt256ValueFromWord converts the given EVM-style 256-bit word.
func NewUInt256ValueFromWord(word *uint256.Int) UInt256Value {
	return UInt256Value{
		BigInt: word.ToBig(),
	}
}

// ToWord returns the value as an EVM-style 256-bit word.
func (v UInt256Value) ToWord() *uint256.Int {
	word, overflow := uint256.FromBig(v.BigInt)
	if overflow {
		// a UInt256Value never holds more than 256 bits
		panic(errors.NewUnreachableError())
	}
	return word
}

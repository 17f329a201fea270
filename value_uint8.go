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
	"math/big"

	"github.com/onflow/safemath/format"
)

// UInt8Value

type UInt8Value uint8

var _ Value = UInt8Value(0)
var _ NumberValue = UInt8Value(0)
var _ EquatableValue = UInt8Value(0)

func NewUInt8Value(value uint8) UInt8Value {
	return UInt8Value(value)
}

func NewUInt8ValueFromBigInt(value *big.Int) (UInt8Value, error) {
	converted, err := ConvertUnsigned[uint8](value, UInt8TypeMaxIntBig)
	if err != nil {
		return 0, err
	}
	return UInt8Value(converted), nil
}

func ParseUInt8Value(literal string) (UInt8Value, error) {
	parsed, err := parseUnsigned[uint8](literal, 8)
	if err != nil {
		return 0, err
	}
	return UInt8Value(parsed), nil
}

func (UInt8Value) isValue() {}

func (v UInt8Value) String() string {
	return format.Uint(uint64(v))
}

func (v UInt8Value) ToBigInt() *big.Int {
	return new(big.Int).SetUint64(uint64(v))
}

func (v UInt8Value) Plus(other UInt8Value) (UInt8Value, error) {
	sum, err := AddUnsigned(uint8(v), uint8(other))
	if err != nil {
		return 0, err
	}
	return UInt8Value(sum), nil
}

func (v UInt8Value) SaturatingPlus(other UInt8Value) UInt8Value {
	sum, err := AddUnsigned(uint8(v), uint8(other))
	if err != nil {
		return math.MaxUint8
	}
	return UInt8Value(sum)
}

func (v UInt8Value) Minus(other UInt8Value) (UInt8Value, error) {
	diff, err := SubUnsigned(uint8(v), uint8(other))
	if err != nil {
		return 0, err
	}
	return UInt8Value(diff), nil
}

func (v UInt8Value) SaturatingMinus(other UInt8Value) UInt8Value {
	diff, err := SubUnsigned(uint8(v), uint8(other))
	if err != nil {
		return 0
	}
	return UInt8Value(diff)
}

func (v UInt8Value) Mul(other UInt8Value) (UInt8Value, error) {
	product, err := MulUnsigned(uint8(v), uint8(other))
	if err != nil {
		return 0, err
	}
	return UInt8Value(product), nil
}

func (v UInt8Value) SaturatingMul(other UInt8Value) UInt8Value {
	product, err := MulUnsigned(uint8(v), uint8(other))
	if err != nil {
		return math.MaxUint8
	}
	return UInt8Value(product)
}

func (v UInt8Value) Div(other UInt8Value) (UInt8Value, error) {
	quotient, err := DivUnsigned(uint8(v), uint8(other))
	if err != nil {
		return 0, err
	}
	return UInt8Value(quotient), nil
}

func (v UInt8Value) Mod(other UInt8Value) (UInt8Value, error) {
	remainder, err := ModUnsigned(uint8(v), uint8(other))
	if err != nil {
		return 0, err
	}
	return UInt8Value(remainder), nil
}

func (v UInt8Value) Less(other UInt8Value) bool {
	return v < other
}

func (v UInt8Value) LessEqual(other UInt8Value) bool {
	return v <= other
}

func (v UInt8Value) Greater(other UInt8Value) bool {
	return v > other
}

func (v UInt8Value) GreaterEqual(other UInt8Value) bool {
	return v >= other
}

func (v UInt8Value) Equal(other Value) bool {
	otherUInt8, ok := other.(UInt8Value)
	if !ok {
		return false
	}
	return v == otherUInt8
}

func (v UInt8Value) ToBigEndianBytes() []byte {
	return []byte{byte(v)}
}

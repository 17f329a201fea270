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
	"math"
	"math/big"

	"github.com/onflow/safemath/format"
)

// UInt16Value

type UInt16Value uint16

var _ Value = UInt16Value(0)
var _ NumberValue = UInt16Value(0)
var _ EquatableValue = UInt16Value(0)

func NewUInt16Value(value uint16) UInt16Value {
	return UInt16Value(value)
}

func NewUInt16ValueFromBigInt(value *big.Int) (UInt16Value, error) {
	converted, err := ConvertUnsigned[uint16](value, UInt16TypeMaxIntBig)
	if err != nil {
		return 0, err
	}
	return UInt16Value(converted), nil
}

func ParseUInt16Value(literal string) (UInt16Value, error) {
	parsed, err := parseUnsigned[uint16](literal, 16)
	if err != nil {
		return 0, err
	}
	return UInt16Value(parsed), nil
}

func (UInt16Value) isValue() {}

func (v UInt16Value) String() string {
	return format.Uint(uint64(v))
}

func (v UInt16Value) ToBigInt() *big.Int {
	return new(big.Int).SetUint64(uint64(v))
}

func (v UInt16Value) Plus(other UInt16Value) (UInt16Value, error) {
	sum, err := AddUnsigned(uint16(v), uint16(other))
	if err != nil {
		return 0, err
	}
	return UInt16Value(sum), nil
}

func (v UInt16Value) SaturatingPlus(other UInt16Value) UInt16Value {
	sum, err := AddUnsigned(uint16(v), uint16(other))
	if err != nil {
		return math.MaxUint16
	}
	return UInt16Value(sum)
}

func (v UInt16Value) Minus(other UInt16Value) (UInt16Value, error) {
	diff, err := SubUnsigned(uint16(v), uint16(other))
	if err != nil {
		return 0, err
	}
	return UInt16Value(diff), nil
}

func (v UInt16Value) SaturatingMinus(other UInt16Value) UInt16Value {
	diff, err := SubUnsigned(uint16(v), uint16(other))
	if err != nil {
		return 0
	}
	return UInt16Value(diff)
}

func (v UInt16Value) Mul(other UInt16Value) (UInt16Value, error) {
	product, err := MulUnsigned(uint16(v), uint16(other))
	if err != nil {
		return 0, err
	}
	return UInt16Value(product), nil
}

func (v UInt16Value) SaturatingMul(other UInt16Value) UInt16Value {
	product, err := MulUnsigned(uint16(v), uint16(other))
	if err != nil {
		return math.MaxUint16
	}
	return UInt16Value(product)
}

func (v UInt16Value) Div(other UInt16Value) (UInt16Value, error) {
	quotient, err := DivUnsigned(uint16(v), uint16(other))
	if err != nil {
		return 0, err
	}
	return UInt16Value(quotient), nil
}

func (v UInt16Value) Mod(other UInt16Value) (UInt16Value, error) {
	remainder, err := ModUnsigned(uint16(v), uint16(other))
	if err != nil {
		return 0, err
	}
	return UInt16Value(remainder), nil
}

func (v UInt16Value) Less(other UInt16Value) bool {
	return v < other
}

func (v UInt16Value) LessEqual(other UInt16Value) bool {
	return v <= other
}

func (v UInt16Value) Greater(other UInt16Value) bool {
	return v > other
}

func (v UInt16Value) GreaterEqual(other UInt16Value) bool {
	return v >= other
}

func (v UInt16Value) Equal(other Value) bool {
	otherUInt16, ok := other.(UInt16Value)
	if !ok {
		return false
	}
	return v == otherUInt16
}

func (v UInt16Value) ToBigEndianBytes() []byte {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, uint16(v))
	return b
}

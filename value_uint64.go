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

// UInt64Value

type UInt64Value uint64

var _ Value = UInt64Value(0)
var _ NumberValue = UInt64Value(0)
var _ EquatableValue = UInt64Value(0)

func NewUInt64Value(value uint64) UInt64Value {
	return UInt64Value(value)
}

func NewUInt64ValueFromBigInt(value *big.Int) (UInt64Value, error) {
	converted, err := ConvertUnsigned[uint64](value, UInt64TypeMaxIntBig)
	if err != nil {
		return 0, err
	}
	return UInt64Value(converted), nil
}

func ParseUInt64Value(literal string) (UInt64Value, error) {
	parsed, err := parseUnsigned[uint64](literal, 64)
	if err != nil {
		return 0, err
	}
	return UInt64Value(parsed), nil
}

func (UInt64Value) isValue() {}

func (v UInt64Value) String() string {
	return format.Uint(uint64(v))
}

func (v UInt64Value) ToBigInt() *big.Int {
	return new(big.Int).SetUint64(uint64(v))
}

func (v UInt64Value) Plus(other UInt64Value) (UInt64Value, error) {
	sum, err := AddUnsigned(uint64(v), uint64(other))
	if err != nil {
		return 0, err
	}
	return UInt64Value(sum), nil
}

func (v UInt64Value) SaturatingPlus(other UInt64Value) UInt64Value {
	sum, err := AddUnsigned(uint64(v), uint64(other))
	if err != nil {
		return math.MaxUint64
	}
	return UInt64Value(sum)
}

func (v UInt64Value) Minus(other UInt64Value) (UInt64Value, error) {
	diff, err := SubUnsigned(uint64(v), uint64(other))
	if err != nil {
		return 0, err
	}
	return UInt64Value(diff), nil
}

func (v UInt64Value) SaturatingMinus(other UInt64Value) UInt64Value {
	diff, err := SubUnsigned(uint64(v), uint64(other))
	if err != nil {
		return 0
	}
	return UInt64Value(diff)
}

func (v UInt64Value) Mul(other UInt64Value) (UInt64Value, error) {
	product, err := MulUnsigned(uint64(v), uint64(other))
	if err != nil {
		return 0, err
	}
	return UInt64Value(product), nil
}

func (v UInt64Value) SaturatingMul(other UInt64Value) UInt64Value {
	product, err := MulUnsigned(uint64(v), uint64(other))
	if err != nil {
		return math.MaxUint64
	}
	return UInt64Value(product)
}

func (v UInt64Value) Div(other UInt64Value) (UInt64Value, error) {
	quotient, err := DivUnsigned(uint64(v), uint64(other))
	if err != nil {
		return 0, err
	}
	return UInt64Value(quotient), nil
}

func (v UInt64Value) Mod(other UInt64Value) (UInt64Value, error) {
	remainder, err := ModUnsigned(uint64(v), uint64(other))
	if err != nil {
		return 0, err
	}
	return UInt64Value(remainder), nil
}

func (v UInt64Value) Less(other UInt64Value) bool {
	return v < other
}

func (v UInt64Value) LessEqual(other UInt64Value) bool {
	return v <= other
}

func (v UInt64Value) Greater(other UInt64Value) bool {
	return v > other
}

func (v UInt64Value) GreaterEqual(other UInt64Value) bool {
	return v >= other
}

func (v UInt64Value) Equal(other Value) bool {
	otherUInt64, ok := other.(UInt64Value)
	if !ok {
		return false
	}
	return v == otherUInt64
}

func (v UInt64Value) ToBigEndianBytes() []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(v))
	return b
}

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

// UInt32Value

type UInt32Value uint32

var _ Value = UInt32Value(0)
var _ NumberValue = UInt32Value(0)
var _ EquatableValue = UInt32Value(0)

func NewUInt32Value(value uint32) UInt32Value {
	return UInt32Value(value)
}

func NewUInt32ValueFromBigInt(value *big.Int) (UInt32Value, error) {
	converted, err := ConvertUnsigned[uint32](value, UInt32TypeMaxIntBig)
	if err != nil {
		return 0, err
	}
	return UInt32Value(converted), nil
}

func ParseUInt32Value(literal string) (UInt32Value, error) {
	parsed, err := parseUnsigned[uint32](literal, 32)
	if err != nil {
		return 0, err
	}
	return UInt32Value(parsed), nil
}

func (UInt32Value) isValue() {}

func (v UInt32Value) String() string {
	return format.Uint(uint64(v))
}

func (v UInt32Value) ToBigInt() *big.Int {
	return new(big.Int).SetUint64(uint64(v))
}

func (v UInt32Value) Plus(other UInt32Value) (UInt32Value, error) {
	sum, err := AddUnsigned(uint32(v), uint32(other))
	if err != nil {
		return 0, err
	}
	return UInt32Value(sum), nil
}

func (v UInt32Value) SaturatingPlus(other UInt32Value) UInt32Value {
	sum, err := AddUnsigned(uint32(v), uint32(other))
	if err != nil {
		return math.MaxUint32
	}
	return UInt32Value(sum)
}

func (v UInt32Value) Minus(other UInt32Value) (UInt32Value, error) {
	diff, err := SubUnsigned(uint32(v), uint32(other))
	if err != nil {
		return 0, err
	}
	return UInt32Value(diff), nil
}

func (v UInt32Value) SaturatingMinus(other UInt32Value) UInt32Value {
	diff, err := SubUnsigned(uint32(v), uint32(other))
	if err != nil {
		return 0
	}
	return UInt32Value(diff)
}

func (v UInt32Value) Mul(other UInt32Value) (UInt32Value, error) {
	product, err := MulUnsigned(uint32(v), uint32(other))
	if err != nil {
		return 0, err
	}
	return UInt32Value(product), nil
}

func (v UInt32Value) SaturatingMul(other UInt32Value) UInt32Value {
	product, err := MulUnsigned(uint32(v), uint32(other))
	if err != nil {
		return math.MaxUint32
	}
	return UInt32Value(product)
}

func (v UInt32Value) Div(other UInt32Value) (UInt32Value, error) {
	quotient, err := DivUnsigned(uint32(v), uint32(other))
	if err != nil {
		return 0, err
	}
	return UInt32Value(quotient), nil
}

func (v UInt32Value) Mod(other UInt32Value) (UInt32Value, error) {
	remainder, err := ModUnsigned(uint32(v), uint32(other))
	if err != nil {
		return 0, err
	}
	return UInt32Value(remainder), nil
}

func (v UInt32Value) Less(other UInt32Value) bool {
	return v < other
}

func (v UInt32Value) LessEqual(other UInt32Value) bool {
	return v <= other
}

func (v UInt32Value) Greater(other UInt32Value) bool {
	return v > other
}

func (v UInt32Value) GreaterEqual(other UInt32Value) bool {
	return v >= other
}

func (v UInt32Value) Equal(other Value) bool {
	otherUInt32, ok := other.(UInt32Value)
	if !ok {
		return false
	}
	return v == otherUInt32
}

func (v UInt32Value) ToBigEndianBytes() []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, uint32(v))
	return b
}
